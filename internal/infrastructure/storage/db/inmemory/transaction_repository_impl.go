package inmemory

import (
	"context"
	"sync"

	"github.com/hulin115/neuron/internal/core/domain"
)

// TransactionRepositoryImpl represents an in memory storage of sent
// transactions
type TransactionRepositoryImpl struct {
	transactions map[string]domain.TransactionRecord
	lock         *sync.RWMutex
}

// NewTransactionRepositoryImpl returns a new empty TransactionRepositoryImpl
func NewTransactionRepositoryImpl() *TransactionRepositoryImpl {
	return &TransactionRepositoryImpl{
		transactions: map[string]domain.TransactionRecord{},
		lock:         &sync.RWMutex{},
	}
}

func (r *TransactionRepositoryImpl) AddTransaction(
	_ context.Context, record *domain.TransactionRecord,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.transactions[record.Hash]; ok {
		return nil
	}
	r.transactions[record.Hash] = *record
	return nil
}

func (r *TransactionRepositoryImpl) GetTransaction(
	_ context.Context, hash string,
) (*domain.TransactionRecord, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	record, ok := r.transactions[hash]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *TransactionRepositoryImpl) GetTransactionsByLockHashes(
	_ context.Context, lockHashes []string,
) ([]domain.TransactionRecord, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	wanted := make(map[string]struct{}, len(lockHashes))
	for _, h := range lockHashes {
		wanted[h] = struct{}{}
	}

	records := make([]domain.TransactionRecord, 0)
	for _, record := range r.transactions {
		for _, h := range record.LockHashes {
			if _, ok := wanted[h]; ok {
				records = append(records, record)
				break
			}
		}
	}
	domain.SortTransactionRecords(records)
	return records, nil
}
