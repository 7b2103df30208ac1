package dbbadger

import (
	"context"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type transactionRepositoryImpl struct {
	store *badgerhold.Store
}

func NewTransactionRepositoryImpl(
	store *badgerhold.Store,
) domain.TransactionRepository {
	return transactionRepositoryImpl{store}
}

func (r transactionRepositoryImpl) AddTransaction(
	_ context.Context, record *domain.TransactionRecord,
) error {
	if err := r.store.Insert(record.Hash, *record); err != nil {
		if err == badgerhold.ErrKeyExists {
			return nil
		}
		return err
	}
	return nil
}

func (r transactionRepositoryImpl) GetTransaction(
	_ context.Context, hash string,
) (*domain.TransactionRecord, error) {
	var record domain.TransactionRecord
	if err := r.store.Get(hash, &record); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r transactionRepositoryImpl) GetTransactionsByLockHashes(
	_ context.Context, lockHashes []string,
) ([]domain.TransactionRecord, error) {
	records := make([]domain.TransactionRecord, 0)
	if len(lockHashes) <= 0 {
		return records, nil
	}

	query := badgerhold.Where("LockHashes").
		ContainsAny(badgerhold.Slice(lockHashes)...)
	if err := r.store.Find(&records, query); err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.TransactionRecord{}
	}
	domain.SortTransactionRecords(records)
	return records, nil
}
