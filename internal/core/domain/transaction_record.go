package domain

import (
	"context"
	"sort"

	"github.com/hulin115/neuron/pkg/capacity"
)

// TransactionRecord is a transaction broadcast by one of the wallets. It's
// indexed by the wallet lock hashes it spends from or pays to.
type TransactionRecord struct {
	Hash       string   `json:"hash"`
	WalletID   string   `json:"wallet_id"`
	LockHashes []string `json:"lock_hashes"`
	// Value is the capacity leaving the wallet, fee included.
	Value       capacity.Capacity `json:"value"`
	Fee         capacity.Capacity `json:"fee"`
	Timestamp   int64             `json:"timestamp"`
	Transaction RawTransaction    `json:"transaction"`
}

// NewTransactionRecord returns the record of tx sent by w with the given
// hash.
func NewTransactionRecord(
	w *Wallet, tx *RawTransaction, hash string, timestamp int64,
) *TransactionRecord {
	seen := make(map[string]struct{})
	lockHashes := make([]string, 0)
	addLockHash := func(lockHash string) {
		if _, ok := seen[lockHash]; ok {
			return
		}
		seen[lockHash] = struct{}{}
		lockHashes = append(lockHashes, lockHash)
	}

	spent := make([]capacity.Capacity, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if !w.OwnsLockHash(in.LockHash) {
			continue
		}
		addLockHash(in.LockHash)
		spent = append(spent, in.Capacity)
	}
	received := make([]capacity.Capacity, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		lockHash, ok := w.OutputLockHash(out)
		if !ok {
			continue
		}
		addLockHash(lockHash)
		received = append(received, out.Capacity)
	}
	sort.Strings(lockHashes)

	return &TransactionRecord{
		Hash:        hash,
		WalletID:    w.ID,
		LockHashes:  lockHashes,
		Value:       capacity.Sum(spent...).Sub(capacity.Sum(received...)),
		Fee:         tx.Fee(),
		Timestamp:   timestamp,
		Transaction: *tx,
	}
}

// SortTransactionRecords orders the records newest first, by hash for equal
// timestamps.
func SortTransactionRecords(records []TransactionRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Timestamp != records[j].Timestamp {
			return records[i].Timestamp > records[j].Timestamp
		}
		return records[i].Hash < records[j].Hash
	})
}

// TransactionRepository is the store of the transactions sent by the
// wallets.
type TransactionRepository interface {
	// AddTransaction stores the record, an existing one with the same hash is
	// left untouched.
	AddTransaction(ctx context.Context, record *TransactionRecord) error
	// GetTransaction returns the record with the given hash, or nil if not
	// found.
	GetTransaction(ctx context.Context, hash string) (*TransactionRecord, error)
	// GetTransactionsByLockHashes returns the records involving any of the
	// lock hashes, newest first.
	GetTransactionsByLockHashes(
		ctx context.Context, lockHashes []string,
	) ([]TransactionRecord, error)
}
