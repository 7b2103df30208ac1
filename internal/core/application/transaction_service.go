package application

import (
	"context"
	"fmt"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
)

type TransactionService interface {
	// ListTransactions returns the transactions sent by the wallet, or by
	// the current one if walletID is empty, newest first. Non-empty
	// lockHashes narrow the history to those of the wallet's lock hashes.
	ListTransactions(
		ctx context.Context, walletID string, lockHashes []string,
	) ([]domain.TransactionRecord, error)
	GetTransaction(
		ctx context.Context, hash string,
	) (*domain.TransactionRecord, error)
}

type transactionService struct {
	repoManager ports.RepoManager
}

func NewTransactionService(repoManager ports.RepoManager) TransactionService {
	return &transactionService{repoManager}
}

func (t *transactionService) ListTransactions(
	ctx context.Context, walletID string, lockHashes []string,
) ([]domain.TransactionRecord, error) {
	w, err := getWallet(ctx, t.repoManager.WalletRepository(), walletID)
	if err != nil {
		return nil, err
	}

	if len(lockHashes) <= 0 {
		lockHashes = w.LockHashes()
	}
	for _, h := range lockHashes {
		if !w.OwnsLockHash(h) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLockHashNotOwned, h)
		}
	}

	return t.repoManager.TransactionRepository().
		GetTransactionsByLockHashes(ctx, lockHashes)
}

func (t *transactionService) GetTransaction(
	ctx context.Context, hash string,
) (*domain.TransactionRecord, error) {
	record, err := t.repoManager.TransactionRepository().
		GetTransaction(ctx, hash)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, hash)
	}
	return record, nil
}
