package inmemory

import (
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
)

type RepoManager struct {
	cellRepository        domain.CellRepository
	walletRepository      domain.WalletRepository
	transactionRepository domain.TransactionRepository
}

func NewRepoManager() ports.RepoManager {
	return &RepoManager{
		cellRepository:        NewCellRepositoryImpl(),
		walletRepository:      NewWalletRepositoryImpl(),
		transactionRepository: NewTransactionRepositoryImpl(),
	}
}

func (d *RepoManager) CellRepository() domain.CellRepository {
	return d.cellRepository
}

func (d *RepoManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

func (d *RepoManager) TransactionRepository() domain.TransactionRepository {
	return d.transactionRepository
}

func (d *RepoManager) Close() {}
