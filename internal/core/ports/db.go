package ports

import "github.com/hulin115/neuron/internal/core/domain"

// RepoManager gives access to the repositories backing the wallet.
type RepoManager interface {
	CellRepository() domain.CellRepository
	WalletRepository() domain.WalletRepository
	TransactionRepository() domain.TransactionRepository

	Close()
}
