package domain

import "context"

// WalletRepository is the store of wallets and their keystores.
type WalletRepository interface {
	AddWallet(ctx context.Context, wallet *Wallet) error
	GetWallet(ctx context.Context, id string) (*Wallet, error)
	// GetAllWallets returns the wallets sorted by name.
	GetAllWallets(ctx context.Context) ([]Wallet, error)
	// UpdateWallet applies updateFn to the stored wallet. The updated name
	// must not be taken by another wallet.
	UpdateWallet(
		ctx context.Context, id string,
		updateFn func(w *Wallet) (*Wallet, error),
	) error
	// DeleteWallet removes the wallet. Deleting the current wallet makes the
	// first remaining one, by name, current.
	DeleteWallet(ctx context.Context, id string) error
	// GetCurrentWallet returns the wallet selected for spending.
	GetCurrentWallet(ctx context.Context) (*Wallet, error)
	SetCurrentWallet(ctx context.Context, id string) error
}
