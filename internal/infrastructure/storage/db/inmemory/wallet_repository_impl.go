package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/hulin115/neuron/internal/core/domain"
)

// WalletRepositoryImpl represents an in memory storage of wallets
type WalletRepositoryImpl struct {
	wallets   map[string]domain.Wallet
	currentID string
	lock      *sync.RWMutex
}

// NewWalletRepositoryImpl returns a new empty WalletRepositoryImpl
func NewWalletRepositoryImpl() *WalletRepositoryImpl {
	return &WalletRepositoryImpl{
		wallets: map[string]domain.Wallet{},
		lock:    &sync.RWMutex{},
	}
}

func (r *WalletRepositoryImpl) AddWallet(
	_ context.Context, wallet *domain.Wallet,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, w := range r.wallets {
		if w.Name == wallet.Name {
			return domain.ErrWalletNameExists
		}
	}
	r.wallets[wallet.ID] = *wallet
	return nil
}

func (r *WalletRepositoryImpl) GetWallet(
	_ context.Context, id string,
) (*domain.Wallet, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.getWallet(id)
}

func (r *WalletRepositoryImpl) GetAllWallets(
	_ context.Context,
) ([]domain.Wallet, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.sortedWallets(), nil
}

func (r *WalletRepositoryImpl) UpdateWallet(
	_ context.Context, id string,
	updateFn func(w *domain.Wallet) (*domain.Wallet, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	wallet, err := r.getWallet(id)
	if err != nil {
		return err
	}
	updated, err := updateFn(wallet)
	if err != nil {
		return err
	}
	for _, w := range r.wallets {
		if w.ID != id && w.Name == updated.Name {
			return domain.ErrWalletNameExists
		}
	}

	updated.ID = id
	r.wallets[id] = *updated
	return nil
}

// DeleteWallet removes the wallet. If it was the current one, the first
// remaining wallet becomes current.
func (r *WalletRepositoryImpl) DeleteWallet(_ context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.wallets[id]; !ok {
		return domain.ErrWalletNotFound
	}
	delete(r.wallets, id)
	if r.currentID != id {
		return nil
	}

	r.currentID = ""
	if wallets := r.sortedWallets(); len(wallets) > 0 {
		r.currentID = wallets[0].ID
	}
	return nil
}

func (r *WalletRepositoryImpl) GetCurrentWallet(
	_ context.Context,
) (*domain.Wallet, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if len(r.currentID) <= 0 {
		return nil, domain.ErrWalletNotFound
	}
	return r.getWallet(r.currentID)
}

func (r *WalletRepositoryImpl) SetCurrentWallet(
	_ context.Context, id string,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.wallets[id]; !ok {
		return domain.ErrWalletNotFound
	}
	r.currentID = id
	return nil
}

func (r *WalletRepositoryImpl) sortedWallets() []domain.Wallet {
	wallets := make([]domain.Wallet, 0, len(r.wallets))
	for _, w := range r.wallets {
		wallets = append(wallets, w)
	}
	sort.Slice(wallets, func(i, j int) bool {
		return wallets[i].Name < wallets[j].Name
	})
	return wallets
}

func (r *WalletRepositoryImpl) getWallet(id string) (*domain.Wallet, error) {
	w, ok := r.wallets[id]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	return &w, nil
}
