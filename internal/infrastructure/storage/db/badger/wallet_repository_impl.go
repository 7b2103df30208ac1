package dbbadger

import (
	"context"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

const currentWalletKey = "current"

// currentWallet is the record pointing to the wallet selected for spending.
type currentWallet struct {
	WalletID string
}

type walletRepositoryImpl struct {
	store *badgerhold.Store
}

func NewWalletRepositoryImpl(store *badgerhold.Store) domain.WalletRepository {
	return walletRepositoryImpl{store}
}

func (r walletRepositoryImpl) AddWallet(
	_ context.Context, wallet *domain.Wallet,
) error {
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		var wallets []domain.Wallet
		query := badgerhold.Where("Name").Eq(wallet.Name)
		if err := r.store.TxFind(tx, &wallets, query); err != nil {
			return err
		}
		if len(wallets) > 0 {
			return domain.ErrWalletNameExists
		}

		if err := r.store.TxInsert(tx, wallet.ID, *wallet); err != nil {
			if err == badgerhold.ErrKeyExists {
				return domain.ErrWalletNameExists
			}
			return err
		}
		return nil
	})
}

func (r walletRepositoryImpl) GetWallet(
	_ context.Context, id string,
) (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := r.store.Get(id, &wallet); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

func (r walletRepositoryImpl) GetAllWallets(
	_ context.Context,
) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	if err := r.store.Find(&wallets, nil); err != nil {
		return nil, err
	}
	return sortWallets(wallets), nil
}

func (r walletRepositoryImpl) UpdateWallet(
	_ context.Context, id string,
	updateFn func(w *domain.Wallet) (*domain.Wallet, error),
) error {
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		var wallet domain.Wallet
		if err := r.store.TxGet(tx, id, &wallet); err != nil {
			if err == badgerhold.ErrNotFound {
				return domain.ErrWalletNotFound
			}
			return err
		}

		updated, err := updateFn(&wallet)
		if err != nil {
			return err
		}

		var wallets []domain.Wallet
		query := badgerhold.Where("Name").Eq(updated.Name)
		if err := r.store.TxFind(tx, &wallets, query); err != nil {
			return err
		}
		for _, w := range wallets {
			if w.ID != id {
				return domain.ErrWalletNameExists
			}
		}

		updated.ID = id
		return r.store.TxUpdate(tx, id, *updated)
	})
}

// DeleteWallet removes the wallet. If it was the current one, the first
// remaining wallet becomes current.
func (r walletRepositoryImpl) DeleteWallet(_ context.Context, id string) error {
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		if err := r.store.TxDelete(tx, id, domain.Wallet{}); err != nil {
			if err == badgerhold.ErrNotFound {
				return domain.ErrWalletNotFound
			}
			return err
		}

		var current currentWallet
		if err := r.store.TxGet(tx, currentWalletKey, &current); err != nil {
			if err == badgerhold.ErrNotFound {
				return nil
			}
			return err
		}
		if current.WalletID != id {
			return nil
		}

		var wallets []domain.Wallet
		if err := r.store.TxFind(tx, &wallets, nil); err != nil {
			return err
		}
		wallets = sortWallets(wallets)
		if len(wallets) <= 0 {
			return r.store.TxDelete(tx, currentWalletKey, currentWallet{})
		}
		return r.store.TxUpsert(
			tx, currentWalletKey, currentWallet{wallets[0].ID},
		)
	})
}

func (r walletRepositoryImpl) GetCurrentWallet(
	ctx context.Context,
) (*domain.Wallet, error) {
	var current currentWallet
	if err := r.store.Get(currentWalletKey, &current); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}
	return r.GetWallet(ctx, current.WalletID)
}

func (r walletRepositoryImpl) SetCurrentWallet(
	_ context.Context, id string,
) error {
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		var wallet domain.Wallet
		if err := r.store.TxGet(tx, id, &wallet); err != nil {
			if err == badgerhold.ErrNotFound {
				return domain.ErrWalletNotFound
			}
			return err
		}
		return r.store.TxUpsert(tx, currentWalletKey, currentWallet{id})
	})
}

func sortWallets(wallets []domain.Wallet) []domain.Wallet {
	if wallets == nil {
		return []domain.Wallet{}
	}
	sort.Slice(wallets, func(i, j int) bool {
		return wallets[i].Name < wallets[j].Name
	})
	return wallets
}
