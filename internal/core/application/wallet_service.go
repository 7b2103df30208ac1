package application

import (
	"context"
	"errors"
	"strings"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/hulin115/neuron/pkg/keystore"
	log "github.com/sirupsen/logrus"
)

// ImportWalletRequest holds the addresses and the plaintext private key of
// a wallet created elsewhere.
type ImportWalletRequest struct {
	Name       string
	Addresses  domain.Addresses
	PrivateKey string
	Password   string
}

type WalletService interface {
	// ImportWallet seals the private key with the password and stores the
	// wallet. The first imported wallet becomes the current one.
	ImportWallet(
		ctx context.Context, req ImportWalletRequest,
	) (*domain.Wallet, error)
	ListWallets(ctx context.Context) ([]domain.Wallet, error)
	GetCurrentWallet(ctx context.Context) (*domain.Wallet, error)
	SetCurrentWallet(ctx context.Context, id string) error
	// UpdateWallet renames the wallet, or the current one if id is empty.
	UpdateWallet(ctx context.Context, id, name string) (*domain.Wallet, error)
	DeleteWallet(ctx context.Context, id string) error
	// ValidatePassword checks that the password unlocks the keystore of the
	// wallet, or of the current one if id is empty.
	ValidatePassword(ctx context.Context, id, password string) error
}

type walletService struct {
	repoManager ports.RepoManager
	signer      Signer
	network     domain.Network
	scryptN     int
}

func NewWalletService(
	repoManager ports.RepoManager,
	signer Signer,
	network domain.Network,
	scryptN int,
) WalletService {
	return &walletService{repoManager, signer, network, scryptN}
}

func (w *walletService) ImportWallet(
	ctx context.Context, req ImportWalletRequest,
) (*domain.Wallet, error) {
	if len(req.Password) <= 0 {
		return nil, domain.ErrPasswordRequired
	}
	for _, a := range append(
		append([]domain.AddressInfo{}, req.Addresses.Receiving...),
		req.Addresses.Change...,
	) {
		if _, err := domain.ParseAddress(a.Address, w.network); err != nil {
			return nil, err
		}
	}
	if len(req.Addresses.Change) <= 0 {
		return nil, domain.ErrNoChangeAddress
	}

	keys := keystore.KeysData{PrivateKey: req.PrivateKey}
	if _, err := keys.PrivKey(); err != nil {
		return nil, err
	}
	cipherText, err := keystore.Seal(keys, req.Password, w.scryptN)
	if err != nil {
		return nil, err
	}

	wallet, err := domain.NewWallet(req.Name, req.Addresses, domain.Keystore{
		Version:    keystore.Version,
		CipherText: cipherText,
		ScryptN:    w.scryptN,
	})
	if err != nil {
		return nil, err
	}

	walletRepository := w.repoManager.WalletRepository()
	if err := walletRepository.AddWallet(ctx, wallet); err != nil {
		return nil, err
	}

	if _, err := walletRepository.GetCurrentWallet(ctx); err != nil {
		if !errors.Is(err, domain.ErrWalletNotFound) {
			return nil, err
		}
		if err := walletRepository.SetCurrentWallet(ctx, wallet.ID); err != nil {
			return nil, err
		}
	}

	log.Debugf("imported wallet %s (%s)", wallet.Name, wallet.ID)
	return wallet, nil
}

func (w *walletService) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	return w.repoManager.WalletRepository().GetAllWallets(ctx)
}

func (w *walletService) GetCurrentWallet(
	ctx context.Context,
) (*domain.Wallet, error) {
	return getWallet(ctx, w.repoManager.WalletRepository(), "")
}

func (w *walletService) SetCurrentWallet(ctx context.Context, id string) error {
	return w.repoManager.WalletRepository().SetCurrentWallet(ctx, id)
}

func (w *walletService) UpdateWallet(
	ctx context.Context, id, name string,
) (*domain.Wallet, error) {
	walletRepository := w.repoManager.WalletRepository()
	wallet, err := getWallet(ctx, walletRepository, id)
	if err != nil {
		return nil, err
	}

	if err := walletRepository.UpdateWallet(
		ctx, wallet.ID, func(wallet *domain.Wallet) (*domain.Wallet, error) {
			if err := wallet.Rename(name); err != nil {
				return nil, err
			}
			return wallet, nil
		},
	); err != nil {
		return nil, err
	}

	log.Debugf("renamed wallet %s to %s", wallet.ID, strings.TrimSpace(name))
	return walletRepository.GetWallet(ctx, wallet.ID)
}

func (w *walletService) DeleteWallet(ctx context.Context, id string) error {
	return w.repoManager.WalletRepository().DeleteWallet(ctx, id)
}

func (w *walletService) ValidatePassword(
	ctx context.Context, id, password string,
) error {
	wallet, err := getWallet(ctx, w.repoManager.WalletRepository(), id)
	if err != nil {
		return err
	}
	_, err = w.signer.Unlock(wallet.Keystore, password)
	return err
}
