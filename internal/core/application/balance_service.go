package application

import (
	"context"
	"fmt"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/hulin115/neuron/pkg/capacity"
	log "github.com/sirupsen/logrus"
)

// WalletBalance is the spendable capacity of a wallet together with the
// change of its sent but not yet committed transactions.
type WalletBalance struct {
	WalletID string
	Live     capacity.Capacity
	Sent     capacity.Capacity
}

type BalanceService interface {
	// GetBalance sums the capacity of the cells locked by any of the given
	// lock hashes and having the given status.
	GetBalance(
		ctx context.Context,
		lockHashes []string,
		status domain.CellStatus,
		skipDataAndType bool,
	) (capacity.Capacity, error)
	// GetWalletBalance returns the live and sent balance of the wallet, or of
	// the current one if walletID is empty.
	GetWalletBalance(
		ctx context.Context, walletID string,
	) (*WalletBalance, error)
}

type balanceService struct {
	repoManager ports.RepoManager
	settings    ports.Settings
}

func NewBalanceService(
	repoManager ports.RepoManager,
	settings ports.Settings,
) BalanceService {
	return &balanceService{repoManager, settings}
}

func (b *balanceService) GetBalance(
	ctx context.Context,
	lockHashes []string,
	status domain.CellStatus,
	skipDataAndType bool,
) (capacity.Capacity, error) {
	if !status.IsValid() {
		return capacity.Zero(), ErrInvalidStatus
	}
	if len(lockHashes) <= 0 {
		return capacity.Zero(), nil
	}

	cells, err := b.repoManager.CellRepository().GetCells(ctx, domain.CellQuery{
		LockHashes:      lockHashes,
		Status:          status,
		SkipDataAndType: skipDataAndType,
	})
	if err != nil {
		return capacity.Zero(), fmt.Errorf("failed to query cells: %w", err)
	}

	values := make([]capacity.Capacity, 0, len(cells))
	for _, c := range cells {
		values = append(values, c.Capacity)
	}
	return capacity.Sum(values...), nil
}

func (b *balanceService) GetWalletBalance(
	ctx context.Context, walletID string,
) (*WalletBalance, error) {
	w, err := getWallet(ctx, b.repoManager.WalletRepository(), walletID)
	if err != nil {
		return nil, err
	}

	lockHashes := w.LockHashes()
	skipDataAndType := b.settings.SkipDataAndType()

	live, err := b.GetBalance(ctx, lockHashes, domain.CellStatusLive, skipDataAndType)
	if err != nil {
		return nil, err
	}
	sent, err := b.GetBalance(ctx, lockHashes, domain.CellStatusSent, skipDataAndType)
	if err != nil {
		return nil, err
	}

	log.Debugf("balance of wallet %s: live %s, sent %s", w.ID, live, sent)

	return &WalletBalance{WalletID: w.ID, Live: live, Sent: sent}, nil
}

// getWallet returns the wallet with the given id, or the current one if id
// is empty. A missing wallet always resolves to domain.ErrWalletNotFound.
func getWallet(
	ctx context.Context, repo domain.WalletRepository, id string,
) (*domain.Wallet, error) {
	var (
		w   *domain.Wallet
		err error
	)
	if len(id) <= 0 {
		w, err = repo.GetCurrentWallet(ctx)
	} else {
		w, err = repo.GetWallet(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrWalletNotFound
	}
	return w, nil
}
