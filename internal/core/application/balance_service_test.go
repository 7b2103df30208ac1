package application_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hulin115/neuron/internal/core/application"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/infrastructure/storage/db/inmemory"
	"github.com/hulin115/neuron/pkg/capacity"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoManager := inmemory.NewRepoManager()
	account := newTestAccount(t)
	other := newTestAccount(t)

	cells := account.cells("6100000000", "20000000000")
	dataCell := domain.NewCell(
		domain.OutPoint{TxHash: randomTxHash()}, capacity.MustParse("7000000000"),
		account.lock(), account.lockHash, nil, "0x1234",
	)
	typedCell := domain.NewCell(
		domain.OutPoint{TxHash: randomTxHash()}, capacity.MustParse("8000000000"),
		account.lock(), account.lockHash, &domain.Script{CodeHash: testCodeHash}, "",
	)
	pendingCell := account.cell("9000000000")
	pendingCell.MarkPending()
	cells = append(cells, dataCell, typedCell, pendingCell)
	cells = append(cells, other.cells("50000000000")...)
	require.NoError(t, repoManager.CellRepository().AddCells(ctx, cells))

	svc := application.NewBalanceService(repoManager, staticSettings(true))

	tests := []struct {
		name            string
		lockHashes      []string
		status          domain.CellStatus
		skipDataAndType bool
		expected        string
	}{
		{
			name:            "live skipping data and type",
			lockHashes:      []string{account.lockHash},
			status:          domain.CellStatusLive,
			skipDataAndType: true,
			expected:        "26100000000",
		},
		{
			name:       "live with data and type",
			lockHashes: []string{account.lockHash},
			status:     domain.CellStatusLive,
			expected:   "41100000000",
		},
		{
			name:       "pending",
			lockHashes: []string{account.lockHash},
			status:     domain.CellStatusPending,
			expected:   "9000000000",
		},
		{
			name:       "many lock hashes",
			lockHashes: []string{account.lockHash, other.lockHash},
			status:     domain.CellStatusLive,
			expected:   "91100000000",
		},
		{
			name:       "no lock hashes",
			lockHashes: nil,
			status:     domain.CellStatusLive,
			expected:   "0",
		},
		{
			name:       "unknown lock hash",
			lockHashes: []string{randomTxHash()},
			status:     domain.CellStatusLive,
			expected:   "0",
		},
	}

	for _, tt := range tests {
		balance, err := svc.GetBalance(ctx, tt.lockHashes, tt.status, tt.skipDataAndType)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.expected, balance.String(), tt.name)
	}
}

func TestFailingGetBalance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	account := newTestAccount(t)

	t.Run("invalid status", func(t *testing.T) {
		svc := application.NewBalanceService(inmemory.NewRepoManager(), staticSettings(false))
		_, err := svc.GetBalance(ctx, []string{account.lockHash}, "spent", false)
		require.ErrorIs(t, err, application.ErrInvalidStatus)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockCellRepository{}
		repo.On("GetCells", ctx, domain.CellQuery{
			LockHashes: []string{account.lockHash},
			Status:     domain.CellStatusLive,
		}).Return(nil, fmt.Errorf("db closed"))

		svc := application.NewBalanceService(
			mockRepoManager{inmemory.NewRepoManager(), repo}, staticSettings(false),
		)
		_, err := svc.GetBalance(ctx, []string{account.lockHash}, domain.CellStatusLive, false)
		require.Error(t, err)
		repo.AssertExpectations(t)
	})
}

func TestGetWalletBalance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoManager := inmemory.NewRepoManager()
	w, receiving, change, _ := newTestWallet(t, repoManager)

	sentCell := change.cell("6100000000")
	sentCell.Status = domain.CellStatusSent
	cells := append(receiving.cells("6100000000", "20000000000"), sentCell)
	cells = append(cells, change.cells("7000000000")...)
	require.NoError(t, repoManager.CellRepository().AddCells(ctx, cells))

	svc := application.NewBalanceService(repoManager, staticSettings(true))

	for _, id := range []string{"", w.ID} {
		balance, err := svc.GetWalletBalance(ctx, id)
		require.NoError(t, err)
		require.Equal(t, w.ID, balance.WalletID)
		require.Equal(t, "33100000000", balance.Live.String())
		require.Equal(t, "6100000000", balance.Sent.String())
	}

	_, err := svc.GetWalletBalance(ctx, "unknown")
	require.ErrorIs(t, err, domain.ErrWalletNotFound)

	_, err = application.NewBalanceService(inmemory.NewRepoManager(), staticSettings(true)).
		GetWalletBalance(ctx, "")
	require.ErrorIs(t, err, domain.ErrWalletNotFound)
	require.Equal(t, application.ErrorKindWalletNotFound, application.ErrorKindOf(err))
}
