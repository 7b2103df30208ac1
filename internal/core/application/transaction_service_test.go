package application_test

import (
	"context"
	"testing"

	"github.com/hulin115/neuron/internal/core/application"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/infrastructure/storage/db/inmemory"
	"github.com/hulin115/neuron/pkg/capacity"
	"github.com/stretchr/testify/require"
)

// sentTransaction spends cell paying the rest, net of fee, to change.
func sentTransaction(
	cell domain.Cell, change testAccount, paid, fee string,
) *domain.RawTransaction {
	changeCapacity := cell.Capacity.Sub(capacity.MustParse(paid)).
		Sub(capacity.MustParse(fee))
	return &domain.RawTransaction{
		Version: "0",
		Inputs:  []domain.Input{cell.ToInput()},
		Outputs: []domain.Output{
			{
				Capacity: capacity.MustParse(paid),
				Lock: domain.Script{
					CodeHash: testCodeHash, Args: []string{"0x" + randomHex(20)},
				},
			},
			{Capacity: changeCapacity, Lock: change.lock()},
		},
	}
}

func TestTransactionHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoManager := inmemory.NewRepoManager()
	w, receiving, change, _ := newTestWallet(t, repoManager)
	other, otherReceiving, otherChange, _ := newTestWallet(t, repoManager)
	require.NoError(t, repoManager.WalletRepository().SetCurrentWallet(ctx, w.ID))

	older := domain.NewTransactionRecord(
		w, sentTransaction(receiving.cell("20000000000"), change, "6100000000", "1000"),
		randomTxHash(), 1000,
	)
	newer := domain.NewTransactionRecord(
		w, sentTransaction(receiving.cell("30000000000"), change, "6100000000", "2000"),
		randomTxHash(), 2000,
	)
	foreign := domain.NewTransactionRecord(
		other, sentTransaction(otherReceiving.cell("20000000000"), otherChange, "6100000000", "1000"),
		randomTxHash(), 3000,
	)
	transactionRepository := repoManager.TransactionRepository()
	for _, r := range []*domain.TransactionRecord{older, newer, foreign} {
		require.NoError(t, transactionRepository.AddTransaction(ctx, r))
	}

	svc := application.NewTransactionService(repoManager)

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name       string
			walletID   string
			lockHashes []string
			expected   []string
		}{
			{
				name:     "current wallet",
				expected: []string{newer.Hash, older.Hash},
			},
			{
				name:     "by wallet",
				walletID: other.ID,
				expected: []string{foreign.Hash},
			},
			{
				name:       "by change lock hash",
				walletID:   w.ID,
				lockHashes: []string{change.lockHash},
				expected:   []string{newer.Hash, older.Hash},
			},
		}

		for _, tt := range tests {
			records, err := svc.ListTransactions(ctx, tt.walletID, tt.lockHashes)
			require.NoError(t, err, tt.name)

			hashes := make([]string, 0, len(records))
			for _, r := range records {
				hashes = append(hashes, r.Hash)
			}
			require.Equal(t, tt.expected, hashes, tt.name)
		}
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		record, err := svc.GetTransaction(ctx, older.Hash)
		require.NoError(t, err)
		require.Equal(t, w.ID, record.WalletID)
		require.Equal(t, "6100001000", record.Value.String())
		require.Equal(t, "1000", record.Fee.String())
	})

	t.Run("failing", func(t *testing.T) {
		t.Parallel()

		_, err := svc.ListTransactions(ctx, "unknown", nil)
		require.ErrorIs(t, err, domain.ErrWalletNotFound)

		_, err = svc.ListTransactions(ctx, w.ID, []string{otherReceiving.lockHash})
		require.ErrorIs(t, err, domain.ErrLockHashNotOwned)
		require.Equal(t, application.ErrorKindLockHashNotOwned, application.ErrorKindOf(err))

		_, err = svc.GetTransaction(ctx, randomTxHash())
		require.ErrorIs(t, err, domain.ErrTransactionNotFound)
	})
}
