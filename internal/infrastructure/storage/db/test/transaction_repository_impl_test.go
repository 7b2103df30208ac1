package db_test

import (
	"context"
	"testing"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/pkg/capacity"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepositoryImplementations(t *testing.T) {
	managers := createRepoManagers(t)

	for i := range managers {
		m := managers[i]

		t.Run(m.Name, func(t *testing.T) {
			t.Parallel()

			t.Run("testAddAndGetTransaction", func(t *testing.T) {
				t.Parallel()
				testAddAndGetTransaction(t, m.TransactionRepository())
			})

			t.Run("testGetTransactionsByLockHashes", func(t *testing.T) {
				t.Parallel()
				testGetTransactionsByLockHashes(t, m.TransactionRepository())
			})
		})
	}
}

func makeRandomTransactionRecord(
	timestamp int64, lockHashes ...string,
) *domain.TransactionRecord {
	cell := makeRandomCell(lockHashes[0])
	return &domain.TransactionRecord{
		Hash:       "0x" + randomHex(32),
		WalletID:   randomHex(8),
		LockHashes: lockHashes,
		Value:      cell.Capacity,
		Fee:        capacity.MustParse("1000"),
		Timestamp:  timestamp,
		Transaction: domain.RawTransaction{
			Version: "0",
			Inputs:  []domain.Input{cell.ToInput()},
			Outputs: []domain.Output{{
				Capacity: cell.Capacity.Sub(capacity.MustParse("1000")),
				Lock:     cell.Lock,
			}},
		},
	}
}

func testAddAndGetTransaction(t *testing.T, repo domain.TransactionRepository) {
	ctx := context.Background()
	record := makeRandomTransactionRecord(1000, "0x"+randomHex(32))

	err := repo.AddTransaction(ctx, record)
	require.NoError(t, err)

	found, err := repo.GetTransaction(ctx, record.Hash)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, record.WalletID, found.WalletID)
	require.Equal(t, record.LockHashes, found.LockHashes)
	require.Equal(t, record.Value.String(), found.Value.String())
	require.Equal(t, "1000", found.Fee.String())
	require.Equal(t, record.Transaction.Inputs[0].PreviousOutput, found.Transaction.Inputs[0].PreviousOutput)

	// adding the same hash again leaves the stored record untouched.
	duplicate := *record
	duplicate.WalletID = randomHex(8)
	err = repo.AddTransaction(ctx, &duplicate)
	require.NoError(t, err)

	found, err = repo.GetTransaction(ctx, record.Hash)
	require.NoError(t, err)
	require.Equal(t, record.WalletID, found.WalletID)

	found, err = repo.GetTransaction(ctx, "0x"+randomHex(32))
	require.NoError(t, err)
	require.Nil(t, found)
}

func testGetTransactionsByLockHashes(
	t *testing.T, repo domain.TransactionRepository,
) {
	ctx := context.Background()
	lockHashA, lockHashB := "0x"+randomHex(32), "0x"+randomHex(32)

	first := makeRandomTransactionRecord(1000, lockHashA)
	second := makeRandomTransactionRecord(2000, lockHashA, lockHashB)
	third := makeRandomTransactionRecord(3000, lockHashB)
	unrelated := makeRandomTransactionRecord(4000, "0x"+randomHex(32))
	for _, r := range []*domain.TransactionRecord{first, second, third, unrelated} {
		require.NoError(t, repo.AddTransaction(ctx, r))
	}

	tests := []struct {
		name       string
		lockHashes []string
		expected   []string
	}{
		{"none", nil, []string{}},
		{"first lock hash", []string{lockHashA}, []string{second.Hash, first.Hash}},
		{"second lock hash", []string{lockHashB}, []string{third.Hash, second.Hash}},
		{"both lock hashes", []string{lockHashA, lockHashB}, []string{third.Hash, second.Hash, first.Hash}},
		{"unknown lock hash", []string{"0x" + randomHex(32)}, []string{}},
	}

	for _, tt := range tests {
		records, err := repo.GetTransactionsByLockHashes(ctx, tt.lockHashes)
		require.NoError(t, err, tt.name)

		hashes := make([]string, 0, len(records))
		for _, r := range records {
			hashes = append(hashes, r.Hash)
		}
		require.Equal(t, tt.expected, hashes, tt.name)
	}
}
