package domain_test

import (
	"testing"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/pkg/capacity"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionRecord(t *testing.T) {
	t.Parallel()

	w := &domain.Wallet{
		ID: "wallet",
		Addresses: domain.Addresses{
			Receiving: []domain.AddressInfo{{Address: "r0", LockHash: "0x0b", Blake160: "0xb0"}},
			Change:    []domain.AddressInfo{{Address: "c0", LockHash: "0x0a", Blake160: "0xa0"}},
		},
	}
	tx := &domain.RawTransaction{
		Inputs: []domain.Input{
			{LockHash: "0x0b", Capacity: capacity.MustParse("20000000000")},
			{LockHash: "0x0b", Capacity: capacity.MustParse("6100000000")},
		},
		Outputs: []domain.Output{
			{Capacity: capacity.MustParse("6100000000"), Lock: domain.Script{Args: []string{"0xff"}}},
			{Capacity: capacity.MustParse("19999999000"), Lock: domain.Script{Args: []string{"0xa0"}}},
		},
	}

	record := domain.NewTransactionRecord(w, tx, "0x01", 1600000000)
	require.Equal(t, "0x01", record.Hash)
	require.Equal(t, "wallet", record.WalletID)
	require.Equal(t, []string{"0x0a", "0x0b"}, record.LockHashes)
	require.Equal(t, "6100001000", record.Value.String())
	require.Equal(t, "1000", record.Fee.String())
	require.Equal(t, int64(1600000000), record.Timestamp)

	lockHash, ok := w.OutputLockHash(tx.Outputs[1])
	require.True(t, ok)
	require.Equal(t, "0x0a", lockHash)
	_, ok = w.OutputLockHash(tx.Outputs[0])
	require.False(t, ok)
	_, ok = w.OutputLockHash(domain.Output{Lock: domain.Script{Args: []string{"0xa0", "0x00"}}})
	require.False(t, ok)
}

func TestSortTransactionRecords(t *testing.T) {
	t.Parallel()

	records := []domain.TransactionRecord{
		{Hash: "0x02", Timestamp: 1},
		{Hash: "0x03", Timestamp: 2},
		{Hash: "0x01", Timestamp: 1},
	}
	domain.SortTransactionRecords(records)

	hashes := make([]string, 0, len(records))
	for _, r := range records {
		hashes = append(hashes, r.Hash)
	}
	require.Equal(t, []string{"0x03", "0x01", "0x02"}, hashes)
}
