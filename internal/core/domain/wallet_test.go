package domain_test

import (
	"testing"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestNewWallet(t *testing.T) {
	t.Parallel()

	addresses := domain.Addresses{
		Receiving: []domain.AddressInfo{{Address: "r0", LockHash: "0x01"}, {Address: "r1", LockHash: "0x02"}},
		Change:    []domain.AddressInfo{{Address: "c0", LockHash: "0x03"}, {Address: "r0", LockHash: "0x01"}},
	}
	w, err := domain.NewWallet(" alice ", addresses, domain.Keystore{CipherText: "x"})
	require.NoError(t, err)
	require.NotEmpty(t, w.ID)
	require.Equal(t, "alice", w.Name)
	require.Equal(t, []string{"0x01", "0x02", "0x03"}, w.LockHashes())
	require.True(t, w.OwnsLockHash("0x03"))
	require.False(t, w.OwnsLockHash("0x04"))

	change, err := w.ChangeAddress()
	require.NoError(t, err)
	require.Equal(t, "c0", change.Address)
}

func TestFailingNewWallet(t *testing.T) {
	t.Parallel()

	_, err := domain.NewWallet("", domain.Addresses{}, domain.Keystore{CipherText: "x"})
	require.Error(t, err)

	_, err = domain.NewWallet("alice", domain.Addresses{}, domain.Keystore{})
	require.Error(t, err)
}

func TestWalletWithoutChangeAddress(t *testing.T) {
	t.Parallel()

	w := domain.Wallet{ID: "id"}
	_, err := w.ChangeAddress()
	require.ErrorIs(t, err, domain.ErrNoChangeAddress)
	require.Empty(t, w.LockHashes())
}
