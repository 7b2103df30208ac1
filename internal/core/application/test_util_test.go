package application_test

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/hulin115/neuron/internal/core/application"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/hulin115/neuron/pkg/capacity"
	"github.com/hulin115/neuron/pkg/keystore"
	"github.com/stretchr/testify/require"
)

const (
	testScryptN  = 1 << 4
	testPassword = "password"
	testCodeHash = "0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8"
	testNetwork  = domain.NetworkTestnet
)

var (
	minCellCapacity = domain.MinCellCapacity()
	testCellDeps    = []domain.CellDep{{
		OutPoint: domain.OutPoint{
			TxHash: "0x71a7ba8fc96349fea0ed3a5c47992e3b4084b031a42264a018e0072e8172e46c",
		},
		DepType: domain.DepTypeDepGroup,
	}}
)

type testAccount struct {
	address  string
	blake160 string
	lockHash string
}

func newTestAccount(t *testing.T) testAccount {
	blake160 := "0x" + randomHex(20)
	addr, err := domain.EncodeAddress(blake160, testNetwork)
	require.NoError(t, err)
	return testAccount{addr, blake160, "0x" + randomHex(32)}
}

func (a testAccount) info() domain.AddressInfo {
	return domain.AddressInfo{
		Address: a.address, LockHash: a.lockHash, Blake160: a.blake160,
	}
}

func (a testAccount) lock() domain.Script {
	return domain.Script{CodeHash: testCodeHash, Args: []string{a.blake160}}
}

func (a testAccount) cell(value string) domain.Cell {
	return domain.NewCell(
		domain.OutPoint{TxHash: "0x" + randomHex(32)},
		capacity.MustParse(value), a.lock(), a.lockHash, nil, "",
	)
}

func (a testAccount) cells(values ...string) []domain.Cell {
	cells := make([]domain.Cell, 0, len(values))
	for _, v := range values {
		cells = append(cells, a.cell(v))
	}
	return cells
}

// newTestWallet stores a wallet with one receiving and one change account,
// sealed with testPassword.
func newTestWallet(
	t *testing.T, repoManager ports.RepoManager,
) (*domain.Wallet, testAccount, testAccount, *btcec.PrivateKey) {
	privkey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	cipherText, err := keystore.Seal(
		keystore.NewKeysData(privkey), testPassword, testScryptN,
	)
	require.NoError(t, err)

	receiving, change := newTestAccount(t), newTestAccount(t)
	w, err := domain.NewWallet(
		fmt.Sprintf("wallet-%s", randomHex(4)),
		domain.Addresses{
			Receiving: []domain.AddressInfo{receiving.info()},
			Change:    []domain.AddressInfo{change.info()},
		},
		domain.Keystore{Version: keystore.Version, CipherText: cipherText, ScryptN: testScryptN},
	)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repoManager.WalletRepository().AddWallet(ctx, w))
	require.NoError(t, repoManager.WalletRepository().SetCurrentWallet(ctx, w.ID))
	return w, receiving, change, privkey
}

func newTestAssembler() application.TxAssembler {
	return application.NewTxAssembler(application.AssemblerConfig{
		Network:         testNetwork,
		SecpCodeHash:    testCodeHash,
		CellDeps:        testCellDeps,
		DefaultUnit:     capacity.UnitShannon,
		MinCellCapacity: minCellCapacity,
	})
}

func target(t *testing.T, value string) domain.TargetOutput {
	return domain.TargetOutput{
		Address: newTestAccount(t).address,
		Amount:  value,
		Unit:    capacity.UnitShannon,
	}
}

func randomTxHash() string {
	return "0x" + randomHex(32)
}

func randomHex(len int) string {
	b := make([]byte, len)
	//nolint
	rand.Read(b)
	return hex.EncodeToString(b)
}
