package db_test

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
	dbbadger "github.com/hulin115/neuron/internal/infrastructure/storage/db/badger"
	"github.com/hulin115/neuron/internal/infrastructure/storage/db/inmemory"
	"github.com/hulin115/neuron/pkg/capacity"
	"github.com/stretchr/testify/require"
)

type repoManager struct {
	Name string
	ports.RepoManager
}

func createRepoManagers(t *testing.T) []repoManager {
	badgerDBManager, err := dbbadger.NewRepoManager("", nil)
	require.NoError(t, err)

	return []repoManager{
		{"badger", badgerDBManager},
		{"inmemory", inmemory.NewRepoManager()},
	}
}

func makeRandomCell(lockHash string) domain.Cell {
	lock := domain.Script{
		CodeHash: "0x" + randomHex(32),
		Args:     []string{"0x" + randomHex(20)},
	}
	return domain.NewCell(
		domain.OutPoint{TxHash: "0x" + randomHex(32), Index: uint32(randomIntInRange(0, 10))},
		capacity.FromUint64(uint64(randomIntInRange(61, 1000))*100000000),
		lock, lockHash, nil, "",
	)
}

func makeRandomCells(lockHash string, num int) []domain.Cell {
	cells := make([]domain.Cell, 0, num)
	for i := 0; i < num; i++ {
		cells = append(cells, makeRandomCell(lockHash))
	}
	return cells
}

func makeRandomWallet(t *testing.T) *domain.Wallet {
	w, err := domain.NewWallet(
		randomHex(8),
		domain.Addresses{
			Receiving: []domain.AddressInfo{{Address: "ckb1r", LockHash: "0x" + randomHex(32)}},
			Change:    []domain.AddressInfo{{Address: "ckb1c", LockHash: "0x" + randomHex(32)}},
		},
		domain.Keystore{Version: 1, CipherText: randomHex(64)},
	)
	require.NoError(t, err)
	return w
}

func randomHex(len int) string {
	return hex.EncodeToString(randomBytes(len))
}

func randomBytes(len int) []byte {
	b := make([]byte, len)
	//nolint
	rand.Read(b)
	return b
}

func randomIntInRange(min, max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	return int(n.Int64()) + min
}
