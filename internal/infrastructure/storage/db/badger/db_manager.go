package dbbadger

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"
)

type repoManager struct {
	store *badgerhold.Store

	cellRepository        domain.CellRepository
	walletRepository      domain.WalletRepository
	transactionRepository domain.TransactionRepository
}

// NewRepoManager opens (or creates if not exists) the badger store on disk.
// An empty baseDbDir opens an in-memory store.
func NewRepoManager(
	baseDbDir string, logger badger.Logger,
) (ports.RepoManager, error) {
	var dbDir string
	if len(baseDbDir) > 0 {
		dbDir = filepath.Join(baseDbDir, "wallet")
	}

	store, err := OpenStore(dbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening wallet db: %w", err)
	}

	return &repoManager{
		store:                 store,
		cellRepository:        NewCellRepositoryImpl(store),
		walletRepository:      NewWalletRepositoryImpl(store),
		transactionRepository: NewTransactionRepositoryImpl(store),
	}, nil
}

func (d *repoManager) CellRepository() domain.CellRepository {
	return d.cellRepository
}

func (d *repoManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

func (d *repoManager) TransactionRepository() domain.TransactionRepository {
	return d.transactionRepository
}

func (d *repoManager) Close() {
	d.store.Close()
}

// OpenStore opens the badgerhold store at dbDir, in memory if dbDir is
// empty. On disk stores get their value log garbage collected periodically.
func OpenStore(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	if !isInMemory {
		ticker := time.NewTicker(30 * time.Minute)

		go func() {
			for {
				<-ticker.C
				if err := db.Badger().RunValueLogGC(0.5); err != nil &&
					err != badger.ErrNoRewrite {
					log.Error(err)
				}
			}
		}()
	}

	return db, nil
}
