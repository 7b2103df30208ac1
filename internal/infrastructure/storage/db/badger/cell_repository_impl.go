package dbbadger

import (
	"context"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type cellRepositoryImpl struct {
	store *badgerhold.Store
}

func NewCellRepositoryImpl(store *badgerhold.Store) domain.CellRepository {
	return cellRepositoryImpl{store}
}

func (r cellRepositoryImpl) AddCells(
	_ context.Context, cells []domain.Cell,
) error {
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		for i := range cells {
			c := cells[i]
			if err := r.store.TxInsert(tx, c.Key(), c); err != nil {
				if err == badgerhold.ErrKeyExists {
					continue
				}
				return err
			}
		}
		return nil
	})
}

func (r cellRepositoryImpl) GetCell(
	_ context.Context, outPoint domain.OutPoint,
) (*domain.Cell, error) {
	var cell domain.Cell
	if err := r.store.Get(outPoint.Key(), &cell); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cell, nil
}

func (r cellRepositoryImpl) GetLiveCell(
	ctx context.Context, outPoint domain.OutPoint,
) (*domain.Cell, error) {
	cell, err := r.GetCell(ctx, outPoint)
	if err != nil || cell == nil {
		return nil, err
	}
	if !cell.IsLive() {
		return nil, nil
	}
	return cell, nil
}

func (r cellRepositoryImpl) GetCells(
	_ context.Context, query domain.CellQuery,
) ([]domain.Cell, error) {
	if len(query.LockHashes) <= 0 {
		return []domain.Cell{}, nil
	}

	q := badgerhold.Where("LockHash").In(badgerhold.Slice(query.LockHashes)...).
		And("Status").Eq(query.Status)
	if query.SkipDataAndType {
		q = q.And("HasData").Eq(false).And("TypeScript").IsNil()
	}

	return r.findCells(q)
}

func (r cellRepositoryImpl) GetAllCells(_ context.Context) ([]domain.Cell, error) {
	return r.findCells(nil)
}

func (r cellRepositoryImpl) UpdateCells(
	_ context.Context, outPoints []domain.OutPoint,
	updateFn func(c *domain.Cell) (*domain.Cell, error),
) error {
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		for _, o := range outPoints {
			var cell domain.Cell
			if err := r.store.TxGet(tx, o.Key(), &cell); err != nil {
				if err == badgerhold.ErrNotFound {
					return fmt.Errorf("%w: %s", ErrCellNotFound, o.Key())
				}
				return err
			}
			updated, err := updateFn(&cell)
			if err != nil {
				return err
			}
			if err := r.store.TxUpdate(tx, o.Key(), *updated); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r cellRepositoryImpl) AllBlake160s(_ context.Context) ([]string, error) {
	cells, err := r.findCells(nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	blake160s := make([]string, 0)
	for _, c := range cells {
		if len(c.Lock.Args) <= 0 {
			continue
		}
		arg := c.Lock.Args[0]
		if _, ok := seen[arg]; ok {
			continue
		}
		seen[arg] = struct{}{}
		blake160s = append(blake160s, arg)
	}
	sort.Strings(blake160s)
	return blake160s, nil
}

func (r cellRepositoryImpl) findCells(
	query *badgerhold.Query,
) ([]domain.Cell, error) {
	var cells []domain.Cell
	if err := r.store.Find(&cells, query); err != nil {
		return nil, err
	}
	if cells == nil {
		cells = []domain.Cell{}
	}
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Key() < cells[j].Key()
	})
	return cells, nil
}
