package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hulin115/neuron/internal/core/domain"
)

// CellRepositoryImpl represents an in memory storage of cells
type CellRepositoryImpl struct {
	cells map[string]domain.Cell
	lock  *sync.RWMutex
}

// NewCellRepositoryImpl returns a new empty CellRepositoryImpl
func NewCellRepositoryImpl() *CellRepositoryImpl {
	return &CellRepositoryImpl{
		cells: map[string]domain.Cell{},
		lock:  &sync.RWMutex{},
	}
}

func (r CellRepositoryImpl) AddCells(
	_ context.Context, cells []domain.Cell,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, c := range cells {
		if _, ok := r.cells[c.Key()]; ok {
			continue
		}
		r.cells[c.Key()] = c
	}
	return nil
}

func (r CellRepositoryImpl) GetCell(
	_ context.Context, outPoint domain.OutPoint,
) (*domain.Cell, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	c, ok := r.cells[outPoint.Key()]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r CellRepositoryImpl) GetLiveCell(
	ctx context.Context, outPoint domain.OutPoint,
) (*domain.Cell, error) {
	c, err := r.GetCell(ctx, outPoint)
	if err != nil || c == nil {
		return nil, err
	}
	if !c.IsLive() {
		return nil, nil
	}
	return c, nil
}

func (r CellRepositoryImpl) GetCells(
	_ context.Context, query domain.CellQuery,
) ([]domain.Cell, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	cells := make([]domain.Cell, 0)
	for _, c := range r.cells {
		if query.Match(c) {
			cells = append(cells, c)
		}
	}
	sortByKey(cells)
	return cells, nil
}

func (r CellRepositoryImpl) GetAllCells(_ context.Context) ([]domain.Cell, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	cells := make([]domain.Cell, 0, len(r.cells))
	for _, c := range r.cells {
		cells = append(cells, c)
	}
	sortByKey(cells)
	return cells, nil
}

// UpdateCells updates either all or none of the given cells.
func (r CellRepositoryImpl) UpdateCells(
	_ context.Context, outPoints []domain.OutPoint,
	updateFn func(c *domain.Cell) (*domain.Cell, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	updated := make([]domain.Cell, 0, len(outPoints))
	for _, o := range outPoints {
		c, ok := r.cells[o.Key()]
		if !ok {
			return fmt.Errorf("%w: %s", ErrCellNotFound, o.Key())
		}
		u, err := updateFn(&c)
		if err != nil {
			return err
		}
		updated = append(updated, *u)
	}
	for i, o := range outPoints {
		r.cells[o.Key()] = updated[i]
	}
	return nil
}

func (r CellRepositoryImpl) AllBlake160s(_ context.Context) ([]string, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	seen := make(map[string]struct{})
	blake160s := make([]string, 0)
	for _, c := range r.cells {
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

func sortByKey(cells []domain.Cell) {
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Key() < cells[j].Key()
	})
}
