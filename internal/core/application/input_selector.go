package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/pkg/capacity"
	log "github.com/sirupsen/logrus"
)

// Selection is the outcome of a successful input selection.
type Selection struct {
	Inputs []domain.Input
	Total  capacity.Capacity
}

// Change returns the capacity left once required is paid.
func (s *Selection) Change(required capacity.Capacity) capacity.Capacity {
	return s.Total.Sub(required)
}

type InputSelector interface {
	// GatherInputs selects the live cells of the given lock hashes covering
	// target plus fee, leaving either no change or a change big enough to
	// be a cell on its own.
	GatherInputs(
		ctx context.Context,
		target capacity.Capacity,
		lockHashes []string,
		fee capacity.Capacity,
		skipDataAndType bool,
	) (*Selection, error)
}

type inputSelector struct {
	cellRepository  domain.CellRepository
	minCellCapacity capacity.Capacity
}

func NewInputSelector(
	cellRepository domain.CellRepository,
	minCellCapacity capacity.Capacity,
) InputSelector {
	return &inputSelector{cellRepository, minCellCapacity}
}

func (s *inputSelector) GatherInputs(
	ctx context.Context,
	target capacity.Capacity,
	lockHashes []string,
	fee capacity.Capacity,
	skipDataAndType bool,
) (*Selection, error) {
	if target.LessThan(s.minCellCapacity) {
		return nil, fmt.Errorf(
			"%w: %s is lower than the minimum cell capacity %s",
			domain.ErrInvalidAmount, target, s.minCellCapacity,
		)
	}
	if fee.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative fee %s", domain.ErrInvalidAmount, fee)
	}

	cells, err := s.cellRepository.GetCells(ctx, domain.CellQuery{
		LockHashes:      lockHashes,
		Status:          domain.CellStatusLive,
		SkipDataAndType: skipDataAndType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query live cells: %w", err)
	}

	required := target.Add(fee)
	selection, err := SelectInputs(cells, required, s.minCellCapacity)
	if err != nil {
		return nil, err
	}

	log.Debugf(
		"selected %d out of %d live cells, total %s for required %s",
		len(selection.Inputs), len(cells), selection.Total, required,
	)
	return selection, nil
}

// SelectInputs accumulates cells in ascending order of capacity until their
// total covers required with either zero change or a change of at least
// minChange. Cells with the same capacity keep their relative order.
func SelectInputs(
	cells []domain.Cell, required, minChange capacity.Capacity,
) (*Selection, error) {
	sorted := make([]domain.Cell, len(cells))
	copy(sorted, cells)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity.LessThan(sorted[j].Capacity)
	})

	inputs := make([]domain.Input, 0)
	total := capacity.Zero()
	for i := range sorted {
		c := sorted[i]
		inputs = append(inputs, c.ToInput())
		total = total.Add(c.Capacity)

		diff := total.Sub(required)
		if diff.IsZero() || diff.Cmp(minChange) >= 0 {
			return &Selection{Inputs: inputs, Total: total}, nil
		}
	}

	if total.LessThan(required) {
		return nil, fmt.Errorf(
			"%w: required %s, available %s",
			domain.ErrCapacityNotEnough, required, total,
		)
	}
	return nil, fmt.Errorf(
		"%w: change %s is lower than %s",
		domain.ErrCapacityNotEnoughForChange, total.Sub(required), minChange,
	)
}
