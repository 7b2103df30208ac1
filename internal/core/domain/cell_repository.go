package domain

import "context"

// CellRepository is the store of the cells owned by the wallets.
type CellRepository interface {
	// AddCells stores the given cells, existing ones are left untouched.
	AddCells(ctx context.Context, cells []Cell) error
	// GetCell returns the cell for the out-point, or nil if not found.
	GetCell(ctx context.Context, outPoint OutPoint) (*Cell, error)
	// GetLiveCell returns the cell for the out-point only if it's live.
	GetLiveCell(ctx context.Context, outPoint OutPoint) (*Cell, error)
	// GetCells returns all cells matching the query, in no specific order.
	GetCells(ctx context.Context, query CellQuery) ([]Cell, error)
	// GetAllCells returns every stored cell.
	GetAllCells(ctx context.Context) ([]Cell, error)
	// UpdateCells applies updateFn to each of the given cells and stores
	// the results. Either all or none of the cells are updated.
	UpdateCells(
		ctx context.Context, outPoints []OutPoint,
		updateFn func(c *Cell) (*Cell, error),
	) error
	// AllBlake160s returns the unique lock args of the stored cells.
	AllBlake160s(ctx context.Context) ([]string, error)
}
