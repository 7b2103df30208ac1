package application

import (
	"context"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
)

type CellService interface {
	// ImportCells adds cells discovered by an external indexer.
	ImportCells(ctx context.Context, cells []domain.Cell) error
	// ListCells returns the cells of the wallet, or of the current one if
	// walletID is empty, with the given status.
	ListCells(
		ctx context.Context, walletID string, status domain.CellStatus,
	) ([]domain.Cell, error)
	// AllBlake160s returns the unique lock args of all stored cells.
	AllBlake160s(ctx context.Context) ([]string, error)
}

type cellService struct {
	repoManager ports.RepoManager
	settings    ports.Settings
}

func NewCellService(
	repoManager ports.RepoManager,
	settings ports.Settings,
) CellService {
	return &cellService{repoManager, settings}
}

func (c *cellService) ImportCells(
	ctx context.Context, cells []domain.Cell,
) error {
	normalized := make([]domain.Cell, 0, len(cells))
	for _, cc := range cells {
		cell := domain.NewCell(
			cc.OutPoint, cc.Capacity, cc.Lock, cc.LockHash, cc.TypeScript, cc.Data,
		)
		if len(cc.Status) > 0 {
			cell.Status = cc.Status
		}
		if !cell.Status.IsValid() {
			return ErrInvalidStatus
		}
		normalized = append(normalized, cell)
	}
	return c.repoManager.CellRepository().AddCells(ctx, normalized)
}

func (c *cellService) ListCells(
	ctx context.Context, walletID string, status domain.CellStatus,
) ([]domain.Cell, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	w, err := getWallet(ctx, c.repoManager.WalletRepository(), walletID)
	if err != nil {
		return nil, err
	}
	return c.repoManager.CellRepository().GetCells(ctx, domain.CellQuery{
		LockHashes:      w.LockHashes(),
		Status:          status,
		SkipDataAndType: c.settings.SkipDataAndType(),
	})
}

func (c *cellService) AllBlake160s(ctx context.Context) ([]string, error) {
	return c.repoManager.CellRepository().AllBlake160s(ctx)
}
