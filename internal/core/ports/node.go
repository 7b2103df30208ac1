package ports

import (
	"context"

	"github.com/hulin115/neuron/internal/core/domain"
)

// Node is the chain node the wallet talks to for hashing and broadcasting
// transactions.
type Node interface {
	// ComputeTransactionHash returns the hash of the given raw transaction,
	// witnesses excluded.
	ComputeTransactionHash(
		ctx context.Context, tx *domain.RawTransaction,
	) (string, error)
	// SendTransaction broadcasts the signed transaction and returns the hash
	// assigned by the node. A rejection wraps domain.ErrBroadcastRejected.
	SendTransaction(
		ctx context.Context, tx *domain.RawTransaction,
	) (string, error)
	// GetTipBlockNumber returns the height of the chain tip.
	GetTipBlockNumber(ctx context.Context) (uint64, error)
}
