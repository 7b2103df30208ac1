package domain

import "github.com/hulin115/neuron/pkg/capacity"

const (
	// MinCellCapacityValue is the footprint in shannons of the smallest
	// spendable cell: a secp256k1 locked cell with no data and no type script.
	// The same value is used as the minimum change, whatever the lock of the
	// receiving output.
	MinCellCapacityValue = "6100000000"

	// DefaultSince is the since field of every input built by the wallet.
	DefaultSince = "0"
	// TxVersion is the version of the transactions built by the wallet.
	TxVersion = "0"

	// DepTypeDepGroup is the dep type of the secp256k1 cell dep.
	DepTypeDepGroup = "dep_group"
	// DepTypeCode is the dep type for cell deps referencing code directly.
	DepTypeCode = "code"
)

// MinCellCapacity returns MinCellCapacityValue as a Capacity.
func MinCellCapacity() capacity.Capacity {
	return capacity.MustParse(MinCellCapacityValue)
}
