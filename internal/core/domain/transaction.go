package domain

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/hulin115/neuron/pkg/capacity"
)

// CellDep references the cell carrying the code of a script used by the
// transaction.
type CellDep struct {
	OutPoint OutPoint `json:"out_point"`
	DepType  string   `json:"dep_type"`
}

// Input spends a previously live cell.
type Input struct {
	PreviousOutput OutPoint          `json:"previous_output"`
	Since          string            `json:"since"`
	Lock           Script            `json:"lock"`
	LockHash       string            `json:"lock_hash"`
	Capacity       capacity.Capacity `json:"capacity"`
}

// Output is a cell created by a transaction.
type Output struct {
	Capacity   capacity.Capacity `json:"capacity"`
	Lock       Script            `json:"lock"`
	TypeScript *Script           `json:"type,omitempty"`
	Data       string            `json:"data"`
}

// TargetOutput is a payment requested by the caller, its amount is expressed
// in Unit and is normalized to shannons when assembling the transaction.
type TargetOutput struct {
	Address string        `json:"address"`
	Amount  string        `json:"capacity"`
	Unit    capacity.Unit `json:"unit"`
}

// Witness is the authorization data of an input: public key, signature and
// the signature length encoded as 8 bytes little endian.
type Witness struct {
	Data []string `json:"data"`
}

// NewWitness builds the witness for the given compressed public key and
// signature.
func NewWitness(pubkey, signature []byte) Witness {
	size := make([]byte, 8)
	binary.LittleEndian.PutUint64(size, uint64(len(signature)))

	return Witness{
		Data: []string{
			"0x" + hex.EncodeToString(pubkey),
			"0x" + hex.EncodeToString(signature),
			"0x" + hex.EncodeToString(size),
		},
	}
}

// RawTransaction is the transaction as built by the wallet. Witnesses are
// empty until signed.
type RawTransaction struct {
	Version    string    `json:"version"`
	CellDeps   []CellDep `json:"deps"`
	HeaderDeps []string  `json:"header_deps"`
	Inputs     []Input   `json:"inputs"`
	Outputs    []Output  `json:"outputs"`
	Witnesses  []Witness `json:"witnesses"`
}

// InputsCapacity returns the total capacity of the inputs.
func (tx *RawTransaction) InputsCapacity() capacity.Capacity {
	values := make([]capacity.Capacity, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		values = append(values, in.Capacity)
	}
	return capacity.Sum(values...)
}

// OutputsCapacity returns the total capacity of the outputs.
func (tx *RawTransaction) OutputsCapacity() capacity.Capacity {
	values := make([]capacity.Capacity, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		values = append(values, out.Capacity)
	}
	return capacity.Sum(values...)
}

// Fee returns the implicit fee, inputs minus outputs.
func (tx *RawTransaction) Fee() capacity.Capacity {
	return tx.InputsCapacity().Sub(tx.OutputsCapacity())
}

// IsSigned returns whether there is one witness per input.
func (tx *RawTransaction) IsSigned() bool {
	return len(tx.Inputs) > 0 && len(tx.Witnesses) == len(tx.Inputs)
}

// SpentOutPoints returns the out-points of all inputs.
func (tx *RawTransaction) SpentOutPoints() []OutPoint {
	outPoints := make([]OutPoint, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		outPoints = append(outPoints, in.PreviousOutput)
	}
	return outPoints
}

// SignedTransaction is a transaction with one witness per input and the hash
// computed by the node before signing.
type SignedTransaction struct {
	Transaction *RawTransaction
	Hash        string
}
