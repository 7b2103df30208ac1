package domain

import (
	"fmt"
	"strings"

	"github.com/hulin115/neuron/pkg/capacity"
)

// CellStatus is the lifecycle state of a cell as seen by the wallet.
type CellStatus string

const (
	// CellStatusLive marks a confirmed, unspent cell.
	CellStatusLive CellStatus = "live"
	// CellStatusSent marks a cell created by a transaction that has been sent
	// but not yet committed.
	CellStatusSent CellStatus = "sent"
	// CellStatusPending marks a live cell already used as input of a sent
	// transaction.
	CellStatusPending CellStatus = "pending"
	// CellStatusDead marks a spent cell.
	CellStatusDead CellStatus = "dead"
)

// IsValid returns whether s is one of the known statuses.
func (s CellStatus) IsValid() bool {
	switch s {
	case CellStatusLive, CellStatusSent, CellStatusPending, CellStatusDead:
		return true
	}
	return false
}

// OutPoint identifies a cell by the hash of the transaction that created it
// and its output index.
type OutPoint struct {
	TxHash string `json:"tx_hash"`
	Index  uint32 `json:"index,string"`
}

// Key returns the storage key of the out-point.
func (o OutPoint) Key() string {
	return fmt.Sprintf("%s:%d", o.TxHash, o.Index)
}

// Script is a lock or type script.
type Script struct {
	CodeHash string   `json:"code_hash"`
	Args     []string `json:"args"`
}

// Cell is a UTXO-like record with explicit capacity, lock and optional data
// and type script.
type Cell struct {
	OutPoint   OutPoint          `json:"out_point"`
	Capacity   capacity.Capacity `json:"capacity"`
	Lock       Script            `json:"lock"`
	LockHash   string            `json:"lock_hash"`
	TypeScript *Script           `json:"type,omitempty"`
	Data       string            `json:"data,omitempty"`
	HasData    bool              `json:"has_data"`
	Status     CellStatus        `json:"status"`
}

// NewCell returns a live cell, deriving HasData from the data payload.
func NewCell(
	outPoint OutPoint, value capacity.Capacity,
	lock Script, lockHash string, typeScript *Script, data string,
) Cell {
	return Cell{
		OutPoint:   outPoint,
		Capacity:   value,
		Lock:       lock,
		LockHash:   lockHash,
		TypeScript: typeScript,
		Data:       data,
		HasData:    hasData(data),
		Status:     CellStatusLive,
	}
}

func hasData(data string) bool {
	d := strings.TrimPrefix(strings.TrimSpace(data), "0x")
	return len(d) > 0
}

// Key returns the storage key of the cell.
func (c *Cell) Key() string {
	return c.OutPoint.Key()
}

// IsLive returns whether the cell can be spent.
func (c *Cell) IsLive() bool {
	return c.Status == CellStatusLive
}

// IsPlain returns whether the cell carries neither data nor a type script,
// that is whether its whole capacity is spendable as plain capacity.
func (c *Cell) IsPlain() bool {
	return !c.HasData && c.TypeScript == nil
}

// MarkPending moves a live cell to pending, once used as input of a sent
// transaction.
func (c *Cell) MarkPending() error {
	if !c.IsLive() {
		return fmt.Errorf("%w: %s is %s", ErrCellNotLive, c.Key(), c.Status)
	}
	c.Status = CellStatusPending
	return nil
}

// ToInput returns the input spending the cell.
func (c *Cell) ToInput() Input {
	return Input{
		PreviousOutput: c.OutPoint,
		Since:          DefaultSince,
		Lock:           c.Lock,
		LockHash:       c.LockHash,
		Capacity:       c.Capacity,
	}
}

// CellQuery defines the filters for listing cells.
type CellQuery struct {
	LockHashes      []string
	Status          CellStatus
	SkipDataAndType bool
}

// Match returns whether the given cell satisfies the query.
func (q CellQuery) Match(c Cell) bool {
	if c.Status != q.Status {
		return false
	}
	if q.SkipDataAndType && !c.IsPlain() {
		return false
	}
	for _, h := range q.LockHashes {
		if h == c.LockHash {
			return true
		}
	}
	return false
}
