package inmemory

import "errors"

// Cell errors
var (
	// ErrCellNotFound ...
	ErrCellNotFound = errors.New("cell not found")
)
