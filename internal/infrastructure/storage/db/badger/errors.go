package dbbadger

import "errors"

var (
	// ErrCellNotFound ...
	ErrCellNotFound = errors.New("cell not found")
)
