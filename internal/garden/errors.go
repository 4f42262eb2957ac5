package garden

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownObject     = errors.New("unknown garden object")
	ErrCatalogTooLarge   = errors.New("catalog exceeds single-digit encoding")
	ErrEmptyCatalog      = errors.New("catalog has no ground object")
	ErrUnknownVegetation = errors.New("unknown vegetation")
	ErrGardenExists      = errors.New("garden already exists")
	ErrGardenNotFound    = errors.New("garden not found")
	ErrInvalidName       = errors.New("invalid garden name")
	ErrMalformedMetadata = errors.New("malformed garden metadata")
)

// FormatError reports a malformed map file. Line and Column are 1-based;
// Column is 0 when the whole line is at fault.
type FormatError struct {
	Path   string
	Line   int
	Column int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

// BoundsError reports a cell outside the grid.
type BoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) outside %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}
