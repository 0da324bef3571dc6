package tilewall

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSpaceFound is returned when placement exhausts its retry bound
	// without finding a free, connected cell. No tile is created.
	ErrNoSpaceFound = errors.New("no space found")

	// ErrDisconnected is returned when a move would leave the tile with no
	// occupied neighbor of its family.
	ErrDisconnected = errors.New("cell is not adjacent to the wall")

	// ErrUnknownTile is returned for operations on an id the store does not hold.
	ErrUnknownTile = errors.New("unknown tile")

	// ErrUnknownFamily flags a cell or shape outside the closed family set.
	ErrUnknownFamily = errors.New("unknown grid family")

	// ErrFamilyMismatch is returned when a target cell's family differs from
	// the tile's shape family.
	ErrFamilyMismatch = errors.New("grid family mismatch")

	// ErrOutOfBounds is returned when a target cell lies beyond the layout's
	// extent.
	ErrOutOfBounds = errors.New("cell is outside the wall")

	// ErrUnknownShape is returned by ParseShape.
	ErrUnknownShape = errors.New("unknown shape")
)

// PlacementError describes a failed placement.
type PlacementError struct {
	Requested Cell
	Attempts  int
	Err       error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("place tile near %v after %d attempts: %v", e.Requested, e.Attempts, e.Err)
}

func (e *PlacementError) Unwrap() error { return e.Err }

// debugAssert panics with a formatted message when debug is set. In release
// mode the caller falls through to its no-op path.
func debugAssert(debug bool, format string, args ...any) {
	if debug {
		panic(fmt.Sprintf("tilewall debug: "+format, args...))
	}
}
