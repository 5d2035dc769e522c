// Package cubeerr defines the sentinel error kinds shared by every layer of
// the solver. Callers compare with errors.Is; nothing here is ever returned
// from inside the search itself, only from parsing and conversion at the
// edges of the system.
package cubeerr

import "errors"

var (
	// ErrInvalidColor is returned when a facelet character is not one of U,R,F,D,L,B.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidCorner is returned when a corner name or index is out of range.
	ErrInvalidCorner = errors.New("invalid corner")
	// ErrInvalidEdge is returned when an edge name or index is out of range.
	ErrInvalidEdge = errors.New("invalid edge")
	// ErrInvalidMove is returned when move notation cannot be parsed.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInvalidScramble is returned when a scramble string contains a bad move.
	ErrInvalidScramble = errors.New("invalid scramble")
	// ErrInvalidFaceletString is returned when a facelet string is not exactly
	// 54 characters drawn from the 6 color letters.
	ErrInvalidFaceletString = errors.New("invalid facelet string")
	// ErrInvalidFaceletValue is returned when a facelet string is well-formed
	// but does not correspond to any physically assemblable cube.
	ErrInvalidFaceletValue = errors.New("invalid facelet value")
	// ErrInvalidCubieValue is returned when a CubieCube fails its solvability
	// invariant (bad permutation parity or orientation sum).
	ErrInvalidCubieValue = errors.New("invalid cubie value")
	// ErrTableNotFound is returned when a move/pruning table blob cannot be read.
	ErrTableNotFound = errors.New("table not found")
	// ErrTableCorrupt is returned when a table blob is malformed or has
	// trailing bytes after the expected content.
	ErrTableCorrupt = errors.New("table corrupt")
)
