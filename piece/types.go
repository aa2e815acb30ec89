package piece

import (
	"errors"

	"github.com/ballpuzzle-labs/fccsolver/lattice"
)

// Sentinel errors for piece/library construction.
var (
	// ErrEmptyBase is returned when a piece's base shape has no cells.
	ErrEmptyBase = errors.New("piece: base shape is empty")

	// ErrUnknownLabel is returned when a library is queried for a label
	// it does not contain.
	ErrUnknownLabel = errors.New("piece: unknown piece label")

	// ErrDuplicateLabel names a duplicated piece label. NewLibrary never
	// returns it: its map input cannot hold one label twice.
	ErrDuplicateLabel = errors.New("piece: duplicate piece label")
)

// Piece is a label plus its base shape and the derived ordered list of
// distinct orientations. Orientations[i] is the oriented shape addressed
// by orientation index i elsewhere in this module (candidate, signature,
// solution records); that index is stable for the lifetime of the
// Library that produced it.
type Piece struct {
	Label        string
	Base         []lattice.Cell
	Orientations [][]lattice.Cell
}

// Size returns the number of cells in one instance of this piece (the
// per-piece cell-count p referenced throughout spec.md §4.8).
func (p *Piece) Size() int {
	return len(p.Base)
}

// Library is an immutable, built-once collection of pieces keyed by
// label. Use NewLibrary to construct one; Library itself exposes only
// read operations, mirroring core.Graph's "read-only after construction"
// discipline for precomputed tables.
type Library struct {
	pieces map[string]*Piece
	order  []string // ascending label order, for deterministic iteration
}

// Get returns the piece registered under label, or ErrUnknownLabel.
func (l *Library) Get(label string) (*Piece, error) {
	p, ok := l.pieces[label]
	if !ok {
		return nil, ErrUnknownLabel
	}
	return p, nil
}

// Labels returns the piece labels in ascending order.
func (l *Library) Labels() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Len returns the number of distinct pieces in the library.
func (l *Library) Len() int {
	return len(l.order)
}
