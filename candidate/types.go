package candidate

import (
	"errors"

	"github.com/ballpuzzle-labs/fccsolver/bitset"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
)

// Sentinel errors for candidate generation.
var (
	// ErrEmptyContainer is returned when Generate is called with no cells.
	ErrEmptyContainer = errors.New("candidate: empty container")

	// ErrUnknownLabel is returned when an active piece label is not
	// present in the supplied library.
	ErrUnknownLabel = errors.New("candidate: unknown piece label")
)

// Candidate is a single legal placement: a piece orientation translated
// so that all of its cells fall inside the container (spec.md §3's
// Placement, restricted to those that fit).
type Candidate struct {
	// Piece is the piece label this candidate instantiates.
	Piece string

	// Ori is the orientation index within that piece's Library entry.
	Ori int

	// Translation is the vector added to the orientation's cells to
	// produce Cells (anchor - reference atom, per spec.md §4.3 step 3).
	Translation lattice.Cell

	// Cells is the set of container cells this candidate covers.
	Cells []lattice.Cell

	// Covered is Cells expressed as a bitset over container cell
	// indices, for O(words) intersection tests during search.
	Covered *bitset.Set
}

// Index holds the generated candidate list plus the per-cell coverage
// index ("covers-by-cell" in spec.md §4.3): CoversByCell[i] lists the
// indices into Candidates of every candidate covering container cell i.
type Index struct {
	Candidates   []Candidate
	CoversByCell [][]int
	CellIndex    map[lattice.Cell]int
	Cells        []lattice.Cell
}

// NumCells returns the container size S.
func (ix *Index) NumCells() int {
	return len(ix.Cells)
}
