package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrEmptyCellSet names an empty cell set. No function in this
	// package returns it: Canonicalize, CanonicalizeOver and CID accept
	// an empty set.
	ErrEmptyCellSet = errors.New("lattice: empty cell set")
)

// Cell is an integer triple (i, j, k) denoting a site on the FCC lattice
// under its rhombohedral basis. Cell is a plain comparable value type: it
// can be used directly as a map key and compared with ==.
type Cell struct {
	I, J, K int
}

// NewCell constructs a Cell from three integer coordinates.
func NewCell(i, j, k int) Cell {
	return Cell{I: i, J: j, K: k}
}

// Add returns the componentwise sum c + o.
func (c Cell) Add(o Cell) Cell {
	return Cell{I: c.I + o.I, J: c.J + o.J, K: c.K + o.K}
}

// Sub returns the componentwise difference c - o.
func (c Cell) Sub(o Cell) Cell {
	return Cell{I: c.I - o.I, J: c.J - o.J, K: c.K - o.K}
}

// Less reports whether c sorts before o in lexicographic order (I, then J,
// then K). It defines the total order used throughout this module for
// deterministic canonicalisation.
func (c Cell) Less(o Cell) bool {
	if c.I != o.I {
		return c.I < o.I
	}
	if c.J != o.J {
		return c.J < o.J
	}
	return c.K < o.K
}

// Rotation is one of the 24 integer 3x3 matrices with determinant +1 that
// permute the FCC neighbour set. Rows are M[row][col].
type Rotation [3][3]int

// Apply returns the image of c under rotation m (standard integer
// matrix-vector multiply; the result is always an integer Cell because m
// and c are integer-valued).
func (m Rotation) Apply(c Cell) Cell {
	return Cell{
		I: m[0][0]*c.I + m[0][1]*c.J + m[0][2]*c.K,
		J: m[1][0]*c.I + m[1][1]*c.J + m[1][2]*c.K,
		K: m[2][0]*c.I + m[2][1]*c.J + m[2][2]*c.K,
	}
}
