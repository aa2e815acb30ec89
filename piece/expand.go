package piece

import (
	"sort"

	"github.com/ballpuzzle-labs/fccsolver/lattice"
)

// normalizeToOrigin translates shape so its lexicographic minimum cell
// sits at the origin, returning a freshly sorted copy. Unlike
// lattice.Canonicalize, this only normalises one shape at a time; it does
// not minimise over rotations (Expand calls the rotation loop itself, one
// rotation per candidate orientation, so it can deduplicate identical
// post-rotation shapes rather than collapsing all 24 into one).
func normalizeToOrigin(shape []lattice.Cell) []lattice.Cell {
	out := make([]lattice.Cell, len(shape))
	copy(out, shape)
	if len(out) == 0 {
		return out
	}
	min := out[0]
	for _, c := range out[1:] {
		if c.Less(min) {
			min = c
		}
	}
	for i := range out {
		out[i] = out[i].Sub(min)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// cellsLess reports whether a sorts lexicographically before b, comparing
// element by element then by length. Both must be normalized (sorted)
// already.
func cellsLess(a, b []lattice.Cell) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i].Less(b[i])
		}
	}
	return len(a) < len(b)
}

// cellsEqual reports whether a and b contain the same cells in the same
// order (both normalized).
func cellsEqual(a, b []lattice.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Expand computes the distinct orientations of base: for each of the 24
// lattice rotations, rotate the base shape, translate it to the origin,
// then sort and deduplicate across all 24 results. The output ordering is
// deterministic (ascending lexicographic order of the normalized shape),
// which fixes the orientation index used everywhere else in this module.
//
// Re-expanding an already-expanded orientation is idempotent: rotating any
// orientation by a further lattice rotation yields a shape already present
// in the set (spec.md §8's "re-expanding orientations is idempotent").
func Expand(base []lattice.Cell) ([][]lattice.Cell, error) {
	if len(base) == 0 {
		return nil, ErrEmptyBase
	}

	var distinct [][]lattice.Cell
	for _, r := range lattice.Rotations {
		rotated := make([]lattice.Cell, len(base))
		for i, c := range base {
			rotated[i] = r.Apply(c)
		}
		normalized := normalizeToOrigin(rotated)

		dup := false
		for _, existing := range distinct {
			if cellsEqual(existing, normalized) {
				dup = true
				break
			}
		}
		if !dup {
			distinct = append(distinct, normalized)
		}
	}

	sort.Slice(distinct, func(i, j int) bool { return cellsLess(distinct[i], distinct[j]) })
	return distinct, nil
}
