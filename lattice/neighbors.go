package lattice

// Neighbors is the fixed 12-element rhombohedral FCC neighbour set: two
// cells are FCC-neighbours iff their difference is one of these vectors.
//
// This fixes the ambiguity noted in spec.md §9 ("the source has multiple
// definitions of the FCC 12-neighbour set... this specification fixes the
// set to the 12 rhombohedral vectors"): exactly these 12 vectors, no more.
var Neighbors = [12]Cell{
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{-1, 1, 0}, {0, -1, 1}, {1, 0, -1},
	{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
	{1, -1, 0}, {0, 1, -1}, {-1, 0, 1},
}

// IsNeighbor reports whether a and b differ by one of the 12 neighbour
// vectors.
func IsNeighbor(a, b Cell) bool {
	d := b.Sub(a)
	for _, n := range Neighbors {
		if n == d {
			return true
		}
	}
	return false
}

// neighborSet indexes Neighbors for O(1) membership tests, used by the
// rotation-table construction in rotations.go.
var neighborSet = func() map[Cell]struct{} {
	s := make(map[Cell]struct{}, len(Neighbors))
	for _, n := range Neighbors {
		s[n] = struct{}{}
	}
	return s
}()
