package lattice

import "sort"

// normalize translates cells so that their lexicographic minimum (by I,
// then J, then K) sits at the origin, then returns them sorted
// lexicographically. The input slice is not mutated.
func normalize(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	copy(out, cells)
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

// lessCells reports whether a sorts lexicographically before b,
// comparing element by element (both must already be sorted and of
// equal length for this to define canonical minimality; Canonicalize and
// SymmetryGroup only ever compare same-length, same-cell-set rotations
// of one another so this invariant always holds at call sites).
func lessCells(a, b []Cell) bool {
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

// Canonicalize returns the orbit-minimal representative of cells under
// the full 24-rotation group: for each rotation, rotate, translate the
// minimum coordinate to the origin, sort; return the lexicographically
// smallest of the 24 results. Two cell-sets share a canonical form iff
// they are related by a lattice rotation plus a translation.
//
// canon(canon(C)) == canon(C), and canon(R*C) == canon(C) for any
// rotation R in Rotations, by construction.
func Canonicalize(cells []Cell) []Cell {
	return CanonicalizeOver(cells, Rotations[:])
}

// CanonicalizeOver is Canonicalize generalised to an arbitrary rotation
// group, used by the solution-signature layer with G(container) instead
// of the full 24-group (spec.md §4.7).
func CanonicalizeOver(cells []Cell, group []Rotation) []Cell {
	if len(cells) == 0 {
		return nil
	}

	var best []Cell
	for _, r := range group {
		rotated := make([]Cell, len(cells))
		for i, c := range cells {
			rotated[i] = r.Apply(c)
		}
		normalized := normalize(rotated)
		if best == nil || lessCells(normalized, best) {
			best = normalized
		}
	}
	return best
}

// SymmetryGroup returns the subset of the 24 rotations that map the
// given cell-set onto itself (the container's own stabiliser, G(container)
// in spec.md §4.1). The input need not be normalised; membership is
// translation-sensitive, matching the container's own coordinates.
func SymmetryGroup(cells []Cell) []Rotation {
	set := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}

	var group []Rotation
	for _, r := range Rotations {
		if mapsSetToItself(set, r) {
			group = append(group, r)
		}
	}
	return group
}

// mapsSetToItself reports whether rotation r maps every cell in set to
// another cell in set (and therefore, since r is a bijection on the
// lattice, maps set onto itself).
func mapsSetToItself(set map[Cell]struct{}, r Rotation) bool {
	for c := range set {
		if _, ok := set[r.Apply(c)]; !ok {
			return false
		}
	}
	return true
}
