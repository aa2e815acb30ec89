package lattice

// Rotations is the fixed table of the 24 proper rotations (determinant +1)
// that permute Neighbors into itself. It is built once, at package
// initialisation, by the same construction the reference solver uses:
// try every ordered triple of neighbour vectors as rotation columns,
// keep those with determinant +1 that carry the full neighbour set into
// itself, and deduplicate.
//
// This is the "static, module-level constant initialised at program
// start" called for by spec.md §9's Design Notes; a systems-language
// const array would do here, but Go has no const array-of-struct
// literal with computed values, so an init-time var is the idiomatic
// substitute.
var Rotations [24]Rotation

func init() {
	Rotations = computeRotations()
}

// computeRotations enumerates all ordered triples (c1, c2, c3) of
// neighbour vectors, builds the matrix with those as columns, filters by
// determinant +1 and by "maps Neighbors to Neighbors", and deduplicates.
// The reference implementation asserts exactly 24 survive; this function
// panics if that invariant is violated, since the neighbour set is a
// fixed package constant and a mismatch indicates a coding error, not a
// runtime condition callers can recover from.
func computeRotations() [24]Rotation {
	var out []Rotation
	seen := make(map[Rotation]struct{})

	for _, c1 := range Neighbors {
		for _, c2 := range Neighbors {
			for _, c3 := range Neighbors {
				m := Rotation{
					{c1.I, c2.I, c3.I},
					{c1.J, c2.J, c3.J},
					{c1.K, c2.K, c3.K},
				}
				if det3(m) != 1 {
					continue
				}
				if !preservesNeighbors(m) {
					continue
				}
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				out = append(out, m)
			}
		}
	}

	if len(out) != 24 {
		panic("lattice: expected exactly 24 FCC rotations")
	}

	var table [24]Rotation
	copy(table[:], out)
	return table
}

// det3 computes the determinant of a 3x3 integer matrix.
func det3(m Rotation) int {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// preservesNeighbors reports whether m maps every neighbour vector to
// another neighbour vector, i.e. whether m is a symmetry of the lattice.
func preservesNeighbors(m Rotation) bool {
	for _, n := range Neighbors {
		if _, ok := neighborSet[m.Apply(n)]; !ok {
			return false
		}
	}
	return true
}
