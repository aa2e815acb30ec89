package candidate

import (
	"sort"
	"strconv"
	"strings"
)

// coverageKey returns a stable string key identifying exactly which
// container cells c covers (its bit indices, comma-joined). Two
// candidates with the same coverageKey cover identical container cells,
// regardless of which piece or orientation produced them.
func coverageKey(c *Candidate) string {
	bits := c.Covered.Bits()
	parts := make([]string, len(bits))
	for i, b := range bits {
		parts[i] = strconv.Itoa(b)
	}
	return strings.Join(parts, ",")
}

// Dedup collapses candidates that are exact duplicates: same piece label
// and same covered cells. This arises naturally from the generation
// algorithm in spec.md §4.3 step 3, which revisits the same (piece,
// orientation, translation) once per reference atom in the orientation —
// a shape with k cells produces up to k redundant copies of the same
// placement. Dedup is optional for DFS (it only affects search-space
// size) but mandatory for DLX row construction (spec.md §4.3).
//
// The first occurrence (in generation order: piece, then orientation,
// then anchor, then reference atom) is kept, so Dedup is deterministic.
func Dedup(ix *Index) *Index {
	type key struct {
		piece string
		cov   string
	}
	seen := make(map[key]int, len(ix.Candidates))

	out := &Index{
		Cells:     ix.Cells,
		CellIndex: ix.CellIndex,
	}
	out.CoversByCell = make([][]int, len(ix.Cells))

	for _, c := range ix.Candidates {
		k := key{piece: c.Piece, cov: coverageKey(&c)}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = len(out.Candidates)
		out.Candidates = append(out.Candidates, c)
	}

	for idx := range out.Candidates {
		out.Candidates[idx].Covered.ForEach(func(cell int) bool {
			out.CoversByCell[cell] = append(out.CoversByCell[cell], idx)
			return true
		})
	}

	return out
}

// ReduceDominance further collapses candidates that cover the exact same
// container cells across different pieces/orientations, keeping only the
// one with the lexicographically smallest (piece label, orientation
// index) — an arbitrary but deterministic dominance order. This removes
// exact duplicates across pieces whose chosen orientations happen to
// cover identical cells (spec.md §4.3's "Dominance reduction"), which
// matters for DLX: two rows with identical columns are redundant, and
// keeping both only slows Algorithm X without changing which solutions
// exist.
//
// ReduceDominance should be applied after Dedup.
func ReduceDominance(ix *Index) *Index {
	best := make(map[string]int, len(ix.Candidates)) // coverageKey -> index into ix.Candidates

	for i, c := range ix.Candidates {
		k := coverageKey(&c)
		cur, ok := best[k]
		if !ok {
			best[k] = i
			continue
		}
		if dominanceLess(ix.Candidates[i], ix.Candidates[cur]) {
			best[k] = i
		}
	}

	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := &Index{
		Cells:        ix.Cells,
		CellIndex:    ix.CellIndex,
		CoversByCell: make([][]int, len(ix.Cells)),
	}
	for _, k := range keys {
		c := ix.Candidates[best[k]]
		idx := len(out.Candidates)
		out.Candidates = append(out.Candidates, c)
		c.Covered.ForEach(func(cell int) bool {
			out.CoversByCell[cell] = append(out.CoversByCell[cell], idx)
			return true
		})
	}
	return out
}

// dominanceLess defines the "best" candidate between two rows with
// identical coverage: ascending piece label, then ascending orientation
// index.
func dominanceLess(a, b Candidate) bool {
	if a.Piece != b.Piece {
		return a.Piece < b.Piece
	}
	return a.Ori < b.Ori
}
