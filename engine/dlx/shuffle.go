package dlx

import (
	"sort"

	"github.com/ballpuzzle-labs/fccsolver/engine"
)

// collectRows lists every row-representative node currently linked
// under column c, in matrix order (c.down ... back to c's own node).
func collectRows(c *column) []*node {
	var out []*node
	for i := c.down; i != &c.node; i = i.down {
		out = append(out, i)
	}
	return out
}

// orderRows applies the configured tie-shuffle policy to the rows
// available for column c (spec.md §4.9's DLX row ordering).
func (st *searchState) orderRows(rows []*node) []*node {
	switch st.opts.Shuffle {
	case engine.ShuffleFull:
		out := append([]*node(nil), rows...)
		st.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out

	case engine.ShuffleTiesOnly:
		out := append([]*node(nil), rows...)
		// Rows whose candidate shares a piece label are considered tied:
		// group by label (stable base order), then shuffle within each
		// group only, leaving the relative order of distinct labels
		// untouched.
		sort.SliceStable(out, func(i, j int) bool {
			return st.pieceOf(out[i]) < st.pieceOf(out[j])
		})
		start := 0
		for start < len(out) {
			end := start + 1
			for end < len(out) && st.pieceOf(out[end]) == st.pieceOf(out[start]) {
				end++
			}
			group := out[start:end]
			st.rng.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })
			start = end
		}
		return out

	default: // engine.ShuffleNone
		return rows
	}
}

func (st *searchState) pieceOf(n *node) string {
	return st.ix.Candidates[st.placements[n.rowID].candidateID].Piece
}
