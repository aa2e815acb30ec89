package dfs

import (
	"sort"

	"github.com/ballpuzzle-labs/fccsolver/bitset"
	"github.com/ballpuzzle-labs/fccsolver/candidate"
)

// pickTargetCell chooses the empty cell with the fewest currently
// feasible candidates covering it ("holes-first" MRV), grounded on the
// reference implementation's engine_c/ordering.py pick_target_cell.
// Ties are broken by ascending cell index, keeping the search
// deterministic without needing a shuffle. Returns -1 if there is no
// empty cell.
func pickTargetCell(ix *candidate.Index, occupied *bitset.Set, feasible func(int) bool) int {
	best := -1
	bestCount := -1

	for cellIdx := 0; cellIdx < ix.NumCells(); cellIdx++ {
		if occupied.Test(cellIdx) {
			continue
		}
		count := 0
		for _, candIdx := range ix.CoversByCell[cellIdx] {
			if feasible(candIdx) {
				count++
			}
		}
		if count == 0 {
			return cellIdx // dead cell: no feasible candidate covers it; caller should prune
		}
		if best == -1 || count < bestCount {
			best, bestCount = cellIdx, count
		}
	}
	return best
}

// firstEmptyCell returns the lowest-index empty cell, or -1 if none
// remain (the reference implementation's solver/utils.py
// first_empty_cell), used instead of MRV at depth 0 so the anchor-rule
// symmetry break (spec.md §4.4) always pivots on a fixed cell.
func firstEmptyCell(occupied *bitset.Set, n int) int {
	for i := 0; i < n; i++ {
		if !occupied.Test(i) {
			return i
		}
	}
	return -1
}

// supportScore counts how many of a candidate's covered cells have a
// downward FCC neighbour already occupied, grounded on the reference
// implementation's solver/utils.py support_contacts. Higher is
// preferred when Options.Flags.SupportBias is set: placements resting
// on already-placed material are tried before floating ones.
func (adj *adjacency) supportScore(c *candidate.Candidate, ix *candidate.Index, occupied *bitset.Set) int {
	score := 0
	for _, cell := range c.Cells {
		idx := ix.CellIndex[cell]
		for _, d := range adj.downSteps {
			if j, ok := ix.CellIndex[cell.Add(d)]; ok && j != idx && occupied.Test(j) {
				score++
				break
			}
		}
	}
	return score
}

// orderCandidates sorts candidate indices ascending by index (a stable,
// deterministic base order, per the reference implementation's
// order_candidates), then, if supportBias is set, stably re-sorts by
// descending support score.
func orderCandidates(ids []int, adj *adjacency, ix *candidate.Index, occupied *bitset.Set, supportBias bool) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	if !supportBias {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		si := adj.supportScore(&ix.Candidates[out[i]], ix, occupied)
		sj := adj.supportScore(&ix.Candidates[out[j]], ix, occupied)
		return si > sj
	})
	return out
}
