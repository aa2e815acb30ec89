package dfs

import (
	"github.com/ballpuzzle-labs/fccsolver/bitset"
	"github.com/ballpuzzle-labs/fccsolver/candidate"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
)

// adjacency precomputes, for a candidate.Index, the within-container
// neighbor lists needed by hole pruning's flood fill, and the "down
// steps" used for support-bias scoring.
type adjacency struct {
	neighbors [][]int // neighbors[i] = container-cell indices adjacent to cell i
	downSteps []lattice.Cell
}

// buildAdjacency computes cell-to-cell adjacency within the container,
// one pass over all cells times the 12 lattice neighbor vectors,
// mirroring gridgraph.GridGraph.ConnectedComponents' use of precomputed
// NeighborOffsets.
func buildAdjacency(ix *candidate.Index) *adjacency {
	n := len(ix.Cells)
	neighbors := make([][]int, n)
	for i, c := range ix.Cells {
		for _, d := range lattice.Neighbors {
			if j, ok := ix.CellIndex[c.Add(d)]; ok {
				neighbors[i] = append(neighbors[i], j)
			}
		}
	}

	var down []lattice.Cell
	for _, d := range lattice.Neighbors {
		if d.K == -1 {
			down = append(down, d)
		}
	}

	return &adjacency{neighbors: neighbors, downSteps: down}
}

// componentSizes runs a BFS flood fill over the empty cells (bits not
// set in occupied), returning the size of every connected component —
// the same traversal shape as gridgraph.GridGraph.ConnectedComponents,
// specialised to a single "land value" (empty) over container
// adjacency instead of a 2D grid.
func (adj *adjacency) componentSizes(occupied *bitset.Set, n int) []int {
	visited := make([]bool, n)
	var sizes []int

	for start := 0; start < n; start++ {
		if visited[start] || occupied.Test(start) {
			continue
		}
		queue := []int{start}
		visited[start] = true
		size := 0
		for qi := 0; qi < len(queue); qi++ {
			idx := queue[qi]
			size++
			for _, nb := range adj.neighbors[idx] {
				if !visited[nb] && !occupied.Test(nb) {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}
