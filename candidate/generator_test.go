package candidate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ballpuzzle-labs/fccsolver/candidate"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
	"github.com/ballpuzzle-labs/fccsolver/piece"
)

// domino is a 2-cell piece along the first neighbor vector.
func domino() []lattice.Cell {
	return []lattice.Cell{
		lattice.NewCell(0, 0, 0),
		lattice.NewCell(1, 0, 0),
	}
}

func box2x2() []lattice.Cell {
	var cells []lattice.Cell
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			cells = append(cells, lattice.NewCell(i, j, 0))
		}
	}
	return cells
}

func mustLibrary(t *testing.T, bases map[string][]lattice.Cell) *piece.Library {
	t.Helper()
	lib, err := piece.NewLibrary(bases)
	require.NoError(t, err)
	return lib
}

func TestGenerate_EmptyContainer(t *testing.T) {
	lib := mustLibrary(t, map[string][]lattice.Cell{"A": domino()})
	_, err := candidate.Generate(nil, lib, []string{"A"})
	require.ErrorIs(t, err, candidate.ErrEmptyContainer)
}

func TestGenerate_UnknownLabel(t *testing.T) {
	lib := mustLibrary(t, map[string][]lattice.Cell{"A": domino()})
	_, err := candidate.Generate(box2x2(), lib, []string{"Z"})
	require.Error(t, err)
}

func TestGenerate_AllCandidatesFitContainer(t *testing.T) {
	container := box2x2()
	lib := mustLibrary(t, map[string][]lattice.Cell{"A": domino()})

	ix, err := candidate.Generate(container, lib, []string{"A"})
	require.NoError(t, err)
	require.NotEmpty(t, ix.Candidates)

	for _, c := range ix.Candidates {
		require.Equal(t, "A", c.Piece)
		require.Len(t, c.Cells, 2)
		require.Equal(t, 2, c.Covered.PopCount())
		for _, cell := range c.Cells {
			_, ok := ix.CellIndex[cell]
			require.True(t, ok, "candidate cell %v must lie inside container", cell)
		}
	}
}

func TestGenerate_CoversByCellConsistency(t *testing.T) {
	container := box2x2()
	lib := mustLibrary(t, map[string][]lattice.Cell{"A": domino()})

	ix, err := candidate.Generate(container, lib, []string{"A"})
	require.NoError(t, err)

	for cellIdx, candIdxs := range ix.CoversByCell {
		for _, ci := range candIdxs {
			require.True(t, ix.Candidates[ci].Covered.Test(cellIdx))
		}
	}
	for ci, c := range ix.Candidates {
		c.Covered.ForEach(func(cellIdx int) bool {
			found := false
			for _, x := range ix.CoversByCell[cellIdx] {
				if x == ci {
					found = true
				}
			}
			require.True(t, found)
			return true
		})
	}
}

func TestGenerate_NoCandidateExceedsContainer(t *testing.T) {
	// A single isolated cell can never host a 2-cell piece.
	container := []lattice.Cell{lattice.NewCell(0, 0, 0)}
	lib := mustLibrary(t, map[string][]lattice.Cell{"A": domino()})

	ix, err := candidate.Generate(container, lib, []string{"A"})
	require.NoError(t, err)
	require.Empty(t, ix.Candidates)
}

func TestDedup_CollapsesRepeatedReferenceAtoms(t *testing.T) {
	container := box2x2()
	lib := mustLibrary(t, map[string][]lattice.Cell{"A": domino()})

	ix, err := candidate.Generate(container, lib, []string{"A"})
	require.NoError(t, err)

	deduped := candidate.Dedup(ix)
	require.LessOrEqual(t, len(deduped.Candidates), len(ix.Candidates))

	seen := make(map[string]bool)
	for _, c := range deduped.Candidates {
		key := c.Piece
		for _, cell := range c.Cells {
			key += fmt.Sprintf("|%d,%d,%d", cell.I, cell.J, cell.K)
		}
		require.False(t, seen[key], "dedup must not keep duplicate (piece, cells) rows")
		seen[key] = true
	}
}

func TestReduceDominance_OneRowPerCoveredSet(t *testing.T) {
	container := box2x2()
	lib := mustLibrary(t, map[string][]lattice.Cell{
		"A": domino(),
		"B": domino(),
	})

	ix, err := candidate.Generate(container, lib, []string{"A", "B"})
	require.NoError(t, err)

	deduped := candidate.Dedup(ix)
	reduced := candidate.ReduceDominance(deduped)

	seenCoverage := make(map[string]bool)
	for _, c := range reduced.Candidates {
		key := ""
		c.Covered.ForEach(func(i int) bool {
			key += string(rune('a' + i))
			return true
		})
		require.False(t, seenCoverage[key], "dominance reduction must leave one row per covered cell-set")
		seenCoverage[key] = true
		require.Equal(t, "A", c.Piece) // "A" sorts before "B"
	}
	require.NotEmpty(t, reduced.Candidates)
}
