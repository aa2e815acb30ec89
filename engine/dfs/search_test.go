package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ballpuzzle-labs/fccsolver/candidate"
	"github.com/ballpuzzle-labs/fccsolver/engine"
	_ "github.com/ballpuzzle-labs/fccsolver/engine/dfs"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
	"github.com/ballpuzzle-labs/fccsolver/piece"
	"github.com/ballpuzzle-labs/fccsolver/signature"
)

func square4() []lattice.Cell {
	return []lattice.Cell{
		lattice.NewCell(0, 0, 0),
		lattice.NewCell(1, 0, 0),
		lattice.NewCell(0, 1, 0),
		lattice.NewCell(1, 1, 0),
	}
}

func solveAll(t *testing.T, container []lattice.Cell, lib *piece.Library, piecesUsed []string, opts engine.Options) []engine.Event {
	t.Helper()
	s, err := engine.Get("dfs")
	require.NoError(t, err)

	cid := lattice.CID(container)
	sym := lattice.SymmetryGroup(container)

	ix, err := candidate.Generate(container, lib, dedupeLabels(piecesUsed))
	require.NoError(t, err)
	ix = candidate.Dedup(ix)

	stream, err := s.Solve(context.Background(), cid, sym, ix, piecesUsed, opts)
	require.NoError(t, err)
	return stream.Drain(context.Background())
}

func dedupeLabels(labels []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// TestSolve_ExactFitSingleSolution is scenario S1: a 4-cell square
// container with a single A piece whose base shape matches it exactly
// up to rotation/translation. Expect exactly one solution whose
// signature equals the container's self-canonical signature.
func TestSolve_ExactFitSingleSolution(t *testing.T) {
	container := square4()
	lib, err := piece.NewLibrary(map[string][]lattice.Cell{"A": square4()})
	require.NoError(t, err)

	events := solveAll(t, container, lib, []string{"A"}, engine.DefaultOptions())

	var solutions []engine.Event
	for _, ev := range events {
		if ev.Type == engine.EventSolution {
			solutions = append(solutions, ev)
		}
	}
	require.Len(t, solutions, 1)
	require.Equal(t, []string{"A"}, solutions[0].Solution.PiecesUsed)
	require.Equal(t, signature.ContainerSelf(container), solutions[0].Solution.SidStateCanonSha256)

	last := events[len(events)-1]
	require.Equal(t, engine.EventDone, last.Type)
	require.Equal(t, 1, last.Metrics.Solutions)
}

// TestSolve_InsufficientInventory is scenario S3: container size 8,
// inventory only covers 4 cells. Expect zero solutions and a stub
// record on done.
func TestSolve_InsufficientInventory(t *testing.T) {
	container := append(square4(), offsetCells(square4(), lattice.NewCell(0, 0, 1))...)

	lib, err := piece.NewLibrary(map[string][]lattice.Cell{"A": square4()})
	require.NoError(t, err)

	events := solveAll(t, container, lib, []string{"A"}, engine.DefaultOptions())

	last := events[len(events)-1]
	require.Equal(t, engine.EventDone, last.Type)
	require.Equal(t, 0, last.Metrics.Solutions)
	require.Equal(t, signature.Canonical(nil, lattice.SymmetryGroup(container)), last.Solution.SidStateCanonSha256)
}

func offsetCells(cells []lattice.Cell, d lattice.Cell) []lattice.Cell {
	out := make([]lattice.Cell, len(cells))
	for i, c := range cells {
		out[i] = c.Add(d)
	}
	return out
}

// TestSolve_EightCellSplit is scenario S2: two disjoint 4-cell patches,
// inventory = {A: 2}. Expect at least one solution, each using exactly
// two A placements partitioning the container, with no two solutions
// sharing a canonical signature.
func TestSolve_EightCellSplit(t *testing.T) {
	container := append(square4(), offsetCells(square4(), lattice.NewCell(10, 0, 0))...)

	lib, err := piece.NewLibrary(map[string][]lattice.Cell{"A": square4()})
	require.NoError(t, err)

	events := solveAll(t, container, lib, []string{"A", "A"}, engine.DefaultOptions())

	seenSigs := make(map[string]bool)
	for _, ev := range events {
		if ev.Type != engine.EventSolution {
			continue
		}
		require.Len(t, ev.Solution.Placements, 2)
		require.False(t, seenSigs[ev.Solution.SidStateCanonSha256])
		seenSigs[ev.Solution.SidStateCanonSha256] = true
	}
	require.NotEmpty(t, seenSigs)
}

func TestSolve_MaxResultsCapsSolutionCount(t *testing.T) {
	container := append(square4(), offsetCells(square4(), lattice.NewCell(10, 0, 0))...)

	lib, err := piece.NewLibrary(map[string][]lattice.Cell{"A": square4()})
	require.NoError(t, err)

	opts := engine.Apply(engine.WithMaxResults(1))
	events := solveAll(t, container, lib, []string{"A", "A"}, opts)

	var solutions int
	for _, ev := range events {
		if ev.Type == engine.EventSolution {
			solutions++
		}
	}
	require.Equal(t, 1, solutions)
}

func TestSolve_DeterministicAcrossRuns(t *testing.T) {
	container := append(square4(), offsetCells(square4(), lattice.NewCell(10, 0, 0))...)
	lib, err := piece.NewLibrary(map[string][]lattice.Cell{"A": square4()})
	require.NoError(t, err)

	opts := engine.Apply(engine.WithSeed(123))

	sigsOf := func() []string {
		events := solveAll(t, container, lib, []string{"A", "A"}, opts)
		var sigs []string
		for _, ev := range events {
			if ev.Type == engine.EventSolution {
				sigs = append(sigs, ev.Solution.SidStateCanonSha256)
			}
		}
		return sigs
	}

	require.Equal(t, sigsOf(), sigsOf())
}
