package fccsolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ballpuzzle-labs/fccsolver"
	"github.com/ballpuzzle-labs/fccsolver/combo"
	"github.com/ballpuzzle-labs/fccsolver/engine"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
	"github.com/ballpuzzle-labs/fccsolver/piece"
)

func square4() []lattice.Cell {
	return []lattice.Cell{
		lattice.NewCell(0, 0, 0),
		lattice.NewCell(1, 0, 0),
		lattice.NewCell(0, 1, 0),
		lattice.NewCell(1, 1, 0),
	}
}

func offsetCells(cells []lattice.Cell, d lattice.Cell) []lattice.Cell {
	out := make([]lattice.Cell, len(cells))
	for i, c := range cells {
		out[i] = c.Add(d)
	}
	return out
}

func drain(t *testing.T, s *engine.Stream) []engine.Event {
	t.Helper()
	return s.Drain(context.Background())
}

func TestSolve_ExactFitSingleSolution_DFS(t *testing.T) {
	container := fccsolver.NewContainer(square4())
	lib, err := piece.NewLibrary(map[string][]lattice.Cell{"A": square4()})
	require.NoError(t, err)
	inv, err := combo.NewInventory(map[string]int{"A": 1})
	require.NoError(t, err)

	stream, err := fccsolver.Solve(container, inv, lib, "dfs", engine.DefaultOptions())
	require.NoError(t, err)

	events := drain(t, stream)
	var solutions int
	for _, ev := range events {
		if ev.Type == engine.EventSolution {
			solutions++
		}
	}
	require.Equal(t, 1, solutions)
	require.Equal(t, engine.EventDone, events[len(events)-1].Type)
}

func TestSolve_ExactFitSingleSolution_DLX(t *testing.T) {
	container := fccsolver.NewContainer(square4())
	lib, err := piece.NewLibrary(map[string][]lattice.Cell{"A": square4()})
	require.NoError(t, err)
	inv, err := combo.NewInventory(map[string]int{"A": 1})
	require.NoError(t, err)

	stream, err := fccsolver.Solve(container, inv, lib, "dlx", engine.DefaultOptions())
	require.NoError(t, err)

	events := drain(t, stream)
	var solutions int
	for _, ev := range events {
		if ev.Type == engine.EventSolution {
			solutions++
		}
	}
	require.Equal(t, 1, solutions)
}

func TestSolve_UnsupportedEngine(t *testing.T) {
	container := fccsolver.NewContainer(square4())
	lib, err := piece.NewLibrary(map[string][]lattice.Cell{"A": square4()})
	require.NoError(t, err)
	inv, err := combo.NewInventory(map[string]int{"A": 1})
	require.NoError(t, err)

	_, err = fccsolver.Solve(container, inv, lib, "nope", engine.DefaultOptions())
	require.ErrorIs(t, err, engine.ErrUnsupportedEngine)
}

func TestSolve_UnknownInventoryLabel(t *testing.T) {
	container := fccsolver.NewContainer(square4())
	lib, err := piece.NewLibrary(map[string][]lattice.Cell{"A": square4()})
	require.NoError(t, err)
	inv, err := combo.NewInventory(map[string]int{"B": 1})
	require.NoError(t, err)

	_, err = fccsolver.Solve(container, inv, lib, "dfs", engine.DefaultOptions())
	require.ErrorIs(t, err, piece.ErrUnknownLabel)
}

// TestSolve_LargeInventoryEnumeratesCombinations exercises the outer
// combo.Enumerate loop: a container needing only 2 pieces, but an
// inventory large enough that more than one combination of {A,B} could
// supply them.
func TestSolve_LargeInventoryEnumeratesCombinations(t *testing.T) {
	container := fccsolver.NewContainer(append(square4(), offsetCells(square4(), lattice.NewCell(10, 0, 0))...))
	lib, err := piece.NewLibrary(map[string][]lattice.Cell{
		"A": square4(),
		"B": square4(),
	})
	require.NoError(t, err)
	inv, err := combo.NewInventory(map[string]int{"A": 2, "B": 2})
	require.NoError(t, err)

	stream, err := fccsolver.Solve(container, inv, lib, "dfs", engine.DefaultOptions())
	require.NoError(t, err)

	events := drain(t, stream)
	seen := make(map[string]bool)
	for _, ev := range events {
		if ev.Type != engine.EventSolution {
			continue
		}
		require.False(t, seen[ev.Solution.SidStateCanonSha256])
		seen[ev.Solution.SidStateCanonSha256] = true
	}
	require.NotEmpty(t, seen)
}
