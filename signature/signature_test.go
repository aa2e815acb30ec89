package signature_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ballpuzzle-labs/fccsolver/lattice"
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

func TestContainerSelf_Deterministic(t *testing.T) {
	c := square4()
	s1 := signature.ContainerSelf(c)
	s2 := signature.ContainerSelf(c)
	require.Equal(t, s1, s2)
}

func TestState_MatchesContainerSelfForFullCover(t *testing.T) {
	container := square4()
	group := lattice.SymmetryGroup(container)

	sig := signature.Canonical(container, group)
	require.Equal(t, signature.ContainerSelf(container), sig)
}

func TestState_InvariantUnderContainerSymmetry(t *testing.T) {
	container := square4()
	group := lattice.SymmetryGroup(container)
	require.NotEmpty(t, group)

	rotated := make([]lattice.Cell, len(container))
	for i, c := range container {
		rotated[i] = group[len(group)-1].Apply(c)
	}

	require.Equal(t, signature.Canonical(container, group), signature.Canonical(rotated, group))
}
