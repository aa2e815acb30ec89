package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ballpuzzle-labs/fccsolver/lattice"
)

func square() []lattice.Cell {
	return []lattice.Cell{
		lattice.NewCell(0, 0, 0),
		lattice.NewCell(1, 0, 0),
		lattice.NewCell(0, 1, 0),
		lattice.NewCell(1, 1, 0),
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	c := square()
	once := lattice.Canonicalize(c)
	twice := lattice.Canonicalize(once)
	require.Equal(t, once, twice)
}

func TestCanonicalize_RotationInvariant(t *testing.T) {
	c := square()
	base := lattice.Canonicalize(c)

	for _, r := range lattice.Rotations {
		rotated := make([]lattice.Cell, len(c))
		for i, cell := range c {
			rotated[i] = r.Apply(cell)
		}
		require.Equal(t, base, lattice.Canonicalize(rotated), "canon(R*C) must equal canon(C)")
	}
}

func TestCanonicalize_TranslationInvariant(t *testing.T) {
	c := square()
	shift := lattice.NewCell(5, -3, 2)
	shifted := make([]lattice.Cell, len(c))
	for i, cell := range c {
		shifted[i] = cell.Add(shift)
	}
	require.Equal(t, lattice.Canonicalize(c), lattice.Canonicalize(shifted))
}

func TestCanonicalize_Empty(t *testing.T) {
	require.Empty(t, lattice.Canonicalize(nil))
}

func TestSymmetryGroup_ContainsIdentity(t *testing.T) {
	group := lattice.SymmetryGroup(square())
	require.NotEmpty(t, group)

	found := false
	id := lattice.Rotation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, r := range group {
		if r == id {
			found = true
		}
	}
	require.True(t, found, "identity rotation always stabilises any container")
}

func TestCID_RotationAndTranslationInvariant(t *testing.T) {
	c := square()
	base := lattice.CID(c)

	shift := lattice.NewCell(2, 2, 2)
	shifted := make([]lattice.Cell, len(c))
	for i, cell := range c {
		shifted[i] = cell.Add(shift)
	}
	require.Equal(t, base, lattice.CID(shifted))

	rotated := make([]lattice.Cell, len(c))
	for i, cell := range c {
		rotated[i] = lattice.Rotations[1].Apply(cell)
	}
	require.Equal(t, base, lattice.CID(rotated))
}

func TestCID_Format(t *testing.T) {
	id := lattice.CID(square())
	require.Regexp(t, `^sha256:[0-9a-f]{64}$`, id)
}
