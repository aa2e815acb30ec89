package signature

import "github.com/ballpuzzle-labs/fccsolver/lattice"

// Canonical computes the canonical signature of a fully occupied
// container state under a supplied symmetry group, so that two
// placement-lists covering the same cells in ways related by a
// symmetry of that group collapse to the same signature.
func Canonical(occupied []lattice.Cell, group []lattice.Rotation) string {
	return lattice.SignatureOver(occupied, group)
}

// ContainerSelf returns the container's own self-canonical signature:
// the signature of the full container under its own symmetry group.
// A single full-cover solution's signature is expected to equal this
// value.
func ContainerSelf(container []lattice.Cell) string {
	group := lattice.SymmetryGroup(container)
	return Canonical(container, group)
}
