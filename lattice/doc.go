// Package lattice defines the face-centered cubic (FCC) lattice under its
// rhombohedral basis: the Cell coordinate type, the fixed 12-neighbour
// adjacency set, the 24 proper rotations that preserve the lattice, and
// the canonicalisation primitives used to detect rotation/translation
// equivalence between cell-sets.
//
// Everything in this package is computed once (the rotation table, at
// package init) or is a pure function of its arguments (Canonicalize,
// SymmetryGroup, CID); nothing here mutates shared state, so values may
// be freely shared by reference across concurrent callers.
//
// Complexity:
//
//   - Rotations: built once, O(1) thereafter.
//   - Canonicalize(cells): O(|cells| log |cells|) per rotation, O(24 ·
//     |cells| log |cells|) total.
//   - SymmetryGroup(cells): O(24 · |cells|) set-equality checks.
package lattice
