// Package fccsolver is a combinatorial exact-cover solver for 3D
// polyomino packing on the face-centered cubic lattice: given a
// container (a finite set of FCC cells), an inventory of labelled
// pieces, and a piece library, it enumerates tilings that cover every
// container cell exactly once without exceeding any per-piece count.
//
// The package is organized the way its teacher organizes traversal,
// shortest-path, and MST code into focused subpackages rather than one
// monolith:
//
//	lattice/    — FCC neighbour/rotation tables, cell canonicalization, CIDs
//	piece/      — piece base shapes, orientation expansion, Library
//	bitset/     — fixed-width occupancy bitsets
//	candidate/  — per-container legal-placement generation and reduction
//	combo/      — inventory combination enumeration
//	signature/  — canonical solution-state hashing
//	engine/     — the streaming Solver contract, options, and registry
//	engine/dfs/ — backtracking search engine
//	engine/dlx/ — Algorithm X / dancing-links search engine
//
// Solve is the one exported entrypoint a driver calls; it enumerates
// inventory combinations (combo.Enumerate) and runs the selected engine
// against each in turn, merging their streams into one.
package fccsolver
