// Package bitset implements a fixed-width bitset over container cell
// indices, used to represent occupancy masks and candidate coverage sets.
//
// A Set is a flat []uint64 backing array, in the spirit of matrix.Dense's
// single flat-slice representation for both small and large matrices: the
// same code path serves a 4-cell container (one word) and a
// several-hundred-cell container (many words), with no special-cased fast
// path for the single-word case.
//
// Complexity: every operation below is O(words) = O(ceil(n/64)), except
// Set/Clear/Test, which are O(1), and Bits/ForEach iteration, which is
// O(words + set bits) across a full scan.
package bitset
