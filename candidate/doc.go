// Package candidate enumerates the legal placements of a piece library
// inside a container: every (piece, orientation, anchor) triple whose
// translated cells all lie inside the container becomes a Candidate.
//
// Generation is a one-time dense precompute per (container, combination)
// pair, in the same spirit as tsp.bbEngine's initPrefetch/precomputeMinima:
// do the expensive anchor-by-orientation search once, up front, so the
// search engines' hot loops only ever touch arrays and bitsets.
//
// Complexity: O(|pieces| · |orientations| · S²) generation time,
// O(|candidates| · cells-per-piece) storage, per spec.md §4.3.
package candidate
