// Package piece turns a piece's base shape into its library of distinct
// rotational orientations, and collects labeled pieces into a Library
// used by the candidate generator.
//
// A piece has no behaviour beyond its shape: no inheritance, no virtual
// dispatch, just a label and a list of orientations (each an ordered list
// of cells), matching the flat value-type style of lvlath's core.Vertex
// and core.Edge.
//
// Complexity:
//
//   - Expand(base): O(24 · |base| log |base|) to rotate, normalise, sort,
//     and deduplicate.
//   - NewLibrary: O(sum over pieces of Expand's cost); computed once and
//     immutable afterward.
package piece
