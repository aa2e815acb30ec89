// Package combo enumerates piece-label multisets ("combinations") whose
// total cell count equals a container's size, drawn from a bounded
// inventory. It is the outer iteration layer described in spec.md §4.8:
// when the inventory holds more pieces than a single tiling can use, the
// driver tries one combination at a time, running a full inner search
// (DFS or DLX) against each.
//
// The enumeration strategy mirrors the small-vs-large split tsp's
// branch-and-bound engine uses between exact and heuristic search
// (tsp/bb.go, tsp/types.go): an exact combinatorial enumeration below a
// size threshold, and a single deterministic greedy fallback above it.
package combo
