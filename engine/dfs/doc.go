// Package dfs implements the depth-first backtracking search engine
// (spec.md §4.4): at each step it picks a target empty cell, tries every
// feasible candidate covering it in turn, and recurses, maintaining an
// occupancy bitset and a remaining-piece-count vector that are restored
// exactly on backtrack.
//
// The search state is a dedicated struct (searchState) rather than a
// tree of closures, following tsp's bbEngine: explicit fields make the
// hot loop's dependencies visible and the backtracking invariants easy
// to state and test. Hole pruning's flood fill is grounded on
// gridgraph.GridGraph.ConnectedComponents' BFS-over-adjacency shape;
// target-cell selection (holes-first / MRV) and support-biased ordering
// are grounded on the reference implementation's
// solver/engines/engine_c/ordering.py (pick_target_cell) and
// solver/utils.py (support_contacts).
package dfs
