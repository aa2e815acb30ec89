// Package dlx implements Algorithm X over a dancing-links matrix
// (spec.md §4.6): an alternative exact-cover search engine to
// engine/dfs's backtracking, with identical streaming semantics.
//
// The matrix representation is grounded on the reference
// implementation's solver/engines/bitmap_state.py and
// coordinate_mapper.py: cells and piece-slots become matrix columns,
// placements become rows. Piece multiplicities (spec.md §4.6's "one
// slot per available unit of each piece") are realised by giving each
// piece label one column per available unit and duplicating each
// candidate placement's row once per unit-slot — the duplicates share
// every cell column, so Algorithm X's normal row-exclusion on cell
// coverage already prevents more than one copy of the same placement
// from ever being selected; the slot columns only constrain how many
// total placements of that label are chosen.
package dlx
