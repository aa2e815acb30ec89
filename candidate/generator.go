package candidate

import (
	"fmt"

	"github.com/ballpuzzle-labs/fccsolver/bitset"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
	"github.com/ballpuzzle-labs/fccsolver/piece"
)

// Generate builds the candidate list and covers-by-cell index for the
// given container and the active piece labels (those with inventory
// count > 0 in the current combination), per spec.md §4.3's algorithm:
// for each active piece, each of its orientations, each anchor cell, and
// each reference atom of that orientation, translate the orientation so
// the reference atom lands on the anchor; keep the placement iff every
// translated cell lies in the container.
//
// Candidates are produced once per (container, combination) pair and are
// immutable for the remainder of that combination's search (spec.md §3).
func Generate(container []lattice.Cell, lib *piece.Library, activeLabels []string) (*Index, error) {
	if len(container) == 0 {
		return nil, ErrEmptyContainer
	}

	cellIndex := make(map[lattice.Cell]int, len(container))
	for i, c := range container {
		cellIndex[c] = i
	}

	ix := &Index{
		Cells:        append([]lattice.Cell(nil), container...),
		CellIndex:    cellIndex,
		CoversByCell: make([][]int, len(container)),
	}

	for _, label := range activeLabels {
		p, err := lib.Get(label)
		if err != nil {
			return nil, fmt.Errorf("candidate: generating for %q: %w", label, ErrUnknownLabel)
		}
		generatePieceCandidates(ix, p)
	}

	return ix, nil
}

// generatePieceCandidates appends every legal placement of piece p into
// ix's container, across all of p's orientations and all anchor cells.
func generatePieceCandidates(ix *Index, p *piece.Piece) {
	n := len(ix.Cells)

	for ori, shape := range p.Orientations {
		for _, anchor := range ix.Cells {
			for _, ref := range shape {
				translation := anchor.Sub(ref)

				cells := make([]lattice.Cell, len(shape))
				covered := bitset.New(n)
				fits := true
				for i, atom := range shape {
					placed := atom.Add(translation)
					idx, ok := ix.CellIndex[placed]
					if !ok {
						fits = false
						break
					}
					cells[i] = placed
					covered.Set(idx)
				}
				if !fits {
					continue
				}

				candIdx := len(ix.Candidates)
				ix.Candidates = append(ix.Candidates, Candidate{
					Piece:       p.Label,
					Ori:         ori,
					Translation: translation,
					Cells:       cells,
					Covered:     covered,
				})
				covered.ForEach(func(i int) bool {
					ix.CoversByCell[i] = append(ix.CoversByCell[i], candIdx)
					return true
				})
			}
		}
	}
}
