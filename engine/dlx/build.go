package dlx

import (
	"errors"
	"sort"
	"strconv"

	"github.com/ballpuzzle-labs/fccsolver/candidate"
)

// ErrTooManyRows is returned when constructing the matrix would exceed
// Options.Caps.MaxRows (spec.md §4.6's structural cap).
var ErrTooManyRows = errors.New("dlx: row count exceeds Caps.MaxRows")

// placement records which underlying candidate a matrix row (or, after
// slot duplication, group of rows) came from.
type placement struct {
	candidateID int
}

// buildMatrix turns a deduplicated candidate index plus a fixed piece
// combination into a dancing-links matrix: one column per container
// cell, one column per available unit of each piece label, and one row
// per (candidate, unit-slot) pair (package doc's slot-duplication
// scheme). maxRows of 0 means unlimited.
func buildMatrix(ix *candidate.Index, counts map[string]int, maxRows int) (*matrix, []placement, error) {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		if counts[label] > 0 {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	names := make([]string, 0, ix.NumCells()+len(labels)*2)
	for i := 0; i < ix.NumCells(); i++ {
		names = append(names, cellColumnName(i))
	}
	slotColIdx := make(map[string][]int, len(labels))
	for _, label := range labels {
		start := len(names)
		for u := 0; u < counts[label]; u++ {
			names = append(names, slotColumnName(label, u))
		}
		idx := make([]int, counts[label])
		for u := range idx {
			idx[u] = start + u
		}
		slotColIdx[label] = idx
	}

	total := 0
	for _, c := range ix.Candidates {
		if counts[c.Piece] > 0 {
			total += counts[c.Piece]
		}
	}
	if maxRows > 0 && total > maxRows {
		return nil, nil, ErrTooManyRows
	}

	m := newMatrix(names)
	var placements []placement

	for candID := range ix.Candidates {
		c := &ix.Candidates[candID]
		slots, ok := slotColIdx[c.Piece]
		if !ok {
			continue
		}
		cellCols := make([]int, 0, len(c.Cells)+1)
		c.Covered.ForEach(func(i int) bool {
			cellCols = append(cellCols, i)
			return true
		})

		for _, slotCol := range slots {
			row := append(append([]int(nil), cellCols...), slotCol)
			m.addRow(row)
			placements = append(placements, placement{candidateID: candID})
		}
	}

	return m, placements, nil
}

func cellColumnName(i int) string {
	return "cell#" + strconv.Itoa(i)
}

func slotColumnName(label string, unit int) string {
	return "slot#" + label + "#" + strconv.Itoa(unit)
}
