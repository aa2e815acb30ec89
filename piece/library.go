package piece

import (
	"fmt"
	"sort"

	"github.com/ballpuzzle-labs/fccsolver/lattice"
)

// NewLibrary builds a Library from a map of piece label to base shape.
// Orientation expansion runs once per piece here; the resulting Library is
// immutable and safe to share by reference across every combination a
// search considers (spec.md §3's lifecycle: "piece orientations: computed
// once per piece when the library is built; immutable").
//
// Labels are iterated in sorted order so that any error reports the
// first offending label deterministically, independent of Go's
// randomised map iteration.
func NewLibrary(bases map[string][]lattice.Cell) (*Library, error) {
	labels := make([]string, 0, len(bases))
	for label := range bases {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	lib := &Library{
		pieces: make(map[string]*Piece, len(labels)),
		order:  labels,
	}

	for _, label := range labels {
		base := bases[label]
		orientations, err := Expand(base)
		if err != nil {
			return nil, fmt.Errorf("piece: expanding %q: %w", label, err)
		}
		lib.pieces[label] = &Piece{
			Label:        label,
			Base:         base,
			Orientations: orientations,
		}
	}

	return lib, nil
}
