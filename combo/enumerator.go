package combo

import (
	"errors"
)

// ErrSizeMismatch is returned when the container size cannot be reached
// by any combination of the given piece sizes — most commonly a uniform
// piece size p where containerSize mod p != 0.
var ErrSizeMismatch = errors.New("combo: container size unreachable with given piece sizes")

// smallModeThreshold is the pieces-needed cutoff at or below which
// Enumerate runs exact combinations_with_replacement search, and above
// which it falls back to a single deterministic greedy assignment (spec.md
// §4.8's "a threshold (e.g. 10)").
const smallModeThreshold = 10

// Enumerate returns the ordered list of combinations to try for a
// container of the given size, drawn from inv, where pieceSize maps each
// active label to its cell count (spec.md §4.8).
//
// known, if non-empty, lists combinations to try first when they also
// appear in the enumerated result — a deterministic reordering, never a
// filter (spec.md §4.8's "known working" short-list).
func Enumerate(containerSize int, inv Inventory, pieceSize map[string]int, known []Combination) ([]Combination, error) {
	labels := inv.Labels()
	if len(labels) == 0 {
		if containerSize == 0 {
			return []Combination{{}}, nil
		}
		return nil, nil
	}

	uniform, p := uniformSize(labels, pieceSize)

	var results []Combination
	switch {
	case uniform && containerSize%p == 0:
		piecesNeeded := containerSize / p
		if exact, ok := exactMatch(inv, piecesNeeded); ok {
			results = []Combination{exact}
			break
		}
		if piecesNeeded <= smallModeThreshold {
			results = enumerateSmall(labels, inv, piecesNeeded)
		} else {
			results = enumerateGreedyByCount(labels, inv, piecesNeeded)
		}
	case uniform:
		return nil, ErrSizeMismatch
	default:
		results = enumerateBySize(labels, inv, pieceSize, containerSize)
	}

	return prioritize(results, known), nil
}

// uniformSize reports whether every active label maps to the same piece
// size, and returns that size.
func uniformSize(labels []string, pieceSize map[string]int) (bool, int) {
	if len(labels) == 0 {
		return true, 0
	}
	p, ok := pieceSize[labels[0]]
	if !ok {
		return false, 0
	}
	for _, l := range labels[1:] {
		q, ok := pieceSize[l]
		if !ok || q != p {
			return false, 0
		}
	}
	return true, p
}

// exactMatch implements spec.md §4.8's short-circuit: when the
// inventory's total count equals pieces-needed exactly, the sole
// combination is the inventory itself.
func exactMatch(inv Inventory, piecesNeeded int) (Combination, bool) {
	if inv.Total() != piecesNeeded {
		return Combination{}, false
	}
	return Combination(inv), true
}

// enumerateSmall performs an exact combinations_with_replacement search
// over labels, producing every length-piecesNeeded multiset that fits
// within inv, in combinations_with_replacement order: ascending
// lexicographic order of the sorted label sequence (AA, AB, BB).
func enumerateSmall(labels []string, inv Inventory, piecesNeeded int) []Combination {
	var out []Combination
	counts := make([]int, len(labels))

	var recurse func(start, remaining int)
	recurse = func(start, remaining int) {
		if remaining == 0 {
			var c Combination
			for i, l := range labels {
				idx, _ := labelIndex(l)
				c[idx] = counts[i]
			}
			out = append(out, c)
			return
		}
		for i := start; i < len(labels); i++ {
			idx, _ := labelIndex(labels[i])
			if counts[i]+1 > inv[idx] {
				continue
			}
			counts[i]++
			recurse(i, remaining-1)
			counts[i]--
		}
	}
	recurse(0, piecesNeeded)
	return out
}

// enumerateGreedyByCount returns the single greedy assignment of
// spec.md §4.8's large mode: labels in ascending order, taking as many
// of each as inventory allows until piecesNeeded units are assigned.
func enumerateGreedyByCount(labels []string, inv Inventory, piecesNeeded int) []Combination {
	var c Combination
	remaining := piecesNeeded
	for _, l := range labels {
		if remaining == 0 {
			break
		}
		idx, _ := labelIndex(l)
		take := inv[idx]
		if take > remaining {
			take = remaining
		}
		c[idx] = take
		remaining -= take
	}
	if remaining > 0 {
		return nil
	}
	return []Combination{c}
}

// enumerateBySize handles non-uniform piece sizes: it searches for
// multisets whose total cell count equals containerSize exactly,
// bounded by the same small/large split applied to the maximum number
// of pieces any solution could need (containerSize / smallest piece).
func enumerateBySize(labels []string, inv Inventory, pieceSize map[string]int, containerSize int) []Combination {
	minSize := containerSize
	for _, l := range labels {
		if s := pieceSize[l]; s > 0 && s < minSize {
			minSize = s
		}
	}
	maxPieces := containerSize
	if minSize > 0 {
		maxPieces = containerSize / minSize
	}

	if maxPieces <= smallModeThreshold {
		return enumerateSizeExact(labels, inv, pieceSize, containerSize)
	}
	return enumerateSizeGreedy(labels, inv, pieceSize, containerSize)
}

// enumerateSizeExact searches for every combination (bounded per-label
// by inv) whose total cell count equals containerSize.
func enumerateSizeExact(labels []string, inv Inventory, pieceSize map[string]int, containerSize int) []Combination {
	var out []Combination
	counts := make([]int, len(labels))

	var recurse func(start, remainingSize int)
	recurse = func(start, remainingSize int) {
		if remainingSize == 0 {
			var c Combination
			for i, l := range labels {
				idx, _ := labelIndex(l)
				c[idx] = counts[i]
			}
			out = append(out, c)
			return
		}
		if start == len(labels) {
			return
		}
		for i := start; i < len(labels); i++ {
			idx, _ := labelIndex(labels[i])
			size := pieceSize[labels[i]]
			if size <= 0 || size > remainingSize {
				continue
			}
			if counts[i]+1 > inv[idx] {
				continue
			}
			counts[i]++
			recurse(i, remainingSize-size)
			counts[i]--
		}
	}
	recurse(0, containerSize)
	return out
}

// enumerateSizeGreedy returns a single greedy assignment over
// non-uniform piece sizes: labels in ascending order, taking as many of
// each as fit by cell count until containerSize is reached exactly, or
// returns nil if no exact fill is possible greedily.
func enumerateSizeGreedy(labels []string, inv Inventory, pieceSize map[string]int, containerSize int) []Combination {
	var c Combination
	remaining := containerSize
	for _, l := range labels {
		if remaining == 0 {
			break
		}
		idx, _ := labelIndex(l)
		size := pieceSize[l]
		if size <= 0 {
			continue
		}
		take := remaining / size
		if take > inv[idx] {
			take = inv[idx]
		}
		c[idx] = take
		remaining -= take * size
	}
	if remaining != 0 {
		return nil
	}
	return []Combination{c}
}

// prioritize moves any combination in known to the front of results
// (preserving known's order, then the rest of results in their original
// order), without filtering out anything. Combinations in known that
// are not present in results are ignored.
func prioritize(results []Combination, known []Combination) []Combination {
	if len(known) == 0 || len(results) == 0 {
		return results
	}

	used := make([]bool, len(results))
	out := make([]Combination, 0, len(results))

	for _, k := range known {
		for i, r := range results {
			if !used[i] && r.Equal(k) {
				out = append(out, r)
				used[i] = true
				break
			}
		}
	}
	for i, r := range results {
		if !used[i] {
			out = append(out, r)
		}
	}
	return out
}
