package combo

import (
	"errors"
	"sort"
)

// Sentinel errors for inventory/combination construction.
var (
	// ErrInvalidLabel is returned when a piece label falls outside 'A'..'Z'.
	ErrInvalidLabel = errors.New("combo: piece label must be in A..Z")

	// ErrNegativeCount is returned when a piece count is negative.
	ErrNegativeCount = errors.New("combo: piece count must be non-negative")
)

// numLabels is the size of the fixed label alphabet: one slot per
// uppercase ASCII letter A..Z, indexed by label-'A' (labelIndex accepts
// every one of them).
const numLabels = 26

// Inventory is a fixed-size count vector indexed by label-'A', mirroring
// matrix.Dense's flat-array storage over a small, statically-bounded
// dimension rather than a map. Unused labels carry a zero count.
type Inventory [numLabels]int

// Combination is a concrete multiset of pieces drawn from an Inventory,
// using the same fixed layout so the two can be compared directly.
type Combination [numLabels]int

// NewInventory builds an Inventory from a label->count map, validating
// that every label is a single uppercase letter and every count is
// non-negative.
func NewInventory(counts map[string]int) (Inventory, error) {
	var inv Inventory
	for label, count := range counts {
		idx, err := labelIndex(label)
		if err != nil {
			return Inventory{}, err
		}
		if count < 0 {
			return Inventory{}, ErrNegativeCount
		}
		inv[idx] = count
	}
	return inv, nil
}

// labelIndex converts a single-letter label to its array index.
func labelIndex(label string) (int, error) {
	if len(label) != 1 || label[0] < 'A' || label[0] > 'Z' {
		return 0, ErrInvalidLabel
	}
	return int(label[0] - 'A'), nil
}

// labelAt renders index i back to its letter form.
func labelAt(i int) string {
	return string(rune('A' + i))
}

// Get returns the count for label.
func (inv Inventory) Get(label string) int {
	idx, err := labelIndex(label)
	if err != nil {
		return 0
	}
	return inv[idx]
}

// Total returns the sum of all per-label counts.
func (inv Inventory) Total() int {
	sum := 0
	for _, c := range inv {
		sum += c
	}
	return sum
}

// Labels returns the labels with a positive count, in ascending order.
func (inv Inventory) Labels() []string {
	var out []string
	for i, c := range inv {
		if c > 0 {
			out = append(out, labelAt(i))
		}
	}
	sort.Strings(out)
	return out
}

// Total returns the sum of all per-label counts in the combination.
func (c Combination) Total() int {
	sum := 0
	for _, n := range c {
		sum += n
	}
	return sum
}

// Get returns the count for label.
func (c Combination) Get(label string) int {
	idx, err := labelIndex(label)
	if err != nil {
		return 0
	}
	return c[idx]
}

// FitsWithin reports whether c is componentwise ≤ inv — the combination
// can be drawn from the inventory without exceeding any per-piece count.
func (c Combination) FitsWithin(inv Inventory) bool {
	for i := range c {
		if c[i] > inv[i] {
			return false
		}
	}
	return true
}

// Labels returns the labels with a positive count in the combination, in
// ascending order, expanded so a label with count n appears n times —
// the form §3's "concrete multiset of pieces" is consumed in.
func (c Combination) Labels() []string {
	var out []string
	for i, n := range c {
		for j := 0; j < n; j++ {
			out = append(out, labelAt(i))
		}
	}
	return out
}

// Equal reports whether a and b hold identical per-label counts.
func (c Combination) Equal(other Combination) bool {
	return c == other
}
