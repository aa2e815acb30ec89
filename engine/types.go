package engine

import (
	"errors"
	"time"
)

// Sentinel errors.
var (
	// ErrUnsupportedEngine is returned when Solve is given an engine name
	// that has no registered Solver.
	ErrUnsupportedEngine = errors.New("engine: unsupported engine name")

	// ErrNoOrientations is an invariant-violation sentinel: a piece in
	// the active library expanded to zero orientations. Loaders are
	// expected to catch this before the core ever sees it; its presence
	// here signals a debug-build invariant failure (spec.md §7).
	ErrNoOrientations = errors.New("engine: piece has no orientations")

	// ErrInternalInvariant names an internal invariant violation. A
	// recovered invariant panic is reported on the done event as
	// CauseInternalInvariant; no engine returns this error value.
	ErrInternalInvariant = errors.New("engine: internal invariant violation")
)

// HolePruning selects the connectivity check applied to empty regions
// before descending further (spec.md §4.9).
type HolePruning int

const (
	// HoleNone disables hole pruning entirely.
	HoleNone HolePruning = iota

	// HoleLT4 prunes when any connected empty component has fewer than
	// 4 cells (too small for any piece this library is built around).
	HoleLT4

	// HoleSingleComponent prunes unless the empty region forms exactly
	// one connected component (stricter, catches more dead branches at
	// higher per-node cost).
	HoleSingleComponent
)

// ShuffleMode selects the tie-shuffle policy applied to DLX row
// ordering (spec.md §4.9).
type ShuffleMode int

const (
	// ShuffleNone preserves candidate generation order exactly.
	ShuffleNone ShuffleMode = iota

	// ShuffleTiesOnly groups a column's rows by piece label (stable
	// order) and shuffles only within each group.
	ShuffleTiesOnly

	// ShuffleFull shuffles the full row order before each selection.
	ShuffleFull
)

// Caps bounds per-engine structural limits; zero means unlimited.
type Caps struct {
	MaxNodes int
	MaxDepth int
	MaxRows  int
}

// Flags toggles DFS-specific search heuristics.
type Flags struct {
	MRVPieces   bool
	SupportBias bool
}

// Options configures a Solve call. The zero value is not meaningful;
// use DefaultOptions and override fields, or apply functional Option
// constructors, mirroring dfs.DFSOptions / tsp.Options.
type Options struct {
	// Seed controls every tie-shuffle and internal RNG stream. Identical
	// seeds must yield bitwise-identical event streams modulo
	// timestamps and node-count metrics.
	Seed int64

	// MaxResults stops the search after this many distinct
	// (post-deduplication) solutions. Zero means unlimited.
	MaxResults int

	// TimeLimit bounds wall-clock search time. Zero means unlimited.
	TimeLimit time.Duration

	Caps Caps

	// ProgressIntervalMS sets the tick cadence in milliseconds. Zero
	// disables ticks.
	ProgressIntervalMS int64

	Flags Flags

	// HolePruning selects the connectivity-based dead-branch check.
	HolePruning HolePruning

	// PivotCycle, if true, applies one seed-derived cyclic rotation to
	// the DFS depth-0 candidate order per search, so different seeds
	// commit to a different first placement.
	PivotCycle bool

	// Shuffle is the DLX row tie-shuffle policy.
	Shuffle ShuffleMode

	// StrictInvariants, when true, lets an internal invariant panic
	// propagate instead of being converted into a done event with
	// CauseInternalInvariant (spec.md §7).
	StrictInvariants bool
}

// Option mutates an Options value, following dfs.Option / bfs.Option's
// functional-options convention.
type Option func(*Options)

// DefaultOptions returns the zero-risk default configuration: no
// result/time/node caps, no ticks, hole pruning on LT4, no pivot
// cycling, no shuffle, invariants converted to done events rather than
// panicking.
func DefaultOptions() Options {
	return Options{
		Seed:               0,
		MaxResults:         0,
		TimeLimit:          0,
		Caps:               Caps{},
		ProgressIntervalMS: 0,
		Flags:              Flags{MRVPieces: true, SupportBias: true},
		HolePruning:        HoleLT4,
		PivotCycle:         false,
		Shuffle:            ShuffleNone,
		StrictInvariants:   false,
	}
}

// WithSeed sets the RNG/tie-shuffle seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxResults caps the number of distinct solutions emitted.
func WithMaxResults(n int) Option {
	return func(o *Options) { o.MaxResults = n }
}

// WithTimeLimit bounds wall-clock search time.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithCaps sets the structural search caps.
func WithCaps(c Caps) Option {
	return func(o *Options) { o.Caps = c }
}

// WithProgressInterval sets the tick cadence in milliseconds.
func WithProgressInterval(ms int64) Option {
	return func(o *Options) { o.ProgressIntervalMS = ms }
}

// WithFlags sets the DFS heuristic flags.
func WithFlags(f Flags) Option {
	return func(o *Options) { o.Flags = f }
}

// WithHolePruning selects the hole-pruning strategy.
func WithHolePruning(h HolePruning) Option {
	return func(o *Options) { o.HolePruning = h }
}

// WithPivotCycle enables or disables depth-0 pivot cycling.
func WithPivotCycle(on bool) Option {
	return func(o *Options) { o.PivotCycle = on }
}

// WithShuffle sets the DLX row tie-shuffle policy.
func WithShuffle(s ShuffleMode) Option {
	return func(o *Options) { o.Shuffle = s }
}

// WithStrictInvariants toggles whether an internal invariant violation
// panics (true) or degrades to a done event (false, default).
func WithStrictInvariants(on bool) Option {
	return func(o *Options) { o.StrictInvariants = on }
}

// Apply builds an Options value from DefaultOptions plus the given
// overrides, in order.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
