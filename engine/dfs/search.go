package dfs

import (
	"context"
	"math/rand"
	"time"

	"github.com/ballpuzzle-labs/fccsolver/bitset"
	"github.com/ballpuzzle-labs/fccsolver/candidate"
	"github.com/ballpuzzle-labs/fccsolver/engine"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
)

func init() {
	engine.Register("dfs", Engine{})
}

// Engine implements engine.Solver for the depth-first backtracking
// search.
type Engine struct{}

// Solve begins a DFS search over ix, streaming tick/solution/done
// events through the returned Stream.
func (Engine) Solve(ctx context.Context, containerCID string, symmetry []lattice.Rotation, ix *candidate.Index, piecesUsed []string, opts engine.Options) (*engine.Stream, error) {
	counts := make(map[string]int, len(piecesUsed))
	for _, label := range piecesUsed {
		counts[label]++
	}

	st := &searchState{
		ctx:          ctx,
		ix:           ix,
		adj:          buildAdjacency(ix),
		containerCID: containerCID,
		symmetry:     symmetry,
		occupied:     bitset.New(ix.NumCells()),
		remaining:    counts,
		seen:         make(map[string]bool),
		visited:      make(map[string]bool),
		opts:         opts,
		rng:          engine.RNGFromSeed(opts.Seed),
		start:        time.Now(),
		stream:       engine.NewStream(),
	}
	if opts.TimeLimit > 0 {
		st.useDeadline = true
		st.deadline = st.start.Add(opts.TimeLimit)
	}

	go func() {
		defer st.stream.Close()
		defer st.recoverInvariant()

		cause := st.run(0)
		st.emitDone(cause)
	}()

	return st.stream, nil
}

// searchState holds all mutable state for one DFS search, mirroring
// tsp's bbEngine: a dedicated struct instead of closures, so dependency
// and backtracking invariants are explicit.
type searchState struct {
	ctx context.Context

	ix  *candidate.Index
	adj *adjacency

	containerCID string
	symmetry     []lattice.Rotation

	occupied  *bitset.Set
	remaining map[string]int
	placed    []candidate.Candidate // stack of placements, parallel to recursion depth

	seen map[string]bool // canonical signatures already emitted this run

	// visited is the transposition table: occupancy masks already
	// explored this run, keyed by bitset.Set.Key(). Reaching a mask a
	// second time (by a different placement order) is pruned rather
	// than re-expanded.
	visited map[string]bool

	opts engine.Options
	rng  *rand.Rand

	start       time.Time
	useDeadline bool
	deadline    time.Time
	steps       int64

	metrics engine.Metrics

	lastTickMS int64

	stream *engine.Stream
}
