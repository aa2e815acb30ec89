package dlx

import (
	"context"
	"math/rand"
	"time"

	"github.com/ballpuzzle-labs/fccsolver/candidate"
	"github.com/ballpuzzle-labs/fccsolver/engine"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
)

func init() {
	engine.Register("dlx", Engine{})
}

// Engine implements engine.Solver with Algorithm X over a dancing-links
// matrix.
type Engine struct{}

const deadlineCheckInterval = 4096

// Solve builds the matrix for ix and piecesUsed, then runs Algorithm X,
// streaming tick/solution/done events through the returned Stream.
func (Engine) Solve(ctx context.Context, containerCID string, symmetry []lattice.Rotation, ix *candidate.Index, piecesUsed []string, opts engine.Options) (*engine.Stream, error) {
	counts := make(map[string]int, len(piecesUsed))
	for _, label := range piecesUsed {
		counts[label]++
	}

	stream := engine.NewStream()

	m, placements, err := buildMatrix(ix, counts, opts.Caps.MaxRows)
	if err != nil {
		go func() {
			defer stream.Close()
			stream.Send(ctx, engine.Event{
				Type:     engine.EventDone,
				Solution: engine.StubSolution(containerCID, symmetry),
				Cause:    engine.CauseMaxRows,
			})
		}()
		return stream, nil
	}

	st := &searchState{
		ctx:          ctx,
		m:            m,
		placements:   placements,
		ix:           ix,
		containerCID: containerCID,
		symmetry:     symmetry,
		opts:         opts,
		rng:          engine.RNGFromSeed(opts.Seed),
		start:        time.Now(),
		stream:       stream,
		seen:         make(map[string]bool),
	}
	if opts.TimeLimit > 0 {
		st.useDeadline = true
		st.deadline = st.start.Add(opts.TimeLimit)
	}

	go func() {
		defer st.stream.Close()
		defer st.recoverInvariant()

		cause := st.search(0)
		st.emitDone(cause)
	}()

	return stream, nil
}

// searchState holds all mutable state for one Algorithm X run, mirroring
// engine/dfs's searchState.
type searchState struct {
	ctx context.Context

	m          *matrix
	placements []placement
	ix         *candidate.Index

	containerCID string
	symmetry     []lattice.Rotation

	chosen []*node // stack of selected row nodes, parallel to recursion depth

	seen map[string]bool

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

// search performs one level of Algorithm X: pick the column with the
// fewest remaining rows, try each in turn, recursing after covering the
// columns that row also satisfies.
func (st *searchState) search(depth int) engine.TerminationCause {
	st.steps++
	st.metrics.Nodes++
	if depth > st.metrics.BestDepth {
		st.metrics.BestDepth = depth
	}
	st.metrics.Depth = depth

	if cause, stop := st.checkBudgets(depth); stop {
		return cause
	}
	if !st.maybeTick() {
		return engine.CauseCancelled
	}

	if st.m.root.right == &st.m.root.node {
		st.emitSolution()
		if st.opts.MaxResults > 0 && st.metrics.Solutions >= st.opts.MaxResults {
			return engine.CauseMaxResults
		}
		return engine.CauseExhausted
	}

	c := st.m.chooseColumn()
	if c.size == 0 {
		st.metrics.Pruned++
		return engine.CauseExhausted
	}

	cover(c)
	rows := st.orderRows(collectRows(c))

	for _, r := range rows {
		st.metrics.RowsTried++
		st.chosen = append(st.chosen, r)
		for j := r.right; j != r; j = j.right {
			cover(j.col)
		}

		cause := st.search(depth + 1)

		for j := r.left; j != r; j = j.left {
			uncover(j.col)
		}
		st.chosen = st.chosen[:len(st.chosen)-1]

		switch cause {
		case engine.CauseMaxResults, engine.CauseTimeLimit, engine.CauseMaxNodes, engine.CauseMaxDepth, engine.CauseCancelled:
			uncover(c)
			return cause
		}
	}

	uncover(c)
	st.metrics.Backtracks++
	return engine.CauseExhausted
}

// checkBudgets reports whether a configured cap has been breached.
func (st *searchState) checkBudgets(depth int) (engine.TerminationCause, bool) {
	if st.opts.Caps.MaxNodes > 0 && int(st.metrics.Nodes) > st.opts.Caps.MaxNodes {
		return engine.CauseMaxNodes, true
	}
	if st.opts.Caps.MaxDepth > 0 && depth > st.opts.Caps.MaxDepth {
		return engine.CauseMaxDepth, true
	}
	if st.useDeadline && (st.steps&(deadlineCheckInterval-1)) == 0 {
		if time.Now().After(st.deadline) {
			return engine.CauseTimeLimit, true
		}
	}
	select {
	case <-st.ctx.Done():
		return engine.CauseCancelled, true
	default:
	}
	return engine.CauseExhausted, false
}

// elapsedMS returns milliseconds since search start.
func (st *searchState) elapsedMS() int64 {
	return time.Since(st.start).Milliseconds()
}

// maybeTick emits a tick event if the configured interval has elapsed.
func (st *searchState) maybeTick() bool {
	if st.opts.ProgressIntervalMS <= 0 {
		return true
	}
	now := st.elapsedMS()
	if now-st.lastTickMS < st.opts.ProgressIntervalMS {
		return true
	}
	st.lastTickMS = now
	return st.stream.Send(st.ctx, engine.Event{
		Type:       engine.EventTick,
		RelativeMS: now,
		Metrics:    st.metrics,
	})
}
