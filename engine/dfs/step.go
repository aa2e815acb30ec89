package dfs

import (
	"math/rand"
	"time"

	"github.com/ballpuzzle-labs/fccsolver/engine"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
	"github.com/ballpuzzle-labs/fccsolver/signature"
)

// deadlineCheckInterval mirrors tsp/bb.go's sparse deadline checks
// (every 4096 node events) to keep time.Now() off the hot path.
const deadlineCheckInterval = 4096

// run executes the DFS from the given depth and returns the
// termination cause once the whole search tree (or a budget) is
// exhausted. depth also indexes st.placed's length.
func (st *searchState) run(depth int) engine.TerminationCause {
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

	target := st.pickTarget(depth)
	if target == -1 {
		if st.occupied.PopCount() == st.ix.NumCells() {
			st.emitSolution()
			if st.opts.MaxResults > 0 && st.metrics.Solutions >= st.opts.MaxResults {
				return engine.CauseMaxResults
			}
			return engine.CauseExhausted
		}
		// Defensive: pickTarget returns -1 only when no cell is empty, so
		// the container is full above. A dead cell (no feasible
		// candidate) is returned as a target and pruned below.
		st.metrics.Pruned++
		return engine.CauseExhausted
	}

	if st.opts.HolePruning != engine.HoleNone && st.prunedByHoles() {
		st.metrics.Pruned++
		return engine.CauseExhausted
	}

	var feasible []int
	for _, id := range st.ix.CoversByCell[target] {
		if st.feasible(id) {
			feasible = append(feasible, id)
		}
	}
	if len(feasible) == 0 {
		st.metrics.Pruned++
		return engine.CauseExhausted
	}
	ordered := orderCandidates(feasible, st.adj, st.ix, st.occupied, st.opts.Flags.SupportBias)
	if depth == 0 && st.opts.PivotCycle && len(ordered) > 1 {
		ordered = rotatePivot(ordered, st.rng)
	}

	for _, candIdx := range ordered {
		st.place(candIdx)
		if !st.checkAndAddMask() {
			st.metrics.Pruned++
			st.unplace(candIdx)
			continue
		}
		cause := st.run(depth + 1)
		st.unplace(candIdx)

		switch cause {
		case engine.CauseMaxResults, engine.CauseTimeLimit, engine.CauseMaxNodes, engine.CauseMaxDepth, engine.CauseCancelled:
			return cause
		}
	}
	return engine.CauseExhausted
}

// rotatePivot cyclically shifts ordered by a seed-derived offset, so
// different seeds commit to a different depth-0 piece first without
// changing which candidates are eventually tried (spec.md §4.9's
// "pivot_cycle: rotate the depth-0 piece preference periodically").
func rotatePivot(ordered []int, rng *rand.Rand) []int {
	offset := rng.Intn(len(ordered))
	if offset == 0 {
		return ordered
	}
	rotated := make([]int, len(ordered))
	copy(rotated, ordered[offset:])
	copy(rotated[len(ordered)-offset:], ordered[:offset])
	return rotated
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

// pickTarget selects the next empty cell to branch on: the
// anchor-rule's fixed lowest-index cell at depth 0 (spec.md §4.4), MRV
// ("holes-first") at every other depth when Options.Flags.MRVPieces is
// set, and the lowest-index empty cell otherwise.
func (st *searchState) pickTarget(depth int) int {
	if depth == 0 || !st.opts.Flags.MRVPieces {
		return firstEmptyCell(st.occupied, st.ix.NumCells())
	}
	return pickTargetCell(st.ix, st.occupied, st.feasible)
}

// feasible reports whether candidate id can legally be placed now: its
// covered cells are all still empty, and its piece still has inventory
// remaining.
func (st *searchState) feasible(id int) bool {
	c := &st.ix.Candidates[id]
	if st.remaining[c.Piece] <= 0 {
		return false
	}
	return !st.occupied.Intersects(c.Covered)
}

// prunedByHoles applies the configured hole-pruning policy to the
// remaining empty region, grounded on the reference implementation's
// pruning.py should_prune connectivity/component checks.
func (st *searchState) prunedByHoles() bool {
	sizes := st.adj.componentSizes(st.occupied, st.ix.NumCells())
	switch st.opts.HolePruning {
	case engine.HoleLT4:
		for _, s := range sizes {
			if s < 4 {
				return true
			}
		}
	case engine.HoleSingleComponent:
		return len(sizes) > 1
	}
	return false
}

// place commits candidate id: marks its cells occupied, decrements its
// piece's remaining count, and pushes it onto the placement stack.
func (st *searchState) place(id int) {
	c := &st.ix.Candidates[id]
	st.occupied.SetAll(c.Covered)
	st.remaining[c.Piece]--
	st.placed = append(st.placed, *c)
}

// unplace reverses place(id) exactly, restoring the pre-placement
// state (the backtracking invariant: occupied/remaining/placed after
// place+unplace must equal their values before place).
func (st *searchState) unplace(id int) {
	c := &st.ix.Candidates[id]
	st.occupied.ClearAll(c.Covered)
	st.remaining[c.Piece]++
	st.placed = st.placed[:len(st.placed)-1]
}

// checkAndAddMask records st.occupied's current mask in the
// transposition table, reporting whether it is new. A mask reached a
// second time means some other placement order already expanded this
// exact occupancy state, so the recursive call below it is redundant.
func (st *searchState) checkAndAddMask() bool {
	key := st.occupied.Key()
	if st.visited[key] {
		return false
	}
	st.visited[key] = true
	return true
}

// elapsedMS returns milliseconds since search start.
func (st *searchState) elapsedMS() int64 {
	return time.Since(st.start).Milliseconds()
}

// maybeTick emits a tick event if the configured interval has elapsed.
// Returns false if the stream was cancelled mid-send.
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

// emitSolution builds a SolutionRecord from the current placement
// stack, computes its canonical signature under the container's own
// symmetry group, and emits it if it has not been seen before this run
// (spec.md §4.7's dedup-by-signature rule).
func (st *searchState) emitSolution() {
	occupiedCells := make([]lattice.Cell, 0, st.ix.NumCells())
	placements := make([]engine.Placement, 0, len(st.placed))
	used := make([]string, 0, len(st.placed))

	for _, c := range st.placed {
		occupiedCells = append(occupiedCells, c.Cells...)
		placements = append(placements, engine.Placement{
			Piece:       c.Piece,
			Ori:         c.Ori,
			Translation: c.Translation,
			Coordinates: append([]lattice.Cell(nil), c.Cells...),
		})
		used = append(used, c.Piece)
	}

	sig := signature.Canonical(occupiedCells, st.symmetry)
	if st.seen[sig] {
		return
	}
	st.seen[sig] = true
	st.metrics.Solutions++

	st.stream.Send(st.ctx, engine.Event{
		Type:       engine.EventSolution,
		RelativeMS: st.elapsedMS(),
		Metrics:    st.metrics,
		Solution: engine.SolutionRecord{
			ContainerCIDSha256:  st.containerCID,
			Lattice:             "fcc",
			PiecesUsed:          used,
			Placements:          placements,
			SidStateCanonSha256: sig,
		},
	})
}

// emitDone sends the final event of the stream.
func (st *searchState) emitDone(cause engine.TerminationCause) {
	if st.metrics.Solutions == 0 {
		st.stream.Send(st.ctx, engine.Event{
			Type:       engine.EventDone,
			RelativeMS: st.elapsedMS(),
			Metrics:    st.metrics,
			Solution:   engine.StubSolution(st.containerCID, st.symmetry),
			Cause:      cause,
		})
		return
	}
	st.stream.Send(st.ctx, engine.Event{
		Type:       engine.EventDone,
		RelativeMS: st.elapsedMS(),
		Metrics:    st.metrics,
		Cause:      cause,
	})
}

// recoverInvariant converts a panic raised by an internal invariant
// check into a done event carrying CauseInternalInvariant, unless
// Options.StrictInvariants requests the panic propagate (spec.md §7).
func (st *searchState) recoverInvariant() {
	r := recover()
	if r == nil {
		return
	}
	if st.opts.StrictInvariants {
		panic(r)
	}
	st.stream.Send(st.ctx, engine.Event{
		Type:       engine.EventDone,
		RelativeMS: st.elapsedMS(),
		Metrics:    st.metrics,
		Solution:   engine.StubSolution(st.containerCID, st.symmetry),
		Cause:      engine.CauseInternalInvariant,
	})
}
