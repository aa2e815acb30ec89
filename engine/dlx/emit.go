package dlx

import (
	"github.com/ballpuzzle-labs/fccsolver/engine"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
	"github.com/ballpuzzle-labs/fccsolver/signature"
)

// emitSolution reconstructs a SolutionRecord from st.chosen, computes
// its canonical signature under the container's own symmetry group,
// and emits it if not already seen this run (spec.md §4.7).
func (st *searchState) emitSolution() {
	occupiedCells := make([]lattice.Cell, 0, st.ix.NumCells())
	placements := make([]engine.Placement, 0, len(st.chosen))
	used := make([]string, 0, len(st.chosen))

	for _, r := range st.chosen {
		c := &st.ix.Candidates[st.placements[r.rowID].candidateID]
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
