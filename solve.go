package fccsolver

import (
	"context"
	"fmt"

	"github.com/ballpuzzle-labs/fccsolver/candidate"
	"github.com/ballpuzzle-labs/fccsolver/combo"
	"github.com/ballpuzzle-labs/fccsolver/engine"
	_ "github.com/ballpuzzle-labs/fccsolver/engine/dfs" // registers "dfs"
	_ "github.com/ballpuzzle-labs/fccsolver/engine/dlx" // registers "dlx"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
	"github.com/ballpuzzle-labs/fccsolver/piece"
)

// Container is a finite set of FCC lattice cells to be tiled, plus its
// content-derived identity (spec.md §3, §6). CID is produced by
// lattice.CID; callers that load containers from external storage are
// expected to validate it against freshly recomputed cells themselves
// (external-loader responsibility, spec.md §7).
type Container struct {
	Lattice string // "fcc"
	Cells   []lattice.Cell
	CID     string
}

// NewContainer builds a Container from a cell set, computing its CID.
func NewContainer(cells []lattice.Cell) Container {
	return Container{
		Lattice: "fcc",
		Cells:   cells,
		CID:     lattice.CID(cells),
	}
}

// Solve is the module's sole exported entrypoint (spec.md §6): it
// enumerates the inventory's valid piece combinations (combo.Enumerate)
// and runs the named engine against each in turn, deduplicating
// solutions across combinations by canonical signature and merging every
// combination's events into one output Stream.
func Solve(container Container, inv combo.Inventory, lib *piece.Library, engineName string, opts engine.Options) (*engine.Stream, error) {
	solver, err := engine.Get(engineName)
	if err != nil {
		return nil, fmt.Errorf("fccsolver: solve: %w", err)
	}

	pieceSize := make(map[string]int, lib.Len())
	for _, label := range lib.Labels() {
		p, err := lib.Get(label)
		if err != nil {
			return nil, fmt.Errorf("fccsolver: solve: %w", err)
		}
		pieceSize[label] = p.Size()
	}
	for _, label := range inv.Labels() {
		if _, ok := pieceSize[label]; !ok {
			return nil, fmt.Errorf("fccsolver: solve: inventory label %q: %w", label, piece.ErrUnknownLabel)
		}
	}

	combos, err := combo.Enumerate(len(container.Cells), inv, pieceSize, nil)
	if err != nil {
		return nil, fmt.Errorf("fccsolver: solve: %w", err)
	}

	symmetry := lattice.SymmetryGroup(container.Cells)
	out := engine.NewStream()

	go runCombinations(out, container, combos, lib, symmetry, solver, opts)

	return out, nil
}

// runCombinations drives the outer combination loop described in
// spec.md §4.8/§4.5: one inner engine run per combination, in
// enumeration order, stopping once Options.MaxResults distinct
// solutions have been emitted across the whole run.
func runCombinations(out *engine.Stream, container Container, combos []combo.Combination, lib *piece.Library, symmetry []lattice.Rotation, solver engine.Solver, opts engine.Options) {
	defer out.Close()

	ctx := context.Background()
	seen := make(map[string]bool)
	var total engine.Metrics

	finish := func(cause engine.TerminationCause) {
		ev := engine.Event{Type: engine.EventDone, Metrics: total, Cause: cause}
		if total.Solutions == 0 {
			ev.Solution = engine.StubSolution(container.CID, symmetry)
		}
		out.Send(ctx, ev)
	}

	if len(combos) == 0 {
		finish(engine.CauseExhausted)
		return
	}

	for comboIdx, c := range combos {
		piecesUsed := c.Labels()

		ix, err := candidate.Generate(container.Cells, lib, dedupeLabels(piecesUsed))
		if err != nil {
			continue // empty container or label missing from lib; try the next one
		}
		ix = candidate.Dedup(ix)
		ix = candidate.ReduceDominance(ix)

		comboOpts := opts
		comboOpts.Seed = engine.DeriveContainerSeed(opts.Seed, container.CID, comboIdx)

		stream, err := solver.Solve(ctx, container.CID, symmetry, ix, piecesUsed, comboOpts)
		if err != nil {
			continue
		}

		stop := false
		for {
			ev, ok := stream.Next(ctx)
			if !ok {
				break
			}
			switch ev.Type {
			case engine.EventSolution:
				if seen[ev.Solution.SidStateCanonSha256] {
					continue
				}
				seen[ev.Solution.SidStateCanonSha256] = true
				total.Solutions++
				ev.Metrics = total
				if !out.Send(ctx, ev) {
					return
				}
				if opts.MaxResults > 0 && total.Solutions >= opts.MaxResults {
					finish(engine.CauseMaxResults)
					return
				}
			case engine.EventTick:
				merged := ev.Metrics
				merged.Solutions = total.Solutions
				ev.Metrics = merged
				if !out.Send(ctx, ev) {
					return
				}
			case engine.EventDone:
				total.Nodes += ev.Metrics.Nodes
				total.Pruned += ev.Metrics.Pruned
				total.RowsTried += ev.Metrics.RowsTried
				total.Backtracks += ev.Metrics.Backtracks
				if ev.Metrics.BestDepth > total.BestDepth {
					total.BestDepth = ev.Metrics.BestDepth
				}
				switch ev.Cause {
				case engine.CauseExhausted, engine.CauseMaxRows:
					// CauseMaxRows only ends this combination's inner
					// search; the outer loop still tries the rest.
				default:
					finish(ev.Cause)
					stop = true
				}
			}
			if stop {
				return
			}
		}
	}

	finish(engine.CauseExhausted)
}

// dedupeLabels returns the distinct labels in piecesUsed, preserving
// first-occurrence order, for use as candidate.Generate's activeLabels
// (which need only the set of labels in play, not their multiplicity).
func dedupeLabels(piecesUsed []string) []string {
	seen := make(map[string]bool, len(piecesUsed))
	var out []string
	for _, l := range piecesUsed {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}
