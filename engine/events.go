package engine

import (
	"github.com/ballpuzzle-labs/fccsolver/lattice"
	"github.com/ballpuzzle-labs/fccsolver/signature"
)

// EventType tags an Event's kind (spec.md §4.9).
type EventType int

const (
	// EventTick carries periodic progress metrics.
	EventTick EventType = iota

	// EventSolution carries a full solution record.
	EventSolution

	// EventDone is the final event of a stream, carrying aggregate
	// metrics and termination cause.
	EventDone
)

// String renders the event type's name, for log lines and test
// failure messages.
func (t EventType) String() string {
	switch t {
	case EventTick:
		return "tick"
	case EventSolution:
		return "solution"
	case EventDone:
		return "done"
	default:
		return "unknown"
	}
}

// TerminationCause records why a done event was emitted.
type TerminationCause int

const (
	// CauseExhausted means the search space was fully explored.
	CauseExhausted TerminationCause = iota

	// CauseMaxResults means Options.MaxResults was reached.
	CauseMaxResults

	// CauseTimeLimit means Options.TimeLimit elapsed.
	CauseTimeLimit

	// CauseMaxNodes means Options.Caps.MaxNodes was reached.
	CauseMaxNodes

	// CauseMaxDepth means Options.Caps.MaxDepth was reached.
	CauseMaxDepth

	// CauseMaxRows means Options.Caps.MaxRows was reached (DLX only).
	CauseMaxRows

	// CauseCancelled means the caller's context was cancelled.
	CauseCancelled

	// CauseInternalInvariant means a debug-build invariant violation
	// was recovered non-fatally (Options.StrictInvariants == false).
	CauseInternalInvariant
)

// Metrics is the counter set carried by tick and done events (spec.md
// §4.9's "{nodes, pruned, depth, bestDepth, solutions, engine-specific
// counters}").
type Metrics struct {
	Nodes       int64
	Pruned      int64
	Depth       int
	BestDepth   int
	Solutions   int
	RowsTried   int64 // DLX-specific; zero for DFS
	Backtracks  int64
}

// Placement is one piece instance within a solution (spec.md §6's
// placements[] shape).
type Placement struct {
	Piece       string
	Ori         int
	Translation lattice.Cell
	Coordinates []lattice.Cell
}

// SolutionRecord is the guaranteed-field shape of an emitted solution
// (spec.md §4.7/§6).
type SolutionRecord struct {
	ContainerCIDSha256  string
	Lattice             string
	PiecesUsed          []string
	Placements          []Placement
	SidStateCanonSha256 string
}

// StubSolution builds the stub record spec.md §4.7 requires when a
// search finishes with zero solutions: empty placements, and a
// signature computed over the empty occupied set under the
// container's own symmetry group (spec.md §7), rather than a
// placeholder literal.
func StubSolution(containerCID string, symmetry []lattice.Rotation) SolutionRecord {
	return SolutionRecord{
		ContainerCIDSha256:  containerCID,
		Lattice:             "fcc",
		PiecesUsed:          nil,
		Placements:          nil,
		SidStateCanonSha256: signature.Canonical(nil, symmetry),
	}
}

// Event is one tagged record in a solve's output stream, carrying a
// monotonically increasing relative timestamp in milliseconds since
// solve start (spec.md §4.9).
type Event struct {
	Type         EventType
	RelativeMS   int64
	Metrics      Metrics
	Solution     SolutionRecord
	Cause        TerminationCause
}
