package engine

import (
	"context"
	"sort"
	"sync"

	"github.com/ballpuzzle-labs/fccsolver/candidate"
	"github.com/ballpuzzle-labs/fccsolver/lattice"
)

// Solver is implemented by each concrete search engine (dfs, dlx). A
// Solver runs exactly one combination's search and streams its events
// through the returned Stream, honoring opts and ctx at every
// suspension point (spec.md §4.9).
type Solver interface {
	// Solve begins a search over ix for the given container, emitting
	// events asynchronously. containerCID and symmetry are passed
	// through so the engine can stamp solution records and compute
	// signatures without recomputing container-level invariants.
	Solve(ctx context.Context, containerCID string, symmetry []lattice.Rotation, ix *candidate.Index, piecesUsed []string, opts Options) (*Stream, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Solver{}
)

// Register adds a named Solver implementation to the shared registry,
// mirroring the reference implementation's solver/registry.py ENGINES
// map and get_engine lookup. Engines register themselves from an
// init() in their own package.
func Register(name string, s Solver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = s
}

// Get looks up a registered Solver by name.
func Get(name string) (Solver, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[name]
	if !ok {
		return nil, ErrUnsupportedEngine
	}
	return s, nil
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
