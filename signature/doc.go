// Package signature computes canonical solution signatures used to
// deduplicate rotation-equivalent solutions during search (spec.md
// §4.7), grounded on the reference implementation's
// io/solution_sig.py: canonical_state_signature hashes a
// symmetry-canonicalised cell set with SHA-256.
//
// Unlike lattice.CID (canonicalised over the full 24-rotation group, for
// identifying a piece or container shape up to any orientation), a
// solution signature canonicalises over G(container) — the container's
// own stabiliser subgroup — because two solutions of the same container
// are equivalent only if a symmetry of *that specific container* maps
// one onto the other; using the full 24-group would over-merge
// solutions that look different under every rotation the container
// actually admits.
package signature
