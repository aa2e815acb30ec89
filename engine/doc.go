// Package engine defines the shared search contract both the dfs and
// dlx engines implement: a functional-options configuration struct
// (Options, mirroring dfs.DFSOptions / bfs.BFSOptions's Option
// func(*XOptions) + DefaultOptions() pattern), the tick/solution/done
// event protocol, the solution record shape, and a small engine
// registry (grounded on the reference implementation's
// solver/registry.py ENGINES map).
//
// Solve returns a *Stream, a pull-style iterator: the search runs on
// its own goroutine and blocks sending on an unbuffered channel until
// the caller calls Stream.Next, turning a recursive backtracking search
// into a resumable generator without introducing any real concurrency —
// exactly one of {search goroutine, caller} ever runs at a time.
package engine
