// Package solver performs the recursive backtracking search over an
// already-ordered room sequence, using the candidate generator and scorer
// to find admissible, best-first child placements. It carries no package
// state: every call receives its own copy of the search and leaves no
// trace behind it.
package solver
