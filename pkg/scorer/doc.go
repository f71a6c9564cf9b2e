// Package scorer rates a candidate rectangle for one room against the
// rooms already placed in a partial layout. It combines a hard
// pass/fail constraint check (overlap, bounds, adjacency, exterior wall)
// with soft preference and space-efficiency bonuses into a single
// PositionScore the solver uses to rank and prune candidates.
package scorer
