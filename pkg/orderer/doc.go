// Package orderer sorts a room list by the most-constrained-first
// heuristic: rooms with more declared relational and exterior-wall
// constraints are attempted earlier, so that hard-to-satisfy rooms claim
// the still-empty canvas while they have the most freedom, and so that
// deep dead branches of the search fail as early as possible.
package orderer
