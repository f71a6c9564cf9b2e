package room

import (
	"fmt"
	"math"
)

// Spec is a single room's architectural requirements. It is immutable input
// to the solver: adjacentTo and notAdjacentTo must be disjoint and
// self-references are ignored.
type Spec struct {
	ID              string   `yaml:"id" json:"id"`
	MinArea         float64  `yaml:"minArea" json:"minArea"`
	AdjacentTo      []string `yaml:"adjacentTo,omitempty" json:"adjacentTo,omitempty"`
	NotAdjacentTo   []string `yaml:"notAdjacentTo,omitempty" json:"notAdjacentTo,omitempty"`
	HasExteriorWall bool     `yaml:"hasExteriorWall,omitempty" json:"hasExteriorWall,omitempty"`

	// index is the position of this spec in the caller-supplied input,
	// used only as a stable tie-break by the orderer; it plays no part in
	// the spec's identity or equality.
	index int
}

// Index returns the spec's position in the original, pre-ordering input.
func (s Spec) Index() int {
	return s.index
}

// WithIndex returns a copy of s with its original-input index recorded.
// orderer.Order calls this once per spec, before sorting, so that a stable
// secondary sort key is available even if a future change swaps
// sort.SliceStable for an unstable sort.
func (s Spec) WithIndex(i int) Spec {
	s.index = i
	return s
}

// ConstraintCount is the most-constrained-first heuristic weight: the
// number of declared relational/exterior constraints on this room.
func (s Spec) ConstraintCount() int {
	n := len(s.AdjacentTo) + len(s.NotAdjacentTo)
	if s.HasExteriorWall {
		n++
	}
	return n
}

// Validate checks a single spec in isolation (positive area, disjoint
// adjacency sets, no self-reference). It does not check cross-spec
// properties such as duplicate ids, which the caller is responsible for.
func (s Spec) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("room id cannot be empty")
	}
	if s.MinArea <= 0 || math.IsInf(s.MinArea, 0) || math.IsNaN(s.MinArea) {
		return fmt.Errorf("room %s: minArea must be a positive finite number, got %g", s.ID, s.MinArea)
	}

	forbidden := make(map[string]bool, len(s.NotAdjacentTo))
	for _, id := range s.NotAdjacentTo {
		if id == s.ID {
			continue
		}
		forbidden[id] = true
	}
	for _, id := range s.AdjacentTo {
		if id == s.ID {
			continue
		}
		if forbidden[id] {
			return fmt.Errorf("room %s: %q appears in both adjacentTo and notAdjacentTo", s.ID, id)
		}
	}
	return nil
}
