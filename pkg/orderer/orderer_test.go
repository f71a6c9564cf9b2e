package orderer

import (
	"fmt"
	"testing"

	"github.com/dshills/floorplangen/pkg/room"
	"pgregory.net/rapid"
)

func TestOrderMostConstrainedFirst(t *testing.T) {
	specs := []room.Spec{
		{ID: "a"}, // 0 constraints
		{ID: "b", AdjacentTo: []string{"a"}, HasExteriorWall: true}, // 2 constraints
		{ID: "c", NotAdjacentTo: []string{"a", "b"}},                // 2 constraints
	}

	got := Order(specs)

	if got[0].ID != "b" && got[0].ID != "c" {
		t.Fatalf("expected a 2-constraint room first, got %s", got[0].ID)
	}
	if got[2].ID != "a" {
		t.Fatalf("expected the unconstrained room last, got %s", got[2].ID)
	}
	// Ties preserve input order: b (index 1) before c (index 2).
	if got[0].ID != "b" || got[1].ID != "c" {
		t.Fatalf("expected stable tie-break order [b, c], got [%s, %s]", got[0].ID, got[1].ID)
	}
}

func TestOrderIsPermutation(t *testing.T) {
	specs := []room.Spec{{ID: "x"}, {ID: "y"}, {ID: "z"}}
	got := Order(specs)
	if len(got) != len(specs) {
		t.Fatalf("expected %d rooms, got %d", len(specs), len(got))
	}
	ids := map[string]bool{}
	for _, s := range got {
		ids[s.ID] = true
	}
	for _, s := range specs {
		if !ids[s.ID] {
			t.Fatalf("room %s missing from ordered output", s.ID)
		}
	}
}

func TestPropertyOrderIsPermutationAndMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		specs := make([]room.Spec, n)
		for i := range specs {
			specs[i] = room.Spec{
				ID:              fmt.Sprintf("room%d", i),
				MinArea:         1,
				AdjacentTo:      make([]string, rapid.IntRange(0, 3).Draw(t, "adj")),
				NotAdjacentTo:   make([]string, rapid.IntRange(0, 3).Draw(t, "nadj")),
				HasExteriorWall: rapid.Bool().Draw(t, "ext"),
			}
		}

		got := Order(specs)

		if len(got) != len(specs) {
			t.Fatalf("expected permutation of length %d, got %d", len(specs), len(got))
		}

		if !isNonIncreasing(got) {
			t.Fatalf("constraint counts not monotonically non-increasing: %v", constraintCounts(got))
		}
	})
}

func isNonIncreasing(specs []room.Spec) bool {
	for i := 1; i < len(specs); i++ {
		if specs[i].ConstraintCount() > specs[i-1].ConstraintCount() {
			return false
		}
	}
	return true
}

func constraintCounts(specs []room.Spec) []int {
	out := make([]int, len(specs))
	for i, s := range specs {
		out[i] = s.ConstraintCount()
	}
	return out
}
