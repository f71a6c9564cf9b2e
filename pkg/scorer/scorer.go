package scorer

import (
	"fmt"

	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/room"
)

// Point values for each scoring component. These are part of the contract:
// test vectors depend on them exactly.
const (
	hardConstraintPoints   = 20.0
	requiredAdjacencyBonus = 5.0
	exteriorWallBonus      = 3.0
	spaceEfficiencyPoints  = 10.0
	validityBonus          = 5.0
)

// Score rates candidate as a placement for spec, given the rooms already
// placed in the partial layout and the site boundary. specsByID supplies
// the original Spec for every room id in the project (not just the ones
// placed so far), so an adjacency relation declared on only one side of a
// pair is enforced no matter which of the two rooms is placed first. A
// non-empty Violations list means the placement is inadmissible and the
// solver must not recurse into a layout containing it.
func Score(candidate geometry.Rect, spec room.Spec, placed []room.PlacedRoom, specsByID map[string]room.Spec, boundary geometry.Boundary) room.PositionScore {
	var violations []string

	if !geometry.Contains(boundary.Rect(), candidate) {
		violations = append(violations, "outside_boundary")
	}

	for _, p := range placed {
		if geometry.Overlaps(candidate, p.Rect) {
			violations = append(violations, fmt.Sprintf("overlaps:%s", p.ID))
		}
	}

	requiredIDs, forbiddenIDs := effectiveAdjacency(spec, placed, specsByID)

	requiredAdjacent := 0
	for _, otherID := range requiredIDs {
		p, ok := findPlaced(placed, otherID)
		if !ok {
			continue // not yet placed: vacuously satisfied, per the adjacency contract
		}
		if geometry.IsAdjacent(candidate, p.Rect) {
			requiredAdjacent++
		} else {
			violations = append(violations, fmt.Sprintf("missing_adjacency:%s", otherID))
		}
	}

	for _, otherID := range forbiddenIDs {
		p, ok := findPlaced(placed, otherID)
		if !ok {
			continue
		}
		if geometry.IsAdjacent(candidate, p.Rect) {
			violations = append(violations, fmt.Sprintf("forbidden_adjacency:%s", otherID))
		}
	}

	exteriorSatisfied := geometry.TouchesExterior(candidate, boundary.Rect())
	if spec.HasExteriorWall && !exteriorSatisfied {
		violations = append(violations, "no_exterior_wall")
	}

	hard := 0.0
	if len(violations) == 0 {
		hard = hardConstraintPoints
	}

	soft := float64(requiredAdjacent) * requiredAdjacencyBonus
	if spec.HasExteriorWall && exteriorSatisfied {
		// Counted again here on top of the hard-constraint pass.
		soft += exteriorWallBonus
	}

	efficiency := spaceEfficiencyPoints * min1(spec.MinArea/candidate.Area())

	total := hard + soft + efficiency
	if len(violations) == 0 {
		total += validityBonus
	}
	if total < 0 {
		total = 0
	}

	return room.PositionScore{
		HardConstraintScore:  hard,
		SoftPreferenceScore:  soft,
		SpaceEfficiencyScore: efficiency,
		TotalScore:           total,
		Violations:           violations,
	}
}

// effectiveAdjacency returns the full set of ids spec must be adjacent to
// (respectively, must not be adjacent to), combining spec's own declared
// lists with the reverse relations declared by already-placed rooms whose
// own Spec names spec.ID. adjacent_to/not_adjacent_to are declared once per
// pair in practice, but either room can be the one that names the
// relationship, and whichever room the solver places first must still
// enforce it. Own declarations come first, then reverse ones in placement
// order, with duplicates dropped so a relation named by both sides isn't
// double-counted in the soft adjacency bonus.
func effectiveAdjacency(spec room.Spec, placed []room.PlacedRoom, specsByID map[string]room.Spec) (required, forbidden []string) {
	required = append(required, spec.AdjacentTo...)
	forbidden = append(forbidden, spec.NotAdjacentTo...)

	seenRequired := toSet(spec.AdjacentTo)
	seenForbidden := toSet(spec.NotAdjacentTo)

	for _, p := range placed {
		other, ok := specsByID[p.ID]
		if !ok {
			continue
		}
		if containsID(other.AdjacentTo, spec.ID) && !seenRequired[p.ID] {
			required = append(required, p.ID)
			seenRequired[p.ID] = true
		}
		if containsID(other.NotAdjacentTo, spec.ID) && !seenForbidden[p.ID] {
			forbidden = append(forbidden, p.ID)
			seenForbidden[p.ID] = true
		}
	}
	return required, forbidden
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func findPlaced(placed []room.PlacedRoom, id string) (room.PlacedRoom, bool) {
	for _, p := range placed {
		if p.ID == id {
			return p, true
		}
	}
	return room.PlacedRoom{}, false
}

func min1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}
