package room

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/floorplangen/pkg/geometry"
)

// PositionScore is the scorer's per-candidate breakdown: a hard-constraint
// pass/fail component, a soft-preference bonus, a space-efficiency bonus,
// the total (those three plus the validity bonus for a violation-free
// candidate), and the list of hard-constraint violations (empty iff the
// hard component is full marks).
type PositionScore struct {
	HardConstraintScore  float64  `json:"hardConstraintScore"`
	SoftPreferenceScore  float64  `json:"softPreferenceScore"`
	SpaceEfficiencyScore float64  `json:"spaceEfficiencyScore"`
	TotalScore           float64  `json:"totalScore"`
	Violations           []string `json:"violations,omitempty"`
}

// Admissible reports whether this candidate carries no hard-constraint
// violations, i.e. whether the solver may recurse into a layout containing
// it.
func (s PositionScore) Admissible() bool {
	return len(s.Violations) == 0
}

// PlacedRoom bundles the geometry chosen for one room with the score that
// justified choosing it. Its wire form is flat (id, x, y, width, height,
// score): MarshalJSON/UnmarshalJSON below project Rect's fields up a level
// rather than nesting them, matching the documented host-facing schema.
type PlacedRoom struct {
	ID    string
	Rect  geometry.Rect
	Score float64
}

type placedRoomWire struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Score  float64 `json:"score"`
}

// MarshalJSON flattens Rect's fields into the placed room's own object.
func (p PlacedRoom) MarshalJSON() ([]byte, error) {
	return json.Marshal(placedRoomWire{
		ID:     p.ID,
		X:      p.Rect.X,
		Y:      p.Rect.Y,
		Width:  p.Rect.Width,
		Height: p.Rect.Height,
		Score:  p.Score,
	})
}

// UnmarshalJSON reassembles Rect from the placed room's flat wire fields.
func (p *PlacedRoom) UnmarshalJSON(data []byte) error {
	var w placedRoomWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.ID = w.ID
	p.Rect = geometry.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
	p.Score = w.Score
	return nil
}

// Layout is a complete assignment of rectangles to every input room,
// satisfying all hard constraints, together with the search's aggregate
// score and how long the search took.
type Layout struct {
	PlacedRooms       []PlacedRoom `json:"placedRooms"`
	TotalScore        float64      `json:"totalScore"`
	ComputationTimeMS float64      `json:"computationTimeMs"`
	RunID             string       `json:"runId,omitempty"`
}

// ByID returns the placed room with the given id, or false if absent.
func (l *Layout) ByID(id string) (PlacedRoom, bool) {
	for _, p := range l.PlacedRooms {
		if p.ID == id {
			return p, true
		}
	}
	return PlacedRoom{}, false
}

// RecomputeTotalScore sums the individual placed-room scores. Used by
// tests to check that TotalScore is never reported out of sync
// with its constituents.
func (l *Layout) RecomputeTotalScore() float64 {
	total := 0.0
	for _, p := range l.PlacedRooms {
		total += p.Score
	}
	return total
}

// String renders a short human-readable summary of the layout.
func (l *Layout) String() string {
	return fmt.Sprintf("Layout[%d rooms, score=%.1f, %.2fms]", len(l.PlacedRooms), l.TotalScore, l.ComputationTimeMS)
}
