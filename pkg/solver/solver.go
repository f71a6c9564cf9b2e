package solver

import (
	"context"
	"sort"
	"time"

	"github.com/dshills/floorplangen/pkg/candidate"
	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/room"
	"github.com/dshills/floorplangen/pkg/scorer"
)

// Options configures one Solve call. The zero value runs with no deadline.
type Options struct {
	// Deadline, if non-nil, is consulted at every recursion entry; once
	// passed, Solve returns a Timeout-kind error. This is purely
	// observational cancellation, never a tie-break: it can only abort a
	// search early, never change which candidate a tie prefers.
	Deadline *time.Time
}

type scoredCandidate struct {
	rect  geometry.Rect
	score room.PositionScore
	index int // insertion order, used as an explicit stable tie-break
}

// Solve runs the recursive backtracking search over rooms, which must
// already be in the order the search should attempt them (the caller is
// expected to have run them through the orderer). It returns the first
// complete layout found under best-first sibling expansion, or a
// NoSolution/Timeout/InternalInvariant SolveError (InvalidInput for an
// invalid boundary or a room the candidate generator rejects).
func Solve(ctx context.Context, rooms []room.Spec, boundary geometry.Boundary, opts Options) (*room.Layout, error) {
	if err := boundary.Validate(); err != nil {
		return nil, room.NewError(room.InvalidInput, "%v", err)
	}

	specsByID := make(map[string]room.Spec, len(rooms))
	for _, r := range rooms {
		specsByID[r.ID] = r
	}

	placed, err := recurse(ctx, rooms, nil, specsByID, boundary, opts)
	if err != nil {
		return nil, err
	}

	return &room.Layout{
		PlacedRooms: placed,
		TotalScore:  sumScores(placed),
	}, nil
}

func recurse(ctx context.Context, remaining []room.Spec, placed []room.PlacedRoom, specsByID map[string]room.Spec, boundary geometry.Boundary, opts Options) ([]room.PlacedRoom, error) {
	if err := checkDeadline(ctx, opts); err != nil {
		return nil, err
	}

	if len(remaining) == 0 {
		out := make([]room.PlacedRoom, len(placed))
		copy(out, placed)
		return out, nil
	}

	spec := remaining[0]
	rest := remaining[1:]

	cands, err := candidate.Generate(spec, boundary)
	if err != nil {
		return nil, room.NewRoomError(room.InvalidInput, spec.ID, "%v", err)
	}

	scored := make([]scoredCandidate, 0, len(cands))
	for i, c := range cands {
		s := scorer.Score(c, spec, placed, specsByID, boundary)
		if s.Admissible() {
			scored = append(scored, scoredCandidate{rect: c, score: s, index: i})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score.TotalScore != scored[j].score.TotalScore {
			return scored[i].score.TotalScore > scored[j].score.TotalScore
		}
		return scored[i].index < scored[j].index
	})

	for _, sc := range scored {
		candidatePlacement := room.PlacedRoom{ID: spec.ID, Rect: sc.rect, Score: sc.score.TotalScore}

		if err := checkOverlapInvariant(candidatePlacement, placed); err != nil {
			return nil, err
		}

		nextPlaced := append(append([]room.PlacedRoom{}, placed...), candidatePlacement)

		result, err := recurse(ctx, rest, nextPlaced, specsByID, boundary, opts)
		if err != nil {
			if isTerminal(err) {
				return nil, err
			}
			continue
		}
		return result, nil
	}

	return nil, room.NewError(room.NoSolution, "no admissible placement found for the ordered room sequence starting at %s", spec.ID)
}

// checkOverlapInvariant re-verifies, independently of the scorer, that a
// candidate admitted as violation-free really does not overlap any placed
// room. A failure here is InternalInvariant, not NoSolution: it means the
// scorer and the geometry kernel disagree, not that the search ran out of
// options.
func checkOverlapInvariant(placement room.PlacedRoom, placed []room.PlacedRoom) error {
	for _, p := range placed {
		if geometry.Overlaps(placement.Rect, p.Rect) {
			return room.NewRoomError(room.InternalInvariant, placement.ID,
				"candidate passed scoring but overlaps already-placed room %s", p.ID)
		}
	}
	return nil
}

func checkDeadline(ctx context.Context, opts Options) error {
	if ctx != nil {
		select {
		case <-ctx.Done():
			return room.NewError(room.Timeout, "context cancelled: %v", ctx.Err())
		default:
		}
	}
	if opts.Deadline != nil && time.Now().After(*opts.Deadline) {
		return room.NewError(room.Timeout, "deadline %s exceeded", opts.Deadline.Format(time.RFC3339))
	}
	return nil
}

// isTerminal reports whether an error from a child recursion should abort
// the whole search immediately rather than simply being treated as "this
// branch failed, try the next sibling". NoSolution is the ordinary,
// expected failure of one branch; Timeout and InternalInvariant must
// propagate straight to the caller.
func isTerminal(err error) bool {
	se, ok := err.(*room.SolveError)
	if !ok {
		return true
	}
	return se.Kind != room.NoSolution
}

func sumScores(placed []room.PlacedRoom) float64 {
	total := 0.0
	for _, p := range placed {
		total += p.Score
	}
	return total
}
