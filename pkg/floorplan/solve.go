package floorplan

import (
	"context"
	"log/slog"
	"time"

	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/orderer"
	"github.com/dshills/floorplangen/pkg/room"
	"github.com/dshills/floorplangen/pkg/solver"
)

// Options configures a Solve call. The zero value runs with no deadline
// and no logger.
type Options struct {
	// Deadline, if non-nil, is forwarded to the solver as a cooperative
	// cancellation point. It is purely observational: it can abort a
	// search early but never changes which candidate a tie prefers.
	Deadline *time.Time

	// Logger receives one structured record per call describing its
	// outcome. A nil Logger disables logging entirely; the core engine
	// itself never logs on its own.
	Logger *slog.Logger
}

// Solve validates rooms and boundary, orders the rooms by the
// most-constrained-first heuristic, and runs the backtracking search. It
// owns no mutable state between calls.
func Solve(ctx context.Context, rooms []room.Spec, width, height float64, opts Options) (*room.Layout, error) {
	start := time.Now()
	boundary := geometry.Boundary{Width: width, Height: height}
	runID := DeriveRunID(rooms, boundary)

	if err := validateInput(rooms, boundary); err != nil {
		logOutcome(opts.Logger, runID, rooms, nil, err, time.Since(start))
		return nil, err
	}

	ordered := orderer.Order(rooms)

	layout, err := solver.Solve(ctx, ordered, boundary, solver.Options{Deadline: opts.Deadline})
	elapsed := time.Since(start)

	logOutcome(opts.Logger, runID, rooms, layout, err, elapsed)

	if err != nil {
		return nil, err
	}

	layout.ComputationTimeMS = float64(elapsed.Microseconds()) / 1000.0
	layout.RunID = runID
	return layout, nil
}

// validateInput enforces the InvalidInput rules for the whole request:
// positive finite boundary dimensions (Boundary.Validate, called first),
// each room's own checks (room.Spec.Validate: non-empty id, positive area,
// disjoint adjacency sets), and unique ids across the room list.
func validateInput(rooms []room.Spec, boundary geometry.Boundary) error {
	if err := boundary.Validate(); err != nil {
		return room.NewError(room.InvalidInput, "%v", err)
	}

	seen := make(map[string]bool, len(rooms))
	for _, r := range rooms {
		if err := r.Validate(); err != nil {
			return room.NewError(room.InvalidInput, "%v", err)
		}
		if seen[r.ID] {
			return room.NewRoomError(room.InvalidInput, r.ID, "duplicate room id")
		}
		seen[r.ID] = true
	}

	return nil
}

func logOutcome(logger *slog.Logger, runID string, rooms []room.Spec, layout *room.Layout, err error, elapsed time.Duration) {
	if logger == nil {
		return
	}

	attrs := []any{
		slog.String("runId", runID),
		slog.Int("roomCount", len(rooms)),
		slog.Duration("elapsed", elapsed),
	}

	if err != nil {
		if se, ok := err.(*room.SolveError); ok {
			logger.Warn("floorplan solve failed", append(attrs, slog.String("kind", se.Kind.String()), slog.String("message", se.Message))...)
		} else {
			logger.Error("floorplan solve failed", append(attrs, slog.String("error", err.Error()))...)
		}
		return
	}

	logger.Info("floorplan solve succeeded", append(attrs,
		slog.Int("placedRooms", len(layout.PlacedRooms)),
		slog.Float64("totalScore", layout.TotalScore),
	)...)
}
