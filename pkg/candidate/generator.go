package candidate

import (
	"fmt"
	"math"

	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/room"
)

// aspectRatios is the fixed width/height sweep used to derive candidate
// sizes from a room's minimum area. The set and its order are part of the
// contract: changing it changes which layouts the solver can find.
var aspectRatios = []float64{0.5, 0.67, 0.8, 1.0, 1.2, 1.5, 2.0}

type key struct {
	x, y, w, h float64
}

// Generate enumerates every candidate rectangle for spec within boundary:
// for each aspect ratio, a grid-snapped (width, height) pair with area at
// least spec.MinArea, then every grid-aligned translation of that size that
// still fits inside the boundary. Duplicate rectangles produced by
// different aspect ratios are emitted only once, in first-seen order.
func Generate(spec room.Spec, boundary geometry.Boundary) ([]geometry.Rect, error) {
	if spec.MinArea <= 0 {
		return nil, fmt.Errorf("candidate: room %s has non-positive minArea %g", spec.ID, spec.MinArea)
	}
	if err := boundary.Validate(); err != nil {
		return nil, fmt.Errorf("candidate: %w", err)
	}

	seen := make(map[key]bool)
	var out []geometry.Rect

	for _, ratio := range aspectRatios {
		h := math.Sqrt(spec.MinArea / ratio)
		w := ratio * h

		w = geometry.SnapUp(w)
		h = geometry.SnapUp(h)

		// Snapping can round down due to floating error on exact multiples;
		// nudge up one grid step until the area requirement is strictly met.
		for w*h < spec.MinArea {
			w += geometry.GridStep
		}

		if w > boundary.Width+geometry.Epsilon || h > boundary.Height+geometry.Epsilon {
			continue
		}

		for x := 0.0; x <= boundary.Width-w+geometry.Epsilon; x += geometry.GridStep {
			for y := 0.0; y <= boundary.Height-h+geometry.Epsilon; y += geometry.GridStep {
				k := key{x: roundGrid(x), y: roundGrid(y), w: roundGrid(w), h: roundGrid(h)}
				if seen[k] {
					continue
				}
				seen[k] = true
				out = append(out, geometry.Rect{X: k.x, Y: k.y, Width: k.w, Height: k.h})
			}
		}
	}

	return out, nil
}

// roundGrid snaps a coordinate that should already be grid-aligned to the
// nearest grid step, absorbing floating-point drift from repeated addition
// so that de-duplication keys compare equal for geometrically identical
// rectangles.
func roundGrid(v float64) float64 {
	return math.Round(v/geometry.GridStep) * geometry.GridStep
}
