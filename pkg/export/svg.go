package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/room"
)

// SVGOptions configures floor-plan SVG rendering.
type SVGOptions struct {
	Margin       int    // Canvas margin in pixels
	PixelsPerM   int    // Pixels per metre of site geometry
	ShowLabels   bool   // Show room id + score labels
	ShowLegend   bool   // Show a summary line (room count, total score, time) below the plan
	Title        string // Optional title drawn above the plan
	ExteriorWall string // Stroke color for the boundary
	RoomFill     string // Fill color for room rectangles
	RoomStroke   string // Stroke color for room rectangles
}

// DefaultSVGOptions returns sensible default rendering options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Margin:       40,
		PixelsPerM:   30,
		ShowLabels:   true,
		ShowLegend:   true,
		Title:        "Floor Plan",
		ExteriorWall: "#1a1a2e",
		RoomFill:     "#e8eef7",
		RoomStroke:   "#3a5a8c",
	}
}

// ExportSVG renders layout within boundary as an SVG floor plan: the site
// boundary as an outer rectangle, each placed room as a labelled inner
// rectangle positioned at its real (x, y, width, height), and an optional
// legend and title.
func ExportSVG(layout *room.Layout, boundary geometry.Boundary, opts SVGOptions) ([]byte, error) {
	if layout == nil {
		return nil, fmt.Errorf("export: layout cannot be nil")
	}
	if opts.PixelsPerM <= 0 {
		opts.PixelsPerM = 30
	}
	if opts.Margin < 0 {
		opts.Margin = 40
	}

	headerHeight := 0
	if opts.Title != "" {
		headerHeight = 40
	}
	legendHeight := 0
	if opts.ShowLegend {
		legendHeight = 30
	}

	canvasWidth := int(boundary.Width*float64(opts.PixelsPerM)) + 2*opts.Margin
	canvasHeight := int(boundary.Height*float64(opts.PixelsPerM)) + 2*opts.Margin + headerHeight + legendHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Rect(0, 0, canvasWidth, canvasHeight, "fill:#ffffff")

	originX := opts.Margin
	originY := opts.Margin + headerHeight

	if opts.Title != "" {
		canvas.Text(opts.Margin, opts.Margin, fmt.Sprintf("%s (score %.1f)", opts.Title, layout.TotalScore),
			"font-size:18px;font-family:sans-serif;fill:#1a1a2e")
	}

	// Boundary, drawn with +y pointing up: flip the y axis onto SVG's
	// down-positive coordinate space.
	toSVG := func(r geometry.Rect) (x, y, w, h int) {
		px := originX + int(r.X*float64(opts.PixelsPerM))
		pw := int(r.Width * float64(opts.PixelsPerM))
		ph := int(r.Height * float64(opts.PixelsPerM))
		py := originY + int(boundary.Height*float64(opts.PixelsPerM)) - int(r.Y*float64(opts.PixelsPerM)) - ph
		return px, py, pw, ph
	}

	bx, by, bw, bh := toSVG(boundary.Rect())
	canvas.Rect(bx, by, bw, bh, fmt.Sprintf("fill:none;stroke:%s;stroke-width:3", opts.ExteriorWall))

	rooms := make([]room.PlacedRoom, len(layout.PlacedRooms))
	copy(rooms, layout.PlacedRooms)
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })

	for _, p := range rooms {
		rx, ry, rw, rh := toSVG(p.Rect)
		canvas.Rect(rx, ry, rw, rh, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", opts.RoomFill, opts.RoomStroke))

		if opts.ShowLabels {
			label := fmt.Sprintf("%s (%.1f)", p.ID, p.Score)
			canvas.Text(rx+4, ry+16, label, "font-size:12px;font-family:sans-serif;fill:#1a1a2e")
		}
	}

	if opts.ShowLegend {
		legendY := originY + int(boundary.Height*float64(opts.PixelsPerM)) + 20
		canvas.Text(opts.Margin, legendY,
			fmt.Sprintf("%d rooms placed, total score %.1f, %.2fms", len(layout.PlacedRooms), layout.TotalScore, layout.ComputationTimeMS),
			"font-size:12px;font-family:sans-serif;fill:#555555")
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders layout to an SVG file with 0644 permissions.
func SaveSVGToFile(layout *room.Layout, boundary geometry.Boundary, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(layout, boundary, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
