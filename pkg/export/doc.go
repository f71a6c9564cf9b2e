// Package export serializes a solved floor-plan Layout to JSON (for
// archiving and programmatic consumption) and to SVG (for visual
// inspection), mirroring the export formats a host application would need
// to render or persist the engine's output.
package export
