package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/floorplangen/pkg/export"
	"github.com/dshills/floorplangen/pkg/floorplan"
	"github.com/dshills/floorplangen/pkg/geometry"
	"github.com/dshills/floorplangen/pkg/room"
)

const version = "1.0.0"

// CLI flags
var (
	configPath  = flag.String("config", "", "Path to YAML project file (required)")
	outputDir   = flag.String("output", ".", "Output directory for generated files")
	format      = flag.String("format", "json", "Export format: json, svg, or all")
	timeoutFlag = flag.Duration("timeout", 0, "Search deadline (0 = no deadline)")
	verbose     = flag.Bool("verbose", false, "Enable verbose output")
	versionF    = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("floorplangen version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading project from %s\n", *configPath)
	}

	project, err := floorplan.LoadProject(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}
	if err := project.Validate(); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}

	if *verbose {
		fmt.Printf("Boundary: %.1fx%.1f\n", project.Boundary.Width, project.Boundary.Height)
		fmt.Printf("Room count: %d\n", len(project.Rooms))
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	opts := floorplan.Options{Logger: logger}
	if *timeoutFlag > 0 {
		deadline := time.Now().Add(*timeoutFlag)
		opts.Deadline = &deadline
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Solving layout...")
	}

	layout, err := floorplan.Solve(ctx, project.Rooms, project.Boundary.Width, project.Boundary.Height, opts)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Solved in %v\n", elapsed)
		printStats(layout)
	}

	baseName := fmt.Sprintf("floorplan_%s", layout.RunID)

	if *format == "json" || *format == "all" {
		if err := exportJSON(layout, baseName); err != nil {
			return err
		}
	}

	if *format == "svg" || *format == "all" {
		if err := exportSVG(layout, project.Boundary, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully solved layout (runId=%s) in %v\n", layout.RunID, elapsed)
	return nil
}

func exportJSON(layout *room.Layout, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}

	if err := export.SaveJSONToFile(layout, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}

	if *verbose {
		if info, err := os.Stat(filename); err == nil {
			fmt.Printf("  Wrote %d bytes\n", info.Size())
		}
	}

	return nil
}

func exportSVG(layout *room.Layout, boundary geometry.Boundary, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}

	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Floor Plan (runId=%s)", layout.RunID)

	if err := export.SaveSVGToFile(layout, boundary, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}

	if *verbose {
		if info, err := os.Stat(filename); err == nil {
			fmt.Printf("  Wrote %d bytes\n", info.Size())
		}
	}

	return nil
}

func printStats(layout *room.Layout) {
	fmt.Println("\nLayout Statistics:")
	fmt.Printf("  Placed rooms: %d\n", len(layout.PlacedRooms))
	fmt.Printf("  Total score: %.2f\n", layout.TotalScore)
	fmt.Printf("  Computation time: %.2fms\n", layout.ComputationTimeMS)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: floorplangen -config <project.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'floorplangen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("floorplangen version %s\n\n", version)
	fmt.Println("A command-line tool for generating deterministic rectangular floor plans.")
	fmt.Println("\nUsage:")
	fmt.Println("  floorplangen -config <project.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML project file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, or all (default: json)")
	fmt.Println("  -timeout duration")
	fmt.Println("        Search deadline, e.g. 5s (default: no deadline)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Solve with default JSON export")
	fmt.Println("  floorplangen -config apartment.yaml")
	fmt.Println("\n  # Solve with a 10s deadline and both export formats")
	fmt.Println("  floorplangen -config apartment.yaml -timeout 10s -format all -output ./out")
	fmt.Println("\n  # Generate SVG visualization with verbose output")
	fmt.Println("  floorplangen -config apartment.yaml -format svg -verbose")
	fmt.Println("\nProject File:")
	fmt.Println("  The YAML project file specifies a site boundary and a list of rooms,")
	fmt.Println("  each with a minimum area and optional adjacency constraints.")
	fmt.Println("  See the project documentation for the full schema.")
}
