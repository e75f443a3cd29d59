// Package pipeline drives a complete layout generation run.
//
// A run has three stages:
//
//  1. Base grid: build the background grid for the requested size
//  2. Enumerate: walk every non-overlapping patch combination
//  3. Write: render each combination and write it to its own file
//
// The stages run sequentially on the calling goroutine. There is no
// cancellation; an interrupted run leaves whatever files it already wrote.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Params:     layout.Params{GridWidth: 4, GridHeight: 4, Patches: 2, PatchWidth: 2, PatchHeight: 1},
//	    OutputRoot: ".",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Generated %d layouts.\n", res.Count)
package pipeline

import (
	"time"

	"github.com/matzehuels/patchgrid/pkg/layout"
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options contains all configuration for a generation run.
type Options struct {
	// Params is the grid, patch size and patch count.
	Params layout.Params

	// OutputRoot is the parent of the layouts<W>x<H> directory.
	// Empty means the working directory.
	OutputRoot string

	// DryRun enumerates and counts without touching the filesystem.
	DryRun bool

	// Manifest writes manifest.toml next to the layouts.
	Manifest bool

	// Version is recorded in the manifest.
	Version string
}

// Result contains the outputs of a run.
type Result struct {
	// RunID identifies the run in logs and the manifest.
	RunID string

	// Count is the number of accepted layouts (written, unless DryRun).
	Count int

	// UpperBound is the candidate count before overlap filtering.
	UpperBound int

	// Dir is the output directory. Empty for dry runs.
	Dir string

	// ManifestPath is set when a manifest was written.
	ManifestPath string

	// Duration is the wall time of the run.
	Duration time.Duration
}
