// Package pkg provides the libraries behind the patchgrid command.
//
// # Overview
//
// patchgrid writes every placement of N non-overlapping rectangular patches
// on a small character grid to its own text file. The work is split into:
//
//  1. [grid] - base grid construction, cloning, stamping and serialization
//  2. [comb] - lazy lexicographic k-combinations
//  3. [layout] - run parameters, validation, enumeration and rendering
//  4. [output] - directory/file naming, layout files and run manifests
//  5. [pipeline] - orchestration (base grid → enumerate → write)
//
// Supporting packages: [errors] for coded errors, [observability] for hooks,
// [buildinfo] for version data.
//
// # Data Flow
//
//	layout.Params
//	      ↓
//	grid.Base ──────────────┐
//	      ↓                 ↓
//	layout.Enumerate → layout.Render → output.Writer → layouts<W>x<H>/*.txt
//
// # Quick Start
//
//	p := layout.Params{GridWidth: 4, GridHeight: 4, Patches: 2, PatchWidth: 2, PatchHeight: 1}
//	res, err := pipeline.NewRunner(nil).Execute(ctx, pipeline.Options{Params: p})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Generated %d layouts.\n", res.Count)
package pkg
