package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/patchgrid/pkg/grid"
	"github.com/matzehuels/patchgrid/pkg/layout"
	"github.com/matzehuels/patchgrid/pkg/observability"
	"github.com/matzehuels/patchgrid/pkg/output"
)

// Runner executes generation runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute validates opts.Params and runs base grid → enumerate → write.
//
// Validation errors are returned before anything is created on disk. A write
// failure aborts the run; files already written are left in place.
// ctx carries request-scoped values to observability hooks only.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	p := opts.Params
	if err := p.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{
		RunID:      output.NewRunID(),
		UpperBound: layout.UpperBound(p),
	}
	logger := r.Logger.With("run", res.RunID[:8])
	hooks := observability.Generate()
	hooks.OnGenerateStart(ctx, res.RunID, res.UpperBound)

	err := r.generate(ctx, logger, opts, res)
	res.Duration = time.Since(start)
	hooks.OnGenerateComplete(ctx, res.RunID, res.Count, res.Duration, err)
	if err != nil {
		return nil, err
	}

	if opts.Manifest && !opts.DryRun {
		m := output.NewManifest(res.RunID, p)
		m.Version = opts.Version
		m.StartedAt = start.UTC()
		m.FinishedAt = start.Add(res.Duration).UTC()
		m.Layouts = res.Count
		path, err := output.WriteManifest(res.Dir, m)
		if err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
		res.ManifestPath = path
		logger.Debug("wrote manifest", "path", path)
	}

	logger.Info("generated layouts",
		"layouts", res.Count,
		"candidates", res.UpperBound,
		"duration", res.Duration.Round(time.Millisecond))
	return res, nil
}

func (r *Runner) generate(ctx context.Context, logger *log.Logger, opts Options, res *Result) error {
	p := opts.Params
	logger.Debug("enumerating",
		"grid", fmt.Sprintf("%dx%d", p.GridWidth, p.GridHeight),
		"patch", fmt.Sprintf("%dx%d", p.PatchWidth, p.PatchHeight),
		"patches", p.Patches,
		"positions", len(layout.Positions(p)))

	if opts.DryRun {
		res.Count = layout.Count(p)
		return nil
	}

	w, err := output.NewWriter(opts.OutputRoot, p)
	if err != nil {
		return err
	}
	res.Dir = w.Dir
	logger.Debug("writing layouts", "dir", w.Dir)

	base := grid.Base(p.GridWidth, p.GridHeight)
	patch := p.Patch()
	hooks := observability.Generate()
	for c := range layout.Enumerate(p) {
		path, err := w.Write(layout.Render(base, c, patch))
		if err != nil {
			res.Count = w.Count()
			return err
		}
		hooks.OnLayoutWritten(ctx, res.RunID, w.Count(), path)
	}
	res.Count = w.Count()
	return nil
}
