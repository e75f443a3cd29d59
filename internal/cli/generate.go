package cli

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patchgrid/pkg/buildinfo"
	"github.com/matzehuels/patchgrid/pkg/errors"
	"github.com/matzehuels/patchgrid/pkg/layout"
	"github.com/matzehuels/patchgrid/pkg/pipeline"
)

const (
	argsUsage = "grid_width grid_height number_of_patches patch_width patch_height"

	msgUsage   = "Usage: " + appName + " " + argsUsage
	msgInteger = "All arguments must be integers."
)

// generateFlags holds the optional flags of the root command.
type generateFlags struct {
	outputRoot string
	dryRun     bool
	manifest   bool
}

// exactArgs rejects anything but five positional arguments with the usage line.
func exactArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 5 {
		return errors.New(errors.ErrCodeInvalidArgs, msgUsage)
	}
	return nil
}

// flagError reports unknown or malformed flags together with the usage line.
func flagError(cmd *cobra.Command, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidArgs, err, "%v\n%s", err, msgUsage)
}

// negativeInt matches arguments pflag would otherwise read as shorthand flags.
var negativeInt = regexp.MustCompile(`^-\d+$`)

// normalizeArgs moves every flag in front of a "--" terminator and every
// positional argument after it, so negative integers such as "-1" reach
// parseParams instead of failing as unknown shorthand flags.
func normalizeArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case negativeInt.MatchString(a):
			positional = append(positional, a)
		case takesValue(a):
			flags = append(flags, a)
			if i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case len(a) > 1 && strings.HasPrefix(a, "-"):
			flags = append(flags, a)
		default:
			positional = append(positional, a)
		}
	}
	return append(append(flags, "--"), positional...)
}

// takesValue reports whether a is a flag whose value is the next argument.
func takesValue(a string) bool {
	if a == "--output-root" {
		return true
	}
	// Shorthand cluster ending in -o, e.g. "-o" or "-vo".
	return len(a) > 1 && a[0] == '-' && a[1] != '-' && !strings.Contains(a, "=") &&
		strings.HasSuffix(a, "o")
}

// parseParams converts the five positional arguments into run parameters.
// It only checks that each argument is an integer; bounds are checked by
// layout.Params.Validate. Integers too large for int are clamped to
// math.MinInt/math.MaxInt so they fail the bounds check, not the integer check.
func parseParams(args []string) (layout.Params, error) {
	vals := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			err = nil
		}
		if err != nil {
			return layout.Params{}, errors.Wrap(errors.ErrCodeInvalidInteger, err, msgInteger)
		}
		vals[i] = v
	}
	return layout.Params{
		GridWidth:   vals[0],
		GridHeight:  vals[1],
		Patches:     vals[2],
		PatchWidth:  vals[3],
		PatchHeight: vals[4],
	}, nil
}

// runGenerate validates the arguments, runs the pipeline and prints the summary to out.
func (c *CLI) runGenerate(ctx context.Context, out io.Writer, args []string, flags generateFlags) error {
	params, err := parseParams(args)
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Params:     params,
		OutputRoot: flags.outputRoot,
		DryRun:     flags.dryRun,
		Manifest:   flags.manifest,
		Version:    buildinfo.Version,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	prog.done(fmt.Sprintf("Enumerated %d candidate combinations", res.UpperBound))

	printGenerated(out, res.Count)
	switch {
	case flags.dryRun:
		printDetail(out, "dry run, no files written")
	default:
		printFile(out, res.Dir)
		if res.ManifestPath != "" {
			printFile(out, res.ManifestPath)
		}
	}
	return nil
}
