package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matzehuels/patchgrid/internal/cli"
	"github.com/matzehuels/patchgrid/pkg/errors"
)

// Exit statuses. Both failures are non-zero; scripts can tell bad arguments
// from a run that failed while writing.
const (
	exitInvalidArgs = 1
	exitRunFailed   = 2
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		// Validation and I/O messages are part of the command's output contract.
		fmt.Fprintln(os.Stdout, errors.UserMessage(err))
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context, args []string) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	return c.Execute(ctx, args)
}

// exitCode maps argument errors to exitInvalidArgs and everything else to exitRunFailed.
func exitCode(err error) int {
	if errors.IsValidation(err) {
		return exitInvalidArgs
	}
	return exitRunFailed
}
