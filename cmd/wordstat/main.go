package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"wordstat/internal/textstats"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes the command tree and converts any failure into the message
// and exit status the user sees.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// Cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd := newRootCommand()
	cmd.InitDefaultHelpFlag()
	cmd.SetArgs(protectDashArguments(cmd.Flags(), args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	fmt.Fprintln(stdout, failureMessage(err))
	return 1
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "\nProgram interrupted by user"
	case errors.Is(err, textstats.ErrEmptyInput):
		return "Error: " + textstats.ErrEmptyInput.Error()
	case errors.Is(err, textstats.ErrNoWords):
		return "Error: " + textstats.ErrNoWords.Error()
	default:
		return "\nError: " + err.Error()
	}
}

// usageError marks failures caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }
