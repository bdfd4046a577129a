package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// reportedError marks a failure that was already written to the log.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// printError writes err to w unless it was already logged or came from an
// interrupt.
func printError(w io.Writer, err error) {
	var reported *reportedError
	if errors.As(err, &reported) || errors.Is(err, context.Canceled) {
		return
	}
	fmt.Fprintln(w, err)
}
