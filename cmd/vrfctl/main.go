package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexisbeaulieu97/vrfctl/internal/engine"
	vrfctlerrors "github.com/alexisbeaulieu97/vrfctl/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if msg := errorMessage(err); msg != "" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(exitCodeFor(err))
}

// exitError carries a process exit code out of a command. A nil err means the outcome
// was already reported and nothing more should be printed.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitCodeFor(err error) int {
	if err == nil {
		return engine.ExitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	var parseErr *vrfctlerrors.ParseError
	var validationErr *vrfctlerrors.ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) {
		return engine.ExitConfigError
	}

	return engine.ExitChanges
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) && exitErr.err == nil {
		return ""
	}
	return err.Error()
}
