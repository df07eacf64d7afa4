// Package runtime executes the external processes the CLI delegates its
// real work to: the editor, the browser, and the image converter.
package runtime

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Result captures the output of a finished subprocess.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOptions tunes a single Run call.
type RunOptions struct {
	// Dir is the working directory; empty means the caller's.
	Dir string
	// Stdin is piped to the subprocess when non-nil.
	Stdin io.Reader
	// Timeout bounds the subprocess; zero means no limit.
	Timeout time.Duration
}

// Executor runs external commands. OSExecutor is the real implementation;
// MockExecutor stands in for it in tests.
type Executor interface {
	// Run executes a command to completion, capturing its output.
	// A non-zero exit status is returned as an *ExitError.
	Run(ctx context.Context, name string, args []string, opts RunOptions) (Result, error)

	// Interactive executes a command attached to the caller's terminal
	// and returns its exit code. The editor needs the TTY, so nothing
	// is captured.
	Interactive(ctx context.Context, name string, args []string) (int, error)

	// ProcessRunning reports whether a process with the given name is
	// currently running.
	ProcessRunning(ctx context.Context, name string) (bool, error)
}

// ExitError reports a subprocess that ran but exited non-zero.
type ExitError struct {
	Cmd      string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with status %d: %s", e.Cmd, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s exited with status %d", e.Cmd, e.ExitCode)
}
