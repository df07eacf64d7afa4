package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// OSExecutor implements Executor using os/exec.
type OSExecutor struct {
	log zerolog.Logger
}

// NewOSExecutor creates an executor that logs spawned command lines at
// debug level.
func NewOSExecutor(log zerolog.Logger) *OSExecutor {
	return &OSExecutor{log: log}
}

// Run executes the command, buffering stdout and stderr.
func (e *OSExecutor) Run(ctx context.Context, name string, args []string, opts RunOptions) (Result, error) {
	cmdCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	e.log.Debug().Str("cmd", name).Strs("args", args).Msg("running")

	cmd := exec.CommandContext(cmdCtx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Stdin = opts.Stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		// A deadline kill also surfaces as *exec.ExitError, so check
		// the context first.
		if cmdCtx.Err() == context.DeadlineExceeded {
			return result, fmt.Errorf("%s timed out after %s", name, opts.Timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, &ExitError{
				Cmd:      name,
				ExitCode: result.ExitCode,
				Stderr:   strings.TrimSpace(result.Stderr),
			}
		}
		return result, fmt.Errorf("running %s: %w", name, err)
	}

	return result, nil
}

// Interactive runs the command wired to the caller's stdio and returns
// the child's exit code. Only start failures are reported as errors; a
// non-zero exit is a normal outcome here.
func (e *OSExecutor) Interactive(ctx context.Context, name string, args []string) (int, error) {
	e.log.Debug().Str("cmd", name).Strs("args", args).Msg("running interactive")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("running %s: %w", name, err)
	}
	return 0, nil
}

// ProcessRunning checks for a running process by exact name via pgrep.
// Hosts without pgrep cannot be checked, which is treated as not running.
func (e *OSExecutor) ProcessRunning(ctx context.Context, name string) (bool, error) {
	pgrep, err := exec.LookPath("pgrep")
	if err != nil {
		e.log.Debug().Str("process", name).Msg("pgrep unavailable, skipping process check")
		return false, nil
	}

	if _, err := e.Run(ctx, pgrep, []string{"-x", name}, RunOptions{}); err != nil {
		var exitErr *ExitError
		// pgrep exits 1 when no process matched.
		if errors.As(err, &exitErr) && exitErr.ExitCode == 1 {
			return false, nil
		}
		return false, fmt.Errorf("checking for running %s: %w", name, err)
	}
	return true, nil
}
