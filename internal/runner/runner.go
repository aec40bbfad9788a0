// Package runner executes external commands (git, npm, docker) in a working
// directory and normalizes their failures into typed errors. Verbosity is an
// explicit field on the Runner, not global state, so the runner stays
// reusable and testable in isolation.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrCommandNotFound indicates the executable could not be located on PATH.
var ErrCommandNotFound = errors.New("runner: command not found")

// DefaultTimeout bounds a single external command invocation.
const DefaultTimeout = 2 * time.Minute

// stderrSummaryLimit caps how much captured stderr a CommandFailedError carries.
const stderrSummaryLimit = 1024

// CommandFailedError reports a non-zero exit from an external command.
type CommandFailedError struct {
	Cmd      string
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *CommandFailedError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("runner: %s exited with code %d: %s", e.Cmd, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("runner: %s exited with code %d", e.Cmd, e.ExitCode)
}

// Runner executes external commands synchronously.
type Runner struct {
	// Verbose streams child stdout/stderr to the controlling terminal.
	// When false, output is captured and surfaced only on failure.
	Verbose bool

	logger *slog.Logger
}

// New creates a Runner.
func New(verbose bool, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{Verbose: verbose, logger: logger}
}

// Run executes name with args in cwd. It returns ErrCommandNotFound when the
// executable is missing and a *CommandFailedError on non-zero exit.
func (r *Runner) Run(ctx context.Context, cwd, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = cwd

	var stderr bytes.Buffer
	if r.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
	} else {
		cmd.Stderr = &stderr
	}

	r.logger.Debug("running command", "cmd", name, "args", args, "cwd", cwd)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CommandFailedError{
				Cmd:      name + " " + strings.Join(args, " "),
				ExitCode: exitErr.ExitCode(),
				Stderr:   summarize(stderr.String()),
			}
		}
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

// Check probes for an executable by invoking its version flag. Best-effort:
// it never returns an error, only availability.
func (r *Runner) Check(name string) bool {
	if _, err := exec.LookPath(name); err != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, name, "--version").Run() == nil
}

// GitInit initializes a git repository in cwd.
func (r *Runner) GitInit(ctx context.Context, cwd string) error {
	return r.Run(ctx, cwd, "git", "init")
}

// NpmInstall installs node dependencies in cwd.
func (r *Runner) NpmInstall(ctx context.Context, cwd string) error {
	return r.Run(ctx, cwd, "npm", "install")
}

// summarize trims stderr output to a single bounded summary string.
func summarize(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrSummaryLimit {
		s = s[:stderrSummaryLimit] + "..."
	}
	return s
}
