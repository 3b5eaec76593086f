package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	m "snare.dev/pkg/snare/internal/model"
)

// DefaultTestCommand builds and runs the tests of the project in the working directory.
var DefaultTestCommand = []string{"go", "test", "-count=1", "./..."}

const (
	defaultPhaseTimeout   = time.Minute
	defaultMaxOutputBytes = 256 * 1024
	killGracePeriod       = 5 * time.Second
)

// RunRequest describes one build-and-test invocation.
type RunRequest struct {
	WorkDir m.Path
	Command []string
	Env     []string
	Timeout time.Duration
}

// RunOutcome is what a build-and-test invocation produced. Passed is derived
// from the exit code alone.
type RunOutcome struct {
	Output    string
	ExitCode  int
	TimedOut  bool
	Truncated bool
	Duration  time.Duration
}

// Passed reports whether the command exited with status 0 before its deadline.
func (o RunOutcome) Passed() bool {
	return !o.TimedOut && o.ExitCode == 0
}

// TestRunnerAdapter abstracts the external build-and-test command.
type TestRunnerAdapter interface {
	// RunTests runs the command in WorkDir. A non-nil error means the command
	// could not be run at all; test failures and timeouts are reported in the outcome.
	RunTests(ctx context.Context, req RunRequest) (RunOutcome, error)
}

// LocalTestRunnerAdapter runs commands with os/exec, killing the whole process
// group when the phase deadline expires.
type LocalTestRunnerAdapter struct {
	maxOutput int
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter capturing at
// most maxOutput bytes per stream (256 KiB when zero).
func NewLocalTestRunnerAdapter(maxOutput int) *LocalTestRunnerAdapter {
	if maxOutput <= 0 {
		maxOutput = defaultMaxOutputBytes
	}

	return &LocalTestRunnerAdapter{maxOutput: maxOutput}
}

// RunTests runs the build-and-test command in the given directory.
func (a *LocalTestRunnerAdapter) RunTests(ctx context.Context, req RunRequest) (RunOutcome, error) {
	command := req.Command
	if len(command) == 0 {
		command = DefaultTestCommand
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = defaultPhaseTimeout
	}

	phaseCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// #nosec G204 - command comes from operator configuration
	cmd := exec.CommandContext(phaseCtx, command[0], command[1:]...)
	cmd.Dir = string(req.WorkDir)
	cmd.Env = append(os.Environ(), req.Env...)

	configureProcessGroup(cmd)

	cmd.Cancel = func() error {
		return killProcessTree(cmd)
	}
	cmd.WaitDelay = killGracePeriod

	var stdout, stderr bytes.Buffer

	stdoutLimited := &limitedWriter{w: &stdout, limit: a.maxOutput}
	stderrLimited := &limitedWriter{w: &stderr, limit: a.maxOutput}
	cmd.Stdout = stdoutLimited
	cmd.Stderr = stderrLimited

	slog.Debug("Running tests", "dir", req.WorkDir, "command", command, "timeout", timeout)

	start := time.Now()
	err := cmd.Run()

	outcome := RunOutcome{
		Output:    stdout.String() + stderr.String(),
		Truncated: stdoutLimited.truncated || stderrLimited.truncated,
		Duration:  time.Since(start),
	}

	if errors.Is(phaseCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		outcome.TimedOut = true
		outcome.ExitCode = -1
		outcome.Output += fmt.Sprintf("\n[snare] test run exceeded %s and was killed\n", timeout)

		slog.Warn("Test run timed out", "dir", req.WorkDir, "timeout", timeout)

		return outcome, nil
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			outcome.ExitCode = exitErr.ExitCode()
			return outcome, nil
		}

		outcome.ExitCode = -1

		if ctx.Err() != nil {
			return outcome, ctx.Err()
		}

		return outcome, fmt.Errorf("run %s: %w", command[0], err)
	}

	return outcome, nil
}

// limitedWriter keeps at most limit bytes and silently discards the rest.
type limitedWriter struct {
	w         io.Writer
	limit     int
	written   int
	truncated bool
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	if lw.written >= lw.limit {
		lw.truncated = true
		return len(p), nil
	}

	chunk := p
	if remaining := lw.limit - lw.written; len(chunk) > remaining {
		chunk = chunk[:remaining]
		lw.truncated = true
	}

	n, err := lw.w.Write(chunk)
	lw.written += n

	return len(p), err
}
