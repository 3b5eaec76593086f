package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"snare.dev/pkg/snare/internal/adapter"
	m "snare.dev/pkg/snare/internal/model"
)

// DefaultPhaseTimeout bounds each build-and-test invocation.
const DefaultPhaseTimeout = time.Minute

// EngineConfig holds the knobs of the verdict engine.
type EngineConfig struct {
	// TempRoot is where execution workspaces are created (adapter.DefaultTempRoot when empty).
	TempRoot m.Path
	// Command is the external build-and-test command run inside the test project.
	Command []string
	// Env is appended to the command environment.
	Env []string
	// PhaseTimeout bounds each phase.
	PhaseTimeout time.Duration
	// WarmCache is an optional directory stamped into every test project.
	WarmCache m.Path
	// TimeoutCountsAsKill makes a mutant-phase timeout count as a failing run.
	TimeoutCountsAsKill bool
}

// Engine produces the verdict for one generated test against its mutant by
// running it on a shadow clone of the owning project, first unmodified and
// then patched.
type Engine interface {
	Execute(ctx context.Context, repoRoot m.Path, test m.GeneratedTest) m.ExecutionResult
}

type engine struct {
	fsAdapter       adapter.WorkspaceFSAdapter
	manifestAdapter adapter.ManifestAdapter
	testAdapter     adapter.TestRunnerAdapter
	resolver        ProjectResolver
	config          EngineConfig
	newID           func() string
}

// NewEngine constructs an Engine backed by the provided adapters.
func NewEngine(
	fsAdapter adapter.WorkspaceFSAdapter,
	manifestAdapter adapter.ManifestAdapter,
	testAdapter adapter.TestRunnerAdapter,
	resolver ProjectResolver,
	config EngineConfig,
) Engine {
	if config.PhaseTimeout <= 0 {
		config.PhaseTimeout = DefaultPhaseTimeout
	}

	return &engine{
		fsAdapter:       fsAdapter,
		manifestAdapter: manifestAdapter,
		testAdapter:     testAdapter,
		resolver:        resolver,
		config:          config,
		newID:           uuid.NewString,
	}
}

// execution accumulates the observations of one Execute call.
type execution struct {
	fields m.ResultFields
	start  time.Time
}

func (ex *execution) result() m.ExecutionResult {
	ex.fields.Duration = time.Since(ex.start)
	return m.NewExecutionResult(ex.fields)
}

func (ex *execution) fail(err error) m.ExecutionResult {
	ex.fields.ErrorKind = errorKind(err)
	ex.fields.ErrorMessage = err.Error()

	return ex.result()
}

func (e *engine) Execute(ctx context.Context, repoRoot m.Path, test m.GeneratedTest) (result m.ExecutionResult) {
	ex := &execution{fields: m.ResultFields{Test: test}, start: time.Now()}

	if !test.CompilationSuccess {
		slog.Debug("Skipping test that never compiled", "mutant", test.Mutant.ID)
		return ex.fail(ErrNotCompiled)
	}

	ex.fields.ExecutionID = e.newID()

	ctx, span := startExecutionSpan(ctx, ex.fields.ExecutionID, test.Mutant.ID)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Execution panicked", "execution", ex.fields.ExecutionID, "mutant", test.Mutant.ID, "panic", r)
			result = ex.fail(fmt.Errorf("unhandled fault: %v", r))
		}

		recordExecution(ctx, span, result, time.Since(ex.start))
		span.End()
	}()

	return e.run(ctx, repoRoot, test, ex)
}

func (e *engine) run(ctx context.Context, repoRoot m.Path, test m.GeneratedTest, ex *execution) m.ExecutionResult {
	loc, err := e.resolver.Resolve(ctx, repoRoot, test.Mutant.TargetFile)
	if err != nil {
		slog.Error("Failed to resolve owning project", "target", test.Mutant.TargetFile, "error", err)
		return ex.fail(err)
	}

	ws, err := e.fsAdapter.CreateWorkspace(ctx, e.config.TempRoot, ex.fields.ExecutionID)
	if ws.Root != "" {
		defer e.cleanupWorkspace(ctx, ws)
	}

	if err != nil {
		slog.Error("Failed to create workspace", "execution", ex.fields.ExecutionID, "error", err)
		return ex.fail(fmt.Errorf("create workspace: %w", err))
	}

	ws, env, err := e.prepareWorkspace(ctx, ws, loc, test)
	if err != nil {
		return ex.fail(err)
	}

	original, err := e.runPhase(ctx, ws, env)
	if err != nil {
		return ex.fail(err)
	}

	ex.fields.OriginalOutput = original.Output
	ex.fields.OriginalTimedOut = original.TimedOut
	ex.fields.PassesOnOriginal = original.Passed()

	if !ex.fields.PassesOnOriginal {
		if original.TimedOut {
			return ex.fail(fmt.Errorf("%w: original phase exceeded %s", ErrPhaseTimeout, e.config.PhaseTimeout))
		}

		return ex.fail(fmt.Errorf("%w: exit code %d", ErrFailsOnOriginal, original.ExitCode))
	}

	diff, err := e.fsAdapter.ApplyPatch(ctx, ws.ShadowTarget, test.Mutant.OriginalCode, test.Mutant.MutatedCode)
	if err != nil {
		slog.Error("Failed to apply mutant", "mutant", test.Mutant.ID, "target", ws.ShadowTarget, "error", err)
		return ex.fail(fmt.Errorf("%w: %w", ErrStaleMutant, err))
	}

	ex.fields.Diff = diff

	mutated, err := e.runPhase(ctx, ws, env)
	if err != nil {
		return ex.fail(err)
	}

	ex.fields.MutantOutput = mutated.Output
	ex.fields.MutantTimedOut = mutated.TimedOut

	if mutated.TimedOut {
		ex.fields.FailsOnMutant = e.config.TimeoutCountsAsKill
		return ex.fail(fmt.Errorf("%w: mutant phase exceeded %s", ErrPhaseTimeout, e.config.PhaseTimeout))
	}

	ex.fields.FailsOnMutant = !mutated.Passed()

	slog.Debug("Execution finished",
		"execution", ex.fields.ExecutionID,
		"mutant", test.Mutant.ID,
		"passesOnOriginal", ex.fields.PassesOnOriginal,
		"failsOnMutant", ex.fields.FailsOnMutant,
	)

	return ex.result()
}

// prepareWorkspace clones the owning project into the shadow subtree and
// materializes the throwaway test project next to it.
func (e *engine) prepareWorkspace(ctx context.Context, ws m.ExecutionWorkspace, loc projectLocation, test m.GeneratedTest) (m.ExecutionWorkspace, []string, error) {
	ws.ProjectRoot = loc.Root

	rel, err := filepath.Rel(string(loc.Root), string(loc.Target))
	if err != nil {
		return ws, nil, fmt.Errorf("relative target path: %w", err)
	}

	ws.ShadowTarget = m.Path(filepath.Join(string(ws.ShadowDir), rel))

	if err := e.fsAdapter.CloneProject(ctx, loc.Root, ws.ShadowDir); err != nil {
		slog.Error("Failed to clone project", "projectRoot", loc.Root, "shadow", ws.ShadowDir, "error", err)
		return ws, nil, fmt.Errorf("clone project: %w", err)
	}

	if _, err := e.manifestAdapter.RewriteReplaces(ctx, ws.ShadowDir, loc.Root); err != nil {
		slog.Error("Failed to rewrite manifest", "shadow", ws.ShadowDir, "error", err)
		return ws, nil, fmt.Errorf("rewrite manifest: %w", err)
	}

	// The warm cache goes in first so the generated manifest and test source win.
	env := append([]string{"GOWORK=off", "GOFLAGS=-mod=mod"}, e.config.Env...)

	if e.fsAdapter.Exists(ctx, e.config.WarmCache) {
		if err := e.fsAdapter.CopyDir(ctx, e.config.WarmCache, ws.TestDir); err != nil {
			return ws, nil, fmt.Errorf("stamp warm cache: %w", err)
		}

		env = append(env, "GOPROXY=off")
	}

	if err := e.manifestAdapter.WriteTestManifest(ctx, ws.TestDir, ws.ShadowDir); err != nil {
		slog.Error("Failed to write test manifest", "testDir", ws.TestDir, "error", err)
		return ws, nil, fmt.Errorf("write test manifest: %w", err)
	}

	testPath := m.Path(filepath.Join(string(ws.TestDir), adapter.TestFileName))
	if err := e.fsAdapter.WriteFile(ctx, testPath, []byte(test.Code), 0o600); err != nil {
		return ws, nil, fmt.Errorf("write test source: %w", err)
	}

	return ws, env, nil
}

func (e *engine) runPhase(ctx context.Context, ws m.ExecutionWorkspace, env []string) (adapter.RunOutcome, error) {
	outcome, err := e.testAdapter.RunTests(ctx, adapter.RunRequest{
		WorkDir: ws.TestDir,
		Command: e.config.Command,
		Env:     env,
		Timeout: e.config.PhaseTimeout,
	})
	if err != nil {
		slog.Error("Failed to run tests", "dir", ws.TestDir, "error", err)
		return outcome, fmt.Errorf("run tests: %w", err)
	}

	return outcome, nil
}

// cleanupWorkspace removes the workspace, logging errors if cleanup fails.
func (e *engine) cleanupWorkspace(ctx context.Context, ws m.ExecutionWorkspace) {
	if err := e.fsAdapter.RemoveWorkspace(context.WithoutCancel(ctx), ws); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Failed to cleanup workspace", "root", ws.Root, "error", err)
	}
}
