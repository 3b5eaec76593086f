package domain_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"snare.dev/pkg/snare/internal/adapter"
	adaptermocks "snare.dev/pkg/snare/internal/adapter/mocks"
	"snare.dev/pkg/snare/internal/domain"
	m "snare.dev/pkg/snare/internal/model"
)

type runFunc func(ctx context.Context, req adapter.RunRequest) (adapter.RunOutcome, error)

func newTestEngine(t *testing.T, runner adapter.TestRunnerAdapter, config domain.EngineConfig) domain.Engine {
	t.Helper()

	fsAdapter := adapter.NewLocalWorkspaceFSAdapter(nil)

	return domain.NewEngine(fsAdapter, adapter.NewGoModAdapter(), runner, domain.NewProjectResolver(fsAdapter), config)
}

func shadowDir(req adapter.RunRequest) string {
	return filepath.Join(filepath.Dir(string(req.WorkDir)), "shadow")
}

// catchingRun passes while the shadow still holds the original addition.
func catchingRun(t *testing.T) runFunc {
	return func(_ context.Context, req adapter.RunRequest) (adapter.RunOutcome, error) {
		data, err := os.ReadFile(filepath.Join(shadowDir(req), "calc", "calc.go"))
		require.NoError(t, err)

		if strings.Contains(string(data), "a + b") {
			return adapter.RunOutcome{Output: "ok"}, nil
		}

		return adapter.RunOutcome{Output: "--- FAIL: TestAdd", ExitCode: 1}, nil
	}
}

func assertWorkspacesRemoved(t *testing.T, tempRoot string) {
	t.Helper()

	entries, err := os.ReadDir(tempRoot)
	require.NoError(t, err)
	assert.Empty(t, entries, "execution workspaces must be removed")
}

func TestEngine_Execute_CandidateCatch(t *testing.T) {
	repo := newCalcRepo(t)
	tempRoot := t.TempDir()

	runner := adaptermocks.NewMockTestRunnerAdapter(t)
	runner.EXPECT().RunTests(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, req adapter.RunRequest) (adapter.RunOutcome, error) {
		assert.FileExists(t, filepath.Join(string(req.WorkDir), adapter.TestFileName))
		assert.FileExists(t, filepath.Join(string(req.WorkDir), "go.mod"))
		assert.Contains(t, req.Env, "GOWORK=off")
		assert.Equal(t, time.Minute, req.Timeout)

		return catchingRun(t)(ctx, req)
	}).Times(2)

	engine := newTestEngine(t, runner, domain.EngineConfig{TempRoot: m.Path(tempRoot)})

	result := engine.Execute(context.Background(), m.Path(repo), compiledTest(addMutant()))

	assert.True(t, result.PassesOnOriginal)
	assert.True(t, result.FailsOnMutant)
	assert.True(t, result.IsCandidateCatch)
	assert.Equal(t, m.Caught, result.Verdict())
	assert.Equal(t, m.ErrorNone, result.ErrorKind)
	assert.NotEmpty(t, result.ExecutionID)
	assert.Contains(t, result.Diff, "+\treturn a - b")
	assert.Contains(t, result.MutantOutput, "FAIL")

	original, err := os.ReadFile(filepath.Join(repo, string(calcTarget)))
	require.NoError(t, err)
	assert.Equal(t, calcSource, string(original), "the real repository is never modified")

	assertWorkspacesRemoved(t, tempRoot)
}

func TestEngine_Execute_Survived(t *testing.T) {
	repo := newCalcRepo(t)
	tempRoot := t.TempDir()

	runner := adaptermocks.NewMockTestRunnerAdapter(t)
	runner.EXPECT().RunTests(mock.Anything, mock.Anything).Return(adapter.RunOutcome{Output: "ok"}, nil).Times(2)

	result := newTestEngine(t, runner, domain.EngineConfig{TempRoot: m.Path(tempRoot)}).
		Execute(context.Background(), m.Path(repo), compiledTest(addMutant()))

	assert.True(t, result.PassesOnOriginal)
	assert.False(t, result.FailsOnMutant)
	assert.False(t, result.IsCandidateCatch)
	assert.Equal(t, m.Survived, result.Verdict())
	assertWorkspacesRemoved(t, tempRoot)
}

func TestEngine_Execute_FailsOnOriginalSkipsMutantPhase(t *testing.T) {
	repo := newCalcRepo(t)
	tempRoot := t.TempDir()

	runner := adaptermocks.NewMockTestRunnerAdapter(t)
	runner.EXPECT().RunTests(mock.Anything, mock.Anything).
		Return(adapter.RunOutcome{Output: "./catch_test.go:9:14: undefined: calc.scale", ExitCode: 1}, nil).Once()

	result := newTestEngine(t, runner, domain.EngineConfig{TempRoot: m.Path(tempRoot)}).
		Execute(context.Background(), m.Path(repo), compiledTest(addMutant()))

	assert.False(t, result.PassesOnOriginal)
	assert.False(t, result.IsCandidateCatch)
	assert.Equal(t, m.ErrorOriginalRunFailure, result.ErrorKind)
	assert.Equal(t, m.FailsOnOriginal, result.Verdict())
	assert.Contains(t, result.OriginalOutput, "undefined: calc.scale")
	assertWorkspacesRemoved(t, tempRoot)
}

func TestEngine_Execute_StaleMutant(t *testing.T) {
	repo := newCalcRepo(t)
	tempRoot := t.TempDir()

	stale := addMutant()
	stale.OriginalCode = "a * b"

	runner := adaptermocks.NewMockTestRunnerAdapter(t)
	runner.EXPECT().RunTests(mock.Anything, mock.Anything).Return(adapter.RunOutcome{Output: "ok"}, nil).Once()

	result := newTestEngine(t, runner, domain.EngineConfig{TempRoot: m.Path(tempRoot)}).
		Execute(context.Background(), m.Path(repo), compiledTest(stale))

	assert.True(t, result.PassesOnOriginal)
	assert.False(t, result.IsCandidateCatch)
	assert.Equal(t, m.ErrorPatchApplication, result.ErrorKind)
	assert.Equal(t, m.Error, result.Verdict())
	assertWorkspacesRemoved(t, tempRoot)
}

func TestEngine_Execute_NotCompiledNeverRuns(t *testing.T) {
	repo := newCalcRepo(t)
	tempRoot := t.TempDir()

	runner := adaptermocks.NewMockTestRunnerAdapter(t)

	test := compiledTest(addMutant())
	test.CompilationSuccess = false

	result := newTestEngine(t, runner, domain.EngineConfig{TempRoot: m.Path(tempRoot)}).
		Execute(context.Background(), m.Path(repo), test)

	assert.Equal(t, m.ErrorCompilationPrecondition, result.ErrorKind)
	assert.Equal(t, m.Skipped, result.Verdict())
	assert.Empty(t, result.ExecutionID)
	assert.False(t, result.IsCandidateCatch)
	runner.AssertNotCalled(t, "RunTests", mock.Anything, mock.Anything)
	assertWorkspacesRemoved(t, tempRoot)
}

func TestEngine_Execute_ProjectResolutionFailure(t *testing.T) {
	repo := t.TempDir()
	tempRoot := t.TempDir()
	writeFiles(t, repo, map[string]string{"scripts/calc.go": calcSource})

	runner := adaptermocks.NewMockTestRunnerAdapter(t)

	mutant := addMutant()
	mutant.TargetFile = "scripts/calc.go"

	result := newTestEngine(t, runner, domain.EngineConfig{TempRoot: m.Path(tempRoot)}).
		Execute(context.Background(), m.Path(repo), compiledTest(mutant))

	assert.Equal(t, m.ErrorProjectResolution, result.ErrorKind)
	assert.Equal(t, m.Error, result.Verdict())
	assert.False(t, result.IsCandidateCatch)
	assert.NotEmpty(t, result.ErrorMessage)
	assertWorkspacesRemoved(t, tempRoot)
}

func TestEngine_Execute_MutantPhaseTimeout(t *testing.T) {
	tests := []struct {
		name          string
		countsAsKill  bool
		wantCandidate bool
		wantVerdict   m.Verdict
	}{
		{"inconclusive by default", false, false, m.Inconclusive},
		{"counted as kill when configured", true, true, m.Caught},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newCalcRepo(t)
			tempRoot := t.TempDir()

			runner := adaptermocks.NewMockTestRunnerAdapter(t)
			runner.EXPECT().RunTests(mock.Anything, mock.Anything).Return(adapter.RunOutcome{Output: "ok"}, nil).Once()
			runner.EXPECT().RunTests(mock.Anything, mock.Anything).Return(adapter.RunOutcome{TimedOut: true, ExitCode: -1}, nil).Once()

			config := domain.EngineConfig{
				TempRoot:            m.Path(tempRoot),
				PhaseTimeout:        time.Second,
				TimeoutCountsAsKill: tt.countsAsKill,
			}

			result := newTestEngine(t, runner, config).Execute(context.Background(), m.Path(repo), compiledTest(addMutant()))

			assert.True(t, result.MutantTimedOut)
			assert.Equal(t, m.ErrorTimeout, result.ErrorKind)
			assert.Equal(t, tt.wantCandidate, result.IsCandidateCatch)
			assert.Equal(t, tt.wantVerdict, result.Verdict())
			assertWorkspacesRemoved(t, tempRoot)
		})
	}
}

func TestEngine_Execute_OriginalPhaseTimeout(t *testing.T) {
	repo := newCalcRepo(t)
	tempRoot := t.TempDir()

	runner := adaptermocks.NewMockTestRunnerAdapter(t)
	runner.EXPECT().RunTests(mock.Anything, mock.Anything).Return(adapter.RunOutcome{TimedOut: true, ExitCode: -1}, nil).Once()

	result := newTestEngine(t, runner, domain.EngineConfig{TempRoot: m.Path(tempRoot)}).
		Execute(context.Background(), m.Path(repo), compiledTest(addMutant()))

	assert.False(t, result.PassesOnOriginal)
	assert.True(t, result.OriginalTimedOut)
	assert.Equal(t, m.ErrorTimeout, result.ErrorKind)
	assert.Equal(t, m.Inconclusive, result.Verdict())
	assert.False(t, domain.Eligible(result), "timeouts are not recoverable")
	assertWorkspacesRemoved(t, tempRoot)
}

func TestEngine_Execute_RunnerFailureAndPanic(t *testing.T) {
	repo := newCalcRepo(t)
	tempRoot := t.TempDir()

	failing := adaptermocks.NewMockTestRunnerAdapter(t)
	failing.EXPECT().RunTests(mock.Anything, mock.Anything).Return(adapter.RunOutcome{}, errors.New("exec: \"go\": not found")).Once()

	result := newTestEngine(t, failing, domain.EngineConfig{TempRoot: m.Path(tempRoot)}).
		Execute(context.Background(), m.Path(repo), compiledTest(addMutant()))

	assert.Equal(t, m.ErrorUnhandled, result.ErrorKind)
	assert.Equal(t, m.Error, result.Verdict())
	assertWorkspacesRemoved(t, tempRoot)

	panicking := adaptermocks.NewMockTestRunnerAdapter(t)
	panicking.EXPECT().RunTests(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, adapter.RunRequest) (adapter.RunOutcome, error) {
		panic("runner exploded")
	}).Once()

	result = newTestEngine(t, panicking, domain.EngineConfig{TempRoot: m.Path(tempRoot)}).
		Execute(context.Background(), m.Path(repo), compiledTest(addMutant()))

	assert.Equal(t, m.ErrorUnhandled, result.ErrorKind)
	assert.Contains(t, result.ErrorMessage, "runner exploded")
	assert.False(t, result.IsCandidateCatch)
	assertWorkspacesRemoved(t, tempRoot)
}

func TestEngine_Execute_RewritesSiblingReplaces(t *testing.T) {
	repo := t.TempDir()
	tempRoot := t.TempDir()
	warmCache := t.TempDir()

	writeFiles(t, repo, map[string]string{
		"app/go.mod":       "module example.com/app\n\ngo 1.21\n\nrequire example.com/lib v0.0.0\n\nreplace example.com/lib => ../lib\n",
		"app/calc/calc.go": calcSource,
		"lib/go.mod":       "module example.com/lib\n\ngo 1.21\n",
	})
	writeFiles(t, warmCache, map[string]string{
		"vendor/modules.txt": "# example.com/lib\n",
		"go.mod":             "module example.com/stale-cache\n",
	})

	runner := adaptermocks.NewMockTestRunnerAdapter(t)
	runner.EXPECT().RunTests(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, req adapter.RunRequest) (adapter.RunOutcome, error) {
		testMod, err := os.ReadFile(filepath.Join(string(req.WorkDir), "go.mod"))
		require.NoError(t, err)
		assert.Contains(t, string(testMod), filepath.Join(repo, "lib"))
		assert.Contains(t, string(testMod), adapter.TestModulePath)
		assert.NotContains(t, string(testMod), "stale-cache")

		shadowMod, err := os.ReadFile(filepath.Join(shadowDir(req), "go.mod"))
		require.NoError(t, err)
		assert.Contains(t, string(shadowMod), filepath.Join(repo, "lib"))

		assert.FileExists(t, filepath.Join(string(req.WorkDir), "vendor", "modules.txt"))
		assert.Contains(t, req.Env, "GOPROXY=off")

		return catchingRun(t)(ctx, req)
	}).Times(2)

	config := domain.EngineConfig{TempRoot: m.Path(tempRoot), WarmCache: m.Path(warmCache)}
	result := newTestEngine(t, runner, config).Execute(context.Background(), m.Path(repo), compiledTest(addMutant()))

	assert.True(t, result.IsCandidateCatch)
	assertWorkspacesRemoved(t, tempRoot)
}

func TestEngine_Execute_ParallelMatchesSequential(t *testing.T) {
	repo := newCalcRepo(t)
	tempRoot := t.TempDir()

	runner := adaptermocks.NewMockTestRunnerAdapter(t)
	runner.EXPECT().RunTests(mock.Anything, mock.Anything).RunAndReturn(catchingRun(t)).Maybe()

	engine := newTestEngine(t, runner, domain.EngineConfig{TempRoot: m.Path(tempRoot)})

	stale := addMutant()
	stale.ID = "stale"
	stale.OriginalCode = "a / b"

	survivor := addMutant()
	survivor.ID = "survivor"
	survivor.OriginalCode = "x * 2"
	survivor.MutatedCode = "x * 3"

	var tests []m.GeneratedTest
	for range 4 {
		tests = append(tests, compiledTest(addMutant()), compiledTest(stale), compiledTest(survivor))
	}

	verdicts := func(parallel int) []m.Verdict {
		results := domain.RunStage(context.Background(), tests, func(ctx context.Context, test m.GeneratedTest) m.ExecutionResult {
			return engine.Execute(ctx, m.Path(repo), test)
		}, parallel)

		out := make([]m.Verdict, len(results))
		for i, result := range results {
			out[i] = result.Verdict()
		}

		return out
	}

	sequential := verdicts(1)
	assert.Equal(t, sequential, verdicts(4))
	assert.Equal(t, []m.Verdict{m.Caught, m.Error, m.Survived}, sequential[:3])
	assertWorkspacesRemoved(t, tempRoot)
}

// TestEngine_Execute_GoToolchain runs the real build-and-test command end to end.
func TestEngine_Execute_GoToolchain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping toolchain run in short mode")
	}

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}

	if out, err := exec.Command("go", "env", "GOCACHE").Output(); err != nil || strings.TrimSpace(string(out)) == "" {
		t.Skip("go build cache not configured")
	}

	repo := newCalcRepo(t)
	tempRoot := t.TempDir()

	writeFiles(t, repo, map[string]string{
		"app/limit/limit.go": "package limit\n\n// TooCold reports whether c is below the frost threshold.\nfunc TooCold(c int) bool {\n\treturn c < -5\n}\n",
	})

	engine := newTestEngine(t, adapter.NewLocalTestRunnerAdapter(0), domain.EngineConfig{
		TempRoot:     m.Path(tempRoot),
		PhaseTimeout: 2 * time.Minute,
	})

	tests := []struct {
		name   string
		mutant m.Mutant
		code   string
	}{
		{
			name:   "arithmetic operator",
			mutant: addMutant(),
			code: `package catchtest

import (
	"testing"

	"example.com/app/calc"
)

func TestAdd(t *testing.T) {
	if got := calc.Add(2, 3); got != 5 {
		t.Fatalf("Add(2, 3) = %d", got)
	}
}
`,
		},
		{
			name: "comparison boundary",
			mutant: m.Mutant{
				ID:           "frost-boundary",
				TargetFile:   "app/limit/limit.go",
				OriginalCode: "c < -5",
				MutatedCode:  "c <= -5",
			},
			code: `package catchtest

import (
	"testing"

	"example.com/app/limit"
)

func TestTooColdBoundary(t *testing.T) {
	if limit.TooCold(-5) {
		t.Fatal("-5 is at the threshold, not below it")
	}

	if !limit.TooCold(-6) {
		t.Fatal("-6 is below the threshold")
	}
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := compiledTest(tt.mutant)
			test.Code = tt.code

			result := engine.Execute(context.Background(), m.Path(repo), test)
			require.True(t, result.PassesOnOriginal, result.OriginalOutput)
			assert.True(t, result.FailsOnMutant, result.MutantOutput)
			assert.True(t, result.IsCandidateCatch)
		})
	}

	unexported := compiledTest(addMutant())
	unexported.Code = strings.Replace(tests[0].code, "calc.Add(2, 3)", "calc.scale(2)", 1)

	result := engine.Execute(context.Background(), m.Path(repo), unexported)
	assert.Equal(t, m.ErrorOriginalRunFailure, result.ErrorKind)
	assert.True(t, domain.Eligible(result))
	assert.Contains(t, result.OriginalOutput, "scale")

	assertWorkspacesRemoved(t, tempRoot)
}
