package model

import "time"

// ErrorKind classifies why an execution did not produce a clean verdict.
type ErrorKind string

const (
	ErrorNone                    ErrorKind = ""
	ErrorCompilationPrecondition ErrorKind = "compilation_precondition"
	ErrorProjectResolution       ErrorKind = "project_resolution"
	ErrorPatchApplication        ErrorKind = "patch_application"
	ErrorOriginalRunFailure      ErrorKind = "original_run_failure"
	ErrorTimeout                 ErrorKind = "timeout"
	ErrorUnhandled               ErrorKind = "unhandled"
)

// Verdict is the execution-level classification of a result.
type Verdict int

const (
	// Caught indicates the test passed on original code and failed on the mutant.
	Caught Verdict = iota
	// Survived indicates the test passed on both original and mutated code.
	Survived
	// FailsOnOriginal indicates the test did not pass against unmodified code.
	FailsOnOriginal
	// Inconclusive indicates a phase timed out.
	Inconclusive
	// Skipped indicates the test was never run.
	Skipped
	// Error indicates an infrastructure failure during execution.
	Error
)

func (v Verdict) String() string {
	switch v {
	case Caught:
		return "caught"
	case Survived:
		return "survived"
	case FailsOnOriginal:
		return "fails_on_original"
	case Inconclusive:
		return "inconclusive"
	case Skipped:
		return "skipped"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ExecutionResult is the outcome of one execution attempt. It is built once
// through NewExecutionResult and never mutated afterwards.
type ExecutionResult struct {
	ExecutionID      string        `yaml:"execution_id"`
	Mutant           Mutant        `yaml:"mutant"`
	TestCode         string        `yaml:"test_code"`
	PassesOnOriginal bool          `yaml:"passes_on_original"`
	FailsOnMutant    bool          `yaml:"fails_on_mutant"`
	IsCandidateCatch bool          `yaml:"is_candidate_catch"`
	OriginalOutput   string        `yaml:"original_output,omitempty"`
	MutantOutput     string        `yaml:"mutant_output,omitempty"`
	OriginalTimedOut bool          `yaml:"original_timed_out,omitempty"`
	MutantTimedOut   bool          `yaml:"mutant_timed_out,omitempty"`
	ErrorKind        ErrorKind     `yaml:"error_kind,omitempty"`
	ErrorMessage     string        `yaml:"error_message,omitempty"`
	Recovered        bool          `yaml:"recovered,omitempty"`
	Stage            TestStage     `yaml:"stage,omitempty"`
	Supersedes       string        `yaml:"supersedes,omitempty"`
	Diff             string        `yaml:"diff,omitempty"`
	Duration         time.Duration `yaml:"duration"`
}

// ResultFields carries the raw observations of an execution attempt.
type ResultFields struct {
	ExecutionID      string
	Test             GeneratedTest
	PassesOnOriginal bool
	FailsOnMutant    bool
	OriginalOutput   string
	MutantOutput     string
	OriginalTimedOut bool
	MutantTimedOut   bool
	ErrorKind        ErrorKind
	ErrorMessage     string
	Diff             string
	Duration         time.Duration
}

// NewExecutionResult builds an immutable result, deriving IsCandidateCatch.
func NewExecutionResult(f ResultFields) ExecutionResult {
	return ExecutionResult{
		ExecutionID:      f.ExecutionID,
		Mutant:           f.Test.Mutant,
		TestCode:         f.Test.Code,
		PassesOnOriginal: f.PassesOnOriginal,
		FailsOnMutant:    f.FailsOnMutant,
		IsCandidateCatch: f.PassesOnOriginal && f.FailsOnMutant,
		OriginalOutput:   f.OriginalOutput,
		MutantOutput:     f.MutantOutput,
		OriginalTimedOut: f.OriginalTimedOut,
		MutantTimedOut:   f.MutantTimedOut,
		ErrorKind:        f.ErrorKind,
		ErrorMessage:     f.ErrorMessage,
		Recovered:        f.Test.Stage == StageRecovered,
		Stage:            f.Test.Stage,
		Diff:             f.Diff,
		Duration:         f.Duration,
	}
}

// Superseding returns a copy of r marked as replacing the attempt prior.
func (r ExecutionResult) Superseding(prior ExecutionResult) ExecutionResult {
	r.Supersedes = prior.ExecutionID
	return r
}

// Verdict classifies the result.
func (r ExecutionResult) Verdict() Verdict {
	switch {
	case r.ErrorKind == ErrorCompilationPrecondition:
		return Skipped
	case r.ErrorKind == ErrorTimeout || r.OriginalTimedOut || r.MutantTimedOut:
		if r.IsCandidateCatch {
			return Caught
		}

		return Inconclusive
	case r.ErrorKind != ErrorNone && r.ErrorKind != ErrorOriginalRunFailure:
		return Error
	case !r.PassesOnOriginal:
		return FailsOnOriginal
	case r.IsCandidateCatch:
		return Caught
	default:
		return Survived
	}
}

// BatchReport aggregates every result of a pipeline run.
type BatchReport struct {
	Results    []ExecutionResult `yaml:"results"`
	Candidates []ExecutionResult `yaml:"candidates"`
	Rejected   []Rejection       `yaml:"rejected"`
}

// ExecutionWorkspace is the ephemeral directory pair owned by one execution.
type ExecutionWorkspace struct {
	ID           string
	Root         Path
	ShadowDir    Path
	TestDir      Path
	ProjectRoot  Path
	ShadowTarget Path
}
