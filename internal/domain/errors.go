package domain

import (
	"errors"

	"snare.dev/pkg/snare/internal/adapter"
	m "snare.dev/pkg/snare/internal/model"
)

var (
	// ErrNotCompiled is returned for tests that never compiled.
	ErrNotCompiled = errors.New("test is not compile-ready")

	// ErrProjectResolution indicates no manifest was found for a target file.
	ErrProjectResolution = errors.New("no owning project found for target file")

	// ErrStaleMutant indicates the original span is absent from the shadow copy.
	ErrStaleMutant = errors.New("stale mutant")

	// ErrPhaseTimeout indicates a build-and-test phase exceeded its budget.
	ErrPhaseTimeout = errors.New("test phase timed out")

	// ErrFailsOnOriginal indicates the test did not pass against unmodified code.
	ErrFailsOnOriginal = errors.New("test fails on original code")

	// ErrLadderExhausted indicates a test has no retry transition left.
	ErrLadderExhausted = errors.New("retry ladder exhausted")
)

// errorKind maps an execution error to the result taxonomy.
func errorKind(err error) m.ErrorKind {
	switch {
	case err == nil:
		return m.ErrorNone
	case errors.Is(err, ErrNotCompiled):
		return m.ErrorCompilationPrecondition
	case errors.Is(err, ErrProjectResolution):
		return m.ErrorProjectResolution
	case errors.Is(err, ErrStaleMutant), errors.Is(err, adapter.ErrPatchNotApplicable):
		return m.ErrorPatchApplication
	case errors.Is(err, ErrPhaseTimeout):
		return m.ErrorTimeout
	case errors.Is(err, ErrFailsOnOriginal):
		return m.ErrorOriginalRunFailure
	default:
		return m.ErrorUnhandled
	}
}
