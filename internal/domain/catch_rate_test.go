package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "snare.dev/pkg/snare/internal/model"
	"snare.dev/pkg/snare/pkg/filespill"
)

func TestCatchRateFromJournal(t *testing.T) {
	journal, err := filespill.NewFileSpill[m.ExecutionResult](t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() { _ = journal.Close() })

	rate, err := catchRateFromJournal(journal)
	require.NoError(t, err)
	assert.Zero(t, rate)

	require.NoError(t, journal.AppendBatch([]m.ExecutionResult{
		m.NewExecutionResult(m.ResultFields{PassesOnOriginal: true, FailsOnMutant: true}),
		m.NewExecutionResult(m.ResultFields{PassesOnOriginal: true}),
		m.NewExecutionResult(m.ResultFields{PassesOnOriginal: true, FailsOnMutant: true}),
		m.NewExecutionResult(m.ResultFields{ErrorKind: m.ErrorOriginalRunFailure}),
		m.NewExecutionResult(m.ResultFields{ErrorKind: m.ErrorCompilationPrecondition}),
		m.NewExecutionResult(m.ResultFields{ErrorKind: m.ErrorPatchApplication, PassesOnOriginal: true}),
	}))

	rate, err = catchRateFromJournal(journal)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rate, 1e-9)
}

func TestCatchRateFromJournal_ExcludesSupersededAttempts(t *testing.T) {
	journal, err := filespill.NewFileSpill[m.ExecutionResult](t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() { _ = journal.Close() })

	failed := m.NewExecutionResult(m.ResultFields{ExecutionID: "exec-1", ErrorKind: m.ErrorOriginalRunFailure})
	recovered := m.NewExecutionResult(m.ResultFields{
		ExecutionID:      "exec-2",
		Test:             m.GeneratedTest{Stage: m.StageRecovered},
		PassesOnOriginal: true,
		FailsOnMutant:    true,
	}).Superseding(failed)

	require.NoError(t, journal.Append(failed))
	require.NoError(t, journal.Append(recovered))
	require.NoError(t, journal.Append(m.NewExecutionResult(m.ResultFields{ExecutionID: "exec-3", PassesOnOriginal: true})))

	rate, err := catchRateFromJournal(journal)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rate, 1e-9)
}
