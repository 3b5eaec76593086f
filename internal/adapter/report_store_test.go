package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "snare.dev/pkg/snare/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	caught := m.NewExecutionResult(m.ResultFields{
		ExecutionID:      "exec-1",
		Test:             m.GeneratedTest{Code: "package catchtest", Mutant: m.Mutant{ID: "m1", TargetFile: "calc.go"}},
		PassesOnOriginal: true,
		FailsOnMutant:    true,
		Duration:         time.Second,
	})

	report := m.BatchReport{
		Results:    []m.ExecutionResult{caught},
		Candidates: []m.ExecutionResult{caught},
		Rejected:   []m.Rejection{{Mutant: m.Mutant{ID: "m2"}, Reason: "identical"}},
	}

	path, err := store.SaveReport(ctx, dir, report)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(string(dir), "report.yaml")), path)

	loaded, err := store.LoadReport(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}

func TestYAMLReportStore_LoadMissing(t *testing.T) {
	_, err := NewReportStore().LoadReport(context.Background(), m.Path(t.TempDir()))
	require.Error(t, err)
}
