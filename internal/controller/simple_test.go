package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "snare.dev/pkg/snare/internal/model"
)

func newBufferedUI(t *testing.T) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func resultWith(id string, fields m.ResultFields) m.ExecutionResult {
	fields.Test.Mutant = m.Mutant{ID: id, TargetFile: "calc/calc.go"}
	return m.NewExecutionResult(fields)
}

func TestSimpleUI_Start(t *testing.T) {
	ui, _ := newBufferedUI(t)

	require.NoError(t, ui.Start(context.Background(), WithGateMode()))
	assert.Equal(t, ModeGate, ui.mode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
}

func TestSimpleUI_DisplayCompletedExecution(t *testing.T) {
	tests := []struct {
		name         string
		result       m.ExecutionResult
		wantContains []string
	}{
		{
			name:         "caught",
			result:       resultWith("add-sub", m.ResultFields{PassesOnOriginal: true, FailsOnMutant: true}),
			wantContains: []string{"Completed add-sub", "caught"},
		},
		{
			name: "recovered",
			result: resultWith("add-sub", m.ResultFields{
				Test:             m.GeneratedTest{Stage: m.StageRecovered},
				PassesOnOriginal: true,
				FailsOnMutant:    true,
			}),
			wantContains: []string{"caught", "(recovered)"},
		},
		{
			name: "error carries message",
			result: resultWith("mul-div", m.ResultFields{
				ErrorKind:    m.ErrorPatchApplication,
				ErrorMessage: "original code not found",
			}),
			wantContains: []string{"Completed mul-div", "error", "original code not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newBufferedUI(t)

			ui.DisplayCompletedExecution(context.Background(), tt.result)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUI_DisplayGateReport(t *testing.T) {
	ui, buf := newBufferedUI(t)

	ui.DisplayGateReport(context.Background(), m.GateReport{
		Accepted: []m.Mutant{{ID: "add-sub", TargetFile: "calc/calc.go", Accessibility: m.AccessPublic}},
		Rejected: []m.Rejection{{
			Mutant: m.Mutant{ID: "scale-div", TargetFile: "calc/calc.go", Accessibility: m.AccessPrivate},
			Reason: "non-public quota exceeded (private)",
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "add-sub")
	assert.Contains(t, out, "accepted")
	assert.Contains(t, out, "scale-div")
	assert.Contains(t, out, "rejected: non-public quota exceeded (private)")
	assert.Contains(t, out, "1/2")
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newBufferedUI(t)

	caught := resultWith("add-sub", m.ResultFields{PassesOnOriginal: true, FailsOnMutant: true})
	survived := resultWith("mul-div", m.ResultFields{PassesOnOriginal: true})

	ui.DisplaySummary(context.Background(), m.BatchReport{
		Results:    []m.ExecutionResult{caught, survived},
		Candidates: []m.ExecutionResult{caught},
		Rejected:   []m.Rejection{{Reason: "identical code"}},
	}, 0.5)

	out := buf.String()
	assert.Contains(t, out, "caught")
	assert.Contains(t, out, "survived")
	assert.Contains(t, out, "rejected by gate")
	assert.Contains(t, out, "Catch rate: 50.00%")
}

func TestSimpleUI_DisplayPruned(t *testing.T) {
	ui, buf := newBufferedUI(t)

	ui.DisplayPruned(context.Background(), []m.Path{"/tmp/a", "/tmp/b"})

	assert.Contains(t, buf.String(), "removed /tmp/a")
	assert.Contains(t, buf.String(), "Pruned 2 workspace(s)")
}

func TestSimpleUI_SkipsOutputWhenCancelled(t *testing.T) {
	ui, buf := newBufferedUI(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayStageInfo(ctx, "execute", 3)
	ui.DisplayPruned(ctx, nil)
	ui.DisplaySummary(ctx, m.BatchReport{}, 0)

	assert.Empty(t, buf.String())
}
