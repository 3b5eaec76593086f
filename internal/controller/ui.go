// Package controller provides output adapters for displaying verdicts.
package controller

import (
	"context"

	m "snare.dev/pkg/snare/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeGate
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to batch execution mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithGateMode sets the UI to mutant validation mode.
func WithGateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGate
	}
}

// UI defines the interface for reporting pipeline progress.
// Implementations must be safe for concurrent use: executions complete on
// several goroutines at once.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayStageInfo(ctx context.Context, stage string, count int)
	DisplayConcurrencyInfo(ctx context.Context, parallel int, count int)
	DisplayGateReport(ctx context.Context, report m.GateReport)
	DisplayCompletedExecution(ctx context.Context, result m.ExecutionResult)
	DisplaySummary(ctx context.Context, report m.BatchReport, catchRate float64)
	DisplayPruned(ctx context.Context, paths []m.Path)
}

// NewUI returns the console UI writing through cmd-like output.
func NewUI(out Printer) UI {
	return NewSimpleUI(out)
}
