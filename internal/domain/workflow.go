// Package domain holds the verdict engine and the stages that feed it.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"snare.dev/pkg/snare/internal/adapter"
	"snare.dev/pkg/snare/internal/controller"
	m "snare.dev/pkg/snare/internal/model"
	"snare.dev/pkg/snare/pkg/filespill"
)

// RunArgs contains the arguments for verifying a batch.
type RunArgs struct {
	Batch    m.Path
	Reports  m.Path
	Parallel int
}

// GateArgs contains the arguments for validating the mutants of a batch.
type GateArgs struct {
	Batch m.Path
}

// PruneArgs contains the arguments for removing stale workspaces.
type PruneArgs struct {
	TempRoot  m.Path
	OlderThan time.Duration
}

// Workflow defines the use cases exposed by the CLI.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Gate(ctx context.Context, args GateArgs) error
	Prune(ctx context.Context, args PruneArgs) error
}

type workflow struct {
	adapter.BatchLoader
	adapter.ReportStore
	controller.UI
	Pipeline

	fsAdapter adapter.WorkspaceFSAdapter
	gate      Gate
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	batchLoader adapter.BatchLoader,
	reportStore adapter.ReportStore,
	fsAdapter adapter.WorkspaceFSAdapter,
	ui controller.UI,
	gate Gate,
	pipeline Pipeline,
) Workflow {
	return &workflow{
		BatchLoader: batchLoader,
		ReportStore: reportStore,
		UI:          ui,
		Pipeline:    pipeline,
		fsAdapter:   fsAdapter,
		gate:        gate,
	}
}

// Run verifies every pair of the batch and stores the report.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	batch, err := w.LoadBatch(ctx, args.Batch)
	if err != nil {
		slog.Error("Failed to load batch", "path", args.Batch, "error", err)
		return fmt.Errorf("load batch: %w", err)
	}

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	journal, err := filespill.NewFileSpill[m.ExecutionResult](string(args.Reports))
	if err != nil {
		return fmt.Errorf("open result journal: %w", err)
	}

	defer func() {
		if err := journal.Close(); err != nil {
			slog.Error("Failed to close result journal", "path", journal.Path(), "error", err)
		}
	}()

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = DefaultParallelism
	}

	report := w.Pipeline.Run(ctx, batch, parallel, journal)

	path, err := w.SaveReport(ctx, args.Reports, report)
	if err != nil {
		slog.Error("Failed to save report", "dir", args.Reports, "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	rate, err := catchRateFromJournal(journal)
	if err != nil {
		return fmt.Errorf("catch rate: %w", err)
	}

	w.DisplaySummary(ctx, report, rate)
	slog.Info("Report saved", "path", path, "journal", journal.Path())

	return nil
}

// Gate validates the mutants of a batch without running anything.
func (w *workflow) Gate(ctx context.Context, args GateArgs) error {
	batch, err := w.LoadBatch(ctx, args.Batch)
	if err != nil {
		return fmt.Errorf("load batch: %w", err)
	}

	if err := w.Start(ctx, controller.WithGateMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	mutants := make([]m.Mutant, 0, len(batch.Items))
	for _, item := range batch.Items {
		mutants = append(mutants, item.Mutant)
	}

	w.DisplayGateReport(ctx, w.gate.Filter(ctx, batch.RepoRoot, mutants))

	return nil
}

// Prune removes workspaces left behind by interrupted runs.
func (w *workflow) Prune(ctx context.Context, args PruneArgs) error {
	removed, err := w.fsAdapter.Prune(ctx, args.TempRoot, args.OlderThan)
	if err != nil {
		slog.Error("Failed to prune workspaces", "tempRoot", args.TempRoot, "error", err)
		return fmt.Errorf("prune: %w", err)
	}

	w.DisplayPruned(ctx, removed)

	return nil
}
