package domain

import (
	"context"
	"log/slog"

	"snare.dev/pkg/snare/internal/adapter"
	"snare.dev/pkg/snare/internal/controller"
	m "snare.dev/pkg/snare/internal/model"
	"snare.dev/pkg/snare/pkg/filespill"
)

// Stage names reported to the UI.
const (
	StageGate      = "gate"
	StageGenerate  = "generate"
	StageReadiness = "readiness"
	StageExecute   = "execute"
	StageRecover   = "recover"
)

// Pipeline runs a batch through gate, generation, execution and recovery.
// Each stage consumes the complete output of the previous one.
type Pipeline interface {
	Run(ctx context.Context, batch m.Batch, parallel int, journal filespill.FileSpill[m.ExecutionResult]) m.BatchReport
}

type pipeline struct {
	Gate
	Engine
	RecoveryCoordinator
	controller.UI

	authorAdapter adapter.TestAuthorAdapter
	fsAdapter     adapter.WorkspaceFSAdapter
	resolver      ProjectResolver
	ladder        Ladder
}

// NewPipeline creates a Pipeline from its stages. authorAdapter may be nil,
// in which case items without a test are skipped.
func NewPipeline(
	gate Gate,
	engine Engine,
	recovery RecoveryCoordinator,
	ui controller.UI,
	authorAdapter adapter.TestAuthorAdapter,
	fsAdapter adapter.WorkspaceFSAdapter,
	resolver ProjectResolver,
	ladder Ladder,
) Pipeline {
	return &pipeline{
		Gate:                gate,
		Engine:              engine,
		RecoveryCoordinator: recovery,
		UI:                  ui,
		authorAdapter:       authorAdapter,
		fsAdapter:           fsAdapter,
		resolver:            resolver,
		ladder:              ladder,
	}
}

func (p *pipeline) Run(ctx context.Context, batch m.Batch, parallel int, journal filespill.FileSpill[m.ExecutionResult]) m.BatchReport {
	var report m.BatchReport

	items := p.gate(ctx, batch, &report)

	p.DisplayStageInfo(ctx, StageGenerate, len(items))
	tests := RunStage(ctx, items, func(ctx context.Context, item m.BatchItem) m.GeneratedTest {
		return p.generate(ctx, batch.RepoRoot, item)
	}, parallel)

	var (
		ready    []m.GeneratedTest
		notReady []m.ExecutionResult
	)

	p.DisplayStageInfo(ctx, StageReadiness, len(tests))

	for _, test := range tests {
		if !test.CompilationSuccess {
			if test.Stage != m.StageTerminal {
				test, _ = p.ladder.Next(test, EventFinished)
			}

			notReady = append(notReady, p.Execute(ctx, batch.RepoRoot, test))

			continue
		}

		ready = append(ready, test)
	}

	report.Results = append(report.Results, p.collectAll(ctx, journal, notReady)...)

	p.DisplayConcurrencyInfo(ctx, parallel, len(ready))
	p.DisplayStageInfo(ctx, StageExecute, len(ready))
	results := RunStage(ctx, ready, func(ctx context.Context, test m.GeneratedTest) m.ExecutionResult {
		return p.collect(ctx, journal, p.Execute(ctx, batch.RepoRoot, test))
	}, parallel)

	report.Results = append(report.Results, results...)

	var failing []int

	for i, result := range results {
		if Eligible(result) {
			failing = append(failing, i)
		}
	}

	p.DisplayStageInfo(ctx, StageRecover, len(failing))

	for _, i := range failing {
		recovered, ok := p.Recover(ctx, batch.RepoRoot, ready[i], results[i])
		if !ok {
			continue
		}

		report.Results = append(report.Results, p.collect(ctx, journal, recovered))
	}

	for _, result := range report.Results {
		if result.IsCandidateCatch {
			report.Candidates = append(report.Candidates, result)
		}
	}

	slog.Info("Batch finished",
		"items", len(batch.Items),
		"rejected", len(report.Rejected),
		"results", len(report.Results),
		"candidates", len(report.Candidates),
	)

	return report
}

// gate filters the batch and returns the accepted items in priority order.
func (p *pipeline) gate(ctx context.Context, batch m.Batch, report *m.BatchReport) []m.BatchItem {
	mutants := make([]m.Mutant, len(batch.Items))
	byID := make(map[string][]int, len(batch.Items))

	for i, item := range batch.Items {
		mutants[i] = item.Mutant
		byID[item.Mutant.ID] = append(byID[item.Mutant.ID], i)
	}

	p.DisplayStageInfo(ctx, StageGate, len(mutants))
	gateReport := p.Filter(ctx, batch.RepoRoot, mutants)
	p.DisplayGateReport(ctx, gateReport)

	report.Rejected = gateReport.Rejected

	items := make([]m.BatchItem, 0, len(gateReport.Accepted))

	for _, mutant := range gateReport.Accepted {
		queue := byID[mutant.ID]
		if len(queue) == 0 {
			continue
		}

		item := batch.Items[queue[0]]
		byID[mutant.ID] = queue[1:]
		item.Mutant = mutant

		items = append(items, item)
	}

	return items
}

// generate returns the item's test, asking the author for one when missing.
// Authoring failures yield a test that is not compile-ready.
func (p *pipeline) generate(ctx context.Context, repoRoot m.Path, item m.BatchItem) m.GeneratedTest {
	if item.Test != nil {
		test := *item.Test
		test.Mutant = item.Mutant

		return test
	}

	missing := m.GeneratedTest{Mutant: item.Mutant, Stage: m.StageGenerated}

	if p.authorAdapter == nil {
		slog.Debug("No test and no author for mutant", "mutant", item.Mutant.ID)
		return missing
	}

	loc, err := p.resolver.Resolve(ctx, repoRoot, item.Mutant.TargetFile)
	if err != nil {
		slog.Error("Failed to resolve target for generation", "mutant", item.Mutant.ID, "error", err)
		return missing
	}

	content, err := p.fsAdapter.ReadFile(ctx, loc.Target)
	if err != nil {
		slog.Error("Failed to read target for generation", "target", loc.Target, "error", err)
		return missing
	}

	req := adapter.AuthorRequest{
		Mode:         adapter.AuthorGenerate,
		MutantID:     item.Mutant.ID,
		Description:  item.Mutant.Description,
		TargetFile:   string(item.Mutant.TargetFile),
		OriginalCode: item.Mutant.OriginalCode,
		MutatedCode:  item.Mutant.MutatedCode,
		FileContent:  string(content),
	}

	test, err := p.authorAdapter.Author(ctx, req)
	if err != nil {
		slog.Error("Test author failed to generate test", "mutant", item.Mutant.ID, "error", err)
		return missing
	}

	test.Mutant = item.Mutant
	test.Stage = m.StageGenerated
	test.Attempts = 0

	// Uncompiled tests climb the ladder until they compile or run out of rungs.
	for !test.CompilationSuccess {
		next, err := p.ladder.Next(test, EventCompileFailed)
		if err != nil {
			slog.Warn("Generated test never compiled", "mutant", item.Mutant.ID, "attempts", test.Attempts, "error", err)
			return next
		}

		req.FailingTest = next.Code
		req.Stage = next.Stage

		retry, err := p.authorAdapter.Author(ctx, req)
		if err != nil {
			slog.Error("Test author failed to fix test", "mutant", item.Mutant.ID, "stage", next.Stage, "error", err)
			next.Stage = m.StageTerminal

			return next
		}

		retry.Mutant = item.Mutant
		retry.Stage = next.Stage
		retry.Attempts = next.Attempts
		test = retry
	}

	return test
}

// collectAll journals finished results as one contiguous batch and displays them.
func (p *pipeline) collectAll(ctx context.Context, journal filespill.FileSpill[m.ExecutionResult], results []m.ExecutionResult) []m.ExecutionResult {
	if journal != nil && len(results) > 0 {
		if err := journal.AppendBatch(results); err != nil {
			slog.Error("Failed to journal results", "count", len(results), "error", err)
		}
	}

	for _, result := range results {
		p.DisplayCompletedExecution(ctx, result)
	}

	return results
}

// collect journals and displays a finished result.
func (p *pipeline) collect(ctx context.Context, journal filespill.FileSpill[m.ExecutionResult], result m.ExecutionResult) m.ExecutionResult {
	if journal != nil {
		if err := journal.Append(result); err != nil {
			slog.Error("Failed to journal result", "execution", result.ExecutionID, "error", err)
		}
	}

	p.DisplayCompletedExecution(ctx, result)

	return result
}
