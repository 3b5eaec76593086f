package domain

import (
	"context"
	"log/slog"

	"snare.dev/pkg/snare/internal/adapter"
	m "snare.dev/pkg/snare/internal/model"
)

// RecoveryCoordinator gives a test that failed against unmodified code one
// corrective attempt, using the failure transcript as ground truth.
type RecoveryCoordinator interface {
	// Recover returns the result of re-executing the corrected test and true
	// when an attempt was made. It never retries.
	Recover(ctx context.Context, repoRoot m.Path, test m.GeneratedTest, failed m.ExecutionResult) (m.ExecutionResult, bool)
}

type recoveryCoordinator struct {
	engine        Engine
	authorAdapter adapter.TestAuthorAdapter
	fsAdapter     adapter.WorkspaceFSAdapter
	resolver      ProjectResolver
	ladder        Ladder
}

// NewRecoveryCoordinator constructs a RecoveryCoordinator. A nil author
// disables recovery.
func NewRecoveryCoordinator(
	engine Engine,
	authorAdapter adapter.TestAuthorAdapter,
	fsAdapter adapter.WorkspaceFSAdapter,
	resolver ProjectResolver,
	ladder Ladder,
) RecoveryCoordinator {
	return &recoveryCoordinator{
		engine:        engine,
		authorAdapter: authorAdapter,
		fsAdapter:     fsAdapter,
		resolver:      resolver,
		ladder:        ladder,
	}
}

// Eligible reports whether a result can go through recovery: only genuine
// original-run failures qualify, not timeouts, setup errors or mutant-run failures.
func Eligible(result m.ExecutionResult) bool {
	return result.ErrorKind == m.ErrorOriginalRunFailure && !result.PassesOnOriginal && !result.Recovered
}

func (r *recoveryCoordinator) Recover(ctx context.Context, repoRoot m.Path, test m.GeneratedTest, failed m.ExecutionResult) (m.ExecutionResult, bool) {
	if r.authorAdapter == nil || !Eligible(failed) {
		return m.ExecutionResult{}, false
	}

	recovering, err := r.ladder.Next(test, EventOriginalFailed)
	if err != nil {
		slog.Debug("Recovery not allowed", "mutant", test.Mutant.ID, "error", err)
		return m.ExecutionResult{}, false
	}

	loc, err := r.resolver.Resolve(ctx, repoRoot, test.Mutant.TargetFile)
	if err != nil {
		slog.Error("Failed to resolve target for recovery", "mutant", test.Mutant.ID, "error", err)
		recordRecovery(ctx, "unresolved")

		return m.ExecutionResult{}, false
	}

	content, err := r.fsAdapter.ReadFile(ctx, loc.Target)
	if err != nil {
		slog.Error("Failed to read target for recovery", "target", loc.Target, "error", err)
		recordRecovery(ctx, "unreadable")

		return m.ExecutionResult{}, false
	}

	corrected, err := r.authorAdapter.Author(ctx, adapter.AuthorRequest{
		Mode:         adapter.AuthorRecover,
		MutantID:     test.Mutant.ID,
		Description:  test.Mutant.Description,
		TargetFile:   string(test.Mutant.TargetFile),
		OriginalCode: test.Mutant.OriginalCode,
		MutatedCode:  test.Mutant.MutatedCode,
		FileContent:  string(content),
		FailingTest:  test.Code,
		Transcript:   failed.OriginalOutput,
	})
	if err != nil {
		slog.Error("Test author could not recover test", "mutant", test.Mutant.ID, "error", err)
		recordRecovery(ctx, "author_failed")

		return m.ExecutionResult{}, false
	}

	corrected.Mutant = test.Mutant
	corrected.Stage = recovering.Stage
	corrected.Attempts = recovering.Attempts

	result := r.engine.Execute(ctx, repoRoot, corrected).Superseding(failed)

	outcome := "discarded"
	if result.PassesOnOriginal {
		outcome = "recovered"
	}

	recordRecovery(ctx, outcome)
	slog.Info("Recovery attempt finished", "mutant", test.Mutant.ID, "outcome", outcome, "candidate", result.IsCandidateCatch)

	return result, true
}
