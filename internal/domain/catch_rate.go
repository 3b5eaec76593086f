package domain

import (
	m "snare.dev/pkg/snare/internal/model"
	"snare.dev/pkg/snare/pkg/filespill"
)

// catchRateFromJournal returns the share of conclusive executions that were
// candidate catches. Skipped and errored executions are excluded, and so are
// attempts superseded by a recovery re-execution.
func catchRateFromJournal(journal filespill.FileSpill[m.ExecutionResult]) (float64, error) {
	if journal.Len() == 0 {
		return 0.0, nil
	}

	superseded := make(map[string]struct{})

	err := journal.Range(func(_ uint64, result m.ExecutionResult) error {
		if result.Supersedes != "" {
			superseded[result.Supersedes] = struct{}{}
		}

		return nil
	})
	if err != nil {
		return 0.0, err
	}

	caught := 0
	total := 0

	err = journal.Range(func(_ uint64, result m.ExecutionResult) error {
		if _, ok := superseded[result.ExecutionID]; ok {
			return nil
		}

		switch result.Verdict() {
		case m.Caught:
			caught++
			total++
		case m.Survived, m.FailsOnOriginal, m.Inconclusive:
			total++
		case m.Skipped, m.Error:
			// Not conclusive, excluded from the denominator.
		}

		return nil
	})
	if err != nil {
		return 0.0, err
	}

	if total == 0 {
		return 0.0, nil
	}

	return float64(caught) / float64(total), nil
}
