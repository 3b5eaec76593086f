package domain_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snare.dev/pkg/snare/internal/adapter"
	"snare.dev/pkg/snare/internal/domain"
	m "snare.dev/pkg/snare/internal/model"
)

func newTestGate(quota int) domain.Gate {
	fsAdapter := adapter.NewLocalWorkspaceFSAdapter(nil)
	return domain.NewGate(fsAdapter, adapter.NewGoSourceAdapter(), domain.NewProjectResolver(fsAdapter), quota)
}

func mutantIDs(mutants []m.Mutant) []string {
	ids := make([]string, 0, len(mutants))
	for _, mutant := range mutants {
		ids = append(ids, mutant.ID)
	}

	return ids
}

func TestGate_RejectsInvalidMutants(t *testing.T) {
	repo := newCalcRepo(t)

	mutants := []m.Mutant{
		{ID: "identical", TargetFile: calcTarget, OriginalCode: "a + b", MutatedCode: "a + b"},
		{ID: "empty", TargetFile: calcTarget, OriginalCode: "", MutatedCode: "a - b"},
		{ID: "missing", TargetFile: "app/calc/nope.go", OriginalCode: "a + b", MutatedCode: "a - b"},
		{ID: "stale", TargetFile: calcTarget, OriginalCode: "a * b", MutatedCode: "a / b"},
		{ID: "equivalent", TargetFile: calcTarget, OriginalCode: "return 100", MutatedCode: "return 100.0"},
		addMutant(),
	}

	report := newTestGate(domain.DefaultNonPublicQuota).Filter(context.Background(), m.Path(repo), mutants)

	assert.Equal(t, []string{"add-sub"}, mutantIDs(report.Accepted))
	assert.Equal(t, m.AccessPublic, report.Accepted[0].Accessibility)

	require.Len(t, report.Rejected, 5)

	reasons := make(map[string]string, len(report.Rejected))
	for _, rejection := range report.Rejected {
		reasons[rejection.Mutant.ID] = rejection.Reason
	}

	assert.Equal(t, domain.ReasonIdentical, reasons["identical"])
	assert.Equal(t, domain.ReasonEmpty, reasons["empty"])
	assert.True(t, strings.HasPrefix(reasons["missing"], domain.ReasonTargetMissing))
	assert.Equal(t, domain.ReasonNotInTarget, reasons["stale"])
	assert.Equal(t, domain.ReasonEquivalent, reasons["equivalent"])
}

func TestGate_PrioritisesPublicAndCapsNonPublic(t *testing.T) {
	repo := newCalcRepo(t)

	mutants := []m.Mutant{
		{ID: "priv-1", TargetFile: calcTarget, OriginalCode: "x * 2", MutatedCode: "x * 3"},
		addMutant(),
		{ID: "priv-2", TargetFile: calcTarget, OriginalCode: "x * 2", MutatedCode: "x + 2"},
		{ID: "priv-3", TargetFile: calcTarget, OriginalCode: "x * 2", MutatedCode: "x - 2"},
		{ID: "clamp", TargetFile: calcTarget, OriginalCode: "x > 100", MutatedCode: "x >= 100"},
	}

	report := newTestGate(2).Filter(context.Background(), m.Path(repo), mutants)

	assert.Equal(t, []string{"add-sub", "clamp", "priv-1", "priv-2"}, mutantIDs(report.Accepted))
	assert.Equal(t, m.AccessPrivate, report.Accepted[2].Accessibility)

	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "priv-3", report.Rejected[0].Mutant.ID)
	assert.Equal(t, "non-public quota exceeded (private)", report.Rejected[0].Reason)

	unlimited := newTestGate(-1).Filter(context.Background(), m.Path(repo), mutants)
	assert.Len(t, unlimited.Accepted, 5)
	assert.Empty(t, unlimited.Rejected)
}

func TestGate_HonoursDeclaredAccessibility(t *testing.T) {
	repo := newCalcRepo(t)

	declared := addMutant()
	declared.Accessibility = m.AccessProtected

	report := newTestGate(0).Filter(context.Background(), m.Path(repo), []m.Mutant{declared})

	assert.Empty(t, report.Accepted)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "non-public quota exceeded (protected)", report.Rejected[0].Reason)
}

func TestGate_UsesLineHintForRepeatedSpans(t *testing.T) {
	repo := t.TempDir()
	writeFiles(t, repo, map[string]string{
		"app/go.mod": "module example.com/app\n",
		"app/dup.go": "package app\n\nfunc Pub() int {\n\treturn 1 + 1\n}\n\nfunc priv() int {\n\treturn 1 + 1\n}\n",
	})

	mutant := m.Mutant{
		ID:           "second",
		TargetFile:   "app/dup.go",
		OriginalCode: "1 + 1",
		MutatedCode:  "1 - 1",
		Lines:        &m.LineRange{Start: 8, End: 8},
	}

	report := newTestGate(-1).Filter(context.Background(), m.Path(repo), []m.Mutant{mutant})

	require.Len(t, report.Accepted, 1)
	assert.Equal(t, m.AccessPrivate, report.Accepted[0].Accessibility)
}

func TestGate_RejectsTargetOutsideAnyProject(t *testing.T) {
	repo := t.TempDir()
	writeFiles(t, repo, map[string]string{
		"scripts/util.go": "package main\n\nfunc Double(x int) int { return x * 2 }\n",
		"svc/go.mod":      "module example.com/svc\n",
		"svc/util.go":     "package svc\n\nfunc Double(x int) int { return x * 2 }\n",
	})

	mutant := m.Mutant{ID: "double-add", TargetFile: "scripts/util.go", OriginalCode: "x * 2", MutatedCode: "x + 2"}

	report := newTestGate(domain.DefaultNonPublicQuota).Filter(context.Background(), m.Path(repo), []m.Mutant{mutant})

	assert.Empty(t, report.Accepted)
	require.Len(t, report.Rejected, 1)
	assert.True(t, strings.HasPrefix(report.Rejected[0].Reason, domain.ReasonTargetMissing))
}
