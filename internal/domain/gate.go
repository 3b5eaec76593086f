package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"snare.dev/pkg/snare/internal/adapter"
	m "snare.dev/pkg/snare/internal/model"
)

// DefaultNonPublicQuota caps how many non-public mutants pass the gate.
const DefaultNonPublicQuota = 2

// Rejection reasons recorded by the gate.
const (
	ReasonIdentical     = "original and mutated code are identical"
	ReasonEmpty         = "original or mutated code is empty"
	ReasonTargetMissing = "target file could not be read"
	ReasonNotInTarget   = "original code not found in target file"
	ReasonEquivalent    = "mutation is numerically equivalent"
	ReasonQuotaExceeded = "non-public quota exceeded"
)

// Gate validates and prioritises mutants before any test is generated or run.
type Gate interface {
	Filter(ctx context.Context, repoRoot m.Path, mutants []m.Mutant) m.GateReport
}

type gate struct {
	fsAdapter     adapter.WorkspaceFSAdapter
	sourceAdapter adapter.SourceAdapter
	resolver      ProjectResolver
	quota         int
}

// NewGate constructs a Gate. A negative quota disables the non-public cap.
func NewGate(fsAdapter adapter.WorkspaceFSAdapter, sourceAdapter adapter.SourceAdapter, resolver ProjectResolver, quota int) Gate {
	return &gate{
		fsAdapter:     fsAdapter,
		sourceAdapter: sourceAdapter,
		resolver:      resolver,
		quota:         quota,
	}
}

// Filter returns the accepted mutants, public first and then at most quota
// non-public ones, each group in input order. Every dropped mutant is
// returned with its reason.
func (g *gate) Filter(ctx context.Context, repoRoot m.Path, mutants []m.Mutant) m.GateReport {
	var (
		report    m.GateReport
		public    []m.Mutant
		nonPublic []m.Mutant
	)

	for _, mutant := range mutants {
		content, reason := g.validate(ctx, repoRoot, mutant)
		if reason != "" {
			slog.Debug("Mutant rejected", "mutant", mutant.ID, "reason", reason)
			report.Rejected = append(report.Rejected, m.Rejection{Mutant: mutant, Reason: reason})

			continue
		}

		mutant.Accessibility = g.accessibility(ctx, mutant, content)

		if mutant.Accessibility.IsPublic() {
			public = append(public, mutant)
		} else {
			nonPublic = append(nonPublic, mutant)
		}
	}

	report.Accepted = append(report.Accepted, public...)

	for i, mutant := range nonPublic {
		if g.quota >= 0 && i >= g.quota {
			report.Rejected = append(report.Rejected, m.Rejection{
				Mutant: mutant,
				Reason: fmt.Sprintf("%s (%s)", ReasonQuotaExceeded, mutant.Accessibility),
			})

			continue
		}

		report.Accepted = append(report.Accepted, mutant)
	}

	return report
}

// validate applies the structural and equivalence checks, returning the
// target file content on success and a rejection reason otherwise.
func (g *gate) validate(ctx context.Context, repoRoot m.Path, mutant m.Mutant) (string, string) {
	if mutant.OriginalCode == "" || mutant.MutatedCode == "" {
		return "", ReasonEmpty
	}

	if mutant.OriginalCode == mutant.MutatedCode {
		return "", ReasonIdentical
	}

	loc, err := g.resolver.Resolve(ctx, repoRoot, mutant.TargetFile)
	if err != nil {
		return "", fmt.Sprintf("%s: %v", ReasonTargetMissing, err)
	}

	data, err := g.fsAdapter.ReadFile(ctx, loc.Target)
	if err != nil {
		return "", fmt.Sprintf("%s: %v", ReasonTargetMissing, err)
	}

	content := string(data)
	if !strings.Contains(content, mutant.OriginalCode) {
		return "", ReasonNotInTarget
	}

	if NumericallyEquivalent(mutant.OriginalCode, mutant.MutatedCode) {
		return "", ReasonEquivalent
	}

	return content, ""
}

func (g *gate) accessibility(ctx context.Context, mutant m.Mutant, content string) m.Accessibility {
	if mutant.Accessibility != m.AccessUnknown {
		return mutant.Accessibility
	}

	if g.sourceAdapter == nil || !g.sourceAdapter.Supports(mutant.TargetFile) {
		return m.AccessUnknown
	}

	offset := spanOffset(content, mutant)

	access, err := g.sourceAdapter.Accessibility(ctx, string(mutant.TargetFile), []byte(content), offset)
	if err != nil {
		slog.Debug("Could not resolve enclosing declaration", "mutant", mutant.ID, "error", err)
		return m.AccessUnknown
	}

	return access
}

// spanOffset locates the mutated span, honouring the line hint when present.
func spanOffset(content string, mutant m.Mutant) int {
	if mutant.Lines != nil && mutant.Lines.Start > 1 {
		lineStart := 0

		for line := 1; line < mutant.Lines.Start; line++ {
			next := strings.IndexByte(content[lineStart:], '\n')
			if next < 0 {
				lineStart = -1
				break
			}

			lineStart += next + 1
		}

		if lineStart >= 0 {
			if idx := strings.Index(content[lineStart:], mutant.OriginalCode); idx >= 0 {
				return lineStart + idx
			}
		}
	}

	return strings.Index(content, mutant.OriginalCode)
}
