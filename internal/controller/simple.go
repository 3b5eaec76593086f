package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "snare.dev/pkg/snare/internal/model"
)

// Printer is the output sink of the UI; *cobra.Command satisfies it.
type Printer interface {
	OutOrStdout() io.Writer
}

var (
	caughtStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI with line-oriented output.
type SimpleUI struct {
	out  Printer
	mu   sync.Mutex
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(out Printer) *SimpleUI {
	return &SimpleUI{out: out}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	s.mu.Lock()
	s.mode = config.mode
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayStageInfo announces a pipeline stage.
func (s *SimpleUI) DisplayStageInfo(ctx context.Context, stage string, count int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s %s (%d)\n", faintStyle.Render("stage"), stage, count)
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, parallel int, count int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Running %d execution(s) with %d worker(s)\n", count, parallel)
}

// DisplayGateReport prints accepted and rejected mutants.
func (s *SimpleUI) DisplayGateReport(ctx context.Context, report m.GateReport) {
	if ctx.Err() != nil {
		return
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Mutant", "Target", "Access", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, mutant := range report.Accepted {
		table.Append([]string{mutant.ID, string(mutant.TargetFile), accessLabel(mutant.Accessibility), "accepted"})
	}

	for _, rejection := range report.Rejected {
		table.Append([]string{rejection.Mutant.ID, string(rejection.Mutant.TargetFile), accessLabel(rejection.Mutant.Accessibility), "rejected: " + rejection.Reason})
	}

	table.SetFooter([]string{"", "", "Accepted", fmt.Sprintf("%d/%d", len(report.Accepted), len(report.Accepted)+len(report.Rejected))})
	table.Render()

	s.printf("\n%s", buf.String())
}

// DisplayCompletedExecution shows the verdict of one execution.
func (s *SimpleUI) DisplayCompletedExecution(ctx context.Context, result m.ExecutionResult) {
	if ctx.Err() != nil {
		return
	}

	line := fmt.Sprintf("Completed %s -> %s", result.Mutant.ID, verdictLabel(result.Verdict()))
	if result.Recovered {
		line += " (recovered)"
	}

	if result.ErrorMessage != "" && result.Verdict() == m.Error {
		line += ": " + result.ErrorMessage
	}

	s.printf("%s\n", line)
}

// DisplaySummary prints per-verdict counts and the catch rate.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.BatchReport, catchRate float64) {
	if ctx.Err() != nil {
		return
	}

	counts := make(map[m.Verdict]int)
	for _, result := range report.Results {
		counts[result.Verdict()]++
	}

	verdicts := make([]m.Verdict, 0, len(counts))
	for verdict := range counts {
		verdicts = append(verdicts, verdict)
	}

	sort.Slice(verdicts, func(i, j int) bool { return verdicts[i] < verdicts[j] })

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Verdict", "Executions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, verdict := range verdicts {
		table.Append([]string{verdict.String(), fmt.Sprintf("%d", counts[verdict])})
	}

	table.Append([]string{"rejected by gate", fmt.Sprintf("%d", len(report.Rejected))})
	table.SetFooter([]string{"Candidates", fmt.Sprintf("%d", len(report.Candidates))})
	table.Render()

	s.printf("\n%s", buf.String())
	s.printf("Catch rate: %.2f%%\n", catchRate*100)
}

// DisplayPruned lists removed workspaces.
func (s *SimpleUI) DisplayPruned(ctx context.Context, paths []m.Path) {
	if ctx.Err() != nil {
		return
	}

	for _, path := range paths {
		s.printf("removed %s\n", path)
	}

	s.printf("Pruned %d workspace(s)\n", len(paths))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.out.OutOrStdout(), format, args...)
}

func verdictLabel(verdict m.Verdict) string {
	switch verdict {
	case m.Caught:
		return caughtStyle.Render(verdict.String())
	case m.Survived, m.FailsOnOriginal, m.Inconclusive, m.Skipped:
		return warnStyle.Render(verdict.String())
	case m.Error:
		return errorStyle.Render(verdict.String())
	default:
		return unknownLabel
	}
}

func accessLabel(access m.Accessibility) string {
	if access == m.AccessUnknown {
		return unknownLabel
	}

	return string(access)
}

const unknownLabel = "unknown"
