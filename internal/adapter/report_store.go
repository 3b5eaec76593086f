package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "snare.dev/pkg/snare/internal/model"
)

const reportFileName = "report.yaml"

// ReportStore persists batch reports for the downstream acceptance stage.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.BatchReport) (m.Path, error)
	LoadReport(ctx context.Context, dir m.Path) (m.BatchReport, error)
}

// YAMLReportStore stores reports as dir/report.yaml.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to dir, creating it when needed.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, report m.BatchReport) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReport reads dir/report.yaml.
func (s *YAMLReportStore) LoadReport(ctx context.Context, dir m.Path) (m.BatchReport, error) {
	if err := ctx.Err(); err != nil {
		return m.BatchReport{}, err
	}

	// #nosec G304 - reports dir is operator configuration
	data, err := os.ReadFile(filepath.Join(string(dir), reportFileName))
	if err != nil {
		return m.BatchReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.BatchReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.BatchReport{}, fmt.Errorf("decode report: %w", err)
	}

	return report, nil
}
