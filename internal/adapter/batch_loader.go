package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "snare.dev/pkg/snare/internal/model"
)

// BatchLoader reads the job file handed over by the test-authoring collaborator.
type BatchLoader interface {
	LoadBatch(ctx context.Context, path m.Path) (m.Batch, error)
}

// YAMLBatchLoader decodes batches from YAML files.
type YAMLBatchLoader struct{}

// NewBatchLoader constructs a YAMLBatchLoader.
func NewBatchLoader() *YAMLBatchLoader {
	return &YAMLBatchLoader{}
}

// LoadBatch decodes path. A relative repo_root is resolved against the batch
// file's directory; an empty one defaults to it.
func (l *YAMLBatchLoader) LoadBatch(ctx context.Context, path m.Path) (m.Batch, error) {
	if err := ctx.Err(); err != nil {
		return m.Batch{}, err
	}

	// #nosec G304 - batch path is a CLI argument
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Batch{}, fmt.Errorf("read batch: %w", err)
	}

	var batch m.Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return m.Batch{}, fmt.Errorf("decode batch %s: %w", path, err)
	}

	base := filepath.Dir(string(path))

	switch {
	case batch.RepoRoot == "":
		batch.RepoRoot = m.Path(base)
	case !filepath.IsAbs(string(batch.RepoRoot)):
		batch.RepoRoot = m.Path(filepath.Join(base, string(batch.RepoRoot)))
	}

	for i := range batch.Items {
		item := &batch.Items[i]
		if item.Mutant.ID == "" {
			item.Mutant.ID = fmt.Sprintf("m%d", i+1)
		}

		if item.Test != nil {
			item.Test.Mutant = item.Mutant
			if item.Test.Stage == "" {
				item.Test.Stage = m.StageGenerated
			}
		}
	}

	return batch, nil
}
