package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "snare.dev/pkg/snare/internal/model"
)

const batchYAML = `repo_root: repo
items:
  - mutant:
      id: add-sub
      target_file: app/calc.go
      original_code: a + b
      mutated_code: a - b
      lines:
        start: 4
        end: 4
    test:
      code: |
        package catchtest
      compiled: true
  - mutant:
      target_file: app/calc.go
      original_code: a * b
      mutated_code: a / b
`

func TestYAMLBatchLoader_LoadBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(batchYAML), 0o600))

	batch, err := NewBatchLoader().LoadBatch(context.Background(), m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, m.Path(filepath.Join(dir, "repo")), batch.RepoRoot)
	require.Len(t, batch.Items, 2)

	first := batch.Items[0]
	assert.Equal(t, "add-sub", first.Mutant.ID)
	assert.Equal(t, &m.LineRange{Start: 4, End: 4}, first.Mutant.Lines)
	require.NotNil(t, first.Test)
	assert.True(t, first.Test.CompilationSuccess)
	assert.Equal(t, m.StageGenerated, first.Test.Stage)
	assert.Equal(t, first.Mutant, first.Test.Mutant)

	second := batch.Items[1]
	assert.Equal(t, "m2", second.Mutant.ID)
	assert.Nil(t, second.Test)
}

func TestYAMLBatchLoader_LoadBatch_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewBatchLoader().LoadBatch(context.Background(), m.Path(filepath.Join(dir, "missing.yaml")))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("items: [unterminated"), 0o600))

	_, err = NewBatchLoader().LoadBatch(context.Background(), m.Path(bad))
	require.Error(t, err)
}
