package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "snare.dev/pkg/snare/internal/model"
)

const calcSource = `package calc

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

func scale(x int) int {
	return x * 2
}

// Clamp caps x at 100.
func Clamp(x int) int {
	if x > 100 {
		return 100
	}

	return x
}
`

const calcTarget = m.Path("app/calc/calc.go")

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// newCalcRepo lays out a repository holding one Go project under app/.
func newCalcRepo(t *testing.T) string {
	t.Helper()

	repo := t.TempDir()
	writeFiles(t, repo, map[string]string{
		"app/go.mod":       "module example.com/app\n\ngo 1.21\n",
		"app/calc/calc.go": calcSource,
	})

	return repo
}

func addMutant() m.Mutant {
	return m.Mutant{
		ID:           "add-sub",
		Description:  "replace + with -",
		TargetFile:   calcTarget,
		OriginalCode: "a + b",
		MutatedCode:  "a - b",
	}
}

func compiledTest(mutant m.Mutant) m.GeneratedTest {
	return m.GeneratedTest{
		Code:               "package catchtest\n",
		CompilationSuccess: true,
		Stage:              m.StageGenerated,
		Mutant:             mutant,
	}
}
