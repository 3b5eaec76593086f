package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "snare.dev/pkg/snare/internal/model"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestLocalWorkspaceFSAdapter_CreateAndRemoveWorkspace(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalWorkspaceFSAdapter(nil)
	tempRoot := t.TempDir()

	ws, err := adapter.CreateWorkspace(ctx, m.Path(tempRoot), "exec-1")
	require.NoError(t, err)

	assert.Equal(t, m.Path(filepath.Join(tempRoot, "exec-1")), ws.Root)
	assert.DirExists(t, string(ws.ShadowDir))
	assert.DirExists(t, string(ws.TestDir))

	_, err = adapter.CreateWorkspace(ctx, m.Path(tempRoot), "exec-1")
	require.Error(t, err, "ids must never collide")

	require.NoError(t, adapter.RemoveWorkspace(ctx, ws))
	assert.NoDirExists(t, string(ws.Root))
	require.NoError(t, adapter.RemoveWorkspace(ctx, m.ExecutionWorkspace{}))
}

func TestLocalWorkspaceFSAdapter_FindProjectRoot(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalWorkspaceFSAdapter(nil)
	repo := t.TempDir()

	writeTree(t, repo, map[string]string{
		"app/go.mod":            "module example.com/app\n",
		"app/pkg/calc/calc.go":  "package calc\n",
		"loose/notes/readme.go": "package notes\n",
	})

	root, err := adapter.FindProjectRoot(ctx, m.Path(repo), m.Path(filepath.Join(repo, "app/pkg/calc/calc.go")))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(repo, "app")), root)

	_, err = adapter.FindProjectRoot(ctx, m.Path(repo), m.Path(filepath.Join(repo, "loose/notes/readme.go")))
	require.ErrorIs(t, err, ErrManifestNotFound)
}

func TestLocalWorkspaceFSAdapter_FindProjectRoot_StopsAtBoundary(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalWorkspaceFSAdapter(nil)
	repo := t.TempDir()

	writeTree(t, repo, map[string]string{
		"go.mod":         "module example.com/outer\n",
		"inner/a/a.go":   "package a\n",
		"inner/b/doc.go": "package b\n",
	})

	_, err := adapter.FindProjectRoot(ctx, m.Path(filepath.Join(repo, "inner")), m.Path(filepath.Join(repo, "inner/a/a.go")))
	require.ErrorIs(t, err, ErrManifestNotFound)
}

func TestLocalWorkspaceFSAdapter_CustomManifests(t *testing.T) {
	adapter := NewLocalWorkspaceFSAdapter([]string{"project.toml"})
	repo := t.TempDir()

	writeTree(t, repo, map[string]string{
		"svc/project.toml": "",
		"svc/src/main.go":  "package main\n",
	})

	root, err := adapter.FindProjectRoot(context.Background(), m.Path(repo), m.Path(filepath.Join(repo, "svc/src/main.go")))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(repo, "svc")), root)
}

func TestLocalWorkspaceFSAdapter_SearchFiles(t *testing.T) {
	adapter := NewLocalWorkspaceFSAdapter(nil)
	repo := t.TempDir()

	writeTree(t, repo, map[string]string{
		"a/util.go":              "package a\n",
		"b/c/util.go":            "package c\n",
		"node_modules/x/util.go": "package x\n",
		"vendor/y/util.go":       "package y\n",
		"b/other.go":             "package b\n",
	})

	found, err := adapter.SearchFiles(context.Background(), m.Path(repo), "util.go")
	require.NoError(t, err)
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(repo, "a/util.go")),
		m.Path(filepath.Join(repo, "b/c/util.go")),
	}, found)
}

func TestLocalWorkspaceFSAdapter_CloneProjectSkipsArtifacts(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalWorkspaceFSAdapter(nil)
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "shadow")

	writeTree(t, src, map[string]string{
		"go.mod":            "module example.com/app\n",
		"calc/calc.go":      "package calc\n",
		".git/HEAD":         "ref: refs/heads/main\n",
		"bin/tool":          "binary",
		"dist/app.tar":      "archive",
		"vendor/dep/dep.go": "package dep\n",
	})

	require.NoError(t, adapter.CloneProject(ctx, m.Path(src), m.Path(dst)))

	assert.FileExists(t, filepath.Join(dst, "go.mod"))
	assert.FileExists(t, filepath.Join(dst, "calc/calc.go"))
	assert.NoDirExists(t, filepath.Join(dst, ".git"))
	assert.NoDirExists(t, filepath.Join(dst, "bin"))
	assert.NoDirExists(t, filepath.Join(dst, "dist"))
	assert.NoDirExists(t, filepath.Join(dst, "vendor"))

	warm := t.TempDir()
	writeTree(t, warm, map[string]string{"vendor/modules.txt": "# cache\n"})
	require.NoError(t, adapter.CopyDir(ctx, m.Path(warm), m.Path(dst)))
	assert.FileExists(t, filepath.Join(dst, "vendor/modules.txt"))
}

func TestLocalWorkspaceFSAdapter_CloneProjectKeepsGoPackagesNamedLikeArtifacts(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalWorkspaceFSAdapter(nil)
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "shadow")

	files := map[string]string{
		"go.mod":                     "module example.com/app\n",
		"internal/build/build.go":    "package build\n",
		"internal/target/target.go":  "package target\n",
		"internal/out/out.go":        "package out\n",
		"pkg/bin/bin.go":             "package bin\n",
		"build/gen/gen.go":           "package gen\n",
		"internal/build/data/x.json": "{}",
	}
	writeTree(t, src, files)

	require.NoError(t, adapter.CloneProject(ctx, m.Path(src), m.Path(dst)))

	for rel := range files {
		assert.FileExists(t, filepath.Join(dst, rel))
	}

	found, err := adapter.SearchFiles(ctx, m.Path(src), "build.go")
	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(filepath.Join(src, "internal/build/build.go"))}, found)
}

func TestLocalWorkspaceFSAdapter_WithSkipDirs(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalWorkspaceFSAdapter(nil, WithSkipDirs([]string{"testdata"}))
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "shadow")

	writeTree(t, src, map[string]string{
		"go.mod":                "module example.com/app\n",
		"calc/testdata/big.bin": "blob",
		"vendor/dep/dep.go":     "package dep\n",
	})

	require.NoError(t, adapter.CloneProject(ctx, m.Path(src), m.Path(dst)))

	assert.NoDirExists(t, filepath.Join(dst, "calc/testdata"))
	assert.FileExists(t, filepath.Join(dst, "vendor/dep/dep.go"))
}

func TestLocalWorkspaceFSAdapter_ApplyPatch(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalWorkspaceFSAdapter(nil)
	dir := t.TempDir()
	file := filepath.Join(dir, "calc.go")

	writeTree(t, dir, map[string]string{
		"calc.go": "package calc\n\nfunc Add(a, b int) int {\n\treturn a + b\n}\n",
	})

	diff, err := adapter.ApplyPatch(ctx, m.Path(file), "a + b", "a - b")
	require.NoError(t, err)
	assert.Contains(t, diff, "-\treturn a + b")
	assert.Contains(t, diff, "+\treturn a - b")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), "return a - b")

	_, err = adapter.ApplyPatch(ctx, m.Path(file), "a * b", "a / b")
	require.ErrorIs(t, err, ErrPatchNotApplicable)

	_, err = adapter.ApplyPatch(ctx, m.Path(filepath.Join(dir, "missing.go")), "a", "b")
	require.ErrorIs(t, err, ErrPatchNotApplicable)
}

func TestLocalWorkspaceFSAdapter_WriteFileCreatesParents(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalWorkspaceFSAdapter(nil)
	path := m.Path(filepath.Join(t.TempDir(), "a", "b", "c.txt"))

	require.NoError(t, adapter.WriteFile(ctx, path, []byte("hi"), 0o600))
	assert.True(t, adapter.Exists(ctx, path))
	assert.False(t, adapter.Exists(ctx, ""))

	data, err := adapter.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestLocalWorkspaceFSAdapter_Prune(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalWorkspaceFSAdapter(nil)
	adapter.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	tempRoot := t.TempDir()

	stale := "0b6a4f1e-8a52-4c1d-9f0e-2f1c1f0c9a11"
	fresh := "7d1e9c3a-52b4-4f6e-a0d8-6c5b2e4f8a90"

	writeTree(t, tempRoot, map[string]string{
		stale + "/shadow/go.mod": "module x\n",
		"unrelated/file.txt":     "keep me",
	})

	removed, err := adapter.Prune(ctx, m.Path(tempRoot), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(filepath.Join(tempRoot, stale))}, removed)
	assert.NoDirExists(t, filepath.Join(tempRoot, stale))
	assert.DirExists(t, filepath.Join(tempRoot, "unrelated"))

	adapter.now = time.Now
	writeTree(t, tempRoot, map[string]string{fresh + "/shadow/go.mod": "module x\n"})

	removed, err = adapter.Prune(ctx, m.Path(tempRoot), time.Hour)
	require.NoError(t, err)
	assert.Empty(t, removed)

	removed, err = adapter.Prune(ctx, m.Path(filepath.Join(tempRoot, "absent")), time.Hour)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestLocalWorkspaceFSAdapter_PruneKeepsForeignDirectories(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalWorkspaceFSAdapter(nil)
	adapter.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	tempRoot := t.TempDir()

	writeTree(t, tempRoot, map[string]string{
		"my-photo-editor-cache/shadow/thumb.png": "png",
		"my-photo-editor-cache/precious.txt":     "keep me",
	})

	removed, err := adapter.Prune(ctx, m.Path(tempRoot), time.Hour)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.FileExists(t, filepath.Join(tempRoot, "my-photo-editor-cache/precious.txt"))
}

func TestDefaultTempRoot(t *testing.T) {
	assert.Equal(t, m.Path(filepath.Join(os.TempDir(), "snare")), DefaultTempRoot())
}
