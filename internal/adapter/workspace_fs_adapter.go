// Package adapter contains filesystem, process and collaborator adapters for snare.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"

	m "snare.dev/pkg/snare/internal/model"
)

const (
	shadowDirName = "shadow"
	testDirName   = "test"

	// tempDirName is the directory under os.TempDir holding every execution root.
	tempDirName = "snare"
)

// ErrManifestNotFound is returned when no project manifest exists on the path to a file.
var ErrManifestNotFound = errors.New("project manifest not found")

// ErrPatchNotApplicable is returned when the original span is absent from the target file.
var ErrPatchNotApplicable = errors.New("original code not found in target file")

// DefaultSkipDirs lists version-control and dependency-cache directories that
// are never cloned or searched, at any depth.
var DefaultSkipDirs = []string{".git", ".hg", ".svn", "vendor", "node_modules"}

// ArtifactDirs lists build-output directory names. They are only skipped at the
// top of the walked tree and only when they hold no Go source, since names such
// as build or target are ordinary Go package names.
var ArtifactDirs = []string{"bin", "obj", "out", "dist", "build", "target"}

// DefaultTempRoot returns the directory execution workspaces live in when no
// temp root is configured.
func DefaultTempRoot() m.Path {
	return m.Path(filepath.Join(os.TempDir(), tempDirName))
}

// DefaultManifests lists the file names that mark a project root.
var DefaultManifests = []string{"go.mod"}

// WorkspaceFSAdapter abstracts the filesystem operations needed to build,
// mutate and tear down per-execution workspaces. The real repository is only
// ever read through it; writes target workspace paths.
//
//nolint:interfacebloat // Keeping workspace I/O behind one seam lets the engine be tested without disk access.
type WorkspaceFSAdapter interface {
	// CreateWorkspace creates {tempRoot}/{id}/shadow and {tempRoot}/{id}/test.
	CreateWorkspace(ctx context.Context, tempRoot m.Path, id string) (m.ExecutionWorkspace, error)

	// RemoveWorkspace deletes the whole execution root.
	RemoveWorkspace(ctx context.Context, ws m.ExecutionWorkspace) error

	// FindProjectRoot walks upward from the directory of file looking for a
	// manifest, never climbing above stopAt when stopAt is an ancestor.
	FindProjectRoot(ctx context.Context, stopAt, file m.Path) (m.Path, error)

	// SearchFiles returns every file under root named name, skipping build artifacts.
	SearchFiles(ctx context.Context, root m.Path, name string) ([]m.Path, error)

	// CloneProject copies a project tree, skipping build artifacts.
	CloneProject(ctx context.Context, src, dst m.Path) error

	// CopyDir copies every file from src into dst, overwriting existing files.
	CopyDir(ctx context.Context, src, dst m.Path) error

	// ApplyPatch replaces the first occurrence of original with mutated in
	// file and returns a unified diff of the change.
	ApplyPatch(ctx context.Context, file m.Path, original, mutated string) (string, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// Exists reports whether a path exists.
	Exists(ctx context.Context, path m.Path) bool

	// Prune removes execution roots under tempRoot older than olderThan.
	Prune(ctx context.Context, tempRoot m.Path, olderThan time.Duration) ([]m.Path, error)
}

// LocalWorkspaceFSAdapter is the os-backed WorkspaceFSAdapter.
type LocalWorkspaceFSAdapter struct {
	manifests    []string
	skipDirs     map[string]struct{}
	artifactDirs map[string]struct{}
	now          func() time.Time
}

// FSOption configures a LocalWorkspaceFSAdapter.
type FSOption func(*LocalWorkspaceFSAdapter)

// WithSkipDirs replaces DefaultSkipDirs. An empty list keeps the defaults.
func WithSkipDirs(dirs []string) FSOption {
	return func(a *LocalWorkspaceFSAdapter) {
		if len(dirs) > 0 {
			a.skipDirs = nameSet(dirs)
		}
	}
}

// NewLocalWorkspaceFSAdapter constructs a LocalWorkspaceFSAdapter recognising the
// given manifest file names (DefaultManifests when empty).
func NewLocalWorkspaceFSAdapter(manifests []string, opts ...FSOption) *LocalWorkspaceFSAdapter {
	if len(manifests) == 0 {
		manifests = DefaultManifests
	}

	a := &LocalWorkspaceFSAdapter{
		manifests:    manifests,
		skipDirs:     nameSet(DefaultSkipDirs),
		artifactDirs: nameSet(ArtifactDirs),
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

// CreateWorkspace creates the execution root with its shadow and test subtrees.
func (a *LocalWorkspaceFSAdapter) CreateWorkspace(ctx context.Context, tempRoot m.Path, id string) (m.ExecutionWorkspace, error) {
	if err := ctx.Err(); err != nil {
		return m.ExecutionWorkspace{}, err
	}

	if tempRoot == "" {
		tempRoot = DefaultTempRoot()
	}

	root := filepath.Join(string(tempRoot), id)
	ws := m.ExecutionWorkspace{
		ID:        id,
		Root:      m.Path(root),
		ShadowDir: m.Path(filepath.Join(root, shadowDirName)),
		TestDir:   m.Path(filepath.Join(root, testDirName)),
	}

	if _, err := os.Stat(root); err == nil {
		return m.ExecutionWorkspace{}, fmt.Errorf("workspace %s already exists", root)
	}

	for _, dir := range []m.Path{ws.ShadowDir, ws.TestDir} {
		if err := os.MkdirAll(string(dir), 0o750); err != nil {
			return ws, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	return ws, nil
}

// RemoveWorkspace removes the execution root and all its contents.
func (a *LocalWorkspaceFSAdapter) RemoveWorkspace(_ context.Context, ws m.ExecutionWorkspace) error {
	if ws.Root == "" {
		return nil
	}

	return os.RemoveAll(string(ws.Root))
}

// FindProjectRoot searches for a manifest file walking up the directory tree.
func (a *LocalWorkspaceFSAdapter) FindProjectRoot(ctx context.Context, stopAt, file m.Path) (m.Path, error) {
	dir, err := filepath.Abs(filepath.Dir(string(file)))
	if err != nil {
		return "", err
	}

	limit := ""
	if stopAt != "" {
		if limit, err = filepath.Abs(string(stopAt)); err != nil {
			return "", err
		}

		if !isWithin(limit, dir) {
			limit = ""
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		for _, manifest := range a.manifests {
			if _, err := os.Stat(filepath.Join(dir, manifest)); err == nil {
				return m.Path(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == limit {
			return "", fmt.Errorf("%w: no %s above %s", ErrManifestNotFound, strings.Join(a.manifests, "/"), file)
		}

		dir = parent
	}
}

// SearchFiles walks root and collects files whose base name equals name.
func (a *LocalWorkspaceFSAdapter) SearchFiles(ctx context.Context, root m.Path, name string) ([]m.Path, error) {
	var found []m.Path

	err := filepath.WalkDir(string(root), func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if a.skipped(string(root), path) {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Name() == name {
			found = append(found, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found, nil
}

// CloneProject recursively copies a project tree, skipping build artifacts.
func (a *LocalWorkspaceFSAdapter) CloneProject(ctx context.Context, src, dst m.Path) error {
	return a.copyTree(ctx, src, dst, true)
}

// CopyDir recursively copies a directory tree without skipping anything.
func (a *LocalWorkspaceFSAdapter) CopyDir(ctx context.Context, src, dst m.Path) error {
	return a.copyTree(ctx, src, dst, false)
}

func (a *LocalWorkspaceFSAdapter) copyTree(ctx context.Context, src, dst m.Path, skip bool) error {
	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		if info.IsDir() && skip && a.skipped(string(src), path) {
			return filepath.SkipDir
		}

		targetPath := filepath.Join(string(dst), relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode().Perm()|0o700)
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		return a.copyFile(path, targetPath, info.Mode())
	})
}

// copyFile copies a single file.
func (a *LocalWorkspaceFSAdapter) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src is a project file discovered by walking the project tree
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is inside an execution workspace
	destFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm()|0o600)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return nil
}

// ApplyPatch replaces the first verbatim occurrence of original with mutated.
func (a *LocalWorkspaceFSAdapter) ApplyPatch(ctx context.Context, file m.Path, original, mutated string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(string(file))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPatchNotApplicable, err)
	}

	content, err := os.ReadFile(string(file))
	if err != nil {
		return "", err
	}

	before := string(content)

	idx := strings.Index(before, original)
	if original == "" || idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrPatchNotApplicable, filepath.Base(string(file)))
	}

	after := before[:idx] + mutated + before[idx+len(original):]

	if err := os.WriteFile(string(file), []byte(after), info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("write mutated file: %w", err)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "original/" + filepath.Base(string(file)),
		ToFile:   "mutated/" + filepath.Base(string(file)),
		Context:  2,
	})
	if err != nil {
		return "", fmt.Errorf("render diff: %w", err)
	}

	return diff, nil
}

// ReadFile loads file contents from disk.
func (a *LocalWorkspaceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalWorkspaceFSAdapter) WriteFile(_ context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// Exists reports whether a path exists.
func (a *LocalWorkspaceFSAdapter) Exists(_ context.Context, path m.Path) bool {
	if path == "" {
		return false
	}

	_, err := os.Stat(string(path))

	return err == nil
}

// Prune removes stale execution roots left behind by crashed runs.
func (a *LocalWorkspaceFSAdapter) Prune(ctx context.Context, tempRoot m.Path, olderThan time.Duration) ([]m.Path, error) {
	entries, err := os.ReadDir(string(tempRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	cutoff := a.now().Add(-olderThan)

	var removed []m.Path

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		if !entry.IsDir() {
			continue
		}

		// Execution roots are uuid-named.
		if _, err := uuid.Parse(entry.Name()); err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(string(tempRoot), entry.Name())
		if !a.Exists(ctx, m.Path(filepath.Join(path, shadowDirName))) {
			continue
		}

		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}

		removed = append(removed, m.Path(path))
	}

	return removed, nil
}

// skipped reports whether the directory at path, found while walking root,
// must not be cloned or searched.
func (a *LocalWorkspaceFSAdapter) skipped(root, path string) bool {
	root = filepath.Clean(root)
	if filepath.Clean(path) == root {
		return false
	}

	name := filepath.Base(path)
	if _, ok := a.skipDirs[name]; ok {
		return true
	}

	if _, ok := a.artifactDirs[name]; !ok || filepath.Dir(filepath.Clean(path)) != root {
		return false
	}

	return !containsGoSource(path)
}

func containsGoSource(dir string) bool {
	found := false

	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if !d.IsDir() && filepath.Ext(d.Name()) == ".go" {
			found = true
			return filepath.SkipAll
		}

		return nil
	})

	return found
}

func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	return rel == "." || (!strings.HasPrefix(rel, ".."+string(filepath.Separator)) && rel != "..")
}
