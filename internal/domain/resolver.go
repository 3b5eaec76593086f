package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"snare.dev/pkg/snare/internal/adapter"
	m "snare.dev/pkg/snare/internal/model"
)

const resolverCacheSize = 512

// projectLocation is a resolved target file and the root of the project owning it.
type projectLocation struct {
	Root   m.Path
	Target m.Path
}

// ProjectResolver maps a repository-relative target file to its owning project.
type ProjectResolver interface {
	Resolve(ctx context.Context, repoRoot, target m.Path) (projectLocation, error)
}

type projectResolver struct {
	fsAdapter adapter.WorkspaceFSAdapter
	cache     *lru.Cache[string, projectLocation]
}

// NewProjectResolver constructs a ProjectResolver memoising successful lookups.
func NewProjectResolver(fsAdapter adapter.WorkspaceFSAdapter) ProjectResolver {
	cache, err := lru.New[string, projectLocation](resolverCacheSize)
	if err != nil {
		panic(err)
	}

	return &projectResolver{fsAdapter: fsAdapter, cache: cache}
}

// Resolve walks up from the target file to the nearest manifest. When that
// fails the repository is searched by file name. Only matches ending with the
// full relative path are accepted when the target exists or such a match is
// present; a bare file-name match is the last resort for a moved file.
func (r *projectResolver) Resolve(ctx context.Context, repoRoot, target m.Path) (projectLocation, error) {
	key := string(repoRoot) + "\x00" + string(target)
	if loc, ok := r.cache.Get(key); ok {
		return loc, nil
	}

	loc, err := r.resolve(ctx, repoRoot, target)
	if err != nil {
		return projectLocation{}, err
	}

	r.cache.Add(key, loc)

	return loc, nil
}

func (r *projectResolver) resolve(ctx context.Context, repoRoot, target m.Path) (projectLocation, error) {
	abs := string(target)
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(string(repoRoot), abs)
	}

	exists := r.fsAdapter.Exists(ctx, m.Path(abs))
	if exists {
		root, err := r.fsAdapter.FindProjectRoot(ctx, repoRoot, m.Path(abs))
		if err == nil {
			return projectLocation{Root: root, Target: m.Path(abs)}, nil
		}

		slog.Debug("No manifest above target, searching repository", "target", target, "error", err)
	}

	candidates, err := r.fsAdapter.SearchFiles(ctx, repoRoot, filepath.Base(string(target)))
	if err != nil {
		return projectLocation{}, fmt.Errorf("%w: search %s: %w", ErrProjectResolution, target, err)
	}

	matching, rest := splitBySuffix(candidates, target)
	if len(matching) > 0 || exists {
		rest = nil
	}

	for _, candidate := range append(matching, rest...) {
		root, err := r.fsAdapter.FindProjectRoot(ctx, repoRoot, candidate)
		if err != nil {
			continue
		}

		return projectLocation{Root: root, Target: candidate}, nil
	}

	return projectLocation{}, fmt.Errorf("%w: %s", ErrProjectResolution, target)
}

// splitBySuffix separates candidates ending with the relative target path from the rest.
func splitBySuffix(candidates []m.Path, target m.Path) ([]m.Path, []m.Path) {
	suffix := "/" + strings.TrimPrefix(filepath.ToSlash(filepath.Clean(string(target))), "/")

	var matching, rest []m.Path

	for _, candidate := range candidates {
		if strings.HasSuffix(filepath.ToSlash(string(candidate)), suffix) {
			matching = append(matching, candidate)
		} else {
			rest = append(rest, candidate)
		}
	}

	return matching, rest
}
