package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	m "snare.dev/pkg/snare/internal/model"
)

const (
	goModFile = "go.mod"
	goSumFile = "go.sum"

	// TestModulePath is the module path of every throwaway test project.
	TestModulePath = "snare.local/catchtest"

	// TestFileName is the file the generated test source is written to.
	TestFileName = "catch_test.go"

	replacedVersion = "v0.0.0-00010101000000-000000000000"
)

// ManifestAdapter reads and rewrites project manifests so that cloned and
// throwaway projects keep resolving their dependencies outside the repository.
type ManifestAdapter interface {
	// ModulePath returns the module path declared by the manifest in dir.
	ModulePath(ctx context.Context, dir m.Path) (string, error)

	// RewriteReplaces rewrites relative replace targets in the manifest of
	// shadowDir to absolute paths resolved against originalRoot. It returns the
	// number of rewritten directives.
	RewriteReplaces(ctx context.Context, shadowDir, originalRoot m.Path) (int, error)

	// WriteTestManifest writes the manifest of a throwaway test project that
	// depends on the module in shadowDir.
	WriteTestManifest(ctx context.Context, testDir, shadowDir m.Path) error
}

// GoModAdapter implements ManifestAdapter for go.mod files.
type GoModAdapter struct{}

// NewGoModAdapter constructs a GoModAdapter.
func NewGoModAdapter() *GoModAdapter {
	return &GoModAdapter{}
}

func (a *GoModAdapter) parse(dir m.Path) (*modfile.File, string, error) {
	path := filepath.Join(string(dir), goModFile)

	// #nosec G304 - manifest path derived from a resolved project root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read manifest: %w", err)
	}

	file, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, path, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	return file, path, nil
}

// ModulePath returns the module path declared in dir/go.mod.
func (a *GoModAdapter) ModulePath(ctx context.Context, dir m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	file, path, err := a.parse(dir)
	if err != nil {
		return "", err
	}

	if file.Module == nil || file.Module.Mod.Path == "" {
		return "", fmt.Errorf("manifest %s declares no module", path)
	}

	return file.Module.Mod.Path, nil
}

// RewriteReplaces points relative replace directives at the original sibling projects.
func (a *GoModAdapter) RewriteReplaces(ctx context.Context, shadowDir, originalRoot m.Path) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	file, path, err := a.parse(shadowDir)
	if err != nil {
		return 0, err
	}

	rewritten := 0

	for _, rep := range file.Replace {
		if rep.New.Version != "" || !modfile.IsDirectoryPath(rep.New.Path) || filepath.IsAbs(rep.New.Path) {
			continue
		}

		target, err := filepath.Abs(filepath.Join(string(originalRoot), rep.New.Path))
		if err != nil {
			return rewritten, err
		}

		if err := file.AddReplace(rep.Old.Path, rep.Old.Version, target, ""); err != nil {
			return rewritten, fmt.Errorf("rewrite replace %s: %w", rep.Old.Path, err)
		}

		rewritten++
	}

	if rewritten == 0 {
		return 0, nil
	}

	file.Cleanup()

	out, err := file.Format()
	if err != nil {
		return rewritten, fmt.Errorf("format manifest: %w", err)
	}

	if err := os.WriteFile(path, out, 0o600); err != nil {
		return rewritten, fmt.Errorf("write manifest: %w", err)
	}

	return rewritten, nil
}

// WriteTestManifest writes testDir/go.mod requiring the shadow module. Local
// replace directives of the shadow module are carried over, since replace only
// applies in the main module.
func (a *GoModAdapter) WriteTestManifest(ctx context.Context, testDir, shadowDir m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	shadow, _, err := a.parse(shadowDir)
	if err != nil {
		return err
	}

	if shadow.Module == nil {
		return fmt.Errorf("shadow manifest declares no module")
	}

	absShadow, err := filepath.Abs(string(shadowDir))
	if err != nil {
		return err
	}

	file, err := modfile.Parse(goModFile, []byte("module "+TestModulePath+"\n"), nil)
	if err != nil {
		return err
	}

	if shadow.Go != nil {
		if err := file.AddGoStmt(shadow.Go.Version); err != nil {
			return err
		}
	}

	modulePath := shadow.Module.Mod.Path
	if err := file.AddRequire(modulePath, replacedVersion); err != nil {
		return err
	}

	if err := file.AddReplace(modulePath, "", absShadow, ""); err != nil {
		return err
	}

	for _, rep := range shadow.Replace {
		if rep.Old.Path == modulePath {
			continue
		}

		if err := file.AddReplace(rep.Old.Path, rep.Old.Version, rep.New.Path, rep.New.Version); err != nil {
			return fmt.Errorf("carry replace %s: %w", rep.Old.Path, err)
		}
	}

	file.Cleanup()

	out, err := file.Format()
	if err != nil {
		return fmt.Errorf("format test manifest: %w", err)
	}

	if err := os.WriteFile(filepath.Join(string(testDir), goModFile), out, 0o600); err != nil {
		return fmt.Errorf("write test manifest: %w", err)
	}

	sum := filepath.Join(string(shadowDir), goSumFile)
	// #nosec G304 - go.sum inside the execution workspace
	if data, err := os.ReadFile(sum); err == nil {
		if err := os.WriteFile(filepath.Join(string(testDir), goSumFile), data, 0o600); err != nil {
			return fmt.Errorf("write test go.sum: %w", err)
		}
	}

	return nil
}
