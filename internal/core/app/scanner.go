package app

import (
	coreerrors "comptree/internal/core/errors"
	"comptree/internal/shared/observability"
	"comptree/internal/shared/util"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

type ScanOptions struct {
	Extensions   []string
	ExcludeDirs  []string
	ExcludeFiles []string
}

type ScanResult struct {
	Files    []string
	Warnings []string
}

// CollectFiles walks root, or only root/<include> for each include entry, and
// returns the sorted absolute paths of files whose extension is recognized.
// Include entries that are missing or not directories are skipped with a
// warning. Finding nothing at all is a NO_INPUT error.
func CollectFiles(root string, include []string, opts ScanOptions) (ScanResult, error) {
	var result ScanResult

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return result, coreerrors.AddContext(fmt.Errorf("resolve root: %w", err), coreerrors.CtxPath, root)
	}

	if info, statErr := os.Stat(absRoot); statErr != nil || !info.IsDir() {
		missing := &coreerrors.DomainError{Code: coreerrors.CodeNotFound, Message: "project directory not found", Err: statErr}
		return result, missing.WithContext(coreerrors.CtxPath, absRoot)
	}

	dirGlobs, err := compileGlobs(opts.ExcludeDirs, "exclude dir")
	if err != nil {
		return result, err
	}
	fileGlobs, err := compileGlobs(opts.ExcludeFiles, "exclude file")
	if err != nil {
		return result, err
	}

	extensions := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extensions[ext] = true
	}

	scanRoots := []string{absRoot}
	if len(include) > 0 {
		scanRoots = scanRoots[:0]
		for _, dir := range collapseIncludes(include) {
			candidate := filepath.Join(absRoot, dir)
			info, statErr := os.Stat(candidate)
			if statErr != nil || !info.IsDir() {
				msg := fmt.Sprintf("include directory %q does not exist or is not a directory", dir)
				slog.Warn("skipping include directory", "path", candidate, "error", msg)
				observability.IncludeWarningsTotal.Inc()
				result.Warnings = append(result.Warnings, msg)
				continue
			}
			scanRoots = append(scanRoots, candidate)
		}
	}

	seen := make(map[string]bool)
	for _, scanRoot := range scanRoots {
		err := filepath.WalkDir(scanRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			base := filepath.Base(path)
			if d.IsDir() {
				if path == scanRoot {
					return nil
				}
				for _, g := range dirGlobs {
					if g.Match(base) {
						return filepath.SkipDir
					}
				}
				return nil
			}

			// Suffix match is case-sensitive: Foo.JSX is not a component file.
			if !extensions[filepath.Ext(path)] {
				return nil
			}
			for _, g := range fileGlobs {
				if g.Match(base) {
					return nil
				}
			}

			if !seen[path] {
				seen[path] = true
				result.Files = append(result.Files, path)
			}
			return nil
		})
		if err != nil {
			return result, coreerrors.AddContext(fmt.Errorf("walk directory: %w", err), coreerrors.CtxPath, scanRoot)
		}
	}

	sort.Strings(result.Files)
	observability.FilesScannedTotal.Add(float64(len(result.Files)))

	if len(result.Files) == 0 {
		noInput := &coreerrors.DomainError{Code: coreerrors.CodeNoInput, Message: "no component files found"}
		return result, noInput.WithContext(coreerrors.CtxPath, absRoot)
	}
	return result, nil
}

// collapseIncludes normalizes include entries and drops any entry nested in
// another one, so each directory is walked at most once.
func collapseIncludes(include []string) []string {
	normalized := make([]string, 0, len(include))
	for _, dir := range include {
		dir = util.NormalizePatternPath(dir)
		if dir == "" {
			// "." covers the whole root.
			return []string{""}
		}
		normalized = append(normalized, dir)
	}

	var out []string
	for _, dir := range util.UniqueSorted(normalized) {
		covered := false
		for _, kept := range out {
			if util.HasPathPrefix(dir, kept) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, dir)
		}
	}
	return out
}

func compileGlobs(patterns []string, label string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, coreerrors.Wrap(err, coreerrors.CodeValidationError, fmt.Sprintf("invalid %s pattern %q", label, p))
		}
		globs = append(globs, g)
	}
	return globs, nil
}
