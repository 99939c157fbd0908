package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"schemat/internal/config"
)

// CollectSourceFiles resolves the given files and directories into a sorted,
// deduplicated list of source files. Directories are walked recursively and
// filtered by extension; files named explicitly are taken regardless of
// extension. Paths matching an ignore pattern are dropped either way.
func CollectSourceFiles(ctx context.Context, paths, extensions, ignore []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = config.DefaultExtensions
	}

	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	expanded, err := expandGlobs(paths)
	if err != nil {
		return nil, err
	}

	for _, p := range expanded {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if !ignored(p, ignore) {
				addFile(p)
			}
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && ignored(path, ignore) {
					return filepath.SkipDir
				}
				return nil
			}
			if hasExtension(path, extensions) && !ignored(path, ignore) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// expandGlobs resolves glob-pattern arguments for shells that pass them
// through verbatim. Plain paths are kept as given so a missing file still
// surfaces as a stat error rather than vanishing.
func expandGlobs(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !strings.ContainsAny(p, "*?[") {
			out = append(out, p)
			continue
		}
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern %q: %w", p, err)
		}
		out = append(out, matches...)
	}
	return out, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, want := range extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// ignored matches a path against ignore patterns. A pattern applies to the
// path's base name and to every individual path segment, so "vendor"
// excludes anything under a vendor directory and "*_gen.scm" excludes
// generated files wherever they live.
func ignored(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	segments := strings.Split(filepath.ToSlash(path), "/")
	for _, pattern := range patterns {
		pattern = strings.TrimSuffix(pattern, "/**")
		for _, seg := range segments {
			if seg == "" {
				continue
			}
			if ok, err := filepath.Match(pattern, seg); err == nil && ok {
				return true
			}
		}
	}
	return false
}
