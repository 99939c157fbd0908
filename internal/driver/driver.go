// Package driver orchestrates formatting runs over many files: discovery,
// parallel execution, the canonical-content cache, and result collection.
package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"schemat/internal/diag"
	"schemat/internal/doc"
	"schemat/internal/format"
	"schemat/internal/parser"
	"schemat/internal/source"
)

// Options configures a formatting run.
type Options struct {
	// Check leaves files untouched; Changed reports what a write run
	// would rewrite.
	Check bool
	// Stdout returns formatted content in the results instead of
	// touching files on disk.
	Stdout bool
	// MaxWidth is the layout budget. Zero means doc.DefaultWidth.
	MaxWidth int
	// Extensions filters files picked up from directories.
	// Empty means config.DefaultExtensions.
	Extensions []string
	// Ignore drops matching paths from discovery.
	Ignore []string
	// Jobs caps worker parallelism. Zero or negative means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps warnings collected per file. Zero means 256.
	MaxDiagnostics int
	// Cache, when non-nil, skips files whose content is already known
	// to be canonical at the current width.
	Cache *DiskCache
	// Observer, when non-nil, receives each result as it completes.
	// Calls are serialized.
	Observer func(Result)
}

// Result captures the outcome for a single file.
type Result struct {
	Path      string
	Changed   bool
	Skipped   bool // cache said the file is already canonical
	Formatted []byte
	Warnings  []string // rendered with positions, ready to print
	Err       error
}

// FormatPaths formats the given files and directories in parallel.
// Per-file failures land in the corresponding Result; the returned error
// covers run-level problems only (discovery failure, cancellation,
// nothing to format).
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectSourceFiles(ctx, paths, opts.Extensions, opts.Ignore)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// One slot per goroutine, no mutex needed for the slice itself.
	results := make([]Result, len(files))
	var observeMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = formatOne(path, opts)
			if opts.Observer != nil {
				observeMu.Lock()
				opts.Observer(results[i])
				observeMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(path string, opts Options) Result {
	res := Result{Path: path}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	sf := fileSet.Get(fileID)

	width := opts.MaxWidth
	if width <= 0 {
		width = doc.DefaultWidth
	}

	// Loading normalized away a BOM or CRLF endings, so the bytes on disk
	// cannot be canonical regardless of what the cache says.
	pristine := sf.Flags&(source.FileHadBOM|source.FileNormalizedCRLF) == 0

	if opts.Cache != nil && pristine && !opts.Stdout {
		var payload CachePayload
		if ok, err := opts.Cache.Get(sf.Hash, &payload); err == nil && ok &&
			payload.Schema == cacheSchemaVersion && payload.MaxWidth == width {
			res.Skipped = true
			return res
		}
	}

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	bag := diag.NewBag(maxDiag)

	formatted, err := format.File(sf, format.Options{
		MaxWidth: width,
		Reporter: &diag.BagReporter{Bag: bag},
	})
	for _, d := range bag.Items() {
		res.Warnings = append(res.Warnings, diag.Render(d, fileSet))
	}
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			err = errors.New(perr.Render(fileSet))
		}
		res.Err = err
		return res
	}

	res.Changed = !pristine || !bytes.Equal(sf.Content, formatted)

	if opts.Stdout {
		res.Formatted = formatted
		return res
	}

	if !opts.Check && res.Changed {
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			res.Err = err
			return res
		}
	}

	// In check mode only an already canonical file earns a cache entry.
	if opts.Cache != nil && (!opts.Check || !res.Changed) {
		key := sha256.Sum256(formatted)
		_ = opts.Cache.Put(key, &CachePayload{Schema: cacheSchemaVersion, MaxWidth: width})
	}
	return res
}
