package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"quill/internal/diag"
	"quill/lit"
)

// ListExt is the extension of literal list files.
const ListExt = ".lit"

// CheckSource checks every literal entry in src, which uses the literal
// list format: one literal per line, blank lines and `//` lines skipped.
func CheckSource(path, src string, maxDiagnostics int) *FileResult {
	bag := diag.NewBag(maxDiagnostics)
	res := &FileResult{Path: path, Bag: bag}
	rep := diag.BagReporter{Bag: bag}

	for i, rawLine := range strings.Split(src, "\n") {
		entry := strings.TrimSpace(rawLine)
		if entry == "" || strings.HasPrefix(entry, "//") {
			continue
		}
		line := i + 1
		res.Literals++

		l, err := lit.Parse(entry)
		if err != nil {
			var perr *lit.Error
			if errors.As(err, &perr) {
				rep.Report(diag.FromLitError(path, line, entry, perr))
			}
			continue
		}
		res.Records = append(res.Records, RecordOf(path, line, l))
	}
	return res
}

// CheckFile reads and checks one literal list file.
func CheckFile(path string, maxDiagnostics int) (*FileResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return CheckSource(path, string(content), maxDiagnostics), nil
}

// ListLitFiles returns the sorted list of all *.lit files under dir.
func ListLitFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ListExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order regardless of walk order.
	sort.Strings(files)
	return files, nil
}

// Options configures a multi-file check run.
type Options struct {
	// Jobs bounds parallelism; 0 means runtime.NumCPU().
	Jobs           int
	MaxDiagnostics int
	// Cache, when set, short-circuits files whose content digest is known.
	Cache *DiskCache
	// Progress receives one event per finished file. May be nil.
	Progress Sink
}

// CheckFiles checks the given list files in parallel. Results come back
// in input order; the first hard failure (IO, cancellation) aborts the
// run.
func CheckFiles(ctx context.Context, files []string, opts Options) ([]*FileResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = 100
	}

	results := make([]*FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, cached, err := checkOne(path, maxDiags, opts.Cache)
			if err != nil {
				return err
			}
			results[i] = res
			if opts.Progress != nil {
				opts.Progress.Send(Event{
					Path:   path,
					Errors: res.Bag.Len(),
					Cached: cached,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CheckDir checks every *.lit file under dir.
func CheckDir(ctx context.Context, dir string, opts Options) ([]*FileResult, error) {
	files, err := ListLitFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list literal files in %q: %w", dir, err)
	}
	return CheckFiles(ctx, files, opts)
}

// checkOne checks a single file, going through the disk cache when one is
// configured.
func checkOne(path string, maxDiags int, cache *DiskCache) (*FileResult, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", path, err)
	}

	if cache != nil {
		key := ContentDigest(content)
		var payload DiskPayload
		hit, err := cache.Get(key, &payload)
		if err == nil && hit {
			return payload.restore(path, maxDiags), true, nil
		}

		res := CheckSource(path, string(content), maxDiags)
		// Cache write failures are not fatal for the check itself.
		_ = cache.Put(key, newDiskPayload(res))
		return res, false, nil
	}

	return CheckSource(path, string(content), maxDiags), false, nil
}
