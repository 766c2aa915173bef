// Package driver orchestrates cstyle.Format over real files and
// directories: walking paths, running files through the formatting
// core in parallel, consulting and updating the on-disk cache, and
// reporting progress — the file-system and concurrency layer the
// library package deliberately leaves out.
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

	"golang.org/x/sync/errgroup"

	"cstyle"
	"cstyle/internal/cerr"
	"cstyle/internal/fmtcache"
	"cstyle/internal/localize"
	"cstyle/internal/observ"
	"cstyle/internal/options"
)

var sourceExtensions = map[string]bool{
	".c":   true,
	".h":   true,
	".cc":  true,
	".cpp": true,
	".cxx": true,
	".hpp": true,
	".hxx": true,
	".java": true,
	".cs":  true,
	".m":   true,
	".mm":  true,
}

// Options configures a formatting run over a set of paths.
type Options struct {
	OptionsText string
	BaseOptions *options.Options // optional; a .cstylerc merged by the caller, layered under OptionsText
	Check       bool
	Stdout      bool
	Backup      bool // write a .orig copy before rewriting a changed file
	Jobs        int
	CachePath   string // empty disables the on-disk cache
	Lang        string // BCP 47 tag for diagnostic text, e.g. "en", "ru"; empty means English
	Progress    chan<- ProgressEvent
	Timer       *observ.Timer // optional; records a phase per collect/format/cache-save step
}

// ProgressEvent mirrors progressui.Event without importing the UI
// package, so driver stays usable headless.
type ProgressEvent struct {
	Path   string
	Status int // queued=0 formatting=1 done=2 error=3
}

// Result captures the outcome of formatting a single file.
type Result struct {
	Path        string
	Changed     bool
	Err         error
	Formatted   []byte
	Diagnostics []string // localized, rendered cerr.Diagnostic text reported while formatting
}

// FormatPaths formats every source file found under paths (files are
// taken as-is; directories are walked recursively for recognized
// extensions), honoring opts.Check/Stdout/CachePath, and returns one
// Result per file in deterministic path order.
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collectPhase := beginPhase(opts.Timer, "collect")
	files, err := CollectSourceFiles(paths)
	endPhase(opts.Timer, collectPhase, "")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("driver: no source files found")
	}

	var cache *fmtcache.Cache
	if opts.CachePath != "" {
		cache, err = fmtcache.Open(opts.CachePath)
		if err != nil {
			return nil, err
		}
	}
	optionsHash := fmtcache.HashOptions(optionsCacheKey(opts))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))

	formatPhase := beginPhase(opts.Timer, "format")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				emit(opts.Progress, path, 1)
				results[i] = formatSingleFile(path, opts, cache, optionsHash)
				if results[i].Err != nil {
					emit(opts.Progress, path, 3)
				} else {
					emit(opts.Progress, path, 2)
				}
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		endPhase(opts.Timer, formatPhase, "aborted")
		return results, err
	}
	endPhase(opts.Timer, formatPhase, fmt.Sprintf("%d files", len(files)))

	if cache != nil {
		savePhase := beginPhase(opts.Timer, "cache-save")
		_ = cache.Save()
		endPhase(opts.Timer, savePhase, "")
	}

	return results, nil
}

// optionsCacheKey folds in whether a .cstylerc base was applied, since
// the base itself isn't cheaply serializable but a run with one must
// never be treated as cache-equivalent to a run without one.
func optionsCacheKey(opts Options) string {
	if opts.BaseOptions != nil {
		return "base\x00" + opts.OptionsText
	}
	return opts.OptionsText
}

func beginPhase(t *observ.Timer, name string) int {
	if t == nil {
		return -1
	}
	return t.Begin(name)
}

func endPhase(t *observ.Timer, idx int, note string) {
	if t == nil || idx < 0 {
		return
	}
	t.End(idx, note)
}

func emit(ch chan<- ProgressEvent, path string, status int) {
	if ch == nil {
		return
	}
	ch <- ProgressEvent{Path: path, Status: status}
}

func formatSingleFile(path string, opts Options, cache *fmtcache.Cache, optionsHash string) Result {
	res := Result{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	contentHash := fmtcache.HashContent(data)

	if cache != nil && !opts.Stdout && cache.Lookup(path, contentHash, optionsHash) {
		res.Changed = false
		return res
	}

	bundle := localize.New(localize.ParseTag(opts.Lang))
	onDiag := func(d cerr.Diagnostic) {
		if d.File == "" {
			d.File = path
		}
		res.Diagnostics = append(res.Diagnostics, bundle.Diagnostic(d))
	}

	var formatted []byte
	if opts.BaseOptions != nil {
		formatted, err = cstyle.FormatWithBase(data, opts.BaseOptions, opts.OptionsText, onDiag)
	} else {
		formatted, err = cstyle.Format(data, opts.OptionsText, onDiag)
	}
	if err != nil {
		res.Err = err
		return res
	}

	changed := !bytesEqual(data, formatted)
	res.Changed = changed

	if opts.Check {
		if cache != nil && !changed {
			cache.Put(path, contentHash, optionsHash)
		}
		return res
	}

	if opts.Stdout {
		res.Formatted = formatted
		return res
	}

	if changed {
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if opts.Backup {
			if err := os.WriteFile(path+".orig", data, mode.Perm()); err != nil {
				res.Err = err
				return res
			}
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			res.Err = err
			return res
		}
	}

	if cache != nil {
		cache.Put(path, fmtcache.HashContent(formatted), optionsHash)
	}

	return res
}

// CollectSourceFiles resolves paths to a sorted, deduplicated list of
// recognized source files, walking any directory entries recursively.
// Exported so cmd/cstyle can build a file list for the progress UI
// before FormatPaths collects the same set internally.
func CollectSourceFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if sourceExtensions[filepath.Ext(path)] {
				add(path)
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

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
