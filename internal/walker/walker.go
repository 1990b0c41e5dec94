// Package walker discovers the Python files a directory-rooted osort
// invocation should process: a worker-pool-parallel directory walk that
// skips the usual non-source directories, adapted from the teacher's
// core.Walker (itself a worker-pool walk collecting Go/TS/JS files) onto
// a `*.py`-only traversal plus the config's exclude globs.
package walker

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/poma-odoo/odoo-sort-go/pkg/core"
)

// Walker traverses a directory tree collecting candidate Python files.
type Walker struct {
	root   string
	config *core.Config

	workers   int
	fileQueue chan string
	resultCh  chan string
	errorCh   chan error
	wg        sync.WaitGroup

	stats Stats
	mu    sync.Mutex
}

// Stats reports what a walk found.
type Stats struct {
	TotalFiles   int
	SkippedFiles int
}

// New creates a Walker rooted at root.
func New(root string, config *core.Config) *Walker {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	return &Walker{
		root:      root,
		config:    config,
		workers:   workers,
		fileQueue: make(chan string, 100),
		resultCh:  make(chan string, 100),
		errorCh:   make(chan error, 100),
	}
}

// WithWorkers overrides the worker-pool size.
func (w *Walker) WithWorkers(n int) *Walker {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WalkSync walks the tree synchronously, returning every matching file
// path (in no particular order - callers that need determinism should
// sort the result) and any errors encountered while walking.
func (w *Walker) WalkSync() ([]string, []error) {
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker()
	}

	go func() {
		err := filepath.Walk(w.root, w.visit)
		if err != nil {
			w.errorCh <- err
		}
		close(w.fileQueue)
	}()

	go func() {
		w.wg.Wait()
		close(w.resultCh)
		close(w.errorCh)
	}()

	var files []string
	var errs []error
	done := make(chan struct{})
	go func() {
		for e := range w.errorCh {
			errs = append(errs, e)
		}
		close(done)
	}()
	for f := range w.resultCh {
		files = append(files, f)
	}
	<-done

	return files, errs
}

func (w *Walker) visit(path string, info os.FileInfo, err error) error {
	if err != nil {
		return nil
	}
	if info.IsDir() {
		if path != w.root && w.shouldSkipDir(info.Name()) {
			return filepath.SkipDir
		}
		return nil
	}
	if !strings.EqualFold(filepath.Ext(path), ".py") {
		return nil
	}

	relPath, relErr := filepath.Rel(w.root, path)
	if relErr != nil {
		relPath = path
	}
	if w.config != nil && w.config.ShouldExclude(relPath) {
		w.mu.Lock()
		w.stats.SkippedFiles++
		w.mu.Unlock()
		return nil
	}

	w.mu.Lock()
	w.stats.TotalFiles++
	w.mu.Unlock()
	w.fileQueue <- path
	return nil
}

func (w *Walker) worker() {
	defer w.wg.Done()
	for path := range w.fileQueue {
		w.resultCh <- path
	}
}

var skipDirs = map[string]bool{
	".git": true, ".hg": true, ".svn": true,
	"node_modules": true, "__pycache__": true,
	".venv": true, "venv": true, ".tox": true,
	"build": true, "dist": true, ".idea": true, ".vscode": true,
}

func (w *Walker) shouldSkipDir(name string) bool {
	return skipDirs[name]
}

// Stats returns the walker's accumulated statistics.
func (w *Walker) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}
