// Package scanner runs batch parses over directory trees of C++ headers.
// Scans are submitted to a single worker goroutine and observed through
// snapshot results, so a caller can poll progress or block until done.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tliron/commonlog"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
)

var log = commonlog.GetLogger("cpp2cs.scanner")

// Status is the lifecycle state of a scan.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Request describes one submitted scan.
type Request struct {
	ID        string
	Path      string
	Timeout   time.Duration
	CreatedAt time.Time
}

// Result is the state of a scan. A failed scan sets Error; a completed
// scan may still carry per-file parse failures in Errors, since one bad
// header does not fail the batch.
type Result struct {
	ID        string
	Status    Status
	Request   Request
	Classes   []*cpp.Class
	Error     string
	Errors    []string
	StartedAt time.Time
	EndedAt   time.Time
	Progress  int
	Total     int

	done chan struct{}
}

// ProgressPercent returns scan progress as 0-100.
func (r *Result) ProgressPercent() int {
	if r.Total == 0 {
		return 0
	}
	return r.Progress * 100 / r.Total
}

// Scanner owns scan state and the worker that processes requests.
type Scanner struct {
	mu       sync.RWMutex
	scans    map[string]*Result
	requests chan Request
	nextID   int
}

// New returns a Scanner with its worker goroutine running.
func New() *Scanner {
	s := &Scanner{
		scans:    make(map[string]*Result),
		requests: make(chan Request, 16),
	}
	go s.run()
	return s
}

func (s *Scanner) run() {
	for req := range s.requests {
		s.processScan(req)
	}
}

// Submit queues a scan of path and returns its ID. A timeout of zero
// parses without a deadline.
func (s *Scanner) Submit(path string, timeout time.Duration) string {
	s.mu.Lock()
	s.nextID++
	id := fmt.Sprintf("scan-%d", s.nextID)
	req := Request{ID: id, Path: path, Timeout: timeout, CreatedAt: time.Now()}
	s.scans[id] = &Result{
		ID:      id,
		Status:  StatusPending,
		Request: req,
		done:    make(chan struct{}),
	}
	s.mu.Unlock()

	log.Infof("scan %s submitted for %s", id, path)
	s.requests <- req
	return id
}

// Get returns a snapshot of a scan's state, or false for an unknown ID.
func (s *Scanner) Get(id string) (*Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.scans[id]
	if !ok {
		return nil, false
	}
	snap := *r
	return &snap, true
}

// Wait blocks until the scan finishes and returns its final state, or
// false for an unknown ID.
func (s *Scanner) Wait(id string) (*Result, bool) {
	s.mu.RLock()
	r, ok := s.scans[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	<-r.done
	return s.Get(id)
}

// List returns snapshots of all scans, ordered by submission.
func (s *Scanner) List() []*Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]*Result, 0, len(s.scans))
	for _, r := range s.scans {
		snap := *r
		results = append(results, &snap)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Request.CreatedAt.Before(results[j].Request.CreatedAt)
	})
	return results
}

// AllClasses returns the classes of all completed scans, sorted by name.
func (s *Scanner) AllClasses() []*cpp.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var classes []*cpp.Class
	for _, r := range s.scans {
		if r.Status == StatusCompleted {
			classes = append(classes, r.Classes...)
		}
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Name < classes[j].Name
	})
	return classes
}

// FindClass returns the first class with the given name across completed
// scans, or nil.
func (s *Scanner) FindClass(name string) *cpp.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.scans {
		if r.Status != StatusCompleted {
			continue
		}
		for _, c := range r.Classes {
			if c.Name == name {
				return c
			}
		}
	}
	return nil
}

func (s *Scanner) processScan(req Request) {
	s.mu.Lock()
	result := s.scans[req.ID]
	result.Status = StatusInProgress
	result.StartedAt = time.Now()
	s.mu.Unlock()

	files, err := DiscoverSources(req.Path)
	if err != nil {
		s.mu.Lock()
		result.Status = StatusFailed
		result.Error = err.Error()
		result.EndedAt = time.Now()
		s.mu.Unlock()
		close(result.done)
		log.Errorf("scan %s failed: %s", req.ID, err)
		return
	}

	s.mu.Lock()
	result.Total = len(files)
	s.mu.Unlock()

	var classes []*cpp.Class
	var errs []string
	for _, file := range files {
		parsed, err := ParseFileTimeout(file, req.Timeout)
		if err != nil {
			errs = append(errs, err.Error())
			log.Errorf("%s", err)
		} else {
			classes = append(classes, parsed...)
			log.Debugf("parsed %s: %d classes", file, len(parsed))
		}
		s.mu.Lock()
		result.Progress++
		s.mu.Unlock()
	}

	s.mu.Lock()
	result.Classes = classes
	result.Errors = errs
	result.Status = StatusCompleted
	result.EndedAt = time.Now()
	s.mu.Unlock()
	close(result.done)
	log.Infof("scan %s completed: %d files, %d classes, %d errors",
		req.ID, len(files), len(classes), len(errs))
}

// sourceExtensions are the header extensions collected by directory
// scans. Explicit file paths bypass the filter.
var sourceExtensions = map[string]bool{
	".h":   true,
	".hpp": true,
	".hh":  true,
	".hxx": true,
}

// skipDirs are never descended into, regardless of gitignore rules.
var skipDirs = map[string]struct{}{
	".git":              {},
	".hg":               {},
	".svn":              {},
	"build":             {},
	"out":               {},
	"node_modules":      {},
	"cmake-build-debug": {},
}

// DiscoverSources lists the header files under root in sorted order,
// honoring a .gitignore at the root when present. A root that is a plain
// file is returned as-is.
func DiscoverSources(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var gi *ignore.GitIgnore
	if parsed, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
		gi = parsed
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[d.Name()]; skip {
				return filepath.SkipDir
			}
			if gi != nil && gi.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !sourceExtensions[filepath.Ext(path)] {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// ErrTimeout is wrapped by ParseFileTimeout when the deadline expires.
var ErrTimeout = errors.New("timeout")

// ParseFileTimeout parses one file, giving up after timeout. The parse
// runs in its own goroutine and is abandoned on timeout, not interrupted;
// the parser has no cancellation points, so an abandoned parse finishes
// on its own and its result is discarded.
func ParseFileTimeout(path string, timeout time.Duration) ([]*cpp.Class, error) {
	if timeout <= 0 {
		return cpp.ParseFile(path)
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan struct{})
	var classes []*cpp.Class
	var parseErr error
	go func() {
		defer close(done)
		classes, parseErr = cpp.ParseFile(path)
	}()

	select {
	case <-done:
		return classes, parseErr
	case <-ctx.Done():
		return nil, fmt.Errorf("parse %s: %w after %s", path, ErrTimeout, timeout)
	}
}
