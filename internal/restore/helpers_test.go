package restore

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Commands-com/claude-stacks/internal/deps"
	"github.com/Commands-com/claude-stacks/internal/fsio"
	"github.com/Commands-com/claude-stacks/internal/stack"
)

// testPresenter records every message; safe for concurrent item writes.
type testPresenter struct {
	mu        sync.Mutex
	infos     []string
	successes []string
	warnings  []string
	errors    []string
}

func (p *testPresenter) Info(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.infos = append(p.infos, fmt.Sprintf(format, args...))
}

func (p *testPresenter) Success(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.successes = append(p.successes, fmt.Sprintf(format, args...))
}

func (p *testPresenter) Warning(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *testPresenter) Error(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *testPresenter) warningContaining(substr string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, w := range p.warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

// failFS wraps a real filesystem and injects failures by path substring.
type failFS struct {
	fsio.FileSystem
	failWrite  string // WriteText fails for paths containing this
	failEnsure string // EnsureDir fails for dirs containing this
	failAtomic bool   // WriteTextAtomic always fails
}

func (f *failFS) WriteText(path, content string) error {
	if f.failWrite != "" && strings.Contains(path, f.failWrite) {
		return errors.New("injected write failure")
	}
	return f.FileSystem.WriteText(path, content)
}

func (f *failFS) EnsureDir(dir string) error {
	if f.failEnsure != "" && strings.Contains(dir, f.failEnsure) {
		return errors.New("injected mkdir failure")
	}
	return f.FileSystem.EnsureDir(dir)
}

func (f *failFS) WriteTextAtomic(path, content string) error {
	if f.failAtomic {
		return errors.New("injected rename failure")
	}
	return f.FileSystem.WriteTextAtomic(path, content)
}

// stubChecker returns a fixed advisory result.
type stubChecker struct {
	missing []deps.Missing
}

func (s *stubChecker) Check(m *stack.Manifest) []deps.Missing {
	return s.missing
}
