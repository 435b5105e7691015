package report

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
)

// ErrUnknownWindow is returned when resolving a window name that was never
// registered.
var ErrUnknownWindow = errors.New("window is not registered")

// Window computes the fetch period for a named report window.
type Window struct {
	Label string
	Range func(now time.Time) domain.TimePeriod
}

// Registry manages the named report windows shared by the CLI and the web
// surface. Custom calendar dates go through timewindow.ParseDay instead.
type Registry interface {
	// Register adds a new named window
	Register(name string, window Window) error
	// Resolve returns the window registered under name
	Resolve(name string) (Window, error)
	// ListWindows returns the registered window names, sorted
	ListWindows() []string
}

type registry struct {
	mu      sync.RWMutex
	windows map[string]Window
}

// NewRegistry creates an empty window registry.
func NewRegistry() Registry {
	return &registry{windows: make(map[string]Window)}
}

func (r *registry) Register(name string, window Window) error {
	if name == "" {
		return fmt.Errorf("window name cannot be empty")
	}
	if window.Range == nil {
		return fmt.Errorf("window range cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.windows[name]; exists {
		return fmt.Errorf("window %q is already registered", name)
	}

	r.windows[name] = window
	return nil
}

func (r *registry) Resolve(name string) (Window, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	window, exists := r.windows[name]
	if !exists {
		return Window{}, fmt.Errorf("window %q: %w", name, ErrUnknownWindow)
	}
	return window, nil
}

func (r *registry) ListWindows() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.windows))
	for name := range r.windows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
