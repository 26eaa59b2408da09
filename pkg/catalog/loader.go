package catalog

import (
	"context"
	"sync"

	"tableflip.dev/multiselect/pkg/option"
	"tableflip.dev/multiselect/pkg/selection"
)

// Loader wraps a Source and tracks its loading and error flags.
type Loader struct {
	source Source

	mu     sync.Mutex
	status selection.Status
	err    error
}

// NewLoader returns a Loader for src.
func NewLoader(src Source) *Loader {
	return &Loader{source: src}
}

// Source returns the wrapped source.
func (l *Loader) Source() Source {
	return l.source
}

// Load fetches the catalog, flipping Loading for the duration and Errored on
// failure. A failed load returns an empty catalog alongside the error.
func (l *Loader) Load(ctx context.Context) (option.Catalog, error) {
	l.mu.Lock()
	l.status = selection.Status{Loading: true}
	l.mu.Unlock()

	c, err := l.source.Load(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
	l.status = selection.Status{Errored: err != nil}
	if err != nil {
		return option.Catalog{}, err
	}
	return c, nil
}

// Status returns the current flags.
func (l *Loader) Status() selection.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Err returns the error from the last load, if any.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
