package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/multiselect/pkg/catalog"
	"tableflip.dev/multiselect/pkg/option"
	"tableflip.dev/multiselect/pkg/selection"
	"tableflip.dev/multiselect/pkg/store"
)

// Service opens selection sessions. It wraps the store and catalog source so
// UIs and CLIs can share logic.
type Service struct {
	Store  store.Store
	Title  string
	Source catalog.Source
	Logger selection.Logger
}

var (
	ErrNoStore = errors.New("app: no store configured")
	// ErrNotListable is returned by Saved when the store cannot list keys.
	ErrNotListable = errors.New("app: store cannot list keys")
)

// Saved is a persisted selection found in the store.
type Saved struct {
	Title    string   `json:"title"`
	Selected []string `json:"selected"`
}

// Session is one widget instance: a manager reconciled against a loader.
type Session struct {
	Title   string
	Manager *selection.Manager
	Loader  *catalog.Loader
}

// Snapshot is a point-in-time rendering of a session.
type Snapshot struct {
	Title     string           `json:"title"`
	State     string           `json:"state"`
	Message   string           `json:"message,omitempty"`
	Status    selection.Status `json:"status"`
	Filter    string           `json:"filter"`
	Views     selection.Views  `json:"views"`
	Persisted []string         `json:"persisted"`
}

// NewSession builds an unloaded session. Callers that drive loading
// themselves, like the TUI, use this instead of Open.
func (s *Service) NewSession() (*Session, error) {
	if s.Store == nil {
		return nil, ErrNoStore
	}
	src := s.Source
	if src == nil {
		src = catalog.FromString("")
	}
	var opts []selection.ManagerOption
	if s.Logger != nil {
		opts = append(opts, selection.WithLogger(s.Logger))
	}
	return &Session{
		Title:   s.Title,
		Manager: selection.New(s.Store, s.Title, opts...),
		Loader:  catalog.NewLoader(src),
	}, nil
}

// Open builds a session and loads the catalog once. A failed load is recorded
// in the loader status and logged; it is not returned.
func (s *Service) Open(ctx context.Context) (*Session, error) {
	sess, err := s.NewSession()
	if err != nil {
		return nil, err
	}
	if err := sess.Reload(ctx); err != nil && s.Logger != nil {
		s.Logger.Printf("app: load catalog %s: %v", sess.Loader.Source(), err)
	}
	return sess, nil
}

// Saved lists every title with a persisted selection, ordered by key.
// Values that do not parse are skipped, as a manager would read them as no
// selection.
func (s *Service) Saved(ctx context.Context) ([]Saved, error) {
	if s.Store == nil {
		return nil, ErrNoStore
	}
	l, ok := s.Store.(store.Lister)
	if !ok {
		return nil, ErrNotListable
	}
	out := make([]Saved, 0)
	for _, key := range l.Keys(ctx) {
		title, ok := selection.TitleFromKey(key)
		if !ok {
			continue
		}
		raw, found, err := s.Store.Get(key)
		if err != nil {
			return nil, err
		}
		var ids []string
		if !found || json.Unmarshal([]byte(raw), &ids) != nil || len(ids) == 0 {
			if s.Logger != nil {
				s.Logger.Printf("app: skipping unreadable selection %q", key)
			}
			continue
		}
		out = append(out, Saved{Title: title, Selected: ids})
	}
	return out, nil
}

// Reload fetches the catalog and reconciles the manager with it. On failure
// the manager is reconciled with an empty catalog.
func (s *Session) Reload(ctx context.Context) error {
	c, err := s.Loader.Load(ctx)
	s.Manager.Reconcile(c)
	return err
}

// Snapshot renders the session state.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot(s.Manager.Filter())
}

// SnapshotFor renders the session state as if filter were applied. The
// manager's filter is left unchanged.
func (s *Session) SnapshotFor(filter string) Snapshot {
	return s.snapshot(filter)
}

func (s *Session) snapshot(filter string) Snapshot {
	views := s.Manager.ViewsFor(filter)
	status := s.Loader.Status()
	state := selection.DisplayState(status, views)
	persisted := s.Manager.Persisted()
	if persisted == nil {
		persisted = []string{}
	}
	return Snapshot{
		Title:     s.Title,
		State:     state.String(),
		Message:   state.Message(),
		Status:    status,
		Filter:    filter,
		Views:     views,
		Persisted: persisted,
	}
}

// SetSelected toggles each id to checked. Unknown ids are collected into one
// error; known ids are still applied.
func (s *Session) SetSelected(checked bool, ids ...string) error {
	var errs []error
	for _, id := range ids {
		if err := s.Manager.Toggle(id, checked); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Resolve maps user input to an option id. Input matching an id wins; a
// case-sensitive label match (decoded) is tried next, first in catalog order.
func (s *Session) Resolve(input string) (string, error) {
	idx := s.Manager.Index()
	if _, ok := idx[input]; ok {
		return input, nil
	}
	for _, o := range s.Manager.Ordered() {
		if o.Label == input {
			return o.ID, nil
		}
	}
	if _, ok := idx[option.DeriveID(input)]; ok {
		return option.DeriveID(input), nil
	}
	return "", fmt.Errorf("%w: %q", selection.ErrUnknownOption, input)
}

// Close releases the manager.
func (s *Session) Close() {
	s.Manager.Close()
}
