// Package mcp provides the Model Context Protocol server integration for
// multiselect.
package mcp

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/multiselect/pkg/app"
)

// Service coordinates session operations shared by the MCP tools and
// resources.
type Service struct {
	Session *app.Session
}

// NewService wraps a session.
func NewService(sess *app.Session) *Service {
	return &Service{Session: sess}
}

// ErrNoSession is returned when the service has nothing to operate on.
var ErrNoSession = errors.New("mcp: no session")

// SelectionDTO is the persisted selection in transport form.
type SelectionDTO struct {
	Title    string   `json:"title"`
	Key      string   `json:"key"`
	Selected []string `json:"selected"`
}

// List returns the current snapshot. A non-nil filter narrows this response
// only; the session filter is untouched.
func (s *Service) List(_ context.Context, filter *string) (app.Snapshot, error) {
	if s.Session == nil {
		return app.Snapshot{}, ErrNoSession
	}
	if filter != nil {
		return s.Session.SnapshotFor(*filter), nil
	}
	return s.Session.Snapshot(), nil
}

// Toggle resolves input to an option and sets it to checked.
func (s *Service) Toggle(_ context.Context, input string, checked bool) (app.Snapshot, error) {
	if s.Session == nil {
		return app.Snapshot{}, ErrNoSession
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return app.Snapshot{}, errors.New("mcp: option id is required")
	}
	id, err := s.Session.Resolve(input)
	if err != nil {
		return app.Snapshot{}, err
	}
	if err := s.Session.Manager.Toggle(id, checked); err != nil {
		return app.Snapshot{}, err
	}
	return s.Session.Snapshot(), nil
}

// SetFilter applies filter text immediately.
func (s *Service) SetFilter(_ context.Context, text string) (app.Snapshot, error) {
	if s.Session == nil {
		return app.Snapshot{}, ErrNoSession
	}
	s.Session.Manager.SetFilter(text)
	return s.Session.Snapshot(), nil
}

// Clear unselects every option.
func (s *Service) Clear(_ context.Context) (app.Snapshot, error) {
	if s.Session == nil {
		return app.Snapshot{}, ErrNoSession
	}
	if err := s.Session.Manager.Clear(); err != nil {
		return app.Snapshot{}, err
	}
	return s.Session.Snapshot(), nil
}

// Reload fetches the catalog again. A failed load is reported in the
// snapshot status rather than as an error.
func (s *Service) Reload(ctx context.Context) (app.Snapshot, error) {
	if s.Session == nil {
		return app.Snapshot{}, ErrNoSession
	}
	_ = s.Session.Reload(ctx)
	return s.Session.Snapshot(), nil
}

// Selection returns the persisted ids.
func (s *Service) Selection(_ context.Context) (SelectionDTO, error) {
	if s.Session == nil {
		return SelectionDTO{}, ErrNoSession
	}
	ids := s.Session.Manager.Persisted()
	if ids == nil {
		ids = []string{}
	}
	return SelectionDTO{
		Title:    s.Session.Title,
		Key:      s.Session.Manager.Key(),
		Selected: ids,
	}, nil
}
