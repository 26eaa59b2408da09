package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tableflip.dev/multiselect/pkg/option"
	"tableflip.dev/multiselect/pkg/store"
)

var (
	// ErrUnknownOption is returned when toggling an id the catalog does not hold.
	ErrUnknownOption = errors.New("selection: unknown option")
	// ErrPersist wraps store failures. The in-memory state stays authoritative.
	ErrPersist = errors.New("selection: persist")
)

// Manager owns the selection index and filter text for one widget instance.
// The store is borrowed and written after every mutation.
type Manager struct {
	mu sync.Mutex

	store  store.Store
	key    string
	logger Logger

	order  []string
	index  Index
	filter string

	debouncer *Debouncer
	changes   chan Change
	closed    bool
}

// ManagerOption customizes a Manager.
type ManagerOption func(*managerConfig)

type managerConfig struct {
	logger   Logger
	debounce time.Duration
}

// WithLogger attaches a logger for swallowed failures.
func WithLogger(l Logger) ManagerOption {
	return func(cfg *managerConfig) {
		if l == nil {
			cfg.logger = noopLogger{}
			return
		}
		cfg.logger = l
	}
}

// WithDebounce overrides the filter input quiet window.
func WithDebounce(d time.Duration) ManagerOption {
	return func(cfg *managerConfig) {
		if d > 0 {
			cfg.debounce = d
		}
	}
}

// New creates a Manager persisting to s under CacheKey(title). The index is
// empty until Reconcile is called.
func New(s store.Store, title string, opts ...ManagerOption) *Manager {
	cfg := managerConfig{logger: noopLogger{}, debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Manager{
		store:   s,
		key:     CacheKey(title),
		logger:  cfg.logger,
		index:   Index{},
		changes: make(chan Change, 64),
	}
	m.debouncer = NewDebouncer(cfg.debounce, m.SetFilter)
	return m
}

// Key returns the store key the manager persists to.
func (m *Manager) Key() string {
	return m.key
}

// Changes delivers a Change after each mutation. Sends never block; a slow
// consumer misses intermediate changes but can always re-read Views.
func (m *Manager) Changes() <-chan Change {
	return m.changes
}

// Reconcile replaces the index with one built from catalog and the persisted
// selection. Ids that left the catalog are dropped; nothing is written.
func (m *Manager) Reconcile(catalog option.Catalog) {
	m.mu.Lock()
	defer m.mu.Unlock()

	persisted := make(map[string]struct{})
	for _, id := range m.readPersistedLocked() {
		persisted[id] = struct{}{}
	}

	index := make(Index, len(catalog))
	order := make([]string, 0, len(catalog))
	for _, o := range catalog {
		if o.ID == "" {
			m.logger.Printf("selection: skipping option without id (label %q)", o.Label)
			continue
		}
		if _, seen := index[o.ID]; !seen {
			order = append(order, o.ID)
		}
		_, selected := persisted[o.ID]
		index[o.ID] = SelectableOption{
			Option: option.Option{
				ID:    o.ID,
				Label: option.DecodeLabel(o.Label),
				Value: o.Value,
			},
			Selected: selected,
		}
	}

	m.index = index
	m.order = order
	m.emitLocked(Change{Kind: ChangeReconcile})
}

// Toggle sets the selected flag for id and persists the result. Unknown ids
// are a no-op reported as ErrUnknownOption.
func (m *Manager) Toggle(id string, checked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.index[id]
	if !ok {
		m.logger.Printf("selection: toggle unknown option %q", id)
		return fmt.Errorf("%w: %q", ErrUnknownOption, id)
	}
	entry.Selected = checked
	m.index[id] = entry

	err := m.persistLocked()
	m.emitLocked(Change{Kind: ChangeToggle, ID: id, Selected: checked})
	return err
}

// SelectAll marks every option selected.
func (m *Manager) SelectAll() error {
	return m.setAll(true)
}

// Clear unselects every option, which removes the persisted key.
func (m *Manager) Clear() error {
	return m.setAll(false)
}

func (m *Manager) setAll(checked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, entry := range m.index {
		entry.Selected = checked
		m.index[id] = entry
	}
	err := m.persistLocked()
	m.emitLocked(Change{Kind: ChangeBulk, Selected: checked})
	return err
}

// SetFilter applies filter text immediately.
func (m *Manager) SetFilter(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.filter == text {
		return
	}
	m.filter = text
	m.emitLocked(Change{Kind: ChangeFilter, Filter: text})
}

// FilterInput applies raw input after the debounce window. Only the last
// value within the window takes effect.
func (m *Manager) FilterInput(raw string) {
	m.debouncer.Push(raw)
}

// FlushFilter applies pending filter input now.
func (m *Manager) FlushFilter() bool {
	return m.debouncer.Flush()
}

// Filter returns the applied filter text.
func (m *Manager) Filter() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter
}

// Views derives the selected and unselected-filtered views.
func (m *Manager) Views() Views {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Derive(m.order, m.index, m.filter)
}

// ViewsFor derives the views for filter without changing the stored filter.
func (m *Manager) ViewsFor(filter string) Views {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Derive(m.order, m.index, filter)
}

// Ordered returns every option in catalog order.
func (m *Manager) Ordered() []SelectableOption {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SelectableOption, 0, len(m.order))
	for _, id := range m.order {
		if o, ok := m.index[id]; ok {
			out = append(out, o)
		}
	}
	return out
}

// Selected returns the selected options sorted by label.
func (m *Manager) Selected() []SelectableOption {
	return m.Views().Selected
}

// Index returns a copy of the selection index.
func (m *Manager) Index() Index {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.index.Clone()
}

// Len returns the number of options in the index.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.index)
}

// Persisted returns the ids currently in the store.
func (m *Manager) Persisted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readPersistedLocked()
}

// Close stops pending filter input and closes the change channel.
func (m *Manager) Close() {
	m.debouncer.Stop()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.changes)
}

// readPersistedLocked never fails: absent or malformed values read as no
// selection.
func (m *Manager) readPersistedLocked() []string {
	if m.store == nil {
		return nil
	}
	raw, ok, err := m.store.Get(m.key)
	if err != nil {
		m.logger.Printf("selection: read %q: %v", m.key, err)
		return nil
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		m.logger.Printf("selection: ignoring malformed value for %q: %v", m.key, err)
		return nil
	}
	return ids
}

// persistLocked writes the selected ids in selected-view order, or removes the
// key when nothing is selected.
func (m *Manager) persistLocked() error {
	if m.store == nil {
		return nil
	}
	selected := Derive(m.order, m.index, "").Selected
	var err error
	if len(selected) == 0 {
		err = m.store.Remove(m.key)
	} else {
		ids := make([]string, 0, len(selected))
		for _, o := range selected {
			ids = append(ids, o.ID)
		}
		var b []byte
		b, err = json.Marshal(ids)
		if err == nil {
			err = m.store.Set(m.key, string(b))
		}
	}
	if err != nil {
		m.logger.Printf("selection: persist %q: %v", m.key, err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

func (m *Manager) emitLocked(c Change) {
	if m.closed {
		return
	}
	select {
	case m.changes <- c:
	default:
	}
}
