// Package multiselect renders a selection manager as a Bubble Tea component:
// a search input above checkbox rows, selected options first.
package multiselect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/multiselect/pkg/catalog"
	"tableflip.dev/multiselect/pkg/option"
	"tableflip.dev/multiselect/pkg/selection"
	"tableflip.dev/multiselect/pkg/tui/theme"
)

const (
	// Placeholder is shown in the empty search input.
	Placeholder = "Zoek op ..."
	// ApplyLabel labels the apply action in the footer.
	ApplyLabel = "Toepassen"

	defaultWidth = 60
	// title, search frame (3 lines), blank line, footer
	chromeHeight = 6
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusList
)

// Options configures a Model. Manager is required.
type Options struct {
	Title   string
	Manager *selection.Manager
	Loader  *catalog.Loader
	// Reload triggers a catalog reload on every receive.
	Reload <-chan struct{}
	Theme  *theme.Theme
	// Debounce is the filter quiet window; zero means selection.DefaultDebounce.
	Debounce time.Duration
	// QuitOnApply ends the program after ApplyMsg is emitted.
	QuitOnApply bool
}

// Model is the multi-select component. It holds no selection state of its
// own; every render reads the manager's views.
type Model struct {
	title   string
	manager *selection.Manager
	loader  *catalog.Loader
	reload  <-chan struct{}
	theme   theme.Theme

	search   textinput.Model
	list     list.Model
	focusDel rowDelegate
	blurDel  rowDelegate
	focus    focusArea
	debounce time.Duration
	seq      int

	width  int
	height int

	status      selection.Status
	message     string
	applied     []option.Option
	quitOnApply bool
}

// New constructs the component.
func New(opts Options) *Model {
	search := textinput.New()
	search.Placeholder = Placeholder
	search.Prompt = "/ "
	search.Focus()

	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = selection.DefaultDebounce
	}

	focusDel := rowDelegate{theme: th, focused: true}
	blurDel := rowDelegate{theme: th}

	l := list.New(nil, blurDel, defaultWidth, 1)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	m := &Model{
		title:       opts.Title,
		manager:     opts.Manager,
		loader:      opts.Loader,
		reload:      opts.Reload,
		theme:       th,
		search:      search,
		list:        l,
		focusDel:    focusDel,
		blurDel:     blurDel,
		focus:       focusSearch,
		debounce:    debounce,
		quitOnApply: opts.QuitOnApply,
	}
	if m.loader != nil {
		m.status = selection.Status{Loading: true}
	}
	m.SetSize(defaultWidth, 0)
	return m
}

// Run launches a Bubble Tea program for the component and returns the
// options selected when the user applied, or nil if they quit.
func Run(ctx context.Context, opts Options) ([]option.Option, error) {
	opts.QuitOnApply = true
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return nil, err
	}
	return m.Applied(), nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.focus == focusSearch {
		cmds = append(cmds, m.search.Focus())
	}
	if m.loader != nil {
		cmds = append(cmds, m.loadCmd())
	}
	if m.reload != nil {
		cmds = append(cmds, waitForReload(m.reload))
	}
	if m.manager != nil {
		cmds = append(cmds, waitForChange(m.manager.Changes()))
	}
	return tea.Batch(cmds...)
}

// Applied returns the selection captured by the last apply.
func (m *Model) Applied() []option.Option {
	return m.applied
}

// Status returns the catalog flags the component renders from.
func (m *Model) Status() selection.Status {
	return m.status
}

// SetSize configures the render bounds. A zero height renders every row.
func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	m.width = width
	m.height = height
	frameX := m.theme.Search.Frame.GetHorizontalFrameSize()
	m.search.SetWidth(max(width-frameX-len(m.search.Prompt)-1, 1))
	m.resizeList()
}

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(v.Width, v.Height)
		return m, nil
	case CatalogLoadedMsg:
		m.status = selection.Status{}
		m.manager.Reconcile(v.Catalog)
		m.refresh()
		return m, nil
	case CatalogErrorMsg:
		m.status = selection.Status{Errored: true}
		m.manager.Reconcile(option.Catalog{})
		m.message = v.Err.Error()
		m.refresh()
		return m, nil
	case reloadMsg:
		m.status.Loading = true
		return m, tea.Batch(m.loadCmd(), waitForReload(m.reload))
	case ChangeMsg:
		m.refresh()
		return m, waitForChange(m.manager.Changes())
	case filterTickMsg:
		if v.seq == m.seq {
			m.manager.SetFilter(v.value)
			m.refresh()
		}
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(v)
	}

	if m.focus == focusSearch {
		return m, m.updateSearch(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+a":
		return m, m.apply()
	case "tab", "shift+tab":
		return m, m.toggleFocus()
	}

	if m.focus == focusSearch {
		switch msg.String() {
		case "down", "enter":
			return m, m.toggleFocus()
		}
		return m, m.updateSearch(msg)
	}

	switch msg.String() {
	case "space", " ", "enter", "x":
		m.toggleCurrent()
		return m, nil
	case "/":
		return m, m.toggleFocus()
	}

	before := m.list.Index()
	var cmd tea.Cmd
	switch msg.String() {
	case "up", "k":
		m.list.CursorUp()
	case "down", "j":
		m.list.CursorDown()
	case "home", "g":
		m.list.Select(0)
	case "end", "G":
		if n := len(m.list.Items()); n > 0 {
			m.list.Select(n - 1)
		}
	default:
		m.list, cmd = m.list.Update(msg)
	}
	m.skipSeparator(m.list.Index() < before)
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusSearch {
		m.focus = focusList
		m.search.Blur()
		m.list.SetDelegate(m.focusDel)
		return nil
	}
	m.focus = focusSearch
	m.list.SetDelegate(m.blurDel)
	return m.search.Focus()
}

func (m *Model) updateSearch(msg tea.Msg) tea.Cmd {
	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	value := m.search.Value()
	if value == prev {
		return cmd
	}
	m.seq++
	seq := m.seq
	tick := tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return filterTickMsg{seq: seq, value: value}
	})
	return tea.Batch(cmd, tick)
}

func (m *Model) apply() tea.Cmd {
	selected := m.manager.Selected()
	out := make([]option.Option, 0, len(selected))
	for _, s := range selected {
		out = append(out, s.Option)
	}
	m.applied = out
	m.message = fmt.Sprintf("%d selected", len(out))
	applied := ApplyMsg{Title: m.title, Selected: out}
	emit := func() tea.Msg { return applied }
	if m.quitOnApply {
		return tea.Sequence(emit, tea.Quit)
	}
	return emit
}

func (m *Model) toggleCurrent() {
	row, ok := m.list.SelectedItem().(rowItem)
	if !ok {
		return
	}
	if err := m.manager.Toggle(row.ID, !row.Selected); err != nil {
		m.message = err.Error()
	} else {
		m.message = ""
	}
	m.refresh()
	// Follow the option to its new position.
	m.selectID(row.ID)
}

// refresh rebuilds the list from the manager's views, keeping the cursor on
// the same option when it is still shown.
func (m *Model) refresh() {
	if m.manager == nil {
		return
	}
	current, _ := m.list.SelectedItem().(rowItem)
	index := m.list.Index()

	m.list.SetItems(itemsFor(m.manager.Views()))
	m.resizeList()

	if current.ID != "" && m.selectID(current.ID) {
		return
	}
	if n := len(m.list.Items()); n > 0 {
		m.list.Select(min(max(index, 0), n-1))
	}
	m.skipSeparator(false)
}

func (m *Model) selectID(id string) bool {
	for i, item := range m.list.Items() {
		if r, ok := item.(rowItem); ok && r.ID == id {
			m.list.Select(i)
			return true
		}
	}
	return false
}

// skipSeparator moves off the separator row in the direction of travel.
func (m *Model) skipSeparator(up bool) {
	if _, ok := m.list.SelectedItem().(separatorItem); !ok {
		return
	}
	if up {
		m.list.CursorUp()
		return
	}
	m.list.CursorDown()
}

// resizeList gives the list the rows left after the chrome. A zero height
// shows every row.
func (m *Model) resizeList() {
	rows := max(len(m.list.Items()), 1)
	if m.height > 0 {
		rows = max(m.height-chromeHeight, 1)
	}
	m.list.SetSize(m.width, rows)
}

// View renders the component.
func (m *Model) View() (string, *tea.Cursor) {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n")

	frame := m.theme.Search.Frame
	if m.focus == focusSearch {
		frame = m.theme.Search.FocusedFrame
	}
	b.WriteString(frame.Width(m.width).Render(m.search.View()))
	b.WriteString("\n")

	b.WriteString(m.renderBody())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String(), nil
}

func (m *Model) renderBody() string {
	views := m.manager.Views()
	state := selection.DisplayState(m.status, views)
	switch state {
	case selection.StateErrored:
		return m.theme.List.Error.Render(state.Message())
	case selection.StateLoading, selection.StateEmpty:
		if state == selection.StateEmpty && m.manager.Len() > 0 {
			return m.theme.List.Message.Render("No matches.")
		}
		return m.theme.List.Message.Render(state.Message())
	}

	return m.list.View()
}

func (m *Model) renderFooter() string {
	apply := m.theme.Footer.Apply.Render(ApplyLabel)
	help := m.theme.Footer.Help.Render("ctrl+a apply • tab focus • space toggle • esc quit")
	line := apply + "  " + help
	if m.message != "" {
		line += "\n" + m.theme.Footer.Status.Render(m.message)
	}
	return line
}

func (m *Model) loadCmd() tea.Cmd {
	loader := m.loader
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		c, err := loader.Load(context.Background())
		if err != nil {
			return CatalogErrorMsg{Err: err}
		}
		return CatalogLoadedMsg{Catalog: c}
	}
}

func waitForReload(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return reloadMsg{}
	}
}

func waitForChange(ch <-chan selection.Change) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return ChangeMsg{Change: c}
	}
}
