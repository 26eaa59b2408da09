package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/multiselect/pkg/catalog"
	"tableflip.dev/multiselect/pkg/option"
	"tableflip.dev/multiselect/pkg/selection"
	"tableflip.dev/multiselect/pkg/store"
	"tableflip.dev/multiselect/pkg/tui/eventlog"
	"tableflip.dev/multiselect/pkg/tui/multiselect"
)

type options struct {
	full   bool
	width  int
	height int
	delay  time.Duration
	fail   bool
	count  int
	seed   []string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the multi-select component inside a fixed frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 60, "frame width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 20, "frame height when not fullscreen")
	rootCmd.PersistentFlags().DurationVar(&opts.delay, "delay", time.Second, "how long the catalog takes to load")
	rootCmd.PersistentFlags().BoolVar(&opts.fail, "fail", false, "make the catalog load fail")
	rootCmd.PersistentFlags().IntVar(&opts.count, "count", -1, "number of generated options instead of the product groups (0 for an empty catalog)")
	rootCmd.PersistentFlags().StringSliceVar(&opts.seed, "seed", nil, "ids to pre-select in the in-memory store")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	title := "Testbed"
	seed := map[string]string{}
	if len(opts.seed) > 0 {
		raw, err := json.Marshal(opts.seed)
		if err != nil {
			return err
		}
		seed[selection.CacheKey(title)] = string(raw)
	}
	mgr := selection.New(store.NewMemory(seed), title)
	defer mgr.Close()

	src := slowSource{delay: opts.delay, fail: opts.fail, catalog: sampleCatalog(opts.count)}
	base := newTestbedModel(opts, multiselect.New(multiselect.Options{
		Title:   title,
		Manager: mgr,
		Loader:  catalog.NewLoader(src),
	}))
	p := tea.NewProgram(base, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var errTestbed = errors.New("testbed: load failed on request")

type slowSource struct {
	delay   time.Duration
	fail    bool
	catalog option.Catalog
}

func (s slowSource) Load(ctx context.Context) (option.Catalog, error) {
	select {
	case <-ctx.Done():
		return option.Catalog{}, ctx.Err()
	case <-time.After(s.delay):
	}
	if s.fail {
		return option.Catalog{}, errTestbed
	}
	return s.catalog, nil
}

func (s slowSource) String() string { return "testbed" }

func sampleCatalog(count int) option.Catalog {
	if count < 0 {
		return option.FromLabels(catalog.ProductGroups...)
	}
	labels := make([]string, 0, count)
	for i := 0; i < count; i++ {
		labels = append(labels, fmt.Sprintf("Option %03d", i+1))
	}
	return option.FromLabels(labels...)
}

type testbedModel struct {
	fullscreen bool
	maxWidth   int
	maxHeight  int

	termWidth  int
	termHeight int

	inner  *multiselect.Model
	events *eventlog.Log
}

func newTestbedModel(opts options, inner *multiselect.Model) *testbedModel {
	return &testbedModel{
		fullscreen: opts.full,
		maxWidth:   opts.width,
		maxHeight:  opts.height,
		inner:      inner,
		events:     eventlog.New(400),
	}
}

func (m *testbedModel) Init() tea.Cmd { return m.inner.Init() }

func (m *testbedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.recordEvent(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		w, h := m.frameSize()
		m.inner.SetSize(max(1, w-2), max(1, h-2))
		m.events.SetSize(m.termWidth, eventHeight)
		return m, nil
	case multiselect.ApplyMsg:
		return m, nil
	}

	_, cmd := m.inner.Update(msg)
	return m, cmd
}

func (m *testbedModel) View() (string, *tea.Cursor) {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…", nil
	}
	w, h := m.frameSize()
	content, cursor := m.inner.View()

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(w).
		Height(h).
		Render(lipgloss.NewStyle().Width(max(1, w-2)).Height(max(1, h-2)).Render(content))

	if cursor != nil {
		clone := *cursor
		clone.Position.X++
		clone.Position.Y++
		cursor = &clone
	}
	return lipgloss.JoinVertical(lipgloss.Left, frame, m.events.View()), cursor
}

func (m *testbedModel) frameSize() (int, int) {
	space := max(minFrameHeight, m.termHeight-eventHeight-frameGap)
	if m.fullscreen {
		return max(20, m.termWidth), space
	}
	return clamp(m.maxWidth, 20, m.termWidth), clamp(m.maxHeight, minFrameHeight, space)
}

func (m *testbedModel) recordEvent(msg tea.Msg) {
	text, level := describeMsg(msg)
	if text == "" {
		return
	}
	m.events.Add(eventlog.Entry{Source: fmt.Sprintf("%T", msg), Text: text, Level: level})
}

func describeMsg(msg tea.Msg) (string, eventlog.Level) {
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String()), eventlog.Info
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height), eventlog.Info
	case multiselect.CatalogLoadedMsg:
		return fmt.Sprintf("catalog loaded: %d options", len(v.Catalog)), eventlog.Info
	case multiselect.CatalogErrorMsg:
		return fmt.Sprintf("catalog error: %v", v.Err), eventlog.Error
	case multiselect.ChangeMsg:
		return v.Change.Describe(), eventlog.Info
	case multiselect.ApplyMsg:
		ids := make([]string, 0, len(v.Selected))
		for _, o := range v.Selected {
			ids = append(ids, o.ID)
		}
		return fmt.Sprintf("apply %q: %v", v.Title, ids), eventlog.Warn
	default:
		return "", eventlog.Info
	}
}

func clamp(value, lo, hi int) int {
	if hi <= 0 || value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

const (
	minFrameHeight = 10
	eventHeight    = 8
	frameGap       = 1
)
