// Package eventlog renders a newest-first log of component messages, used to
// watch the multi-select while iterating on it.
package eventlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/charmbracelet/lipgloss/v2"
)

// Level is the severity of an entry.
type Level int

const (
	Info Level = iota
	Warn
	Error
)

// Entry is one logged message.
type Entry struct {
	At     time.Time
	Source string
	Text   string
	Level  Level
}

// Styles controls how entries render.
type Styles struct {
	Frame  lipgloss.Style
	Header lipgloss.Style
	Time   lipgloss.Style
	Source lipgloss.Style
	Info   lipgloss.Style
	Warn   lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles uses ANSI 256 greys so it reads on dark and light terminals.
func DefaultStyles() Styles {
	return Styles{
		Frame:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		Time:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Source: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Info:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
	}
}

// Log keeps at most limit entries.
type Log struct {
	viewport viewport.Model
	entries  []Entry
	limit    int
	styles   Styles

	width  int
	height int
}

// New returns a log capped at limit entries; limit <= 0 means 200.
func New(limit int) *Log {
	if limit <= 0 {
		limit = 200
	}
	return &Log{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		limit:    limit,
		styles:   DefaultStyles(),
	}
}

// SetSize sizes the log including its border and header row.
func (l *Log) SetSize(width, height int) {
	width = max(width, 4)
	height = max(height, 3)
	if l.width == width && l.height == height {
		return
	}
	l.width, l.height = width, height
	l.viewport.SetWidth(max(1, width-2))
	l.viewport.SetHeight(max(1, height-3))
	l.refresh()
}

// Add prepends an entry, filling in a missing time and source.
func (l *Log) Add(e Entry) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	if e.Source == "" {
		e.Source = "tea"
	}
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
	l.refresh()
	l.viewport.SetYOffset(0)
}

// Entries returns the logged entries, newest first.
func (l *Log) Entries() []Entry {
	return l.entries
}

// View renders the framed log, or nothing before the first SetSize.
func (l *Log) View() string {
	if l.width == 0 {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left, l.styles.Header.Render("Events"), l.viewport.View())
	return l.styles.Frame.Width(l.width).Height(l.height).Render(body)
}

func (l *Log) refresh() {
	if len(l.entries) == 0 {
		l.viewport.SetContent(l.styles.Time.Render("No events yet"))
		return
	}
	lines := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		lines = append(lines, l.render(e))
	}
	l.viewport.SetContent(strings.Join(lines, "\n"))
}

func (l *Log) render(e Entry) string {
	style := l.styles.Info
	switch e.Level {
	case Warn:
		style = l.styles.Warn
	case Error:
		style = l.styles.Error
	}
	return fmt.Sprintf("%s %s %s",
		l.styles.Time.Render(e.At.Format("15:04:05.000")),
		l.styles.Source.Render("["+e.Source+"]"),
		style.Render(e.Text))
}
