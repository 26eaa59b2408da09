package multiselect

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/multiselect/pkg/selection"
	"tableflip.dev/multiselect/pkg/tui/theme"
)

// rowItem is one option row in the list.
type rowItem struct {
	selection.SelectableOption
}

func (r rowItem) FilterValue() string { return r.Label }

// separatorItem divides the selected rows from the unselected ones. The
// cursor never rests on it.
type separatorItem struct{}

func (separatorItem) FilterValue() string { return "" }

// rowDelegate renders checkbox rows. The focused delegate marks the cursor
// row; the blurred one does not.
type rowDelegate struct {
	theme   theme.Theme
	focused bool
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch it := item.(type) {
	case separatorItem:
		_, _ = fmt.Fprint(w, d.theme.List.Separator.Render(strings.Repeat("─", max(m.Width()/2, 1))))
	case rowItem:
		box := "[ ]"
		style := d.theme.List.Unchecked
		if it.Selected {
			box = "[x]"
			style = d.theme.List.Checked
		}
		label := truncate.StringWithTail(it.Label, uint(max(m.Width()-6, 1)), "…")
		line := box + " " + label
		if d.focused && index == m.Index() {
			_, _ = fmt.Fprint(w, "> "+d.theme.List.Cursor.Render(line))
			return
		}
		_, _ = fmt.Fprint(w, "  "+style.Render(line))
	}
}

// itemsFor lays out the selected view, a separator when both sections have
// rows, then the unselected view.
func itemsFor(v selection.Views) []list.Item {
	items := make([]list.Item, 0, len(v.Selected)+len(v.Unselected)+1)
	for _, o := range v.Selected {
		items = append(items, rowItem{o})
	}
	if len(v.Selected) > 0 && len(v.Unselected) > 0 {
		items = append(items, separatorItem{})
	}
	for _, o := range v.Unselected {
		items = append(items, rowItem{o})
	}
	return items
}
