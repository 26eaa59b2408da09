package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/multiselect/pkg/selection"
)

// PrettyPrint renders selection views for the terminal.
type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " option")
	default:
		_, _ = c.Fprintln(pp.out(), " options")
	}
}

// Message prints a display-state message in place of the options.
func (pp *PrettyPrint) Message(msg string) {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprintf(pp.out(), " %s\n\n", msg)
}

// Options prints one checkbox row per option.
func (pp *PrettyPrint) Options(opts ...selection.SelectableOption) {
	if len(opts) == 0 {
		pp.Message("none")
		return
	}

	t := color.New()
	s := color.New(color.FgHiGreen)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, o := range opts {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), o.ID)
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", max(len(spacing)-len(o.ID), 1)))
		}
		if o.Selected {
			_, _ = s.Fprintf(pp.out(), "[x] %s\n", o.Label)
		} else {
			_, _ = t.Fprintf(pp.out(), "[ ] %s\n", o.Label)
		}
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Views prints the selected view then the unselected-filtered view, or the
// state message when the list is not ready.
func (pp *PrettyPrint) Views(title string, state selection.State, v selection.Views) {
	pp.Title(title)
	if msg := state.Message(); msg != "" {
		pp.Message(msg)
		return
	}
	pp.TitleWithCount("Selected", len(v.Selected))
	pp.Options(v.Selected...)
	pp.TitleWithCount("Options", len(v.Unselected))
	pp.Options(v.Unselected...)
}

// Table prints the views as a single id/label/value table, selected rows
// first.
func (pp *PrettyPrint) Table(v selection.Views) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(""), bold.Sprint("ID"), bold.Sprint("Label"), bold.Sprint("Value"))
	for _, o := range v.Selected {
		tbl.AddRow("[x]", o.ID, o.Label, o.Value)
	}
	for _, o := range v.Unselected {
		tbl.AddRow("[ ]", o.ID, o.Label, o.Value)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Saved prints a persisted selection as a title and its ids.
func (pp *PrettyPrint) Saved(title string, ids []string) {
	pp.TitleWithCount(title, len(ids))
	y := color.New(color.FgHiYellow, color.Faint)
	_, _ = y.Fprintf(pp.out(), "  %s\n\n", strings.Join(ids, ", "))
}
