// Package prompt picks options on a plain terminal with promptui, for use
// where the full-screen UI is unwanted.
package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/manifoldco/promptui"

	"tableflip.dev/multiselect/pkg/selection"
)

// DoneLabel ends a pick session.
const DoneLabel = "Done"

// Picker prompts for options one at a time.
type Picker struct {
	Label  string
	Size   int
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

type item struct {
	ID       string
	Label    string
	Selected bool
	Done     bool
}

var templates = &promptui.SelectTemplates{
	Label:    "{{ . }}?",
	Active:   "➜  {{ if .Done }}{{ .Label | bold | green }}{{ else }}{{ .Label | bold }}{{ end }}",
	Inactive: "   {{ if .Done }}{{ .Label | faint | green }}{{ else }}{{ .Label }}{{ end }}",
	Selected: "{{ if .Done }}{{ .Label | green }}{{ else }}{{ .Label | bold }}{{ end }}",
	Details: `
--------- Option ----------
id: {{ .ID }}
`,
}

// Pick returns the ids chosen from opts, in pick order, once the user picks
// DoneLabel. Each option can be picked once.
func (p *Picker) Pick(opts []selection.SelectableOption) ([]string, error) {
	items := itemsFor(opts)
	var picked []string
	cursor := 0
	for len(items) > 1 {
		sel := promptui.Select{
			HideHelp:  true,
			Label:     p.label(),
			Items:     items,
			Templates: templates,
			Size:      p.size(),
			CursorPos: cursor,
			Searcher:  searcher(items),
			Stdin:     p.stdin(),
			Stdout:    p.stdout(),
		}
		i, _, err := sel.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrEOF) {
				return picked, nil
			}
			return picked, err
		}
		if items[i].Done {
			return picked, nil
		}
		picked = append(picked, items[i].ID)
		items = append(items[:i], items[i+1:]...)
		cursor = min(i, len(items)-1)
	}
	return picked, nil
}

func (p *Picker) label() string {
	if p.Label == "" {
		return "Options"
	}
	return p.Label
}

func (p *Picker) size() int {
	if p.Size <= 0 {
		return 10
	}
	return p.Size
}

func (p *Picker) stdin() io.ReadCloser {
	if p.Stdin == nil {
		return os.Stdin
	}
	return p.Stdin
}

func (p *Picker) stdout() io.WriteCloser {
	if p.Stdout == nil {
		return os.Stdout
	}
	return p.Stdout
}

// itemsFor lists opts followed by the done entry.
func itemsFor(opts []selection.SelectableOption) []item {
	items := make([]item, 0, len(opts)+1)
	for _, o := range opts {
		items = append(items, item{ID: o.ID, Label: o.Label, Selected: o.Selected})
	}
	return append(items, item{Label: DoneLabel, Done: true})
}

// searcher matches like the filter input. The done entry always matches.
func searcher(items []item) func(string, int) bool {
	return func(input string, index int) bool {
		it := items[index]
		return it.Done || selection.Matches(it.Label, input)
	}
}

// NopCloser returns a WriteCloser with a no-op Close method wrapping w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
