package list

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/multiselect/pkg/app"
	"tableflip.dev/multiselect/pkg/printers"
)

// Titles prints every title that has a persisted selection.
type Titles struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (t *Titles) Do(ctx context.Context) error {
	saved, err := t.Service.Saved(ctx)
	if err != nil {
		return err
	}

	out := t.Out
	if out == nil {
		out = color.Output
	}
	if t.JSON {
		b, err := json.MarshalIndent(saved, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := printers.PrettyPrint{Out: out}
	if len(saved) == 0 {
		pp.Message("no saved selections")
		return nil
	}
	for _, s := range saved {
		pp.Saved(s.Title, s.Selected)
	}
	return nil
}
