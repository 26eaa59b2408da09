// Package list prints the selection views without a terminal UI.
package list

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/multiselect/pkg/app"
	"tableflip.dev/multiselect/pkg/printers"
	"tableflip.dev/multiselect/pkg/selection"
)

type List struct {
	Service *app.Service
	Filter  string
	JSON    bool
	ShowID  bool
	Table   bool
	Out     io.Writer
}

func (l *List) Do(ctx context.Context) error {
	sess, err := l.Service.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if l.Filter != "" {
		sess.Manager.SetFilter(l.Filter)
	}

	out := l.Out
	if out == nil {
		out = color.Output
	}

	snap := sess.Snapshot()
	if l.JSON {
		b, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID, Out: out}
	state := selection.DisplayState(snap.Status, snap.Views)
	if l.Table && state == selection.StateReady {
		pp.Table(snap.Views)
		return nil
	}
	pp.Views(snap.Title, state, snap.Views)
	return nil
}
