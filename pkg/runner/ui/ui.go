// Package ui runs the interactive multi-select.
package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/multiselect/pkg/app"
	"tableflip.dev/multiselect/pkg/catalog"
	"tableflip.dev/multiselect/pkg/option"
	"tableflip.dev/multiselect/pkg/printers"
	"tableflip.dev/multiselect/pkg/selection"
	"tableflip.dev/multiselect/pkg/tui/multiselect"
	"tableflip.dev/multiselect/pkg/tui/theme"
)

// UI opens the terminal multi-select and prints the applied selection.
type UI struct {
	Service *app.Service
	// WatchPath, when set, reloads the catalog whenever the file changes.
	WatchPath string
	JSON      bool
	ShowID    bool
	Out       io.Writer
}

func (u *UI) Do(ctx context.Context) error {
	sess, err := u.Service.NewSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var reload <-chan struct{}
	if u.WatchPath != "" {
		reload, err = catalog.Watch(ctx, u.WatchPath)
		if err != nil {
			return err
		}
	}

	th := theme.Detect()
	applied, err := multiselect.Run(ctx, multiselect.Options{
		Title:   sess.Title,
		Manager: sess.Manager,
		Loader:  sess.Loader,
		Reload:  reload,
		Theme:   &th,
	})
	if err != nil {
		return err
	}
	if applied == nil {
		return nil
	}
	return u.print(applied, sess.Manager.Selected())
}

func (u *UI) print(applied []option.Option, selected []selection.SelectableOption) error {
	out := u.Out
	if out == nil {
		out = color.Output
	}
	if u.JSON {
		b, err := json.MarshalIndent(applied, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	pp := printers.PrettyPrint{ShowID: u.ShowID, Out: out}
	pp.TitleWithCount(u.Service.Title, len(selected))
	pp.Options(selected...)
	return nil
}
