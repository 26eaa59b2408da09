// Package toggle selects, unselects, and clears options from the command line.
package toggle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/multiselect/pkg/app"
	"tableflip.dev/multiselect/pkg/prompt"
	"tableflip.dev/multiselect/pkg/selection"
)

// Toggle sets each input, an id or a label, to Checked. With no inputs and
// Picker set, the user picks options interactively.
type Toggle struct {
	Service *app.Service
	Inputs  []string
	Checked bool
	Picker  *prompt.Picker
	JSON    bool
	Out     io.Writer
}

func (t *Toggle) Do(ctx context.Context) error {
	if len(t.Inputs) == 0 && t.Picker == nil {
		return errors.New("toggle: no options given")
	}
	sess, err := t.Service.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if sess.Loader.Status().Errored {
		return fmt.Errorf("toggle: catalog unavailable: %w", sess.Loader.Err())
	}

	if len(t.Inputs) == 0 {
		// Selecting picks from unselected options, unselecting from selected.
		views := sess.Manager.Views()
		candidates := views.Unselected
		if !t.Checked {
			candidates = views.Selected
		}
		picked, err := t.Picker.Pick(candidates)
		if err != nil {
			return fmt.Errorf("toggle: prompt: %w", err)
		}
		t.Inputs = picked
	}

	var errs []error
	ids := make([]string, 0, len(t.Inputs))
	for _, in := range t.Inputs {
		id, err := sess.Resolve(in)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ids = append(ids, id)
	}
	if err := sess.SetSelected(t.Checked, ids...); err != nil {
		errs = append(errs, err)
	}

	if err := printPersisted(t.out(), t.JSON, sess.Manager.Persisted()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (t *Toggle) out() io.Writer {
	if t.Out == nil {
		return color.Output
	}
	return t.Out
}

// Clear removes the persisted selection for the service's title. The catalog
// is not loaded.
type Clear struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (c *Clear) Do(_ context.Context) error {
	if c.Service.Store == nil {
		return app.ErrNoStore
	}
	key := selection.CacheKey(c.Service.Title)
	if err := c.Service.Store.Remove(key); err != nil {
		return fmt.Errorf("toggle: clear %q: %w", key, err)
	}
	out := c.Out
	if out == nil {
		out = color.Output
	}
	return printPersisted(out, c.JSON, nil)
}

func printPersisted(out io.Writer, asJSON bool, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	if asJSON {
		b, err := json.Marshal(map[string][]string{"selected": ids})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	faint := color.New(color.Faint)
	if len(ids) == 0 {
		_, _ = faint.Fprintln(out, "no options selected")
		return nil
	}
	_, _ = faint.Fprintf(out, "%d selected: ", len(ids))
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
