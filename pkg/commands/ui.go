package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/multiselect/pkg/commands/options"
	"tableflip.dev/multiselect/pkg/runner/list"
	"tableflip.dev/multiselect/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SelectionOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	lo := &options.LogOptions{}
	watch := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based multi-select",
		Long: base.Wrap80(`Open a full-screen multi-select. Type to filter, tab to move between the
search box and the options, space to toggle, ctrl+a to apply. When stdout is
not a terminal the views are listed instead.`),
		Example: `
multiselect ui
multiselect ui --title Genre --catalog genres.yaml --watch
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so, lo)
			if err != nil {
				return oo.HandleError(err)
			}

			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				l := list.List{Service: svc, JSON: oo.JSON, ShowID: io.ShowID, Out: cmd.OutOrStdout()}
				return oo.HandleError(l.Do(contextOf(cmd)))
			}

			u := ui.UI{Service: svc, JSON: oo.JSON, ShowID: io.ShowID}
			if watch {
				u.WatchPath = catalogPath(svc)
			}
			return oo.HandleError(u.Do(contextOf(cmd)))
		},
	}

	options.AddSelectionArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	options.AddLogArgs(cmd, lo)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Reload the catalog when its file changes.")

	topLevel.AddCommand(cmd)
}
