package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/multiselect/pkg/commands/options"
	"tableflip.dev/multiselect/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	so := &options.SelectionOptions{}
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list selected and unselected options",
		Long: base.Wrap80(`List the selected options, sorted by label, followed by the unselected
options matching the filter in catalog order.`),
		Example: `
multiselect list
multiselect list --filter fa --show-id
multiselect list --title Genre --catalog https://example.com/api/productGroups --json
`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so, lo)
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Service: svc,
				Filter:  fo.Filter,
				JSON:    oo.JSON,
				Table:   oo.Table,
				ShowID:  io.ShowID,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(contextOf(cmd)))
		},
	}

	options.AddSelectionArgs(cmd, so)
	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	options.AddTableArg(cmd, oo)
	options.AddLogArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
