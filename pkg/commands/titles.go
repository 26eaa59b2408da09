package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/multiselect/pkg/commands/options"
	"tableflip.dev/multiselect/pkg/runner/list"
)

func addTitles(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "titles",
		Short: "list titles with a saved selection",
		Example: `
multiselect titles
multiselect titles --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(&options.SelectionOptions{}, lo)
			if err != nil {
				return oo.HandleError(err)
			}
			t := list.Titles{Service: svc, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(t.Do(contextOf(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddLogArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
