package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/multiselect/pkg/commands/options"
	"tableflip.dev/multiselect/pkg/prompt"
	"tableflip.dev/multiselect/pkg/runner/toggle"
)

func addSelect(topLevel *cobra.Command) {
	addToggle(topLevel, true, &cobra.Command{
		Use:   "select [option...]",
		Short: "select options by id or label",
		Example: `
multiselect select Fantasy Thrillers
multiselect select 1 2 --title Genre --catalog genres.yaml
multiselect select -i
`,
	})
}

func addUnselect(topLevel *cobra.Command) {
	addToggle(topLevel, false, &cobra.Command{
		Use:     "unselect [option...]",
		Short:   "unselect options by id or label",
		Aliases: []string{"deselect"},
		Example: `
multiselect unselect Fantasy
multiselect unselect -i
`,
	})
}

func addToggle(topLevel *cobra.Command, checked bool, cmd *cobra.Command) {
	so := &options.SelectionOptions{}
	io := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}
	lo := &options.LogOptions{}

	cmd.Args = func(cmd *cobra.Command, args []string) error {
		if io.Interactive {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	}
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return optionCompletions(cmd.Context(), so, lo, checked, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		svc, err := newService(so, lo)
		if err != nil {
			return oo.HandleError(err)
		}
		t := toggle.Toggle{
			Service: svc,
			Inputs:  args,
			Checked: checked,
			JSON:    oo.JSON,
			Out:     cmd.OutOrStdout(),
		}
		if io.Interactive {
			t.Picker = &prompt.Picker{
				Label:  svc.Title,
				Stdin:  os.Stdin,
				Stdout: prompt.NopCloser(cmd.OutOrStdout()),
			}
		}
		return oo.HandleError(t.Do(contextOf(cmd)))
	}

	options.AddSelectionArgs(cmd, so)
	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	options.AddLogArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	so := &options.SelectionOptions{}
	oo := &options.OutputOptions{}
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "forget the selection for a title",
		Example: `
multiselect clear
multiselect clear --title Genre
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so, lo)
			if err != nil {
				return oo.HandleError(err)
			}
			c := toggle.Clear{Service: svc, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(c.Do(contextOf(cmd)))
		},
	}

	cmd.Flags().StringVarP(&so.Title, "title", "t", "",
		"Title of the multi-select; the selection is cached per title.")
	options.AddOutputArg(cmd, oo)
	options.AddLogArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
