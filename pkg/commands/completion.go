package commands

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/multiselect/pkg/commands/options"
	"tableflip.dev/multiselect/pkg/selection"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(multiselect completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(multiselect completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// optionCompletions offers labels that the command can act on: unselected
// options for select, selected ones for unselect.
func optionCompletions(ctx context.Context, so *options.SelectionOptions, lo *options.LogOptions, checked bool, toComplete string) []string {
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := newService(so, lo)
	if err != nil {
		return nil
	}
	sess, err := svc.Open(ctx)
	if err != nil {
		return nil
	}
	defer sess.Close()

	return completionCandidates(sess.Manager.ViewsFor(toComplete), checked, toComplete)
}

// completionCandidates quotes the labels of v matching toComplete. The
// selected view ignores filters, so it is matched here.
func completionCandidates(v selection.Views, checked bool, toComplete string) []string {
	candidates := v.Unselected
	if !checked {
		candidates = v.Selected
	}
	out := make([]string, 0, len(candidates))
	for _, o := range candidates {
		if !selection.Matches(o.Label, toComplete) {
			continue
		}
		out = append(out, strconv.Quote(o.Label))
	}
	return out
}
