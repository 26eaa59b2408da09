package options

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/multiselect/pkg/selection"
)

// LogOptions
type LogOptions struct {
	Verbose bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log swallowed failures, like unreadable cached selections, to stderr.")
}

// Logger returns a stderr logger when verbose, otherwise nil.
func (o *LogOptions) Logger() selection.Logger {
	if !o.Verbose {
		return nil
	}
	return log.New(os.Stderr, "multiselect: ", 0)
}
