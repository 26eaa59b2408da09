package commands

import (
	"fmt"
	"net"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/multiselect/pkg/catalog"
	"tableflip.dev/multiselect/pkg/commands/options"
	"tableflip.dev/multiselect/pkg/runner/serve"
	"tableflip.dev/multiselect/pkg/store"
)

func addServe(topLevel *cobra.Command) {
	so := &options.SelectionOptions{}
	addr := "127.0.0.1:8080"

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the option catalog over HTTP",
		Long: base.Wrap80(`Serve the catalog as JSON. GET /api/productGroups answers
{"productGroups": [...labels]} and GET /api/options answers the full options;
other methods answer 405.`),
		Example: `
multiselect serve
multiselect serve --addr :9000 --catalog genres.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := store.LoadConfig()
			if err != nil {
				return err
			}
			s := serve.Serve{
				Source: catalog.FromString(firstNonEmpty(so.Catalog, settings.Catalog)),
				Addr:   addr,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "catalog API listening on http://%s/api/productGroups\n", a)
				},
			}
			return s.Do(contextOf(cmd))
		},
	}

	options.AddCatalogArgs(cmd, so)
	cmd.Flags().StringVar(&addr, "addr", addr, "address to listen on")

	topLevel.AddCommand(cmd)
}
