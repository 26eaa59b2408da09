package options

import (
	"github.com/spf13/cobra"
)

// SelectionOptions name the widget instance and where its options come from.
// Empty values fall back to the config file.
type SelectionOptions struct {
	Title   string
	Catalog string
}

func AddSelectionArgs(cmd *cobra.Command, o *SelectionOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title of the multi-select; the selection is cached per title.")
	AddCatalogArgs(cmd, o)
}

func AddCatalogArgs(cmd *cobra.Command, o *SelectionOptions) {
	cmd.Flags().StringVarP(&o.Catalog, "catalog", "c", "",
		"Catalog file (YAML or JSON) or http(s) URL. Defaults to the built-in product groups.")
}

// FilterOptions
type FilterOptions struct {
	Filter string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		"Only list unselected options whose label contains this text.")
}

// InteractiveOptions
type InteractiveOptions struct {
	Interactive bool
}

func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Pick options with a prompt instead of passing them as arguments.`)
}
