package multiselect

import (
	"tableflip.dev/multiselect/pkg/option"
	"tableflip.dev/multiselect/pkg/selection"
)

// CatalogLoadedMsg delivers a freshly loaded catalog.
type CatalogLoadedMsg struct {
	Catalog option.Catalog
}

// CatalogErrorMsg reports a failed catalog load.
type CatalogErrorMsg struct {
	Err error
}

// ApplyMsg is emitted when the user applies the current selection.
type ApplyMsg struct {
	Title    string
	Selected []option.Option
}

// ChangeMsg relays a manager change into the update loop.
type ChangeMsg struct {
	Change selection.Change
}

type reloadMsg struct{}

// filterTickMsg fires after the filter quiet window. Ticks whose seq is not
// the latest are stale and dropped.
type filterTickMsg struct {
	seq   int
	value string
}
