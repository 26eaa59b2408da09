package selection

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/multiselect/pkg/option"
)

// SelectableOption is an option plus its selection status.
type SelectableOption struct {
	option.Option
	Selected bool `json:"selected"`
}

// Index maps option id to its selectable state.
type Index map[string]SelectableOption

// Clone returns a copy of the index.
func (idx Index) Clone() Index {
	out := make(Index, len(idx))
	for k, v := range idx {
		out[k] = v
	}
	return out
}

// Views are the two lists shown to the user.
type Views struct {
	// Selected holds every selected option sorted by label. Filter text does
	// not apply.
	Selected []SelectableOption `json:"selected"`
	// Unselected holds unselected options matching the filter, in catalog order.
	Unselected []SelectableOption `json:"unselected"`
}

// Empty reports whether both views are empty.
func (v Views) Empty() bool {
	return len(v.Selected) == 0 && len(v.Unselected) == 0
}

// Derive computes the views for an index. order lists the index keys in
// catalog order; filter is matched as a case-insensitive substring of the label.
func Derive(order []string, index Index, filter string) Views {
	needle := strings.ToLower(filter)
	views := Views{
		Selected:   make([]SelectableOption, 0),
		Unselected: make([]SelectableOption, 0),
	}
	for _, id := range order {
		o, ok := index[id]
		if !ok {
			continue
		}
		if o.Selected {
			views.Selected = append(views.Selected, o)
			continue
		}
		if Matches(o.Label, needle) {
			views.Unselected = append(views.Unselected, o)
		}
	}
	sortByLabel(views.Selected)
	return views
}

// Matches reports whether label contains filter, ignoring case. An empty
// filter matches everything.
func Matches(label, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(filter))
}

// sortByLabel orders options by locale-aware label comparison. The sort is
// stable, so equal labels keep catalog order.
func sortByLabel(opts []SelectableOption) {
	col := collate.New(language.Und)
	sort.SliceStable(opts, func(i, j int) bool {
		return col.CompareString(opts[i].Label, opts[j].Label) < 0
	})
}
