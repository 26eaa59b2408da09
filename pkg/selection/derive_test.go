package selection

import (
	"reflect"
	"testing"

	"tableflip.dev/multiselect/pkg/option"
)

func index(opts ...SelectableOption) ([]string, Index) {
	order := make([]string, 0, len(opts))
	idx := make(Index, len(opts))
	for _, o := range opts {
		order = append(order, o.ID)
		idx[o.ID] = o
	}
	return order, idx
}

func sel(id, label string, selected bool) SelectableOption {
	return SelectableOption{Option: option.Option{ID: id, Label: label, Value: label}, Selected: selected}
}

func TestDeriveOrdering(t *testing.T) {
	order, idx := index(
		sel("1", "thrillers", true),
		sel("2", "Zombies", false),
		sel("3", "Fantasy", true),
		sel("4", "Action", false),
		sel("5", "Éducation", true),
		sel("6", "Biography", false),
	)
	v := Derive(order, idx, "")

	if got := labels(v.Selected); !reflect.DeepEqual(got, []string{"Éducation", "Fantasy", "thrillers"}) {
		t.Fatalf("selected view should be sorted by label, got %v", got)
	}
	if got := labels(v.Unselected); !reflect.DeepEqual(got, []string{"Zombies", "Action", "Biography"}) {
		t.Fatalf("unselected view should keep catalog order, got %v", got)
	}
}

func TestDeriveTiesKeepCatalogOrder(t *testing.T) {
	order, idx := index(
		sel("b", "Fantasy", true),
		sel("a", "Fantasy", true),
	)
	v := Derive(order, idx, "")
	if v.Selected[0].ID != "b" || v.Selected[1].ID != "a" {
		t.Fatalf("equal labels should keep catalog order, got %s, %s", v.Selected[0].ID, v.Selected[1].ID)
	}
}

func TestDeriveFilterIsCaseInsensitiveSubstring(t *testing.T) {
	order, idx := index(
		sel("1", "Thrillers", false),
		sel("2", "Fantasy", false),
		sel("3", "Action", false),
		sel("4", "Science fiction (a+b)", false),
	)
	cases := []struct {
		filter string
		want   []string
	}{
		{filter: "", want: []string{"Thrillers", "Fantasy", "Action", "Science fiction (a+b)"}},
		{filter: "fa", want: []string{"Fantasy"}},
		{filter: "FA", want: []string{"Fantasy"}},
		{filter: "i", want: []string{"Thrillers", "Action", "Science fiction (a+b)"}},
		{filter: "(a+", want: []string{"Science fiction (a+b)"}},
		{filter: "fantasyy", want: []string{}},
	}
	for _, tc := range cases {
		if got := labels(Derive(order, idx, tc.filter).Unselected); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("filter %q: got %v, want %v", tc.filter, got, tc.want)
		}
	}
}

func TestDeriveSkipsUnknownOrderEntries(t *testing.T) {
	_, idx := index(sel("1", "Thrillers", false))
	v := Derive([]string{"missing", "1"}, idx, "")
	if len(v.Unselected) != 1 || v.Unselected[0].ID != "1" {
		t.Fatalf("unexpected views %+v", v)
	}
}

func TestDisplayStatePrecedence(t *testing.T) {
	full := Views{Unselected: []SelectableOption{sel("1", "Thrillers", false)}}
	cases := []struct {
		status Status
		views  Views
		want   State
	}{
		{status: Status{Errored: true, Loading: true}, views: full, want: StateErrored},
		{status: Status{Loading: true}, views: full, want: StateLoading},
		{status: Status{}, views: Views{}, want: StateEmpty},
		{status: Status{}, views: full, want: StateReady},
	}
	for _, tc := range cases {
		if got := DisplayState(tc.status, tc.views); got != tc.want {
			t.Errorf("DisplayState(%+v) = %s, want %s", tc.status, got, tc.want)
		}
	}
	if StateErrored.Message() != "Failed to get options." || StateLoading.Message() != "Loading..." {
		t.Fatalf("unexpected state messages")
	}
	if StateReady.Message() != "" {
		t.Fatalf("ready state has no message")
	}
}
