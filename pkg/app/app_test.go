package app

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/multiselect/pkg/catalog"
	"tableflip.dev/multiselect/pkg/option"
	"tableflip.dev/multiselect/pkg/selection"
	"tableflip.dev/multiselect/pkg/store"
)

type failingSource struct{}

func (failingSource) Load(context.Context) (option.Catalog, error) {
	return nil, errors.New("boom")
}

func (failingSource) String() string { return "failing" }

func newService(s store.Store) *Service {
	return &Service{
		Store: s,
		Title: "Productgroep",
		Source: catalog.Static{Catalog: option.Catalog{
			{ID: "1", Label: "Fantasy"},
			{ID: "2", Label: "Thrillers"},
		}},
	}
}

func TestOpenRequiresStore(t *testing.T) {
	svc := &Service{Title: "x"}
	if _, err := svc.Open(context.Background()); !errors.Is(err, ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", err)
	}
}

func TestOpenReconcilesPersisted(t *testing.T) {
	s := store.NewMemory(map[string]string{selection.CacheKey("Productgroep"): `["2"]`})
	sess, err := newService(s).Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sess.Close()

	snap := sess.Snapshot()
	if snap.State != "ready" {
		t.Fatalf("expected ready, got %s", snap.State)
	}
	if len(snap.Views.Selected) != 1 || snap.Views.Selected[0].ID != "2" {
		t.Fatalf("unexpected selected view %+v", snap.Views.Selected)
	}
	if len(snap.Persisted) != 1 || snap.Persisted[0] != "2" {
		t.Fatalf("unexpected persisted %v", snap.Persisted)
	}
}

func TestOpenWithFailingSource(t *testing.T) {
	svc := newService(&store.Memory{})
	svc.Source = failingSource{}
	sess, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("open should not fail on catalog errors: %v", err)
	}
	defer sess.Close()

	snap := sess.Snapshot()
	if snap.State != "errored" || snap.Message != "Failed to get options." {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.Persisted == nil {
		t.Fatal("persisted should encode as an empty list")
	}
}

func TestSetSelectedReportsUnknown(t *testing.T) {
	sess, err := newService(&store.Memory{}).Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sess.Close()

	err = sess.SetSelected(true, "1", "nope")
	if !errors.Is(err, selection.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if got := sess.Manager.Persisted(); len(got) != 1 || got[0] != "1" {
		t.Fatalf("known id should still apply, got %v", got)
	}
}

func TestResolve(t *testing.T) {
	svc := newService(&store.Memory{})
	svc.Source = catalog.Static{Catalog: option.Catalog{
		{ID: "1", Label: "Fantasy"},
		{ID: option.DeriveID("Koken &amp; Tafelen"), Label: "Koken &amp; Tafelen"},
	}}
	sess, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sess.Close()

	tests := []struct {
		input string
		want  string
	}{
		{input: "1", want: "1"},
		{input: "Fantasy", want: "1"},
		{input: "Koken & Tafelen", want: option.DeriveID("Koken &amp; Tafelen")},
		{input: "Koken &amp; Tafelen", want: option.DeriveID("Koken &amp; Tafelen")},
	}
	for _, tt := range tests {
		got, err := sess.Resolve(tt.input)
		if err != nil {
			t.Fatalf("resolve %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("resolve %q: expected %q, got %q", tt.input, tt.want, got)
		}
	}

	if _, err := sess.Resolve("Horror"); !errors.Is(err, selection.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestResolveDuplicateLabelTakesFirstInCatalog(t *testing.T) {
	svc := newService(&store.Memory{})
	svc.Source = catalog.Static{Catalog: option.Catalog{
		{ID: "1", Label: "Same"},
		{ID: "2", Label: "Same"},
		{ID: "3", Label: "Other"},
		{ID: "4", Label: "More"},
	}}
	sess, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sess.Close()

	for i := 0; i < 50; i++ {
		got, err := sess.Resolve("Same")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if got != "1" {
			t.Fatalf("attempt %d: expected %q, got %q", i, "1", got)
		}
	}
}

func TestSnapshotForKeepsFilter(t *testing.T) {
	sess, err := newService(&store.Memory{}).Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sess.Close()
	sess.Manager.SetFilter("thr")

	snap := sess.SnapshotFor("fan")
	if snap.Filter != "fan" || len(snap.Views.Unselected) != 1 || snap.Views.Unselected[0].ID != "1" {
		t.Fatalf("unexpected filtered snapshot: %+v", snap)
	}
	if got := sess.Manager.Filter(); got != "thr" {
		t.Fatalf("filter changed to %q", got)
	}
	if got := sess.Snapshot(); got.Filter != "thr" || len(got.Views.Unselected) != 1 || got.Views.Unselected[0].ID != "2" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

type plainStore struct{ store.Store }

func TestSaved(t *testing.T) {
	s := store.NewMemory(map[string]string{
		selection.CacheKey("Genre"):        `["1","2"]`,
		selection.CacheKey("Productgroep"): `["9"]`,
		selection.CacheKey("Broken"):       `{`,
		"unrelated":                        `["x"]`,
	})
	got, err := newService(s).Saved(context.Background())
	if err != nil {
		t.Fatalf("saved: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 saved selections, got %+v", got)
	}
	if got[0].Title != "Genre" || len(got[0].Selected) != 2 {
		t.Fatalf("unexpected first entry %+v", got[0])
	}
	if got[1].Title != "Productgroep" || got[1].Selected[0] != "9" {
		t.Fatalf("unexpected second entry %+v", got[1])
	}

	if _, err := newService(plainStore{s}).Saved(context.Background()); !errors.Is(err, ErrNotListable) {
		t.Fatalf("expected ErrNotListable, got %v", err)
	}
}
