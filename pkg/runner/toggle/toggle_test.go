package toggle

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/multiselect/pkg/app"
	"tableflip.dev/multiselect/pkg/catalog"
	"tableflip.dev/multiselect/pkg/option"
	"tableflip.dev/multiselect/pkg/selection"
	"tableflip.dev/multiselect/pkg/store"
)

func init() {
	color.NoColor = true
}

func newService(s store.Store) *app.Service {
	return &app.Service{
		Store: s,
		Title: "Productgroep",
		Source: catalog.Static{Catalog: option.Catalog{
			{ID: "1", Label: "Fantasy"},
			{ID: "2", Label: "Thrillers"},
		}},
	}
}

func TestSelectByIDAndLabel(t *testing.T) {
	s := &store.Memory{}
	var buf bytes.Buffer
	tg := Toggle{Service: newService(s), Inputs: []string{"Thrillers", "1"}, Checked: true, JSON: true, Out: &buf}
	if err := tg.Do(context.Background()); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	raw, _, _ := s.Get(selection.CacheKey("Productgroep"))
	if raw != `["1","2"]` {
		t.Fatalf("expected [\"1\",\"2\"], got %q", raw)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"selected":["1","2"]}` {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestUnselectLastRemovesKey(t *testing.T) {
	s := store.NewMemory(map[string]string{selection.CacheKey("Productgroep"): `["1"]`})
	tg := Toggle{Service: newService(s), Inputs: []string{"1"}, Out: &bytes.Buffer{}}
	if err := tg.Do(context.Background()); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, ok, _ := s.Get(selection.CacheKey("Productgroep")); ok {
		t.Fatal("expected key removed")
	}
}

func TestUnknownInput(t *testing.T) {
	s := &store.Memory{}
	tg := Toggle{Service: newService(s), Inputs: []string{"Horror", "2"}, Checked: true, Out: &bytes.Buffer{}}
	err := tg.Do(context.Background())
	if !errors.Is(err, selection.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	raw, _, _ := s.Get(selection.CacheKey("Productgroep"))
	if raw != `["2"]` {
		t.Fatalf("known input should still apply, got %q", raw)
	}
}

func TestNoInputs(t *testing.T) {
	tg := Toggle{Service: newService(&store.Memory{})}
	if err := tg.Do(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestClear(t *testing.T) {
	s := store.NewMemory(map[string]string{selection.CacheKey("Productgroep"): `["1","2"]`})
	var buf bytes.Buffer
	c := Clear{Service: newService(s), Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := s.Get(selection.CacheKey("Productgroep")); ok {
		t.Fatal("expected key removed")
	}
	if !strings.Contains(buf.String(), "no options selected") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
