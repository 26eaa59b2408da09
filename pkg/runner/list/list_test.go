package list

import (
	"bytes"
	"context"
	"encoding/json"
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

func newService() *app.Service {
	return &app.Service{
		Store: store.NewMemory(map[string]string{selection.CacheKey("Productgroep"): `["2"]`}),
		Title: "Productgroep",
		Source: catalog.Static{Catalog: option.Catalog{
			{ID: "1", Label: "Fantasy"},
			{ID: "2", Label: "Thrillers"},
			{ID: "3", Label: "Boeken"},
		}},
	}
}

func TestListPretty(t *testing.T) {
	var buf bytes.Buffer
	l := List{Service: newService(), Filter: "fa", Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "[x] Thrillers") || !strings.Contains(got, "[ ] Fantasy") {
		t.Fatalf("unexpected output:\n%s", got)
	}
	if strings.Contains(got, "Boeken") {
		t.Fatalf("filter should hide Boeken:\n%s", got)
	}
}

func TestListJSON(t *testing.T) {
	var buf bytes.Buffer
	l := List{Service: newService(), JSON: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var snap app.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if snap.State != "ready" || len(snap.Views.Selected) != 1 || len(snap.Views.Unselected) != 2 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestListTable(t *testing.T) {
	var buf bytes.Buffer
	l := List{Service: newService(), Table: true, ShowID: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and three rows, got:\n%s", buf.String())
	}
	if !strings.Contains(lines[1], "Thrillers") {
		t.Fatalf("expected selected row first, got %q", lines[1])
	}
}
