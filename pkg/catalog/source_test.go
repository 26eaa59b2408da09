package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/multiselect/pkg/option"
)

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want option.Catalog
	}{{
		name: "objects",
		doc:  "- id: 1\n  label: Fantasy\n- id: 2\n  label: Thrillers\n  value: thr\n",
		want: option.Catalog{
			{ID: "1", Label: "Fantasy", Value: "Fantasy"},
			{ID: "2", Label: "Thrillers", Value: "thr"},
		},
	}, {
		name: "labels",
		doc:  `["Fantasy", "Thrillers"]`,
		want: option.FromLabels("Fantasy", "Thrillers"),
	}, {
		name: "product groups",
		doc:  `{"productGroups": ["Fantasy", "Thrillers"]}`,
		want: option.FromLabels("Fantasy", "Thrillers"),
	}, {
		name: "options key",
		doc:  "options:\n  - id: a\n    label: Alpha\n",
		want: option.Catalog{{ID: "a", Label: "Alpha", Value: "Alpha"}},
	}, {
		name: "empty",
		doc:  "",
		want: option.Catalog{},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d options, got %d: %+v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("option %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestParseKeepsNumericLabels(t *testing.T) {
	got, err := Parse([]byte("- 1.0\n- 1e3\n- 2024\n- true\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := option.FromLabels("1.0", "1e3", "2024", "true")
	if len(got) != len(want) {
		t.Fatalf("expected %d options, got %d: %+v", len(want), len(got), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("option %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	got, err = Parse([]byte("- id: 7\n  label: 1.50\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 1 || got[0].ID != "7" || got[0].Label != "1.50" {
		t.Fatalf("unexpected catalog %+v", got)
	}
}

func TestParseRejectsScalars(t *testing.T) {
	if _, err := Parse([]byte("42")); err == nil {
		t.Fatal("expected error for scalar document")
	}
	if _, err := Parse([]byte(`{"other": []}`)); err == nil {
		t.Fatal("expected error for object without a known key")
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("- Fantasy\n- Thrillers\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c) != 2 || c[0].Label != "Fantasy" {
		t.Fatalf("unexpected catalog %+v", c)
	}

	if _, err := (FileSource{Path: filepath.Join(t.TempDir(), "missing")}).Load(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(NewHandler(Static{Catalog: option.FromLabels("Fantasy", "Thrillers")}).Router())
	defer srv.Close()

	c, err := (&HTTPSource{URL: srv.URL + "/api/productGroups"}).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := c.IDs(); len(got) != 2 || got[0] != option.DeriveID("Fantasy") {
		t.Fatalf("unexpected ids %v", got)
	}
}

func TestHTTPSourceBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := (&HTTPSource{URL: srv.URL}).Load(context.Background())
	if !errors.Is(err, ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
}

func TestFromString(t *testing.T) {
	if _, ok := FromString("").(Static); !ok {
		t.Fatal("empty source should be built-in")
	}
	if _, ok := FromString("https://example.com/api").(*HTTPSource); !ok {
		t.Fatal("url source should be http")
	}
	if _, ok := FromString("catalog.yaml").(FileSource); !ok {
		t.Fatal("path source should be a file")
	}
}

type failingSource struct{}

func (failingSource) Load(context.Context) (option.Catalog, error) {
	return nil, errors.New("boom")
}

func (failingSource) String() string { return "failing" }

func TestLoaderStatus(t *testing.T) {
	l := NewLoader(Static{Catalog: option.FromLabels("Fantasy")})
	c, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c) != 1 {
		t.Fatalf("expected 1 option, got %d", len(c))
	}
	if s := l.Status(); s.Loading || s.Errored {
		t.Fatalf("unexpected status %+v", s)
	}

	l = NewLoader(failingSource{})
	c, err = l.Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if c == nil || len(c) != 0 {
		t.Fatalf("expected empty catalog, got %v", c)
	}
	if s := l.Status(); !s.Errored || s.Loading {
		t.Fatalf("unexpected status %+v", s)
	}
	if l.Err() == nil {
		t.Fatal("expected Err to be set")
	}
}
