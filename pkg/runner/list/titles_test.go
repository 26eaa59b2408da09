package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/multiselect/pkg/app"
	"tableflip.dev/multiselect/pkg/selection"
	"tableflip.dev/multiselect/pkg/store"
)

func TestTitlesPretty(t *testing.T) {
	var buf bytes.Buffer
	tt := Titles{Service: newService(), Out: &buf}
	if err := tt.Do(context.Background()); err != nil {
		t.Fatalf("titles: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "Productgroep - 1 option") || !strings.Contains(got, "  2") {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestTitlesEmpty(t *testing.T) {
	var buf bytes.Buffer
	tt := Titles{Service: &app.Service{Store: &store.Memory{}}, Out: &buf}
	if err := tt.Do(context.Background()); err != nil {
		t.Fatalf("titles: %v", err)
	}
	if !strings.Contains(buf.String(), "no saved selections") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestTitlesJSON(t *testing.T) {
	var buf bytes.Buffer
	svc := &app.Service{Store: store.NewMemory(map[string]string{
		selection.CacheKey("B"): `["2"]`,
		selection.CacheKey("A"): `["1","3"]`,
	})}
	tt := Titles{Service: svc, JSON: true, Out: &buf}
	if err := tt.Do(context.Background()); err != nil {
		t.Fatalf("titles: %v", err)
	}
	var got []app.Saved
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || got[0].Title != "A" || got[1].Title != "B" {
		t.Fatalf("unexpected titles %+v", got)
	}
}
