package option

import "testing"

func TestFromLabelsDerivesStableIDs(t *testing.T) {
	c := FromLabels("Thrillers", "Fantasy", "  ", "Thrillers")
	if len(c) != 3 {
		t.Fatalf("expected 3 options, got %d", len(c))
	}
	if c[0].ID != c[2].ID {
		t.Fatalf("identical labels should share an id: %q vs %q", c[0].ID, c[2].ID)
	}
	if c[0].ID == c[1].ID {
		t.Fatalf("different labels should not share an id")
	}
	if c[1].Value != "Fantasy" {
		t.Fatalf("expected value to mirror label, got %q", c[1].Value)
	}
	if got := DeriveID("Thrillers"); got != c[0].ID {
		t.Fatalf("DeriveID not stable: %q vs %q", got, c[0].ID)
	}
}

func TestNormalizeFillsMissingFields(t *testing.T) {
	c := Normalize(Catalog{
		{ID: "1", Label: "Thrillers"},
		{Label: "Fantasy", Value: "fantasy"},
		{},
	})
	if len(c) != 2 {
		t.Fatalf("expected 2 options, got %d", len(c))
	}
	if c[0].Value != "Thrillers" {
		t.Fatalf("expected value defaulted to label, got %q", c[0].Value)
	}
	if c[1].ID != DeriveID("Fantasy") {
		t.Fatalf("expected derived id, got %q", c[1].ID)
	}
	if c[1].Value != "fantasy" {
		t.Fatalf("value should be kept, got %q", c[1].Value)
	}
}

func TestCatalogFind(t *testing.T) {
	c := Catalog{{ID: "1", Label: "Thrillers"}, {ID: "2", Label: "Fantasy"}}
	if o, ok := c.Find("2"); !ok || o.Label != "Fantasy" {
		t.Fatalf("expected to find Fantasy, got %+v %v", o, ok)
	}
	if _, ok := c.Find("3"); ok {
		t.Fatalf("did not expect to find id 3")
	}
	ids := c.IDs()
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestDecodeLabel(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{in: "Thrillers", want: "Thrillers"},
		{in: "Boeken &amp; Tijdschriften", want: "Boeken & Tijdschriften"},
		{in: "Caf&eacute;", want: "Café"},
		{in: "<b>Bold</b> move", want: "Bold move"},
		{in: "Tom &amp; Jerry &lt;3", want: "Tom & Jerry <3"},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		if got := DecodeLabel(tc.in); got != tc.want {
			t.Errorf("DecodeLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
