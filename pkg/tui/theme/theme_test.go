package theme

import "testing"

func TestBlend(t *testing.T) {
	if got := Blend("#000000", "#ffffff", 0); got != "#000000" {
		t.Fatalf("expected #000000, got %s", got)
	}
	mid := Blend("#000000", "#ffffff", 0.5)
	if mid == "#000000" || mid == "#ffffff" {
		t.Fatalf("expected an intermediate color, got %s", mid)
	}
	if len(mid) != 7 || mid[0] != '#' {
		t.Fatalf("expected a hex color, got %q", mid)
	}
}

func TestBlendInvalidInput(t *testing.T) {
	if got := Blend("nope", "#ffffff", 0.5); got != "nope" {
		t.Fatalf("expected input returned unchanged, got %s", got)
	}
}

func TestNewThemesDiffer(t *testing.T) {
	dark := New(true)
	light := New(false)
	if dark.Title.GetForeground() == light.Title.GetForeground() {
		t.Fatal("expected dark and light accents to differ")
	}
}
