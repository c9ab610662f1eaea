package planner

import (
	"reflect"
	"testing"
)

func TestLookupNormalizesKey(t *testing.T) {
	for _, input := range []string{"kochi", "Kochi", "  KOCHI  ", "new york", "New York"} {
		if _, ok := Lookup(input); !ok {
			t.Errorf("Lookup(%q) missed the curated catalog", input)
		}
	}
	if _, ok := Lookup("atlantis"); ok {
		t.Error("Lookup returned a catalog for an unknown destination")
	}
}

func TestLookupStable(t *testing.T) {
	first, _ := Lookup("tokyo")
	second, _ := Lookup("tokyo")
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated lookups returned different catalogs")
	}
}

func TestCuratedCatalogsComplete(t *testing.T) {
	for key, catalog := range curatedCatalogs {
		for _, category := range []string{CategoryFood, CategoryTourist, CategoryShopping} {
			if len(catalog.Venues[category]) == 0 {
				t.Errorf("%s: category %q has no venues", key, category)
			}
		}
		if catalog.Image == "" {
			t.Errorf("%s: missing image", key)
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	a := Synthesize("springfield")
	b := Synthesize("springfield")
	if !reflect.DeepEqual(a, b) {
		t.Error("Synthesize is not deterministic")
	}
}

func TestSynthesizeShape(t *testing.T) {
	catalog := Synthesize("port blair")
	if got := len(catalog.Venues[CategoryFood]); got != 6 {
		t.Errorf("food venues: got %d, want 6", got)
	}
	if got := len(catalog.Venues[CategoryTourist]); got != 6 {
		t.Errorf("tourist venues: got %d, want 6", got)
	}
	if got := len(catalog.Venues[CategoryShopping]); got != 5 {
		t.Errorf("shopping venues: got %d, want 5", got)
	}
	if catalog.Venues[CategoryFood][0] != "The Port Blair Bistro" {
		t.Errorf("unexpected first food venue %q", catalog.Venues[CategoryFood][0])
	}
	if catalog.Image != fallbackImage {
		t.Errorf("unexpected image %q", catalog.Image)
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"kochi", "Kochi"},
		{"new york", "New York"},
		{"  port  blair", "  Port  Blair"},
		{"st. john's", "St. John's"},
		{"o'fallon", "O'fallon"},
		{"", ""},
	}
	for _, c := range cases {
		if got := TitleCase(c.in); got != c.want {
			t.Errorf("TitleCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
