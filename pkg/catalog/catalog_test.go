package catalog

import "testing"

func TestCatalogHoldsNineCategories(t *testing.T) {
	all := All()
	if len(all) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(all))
	}

	wantTags := []string{"phone", "bottle", "tv", "ac", "mic", "fan", "light", "speaker", "other"}
	for _, tag := range wantTags {
		if _, ok := Lookup(tag); !ok {
			t.Errorf("Lookup(%q) not found", tag)
		}
	}
}

func TestLookupNormalizesTag(t *testing.T) {
	c, ok := Lookup("  TV ")
	if !ok {
		t.Fatal("expected lookup to trim and lowercase the tag")
	}
	if c.Tag != "tv" {
		t.Fatalf("expected tv, got %q", c.Tag)
	}

	if _, ok := Lookup("toaster"); ok {
		t.Fatal("expected lookup miss for unknown tag")
	}
}

func TestRandomReturnsCatalogMember(t *testing.T) {
	for i := 0; i < 20; i++ {
		c := Random()
		if _, ok := Lookup(c.Tag); !ok {
			t.Fatalf("Random returned unknown category %q", c.Tag)
		}
	}
}
