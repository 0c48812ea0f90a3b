package models

import "testing"

func TestClampRating(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-1, 0},
		{0, 0},
		{3.5, 3.5},
		{5, 5},
		{9.9, 5},
	}
	for _, tc := range cases {
		if got := ClampRating(tc.in); got != tc.want {
			t.Errorf("ClampRating(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCategoryCollection(t *testing.T) {
	name, ok := CategoryCollection("fiction")
	if !ok || name != "fiction_books" {
		t.Errorf("CategoryCollection(fiction) = (%q, %v)", name, ok)
	}
	if _, ok := CategoryCollection("cookbooks"); ok {
		t.Error("unregistered category resolved")
	}
	if _, ok := CategoryCollection(""); ok {
		t.Error("empty category resolved")
	}
}

func TestCollectionSlug(t *testing.T) {
	// Stats and other consumers speak category slugs, not collection names.
	cases := []struct{ collection, want string }{
		{"fiction_books", "fiction"},
		{"children_books", "children"},
		{DefaultCollection, DefaultCollection},
	}
	for _, tc := range cases {
		if got := CollectionSlug(tc.collection); got != tc.want {
			t.Errorf("CollectionSlug(%q) = %q, want %q", tc.collection, got, tc.want)
		}
	}
	for _, category := range Categories {
		name, _ := CategoryCollection(category)
		if CollectionSlug(name) != category {
			t.Errorf("slug round-trip failed for %q", category)
		}
	}
}

func TestAllBookCollections(t *testing.T) {
	all := AllBookCollections()
	if len(all) != len(Categories)+1 {
		t.Fatalf("expected %d collections, got %d", len(Categories)+1, len(all))
	}
	if all[0] != DefaultCollection {
		t.Errorf("default collection should come first, got %q", all[0])
	}
}

func TestBookPatchFields(t *testing.T) {
	name := "New Name"
	rating := 7.5
	copies := 0

	patch := BookPatch{Name: &name, Rating: &rating, Copies: &copies}
	set := patch.Fields()

	if set["name"] != "New Name" {
		t.Errorf("name = %v", set["name"])
	}
	if set["rating"] != 5.0 {
		t.Errorf("rating should be clamped to 5, got %v", set["rating"])
	}
	if set["copies"] != 0 {
		t.Errorf("copies = %v", set["copies"])
	}
	if set["availability"] != false {
		t.Error("setting copies to 0 must recompute availability to false")
	}
	if _, exists := set["views"]; exists {
		t.Error("views must never be patchable")
	}
	if len(set) != 4 {
		t.Errorf("unexpected fields in set: %v", set)
	}
}

func TestBookPatchFieldsEmpty(t *testing.T) {
	var patch BookPatch
	if set := patch.Fields(); len(set) != 0 {
		t.Errorf("empty patch produced fields: %v", set)
	}
}
