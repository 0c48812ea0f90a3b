package controller

import (
	"net/url"
	"testing"

	"bookstore/models"
)

func TestBuildBookFilter(t *testing.T) {
	q := url.Values{}
	q.Set("genre", "Science Fiction")
	q.Set("featured", "true")
	q.Set("minPrice", "5")
	q.Set("maxPrice", "20")
	q.Set("language", "en")

	filter := BuildBookFilter(q)

	if _, ok := filter["genre"]; !ok {
		t.Error("genre filter missing")
	}
	if filter["featured"] != true {
		t.Errorf("featured = %v", filter["featured"])
	}
	if filter["language"] != "en" {
		t.Errorf("language = %v", filter["language"])
	}
	if _, ok := filter["price"]; !ok {
		t.Error("price range filter missing")
	}
}

func TestBuildBookFilterEmpty(t *testing.T) {
	if filter := BuildBookFilter(url.Values{}); len(filter) != 0 {
		t.Errorf("no params should build an empty filter, got %v", filter)
	}
}

func TestBuildBookFilterIgnoresBadNumbers(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "cheap")
	q.Set("maxPrice", "expensive")

	filter := BuildBookFilter(q)
	if _, ok := filter["price"]; ok {
		t.Error("unparseable price bounds must be ignored")
	}
}

// Counters are server-owned: whatever views/downloads a create or bulk-import
// payload carries must be discarded.
func TestPrepareNewBookZeroesCounters(t *testing.T) {
	book := models.Book{
		Name:      "A Title",
		Rating:    8,
		Copies:    3,
		Views:     9000,
		Downloads: 500,
	}
	PrepareNewBook(&book)

	if book.Views != 0 || book.Downloads != 0 {
		t.Errorf("counters not zeroed: views=%d downloads=%d", book.Views, book.Downloads)
	}
	if book.Rating != 5 {
		t.Errorf("rating = %v, want clamped to 5", book.Rating)
	}
	if !book.Available {
		t.Error("3 copies should derive availability true")
	}
	if book.ID.IsZero() {
		t.Error("id not assigned")
	}
	if book.CreatedAt.IsZero() || book.UpdatedAt.IsZero() {
		t.Error("timestamps not stamped")
	}

	empty := models.Book{}
	PrepareNewBook(&empty)
	if empty.Available {
		t.Error("zero copies should derive availability false")
	}
}

func TestSortOption(t *testing.T) {
	for _, key := range []string{"price", "rating", "views", "", "bogus"} {
		doc := SortOption(key)
		if len(doc) != 1 {
			t.Errorf("SortOption(%q) returned %d keys", key, len(doc))
		}
	}
	if SortOption("price")[0].Key != "price" {
		t.Error("price sort should order by price")
	}
	if SortOption("nonsense")[0].Key != "created_at" {
		t.Error("unknown sort key should fall back to created_at")
	}
}
