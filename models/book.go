package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Book is the document stored in every category collection. The schema is
// identical across categories; only the collection differs.
type Book struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name" validate:"required"`
	Author      string        `json:"author" bson:"author" validate:"required"`
	ISBN        string        `json:"isbn" bson:"isbn" validate:"required"`
	ImageLink   string        `json:"image_link" bson:"image_link" validate:"required,url"`
	AmazonLink  string        `json:"amazon_link" bson:"amazon_link" validate:"required,url"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Genre       string        `json:"genre,omitempty" bson:"genre,omitempty"`
	Pages       int           `json:"pages,omitempty" bson:"pages,omitempty"`
	PublishDate string        `json:"publishDate,omitempty" bson:"publishDate,omitempty"`
	Publisher   string        `json:"publisher,omitempty" bson:"publisher,omitempty"`
	Language    string        `json:"language,omitempty" bson:"language,omitempty"`
	Price       float64       `json:"price" bson:"price"`
	Discount    float64       `json:"discount" bson:"discount"`
	Tags        []string      `json:"tags,omitempty" bson:"tags,omitempty"`
	Rating      float64       `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	ReviewCount int           `json:"reviewCount" bson:"reviewCount"`
	Available   bool          `json:"availability" bson:"availability"`
	Copies      int           `json:"copies" bson:"copies"`
	Downloads   int64         `json:"downloads" bson:"downloads"`
	Views       int64         `json:"views" bson:"views"`
	Featured    bool          `json:"featured" bson:"featured"`
	CreatedAt   time.Time     `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// BookPatch is the partial-update body. Pointer fields distinguish "not sent"
// from "set to zero". Anything outside this struct is not patchable.
type BookPatch struct {
	Name        *string   `json:"name"`
	Author      *string   `json:"author"`
	Description *string   `json:"description"`
	Genre       *string   `json:"genre"`
	Pages       *int      `json:"pages" validate:"omitempty,min=0"`
	PublishDate *string   `json:"publishDate"`
	Publisher   *string   `json:"publisher"`
	Language    *string   `json:"language"`
	Price       *float64  `json:"price" validate:"omitempty,min=0"`
	Discount    *float64  `json:"discount" validate:"omitempty,min=0"`
	Tags        *[]string `json:"tags"`
	Rating      *float64  `json:"rating"`
	Copies      *int      `json:"copies" validate:"omitempty,min=0"`
	Featured    *bool     `json:"featured"`
	ImageLink   *string   `json:"image_link"`
	AmazonLink  *string   `json:"amazon_link"`
}

// Fields returns the bson $set document for the patch. Rating is clamped to
// [0,5]; availability is recomputed whenever copies changes.
func (p *BookPatch) Fields() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Author != nil {
		set["author"] = *p.Author
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Genre != nil {
		set["genre"] = *p.Genre
	}
	if p.Pages != nil {
		set["pages"] = *p.Pages
	}
	if p.PublishDate != nil {
		set["publishDate"] = *p.PublishDate
	}
	if p.Publisher != nil {
		set["publisher"] = *p.Publisher
	}
	if p.Language != nil {
		set["language"] = *p.Language
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Discount != nil {
		set["discount"] = *p.Discount
	}
	if p.Tags != nil {
		set["tags"] = *p.Tags
	}
	if p.Rating != nil {
		set["rating"] = ClampRating(*p.Rating)
	}
	if p.Copies != nil {
		set["copies"] = *p.Copies
		set["availability"] = *p.Copies > 0
	}
	if p.Featured != nil {
		set["featured"] = *p.Featured
	}
	if p.ImageLink != nil {
		set["image_link"] = *p.ImageLink
	}
	if p.AmazonLink != nil {
		set["amazon_link"] = *p.AmazonLink
	}
	return set
}

// ClampRating keeps a rating inside [0,5].
func ClampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

// Categories are the book category collections. Every category stores the same
// Book schema in its own collection named "<category>_books".
var Categories = []string{
	"fiction",
	"nonfiction",
	"mystery",
	"romance",
	"scifi",
	"fantasy",
	"biography",
	"history",
	"selfhelp",
	"children",
}

// DefaultCollection backs the plain /api/books routes.
const DefaultCollection = "books"

// CategoryCollection maps a category slug to its collection name. The second
// return is false for unregistered categories.
func CategoryCollection(category string) (string, bool) {
	for _, c := range Categories {
		if c == category {
			return c + "_books", true
		}
	}
	return "", false
}

// CollectionSlug returns the category slug a book collection serves; the
// default collection's slug is its own name.
func CollectionSlug(name string) string {
	return strings.TrimSuffix(name, "_books")
}

// AllBookCollections lists every collection holding books, default first.
func AllBookCollections() []string {
	all := make([]string, 0, len(Categories)+1)
	all = append(all, DefaultCollection)
	for _, c := range Categories {
		all = append(all, c+"_books")
	}
	return all
}
