// ════════════════════════════════════════════════════════════
// CATALOG MODELS
// File: models/artwork.go
// ════════════════════════════════════════════════════════════

package models

import (
	"encoding/json"
	"time"
)

// ArtworkStatus is the availability of a single artwork as set by content editors
type ArtworkStatus string

const (
	StatusAvailable ArtworkStatus = "available"
	StatusSold      ArtworkStatus = "sold"
	StatusPrivate   ArtworkStatus = "private"
)

// Artwork is a catalog item as returned by the content repository.
// Artist and Material are empty when not set; Price is nil when undisclosed.
type Artwork struct {
	ID            string          `json:"id" yaml:"id"`
	Title         string          `json:"title" yaml:"title"`
	Artist        string          `json:"artist,omitempty" yaml:"artist"`
	Material      string          `json:"material,omitempty" yaml:"material"`
	Categories    []string        `json:"categories" yaml:"categories"`
	Status        ArtworkStatus   `json:"status" yaml:"status"`
	Price         *float64        `json:"price,omitempty" yaml:"price"`
	CreatedAt     time.Time       `json:"createdAt" yaml:"createdAt"`
	Dimensions    string          `json:"dimensions,omitempty" yaml:"dimensions"`
	Year          *int            `json:"year,omitempty" yaml:"year"`
	ShowPrice     bool            `json:"showPrice" yaml:"showPrice"`
	PriceLabel    string          `json:"priceLabel,omitempty" yaml:"-"`
	StartingPrice *float64        `json:"startingPrice,omitempty" yaml:"startingPrice"`
	Slug          string          `json:"slug" yaml:"slug"`
	ImageURL      string          `json:"imageUrl,omitempty" yaml:"imageUrl"`
	LQIP          string          `json:"lqip,omitempty" yaml:"lqip"`
	AspectRatio   float64         `json:"aspectRatio,omitempty" yaml:"aspectRatio"`
	Description   json.RawMessage `json:"description,omitempty" yaml:"-"`
	Provenance    json.RawMessage `json:"provenance,omitempty" yaml:"-"`
}

// PriceOrZero returns the price used for ordering; an undisclosed price counts as 0
func (a Artwork) PriceOrZero() float64 {
	if a.Price == nil {
		return 0
	}
	return *a.Price
}

// HasCategory reports whether the artwork is tagged with the given category title
func (a Artwork) HasCategory(title string) bool {
	for _, c := range a.Categories {
		if c == title {
			return true
		}
	}
	return false
}

// CategoryType groups category values in the storefront filter bar
type CategoryType string

const (
	CategoryStyle      CategoryType = "style"
	CategorySubject    CategoryType = "subject"
	CategoryMedium     CategoryType = "medium"
	CategoryCollection CategoryType = "collection"
)

// Category is a filterable tag. The engine only ever compares titles.
type Category struct {
	Title string       `json:"title"`
	Type  CategoryType `json:"type"`
}

// GroupedCategories is the storefront response for the filter bar
type GroupedCategories struct {
	Style      []Category `json:"style"`
	Subject    []Category `json:"subject"`
	Medium     []Category `json:"medium"`
	Collection []Category `json:"collection"`
}

// GroupCategories buckets categories by type, keeping input order inside each bucket.
// Categories with an unknown type are dropped.
func GroupCategories(categories []Category) GroupedCategories {
	grouped := GroupedCategories{
		Style:      []Category{},
		Subject:    []Category{},
		Medium:     []Category{},
		Collection: []Category{},
	}
	for _, c := range categories {
		switch c.Type {
		case CategoryStyle:
			grouped.Style = append(grouped.Style, c)
		case CategorySubject:
			grouped.Subject = append(grouped.Subject, c)
		case CategoryMedium:
			grouped.Medium = append(grouped.Medium, c)
		case CategoryCollection:
			grouped.Collection = append(grouped.Collection, c)
		}
	}
	return grouped
}
