// models/filters.go
package models

import "strings"

// StatusFilter selects an availability bucket
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterAvailable StatusFilter = "available"
	StatusFilterSold      StatusFilter = "sold"
)

// ParseStatusFilter never fails: anything unrecognised means "all"
func ParseStatusFilter(s string) StatusFilter {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case StatusFilterAvailable:
		return StatusFilterAvailable
	case StatusFilterSold:
		return StatusFilterSold
	default:
		return StatusFilterAll
	}
}

// Statuses returns the artwork statuses that fall in the bucket, or nil for "all".
// Private works are listed with sold ones.
func (f StatusFilter) Statuses() []ArtworkStatus {
	switch ParseStatusFilter(string(f)) {
	case StatusFilterAvailable:
		return []ArtworkStatus{StatusAvailable}
	case StatusFilterSold:
		return []ArtworkStatus{StatusSold, StatusPrivate}
	default:
		return nil
	}
}

// SortOption is the requested result order
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
)

// ParseSortOption never fails: anything unrecognised means "newest"
func ParseSortOption(s string) SortOption {
	switch SortOption(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortNewest
	}
}

// FilterOptions are the criteria for the content-repository query.
// The zero value means no search, no categories, all statuses, newest first.
type FilterOptions struct {
	SearchQuery        string       `json:"searchQuery"`
	SelectedCategories []string     `json:"selectedCategories"`
	StatusFilter       StatusFilter `json:"statusFilter"`
	SortOption         SortOption   `json:"sortOption"`
}

// ClientFilterOptions are the criteria for re-filtering a list already in hand.
// Only one category can be active at a time.
type ClientFilterOptions struct {
	SearchQuery      string       `json:"searchQuery"`
	SelectedCategory string       `json:"selectedCategory"`
	StatusFilter     StatusFilter `json:"statusFilter"`
	SortOption       SortOption   `json:"sortOption"`
}

// ArtworkQuery is the storefront query string, decoded with gorilla/schema
type ArtworkQuery struct {
	Q        string   `schema:"q"`
	Category []string `schema:"category"`
	Status   string   `schema:"status"`
	Sort     string   `schema:"sort"`
}

// FilterOptions converts the query string into server criteria
func (q ArtworkQuery) FilterOptions() FilterOptions {
	categories := make([]string, 0, len(q.Category))
	for _, c := range q.Category {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	return FilterOptions{
		SearchQuery:        strings.TrimSpace(q.Q),
		SelectedCategories: categories,
		StatusFilter:       ParseStatusFilter(q.Status),
		SortOption:         ParseSortOption(q.Sort),
	}
}

// ClientFilterOptions converts the query string into in-memory criteria.
// Only the first non-empty category is used.
func (q ArtworkQuery) ClientFilterOptions() ClientFilterOptions {
	opts := ClientFilterOptions{
		SearchQuery:  strings.TrimSpace(q.Q),
		StatusFilter: ParseStatusFilter(q.Status),
		SortOption:   ParseSortOption(q.Sort),
	}
	for _, c := range q.Category {
		if c = strings.TrimSpace(c); c != "" {
			opts.SelectedCategory = c
			break
		}
	}
	return opts
}
