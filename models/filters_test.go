package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		in   string
		want StatusFilter
	}{
		{"available", StatusFilterAvailable},
		{" SOLD ", StatusFilterSold},
		{"all", StatusFilterAll},
		{"", StatusFilterAll},
		{"private", StatusFilterAll},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatusFilter(tt.in))
		})
	}
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortOption("price_asc"))
	assert.Equal(t, SortPriceDesc, ParseSortOption("PRICE_DESC"))
	assert.Equal(t, SortNewest, ParseSortOption("oldest"))
	assert.Equal(t, SortNewest, ParseSortOption(""))
}

func TestStatusFilter_Statuses(t *testing.T) {
	assert.Nil(t, StatusFilterAll.Statuses())
	assert.Nil(t, StatusFilter("bogus").Statuses())
	assert.Equal(t, []ArtworkStatus{StatusAvailable}, StatusFilterAvailable.Statuses())
	assert.Equal(t, []ArtworkStatus{StatusSold, StatusPrivate}, StatusFilterSold.Statuses())
}

func TestArtworkQuery_Options(t *testing.T) {
	q := ArtworkQuery{Q: "  mountain ", Category: []string{"", "Landscape", "Style A"}, Status: "sold", Sort: "price_desc"}

	server := q.FilterOptions()
	assert.Equal(t, "mountain", server.SearchQuery)
	assert.Equal(t, []string{"Landscape", "Style A"}, server.SelectedCategories)
	assert.Equal(t, StatusFilterSold, server.StatusFilter)
	assert.Equal(t, SortPriceDesc, server.SortOption)

	client := q.ClientFilterOptions()
	assert.Equal(t, "Landscape", client.SelectedCategory)
}

func TestGroupCategories(t *testing.T) {
	grouped := GroupCategories([]Category{
		{Title: "Abstract", Type: CategoryStyle},
		{Title: "Oil", Type: CategoryMedium},
		{Title: "Landscape", Type: CategorySubject},
		{Title: "Odd", Type: "misc"},
	})
	assert.Len(t, grouped.Style, 1)
	assert.Len(t, grouped.Medium, 1)
	assert.Len(t, grouped.Subject, 1)
	assert.Empty(t, grouped.Collection)
}
