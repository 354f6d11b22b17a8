package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

func TestCompileGROQ_Defaults(t *testing.T) {
	q, err := CompileGROQ(FromServerOptions(models.FilterOptions{}))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(q.Query, `*[_type == "artwork" && !(_id in path("drafts.**"))] | order(_createdAt desc) {`))
	assert.Empty(t, q.Params)
}

func TestCompileGROQ_AllCriteria(t *testing.T) {
	q, err := CompileGROQ(FromServerOptions(models.FilterOptions{
		SearchQuery:        "Mountain",
		SelectedCategories: []string{"Style A", "Style B"},
		StatusFilter:       models.StatusFilterSold,
		SortOption:         models.SortPriceAsc,
	}))
	require.NoError(t, err)

	assert.Contains(t, q.Query, `string::startsWith(lower(coalesce(title, "")), $search)`)
	assert.Contains(t, q.Query, `string::startsWith(lower(coalesce(artist, "")), $search)`)
	assert.Contains(t, q.Query, `string::startsWith(lower(coalesce(material, "")), $search)`)
	assert.Contains(t, q.Query, `count((categories[]->title)[@ in $categories]) > 0`)
	assert.Contains(t, q.Query, `status in $statuses`)
	assert.Contains(t, q.Query, `order(coalesce(price, 0) asc, _createdAt desc)`)

	assert.Equal(t, "mountain", q.Params["search"])
	assert.Equal(t, []string{"Style A", "Style B"}, q.Params["categories"])
	assert.Equal(t, []string{"sold", "private"}, q.Params["statuses"])
}

func TestCompileGROQ_AvailableIsExactMatch(t *testing.T) {
	q, err := CompileGROQ(FromServerOptions(models.FilterOptions{StatusFilter: models.StatusFilterAvailable}))
	require.NoError(t, err)

	assert.Contains(t, q.Query, "status == $status")
	assert.Equal(t, "available", q.Params["status"])
}

func TestCompileGROQ_Sort(t *testing.T) {
	tests := []struct {
		sort models.SortOption
		want string
	}{
		{models.SortNewest, "order(_createdAt desc)"},
		{models.SortPriceAsc, "order(coalesce(price, 0) asc, _createdAt desc)"},
		{models.SortPriceDesc, "order(coalesce(price, 0) desc, _createdAt desc)"},
		{models.SortOption("cheapest"), "order(_createdAt desc)"},
		{models.SortOption(""), "order(_createdAt desc)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			q, err := CompileGROQ(Spec{Sort: tt.sort})
			require.NoError(t, err)
			assert.Contains(t, q.Query, "| "+tt.want+" {")
		})
	}
}

func TestCompileGROQ_InputIsNeverInterpolated(t *testing.T) {
	hostile := `") || true || ("`
	q, err := CompileGROQ(FromServerOptions(models.FilterOptions{
		SearchQuery:        hostile,
		SelectedCategories: []string{hostile},
	}))
	require.NoError(t, err)

	assert.NotContains(t, q.Query, hostile)
	assert.Equal(t, strings.ToLower(hostile), q.Params["search"])
}

func TestCompileGROQ_RepeatedClausesGetDistinctParams(t *testing.T) {
	spec := Spec{Clauses: []Clause{
		{Kind: ClauseCategory, Values: []string{"Landscape"}},
		{Kind: ClauseCategory, Values: []string{"Style A"}},
	}}
	q, err := CompileGROQ(spec)
	require.NoError(t, err)

	assert.Equal(t, []string{"Landscape"}, q.Params["categories"])
	assert.Equal(t, []string{"Style A"}, q.Params["categories1"])
	assert.Contains(t, q.Query, "$categories1")
}

func TestCompileGROQ_RejectsInvalidSpec(t *testing.T) {
	tests := []struct {
		name   string
		clause Clause
	}{
		{"unknown kind", Clause{Kind: "colour", Values: []string{"red"}}},
		{"unknown field", Clause{Kind: ClauseText, Text: "x", Fields: []Field{"_id"}, Mode: TextPrefix}},
		{"no fields", Clause{Kind: ClauseText, Text: "x", Mode: TextPrefix}},
		{"unknown mode", Clause{Kind: ClauseText, Text: "x", Fields: []Field{FieldTitle}, Mode: "fuzzy"}},
		{"empty category", Clause{Kind: ClauseCategory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileGROQ(Spec{Clauses: []Clause{tt.clause}})
			assert.True(t, errors.Is(err, ErrInvalidSpec))
		})
	}
}
