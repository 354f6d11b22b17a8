package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

func TestFilter_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		opts    models.ClientFilterOptions
		want    []string
		ordered bool
	}{
		{"search mountain", models.ClientFilterOptions{SearchQuery: "mountain"}, []string{"1", "3"}, false},
		{"search artist", models.ClientFilterOptions{SearchQuery: "Master B"}, []string{"2"}, false},
		{"category", models.ClientFilterOptions{SelectedCategory: "Style A"}, []string{"1", "3"}, false},
		{"available", models.ClientFilterOptions{StatusFilter: models.StatusFilterAvailable}, []string{"1", "3"}, false},
		{"sold", models.ClientFilterOptions{StatusFilter: models.StatusFilterSold}, []string{"2"}, false},
		{"price asc", models.ClientFilterOptions{SortOption: models.SortPriceAsc}, []string{"3", "1", "2"}, true},
		{"price desc", models.ClientFilterOptions{SortOption: models.SortPriceDesc}, []string{"2", "1", "3"}, true},
		{"combined", models.ClientFilterOptions{
			SearchQuery:      "mountain",
			SelectedCategory: "Landscape",
			StatusFilter:     models.StatusFilterAvailable,
			SortOption:       models.SortPriceDesc,
		}, []string{"1", "3"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(sampleArtworks(), tt.opts))
			if tt.ordered {
				assert.Equal(t, tt.want, got)
			} else {
				assert.ElementsMatch(t, tt.want, got)
			}
		})
	}
}

func TestFilter_NoCriteriaIsIdentity(t *testing.T) {
	in := sampleArtworks()
	assert.Equal(t, in, Filter(in, models.ClientFilterOptions{}))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := sampleArtworks()
	snapshot := sampleArtworks()

	out := Filter(in, models.ClientFilterOptions{SortOption: models.SortPriceAsc})
	require.Len(t, out, 3)
	assert.Equal(t, snapshot, in)

	out[0].Title = "changed"
	assert.Equal(t, "Mountain sunset", in[2].Title)
}

func TestFilter_MissingPriceSortsAsZero(t *testing.T) {
	in := []models.Artwork{
		{ID: "free", Price: price(0)},
		{ID: "priced", Price: price(300)},
		{ID: "undisclosed"},
	}

	asc := ids(Filter(in, models.ClientFilterOptions{SortOption: models.SortPriceAsc}))
	assert.Equal(t, []string{"free", "undisclosed", "priced"}, asc)

	desc := ids(Filter(in, models.ClientFilterOptions{SortOption: models.SortPriceDesc}))
	assert.Equal(t, []string{"priced", "free", "undisclosed"}, desc)
}

func TestFilter_StableForEqualKeys(t *testing.T) {
	in := []models.Artwork{
		{ID: "a", Price: price(100)},
		{ID: "b", Price: price(50)},
		{ID: "c", Price: price(100)},
		{ID: "d", Price: price(50)},
	}

	asc := Filter(in, models.ClientFilterOptions{SortOption: models.SortPriceAsc})
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(asc))

	again := Filter(asc, models.ClientFilterOptions{SortOption: models.SortPriceAsc})
	assert.Equal(t, ids(asc), ids(again))
}

func TestFilter_SoldBucketIncludesPrivate(t *testing.T) {
	in := []models.Artwork{
		{ID: "a", Status: models.StatusAvailable},
		{ID: "s", Status: models.StatusSold},
		{ID: "p", Status: models.StatusPrivate},
	}
	got := ids(Filter(in, models.ClientFilterOptions{StatusFilter: models.StatusFilterSold}))
	assert.Equal(t, []string{"s", "p"}, got)
}

func TestFilter_UnknownValuesFallBack(t *testing.T) {
	in := sampleArtworks()
	got := Filter(in, models.ClientFilterOptions{
		StatusFilter: models.StatusFilter("on-loan"),
		SortOption:   models.SortOption("random"),
	})
	assert.Equal(t, ids(in), ids(got))
}

func TestFilter_AbsentTextFieldsNeverMatchNonEmptyQuery(t *testing.T) {
	in := []models.Artwork{{ID: "bare"}}
	assert.Empty(t, Filter(in, models.ClientFilterOptions{SearchQuery: "x"}))
	assert.Len(t, Filter(in, models.ClientFilterOptions{SearchQuery: "   "}), 1)
}

func TestApply_ConjunctionHolds(t *testing.T) {
	spec := FromClientOptions(models.ClientFilterOptions{
		SearchQuery:      "o",
		SelectedCategory: "Landscape",
		StatusFilter:     models.StatusFilterAvailable,
	})
	in := sampleArtworks()
	out := Apply(in, spec)
	require.NotEmpty(t, out)

	byID := map[string]bool{}
	for _, a := range in {
		byID[a.ID] = true
	}
	for _, a := range out {
		assert.True(t, byID[a.ID], "result %s not in input", a.ID)
		for _, c := range spec.Clauses {
			assert.True(t, Matches(a, Spec{Clauses: []Clause{c}}), "%s fails %s clause", a.ID, c.Kind)
		}
	}
}

func TestApply_CaseInsensitive(t *testing.T) {
	in := []models.Artwork{{ID: "1", Title: "ÉTUDE in Blue"}}
	spec := Spec{Clauses: []Clause{{Kind: ClauseText, Text: "étude", Fields: []Field{FieldTitle}, Mode: TextPrefix}}}
	assert.Equal(t, []string{"1"}, ids(Apply(in, spec)))
}

func TestApply_InvalidClauseMatchesNothing(t *testing.T) {
	spec := Spec{Clauses: []Clause{{Kind: "colour", Values: []string{"red"}}}}
	assert.Empty(t, Apply(sampleArtworks(), spec))
}

func TestFilter_SearchTextKeepsSurroundingSpaces(t *testing.T) {
	in := sampleArtworks()

	assert.Empty(t, Filter(in, models.ClientFilterOptions{SearchQuery: "peaks "}))
	assert.Equal(t, []string{"1", "3"}, ids(Filter(in, models.ClientFilterOptions{SearchQuery: "mountain "})))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter(in, models.ClientFilterOptions{SearchQuery: "   "})))
}
