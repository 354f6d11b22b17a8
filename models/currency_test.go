package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatPrice(1234.5, "USD"))
	assert.Equal(t, "$0.00", FormatPrice(0, "usd"))

	assert.Equal(t, FormatPrice(10, "USD"), FormatPrice(10, "not-a-code"))
}

func TestPriceLabel(t *testing.T) {
	price := 2500.0
	start := 800.0

	tests := []struct {
		name string
		a    Artwork
		want string
	}{
		{"sold", Artwork{Status: StatusSold, ShowPrice: true, Price: &price}, "Sold"},
		{"private", Artwork{Status: StatusPrivate}, "Sold"},
		{"hidden price", Artwork{Status: StatusAvailable, Price: &price}, "Price on request"},
		{"no price", Artwork{Status: StatusAvailable, ShowPrice: true}, "Price on request"},
		{"starting price", Artwork{Status: StatusAvailable, ShowPrice: true, StartingPrice: &start}, "From " + FormatPrice(800, "USD")},
		{"price", Artwork{Status: StatusAvailable, ShowPrice: true, Price: &price}, FormatPrice(2500, "USD")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceLabel(tt.a, "USD"))
		})
	}
}

func TestLabelPrices(t *testing.T) {
	price := 1234.5
	artworks := []Artwork{
		{ID: "1", Status: StatusAvailable, ShowPrice: true, Price: &price},
		{ID: "2", Status: StatusSold, ShowPrice: true, Price: &price},
	}

	LabelPrices(artworks, "USD")

	assert.Equal(t, "$1,234.50", artworks[0].PriceLabel)
	assert.Equal(t, "Sold", artworks[1].PriceLabel)
}
