package models

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayLanguage = language.English

// FormatPrice renders an amount with the currency's symbol, e.g. "$1,250.00".
// Unknown currency codes fall back to USD.
func FormatPrice(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(displayLanguage)
	symbol := p.Sprint(currency.Symbol(unit))
	return symbol + p.Sprintf("%.2f", amount)
}

// PriceLabel is the storefront text shown in place of a price
func PriceLabel(a Artwork, code string) string {
	switch a.Status {
	case StatusSold, StatusPrivate:
		return "Sold"
	}
	if !a.ShowPrice {
		return "Price on request"
	}
	if a.Price != nil {
		return FormatPrice(*a.Price, code)
	}
	if a.StartingPrice != nil {
		return "From " + FormatPrice(*a.StartingPrice, code)
	}
	return "Price on request"
}

// LabelPrices fills PriceLabel on every artwork in place
func LabelPrices(artworks []Artwork, code string) {
	for i := range artworks {
		artworks[i].PriceLabel = PriceLabel(artworks[i], code)
	}
}
