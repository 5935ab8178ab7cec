package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimal places a price is stored with.
const PriceScale = 2

// RoundPrice rounds a price to PriceScale places, half away from zero, the
// same way a NUMERIC(12,2) column does.
func RoundPrice(price decimal.NullDecimal) decimal.NullDecimal {
	if !price.Valid {
		return price
	}
	return decimal.NewNullDecimal(price.Decimal.Round(PriceScale))
}

// ReadingChanged reports whether an observed price/stock reading differs from
// the previous snapshot. A missing previous snapshot always counts as a change.
// Prices compare exactly; 10.5 and 10.50 are the same reading.
func ReadingChanged(prev *OfferSnapshot, price decimal.NullDecimal, inStock *bool) bool {
	if prev == nil {
		return true
	}
	if prev.Price.Valid != price.Valid {
		return true
	}
	if price.Valid && !prev.Price.Decimal.Equal(price.Decimal) {
		return true
	}
	return !sameStock(prev.InStock, inStock)
}

func sameStock(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// RankOffers orders offers for display: known stock before unknown, in stock
// before out of stock, then price ascending with missing prices last.
func RankOffers(offers []OfferView) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offerLess(offers[i], offers[j])
	})
}

func offerLess(a, b OfferView) bool {
	if (a.InStock == nil) != (b.InStock == nil) {
		return b.InStock == nil
	}
	if a.InStock != nil && *a.InStock != *b.InStock {
		return *a.InStock
	}
	if a.Price.Valid != b.Price.Valid {
		return a.Price.Valid
	}
	if a.Price.Valid {
		return a.Price.Decimal.LessThan(b.Price.Decimal)
	}
	return false
}
