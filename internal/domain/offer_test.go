package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func stock(v bool) *bool { return &v }

func TestReadingChanged(t *testing.T) {
	tests := []struct {
		name    string
		prev    *OfferSnapshot
		price   decimal.NullDecimal
		inStock *bool
		want    bool
	}{
		{"no previous snapshot", nil, decimal.NullDecimal{}, nil, true},
		{"same price and stock", &OfferSnapshot{Price: price("10.00"), InStock: stock(true)}, price("10.00"), stock(true), false},
		{"same price different scale", &OfferSnapshot{Price: price("10.5")}, price("10.50"), nil, false},
		{"price changed", &OfferSnapshot{Price: price("10.00"), InStock: stock(true)}, price("12.50"), stock(true), true},
		{"price appeared", &OfferSnapshot{}, price("9.99"), nil, true},
		{"price vanished", &OfferSnapshot{Price: price("9.99")}, decimal.NullDecimal{}, nil, true},
		{"stock unknown to true", &OfferSnapshot{Price: price("1")}, price("1"), stock(true), true},
		{"stock true to unknown", &OfferSnapshot{InStock: stock(true)}, decimal.NullDecimal{}, nil, true},
		{"stock true to false", &OfferSnapshot{InStock: stock(true)}, decimal.NullDecimal{}, stock(false), true},
		{"both unknown", &OfferSnapshot{}, decimal.NullDecimal{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingChanged(tt.prev, tt.price, tt.inStock))
		})
	}
}

func TestRankOffers(t *testing.T) {
	offers := []OfferView{
		{Store: "unknown", Price: decimal.NullDecimal{}, InStock: nil},
		{Store: "out", Price: price("12"), InStock: stock(false)},
		{Store: "in", Price: price("15"), InStock: stock(true)},
	}

	RankOffers(offers)

	assert.Equal(t, []string{"in", "out", "unknown"}, stores(offers))
}

func TestRankOffers_PriceOrderWithinStockGroup(t *testing.T) {
	offers := []OfferView{
		{Store: "no-price", InStock: stock(true)},
		{Store: "dear", Price: price("30.00"), InStock: stock(true)},
		{Store: "cheap", Price: price("9.90"), InStock: stock(true)},
		{Store: "unknown-cheap", Price: price("1.00")},
		{Store: "out-cheap", Price: price("2.00"), InStock: stock(false)},
	}

	RankOffers(offers)

	assert.Equal(t, []string{"cheap", "dear", "no-price", "out-cheap", "unknown-cheap"}, stores(offers))
}

func TestRankOffers_StableForTies(t *testing.T) {
	offers := []OfferView{
		{Store: "a", Price: price("5"), InStock: stock(true)},
		{Store: "b", Price: price("5.00"), InStock: stock(true)},
	}

	RankOffers(offers)

	assert.Equal(t, []string{"a", "b"}, stores(offers))
}

func stores(offers []OfferView) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.Store
	}
	return out
}

func TestRoundPrice(t *testing.T) {
	assert.False(t, RoundPrice(decimal.NullDecimal{}).Valid)
	assert.True(t, RoundPrice(price("12.345")).Decimal.Equal(decimal.RequireFromString("12.35")))
	assert.True(t, RoundPrice(price("12.344")).Decimal.Equal(decimal.RequireFromString("12.34")))
	assert.True(t, RoundPrice(price("10.5")).Decimal.Equal(decimal.RequireFromString("10.50")))
}

func TestReadingChanged_RoundedRepeatIsUnchanged(t *testing.T) {
	stored := &OfferSnapshot{Price: price("12.35"), InStock: stock(true)}

	assert.True(t, ReadingChanged(stored, price("12.345"), stock(true)))
	assert.False(t, ReadingChanged(stored, RoundPrice(price("12.345")), stock(true)))
}
