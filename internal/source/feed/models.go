package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one scraped offer as written by the store adapters.
type Row struct {
	Store          string              `json:"store"`
	StoreProductID ProductID           `json:"store_product_id"`
	ProductID      ProductID           `json:"product_id"`
	URL            string              `json:"url"`
	Title          *string             `json:"title"`
	ISBN           *string             `json:"isbn"`
	Price          decimal.NullDecimal `json:"price"`
	PriceGEL       decimal.NullDecimal `json:"price_gel"`
	InStock        *bool               `json:"in_stock"`
}

// ProductID accepts both string and numeric store product ids.
type ProductID string

func (p *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode product id: %w", err)
		}
		*p = ProductID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode product id: %w", err)
	}
	*p = ProductID(n.String())
	return nil
}
