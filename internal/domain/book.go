package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
)

// Book is the canonical identity of a physical title, keyed by ISBN-13.
type Book struct {
	ID              int64     `db:"id" json:"id"`
	ISBN13          string    `db:"isbn13" json:"isbn13"`
	Title           *string   `db:"title" json:"title"`
	TitleNormalized *string   `db:"title_normalized" json:"-"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type BookSummary struct {
	ID     int64   `db:"id" json:"id"`
	ISBN13 string  `db:"isbn13" json:"isbn13"`
	Title  *string `db:"title" json:"title"`
}

// StoreProduct is one store's listing. BookID stays nil until an ISBN is observed.
type StoreProduct struct {
	ID             int64     `db:"id"`
	Store          string    `db:"store"`
	StoreProductID string    `db:"store_product_id"`
	URL            string    `db:"url"`
	BookID         *int64    `db:"book_id"`
	CreatedAt      time.Time `db:"created_at"`
}

type OfferSnapshot struct {
	ID             int64               `db:"id"`
	StoreProductID int64               `db:"store_product_id"`
	CapturedAt     time.Time           `db:"captured_at"`
	Price          decimal.NullDecimal `db:"price"`
	InStock        *bool               `db:"in_stock"`
}

// ObservedOffer is what a store adapter hands over for one listing.
// ISBN13 is expected to be checksum-validated already.
type ObservedOffer struct {
	Store          string              `json:"store"`
	StoreProductID string              `json:"store_product_id"`
	URL            string              `json:"url"`
	Title          *string             `json:"title,omitempty"`
	ISBN13         *string             `json:"isbn13,omitempty"`
	Price          decimal.NullDecimal `json:"price"`
	InStock        *bool               `json:"in_stock"`
}

// OfferView is the latest reading of one store product, as shown to clients.
type OfferView struct {
	Store      string              `db:"store" json:"store"`
	URL        string              `db:"url" json:"url"`
	Price      decimal.NullDecimal `db:"price" json:"price"`
	InStock    *bool               `db:"in_stock" json:"in_stock"`
	CapturedAt time.Time           `db:"captured_at" json:"captured_at"`
}

type Comparison struct {
	Book   Book        `json:"book"`
	Offers []OfferView `json:"offers"`
}

var ErrInvalidOffer = errors.New("invalid observed offer")

// Validate checks the fields that make up the store product key. The ISBN is
// not checked; adapters validate it before handing the offer over.
func (o *ObservedOffer) Validate() error {
	if o.Store == "" {
		return fmt.Errorf("%w: missing store", ErrInvalidOffer)
	}
	if o.StoreProductID == "" {
		return fmt.Errorf("%w: missing store product id", ErrInvalidOffer)
	}
	return nil
}
