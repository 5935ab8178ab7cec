package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"book_prices/internal/domain"
)

type BookRegistry interface {
	Resolve(ctx context.Context, isbn13 string, title *string) (int64, error)
	FindByISBN(ctx context.Context, isbn13 string) (*domain.Book, error)
	SearchByTitle(ctx context.Context, query string, limit int) ([]domain.Book, error)
}

type StoreProductRegistry interface {
	Resolve(ctx context.Context, store, storeProductID, url string, bookID *int64) (int64, error)
}

type OfferLedger interface {
	AppendIfChanged(ctx context.Context, storeProductID int64, price decimal.NullDecimal, inStock *bool) (*domain.LedgerAppend, error)
	LatestForBook(ctx context.Context, bookID int64) ([]domain.OfferView, error)
}

type FeedStateStore interface {
	Get(ctx context.Context, feed string) (*domain.FeedState, error)
	Update(ctx context.Context, state *domain.FeedState) error
}

type Source interface {
	ID() string
	Name() string
	FetchOffers(ctx context.Context) ([]domain.ObservedOffer, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, change *domain.OfferChange) error
	Close() error
}

type Ingester interface {
	Ingest(ctx context.Context, offer *domain.ObservedOffer) (*domain.IngestResult, error)
}
