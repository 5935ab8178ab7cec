package service

import (
	"context"
	"errors"
	"fmt"

	"book_prices/internal/domain"
)

// CatalogService answers read-side queries: price comparison by ISBN and
// title search.
type CatalogService struct {
	books  BookRegistry
	ledger OfferLedger
}

func NewCatalogService(books BookRegistry, ledger OfferLedger) *CatalogService {
	return &CatalogService{books: books, ledger: ledger}
}

// CompareByISBN returns the book and the latest offer of every listing linked
// to it, ranked for display. It returns nil without error when the ISBN is
// unknown.
func (s *CatalogService) CompareByISBN(ctx context.Context, isbn13 string) (*domain.Comparison, error) {
	book, err := s.books.FindByISBN(ctx, isbn13)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find book: %w", err)
	}

	offers, err := s.ledger.LatestForBook(ctx, book.ID)
	if err != nil {
		return nil, fmt.Errorf("latest offers: %w", err)
	}
	if offers == nil {
		offers = []domain.OfferView{}
	}
	domain.RankOffers(offers)

	return &domain.Comparison{Book: *book, Offers: offers}, nil
}

func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]domain.BookSummary, error) {
	books, err := s.books.SearchByTitle(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}

	items := make([]domain.BookSummary, len(books))
	for i, b := range books {
		items[i] = domain.BookSummary{ID: b.ID, ISBN13: b.ISBN13, Title: b.Title}
	}
	return items, nil
}
