package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"book_prices/internal/domain"
)

// IngestService resolves one observed offer against the registries and the
// ledger inside a single unit of work.
type IngestService struct {
	books     BookRegistry
	products  StoreProductRegistry
	ledger    OfferLedger
	txManager TransactionManager
	logger    *slog.Logger
}

func NewIngestService(
	books BookRegistry,
	products StoreProductRegistry,
	ledger OfferLedger,
	txManager TransactionManager,
	logger *slog.Logger,
) *IngestService {
	return &IngestService{
		books:     books,
		products:  products,
		ledger:    ledger,
		txManager: txManager,
		logger:    logger,
	}
}

// Ingest records one observed offer. Nothing is visible to readers unless
// every step succeeds; failures are returned as-is and never retried here.
func (s *IngestService) Ingest(ctx context.Context, offer *domain.ObservedOffer) (*domain.IngestResult, error) {
	if err := offer.Validate(); err != nil {
		return nil, err
	}

	var result *domain.IngestResult
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		result = &domain.IngestResult{}

		if isbn := presentOrNil(offer.ISBN13); isbn != nil {
			bookID, err := s.books.Resolve(txCtx, *isbn, presentOrNil(offer.Title))
			if err != nil {
				return fmt.Errorf("resolve book: %w", err)
			}
			result.BookID = &bookID
		}

		spID, err := s.products.Resolve(txCtx, offer.Store, offer.StoreProductID, offer.URL, result.BookID)
		if err != nil {
			return fmt.Errorf("resolve store product: %w", err)
		}
		result.StoreProductID = spID

		appended, err := s.ledger.AppendIfChanged(txCtx, spID, offer.Price, offer.InStock)
		if err != nil {
			return fmt.Errorf("append offer: %w", err)
		}
		result.Inserted = appended.Inserted
		result.FirstSnapshot = appended.Inserted && appended.Previous == nil
		result.Snapshot = appended.Snapshot

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("ingested offer",
		"store", offer.Store,
		"store_product_id", offer.StoreProductID,
		"inserted", result.Inserted,
	)

	return result, nil
}

func presentOrNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
