package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"book_prices/internal/domain"
)

// FeedSyncService pulls one feed of observed offers and ingests them one by
// one. A failing offer is logged and counted; it does not stop the run.
type FeedSyncService struct {
	source    Source
	ingester  Ingester
	feedState FeedStateStore
	publisher Publisher
	logger    *slog.Logger
}

func NewFeedSyncService(
	source Source,
	ingester Ingester,
	feedState FeedStateStore,
	publisher Publisher,
	logger *slog.Logger,
) *FeedSyncService {
	return &FeedSyncService{
		source:    source,
		ingester:  ingester,
		feedState: feedState,
		publisher: publisher,
		logger:    logger.With("feed", source.ID()),
	}
}

func (s *FeedSyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	s.logger.Info("starting sync", "feed_name", s.source.Name())

	offers, err := s.source.FetchOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch offers: %w", err)
	}

	s.logger.Info("fetched offers from feed", "count", len(offers))

	stats := &domain.SyncStats{
		Feed:    s.source.ID(),
		Fetched: len(offers),
	}

	for i := range offers {
		offer := &offers[i]
		result, err := s.ingester.Ingest(ctx, offer)
		if err != nil {
			stats.Errors++
			s.logger.Error("ingest failed",
				"store", offer.Store,
				"store_product_id", offer.StoreProductID,
				"url", offer.URL,
				"error", err,
			)
			continue
		}

		if !result.Inserted {
			stats.Unchanged++
			continue
		}
		stats.Changed++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, changeFrom(offer, result)); err != nil {
				stats.Errors++
				s.logger.Warn("publish failed", "store_product_id", offer.StoreProductID, "error", err)
			} else {
				stats.Published++
			}
		}
	}

	if err := s.updateFeedState(ctx, stats); err != nil {
		return stats, fmt.Errorf("update feed state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"fetched", stats.Fetched,
		"changed", stats.Changed,
		"unchanged", stats.Unchanged,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *FeedSyncService) updateFeedState(ctx context.Context, stats *domain.SyncStats) error {
	state, err := s.feedState.Get(ctx, s.source.ID())
	if err != nil {
		return err
	}

	state.Feed = s.source.ID()
	state.LastSyncedAt = time.Now()
	state.TotalIngested += int64(stats.Changed + stats.Unchanged)
	state.TotalChanges += int64(stats.Changed)

	return s.feedState.Update(ctx, state)
}

func changeFrom(offer *domain.ObservedOffer, result *domain.IngestResult) *domain.OfferChange {
	change := &domain.OfferChange{
		ISBN13:         presentOrNil(offer.ISBN13),
		Store:          offer.Store,
		StoreProductID: offer.StoreProductID,
		URL:            offer.URL,
		FirstSeen:      result.FirstSnapshot,
	}
	if result.Snapshot != nil {
		change.Snapshot = *result.Snapshot
	}
	return change
}
