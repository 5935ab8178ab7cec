package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"book_prices/internal/domain"
)

type FeedStateStore struct {
	db *sqlx.DB
}

func NewFeedStateStore(db *sqlx.DB) *FeedStateStore {
	return &FeedStateStore{db: db}
}

func (s *FeedStateStore) Get(ctx context.Context, feed string) (*domain.FeedState, error) {
	var state domain.FeedState
	query := `
		SELECT id, feed, last_synced_at, total_ingested, total_changes
		FROM feed_state
		WHERE feed = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, feed)
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for feeds that never ran
		return &domain.FeedState{Feed: feed}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *FeedStateStore) Update(ctx context.Context, state *domain.FeedState) error {
	query := `
		INSERT INTO feed_state (feed, last_synced_at, total_ingested, total_changes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (feed) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			total_ingested = EXCLUDED.total_ingested,
			total_changes = EXCLUDED.total_changes`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.Feed,
		state.LastSyncedAt,
		state.TotalIngested,
		state.TotalChanges,
	)
	return err
}
