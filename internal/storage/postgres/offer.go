package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"book_prices/internal/domain"
)

const snapshotColumns = `id, store_product_id, captured_at, price, in_stock`

// OfferStore is the append-only price/stock ledger.
type OfferStore struct {
	db *sqlx.DB
}

func NewOfferStore(db *sqlx.DB) *OfferStore {
	return &OfferStore{db: db}
}

// Latest returns the newest snapshot of a store product. Snapshots captured at
// the same instant are ordered by insertion.
func (s *OfferStore) Latest(ctx context.Context, storeProductID int64) (*domain.OfferSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM offer_snapshots
		WHERE store_product_id = $1
		ORDER BY captured_at DESC, id DESC
		LIMIT 1`

	var snap domain.OfferSnapshot
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &snap, query, storeProductID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("snapshot for store product %d: %w", storeProductID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// AppendIfChanged records a reading unless it repeats the latest snapshot.
// The price is rounded to the stored scale before it is compared.
func (s *OfferStore) AppendIfChanged(ctx context.Context, storeProductID int64, price decimal.NullDecimal, inStock *bool) (*domain.LedgerAppend, error) {
	price = domain.RoundPrice(price)

	prev, err := s.Latest(ctx, storeProductID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}

	result := &domain.LedgerAppend{Previous: prev}
	if !domain.ReadingChanged(prev, price, inStock) {
		return result, nil
	}

	query := `
		INSERT INTO offer_snapshots (store_product_id, price, in_stock)
		VALUES ($1, $2, $3)
		RETURNING ` + snapshotColumns

	var snap domain.OfferSnapshot
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &snap, query, storeProductID, price, inStock); err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", mapError(err))
	}

	result.Inserted = true
	result.Snapshot = &snap
	return result, nil
}

// LatestForBook returns the latest snapshot of every store product linked to
// the book, in store product order. Products without any snapshot are omitted.
func (s *OfferStore) LatestForBook(ctx context.Context, bookID int64) ([]domain.OfferView, error) {
	query := `
		SELECT DISTINCT ON (sp.id)
			sp.store, sp.url, o.price, o.in_stock, o.captured_at
		FROM store_products sp
		JOIN offer_snapshots o ON o.store_product_id = sp.id
		WHERE sp.book_id = $1
		ORDER BY sp.id, o.captured_at DESC, o.id DESC`

	offers := []domain.OfferView{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &offers, query, bookID)
	return offers, err
}

func (s *OfferStore) History(ctx context.Context, storeProductID int64) ([]domain.OfferSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM offer_snapshots
		WHERE store_product_id = $1
		ORDER BY captured_at, id`

	var snaps []domain.OfferSnapshot
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &snaps, query, storeProductID)
	return snaps, err
}
