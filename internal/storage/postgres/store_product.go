package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"book_prices/internal/domain"
)

type StoreProductStore struct {
	db *sqlx.DB
}

func NewStoreProductStore(db *sqlx.DB) *StoreProductStore {
	return &StoreProductStore{db: db}
}

// Resolve upserts a store listing. The url always follows the latest
// sighting; book_id is only ever filled in, never replaced or cleared.
func (s *StoreProductStore) Resolve(ctx context.Context, store, storeProductID, url string, bookID *int64) (int64, error) {
	query := `
		INSERT INTO store_products (store, store_product_id, url, book_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (store, store_product_id) DO UPDATE SET
			url = EXCLUDED.url,
			book_id = COALESCE(store_products.book_id, EXCLUDED.book_id)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		store,
		storeProductID,
		url,
		bookID,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func (s *StoreProductStore) FindByKey(ctx context.Context, store, storeProductID string) (*domain.StoreProduct, error) {
	query := `
		SELECT id, store, store_product_id, url, book_id, created_at
		FROM store_products
		WHERE store = $1 AND store_product_id = $2`

	var sp domain.StoreProduct
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sp, query, store, storeProductID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store product %s/%s: %w", store, storeProductID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}
