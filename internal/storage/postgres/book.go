package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"book_prices/internal/domain"
	"book_prices/internal/titlenorm"
)

type BookStore struct {
	db *sqlx.DB
}

func NewBookStore(db *sqlx.DB) *BookStore {
	return &BookStore{db: db}
}

// Resolve returns the id of the book with the given ISBN, creating it on
// first sighting. A non-null title replaces the stored one; a null title
// keeps it.
func (s *BookStore) Resolve(ctx context.Context, isbn13 string, title *string) (int64, error) {
	query := `
		INSERT INTO books (isbn13, title, title_normalized)
		VALUES ($1, $2, $3)
		ON CONFLICT (isbn13) DO UPDATE SET
			title = COALESCE(EXCLUDED.title, books.title),
			title_normalized = CASE
				WHEN EXCLUDED.title IS NULL THEN books.title_normalized
				ELSE EXCLUDED.title_normalized
			END
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		isbn13,
		title,
		titlenorm.NormalizePtr(title),
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func (s *BookStore) FindByISBN(ctx context.Context, isbn13 string) (*domain.Book, error) {
	query := `
		SELECT id, isbn13, title, title_normalized, created_at
		FROM books
		WHERE isbn13 = $1`

	var book domain.Book
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &book, query, isbn13)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("book %s: %w", isbn13, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// SearchByTitle returns books whose normalized title contains the normalized
// query, newest first. A query that normalizes to nothing matches every
// titled book.
func (s *BookStore) SearchByTitle(ctx context.Context, query string, limit int) ([]domain.Book, error) {
	q := `
		SELECT id, isbn13, title, title_normalized, created_at
		FROM books
		WHERE title_normalized LIKE '%' || $1 || '%'
		ORDER BY id DESC
		LIMIT $2`

	books := []domain.Book{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &books, q, titlenorm.Normalize(query), limit)
	return books, err
}
