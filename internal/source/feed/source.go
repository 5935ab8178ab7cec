package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"book_prices/internal/domain"
)

// Config describes one offer feed.
type Config struct {
	Name  string
	Store string
	// Location is an http(s) URL or a local file path.
	Location       string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source reads observed offers produced by a store adapter.
type Source struct {
	httpClient     *http.Client
	name           string
	store          string
	location       string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	name := cfg.Name
	if name == "" {
		name = cfg.Store
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		name:           name,
		store:          cfg.Store,
		location:       cfg.Location,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("feed", name),
	}
}

func (s *Source) ID() string {
	return s.name
}

func (s *Source) Name() string {
	if s.store == "" {
		return s.name
	}
	return fmt.Sprintf("%s (%s)", s.name, s.store)
}

// FetchOffers loads the feed and maps every row to an ObservedOffer. Rows
// without a store fall back to the feed's configured store.
func (s *Source) FetchOffers(ctx context.Context) ([]domain.ObservedOffer, error) {
	var (
		rows []Row
		err  error
	)

	if isRemote(s.location) {
		rows, err = s.fetchRemote(ctx)
	} else {
		rows, err = s.readFile()
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("loaded feed rows", "rows", len(rows))

	return s.transform(rows), nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func (s *Source) readFile() ([]Row, error) {
	f, err := os.Open(s.location)
	if err != nil {
		return nil, fmt.Errorf("open feed file: %w", err)
	}
	defer f.Close()

	return decodeRows(f)
}

func (s *Source) fetchRemote(ctx context.Context) ([]Row, error) {
	var rows []Row
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		rows, err = s.doRequest(ctx)
		if err == nil {
			return rows, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("feed request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "BookPrices/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return decodeRows(resp.Body)
}

func decodeRows(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return rows, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff << (attempt - 1)
	if backoff > s.maxBackoff || backoff <= 0 {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(rows []Row) []domain.ObservedOffer {
	offers := make([]domain.ObservedOffer, 0, len(rows))

	for _, r := range rows {
		offer := domain.ObservedOffer{
			Store:          r.Store,
			StoreProductID: string(r.StoreProductID),
			URL:            r.URL,
			Title:          r.Title,
			ISBN13:         r.ISBN,
			Price:          r.Price,
			InStock:        r.InStock,
		}
		if offer.Store == "" {
			offer.Store = s.store
		}
		if offer.StoreProductID == "" {
			offer.StoreProductID = string(r.ProductID)
		}
		if !offer.Price.Valid {
			offer.Price = r.PriceGEL
		}

		offers = append(offers, offer)
	}

	return offers
}
