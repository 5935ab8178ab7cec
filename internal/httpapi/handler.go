package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"book_prices/internal/domain"
)

func init() {
	// Prices go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// Catalog is the read side served over HTTP.
type Catalog interface {
	CompareByISBN(ctx context.Context, isbn13 string) (*domain.Comparison, error)
	Search(ctx context.Context, query string, limit int) ([]domain.BookSummary, error)
}

type Handler struct {
	catalog Catalog
	logger  *slog.Logger
}

func NewHandler(catalog Catalog, logger *slog.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// Routes returns the API mux wrapped in the middleware chain.
func (h *Handler) Routes(limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /compare/by-isbn/{isbn13}", h.compareByISBN)
	mux.HandleFunc("GET /search", h.search)

	var handler http.Handler = mux
	if limiter != nil {
		handler = limiter.Middleware(handler)
	}
	handler = recovery(h.logger)(handler)
	handler = accessLog(h.logger)(handler)
	handler = requestID(handler)
	return handler
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) compareByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := strings.TrimSpace(r.PathValue("isbn13"))

	cmp, err := h.catalog.CompareByISBN(r.Context(), isbn)
	if err != nil {
		h.logger.Error("compare failed", "isbn13", isbn, "error", err, "request_id", RequestIDFrom(r))
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	if cmp == nil {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "book not found")
		return
	}

	writeJSON(w, http.StatusOK, cmp)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "q is required")
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSearchLimit {
			writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	items, err := h.catalog.Search(r.Context(), q, limit)
	if err != nil {
		h.logger.Error("search failed", "q", q, "error", err, "request_id", RequestIDFrom(r))
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	if items == nil {
		items = []domain.BookSummary{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
