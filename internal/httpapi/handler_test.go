package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"book_prices/internal/domain"
	"book_prices/testdata/utils"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) CompareByISBN(ctx context.Context, isbn13 string) (*domain.Comparison, error) {
	args := m.Called(ctx, isbn13)
	cmp, _ := args.Get(0).(*domain.Comparison)
	return cmp, args.Error(1)
}

func (m *mockCatalog) Search(ctx context.Context, query string, limit int) ([]domain.BookSummary, error) {
	args := m.Called(ctx, query, limit)
	items, _ := args.Get(0).([]domain.BookSummary)
	return items, args.Error(1)
}

type HandlerTestSuite struct {
	suite.Suite
	catalog *mockCatalog
	server  http.Handler
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.catalog = new(mockCatalog)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.server = NewHandler(s.catalog, logger).Routes(nil)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.catalog.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.get("/health")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":true}`, rec.Body.String())
	s.NotEmpty(rec.Header().Get(requestIDHeader))
}

func (s *HandlerTestSuite) TestCompare_Found() {
	captured := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.catalog.On("CompareByISBN", mock.Anything, "9780140449136").Return(&domain.Comparison{
		Book: domain.Book{ID: 7, ISBN13: "9780140449136", Title: utils.Ptr("Crime and Punishment")},
		Offers: []domain.OfferView{
			{
				Store:      "parnasi",
				URL:        "https://parnasi.ge/p/1",
				Price:      decimal.NewNullDecimal(decimal.RequireFromString("15.00")),
				InStock:    utils.Ptr(true),
				CapturedAt: captured,
			},
		},
	}, nil)

	rec := s.get("/compare/by-isbn/9780140449136")

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	book := body["book"].(map[string]any)
	s.Equal("9780140449136", book["isbn13"])
	s.Equal("Crime and Punishment", book["title"])
	s.NotContains(book, "title_normalized")

	offers := body["offers"].([]any)
	s.Require().Len(offers, 1)
	offer := offers[0].(map[string]any)
	s.Equal("parnasi", offer["store"])
	s.Equal(float64(15), offer["price"])
	s.Equal(true, offer["in_stock"])
}

func (s *HandlerTestSuite) TestCompare_NotFound() {
	s.catalog.On("CompareByISBN", mock.Anything, "9780000000000").Return(nil, nil)

	rec := s.get("/compare/by-isbn/9780000000000")

	s.Equal(http.StatusNotFound, rec.Code)
	body := s.decode(rec)
	s.Equal("NOT_FOUND", body["error"].(map[string]any)["code"])
	s.NotEmpty(body["request_id"])
}

func (s *HandlerTestSuite) TestCompare_Error() {
	s.catalog.On("CompareByISBN", mock.Anything, "9780140449136").Return(nil, errors.New("db down"))

	rec := s.get("/compare/by-isbn/9780140449136")

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *HandlerTestSuite) TestSearch_DefaultLimit() {
	s.catalog.On("Search", mock.Anything, "punish", defaultSearchLimit).Return([]domain.BookSummary{
		{ID: 7, ISBN13: "9780140449136", Title: utils.Ptr("Crime and Punishment")},
	}, nil)

	rec := s.get("/search?q=punish")

	s.Equal(http.StatusOK, rec.Code)
	items := s.decode(rec)["items"].([]any)
	s.Len(items, 1)
}

func (s *HandlerTestSuite) TestSearch_EmptyResultIsArray() {
	s.catalog.On("Search", mock.Anything, "nothing", 5).Return(nil, nil)

	rec := s.get("/search?q=nothing&limit=5")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"items":[]}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestSearch_Validation() {
	tests := []string{
		"/search",
		"/search?q=",
		"/search?q=war&limit=0",
		"/search?q=war&limit=101",
		"/search?q=war&limit=ten",
	}

	for _, target := range tests {
		rec := s.get(target)
		s.Equal(http.StatusBadRequest, rec.Code, target)
		s.Equal("VALIDATION_ERROR", s.decode(rec)["error"].(map[string]any)["code"], target)
	}
}

func (s *HandlerTestSuite) TestSearch_WhitespaceQueryIsAccepted() {
	s.catalog.On("Search", mock.Anything, " ", defaultSearchLimit).Return([]domain.BookSummary{
		{ID: 2, ISBN13: "9780140447927", Title: utils.Ptr("Idiot")},
		{ID: 1, ISBN13: "9780140449136", Title: utils.Ptr("Crime and Punishment")},
	}, nil)

	rec := s.get("/search?q=%20")

	s.Equal(http.StatusOK, rec.Code)
	s.Len(s.decode(rec)["items"].([]any), 2)
}

func (s *HandlerTestSuite) TestCompare_PriceIsNumber() {
	s.catalog.On("CompareByISBN", mock.Anything, "9780140447927").Return(&domain.Comparison{
		Book: domain.Book{ID: 2, ISBN13: "9780140447927"},
		Offers: []domain.OfferView{
			{Store: "biblusi", URL: "u", Price: decimal.NewNullDecimal(decimal.RequireFromString("18.50"))},
			{Store: "parnasi", URL: "v"},
		},
	}, nil)

	rec := s.get("/compare/by-isbn/9780140447927")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"price":18.5`)
	s.Contains(rec.Body.String(), `"price":null`)
}

func (s *HandlerTestSuite) TestRequestIDPropagated() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	s.server.ServeHTTP(rec, req)

	s.Equal("abc-123", rec.Header().Get(requestIDHeader))
}

func (s *HandlerTestSuite) TestPanicRecovered() {
	s.catalog.On("Search", mock.Anything, "boom", defaultSearchLimit).Run(func(mock.Arguments) {
		panic("boom")
	}).Return(nil, nil)

	rec := s.get("/search?q=boom")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("INTERNAL_ERROR", s.decode(rec)["error"].(map[string]any)["code"])
}
