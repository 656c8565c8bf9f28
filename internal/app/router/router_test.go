package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	newsentity "kabu_app/internal/feature/news/domain/entity"
	newshandler "kabu_app/internal/feature/news/transport/handler"
	quoteentity "kabu_app/internal/feature/quote/domain/entity"
	quotehandler "kabu_app/internal/feature/quote/transport/handler"
	quoteusecase "kabu_app/internal/feature/quote/usecase"
	symbolentity "kabu_app/internal/feature/symbollist/domain/entity"
	symbolhandler "kabu_app/internal/feature/symbollist/transport/handler"
	platformhandler "kabu_app/internal/platform/http/handler"
)

type stubQuoteUsecase struct{}

func (stubQuoteUsecase) GetQuote(ctx context.Context, symbol string) (*quoteentity.Quote, error) {
	if symbol == "ZZZZINVALID" {
		return nil, quoteusecase.ErrSymbolNotFound
	}
	c := 100.0
	return &quoteentity.Quote{
		Name:    "Apple Inc.",
		History: []quoteentity.QuoteRecord{{Date: time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), Close: &c}},
	}, nil
}

func (stubQuoteUsecase) GetHistory(ctx context.Context, symbol, period string) ([]quoteentity.QuoteRecord, error) {
	return []quoteentity.QuoteRecord{}, nil
}

type stubNewsUsecase struct{}

func (stubNewsUsecase) GetTopBusinessNews(ctx context.Context) ([]newsentity.Article, error) {
	return []newsentity.Article{{Title: "t", URL: "u"}}, nil
}

type stubSymbolUsecase struct{}

func (stubSymbolUsecase) ListActiveSymbols(ctx context.Context) ([]symbolentity.Symbol, error) {
	return []symbolentity.Symbol{{Code: "7203.T", Name: "トヨタ自動車"}}, nil
}

func newTestRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Handlers{
		Quote:  quotehandler.NewQuoteHandler(stubQuoteUsecase{}),
		News:   newshandler.NewNewsHandler(stubNewsUsecase{}),
		Symbol: symbolhandler.NewSymbolHandler(stubSymbolUsecase{}),
		Health: platformhandler.Health,
	}, origins)
}

func TestNewRouter_Routes(t *testing.T) {
	r := newTestRouter(nil)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		bodyContains   string
	}{
		{"dashboard page", http.MethodGet, "/", http.StatusOK, PageTitle},
		{"study page", http.MethodGet, "/study", http.StatusOK, "7203.T"},
		{"static js", http.MethodGet, "/static/main.js", http.StatusOK, "/api/nikkei"},
		{"missing static", http.MethodGet, "/static/none.js", http.StatusNotFound, ""},
		{"health", http.MethodGet, "/healthz", http.StatusOK, `"ok"`},
		{"health head", http.MethodHead, "/healthz", http.StatusOK, ""},
		{"stock", http.MethodGet, "/api/stock/AAPL", http.StatusOK, `"Apple Inc."`},
		{"stock not found", http.MethodGet, "/api/stock/ZZZZINVALID", http.StatusNotFound, "銘柄コードが見つかりません"},
		{"stock index symbol", http.MethodGet, "/api/stock/%5EN225", http.StatusOK, `"history"`},
		{"nikkei", http.MethodGet, "/api/nikkei", http.StatusOK, "[]"},
		{"news", http.MethodGet, "/api/news", http.StatusOK, `"title":"t"`},
		{"symbols", http.MethodGet, "/api/symbols", http.StatusOK, "7203.T"},
		{"unknown", http.MethodGet, "/api/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.bodyContains != "" {
				assert.Contains(t, w.Body.String(), tt.bodyContains)
			}
		})
	}
}

func TestNewRouter_CORS(t *testing.T) {
	tests := []struct {
		name     string
		origins  []string
		origin   string
		expected string
	}{
		{"no origins configured", nil, "http://localhost:3000", ""},
		{"allowed origin", []string{"http://localhost:3000"}, "http://localhost:3000", "http://localhost:3000"},
		{"wildcard", []string{"*"}, "http://example.com", "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.origins)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/symbols", nil)
			req.Header.Set("Origin", tt.origin)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
