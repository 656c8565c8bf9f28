package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"kabu_app/internal/feature/symbollist/domain/entity"
)

// mockSymbolUsecase はSymbolUsecaseインターフェースのモック実装です。
type mockSymbolUsecase struct {
	ListActiveSymbolsFunc func(ctx context.Context) ([]entity.Symbol, error)
}

func (m *mockSymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListActiveSymbolsFunc != nil {
		return m.ListActiveSymbolsFunc(ctx)
	}
	return nil, nil
}

func TestSymbolHandler_ListSymbols(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockFunc       func(ctx context.Context) ([]entity.Symbol, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: only code and name are exposed",
			mockFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{ID: 1, Code: "^N225", Name: "日経平均株価", Market: "INDEX", IsActive: true, SortKey: 1},
					{ID: 2, Code: "7203.T", Name: "トヨタ自動車", Market: "TSE", IsActive: true, SortKey: 10},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"code":"^N225","name":"日経平均株価"},{"code":"7203.T","name":"トヨタ自動車"}]`,
		},
		{
			name: "success: empty list",
			mockFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "error: usecase failure",
			mockFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("database connection failed")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database connection failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSymbolHandler(&mockSymbolUsecase{ListActiveSymbolsFunc: tt.mockFunc})

			router := gin.New()
			router.GET("/api/symbols", h.ListSymbols)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/symbols", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
