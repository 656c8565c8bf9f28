// Package handler はquoteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kabu_app/internal/api"
	"kabu_app/internal/feature/quote/domain/entity"
	"kabu_app/internal/feature/quote/usecase"
)

// MsgSymbolNotFound は銘柄が見つからない場合のエラーメッセージです。
const MsgSymbolNotFound = "銘柄コードが見つかりません"

// QuoteUsecase は銘柄照会のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	GetHistory(ctx context.Context, symbol, period string) ([]entity.QuoteRecord, error)
}

// QuoteHandler は株価データのHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetStock は銘柄コードを受け取り、企業情報と1年分の日足をJSONで返します。
//
// エンドポイント例:
// GET /api/stock/7203.T
func (h *QuoteHandler) GetStock(c *gin.Context, tickerSymbol string) {
	q, err := h.uc.GetQuote(c.Request.Context(), tickerSymbol)
	if err != nil {
		h.writeError(c, tickerSymbol, err)
		return
	}

	c.JSON(http.StatusOK, api.QuoteResponse{
		Info:    api.CompanyInfo{Name: q.Name},
		History: toRecords(q.History),
	})
}

// GetNikkei は日経平均株価の過去6ヶ月分の日足を配列のまま返します。
//
// エンドポイント例:
// GET /api/nikkei
func (h *QuoteHandler) GetNikkei(c *gin.Context) {
	history, err := h.uc.GetHistory(c.Request.Context(), usecase.NikkeiSymbol, usecase.NikkeiPeriod)
	if err != nil {
		h.writeError(c, usecase.NikkeiSymbol, err)
		return
	}
	c.JSON(http.StatusOK, toRecords(history))
}

// writeError はusecaseのエラーをステータスコードに変換します。
func (h *QuoteHandler) writeError(c *gin.Context, symbol string, err error) {
	if errors.Is(err, usecase.ErrSymbolNotFound) {
		slog.Info("symbol not found", "symbol", symbol)
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: MsgSymbolNotFound})
		return
	}
	slog.Error("failed to fetch quote", "symbol", symbol, "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
}

// データをフォーマット
func toRecords(history []entity.QuoteRecord) []api.QuoteRecord {
	out := make([]api.QuoteRecord, 0, len(history))
	for _, x := range history {
		out = append(out, api.QuoteRecord{
			Date:        x.Date,
			Open:        x.Open,
			High:        x.High,
			Low:         x.Low,
			Close:       x.Close,
			Volume:      x.Volume,
			Dividends:   x.Dividends,
			StockSplits: x.StockSplits,
		})
	}
	return out
}
