// Package handler はnewsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kabu_app/internal/api"
	"kabu_app/internal/feature/news/domain/entity"
)

// NewsUsecase はニュース取得のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type NewsUsecase interface {
	GetTopBusinessNews(ctx context.Context) ([]entity.Article, error)
}

// NewsHandler はニュースのHTTPリクエストを処理します。
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler は新しい NewsHandler を作成します。
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// GetNews は日本のビジネスニュースのトップ記事をJSON配列で返します。
// 設定不備の場合のみ500を返します。
func (h *NewsHandler) GetNews(c *gin.Context) {
	articles, err := h.uc.GetTopBusinessNews(c.Request.Context())
	if err != nil {
		slog.Error("failed to get news", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]api.NewsArticle, 0, len(articles))
	for _, a := range articles {
		item := api.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			Url:         a.URL,
			Author:      a.Author,
			UrlToImage:  a.URLToImage,
			PublishedAt: a.PublishedAt,
			Content:     a.Content,
		}
		if a.Source != nil {
			item.Source = &api.NewsSource{Id: a.Source.ID, Name: a.Source.Name}
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, out)
}
