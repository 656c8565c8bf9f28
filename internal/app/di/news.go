package di

import (
	"kabu_app/internal/feature/news/usecase"
	"kabu_app/internal/platform/externalapi/newsapi"
	infrahttp "kabu_app/internal/platform/http"
)

// NewNewsUsecase はNewsAPIクライアントを組み込んだNewsUsecaseを生成します。
// APIキーの存在確認は呼び出し側（起動処理）で cfg.Validate() を使って行います。
func NewNewsUsecase(cfg newsapi.Config) *usecase.NewsUsecase {
	client := newsapi.NewNewsAPIClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout, ""))
	return usecase.NewNewsUsecase(client, usecase.Config{
		APIKey:   cfg.APIKey,
		Country:  cfg.Country,
		Category: cfg.Category,
	})
}
