// Package di はアプリケーションのコンポーネントを組み立てるファクトリを提供します。
package di

import (
	"kabu_app/internal/platform/externalapi/yahoo"
	infrahttp "kabu_app/internal/platform/http"
)

// NewMarket はHTTPクライアント込みで設定済みのYahooMarketを生成します。
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout, cfg.UserAgent)
	return yahoo.NewYahooMarket(cfg, httpClient)
}
