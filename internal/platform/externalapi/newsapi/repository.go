package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"kabu_app/internal/feature/news/domain/entity"
	"kabu_app/internal/feature/news/usecase"
	"kabu_app/internal/platform/externalapi/newsapi/dto"
)

const statusError = "error"

// NewsAPIClient はNewsAPIからトップ記事を取得するNewsProvider実装です。
type NewsAPIClient struct {
	cfg    Config
	client *http.Client
}

// NewsAPIClientがNewsProviderを実装していることをコンパイル時に検証します。
var _ usecase.NewsProvider = (*NewsAPIClient)(nil)

// NewNewsAPIClient は指定された設定とHTTPクライアントでNewsAPIClientを生成します。
func NewNewsAPIClient(cfg Config, client *http.Client) *NewsAPIClient {
	return &NewsAPIClient{cfg: cfg, client: client}
}

// TopHeadlines は /v2/top-headlines を1回呼び出します。
// 上流がstatus "error"を返した場合は *usecase.ProviderError を返します。
func (n *NewsAPIClient) TopHeadlines(ctx context.Context, hq usecase.HeadlineQuery) ([]entity.Article, error) {
	q := url.Values{}
	q.Set("country", hq.Country)
	q.Set("category", hq.Category)
	q.Set("apiKey", hq.APIKey)

	u := fmt.Sprintf("%s/v2/top-headlines?%s", n.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// 4xxでもエラー内容はJSONで返る
	var body dto.TopHeadlinesResponse
	decodeErr := json.NewDecoder(res.Body).Decode(&body)
	if decodeErr == nil && body.Status == statusError {
		return nil, &usecase.ProviderError{Code: body.Code, Message: body.Message}
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("newsapi http %d", res.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("newsapi: decode response: %w", decodeErr)
	}

	out := make([]entity.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		out = append(out, toArticle(a))
	}
	return out, nil
}

func toArticle(a dto.Article) entity.Article {
	article := entity.Article{
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		Author:      a.Author,
		URLToImage:  a.URLToImage,
		Content:     a.Content,
	}
	if a.Source != nil {
		article.Source = &entity.Source{ID: a.Source.ID, Name: a.Source.Name}
	}
	if a.PublishedAt != nil {
		if t, err := time.Parse(time.RFC3339, *a.PublishedAt); err == nil {
			article.PublishedAt = &t
		} else {
			slog.Debug("unparsable publishedAt", "value", *a.PublishedAt)
		}
	}
	return article
}
