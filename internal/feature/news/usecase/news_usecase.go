package usecase

import (
	"context"
	"errors"
	"log/slog"

	"kabu_app/internal/feature/news/domain/entity"
)

const (
	// DefaultCountry は取得するニュースの対象国です。
	DefaultCountry = "jp"
	// DefaultCategory は取得するニュースのカテゴリです。
	DefaultCategory = "business"

	// TitleProviderError は上流がエラーを返した場合のお知らせ記事のタイトルです。
	TitleProviderError = "ニュースAPIからエラーが返されました"
	// TitleConnectionError は上流に接続できなかった場合のお知らせ記事のタイトルです。
	TitleConnectionError = "ニュースの取得に失敗しました（接続エラー）"
)

// HeadlineQuery はトップ記事の取得条件です。
type HeadlineQuery struct {
	APIKey   string
	Country  string
	Category string
}

// NewsProvider は外部のニュース提供元を抽象化します。
//
//go:generate go tool mockgen -source=news_usecase.go -destination=mocks/mock_news_provider.go -package=mocks
type NewsProvider interface {
	// TopHeadlines はトップ記事を取得します。上流がstatus "error"を返した場合は *ProviderError を返します。
	TopHeadlines(ctx context.Context, q HeadlineQuery) ([]entity.Article, error)
}

// Config はNewsUsecaseの設定です。
type Config struct {
	APIKey   string
	Country  string
	Category string
}

// NewsUsecase はビジネスニュース取得のユースケースを提供します。
type NewsUsecase struct {
	provider NewsProvider
	cfg      Config
}

// NewNewsUsecase はNewsUsecaseの新しいインスタンスを生成します。
// CountryとCategoryが空の場合は jp / business を使います。
func NewNewsUsecase(provider NewsProvider, cfg Config) *NewsUsecase {
	if cfg.Country == "" {
		cfg.Country = DefaultCountry
	}
	if cfg.Category == "" {
		cfg.Category = DefaultCategory
	}
	return &NewsUsecase{provider: provider, cfg: cfg}
}

// GetTopBusinessNews はビジネスニュースのトップ記事を返します。
// APIキー未設定の場合のみ ErrNewsNotConfigured を返し、それ以外は必ず1件以上の記事を返します。
//   - 上流のエラー: エラー内容を説明に含むお知らせ記事1件
//   - 通信失敗・タイムアウト・不正なJSON: 接続エラーのお知らせ記事1件
//   - 0件: サンプル記事
func (u *NewsUsecase) GetTopBusinessNews(ctx context.Context) ([]entity.Article, error) {
	if u.cfg.APIKey == "" {
		return nil, ErrNewsNotConfigured
	}

	articles, err := u.provider.TopHeadlines(ctx, HeadlineQuery{
		APIKey:   u.cfg.APIKey,
		Country:  u.cfg.Country,
		Category: u.cfg.Category,
	})
	if err != nil {
		var pe *ProviderError
		if errors.As(err, &pe) {
			slog.Warn("news provider returned error", "code", pe.Code, "message", pe.Message)
			return []entity.Article{noticeArticle(TitleProviderError, pe.Message)}, nil
		}
		slog.Warn("failed to fetch news", "error", err)
		return []entity.Article{noticeArticle(TitleConnectionError, err.Error())}, nil
	}

	if len(articles) == 0 {
		slog.Info("no news articles returned, using fallback")
		return FallbackArticles(), nil
	}
	return articles, nil
}

func noticeArticle(title, description string) entity.Article {
	return entity.Article{
		Title:       title,
		Description: &description,
		URL:         "#",
	}
}
