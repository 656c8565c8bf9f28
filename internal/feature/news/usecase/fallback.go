package usecase

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"kabu_app/internal/feature/news/domain/entity"
)

//go:embed fallback_articles.yaml
var fallbackArticlesYAML []byte

// fallbackArticles は埋め込まれたサンプル記事です。起動時に一度だけ読み込みます。
var fallbackArticles = mustLoadFallback(fallbackArticlesYAML)

func mustLoadFallback(b []byte) []entity.Article {
	articles, err := loadFallback(b)
	if err != nil {
		panic(err)
	}
	return articles
}

func loadFallback(b []byte) ([]entity.Article, error) {
	var articles []entity.Article
	if err := yaml.Unmarshal(b, &articles); err != nil {
		return nil, fmt.Errorf("parse fallback articles: %w", err)
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("parse fallback articles: empty list")
	}
	return articles, nil
}

// FallbackArticles はサンプル記事のコピーを返します。
func FallbackArticles() []entity.Article {
	out := make([]entity.Article, len(fallbackArticles))
	copy(out, fallbackArticles)
	return out
}
