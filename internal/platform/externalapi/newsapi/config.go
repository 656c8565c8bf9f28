// Package newsapi はNewsAPI (newsapi.org) のトップ記事APIクライアントを提供します。
package newsapi

import (
	"errors"
	"os"
	"time"
)

const (
	// DefaultBaseURL はNewsAPIのホストです。
	DefaultBaseURL = "https://newsapi.org"
	// Country は取得するニュースの対象国です。
	Country = "jp"
	// Category は取得するニュースのカテゴリです。
	Category = "business"
)

// ErrAPIKeyMissing はNEWS_API_KEYが設定されていない場合に返されます。
var ErrAPIKeyMissing = errors.New("NEWS_API_KEY is not set")

// Config はNewsAPIクライアントの設定を保持します。
type Config struct {
	APIKey   string        // NEWS_API_KEY
	BaseURL  string        // API base URL (e.g., "https://newsapi.org")
	Country  string        // 対象国 (jp)
	Category string        // カテゴリ (business)
	Timeout  time.Duration // HTTP request timeout
}

// LoadConfig は環境変数からNewsAPIの設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		APIKey:   os.Getenv("NEWS_API_KEY"),
		BaseURL:  os.Getenv("NEWS_API_BASE_URL"),
		Country:  Country,
		Category: Category,
		Timeout:  10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg
}

// Validate は必須の設定が揃っているかを検証します。
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyMissing
	}
	return nil
}
