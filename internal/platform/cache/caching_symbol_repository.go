// Package cache はリポジトリインターフェースに対するRedisキャッシュ実装を提供します。
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"kabu_app/internal/feature/symbollist/domain/entity"
	"kabu_app/internal/feature/symbollist/usecase"
)

// CachingSymbolRepository はSymbolRepositoryにRedisキャッシュを追加するデコレータです。
// rdbがnilの場合はキャッシュを使わず内部リポジトリをそのまま呼び出します。
type CachingSymbolRepository struct {
	inner     usecase.SymbolRepository
	rdb       *redis.Client
	namespace string
	ttl       func() time.Duration
}

var _ usecase.SymbolRepository = (*CachingSymbolRepository)(nil)

// NewCachingSymbolRepository はSymbolRepositoryをRedisキャッシュでラップします。
// ttlがnilの場合は次の午前8時（日本時間）まで、namespaceが空の場合は "symbols" を使います。
func NewCachingSymbolRepository(rdb *redis.Client, inner usecase.SymbolRepository, namespace string, ttl func() time.Duration) *CachingSymbolRepository {
	if ttl == nil {
		ttl = TimeUntilNext8AM
	}
	if namespace == "" {
		namespace = "symbols"
	}
	return &CachingSymbolRepository{
		inner:     inner,
		rdb:       rdb,
		namespace: namespace,
		ttl:       ttl,
	}
}

// ListActive はキャッシュを確認し、無ければDBから取得してキャッシュします。
func (c *CachingSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if c.rdb == nil {
		return c.inner.ListActive(ctx)
	}

	key := c.cacheKey("active")

	// 1) キャッシュ確認
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Symbol
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 壊れたエントリは削除
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("redis get failed", "key", key, "error", err)
	}

	// 2) DBから取得
	out, err := c.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	// 3) キャッシュに保存（ベストエフォート）
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl()).Err(); err != nil {
			slog.Warn("redis set failed", "key", key, "error", err)
		}
	}
	return out, nil
}

// Invalidate はこのデコレータが保存したキャッシュを削除します。
func (c *CachingSymbolRepository) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.cacheKey("active")).Err()
}

func (c *CachingSymbolRepository) cacheKey(parts ...string) string {
	for i, p := range parts {
		parts[i] = safe(p)
	}
	return c.namespace + ":" + strings.Join(parts, ":")
}

// safe はRedisキーで問題になる文字を置き換えます。
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
