package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"kabu_app/internal/feature/symbollist/adapters"
	"kabu_app/internal/platform/cache"
)

// NewSymbolRepository はGORMリポジトリをRedisキャッシュでラップして返します。
// rdbがnilの場合、デコレータはキャッシュを使わずDBを直接参照します。
func NewSymbolRepository(db *gorm.DB, rdb *redis.Client) *cache.CachingSymbolRepository {
	return cache.NewCachingSymbolRepository(rdb, adapters.NewSymbolRepository(db), "symbols", cache.TimeUntilNext8AM)
}
