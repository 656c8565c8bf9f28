package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kabu_app/internal/feature/symbollist/adapters"
	"kabu_app/internal/platform/externalapi/newsapi"
)

func TestNewMarket(t *testing.T) {
	t.Setenv("YAHOO_FINANCE_BASE_URL", "")
	assert.NotNil(t, NewMarket())
}

func TestNewNewsUsecase_MissingKey(t *testing.T) {
	t.Parallel()

	uc := NewNewsUsecase(newsapi.Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	_, err := uc.GetTopBusinessNews(context.Background())
	assert.EqualError(t, err, "NEWS_API_KEY is not configured on the server.")
}

func TestNewSymbolRepository_WithoutRedis(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, adapters.Migrate(context.Background(), db, adapters.DefaultSymbols))

	repo := NewSymbolRepository(db, nil)
	symbols, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, symbols, len(adapters.DefaultSymbols))
}
