package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kabu_app/internal/feature/symbollist/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to initialize test database")

	// :memory: は接続ごとに別DBになるため1接続に固定
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Symbol{}), "failed to migrate table")
	return db
}

// seedSymbol はテスト用の銘柄データをデータベースに作成します。
func seedSymbol(t *testing.T, db *gorm.DB, code, name string, sortKey int) *entity.Symbol {
	t.Helper()

	symbol := &entity.Symbol{Code: code, Name: name, Market: "TSE", IsActive: true, SortKey: sortKey}
	require.NoError(t, db.Create(symbol).Error, "failed to seed symbol")
	return symbol
}

// deactivate は銘柄を無効にします。
// default:true のカラムはINSERT時にfalseが無視されるため、作成後に更新します。
func deactivate(t *testing.T, db *gorm.DB, symbol *entity.Symbol) {
	t.Helper()
	require.NoError(t, db.Model(symbol).Update("is_active", false).Error)
}

func TestSymbolGorm_ListActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		setupFunc     func(t *testing.T, db *gorm.DB)
		expectedCodes []string
	}{
		{
			name: "success: sorted by sort_key",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "6758.T", "ソニーグループ", 2)
				seedSymbol(t, db, "7203.T", "トヨタ自動車", 1)
				seedSymbol(t, db, "9984.T", "ソフトバンクグループ", 3)
			},
			expectedCodes: []string{"7203.T", "6758.T", "9984.T"},
		},
		{
			name: "success: excludes inactive symbols",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "7203.T", "トヨタ自動車", 1)
				deactivate(t, db, seedSymbol(t, db, "6758.T", "ソニーグループ", 2))
				seedSymbol(t, db, "9984.T", "ソフトバンクグループ", 3)
			},
			expectedCodes: []string{"7203.T", "9984.T"},
		},
		{
			name:          "success: empty table",
			setupFunc:     func(t *testing.T, db *gorm.DB) {},
			expectedCodes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			tt.setupFunc(t, db)
			repo := NewSymbolRepository(db)

			symbols, err := repo.ListActive(context.Background())

			require.NoError(t, err)
			codes := make([]string, 0, len(symbols))
			for _, s := range symbols {
				codes = append(codes, s.Code)
			}
			assert.Equal(t, tt.expectedCodes, codes)
		})
	}
}

func TestSymbolGorm_ListActive_ClosedDB(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewSymbolRepository(db).ListActive(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list active symbols")
}

func TestMigrate(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, DefaultSymbols))

	symbols, err := NewSymbolRepository(db).ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, symbols, len(DefaultSymbols))
	assert.Equal(t, "^N225", symbols[0].Code)
	assert.Equal(t, "日経平均株価", symbols[0].Name)

	// 再実行しても重複せず、既存の行は上書きしない
	require.NoError(t, db.Model(&entity.Symbol{}).Where("code = ?", "7203.T").Update("name", "TOYOTA").Error)
	require.NoError(t, Migrate(ctx, db, DefaultSymbols))

	var count int64
	require.NoError(t, db.Model(&entity.Symbol{}).Count(&count).Error)
	assert.Equal(t, int64(len(DefaultSymbols)), count)

	var toyota entity.Symbol
	require.NoError(t, db.Where("code = ?", "7203.T").First(&toyota).Error)
	assert.Equal(t, "TOYOTA", toyota.Name)

	// DefaultSymbols自体は書き換えられない
	assert.Zero(t, DefaultSymbols[0].ID)
}

func TestMigrate_NoSeed(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	require.NoError(t, Migrate(context.Background(), db, nil))

	symbols, err := NewSymbolRepository(db).ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, symbols)
}
