// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kabu_app/internal/feature/symbollist/domain/entity"
	"kabu_app/internal/feature/symbollist/usecase"
)

// DefaultSymbols はマイグレーション時に投入するダッシュボードの初期銘柄です。
var DefaultSymbols = []entity.Symbol{
	{Code: "^N225", Name: "日経平均株価", Market: "INDEX", IsActive: true, SortKey: 1},
	{Code: "7203.T", Name: "トヨタ自動車", Market: "TSE", IsActive: true, SortKey: 10},
	{Code: "6758.T", Name: "ソニーグループ", Market: "TSE", IsActive: true, SortKey: 20},
	{Code: "9984.T", Name: "ソフトバンクグループ", Market: "TSE", IsActive: true, SortKey: 30},
	{Code: "8306.T", Name: "三菱UFJフィナンシャル・グループ", Market: "TSE", IsActive: true, SortKey: 40},
	{Code: "6861.T", Name: "キーエンス", Market: "TSE", IsActive: true, SortKey: 50},
}

// symbolGorm はSymbolRepositoryインターフェースのGORM実装です。
type symbolGorm struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolGorm)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolGormリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

// ListActive はsort_key順にすべてのアクティブな銘柄を返します。
func (r *symbolGorm) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&symbols).Error; err != nil {
		return nil, fmt.Errorf("list active symbols: %w", err)
	}
	return symbols, nil
}

// Migrate はsymbolsテーブルを作成し、初期銘柄を投入します。
// 既に存在するコードは上書きしません。
func Migrate(ctx context.Context, db *gorm.DB, seed []entity.Symbol) error {
	if err := db.WithContext(ctx).AutoMigrate(&entity.Symbol{}); err != nil {
		return fmt.Errorf("migrate symbols: %w", err)
	}
	if len(seed) == 0 {
		return nil
	}
	rows := make([]entity.Symbol, len(seed))
	copy(rows, seed)
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&rows).Error; err != nil {
		return fmt.Errorf("seed symbols: %w", err)
	}
	return nil
}
