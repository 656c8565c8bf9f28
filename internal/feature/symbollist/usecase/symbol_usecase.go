// Package usecase はダッシュボードの銘柄一覧に関するビジネスロジックを実装します。
package usecase

import (
	"context"

	"kabu_app/internal/feature/symbollist/domain/entity"
)

// SymbolRepository は銘柄一覧の永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolUsecase は銘柄一覧のユースケースを提供します。
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase はSymbolUsecaseの新しいインスタンスを生成します。
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols は有効な銘柄を表示順に返します。該当なしの場合は空スライスを返します。
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	symbols, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if symbols == nil {
		symbols = []entity.Symbol{}
	}
	return symbols, nil
}
