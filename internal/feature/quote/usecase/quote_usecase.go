package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"kabu_app/internal/feature/quote/domain/entity"
)

const (
	// QuotePeriod は銘柄照会で取得する履歴の期間です。
	QuotePeriod = "1y"
	// DailyInterval は日足を表す時間間隔です。
	DailyInterval = "1d"
	// NikkeiSymbol は日経平均株価のシンボルです。
	NikkeiSymbol = "^N225"
	// NikkeiPeriod はダッシュボードのチャートで表示する期間です。
	NikkeiPeriod = "6mo"
	// NameUnavailable は企業名が取得できない場合の表示名です。
	NameUnavailable = "N/A"
)

// MarketRepository は外部のマーケットデータ提供元を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetCompanyInfo は銘柄のメタデータを取得します。
	GetCompanyInfo(ctx context.Context, symbol string) (entity.CompanyInfo, error)
	// GetHistory は指定期間・間隔の価格履歴を古い順に取得します。
	GetHistory(ctx context.Context, symbol, period, interval string) ([]entity.QuoteRecord, error)
}

// QuoteUsecase は銘柄照会のユースケースを提供します。
type QuoteUsecase struct {
	market MarketRepository
}

// NewQuoteUsecase はQuoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(market MarketRepository) *QuoteUsecase {
	return &QuoteUsecase{market: market}
}

// GetQuote は企業情報と1年分の日足を取得し、表示名を解決した結果を返します。
// 企業情報と履歴は並行して取得します。履歴が空の場合は ErrSymbolNotFound、
// それ以外の取得失敗は *UpstreamError を返します。
func (u *QuoteUsecase) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	var (
		info    entity.CompanyInfo
		history []entity.QuoteRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		info, err = u.market.GetCompanyInfo(gctx, symbol)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = u.market.GetHistory(gctx, symbol, QuotePeriod, DailyInterval)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, classify(err)
	}

	if len(history) == 0 {
		return nil, ErrSymbolNotFound
	}

	return &entity.Quote{
		Name:    ResolveName(info),
		History: history,
	}, nil
}

// GetHistory は指定期間の日足のみを取得します。空の場合は ErrSymbolNotFound を返します。
func (u *QuoteUsecase) GetHistory(ctx context.Context, symbol, period string) ([]entity.QuoteRecord, error) {
	history, err := u.market.GetHistory(ctx, symbol, period, DailyInterval)
	if err != nil {
		return nil, classify(err)
	}
	if len(history) == 0 {
		return nil, ErrSymbolNotFound
	}
	return history, nil
}

// ResolveName は正式名称、略称、"N/A" の順で表示名を決定します。
func ResolveName(info entity.CompanyInfo) string {
	if info.LongName != "" {
		return info.LongName
	}
	if info.ShortName != "" {
		return info.ShortName
	}
	return NameUnavailable
}

func classify(err error) error {
	if errors.Is(err, ErrSymbolNotFound) {
		return ErrSymbolNotFound
	}
	return &UpstreamError{Err: err}
}
