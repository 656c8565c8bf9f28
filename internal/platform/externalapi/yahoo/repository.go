package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
	_ "time/tzdata" // 取引所タイムゾーンの解決をOSのzoneinfoに依存させない

	"kabu_app/internal/feature/quote/domain/entity"
	"kabu_app/internal/feature/quote/usecase"
	"kabu_app/internal/platform/externalapi/yahoo/dto"
)

// notFoundCode はchart APIが未知の銘柄に対して返すエラーコードです。
const notFoundCode = "Not Found"

// YahooMarket はYahoo Finance chart APIから株価データを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetCompanyInfo はchart APIのmetaから企業情報を取得します。
// longName/shortName以外のフィールドはAttributesにそのまま格納します。
func (y *YahooMarket) GetCompanyInfo(ctx context.Context, symbol string) (entity.CompanyInfo, error) {
	r, err := y.fetchChart(ctx, symbol, "1d", "1d", false)
	if err != nil {
		return entity.CompanyInfo{}, err
	}
	if r == nil {
		return entity.CompanyInfo{}, nil
	}

	info := entity.CompanyInfo{Attributes: make(map[string]any, len(r.Meta))}
	for k, v := range r.Meta {
		switch k {
		case "longName":
			info.LongName, _ = v.(string)
		case "shortName":
			info.ShortName, _ = v.(string)
		default:
			info.Attributes[k] = v
		}
	}
	return info, nil
}

// GetHistory は指定期間・間隔の価格履歴を取得し、古い順のQuoteRecordとして返します。
// 価格は調整後終値に合わせて調整済みです。
func (y *YahooMarket) GetHistory(ctx context.Context, symbol, period, interval string) ([]entity.QuoteRecord, error) {
	r, err := y.fetchChart(ctx, symbol, period, interval, true)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return []entity.QuoteRecord{}, nil
	}
	return toQuoteRecords(r), nil
}

// fetchChart はchart APIを1回呼び出し、最初の結果を返します。結果が無い場合はnilを返します。
func (y *YahooMarket) fetchChart(ctx context.Context, symbol, period, interval string, withEvents bool) (*dto.ChartResult, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("range", period)
	q.Set("interval", interval)
	q.Set("includePrePost", "false")
	if withEvents {
		q.Set("events", "div,splits")
	}

	// URLを生成
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// エラー時もJSONが返るため、ステータスより先にデコードを試みる
	var body dto.ChartResponse
	decodeErr := json.NewDecoder(res.Body).Decode(&body)
	if decodeErr == nil && body.Chart.Error != nil {
		if body.Chart.Error.Code == notFoundCode {
			return nil, fmt.Errorf("%w: %s", usecase.ErrSymbolNotFound, body.Chart.Error.Description)
		}
		return nil, fmt.Errorf("yahoo: %s", body.Chart.Error.Description)
	}
	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: yahoo http %d", usecase.ErrSymbolNotFound, res.StatusCode)
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("yahoo: decode chart: %w", decodeErr)
	}

	if len(body.Chart.Result) == 0 {
		return nil, nil
	}
	return &body.Chart.Result[0], nil
}

// toQuoteRecords は列指向の系列を日付ごとの行に変換します。
// 価格が一つも無い行は除外します。
func toQuoteRecords(r *dto.ChartResult) []entity.QuoteRecord {
	if len(r.Timestamp) == 0 || len(r.Indicators.Quote) == 0 {
		return []entity.QuoteRecord{}
	}

	loc := exchangeLocation(r.Meta)
	q := r.Indicators.Quote[0]
	var adj []*float64
	if len(r.Indicators.AdjClose) > 0 {
		adj = r.Indicators.AdjClose[0].AdjClose
	}
	dividends, splits := eventsByDay(r.Events, loc)

	out := make([]entity.QuoteRecord, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		o, h, l, c := floatAt(q.Open, i), floatAt(q.High, i), floatAt(q.Low, i), floatAt(q.Close, i)
		if o == nil && h == nil && l == nil && c == nil {
			continue
		}

		// 調整後終値との比率で始値・高値・安値も調整する
		if a := floatAt(adj, i); a != nil && c != nil && *c != 0 {
			ratio := *a / *c
			o, h, l = scale(o, ratio), scale(h, ratio), scale(l, ratio)
			c = a
		}

		day := startOfDay(time.Unix(ts, 0).In(loc))
		key := day.Format(time.DateOnly)
		out = append(out, entity.QuoteRecord{
			Date:        day,
			Open:        o,
			High:        h,
			Low:         l,
			Close:       c,
			Volume:      intAt(q.Volume, i),
			Dividends:   dividends[key],
			StockSplits: splits[key],
		})
	}
	return out
}

// exchangeLocation はmetaのタイムゾーン名を解決します。解決できない場合はgmtoffsetを使います。
func exchangeLocation(meta map[string]any) *time.Location {
	name, _ := meta["exchangeTimezoneName"].(string)
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	offset, _ := meta["gmtoffset"].(float64)
	if name == "" {
		name = "UTC"
	}
	return time.FixedZone(name, int(offset))
}

// eventsByDay は配当と分割を取引所ローカルの日付キーで引けるようにします。
func eventsByDay(ev *dto.Events, loc *time.Location) (map[string]float64, map[string]float64) {
	dividends := map[string]float64{}
	splits := map[string]float64{}
	if ev == nil {
		return dividends, splits
	}
	for _, d := range ev.Dividends {
		dividends[time.Unix(d.Date, 0).In(loc).Format(time.DateOnly)] += d.Amount
	}
	for _, s := range ev.Splits {
		if s.Denominator == 0 {
			continue
		}
		splits[time.Unix(s.Date, 0).In(loc).Format(time.DateOnly)] = s.Numerator / s.Denominator
	}
	return dividends, splits
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func floatAt(s []*float64, i int) *float64 {
	if i >= len(s) || s[i] == nil {
		return nil
	}
	v := *s[i]
	return &v
}

func intAt(s []*int64, i int) *int64 {
	if i >= len(s) || s[i] == nil {
		return nil
	}
	v := *s[i]
	return &v
}

func scale(p *float64, ratio float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p * ratio
	return &v
}
