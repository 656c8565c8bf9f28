// Package dto はYahoo Finance chart APIレスポンスのデータ転送オブジェクトを定義します。
package dto

// ChartResponse は /v8/finance/chart/{symbol} のJSONレスポンスを表します。
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *ChartError   `json:"error"`
	} `json:"chart"`
}

// ChartError は上流が返すエラーオブジェクトです（例: code "Not Found"）。
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResult は1銘柄分の結果です。
type ChartResult struct {
	Meta       map[string]any `json:"meta"`
	Timestamp  []int64        `json:"timestamp"`
	Events     *Events        `json:"events,omitempty"`
	Indicators Indicators     `json:"indicators"`
}

// Events は配当・分割イベントをUNIX秒の文字列キーで保持します。
type Events struct {
	Dividends map[string]Dividend `json:"dividends"`
	Splits    map[string]Split    `json:"splits"`
}

// Dividend は1回分の配当です。
type Dividend struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

// Split は1回分の株式分割です。
type Split struct {
	Date        int64   `json:"date"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	SplitRatio  string  `json:"splitRatio"`
}

// Indicators は価格系列です。値が欠けている日はnullになります。
type Indicators struct {
	Quote    []QuoteIndicator    `json:"quote"`
	AdjClose []AdjCloseIndicator `json:"adjclose"`
}

// QuoteIndicator はOHLCVの各系列です。
type QuoteIndicator struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// AdjCloseIndicator は調整後終値の系列です。
type AdjCloseIndicator struct {
	AdjClose []*float64 `json:"adjclose"`
}
