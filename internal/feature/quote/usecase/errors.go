// Package usecase は株価・企業情報取得のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrSymbolNotFound は銘柄が上流で認識されない、または取引データが空の場合に返されます。
	ErrSymbolNotFound = errors.New("symbol not found")
)

// UpstreamError はマーケットデータ提供元での障害（通信失敗、不正なレスポンス、レート制限など）を表します。
// Error() は元のエラーメッセージをそのまま返します。
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }
