// Package usecase はニュース取得のビジネスロジックを実装します。
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrNewsNotConfigured はAPIキーが設定されていない場合に返されます。
	ErrNewsNotConfigured = errors.New("NEWS_API_KEY is not configured on the server.")
)

// ProviderError は上流がレスポンスボディで status "error" を返したことを表します。
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("news api error (%s): %s", e.Code, e.Message)
}
