// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check は依存先1つ分の疎通確認です。
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// NewHealth は /healthz 用のハンドラーを返します。
// GETではすべてのCheckを実行し、1つでも失敗すれば503を返します。
// HEADは200、OPTIONSは204を返し、Checkは実行しません。
func NewHealth(timeout time.Duration, checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
			return
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
			return
		}

		if len(checks) == 0 {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		status, code := "ok", http.StatusOK
		results := make(map[string]string, len(checks))
		for _, ch := range checks {
			if err := ch.Ping(ctx); err != nil {
				slog.Warn("health check failed", "check", ch.Name, "error", err)
				results[ch.Name] = err.Error()
				status, code = "unavailable", http.StatusServiceUnavailable
				continue
			}
			results[ch.Name] = "ok"
		}
		c.JSON(code, gin.H{"status": status, "checks": results})
	}
}

// Health は依存先を確認しない /healthz ハンドラーです。
var Health = NewHealth(0)
