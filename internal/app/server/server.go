// Package server はHTTPサーバーの起動とグレースフルシャットダウンを提供します。
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config はHTTPサーバーの設定です。
type Config struct {
	Port            string        // 待ち受けポート
	AllowedOrigins  []string      // CORSで許可するオリジン
	ShutdownTimeout time.Duration // シャットダウン時に処理中のリクエストを待つ時間
}

// LoadConfig は環境変数からサーバー設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		Port:            os.Getenv("PORT"),
		ShutdownTimeout: 10 * time.Second,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ShutdownTimeout = d
		} else {
			slog.Warn("invalid SHUTDOWN_TIMEOUT, using default", "value", v, "default", cfg.ShutdownTimeout)
		}
	}
	return cfg
}

// Run はポートで待ち受け、ctxがキャンセルされるまでリクエストを処理します。
func Run(ctx context.Context, cfg Config, h http.Handler) error {
	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	return Serve(ctx, ln, h, cfg.ShutdownTimeout)
}

// Serve はlnでリクエストを処理し、ctxのキャンセル後に処理中のリクエストを待って終了します。
func Serve(ctx context.Context, ln net.Listener, h http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server listening", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
