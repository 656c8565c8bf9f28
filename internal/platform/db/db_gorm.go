// Package db はGORMによるデータベース接続を提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DriverSQLite はローカル開発用のファイルDBです。
	DriverSQLite = "sqlite"
	// DriverPostgres は本番用のPostgreSQLです。
	DriverPostgres = "postgres"

	// DefaultSQLitePath はDB_PATH未指定時のSQLiteファイルです。
	DefaultSQLitePath = "kabu_app.db"

	retryInterval = 3 * time.Second
)

// Config はデータベース接続の設定です。
type Config struct {
	Driver         string        // sqlite | postgres
	DatabaseURL    string        // postgres用の接続文字列
	Path           string        // sqlite用のファイルパス
	RunMigrations  bool          // 起動時にテーブル作成と初期データ投入を行うか
	ConnectTimeout time.Duration // 接続リトライを諦めるまでの時間
}

// Opener はDSNからDB接続を開く関数です。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
// RUN_MIGRATIONS は "false" の場合のみ無効になります。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:         strings.ToLower(os.Getenv("DB_DRIVER")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Path:           os.Getenv("DB_PATH"),
		RunMigrations:  os.Getenv("RUN_MIGRATIONS") != "false",
		ConnectTimeout: 60 * time.Second,
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLite
	}
	if cfg.Path == "" {
		cfg.Path = DefaultSQLitePath
	}
	return cfg
}

// BuildDSN はドライバーに応じた接続文字列を返します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverPostgres {
		return cfg.DatabaseURL
	}
	return cfg.Path
}

// OpenerFor はドライバー名に対応するOpenerを返します。
func OpenerFor(driver string) (Opener, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	switch driver {
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), gcfg) }, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(postgres.Open(dsn), gcfg) }, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// ConnectWithRetry は接続に成功するかtimeoutを超えるまで接続を繰り返します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "interval", retryInterval)
		time.Sleep(retryInterval)
	}
}

// OpenDB は設定に従ってDBに接続します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	open, err := OpenerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	dsn := BuildDSN(cfg)
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for driver %q", cfg.Driver)
	}
	db, err := ConnectWithRetry(dsn, cfg.ConnectTimeout, open)
	if err != nil {
		return nil, err
	}
	slog.Info("DB connection successful", "driver", cfg.Driver)
	return db, nil
}
