package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"kabu_app/internal/app/di"
	"kabu_app/internal/app/router"
	"kabu_app/internal/app/server"
	newshandler "kabu_app/internal/feature/news/transport/handler"
	quotehandler "kabu_app/internal/feature/quote/transport/handler"
	quoteusecase "kabu_app/internal/feature/quote/usecase"
	symboladapters "kabu_app/internal/feature/symbollist/adapters"
	symbolhandler "kabu_app/internal/feature/symbollist/transport/handler"
	symbolusecase "kabu_app/internal/feature/symbollist/usecase"
	infradb "kabu_app/internal/platform/db"
	"kabu_app/internal/platform/externalapi/newsapi"
	healthhandler "kabu_app/internal/platform/http/handler"
	"kabu_app/internal/platform/logger"
	infraredis "kabu_app/internal/platform/redis"
)

func main() {
	// .env は任意
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	logger.Init(os.Getenv("LOG_LEVEL"))

	if err := run(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// NEWS_API_KEY は起動時に確認
	newsCfg := newsapi.LoadConfig()
	if err := newsCfg.Validate(); err != nil {
		return err
	}

	// db
	dbCfg := infradb.LoadConfigFromEnv()
	db, err := infradb.OpenDB(dbCfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close DB", "error", err)
		}
	}()
	if dbCfg.RunMigrations {
		if err := symboladapters.Migrate(ctx, db, symboladapters.DefaultSymbols); err != nil {
			return err
		}
	}

	// Redis
	var rdb *redisv9.Client
	if redisCfg := infraredis.LoadConfig(); !redisCfg.Enabled() {
		slog.Info("REDIS_HOST is not set. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	symbolRepo := di.NewSymbolRepository(db, rdb)
	if dbCfg.RunMigrations {
		// 初期データ投入後に古い一覧を残さない
		if err := symbolRepo.Invalidate(ctx); err != nil {
			slog.Warn("failed to invalidate symbol cache", "error", err)
		}
	}

	// Usecase
	quoteUC := quoteusecase.NewQuoteUsecase(di.NewMarket())
	newsUC := di.NewNewsUsecase(newsCfg)
	symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo)

	// Health
	checks := []healthhandler.Check{{Name: "db", Ping: sqlDB.PingContext}}
	if rdb != nil {
		checks = append(checks, healthhandler.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	// ルータ生成
	srvCfg := server.LoadConfig()
	r := router.NewRouter(router.Handlers{
		Quote:  quotehandler.NewQuoteHandler(quoteUC),
		News:   newshandler.NewNewsHandler(newsUC),
		Symbol: symbolhandler.NewSymbolHandler(symbolUC),
		Health: healthhandler.NewHealth(2*time.Second, checks...),
	}, srvCfg.AllowedOrigins)

	return server.Run(ctx, srvCfg, r)
}
