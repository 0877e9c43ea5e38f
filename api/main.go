package main

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/princesinghgemini-dotcom/veto/internal/auth"
	"github.com/princesinghgemini-dotcom/veto/internal/cache"
	"github.com/princesinghgemini-dotcom/veto/internal/config"
	"github.com/princesinghgemini-dotcom/veto/internal/db"
	vetohttp "github.com/princesinghgemini-dotcom/veto/internal/http"
	"github.com/princesinghgemini-dotcom/veto/internal/http/ban"
	"github.com/princesinghgemini-dotcom/veto/internal/http/handlers"
	rl "github.com/princesinghgemini-dotcom/veto/internal/http/rate_limiter"
	"github.com/princesinghgemini-dotcom/veto/internal/observability/logger"
	"github.com/princesinghgemini-dotcom/veto/internal/repo"
)

// @title Cattle Disease Commerce Admin API
// @version 1.0
// @description REST API for managing the product catalog, retailers and orders.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	logger.Init(logger.Config{
		Env:         cfg.Env,
		Level:       cfg.LogLevel,
		ServiceName: "veto-admin",
	})
	defer logger.Sync()
	log := logger.L()

	auth.SetSecret([]byte(cfg.JWTSecret))
	ban.SetMailConfig(ban.MailConfig{
		From:         cfg.AlertFrom,
		To:           cfg.AlertTo,
		Server:       cfg.SMTPServer,
		Port:         cfg.SMTPPort,
		User:         cfg.SMTPUser,
		Password:     cfg.SMTPPass,
		AuthDisabled: cfg.SMTPAuthDisabled,
	})

	go ban.StartDailyBanSummary(24 * time.Hour)
	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	defer database.Close()

	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetVariantRepo(repo.NewPostgresVariantRepository(database))
	handlers.SetRetailerRepo(repo.NewPostgresRetailerRepository(database))
	handlers.SetRetailerProductRepo(repo.NewPostgresRetailerProductRepository(database))
	handlers.SetOrderRepo(repo.NewPostgresOrderRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	if cfg.CacheDriver == "redis" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("could not connect to Redis", zap.Error(err))
		}
		defer rdb.Close()
		handlers.SetListCache(cache.NewRedis(rdb, ctx, cfg.CacheTTL))
	} else {
		handlers.SetListCache(cache.NewMemory(cfg.CacheTTL))
	}

	r := vetohttp.NewRouter()
	log.Info("server running", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
