package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/renova-inc/renova-engine/pkg/config"
	"github.com/renova-inc/renova-engine/pkg/database"
	"github.com/renova-inc/renova-engine/pkg/handlers"
	"github.com/renova-inc/renova-engine/pkg/logging"
	"github.com/renova-inc/renova-engine/pkg/middleware"
	"github.com/renova-inc/renova-engine/pkg/repositories"
	"github.com/renova-inc/renova-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load .env if present; real deployments set env vars directly
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(cfg.Log)
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("bind_addr", cfg.BindAddr),
		zap.String("port", cfg.Port),
		zap.String("database", cfg.Database.Host),
		zap.String("redis", cfg.Redis.Host))

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:             cfg.Database.URL(),
		MaxConnections:  cfg.Database.MaxConnections,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetimeMinutes) * time.Minute,
		ConnMaxIdleTime: time.Duration(cfg.Database.ConnMaxIdleMinutes) * time.Minute,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database.URL(), cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	rdb, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	// Repositories
	patternRepo := repositories.NewPatternRepository(db)
	tradeRepo := repositories.NewTradeRepository(db)
	mappingRepo := repositories.NewServiceMappingRepository(db)

	// Services
	if cfg.Seed {
		seedService := services.NewSeedService(tradeRepo, mappingRepo, logger)
		if err := seedService.Seed(ctx); err != nil {
			logger.Fatal("Failed to seed reference data", zap.Error(err))
		}
	}

	snapshotTTL := time.Duration(cfg.Resolver.SnapshotTTLSeconds) * time.Second
	patternService := services.NewPatternService(patternRepo, mappingRepo, rdb, snapshotTTL, logger)
	resolverService := services.NewResolverService(patternService, mappingRepo, logger)
	tradeService := services.NewTradeService(tradeRepo)

	// Handlers
	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(cfg, logger)
	healthHandler.RegisterRoutes(mux)

	patternsHandler := handlers.NewPatternsHandler(patternService, logger)
	patternsHandler.RegisterRoutes(mux)

	resolveHandler := handlers.NewResolveHandler(resolverService, logger)
	resolveHandler.RegisterRoutes(mux)

	tradesHandler := handlers.NewTradesHandler(tradeService, logger)
	tradesHandler.RegisterRoutes(mux)

	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.Addr()
	logger.Info("Starting renova-engine", zap.String("addr", addr), zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
