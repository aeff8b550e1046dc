package main

// @title Cities in Motion API
// @version 1.0.0
// @description Сервис данных дашборда доступности такси в Сингапуре. Загружает годовые CSV с количеством такси по регионам и GeoJSON с границами регионов один раз при старте и отдает выборки по дате, периоду и сравнение двух дат для хороплет.
// @description
// @description Основные возможности:
// @description - Снимки количества такси за календарный день или период
// @description - Геометрия регионов в GeoJSON
// @description - Сравнение базовой даты и даты анализа со сводкой по острову
// @description - Значения по умолчанию для элементов управления дашборда

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/cities-in-motion/docs"
	"github.com/cities-in-motion/internal/config"
	"github.com/cities-in-motion/internal/dataset"
	httpDelivery "github.com/cities-in-motion/internal/delivery/http"
	"github.com/cities-in-motion/internal/delivery/http/handler"
	"github.com/cities-in-motion/internal/domain"
	"github.com/cities-in-motion/internal/domain/repository"
	"github.com/cities-in-motion/internal/pkg/logger"
	"github.com/cities-in-motion/internal/repository/cache"
	"github.com/cities-in-motion/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Cities in Motion")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_dir", cfg.Data.Dir),
	)

	// 3. Load dataset before accepting requests
	ds, err := dataset.Load(&cfg.Data, log)
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		var loadErr *domain.DataLoadError
		if errors.As(err, &loadErr) {
			fields = append(fields, zap.String("path", loadErr.Path), zap.Int("line", loadErr.Line))
		}
		log.Fatal("Failed to load dataset", fields...)
	}

	// 4. Comparison cache
	var cacheRepo repository.CacheRepository = cache.NewNoopRepository()
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		log.Info("Redis disabled, comparison cache is off")
	}

	// 5. Initialize Use Cases
	countsUC := usecase.NewCountsUseCase(ds.TaxiCounts, log)
	regionUC := usecase.NewRegionUseCase(ds.Regions, log)
	comparisonUC := usecase.NewComparisonUseCase(
		ds.TaxiCounts,
		ds.Regions,
		cacheRepo,
		log,
		cfg.Cache.ComparisonCacheTTL,
	)
	dashboardUC := usecase.NewDashboardUseCase(ds.TaxiCounts, ds.Regions, ds, &cfg.Dashboard, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	countsHandler := handler.NewCountsHandler(countsUC, log)
	regionHandler := handler.NewRegionHandler(regionUC, log)
	comparisonHandler := handler.NewComparisonHandler(comparisonUC, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		countsHandler,
		regionHandler,
		comparisonHandler,
		dashboardHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
