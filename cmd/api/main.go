package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eduniti/ai-engine/internal/catalog"
	"github.com/eduniti/ai-engine/internal/config"
	"github.com/eduniti/ai-engine/internal/handlers"
	"github.com/eduniti/ai-engine/internal/logger"
	"github.com/eduniti/ai-engine/internal/services"
)

func main() {
	// 1. Configuration (reads .env + environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	// 2. Logger
	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()

	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Static catalog, built once and shared read-only
	cat := catalog.New()

	// 4. Core services
	analyzer := services.NewInterestAnalyzer()
	engine := services.NewRecommendationEngine(cat, analyzer, zlog)

	// 5. Handlers & router
	handler := handlers.NewRecommendationHandler(engine, analyzer, cat, zlog)
	r := handlers.NewRouter(cfg, handler, zlog)

	zlog.Info("server starting",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("service", handlers.ServiceName),
		zap.String("version", handlers.ServiceVersion),
	)
	if err := r.Run(cfg.Server.Addr()); err != nil {
		zlog.Fatal("server failed to start", zap.Error(err))
	}
}
