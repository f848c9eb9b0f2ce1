package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/eduniti/ai-engine/internal/config"
	"github.com/eduniti/ai-engine/internal/middleware"
)

// NewRouter builds the gin engine with middleware and all routes wired to
// the handler. Paths are unversioned, matching the service's public API.
func NewRouter(cfg *config.Config, h *RecommendationHandler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowAllOrigins {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/", h.Root)
	r.GET("/health", h.HealthCheck)
	r.POST("/recommendations", h.GetRecommendations)
	r.GET("/career-pathways", h.GetCareerPathways)
	r.GET("/colleges", h.GetColleges)
	r.POST("/analyze-interests", h.AnalyzeInterests)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
