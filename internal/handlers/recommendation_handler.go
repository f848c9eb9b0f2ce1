package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eduniti/ai-engine/internal/catalog"
	"github.com/eduniti/ai-engine/internal/dtos"
	"github.com/eduniti/ai-engine/internal/middleware"
	"github.com/eduniti/ai-engine/internal/services"
)

const (
	ServiceName    = "EduNiti AI Recommendation Engine"
	ServiceVersion = "1.0.0"
)

// RecommendationHandler exposes the engine and catalog over HTTP.
type RecommendationHandler struct {
	Engine   *services.RecommendationEngine
	Analyzer *services.InterestAnalyzer
	Catalog  *catalog.Catalog
	Logger   *zap.Logger
}

// NewRecommendationHandler creates the handler with dependencies.
func NewRecommendationHandler(engine *services.RecommendationEngine, analyzer *services.InterestAnalyzer, cat *catalog.Catalog, log *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		Engine:   engine,
		Analyzer: analyzer,
		Catalog:  cat,
		Logger:   log,
	}
}

// Root is the GET / endpoint.
func (h *RecommendationHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": ServiceName,
		"version": ServiceVersion,
	})
}

// HealthCheck is the GET /health endpoint.
func (h *RecommendationHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}

// GetRecommendations is the POST /recommendations endpoint.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req dtos.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	resp, err := h.Engine.Recommend(req.ToModel())
	if err != nil {
		if errors.Is(err, services.ErrInvalidRecommendationType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recommendation type"})
			return
		}
		h.Logger.Error("recommendation failed",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCareerPathways is the GET /career-pathways endpoint. It returns the
// full static catalog.
func (h *RecommendationHandler) GetCareerPathways(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.CareerPathwaysResponse{
		CareerPathways: h.Catalog.CareerPathways(),
	})
}

// GetColleges is the GET /colleges endpoint.
func (h *RecommendationHandler) GetColleges(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.CollegesResponse{
		Colleges: h.Catalog.Colleges(),
	})
}

// AnalyzeInterests is the POST /analyze-interests endpoint. The body is a
// bare JSON array of interest strings.
func (h *RecommendationHandler) AnalyzeInterests(c *gin.Context) {
	var interests []string
	if err := c.ShouldBindJSON(&interests); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dtos.InterestScoresResponse{
		InterestScores: h.Analyzer.AnalyzeInterests(interests),
	})
}
