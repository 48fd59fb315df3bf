package handlers

import (
	"net/http"

	"github.com/clarity-app/backend/internal/logger"
	"github.com/clarity-app/backend/internal/models"
	"github.com/clarity-app/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// InsightsHandler handles insight-related HTTP requests
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// RunInsights triggers one analysis run for a user
// POST /api/v1/insights/run
func (h *InsightsHandler) RunInsights(c *gin.Context) {
	var req models.RunInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	ctx := c.Request.Context()

	result, err := h.insightsService.RunInsights(ctx, req.UserID)
	if err != nil {
		logger.Ctx(ctx).Error("failed to run insights",
			logger.Err(err), logger.String("user_id", req.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetInsights returns the stored insights for a user in priority order
// GET /api/v1/insights?user_id=...
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	insights, err := h.insightsService.GetInsights(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get insights",
			logger.Err(err), logger.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
