package service

import (
	"context"

	"github.com/clarity-app/backend/internal/models"
)

// InsightsService defines the interface for the insight analysis pipeline
type InsightsService interface {
	// RunInsights analyzes the user's recent events, replaces their stored
	// insights and returns the generated texts in priority order.
	RunInsights(ctx context.Context, userID string) (*models.RunInsightsResponse, error)
	// GetInsights returns the user's stored insights ordered by priority
	GetInsights(ctx context.Context, userID string) ([]models.Insight, error)
}
