package repository

import (
	"context"
	"time"

	"github.com/clarity-app/backend/internal/models"
)

// EventRepository defines read access to the events table
type EventRepository interface {
	// GetByUserSince returns every event for the user with created_at >= since,
	// ordered ascending by created_at, paging transparently until exhausted.
	GetByUserSince(ctx context.Context, userID string, since time.Time) ([]models.Event, error)
}

// InsightRepository defines access to the insights table
type InsightRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.Insight, error)
	DeleteByUserID(ctx context.Context, userID string) error
	BulkCreate(ctx context.Context, insights []models.Insight) error
}
