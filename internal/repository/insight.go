package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clarity-app/backend/internal/models"
	"github.com/clarity-app/backend/pkg/supabase"
)

type insightRepository struct {
	client *supabase.Client
}

// NewInsightRepository creates a new insight repository
func NewInsightRepository(client *supabase.Client) InsightRepository {
	return &insightRepository{client: client}
}

func (r *insightRepository) GetByUserID(ctx context.Context, userID string) ([]models.Insight, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "priority.asc",
	}

	body, err := r.client.Query("insights", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}

	var insights []models.Insight
	if err := json.Unmarshal(body, &insights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return insights, nil
}

func (r *insightRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
	}

	if err := r.client.DeleteWhere("insights", query); err != nil {
		return fmt.Errorf("failed to delete insights: %w", err)
	}

	return nil
}

func (r *insightRepository) BulkCreate(ctx context.Context, insights []models.Insight) error {
	if len(insights) == 0 {
		return nil
	}

	// PostgREST requires all objects to have the same keys for bulk insert
	data := make([]map[string]interface{}, len(insights))
	for i, insight := range insights {
		data[i] = map[string]interface{}{
			"user_id":      insight.UserID,
			"insight_text": insight.InsightText,
			"generated_at": insight.GeneratedAt,
			"priority":     insight.Priority,
		}
	}

	if _, err := r.client.Insert("insights", data); err != nil {
		return fmt.Errorf("failed to bulk create insights: %w", err)
	}

	return nil
}
