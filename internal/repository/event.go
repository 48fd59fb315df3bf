package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clarity-app/backend/internal/models"
	"github.com/clarity-app/backend/pkg/supabase"
)

type eventRepository struct {
	client   *supabase.Client
	pageSize int
}

// NewEventRepository creates a new event repository. pageSize bounds each
// PostgREST fetch; GetByUserSince pages until the window is exhausted.
func NewEventRepository(client *supabase.Client, pageSize int) EventRepository {
	return &eventRepository{client: client, pageSize: pageSize}
}

func (r *eventRepository) GetByUserSince(ctx context.Context, userID string, since time.Time) ([]models.Event, error) {
	var all []models.Event

	for offset := 0; ; offset += r.pageSize {
		query := map[string]interface{}{
			"user_id":    fmt.Sprintf("eq.%s", userID),
			"created_at": fmt.Sprintf("gte.%s", since.Format(time.RFC3339)),
			"select":     "*",
			"order":      "created_at.asc",
			"limit":      r.pageSize,
			"offset":     offset,
		}

		body, err := r.client.Query("events", query)
		if err != nil {
			return nil, fmt.Errorf("failed to get events: %w", err)
		}

		var page []models.Event
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal response: %w", err)
		}

		all = append(all, page...)

		// A short page means the window is exhausted
		if len(page) < r.pageSize {
			return all, nil
		}
	}
}
