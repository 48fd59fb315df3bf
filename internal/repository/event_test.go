package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/clarity-app/backend/internal/models"
	"github.com/clarity-app/backend/pkg/supabase"
)

func TestGetByUserSince_PagesUntilExhausted(t *testing.T) {
	total := 5
	pageSize := 2
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		if r.URL.Path != "/rest/v1/events" {
			t.Errorf("path = %q, want /rest/v1/events", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("order"); got != "created_at.asc" {
			t.Errorf("order = %q, want created_at.asc", got)
		}
		if got := q.Get("user_id"); got != "eq.user-1" {
			t.Errorf("user_id = %q, want eq.user-1", got)
		}
		if got := q.Get("created_at"); got != "gte."+since.Format(time.RFC3339) {
			t.Errorf("created_at = %q, want gte filter", got)
		}

		offset, _ := strconv.Atoi(q.Get("offset"))
		limit, _ := strconv.Atoi(q.Get("limit"))
		if limit != pageSize {
			t.Errorf("limit = %d, want %d", limit, pageSize)
		}

		var page []models.Event
		for i := offset; i < total && i < offset+limit; i++ {
			page = append(page, models.Event{
				ID:        fmt.Sprintf("evt-%d", i),
				UserID:    "user-1",
				CreatedAt: since.AddDate(0, 0, i),
				EventType: models.EventTypeActivity,
			})
		}
		if page == nil {
			page = []models.Event{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	repo := NewEventRepository(supabase.NewClient(server.URL, "test-key"), pageSize)

	events, err := repo.GetByUserSince(context.Background(), "user-1", since)
	if err != nil {
		t.Fatalf("GetByUserSince() error = %v", err)
	}

	if len(events) != total {
		t.Fatalf("got %d events, want %d", len(events), total)
	}
	// ceil(5/2) = 3 pages: the short last page stops the loop
	if requests != 3 {
		t.Errorf("made %d requests, want 3", requests)
	}
	for i, event := range events {
		if want := fmt.Sprintf("evt-%d", i); event.ID != want {
			t.Errorf("events[%d].ID = %q, want %q (ascending order)", i, event.ID, want)
		}
	}
}

func TestGetByUserSince_StoreErrorAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	}))
	defer server.Close()

	repo := NewEventRepository(supabase.NewClient(server.URL, "test-key"), 100)

	if _, err := repo.GetByUserSince(context.Background(), "user-1", time.Now()); err == nil {
		t.Fatal("expected error from store failure")
	}
}
