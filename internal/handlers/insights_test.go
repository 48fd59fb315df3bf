package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clarity-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// mockInsightsService is a mock implementation of service.InsightsService
type mockInsightsService struct {
	runResult *models.RunInsightsResponse
	runErr    error
	stored    []models.Insight
	getErr    error
}

func (m *mockInsightsService) RunInsights(ctx context.Context, userID string) (*models.RunInsightsResponse, error) {
	if m.runErr != nil {
		return nil, m.runErr
	}
	return m.runResult, nil
}

func (m *mockInsightsService) GetInsights(ctx context.Context, userID string) ([]models.Insight, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.stored, nil
}

func setupRouter(svc *mockInsightsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewInsightsHandler(svc)
	router := gin.New()
	router.POST("/api/v1/insights/run", handler.RunInsights)
	router.GET("/api/v1/insights", handler.GetInsights)
	return router
}

func TestRunInsights_Success(t *testing.T) {
	router := setupRouter(&mockInsightsService{
		runResult: &models.RunInsightsResponse{
			Insights:       []string{"first insight", "second insight"},
			EventsAnalyzed: 42,
		},
	})

	req := httptest.NewRequest("POST", "/api/v1/insights/run", strings.NewReader(`{"user_id":"user-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}

	var resp models.RunInsightsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.EventsAnalyzed != 42 {
		t.Errorf("events_analyzed = %d, want 42", resp.EventsAnalyzed)
	}
	if len(resp.Insights) != 2 || resp.Insights[0] != "first insight" {
		t.Errorf("insights = %v, want two insights in order", resp.Insights)
	}
}

func TestRunInsights_MissingUserID(t *testing.T) {
	router := setupRouter(&mockInsightsService{})

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "empty object", body: "{}"},
		{name: "empty user_id", body: `{"user_id":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/insights/run", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if !strings.Contains(w.Body.String(), "error") {
				t.Errorf("body = %s, want error payload", w.Body.String())
			}
		})
	}
}

func TestRunInsights_ServiceFailure(t *testing.T) {
	router := setupRouter(&mockInsightsService{runErr: errors.New("failed to get events: store down")})

	req := httptest.NewRequest("POST", "/api/v1/insights/run", strings.NewReader(`{"user_id":"user-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "store down") {
		t.Errorf("body = %s, want underlying message surfaced", w.Body.String())
	}
}

func TestGetInsights_RequiresUserID(t *testing.T) {
	router := setupRouter(&mockInsightsService{})

	req := httptest.NewRequest("GET", "/api/v1/insights", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
