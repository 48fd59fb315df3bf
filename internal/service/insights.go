package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clarity-app/backend/internal/logger"
	"github.com/clarity-app/backend/internal/models"
	"github.com/clarity-app/backend/internal/repository"
)

type insightsService struct {
	eventRepo   repository.EventRepository
	insightRepo repository.InsightRepository
	windowDays  int
	rules       []insightRule
	now         func() time.Time
}

// NewInsightsService creates the insight analysis service. windowDays is
// the trailing event window analyzed per run.
func NewInsightsService(eventRepo repository.EventRepository, insightRepo repository.InsightRepository, windowDays int) InsightsService {
	return &insightsService{
		eventRepo:   eventRepo,
		insightRepo: insightRepo,
		windowDays:  windowDays,
		rules:       defaultRules(),
		now:         time.Now,
	}
}

// RunInsights performs one analysis pass: fetch the user's window of
// events, partition them, evaluate every rule in priority order and
// replace the user's stored insights with the result.
func (s *insightsService) RunInsights(ctx context.Context, userID string) (*models.RunInsightsResponse, error) {
	// A single captured instant drives the fetch window, date bucketing
	// and the generated_at stamp, so day boundaries cannot drift mid-run
	asOf := s.now()
	windowStart := asOf.AddDate(0, 0, -s.windowDays)

	events, err := s.eventRepo.GetByUserSince(ctx, userID, windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	a := &analysis{
		buckets:     partitionEvents(events),
		asOf:        asOf,
		windowStart: windowStart,
	}

	var texts []string
	for _, rule := range s.rules {
		texts = append(texts, rule.evaluate(a)...)
	}

	if len(texts) == 0 {
		texts = append(texts, fallbackInsightText)
		if len(events) < minEventsForRichAnalysis {
			texts = append(texts, moreDataInsightText)
		}
	}

	insights := make([]models.Insight, len(texts))
	for i, text := range texts {
		insights[i] = models.Insight{
			UserID:      userID,
			InsightText: text,
			GeneratedAt: asOf,
			Priority:    i + 1,
		}
	}

	// Delete-then-insert replace. PostgREST gives no transaction across
	// the two calls, so both are ordered last in the run and either
	// failure fails the whole request.
	if err := s.insightRepo.DeleteByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete previous insights: %w", err)
	}
	if err := s.insightRepo.BulkCreate(ctx, insights); err != nil {
		return nil, fmt.Errorf("failed to store insights: %w", err)
	}

	logger.Ctx(ctx).Info("insights run complete",
		logger.String("user_id", userID),
		logger.Int("events_analyzed", len(events)),
		logger.Int("insights", len(texts)))

	return &models.RunInsightsResponse{
		Insights:       texts,
		EventsAnalyzed: len(events),
	}, nil
}

// GetInsights returns the user's stored insights ordered by priority
func (s *insightsService) GetInsights(ctx context.Context, userID string) ([]models.Insight, error) {
	insights, err := s.insightRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}
	return insights, nil
}
