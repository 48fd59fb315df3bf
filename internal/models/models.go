package models

import "time"

// Event type tags logged by the clarity clients. The pipeline ignores
// tags outside this vocabulary so new client log types don't break analysis.
const (
	EventTypeSleep      = "SLEEP_LOG"
	EventTypeMoodAM     = "MOOD_LOG_AM"
	EventTypeActivity   = "ACTIVITY_LOG"
	EventTypeHydration  = "HYDRATION_LOG"
	EventTypeSomaticAM  = "SOMATIC_LOG_AM"
	EventTypeReflection = "DAILY_REFLECTION"
)

// Payload field keys referenced by the analysis rules
const (
	PayloadKeySleepQuality = "quality"
	PayloadKeyMood         = "mood"
	PayloadKeyQuantityML   = "quantity_ml"
	PayloadKeyPain         = "pain"
)

// Event represents a logged wellness event. The payload is an open JSON
// object whose shape depends on the event type; events are immutable once
// fetched and the pipeline only derives new values from them.
type Event struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	CreatedAt time.Time              `json:"created_at"`
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload"`
}

// Insight represents one generated observation for a user. The full set
// is regenerated and replaced on every analysis run.
type Insight struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id"`
	InsightText string    `json:"insight_text"`
	GeneratedAt time.Time `json:"generated_at"`
	Priority    int       `json:"priority"`
}

// RunInsightsRequest is the request body for triggering an analysis run
type RunInsightsRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// RunInsightsResponse is returned after a successful analysis run
type RunInsightsResponse struct {
	Insights       []string `json:"insights"`
	EventsAnalyzed int      `json:"events_analyzed"`
}
