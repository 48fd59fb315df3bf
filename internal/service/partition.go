package service

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/clarity-app/backend/internal/models"
)

// Typed per-event records produced by the partitioner. Payloads are open
// JSON objects, so expected fields are coerced here, at one boundary, and
// rules only ever see validated values. A missing or malformed field leaves
// the record's Has flag false; it never aborts the run.

type sleepRecord struct {
	At         time.Time
	Quality    float64
	HasQuality bool
}

type moodRecord struct {
	At       time.Time
	Score    float64
	HasScore bool
}

type activityRecord struct {
	At time.Time
}

type hydrationRecord struct {
	At          time.Time
	QuantityML  float64
	HasQuantity bool
}

type somaticRecord struct {
	At      time.Time
	Pain    float64
	HasPain bool
}

// buckets holds the fetched events split by type, relative order preserved
type buckets struct {
	Sleep     []sleepRecord
	Mood      []moodRecord
	Activity  []activityRecord
	Hydration []hydrationRecord
	Somatic   []somaticRecord
}

// partitionEvents splits a time-ordered event list into typed buckets.
// Event types outside the analysis vocabulary are skipped.
func partitionEvents(events []models.Event) *buckets {
	b := &buckets{}

	for _, event := range events {
		switch event.EventType {
		case models.EventTypeSleep:
			rec := sleepRecord{At: event.CreatedAt}
			rec.Quality, rec.HasQuality = numericField(event.Payload, models.PayloadKeySleepQuality)
			b.Sleep = append(b.Sleep, rec)

		case models.EventTypeMoodAM:
			rec := moodRecord{At: event.CreatedAt}
			rec.Score, rec.HasScore = moodField(event.Payload)
			b.Mood = append(b.Mood, rec)

		case models.EventTypeActivity:
			b.Activity = append(b.Activity, activityRecord{At: event.CreatedAt})

		case models.EventTypeHydration:
			rec := hydrationRecord{At: event.CreatedAt}
			rec.QuantityML, rec.HasQuantity = numericField(event.Payload, models.PayloadKeyQuantityML)
			b.Hydration = append(b.Hydration, rec)

		case models.EventTypeSomaticAM:
			rec := somaticRecord{At: event.CreatedAt}
			rec.Pain, rec.HasPain = numericField(event.Payload, models.PayloadKeyPain)
			b.Somatic = append(b.Somatic, rec)
		}
	}

	return b
}

// numericField extracts a numeric payload field
func numericField(payload map[string]interface{}, key string) (float64, bool) {
	if payload == nil {
		return 0, false
	}
	return coerceFloat(payload[key])
}

// moodField extracts the mood score: numeric values pass through, known
// mood names resolve via the ordinal lookup, unknown names score neutral
func moodField(payload map[string]interface{}) (float64, bool) {
	if payload == nil {
		return 0, false
	}
	value, ok := payload[models.PayloadKeyMood]
	if !ok || value == nil {
		return 0, false
	}
	if score, ok := coerceFloat(value); ok {
		return score, true
	}
	if name, ok := value.(string); ok {
		return moodNameToScore(name), true
	}
	return 0, false
}

// coerceFloat handles the numeric shapes a decoded JSON payload can carry
func coerceFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		// Numeric strings show up when clients bind form inputs directly
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// dateKey buckets a timestamp into its calendar date, in the timestamp's
// own zone, so day boundaries follow the event's local day
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
