package service

import (
	"fmt"
	"math"
	"time"
)

const (
	// Minimum bucket sizes before a rule considers its data meaningful
	minSleepEvents     = 5
	minMoodEvents      = 5
	minSleepMoodPairs  = 3
	minActivityEvents  = 3
	minHydrationEvents = 5
	minSomaticEvents   = 5
	minPainGroupSize   = 2

	// Correlation threshold for the sleep/mood rule
	correlationThreshold = 0.3

	// Sleep quality below this average (1-5 scale) triggers a warning
	lowSleepQualityAvg = 3.0

	// Activity frequency bands, percent of window days (exclusive bounds)
	activityFrequencyHighPct = 50.0
	activityFrequencyLowPct  = 25.0

	// Daily hydration bands in ml (exclusive bounds)
	lowHydrationML  = 1500.0
	highHydrationML = 2500.0

	// Pain difference (0-10 scale) considered meaningful between
	// active and rest days
	painGapThreshold = 1.0

	// Below this many events in the window the fallback also asks for more data
	minEventsForRichAnalysis = 10

	// Pairing window for sleep -> next-day mood
	nextDayWindow = 24 * time.Hour
)

// analysis is the per-run view handed to every rule
type analysis struct {
	buckets     *buckets
	asOf        time.Time
	windowStart time.Time
}

// totalDays is the nominal window length in days (ceiling), not the span
// of observed data
func (a *analysis) totalDays() int {
	return int(math.Ceil(a.asOf.Sub(a.windowStart).Hours() / 24))
}

// insightRule is one independent analysis unit. Rules run in declaration
// order and that order alone determines insight priority.
type insightRule struct {
	name     string
	evaluate func(a *analysis) []string
}

// defaultRules returns the rule set in priority order
func defaultRules() []insightRule {
	return []insightRule{
		{name: "sleep_mood_correlation", evaluate: evalSleepMood},
		{name: "activity_frequency", evaluate: evalActivityFrequency},
		{name: "hydration_volume", evaluate: evalHydration},
		{name: "pain_vs_activity", evaluate: evalPainActivity},
	}
}

// evalSleepMood pairs each sleep log with a morning mood logged strictly
// within the following 24 hours and correlates sleep quality with mood
func evalSleepMood(a *analysis) []string {
	if len(a.buckets.Sleep) < minSleepEvents || len(a.buckets.Mood) < minMoodEvents {
		return nil
	}

	var qualities, moods []float64
	for _, sleep := range a.buckets.Sleep {
		if !sleep.HasQuality {
			continue
		}
		for _, mood := range a.buckets.Mood {
			if !mood.HasScore {
				continue
			}
			// Strict window: (sleepTime, sleepTime+24h), both ends exclusive
			if mood.At.After(sleep.At) && mood.At.Before(sleep.At.Add(nextDayWindow)) {
				qualities = append(qualities, sleep.Quality)
				moods = append(moods, mood.Score)
				break
			}
		}
	}

	if len(qualities) < minSleepMoodPairs {
		return nil
	}

	r := pearsonCorrelation(qualities, moods)
	avgQuality := mean(qualities)

	var out []string
	if r > correlationThreshold {
		out = append(out, fmt.Sprintf(
			"Strong positive correlation detected: Better sleep quality leads to improved next-day mood (correlation: %d%%)",
			int(math.Round(r*100))))
	} else if r < -correlationThreshold {
		out = append(out, "Negative correlation detected: Higher sleep quality appears linked to lower mood scores")
	}

	if avgQuality < lowSleepQualityAvg {
		out = append(out, fmt.Sprintf(
			"Your average sleep quality is %.1f out of 5. Prioritizing rest could lift how you feel each morning",
			avgQuality))
	}

	return out
}

// evalActivityFrequency measures how many distinct days in the window had
// at least one activity log
func evalActivityFrequency(a *analysis) []string {
	if len(a.buckets.Activity) < minActivityEvents {
		return nil
	}

	activeDates := make(map[string]bool)
	for _, act := range a.buckets.Activity {
		activeDates[dateKey(act.At)] = true
	}

	totalDays := a.totalDays()
	if totalDays == 0 {
		return nil
	}
	frequencyPct := float64(len(activeDates)) / float64(totalDays) * 100

	if frequencyPct > activityFrequencyHighPct {
		return []string{fmt.Sprintf(
			"Great consistency: you were active on %d%% of days this month. Keep it up",
			int(math.Round(frequencyPct)))}
	}
	if frequencyPct < activityFrequencyLowPct {
		return []string{fmt.Sprintf(
			"Your activity level is low: active on just %d%% of days this month. Even short daily movement helps",
			int(math.Round(frequencyPct)))}
	}

	return nil
}

// evalHydration averages per-day hydration totals across the window
func evalHydration(a *analysis) []string {
	if len(a.buckets.Hydration) < minHydrationEvents {
		return nil
	}

	totalsByDate := make(map[string]float64)
	for _, h := range a.buckets.Hydration {
		if !h.HasQuantity {
			continue
		}
		totalsByDate[dateKey(h.At)] += h.QuantityML
	}
	if len(totalsByDate) == 0 {
		return nil
	}

	dailyTotals := make([]float64, 0, len(totalsByDate))
	for _, total := range totalsByDate {
		dailyTotals = append(dailyTotals, total)
	}
	avgDailyML := mean(dailyTotals)

	if avgDailyML < lowHydrationML {
		return []string{fmt.Sprintf(
			"Your hydration is on the low side: averaging %dml/day. Consider drinking more water",
			int(math.Round(avgDailyML)))}
	}
	if avgDailyML > highHydrationML {
		return []string{fmt.Sprintf(
			"Good hydration habits: you're averaging %dml/day",
			int(math.Round(avgDailyML)))}
	}

	return nil
}

// evalPainActivity compares average pain on days with activity logs
// against rest days
func evalPainActivity(a *analysis) []string {
	if len(a.buckets.Somatic) < minSomaticEvents || len(a.buckets.Activity) < minActivityEvents {
		return nil
	}

	activeDates := make(map[string]bool)
	for _, act := range a.buckets.Activity {
		activeDates[dateKey(act.At)] = true
	}

	var painActive, painRest []float64
	for _, som := range a.buckets.Somatic {
		if !som.HasPain {
			continue
		}
		if activeDates[dateKey(som.At)] {
			painActive = append(painActive, som.Pain)
		} else {
			painRest = append(painRest, som.Pain)
		}
	}

	if len(painActive) < minPainGroupSize || len(painRest) < minPainGroupSize {
		return nil
	}

	avgActive := mean(painActive)
	avgRest := mean(painRest)

	if avgActive < avgRest-painGapThreshold {
		return []string{fmt.Sprintf(
			"Activity days coincide with lower pain: average %.1f on active days vs %.1f on rest days",
			avgActive, avgRest)}
	}
	if avgActive > avgRest+painGapThreshold {
		return []string{fmt.Sprintf(
			"Pain runs higher on active days (%.1f vs %.1f on rest days). Consider pacing your activity",
			avgActive, avgRest)}
	}

	return nil
}

// Fallback texts emitted when no rule fires, so a successful run never
// returns an empty insight list
const (
	fallbackInsightText = "Keep logging your sessions and daily check-ins to unlock personalized insights"
	moreDataInsightText = "Not enough data yet for deeper analysis: a few entries per day will reveal your trends"
)
