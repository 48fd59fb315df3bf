package service

import "math"

// mean returns the arithmetic mean. Callers must guard against empty input;
// every rule's precondition guarantees a non-empty slice before calling.
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// pearsonCorrelation computes the Pearson correlation coefficient over two
// equal-length series. Degenerate input (zero variance in either series)
// returns 0 instead of NaN so downstream thresholding stays total.
func pearsonCorrelation(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
	}

	fn := float64(n)
	denom := math.Sqrt((fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY))
	if denom == 0 {
		return 0
	}

	return (fn*sumXY - sumX*sumY) / denom
}

// moodScores maps the client's mood names onto an 8-point ordinal scale.
// This is a modeling simplification, not a validated psychological scale;
// keep the mapping isolated here so it can be swapped without touching rules.
var moodScores = map[string]float64{
	"Sad":       2,
	"Anxious":   3,
	"Tired":     4,
	"Neutral":   5,
	"Calm":      6,
	"Happy":     7,
	"Energetic": 8,
}

// moodNameToScore resolves a mood name to its ordinal score.
// Unknown names default to neutral (5).
func moodNameToScore(name string) float64 {
	if score, ok := moodScores[name]; ok {
		return score
	}
	return 5
}
