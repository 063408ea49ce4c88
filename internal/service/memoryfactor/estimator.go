// Package memoryfactor estimates a per-user memory-retention multiplier from
// recall feedback and derives personalized review intervals from it.
// All functions are pure — no DB, no context, no logger.
package memoryfactor

import (
	"math"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

// Rating bounds for recall quality (1 = barely remembered, 5 = perfect).
const (
	MinRating = 1
	MaxRating = 5
)

// Update returns the new memory factor after a review with the given recall
// rating. A low rating means poor recall, so the factor increases and future
// reviews come sooner. The adjustment shrinks as the review history grows:
// stabilization = min(1, 10/(completedCount+10)).
// The result is clamped to [0.5, 1.5].
func Update(current float64, rating, completedCount int) float64 {
	adjustment := float64(3-rating) * 0.02
	stabilization := math.Min(1, 10/float64(completedCount+10))
	return clamp(current+adjustment*stabilization, domain.MinMemoryFactor, domain.MaxMemoryFactor)
}

// AdjustedInterval scales a template day-offset by the user's memory factor
// and the item's difficulty and importance ratings (both 1–5; the caller
// clamps out-of-range values). Offset 0 always stays 0 — a same-day review
// is never moved. Any other offset yields at least 1 day.
func AdjustedInterval(baseOffset int, factor float64, difficulty, importance int) int {
	if baseOffset == 0 {
		return 0
	}
	difficultyFactor := 1 + float64(difficulty-3)*0.1
	importanceFactor := 1 - float64(importance-3)*0.05
	adjusted := math.Round(float64(baseOffset) * factor * difficultyFactor * importanceFactor)
	if adjusted < 1 {
		return 1
	}
	return int(adjusted)
}

// ClampRating forces a difficulty/importance/recall rating into [1, 5].
func ClampRating(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
