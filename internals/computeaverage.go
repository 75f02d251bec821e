package internals

import "math"

// ComputeAverageRating computes the average star rating rounded to one
// decimal place, half away from zero.
func ComputeAverageRating(totalStars float64, reviewCount int64) float64 {
	if reviewCount == 0 {
		return 0
	}

	return math.Round(totalStars/float64(reviewCount)*10) / 10
}
