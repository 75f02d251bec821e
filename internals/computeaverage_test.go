package internals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAverageRating(t *testing.T) {
	tests := []struct {
		name        string
		totalStars  float64
		reviewCount int64
		want        float64
	}{
		{"no reviews", 0, 0, 0},
		{"single review", 4, 1, 4.0},
		{"exact average", 6, 2, 3.0},
		{"half at first decimal", 7, 2, 3.5},
		{"repeating third rounds down", 10, 3, 3.3},
		{"repeating two thirds rounds up", 11, 3, 3.7},
		{"quarter rounds away from zero", 6.5, 2, 3.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeAverageRating(tt.totalStars, tt.reviewCount), 1e-9)
		})
	}
}
