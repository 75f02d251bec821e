package db

import (
	"context"

	"github.com/redis/go-redis/v9"

	"bites-server/internals"
)

type RatingDAO struct {
	rdb *redis.Client
}

func NewRatingDAO(rdb *redis.Client) *RatingDAO {
	return &RatingDAO{rdb: rdb}
}

// RecordRating folds a new rating into the restaurant's star total and
// refreshes the derived average, both on the restaurant record and in the
// global rank structure. reviewCount must be the post-insert review count,
// obtained from the caller's own index append. The increment is atomic on
// the store side, so concurrent callers each observe a distinct total.
func (ratingDAO *RatingDAO) RecordRating(ctx context.Context, restaurantID string, rating float64, reviewCount int64) (float64, error) {
	totalStars, err := ratingDAO.rdb.HIncrByFloat(ctx, restaurantKey(restaurantID), "totalStars", rating).Result()
	if err != nil {
		return 0, err
	}

	averageRating := internals.ComputeAverageRating(totalStars, reviewCount)

	_, err = ratingDAO.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, restaurantsByRatingKey(), redis.Z{Score: averageRating, Member: restaurantID})
		pipe.HSet(ctx, restaurantKey(restaurantID), "avgStars", averageRating)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return averageRating, nil
}
