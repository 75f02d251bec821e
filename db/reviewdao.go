package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"bites-server/model"
)

const reviewsPageSize = 10

type ReviewDAO struct {
	rdb *redis.Client
}

func NewReviewDAO(rdb *redis.Client) *ReviewDAO {
	return &ReviewDAO{rdb: rdb}
}

// CreateReview appends the review to the restaurant's index, writes the
// detail record and folds the rating into the restaurant's running average.
// The caller must have checked that the restaurant exists.
func (reviewDAO *ReviewDAO) CreateReview(ctx context.Context, restaurantID string, rating float64, comment string) (model.Review, error) {
	review := model.Review{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Rating:       rating,
		Comment:      comment,
		Timestamp:    time.Now().UnixMilli(),
	}

	var pushCmd *redis.IntCmd

	_, err := reviewDAO.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pushCmd = pipe.LPush(ctx, reviewIndexKey(restaurantID), review.ID)
		pipe.HSet(ctx, reviewDetailsKey(review.ID), review)
		return nil
	})
	if err != nil {
		return model.Review{}, err
	}

	// the push result is the post-insert list length: reading the count from
	// our own append keeps it consistent with the accumulator under
	// concurrent appends to the same restaurant
	reviewCount := pushCmd.Val()

	ratingDAO := NewRatingDAO(reviewDAO.rdb)
	_, err = ratingDAO.RecordRating(ctx, restaurantID, rating, reviewCount)
	if err != nil {
		return model.Review{}, err
	}

	return review, nil
}

// GetReviews returns the page-th page of reviews for a restaurant, newest
// first. A review id whose detail record has been removed resolves to a
// zero-value record instead of failing the page.
func (reviewDAO *ReviewDAO) GetReviews(ctx context.Context, restaurantID string, page int, limit int) ([]model.Review, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = reviewsPageSize
	}

	start := int64((page - 1) * limit)
	stop := start + int64(limit) - 1

	reviewIDs, err := reviewDAO.rdb.LRange(ctx, reviewIndexKey(restaurantID), start, stop).Result()
	if err != nil {
		return nil, err
	}

	detailCmds := make([]*redis.MapStringStringCmd, len(reviewIDs))

	_, err = reviewDAO.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, reviewID := range reviewIDs {
			detailCmds[i] = pipe.HGetAll(ctx, reviewDetailsKey(reviewID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	reviews := make([]model.Review, 0, len(reviewIDs))
	for _, detailCmd := range detailCmds {
		var review model.Review
		err = detailCmd.Scan(&review)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

// DeleteReview removes the review id from the restaurant's index and deletes
// the detail record. The running average is intentionally left untouched, so
// the stored average can overstate the true average of the remaining reviews
// after deletions.
func (reviewDAO *ReviewDAO) DeleteReview(ctx context.Context, restaurantID string, reviewID string) error {
	var removeCmd *redis.IntCmd
	var deleteCmd *redis.IntCmd

	_, err := reviewDAO.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		removeCmd = pipe.LRem(ctx, reviewIndexKey(restaurantID), 0, reviewID)
		deleteCmd = pipe.Del(ctx, reviewDetailsKey(reviewID))
		return nil
	})
	if err != nil {
		return err
	}

	if removeCmd.Val() == 0 && deleteCmd.Val() == 0 {
		return ErrReviewNotFound
	}

	return nil
}
