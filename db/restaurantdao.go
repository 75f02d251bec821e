package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"bites-server/model"
)

const defaultPageSize = 10

type RestaurantDAO struct {
	rdb *redis.Client
}

func NewRestaurantDAO(rdb *redis.Client) *RestaurantDAO {
	return &RestaurantDAO{rdb: rdb}
}

// CreateRestaurant writes the restaurant hash, the cuisine membership sets
// and the rank seed as one batch. The batch is not a transaction: a partial
// failure can leave the cuisine indices out of sync with the restaurant
// hash, in which case the restaurant stays reachable by id but not by
// cuisine search.
func (restaurantDAO *RestaurantDAO) CreateRestaurant(ctx context.Context, name string, location string, cuisines []string) (model.Restaurant, error) {
	id := uuid.NewString()

	_, err := restaurantDAO.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, cuisine := range cuisines {
			// membership must stay symmetric, the three sets are always
			// written together
			pipe.SAdd(ctx, cuisinesKey(), cuisine)
			pipe.SAdd(ctx, cuisineKey(cuisine), id)
			pipe.SAdd(ctx, restaurantCuisinesKey(id), cuisine)
		}
		pipe.HSet(ctx, restaurantKey(id), "id", id, "name", name, "location", location)
		pipe.ZAdd(ctx, restaurantsByRatingKey(), redis.Z{Score: 0, Member: id})
		return nil
	})
	if err != nil {
		return model.Restaurant{}, err
	}

	return model.Restaurant{
		ID:       id,
		Name:     name,
		Location: location,
		Cuisines: cuisines,
	}, nil
}

// GetRestaurantByID returns the full restaurant record with its cuisine
// names. Every read bumps the view counter.
func (restaurantDAO *RestaurantDAO) GetRestaurantByID(ctx context.Context, restaurantID string) (model.Restaurant, error) {
	var hashCmd *redis.MapStringStringCmd
	var cuisinesCmd *redis.StringSliceCmd

	_, err := restaurantDAO.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, restaurantKey(restaurantID), "viewCount", 1)
		hashCmd = pipe.HGetAll(ctx, restaurantKey(restaurantID))
		cuisinesCmd = pipe.SMembers(ctx, restaurantCuisinesKey(restaurantID))
		return nil
	})
	if err != nil {
		return model.Restaurant{}, err
	}

	// the view counter increment creates the hash even for unknown ids, so
	// presence is judged on the id field
	if hashCmd.Val()["id"] == "" {
		return model.Restaurant{}, ErrRestaurantNotFound
	}

	var restaurant model.Restaurant
	err = hashCmd.Scan(&restaurant)
	if err != nil {
		return model.Restaurant{}, err
	}
	restaurant.Cuisines = cuisinesCmd.Val()

	return restaurant, nil
}

// GetRestaurants lists restaurants ordered by descending average rating.
// Restaurants without reviews keep their creation-time score of 0 and rank
// below any restaurant with a positive average.
func (restaurantDAO *RestaurantDAO) GetRestaurants(ctx context.Context, page int, limit int) ([]model.Restaurant, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	start := int64((page - 1) * limit)
	stop := start + int64(limit) - 1

	restaurantIDs, err := restaurantDAO.rdb.ZRevRange(ctx, restaurantsByRatingKey(), start, stop).Result()
	if err != nil {
		return nil, err
	}

	return restaurantDAO.getRestaurantRecords(ctx, restaurantIDs)
}

// RestaurantExists reports whether the restaurant hash key is present.
// Used as a precondition gate before any restaurant-scoped operation.
func (restaurantDAO *RestaurantDAO) RestaurantExists(ctx context.Context, restaurantID string) (bool, error) {
	count, err := restaurantDAO.rdb.Exists(ctx, restaurantKey(restaurantID)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (restaurantDAO *RestaurantDAO) getRestaurantRecords(ctx context.Context, restaurantIDs []string) ([]model.Restaurant, error) {
	hashCmds := make([]*redis.MapStringStringCmd, len(restaurantIDs))

	_, err := restaurantDAO.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, restaurantID := range restaurantIDs {
			hashCmds[i] = pipe.HGetAll(ctx, restaurantKey(restaurantID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	restaurants := make([]model.Restaurant, 0, len(restaurantIDs))
	for _, hashCmd := range hashCmds {
		var restaurant model.Restaurant
		err = hashCmd.Scan(&restaurant)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}
