package db

import (
	"context"

	"github.com/redis/go-redis/v9"

	"bites-server/model"
)

type CuisineDAO struct {
	rdb *redis.Client
}

func NewCuisineDAO(rdb *redis.Client) *CuisineDAO {
	return &CuisineDAO{rdb: rdb}
}

func (cuisineDAO *CuisineDAO) GetCuisines(ctx context.Context) ([]string, error) {
	return cuisineDAO.rdb.SMembers(ctx, cuisinesKey()).Result()
}

// GetRestaurantsByCuisine resolves the cuisine's membership set to full
// restaurant records.
func (cuisineDAO *CuisineDAO) GetRestaurantsByCuisine(ctx context.Context, cuisine string) ([]model.Restaurant, error) {
	restaurantIDs, err := cuisineDAO.rdb.SMembers(ctx, cuisineKey(cuisine)).Result()
	if err != nil {
		return nil, err
	}

	restaurantDAO := NewRestaurantDAO(cuisineDAO.rdb)
	return restaurantDAO.getRestaurantRecords(ctx, restaurantIDs)
}
