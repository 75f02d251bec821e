package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurant(t *testing.T) {
	rdb := setupTestDB(t)
	restaurantDAO := NewRestaurantDAO(rdb)
	ctx := context.Background()

	restaurant, err := restaurantDAO.CreateRestaurant(ctx, "Pizza Place", "-122.4,37.8", []string{"italian"})
	require.NoError(t, err)
	require.NotEmpty(t, restaurant.ID)
	assert.Equal(t, "Pizza Place", restaurant.Name)
	assert.Equal(t, "-122.4,37.8", restaurant.Location)

	// the restaurant hash is written
	fields, err := rdb.HGetAll(ctx, restaurantKey(restaurant.ID)).Result()
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, fields["id"])
	assert.Equal(t, "Pizza Place", fields["name"])
	assert.Equal(t, "-122.4,37.8", fields["location"])

	// creation seeds the rank structure with score 0
	score, err := rdb.ZScore(ctx, restaurantsByRatingKey(), restaurant.ID).Result()
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestCreateRestaurantCuisineSymmetry(t *testing.T) {
	rdb := setupTestDB(t)
	restaurantDAO := NewRestaurantDAO(rdb)
	ctx := context.Background()

	restaurant, err := restaurantDAO.CreateRestaurant(ctx, "Trattoria", "9.2,45.5", []string{"italian", "pizza"})
	require.NoError(t, err)

	// global cuisine set knows both names
	cuisines, err := rdb.SMembers(ctx, cuisinesKey()).Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"italian", "pizza"}, cuisines)

	// membership is symmetric: R in members(C) iff C in cuisines(R)
	for _, cuisine := range []string{"italian", "pizza"} {
		members, err := rdb.SMembers(ctx, cuisineKey(cuisine)).Result()
		require.NoError(t, err)
		assert.Contains(t, members, restaurant.ID)
	}
	restaurantCuisines, err := rdb.SMembers(ctx, restaurantCuisinesKey(restaurant.ID)).Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"italian", "pizza"}, restaurantCuisines)
}

func TestGetRestaurantByIDIncrementsViewCount(t *testing.T) {
	rdb := setupTestDB(t)
	restaurantDAO := NewRestaurantDAO(rdb)
	ctx := context.Background()

	created, err := restaurantDAO.CreateRestaurant(ctx, "Sushi Bar", "139.7,35.7", []string{"japanese"})
	require.NoError(t, err)

	first, err := restaurantDAO.GetRestaurantByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ViewCount)
	assert.Equal(t, "Sushi Bar", first.Name)
	assert.Equal(t, []string{"japanese"}, first.Cuisines)

	second, err := restaurantDAO.GetRestaurantByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ViewCount)
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	rdb := setupTestDB(t)
	restaurantDAO := NewRestaurantDAO(rdb)

	_, err := restaurantDAO.GetRestaurantByID(context.Background(), "missing-id")
	require.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestGetRestaurantsRankedByAverage(t *testing.T) {
	rdb := setupTestDB(t)
	restaurantDAO := NewRestaurantDAO(rdb)
	reviewDAO := NewReviewDAO(rdb)
	ctx := context.Background()

	low, err := restaurantDAO.CreateRestaurant(ctx, "Low", "0,0", nil)
	require.NoError(t, err)
	high, err := restaurantDAO.CreateRestaurant(ctx, "High", "0,0", nil)
	require.NoError(t, err)
	unreviewed, err := restaurantDAO.CreateRestaurant(ctx, "Unreviewed", "0,0", nil)
	require.NoError(t, err)

	_, err = reviewDAO.CreateReview(ctx, low.ID, 2, "meh")
	require.NoError(t, err)
	_, err = reviewDAO.CreateReview(ctx, high.ID, 5, "great")
	require.NoError(t, err)

	restaurants, err := restaurantDAO.GetRestaurants(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, restaurants, 3)

	// sorted by descending average, never-reviewed restaurants keep score 0
	// and rank last
	assert.Equal(t, high.ID, restaurants[0].ID)
	assert.Equal(t, low.ID, restaurants[1].ID)
	assert.Equal(t, unreviewed.ID, restaurants[2].ID)
}

func TestGetRestaurantsPagination(t *testing.T) {
	rdb := setupTestDB(t)
	restaurantDAO := NewRestaurantDAO(rdb)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := restaurantDAO.CreateRestaurant(ctx, "R", "0,0", nil)
		require.NoError(t, err)
	}

	firstPage, err := restaurantDAO.GetRestaurants(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, firstPage, 2)

	secondPage, err := restaurantDAO.GetRestaurants(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, secondPage, 1)

	// malformed values fall back to page 1, limit 10
	defaulted, err := restaurantDAO.GetRestaurants(ctx, 0, -5)
	require.NoError(t, err)
	assert.Len(t, defaulted, 3)
}

func TestRestaurantExists(t *testing.T) {
	rdb := setupTestDB(t)
	restaurantDAO := NewRestaurantDAO(rdb)
	ctx := context.Background()

	created, err := restaurantDAO.CreateRestaurant(ctx, "Bistro", "2.3,48.9", nil)
	require.NoError(t, err)

	exists, err := restaurantDAO.RestaurantExists(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = restaurantDAO.RestaurantExists(ctx, "missing-id")
	require.NoError(t, err)
	assert.False(t, exists)
}
