package db

import "strings"

// Every key is prefixed with the service namespace so that entity kinds
// cannot collide, e.g. "bites:restaurants:<id>".
const keyPrefix = "bites"

func getKeyName(parts ...string) string {
	return keyPrefix + ":" + strings.Join(parts, ":")
}

func restaurantKey(restaurantID string) string {
	return getKeyName("restaurants", restaurantID)
}

// reviewIndexKey holds the per-restaurant list of review ids, newest first.
func reviewIndexKey(restaurantID string) string {
	return getKeyName("reviews", restaurantID)
}

func reviewDetailsKey(reviewID string) string {
	return getKeyName("review_details", reviewID)
}

func cuisinesKey() string {
	return getKeyName("cuisines")
}

func cuisineKey(cuisine string) string {
	return getKeyName("cuisine", cuisine)
}

func restaurantCuisinesKey(restaurantID string) string {
	return getKeyName("restaurant_cuisines", restaurantID)
}

func restaurantsByRatingKey() string {
	return getKeyName("restaurants_by_rating")
}

func weatherKey(restaurantID string) string {
	return getKeyName("weather", restaurantID)
}
