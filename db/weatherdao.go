package db

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"

	"bites-server/externals"
)

type WeatherDAO struct {
	rdb *redis.Client
}

func NewWeatherDAO(rdb *redis.Client) *WeatherDAO {
	return &WeatherDAO{rdb: rdb}
}

// GetWeather returns the weather payload for a restaurant. Cached payloads
// are returned verbatim without contacting the provider; on a miss the
// restaurant's coordinates are looked up, the provider is called and the
// payload is stored without expiry. A failed provider call stores nothing.
func (weatherDAO *WeatherDAO) GetWeather(ctx context.Context, restaurantID string) (json.RawMessage, error) {
	cachedWeather, err := weatherDAO.rdb.Get(ctx, weatherKey(restaurantID)).Result()
	if err == nil {
		return json.RawMessage(cachedWeather), nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	location, err := weatherDAO.rdb.HGet(ctx, restaurantKey(restaurantID), "location").Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoLocation
	}
	if err != nil {
		return nil, err
	}

	// stored as "lng,lat"
	lng, lat, found := strings.Cut(location, ",")
	if !found {
		return nil, ErrNoLocation
	}

	payload, err := externals.GetWeatherByCoordinates(lat, lng)
	if err != nil {
		return nil, err
	}

	err = weatherDAO.rdb.Set(ctx, weatherKey(restaurantID), []byte(payload), 0).Err()
	if err != nil {
		return nil, err
	}

	return payload, nil
}
