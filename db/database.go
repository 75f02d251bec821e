package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

var (
	clientMu sync.Mutex
	client   *redis.Client
	testMode string
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrNoLocation         = errors.New("restaurant has no location")
)

// InitDB creates the shared store client on first call and reuses it for the
// process lifetime. Safe to call from concurrent request handlers.
func InitDB(testModeArg string) (*redis.Client, error) {
	clientMu.Lock()
	defer clientMu.Unlock()

	testMode = testModeArg

	if client != nil {
		return client, nil
	}

	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	newClient := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// can't reach the store, the server should stop
	if err := newClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	client = newClient
	return client, nil
}

func GetDB() *redis.Client {
	return client
}

func CloseDBConnection() {
	clientMu.Lock()
	defer clientMu.Unlock()

	if client == nil {
		return
	}
	err := client.Close()
	if err != nil {
		log.Fatal("Failed closing connection: ", err)
	}
	client = nil
}

// ResetTestDatabase flushes every key. Only allowed in test mode.
func ResetTestDatabase(ctx context.Context) error {
	if testMode != "test" {
		return fmt.Errorf("wrong test mode")
	}

	return client.FlushDB(ctx).Err()
}
