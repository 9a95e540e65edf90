package common

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shobukan/keikoban/internal/logging"
)

// NewRedisClient builds a client from host/port/password settings and
// pings it once. A failed ping still returns the client; the pool
// reconnects on its own.
func NewRedisClient(host string, port int, password string) *redis.Client {
	addr := fmt.Sprintf("%s:%d", host, port)
	logging.Info("Initializing Redis client", "addr", addr)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Failed to ping Redis", "error", err.Error())
		return client
	}

	logging.Info("Connected to Redis")
	return client
}
