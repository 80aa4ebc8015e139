package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var ErrNoDataFoundInRedis = errors.New("no data found in redis")

// Redis key prefixes for the cached per-user summaries.
const (
	RedisOverviewSummaryPrefix = "overview_summary"
	RedisHealthSummaryPrefix   = "health_summary"
)

// getFromCache() reads a JSON payload from redis and unmarshals it to T.
// A missing key is reported as ErrNoDataFoundInRedis so callers can fall
// through to a recompute.
func getFromCache[T any](ctx context.Context, rdb *redis.Client, key string) (*T, error) {
	payload, err := rdb.Get(ctx, key).Result()
	if err != nil {
		switch {
		case errors.Is(err, redis.Nil):
			return nil, ErrNoDataFoundInRedis
		default:
			return nil, fmt.Errorf("failed to read %q from cache: %w", key, err)
		}
	}
	var value T
	err = json.Unmarshal([]byte(payload), &value)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached %q: %w", key, err)
	}
	return &value, nil
}

// saveToCache() marshals a value to JSON and stores it under key with a TTL.
func saveToCache[T any](ctx context.Context, rdb *redis.Client, key string, value *T, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %q for cache: %w", key, err)
	}
	err = rdb.Set(ctx, key, payload, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to save %q to cache: %w", key, err)
	}
	return nil
}

// invalidateUserSummaries() drops the cached overview and health summaries
// for a user. Called after every ledger write so reads never serve stale
// aggregates for longer than a request.
func (app *application) invalidateUserSummaries(ctx context.Context, userID int64) {
	keys := []string{
		app.returnFormattedRedisKeys(RedisOverviewSummaryPrefix, userID),
		app.returnFormattedRedisKeys(RedisHealthSummaryPrefix, userID),
	}
	err := app.RedisDB.Del(ctx, keys...).Err()
	if err != nil {
		app.logger.Error("failed to invalidate cached summaries", zap.Int64("user_id", userID), zap.Error(err))
	}
}
