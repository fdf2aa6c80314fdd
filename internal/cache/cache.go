// Package cache holds the computed leaderboard between writes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/julianstephens/thirtyday/internal/constants"
	"github.com/julianstephens/thirtyday/internal/models"
)

// Leaderboard caches the ranked board. A miss returns ok == false and no error.
type Leaderboard interface {
	Get(ctx context.Context) (entries []models.LeaderboardEntry, ok bool, err error)
	Set(ctx context.Context, entries []models.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
	Close() error
}

// Nop never holds anything.
type Nop struct{}

func (Nop) Get(context.Context) ([]models.LeaderboardEntry, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, []models.LeaderboardEntry) error         { return nil }
func (Nop) Invalidate(context.Context) error                             { return nil }
func (Nop) Close() error                                                 { return nil }

// Redis stores the board as one JSON value with a TTL.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		key:    constants.LeaderboardCacheKey,
		ttl:    ttl,
	}
}

// Dial connects to addr and checks the connection with PING.
func Dial(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewRedis(client, ttl), nil
}

func (r *Redis) Get(ctx context.Context) ([]models.LeaderboardEntry, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, fmt.Errorf("corrupt leaderboard cache entry: %w", err)
	}
	return entries, true, nil
}

func (r *Redis) Set(ctx context.Context, entries []models.LeaderboardEntry) error {
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, data, r.ttl).Err()
}

func (r *Redis) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
