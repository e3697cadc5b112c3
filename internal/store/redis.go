package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKeyPrefix = "resume-tailor:stats:"

// RedisStats keeps per-user stats in Redis so they survive restarts. When the
// server is unreachable at startup the client is dropped and Available
// reports false; the app then falls back to the in-memory store.
type RedisStats struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedisStats(logger *log.Logger, host, port, password string) *RedisStats {
	host = strings.TrimSpace(host)
	if host == "" {
		return &RedisStats{client: nil, logger: logger}
	}
	if strings.TrimSpace(port) == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Stats] Redis unavailable, using in-memory stats: %v", err)
		}
		_ = client.Close()
		return &RedisStats{client: nil, logger: logger}
	}

	return &RedisStats{client: client, logger: logger}
}

func (r *RedisStats) Available() bool {
	return r != nil && r.client != nil
}

func (r *RedisStats) Ping(ctx context.Context) error {
	if !r.Available() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *RedisStats) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}

func (r *RedisStats) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Stats] Redis error, stats may be stale: %v", err)
	}
}

func (r *RedisStats) RecordActivity(ctx context.Context, userID string, act Activity) error {
	if !r.Available() {
		return errors.New("redis unavailable")
	}

	rec, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	rec.apply(act)

	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, statsKeyPrefix+userID, b, 0).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *RedisStats) Stats(ctx context.Context, userID string) (UserStats, error) {
	if !r.Available() {
		return UserStats{}, errors.New("redis unavailable")
	}
	rec, err := r.load(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	return rec.stats(), nil
}

func (r *RedisStats) Activity(ctx context.Context, userID string) ([]Activity, error) {
	stats, err := r.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.RecentActivity, nil
}

func (r *RedisStats) load(ctx context.Context, userID string) (*userRecord, error) {
	b, err := r.client.Get(ctx, statsKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &userRecord{}, nil
		}
		r.warnUnavailableOnce(err)
		return nil, err
	}

	rec := &userRecord{}
	if err := json.Unmarshal(b, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
