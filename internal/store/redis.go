package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"velo-altitude/internal/metrics"
)

// RedisOptions configures a Redis store.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	// TTL of each record; zero keeps records forever
	TTL time.Duration
}

// Redis stores JSON-encoded records under "<prefix>:<climb>:<side>".
type Redis[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// Connect opens a client for opts and verifies it with PING.
func Connect(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}
	return client, nil
}

// NewRedis wraps an existing client. The caller owns the client.
func NewRedis[T any](client *redis.Client, keyPrefix string, ttl time.Duration, logger *slog.Logger) *Redis[T] {
	return &Redis[T]{
		client: client,
		prefix: keyPrefix,
		ttl:    ttl,
		logger: logger.With("component", "redis-store"),
	}
}

func (r *Redis[T]) key(k Key) string {
	if r.prefix == "" {
		return k.String()
	}
	return r.prefix + ":" + k.String()
}

func (r *Redis[T]) Get(ctx context.Context, key Key) (*T, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.StoreOperations.WithLabelValues(opGet, metrics.OutcomeMiss).Inc()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		metrics.RecordStoreOp(opGet, err)
		r.logger.Error("redis get failed", "key", r.key(key), "error", err)
		return nil, fmt.Errorf("failed to get record %s: %w", key, err)
	}

	var record T
	err = json.Unmarshal(data, &record)
	metrics.RecordStoreOp(opGet, err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", key, err)
	}
	return &record, nil
}

func (r *Redis[T]) Put(ctx context.Context, key Key, record *T) error {
	data, err := json.Marshal(record)
	if err != nil {
		metrics.RecordStoreOp(opPut, err)
		return fmt.Errorf("failed to encode record %s: %w", key, err)
	}

	err = r.client.Set(ctx, r.key(key), data, r.ttl).Err()
	metrics.RecordStoreOp(opPut, err)
	if err != nil {
		r.logger.Error("redis set failed", "key", r.key(key), "error", err)
		return fmt.Errorf("failed to put record %s: %w", key, err)
	}

	r.logger.Debug("stored record", "key", r.key(key), "bytes", len(data))
	return nil
}

func (r *Redis[T]) Exists(ctx context.Context, key Key) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(key)).Result()
	metrics.RecordStoreOp(opExists, err)
	if err != nil {
		return false, fmt.Errorf("failed to check record %s: %w", key, err)
	}
	return n > 0, nil
}

func (r *Redis[T]) Delete(ctx context.Context, key Key) error {
	err := r.client.Del(ctx, r.key(key)).Err()
	metrics.RecordStoreOp(opDelete, err)
	if err != nil {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}
	return nil
}
