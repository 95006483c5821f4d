package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/quillhub/backend/internal/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store is the key-value contract the page cache runs on. Redis backs it in
// production; MemoryStore stands in when Redis is not configured.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = redis.Nil

// RedisStore wraps a redis.Client with connection pooling.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates and pings a Redis client.
func NewRedisStore(host, port, password string) (*RedisStore, error) {
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "6379"
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     10,
		MinIdleConns: 5,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.ErrorWithFields("Failed to connect to Redis", err)
		return nil, err
	}

	logger.Log.Info("Redis client connected", zap.String("address", addr))

	return &RedisStore{client: client}, nil
}

// Get retrieves a value; absent keys return ErrCacheMiss.
func (rs *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	return rs.client.Get(ctx, key).Bytes()
}

// SetEx stores a value with an expiration.
func (rs *RedisStore) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return rs.client.Set(ctx, key, value, ttl).Err()
}

// Del deletes one or more keys.
func (rs *RedisStore) Del(ctx context.Context, keys ...string) error {
	return rs.client.Del(ctx, keys...).Err()
}

// Ping tests the Redis connection.
func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

// Close closes the Redis connection gracefully.
func (rs *RedisStore) Close() error {
	if rs == nil || rs.client == nil {
		return nil
	}
	return rs.client.Close()
}
