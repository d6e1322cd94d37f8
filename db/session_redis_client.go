package db

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionRedisClient wraps a go-redis client behind the RedisClient
// interface.
type SessionRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewSessionRedisClient initializes a SessionRedisClient and verifies
// the connection.
func NewSessionRedisClient(ctx context.Context, client *redis.Client) *SessionRedisClient {
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	return &SessionRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis without expiry.
func (r *SessionRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetWithExpiry sets a key-value pair that expires after ttl.
func (r *SessionRedisClient) SetWithExpiry(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis.
func (r *SessionRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", &ErrKeyNotFound{Key: key}
	}
	return val, err
}

// Del removes a key.
func (r *SessionRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Keys lists keys matching the pattern.
func (r *SessionRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *SessionRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *SessionRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
