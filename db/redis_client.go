package db

import (
	"context"
	"time"
)

// RedisClient defines the methods the DAOs need from the store.
type RedisClient interface {
	Set(key, value string) error
	SetWithExpiry(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	GetContext() context.Context
	Ping() error
}

// ErrKeyNotFound is returned by Get for a missing key.
type ErrKeyNotFound struct {
	Key string
}

func (e *ErrKeyNotFound) Error() string {
	return "key not found: " + e.Key
}

// IsKeyNotFound reports whether err is a missing-key error.
func IsKeyNotFound(err error) bool {
	_, ok := err.(*ErrKeyNotFound)
	return ok
}
