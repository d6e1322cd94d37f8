package db

import (
	"context"
	"path"
	"sync"
	"time"
)

// MockRedisClient simulates a Redis client for testing purposes.
// Expiry is tracked but only evaluated lazily on Get.
type MockRedisClient struct {
	data     map[string]string
	expiries map[string]time.Time
	mu       sync.RWMutex
	context  context.Context
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:     make(map[string]string),
		expiries: make(map[string]time.Time),
		context:  ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	delete(m.expiries, key)
	return nil
}

// SetWithExpiry stores a key-value pair with a TTL.
func (m *MockRedisClient) SetWithExpiry(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.expiries[key] = time.Now().Add(ttl)
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if exp, ok := m.expiries[key]; ok && time.Now().After(exp) {
		delete(m.data, key)
		delete(m.expiries, key)
	}
	value, exists := m.data[key]
	if !exists {
		return "", &ErrKeyNotFound{Key: key}
	}
	return value, nil
}

// Del removes a key from the mock Redis.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.expiries, key)
	return nil
}

// Keys lists keys matching a glob pattern.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	return nil
}
