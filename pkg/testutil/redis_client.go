package testutil

import (
	"context"
	"sync"
	"time"
)

// MockRedisClient is an in-memory xredis.Client. Expiration is ignored.
type MockRedisClient struct {
	mu   sync.Mutex
	data map[string]string

	MGetCalls int
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{data: map[string]string{}}
}

func (m *MockRedisClient) MGet(ctx context.Context, keys ...string) ([]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.MGetCalls++
	values := make([]any, len(keys))
	for i, k := range keys {
		if v, ok := m.data[k]; ok {
			values[i] = v
		}
	}

	return values, nil
}

func (m *MockRedisClient) MSet(ctx context.Context, kv map[string]string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range kv {
		m.data[k] = v
	}

	return nil
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.data, k)
	}

	return nil
}

func (m *MockRedisClient) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.data[key]
	return ok
}
