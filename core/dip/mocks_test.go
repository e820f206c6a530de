package dip

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface.
// Responses are keyed by URL and encoded to JSON before decoding into dest.
type mockHTTPClient struct {
	responses map[string]interface{}
	errs      map[string]error
	calls     []string
	headers   []map[string]string
}

func (m *mockHTTPClient) GetJSON(ctx context.Context, url string, headers map[string]string, dest interface{}) error {
	m.calls = append(m.calls, url)
	m.headers = append(m.headers, headers)
	if err, ok := m.errs[url]; ok {
		return err
	}
	body, ok := m.responses[url]
	if !ok {
		return errors.New("unexpected url " + url)
	}
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// mockCache is a map-backed implementation of the Cache interface
type mockCache struct {
	items map[string][]byte
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{items: map[string][]byte{}}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, errors.New("miss")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.sets++
	m.items[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.items, key)
	return nil
}
