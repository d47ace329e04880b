package store

import (
	"context"
	"errors"
	"sync"
)

// Memory is an in-process Store for tests. It can be told to fail so
// callers' degraded paths can be exercised.
type Memory struct {
	mu     sync.RWMutex
	items  map[string]string
	failed error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: map[string]string{}}
}

// Fail makes every subsequent operation return the given error. Passing
// nil restores normal behavior.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	m.failed = err
	m.mu.Unlock()
}

// FailWith is a convenience for Fail with a fresh error message.
func (m *Memory) FailWith(msg string) {
	m.Fail(errors.New(msg))
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failed != nil {
		return "", false, m.failed
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed != nil {
		return m.failed
	}
	m.items[key] = value
	return nil
}

func (m *Memory) MultiGet(_ context.Context, keys []string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failed != nil {
		return nil, m.failed
	}
	result := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := m.items[k]; ok {
			result[k] = v
		}
	}
	return result, nil
}

func (m *Memory) MultiSet(_ context.Context, pairs map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed != nil {
		return m.failed
	}
	for k, v := range pairs {
		m.items[k] = v
	}
	return nil
}

func (m *Memory) Close() error { return nil }

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
