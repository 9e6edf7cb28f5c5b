package cache

import (
	"context"
	"sync"

	"go-measlesmonitor/simulation"
)

// MemoryCache is the in-process fallback used when no Redis address is
// configured, and the test double.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]simulation.Outcome
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]simulation.Outcome)}
}

func (m *MemoryCache) Get(ctx context.Context, key string) (simulation.Outcome, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out, ok := m.data[key]
	return out, ok
}

func (m *MemoryCache) Set(ctx context.Context, key string, out simulation.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = out
	return nil
}
