package store

import (
	"context"
	"sync"
)

// MemKV is an in-memory KV for tests and ephemeral runs.
type MemKV struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{slots: make(map[string][]byte)}
}

func (m *MemKV) Get(_ context.Context, slot string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.slots[slot]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (m *MemKV) Set(_ context.Context, slot string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.slots[slot] = stored
	return nil
}
