package store

import (
	"context"
	"sync"
)

// MemoryStats is the default StatsStore. State lives for the process lifetime
// only.
type MemoryStats struct {
	mu    sync.RWMutex
	users map[string]*userRecord
}

func NewMemoryStats() *MemoryStats {
	return &MemoryStats{users: make(map[string]*userRecord)}
}

func (m *MemoryStats) RecordActivity(_ context.Context, userID string, act Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.users[userID]
	if !ok {
		rec = &userRecord{}
		m.users[userID] = rec
	}
	rec.apply(act)
	return nil
}

func (m *MemoryStats) Stats(_ context.Context, userID string) (UserStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.users[userID]
	if !ok {
		return (&userRecord{}).stats(), nil
	}
	return rec.stats(), nil
}

func (m *MemoryStats) Activity(ctx context.Context, userID string) ([]Activity, error) {
	stats, err := m.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.RecentActivity, nil
}
