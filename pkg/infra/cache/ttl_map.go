package cache

import (
	"sync"
	"time"
)

// sweepEvery is how many writes pass between opportunistic purges of
// expired entries.
const sweepEvery = 256

type ttlEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e ttlEntry) live(now time.Time) bool {
	return e.expiresAt.IsZero() || now.Before(e.expiresAt)
}

// TTLMap backs the in-process cache. Entries expire individually; a zero
// expiration keeps the entry until it is deleted.
type TTLMap struct {
	mu      sync.Mutex
	entries map[string]ttlEntry
	writes  int
	now     func() time.Time
}

func NewTTLMap() *TTLMap {
	return &TTLMap{
		entries: make(map[string]ttlEntry),
		now:     time.Now,
	}
}

func (m *TTLMap) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if !e.live(m.now()) {
		delete(m.entries, key)
		return nil, false
	}
	return e.value, true
}

func (m *TTLMap) Set(key string, value []byte, expiration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := ttlEntry{value: value}
	if expiration > 0 {
		e.expiresAt = m.now().Add(expiration)
	}
	m.entries[key] = e

	m.writes++
	if m.writes%sweepEvery == 0 {
		m.sweepLocked()
	}
}

func (m *TTLMap) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Sweep drops every expired entry and returns how many were removed.
func (m *TTLMap) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweepLocked()
}

func (m *TTLMap) sweepLocked() int {
	now := m.now()
	removed := 0
	for k, e := range m.entries {
		if !e.live(now) {
			delete(m.entries, k)
			removed++
		}
	}
	return removed
}

func (m *TTLMap) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *TTLMap) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]ttlEntry)
}
