package websocket

import "sync"

// ConnLimiter caps the number of open moderation sockets. A limit <= 0
// means no cap.
type ConnLimiter struct {
	mu       sync.Mutex
	limit    int
	open     int
	rejected uint64
}

func NewConnLimiter(limit int) *ConnLimiter {
	return &ConnLimiter{limit: limit}
}

// TryAcquire reserves a slot, returning false when the limiter is full.
func (l *ConnLimiter) TryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.limit > 0 && l.open >= l.limit {
		l.rejected++
		return false
	}
	l.open++
	return true
}

// Release frees a slot. Extra calls are ignored.
func (l *ConnLimiter) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.open > 0 {
		l.open--
	}
}

type LimiterStats struct {
	Open     int    `json:"open"`
	Limit    int    `json:"limit"`
	Rejected uint64 `json:"rejected"`
}

func (l *ConnLimiter) Stats() LimiterStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LimiterStats{Open: l.open, Limit: l.limit, Rejected: l.rejected}
}
