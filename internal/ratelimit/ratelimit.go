// Package ratelimit implements the per-IP daily quota guarding the audit
// endpoint. The store is an explicit collaborator constructed once at
// startup and handed to the HTTP layer, never package-level state.
package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of one quota check
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type entry struct {
	count   int
	resetAt time.Time
}

// DailyLimiter tracks audit counts per client IP, resetting at the end of
// each UTC day
type DailyLimiter struct {
	limit   int
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// NewDailyLimiter creates a limiter allowing limit audits per IP per day
func NewDailyLimiter(limit int) *DailyLimiter {
	return &DailyLimiter{
		limit:   limit,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Check consumes one unit of quota for ip if available
func (l *DailyLimiter) Check(ip string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().UTC()

	e, ok := l.entries[ip]
	if !ok || now.After(e.resetAt) {
		e = &entry{count: 1, resetAt: endOfDay(now)}
		l.entries[ip] = e
		return Decision{Allowed: true, Remaining: l.limit - 1, ResetAt: e.resetAt}
	}

	if e.count < l.limit {
		e.count++
		return Decision{Allowed: true, Remaining: l.limit - e.count, ResetAt: e.resetAt}
	}

	return Decision{Allowed: false, Remaining: 0, ResetAt: e.resetAt}
}

// Prune drops expired entries; called periodically by the scheduler so the
// map does not grow unbounded across days.
func (l *DailyLimiter) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().UTC()
	pruned := 0
	for ip, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, ip)
			pruned++
		}
	}
	return pruned
}

func endOfDay(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, time.UTC)
}
