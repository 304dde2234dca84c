package ratelimiter

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// FixedWindowRateLimiter allows limit requests per client per window. Each
// client's window opens on its first request; expired windows are swept
// lazily instead of by a timer per client.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients   map[string]*window
	limit     int
	window    time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewFixedWindowLimiter(limit int, w time.Duration) *FixedWindowRateLimiter {
	return newWithClock(limit, w, time.Now)
}

func newWithClock(limit int, w time.Duration, now func() time.Time) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients:   make(map[string]*window),
		limit:     limit,
		window:    w,
		now:       now,
		lastSweep: now(),
	}
}

// Allow records a request from ip. When the client is over its limit it
// returns false and the time left until its window resets.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	rl.sweep(now)

	w, ok := rl.clients[ip]
	if !ok || now.Sub(w.start) >= rl.window {
		rl.clients[ip] = &window{start: now, count: 1}
		return true, 0
	}
	if w.count < rl.limit {
		w.count++
		return true, 0
	}
	return false, w.start.Add(rl.window).Sub(now)
}

// sweep drops expired windows at most once per window. Caller holds the lock.
func (rl *FixedWindowRateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	for ip, w := range rl.clients {
		if now.Sub(w.start) >= rl.window {
			delete(rl.clients, ip)
		}
	}
	rl.lastSweep = now
}

func (rl *FixedWindowRateLimiter) clientCount() int {
	rl.Lock()
	defer rl.Unlock()
	return len(rl.clients)
}
