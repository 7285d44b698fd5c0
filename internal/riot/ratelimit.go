package riot

import (
	"sync"
	"time"
)

// Development API key limits. Kept slightly under Riot's published
// 20/s and 100/2min so clock skew never trips a 429 mid-batch.
const (
	shortWindowLimit = 15
	longWindowLimit  = 90
	shortWindowSpan  = time.Second
	longWindowSpan   = 2 * time.Minute
)

// rateLimiter is a sliding-window limiter over the two Riot rate windows.
// Every request records a timestamp in both windows; Wait blocks until
// both windows have room.
type rateLimiter struct {
	mu    sync.Mutex
	short []time.Time
	long  []time.Time
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{}
}

// Wait blocks until a request is allowed, then records it.
func (l *rateLimiter) Wait() {
	for {
		l.mu.Lock()
		now := time.Now()
		l.short = trimWindow(l.short, now.Add(-shortWindowSpan))
		l.long = trimWindow(l.long, now.Add(-longWindowSpan))

		var wait time.Duration
		switch {
		case len(l.short) >= shortWindowLimit:
			wait = l.short[0].Add(shortWindowSpan).Sub(now) + 50*time.Millisecond
		case len(l.long) >= longWindowLimit:
			wait = l.long[0].Add(longWindowSpan).Sub(now) + 50*time.Millisecond
		default:
			l.short = append(l.short, now)
			l.long = append(l.long, now)
			l.mu.Unlock()
			return
		}

		l.mu.Unlock()
		time.Sleep(wait)
	}
}

// trimWindow drops timestamps at or before the cutoff. Slices are
// append-ordered, so the survivors are a suffix.
func trimWindow(window []time.Time, cutoff time.Time) []time.Time {
	for i, t := range window {
		if t.After(cutoff) {
			return append(window[:0:0], window[i:]...)
		}
	}
	return nil
}
