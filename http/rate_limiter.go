package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client. Each bucket holds
// capacity tokens and refills completely over refillDur.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	every       rate.Limit
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	if capacity < 1 {
		capacity = 1
	}
	rl := &RateLimiter{
		capacity:    capacity,
		every:       rate.Every(refillDur / time.Duration(capacity)),
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup(time.Now())
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > bucketCleanupThreshold {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCleanup)
	})
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.clients[ip]
	if !exists {
		bucket = &clientBucket{
			limiter: rate.NewLimiter(r.every, r.capacity),
		}
		r.clients[ip] = bucket
	}
	bucket.lastSeen = now

	return bucket.limiter.AllowN(now, 1)
}
