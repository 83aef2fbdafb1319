package security

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// CounterStore tracks request counts for rate limiting
type CounterStore interface {
	// Allow reports whether another request under key fits within
	// limit requests per window
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Rule is a named rate limit applied by the middleware
type Rule struct {
	Name   string
	Limit  int
	Window time.Duration
}

// Key builds the store key for a subject under this rule
func (r Rule) Key(subject string) string {
	return fmt.Sprintf("ratelimit:%s:%s", r.Name, subject)
}

// RedisStore implements CounterStore with a sliding window over
// a Redis sorted set
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore creates a Redis-backed counter store
func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

// Allow checks and records a request in the sliding window
func (s *RedisStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-window)

	pipe := s.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error("rate limit check failed", zap.Error(err))
		return false, err
	}
	return countCmd.Val() < int64(limit), nil
}

// MemoryStore implements CounterStore with per-key token buckets.
// Suitable for single-process deployments and tests.
type MemoryStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates an in-memory counter store. Call Close to
// stop its eviction goroutine.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		stop:     make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Close stops the eviction goroutine. Allow remains usable.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Allow checks the token bucket for the key
func (s *MemoryStore) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)
		s.limiters[key] = limiter
	}
	s.lastSeen[key] = time.Now()
	return limiter.Allow(), nil
}

// cleanup evicts buckets idle for more than a day
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			cutoff := time.Now().Add(-24 * time.Hour)
			for key, seen := range s.lastSeen {
				if seen.Before(cutoff) {
					delete(s.limiters, key)
					delete(s.lastSeen, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
