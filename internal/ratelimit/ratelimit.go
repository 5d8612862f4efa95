package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Result describes one admission decision.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Rule is a request budget per client for one scope ("api", "chat").
type Rule struct {
	Scope  string
	Limit  int
	Window time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, rule Rule, clientKey string) (Result, error)
}

// RedisLimiter counts requests in fixed windows shared by every API replica.
type RedisLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client, now: time.Now}
}

// WindowKey names the counter for the window containing now.
func WindowKey(rule Rule, clientKey string, now time.Time) string {
	window := now.Unix() / windowSeconds(rule)
	return fmt.Sprintf("ratelimit:%s:%s:%d", rule.Scope, clientKey, window)
}

// windowSeconds is the fixed-window length in whole seconds, at least one.
func windowSeconds(rule Rule) int64 {
	return max(int64(rule.Window/time.Second), 1)
}

func (l *RedisLimiter) Allow(ctx context.Context, rule Rule, clientKey string) (Result, error) {
	now := l.now()
	key := WindowKey(rule, clientKey, now)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, time.Duration(windowSeconds(rule))*time.Second)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("incrementing %s: %w", key, err)
	}

	count := int(incr.Val())
	res := Result{
		Allowed:   count <= rule.Limit,
		Limit:     rule.Limit,
		Remaining: max(rule.Limit-count, 0),
	}
	if !res.Allowed {
		windowSecs := windowSeconds(rule)
		end := time.Unix((now.Unix()/windowSecs+1)*windowSecs, 0)
		res.RetryAfter = end.Sub(now)
	}
	return res, nil
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps a token bucket per client in process memory.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	calls   int
	now     func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{buckets: make(map[string]*bucket), now: time.Now}
}

func (l *MemoryLimiter) Allow(_ context.Context, rule Rule, clientKey string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	key := rule.Scope + ":" + clientKey

	b, ok := l.buckets[key]
	if !ok {
		every := rule.Window / time.Duration(max(rule.Limit, 1))
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), rule.Limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	l.calls++
	if l.calls%1000 == 0 {
		l.sweep(now, rule.Window)
	}

	res := Result{Limit: rule.Limit}
	r := b.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		res.RetryAfter = delay
		return res, nil
	}

	res.Allowed = true
	res.Remaining = max(int(b.limiter.TokensAt(now)), 0)
	return res, nil
}

// sweep drops buckets idle for longer than a full window; they would be full again anyway.
func (l *MemoryLimiter) sweep(now time.Time, window time.Duration) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > window {
			delete(l.buckets, key)
		}
	}
}

// FallbackLimiter prefers the shared limiter and drops to the local one when it errors.
type FallbackLimiter struct {
	primary  Limiter
	fallback Limiter
}

func NewFallbackLimiter(primary, fallback Limiter) *FallbackLimiter {
	return &FallbackLimiter{primary: primary, fallback: fallback}
}

func (l *FallbackLimiter) Allow(ctx context.Context, rule Rule, clientKey string) (Result, error) {
	res, err := l.primary.Allow(ctx, rule, clientKey)
	if err == nil {
		return res, nil
	}
	slog.WarnContext(ctx, "shared rate limiter unavailable, using local buckets", "error", err)
	return l.fallback.Allow(ctx, rule, clientKey)
}
