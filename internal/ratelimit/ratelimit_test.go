package ratelimit_test

import (
	"context"
	"errors"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"solosuccess.app/api/internal/ratelimit"
)

var apiRule = ratelimit.Rule{Scope: "api", Limit: 3, Window: time.Minute}

var _ = Describe("WindowKey", func() {
	It("buckets by scope, client and window index", func() {
		now := time.Unix(1_700_000_030, 0)
		Expect(ratelimit.WindowKey(apiRule, "10.0.0.1", now)).To(Equal("ratelimit:api:10.0.0.1:28333333"))
	})

	It("treats sub-second windows as one second", func() {
		rule := ratelimit.Rule{Scope: "api", Limit: 3, Window: 500 * time.Millisecond}
		now := time.Unix(1_700_000_030, 0)
		Expect(ratelimit.WindowKey(rule, "10.0.0.1", now)).To(Equal("ratelimit:api:10.0.0.1:1700000030"))
	})
})

var _ = Describe("RedisLimiter", func() {
	var (
		ctx     context.Context
		mr      *miniredis.Miniredis
		limiter *ratelimit.RedisLimiter
	)

	BeforeEach(func() {
		ctx = context.Background()
		mr = miniredis.RunT(GinkgoT())
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		DeferCleanup(client.Close)
		limiter = ratelimit.NewRedisLimiter(client)
	})

	It("admits requests up to the limit", func() {
		for i := 3; i > 0; i-- {
			res, err := limiter.Allow(ctx, apiRule, "10.0.0.1")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Allowed).To(BeTrue())
			Expect(res.Remaining).To(Equal(i - 1))
		}

		res, err := limiter.Allow(ctx, apiRule, "10.0.0.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Allowed).To(BeFalse())
		Expect(res.Remaining).To(BeZero())
		Expect(res.RetryAfter).To(BeNumerically(">", 0))
		Expect(res.RetryAfter).To(BeNumerically("<=", time.Minute))
	})

	It("enforces sub-second windows as one-second windows", func() {
		rule := ratelimit.Rule{Scope: "burst", Limit: 1, Window: 100 * time.Millisecond}
		limiter.SetClock(func() time.Time { return time.Unix(1_700_000_030, 250_000_000) })

		res, err := limiter.Allow(ctx, rule, "10.0.0.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Allowed).To(BeTrue())

		res, err = limiter.Allow(ctx, rule, "10.0.0.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Allowed).To(BeFalse())
		Expect(res.RetryAfter).To(Equal(750 * time.Millisecond))
	})

	It("counts clients and scopes separately", func() {
		for range 3 {
			_, _ = limiter.Allow(ctx, apiRule, "10.0.0.1")
		}

		res, _ := limiter.Allow(ctx, apiRule, "10.0.0.2")
		Expect(res.Allowed).To(BeTrue())

		res, _ = limiter.Allow(ctx, ratelimit.Rule{Scope: "chat", Limit: 1, Window: time.Minute}, "10.0.0.1")
		Expect(res.Allowed).To(BeTrue())
	})

	It("expires the counter with the window", func() {
		_, err := limiter.Allow(ctx, apiRule, "10.0.0.1")
		Expect(err).NotTo(HaveOccurred())

		keys := mr.Keys()
		Expect(keys).To(HaveLen(1))
		Expect(mr.TTL(keys[0])).To(Equal(time.Minute))
	})

	It("errors when redis is down", func() {
		mr.Close()

		_, err := limiter.Allow(ctx, apiRule, "10.0.0.1")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("MemoryLimiter", func() {
	It("refuses once the bucket is empty", func() {
		limiter := ratelimit.NewMemoryLimiter()
		ctx := context.Background()

		for range 3 {
			res, err := limiter.Allow(ctx, apiRule, "10.0.0.1")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Allowed).To(BeTrue())
		}

		res, err := limiter.Allow(ctx, apiRule, "10.0.0.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Allowed).To(BeFalse())
		Expect(res.RetryAfter).To(BeNumerically(">", 0))

		res, _ = limiter.Allow(ctx, apiRule, "10.0.0.2")
		Expect(res.Allowed).To(BeTrue())
	})
})

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, ratelimit.Rule, string) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("connection refused")
}

var _ = Describe("FallbackLimiter", func() {
	It("uses the local limiter when the shared one fails", func() {
		limiter := ratelimit.NewFallbackLimiter(failingLimiter{}, ratelimit.NewMemoryLimiter())

		res, err := limiter.Allow(context.Background(), apiRule, "10.0.0.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Allowed).To(BeTrue())
		Expect(res.Limit).To(Equal(3))
	})
})
