package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/http/middleware"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/ratelimit"
	"solosuccess.app/api/internal/service"
)

type stubAuthService struct {
	service.AuthService
	validateFn func(ctx context.Context, sessionID int64) (*model.User, error)
}

func (s *stubAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	return s.validateFn(ctx, sessionID)
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, ratelimit.Rule, string) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("redis down")
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var _ = BeforeSuite(func() {
	gin.SetMode(gin.TestMode)
})

var _ = Describe("RequireSession", func() {
	var (
		router *gin.Engine
		auth   *stubAuthService
		seen   *model.User
	)

	BeforeEach(func() {
		seen = nil
		auth = &stubAuthService{
			validateFn: func(_ context.Context, sessionID int64) (*model.User, error) {
				if sessionID != 77 {
					return nil, service.ErrSessionExpired
				}
				return &model.User{ID: 42, Email: "founder@example.com"}, nil
			},
		}
		router = gin.New()
		router.GET("/private", middleware.RequireSession(auth), func(c *gin.Context) {
			seen = middleware.GetUser(c.Request.Context())
			c.Status(http.StatusOK)
		})
	})

	It("accepts the X-Session-ID header", func() {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(middleware.SessionIDHeader, "77")

		w := serve(router, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(seen).NotTo(BeNil())
		Expect(seen.ID).To(Equal(int64(42)))
	})

	It("falls back to the session cookie", func() {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "77"})

		Expect(serve(router, req).Code).To(Equal(http.StatusOK))
	})

	It("rejects requests without a session", func() {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/private", nil))

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(seen).To(BeNil())
	})

	It("rejects expired sessions", func() {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(middleware.SessionIDHeader, "78")

		w := serve(router, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Body.String()).To(ContainSubstring("session expired"))
	})

	It("returns 500 when the session store fails", func() {
		auth.validateFn = func(context.Context, int64) (*model.User, error) {
			return nil, errors.New("db down")
		}
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(middleware.SessionIDHeader, "77")

		Expect(serve(router, req).Code).To(Equal(http.StatusInternalServerError))
	})
})

var _ = Describe("RequireAdminKey", func() {
	newRouter := func(key string) *gin.Engine {
		router := gin.New()
		router.GET("/admin", middleware.RequireAdminKey(key), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	It("is unavailable when no key is configured", func() {
		w := serve(newRouter(""), httptest.NewRequest(http.MethodGet, "/admin", nil))
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})

	It("accepts the header and bearer forms", func() {
		router := newRouter("s3cret")

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(middleware.AdminKeyHeader, "s3cret")
		Expect(serve(router, req).Code).To(Equal(http.StatusOK))

		req = httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer s3cret")
		Expect(serve(router, req).Code).To(Equal(http.StatusOK))
	})

	It("rejects a wrong key", func() {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(middleware.AdminKeyHeader, "guess")

		Expect(serve(newRouter("s3cret"), req).Code).To(Equal(http.StatusUnauthorized))
	})
})

var _ = Describe("RateLimit", func() {
	rule := ratelimit.Rule{Scope: "chat", Limit: 2, Window: time.Minute}

	It("sets budget headers and rejects requests over the limit", func() {
		router := gin.New()
		router.GET("/chat", middleware.RateLimit(ratelimit.NewMemoryLimiter(), rule), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		first := serve(router, httptest.NewRequest(http.MethodGet, "/chat", nil))
		Expect(first.Code).To(Equal(http.StatusOK))
		Expect(first.Header().Get("X-RateLimit-Limit")).To(Equal("2"))
		Expect(first.Header().Get("X-RateLimit-Remaining")).To(Equal("1"))

		Expect(serve(router, httptest.NewRequest(http.MethodGet, "/chat", nil)).Code).To(Equal(http.StatusOK))

		third := serve(router, httptest.NewRequest(http.MethodGet, "/chat", nil))
		Expect(third.Code).To(Equal(http.StatusTooManyRequests))
		Expect(third.Body.String()).To(ContainSubstring("rate limit exceeded"))
		Expect(third.Header().Get("Retry-After")).NotTo(BeEmpty())
		Expect(third.Header().Get("X-RateLimit-Remaining")).To(Equal("0"))
	})

	It("lets requests through when the limiter fails", func() {
		router := gin.New()
		router.GET("/chat", middleware.RateLimit(brokenLimiter{}, rule), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		Expect(serve(router, httptest.NewRequest(http.MethodGet, "/chat", nil)).Code).To(Equal(http.StatusOK))
	})
})

var _ = Describe("Recovery", func() {
	It("turns panics into a 500", func() {
		router := gin.New()
		router.Use(middleware.Recovery(), middleware.Logger())
		router.GET("/boom", func(*gin.Context) { panic("boom") })

		w := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring("internal server error"))
	})
})

var _ = Describe("RequestID", func() {
	It("echoes a caller supplied request id", func() {
		router := gin.New()
		router.Use(middleware.RequestID())
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-1")
		Expect(serve(router, req).Header().Get(middleware.RequestIDHeader)).To(Equal("req-1"))
	})
})
