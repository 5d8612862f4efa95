package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/common/logger"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
)

type contextKey string

const (
	SessionCookieName = "solosuccess_session"
	SessionIDHeader   = "X-Session-ID"
	RequestIDHeader   = "X-Request-ID"

	userContextKey      contextKey = "user"
	sessionIDContextKey contextKey = "session_id"
)

// RequireSession resolves the session from the X-Session-ID header or the
// session cookie and aborts with 401 when it is missing or expired.
func RequireSession(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sessionID, ok := SessionIDFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		user, err := authService.ValidateSession(ctx, sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				ClearSessionCookie(c, false)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			slog.ErrorContext(ctx, "failed to validate session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx = context.WithValue(ctx, userContextKey, user)
		ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &user.ID})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = strconv.FormatInt(id.New(), 10)
		}
		c.Header(RequestIDHeader, requestID)

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{RequestID: &requestID})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

// WithUser places an authenticated user on the context the way RequireSession does.
func WithUser(ctx context.Context, user *model.User, sessionID int64) context.Context {
	ctx = context.WithValue(ctx, userContextKey, user)
	return context.WithValue(ctx, sessionIDContextKey, sessionID)
}

func SessionIDFromRequest(c *gin.Context) (int64, bool) {
	raw := c.GetHeader(SessionIDHeader)
	if raw == "" {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			return 0, false
		}
		raw = cookie
	}
	sessionID, err := id.Parse(raw)
	if err != nil {
		return 0, false
	}
	return sessionID, true
}

func SetSessionCookie(c *gin.Context, sessionID int64, maxAge int, secure bool) {
	c.SetCookie(SessionCookieName, strconv.FormatInt(sessionID, 10), maxAge, "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
