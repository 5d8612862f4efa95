package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/http/middleware"
	"solosuccess.app/api/internal/service"
	"solosuccess.app/api/internal/social"
)

var notFoundErrors = []error{
	service.ErrUserNotFound,
	service.ErrTaskNotFound,
	service.ErrGoalNotFound,
	service.ErrBriefcaseNotFound,
	service.ErrDocumentNotFound,
	service.ErrTemplateNotFound,
	service.ErrCompetitorNotFound,
	service.ErrScrapingJobNotFound,
	service.ErrAlertNotFound,
	service.ErrOpportunityNotFound,
	service.ErrConversationNotFound,
	service.ErrBrandProfileNotFound,
	service.ErrPostNotFound,
	service.ErrConnectionNotFound,
}

var conflictErrors = []error{
	service.ErrDefaultBriefcase,
	service.ErrOpportunityExists,
	service.ErrPostNotCancellable,
	social.ErrProcessorRunning,
	social.ErrProcessorNotRunning,
}

// respondError maps service errors onto HTTP responses. action names the failed
// operation in the log line and in the body of 500 responses.
func respondError(c *gin.Context, err error, action string) {
	ctx := c.Request.Context()

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		body := gin.H{"error": verr.Message}
		if len(verr.Details) > 0 {
			body["details"] = verr.Details
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	var limitErr *service.PlanLimitError
	if errors.As(err, &limitErr) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":    "plan_limit",
			"message":  limitErr.Error(),
			"resource": limitErr.Resource,
			"tier":     limitErr.Tier,
			"limit":    limitErr.Limit,
		})
		return
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusNotFound, gin.H{"error": target.Error()})
			return
		}
	}

	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusConflict, gin.H{"error": target.Error()})
			return
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		slog.InfoContext(ctx, "duplicate write rejected", "action", action, "constraint", pgErr.ConstraintName)
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}

	switch {
	case errors.Is(err, service.ErrSessionExpired),
		errors.Is(err, service.ErrInvalidCode),
		errors.Is(err, service.ErrInvalidWebhook):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrFeatureUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAssistantFailed):
		slog.WarnContext(ctx, "assistant call failed", "action", action, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": service.ErrAssistantFailed.Error()})
	default:
		slog.ErrorContext(ctx, "request failed", "action", action, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action})
	}
}

func badRequest(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": gin.H{"body": err.Error()}})
}

// pathID parses a snowflake path parameter, writing 400 when it is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	v, err := id.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

// userID returns the authenticated caller. Routes using it sit behind RequireSession.
func userID(c *gin.Context) int64 {
	if user := middleware.GetUser(c.Request.Context()); user != nil {
		return user.ID
	}
	return 0
}
