package logger

import (
	"context"
	"unicode/utf8"
)

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every log record emitted with a context that carries them.
type LogFields struct {
	UserID       *int64  // Authenticated user
	JobID        *int64  // Scraping job ID
	CompetitorID *int64  // Competitor being monitored
	PostID       *int64  // Scheduled social post
	MessageID    *string // Redis stream message ID
	TaskType     *string // Queue task type (e.g., "competitor_scrape")
	RequestID    *string // Inbound HTTP request ID
	Component    string  // Component name, e.g. "solosuccess.worker.scrape"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, newer non-nil values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.JobID != nil {
		result.JobID = next.JobID
	}
	if next.CompetitorID != nil {
		result.CompetitorID = next.CompetitorID
	}
	if next.PostID != nil {
		result.PostID = next.PostID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.TaskType != nil {
		result.TaskType = next.TaskType
	}
	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper for setting LogFields inline:
// logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate cuts s to at most maxLen bytes without splitting a rune and appends
// "..." when it was longer.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	for maxLen > 0 && !utf8.RuneStart(s[maxLen]) {
		maxLen--
	}
	return s[:maxLen] + "..."
}
