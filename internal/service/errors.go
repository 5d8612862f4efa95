package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidCode    = errors.New("invalid authorization code")
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionExpired = errors.New("session expired")

	ErrTaskNotFound         = errors.New("task not found")
	ErrGoalNotFound         = errors.New("goal not found")
	ErrBriefcaseNotFound    = errors.New("briefcase not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrTemplateNotFound     = errors.New("template not found")
	ErrCompetitorNotFound   = errors.New("competitor not found")
	ErrScrapingJobNotFound  = errors.New("scraping job not found")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrOpportunityNotFound  = errors.New("opportunity not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrBrandProfileNotFound = errors.New("brand profile not found")
	ErrPostNotFound         = errors.New("social post not found")
	ErrConnectionNotFound   = errors.New("social connection not found")

	ErrDefaultBriefcase   = errors.New("the default briefcase cannot be deleted")
	ErrOpportunityExists  = errors.New("an opportunity already exists for this alert")
	ErrPostNotCancellable = errors.New("only scheduled posts can be cancelled")
	ErrPlanLimitReached   = errors.New("plan limit reached")
	ErrInvalidWebhook     = errors.New("invalid webhook secret")
	ErrFeatureUnavailable = errors.New("feature is not configured")
	ErrAssistantFailed    = errors.New("the assistant could not answer")
)

// ValidationError reports rejected input, keyed by field.
type ValidationError struct {
	Message string
	Details map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	fields := make([]string, 0, len(e.Details))
	for k, v := range e.Details {
		fields = append(fields, fmt.Sprintf("%s: %s", k, v))
	}
	sort.Strings(fields)
	return e.Message + " (" + strings.Join(fields, "; ") + ")"
}

// validator collects field errors and turns them into a single ValidationError.
type validator struct {
	details map[string]string
}

func (v *validator) check(ok bool, field, msg string) {
	if ok {
		return
	}
	if v.details == nil {
		v.details = map[string]string{}
	}
	if _, exists := v.details[field]; !exists {
		v.details[field] = msg
	}
}

func (v *validator) err() error {
	if len(v.details) == 0 {
		return nil
	}
	return &ValidationError{Message: "validation failed", Details: v.details}
}

func invalid(field, msg string) error {
	return &ValidationError{Message: "validation failed", Details: map[string]string{field: msg}}
}

// oneOf renders accepted enum values for error details.
func oneOf[T ~string](values ...T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "must be one of: " + strings.Join(parts, ", ")
}
