package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

type SubscriptionService interface {
	Summary(ctx context.Context, userID int64) (*SubscriptionSummary, error)
	// ApplyBillingEvent records a plan change pushed by the billing provider.
	ApplyBillingEvent(ctx context.Context, secret string, event BillingEvent) (*model.Subscription, error)
}

type BillingEvent struct {
	UserEmail        string     `json:"user_email"`
	Tier             string     `json:"tier"`
	Status           string     `json:"status"`
	CustomerID       string     `json:"customer_id"`
	CurrentPeriodEnd *time.Time `json:"current_period_end"`
}

type PlanLimits struct {
	Competitors int `json:"competitors"` // -1 for unlimited
}

type PlanUsage struct {
	Competitors int64 `json:"competitors"`
	Documents   int64 `json:"documents"`
}

type SubscriptionSummary struct {
	Tier             model.SubscriptionTier   `json:"tier"`
	Status           model.SubscriptionStatus `json:"status"`
	EffectiveTier    model.SubscriptionTier   `json:"effective_tier"`
	CurrentPeriodEnd *time.Time               `json:"current_period_end,omitempty"`
	Limits           PlanLimits               `json:"limits"`
	Usage            PlanUsage                `json:"usage"`
}

var (
	tiers       = []model.SubscriptionTier{model.TierFree, model.TierPro, model.TierEnterprise}
	subStatuses = []model.SubscriptionStatus{model.SubscriptionActive, model.SubscriptionTrialing, model.SubscriptionPastDue, model.SubscriptionCanceled}
)

type subscriptionService struct {
	subscriptions store.SubscriptionStore
	users         store.UserStore
	competitors   store.CompetitorStore
	documents     store.DocumentStore
	webhookSecret string
}

func NewSubscriptionService(subscriptions store.SubscriptionStore, users store.UserStore, competitors store.CompetitorStore, documents store.DocumentStore, webhookSecret string) SubscriptionService {
	return &subscriptionService{
		subscriptions: subscriptions,
		users:         users,
		competitors:   competitors,
		documents:     documents,
		webhookSecret: webhookSecret,
	}
}

func (s *subscriptionService) Summary(ctx context.Context, userID int64) (*SubscriptionSummary, error) {
	sub, err := s.subscriptions.GetByUser(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	competitors, err := s.competitors.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("counting competitors: %w", err)
	}
	documents, err := s.documents.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("counting documents: %w", err)
	}

	effective := sub.EffectiveTier()
	summary := &SubscriptionSummary{
		Tier:          model.TierFree,
		Status:        model.SubscriptionActive,
		EffectiveTier: effective,
		Limits:        PlanLimits{Competitors: effective.CompetitorLimit()},
		Usage:         PlanUsage{Competitors: competitors, Documents: documents},
	}
	if sub != nil {
		summary.Tier = sub.Tier
		summary.Status = sub.Status
		summary.CurrentPeriodEnd = sub.CurrentPeriodEnd
	}
	return summary, nil
}

func (s *subscriptionService) ApplyBillingEvent(ctx context.Context, secret string, event BillingEvent) (*model.Subscription, error) {
	if s.webhookSecret == "" {
		slog.WarnContext(ctx, "billing webhook received but no secret is configured")
		return nil, ErrFeatureUnavailable
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.webhookSecret)) != 1 {
		return nil, ErrInvalidWebhook
	}

	tier := model.SubscriptionTier(event.Tier)
	status := model.SubscriptionStatus(event.Status)
	email := strings.ToLower(strings.TrimSpace(event.UserEmail))

	var v validator
	v.check(email != "", "user_email", "is required")
	v.check(tier.Valid(), "tier", oneOf(tiers...))
	v.check(status.Valid(), "status", oneOf(subStatuses...))
	if err := v.err(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	sub := &model.Subscription{
		ID:               id.New(),
		UserID:           user.ID,
		Tier:             tier,
		Status:           status,
		CurrentPeriodEnd: event.CurrentPeriodEnd,
	}
	if c := strings.TrimSpace(event.CustomerID); c != "" {
		sub.ExternalCustomerID = &c
	}
	if err := s.subscriptions.Upsert(ctx, sub); err != nil {
		return nil, fmt.Errorf("upserting subscription: %w", err)
	}

	slog.InfoContext(ctx, "subscription updated from billing",
		"user_id", user.ID,
		"tier", sub.Tier,
		"status", sub.Status)
	return sub, nil
}
