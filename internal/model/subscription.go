package model

import "time"

type SubscriptionTier string

type SubscriptionStatus string

const (
	TierFree       SubscriptionTier = "free"
	TierPro        SubscriptionTier = "pro"
	TierEnterprise SubscriptionTier = "enterprise"
)

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Unlimited marks a plan limit with no ceiling.
const Unlimited = -1

func (t SubscriptionTier) Valid() bool {
	switch t {
	case TierFree, TierPro, TierEnterprise:
		return true
	}
	return false
}

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionActive, SubscriptionTrialing, SubscriptionPastDue, SubscriptionCanceled:
		return true
	}
	return false
}

// CompetitorLimit returns how many competitors a tier may track, or Unlimited.
func (t SubscriptionTier) CompetitorLimit() int {
	switch t {
	case TierPro:
		return 25
	case TierEnterprise:
		return Unlimited
	default:
		return 3
	}
}

type Subscription struct {
	ID                 int64              `json:"id,string"`
	UserID             int64              `json:"user_id,string"`
	Tier               SubscriptionTier   `json:"tier"`
	Status             SubscriptionStatus `json:"status"`
	ExternalCustomerID *string            `json:"external_customer_id,omitempty"`
	CurrentPeriodEnd   *time.Time         `json:"current_period_end,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// EffectiveTier drops lapsed paid plans back to free limits.
func (s *Subscription) EffectiveTier() SubscriptionTier {
	if s == nil {
		return TierFree
	}
	switch s.Status {
	case SubscriptionActive, SubscriptionTrialing:
		return s.Tier
	default:
		return TierFree
	}
}
