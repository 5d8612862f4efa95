package model

import "time"

type SocialPlatform string

type SocialPostStatus string

const (
	PlatformLinkedIn SocialPlatform = "linkedin"
	PlatformTwitter  SocialPlatform = "twitter"
)

const (
	PostScheduled  SocialPostStatus = "scheduled"
	PostPublishing SocialPostStatus = "publishing"
	PostPublished  SocialPostStatus = "published"
	PostFailed     SocialPostStatus = "failed"
	PostCancelled  SocialPostStatus = "cancelled"
)

func (p SocialPlatform) Valid() bool {
	return p == PlatformLinkedIn || p == PlatformTwitter
}

// MaxPostLength is the platform's character limit for a single post.
func (p SocialPlatform) MaxPostLength() int {
	if p == PlatformTwitter {
		return 280
	}
	return 3000
}

func (s SocialPostStatus) Valid() bool {
	switch s {
	case PostScheduled, PostPublishing, PostPublished, PostFailed, PostCancelled:
		return true
	}
	return false
}

type SocialConnection struct {
	ID                int64          `json:"id,string"`
	UserID            int64          `json:"user_id,string"`
	Platform          SocialPlatform `json:"platform"`
	ExternalAccountID string         `json:"external_account_id"`
	AccountName       string         `json:"account_name"`
	AccessToken       string         `json:"-"`
	RefreshToken      *string        `json:"-"`
	TokenExpiresAt    *time.Time     `json:"token_expires_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type SocialPost struct {
	ID             int64            `json:"id,string"`
	UserID         int64            `json:"user_id,string"`
	Platform       SocialPlatform   `json:"platform"`
	Content        string           `json:"content"`
	ScheduledAt    time.Time        `json:"scheduled_at"`
	Status         SocialPostStatus `json:"status"`
	Attempts       int              `json:"attempts"`
	ExternalPostID *string          `json:"external_post_id,omitempty"`
	LastError      *string          `json:"last_error,omitempty"`
	PublishedAt    *time.Time       `json:"published_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
