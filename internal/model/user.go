package model

import "time"

type User struct {
	ID                    int64      `json:"id,string"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	AvatarURL             *string    `json:"avatar_url,omitempty"`
	WorkOSID              *string    `json:"-"`
	BusinessName          *string    `json:"business_name,omitempty"`
	Industry              *string    `json:"industry,omitempty"`
	EmailNotifications    bool       `json:"email_notifications"`
	OnboardingCompletedAt *time.Time `json:"onboarding_completed_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (u *User) OnboardingCompleted() bool {
	return u.OnboardingCompletedAt != nil
}
