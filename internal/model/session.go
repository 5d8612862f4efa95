package model

import "time"

// SessionTTL is how long a dashboard session stays valid after login.
const SessionTTL = 7 * 24 * time.Hour

type Session struct {
	ID              int64     `json:"id,string"`
	UserID          int64     `json:"user_id,string"`
	WorkOSSessionID *string   `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
