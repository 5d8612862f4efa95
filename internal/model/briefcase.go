package model

import (
	"encoding/json"
	"time"
)

// MaxDocumentSize caps a single briefcase upload.
const MaxDocumentSize = 25 << 20

const DefaultBriefcaseName = "My Briefcase"

type Briefcase struct {
	ID          int64     `json:"id,string"`
	UserID      int64     `json:"user_id,string"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Document struct {
	ID          int64           `json:"id,string"`
	UserID      int64           `json:"user_id,string"`
	BriefcaseID int64           `json:"briefcase_id,string"`
	Name        string          `json:"name"`
	ContentType string          `json:"content_type"`
	SizeBytes   int64           `json:"size_bytes"`
	StorageKey  string          `json:"-"`
	Tags        []string        `json:"tags"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
