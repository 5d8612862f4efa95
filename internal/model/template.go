package model

import (
	"encoding/json"
	"time"
)

type Template struct {
	ID          int64           `json:"id,string"`
	UserID      int64           `json:"user_id,string"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	Content     json.RawMessage `json:"content"`
	IsPublic    bool            `json:"is_public"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ExportFormat string

const (
	ExportJSON     ExportFormat = "json"
	ExportMarkdown ExportFormat = "markdown"
)

func (f ExportFormat) Valid() bool {
	return f == ExportJSON || f == ExportMarkdown
}
