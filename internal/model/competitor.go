package model

import (
	"encoding/json"
	"time"
)

type ThreatLevel string

const (
	ThreatLow      ThreatLevel = "low"
	ThreatMedium   ThreatLevel = "medium"
	ThreatHigh     ThreatLevel = "high"
	ThreatCritical ThreatLevel = "critical"
)

func (t ThreatLevel) Valid() bool {
	switch t {
	case ThreatLow, ThreatMedium, ThreatHigh, ThreatCritical:
		return true
	}
	return false
}

type Competitor struct {
	ID            int64           `json:"id,string"`
	UserID        int64           `json:"user_id,string"`
	Name          string          `json:"name"`
	Website       *string         `json:"website,omitempty"`
	Industry      *string         `json:"industry,omitempty"`
	Description   *string         `json:"description,omitempty"`
	ThreatLevel   ThreatLevel     `json:"threat_level"`
	SocialHandles json.RawMessage `json:"social_handles,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ScrapeJobType string

type ScrapeJobStatus string

const (
	ScrapeJobWebsite ScrapeJobType = "website"
	ScrapeJobPricing ScrapeJobType = "pricing"
	ScrapeJobBlog    ScrapeJobType = "blog"
)

const (
	ScrapeJobActive ScrapeJobStatus = "active"
	ScrapeJobPaused ScrapeJobStatus = "paused"
)

// Scrape frequency bounds, in minutes: every 15 minutes up to weekly.
const (
	MinScrapeFrequency = 15
	MaxScrapeFrequency = 7 * 24 * 60
)

// MaxScrapeFailures pauses a job after this many consecutive failed runs.
const MaxScrapeFailures = 5

func (t ScrapeJobType) Valid() bool {
	switch t {
	case ScrapeJobWebsite, ScrapeJobPricing, ScrapeJobBlog:
		return true
	}
	return false
}

func (s ScrapeJobStatus) Valid() bool {
	return s == ScrapeJobActive || s == ScrapeJobPaused
}

// AlertSeverity maps the kind of page that changed to how loudly to tell the user.
func (t ScrapeJobType) AlertSeverity() AlertSeverity {
	switch t {
	case ScrapeJobPricing:
		return SeverityUrgent
	case ScrapeJobWebsite:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

type ScrapingJob struct {
	ID                  int64           `json:"id,string"`
	UserID              int64           `json:"user_id,string"`
	CompetitorID        int64           `json:"competitor_id,string"`
	URL                 string          `json:"url"`
	JobType             ScrapeJobType   `json:"job_type"`
	FrequencyMinutes    int             `json:"frequency_minutes"`
	Status              ScrapeJobStatus `json:"status"`
	LastRunAt           *time.Time      `json:"last_run_at,omitempty"`
	NextRunAt           time.Time       `json:"next_run_at"`
	LastContentHash     *string         `json:"-"`
	ConsecutiveFailures int             `json:"consecutive_failures"`
	LastError           *string         `json:"last_error,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// FailureBackoff delays the next attempt after n consecutive failures:
// the regular frequency doubled per failure, capped at one day.
func (j *ScrapingJob) FailureBackoff(n int) time.Duration {
	base := time.Duration(j.FrequencyMinutes) * time.Minute
	if n < 1 {
		return base
	}
	d := base
	for i := 1; i < n && d < 24*time.Hour; i++ {
		d *= 2
	}
	return min(d, 24*time.Hour)
}

type ScrapingResult struct {
	ID           int64     `json:"id,string"`
	JobID        int64     `json:"job_id,string"`
	CompetitorID int64     `json:"competitor_id,string"`
	ContentHash  string    `json:"content_hash"`
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Excerpt      *string   `json:"excerpt,omitempty"`
	Changed      bool      `json:"changed"`
	FetchedAt    time.Time `json:"fetched_at"`
}

type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
	SeverityUrgent  AlertSeverity = "urgent"
)

type CompetitorAlert struct {
	ID           int64         `json:"id,string"`
	UserID       int64         `json:"user_id,string"`
	CompetitorID int64         `json:"competitor_id,string"`
	AlertType    string        `json:"alert_type"`
	Severity     AlertSeverity `json:"severity"`
	Title        string        `json:"title"`
	Description  *string       `json:"description,omitempty"`
	SourceURL    *string       `json:"source_url,omitempty"`
	IsRead       bool          `json:"is_read"`
	IsArchived   bool          `json:"is_archived"`
	CreatedAt    time.Time     `json:"created_at"`
}

type AlertFilter struct {
	CompetitorID *int64
	UnreadOnly   bool
	Limit        int32
}
