package model

import "time"

type Impact string

type Effort string

type Timing string

type OpportunityStatus string

type PriorityLevel string

const (
	ImpactLow      Impact = "low"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
	ImpactCritical Impact = "critical"
)

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

const (
	TimingImmediate  Timing = "immediate"
	TimingShortTerm  Timing = "short_term"
	TimingMediumTerm Timing = "medium_term"
	TimingLongTerm   Timing = "long_term"
)

const (
	OpportunityIdentified OpportunityStatus = "identified"
	OpportunityInProgress OpportunityStatus = "in_progress"
	OpportunityCompleted  OpportunityStatus = "completed"
	OpportunityDismissed  OpportunityStatus = "dismissed"
)

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

func (i Impact) Valid() bool {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical:
		return true
	}
	return false
}

func (e Effort) Valid() bool {
	switch e {
	case EffortLow, EffortMedium, EffortHigh:
		return true
	}
	return false
}

func (t Timing) Valid() bool {
	switch t {
	case TimingImmediate, TimingShortTerm, TimingMediumTerm, TimingLongTerm:
		return true
	}
	return false
}

func (s OpportunityStatus) Valid() bool {
	switch s {
	case OpportunityIdentified, OpportunityInProgress, OpportunityCompleted, OpportunityDismissed:
		return true
	}
	return false
}

type Opportunity struct {
	ID              int64             `json:"id,string"`
	UserID          int64             `json:"user_id,string"`
	CompetitorID    *int64            `json:"competitor_id,omitempty,string"`
	AlertID         *int64            `json:"alert_id,omitempty,string"`
	Title           string            `json:"title"`
	Description     *string           `json:"description,omitempty"`
	OpportunityType string            `json:"opportunity_type"`
	Confidence      float64           `json:"confidence"`
	Impact          Impact            `json:"impact"`
	Effort          Effort            `json:"effort"`
	Timing          Timing            `json:"timing"`
	PriorityScore   int               `json:"priority_score"`
	PriorityLevel   PriorityLevel     `json:"priority_level"`
	Status          OpportunityStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
