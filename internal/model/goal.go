package model

import (
	"math"
	"time"
)

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusArchived  GoalStatus = "archived"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusActive, GoalStatusPaused, GoalStatusCompleted, GoalStatusArchived:
		return true
	}
	return false
}

type Goal struct {
	ID          int64      `json:"id,string"`
	UserID      int64      `json:"user_id,string"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Category    string     `json:"category"`
	Status      GoalStatus `json:"status"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Progress    int        `json:"progress"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GoalTaskCounts summarises the tasks attached to one goal.
type GoalTaskCounts struct {
	Total     int64
	Completed int64
	Cancelled int64
}

// Progress is the completed share of non-cancelled tasks, rounded to a whole percent.
func (c GoalTaskCounts) Progress() int {
	countable := c.Total - c.Cancelled
	if countable <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(c.Completed) / float64(countable)))
	return min(max(p, 0), 100)
}
