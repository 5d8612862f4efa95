package model

type Dashboard struct {
	TasksByStatus       map[TaskStatus]int64 `json:"tasks_by_status"`
	ActiveGoals         []Goal               `json:"active_goals"`
	UnreadAlerts        int64                `json:"unread_alerts"`
	TopOpportunities    []Opportunity        `json:"top_opportunities"`
	ScheduledPosts      int64                `json:"scheduled_posts"`
	OnboardingCompleted bool                 `json:"onboarding_completed"`
}
