package dto

import (
	"time"

	"solosuccess.app/api/internal/service"
)

type ConnectResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

type CallbackRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state" binding:"required"`
}

type SchedulePostRequest struct {
	Platform    string     `json:"platform" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

func (r SchedulePostRequest) Params() service.SchedulePostParams {
	return service.SchedulePostParams{
		Platform:    r.Platform,
		Content:     r.Content,
		ScheduledAt: r.ScheduledAt,
	}
}

type StartProcessorRequest struct {
	IntervalSeconds int `json:"interval_seconds" binding:"min=0"`
}
