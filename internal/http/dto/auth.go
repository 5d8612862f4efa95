package dto

import (
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
)

type AuthURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

type ExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

type ExchangeResponse struct {
	User      *model.User `json:"user"`
	SessionID int64       `json:"session_id,string"`
	ExpiresIn int         `json:"expires_in"`
}

type MeResponse struct {
	User       *model.User              `json:"user"`
	Onboarding *service.OnboardingState `json:"onboarding"`
}

type LogoutRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type LogoutResponse struct {
	Message   string `json:"message"`
	LogoutURL string `json:"logout_url,omitempty"`
}

type UpdateProfileRequest struct {
	Name               *string `json:"name" binding:"omitempty,min=1,max=255"`
	BusinessName       *string `json:"business_name" binding:"omitempty,max=255"`
	Industry           *string `json:"industry" binding:"omitempty,max=255"`
	EmailNotifications *bool   `json:"email_notifications"`
}

func (r UpdateProfileRequest) Params() service.UpdateProfileParams {
	return service.UpdateProfileParams{
		Name:               r.Name,
		BusinessName:       r.BusinessName,
		Industry:           r.Industry,
		EmailNotifications: r.EmailNotifications,
	}
}
