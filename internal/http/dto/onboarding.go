package dto

import "solosuccess.app/api/internal/service"

type OnboardingGoal struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type OnboardingRequest struct {
	BusinessName string           `json:"business_name"`
	Industry     string           `json:"industry"`
	Goals        []OnboardingGoal `json:"goals"`
}

func (r OnboardingRequest) Params() service.OnboardingParams {
	params := service.OnboardingParams{
		BusinessName: r.BusinessName,
		Industry:     r.Industry,
		Goals:        make([]service.OnboardingGoal, 0, len(r.Goals)),
	}
	for _, g := range r.Goals {
		params.Goals = append(params.Goals, service.OnboardingGoal{Title: g.Title, Category: g.Category})
	}
	return params
}
