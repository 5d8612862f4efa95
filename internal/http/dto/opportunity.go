package dto

import "solosuccess.app/api/internal/service"

type CreateOpportunityRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     *string  `json:"description"`
	OpportunityType string   `json:"opportunity_type"`
	CompetitorID    *int64   `json:"competitor_id,string"`
	Confidence      *float64 `json:"confidence"`
	Impact          string   `json:"impact"`
	Effort          string   `json:"effort"`
	Timing          string   `json:"timing"`
}

func (r CreateOpportunityRequest) Params() service.CreateOpportunityParams {
	return service.CreateOpportunityParams{
		Title:           r.Title,
		Description:     r.Description,
		OpportunityType: r.OpportunityType,
		CompetitorID:    r.CompetitorID,
		Confidence:      r.Confidence,
		Impact:          r.Impact,
		Effort:          r.Effort,
		Timing:          r.Timing,
	}
}

type UpdateOpportunityRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	OpportunityType *string  `json:"opportunity_type"`
	Confidence      *float64 `json:"confidence"`
	Impact          *string  `json:"impact"`
	Effort          *string  `json:"effort"`
	Timing          *string  `json:"timing"`
	Status          *string  `json:"status"`
}

func (r UpdateOpportunityRequest) Params() service.UpdateOpportunityParams {
	return service.UpdateOpportunityParams{
		Title:           r.Title,
		Description:     r.Description,
		OpportunityType: r.OpportunityType,
		Confidence:      r.Confidence,
		Impact:          r.Impact,
		Effort:          r.Effort,
		Timing:          r.Timing,
		Status:          r.Status,
	}
}
