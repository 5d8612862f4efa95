package dto

import (
	"encoding/json"

	"solosuccess.app/api/internal/service"
)

type CreateCompetitorRequest struct {
	Name          string          `json:"name" binding:"required,max=255"`
	Website       *string         `json:"website"`
	Industry      *string         `json:"industry"`
	Description   *string         `json:"description"`
	ThreatLevel   string          `json:"threat_level"`
	SocialHandles json.RawMessage `json:"social_handles"`
}

func (r CreateCompetitorRequest) Params() service.CreateCompetitorParams {
	return service.CreateCompetitorParams{
		Name:          r.Name,
		Website:       r.Website,
		Industry:      r.Industry,
		Description:   r.Description,
		ThreatLevel:   r.ThreatLevel,
		SocialHandles: r.SocialHandles,
	}
}

type UpdateCompetitorRequest struct {
	Name          *string         `json:"name" binding:"omitempty,max=255"`
	Website       *string         `json:"website"`
	Industry      *string         `json:"industry"`
	Description   *string         `json:"description"`
	ThreatLevel   *string         `json:"threat_level"`
	SocialHandles json.RawMessage `json:"social_handles"`
	IsActive      *bool           `json:"is_active"`
}

func (r UpdateCompetitorRequest) Params() service.UpdateCompetitorParams {
	return service.UpdateCompetitorParams{
		Name:          r.Name,
		Website:       r.Website,
		Industry:      r.Industry,
		Description:   r.Description,
		ThreatLevel:   r.ThreatLevel,
		SocialHandles: r.SocialHandles,
		IsActive:      r.IsActive,
	}
}

type CreateScrapingJobRequest struct {
	URL              *string `json:"url"`
	JobType          string  `json:"job_type" binding:"required"`
	FrequencyMinutes int     `json:"frequency_minutes"`
}

func (r CreateScrapingJobRequest) Params() service.CreateScrapingJobParams {
	return service.CreateScrapingJobParams{
		URL:              r.URL,
		JobType:          r.JobType,
		FrequencyMinutes: r.FrequencyMinutes,
	}
}

type UpdateScrapingJobRequest struct {
	Status           *string `json:"status"`
	FrequencyMinutes *int    `json:"frequency_minutes"`
}

func (r UpdateScrapingJobRequest) Params() service.UpdateScrapingJobParams {
	return service.UpdateScrapingJobParams{Status: r.Status, FrequencyMinutes: r.FrequencyMinutes}
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
