package dto

import (
	"time"

	"solosuccess.app/api/internal/service"
)

type CreateGoalRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Category    string     `json:"category"`
	TargetDate  *time.Time `json:"target_date"`
}

func (r CreateGoalRequest) Params() service.CreateGoalParams {
	return service.CreateGoalParams{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		TargetDate:  r.TargetDate,
	}
}

type UpdateGoalRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Category        *string    `json:"category"`
	Status          *string    `json:"status"`
	TargetDate      *time.Time `json:"target_date"`
	ClearTargetDate bool       `json:"clear_target_date"`
}

func (r UpdateGoalRequest) Params() service.UpdateGoalParams {
	return service.UpdateGoalParams{
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		Status:          r.Status,
		TargetDate:      r.TargetDate,
		ClearTargetDate: r.ClearTargetDate,
	}
}
