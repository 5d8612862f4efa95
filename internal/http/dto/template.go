package dto

import (
	"encoding/json"

	"solosuccess.app/api/internal/service"
)

type CreateTemplateRequest struct {
	Title       string          `json:"title" binding:"required,max=255"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Content     json.RawMessage `json:"content"`
	IsPublic    bool            `json:"is_public"`
}

func (r CreateTemplateRequest) Params() service.CreateTemplateParams {
	return service.CreateTemplateParams{
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		Content:     r.Content,
		IsPublic:    r.IsPublic,
	}
}

type UpdateTemplateRequest struct {
	Title       *string         `json:"title" binding:"omitempty,max=255"`
	Category    *string         `json:"category"`
	Description *string         `json:"description"`
	Content     json.RawMessage `json:"content"`
	IsPublic    *bool           `json:"is_public"`
}

func (r UpdateTemplateRequest) Params() service.UpdateTemplateParams {
	return service.UpdateTemplateParams{
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		Content:     r.Content,
		IsPublic:    r.IsPublic,
	}
}
