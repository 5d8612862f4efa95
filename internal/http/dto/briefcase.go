package dto

type CreateBriefcaseRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
