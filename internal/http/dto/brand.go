package dto

import "solosuccess.app/api/internal/model"

type GenerateBrandRequest struct {
	BusinessName   string   `json:"business_name"`
	Industry       string   `json:"industry"`
	TargetAudience string   `json:"target_audience"`
	Values         []string `json:"values"`
	Tone           string   `json:"tone"`
}

func (r GenerateBrandRequest) Input() model.BrandInput {
	return model.BrandInput{
		BusinessName:   r.BusinessName,
		Industry:       r.Industry,
		TargetAudience: r.TargetAudience,
		Values:         r.Values,
		Tone:           r.Tone,
	}
}
