package model

import "time"

type BrandInput struct {
	BusinessName   string   `json:"business_name"`
	Industry       string   `json:"industry"`
	TargetAudience string   `json:"target_audience"`
	Values         []string `json:"values"`
	Tone           string   `json:"tone"`
}

type BrandColor struct {
	Name string `json:"name" jsonschema:"description=Human name of the color"`
	Hex  string `json:"hex" jsonschema:"description=Hex code like #1A2B3C"`
}

type BrandTypography struct {
	Heading string `json:"heading" jsonschema:"description=Font family for headings"`
	Body    string `json:"body" jsonschema:"description=Font family for body text"`
}

// BrandIdentity is the structured document returned by the brand generator.
type BrandIdentity struct {
	Tagline      string          `json:"tagline"`
	Mission      string          `json:"mission"`
	Voice        string          `json:"voice"`
	ColorPalette []BrandColor    `json:"color_palette"`
	Typography   BrandTypography `json:"typography"`
	Keywords     []string        `json:"keywords"`
}

type BrandProfile struct {
	ID           int64         `json:"id,string"`
	UserID       int64         `json:"user_id,string"`
	BusinessName string        `json:"business_name"`
	Industry     string        `json:"industry"`
	Input        BrandInput    `json:"input"`
	Identity     BrandIdentity `json:"identity"`
	Model        string        `json:"model"`
	CreatedAt    time.Time     `json:"created_at"`
}
