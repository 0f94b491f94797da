package domain

// GenerateInput requests a summary for a specific day.
// Date defaults to the current local day when omitted
type GenerateInput struct {
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-08-10"`
}
