package domain

// CreateInput records a mood rating
type CreateInput struct {
	Score int     `json:"mood_score" validate:"required,min=1,max=10" example:"7"`
	Label string  `json:"mood_label" validate:"required,min=1" example:"Happy"`
	Note  *string `json:"notes,omitempty" validate:"omitempty,min=1"`
}

// ListQuery pages the mood listing
type ListQuery struct {
	Skip  int
	Limit int
}
