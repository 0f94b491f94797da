package domain

// CreateInput creates a new entry
type CreateInput struct {
	Content    string  `json:"content" validate:"required,min=1" example:"Slept well, long walk before work"`
	AIResponse *string `json:"ai_response,omitempty" validate:"omitempty,min=1"`
}

// UpdateInput patches an entry, nil fields are left untouched
type UpdateInput struct {
	Content    *string `json:"content,omitempty" validate:"omitempty,min=1"`
	AIResponse *string `json:"ai_response,omitempty" validate:"omitempty,min=1"`
}

// ListQuery pages the entry listing
type ListQuery struct {
	Skip  int
	Limit int
}

// ReplyInput asks the assistant for an empathetic response
type ReplyInput struct {
	Content string `json:"content" validate:"required,min=1" example:"Rough day, the deploy broke twice"`
}

// ReplyOutput carries the assistant response
type ReplyOutput struct {
	Response string `json:"response"`
}
