// Package domain holds types and ports for journal entries
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one journal entry row
type Entry struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Content    string     `json:"content"`
	AIResponse *string    `json:"ai_response,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
