// Package domain holds types and ports for mood tracking
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mood is one mood rating row
type Mood struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Score     int       `json:"mood_score"`
	Label     string    `json:"mood_label"`
	Note      *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
