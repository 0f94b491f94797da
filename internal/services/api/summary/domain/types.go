// Package domain holds types and ports for daily summaries
package domain

import (
	"time"

	"inkwell/internal/core/localday"

	"github.com/google/uuid"
)

// Summary is one generated daily summary row
type Summary struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Day       string    `json:"date"` // YYYY-MM-DD local day
	Text      string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayOf parses the summary's stored day
func (s Summary) DayOf() (localday.Day, error) { return localday.Parse(s.Day) }
