package domain

import (
	"context"

	"inkwell/internal/core/analytics"

	"github.com/google/uuid"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateInput) (Mood, error)
	List(ctx context.Context, userID uuid.UUID, q ListQuery) ([]Mood, error)
	Stats(ctx context.Context, userID uuid.UUID, windowDays int) (analytics.MoodResult, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
