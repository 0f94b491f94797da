package domain

import (
	"context"

	"inkwell/internal/core/localday"

	"github.com/google/uuid"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, day localday.Day) (Summary, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]Summary, error)
	ByDay(ctx context.Context, userID uuid.UUID, day localday.Day) (Summary, error)
}

// ReaderPort is the cross module read surface for cached summaries.
// CachedText returns "" with no error when no summary exists for the day
type ReaderPort interface {
	CachedText(ctx context.Context, userID uuid.UUID, day localday.Day) (string, error)
}

// InvalidatorPort drops the cached summary for a day after its records change
type InvalidatorPort interface {
	Invalidate(ctx context.Context, userID uuid.UUID, day localday.Day) error
}

// GeneratorPort is the cross module generation surface used by the digest worker
type GeneratorPort interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, day localday.Day) (Summary, error)
}
