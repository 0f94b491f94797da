package domain

import (
	"context"

	"github.com/google/uuid"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateInput) (Entry, error)
	List(ctx context.Context, userID uuid.UUID, q ListQuery) ([]Entry, error)
	Get(ctx context.Context, userID, id uuid.UUID) (Entry, error)
	Update(ctx context.Context, userID, id uuid.UUID, in UpdateInput) (Entry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Reply(ctx context.Context, userID uuid.UUID, in ReplyInput) (ReplyOutput, error)
}
