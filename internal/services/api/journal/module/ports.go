package module

import (
	"context"

	"inkwell/internal/services/api/journal/domain"
	jsvc "inkwell/internal/services/api/journal/service"

	"github.com/google/uuid"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptJournalPort exposes service methods for cross module usage
type adaptJournalPort struct{ svc jsvc.Service }

// Recent returns the newest entries for a user
func (a adaptJournalPort) Recent(ctx context.Context, userID uuid.UUID, q domain.ListQuery) ([]domain.Entry, error) {
	return a.svc.List(ctx, userID, q)
}
