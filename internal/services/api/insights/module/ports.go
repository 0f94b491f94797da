package module

import (
	"context"

	"inkwell/internal/core/analytics"
	isvc "inkwell/internal/services/api/insights/service"

	"github.com/google/uuid"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptInsightsPort exposes service methods for cross module usage
type adaptInsightsPort struct{ svc isvc.Service }

// Insights returns the full synthesized view for a user's window
func (a adaptInsightsPort) Insights(
	ctx context.Context, userID uuid.UUID, windowDays int,
) (analytics.InsightResult, error) {
	return a.svc.Insights(ctx, userID, windowDays)
}
