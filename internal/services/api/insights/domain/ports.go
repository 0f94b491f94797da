// Package domain holds ports for journal insights
package domain

import (
	"context"

	"inkwell/internal/core/analytics"

	"github.com/google/uuid"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	Stats(ctx context.Context, userID uuid.UUID, windowDays int) (analytics.StatsResult, error)
	Sentiment(ctx context.Context, userID uuid.UUID, windowDays int) (analytics.SentimentResult, error)
	Insights(ctx context.Context, userID uuid.UUID, windowDays int) (analytics.InsightResult, error)
}
