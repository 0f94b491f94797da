// Package service runs the analytics engine over a user's journal window
package service

import (
	"context"
	"time"

	"inkwell/internal/core/analytics"
	"inkwell/internal/modkit/repokit"
	"inkwell/internal/services/api/insights/domain"
	"inkwell/internal/services/api/insights/repo"

	"github.com/google/uuid"
)

const defaultWindowDays = 30

// Service defines the insights service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the insights service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs an insights service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("insights.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("insights.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Stats returns writing statistics for the window
func (s *Svc) Stats(ctx context.Context, userID uuid.UUID, windowDays int) (analytics.StatsResult, error) {
	records, windowDays, err := s.window(ctx, userID, windowDays)
	if err != nil {
		return analytics.StatsResult{}, err
	}
	return analytics.ComputeStats(records, windowDays)
}

// Sentiment returns sentiment aggregates for the window
func (s *Svc) Sentiment(ctx context.Context, userID uuid.UUID, windowDays int) (analytics.SentimentResult, error) {
	records, windowDays, err := s.window(ctx, userID, windowDays)
	if err != nil {
		return analytics.SentimentResult{}, err
	}
	return analytics.ComputeSentiment(records, windowDays)
}

// Insights returns the full synthesized view for the window
func (s *Svc) Insights(ctx context.Context, userID uuid.UUID, windowDays int) (analytics.InsightResult, error) {
	records, windowDays, err := s.window(ctx, userID, windowDays)
	if err != nil {
		return analytics.InsightResult{}, err
	}
	return analytics.Synthesize(records, windowDays)
}

func (s *Svc) window(
	ctx context.Context, userID uuid.UUID, windowDays int,
) ([]analytics.Record, int, error) {
	if windowDays == 0 {
		windowDays = defaultWindowDays
	}
	records, err := s.Repo.EntriesSince(ctx, userID, time.Now().AddDate(0, 0, -windowDays))
	if err != nil {
		return nil, 0, err
	}
	return records, windowDays, nil
}
