// Package service contains mood workflows
package service

import (
	"context"
	"time"

	"inkwell/internal/core/analytics"
	"inkwell/internal/core/localday"
	"inkwell/internal/modkit/repokit"
	"inkwell/internal/platform/logger"
	"inkwell/internal/services/api/mood/domain"
	"inkwell/internal/services/api/mood/repo"
	sumdomain "inkwell/internal/services/api/summary/domain"

	"github.com/google/uuid"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 500

	defaultWindowDays = 30
)

// Service defines the mood service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the mood service
type Svc struct {
	Repo        repo.Repo
	binder      repokit.Binder[repo.Repo]
	db          repokit.TxRunner
	reader      sumdomain.ReaderPort
	invalidator sumdomain.InvalidatorPort
}

// New constructs a mood service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	reader sumdomain.ReaderPort,
	invalidator sumdomain.InvalidatorPort,
) *Svc {
	if db == nil {
		panic("mood.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("mood.Service requires a non nil Repo binder")
	}
	if reader == nil {
		panic("mood.Service requires a non nil summary Reader")
	}
	if invalidator == nil {
		panic("mood.Service requires a non nil summary Invalidator")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, reader: reader, invalidator: invalidator}
}

// Create records a mood rating and drops the cached summary for its day
func (s *Svc) Create(ctx context.Context, userID uuid.UUID, in domain.CreateInput) (domain.Mood, error) {
	m, err := s.Repo.Insert(ctx, userID, in.Score, in.Label, in.Note)
	if err != nil {
		return domain.Mood{}, err
	}
	s.invalidate(ctx, userID, localday.FromTime(m.CreatedAt))
	return m, nil
}

// List returns the user's moods newest first
func (s *Svc) List(ctx context.Context, userID uuid.UUID, q domain.ListQuery) ([]domain.Mood, error) {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 || q.Limit > maxPageLimit {
		q.Limit = defaultPageLimit
	}
	return s.Repo.List(ctx, userID, q.Skip, q.Limit)
}

// Stats aggregates the mood window and attaches today's cached summary text
// when one exists
func (s *Svc) Stats(ctx context.Context, userID uuid.UUID, windowDays int) (analytics.MoodResult, error) {
	if windowDays == 0 {
		windowDays = defaultWindowDays
	}

	now := time.Now()
	moods, err := s.Repo.Since(ctx, userID, now.AddDate(0, 0, -windowDays))
	if err != nil {
		return analytics.MoodResult{}, err
	}

	res, err := analytics.ComputeMoodStats(Records(moods), windowDays)
	if err != nil {
		return analytics.MoodResult{}, err
	}

	// opportunistic, a missing or failing summary read never blocks stats
	text, err := s.reader.CachedText(ctx, userID, localday.FromTime(now))
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("summary read failed during mood stats")
	} else {
		res.Summary = text
	}
	return res, nil
}

// Delete removes a mood rating and drops the cached summary for its day
func (s *Svc) Delete(ctx context.Context, userID, id uuid.UUID) error {
	m, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID, localday.FromTime(m.CreatedAt))
	return nil
}

// Records converts mood rows to analytics records, the note rides along as text
func Records(moods []domain.Mood) []analytics.Record {
	out := make([]analytics.Record, 0, len(moods))
	for _, m := range moods {
		v := float64(m.Score)
		rec := analytics.Record{ID: m.ID, CreatedAt: m.CreatedAt, Value: &v, Label: m.Label}
		if m.Note != nil {
			rec.Text = *m.Note
		}
		out = append(out, rec)
	}
	return out
}

func (s *Svc) invalidate(ctx context.Context, userID uuid.UUID, day localday.Day) {
	if err := s.invalidator.Invalidate(ctx, userID, day); err != nil {
		logger.C(ctx).Warn().Err(err).Str("day", day.String()).Msg("summary invalidation failed")
	}
}
