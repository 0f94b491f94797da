// Package service contains the daily summary orchestrator
package service

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/adapters/llm"
	"inkwell/internal/core/localday"
	"inkwell/internal/modkit/repokit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/services/api/summary/domain"
	"inkwell/internal/services/api/summary/repo"

	"github.com/google/uuid"
)

const defaultListLimit = 90

// prompt wrapping the day's transcript before it goes to the oracle
const summaryPrompt = `You are a compassionate and insightful journaling companion.
Your task is to create a thoughtful summary of today's journaling session.

Today's entries:
%s

Please provide a concise but meaningful summary that captures the key themes,
emotions, and insights from today's journaling session. Focus on the most
significant points while maintaining a warm and empathetic tone.

Summary:`

// Service defines the summary service contract
type Service interface {
	domain.ServicePort
	domain.ReaderPort
	domain.InvalidatorPort
}

// Svc implements the summary service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	oracle llm.Oracle
}

// New constructs a summary service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], oracle llm.Oracle) *Svc {
	if db == nil {
		panic("summary.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("summary.Service requires a non nil Repo binder")
	}
	if oracle == nil {
		panic("summary.Service requires a non nil Oracle")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, oracle: oracle}
}

// GetOrCreate returns the cached summary for the day or generates and stores one.
// Nothing is persisted when the oracle call fails
func (s *Svc) GetOrCreate(ctx context.Context, userID uuid.UUID, day localday.Day) (domain.Summary, error) {
	cached, err := s.Repo.ByDay(ctx, userID, day.String())
	if err == nil {
		return cached, nil
	}
	if !perr.IsCode(err, perr.ErrorCodeNoData) {
		return domain.Summary{}, err
	}

	from := day.Time().UTC()
	to := day.Next().Time().UTC()
	entries, err := s.Repo.EntriesBetween(ctx, userID, from, to)
	if err != nil {
		return domain.Summary{}, err
	}
	if len(entries) == 0 {
		return domain.Summary{}, perr.NoDataf("no journal entries on %s", day)
	}

	text, err := s.oracle.Complete(ctx, fmt.Sprintf(summaryPrompt, Transcript(entries)))
	if err != nil {
		return domain.Summary{}, err
	}
	return s.Repo.Upsert(ctx, userID, day.String(), text)
}

// List returns the user's summaries newest day first
func (s *Svc) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Summary, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return s.Repo.List(ctx, userID, limit)
}

// ByDay returns the cached summary for a day or NoData
func (s *Svc) ByDay(ctx context.Context, userID uuid.UUID, day localday.Day) (domain.Summary, error) {
	return s.Repo.ByDay(ctx, userID, day.String())
}

// CachedText returns the cached summary text for a day, empty when absent
func (s *Svc) CachedText(ctx context.Context, userID uuid.UUID, day localday.Day) (string, error) {
	row, err := s.Repo.ByDay(ctx, userID, day.String())
	if perr.IsCode(err, perr.ErrorCodeNoData) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Text, nil
}

// Invalidate drops the cached summary for a day so the next read regenerates it
func (s *Svc) Invalidate(ctx context.Context, userID uuid.UUID, day localday.Day) error {
	return s.Repo.Delete(ctx, userID, day.String())
}

// Transcript renders the day's entries for the oracle, timestamps in the
// journal's local zone
func Transcript(entries []repo.EntryRow) string {
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		at := e.CreatedAt.In(localday.Zone).Format("15:04")
		lines = append(lines, fmt.Sprintf("Entry %d (%s):\n%s", i+1, at, e.Content))
	}
	return strings.Join(lines, "\n\n")
}
