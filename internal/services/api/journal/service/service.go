// Package service contains journal workflows
package service

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/adapters/llm"
	"inkwell/internal/core/localday"
	"inkwell/internal/modkit/repokit"
	"inkwell/internal/platform/logger"
	"inkwell/internal/services/api/journal/domain"
	"inkwell/internal/services/api/journal/repo"
	sumdomain "inkwell/internal/services/api/summary/domain"

	"github.com/google/uuid"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200

	// recent exchanges carried into the assistant prompt
	replyHistory = 6
)

const replyPrompt = `You are a compassionate and insightful journaling companion.
Your role is to:
- Provide a thoughtful, empathetic response to the user's input
- Keep responses concise and engaging
- Focus on the user's current message while considering context
%s
User: %s

Assistant:`

// Service defines the journal service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the journal service
type Svc struct {
	Repo        repo.Repo
	binder      repokit.Binder[repo.Repo]
	db          repokit.TxRunner
	oracle      llm.Oracle
	invalidator sumdomain.InvalidatorPort
}

// New constructs a journal service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	oracle llm.Oracle,
	invalidator sumdomain.InvalidatorPort,
) *Svc {
	if db == nil {
		panic("journal.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("journal.Service requires a non nil Repo binder")
	}
	if oracle == nil {
		panic("journal.Service requires a non nil Oracle")
	}
	if invalidator == nil {
		panic("journal.Service requires a non nil summary Invalidator")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, oracle: oracle, invalidator: invalidator}
}

// Create stores a new entry and drops the cached summary for its day
func (s *Svc) Create(ctx context.Context, userID uuid.UUID, in domain.CreateInput) (domain.Entry, error) {
	e, err := s.Repo.Insert(ctx, userID, in.Content, in.AIResponse)
	if err != nil {
		return domain.Entry{}, err
	}
	s.invalidate(ctx, userID, localday.FromTime(e.CreatedAt))
	return e, nil
}

// List returns the user's entries newest first
func (s *Svc) List(ctx context.Context, userID uuid.UUID, q domain.ListQuery) ([]domain.Entry, error) {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 || q.Limit > maxPageLimit {
		q.Limit = defaultPageLimit
	}
	return s.Repo.List(ctx, userID, q.Skip, q.Limit)
}

// Get returns one entry by id
func (s *Svc) Get(ctx context.Context, userID, id uuid.UUID) (domain.Entry, error) {
	return s.Repo.Get(ctx, userID, id)
}

// Update patches an entry's content or stored assistant response
func (s *Svc) Update(ctx context.Context, userID, id uuid.UUID, in domain.UpdateInput) (domain.Entry, error) {
	return s.Repo.Update(ctx, userID, id, in.Content, in.AIResponse)
}

// Delete removes an entry and drops the cached summary for its day
func (s *Svc) Delete(ctx context.Context, userID, id uuid.UUID) error {
	e, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID, localday.FromTime(e.CreatedAt))
	return nil
}

// Reply asks the oracle for an empathetic response, feeding it the most
// recent entries as conversation context
func (s *Svc) Reply(ctx context.Context, userID uuid.UUID, in domain.ReplyInput) (domain.ReplyOutput, error) {
	recent, err := s.Repo.Recent(ctx, userID, replyHistory)
	if err != nil {
		return domain.ReplyOutput{}, err
	}
	text, err := s.oracle.Complete(ctx, fmt.Sprintf(replyPrompt, history(recent), in.Content))
	if err != nil {
		return domain.ReplyOutput{}, err
	}
	return domain.ReplyOutput{Response: text}, nil
}

// history renders recent entries oldest first for the prompt
func history(recent []domain.Entry) string {
	if len(recent) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nPrevious conversation:\n")
	for i := len(recent) - 1; i >= 0; i-- {
		e := recent[i]
		fmt.Fprintf(&b, "Journal Entry: %s\n", e.Content)
		if e.AIResponse != nil {
			fmt.Fprintf(&b, "AI Response: %s\n", *e.AIResponse)
		}
	}
	return b.String()
}

// invalidation is best effort, a stale cache never blocks the write
func (s *Svc) invalidate(ctx context.Context, userID uuid.UUID, day localday.Day) {
	if err := s.invalidator.Invalidate(ctx, userID, day); err != nil {
		logger.C(ctx).Warn().Err(err).Str("day", day.String()).Msg("summary invalidation failed")
	}
}
