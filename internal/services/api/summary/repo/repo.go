// Package repo provides postgres access for daily summaries
package repo

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/modkit/repokit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/platform/store"
	"inkwell/internal/services/api/summary/domain"

	"github.com/google/uuid"
)

// EntryRow is one journal entry slice needed for transcript building
type EntryRow struct {
	CreatedAt time.Time
	Content   string
}

// Repo is the minimal persistence surface for daily summaries
type Repo interface {
	ByDay(ctx context.Context, userID uuid.UUID, day string) (domain.Summary, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Summary, error)
	Upsert(ctx context.Context, userID uuid.UUID, day, text string) (domain.Summary, error)
	Delete(ctx context.Context, userID uuid.UUID, day string) error
	EntriesBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]EntryRow, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const summaryCols = `id, user_id, day::text, summary, created_at, updated_at`

func scanSummary(r repokit.Row) (domain.Summary, error) {
	var s domain.Summary
	err := r.Scan(&s.ID, &s.UserID, &s.Day, &s.Text, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *queries) ByDay(ctx context.Context, userID uuid.UUID, day string) (domain.Summary, error) {
	const sql = `
select ` + summaryCols + `
from daily_summaries
where user_id = $1 and day = $2::date
`
	s, err := store.One(ctx, r.q, scanSummary, sql, userID, day)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Summary{}, perr.NoDataf("no summary for %s", day)
	}
	if err != nil {
		return domain.Summary{}, perr.FromPostgres(err, "get daily summary")
	}
	return s, nil
}

func (r *queries) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Summary, error) {
	const sql = `
select ` + summaryCols + `
from daily_summaries
where user_id = $1
order by day desc
limit $2
`
	out, err := store.Many(ctx, r.q, scanSummary, sql, userID, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list daily summaries")
	}
	return out, nil
}

func (r *queries) Upsert(ctx context.Context, userID uuid.UUID, day, text string) (domain.Summary, error) {
	// unique (user_id, day) makes regeneration replace the cached text
	const sql = `
insert into daily_summaries (user_id, day, summary)
values ($1, $2::date, $3)
on conflict (user_id, day) do update
set summary = excluded.summary, updated_at = now()
returning ` + summaryCols
	s, err := scanSummary(r.q.QueryRow(ctx, sql, userID, day, text))
	if err != nil {
		return domain.Summary{}, perr.FromPostgres(err, "upsert daily summary")
	}
	return s, nil
}

func (r *queries) Delete(ctx context.Context, userID uuid.UUID, day string) error {
	const sql = `delete from daily_summaries where user_id = $1 and day = $2::date`
	if _, err := store.Exec(ctx, r.q, sql, userID, day); err != nil {
		return perr.FromPostgres(err, "delete daily summary")
	}
	return nil
}

func (r *queries) EntriesBetween(
	ctx context.Context, userID uuid.UUID, from, to time.Time,
) ([]EntryRow, error) {
	const sql = `
select created_at, content
from journal_entries
where user_id = $1 and created_at >= $2 and created_at < $3
order by created_at asc
`
	out, err := store.Many(ctx, r.q, func(row repokit.Row) (EntryRow, error) {
		var e EntryRow
		err := row.Scan(&e.CreatedAt, &e.Content)
		return e, err
	}, sql, userID, from, to)
	if err != nil {
		return nil, perr.FromPostgres(err, "list entries for day")
	}
	return out, nil
}
