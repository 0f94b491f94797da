// Package repo provides postgres access for journal entries
package repo

import (
	"context"
	"errors"

	"inkwell/internal/modkit/repokit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/platform/store"
	"inkwell/internal/services/api/journal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repo is the minimal persistence surface for journal entries
type Repo interface {
	Insert(ctx context.Context, userID uuid.UUID, content string, aiResponse *string) (domain.Entry, error)
	List(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Entry, error)
	Get(ctx context.Context, userID, id uuid.UUID) (domain.Entry, error)
	Update(ctx context.Context, userID, id uuid.UUID, content, aiResponse *string) (domain.Entry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error)
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

const entryCols = `id, user_id, content, ai_response, created_at, updated_at`

func scanEntry(row repokit.Row) (domain.Entry, error) {
	var e domain.Entry
	err := row.Scan(&e.ID, &e.UserID, &e.Content, &e.AIResponse, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *queries) Insert(
	ctx context.Context, userID uuid.UUID, content string, aiResponse *string,
) (domain.Entry, error) {
	const sql = `
insert into journal_entries (user_id, content, ai_response)
values ($1, $2, $3)
returning ` + entryCols
	e, err := scanEntry(r.q.QueryRow(ctx, sql, userID, content, aiResponse))
	if err != nil {
		return domain.Entry{}, perr.FromPostgres(err, "insert journal entry")
	}
	return e, nil
}

func (r *queries) List(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Entry, error) {
	const sql = `
select ` + entryCols + `
from journal_entries
where user_id = $1
order by created_at desc
offset $2 limit $3
`
	out, err := store.Many(ctx, r.q, scanEntry, sql, userID, skip, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list journal entries")
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, userID, id uuid.UUID) (domain.Entry, error) {
	const sql = `
select ` + entryCols + `
from journal_entries
where user_id = $1 and id = $2
`
	e, err := store.One(ctx, r.q, scanEntry, sql, userID, id)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Entry{}, perr.NotFoundf("journal entry not found")
	}
	if err != nil {
		return domain.Entry{}, perr.FromPostgres(err, "get journal entry")
	}
	return e, nil
}

func (r *queries) Update(
	ctx context.Context, userID, id uuid.UUID, content, aiResponse *string,
) (domain.Entry, error) {
	// coalesce keeps absent fields untouched
	const sql = `
update journal_entries
set content = coalesce($3, content),
    ai_response = coalesce($4, ai_response),
    updated_at = now()
where user_id = $1 and id = $2
returning ` + entryCols
	e, err := scanEntry(r.q.QueryRow(ctx, sql, userID, id, content, aiResponse))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Entry{}, perr.NotFoundf("journal entry not found")
	}
	if err != nil {
		return domain.Entry{}, perr.FromPostgres(err, "update journal entry")
	}
	return e, nil
}

func (r *queries) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const sql = `delete from journal_entries where user_id = $1 and id = $2`
	tag, err := r.q.Exec(ctx, sql, userID, id)
	if err != nil {
		return perr.FromPostgres(err, "delete journal entry")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("journal entry not found")
	}
	return nil
}

func (r *queries) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error) {
	const sql = `
select ` + entryCols + `
from journal_entries
where user_id = $1
order by created_at desc
limit $2
`
	out, err := store.Many(ctx, r.q, scanEntry, sql, userID, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "recent journal entries")
	}
	return out, nil
}
