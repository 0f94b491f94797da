// Package repo provides postgres access for moods
package repo

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/modkit/repokit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/platform/store"
	"inkwell/internal/services/api/mood/domain"

	"github.com/google/uuid"
)

// Repo is the minimal persistence surface for moods
type Repo interface {
	Insert(ctx context.Context, userID uuid.UUID, score int, label string, note *string) (domain.Mood, error)
	List(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Mood, error)
	Get(ctx context.Context, userID, id uuid.UUID) (domain.Mood, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Since(ctx context.Context, userID uuid.UUID, start time.Time) ([]domain.Mood, error)
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

const moodCols = `id, user_id, score, label, note, created_at`

func scanMood(r repokit.Row) (domain.Mood, error) {
	var m domain.Mood
	err := r.Scan(&m.ID, &m.UserID, &m.Score, &m.Label, &m.Note, &m.CreatedAt)
	return m, err
}

func (r *queries) Insert(
	ctx context.Context, userID uuid.UUID, score int, label string, note *string,
) (domain.Mood, error) {
	const sql = `
insert into moods (user_id, score, label, note)
values ($1, $2, $3, $4)
returning ` + moodCols
	m, err := scanMood(r.q.QueryRow(ctx, sql, userID, score, label, note))
	if err != nil {
		return domain.Mood{}, perr.FromPostgres(err, "insert mood")
	}
	return m, nil
}

func (r *queries) List(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Mood, error) {
	const sql = `
select ` + moodCols + `
from moods
where user_id = $1
order by created_at desc
offset $2 limit $3
`
	out, err := store.Many(ctx, r.q, scanMood, sql, userID, skip, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list moods")
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, userID, id uuid.UUID) (domain.Mood, error) {
	const sql = `
select ` + moodCols + `
from moods
where user_id = $1 and id = $2
`
	m, err := store.One(ctx, r.q, scanMood, sql, userID, id)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Mood{}, perr.NotFoundf("mood entry not found")
	}
	if err != nil {
		return domain.Mood{}, perr.FromPostgres(err, "get mood")
	}
	return m, nil
}

func (r *queries) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const sql = `delete from moods where user_id = $1 and id = $2`
	tag, err := r.q.Exec(ctx, sql, userID, id)
	if err != nil {
		return perr.FromPostgres(err, "delete mood")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("mood entry not found")
	}
	return nil
}

func (r *queries) Since(ctx context.Context, userID uuid.UUID, start time.Time) ([]domain.Mood, error) {
	const sql = `
select ` + moodCols + `
from moods
where user_id = $1 and created_at >= $2
order by created_at asc
`
	out, err := store.Many(ctx, r.q, scanMood, sql, userID, start)
	if err != nil {
		return nil, perr.FromPostgres(err, "moods since")
	}
	return out, nil
}
