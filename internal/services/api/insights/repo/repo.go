// Package repo provides postgres access for journal insights
package repo

import (
	"context"
	"time"

	"inkwell/internal/core/analytics"
	"inkwell/internal/modkit/repokit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/platform/store"

	"github.com/google/uuid"
)

// Repo is the minimal persistence surface for insights
type Repo interface {
	EntriesSince(ctx context.Context, userID uuid.UUID, start time.Time) ([]analytics.Record, error)
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

func (r *queries) EntriesSince(
	ctx context.Context, userID uuid.UUID, start time.Time,
) ([]analytics.Record, error) {
	const sql = `
select id, created_at, content
from journal_entries
where user_id = $1 and created_at >= $2
order by created_at asc
`
	out, err := store.Many(ctx, r.q, func(row repokit.Row) (analytics.Record, error) {
		var rec analytics.Record
		err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.Text)
		return rec, err
	}, sql, userID, start)
	if err != nil {
		return nil, perr.FromPostgres(err, "entries since")
	}
	return out, nil
}
