// Package repo provides postgres access for the digest worker
package repo

import (
	"context"
	"time"

	"inkwell/internal/modkit/repokit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/platform/store"

	"github.com/google/uuid"
)

// Repo is the minimal persistence surface for the digest worker
type Repo interface {
	// PendingUsers returns users who wrote in [from, to) but have no
	// summary for the given day yet
	PendingUsers(ctx context.Context, from, to time.Time, day string) ([]uuid.UUID, error)
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

func (r *queries) PendingUsers(
	ctx context.Context, from, to time.Time, day string,
) ([]uuid.UUID, error) {
	const sql = `
select distinct e.user_id
from journal_entries e
where e.created_at >= $1 and e.created_at < $2
and not exists (
    select 1 from daily_summaries s
    where s.user_id = e.user_id and s.day = $3::date
)
`
	out, err := store.Many(ctx, r.q, func(row repokit.Row) (uuid.UUID, error) {
		var id uuid.UUID
		err := row.Scan(&id)
		return id, err
	}, sql, from, to, day)
	if err != nil {
		return nil, perr.FromPostgres(err, "pending digest users")
	}
	return out, nil
}
