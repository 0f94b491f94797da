// Package service runs the nightly summary digest
package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"inkwell/internal/core/localday"
	"inkwell/internal/modkit/repokit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/platform/logger"
	sumdomain "inkwell/internal/services/api/summary/domain"
	"inkwell/internal/services/digest/repo"

	"github.com/robfig/cron/v3"
)

var timeHHMM = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)

// Config controls the digest worker
type Config struct {
	// At is the local wall clock time the digest fires, HH:MM
	At string
}

// Svc implements the digest worker
type Svc struct {
	Repo      repo.Repo
	binder    repokit.Binder[repo.Repo]
	db        repokit.TxRunner
	generator sumdomain.GeneratorPort
	spec      string
}

// New constructs the digest worker
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], gen sumdomain.GeneratorPort, cfg Config) (*Svc, error) {
	if db == nil {
		panic("digest.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("digest.Service requires a non nil Repo binder")
	}
	if gen == nil {
		panic("digest.Service requires a non nil summary Generator")
	}
	if !timeHHMM.MatchString(cfg.At) {
		return nil, perr.InvalidArgf("digest time %q must be HH:MM", cfg.At)
	}
	at, err := time.Parse("15:04", cfg.At)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse digest time %q", cfg.At)
	}
	return &Svc{
		Repo:      binder.Bind(db),
		binder:    binder,
		db:        db,
		generator: gen,
		spec:      fmt.Sprintf("%d %d * * *", at.Minute(), at.Hour()),
	}, nil
}

// Run blocks until ctx is done, firing RunOnce on the configured schedule.
// The schedule runs in the journal's local zone so "23:30" means local
// evening regardless of host timezone
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("digest")

	c := cron.New(cron.WithLocation(localday.Zone))
	if _, err := c.AddFunc(s.spec, func() {
		if err := s.RunOnce(ctx); err != nil {
			log.Error().Err(err).Msg("digest run failed")
		}
	}); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "schedule digest %q", s.spec)
	}

	log.Info().Str("spec", s.spec).Msg("digest scheduled")
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return ctx.Err()
}

// RunOnce generates summaries for every user who wrote today and has none
func (s *Svc) RunOnce(ctx context.Context) error {
	log := logger.Named("digest")

	day := localday.FromTime(time.Now())
	from := day.Time().UTC()
	to := day.Next().Time().UTC()

	users, err := s.Repo.PendingUsers(ctx, from, to, day.String())
	if err != nil {
		return err
	}
	log.Info().Str("day", day.String()).Int("users", len(users)).Msg("digest pass")

	for _, uid := range users {
		if _, err := s.generator.GetOrCreate(ctx, uid, day); err != nil {
			// one failing user never aborts the pass
			log.Warn().Err(err).Str("user_id", uid.String()).Msg("digest summary failed")
		}
	}
	return nil
}
