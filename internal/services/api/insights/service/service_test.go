package service

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/core/analytics"
	"inkwell/internal/modkit/repokit"
	perr "inkwell/internal/platform/errors"
	"inkwell/internal/services/api/insights/repo"

	"github.com/google/uuid"
)

type fakeRepo struct {
	records []analytics.Record
	start   time.Time
}

func (f *fakeRepo) EntriesSince(_ context.Context, _ uuid.UUID, start time.Time) ([]analytics.Record, error) {
	f.start = start
	return f.records, nil
}

type fakeBinder struct{ r repo.Repo }

func (b fakeBinder) Bind(repokit.Queryer) repo.Repo { return b.r }

type nopRunner struct{}

func (nopRunner) Query(context.Context, string, ...any) (repokit.Rows, error) { return nil, nil }
func (nopRunner) QueryRow(context.Context, string, ...any) repokit.Row        { return nil }
func (nopRunner) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	return nil, nil
}

func (nopRunner) Tx(ctx context.Context, fn func(repokit.Queryer) error) error {
	return fn(nopRunner{})
}

func entry(text string, at time.Time) analytics.Record {
	return analytics.Record{ID: uuid.New(), CreatedAt: at, Text: text}
}

func TestStats_ComputesOverWindow(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{}
	at := time.Now().Add(-24 * time.Hour)
	fr.records = []analytics.Record{
		entry("coffee with an old friend", at),
		entry("quiet morning of reading", at.Add(time.Hour)),
	}
	s := New(nopRunner{}, fakeBinder{r: fr})

	res, err := s.Stats(context.Background(), uuid.New(), 30)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if res.TotalEntries != 2 {
		t.Fatalf("TotalEntries = %d", res.TotalEntries)
	}
}

func TestStats_ZeroWindowDefaultsToThirtyDays(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{records: []analytics.Record{entry("hello world today", time.Now())}}
	s := New(nopRunner{}, fakeBinder{r: fr})

	if _, err := s.Stats(context.Background(), uuid.New(), 0); err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	wantAfter := time.Now().AddDate(0, 0, -31)
	if fr.start.Before(wantAfter) {
		t.Fatalf("window start %v reaches further back than 30 days", fr.start)
	}
}

func TestSentiment_EmptyWindowIsNoData(t *testing.T) {
	t.Parallel()

	s := New(nopRunner{}, fakeBinder{r: &fakeRepo{}})
	_, err := s.Sentiment(context.Background(), uuid.New(), 30)
	if !perr.IsCode(err, perr.ErrorCodeNoData) {
		t.Fatalf("expected no data error, got %v", err)
	}
}

func TestInsights_InvalidWindowPropagates(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{records: []analytics.Record{entry("note", time.Now())}}
	s := New(nopRunner{}, fakeBinder{r: fr})

	_, err := s.Insights(context.Background(), uuid.New(), 400)
	if !perr.IsCode(err, perr.ErrorCodeInvalidWindow) {
		t.Fatalf("expected invalid window, got %v", err)
	}
}
