package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"inkwell/internal/adapters/llm"
	"inkwell/internal/core/localday"
	"inkwell/internal/modkit/repokit"
	perr "inkwell/internal/platform/errors"
	ptime "inkwell/internal/platform/time"
	"inkwell/internal/services/api/journal/domain"
	"inkwell/internal/services/api/journal/repo"

	"github.com/google/uuid"
)

type fakeRepo struct {
	entries map[uuid.UUID]domain.Entry
	recent  []domain.Entry
	now     time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		entries: map[uuid.UUID]domain.Entry{},
		now:     time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) Insert(
	_ context.Context, userID uuid.UUID, content string, aiResponse *string,
) (domain.Entry, error) {
	e := domain.Entry{
		ID:         uuid.New(),
		UserID:     userID,
		Content:    content,
		AIResponse: aiResponse,
		CreatedAt:  f.now,
	}
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeRepo) List(_ context.Context, _ uuid.UUID, _, _ int) ([]domain.Entry, error) {
	return f.recent, nil
}

func (f *fakeRepo) Get(_ context.Context, _, id uuid.UUID) (domain.Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return domain.Entry{}, perr.NotFoundf("journal entry not found")
	}
	return e, nil
}

func (f *fakeRepo) Update(
	_ context.Context, _, id uuid.UUID, content, aiResponse *string,
) (domain.Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return domain.Entry{}, perr.NotFoundf("journal entry not found")
	}
	if content != nil {
		e.Content = *content
	}
	if aiResponse != nil {
		e.AIResponse = aiResponse
	}
	e.UpdatedAt = ptime.Ptr(f.now)
	f.entries[id] = e
	return e, nil
}

func (f *fakeRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	if _, ok := f.entries[id]; !ok {
		return perr.NotFoundf("journal entry not found")
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeRepo) Recent(_ context.Context, _ uuid.UUID, _ int) ([]domain.Entry, error) {
	return f.recent, nil
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

type spyInvalidator struct{ days []string }

func (s *spyInvalidator) Invalidate(_ context.Context, _ uuid.UUID, day localday.Day) error {
	s.days = append(s.days, day.String())
	return nil
}

func silentOracle() llm.Oracle {
	return llm.OracleFunc(func(context.Context, string) (string, error) { return "", nil })
}

func TestCreate_InvalidatesLocalDay(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	// 22:00 UTC rolls into the next local day
	fr.now = time.Date(2026, 8, 10, 22, 0, 0, 0, time.UTC)
	inv := &spyInvalidator{}
	s := New(nopRunner{}, fakeBinder{r: fr}, silentOracle(), inv)

	_, err := s.Create(context.Background(), uuid.New(), domain.CreateInput{Content: "late night note"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(inv.days) != 1 || inv.days[0] != "2026-08-11" {
		t.Fatalf("invalidated days = %v, want [2026-08-11]", inv.days)
	}
}

func TestDelete_InvalidatesEntryDay(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	inv := &spyInvalidator{}
	s := New(nopRunner{}, fakeBinder{r: fr}, silentOracle(), inv)

	uid := uuid.New()
	e, err := s.Create(context.Background(), uid, domain.CreateInput{Content: "note"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	inv.days = nil

	if err := s.Delete(context.Background(), uid, e.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(inv.days) != 1 || inv.days[0] != "2026-08-10" {
		t.Fatalf("invalidated days = %v, want [2026-08-10]", inv.days)
	}
}

func TestDelete_MissingEntryIsNotFound(t *testing.T) {
	t.Parallel()

	inv := &spyInvalidator{}
	s := New(nopRunner{}, fakeBinder{r: newFakeRepo()}, silentOracle(), inv)

	err := s.Delete(context.Background(), uuid.New(), uuid.New())
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(inv.days) != 0 {
		t.Fatalf("missing entry must not invalidate, got %v", inv.days)
	}
}

func TestUpdate_DoesNotInvalidate(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	inv := &spyInvalidator{}
	s := New(nopRunner{}, fakeBinder{r: fr}, silentOracle(), inv)

	uid := uuid.New()
	e, err := s.Create(context.Background(), uid, domain.CreateInput{Content: "draft"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	inv.days = nil

	next := "final"
	got, err := s.Update(context.Background(), uid, e.ID, domain.UpdateInput{Content: &next})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Content != "final" {
		t.Fatalf("Content = %q", got.Content)
	}
	if got.UpdatedAt == nil {
		t.Fatal("UpdatedAt not set")
	}
	if len(inv.days) != 0 {
		t.Fatalf("update must not invalidate, got %v", inv.days)
	}
}

func TestReply_FeedsRecentHistoryOldestFirst(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	resp := "You did great"
	fr.recent = []domain.Entry{
		{Content: "newest", AIResponse: &resp},
		{Content: "oldest"},
	}

	var prompt string
	oracle := llm.OracleFunc(func(_ context.Context, p string) (string, error) {
		prompt = p
		return "that sounds hard", nil
	})
	s := New(nopRunner{}, fakeBinder{r: fr}, oracle, &spyInvalidator{})

	out, err := s.Reply(context.Background(), uuid.New(), domain.ReplyInput{Content: "rough day"})
	if err != nil {
		t.Fatalf("Reply error: %v", err)
	}
	if out.Response != "that sounds hard" {
		t.Fatalf("Response = %q", out.Response)
	}
	oldest := strings.Index(prompt, "Journal Entry: oldest")
	newest := strings.Index(prompt, "Journal Entry: newest")
	if oldest == -1 || newest == -1 || oldest > newest {
		t.Fatalf("history order wrong in prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "AI Response: You did great") {
		t.Fatalf("prompt missing stored ai response: %q", prompt)
	}
	if !strings.Contains(prompt, "User: rough day") {
		t.Fatalf("prompt missing user content: %q", prompt)
	}
}

func TestReply_EmptyHistoryOmitsPreamble(t *testing.T) {
	t.Parallel()

	var prompt string
	oracle := llm.OracleFunc(func(_ context.Context, p string) (string, error) {
		prompt = p
		return "welcome", nil
	})
	s := New(nopRunner{}, fakeBinder{r: newFakeRepo()}, oracle, &spyInvalidator{})

	if _, err := s.Reply(context.Background(), uuid.New(), domain.ReplyInput{Content: "hi"}); err != nil {
		t.Fatalf("Reply error: %v", err)
	}
	if strings.Contains(prompt, "Previous conversation") {
		t.Fatalf("empty history must not add a preamble: %q", prompt)
	}
}

func TestList_ClampsPaging(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	s := New(nopRunner{}, fakeBinder{r: fr}, silentOracle(), &spyInvalidator{})

	if _, err := s.List(context.Background(), uuid.New(), domain.ListQuery{Skip: -5, Limit: 10_000}); err != nil {
		t.Fatalf("List error: %v", err)
	}
}
