package bank

import (
	"context"
	"errors"
	"testing"

	"github.com/psinha/quizforge/internal/quiz"
	"github.com/psinha/quizforge/internal/store"
)

// fakeRepo is an in-memory BankRepo.
type fakeRepo struct {
	banks map[string]*store.BankData
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{banks: make(map[string]*store.BankData)}
}

func (r *fakeRepo) Save(_ context.Context, b *store.BankData) error {
	cp := *b
	r.banks[b.ID] = &cp
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id string) (*store.BankData, error) {
	b, ok := r.banks[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*store.BankData, error) {
	var out []*store.BankData
	for _, b := range r.banks {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) Rename(_ context.Context, id, name string) error {
	if b, ok := r.banks[id]; ok {
		b.Name = name
	}
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.banks, id)
	return nil
}

func questions() []quiz.Question {
	return []quiz.Question{
		{ID: "q1", Text: "t", Type: quiz.SingleChoice, Options: []string{"a", "b"}, CorrectIndices: []int{0}},
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	b, err := svc.Create(ctx, "  history  ", questions())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID == "" {
		t.Error("bank has no ID")
	}
	if b.Name != "history" {
		t.Errorf("name = %q, want trimmed", b.Name)
	}

	got, err := svc.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Questions) != 1 {
		t.Errorf("questions = %d, want 1", len(got.Questions))
	}
}

func TestCreateEmptyName(t *testing.T) {
	svc := NewService(newFakeRepo())
	if _, err := svc.Create(context.Background(), "   ", questions()); !errors.Is(err, ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
}

func TestGetMissing(t *testing.T) {
	svc := NewService(newFakeRepo())
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRenameAndDelete(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	b, err := svc.Create(ctx, "old", questions())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Rename(ctx, b.ID, "new"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, _ := svc.Get(ctx, b.ID)
	if got.Name != "new" {
		t.Errorf("name = %q, want new", got.Name)
	}

	if err := svc.Rename(ctx, "missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("rename missing err = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete err = %v, want ErrNotFound", err)
	}
}
