package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/quizforce/quizforce-api/internal/grading"
)

func TestMemoryStoreQuizRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	q, err := store.PutQuiz(ctx, validQuiz())
	if err != nil {
		t.Fatalf("put quiz: %v", err)
	}
	if q.ID == "" || q.Status != StatusActive {
		t.Fatalf("defaults not applied: %+v", q)
	}
	if q.TotalPoints != 6 {
		t.Fatalf("total points: got %d, want 6", q.TotalPoints)
	}

	got, err := store.GetQuiz(ctx, q.ID)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	for i, qu := range got.Questions {
		if qu.CorrectOption != -1 || qu.ExpectedText != "" {
			t.Fatalf("question %d still carries answer key: %+v", i, qu)
		}
	}

	admin, err := store.GetQuizAdmin(ctx, q.ID)
	if err != nil {
		t.Fatalf("get quiz admin: %v", err)
	}
	if admin.Questions[0].CorrectOption != 0 || admin.Questions[2].ExpectedText == "" {
		t.Fatal("admin view must keep answer keys")
	}
}

func TestMemoryStorePutQuizValidates(t *testing.T) {
	q := validQuiz()
	q.Title = ""
	if _, err := NewInMemoryStore().PutQuiz(context.Background(), q); !errors.Is(err, ErrQuizInvalid) {
		t.Fatalf("expected ErrQuizInvalid, got %v", err)
	}
}

func TestMemoryStoreSubmissionGradedOnCreate(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	q, err := store.PutQuiz(ctx, validQuiz())
	if err != nil {
		t.Fatalf("put quiz: %v", err)
	}

	raw := map[string]any{"0": float64(0), "1": float64(1), "2": "the mitochondria"}
	sub, err := store.CreateSubmission(ctx, q.ID, "student-1", raw)
	if err != nil {
		t.Fatalf("create submission: %v", err)
	}
	// Q0 correct (2), Q1 wrong, Q2 text match (3).
	if sub.Result.TotalScore != 5 || sub.Result.TotalPossible != 6 {
		t.Fatalf("score: got %d/%d, want 5/6", sub.Result.TotalScore, sub.Result.TotalPossible)
	}
	if sub.Result.Performance != grading.PerfGood {
		t.Fatalf("performance: got %s, want %s", sub.Result.Performance, grading.PerfGood)
	}

	if _, err := store.CreateSubmission(ctx, "missing", "student-1", raw); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}

	n, err := store.CountSubmissions(ctx, q.ID)
	if err != nil || n != 1 {
		t.Fatalf("count: got %d (%v), want 1", n, err)
	}
}

func TestMemoryStoreListSubmissionsFiltered(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	q, _ := store.PutQuiz(ctx, validQuiz())

	if _, err := store.CreateSubmission(ctx, q.ID, "alice", map[string]any{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.CreateSubmission(ctx, q.ID, "bob", map[string]any{}); err != nil {
		t.Fatalf("create: %v", err)
	}

	subs, err := store.ListSubmissions(ctx, SubmissionListOpts{StudentID: "alice"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 1 || subs[0].StudentID != "alice" {
		t.Fatalf("student filter: got %+v", subs)
	}
}

func TestMemoryStoreDeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	q, _ := store.PutQuiz(ctx, validQuiz())
	sub, _ := store.CreateSubmission(ctx, q.ID, "alice", map[string]any{})

	if err := store.DeleteQuiz(ctx, q.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetQuiz(ctx, q.ID); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("quiz should be gone, got %v", err)
	}
	if _, err := store.GetSubmission(ctx, sub.ID); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("submission should be gone, got %v", err)
	}
	if err := store.DeleteQuiz(ctx, q.ID); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("double delete should report not found, got %v", err)
	}
}

func TestMemoryStoreListQuizzesByAuthor(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	a := validQuiz()
	a.CreatedBy = "admin-a"
	b := validQuiz()
	b.CreatedBy = "admin-b"
	if _, err := store.PutQuiz(ctx, a); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.PutQuiz(ctx, b); err != nil {
		t.Fatalf("put: %v", err)
	}

	all, err := store.ListQuizzes(ctx, ListOpts{})
	if err != nil || len(all) != 2 {
		t.Fatalf("list all: got %d (%v)", len(all), err)
	}
	mine, err := store.ListQuizzes(ctx, ListOpts{CreatedBy: "admin-a"})
	if err != nil || len(mine) != 1 || mine[0].CreatedBy != "admin-a" {
		t.Fatalf("author filter: got %+v (%v)", mine, err)
	}
}
