package quiz

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quizforce/quizforce-api/internal/grading"
)

// memoryStore is a Store for tests and single-node development.
type memoryStore struct {
	mu          sync.RWMutex
	quizzes     map[string]Quiz
	submissions map[string]Submission
}

func NewInMemoryStore() Store {
	return &memoryStore{
		quizzes:     map[string]Quiz{},
		submissions: map[string]Submission{},
	}
}

func (m *memoryStore) PutQuiz(_ context.Context, q Quiz) (Quiz, error) {
	if errs := Validate(q); len(errs) > 0 {
		return Quiz{}, fmt.Errorf("%w: %s", ErrQuizInvalid, strings.Join(errs, "; "))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Status == "" {
		q.Status = StatusActive
	}
	if q.CreatedAt == 0 {
		q.CreatedAt = time.Now().Unix()
	}
	q.TotalPoints = 0
	for _, qu := range q.Questions {
		q.TotalPoints += qu.Points
	}
	m.quizzes[q.ID] = q
	return q, nil
}

func (m *memoryStore) GetQuiz(ctx context.Context, id string) (Quiz, error) {
	q, err := m.GetQuizAdmin(ctx, id)
	if err != nil {
		return Quiz{}, err
	}
	return q.Sanitized(), nil
}

func (m *memoryStore) GetQuizAdmin(_ context.Context, id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, ErrQuizNotFound
	}
	return q, nil
}

func (m *memoryStore) ListQuizzes(_ context.Context, opts ListOpts) ([]Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Quiz{}
	for _, q := range m.quizzes {
		if opts.CreatedBy != "" && q.CreatedBy != opts.CreatedBy {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return paginate(out, opts.Limit, opts.Offset), nil
}

func (m *memoryStore) DeleteQuiz(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.quizzes[id]; !ok {
		return ErrQuizNotFound
	}
	delete(m.quizzes, id)
	for sid, sub := range m.submissions {
		if sub.QuizID == id {
			delete(m.submissions, sid)
		}
	}
	return nil
}

func (m *memoryStore) CreateSubmission(ctx context.Context, quizID, studentID string, rawAnswers map[string]any) (Submission, error) {
	q, err := m.GetQuizAdmin(ctx, quizID)
	if err != nil {
		return Submission{}, err
	}
	result := grading.GradeSubmission(q.Questions, grading.ClassifyAnswers(rawAnswers))

	m.mu.Lock()
	defer m.mu.Unlock()
	sub := Submission{
		ID:          uuid.NewString(),
		QuizID:      quizID,
		StudentID:   studentID,
		RawAnswers:  rawAnswers,
		Result:      result,
		SubmittedAt: time.Now().Unix(),
	}
	m.submissions[sub.ID] = sub
	return sub, nil
}

func (m *memoryStore) GetSubmission(_ context.Context, id string) (Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sub, ok := m.submissions[id]
	if !ok {
		return Submission{}, ErrSubmissionNotFound
	}
	return sub, nil
}

func (m *memoryStore) ListSubmissions(_ context.Context, opts SubmissionListOpts) ([]Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Submission{}
	for _, sub := range m.submissions {
		if opts.StudentID != "" && sub.StudentID != opts.StudentID {
			continue
		}
		if opts.QuizID != "" && sub.QuizID != opts.QuizID {
			continue
		}
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt != out[j].SubmittedAt {
			return out[i].SubmittedAt > out[j].SubmittedAt
		}
		return out[i].ID > out[j].ID
	})
	return paginate(out, opts.Limit, opts.Offset), nil
}

func (m *memoryStore) CountSubmissions(_ context.Context, quizID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, sub := range m.submissions {
		if sub.QuizID == quizID {
			n++
		}
	}
	return n, nil
}

func paginate[T any](in []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(in) {
			return []T{}
		}
		in = in[offset:]
	}
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
