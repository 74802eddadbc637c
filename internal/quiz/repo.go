package quiz

import (
	"context"
	"errors"
)

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrQuizInvalid        = errors.New("quiz validation failed")
)

type ListOpts struct {
	CreatedBy string // filter by author; empty lists everything
	Limit     int
	Offset    int
}

type SubmissionListOpts struct {
	StudentID string
	QuizID    string
	Limit     int
	Offset    int
}

// Store persists quizzes and their graded submissions. Both
// implementations (SQL, in-memory) grade on CreateSubmission so a
// submission is never stored ungraded.
type Store interface {
	// PutQuiz validates and persists a quiz, assigning an ID when absent.
	PutQuiz(ctx context.Context, q Quiz) (Quiz, error)
	// GetQuiz returns the student-safe view, answer keys stripped.
	GetQuiz(ctx context.Context, id string) (Quiz, error)
	// GetQuizAdmin returns the full quiz including answer keys.
	GetQuizAdmin(ctx context.Context, id string) (Quiz, error)
	ListQuizzes(ctx context.Context, opts ListOpts) ([]Quiz, error)
	// DeleteQuiz removes a quiz and all of its submissions.
	DeleteQuiz(ctx context.Context, id string) error

	// CreateSubmission grades rawAnswers against the quiz and persists
	// the result.
	CreateSubmission(ctx context.Context, quizID, studentID string, rawAnswers map[string]any) (Submission, error)
	GetSubmission(ctx context.Context, id string) (Submission, error)
	// ListSubmissions returns submissions newest first.
	ListSubmissions(ctx context.Context, opts SubmissionListOpts) ([]Submission, error)
	CountSubmissions(ctx context.Context, quizID string) (int64, error)
}
