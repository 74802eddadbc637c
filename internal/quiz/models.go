// Package quiz holds the quiz and submission domain model and its stores.
package quiz

import "github.com/quizforce/quizforce-api/internal/grading"

const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusArchived = "archived"
)

type Quiz struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	DurationMin int                `json:"duration"`
	TotalPoints int                `json:"totalPoints"`
	Status      string             `json:"status"`
	CreatedBy   string             `json:"createdBy"`
	Questions   []grading.Question `json:"questions"`
	CreatedAt   int64              `json:"createdAt,omitempty"`
}

// Sanitized returns a copy safe to serve to students: answer keys and
// expected answers are stripped. CorrectOption becomes -1 since 0 is a
// valid option index.
func (q Quiz) Sanitized() Quiz {
	out := q
	out.Questions = make([]grading.Question, len(q.Questions))
	for i, qu := range q.Questions {
		qu.CorrectOption = -1
		qu.ExpectedText = ""
		out.Questions[i] = qu
	}
	return out
}

// Summary is the listing view of a quiz, including how many submissions it
// has received.
type Summary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	DurationMin   int    `json:"duration"`
	TotalPoints   int    `json:"totalPoints"`
	Status        string `json:"status"`
	QuestionCount int    `json:"questionCount"`
	Participants  int64  `json:"participants"`
	CreatedAt     int64  `json:"createdAt,omitempty"`
}

func (q Quiz) Summary() Summary {
	return Summary{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		DurationMin:   q.DurationMin,
		TotalPoints:   q.TotalPoints,
		Status:        q.Status,
		QuestionCount: len(q.Questions),
		CreatedAt:     q.CreatedAt,
	}
}

// Submission is a graded answer set. RawAnswers is the payload exactly as
// submitted; Result is the engine's verdict, stored verbatim.
type Submission struct {
	ID          string                   `json:"id"`
	QuizID      string                   `json:"quizId"`
	StudentID   string                   `json:"studentId"`
	RawAnswers  map[string]any           `json:"answers"`
	Result      grading.SubmissionResult `json:"analysis"`
	SubmittedAt int64                    `json:"submittedAt"`
}
