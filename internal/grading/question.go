// Package grading scores a quiz submission against its question set.
// It is pure computation: no storage, no I/O, safe for concurrent use.
package grading

// Kind is the closed set of question types.
type Kind string

const (
	MultipleChoice Kind = "multiple-choice"
	TrueFalse      Kind = "true-false"
	Text           Kind = "text"
)

// TextPolicy controls how a free-text answer is matched against the
// expected answer.
type TextPolicy struct {
	CaseSensitive bool `json:"caseSensitive"`
	ExactMatch    bool `json:"exactMatch"`
}

// Question is the immutable description of one quiz question. Fields that
// do not apply to the question's kind are ignored by the grader, not
// validated; authoring-time validation lives in the quiz package.
//
// For choice kinds CorrectOption indexes into Options (TrueFalse uses the
// fixed pair {0: true, 1: false}). For Text questions ExpectedText may be
// empty, which means the question cannot be auto-graded.
type Question struct {
	Kind          Kind       `json:"type"`
	Prompt        string     `json:"question"`
	Options       []string   `json:"options,omitempty"`
	CorrectOption int        `json:"correctAnswer"`
	ExpectedText  string     `json:"expectedAnswer,omitempty"`
	Policy        TextPolicy `json:"validation"`
	Points        int        `json:"points"`
}
