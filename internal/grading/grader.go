package grading

import "strings"

// Verdict is the outcome of grading one question.
type Verdict string

const (
	VerdictCorrect    Verdict = "correct"
	VerdictIncorrect  Verdict = "incorrect"
	VerdictUnanswered Verdict = "unanswered"
	// VerdictNeedsReview marks free-text answers that could not be
	// auto-matched. They earn no points automatically but are not counted
	// as incorrect; a teacher resolves them.
	VerdictNeedsReview Verdict = "needs_review"
)

// QuestionResult is the graded outcome for a single question, including an
// echo of the answer key for review screens.
type QuestionResult struct {
	Index           int     `json:"questionIndex"`
	Kind            Kind    `json:"questionType"`
	Submitted       Answer  `json:"userAnswer"`
	CorrectOption   int     `json:"correctAnswer"`
	ExpectedText    string  `json:"expectedAnswer,omitempty"`
	PointsAvailable int     `json:"points"`
	PointsAwarded   int     `json:"pointsEarned"`
	Verdict         Verdict `json:"status"`
}

// GradeQuestion grades one answered question. Points are all or nothing.
//
// Choice kinds compare the submitted option index to CorrectOption with
// exact type equality: a text answer on a choice question is simply
// incorrect, never coerced. Text questions route every non-matching or
// non-gradable answer to needs_review rather than incorrect.
//
// A malformed question (e.g. a choice question whose CorrectOption is out
// of range) is an authoring bug; the grader does not re-validate, such a
// key just never matches.
func GradeQuestion(q Question, idx int, a Answer) QuestionResult {
	res := QuestionResult{
		Index:           idx,
		Kind:            q.Kind,
		Submitted:       a,
		CorrectOption:   q.CorrectOption,
		ExpectedText:    q.ExpectedText,
		PointsAvailable: q.Points,
		Verdict:         VerdictUnanswered,
	}
	if unanswered(a) {
		return res
	}

	switch q.Kind {
	case MultipleChoice, TrueFalse:
		if i, ok := a.Choice(); ok && i == q.CorrectOption {
			res.PointsAwarded = q.Points
			res.Verdict = VerdictCorrect
		} else {
			res.Verdict = VerdictIncorrect
		}
	case Text:
		if strings.TrimSpace(q.ExpectedText) == "" {
			// nothing to auto-grade against
			res.Verdict = VerdictNeedsReview
			return res
		}
		s, _ := a.Text()
		if MatchText(s, q.ExpectedText, q.Policy) {
			res.PointsAwarded = q.Points
			res.Verdict = VerdictCorrect
		} else {
			res.Verdict = VerdictNeedsReview
		}
	}
	return res
}

func unanswered(a Answer) bool {
	if a.IsMissing() {
		return true
	}
	if s, ok := a.Text(); ok && s == "" {
		return true
	}
	return false
}
