package quiz

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/quizforce/quizforce-api/internal/grading"
)

// Validate checks a quiz at authoring time and returns every problem
// found, or nil when the quiz is publishable. The grading engine relies on
// these invariants and does not re-check them.
func Validate(q Quiz) []string {
	var errs []string

	title := strings.TrimSpace(q.Title)
	switch {
	case title == "":
		errs = append(errs, "Quiz title is required")
	case utf8.RuneCountInString(title) < 3:
		errs = append(errs, "Quiz title must be at least 3 characters")
	case utf8.RuneCountInString(title) > 100:
		errs = append(errs, "Quiz title cannot exceed 100 characters")
	}
	if utf8.RuneCountInString(q.Description) > 500 {
		errs = append(errs, "Quiz description cannot exceed 500 characters")
	}
	if q.DurationMin < 5 {
		errs = append(errs, "Quiz duration must be at least 5 minutes")
	} else if q.DurationMin > 180 {
		errs = append(errs, "Quiz duration cannot exceed 180 minutes (3 hours)")
	}

	switch {
	case len(q.Questions) == 0:
		errs = append(errs, "Quiz must have at least one question")
	case len(q.Questions) > 50:
		errs = append(errs, "Quiz cannot have more than 50 questions")
	default:
		for i, qu := range q.Questions {
			errs = append(errs, validateQuestion(qu, i+1)...)
		}
	}

	if len(q.Questions) > 0 && q.TotalPoints != 0 {
		sum := 0
		for _, qu := range q.Questions {
			sum += qu.Points
		}
		if q.TotalPoints != sum {
			errs = append(errs, fmt.Sprintf("Total points mismatch: expected %d, got %d", sum, q.TotalPoints))
		}
	}
	return errs
}

func validateQuestion(q grading.Question, num int) []string {
	var errs []string
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf("Question %d: ", num)+fmt.Sprintf(format, args...))
	}

	prompt := strings.TrimSpace(q.Prompt)
	switch {
	case prompt == "":
		add("question text is required")
	case utf8.RuneCountInString(prompt) < 5:
		add("question text must be at least 5 characters")
	case utf8.RuneCountInString(prompt) > 500:
		add("question text cannot exceed 500 characters")
	}

	if q.Points < 1 || q.Points > 10 {
		add("points must be between 1 and 10")
	}

	switch q.Kind {
	case grading.MultipleChoice:
		switch {
		case len(q.Options) < 2:
			add("multiple choice questions must have at least 2 options")
		case len(q.Options) > 6:
			add("multiple choice questions cannot have more than 6 options")
		default:
			for j, opt := range q.Options {
				if strings.TrimSpace(opt) == "" {
					add("option %d must have content", j+1)
				} else if utf8.RuneCountInString(opt) > 200 {
					add("option %d cannot exceed 200 characters", j+1)
				}
			}
			if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
				add("please select a valid correct answer")
			}
		}
	case grading.TrueFalse:
		if q.CorrectOption != 0 && q.CorrectOption != 1 {
			add("true/false questions must have 0 (True) or 1 (False) as correct answer")
		}
	case grading.Text:
		if len(q.Options) > 0 {
			add("text questions should not have options")
		}
	default:
		add("invalid question type")
	}
	return errs
}
