package quiz

import (
	"strings"
	"testing"

	"github.com/quizforce/quizforce-api/internal/grading"
)

func validQuiz() Quiz {
	return Quiz{
		Title:       "Cell Biology",
		Description: "Basics of the cell",
		DurationMin: 30,
		CreatedBy:   "admin",
		Questions: []grading.Question{
			{Kind: grading.MultipleChoice, Prompt: "Pick the organelle", Options: []string{"Nucleus", "Chair"}, CorrectOption: 0, Points: 2},
			{Kind: grading.TrueFalse, Prompt: "Cells divide", CorrectOption: 0, Points: 1},
			{Kind: grading.Text, Prompt: "Name the powerhouse", ExpectedText: "mitochondria", Points: 3},
		},
	}
}

func TestValidateOK(t *testing.T) {
	if errs := Validate(validQuiz()); len(errs) != 0 {
		t.Fatalf("valid quiz rejected: %v", errs)
	}
}

func TestValidateRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Quiz)
		wantSub string
	}{
		{"missing title", func(q *Quiz) { q.Title = "  " }, "title is required"},
		{"short title", func(q *Quiz) { q.Title = "ab" }, "at least 3 characters"},
		{"long description", func(q *Quiz) { q.Description = strings.Repeat("x", 501) }, "description cannot exceed"},
		{"short duration", func(q *Quiz) { q.DurationMin = 4 }, "at least 5 minutes"},
		{"long duration", func(q *Quiz) { q.DurationMin = 181 }, "cannot exceed 180"},
		{"no questions", func(q *Quiz) { q.Questions = nil }, "at least one question"},
		{"short prompt", func(q *Quiz) { q.Questions[0].Prompt = "Hi?" }, "at least 5 characters"},
		{"bad points", func(q *Quiz) { q.Questions[0].Points = 11 }, "between 1 and 10"},
		{"one option", func(q *Quiz) { q.Questions[0].Options = []string{"only"} }, "at least 2 options"},
		{"blank option", func(q *Quiz) { q.Questions[0].Options[1] = " " }, "must have content"},
		{"key out of range", func(q *Quiz) { q.Questions[0].CorrectOption = 5 }, "valid correct answer"},
		{"bad true/false key", func(q *Quiz) { q.Questions[1].CorrectOption = 2 }, "0 (True) or 1 (False)"},
		{"text with options", func(q *Quiz) { q.Questions[2].Options = []string{"A"} }, "should not have options"},
		{"unknown kind", func(q *Quiz) { q.Questions[0].Kind = "essay" }, "invalid question type"},
		{"points mismatch", func(q *Quiz) { q.TotalPoints = 99 }, "Total points mismatch"},
	}
	for _, c := range cases {
		q := validQuiz()
		c.mutate(&q)
		errs := Validate(q)
		found := false
		for _, e := range errs {
			if strings.Contains(e, c.wantSub) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s: expected an error containing %q, got %v", c.name, c.wantSub, errs)
		}
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	q := validQuiz()
	q.Title = ""
	q.DurationMin = 0
	errs := Validate(q)
	if len(errs) < 2 {
		t.Fatalf("expected multiple problems, got %v", errs)
	}
}
