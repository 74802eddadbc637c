package grading

import (
	"encoding/json"
	"strconv"
	"strings"
)

type answerKind int

const (
	answerMissing answerKind = iota
	answerChoice
	answerText
)

// Answer is a submitted value for one question: absent, a selected option
// index, or free text. The zero value is the missing answer.
type Answer struct {
	kind   answerKind
	choice int
	text   string
}

func NoAnswer() Answer             { return Answer{} }
func ChoiceAnswer(i int) Answer    { return Answer{kind: answerChoice, choice: i} }
func TextAnswer(s string) Answer   { return Answer{kind: answerText, text: s} }
func (a Answer) IsMissing() bool   { return a.kind == answerMissing }

// Choice returns the selected option index for a choice answer.
func (a Answer) Choice() (int, bool) {
	return a.choice, a.kind == answerChoice
}

// Text returns the submitted text for a free-text answer.
func (a Answer) Text() (string, bool) {
	return a.text, a.kind == answerText
}

// MarshalJSON echoes the answer the way the client submitted it:
// null, a number, or a string.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case answerChoice:
		return json.Marshal(a.choice)
	case answerText:
		return json.Marshal(a.text)
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*a = classifyValue(v)
	return nil
}

// AnswerSet maps question index (0-based, in quiz order) to the submitted
// answer. Missing entries are unanswered questions.
type AnswerSet map[int]Answer

// ClassifyAnswers converts a raw submission payload, as decoded from JSON
// ({"0": 1, "2": "mitochondria", ...}), into an AnswerSet. Numbers become
// choice answers and strings become text answers; a numeric string such as
// "1" is NOT coerced to a choice index, so it never matches a choice
// question's key. Keys that are not non-negative integers are dropped.
func ClassifyAnswers(raw map[string]any) AnswerSet {
	out := make(AnswerSet, len(raw))
	for k, v := range raw {
		idx, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || idx < 0 {
			continue
		}
		if a := classifyValue(v); !a.IsMissing() {
			out[idx] = a
		}
	}
	return out
}

func classifyValue(v any) Answer {
	switch t := v.(type) {
	case float64:
		return ChoiceAnswer(int(t))
	case int:
		return ChoiceAnswer(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return ChoiceAnswer(int(i))
		}
		if f, err := t.Float64(); err == nil {
			return ChoiceAnswer(int(f))
		}
		return NoAnswer()
	case string:
		return TextAnswer(t)
	default:
		// null, booleans, arrays: nothing gradable was submitted
		return NoAnswer()
	}
}
