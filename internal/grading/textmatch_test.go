package grading

import "testing"

func TestMatchTextExact(t *testing.T) {
	p := TextPolicy{ExactMatch: true}
	cases := []struct {
		name      string
		submitted string
		expected  string
		policy    TextPolicy
		want      bool
	}{
		{"case folded", "paris", "Paris", p, true},
		{"surrounding whitespace", "  Paris  ", "Paris", p, true},
		{"extra words", "Paris, France", "Paris", p, false},
		{"case sensitive mismatch", "paris", "Paris", TextPolicy{ExactMatch: true, CaseSensitive: true}, false},
		{"case sensitive match", "Paris", "Paris", TextPolicy{ExactMatch: true, CaseSensitive: true}, true},
	}
	for _, c := range cases {
		if got := MatchText(c.submitted, c.expected, c.policy); got != c.want {
			t.Errorf("%s: MatchText(%q, %q) = %v, want %v", c.name, c.submitted, c.expected, got, c.want)
		}
	}
}

func TestMatchTextKeywordThreshold(t *testing.T) {
	expected := "apple banana cherry date eggplant"
	// 3 of 5 keywords present: 0.6 exactly, boundary is inclusive.
	if !MatchText("apple banana cherry", expected, TextPolicy{}) {
		t.Error("3/5 keywords should match (boundary inclusive)")
	}
	if MatchText("apple banana", expected, TextPolicy{}) {
		t.Error("2/5 keywords should not match")
	}
}

func TestMatchTextKeywordSubstrings(t *testing.T) {
	// A keyword matches when it contains or is contained in a user word.
	if !MatchText("the mitochondrial membrane", "mitochondria", TextPolicy{}) {
		t.Error("keyword contained in user word should match")
	}
	if !MatchText("photo", "photosynthesis", TextPolicy{}) {
		t.Error("user word contained in keyword should match")
	}
}

func TestMatchTextShortKeywordFallback(t *testing.T) {
	// All expected words are <= 2 chars, so keyword filtering leaves
	// nothing and whole-string containment applies.
	if !MatchText("it is ok", "ok", TextPolicy{}) {
		t.Error("containment fallback should match")
	}
	if MatchText("nope", "ok", TextPolicy{}) {
		t.Error("containment fallback should not match disjoint strings")
	}
}

func TestMatchTextEmptyOperands(t *testing.T) {
	if MatchText("", "answer", TextPolicy{}) {
		t.Error("empty submission never matches")
	}
	if MatchText("answer", "   ", TextPolicy{}) {
		t.Error("blank expected answer never matches")
	}
}
