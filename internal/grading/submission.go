package grading

// PerformanceLevel is the qualitative band derived from the score
// percentage.
type PerformanceLevel string

const (
	PerfExcellent        PerformanceLevel = "Excellent"
	PerfGood             PerformanceLevel = "Good"
	PerfSatisfactory     PerformanceLevel = "Satisfactory"
	PerfFair             PerformanceLevel = "Fair"
	PerfNeedsImprovement PerformanceLevel = "Needs Improvement"
)

// SubmissionResult aggregates a graded answer set. PerQuestion is in quiz
// question order; downstream consumers index into it positionally.
type SubmissionResult struct {
	TotalScore      int              `json:"score"`
	TotalPossible   int              `json:"totalPoints"`
	ScorePercentage int              `json:"scorePercentage"`
	Correct         int              `json:"correctAnswers"`
	Incorrect       int              `json:"incorrectAnswers"`
	Unanswered      int              `json:"unansweredQuestions"`
	NeedsReview     int              `json:"needsReview"`
	CompletionRate  int              `json:"completionRate"`
	Performance     PerformanceLevel `json:"performanceLevel"`
	PerQuestion     []QuestionResult `json:"questionAnalysis"`
}

// GradeSubmission grades an entire answer set against a quiz's question
// list. It never fails: an empty quiz yields a zero result with
// performance "Needs Improvement". Needs-review answers are counted
// separately from incorrect ones so manual-review workflows can find them.
func GradeSubmission(questions []Question, answers AnswerSet) SubmissionResult {
	res := SubmissionResult{PerQuestion: make([]QuestionResult, 0, len(questions))}
	for i, q := range questions {
		qr := GradeQuestion(q, i, answers[i])
		res.TotalPossible += q.Points
		res.TotalScore += qr.PointsAwarded
		switch qr.Verdict {
		case VerdictCorrect:
			res.Correct++
		case VerdictIncorrect:
			res.Incorrect++
		case VerdictUnanswered:
			res.Unanswered++
		case VerdictNeedsReview:
			res.NeedsReview++
		}
		res.PerQuestion = append(res.PerQuestion, qr)
	}
	if res.TotalPossible > 0 {
		res.ScorePercentage = roundPct(res.TotalScore, res.TotalPossible)
	}
	if n := len(questions); n > 0 {
		res.CompletionRate = roundPct(n-res.Unanswered, n)
	}
	res.Performance = performanceFor(res.ScorePercentage)
	return res
}

// roundPct rounds num/den to a whole percentage, half up.
func roundPct(num, den int) int {
	return (num*200 + den) / (den * 2)
}

func performanceFor(pct int) PerformanceLevel {
	switch {
	case pct >= 90:
		return PerfExcellent
	case pct >= 80:
		return PerfGood
	case pct >= 70:
		return PerfSatisfactory
	case pct >= 60:
		return PerfFair
	default:
		return PerfNeedsImprovement
	}
}
