package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/quizforce/quizforce-api/internal/auth"
	"github.com/quizforce/quizforce-api/internal/quiz"
	"github.com/quizforce/quizforce-api/internal/rbac"
	"github.com/quizforce/quizforce-api/internal/stats"
)

type submissionView struct {
	ID          string `json:"id"`
	QuizID      string `json:"quizId"`
	Score       int    `json:"score"`
	TotalPoints int    `json:"totalPoints"`
	Analysis    any    `json:"analysis"`
	SubmittedAt int64  `json:"submittedAt"`
}

// POST /api/quiz-submissions {quizId, answers, studentId}
func CreateSubmissionHandler(store quiz.Store, counter stats.Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			QuizID    string         `json:"quizId"`
			Answers   map[string]any `json:"answers"`
			StudentID string         `json:"studentId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, http.StatusBadRequest, "bad json")
			return
		}
		if req.StudentID == "" {
			req.StudentID = auth.SubjectFromContext(r.Context())
		}
		if req.QuizID == "" || req.Answers == nil || req.StudentID == "" {
			fail(w, http.StatusBadRequest, "Missing required fields: quizId, answers, studentId")
			return
		}
		sub, err := store.CreateSubmission(r.Context(), req.QuizID, req.StudentID, req.Answers)
		if errors.Is(err, quiz.ErrQuizNotFound) {
			fail(w, http.StatusNotFound, "Quiz not found")
			return
		}
		if err != nil {
			fail(w, http.StatusInternalServerError, "Error submitting quiz")
			return
		}
		_ = counter.Invalidate(r.Context(), req.QuizID)

		res := sub.Result
		writeJSON(w, http.StatusCreated, map[string]any{
			"success":         true,
			"message":         "Quiz submitted successfully",
			"score":           res.TotalScore,
			"totalPoints":     res.TotalPossible,
			"scorePercentage": res.ScorePercentage,
			"analysis": map[string]any{
				"correctAnswers":    res.Correct,
				"incorrectAnswers":  res.Incorrect,
				"unanswered":        res.Unanswered,
				"needsReview":       res.NeedsReview,
				"completionRate":    res.CompletionRate,
				"performanceLevel":  res.Performance,
				"questionsAnalyzed": len(res.PerQuestion),
				"questionAnalysis":  res.PerQuestion,
			},
			"submissionId": sub.ID,
		})
	}
}

// GET /api/quiz-submissions?studentId=&quizId=
func ListSubmissionsHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := quiz.SubmissionListOpts{
			StudentID: strings.TrimSpace(r.URL.Query().Get("studentId")),
			QuizID:    strings.TrimSpace(r.URL.Query().Get("quizId")),
		}
		// Students only ever see their own history.
		if rbac.RoleFromContext(r.Context()) == auth.RoleStudent {
			opts.StudentID = auth.SubjectFromContext(r.Context())
		}
		if opts.StudentID == "" && opts.QuizID == "" {
			fail(w, http.StatusBadRequest, "studentId is required")
			return
		}
		subs, err := store.ListSubmissions(r.Context(), opts)
		if err != nil {
			fail(w, http.StatusInternalServerError, "Error fetching submissions")
			return
		}
		views := make([]submissionView, 0, len(subs))
		for _, s := range subs {
			views = append(views, submissionView{
				ID:          s.ID,
				QuizID:      s.QuizID,
				Score:       s.Result.TotalScore,
				TotalPoints: s.Result.TotalPossible,
				Analysis:    s.Result,
				SubmittedAt: s.SubmittedAt,
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "submissions": views})
	}
}
