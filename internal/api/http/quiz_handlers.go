package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quizforce/quizforce-api/internal/auth"
	"github.com/quizforce/quizforce-api/internal/grading"
	"github.com/quizforce/quizforce-api/internal/quiz"
	"github.com/quizforce/quizforce-api/internal/stats"
)

type createQuizReq struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    int                `json:"duration"`
	TotalPoints int                `json:"totalPoints"`
	Questions   []grading.Question `json:"questions"`
}

// POST /api/quizzes
func CreateQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createQuizReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, http.StatusBadRequest, "bad json")
			return
		}
		q := quiz.Quiz{
			Title:       req.Title,
			Description: req.Description,
			DurationMin: req.Duration,
			TotalPoints: req.TotalPoints,
			CreatedBy:   auth.SubjectFromContext(r.Context()),
			Questions:   req.Questions,
		}
		if errs := quiz.Validate(q); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"message": "Quiz validation failed",
				"errors":  errs,
			})
			return
		}
		created, err := store.PutQuiz(r.Context(), q)
		if err != nil {
			fail(w, http.StatusInternalServerError, "Error creating quiz")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "Quiz created successfully",
			"quiz":    created.Summary(),
		})
	}
}

// GET /api/quizzes?userId=
func ListQuizzesHandler(store quiz.Store, counter stats.Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := quiz.ListOpts{CreatedBy: strings.TrimSpace(r.URL.Query().Get("userId"))}
		quizzes, err := store.ListQuizzes(r.Context(), opts)
		if err != nil {
			fail(w, http.StatusInternalServerError, "Error fetching quizzes")
			return
		}
		summaries := make([]quiz.Summary, 0, len(quizzes))
		for _, q := range quizzes {
			s := q.Summary()
			if n, err := counter.Participants(r.Context(), q.ID); err == nil {
				s.Participants = n
			}
			summaries = append(summaries, s)
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "quizzes": summaries})
	}
}

// GET /api/quizzes/{quizID} — student-safe view, answer keys stripped.
func GetQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		q, err := store.GetQuiz(r.Context(), id)
		if errors.Is(err, quiz.ErrQuizNotFound) {
			fail(w, http.StatusNotFound, "Quiz not found")
			return
		}
		if err != nil {
			fail(w, http.StatusInternalServerError, "Error fetching quiz")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "quiz": q})
	}
}

// DELETE /api/quizzes/{quizID}
func DeleteQuizHandler(store quiz.Store, counter stats.Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		err := store.DeleteQuiz(r.Context(), id)
		if errors.Is(err, quiz.ErrQuizNotFound) {
			fail(w, http.StatusNotFound, "Quiz not found")
			return
		}
		if err != nil {
			fail(w, http.StatusInternalServerError, "Error deleting quiz")
			return
		}
		_ = counter.Invalidate(r.Context(), id)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Quiz and related submissions deleted successfully",
		})
	}
}
