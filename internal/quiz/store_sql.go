package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizforce/quizforce-api/internal/grading"
)

// SQLStore implements Store on database/sql. Question lists, raw answers
// and grading results are stored as JSON columns, same shape the API
// serves. Placeholders use the $n form, which both the pgx and the
// modernc sqlite drivers accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) PutQuiz(ctx context.Context, q Quiz) (Quiz, error) {
	if errs := Validate(q); len(errs) > 0 {
		return Quiz{}, fmt.Errorf("%w: %s", ErrQuizInvalid, strings.Join(errs, "; "))
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Status == "" {
		q.Status = StatusActive
	}
	if q.CreatedAt == 0 {
		q.CreatedAt = time.Now().Unix()
	}
	q.TotalPoints = 0
	for _, qu := range q.Questions {
		q.TotalPoints += qu.Points
	}
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return Quiz{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quizzes (id,title,description,duration_min,total_points,status,created_by,questions_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, description=EXCLUDED.description,
			duration_min=EXCLUDED.duration_min, total_points=EXCLUDED.total_points,
			status=EXCLUDED.status, questions_json=EXCLUDED.questions_json`,
		q.ID, strings.TrimSpace(q.Title), strings.TrimSpace(q.Description), q.DurationMin,
		q.TotalPoints, q.Status, q.CreatedBy, string(qj), q.CreatedAt)
	if err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *SQLStore) GetQuiz(ctx context.Context, id string) (Quiz, error) {
	q, err := s.GetQuizAdmin(ctx, id)
	if err != nil {
		return Quiz{}, err
	}
	return q.Sanitized(), nil
}

func (s *SQLStore) GetQuizAdmin(ctx context.Context, id string) (Quiz, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,description,duration_min,total_points,status,created_by,questions_json,created_at
		FROM quizzes WHERE id=$1`, id)
	return scanQuiz(row)
}

func (s *SQLStore) ListQuizzes(ctx context.Context, opts ListOpts) ([]Quiz, error) {
	query := `SELECT id,title,description,duration_min,total_points,status,created_by,questions_json,created_at FROM quizzes`
	args := []any{}
	if opts.CreatedBy != "" {
		query += ` WHERE created_by=$1`
		args = append(args, opts.CreatedBy)
	}
	query += ` ORDER BY created_at DESC`
	if opts.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, opts.Limit, opts.Offset)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Quiz{}
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteQuiz(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Submissions go first; not every sqlite deployment has foreign_keys on.
	if _, err := tx.ExecContext(ctx, `DELETE FROM submissions WHERE quiz_id=$1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM quizzes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrQuizNotFound
	}
	return tx.Commit()
}

func (s *SQLStore) CreateSubmission(ctx context.Context, quizID, studentID string, rawAnswers map[string]any) (Submission, error) {
	q, err := s.GetQuizAdmin(ctx, quizID)
	if err != nil {
		return Submission{}, err
	}
	result := grading.GradeSubmission(q.Questions, grading.ClassifyAnswers(rawAnswers))

	sub := Submission{
		ID:          uuid.NewString(),
		QuizID:      quizID,
		StudentID:   studentID,
		RawAnswers:  rawAnswers,
		Result:      result,
		SubmittedAt: time.Now().Unix(),
	}
	aj, err := json.Marshal(sub.RawAnswers)
	if err != nil {
		return Submission{}, err
	}
	rj, err := json.Marshal(sub.Result)
	if err != nil {
		return Submission{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO submissions (id,quiz_id,student_id,answers_json,score,total_points,analysis_json,submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		sub.ID, sub.QuizID, sub.StudentID, string(aj), result.TotalScore, result.TotalPossible, string(rj), sub.SubmittedAt)
	if err != nil {
		return Submission{}, err
	}
	return sub, nil
}

func (s *SQLStore) GetSubmission(ctx context.Context, id string) (Submission, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,quiz_id,student_id,answers_json,analysis_json,submitted_at
		FROM submissions WHERE id=$1`, id)
	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Submission{}, ErrSubmissionNotFound
	}
	return sub, err
}

func (s *SQLStore) ListSubmissions(ctx context.Context, opts SubmissionListOpts) ([]Submission, error) {
	query := `SELECT id,quiz_id,student_id,answers_json,analysis_json,submitted_at FROM submissions`
	var where []string
	var args []any
	if opts.StudentID != "" {
		args = append(args, opts.StudentID)
		where = append(where, fmt.Sprintf("student_id=$%d", len(args)))
	}
	if opts.QuizID != "" {
		args = append(args, opts.QuizID)
		where = append(where, fmt.Sprintf("quiz_id=$%d", len(args)))
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY submitted_at DESC`
	if opts.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, opts.Limit, opts.Offset)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *SQLStore) CountSubmissions(ctx context.Context, quizID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions WHERE quiz_id=$1`, quizID).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuiz(r rowScanner) (Quiz, error) {
	var q Quiz
	var qjson string
	err := r.Scan(&q.ID, &q.Title, &q.Description, &q.DurationMin, &q.TotalPoints,
		&q.Status, &q.CreatedBy, &qjson, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Quiz{}, ErrQuizNotFound
	}
	if err != nil {
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func scanSubmission(r rowScanner) (Submission, error) {
	var sub Submission
	var ajson, rjson string
	if err := r.Scan(&sub.ID, &sub.QuizID, &sub.StudentID, &ajson, &rjson, &sub.SubmittedAt); err != nil {
		return Submission{}, err
	}
	if err := json.Unmarshal([]byte(ajson), &sub.RawAnswers); err != nil {
		return Submission{}, err
	}
	if err := json.Unmarshal([]byte(rjson), &sub.Result); err != nil {
		return Submission{}, err
	}
	return sub, nil
}
