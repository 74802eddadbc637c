package rbac

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckerMatrix(t *testing.T) {
	c := NewChecker(nil)
	cases := []struct {
		role, perm string
		want       bool
	}{
		{"student", "quiz:view", true},
		{"student", "submission:create", true},
		{"student", "quiz:create", false},
		{"student", "quiz:delete", false},
		{"admin", "quiz:create", true},
		{"admin", "anything:at-all", true},
		{"", "quiz:view", false},
		{"ghost", "quiz:view", false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestCheckerWildcardPrefix(t *testing.T) {
	c := NewChecker(map[string][]string{"grader": {"submission:*"}})
	if !c.Has("grader", "submission:view-own") {
		t.Fatal("prefix wildcard should match")
	}
	if c.Has("grader", "quiz:view") {
		t.Fatal("prefix wildcard must not match other prefixes")
	}
}

func TestRequireMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(204) })
	h := Require("quiz:create")(next)

	req := httptest.NewRequest("POST", "/quizzes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(WithRole(context.Background(), "student")))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("student creating quiz: got %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(WithRole(context.Background(), "admin")))
	if rec.Code != 204 {
		t.Fatalf("admin creating quiz: got %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("no role in context: got %d, want 403", rec.Code)
	}
}
