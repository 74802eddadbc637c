package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/quizforce/quizforce-api/internal/auth"
)

type userView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// POST /api/signup {fullName, email, password, role}
func SignupHandler(users auth.Users) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FullName string `json:"fullName"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, http.StatusBadRequest, "bad json")
			return
		}
		if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
			fail(w, http.StatusBadRequest, "fullName, email and password are required")
			return
		}
		u, err := users.Create(r.Context(), req.FullName, req.Email, req.Password, req.Role)
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			fail(w, http.StatusBadRequest, "Email already exists")
			return
		case errors.Is(err, auth.ErrInvalidRole):
			fail(w, http.StatusBadRequest, "Invalid role")
			return
		case err != nil:
			fail(w, http.StatusInternalServerError, "Error creating user")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "User created successfully",
			"user":    userView{Name: u.Name, Email: u.Email, Role: u.Role},
		})
	}
}

// POST /api/login {email, password, role}
func LoginHandler(users auth.Users, authSvc *auth.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, http.StatusBadRequest, "bad json")
			return
		}
		u, err := users.Authenticate(r.Context(), req.Email, req.Password, req.Role)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			fail(w, http.StatusUnauthorized, "Invalid credentials or role")
			return
		}
		if err != nil {
			fail(w, http.StatusInternalServerError, "Server error")
			return
		}
		tok, err := authSvc.IssueJWT(u.ID, u.Role)
		if err != nil {
			fail(w, http.StatusInternalServerError, "issue token")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Login successful",
			"user":    userView{Name: u.Name, Email: u.Email, Role: u.Role},
			"token":   tok,
		})
	}
}
