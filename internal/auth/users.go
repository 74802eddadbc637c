package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// Users is what the HTTP layer needs from an account store.
type Users interface {
	Create(ctx context.Context, name, email, password, role string) (User, error)
	// Authenticate verifies a password for the account with the given
	// email. A non-empty role additionally requires the account to have
	// that role; every failure mode returns ErrInvalidCredentials so
	// callers cannot probe which accounts exist.
	Authenticate(ctx context.Context, email, password, role string) (User, error)
}

// UserStore implements Users on the users table.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore { return &UserStore{db: db} }

func (s *UserStore) Create(ctx context.Context, name, email, password, role string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if role == "" {
		role = RoleStudent
	}
	if role != RoleStudent && role != RoleAdmin {
		return User{}, ErrInvalidRole
	}

	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE email=$1`, email).Scan(&exists)
	if err == nil {
		return User{}, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return User{}, err
	}
	u := User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().Unix(),
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO users (id,name,email,password_hash,role,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Name, u.Email, string(hash), u.Role, u.CreatedAt)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *UserStore) Authenticate(ctx context.Context, email, password, role string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	query := `SELECT id,name,email,password_hash,role,created_at FROM users WHERE email=$1`
	args := []any{email}
	if role != "" {
		query += ` AND role=$2`
		args = append(args, role)
	}

	var u User
	var hash string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Name, &u.Email, &hash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}
