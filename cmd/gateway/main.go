package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	api "github.com/quizforce/quizforce-api/internal/api/http"
	"github.com/quizforce/quizforce-api/internal/auth"
	"github.com/quizforce/quizforce-api/internal/config"
	"github.com/quizforce/quizforce-api/internal/db"
	"github.com/quizforce/quizforce-api/internal/quiz"
	"github.com/quizforce/quizforce-api/internal/rbac"
	"github.com/quizforce/quizforce-api/internal/stats"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := quiz.NewSQLStore(dbh)
	users := auth.NewUserStore(dbh)

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret, config.TTLDuration(cfg.TokenTTL, 8*time.Hour))
	bootstrapAdmin(ctx, cfg, users)

	// --- Participant counter (redis when configured) ---
	participantTTL := config.TTLDuration(cfg.ParticipantTTL, time.Minute)
	var counter stats.Counter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		counter = stats.NewRedisCounter(rdb, store.CountSubmissions, participantTTL)
	} else {
		counter = stats.NewMemoryCounter(store.CountSubmissions, participantTTL)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public: account creation and login
	r.Post("/api/signup", api.SignupHandler(users))
	r.Post("/api/login", api.LoginHandler(users, authSvc))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("quiz:create")).
			Post("/api/quizzes", api.CreateQuizHandler(store))
		pr.With(rbac.Require("quiz:list")).
			Get("/api/quizzes", api.ListQuizzesHandler(store, counter))
		pr.With(rbac.Require("quiz:view")).
			Get("/api/quizzes/{quizID}", api.GetQuizHandler(store))
		pr.With(rbac.Require("quiz:delete")).
			Delete("/api/quizzes/{quizID}", api.DeleteQuizHandler(store, counter))

		pr.With(rbac.Require("submission:create")).
			Post("/api/quiz-submissions", api.CreateSubmissionHandler(store, counter))
		pr.With(rbac.RequireAny("submission:view-own", "submission:view-all")).
			Get("/api/quiz-submissions", api.ListSubmissionsHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s, redis=%q)", cfg.HTTPAddr, cfg.DBDriver, cfg.RedisAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

// bootstrapAdmin creates the configured admin account on first start.
func bootstrapAdmin(ctx context.Context, cfg config.Config, users auth.Users) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}
	name := cfg.AdminName
	if name == "" {
		name = "Administrator"
	}
	_, err := users.Create(ctx, name, cfg.AdminEmail, cfg.AdminPassword, auth.RoleAdmin)
	if err != nil && !errors.Is(err, auth.ErrEmailTaken) {
		log.Printf("bootstrap admin: %v", err)
	}
}
