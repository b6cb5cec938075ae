package api

import (
	"net/http"

	"github.com/Debanga-06/Expense-Tracker/internal/api/handlers"
	"github.com/Debanga-06/Expense-Tracker/internal/api/middleware"
	"github.com/Debanga-06/Expense-Tracker/internal/config"
	"github.com/Debanga-06/Expense-Tracker/internal/service"
	"github.com/Debanga-06/Expense-Tracker/internal/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, sessions *session.Store, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, sessions, cfg.SessionTTL)
	expenseHandler := handlers.NewExpenseHandler(services.Expense)
	analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics)

	// Public auth routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)
	r.With(middleware.WithSession(sessions)).Get("/check_session", authHandler.CheckSession)

	// Listing stays reachable without a session and returns an empty list
	r.With(middleware.WithSession(sessions)).Get("/expenses", expenseHandler.List)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(sessions))

		r.Post("/expenses", expenseHandler.Create)
		r.Delete("/expenses/{id}", expenseHandler.Delete)
		r.Get("/analytics", analyticsHandler.Get)
	})

	return r
}
