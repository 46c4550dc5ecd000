package main

import (
	"net/http"
	"time"

	"github.com/crucial707/recipe-share/internal/config"
	"github.com/crucial707/recipe-share/internal/handlers"
	"github.com/crucial707/recipe-share/internal/middleware"
	"github.com/crucial707/recipe-share/internal/token"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter wires the full middleware chain and routes. Stores are interfaces
// so tests can run the whole router against in-memory fakes.
func newRouter(users handlers.UserStore, recipes handlers.RecipeStore, pinger handlers.Pinger, cfg config.Config) http.Handler {
	tokens := token.NewService([]byte(cfg.JWTSecret), time.Duration(cfg.JWTExpireHours)*time.Hour)

	authHandler := &handlers.AuthHandler{Users: users, Tokens: tokens}
	recipeHandler := &handlers.RecipeHandler{Recipes: recipes}
	healthHandler := handlers.NewHealthHandler(pinger, cfg.Env)

	hsts := cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(hsts))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Health and metrics
	r.Get("/health", healthHandler.Health)
	r.Get("/status", healthHandler.Status)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Auth: body limit plus per-IP rate limit against credential stuffing
	authLimiter := middleware.AuthRateLimiter()
	r.Group(func(r chi.Router) {
		r.Use(authLimiter.Middleware)
		r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
	})

	// Recipes: reads are public, creation requires a verified token
	r.Get("/recipes", recipeHandler.List)
	r.Get("/recipes/{id}", recipeHandler.Get)
	r.Group(func(r chi.Router) {
		r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))
		r.Use(middleware.RequireAuth(tokens))
		r.Post("/recipes", recipeHandler.Create)
	})

	return r
}
