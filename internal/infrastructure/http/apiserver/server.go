// Package apiserver assembles the HTTP server and its route table
package apiserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pantrychef/pantrychef/internal/infrastructure/config"
	"github.com/pantrychef/pantrychef/internal/infrastructure/http/handlers"
	"github.com/pantrychef/pantrychef/internal/infrastructure/http/middleware"
	"github.com/pantrychef/pantrychef/internal/infrastructure/security"
	"go.uber.org/zap"
)

// Server is the HTTP API server
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	logger     *zap.Logger
}

// NewServer builds the router and wraps it in an http.Server
func NewServer(
	cfg *config.Config,
	auth *security.AuthService,
	limiter security.CounterStore,
	userHandler *handlers.UserAPIHandler,
	recipeHandler *handlers.RecipeAPIHandler,
	logger *zap.Logger,
) *Server {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.Metrics)
	r.Use(middleware.Security)
	r.Use(middleware.CORS)
	r.Use(middleware.JSONOnly)

	limit := func(rule security.Rule, keyFn func(*http.Request) string) func(http.Handler) http.Handler {
		if !cfg.RateLimit.Enable {
			return func(next http.Handler) http.Handler { return next }
		}
		return middleware.RateLimit(limiter, rule, keyFn, logger)
	}

	loginRule := security.Rule{
		Name:   "login",
		Limit:  cfg.RateLimit.LoginPerMin,
		Window: time.Minute,
	}
	generateMinuteRule := security.Rule{
		Name:   "generate_minute",
		Limit:  cfg.RateLimit.GeneratePerMin,
		Window: time.Minute,
	}
	generateDayRule := security.Rule{
		Name:   "generate_day",
		Limit:  cfg.RateLimit.GeneratePerDay,
		Window: 24 * time.Hour,
	}

	r.Get("/health", healthHandler(cfg))
	r.Handle("/metrics", promhttp.Handler())

	docs := NewOpenAPIHandler(logger)
	r.Get("/openapi.yaml", docs.ServeSpec)
	r.Get("/docs", docs.ServeDocs)

	r.Route("/api", func(api chi.Router) {
		// public routes
		api.Post("/user", userHandler.Register)
		api.Get("/user", userHandler.List)
		api.With(limit(loginRule, clientAddress)).
			Post("/login", userHandler.Login)

		// authenticated routes
		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticate(auth))

			protected.Delete("/user/{id}", userHandler.Delete)
			protected.Get("/recipe", recipeHandler.List)
			protected.With(
				limit(generateMinuteRule, authenticatedUser),
				limit(generateDayRule, authenticatedUser),
			).Post("/recipe/ai", recipeHandler.Generate)
			protected.Post("/recipe/favorite/{id}", recipeHandler.Favorite)
			protected.Get("/recipe/favorite", recipeHandler.ListFavorites)
		})
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		httpServer: httpServer,
		cfg:        cfg,
		logger:     logger,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving requests. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("api server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown drains connections and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down api server")
	return s.httpServer.Shutdown(ctx)
}

// clientAddress keys rate limits by the caller's network address
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// authenticatedUser keys rate limits by the authenticated user's ID
func authenticatedUser(r *http.Request) string {
	id, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return ""
	}
	return id.String()
}

func healthHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok","version":%q}`, cfg.App.Version)
	}
}
