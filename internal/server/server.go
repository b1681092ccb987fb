// Package server wires handlers, middleware, and the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/authdemo/internal/auth"
	"github.com/iudanet/authdemo/internal/config"
	"github.com/iudanet/authdemo/internal/server/handlers"
	"github.com/iudanet/authdemo/internal/server/middleware"
)

// Server оборачивает http.Server с маршрутизацией приложения
type Server struct {
	logger  *slog.Logger
	http    *http.Server
	limiter *middleware.RateLimiter
}

// New собирает Server со всеми handler'ами и middleware
func New(logger *slog.Logger, cfg *config.Config, authService *auth.Service, version string) *Server {
	authHandler := handlers.NewAuthHandler(logger, authService)
	usersHandler := handlers.NewUsersHandler(logger)
	itemsHandler := handlers.NewItemsHandler(logger)
	demoHandler := handlers.NewDemoHandler(logger)
	healthHandler := handlers.NewHealthHandler(logger, version)

	requireAuth := middleware.AuthMiddleware(logger, authService)

	mux := http.NewServeMux()

	// Авторизация: refresh токен ходит только по маршрутам /auth (cookie path)
	mux.HandleFunc("POST /auth/token", authHandler.Token)
	mux.HandleFunc("POST /auth/refresh", authHandler.Refresh)

	// Публичные демонстрационные маршруты
	mux.HandleFunc("GET /{$}", demoHandler.Root)
	mux.HandleFunc("GET /models/{model_name}", demoHandler.GetModel)
	mux.HandleFunc("GET /items/{item_id}", itemsHandler.Get)
	mux.HandleFunc("GET /passwordhash", demoHandler.PasswordHash)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Защищенные маршруты: bearer access токен обязателен
	mux.Handle("GET /items/{$}", requireAuth(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /items/{$}", requireAuth(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /users/me", requireAuth(http.HandlerFunc(usersHandler.Me)))
	mux.Handle("GET /users/me/items", requireAuth(http.HandlerFunc(usersHandler.MyItems)))

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow, logger)

	// Порядок: recovery -> logging -> ratelimit -> mux
	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(limiter)(handler)
	handler = middleware.LoggingMiddleware(logger, "/api/v1/health")(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		logger:  logger,
		limiter: limiter,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler возвращает корневой http.Handler (используется в тестах)
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run запускает сервер и блокируется до отмены контекста или ошибки.
// При отмене контекста выполняется graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.limiter.Stop()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	s.limiter.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
