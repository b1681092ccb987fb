package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/authdemo/internal/auth"
	"github.com/iudanet/authdemo/pkg/api"
)

const (
	// refreshCookieName имя cookie с refresh токеном
	refreshCookieName = "refresh_token"
	// authCookiePath ограничивает cookie маршрутами /auth
	authCookiePath = "/auth"
	// tokenType тип токена в ответе, всегда bearer
	tokenType = "bearer"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger *slog.Logger
	auth   *auth.Service
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		auth:   authService,
	}
}

// Token обрабатывает POST /auth/token
// Логин по форме OAuth2 password flow: поля username и password
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(ctx, "failed to parse login form", slog.Any("error", err))
		sendError(h.logger, w, "invalid form body", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		sendError(h.logger, w, "username and password are required", http.StatusBadRequest)
		return
	}

	accessToken, refreshToken, err := h.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Единый ответ для неизвестного пользователя и неверного
			// пароля: причина отказа не раскрывается
			sendUnauthorized(h.logger, w, "incorrect username or password")
			return
		}
		h.logger.ErrorContext(ctx, "login failed", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Refresh токен уходит только в cookie, недоступную из JS,
	// и только на маршруты /auth
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     authCookiePath,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	resp := api.TokenResponse{
		AccessToken: accessToken,
		TokenType:   tokenType,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Refresh обрабатывает POST /auth/refresh
// Выдает новый access токен по refresh токену из cookie
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		sendUnauthorized(h.logger, w, "token is not valid")
		return
	}

	accessToken, err := h.auth.Refresh(ctx, cookie.Value)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			sendUnauthorized(h.logger, w, "token is not valid")
			return
		}
		h.logger.ErrorContext(ctx, "refresh failed", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.TokenResponse{
		AccessToken: accessToken,
		TokenType:   tokenType,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
