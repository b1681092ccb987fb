package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/authdemo/internal/auth"
	"github.com/iudanet/authdemo/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки bearer access токена.
// Identity пользователя разрешается заново на каждый запрос и кладется
// в контекст. Невалидный токен дает 401, отключенная учетная запись
// при валидном токене — 403.
func AuthMiddleware(logger *slog.Logger, authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				unauthorized(w, "Unauthorized: missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format")
				unauthorized(w, "Unauthorized: invalid token format")
				return
			}

			identity, err := authService.ResolveIdentity(r.Context(), parts[1])
			if err != nil {
				if errors.Is(err, auth.ErrInactiveUser) {
					logger.Warn("Inactive user rejected")
					http.Error(w, "Forbidden: inactive user", http.StatusForbidden)
					return
				}
				logger.Warn("Invalid access token", "error", err)
				unauthorized(w, "Unauthorized: invalid token")
				return
			}

			// Добавляем identity в контекст запроса
			ctx := context.WithValue(r.Context(), handlers.IdentityKey, identity)

			logger.Debug("User authenticated", "username", identity.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized отвечает 401 с заголовком WWW-Authenticate
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, message, http.StatusUnauthorized)
}
