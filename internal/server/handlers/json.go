package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/authdemo/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// sendUnauthorized отправляет 401 с заголовком WWW-Authenticate
// Заголовок обязателен для bearer схемы: клиент понимает, что нужен логин
func sendUnauthorized(logger *slog.Logger, w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	sendError(logger, w, message, http.StatusUnauthorized)
}
