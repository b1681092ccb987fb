package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/authdemo/internal/crypto"
	"github.com/iudanet/authdemo/pkg/api"
)

// DemoHandler обрабатывает публичные демонстрационные запросы
type DemoHandler struct {
	logger *slog.Logger
}

// NewDemoHandler создает новый handler для демонстрационных запросов
func NewDemoHandler(logger *slog.Logger) *DemoHandler {
	return &DemoHandler{
		logger: logger,
	}
}

// Root обрабатывает GET /
func (h *DemoHandler) Root(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, api.MessageResponse{Message: "Hello World"}, http.StatusOK)
}

// GetModel обрабатывает GET /models/{model_name}
// Допустимые значения: alexnet, resnet, lenet
func (h *DemoHandler) GetModel(w http.ResponseWriter, r *http.Request) {
	modelName := r.PathValue("model_name")

	var message string
	switch modelName {
	case "alexnet":
		message = "Deep Learning FTW!"
	case "lenet":
		message = "LeCNN all the images"
	case "resnet":
		message = "Have some residuals"
	default:
		sendError(h.logger, w, "model_name must be one of: alexnet, resnet, lenet", http.StatusUnprocessableEntity)
		return
	}

	resp := api.ModelResponse{
		ModelName: modelName,
		Message:   message,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// PasswordHash обрабатывает GET /passwordhash
// Демо-эндпоинт: возвращает bcrypt хеш переданного пароля
func (h *DemoHandler) PasswordHash(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	password := r.URL.Query().Get("password")
	if password == "" {
		sendError(h.logger, w, "password is required", http.StatusBadRequest)
		return
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.PasswordHashResponse{
		Password: password,
		Hash:     hash,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
