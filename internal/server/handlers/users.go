package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/authdemo/pkg/api"
)

// UsersHandler обрабатывает запросы /users/me
type UsersHandler struct {
	logger *slog.Logger
}

// NewUsersHandler создает новый handler для /users/me
func NewUsersHandler(logger *slog.Logger) *UsersHandler {
	return &UsersHandler{
		logger: logger,
	}
}

// Me обрабатывает GET /users/me
// Возвращает identity текущего пользователя
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		sendUnauthorized(h.logger, w, "could not validate credentials")
		return
	}

	resp := api.UserResponse{
		Username: identity.Username,
		Email:    identity.Email,
		FullName: identity.FullName,
		Disabled: identity.Disabled,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// MyItems обрабатывает GET /users/me/items
// Возвращает демонстрационный список item'ов текущего пользователя
func (h *UsersHandler) MyItems(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		sendUnauthorized(h.logger, w, "could not validate credentials")
		return
	}

	resp := []api.OwnedItem{
		{ItemID: "Foo", Owner: identity.Username},
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
