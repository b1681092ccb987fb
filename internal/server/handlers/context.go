package handlers

import (
	"context"

	"github.com/iudanet/authdemo/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// IdentityKey ключ для хранения identity пользователя в контексте
	IdentityKey contextKey = "identity"
)

// GetIdentity извлекает identity пользователя из контекста запроса
// Identity кладет auth middleware; живет только в рамках запроса
func GetIdentity(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*models.Identity)
	return identity, ok
}
