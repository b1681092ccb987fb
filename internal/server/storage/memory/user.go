// Package memory provides the fixed in-memory user directory.
package memory

import (
	"context"

	"github.com/iudanet/authdemo/internal/models"
	"github.com/iudanet/authdemo/internal/server/storage"
)

// Storage — неизменяемая in-memory директория пользователей.
// Map заполняется один раз при создании и дальше только читается,
// поэтому блокировки не нужны.
type Storage struct {
	users map[string]models.Account
}

// NewStorage создает Storage из списка учетных записей
func NewStorage(accounts []models.Account) *Storage {
	users := make(map[string]models.Account, len(accounts))
	for _, account := range accounts {
		users[account.Username] = account
	}
	return &Storage{users: users}
}

// GetUserByUsername возвращает учетную запись по username
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.Account, error) {
	account, ok := s.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return &account, nil
}

// DemoAccounts возвращает статический набор пользователей демо-сервиса
// Пароли: anonymous/anonymous, johndoe/secret
func DemoAccounts() []models.Account {
	return []models.Account{
		{
			Username:     "anonymous",
			FullName:     "anonymous",
			Email:        "anonymous",
			PasswordHash: "$2b$12$3.yfiWhwkE1/C2/g60w2Ye.F/qIQazHsahu5uUtHdO5Jvo6W7A01O",
			Disabled:     false,
		},
		{
			Username:     "johndoe",
			FullName:     "John Doe",
			Email:        "johndoe@example.com",
			PasswordHash: "$2b$12$EixZaYVK1fsbw1ZfbX3OXePaWxn96p36WQoeG6Lruj3vjPGga31lW",
			Disabled:     false,
		},
	}
}
