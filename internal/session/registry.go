// Package session holds the process-wide refresh token registry.
package session

import "sync"

// Registry хранит текущий refresh токен для каждого пользователя.
// Повторный логин безусловно перезаписывает запись: старый refresh токен
// перестает быть текущим, даже если срок его действия еще не истек.
// Операции удаления нет — запись живет до завершения процесса.
type Registry struct {
	tokens map[string]string // username -> текущий refresh токен
	mu     sync.RWMutex
}

// NewRegistry создает пустой Registry
// Создается один раз при старте процесса и передается в auth.Service
func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]string),
	}
}

// Record записывает refresh токен пользователя, вытесняя предыдущий.
// Это единственный механизм отзыва старого refresh токена.
// При одновременных логинах одного пользователя побеждает последняя запись.
func (r *Registry) Record(username, refreshToken string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[username] = refreshToken
}

// IsCurrent сообщает, является ли refreshToken текущим для username.
// Сравнение строгое: принимается только точное совпадение значения.
func (r *Registry) IsCurrent(username, refreshToken string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	current, ok := r.tokens[username]
	return ok && current == refreshToken
}
