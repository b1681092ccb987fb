package models

// Account представляет учетную запись из статической директории пользователей
// Записи создаются один раз при старте процесса и дальше не изменяются
type Account struct {
	Username     string `json:"username"`  // уникальный username
	FullName     string `json:"full_name"` // полное имя
	Email        string `json:"email"`     // email пользователя
	PasswordHash string `json:"-"`         // bcrypt хеш пароля
	Disabled     bool   `json:"disabled"`  // учетная запись отключена
}

// Identity представляет пользователя, разрешенного для текущего запроса
// Выводится из Account на каждый запрос и не кешируется
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}
