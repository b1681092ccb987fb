package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash — валидный bcrypt хеш, с которым сравнивается пароль
// неизвестного пользователя. Результат сравнения всегда отбрасывается:
// вызов нужен только для того, чтобы "пользователь не найден" и
// "неверный пароль" занимали сопоставимое время.
const dummyHash = "$2b$12$3.yfiWhwkE1/C2/g60w2Ye.F/qIQazHsahu5uUtHdO5Jvo6W7A01O"

// HashPassword хеширует пароль с использованием bcrypt
// Используется демо-эндпоинтом /passwordhash и утилитой hashpass
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword проверяет, соответствует ли пароль сохраненному bcrypt хешу
func VerifyPassword(password, passwordHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return fmt.Errorf("invalid password")
	}
	return nil
}

// DummyVerify выполняет сравнение пароля с фиктивным хешем
func DummyVerify(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
