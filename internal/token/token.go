// Package token implements the signed token codec: minting and verifying
// time-bound HS256 tokens tagged with their kind (access or refresh).
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind обозначает назначение токена
type Kind string

const (
	// KindAccess — короткоживущий токен для доступа к защищенным ресурсам
	KindAccess Kind = "access"
	// KindRefresh — токен для выпуска новых access токенов без пароля
	KindRefresh Kind = "refresh"
)

// ErrInvalidToken возвращается при любой ошибке проверки токена.
// Какая именно проверка не прошла (подпись, срок действия, kind),
// намеренно не раскрывается.
var ErrInvalidToken = errors.New("invalid token")

// Claims представляет JWT claims для нашего приложения.
// Kind входит в подписанный payload: перехваченный access токен нельзя
// переклеить в refresh токен и наоборот.
type Claims struct {
	Kind Kind `json:"kind"`
	jwt.RegisteredClaims
}

// Codec создает и проверяет подписанные токены.
// Secret задается один раз при старте процесса; смена секрета делает
// все ранее выданные токены непроверяемыми.
type Codec struct {
	secret []byte
}

// NewCodec создает новый Codec
// secret должен быть криптографически случайной строкой
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Mint создает подписанный токен для subject со сроком действия ttl
func (c *Codec) Mint(subject string, kind Kind, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify проверяет подпись, срок действия и kind токена.
// Проверки независимы, но любая ошибка возвращается как ErrInvalidToken.
// Граница срока действия строгая: токен с exp == now уже истек.
func (c *Codec) Verify(tokenString string, expected Kind) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Kind != expected {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
