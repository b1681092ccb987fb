// Package auth implements the session lifecycle: issuing token pairs,
// refreshing access tokens, and resolving identity from bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/authdemo/internal/crypto"
	"github.com/iudanet/authdemo/internal/models"
	"github.com/iudanet/authdemo/internal/server/storage"
	"github.com/iudanet/authdemo/internal/session"
	"github.com/iudanet/authdemo/internal/token"
)

var (
	// ErrInvalidCredentials возвращается при любой ошибке аутентификации:
	// неизвестный пользователь, неверный пароль, невалидный, истекший,
	// чужой или вытесненный токен. Конкретная причина не раскрывается.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInactiveUser возвращается, когда access токен валиден, но
	// учетная запись отключена. Отличается от ErrInvalidCredentials:
	// вызывающая сторона должна ответить 403, а не 401.
	ErrInactiveUser = errors.New("inactive user")
)

// Config содержит время жизни выдаваемых токенов
type Config struct {
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Service оркестрирует директорию пользователей, кодек токенов и
// реестр сессий. Все операции синхронные, без ретраев: любая ошибка
// проверки окончательна для данного запроса.
type Service struct {
	logger   *slog.Logger
	users    storage.UserStore
	sessions *session.Registry
	codec    *token.Codec
	cfg      Config
}

// NewService создает новый Service
func NewService(logger *slog.Logger, users storage.UserStore, sessions *session.Registry, codec *token.Codec, cfg Config) *Service {
	return &Service{
		logger:   logger,
		users:    users,
		sessions: sessions,
		codec:    codec,
		cfg:      cfg,
	}
}

// Login проверяет учетные данные и выдает пару токенов.
// Неизвестный пользователь и неверный пароль снаружи неразличимы.
// Отключенная учетная запись проходит логин: отказ "inactive user"
// происходит только при обращении к защищенному ресурсу.
func (s *Service) Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Фиктивное сравнение: неизвестный пользователь должен
			// занимать столько же времени, сколько неверный пароль
			crypto.DummyVerify(password)
			s.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", username))
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := crypto.VerifyPassword(password, user.PasswordHash); err != nil {
		s.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", username))
		return "", "", ErrInvalidCredentials
	}

	accessToken, err = s.codec.Mint(user.Username, token.KindAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to mint access token: %w", err)
	}

	refreshToken, err = s.codec.Mint(user.Username, token.KindRefresh, s.cfg.RefreshTokenTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to mint refresh token: %w", err)
	}

	// Новая запись вытесняет предыдущую: refresh токен прошлой сессии
	// этого пользователя перестает быть текущим
	s.sessions.Record(user.Username, refreshToken)

	s.logger.InfoContext(ctx, "user logged in", slog.String("username", user.Username))

	return accessToken, refreshToken, nil
}

// Refresh выдает новый access токен по действующему refresh токену.
// Сам refresh токен не ротируется: он остается текущим до следующего
// логина или истечения срока действия.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.codec.Verify(refreshToken, token.KindRefresh)
	if err != nil {
		s.logger.WarnContext(ctx, "refresh failed: invalid token")
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.WarnContext(ctx, "refresh failed: user not found", slog.String("username", claims.Subject))
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if !s.sessions.IsCurrent(user.Username, refreshToken) {
		s.logger.WarnContext(ctx, "refresh failed: token superseded", slog.String("username", user.Username))
		return "", ErrInvalidCredentials
	}

	accessToken, err := s.codec.Mint(user.Username, token.KindAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to mint access token: %w", err)
	}

	s.logger.InfoContext(ctx, "access token refreshed", slog.String("username", user.Username))

	return accessToken, nil
}

// ResolveIdentity разрешает identity пользователя по access токену.
// Identity выводится из учетной записи заново на каждый запрос.
// Для отключенной учетной записи возвращается ErrInactiveUser даже
// при полностью валидном токене.
func (s *Service) ResolveIdentity(ctx context.Context, accessToken string) (*models.Identity, error) {
	claims, err := s.codec.Verify(accessToken, token.KindAccess)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Disabled {
		return nil, ErrInactiveUser
	}

	return &models.Identity{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Disabled: user.Disabled,
	}, nil
}
