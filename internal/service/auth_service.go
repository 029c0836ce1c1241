package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bankqueue/queue-service/internal/auth"
	"github.com/bankqueue/queue-service/internal/repository"
	apperrors "github.com/bankqueue/queue-service/pkg/util"
)

// AuthService issues and revokes access tokens.
type AuthService struct {
	users   repository.UserRepository
	tokens  *auth.TokenManager
	revoked *auth.RevocationStore
}

// NewAuthService constructs the service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, revoked *auth.RevocationStore) *AuthService {
	return &AuthService{users: users, tokens: tokens, revoked: revoked}
}

// LoginResult carries a freshly issued token.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// Login verifies credentials and issues a JWT. Unknown logins and wrong
// passwords produce the same error so credentials cannot be probed.
func (s *AuthService) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid login or password")
		}
		return nil, err
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid login or password")
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.Login)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return apperrors.NewUnauthorized("missing token")
	}
	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.revoked.Revoke(ctx, claims.ID, expiresAt)
}
