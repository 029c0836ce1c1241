package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bankqueue/queue-service/internal/auth"
	"github.com/bankqueue/queue-service/internal/domain"
	"github.com/bankqueue/queue-service/internal/events"
	"github.com/bankqueue/queue-service/internal/persistence"
	"github.com/bankqueue/queue-service/internal/repository"
	apperrors "github.com/bankqueue/queue-service/pkg/util"
)

// UserService manages the user directory backing the booking flows.
type UserService struct {
	users      repository.UserRepository
	audit      *LogService
	tx         persistence.TxRunner
	dispatcher events.Dispatcher
	hasher     auth.PasswordHasher
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Audit      *LogService
	Tx         persistence.TxRunner
	Dispatcher events.Dispatcher
	BcryptCost int
}

// UserRegisterInput describes a registration request.
type UserRegisterInput struct {
	Name        string
	Login       string
	Email       string
	PhoneNumber string
	Password    string
}

// UserUpdateInput describes a profile update; nil fields are untouched.
type UserUpdateInput struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}

// ChangePasswordInput carries a password rotation request.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		audit:      deps.Audit,
		tx:         deps.Tx,
		dispatcher: deps.Dispatcher,
		hasher:     auth.NewPasswordHasher(deps.BcryptCost),
	}
}

// Register creates a new user and writes the registration audit record.
func (s *UserService) Register(ctx context.Context, input UserRegisterInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByLogin(ctx, input.Login); err == nil {
			return apperrors.NewConflict("login already taken", map[string]any{"login": input.Login})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
			return apperrors.NewConflict("email already registered", map[string]any{"email": input.Email})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		user := &domain.User{
			Name:         input.Name,
			Login:        input.Login,
			Email:        input.Email,
			PhoneNumber:  input.PhoneNumber,
			PasswordHash: hash,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, user.Login, domain.EventUserRegistered, map[string]any{
			"userId": user.ID,
		}); err != nil {
			return err
		}

		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventUserRegistered,
		UserLogin: created.Login,
		Payload:   events.UserRegisteredPayload{UserID: created.ID, Login: created.Login},
	})
	return created, nil
}

// GetByLogin returns the user's own profile.
func (s *UserService) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUserNotFound(login)
		}
		return nil, err
	}
	return user, nil
}

// Update applies a partial profile update and audit-logs it.
func (s *UserService) Update(ctx context.Context, login string, input UserUpdateInput) (*domain.User, error) {
	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByLogin(ctx, login)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUserNotFound(login)
			}
			return err
		}

		if input.Email != nil && *input.Email != user.Email {
			if _, err := s.users.GetByEmail(ctx, *input.Email); err == nil {
				return apperrors.NewConflict("email already registered", map[string]any{"email": *input.Email})
			} else if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
			user.Email = *input.Email
		}
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.PhoneNumber != nil {
			user.PhoneNumber = *input.PhoneNumber
		}

		if err := s.users.Update(ctx, user); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, user.Login, domain.EventUserUpdated, map[string]any{
			"userId": user.ID,
		}); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangePassword rotates the password after verifying the current one.
func (s *UserService) ChangePassword(ctx context.Context, login string, input ChangePasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return apperrors.NewValidationError("password confirmation does not match", nil)
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByLogin(ctx, login)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUserNotFound(login)
			}
			return err
		}

		if err := auth.VerifyPassword(user.PasswordHash, input.CurrentPassword); err != nil {
			return apperrors.NewUnauthorized("current password is incorrect")
		}

		user.PasswordHash = hash
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}

		return s.audit.Record(ctx, user.Login, domain.EventUserPasswordUpdated, map[string]any{
			"userId": user.ID,
		})
	})
}

// Delete removes the user; owned tickets and audit records cascade with the
// row. The deletion audit record is written first so the event is observable
// inside the transaction even though the cascade takes it with the user.
func (s *UserService) Delete(ctx context.Context, login string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByLogin(ctx, login)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUserNotFound(login)
			}
			return err
		}

		if err := s.audit.Record(ctx, user.Login, domain.EventUserDeleted, map[string]any{
			"userId": user.ID,
		}); err != nil {
			return err
		}

		return s.users.Delete(ctx, user.ID)
	})
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
