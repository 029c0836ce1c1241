package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bankqueue/queue-service/internal/domain"
	"github.com/bankqueue/queue-service/internal/repository"
	apperrors "github.com/bankqueue/queue-service/pkg/util"
)

// LogService records the audit trail. Every mutating operation writes
// exactly one entry through Record, inside the operation's transaction:
// a failed write aborts the whole operation, there is no best-effort mode.
type LogService struct {
	users repository.UserRepository
	logs  repository.LogRepository
}

// NewLogService builds the service.
func NewLogService(users repository.UserRepository, logs repository.LogRepository) *LogService {
	return &LogService{users: users, logs: logs}
}

// Record resolves the user by login and appends an immutable log entry
// stamped with the current server time.
func (s *LogService) Record(ctx context.Context, userLogin, eventType string, details map[string]any) error {
	user, err := s.users.GetByLogin(ctx, userLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUserNotFound(userLogin)
		}
		return err
	}

	entry := &domain.Log{
		UserID:    user.ID,
		EventType: eventType,
		EventTime: time.Now(),
		Details:   details,
	}
	return s.logs.Create(ctx, entry)
}

// ListForUser returns the audit entries owned by a user.
func (s *LogService) ListForUser(ctx context.Context, userLogin string) ([]domain.Log, error) {
	user, err := s.users.GetByLogin(ctx, userLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUserNotFound(userLogin)
		}
		return nil, err
	}
	return s.logs.ListByUser(ctx, user.ID)
}
