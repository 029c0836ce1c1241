package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bankqueue/queue-service/internal/domain"
	"github.com/bankqueue/queue-service/internal/persistence"
)

// LogRepository stores append-only audit records.
type LogRepository interface {
	Create(ctx context.Context, log *domain.Log) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Log, error)
}

type logRepository struct {
	pool *pgxpool.Pool
}

// NewLogRepository builds repository.
func NewLogRepository(pool *pgxpool.Pool) LogRepository {
	return &logRepository{pool: pool}
}

func (r *logRepository) db(ctx context.Context) persistence.Querier {
	return persistence.QuerierFromCtx(ctx, r.pool)
}

func (r *logRepository) Create(ctx context.Context, log *domain.Log) error {
	var details []byte
	if log.Details != nil {
		marshaled, err := json.Marshal(log.Details)
		if err != nil {
			return fmt.Errorf("marshal log details: %w", err)
		}
		details = marshaled
	}

	const query = `
        INSERT INTO logs (user_id, event_type, event_time, details)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	return r.db(ctx).QueryRow(ctx, query,
		log.UserID,
		log.EventType,
		log.EventTime,
		details,
	).Scan(&log.ID)
}

func (r *logRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Log, error) {
	const query = `
        SELECT id, user_id, event_type, event_time, details
        FROM logs WHERE user_id=$1
        ORDER BY event_time ASC`

	rows, err := r.db(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Log
	for rows.Next() {
		var (
			log     domain.Log
			details []byte
		)
		if err := rows.Scan(&log.ID, &log.UserID, &log.EventType, &log.EventTime, &details); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &log.Details); err != nil {
				return nil, fmt.Errorf("unmarshal log details: %w", err)
			}
		}
		result = append(result, log)
	}
	return result, rows.Err()
}
