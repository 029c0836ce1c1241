package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bankqueue/queue-service/internal/domain"
	"github.com/bankqueue/queue-service/internal/persistence"
	"github.com/bankqueue/queue-service/internal/schedule"
	apperrors "github.com/bankqueue/queue-service/pkg/util"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id int64) error
	GetByIDAndUserLogin(ctx context.Context, id int64, login string) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Ticket, error)
	ExistsInSlot(ctx context.Context, address string, scheduledAt time.Time, excludeID *int64) (bool, error)
	MaxCodeByType(ctx context.Context, ticketType string) (string, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) db(ctx context.Context) persistence.Querier {
	return persistence.QuerierFromCtx(ctx, r.pool)
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (user_id, address, ticket_type, ticket_code, scheduled_at)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	err := r.db(ctx).QueryRow(ctx, query,
		ticket.UserID,
		ticket.Address,
		ticket.TicketType,
		ticket.TicketCode,
		ticket.ScheduledAt,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
	return mapSlotConflict(err, ticket)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET address=$1, ticket_type=$2, ticket_code=$3, scheduled_at=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.db(ctx).Exec(ctx, query,
		ticket.Address,
		ticket.TicketType,
		ticket.TicketCode,
		ticket.ScheduledAt,
		ticket.ID,
	)
	if err != nil {
		return mapSlotConflict(err, ticket)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db(ctx).Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetByIDAndUserLogin fetches a ticket only when it belongs to the given
// login; missing and not-owned are the same pgx.ErrNoRows to the caller.
func (r *ticketRepository) GetByIDAndUserLogin(ctx context.Context, id int64, login string) (*domain.Ticket, error) {
	const query = `
        SELECT t.id, t.user_id, t.address, t.ticket_type, t.ticket_code, t.scheduled_at, t.created_at, t.updated_at
        FROM tickets t
        JOIN users u ON u.id = t.user_id
        WHERE t.id=$1 AND u.login=$2`

	var ticket domain.Ticket
	if err := r.db(ctx).QueryRow(ctx, query, id, login).Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.Address,
		&ticket.TicketType,
		&ticket.TicketCode,
		&ticket.ScheduledAt,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	const query = `
        SELECT id, user_id, address, ticket_type, ticket_code, scheduled_at, created_at, updated_at
        FROM tickets WHERE user_id=$1
        ORDER BY scheduled_at ASC`

	rows, err := r.db(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.UserID,
			&ticket.Address,
			&ticket.TicketType,
			&ticket.TicketCode,
			&ticket.ScheduledAt,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

// ExistsInSlot reports whether a ticket occupies (address, scheduledAt).
// excludeID makes a ticket not conflict with itself on the update path.
func (r *ticketRepository) ExistsInSlot(ctx context.Context, address string, scheduledAt time.Time, excludeID *int64) (bool, error) {
	var exists bool
	if excludeID != nil {
		const query = `SELECT EXISTS (SELECT 1 FROM tickets WHERE address=$1 AND scheduled_at=$2 AND id<>$3)`
		if err := r.db(ctx).QueryRow(ctx, query, address, scheduledAt, *excludeID).Scan(&exists); err != nil {
			return false, err
		}
		return exists, nil
	}
	const query = `SELECT EXISTS (SELECT 1 FROM tickets WHERE address=$1 AND scheduled_at=$2)`
	if err := r.db(ctx).QueryRow(ctx, query, address, scheduledAt).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// MaxCodeByType returns the lexicographic maximum stored code for a type,
// or the empty string when no ticket of that type exists.
func (r *ticketRepository) MaxCodeByType(ctx context.Context, ticketType string) (string, error) {
	const query = `SELECT COALESCE(MAX(ticket_code), '') FROM tickets WHERE ticket_type=$1`
	var maxCode string
	if err := r.db(ctx).QueryRow(ctx, query, ticketType).Scan(&maxCode); err != nil {
		return "", err
	}
	return maxCode, nil
}

// mapSlotConflict surfaces a unique violation on the slot index as the same
// conflict error the in-service check reports. The index is the invariant
// enforcer under concurrent load; the service check alone is a race.
func mapSlotConflict(err error, ticket *domain.Ticket) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperrors.NewSlotTaken(ticket.Address, schedule.FormatLocal(ticket.ScheduledAt))
	}
	return err
}
