package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bankqueue/queue-service/internal/domain"
	"github.com/bankqueue/queue-service/internal/events"
	"github.com/bankqueue/queue-service/internal/persistence"
	"github.com/bankqueue/queue-service/internal/repository"
	"github.com/bankqueue/queue-service/internal/schedule"
	apperrors "github.com/bankqueue/queue-service/pkg/util"
)

// TicketService coordinates the appointment booking lifecycle: slot
// validation, uniqueness, code assignment, persistence and audit logging,
// with every read and write scoped to the calling user.
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	audit      *LogService
	tx         persistence.TxRunner
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Audit      *LogService
	Tx         persistence.TxRunner
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes a booking request.
type TicketCreateInput struct {
	Address     string
	TicketType  string
	ScheduledAt time.Time
}

// TicketUpdateInput describes a partial update; nil fields are untouched.
type TicketUpdateInput struct {
	Address     *string
	TicketType  *string
	ScheduledAt *time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		audit:      deps.Audit,
		tx:         deps.Tx,
		dispatcher: deps.Dispatcher,
	}
}

// Create books a new appointment for the calling user.
func (s *TicketService) Create(ctx context.Context, callerLogin string, input TicketCreateInput) (*domain.Ticket, error) {
	var created *domain.Ticket
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.resolveUser(ctx, callerLogin)
		if err != nil {
			return err
		}

		atMinute, err := schedule.ValidateSlot(input.ScheduledAt)
		if err != nil {
			return err
		}

		taken, err := s.tickets.ExistsInSlot(ctx, input.Address, atMinute, nil)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewSlotTaken(input.Address, schedule.FormatLocal(atMinute))
		}

		maxCode, err := s.tickets.MaxCodeByType(ctx, input.TicketType)
		if err != nil {
			return err
		}
		code, err := schedule.NextCode(input.TicketType, maxCode)
		if err != nil {
			return err
		}

		ticket := &domain.Ticket{
			UserID:      user.ID,
			Address:     input.Address,
			TicketType:  input.TicketType,
			TicketCode:  code,
			ScheduledAt: atMinute,
		}
		if err := s.tickets.Create(ctx, ticket); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, user.Login, domain.EventTicketCreated, map[string]any{
			"userId":   user.ID,
			"ticketId": ticket.ID,
		}); err != nil {
			return err
		}

		created = ticket
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventTicketBooked,
		UserLogin: callerLogin,
		Payload: events.TicketBookedPayload{
			TicketID:    created.ID,
			Address:     created.Address,
			TicketType:  created.TicketType,
			TicketCode:  created.TicketCode,
			ScheduledAt: created.ScheduledAt,
		},
	})
	return created, nil
}

// GetByID fetches a ticket scoped to its owner. A ticket that exists but
// belongs to someone else is reported exactly like a missing one.
func (s *TicketService) GetByID(ctx context.Context, callerLogin string, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByIDAndUserLogin(ctx, ticketID, callerLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAccessDenied(ticketID)
		}
		return nil, err
	}
	return ticket, nil
}

// ListForUser returns all tickets owned by the calling user.
func (s *TicketService) ListForUser(ctx context.Context, callerLogin string) ([]domain.Ticket, error) {
	user, err := s.resolveUser(ctx, callerLogin)
	if err != nil {
		return nil, err
	}
	return s.tickets.ListByUser(ctx, user.ID)
}

// Update applies a partial update. Each supplied field is revalidated
// independently; the sub-steps run in source order, so a new time is
// already set on the ticket when a new address is checked in the same call.
func (s *TicketService) Update(ctx context.Context, callerLogin string, ticketID int64, input TicketUpdateInput) (*domain.Ticket, error) {
	var updated *domain.Ticket
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.resolveUser(ctx, callerLogin)
		if err != nil {
			return err
		}

		ticket, err := s.tickets.GetByIDAndUserLogin(ctx, ticketID, callerLogin)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewAccessDenied(ticketID)
			}
			return err
		}

		if input.ScheduledAt != nil {
			atMinute, err := schedule.ValidateSlot(*input.ScheduledAt)
			if err != nil {
				return err
			}
			addr := ticket.Address
			if input.Address != nil {
				addr = *input.Address
			}
			taken, err := s.tickets.ExistsInSlot(ctx, addr, atMinute, &ticket.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.NewSlotTaken(addr, schedule.FormatLocal(atMinute))
			}
			ticket.ScheduledAt = atMinute
		}

		if input.Address != nil {
			atMinute := schedule.TruncateToMinute(ticket.ScheduledAt)
			taken, err := s.tickets.ExistsInSlot(ctx, *input.Address, atMinute, &ticket.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.NewSlotTaken(*input.Address, schedule.FormatLocal(atMinute))
			}
			ticket.Address = *input.Address
		}

		if input.TicketType != nil {
			ticket.TicketType = *input.TicketType
			maxCode, err := s.tickets.MaxCodeByType(ctx, *input.TicketType)
			if err != nil {
				return err
			}
			code, err := schedule.NextCode(*input.TicketType, maxCode)
			if err != nil {
				return err
			}
			ticket.TicketCode = code
		}

		if err := s.tickets.Update(ctx, ticket); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, user.Login, domain.EventTicketUpdated, map[string]any{
			"userId":   user.ID,
			"ticketId": ticket.ID,
		}); err != nil {
			return err
		}

		updated = ticket
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventTicketRebooked,
		UserLogin: callerLogin,
		Payload: events.TicketRebookedPayload{
			TicketID:    updated.ID,
			Address:     updated.Address,
			TicketType:  updated.TicketType,
			TicketCode:  updated.TicketCode,
			ScheduledAt: updated.ScheduledAt,
		},
	})
	return updated, nil
}

// Delete removes a ticket owned by the calling user.
func (s *TicketService) Delete(ctx context.Context, callerLogin string, ticketID int64) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.resolveUser(ctx, callerLogin)
		if err != nil {
			return err
		}

		ticket, err := s.tickets.GetByIDAndUserLogin(ctx, ticketID, callerLogin)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewAccessDenied(ticketID)
			}
			return err
		}

		if err := s.tickets.Delete(ctx, ticket.ID); err != nil {
			return err
		}

		return s.audit.Record(ctx, user.Login, domain.EventTicketDeleted, map[string]any{
			"userId":   user.ID,
			"ticketId": ticket.ID,
		})
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventTicketCancelled,
		UserLogin: callerLogin,
		Payload:   events.TicketCancelledPayload{TicketID: ticketID},
	})
	return nil
}

func (s *TicketService) resolveUser(ctx context.Context, login string) (*domain.User, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUserNotFound(login)
		}
		return nil, err
	}
	return user, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
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
