package domain

import "time"

// Ticket types offered at branch desks. The set is fixed, each type maps to
// a single-letter code prefix in the schedule package.
const (
	TicketTypeDeposit     = "Вклад"
	TicketTypeLoan        = "Кредит"
	TicketTypeCards       = "Карты"
	TicketTypeInvestments = "Инвестиции"
	TicketTypeAccounts    = "Счета"
)

// TicketTypes lists the known service categories.
var TicketTypes = []string{
	TicketTypeDeposit,
	TicketTypeLoan,
	TicketTypeCards,
	TicketTypeInvestments,
	TicketTypeAccounts,
}

// BranchAddresses lists the known branch locations. Clients pick from this
// set; the service itself stores the address as given.
var BranchAddresses = []string{
	"пр. М.Нагибина, 32А",
	"пр. Соколова, 62",
	"пр.Буденновский, 97",
}

// Ticket is a single scheduled branch appointment. ScheduledAt always holds
// a minute-truncated timestamp with its original offset; no two tickets may
// share the same (Address, ScheduledAt) pair.
type Ticket struct {
	ID          int64
	UserID      int64
	Address     string
	TicketType  string
	TicketCode  string
	ScheduledAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
