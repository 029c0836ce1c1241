package schedule

import (
	"strconv"

	"github.com/bankqueue/queue-service/internal/domain"
	apperrors "github.com/bankqueue/queue-service/pkg/util"
)

// Fixed mapping from service category to code prefix. Codes are sequential
// per type ("A1", "A2", "B1"); they are not globally unique across types,
// only distinct in practice because the prefixes differ.
var prefixByType = map[string]string{
	domain.TicketTypeDeposit:     "A",
	domain.TicketTypeLoan:        "B",
	domain.TicketTypeCards:       "C",
	domain.TicketTypeInvestments: "D",
	domain.TicketTypeAccounts:    "E",
}

// Prefix resolves the code prefix for a ticket type. Unmapped types are a
// hard error.
func Prefix(ticketType string) (string, error) {
	prefix, ok := prefixByType[ticketType]
	if !ok {
		return "", apperrors.NewUnknownTicketType(ticketType)
	}
	return prefix, nil
}

// NextCode derives the next human-readable code for a type given the
// current maximum stored code for that type (empty when none exists).
// The numeric suffix restarts at 1 per type and carries no zero padding;
// an unparsable suffix also restarts the sequence at 1.
func NextCode(ticketType, maxCode string) (string, error) {
	prefix, err := Prefix(ticketType)
	if err != nil {
		return "", err
	}
	next := 1
	if len(maxCode) > 1 {
		if n, err := strconv.Atoi(maxCode[1:]); err == nil {
			next = n + 1
		}
	}
	return prefix + strconv.Itoa(next), nil
}
