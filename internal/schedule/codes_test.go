package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bankqueue/queue-service/internal/domain"
)

func TestPrefixMapping(t *testing.T) {
	cases := map[string]string{
		domain.TicketTypeDeposit:     "A",
		domain.TicketTypeLoan:        "B",
		domain.TicketTypeCards:       "C",
		domain.TicketTypeInvestments: "D",
		domain.TicketTypeAccounts:    "E",
	}
	for ticketType, want := range cases {
		got, err := Prefix(ticketType)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestPrefixUnknownType(t *testing.T) {
	_, err := Prefix("Ипотека")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Ипотека")
}

func TestNextCodeStartsAtOne(t *testing.T) {
	code, err := NextCode(domain.TicketTypeDeposit, "")
	require.NoError(t, err)
	require.Equal(t, "A1", code)
}

func TestNextCodeIncrements(t *testing.T) {
	code, err := NextCode(domain.TicketTypeDeposit, "A3")
	require.NoError(t, err)
	require.Equal(t, "A4", code)

	code, err = NextCode(domain.TicketTypeLoan, "B41")
	require.NoError(t, err)
	require.Equal(t, "B42", code)
}

func TestNextCodeUnparsableSuffixRestarts(t *testing.T) {
	code, err := NextCode(domain.TicketTypeCards, "Cxx")
	require.NoError(t, err)
	require.Equal(t, "C1", code)
}

func TestNextCodeUnknownType(t *testing.T) {
	_, err := NextCode("Foo", "A1")
	require.Error(t, err)
}
