package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bankqueue/queue-service/internal/domain"
)

func TestTicketResponseCarriesOwner(t *testing.T) {
	ticket := &domain.Ticket{
		ID:          7,
		UserID:      42,
		Address:     domain.BranchAddresses[0],
		TicketType:  domain.TicketTypeDeposit,
		TicketCode:  "A1",
		ScheduledAt: time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
	}

	resp := NewTicketResponse(ticket)
	require.Equal(t, int64(7), resp.ID)
	require.Equal(t, int64(42), resp.UserID)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Contains(t, decoded, "user_id")
	require.EqualValues(t, 42, decoded["user_id"])
	require.Contains(t, decoded, "ticket_code")
	require.Contains(t, decoded, "scheduled_at")
}

func TestTicketListResponseKeepsOrder(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: 1, UserID: 42, TicketCode: "A1"},
		{ID: 2, UserID: 42, TicketCode: "B1"},
	}
	out := NewTicketListResponse(tickets)
	require.Len(t, out, 2)
	require.Equal(t, "A1", out[0].TicketCode)
	require.Equal(t, int64(42), out[1].UserID)
}
