package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcherInvokesSubscribedHandlers(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var got []EventType
	d.Subscribe(EventTicketBooked, func(ctx context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketBooked}))
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketCancelled}))
	require.Equal(t, []EventType{EventTicketBooked}, got)
}

func TestDispatcherLogsFailureAndContinues(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewInMemoryDispatcher(zap.New(core))

	var calls []string
	d.Subscribe(EventTicketBooked, func(ctx context.Context, e Event) error {
		calls = append(calls, "first")
		return errors.New("delivery failed")
	})
	d.Subscribe(EventTicketBooked, func(ctx context.Context, e Event) error {
		calls = append(calls, "second")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{ID: "ev-1", Type: EventTicketBooked}))
	require.Equal(t, []string{"first", "second"}, calls)

	entries := logs.FilterMessage("event handler failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, "ev-1", entries[0].ContextMap()["event_id"])
}
