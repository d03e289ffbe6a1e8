package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReceivesEvent(t *testing.T) {
	broker := NewBroker[ThemeChange]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)

	broker.Publish(ActivatedEvent, ThemeChange{Theme: "doom-nord", ActivationID: "a2"})

	cmd := ListenCmd(ctx, ch)
	msg := cmd()

	event, ok := msg.(Event[ThemeChange])
	require.True(t, ok, "msg should be Event[ThemeChange]")
	require.Equal(t, "doom-nord", event.Payload.Theme)
	require.Equal(t, ActivatedEvent, event.Type)
}

func TestListenCmd_ContextCancelled(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)

	// Cancel context before executing command
	cancel()
	time.Sleep(20 * time.Millisecond) // Wait for cleanup

	cmd := ListenCmd(ctx, ch)
	msg := cmd()

	require.Nil(t, msg, "should return nil when context cancelled")
}

func TestListenCmd_ChannelClosed(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)

	ctx := context.Background()

	cmd := ListenCmd(ctx, ch)
	msg := cmd()

	require.Nil(t, msg, "should return nil when channel closed")
}

func TestContinuousListener_Listen(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker)

	// Events queue in the subscription buffer and come back in order,
	// one per Listen call.
	broker.Publish(CreatedEvent, 1)
	broker.Publish(ReloadedEvent, 2)
	broker.Publish(ActivatedEvent, 3)

	wants := []struct {
		payload int
		typ     EventType
	}{
		{1, CreatedEvent},
		{2, ReloadedEvent},
		{3, ActivatedEvent},
	}
	for _, want := range wants {
		msg := listener.Listen()()
		event, ok := msg.(Event[int])
		require.True(t, ok, "msg should be Event[int]")
		require.Equal(t, want.payload, event.Payload)
		require.Equal(t, want.typ, event.Type)
	}
}
