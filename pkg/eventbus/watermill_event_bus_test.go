package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copydesk/copydesk/pkg/channels/gochannel"
	"github.com/copydesk/copydesk/pkg/events"
	"github.com/copydesk/copydesk/pkg/models"
)

func newTestBus(t *testing.T) EventBus {
	t.Helper()

	publisher, subscriber, err := gochannel.CreateTestChannel(watermill.NopLogger{})
	require.NoError(t, err)

	bus := NewWatermillEventBus(publisher, subscriber)
	t.Cleanup(func() {
		if err := bus.Close(); err != nil {
			t.Logf("Failed to close event bus: %v", err)
		}
	})

	return bus
}

func TestWatermillEventBus_PublishAndHandle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := newTestBus(t)
	received := make(chan *events.ContentTransitioned, 1)

	err := bus.Handle(events.ContentTransitionedEvent, func(_ context.Context, event interface{}) error {
		transitioned, ok := event.(*events.ContentTransitioned)
		if ok {
			received <- transitioned
		}

		return nil
	})
	require.NoError(t, err)
	require.NoError(t, bus.Subscribe(ctx))

	err = bus.Publish(ctx, "post-1", events.ContentTransitioned{
		BaseEvent: events.NewBaseEvent(events.ContentTransitionedEvent),
		Notification: &models.Notification{
			ID:        "n-1",
			ContentID: "post-1",
			Message:   "state updated to In Review",
		},
		FromState: "draft",
		ToState:   "in_review",
	})
	require.NoError(t, err)

	select {
	case event := <-received:
		assert.Equal(t, "post-1", event.Notification.ContentID)
		assert.Equal(t, "in_review", event.ToState)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatermillEventBus_UnhandledEventTypesAreDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := newTestBus(t)
	received := make(chan struct{}, 1)

	err := bus.Handle(events.DefinitionDeletedEvent, func(_ context.Context, _ interface{}) error {
		received <- struct{}{}

		return nil
	})
	require.NoError(t, err)
	require.NoError(t, bus.Subscribe(ctx))

	require.NoError(t, bus.Publish(ctx, "wf-1", events.DefinitionSaved{
		BaseEvent:    events.NewBaseEvent(events.DefinitionSavedEvent),
		DefinitionID: "wf-1",
	}))

	select {
	case <-received:
		t.Fatal("handler for a different event type should not fire")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatermillEventBus_GenerateID(t *testing.T) {
	bus := newTestBus(t)

	first := bus.GenerateID()
	second := bus.GenerateID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestNotificationPublisher_EmitsContentTransitioned(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := newTestBus(t)
	received := make(chan *events.ContentTransitioned, 1)

	err := bus.Handle(events.ContentTransitionedEvent, func(_ context.Context, event interface{}) error {
		if transitioned, ok := event.(*events.ContentTransitioned); ok {
			received <- transitioned
		}

		return nil
	})
	require.NoError(t, err)
	require.NoError(t, bus.Subscribe(ctx))

	sink := NewNotificationPublisher(bus)
	require.NoError(t, sink.Emit(ctx, &models.Notification{
		ID:        "n-1",
		ContentID: "post-1",
		ActorID:   "alice",
		FromState: "approved",
		ToState:   "published",
		Category:  models.NotificationCategoryWorkflow,
		Message:   "state updated to Published",
	}))

	select {
	case event := <-received:
		require.NotNil(t, event.Notification)
		assert.Equal(t, "alice", event.Notification.ActorID)
		assert.Equal(t, models.NotificationCategoryWorkflow, event.Notification.Category)
		assert.Equal(t, "approved", event.FromState)
		assert.Equal(t, "published", event.ToState)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for notification event")
	}
}

func TestNotificationPublisher_EmitsPublishLifecycleEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := newTestBus(t)
	published := make(chan *events.ContentPublished, 1)
	unpublished := make(chan *events.ContentUnpublished, 1)

	err := bus.Handle(events.ContentPublishedEvent, func(_ context.Context, event interface{}) error {
		if e, ok := event.(*events.ContentPublished); ok {
			published <- e
		}

		return nil
	})
	require.NoError(t, err)

	err = bus.Handle(events.ContentUnpublishedEvent, func(_ context.Context, event interface{}) error {
		if e, ok := event.(*events.ContentUnpublished); ok {
			unpublished <- e
		}

		return nil
	})
	require.NoError(t, err)
	require.NoError(t, bus.Subscribe(ctx))

	sink := NewNotificationPublisher(bus)
	publishedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	require.NoError(t, sink.EmitPublished(ctx, "post-1", "post", "carol", publishedAt))

	select {
	case event := <-published:
		assert.Equal(t, events.ContentPublishedEvent, event.GetType())
		assert.Equal(t, "post-1", event.ContentID)
		assert.Equal(t, "post", event.ContentType)
		assert.Equal(t, "carol", event.ActorID)
		assert.Equal(t, publishedAt, event.PublishedAt)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for publish event")
	}

	require.NoError(t, sink.EmitUnpublished(ctx, "post-1", "post", "carol"))

	select {
	case event := <-unpublished:
		assert.Equal(t, events.ContentUnpublishedEvent, event.GetType())
		assert.Equal(t, "post-1", event.ContentID)
		assert.Equal(t, "carol", event.ActorID)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for unpublish event")
	}
}
