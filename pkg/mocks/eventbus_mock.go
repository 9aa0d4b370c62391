package mocks

import (
	"context"
	"time"

	"github.com/copydesk/copydesk/pkg/eventbus"
	"github.com/copydesk/copydesk/pkg/events"
	"github.com/copydesk/copydesk/pkg/models"
	"github.com/stretchr/testify/mock"
)

// MockEventBus is a mock implementation of eventbus.EventBus.
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, key string, event eventbus.Event) error {
	args := m.Called(ctx, key, event)

	return args.Error(0)
}

func (m *MockEventBus) Handle(eventType events.EventType, handler eventbus.EventHandler) error {
	args := m.Called(eventType, handler)

	return args.Error(0)
}

func (m *MockEventBus) Subscribe(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

func (m *MockEventBus) Close() error {
	args := m.Called()

	return args.Error(0)
}

func (m *MockEventBus) GenerateID() string {
	args := m.Called()

	return args.String(0)
}

// MockNotificationSink is a mock implementation of workflow.NotificationSink.
type MockNotificationSink struct {
	mock.Mock
}

func (m *MockNotificationSink) Emit(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)

	return args.Error(0)
}

func (m *MockNotificationSink) EmitPublished(
	ctx context.Context,
	contentID, contentType, actorID string,
	publishedAt time.Time,
) error {
	args := m.Called(ctx, contentID, contentType, actorID, publishedAt)

	return args.Error(0)
}

func (m *MockNotificationSink) EmitUnpublished(
	ctx context.Context,
	contentID, contentType, actorID string,
) error {
	args := m.Called(ctx, contentID, contentType, actorID)

	return args.Error(0)
}
