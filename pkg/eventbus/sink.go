package eventbus

import (
	"context"
	"time"

	"github.com/copydesk/copydesk/pkg/events"
	"github.com/copydesk/copydesk/pkg/models"
)

// NotificationPublisher adapts the event bus to the executor's notification
// sink: every emitted notification becomes a content.transitioned event,
// keyed by content ID so per-item ordering survives partitioned transports.
// Publish and unpublish side effects map to their own event types.
type NotificationPublisher struct {
	bus EventPublisher
}

func NewNotificationPublisher(bus EventPublisher) *NotificationPublisher {
	return &NotificationPublisher{bus: bus}
}

func (p *NotificationPublisher) Emit(ctx context.Context, notification *models.Notification) error {
	return p.bus.Publish(ctx, notification.ContentID, events.ContentTransitioned{
		BaseEvent:    events.NewBaseEvent(events.ContentTransitionedEvent),
		Notification: notification,
		FromState:    notification.FromState,
		ToState:      notification.ToState,
	})
}

func (p *NotificationPublisher) EmitPublished(
	ctx context.Context,
	contentID, contentType, actorID string,
	publishedAt time.Time,
) error {
	return p.bus.Publish(ctx, contentID, events.ContentPublished{
		BaseEvent:   events.NewBaseEvent(events.ContentPublishedEvent),
		ContentID:   contentID,
		ContentType: contentType,
		ActorID:     actorID,
		PublishedAt: publishedAt,
	})
}

func (p *NotificationPublisher) EmitUnpublished(
	ctx context.Context,
	contentID, contentType, actorID string,
) error {
	return p.bus.Publish(ctx, contentID, events.ContentUnpublished{
		BaseEvent:   events.NewBaseEvent(events.ContentUnpublishedEvent),
		ContentID:   contentID,
		ContentType: contentType,
		ActorID:     actorID,
	})
}
