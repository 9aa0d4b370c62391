// Package events defines event types and structures for editorial workflow notifications.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/copydesk/copydesk/pkg/models"
)

type EventType string

// Topic carries every workflow notification event.
const Topic = "copydesk.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	// Content lifecycle events.
	ContentTransitionedEvent EventType = "content.transitioned"
	ContentPublishedEvent    EventType = "content.published"
	ContentUnpublishedEvent  EventType = "content.unpublished"

	// Definition lifecycle events.
	DefinitionSavedEvent   EventType = "definition.saved"
	DefinitionDeletedEvent EventType = "definition.deleted"
)

type BaseEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewBaseEvent creates the shared envelope for an event.
func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
	}
}

// ContentTransitioned is emitted after a transition executes on a content item.
type ContentTransitioned struct {
	BaseEvent

	Notification *models.Notification `json:"notification"`
	FromState    string               `json:"from_state,omitempty"`
	ToState      string               `json:"to_state,omitempty"`
}

func (c ContentTransitioned) GetType() EventType {
	return ContentTransitionedEvent
}

// ContentPublished is emitted when a transition makes content publicly visible.
type ContentPublished struct {
	BaseEvent

	ContentID   string    `json:"content_id"`
	ContentType string    `json:"content_type"`
	ActorID     string    `json:"actor_id"`
	PublishedAt time.Time `json:"published_at"`
}

func (c ContentPublished) GetType() EventType {
	return ContentPublishedEvent
}

// ContentUnpublished is emitted when a transition takes content out of public view.
type ContentUnpublished struct {
	BaseEvent

	ContentID   string `json:"content_id"`
	ContentType string `json:"content_type"`
	ActorID     string `json:"actor_id"`
}

func (c ContentUnpublished) GetType() EventType {
	return ContentUnpublishedEvent
}

// DefinitionSaved is emitted after a workflow definition passes validation
// and persists.
type DefinitionSaved struct {
	BaseEvent

	DefinitionID string   `json:"definition_id"`
	Name         string   `json:"name"`
	ContentTypes []string `json:"content_types"`
}

func (d DefinitionSaved) GetType() EventType {
	return DefinitionSavedEvent
}

// DefinitionDeleted is emitted after a workflow definition is removed.
type DefinitionDeleted struct {
	BaseEvent

	DefinitionID string `json:"definition_id"`
}

func (d DefinitionDeleted) GetType() EventType {
	return DefinitionDeletedEvent
}
