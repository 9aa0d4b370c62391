package models

import "time"

// NotificationCategory groups notifications for downstream routing.
type NotificationCategory string

const (
	NotificationCategoryWorkflow NotificationCategory = "workflow"
)

// Notification is the event payload handed to the notification sink after a
// transition executes. Persistence and delivery of notifications are
// external concerns.
type Notification struct {
	ID          string               `json:"id"`
	ContentID   string               `json:"contentId"`
	ContentType string               `json:"contentType"`
	Title       string               `json:"title,omitempty"`
	ActorID     string               `json:"actorId"`
	FromState   string               `json:"fromState,omitempty"`
	ToState     string               `json:"toState,omitempty"`
	Category    NotificationCategory `json:"category"`
	Message     string               `json:"message"`
	Created     time.Time            `json:"created"`
}
