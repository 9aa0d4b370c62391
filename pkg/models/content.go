package models

import "time"

// ContentState is the workflow-facing slice of a content record. The content
// record itself is owned by an external store; the engine reads and mutates
// only these fields.
type ContentState struct {
	ContentID      string     `json:"contentId"`
	ContentType    string     `json:"contentType"`
	Title          string     `json:"title,omitempty"`
	OwnerID        string     `json:"ownerId,omitempty"`
	WorkflowState  string     `json:"workflowState"`
	LastReviewerID string     `json:"lastReviewerId,omitempty"`
	LastReviewedOn *time.Time `json:"lastReviewedOn,omitempty"`
	ReviewComment  string     `json:"reviewComment,omitempty"`
	Published      *time.Time `json:"published,omitempty"`
}

// HistoryEntry records one applied transition for audit purposes.
type HistoryEntry struct {
	ContentID string    `json:"contentId"`
	FromState string    `json:"fromState"`
	ToState   string    `json:"toState"`
	ActorID   string    `json:"actorId"`
	Comment   string    `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
