// Package persistence provides data storage abstraction for workflow
// definitions and content workflow state.
package persistence

import (
	"context"
	"time"

	"github.com/copydesk/copydesk/pkg/models"
)

// Persistence stores workflow definitions.
//
// SaveDefinition enforces the single-default invariant: saving an active
// default definition unsets the default flag on any other active definition
// sharing one of its content types.
type Persistence interface {
	Definitions(ctx context.Context) ([]*models.WorkflowDefinition, error)
	SaveDefinition(ctx context.Context, definition *models.WorkflowDefinition) error
	DefinitionByID(ctx context.Context, id string) (*models.WorkflowDefinition, error)
	DefaultDefinitionByContentType(ctx context.Context, contentType string) (*models.WorkflowDefinition, error)
	DeleteDefinition(ctx context.Context, id string) error
	HealthCheck(ctx context.Context) error

	Close(ctx context.Context) error
}

// ContentStateStore reads and mutates the workflow-facing fields of content
// records for one content type. An implementation is selected per content
// type through the content-store registry; the engine never branches on
// content-type tags itself.
//
// Implementations must be safe for concurrent use. No compare-and-swap is
// required on the workflow state field: concurrent transitions against the
// same content item race last-write-wins. Callers wanting exactly-once
// semantics must supply an optimistic-concurrency primitive here.
type ContentStateStore interface {
	GetState(ctx context.Context, contentID string) (*models.ContentState, error)
	SetState(ctx context.Context, contentID, state, reviewerID string, reviewedOn time.Time, comment string) error
	SetPublished(ctx context.Context, contentID string, published *time.Time) error
	AppendHistory(ctx context.Context, entry *models.HistoryEntry) error
	History(ctx context.Context, contentID string) ([]*models.HistoryEntry, error)
}
