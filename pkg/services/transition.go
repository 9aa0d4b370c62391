package services

import (
	"context"
	"log/slog"

	"github.com/copydesk/copydesk/pkg/identity"
	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/persistence"
	"github.com/copydesk/copydesk/pkg/registry"
	"github.com/copydesk/copydesk/pkg/workflow"
)

// Transition surfaces the engine's evaluation and execution operations for
// one deployment: listing available transitions, performing one, visibility
// checks and audit history.
type Transition struct {
	persistence persistence.Persistence
	registry    *registry.Registry
	identity    identity.Resolver
	evaluator   *workflow.Evaluator
	executor    *workflow.Executor
	logger      *slog.Logger
}

// NewTransition creates a new transition service.
func NewTransition(
	persistence persistence.Persistence,
	reg *registry.Registry,
	resolver identity.Resolver,
	evaluator *workflow.Evaluator,
	executor *workflow.Executor,
	logger *slog.Logger,
) *Transition {
	return &Transition{
		persistence: persistence,
		registry:    reg,
		identity:    resolver,
		evaluator:   evaluator,
		executor:    executor,
		logger:      logger,
	}
}

// roleNames resolves the actor's assigned role names, degrading to an empty
// set on failure so a broken identity lookup can only reduce access.
func (t *Transition) roleNames(ctx context.Context, actorID string) []string {
	names, err := t.identity.GetRoleNames(ctx, actorID)
	if err != nil {
		t.logger.WarnContext(ctx, "Role resolution failed, treating actor as roleless",
			"actor", actorID, "error", err)

		return []string{}
	}

	return names
}

func (t *Transition) load(ctx context.Context, contentType, contentID string) (*models.ContentState, *models.WorkflowDefinition, error) {
	store, err := t.registry.ContentStore(contentType)
	if err != nil {
		return nil, nil, persistence.NewContentError("load", contentID, err)
	}

	content, err := store.GetState(ctx, contentID)
	if err != nil {
		return nil, nil, err
	}

	definition, err := t.persistence.DefaultDefinitionByContentType(ctx, contentType)
	if err != nil {
		return nil, nil, err
	}

	return content, definition, nil
}

// ListTransitions returns the transitions the actor may execute on the
// content item from its current state, in display order.
func (t *Transition) ListTransitions(ctx context.Context, contentType, contentID, actorID string) ([]*models.Transition, error) {
	content, definition, err := t.load(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}

	return t.evaluator.ListAvailable(ctx, definition.ID, content.WorkflowState, t.roleNames(ctx, actorID), content)
}

// PerformTransition applies the transition to the target state on behalf of
// the actor.
func (t *Transition) PerformTransition(ctx context.Context, contentType, contentID, targetState, comment, actorID string) (*workflow.Result, error) {
	return t.executor.Execute(ctx, contentType, contentID, targetState, comment, actorID)
}

// CanView reports whether the actor may see the content item.
func (t *Transition) CanView(ctx context.Context, contentType, contentID, actorID string) (bool, error) {
	content, definition, err := t.load(ctx, contentType, contentID)
	if err != nil {
		return false, err
	}

	return t.evaluator.CanViewContent(
		ctx, definition.ID, content.WorkflowState, t.roleNames(ctx, actorID), content.OwnerID, actorID), nil
}

// History returns the content item's transition audit trail, oldest first.
func (t *Transition) History(ctx context.Context, contentType, contentID string) ([]*models.HistoryEntry, error) {
	store, err := t.registry.ContentStore(contentType)
	if err != nil {
		return nil, persistence.NewContentError("History", contentID, err)
	}

	return store.History(ctx, contentID)
}
