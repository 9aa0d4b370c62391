package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/copydesk/copydesk/pkg/identity"
	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/otelhelper"
	"github.com/copydesk/copydesk/pkg/persistence"
	"github.com/copydesk/copydesk/pkg/registry"
	"github.com/copydesk/copydesk/pkg/template"
)

// NotificationSink receives notification events after a transition
// executes. Persistence, fan-out and delivery of notifications are external
// concerns behind this interface.
type NotificationSink interface {
	Emit(ctx context.Context, notification *models.Notification) error
	EmitPublished(ctx context.Context, contentID, contentType, actorID string, publishedAt time.Time) error
	EmitUnpublished(ctx context.Context, contentID, contentType, actorID string) error
}

// Result is the outcome of an executed transition.
type Result struct {
	Message string               `json:"message"`
	Content *models.ContentState `json:"content"`
}

// Executor applies approved transitions to content items. Validation fully
// precedes mutation: a call either applies exactly one transition or leaves
// every content field untouched.
type Executor struct {
	persistence persistence.Persistence
	registry    *registry.Registry
	identity    identity.Resolver
	evaluator   *Evaluator
	sink        NotificationSink
	logger      *slog.Logger
	tracer      trace.Tracer
	now         func() time.Time
}

// NewExecutor creates a transition executor.
func NewExecutor(
	persistence persistence.Persistence,
	registry *registry.Registry,
	identity identity.Resolver,
	evaluator *Evaluator,
	sink NotificationSink,
	logger *slog.Logger,
) *Executor {
	return &Executor{
		persistence: persistence,
		registry:    registry,
		identity:    identity,
		evaluator:   evaluator,
		sink:        sink,
		logger:      logger,
		tracer:      noop.NewTracerProvider().Tracer("copydesk"),
		now:         time.Now,
	}
}

// WithTracer enables tracing of transition execution.
func (ex *Executor) WithTracer(tracer trace.Tracer) *Executor {
	ex.tracer = tracer

	return ex
}

// WithClock replaces the time source. Used by tests.
func (ex *Executor) WithClock(now func() time.Time) *Executor {
	ex.now = now

	return ex
}

// Execute applies the transition from the content item's current state to
// the target state on behalf of the actor.
//
// Expected denials (no matching permitted transition, missing required
// comment) come back as ErrInvalidTransition and ErrCommentRequired;
// collaborator failures are wrapped and returned, never panicked. At most
// one transition is applied per call.
func (ex *Executor) Execute(
	ctx context.Context,
	contentType, contentID, targetState, comment, actorID string,
) (result *Result, err error) {
	ctx, span := otelhelper.StartSpan(ctx, ex.tracer, "workflow.execute_transition",
		attribute.String(otelhelper.ContentIDKey, contentID),
		attribute.String(otelhelper.ContentTypeKey, contentType),
		attribute.String(otelhelper.TargetStateKey, targetState),
		attribute.String(otelhelper.ActorIDKey, actorID),
	)
	defer span.End()

	defer func() {
		// Unexpected collaborator panics stop here; the boundary converts
		// them into an error result.
		if r := recover(); r != nil {
			err = fmt.Errorf("transition execution failed: %v", r)
			otelhelper.SetError(span, err)
		}
	}()

	store, err := ex.registry.ContentStore(contentType)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, persistence.NewContentError("Execute", contentID, err)
	}

	content, err := store.GetState(ctx, contentID)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	definition, err := ex.persistence.DefaultDefinitionByContentType(ctx, contentType)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	roleNames := ex.roleNames(ctx, actorID)
	currentState := content.WorkflowState

	transition, err := ex.matchTransition(ctx, definition, currentState, targetState, roleNames, content)
	if err != nil {
		return nil, err
	}

	if transition.RequiresComment && strings.TrimSpace(comment) == "" {
		return nil, ErrCommentRequired
	}

	// Validation is complete; everything below mutates.
	now := ex.now().UTC()

	if err := store.SetState(ctx, contentID, targetState, actorID, now, comment); err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	if err := ex.applyPublishSideEffects(ctx, store, definition, content, currentState, targetState, actorID, now); err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	if err := store.AppendHistory(ctx, &models.HistoryEntry{
		ContentID: contentID,
		FromState: currentState,
		ToState:   targetState,
		ActorID:   actorID,
		Comment:   comment,
		Timestamp: now,
	}); err != nil {
		// The transition itself is applied; a failed audit write is logged
		// and surfaced, not rolled back.
		ex.logger.ErrorContext(ctx, "Failed to append transition history",
			"content_id", contentID, "error", err)
	}

	displayName := ex.stateDisplayName(definition, targetState)

	if transition.SendNotification {
		ex.emitNotification(ctx, transition, content, actorID, displayName, currentState, targetState, now)
	}

	content.WorkflowState = targetState
	content.LastReviewerID = actorID
	content.LastReviewedOn = &now
	content.ReviewComment = comment

	ex.logger.InfoContext(ctx, "Transition executed",
		"content_id", contentID, "content_type", contentType,
		"from", currentState, "to", targetState, "actor", actorID)

	return &Result{
		Message: fmt.Sprintf("State updated to %s", displayName),
		Content: content,
	}, nil
}

// roleNames resolves the actor's assigned role names. A resolution failure
// degrades to an empty set: it can only reduce access, never grant it.
func (ex *Executor) roleNames(ctx context.Context, actorID string) []string {
	names, err := ex.identity.GetRoleNames(ctx, actorID)
	if err != nil {
		ex.logger.WarnContext(ctx, "Role resolution failed, treating actor as roleless",
			"actor", actorID, "error", err)

		return []string{}
	}

	return names
}

// matchTransition re-validates the requested pair against the transitions
// the actor may actually execute from the current state.
func (ex *Executor) matchTransition(
	ctx context.Context,
	definition *models.WorkflowDefinition,
	currentState, targetState string,
	roleNames []string,
	content *models.ContentState,
) (*models.Transition, error) {
	available, err := ex.evaluator.ListAvailable(ctx, definition.ID, currentState, roleNames, content)
	if err != nil {
		return nil, err
	}

	for _, transition := range available {
		if transition.ToStateKey == targetState {
			return transition, nil
		}
	}

	return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, currentState, targetState)
}

// applyPublishSideEffects keys publish and unpublish off the target state's
// flags. Name matching is a legacy-compat fallback used only when a state is
// not resolvable in the definition.
func (ex *Executor) applyPublishSideEffects(
	ctx context.Context,
	store persistence.ContentStateStore,
	definition *models.WorkflowDefinition,
	content *models.ContentState,
	currentState, targetState, actorID string,
	now time.Time,
) error {
	if ex.statePublishes(definition, targetState) {
		if err := store.SetPublished(ctx, content.ContentID, &now); err != nil {
			return err
		}

		if err := ex.sink.EmitPublished(ctx, content.ContentID, content.ContentType, actorID, now); err != nil {
			ex.logger.ErrorContext(ctx, "Failed to emit publish event",
				"content_id", content.ContentID, "error", err)
		}

		return nil
	}

	if ex.statePublishes(definition, currentState) {
		if err := store.SetPublished(ctx, content.ContentID, nil); err != nil {
			return err
		}

		if err := ex.sink.EmitUnpublished(ctx, content.ContentID, content.ContentType, actorID); err != nil {
			ex.logger.ErrorContext(ctx, "Failed to emit unpublish event",
				"content_id", content.ContentID, "error", err)
		}
	}

	return nil
}

func (ex *Executor) statePublishes(definition *models.WorkflowDefinition, stateKey string) bool {
	if state := definition.StateByKey(stateKey); state != nil {
		return state.IsPublished || state.IsFinal
	}

	return strings.EqualFold(stateKey, StatePublished)
}

func (ex *Executor) stateDisplayName(definition *models.WorkflowDefinition, stateKey string) string {
	if state := definition.StateByKey(stateKey); state != nil && state.Name != "" {
		return state.Name
	}

	return stateKey
}

func (ex *Executor) emitNotification(
	ctx context.Context,
	transition *models.Transition,
	content *models.ContentState,
	actorID, displayName, fromState, toState string,
	now time.Time,
) {
	message := template.Render(
		transition.NotificationTemplate,
		fmt.Sprintf("state updated to %s", displayName),
		template.NotificationData(displayName, content.Title, actorID),
	)

	notification := &models.Notification{
		ID:          uuid.New().String(),
		ContentID:   content.ContentID,
		ContentType: content.ContentType,
		Title:       content.Title,
		ActorID:     actorID,
		FromState:   fromState,
		ToState:     toState,
		Category:    models.NotificationCategoryWorkflow,
		Message:     message,
		Created:     now,
	}

	if err := ex.sink.Emit(ctx, notification); err != nil {
		ex.logger.ErrorContext(ctx, "Failed to emit workflow notification",
			"content_id", content.ContentID, "error", err)
	}
}
