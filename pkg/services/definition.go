package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/copydesk/copydesk/pkg/eventbus"
	"github.com/copydesk/copydesk/pkg/events"
	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/persistence"
	"github.com/copydesk/copydesk/pkg/workflow"
)

// Definition manages workflow definitions: validated saves, deletion,
// bootstrap defaults and imports.
type Definition struct {
	persistence persistence.Persistence
	validator   *workflow.Validator
	eventBus    eventbus.EventPublisher
	logger      *slog.Logger
}

// NewDefinition creates a new definition service.
func NewDefinition(persistence persistence.Persistence, eventBus eventbus.EventPublisher, logger *slog.Logger) *Definition {
	return &Definition{
		persistence: persistence,
		validator:   workflow.NewValidator(),
		eventBus:    eventBus,
		logger:      logger,
	}
}

// HealthCheck checks the health of the persistence layer.
func (d *Definition) HealthCheck(ctx context.Context) (string, bool) {
	if d.persistence == nil {
		return "Persistence layer not initialized", false
	}

	if err := d.persistence.HealthCheck(ctx); err != nil {
		return "Persistence layer is unhealthy: " + err.Error(), false
	}

	return "Persistence layer is healthy", true
}

// List returns stored definitions, optionally filtered by content type.
func (d *Definition) List(ctx context.Context, contentType string) ([]*models.WorkflowDefinition, error) {
	definitions, err := d.persistence.Definitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}

	if contentType == "" {
		return definitions, nil
	}

	filtered := make([]*models.WorkflowDefinition, 0, len(definitions))

	for _, definition := range definitions {
		if definition.GovernsContentType(contentType) {
			filtered = append(filtered, definition)
		}
	}

	return filtered, nil
}

// Get returns the definition with the given ID.
func (d *Definition) Get(ctx context.Context, id string) (*models.WorkflowDefinition, error) {
	return d.persistence.DefinitionByID(ctx, id)
}

// Validate runs the static consistency checks without saving. An empty
// result means the definition is saveable.
func (d *Definition) Validate(definition *models.WorkflowDefinition) []string {
	return d.validator.Validate(definition)
}

// Save validates and persists a definition. Any consistency error rejects
// the save; all of them are reported together.
func (d *Definition) Save(ctx context.Context, definition *models.WorkflowDefinition) (*models.WorkflowDefinition, error) {
	if definition == nil {
		return nil, ErrDefinitionNil
	}

	if messages := d.validator.Validate(definition); len(messages) > 0 {
		return nil, NewValidationFailedError(messages)
	}

	now := time.Now().UTC()

	if definition.ID == "" {
		definition.ID = uuid.New().String()
		definition.Created = now
	}

	if definition.Created.IsZero() {
		definition.Created = now
	}

	definition.LastModified = now

	if err := d.persistence.SaveDefinition(ctx, definition); err != nil {
		return nil, fmt.Errorf("failed to save definition: %w", err)
	}

	d.publish(ctx, definition.ID, events.DefinitionSaved{
		BaseEvent:    events.NewBaseEvent(events.DefinitionSavedEvent),
		DefinitionID: definition.ID,
		Name:         definition.Name,
		ContentTypes: definition.ContentTypes,
	})

	return definition, nil
}

// Delete removes the definition with the given ID.
func (d *Definition) Delete(ctx context.Context, id string) error {
	if err := d.persistence.DeleteDefinition(ctx, id); err != nil {
		return err
	}

	d.publish(ctx, id, events.DefinitionDeleted{
		BaseEvent:    events.NewBaseEvent(events.DefinitionDeletedEvent),
		DefinitionID: id,
	})

	return nil
}

// CreateDefault builds and saves the canonical editorial workflow for a
// content type. The produced definition is the regression anchor for the
// validator: it must save without modification.
func (d *Definition) CreateDefault(ctx context.Context, contentType, name string) (*models.WorkflowDefinition, error) {
	if contentType == "" {
		return nil, ErrContentTypeRequired
	}

	if name == "" {
		name = fmt.Sprintf("Default %s workflow", contentType)
	}

	return d.Save(ctx, workflow.CreateDefault(contentType, name))
}

// Import validates a raw definition document against the definition JSON
// schema, decodes it and saves it.
func (d *Definition) Import(ctx context.Context, raw []byte) (*models.WorkflowDefinition, error) {
	schemaLoader := gojsonschema.NewGoLoader(models.DefinitionSchema())
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, NewValidationFailedError([]string{"invalid definition document: " + err.Error()})
	}

	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}

		return nil, NewValidationFailedError(messages)
	}

	var definition models.WorkflowDefinition
	if err := json.Unmarshal(raw, &definition); err != nil {
		return nil, NewValidationFailedError([]string{"invalid definition document: " + err.Error()})
	}

	return d.Save(ctx, &definition)
}

func (d *Definition) publish(ctx context.Context, key string, event eventbus.Event) {
	if d.eventBus == nil {
		return
	}

	if err := d.eventBus.Publish(ctx, key, event); err != nil {
		d.logger.ErrorContext(ctx, "Failed to publish definition event",
			"event_type", event.GetType(), "definition_id", key, "error", err)
	}
}
