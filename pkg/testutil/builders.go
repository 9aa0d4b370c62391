// Package testutil provides test data builders shared across package tests.
package testutil

import (
	"github.com/google/uuid"

	"github.com/copydesk/copydesk/pkg/models"
)

// CreateTestDefinition creates a minimal valid workflow definition with
// default values that can be overridden.
func CreateTestDefinition(overrides ...func(*models.WorkflowDefinition)) *models.WorkflowDefinition {
	definition := &models.WorkflowDefinition{
		ID:           uuid.New().String(),
		Name:         "Test workflow",
		ContentTypes: []string{"post"},
		IsDefault:    true,
		IsActive:     true,
		InitialState: "draft",
		States: []*models.State{
			{Key: "draft", Name: "Draft", IsInitial: true},
			{Key: "done", Name: "Done"},
		},
		Transitions: []*models.Transition{
			{FromStateKey: "draft", ToStateKey: "done", Name: "Finish", RequiredPermission: "Writer"},
		},
		Roles: []*models.Role{
			{RoleKey: "Writer", DisplayName: "Writer", Priority: 1},
		},
	}

	for _, override := range overrides {
		override(definition)
	}

	return definition
}

// WithName sets the definition name.
func WithName(name string) func(*models.WorkflowDefinition) {
	return func(d *models.WorkflowDefinition) {
		d.Name = name
	}
}

// WithContentTypes sets the governed content-type tags.
func WithContentTypes(contentTypes ...string) func(*models.WorkflowDefinition) {
	return func(d *models.WorkflowDefinition) {
		d.ContentTypes = contentTypes
	}
}

// WithRoles replaces the definition's role set.
func WithRoles(roles ...*models.Role) func(*models.WorkflowDefinition) {
	return func(d *models.WorkflowDefinition) {
		d.Roles = roles
	}
}

// WithTransitions replaces the definition's transitions.
func WithTransitions(transitions ...*models.Transition) func(*models.WorkflowDefinition) {
	return func(d *models.WorkflowDefinition) {
		d.Transitions = transitions
	}
}

// CreateTestContent creates a content state record with default values that
// can be overridden.
func CreateTestContent(overrides ...func(*models.ContentState)) *models.ContentState {
	content := &models.ContentState{
		ContentID:     uuid.New().String(),
		ContentType:   "post",
		Title:         "Test content",
		OwnerID:       "alice",
		WorkflowState: "draft",
	}

	for _, override := range overrides {
		override(content)
	}

	return content
}

// WithWorkflowState sets the content item's current workflow state.
func WithWorkflowState(state string) func(*models.ContentState) {
	return func(c *models.ContentState) {
		c.WorkflowState = state
	}
}

// WithOwner sets the content item's owner.
func WithOwner(ownerID string) func(*models.ContentState) {
	return func(c *models.ContentState) {
		c.OwnerID = ownerID
	}
}
