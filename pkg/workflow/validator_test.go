package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/testutil"
)

func validDefinition() *models.WorkflowDefinition {
	return testutil.CreateTestDefinition()
}

func TestValidator_ValidDefinition(t *testing.T) {
	assert.Empty(t, NewValidator().Validate(validDefinition()))
}

func TestValidator_NilDefinition(t *testing.T) {
	errs := NewValidator().Validate(nil)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "required")
}

func TestValidator_CollectsAllErrors(t *testing.T) {
	definition := validDefinition()
	definition.Name = ""
	definition.ContentTypes = nil
	definition.Transitions[0].ToStateKey = "nowhere"

	errs := NewValidator().Validate(definition)

	assert.Len(t, errs, 3)
}

func TestValidator_InitialStateMustExist(t *testing.T) {
	definition := validDefinition()
	definition.InitialState = "ghost"
	definition.States[0].IsInitial = false

	errs := NewValidator().Validate(definition)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "ghost")
}

func TestValidator_EmptyInitialState(t *testing.T) {
	definition := validDefinition()
	definition.InitialState = ""
	definition.States[0].IsInitial = false

	errs := NewValidator().Validate(definition)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "initial state")
}

func TestValidator_DuplicateStateKeys(t *testing.T) {
	definition := validDefinition()
	definition.States = append(definition.States, &models.State{Key: "draft", Name: "Draft Again"})

	errs := NewValidator().Validate(definition)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "duplicate state key 'draft'")
}

func TestValidator_MultipleInitialFlags(t *testing.T) {
	definition := validDefinition()
	definition.States[1].IsInitial = true

	errs := NewValidator().Validate(definition)

	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "flagged initial")
	assert.Contains(t, errs[1], "more than one state")
}

func TestValidator_TransitionNamesDanglingTarget(t *testing.T) {
	definition := validDefinition()
	definition.Transitions = append(definition.Transitions, &models.Transition{
		FromStateKey: "done", ToStateKey: "archive", Name: "Archive",
	})

	errs := NewValidator().Validate(definition)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "'Archive'")
	assert.Contains(t, errs[0], "'archive'")
}

func TestValidator_UnnamedTransitionGetsStatePairLabel(t *testing.T) {
	definition := validDefinition()
	definition.Transitions = []*models.Transition{
		{FromStateKey: "draft", ToStateKey: "done"},
	}

	errs := NewValidator().Validate(definition)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "draft -> done")
}

func TestValidator_DuplicateRoleKeys(t *testing.T) {
	definition := validDefinition()
	definition.Roles = append(definition.Roles, &models.Role{RoleKey: "Writer", DisplayName: "Writer 2"})

	errs := NewValidator().Validate(definition)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "duplicate role key 'Writer'")
}

func TestValidator_NoStates(t *testing.T) {
	definition := validDefinition()
	definition.States = nil
	definition.Transitions = nil

	errs := NewValidator().Validate(definition)

	assert.Contains(t, errs, "at least one state is required")
}
