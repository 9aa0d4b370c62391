package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copydesk/copydesk/pkg/mocks"
	"github.com/copydesk/copydesk/pkg/models"
)

func twoRoleDefinition() *models.WorkflowDefinition {
	return &models.WorkflowDefinition{
		ID: "wf-1",
		Roles: []*models.Role{
			{RoleKey: "A", DisplayName: "Junior", Priority: 1},
			{RoleKey: "B", DisplayName: "Senior", Priority: 2},
		},
	}
}

func TestEffectiveRolesFor_SeniorInheritsJunior(t *testing.T) {
	roles := EffectiveRolesFor(twoRoleDefinition(), []string{"B"})

	require.Len(t, roles, 2)
	assert.Equal(t, "B", roles[0].RoleKey)
	assert.Equal(t, "A", roles[1].RoleKey)
}

func TestEffectiveRolesFor_JuniorDoesNotGainSenior(t *testing.T) {
	roles := EffectiveRolesFor(twoRoleDefinition(), []string{"A"})

	require.Len(t, roles, 1)
	assert.Equal(t, "A", roles[0].RoleKey)
}

func TestEffectiveRolesFor_EmptyNamesYieldEmptySet(t *testing.T) {
	assert.Empty(t, EffectiveRolesFor(twoRoleDefinition(), nil))
	assert.Empty(t, EffectiveRolesFor(twoRoleDefinition(), []string{}))
}

func TestEffectiveRolesFor_UnknownNamesAreIgnored(t *testing.T) {
	roles := EffectiveRolesFor(twoRoleDefinition(), []string{"Stranger"})

	assert.Empty(t, roles)
}

func TestEffectiveRolesFor_EqualPriorityIsNotInherited(t *testing.T) {
	definition := &models.WorkflowDefinition{
		ID: "wf-2",
		Roles: []*models.Role{
			{RoleKey: "Editor", DisplayName: "Editor", Priority: 2},
			{RoleKey: "Curator", DisplayName: "Curator", Priority: 2},
		},
	}

	roles := EffectiveRolesFor(definition, []string{"Editor"})

	require.Len(t, roles, 1)
	assert.Equal(t, "Editor", roles[0].RoleKey)
}

func TestEffectiveRolesFor_SortedByDescendingPriority(t *testing.T) {
	definition := CreateDefault("post", "Default")

	roles := EffectiveRolesFor(definition, []string{RoleApprover})

	require.Len(t, roles, 3)
	assert.Equal(t, RoleApprover, roles[0].RoleKey)
	assert.Equal(t, RoleEditor, roles[1].RoleKey)
	assert.Equal(t, RoleWriter, roles[2].RoleKey)
}

func TestRoleResolver_EffectiveRoles(t *testing.T) {
	ctx := context.Background()
	definition := twoRoleDefinition()

	persistence := new(mocks.MockPersistence)
	persistence.On("DefinitionByID", ctx, definition.ID).Return(definition, nil)

	resolver := NewRoleResolver(persistence)

	roles, err := resolver.EffectiveRoles(ctx, definition.ID, []string{"B"})
	require.NoError(t, err)
	assert.Len(t, roles, 2)
	persistence.AssertExpectations(t)
}
