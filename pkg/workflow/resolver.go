// Package workflow implements the editorial workflow engine: role
// resolution, transition evaluation and execution, definition validation and
// the default definition factory.
package workflow

import (
	"context"
	"sort"

	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/persistence"
)

// RoleResolver maps an actor's assigned role names to the effective role set
// of a workflow definition, applying priority-based inheritance.
type RoleResolver struct {
	persistence persistence.Persistence
}

// NewRoleResolver creates a new role resolver.
func NewRoleResolver(persistence persistence.Persistence) *RoleResolver {
	return &RoleResolver{persistence: persistence}
}

// EffectiveRoles resolves the definition and returns the actor's effective
// role set for it, sorted by descending priority.
func (r *RoleResolver) EffectiveRoles(ctx context.Context, workflowID string, userRoleNames []string) ([]*models.Role, error) {
	definition, err := r.persistence.DefinitionByID(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	return EffectiveRolesFor(definition, userRoleNames), nil
}

// EffectiveRolesFor computes the effective role set for a definition and a
// set of assigned role names. Direct roles are the intersection of the names
// with the definition's role keys; every definition role with a priority
// below the highest direct priority is inherited on top. Senior roles gain
// junior permissions, never the other way around. An empty name set yields
// an empty result: there are no default grants.
//
// This is a pure function over the definition and the name set.
func EffectiveRolesFor(definition *models.WorkflowDefinition, userRoleNames []string) []*models.Role {
	effective := make([]*models.Role, 0)

	if definition == nil || len(userRoleNames) == 0 {
		return effective
	}

	names := make(map[string]bool, len(userRoleNames))
	for _, name := range userRoleNames {
		names[name] = true
	}

	maxPriority := 0
	hasDirect := false

	for _, role := range definition.Roles {
		if !names[role.RoleKey] {
			continue
		}

		effective = append(effective, role)

		if !hasDirect || role.Priority > maxPriority {
			maxPriority = role.Priority
			hasDirect = true
		}
	}

	if hasDirect {
		for _, role := range definition.Roles {
			if !names[role.RoleKey] && role.Priority < maxPriority {
				effective = append(effective, role)
			}
		}
	}

	sort.SliceStable(effective, func(i, j int) bool {
		return effective[i].Priority > effective[j].Priority
	})

	return effective
}
