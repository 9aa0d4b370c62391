package workflow

import (
	"context"
	"log/slog"
	"slices"

	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/persistence"
)

// Evaluator computes which transitions an actor may execute. All of its
// operations are read-only and fail closed: a lookup failure denies, it
// never widens access.
type Evaluator struct {
	persistence persistence.Persistence
	conditions  ConditionEvaluator
	logger      *slog.Logger
}

// NewEvaluator creates a transition evaluator with the default
// always-passing condition evaluator.
func NewEvaluator(persistence persistence.Persistence, logger *slog.Logger) *Evaluator {
	return &Evaluator{
		persistence: persistence,
		conditions:  PassEvaluator(),
		logger:      logger,
	}
}

// WithConditionEvaluator replaces the condition evaluator extension point.
func (e *Evaluator) WithConditionEvaluator(conditions ConditionEvaluator) *Evaluator {
	e.conditions = conditions

	return e
}

// ListAvailable returns the transitions out of the current state that the
// actor may execute, sorted by sort order ascending with ties broken by
// declaration order. The order is total, so identical inputs always produce
// the identical list.
func (e *Evaluator) ListAvailable(
	ctx context.Context,
	workflowID, currentState string,
	userRoleNames []string,
	content *models.ContentState,
) ([]*models.Transition, error) {
	definition, err := e.persistence.DefinitionByID(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	if definition == nil {
		return []*models.Transition{}, nil
	}

	roles := EffectiveRolesFor(definition, userRoleNames)
	available := make([]*models.Transition, 0)

	for _, transition := range definition.TransitionsFrom(currentState) {
		if e.allows(ctx, transition, roles, userRoleNames, content) {
			available = append(available, transition)
		}
	}

	models.SortTransitions(available)

	return available, nil
}

// CanExecute reports whether the actor may execute the transition between
// the given states. Missing definitions or transitions deny.
func (e *Evaluator) CanExecute(
	ctx context.Context,
	workflowID, fromState, toState string,
	userRoleNames []string,
	content *models.ContentState,
) bool {
	definition, err := e.persistence.DefinitionByID(ctx, workflowID)
	if err != nil || definition == nil {
		return false
	}

	transition := definition.TransitionBetween(fromState, toState)
	if transition == nil {
		return false
	}

	roles := EffectiveRolesFor(definition, userRoleNames)

	return e.allows(ctx, transition, roles, userRoleNames, content)
}

// allows applies the two-tier permission check. Tier one: role-permission
// bindings, authoritative and exclusive once any is present. Tier two: the
// legacy single-role gate against the raw assigned names. No permission data
// at all denies everyone.
func (e *Evaluator) allows(
	ctx context.Context,
	transition *models.Transition,
	effectiveRoles []*models.Role,
	userRoleNames []string,
	content *models.ContentState,
) bool {
	if len(transition.RolePermissions) > 0 {
		for _, role := range effectiveRoles {
			rp := transition.PermissionForRole(role.RoleKey)
			if rp == nil || !rp.CanExecute {
				continue
			}

			ok, err := e.conditions.Evaluate(ctx, rp.Conditions, content)
			if err != nil {
				e.logger.WarnContext(ctx, "Condition evaluation failed, denying",
					"from", transition.FromStateKey, "to", transition.ToStateKey, "role", role.RoleKey, "error", err)

				continue
			}

			if ok {
				return true
			}
		}

		return false
	}

	if transition.RequiredPermission != "" {
		return slices.Contains(userRoleNames, transition.RequiredPermission)
	}

	return false
}

// CanViewContent reports whether the actor may see a content item. Owners
// always see their own content; otherwise visibility requires a view-all
// role, a publicly visible state, or an effective role whose from-state
// restriction admits the content's state.
func (e *Evaluator) CanViewContent(
	ctx context.Context,
	workflowID, contentState string,
	userRoleNames []string,
	contentOwnerID, actorID string,
) bool {
	if contentOwnerID != "" && contentOwnerID == actorID {
		return true
	}

	definition, err := e.persistence.DefinitionByID(ctx, workflowID)
	if err != nil || definition == nil {
		return false
	}

	roles := EffectiveRolesFor(definition, userRoleNames)

	for _, role := range roles {
		if role.CanViewAll {
			return true
		}
	}

	if state := definition.StateByKey(contentState); state != nil && state.IsPublished {
		return true
	}

	for _, role := range roles {
		if role.AllowsFromState(contentState) {
			return true
		}
	}

	return false
}
