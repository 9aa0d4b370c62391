package models

import "sort"

// Transition is a directed, permission-gated edge between two states.
//
// Permission data is two-tier: when any RolePermission binding is present
// the bindings are authoritative and exclusive; otherwise the legacy
// RequiredPermission role key gates execution. A transition carrying no
// permission data at all is executable by nobody.
type Transition struct {
	FromStateKey         string            `json:"fromStateKey" validate:"required"`
	ToStateKey           string            `json:"toStateKey"   validate:"required"`
	Name                 string            `json:"name"`
	RequiredPermission   string            `json:"requiredPermission,omitempty"` // Legacy single-role gate
	RolePermissions      []*RolePermission `json:"rolePermissions,omitempty"`
	RequiresComment      bool              `json:"requiresComment"`
	SendNotification     bool              `json:"sendNotification"`
	NotificationTemplate string            `json:"notificationTemplate,omitempty"`
	CSSClass             string            `json:"cssClass,omitempty"`
	Icon                 string            `json:"icon,omitempty"`
	SortOrder            int               `json:"sortOrder"`
}

// PermissionForRole returns the binding for the given role key, or nil.
func (t *Transition) PermissionForRole(roleKey string) *RolePermission {
	for _, rp := range t.RolePermissions {
		if rp.RoleKey == roleKey {
			return rp
		}
	}

	return nil
}

// RolePermission binds one role to one transition with explicit execute
// rights. Conditions are an opaque extension point; the shipped evaluator
// always passes them.
type RolePermission struct {
	RoleKey          string         `json:"roleKey" validate:"required"`
	CanExecute       bool           `json:"canExecute"`
	RequiresApproval bool           `json:"requiresApproval"`
	ApprovalRoleID   string         `json:"approvalRoleId,omitempty"`
	Conditions       map[string]any `json:"conditions,omitempty"`
}

// SortTransitions orders transitions by sort order ascending, ties broken by
// declaration order. The resulting order is total and drives button ordering
// in any UI, so it must be stable.
func SortTransitions(transitions []*Transition) {
	sort.SliceStable(transitions, func(i, j int) bool {
		return transitions[i].SortOrder < transitions[j].SortOrder
	})
}
