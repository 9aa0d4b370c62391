package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/copydesk/copydesk/pkg/models"
)

// Canonical role keys of the default editorial ladder.
const (
	RoleWriter   = "Writer"
	RoleEditor   = "Editor"
	RoleApprover = "Approver"
	RoleSysAdmin = "SysAdmin"
)

// Canonical state keys of the default workflow.
const (
	StateDraft     = "draft"
	StateInReview  = "in_review"
	StateApproved  = "approved"
	StatePublished = "published"
	StateRejected  = "rejected"
)

// CreateDefault builds the canonical five-state editorial workflow for a
// content type: draft submits to review, review approves or rejects,
// approved content publishes, rejected content returns to draft and
// published content can be unpublished back to draft. Each transition is
// bound to the role that legitimately owns it; seniors inherit through the
// priority ladder.
//
// The produced definition passes Validate unmodified.
func CreateDefault(contentType, name string) *models.WorkflowDefinition {
	now := time.Now().UTC()

	return &models.WorkflowDefinition{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  fmt.Sprintf("Default editorial workflow for %s content", contentType),
		ContentTypes: []string{contentType},
		IsDefault:    true,
		IsActive:     true,
		InitialState: StateDraft,
		States: []*models.State{
			{Key: StateDraft, Name: "Draft", Color: "#6c757d", Icon: "pencil", SortOrder: 1, IsInitial: true},
			{Key: StateInReview, Name: "In Review", Color: "#ffc107", Icon: "eye", SortOrder: 2},
			{Key: StateApproved, Name: "Approved", Color: "#17a2b8", Icon: "check", SortOrder: 3},
			{Key: StatePublished, Name: "Published", Color: "#28a745", Icon: "globe", SortOrder: 4, IsPublished: true, IsFinal: true},
			{Key: StateRejected, Name: "Rejected", Color: "#dc3545", Icon: "x", SortOrder: 5},
		},
		Transitions: []*models.Transition{
			{
				FromStateKey:     StateDraft,
				ToStateKey:       StateInReview,
				Name:             "Submit for review",
				SortOrder:        1,
				SendNotification: true,
				RolePermissions: []*models.RolePermission{
					{RoleKey: RoleWriter, CanExecute: true},
				},
			},
			{
				FromStateKey:     StateInReview,
				ToStateKey:       StateApproved,
				Name:             "Approve",
				SortOrder:        2,
				SendNotification: true,
				RolePermissions: []*models.RolePermission{
					{RoleKey: RoleEditor, CanExecute: true},
				},
			},
			{
				FromStateKey:     StateInReview,
				ToStateKey:       StateRejected,
				Name:             "Reject",
				SortOrder:        3,
				RequiresComment:  true,
				SendNotification: true,
				RolePermissions: []*models.RolePermission{
					{RoleKey: RoleEditor, CanExecute: true},
				},
			},
			{
				FromStateKey:     StateApproved,
				ToStateKey:       StatePublished,
				Name:             "Publish",
				SortOrder:        4,
				SendNotification: true,
				RolePermissions: []*models.RolePermission{
					{RoleKey: RoleApprover, CanExecute: true},
				},
			},
			{
				FromStateKey: StateRejected,
				ToStateKey:   StateDraft,
				Name:         "Return to draft",
				SortOrder:    5,
				RolePermissions: []*models.RolePermission{
					{RoleKey: RoleWriter, CanExecute: true},
				},
			},
			{
				FromStateKey: StatePublished,
				ToStateKey:   StateDraft,
				Name:         "Unpublish",
				SortOrder:    6,
				RolePermissions: []*models.RolePermission{
					{RoleKey: RoleApprover, CanExecute: true},
				},
			},
		},
		Roles: []*models.Role{
			{RoleKey: RoleWriter, DisplayName: "Writer", Priority: 1},
			{RoleKey: RoleEditor, DisplayName: "Editor", Priority: 2},
			{RoleKey: RoleApprover, DisplayName: "Approver", Priority: 3},
			{RoleKey: RoleSysAdmin, DisplayName: "System Administrator", Priority: 10, CanViewAll: true},
		},
		Created:      now,
		LastModified: now,
	}
}
