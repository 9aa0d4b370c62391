// Package web provides HTTP request and response types for the workflow API.
package web

import "github.com/copydesk/copydesk/pkg/models"

// PerformTransitionRequest represents the request body for executing a transition.
type PerformTransitionRequest struct {
	TargetState string `json:"targetState" validate:"required"`
	Comment     string `json:"comment"`
	ActorID     string `json:"actorId"     validate:"required"`
}

// CreateDefaultRequest represents the request body for bootstrapping the
// default workflow of a content type.
type CreateDefaultRequest struct {
	ContentType string `json:"contentType" validate:"required"`
	Name        string `json:"name"`
}

// ValidateResponse reports the outcome of a definition validation run.
type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// TransitionResponse is the display-facing projection of a transition.
// Permission data stays server-side.
type TransitionResponse struct {
	Name            string `json:"name"`
	FromStateKey    string `json:"fromStateKey"`
	ToStateKey      string `json:"toStateKey"`
	RequiresComment bool   `json:"requiresComment"`
	CSSClass        string `json:"cssClass,omitempty"`
	Icon            string `json:"icon,omitempty"`
	SortOrder       int    `json:"sortOrder"`
}

// TransformTransitionResponse projects a transition for API consumers.
func TransformTransitionResponse(transition *models.Transition) TransitionResponse {
	return TransitionResponse{
		Name:            transition.Name,
		FromStateKey:    transition.FromStateKey,
		ToStateKey:      transition.ToStateKey,
		RequiresComment: transition.RequiresComment,
		CSSClass:        transition.CSSClass,
		Icon:            transition.Icon,
		SortOrder:       transition.SortOrder,
	}
}

// VisibilityResponse reports whether an actor may view a content item.
type VisibilityResponse struct {
	ContentID string `json:"contentId"`
	ActorID   string `json:"actorId"`
	CanView   bool   `json:"canView"`
}
