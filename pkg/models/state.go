package models

// State is a named position a content item can occupy within a workflow.
// The key is the stable identifier stored on content records and is never
// renumbered; display fields may change freely.
type State struct {
	Key         string `json:"key"  validate:"required"`
	Name        string `json:"name" validate:"required"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sortOrder"`
	IsInitial   bool   `json:"isInitial"`
	IsPublished bool   `json:"isPublished"` // Content in this state is publicly visible
	IsFinal     bool   `json:"isFinal"`
}
