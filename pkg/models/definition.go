// Package models defines the core domain models for editorial workflow management.
package models

import "time"

// WorkflowDefinition is the declarative graph of states, transitions and
// roles governing the editorial lifecycle of one or more content types.
type WorkflowDefinition struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"         validate:"required,min=3"`
	Description  string        `json:"description"`
	ContentTypes []string      `json:"contentTypes" validate:"required,min=1"`
	IsDefault    bool          `json:"isDefault"`
	IsActive     bool          `json:"isActive"`
	InitialState string        `json:"initialState" validate:"required"`
	States       []*State      `json:"states"`
	Transitions  []*Transition `json:"transitions"`
	Roles        []*Role       `json:"roles"`
	Created      time.Time     `json:"created"`
	LastModified time.Time     `json:"lastModified"`
}

// StateByKey returns the state with the given key, or nil.
func (d *WorkflowDefinition) StateByKey(key string) *State {
	for _, s := range d.States {
		if s.Key == key {
			return s
		}
	}

	return nil
}

// RoleByKey returns the role with the given key, or nil.
func (d *WorkflowDefinition) RoleByKey(key string) *Role {
	for _, r := range d.Roles {
		if r.RoleKey == key {
			return r
		}
	}

	return nil
}

// TransitionsFrom returns the transitions leaving the given state in
// declaration order. Callers that surface transitions to users must sort
// them with SortTransitions first.
func (d *WorkflowDefinition) TransitionsFrom(stateKey string) []*Transition {
	out := make([]*Transition, 0)

	for _, t := range d.Transitions {
		if t.FromStateKey == stateKey {
			out = append(out, t)
		}
	}

	return out
}

// TransitionBetween returns the transition from one state to another, or nil
// if the definition declares no such edge.
func (d *WorkflowDefinition) TransitionBetween(fromKey, toKey string) *Transition {
	for _, t := range d.Transitions {
		if t.FromStateKey == fromKey && t.ToStateKey == toKey {
			return t
		}
	}

	return nil
}

// GovernsContentType reports whether the definition applies to the given
// content-type tag.
func (d *WorkflowDefinition) GovernsContentType(contentType string) bool {
	for _, ct := range d.ContentTypes {
		if ct == contentType {
			return true
		}
	}

	return false
}
