package workflow

import (
	"fmt"

	"github.com/copydesk/copydesk/pkg/models"
)

// Validator performs the static consistency checks a workflow definition
// must pass before every save. All checks run; errors are collected, never
// short-circuited, so a caller sees everything wrong at once.
type Validator struct{}

// NewValidator creates a definition validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns every consistency error in the definition. An empty
// result means the definition is saveable.
func (v *Validator) Validate(definition *models.WorkflowDefinition) []string {
	errs := make([]string, 0)

	if definition == nil {
		return append(errs, "definition is required")
	}

	if definition.Name == "" {
		errs = append(errs, "name must not be empty")
	}

	if len(definition.ContentTypes) == 0 {
		errs = append(errs, "at least one content type is required")
	}

	if definition.InitialState == "" {
		errs = append(errs, "initial state must not be empty")
	}

	if len(definition.States) == 0 {
		errs = append(errs, "at least one state is required")
	}

	stateKeys := make(map[string]bool, len(definition.States))
	initialCount := 0

	for _, state := range definition.States {
		if stateKeys[state.Key] {
			errs = append(errs, fmt.Sprintf("duplicate state key '%s'", state.Key))
		}

		stateKeys[state.Key] = true

		if state.IsInitial {
			initialCount++

			if definition.InitialState != "" && state.Key != definition.InitialState {
				errs = append(errs, fmt.Sprintf(
					"state '%s' is flagged initial but the definition's initial state is '%s'",
					state.Key, definition.InitialState))
			}
		}
	}

	if definition.InitialState != "" && len(definition.States) > 0 && !stateKeys[definition.InitialState] {
		errs = append(errs, fmt.Sprintf("initial state '%s' does not match any state key", definition.InitialState))
	}

	if initialCount > 1 {
		errs = append(errs, "more than one state is flagged initial")
	}

	for _, transition := range definition.Transitions {
		label := transition.Name
		if label == "" {
			label = transition.FromStateKey + " -> " + transition.ToStateKey
		}

		if transition.Name == "" {
			errs = append(errs, fmt.Sprintf("transition '%s' must have a name", label))
		}

		if !stateKeys[transition.FromStateKey] {
			errs = append(errs, fmt.Sprintf(
				"transition '%s' references unknown from state '%s'", label, transition.FromStateKey))
		}

		if !stateKeys[transition.ToStateKey] {
			errs = append(errs, fmt.Sprintf(
				"transition '%s' references unknown to state '%s'", label, transition.ToStateKey))
		}
	}

	roleKeys := make(map[string]bool, len(definition.Roles))

	for _, role := range definition.Roles {
		if roleKeys[role.RoleKey] {
			errs = append(errs, fmt.Sprintf("duplicate role key '%s'", role.RoleKey))
		}

		roleKeys[role.RoleKey] = true
	}

	return errs
}
