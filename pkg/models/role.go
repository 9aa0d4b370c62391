package models

// Role maps an external identity-role name into a workflow definition.
// Priority is the seniority ladder: a higher-priority role inherits the
// grants of every lower-priority role in the same definition.
type Role struct {
	RoleKey           string   `json:"roleKey"     validate:"required"`
	DisplayName       string   `json:"displayName" validate:"required"`
	Priority          int      `json:"priority"`
	CanViewAll        bool     `json:"canViewAll"` // Bypass the ownership check on viewing
	AllowedFromStates []string `json:"allowedFromStates,omitempty"`
	AllowedToStates   []string `json:"allowedToStates,omitempty"`
}

// AllowsFromState reports whether the role may act on content in the given
// state. An empty restriction set means unrestricted.
func (r *Role) AllowsFromState(stateKey string) bool {
	if len(r.AllowedFromStates) == 0 {
		return true
	}

	for _, s := range r.AllowedFromStates {
		if s == stateKey {
			return true
		}
	}

	return false
}
