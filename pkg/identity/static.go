package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// StaticResolver resolves role names from an in-memory map of actor ID to
// role names. Safe for concurrent use.
type StaticResolver struct {
	mu    sync.RWMutex
	roles map[string][]string
}

// NewStaticResolver creates a resolver over a fixed actor-to-roles map.
func NewStaticResolver(roles map[string][]string) *StaticResolver {
	if roles == nil {
		roles = make(map[string][]string)
	}

	return &StaticResolver{roles: roles}
}

// NewFileResolver loads an actor-to-roles map from a JSON file of the shape
// {"actor-id": ["Writer", "Editor"], ...}.
func NewFileResolver(path string) (*StaticResolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roles file %s: %w", path, err)
	}

	var roles map[string][]string
	if err := json.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("failed to decode roles file %s: %w", path, err)
	}

	return NewStaticResolver(roles), nil
}

// GetRoleNames returns the role names assigned to the actor. Unknown actors
// get an empty set, not an error.
func (r *StaticResolver) GetRoleNames(_ context.Context, actorID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.roles[actorID]
	out := make([]string, len(names))
	copy(out, names)

	return out, nil
}

// Assign replaces the role names for an actor.
func (r *StaticResolver) Assign(actorID string, roleNames ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.roles[actorID] = append([]string(nil), roleNames...)
}
