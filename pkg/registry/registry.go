// Package registry provides the dispatch table that selects a content state
// store per content-type tag. Content-type specific behavior lives entirely
// in the registered store implementations; the engine itself never branches
// on content types.
package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/copydesk/copydesk/pkg/persistence"
)

type Registry struct {
	logger *slog.Logger
	stores map[string]persistence.ContentStateStore
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		logger: log,
		stores: make(map[string]persistence.ContentStateStore),
	}
}

// RegisterContentStore binds a content state store to a content-type tag.
// Registering the same tag twice replaces the earlier store.
func (r *Registry) RegisterContentStore(contentType string, store persistence.ContentStateStore) {
	if _, exists := r.stores[contentType]; exists {
		r.logger.Warn("Replacing registered content store", "content_type", contentType)
	}

	r.stores[contentType] = store
}

// ContentStore returns the store registered for the content-type tag.
func (r *Registry) ContentStore(contentType string) (persistence.ContentStateStore, error) {
	store, ok := r.stores[contentType]
	if !ok {
		return nil, fmt.Errorf("content type '%s' not registered", contentType)
	}

	return store, nil
}

// ContentTypes returns the registered content-type tags, sorted.
func (r *Registry) ContentTypes() []string {
	types := make([]string, 0, len(r.stores))
	for contentType := range r.stores {
		types = append(types, contentType)
	}

	sort.Strings(types)

	return types
}

// HealthCheck reports whether the registry is usable.
func (r *Registry) HealthCheck() (string, bool) {
	if len(r.stores) == 0 {
		return "No content stores registered", false
	}

	return fmt.Sprintf("%d content stores registered", len(r.stores)), true
}
