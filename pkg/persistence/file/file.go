// Package file provides file-based persistence for workflow definitions and
// content workflow state.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/persistence"
)

// Persistence implements the persistence.Persistence interface using the
// file system. Each definition is stored as one JSON document under
// <root>/definitions.
type Persistence struct {
	root string
	mu   sync.Mutex
}

// NewPersistence creates a new instance of Persistence with the specified root directory.
func NewPersistence(root string) *Persistence {
	cleanRoot := strings.Replace(root, "file://", "", 1)

	return &Persistence{root: cleanRoot}
}

func (fp *Persistence) definitionsDir() string {
	return filepath.Join(fp.root, "definitions")
}

func (fp *Persistence) definitionPath(id string) string {
	return filepath.Join(fp.definitionsDir(), id+".json")
}

// Close performs any necessary cleanup. For file-based persistence, there is nothing to clean up.
func (fp *Persistence) Close(_ context.Context) error {
	return nil
}

// HealthCheck checks whether the root directory exists.
func (fp *Persistence) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(fp.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

// Definitions returns every stored workflow definition.
func (fp *Persistence) Definitions(ctx context.Context) ([]*models.WorkflowDefinition, error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	return fp.readAll()
}

func (fp *Persistence) readAll() ([]*models.WorkflowDefinition, error) {
	entries, err := os.ReadDir(fp.definitionsDir())
	if errors.Is(err, os.ErrNotExist) {
		return []*models.WorkflowDefinition{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read definitions directory: %w", err)
	}

	definitions := make([]*models.WorkflowDefinition, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		definition, err := fp.readDefinition(filepath.Join(fp.definitionsDir(), entry.Name()))
		if err != nil {
			return nil, err
		}

		definitions = append(definitions, definition)
	}

	return definitions, nil
}

func (fp *Persistence) readDefinition(path string) (*models.WorkflowDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	var definition models.WorkflowDefinition
	if err := json.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("failed to decode definition file %s: %w", path, err)
	}

	return &definition, nil
}

func (fp *Persistence) writeDefinition(definition *models.WorkflowDefinition) error {
	if err := os.MkdirAll(fp.definitionsDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create definitions directory: %w", err)
	}

	data, err := json.MarshalIndent(definition, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode definition %s: %w", definition.ID, err)
	}

	return os.WriteFile(fp.definitionPath(definition.ID), data, 0o644)
}

// SaveDefinition persists a definition. Saving an active default unsets the
// default flag on every other active definition sharing one of its content
// types, keeping the zero-or-one-default invariant.
func (fp *Persistence) SaveDefinition(ctx context.Context, definition *models.WorkflowDefinition) error {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	if definition.IsDefault && definition.IsActive {
		existing, err := fp.readAll()
		if err != nil {
			return persistence.NewDefinitionError("Save", definition.ID, err)
		}

		for _, other := range existing {
			if other.ID == definition.ID || !other.IsDefault || !other.IsActive {
				continue
			}

			if !sharesContentType(other, definition) {
				continue
			}

			other.IsDefault = false
			if err := fp.writeDefinition(other); err != nil {
				return persistence.NewDefinitionError("Save", other.ID, err)
			}
		}
	}

	if err := fp.writeDefinition(definition); err != nil {
		return persistence.NewDefinitionError("Save", definition.ID, err)
	}

	return nil
}

func sharesContentType(a, b *models.WorkflowDefinition) bool {
	for _, ct := range b.ContentTypes {
		if a.GovernsContentType(ct) {
			return true
		}
	}

	return false
}

// DefinitionByID returns the definition with the given ID.
func (fp *Persistence) DefinitionByID(ctx context.Context, id string) (*models.WorkflowDefinition, error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	definition, err := fp.readDefinition(fp.definitionPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, persistence.NewDefinitionError("DefinitionByID", id, persistence.ErrDefinitionNotFound)
	}

	if err != nil {
		return nil, persistence.NewDefinitionError("DefinitionByID", id, err)
	}

	return definition, nil
}

// DefaultDefinitionByContentType returns the active default definition
// governing the given content type.
func (fp *Persistence) DefaultDefinitionByContentType(ctx context.Context, contentType string) (*models.WorkflowDefinition, error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	definitions, err := fp.readAll()
	if err != nil {
		return nil, persistence.NewContentTypeError("DefaultDefinitionByContentType", contentType, err)
	}

	for _, definition := range definitions {
		if definition.IsDefault && definition.IsActive && definition.GovernsContentType(contentType) {
			return definition, nil
		}
	}

	return nil, persistence.NewContentTypeError(
		"DefaultDefinitionByContentType", contentType, persistence.ErrDefaultDefinitionNotFound)
}

// DeleteDefinition removes the definition with the given ID.
func (fp *Persistence) DeleteDefinition(ctx context.Context, id string) error {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	err := os.Remove(fp.definitionPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return persistence.NewDefinitionError("Delete", id, persistence.ErrDefinitionNotFound)
	}

	if err != nil {
		return persistence.NewDefinitionError("Delete", id, err)
	}

	return nil
}
