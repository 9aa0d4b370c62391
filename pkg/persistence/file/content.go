package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/persistence"
)

// ContentStateStore implements persistence.ContentStateStore on the file
// system for one content type. State lives in <root>/content/<type>/<id>.json
// and the audit trail in <id>.history.json next to it.
type ContentStateStore struct {
	root        string
	contentType string
	mu          sync.Mutex
}

// NewContentStateStore creates a content state store rooted at the given
// directory for one content type.
func NewContentStateStore(root, contentType string) *ContentStateStore {
	return &ContentStateStore{root: root, contentType: contentType}
}

func (cs *ContentStateStore) dir() string {
	return filepath.Join(cs.root, "content", cs.contentType)
}

func (cs *ContentStateStore) statePath(contentID string) string {
	return filepath.Join(cs.dir(), contentID+".json")
}

func (cs *ContentStateStore) historyPath(contentID string) string {
	return filepath.Join(cs.dir(), contentID+".history.json")
}

// GetState returns the stored workflow state of a content item.
func (cs *ContentStateStore) GetState(ctx context.Context, contentID string) (*models.ContentState, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	return cs.read(contentID)
}

func (cs *ContentStateStore) read(contentID string) (*models.ContentState, error) {
	data, err := os.ReadFile(cs.statePath(contentID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, persistence.NewContentError("GetState", contentID, persistence.ErrContentNotFound)
	}

	if err != nil {
		return nil, persistence.NewContentError("GetState", contentID, err)
	}

	var state models.ContentState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, persistence.NewContentError("GetState", contentID, err)
	}

	return &state, nil
}

func (cs *ContentStateStore) write(contentID string, state *models.ContentState) error {
	if err := os.MkdirAll(cs.dir(), 0o755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(cs.statePath(contentID), data, 0o644)
}

// Seed stores an initial content state record. Existing records are
// overwritten; content creation time is the only expected caller.
func (cs *ContentStateStore) Seed(ctx context.Context, state *models.ContentState) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if state.ContentType == "" {
		state.ContentType = cs.contentType
	}

	if err := cs.write(state.ContentID, state); err != nil {
		return persistence.NewContentError("Seed", state.ContentID, err)
	}

	return nil
}

// SetState updates the workflow state and review audit fields of a content item.
func (cs *ContentStateStore) SetState(ctx context.Context, contentID, state, reviewerID string, reviewedOn time.Time, comment string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	current, err := cs.read(contentID)
	if err != nil {
		return err
	}

	current.WorkflowState = state
	current.LastReviewerID = reviewerID
	current.LastReviewedOn = &reviewedOn
	current.ReviewComment = comment

	if err := cs.write(contentID, current); err != nil {
		return persistence.NewContentError("SetState", contentID, err)
	}

	return nil
}

// SetPublished sets or clears the publish timestamp of a content item.
func (cs *ContentStateStore) SetPublished(ctx context.Context, contentID string, published *time.Time) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	current, err := cs.read(contentID)
	if err != nil {
		return err
	}

	current.Published = published

	if err := cs.write(contentID, current); err != nil {
		return persistence.NewContentError("SetPublished", contentID, err)
	}

	return nil
}

// AppendHistory appends one audit entry to the content item's transition history.
func (cs *ContentStateStore) AppendHistory(ctx context.Context, entry *models.HistoryEntry) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	history, err := cs.readHistory(entry.ContentID)
	if err != nil {
		return err
	}

	history = append(history, entry)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return persistence.NewContentError("AppendHistory", entry.ContentID, err)
	}

	if err := os.MkdirAll(cs.dir(), 0o755); err != nil {
		return persistence.NewContentError("AppendHistory", entry.ContentID, err)
	}

	if err := os.WriteFile(cs.historyPath(entry.ContentID), data, 0o644); err != nil {
		return persistence.NewContentError("AppendHistory", entry.ContentID, err)
	}

	return nil
}

// History returns the transition audit trail for a content item, oldest first.
func (cs *ContentStateStore) History(ctx context.Context, contentID string) ([]*models.HistoryEntry, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	return cs.readHistory(contentID)
}

func (cs *ContentStateStore) readHistory(contentID string) ([]*models.HistoryEntry, error) {
	data, err := os.ReadFile(cs.historyPath(contentID))
	if errors.Is(err, os.ErrNotExist) {
		return []*models.HistoryEntry{}, nil
	}

	if err != nil {
		return nil, persistence.NewContentError("History", contentID, err)
	}

	var history []*models.HistoryEntry
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, persistence.NewContentError("History", contentID, err)
	}

	return history, nil
}
