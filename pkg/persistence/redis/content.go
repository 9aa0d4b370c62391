// Package redis provides a Redis-backed content state store for deployments
// where content workflow state is shared across instances.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/persistence"
)

// ContentStateStore implements persistence.ContentStateStore on Redis for
// one content type. State documents are stored as JSON strings and the audit
// trail as a list, so individual operations are atomic per Redis command;
// concurrent transitions still race last-write-wins.
type ContentStateStore struct {
	client      redis.UniversalClient
	contentType string
}

// NewContentStateStore creates a content state store backed by the given
// Redis URL (redis://[user:password@]host:port/db).
func NewContentStateStore(redisURL, contentType string) (*ContentStateStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &ContentStateStore{
		client:      redis.NewClient(opts),
		contentType: contentType,
	}, nil
}

// NewContentStateStoreWithClient creates a content state store on an
// existing client. Used by tests and by callers pooling one connection
// across content types.
func NewContentStateStoreWithClient(client redis.UniversalClient, contentType string) *ContentStateStore {
	return &ContentStateStore{client: client, contentType: contentType}
}

func (cs *ContentStateStore) stateKey(contentID string) string {
	return fmt.Sprintf("copydesk:content:%s:%s", cs.contentType, contentID)
}

func (cs *ContentStateStore) historyKey(contentID string) string {
	return fmt.Sprintf("copydesk:history:%s:%s", cs.contentType, contentID)
}

// Ping verifies connectivity to the Redis server.
func (cs *ContentStateStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := cs.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return nil
}

// GetState returns the stored workflow state of a content item.
func (cs *ContentStateStore) GetState(ctx context.Context, contentID string) (*models.ContentState, error) {
	data, err := cs.client.Get(ctx, cs.stateKey(contentID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, persistence.NewContentError("GetState", contentID, persistence.ErrContentNotFound)
	}

	if err != nil {
		return nil, persistence.NewContentError("GetState", contentID, err)
	}

	var state models.ContentState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, persistence.NewContentError("GetState", contentID, err)
	}

	return &state, nil
}

func (cs *ContentStateStore) put(ctx context.Context, contentID string, state *models.ContentState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return cs.client.Set(ctx, cs.stateKey(contentID), data, 0).Err()
}

// Seed stores an initial content state record.
func (cs *ContentStateStore) Seed(ctx context.Context, state *models.ContentState) error {
	if state.ContentType == "" {
		state.ContentType = cs.contentType
	}

	if err := cs.put(ctx, state.ContentID, state); err != nil {
		return persistence.NewContentError("Seed", state.ContentID, err)
	}

	return nil
}

// SetState updates the workflow state and review audit fields of a content item.
func (cs *ContentStateStore) SetState(ctx context.Context, contentID, state, reviewerID string, reviewedOn time.Time, comment string) error {
	current, err := cs.GetState(ctx, contentID)
	if err != nil {
		return err
	}

	current.WorkflowState = state
	current.LastReviewerID = reviewerID
	current.LastReviewedOn = &reviewedOn
	current.ReviewComment = comment

	if err := cs.put(ctx, contentID, current); err != nil {
		return persistence.NewContentError("SetState", contentID, err)
	}

	return nil
}

// SetPublished sets or clears the publish timestamp of a content item.
func (cs *ContentStateStore) SetPublished(ctx context.Context, contentID string, published *time.Time) error {
	current, err := cs.GetState(ctx, contentID)
	if err != nil {
		return err
	}

	current.Published = published

	if err := cs.put(ctx, contentID, current); err != nil {
		return persistence.NewContentError("SetPublished", contentID, err)
	}

	return nil
}

// AppendHistory appends one audit entry to the content item's transition history.
func (cs *ContentStateStore) AppendHistory(ctx context.Context, entry *models.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return persistence.NewContentError("AppendHistory", entry.ContentID, err)
	}

	if err := cs.client.RPush(ctx, cs.historyKey(entry.ContentID), data).Err(); err != nil {
		return persistence.NewContentError("AppendHistory", entry.ContentID, err)
	}

	return nil
}

// History returns the transition audit trail for a content item, oldest first.
func (cs *ContentStateStore) History(ctx context.Context, contentID string) ([]*models.HistoryEntry, error) {
	raw, err := cs.client.LRange(ctx, cs.historyKey(contentID), 0, -1).Result()
	if err != nil {
		return nil, persistence.NewContentError("History", contentID, err)
	}

	history := make([]*models.HistoryEntry, 0, len(raw))

	for _, item := range raw {
		var entry models.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, persistence.NewContentError("History", contentID, err)
		}

		history = append(history, &entry)
	}

	return history, nil
}

// Close releases the underlying Redis connection.
func (cs *ContentStateStore) Close() error {
	return cs.client.Close()
}
