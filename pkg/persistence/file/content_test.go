package file

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/persistence"
)

func seedContent(t *testing.T, store *ContentStateStore, contentID, state string) {
	t.Helper()

	require.NoError(t, store.Seed(context.Background(), &models.ContentState{
		ContentID:     contentID,
		Title:         "Some title",
		OwnerID:       "alice",
		WorkflowState: state,
	}))
}

func TestContentStateStore_SeedAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewContentStateStore(t.TempDir(), "post")
	seedContent(t, store, "post-1", "draft")

	state, err := store.GetState(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, "post-1", state.ContentID)
	assert.Equal(t, "post", state.ContentType)
	assert.Equal(t, "draft", state.WorkflowState)
}

func TestContentStateStore_GetState_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewContentStateStore(t.TempDir(), "post")

	_, err := store.GetState(ctx, "ghost")

	require.Error(t, err)
	assert.True(t, persistence.IsContentNotFound(err))
}

func TestContentStateStore_SetState(t *testing.T) {
	ctx := context.Background()
	store := NewContentStateStore(t.TempDir(), "post")
	seedContent(t, store, "post-1", "draft")

	reviewedOn := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, store.SetState(ctx, "post-1", "in_review", "bob", reviewedOn, "ready"))

	state, err := store.GetState(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, "in_review", state.WorkflowState)
	assert.Equal(t, "bob", state.LastReviewerID)
	assert.Equal(t, "ready", state.ReviewComment)
	require.NotNil(t, state.LastReviewedOn)
	assert.Equal(t, reviewedOn, state.LastReviewedOn.UTC())

	// The fields outside the workflow slice stay untouched.
	assert.Equal(t, "Some title", state.Title)
	assert.Equal(t, "alice", state.OwnerID)
}

func TestContentStateStore_SetState_MissingContent(t *testing.T) {
	ctx := context.Background()
	store := NewContentStateStore(t.TempDir(), "post")

	err := store.SetState(ctx, "ghost", "in_review", "bob", time.Now(), "")

	assert.True(t, persistence.IsContentNotFound(err))
}

func TestContentStateStore_SetPublished(t *testing.T) {
	ctx := context.Background()
	store := NewContentStateStore(t.TempDir(), "post")
	seedContent(t, store, "post-1", "approved")

	published := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.SetPublished(ctx, "post-1", &published))

	state, err := store.GetState(ctx, "post-1")
	require.NoError(t, err)
	require.NotNil(t, state.Published)
	assert.Equal(t, published, state.Published.UTC())

	require.NoError(t, store.SetPublished(ctx, "post-1", nil))

	state, err = store.GetState(ctx, "post-1")
	require.NoError(t, err)
	assert.Nil(t, state.Published)
}

func TestContentStateStore_History(t *testing.T) {
	ctx := context.Background()
	store := NewContentStateStore(t.TempDir(), "post")

	history, err := store.History(ctx, "post-1")
	require.NoError(t, err)
	assert.Empty(t, history)

	first := &models.HistoryEntry{
		ContentID: "post-1",
		FromState: "draft",
		ToState:   "in_review",
		ActorID:   "alice",
		Timestamp: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	second := &models.HistoryEntry{
		ContentID: "post-1",
		FromState: "in_review",
		ToState:   "approved",
		ActorID:   "bob",
		Comment:   "looks good",
		Timestamp: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.AppendHistory(ctx, first))
	require.NoError(t, store.AppendHistory(ctx, second))

	history, err = store.History(ctx, "post-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "in_review", history[0].ToState)
	assert.Equal(t, "approved", history[1].ToState)
	assert.Equal(t, "looks good", history[1].Comment)
}

func TestContentStateStore_TypesAreIsolated(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	posts := NewContentStateStore(root, "post")
	pages := NewContentStateStore(root, "page")

	seedContent(t, posts, "item-1", "draft")

	_, err := pages.GetState(ctx, "item-1")
	assert.True(t, persistence.IsContentNotFound(err))
}
