package mocks

import (
	"context"
	"time"

	"github.com/copydesk/copydesk/pkg/models"
	"github.com/stretchr/testify/mock"
)

// MockPersistence is a mock implementation of persistence.Persistence.
type MockPersistence struct {
	mock.Mock
}

func (m *MockPersistence) Definitions(ctx context.Context) ([]*models.WorkflowDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.WorkflowDefinition), args.Error(1)
}

func (m *MockPersistence) SaveDefinition(ctx context.Context, definition *models.WorkflowDefinition) error {
	args := m.Called(ctx, definition)

	return args.Error(0)
}

func (m *MockPersistence) DefinitionByID(ctx context.Context, id string) (*models.WorkflowDefinition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.WorkflowDefinition), args.Error(1)
}

func (m *MockPersistence) DefaultDefinitionByContentType(ctx context.Context, contentType string) (*models.WorkflowDefinition, error) {
	args := m.Called(ctx, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.WorkflowDefinition), args.Error(1)
}

func (m *MockPersistence) DeleteDefinition(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockPersistence) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

func (m *MockPersistence) Close(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

// MockContentStateStore is a mock implementation of persistence.ContentStateStore.
type MockContentStateStore struct {
	mock.Mock
}

func (m *MockContentStateStore) GetState(ctx context.Context, contentID string) (*models.ContentState, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ContentState), args.Error(1)
}

func (m *MockContentStateStore) SetState(ctx context.Context, contentID, state, reviewerID string, reviewedOn time.Time, comment string) error {
	args := m.Called(ctx, contentID, state, reviewerID, reviewedOn, comment)

	return args.Error(0)
}

func (m *MockContentStateStore) SetPublished(ctx context.Context, contentID string, published *time.Time) error {
	args := m.Called(ctx, contentID, published)

	return args.Error(0)
}

func (m *MockContentStateStore) AppendHistory(ctx context.Context, entry *models.HistoryEntry) error {
	args := m.Called(ctx, entry)

	return args.Error(0)
}

func (m *MockContentStateStore) History(ctx context.Context, contentID string) ([]*models.HistoryEntry, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.HistoryEntry), args.Error(1)
}
