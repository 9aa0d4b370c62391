package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockIdentityResolver is a mock implementation of identity.Resolver.
type MockIdentityResolver struct {
	mock.Mock
}

func (m *MockIdentityResolver) GetRoleNames(ctx context.Context, actorID string) ([]string, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}
