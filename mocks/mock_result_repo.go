package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
)

// MockResultRepo is a mock implementation of port.ResultRepository.
type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) Create(ctx context.Context, result *domain.ReviewResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepo) ListByRun(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) ([]domain.ReviewResult, error) {
	args := m.Called(ctx, sessionID, revisionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReviewResult), args.Error(1)
}

func (m *MockResultRepo) DeleteByRun(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) error {
	args := m.Called(ctx, sessionID, revisionID)
	return args.Error(0)
}
