package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
	"docreview/internal/review"
	"docreview/internal/service"
)

// MockSessionService is a mock implementation of service.SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, input service.CreateSessionInput) (*domain.ReviewSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewSession), args.Error(1)
}

func (m *MockSessionService) CreateWithUploads(ctx context.Context, input service.CreateSessionWithUploadsInput) (*domain.ReviewSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewSession), args.Error(1)
}

func (m *MockSessionService) GetByID(ctx context.Context, id uuid.UUID) (*service.SessionDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionDetail), args.Error(1)
}

func (m *MockSessionService) List(ctx context.Context) ([]domain.ReviewSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReviewSession), args.Error(1)
}

func (m *MockSessionService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionService) Results(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) ([]domain.ReviewResult, error) {
	args := m.Called(ctx, sessionID, revisionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReviewResult), args.Error(1)
}

func (m *MockSessionService) Summary(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) (*review.Summary, error) {
	args := m.Called(ctx, sessionID, revisionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Summary), args.Error(1)
}
