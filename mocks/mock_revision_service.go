package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
	"docreview/internal/service"
)

// MockRevisionService is a mock implementation of service.RevisionService.
type MockRevisionService struct {
	mock.Mock
}

func (m *MockRevisionService) Create(ctx context.Context, sessionID uuid.UUID, input service.CreateRevisionInput) (*domain.Revision, error) {
	args := m.Called(ctx, sessionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *MockRevisionService) GetByID(ctx context.Context, sessionID, revisionID uuid.UUID) (*service.RevisionDetail, error) {
	args := m.Called(ctx, sessionID, revisionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RevisionDetail), args.Error(1)
}

func (m *MockRevisionService) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Revision, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Revision), args.Error(1)
}
