package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docreview/internal/service"
)

// MockReviewService is a mock implementation of service.ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) TriggerSession(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockReviewService) TriggerRevision(ctx context.Context, sessionID, revisionID uuid.UUID) error {
	args := m.Called(ctx, sessionID, revisionID)
	return args.Error(0)
}

func (m *MockReviewService) Reprocess(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockReviewService) Execute(ctx context.Context, job service.ReviewJob) {
	m.Called(ctx, job)
}

func (m *MockReviewService) SetTrigger(t service.ReviewTrigger) {
	m.Called(t)
}
