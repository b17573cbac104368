package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
)

// MockRevisionRepo is a mock implementation of port.RevisionRepository.
type MockRevisionRepo struct {
	mock.Mock
}

func (m *MockRevisionRepo) Create(ctx context.Context, revision *domain.Revision) error {
	args := m.Called(ctx, revision)
	return args.Error(0)
}

func (m *MockRevisionRepo) GetByID(ctx context.Context, sessionID, revisionID uuid.UUID) (*domain.Revision, error) {
	args := m.Called(ctx, sessionID, revisionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *MockRevisionRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Revision, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Revision), args.Error(1)
}

func (m *MockRevisionRepo) NextRevisionNumber(ctx context.Context, sessionID uuid.UUID) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

func (m *MockRevisionRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRevisionRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.RunStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRevisionRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRevisionRepo) ResetPending(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRevisionRepo) UpsertDocument(ctx context.Context, doc *domain.RevisionDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRevisionRepo) ListDocuments(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionDocument, error) {
	args := m.Called(ctx, revisionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevisionDocument), args.Error(1)
}
