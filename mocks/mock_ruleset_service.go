package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
	"docreview/internal/service"
)

// MockRulesetService is a mock implementation of service.RulesetService.
type MockRulesetService struct {
	mock.Mock
}

func (m *MockRulesetService) Create(ctx context.Context, input service.CreateRulesetInput) (*service.RulesetDetail, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RulesetDetail), args.Error(1)
}

func (m *MockRulesetService) GetByID(ctx context.Context, id uuid.UUID) (*service.RulesetDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RulesetDetail), args.Error(1)
}

func (m *MockRulesetService) List(ctx context.Context) ([]domain.Ruleset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ruleset), args.Error(1)
}

func (m *MockRulesetService) Update(ctx context.Context, id uuid.UUID, input service.UpdateRulesetInput) (*service.RulesetDetail, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RulesetDetail), args.Error(1)
}

func (m *MockRulesetService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
