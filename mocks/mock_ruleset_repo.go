package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
)

// MockRulesetRepo is a mock implementation of port.RulesetRepository.
type MockRulesetRepo struct {
	mock.Mock
}

func (m *MockRulesetRepo) Create(ctx context.Context, ruleset *domain.Ruleset, entries []domain.RulesetEntry) error {
	args := m.Called(ctx, ruleset, entries)
	return args.Error(0)
}

func (m *MockRulesetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ruleset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ruleset), args.Error(1)
}

func (m *MockRulesetRepo) List(ctx context.Context) ([]domain.Ruleset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ruleset), args.Error(1)
}

func (m *MockRulesetRepo) Update(ctx context.Context, ruleset *domain.Ruleset) error {
	args := m.Called(ctx, ruleset)
	return args.Error(0)
}

func (m *MockRulesetRepo) ReplaceEntries(ctx context.Context, rulesetID uuid.UUID, entries []domain.RulesetEntry) error {
	args := m.Called(ctx, rulesetID, entries)
	return args.Error(0)
}

func (m *MockRulesetRepo) ListEntries(ctx context.Context, rulesetID uuid.UUID) ([]domain.RulesetEntry, error) {
	args := m.Called(ctx, rulesetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RulesetEntry), args.Error(1)
}

func (m *MockRulesetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
