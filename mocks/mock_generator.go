package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docreview/internal/port"
)

// MockGenerator is a mock implementation of port.Generator.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, apiKey string, parts []port.Part) (string, error) {
	args := m.Called(ctx, apiKey, parts)
	return args.String(0), args.Error(1)
}
