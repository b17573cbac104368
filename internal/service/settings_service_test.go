package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
	"docreview/internal/service"
	"docreview/mocks"
)

func TestSettingsService_GetMasksAPIKey(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, "")

	repo.On("Get", mock.Anything, domain.SettingGeminiAPIKey).
		Return(&domain.Setting{Key: domain.SettingGeminiAPIKey, Value: "AIzaSyD-secret-1234"}, nil)

	setting, err := svc.Get(context.Background(), domain.SettingGeminiAPIKey)

	assert.NoError(t, err)
	assert.Equal(t, "***************1234", setting.Value)
}

func TestSettingsService_ListMasksOnlyAPIKey(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, "")

	repo.On("List", mock.Anything).Return([]domain.Setting{
		{Key: domain.SettingGeminiAPIKey, Value: "secret-key-9876"},
		{Key: "company_name", Value: "Acme Exports"},
	}, nil)

	settings, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.NotContains(t, settings[0].Value, "secret")
	assert.True(t, len(settings[0].Value) == len("secret-key-9876"))
	assert.Equal(t, "Acme Exports", settings[1].Value)
}

func TestSettingsService_ResolveAPIKey_PrefersStoredValue(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, "env-key")

	repo.On("Get", mock.Anything, domain.SettingGeminiAPIKey).
		Return(&domain.Setting{Key: domain.SettingGeminiAPIKey, Value: "stored-key"}, nil)

	key, err := svc.ResolveAPIKey(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "stored-key", key)
}

func TestSettingsService_ResolveAPIKey_FallsBackToEnv(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, "env-key")

	repo.On("Get", mock.Anything, domain.SettingGeminiAPIKey).Return(nil, domain.ErrNotFound)

	key, err := svc.ResolveAPIKey(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "env-key", key)
}

func TestSettingsService_ResolveAPIKey_BlankStoredFallsBackToEnv(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, "env-key")

	repo.On("Get", mock.Anything, domain.SettingGeminiAPIKey).
		Return(&domain.Setting{Key: domain.SettingGeminiAPIKey, Value: "   "}, nil)

	key, err := svc.ResolveAPIKey(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "env-key", key)
}

func TestSettingsService_ResolveAPIKey_MissingEverywhere(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, "")

	repo.On("Get", mock.Anything, domain.SettingGeminiAPIKey).Return(nil, domain.ErrNotFound)

	_, err := svc.ResolveAPIKey(context.Background())

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestSettingsService_UpsertRoundTrips(t *testing.T) {
	repo := new(mocks.MockSettingsRepo)
	svc := service.NewSettingsService(repo, "")

	repo.On("Upsert", mock.Anything, "company_name", "Acme Exports").Return(nil)
	repo.On("Get", mock.Anything, "company_name").
		Return(&domain.Setting{Key: "company_name", Value: "Acme Exports"}, nil)

	setting, err := svc.Upsert(context.Background(), service.UpsertSettingInput{
		Key:   "company_name",
		Value: "Acme Exports",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Acme Exports", setting.Value)
	repo.AssertExpectations(t)
}
