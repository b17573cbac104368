package service

import (
	"context"
	"errors"
	"strings"

	"docreview/internal/domain"
	"docreview/internal/port"
)

// UpsertSettingInput is the DTO for saving a setting.
type UpsertSettingInput struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// SettingsService defines the key-value settings contract. Reads of the
// provider credential come back masked; the raw value never leaves the server.
type SettingsService interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
	Upsert(ctx context.Context, input UpsertSettingInput) (*domain.Setting, error)

	// ResolveAPIKey returns the provider credential: the stored setting if
	// present and non-empty, otherwise the environment fallback.
	ResolveAPIKey(ctx context.Context) (string, error)
}

type settingsService struct {
	repo      port.SettingsRepository
	envAPIKey string
}

// NewSettingsService creates a new SettingsService implementation. envAPIKey is
// the environment-level credential used when no setting is stored.
func NewSettingsService(repo port.SettingsRepository, envAPIKey string) SettingsService {
	return &settingsService{repo: repo, envAPIKey: envAPIKey}
}

func (s *settingsService) Get(ctx context.Context, key string) (*domain.Setting, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting.Key == domain.SettingGeminiAPIKey {
		setting.Value = maskSecret(setting.Value)
	}
	return setting, nil
}

func (s *settingsService) List(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range settings {
		if settings[i].Key == domain.SettingGeminiAPIKey {
			settings[i].Value = maskSecret(settings[i].Value)
		}
	}
	return settings, nil
}

func (s *settingsService) Upsert(ctx context.Context, input UpsertSettingInput) (*domain.Setting, error) {
	if err := s.repo.Upsert(ctx, input.Key, input.Value); err != nil {
		return nil, err
	}
	return s.Get(ctx, input.Key)
}

func (s *settingsService) ResolveAPIKey(ctx context.Context) (string, error) {
	setting, err := s.repo.Get(ctx, domain.SettingGeminiAPIKey)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}
	if setting != nil && strings.TrimSpace(setting.Value) != "" {
		return setting.Value, nil
	}
	if s.envAPIKey != "" {
		return s.envAPIKey, nil
	}
	return "", domain.ErrMissingAPIKey
}

// maskSecret keeps the last four characters visible.
func maskSecret(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}
