package port

import (
	"context"

	"docreview/internal/domain"
)

// SettingsRepository persists key-value configuration rows. Get returns
// domain.ErrNotFound for an absent key.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
	Upsert(ctx context.Context, key, value string) error
}
