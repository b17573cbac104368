package port

import (
	"context"

	"github.com/google/uuid"

	"docreview/internal/domain"
)

// SectionRepository persists reusable document-section definitions.
type SectionRepository interface {
	Create(ctx context.Context, section *domain.Section) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	List(ctx context.Context) ([]domain.Section, error)
	Update(ctx context.Context, section *domain.Section) error
	Delete(ctx context.Context, id uuid.UUID) error
}
