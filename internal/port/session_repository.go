package port

import (
	"context"

	"github.com/google/uuid"

	"docreview/internal/domain"
)

// SessionRepository persists review sessions and their uploads.
//
// MarkProcessing is the pipeline entry guard: it transitions pending ->
// processing with a conditional update and reports whether this caller won.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.ReviewSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewSession, error)
	List(ctx context.Context) ([]domain.ReviewSession, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.RunStatus) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	ResetPending(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateUpload(ctx context.Context, upload *domain.Upload) error
	ListUploads(ctx context.Context, sessionID uuid.UUID) ([]domain.Upload, error)
}
