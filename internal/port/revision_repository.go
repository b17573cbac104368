package port

import (
	"context"

	"github.com/google/uuid"

	"docreview/internal/domain"
)

// RevisionRepository persists session revisions and their document uploads.
// NextRevisionNumber returns max(revision_number)+1 for the session, starting at
// 1. UpsertDocument overwrites on the (revision_id, section_id) conflict key so
// resubmitting a file for the same section is idempotent.
type RevisionRepository interface {
	Create(ctx context.Context, revision *domain.Revision) error
	GetByID(ctx context.Context, sessionID, revisionID uuid.UUID) (*domain.Revision, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Revision, error)
	NextRevisionNumber(ctx context.Context, sessionID uuid.UUID) (int, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.RunStatus) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	ResetPending(ctx context.Context, id uuid.UUID) error

	UpsertDocument(ctx context.Context, doc *domain.RevisionDocument) error
	ListDocuments(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionDocument, error)
}
