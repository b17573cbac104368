package port

import (
	"context"

	"github.com/google/uuid"

	"docreview/internal/domain"
)

// ResultRepository persists per-section review feedback. Results for a run are
// deleted and recreated on reprocessing; only revisions provide history.
// A nil revisionID addresses the base-session run.
type ResultRepository interface {
	Create(ctx context.Context, result *domain.ReviewResult) error
	ListByRun(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) ([]domain.ReviewResult, error)
	DeleteByRun(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) error
}
