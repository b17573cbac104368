package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"docreview/internal/domain"
	"docreview/internal/port"
)

type resultRepo struct {
	db *sqlx.DB
}

// NewResultRepo creates a new PostgreSQL-backed ResultRepository.
func NewResultRepo(db *sqlx.DB) port.ResultRepository {
	return &resultRepo{db: db}
}

func (r *resultRepo) Create(ctx context.Context, result *domain.ReviewResult) error {
	result.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO review_results (id, session_id, revision_id, section_id, section_name, ai_feedback, sequence_order, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		result.ID, result.SessionID, result.RevisionID, result.SectionID,
		result.SectionName, result.AIFeedback, result.SequenceOrder, result.CreatedAt)
	if err != nil {
		return fmt.Errorf("resultRepo.Create: %w", err)
	}
	return nil
}

func (r *resultRepo) ListByRun(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) ([]domain.ReviewResult, error) {
	results := []domain.ReviewResult{}
	var err error
	if revisionID == nil {
		err = r.db.SelectContext(ctx, &results,
			`SELECT * FROM review_results
			 WHERE session_id = $1 AND revision_id IS NULL
			 ORDER BY sequence_order`, sessionID)
	} else {
		err = r.db.SelectContext(ctx, &results,
			`SELECT * FROM review_results
			 WHERE session_id = $1 AND revision_id = $2
			 ORDER BY sequence_order`, sessionID, *revisionID)
	}
	if err != nil {
		return nil, fmt.Errorf("resultRepo.ListByRun: %w", err)
	}
	return results, nil
}

func (r *resultRepo) DeleteByRun(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) error {
	var err error
	if revisionID == nil {
		_, err = r.db.ExecContext(ctx,
			"DELETE FROM review_results WHERE session_id = $1 AND revision_id IS NULL", sessionID)
	} else {
		_, err = r.db.ExecContext(ctx,
			"DELETE FROM review_results WHERE session_id = $1 AND revision_id = $2", sessionID, *revisionID)
	}
	if err != nil {
		return fmt.Errorf("resultRepo.DeleteByRun: %w", err)
	}
	return nil
}
