package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"docreview/internal/domain"
	"docreview/internal/port"
)

type revisionRepo struct {
	db *sqlx.DB
}

// NewRevisionRepo creates a new PostgreSQL-backed RevisionRepository.
func NewRevisionRepo(db *sqlx.DB) port.RevisionRepository {
	return &revisionRepo{db: db}
}

func (r *revisionRepo) Create(ctx context.Context, revision *domain.Revision) error {
	revision.CreatedAt = time.Now().UTC()
	revision.Status = domain.RunStatusPending

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO review_revisions (id, session_id, revision_number, status, note, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		revision.ID, revision.SessionID, revision.RevisionNumber,
		revision.Status, revision.Note, revision.CreatedAt)
	if err != nil {
		return fmt.Errorf("revisionRepo.Create: %w", err)
	}
	return nil
}

func (r *revisionRepo) GetByID(ctx context.Context, sessionID, revisionID uuid.UUID) (*domain.Revision, error) {
	var revision domain.Revision
	err := r.db.GetContext(ctx, &revision,
		"SELECT * FROM review_revisions WHERE id = $1 AND session_id = $2", revisionID, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRevisionNotFound
		}
		return nil, fmt.Errorf("revisionRepo.GetByID: %w", err)
	}
	return &revision, nil
}

func (r *revisionRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Revision, error) {
	revisions := []domain.Revision{}
	err := r.db.SelectContext(ctx, &revisions,
		"SELECT * FROM review_revisions WHERE session_id = $1 ORDER BY revision_number", sessionID)
	if err != nil {
		return nil, fmt.Errorf("revisionRepo.ListBySession: %w", err)
	}
	return revisions, nil
}

func (r *revisionRepo) NextRevisionNumber(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var next int
	err := r.db.GetContext(ctx, &next,
		"SELECT COALESCE(MAX(revision_number), 0) + 1 FROM review_revisions WHERE session_id = $1",
		sessionID)
	if err != nil {
		return 0, fmt.Errorf("revisionRepo.NextRevisionNumber: %w", err)
	}
	return next, nil
}

func (r *revisionRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE review_revisions SET status = $1 WHERE id = $2 AND status = $3`,
		domain.RunStatusProcessing, id, domain.RunStatusPending)
	if err != nil {
		return false, fmt.Errorf("revisionRepo.MarkProcessing: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *revisionRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.RunStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE review_revisions SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("revisionRepo.SetStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRevisionNotFound
	}
	return nil
}

func (r *revisionRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE review_revisions SET status = $1, completed_at = $2 WHERE id = $3",
		domain.RunStatusCompleted, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("revisionRepo.MarkCompleted: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRevisionNotFound
	}
	return nil
}

func (r *revisionRepo) ResetPending(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE review_revisions SET status = $1, completed_at = NULL WHERE id = $2",
		domain.RunStatusPending, id)
	if err != nil {
		return fmt.Errorf("revisionRepo.ResetPending: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRevisionNotFound
	}
	return nil
}

func (r *revisionRepo) UpsertDocument(ctx context.Context, doc *domain.RevisionDocument) error {
	doc.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO revision_documents (id, revision_id, section_id, document_data, file_name, file_size, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (revision_id, section_id) DO UPDATE
		 SET document_data = EXCLUDED.document_data,
		     file_name = EXCLUDED.file_name,
		     file_size = EXCLUDED.file_size,
		     created_at = EXCLUDED.created_at`,
		doc.ID, doc.RevisionID, doc.SectionID, doc.DocumentData,
		doc.FileName, doc.FileSize, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("revisionRepo.UpsertDocument: %w", err)
	}
	return nil
}

func (r *revisionRepo) ListDocuments(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionDocument, error) {
	docs := []domain.RevisionDocument{}
	err := r.db.SelectContext(ctx, &docs,
		"SELECT * FROM revision_documents WHERE revision_id = $1 ORDER BY created_at", revisionID)
	if err != nil {
		return nil, fmt.Errorf("revisionRepo.ListDocuments: %w", err)
	}
	return docs, nil
}
