package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"docreview/internal/domain"
	"docreview/internal/port"
)

type sessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepo creates a new PostgreSQL-backed SessionRepository.
func NewSessionRepo(db *sqlx.DB) port.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.ReviewSession) error {
	session.CreatedAt = time.Now().UTC()
	session.Status = domain.RunStatusPending

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO review_sessions (id, ruleset_id, document_name, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.RulesetID, session.DocumentName, session.Status, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("sessionRepo.Create: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewSession, error) {
	var session domain.ReviewSession
	err := r.db.GetContext(ctx, &session,
		`SELECT s.*, r.name AS ruleset_name
		 FROM review_sessions s
		 JOIN rulesets r ON r.id = s.ruleset_id
		 WHERE s.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("sessionRepo.GetByID: %w", err)
	}
	return &session, nil
}

func (r *sessionRepo) List(ctx context.Context) ([]domain.ReviewSession, error) {
	sessions := []domain.ReviewSession{}
	err := r.db.SelectContext(ctx, &sessions,
		`SELECT s.*, r.name AS ruleset_name
		 FROM review_sessions s
		 JOIN rulesets r ON r.id = s.ruleset_id
		 ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("sessionRepo.List: %w", err)
	}
	return sessions, nil
}

// MarkProcessing claims the session for processing. The conditional update is
// the concurrency guard: only one caller observes a pending row.
func (r *sessionRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE review_sessions SET status = $1 WHERE id = $2 AND status = $3`,
		domain.RunStatusProcessing, id, domain.RunStatusPending)
	if err != nil {
		return false, fmt.Errorf("sessionRepo.MarkProcessing: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *sessionRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.RunStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE review_sessions SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("sessionRepo.SetStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE review_sessions SET status = $1, completed_at = $2 WHERE id = $3",
		domain.RunStatusCompleted, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("sessionRepo.MarkCompleted: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) ResetPending(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE review_sessions SET status = $1, completed_at = NULL WHERE id = $2",
		domain.RunStatusPending, id)
	if err != nil {
		return fmt.Errorf("sessionRepo.ResetPending: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM review_sessions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("sessionRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) CreateUpload(ctx context.Context, upload *domain.Upload) error {
	upload.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_uploads (id, session_id, section_id, document_data, file_name, file_size, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		upload.ID, upload.SessionID, upload.SectionID, upload.DocumentData,
		upload.FileName, upload.FileSize, upload.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateUpload
		}
		return fmt.Errorf("sessionRepo.CreateUpload: %w", err)
	}
	return nil
}

func (r *sessionRepo) ListUploads(ctx context.Context, sessionID uuid.UUID) ([]domain.Upload, error) {
	uploads := []domain.Upload{}
	err := r.db.SelectContext(ctx, &uploads,
		"SELECT * FROM session_uploads WHERE session_id = $1 ORDER BY created_at", sessionID)
	if err != nil {
		return nil, fmt.Errorf("sessionRepo.ListUploads: %w", err)
	}
	return uploads, nil
}
