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

type rulesetRepo struct {
	db *sqlx.DB
}

// NewRulesetRepo creates a new PostgreSQL-backed RulesetRepository.
func NewRulesetRepo(db *sqlx.DB) port.RulesetRepository {
	return &rulesetRepo{db: db}
}

func (r *rulesetRepo) Create(ctx context.Context, ruleset *domain.Ruleset, entries []domain.RulesetEntry) error {
	now := time.Now().UTC()
	ruleset.CreatedAt = now
	ruleset.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("rulesetRepo.Create: begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO rulesets (id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		ruleset.ID, ruleset.Name, ruleset.Description, ruleset.CreatedAt, ruleset.UpdatedAt)
	if err != nil {
		return fmt.Errorf("rulesetRepo.Create: insert ruleset: %w", err)
	}

	if err := insertEntries(ctx, tx, ruleset.ID, entries); err != nil {
		return fmt.Errorf("rulesetRepo.Create: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("rulesetRepo.Create: commit: %w", err)
	}
	return nil
}

func (r *rulesetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ruleset, error) {
	var ruleset domain.Ruleset
	err := r.db.GetContext(ctx, &ruleset,
		`SELECT r.*, (SELECT COUNT(*) FROM ruleset_entries e WHERE e.ruleset_id = r.id) AS entry_count
		 FROM rulesets r WHERE r.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRulesetNotFound
		}
		return nil, fmt.Errorf("rulesetRepo.GetByID: %w", err)
	}
	return &ruleset, nil
}

func (r *rulesetRepo) List(ctx context.Context) ([]domain.Ruleset, error) {
	rulesets := []domain.Ruleset{}
	err := r.db.SelectContext(ctx, &rulesets,
		`SELECT r.*, (SELECT COUNT(*) FROM ruleset_entries e WHERE e.ruleset_id = r.id) AS entry_count
		 FROM rulesets r ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("rulesetRepo.List: %w", err)
	}
	return rulesets, nil
}

func (r *rulesetRepo) Update(ctx context.Context, ruleset *domain.Ruleset) error {
	ruleset.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE rulesets SET name = $1, description = $2, updated_at = $3 WHERE id = $4`,
		ruleset.Name, ruleset.Description, ruleset.UpdatedAt, ruleset.ID)
	if err != nil {
		return fmt.Errorf("rulesetRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRulesetNotFound
	}
	return nil
}

func (r *rulesetRepo) ReplaceEntries(ctx context.Context, rulesetID uuid.UUID, entries []domain.RulesetEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("rulesetRepo.ReplaceEntries: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM ruleset_entries WHERE ruleset_id = $1", rulesetID); err != nil {
		return fmt.Errorf("rulesetRepo.ReplaceEntries: delete: %w", err)
	}

	if err := insertEntries(ctx, tx, rulesetID, entries); err != nil {
		return fmt.Errorf("rulesetRepo.ReplaceEntries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("rulesetRepo.ReplaceEntries: commit: %w", err)
	}
	return nil
}

func insertEntries(ctx context.Context, tx *sqlx.Tx, rulesetID uuid.UUID, entries []domain.RulesetEntry) error {
	now := time.Now().UTC()
	for i := range entries {
		entries[i].ID = uuid.New()
		entries[i].RulesetID = rulesetID
		entries[i].SequenceOrder = i + 1
		entries[i].CreatedAt = now

		_, err := tx.ExecContext(ctx,
			`INSERT INTO ruleset_entries (id, ruleset_id, section_id, sequence_order, ai_instructions, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			entries[i].ID, entries[i].RulesetID, entries[i].SectionID,
			entries[i].SequenceOrder, entries[i].AIInstructions, entries[i].CreatedAt)
		if err != nil {
			return fmt.Errorf("insert entry %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *rulesetRepo) ListEntries(ctx context.Context, rulesetID uuid.UUID) ([]domain.RulesetEntry, error) {
	entries := []domain.RulesetEntry{}
	err := r.db.SelectContext(ctx, &entries,
		`SELECT e.id, e.ruleset_id, e.section_id, e.sequence_order, e.ai_instructions, e.created_at,
		        s.name AS section_name, s.description, s.example_content
		 FROM ruleset_entries e
		 JOIN sections s ON s.id = e.section_id
		 WHERE e.ruleset_id = $1
		 ORDER BY e.sequence_order`, rulesetID)
	if err != nil {
		return nil, fmt.Errorf("rulesetRepo.ListEntries: %w", err)
	}
	return entries, nil
}

func (r *rulesetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM rulesets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("rulesetRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRulesetNotFound
	}
	return nil
}
