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

type sectionRepo struct {
	db *sqlx.DB
}

// NewSectionRepo creates a new PostgreSQL-backed SectionRepository.
func NewSectionRepo(db *sqlx.DB) port.SectionRepository {
	return &sectionRepo{db: db}
}

func (r *sectionRepo) Create(ctx context.Context, section *domain.Section) error {
	now := time.Now().UTC()
	section.CreatedAt = now
	section.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sections (id, name, description, example_content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		section.ID, section.Name, section.Description, section.ExampleContent,
		section.CreatedAt, section.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sectionRepo.Create: %w", err)
	}
	return nil
}

func (r *sectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	var section domain.Section
	err := r.db.GetContext(ctx, &section, "SELECT * FROM sections WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSectionNotFound
		}
		return nil, fmt.Errorf("sectionRepo.GetByID: %w", err)
	}
	return &section, nil
}

func (r *sectionRepo) List(ctx context.Context) ([]domain.Section, error) {
	sections := []domain.Section{}
	err := r.db.SelectContext(ctx, &sections, "SELECT * FROM sections ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("sectionRepo.List: %w", err)
	}
	return sections, nil
}

func (r *sectionRepo) Update(ctx context.Context, section *domain.Section) error {
	section.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE sections SET name = $1, description = $2, example_content = $3, updated_at = $4
		 WHERE id = $5`,
		section.Name, section.Description, section.ExampleContent, section.UpdatedAt, section.ID)
	if err != nil {
		return fmt.Errorf("sectionRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSectionNotFound
	}
	return nil
}

func (r *sectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sections WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("sectionRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSectionNotFound
	}
	return nil
}
