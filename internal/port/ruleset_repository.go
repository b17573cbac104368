package port

import (
	"context"

	"github.com/google/uuid"

	"docreview/internal/domain"
)

// RulesetRepository persists rulesets and their ordered entries. ReplaceEntries
// deletes the ruleset's entries and inserts the given list in one transaction;
// the entry list is authoritative on every save.
type RulesetRepository interface {
	Create(ctx context.Context, ruleset *domain.Ruleset, entries []domain.RulesetEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ruleset, error)
	List(ctx context.Context) ([]domain.Ruleset, error)
	Update(ctx context.Context, ruleset *domain.Ruleset) error
	ReplaceEntries(ctx context.Context, rulesetID uuid.UUID, entries []domain.RulesetEntry) error
	ListEntries(ctx context.Context, rulesetID uuid.UUID) ([]domain.RulesetEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
