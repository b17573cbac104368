package service

import (
	"context"

	"github.com/google/uuid"

	"docreview/internal/domain"
	"docreview/internal/port"
)

// RulesetEntryInput is one section binding in a ruleset save. Positions are
// taken from list order; any client-sent sequence numbers are ignored.
type RulesetEntryInput struct {
	SectionID      uuid.UUID `json:"section_id" binding:"required"`
	AIInstructions string    `json:"ai_instructions"`
}

// CreateRulesetInput is the DTO for creating a ruleset with its entries.
type CreateRulesetInput struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Entries     []RulesetEntryInput `json:"entries"`
}

// UpdateRulesetInput is the DTO for updating a ruleset. A non-nil Entries list
// replaces the stored entries wholesale.
type UpdateRulesetInput struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Entries     []RulesetEntryInput `json:"entries"`
}

// RulesetDetail is a ruleset with its resolved, ordered entries.
type RulesetDetail struct {
	domain.Ruleset
	Entries []domain.RulesetEntry `json:"entries"`
}

// RulesetService defines the ruleset builder contract.
type RulesetService interface {
	Create(ctx context.Context, input CreateRulesetInput) (*RulesetDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RulesetDetail, error)
	List(ctx context.Context) ([]domain.Ruleset, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateRulesetInput) (*RulesetDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type rulesetService struct {
	repo        port.RulesetRepository
	sectionRepo port.SectionRepository
}

// NewRulesetService creates a new RulesetService implementation.
func NewRulesetService(repo port.RulesetRepository, sectionRepo port.SectionRepository) RulesetService {
	return &rulesetService{repo: repo, sectionRepo: sectionRepo}
}

func (s *rulesetService) Create(ctx context.Context, input CreateRulesetInput) (*RulesetDetail, error) {
	entries, err := s.buildEntries(ctx, input.Entries)
	if err != nil {
		return nil, err
	}

	ruleset := &domain.Ruleset{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, ruleset, entries); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, ruleset.ID)
}

func (s *rulesetService) GetByID(ctx context.Context, id uuid.UUID) (*RulesetDetail, error) {
	ruleset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RulesetDetail{Ruleset: *ruleset, Entries: entries}, nil
}

func (s *rulesetService) List(ctx context.Context) ([]domain.Ruleset, error) {
	return s.repo.List(ctx)
}

func (s *rulesetService) Update(ctx context.Context, id uuid.UUID, input UpdateRulesetInput) (*RulesetDetail, error) {
	ruleset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		ruleset.Name = *input.Name
	}
	if input.Description != nil {
		ruleset.Description = *input.Description
	}
	if err := s.repo.Update(ctx, ruleset); err != nil {
		return nil, err
	}

	if input.Entries != nil {
		entries, err := s.buildEntries(ctx, input.Entries)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceEntries(ctx, id, entries); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, id)
}

func (s *rulesetService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// buildEntries validates each referenced section exists and assigns positions
// from list order.
func (s *rulesetService) buildEntries(ctx context.Context, inputs []RulesetEntryInput) ([]domain.RulesetEntry, error) {
	entries := make([]domain.RulesetEntry, 0, len(inputs))
	for i, in := range inputs {
		if _, err := s.sectionRepo.GetByID(ctx, in.SectionID); err != nil {
			return nil, err
		}
		entries = append(entries, domain.RulesetEntry{
			SectionID:      in.SectionID,
			SequenceOrder:  i + 1,
			AIInstructions: in.AIInstructions,
		})
	}
	return entries, nil
}
