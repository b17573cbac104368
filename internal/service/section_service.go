package service

import (
	"context"

	"github.com/google/uuid"

	"docreview/internal/domain"
	"docreview/internal/port"
)

// CreateSectionInput is the DTO for creating a section.
type CreateSectionInput struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	ExampleContent string `json:"example_content"`
}

// UpdateSectionInput is the DTO for updating a section.
type UpdateSectionInput struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	ExampleContent *string `json:"example_content"`
}

// SectionService defines the section catalog contract.
type SectionService interface {
	Create(ctx context.Context, input CreateSectionInput) (*domain.Section, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	List(ctx context.Context) ([]domain.Section, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSectionInput) (*domain.Section, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sectionService struct {
	repo port.SectionRepository
}

// NewSectionService creates a new SectionService implementation.
func NewSectionService(repo port.SectionRepository) SectionService {
	return &sectionService{repo: repo}
}

func (s *sectionService) Create(ctx context.Context, input CreateSectionInput) (*domain.Section, error) {
	section := &domain.Section{
		ID:             uuid.New(),
		Name:           input.Name,
		Description:    input.Description,
		ExampleContent: input.ExampleContent,
	}
	if err := s.repo.Create(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *sectionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *sectionService) List(ctx context.Context) ([]domain.Section, error) {
	return s.repo.List(ctx)
}

func (s *sectionService) Update(ctx context.Context, id uuid.UUID, input UpdateSectionInput) (*domain.Section, error) {
	section, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		section.Name = *input.Name
	}
	if input.Description != nil {
		section.Description = *input.Description
	}
	if input.ExampleContent != nil {
		section.ExampleContent = *input.ExampleContent
	}

	if err := s.repo.Update(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *sectionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
