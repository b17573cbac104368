package service

import (
	"context"

	"github.com/google/uuid"

	"docreview/internal/domain"
	"docreview/internal/port"
)

// CreateRevisionInput is the DTO for opening a new revision with its documents.
type CreateRevisionInput struct {
	Note    string        `json:"note"`
	Uploads []UploadInput `json:"uploads" binding:"required,min=1"`
}

// RevisionDetail is a revision with its document metadata and ordered results.
type RevisionDetail struct {
	domain.Revision
	Documents []domain.RevisionDocument `json:"documents"`
	Results   []domain.ReviewResult     `json:"results"`
}

// RevisionService defines the revision timeline contract.
type RevisionService interface {
	Create(ctx context.Context, sessionID uuid.UUID, input CreateRevisionInput) (*domain.Revision, error)
	GetByID(ctx context.Context, sessionID, revisionID uuid.UUID) (*RevisionDetail, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Revision, error)
}

type revisionService struct {
	repo        port.RevisionRepository
	sessionRepo port.SessionRepository
	resultRepo  port.ResultRepository
}

// NewRevisionService creates a new RevisionService implementation.
func NewRevisionService(repo port.RevisionRepository, sessionRepo port.SessionRepository, resultRepo port.ResultRepository) RevisionService {
	return &revisionService{repo: repo, sessionRepo: sessionRepo, resultRepo: resultRepo}
}

func (s *revisionService) Create(ctx context.Context, sessionID uuid.UUID, input CreateRevisionInput) (*domain.Revision, error) {
	if len(input.Uploads) == 0 {
		return nil, domain.ErrNoUploads
	}
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}

	number, err := s.repo.NextRevisionNumber(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	revision := &domain.Revision{
		ID:             uuid.New(),
		SessionID:      sessionID,
		RevisionNumber: number,
		Note:           input.Note,
	}
	if err := s.repo.Create(ctx, revision); err != nil {
		return nil, err
	}

	for _, in := range input.Uploads {
		doc := &domain.RevisionDocument{
			ID:           uuid.New(),
			RevisionID:   revision.ID,
			SectionID:    in.SectionID,
			DocumentData: in.DocumentData,
			FileName:     in.FileName,
			FileSize:     in.FileSize,
		}
		if err := s.repo.UpsertDocument(ctx, doc); err != nil {
			return nil, err
		}
	}
	return revision, nil
}

func (s *revisionService) GetByID(ctx context.Context, sessionID, revisionID uuid.UUID) (*RevisionDetail, error) {
	revision, err := s.repo.GetByID(ctx, sessionID, revisionID)
	if err != nil {
		return nil, err
	}
	docs, err := s.repo.ListDocuments(ctx, revision.ID)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].DocumentData = ""
	}
	rid := revision.ID
	results, err := s.resultRepo.ListByRun(ctx, sessionID, &rid)
	if err != nil {
		return nil, err
	}
	return &RevisionDetail{Revision: *revision, Documents: docs, Results: results}, nil
}

func (s *revisionService) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Revision, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.repo.ListBySession(ctx, sessionID)
}
