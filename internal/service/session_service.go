package service

import (
	"context"

	"github.com/google/uuid"

	"docreview/internal/domain"
	"docreview/internal/port"
	"docreview/internal/review"
)

// CreateSessionInput is the DTO for creating a review session.
type CreateSessionInput struct {
	RulesetID    uuid.UUID `json:"ruleset_id" binding:"required"`
	DocumentName string    `json:"document_name" binding:"required"`
}

// UploadInput is one per-section PDF in a create or revision request.
// DocumentData carries the base64-encoded file bytes.
type UploadInput struct {
	SectionID    uuid.UUID `json:"section_id" binding:"required"`
	DocumentData string    `json:"document_data" binding:"required"`
	FileName     string    `json:"file_name"`
	FileSize     int64     `json:"file_size"`
}

// CreateSessionWithUploadsInput is the DTO for the combined create endpoint.
type CreateSessionWithUploadsInput struct {
	RulesetID    uuid.UUID     `json:"ruleset_id" binding:"required"`
	DocumentName string        `json:"document_name" binding:"required"`
	Uploads      []UploadInput `json:"uploads" binding:"required,min=1"`
}

// SessionDetail is a session with its upload metadata and ordered results.
// Upload rows come back with DocumentData cleared; file bytes never leave the
// server on reads.
type SessionDetail struct {
	domain.ReviewSession
	Uploads []domain.Upload       `json:"uploads"`
	Results []domain.ReviewResult `json:"results"`
}

// SessionService defines the review session contract.
type SessionService interface {
	Create(ctx context.Context, input CreateSessionInput) (*domain.ReviewSession, error)
	CreateWithUploads(ctx context.Context, input CreateSessionWithUploadsInput) (*domain.ReviewSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SessionDetail, error)
	List(ctx context.Context) ([]domain.ReviewSession, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Results(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) ([]domain.ReviewResult, error)
	Summary(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) (*review.Summary, error)
}

type sessionService struct {
	repo        port.SessionRepository
	rulesetRepo port.RulesetRepository
	resultRepo  port.ResultRepository
}

// NewSessionService creates a new SessionService implementation.
func NewSessionService(repo port.SessionRepository, rulesetRepo port.RulesetRepository, resultRepo port.ResultRepository) SessionService {
	return &sessionService{repo: repo, rulesetRepo: rulesetRepo, resultRepo: resultRepo}
}

func (s *sessionService) Create(ctx context.Context, input CreateSessionInput) (*domain.ReviewSession, error) {
	ruleset, err := s.rulesetRepo.GetByID(ctx, input.RulesetID)
	if err != nil {
		return nil, err
	}

	session := &domain.ReviewSession{
		ID:           uuid.New(),
		RulesetID:    ruleset.ID,
		DocumentName: input.DocumentName,
		RulesetName:  ruleset.Name,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) CreateWithUploads(ctx context.Context, input CreateSessionWithUploadsInput) (*domain.ReviewSession, error) {
	if len(input.Uploads) == 0 {
		return nil, domain.ErrNoUploads
	}

	session, err := s.Create(ctx, CreateSessionInput{
		RulesetID:    input.RulesetID,
		DocumentName: input.DocumentName,
	})
	if err != nil {
		return nil, err
	}

	for _, in := range input.Uploads {
		upload := &domain.Upload{
			ID:           uuid.New(),
			SessionID:    session.ID,
			SectionID:    in.SectionID,
			DocumentData: in.DocumentData,
			FileName:     in.FileName,
			FileSize:     in.FileSize,
		}
		if err := s.repo.CreateUpload(ctx, upload); err != nil {
			// Roll back the half-created session so a retry starts clean.
			if delErr := s.repo.Delete(ctx, session.ID); delErr != nil {
				return nil, delErr
			}
			return nil, err
		}
	}
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, id uuid.UUID) (*SessionDetail, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uploads, err := s.repo.ListUploads(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range uploads {
		uploads[i].DocumentData = ""
	}
	results, err := s.resultRepo.ListByRun(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	return &SessionDetail{ReviewSession: *session, Uploads: uploads, Results: results}, nil
}

func (s *sessionService) List(ctx context.Context) ([]domain.ReviewSession, error) {
	return s.repo.List(ctx)
}

func (s *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *sessionService) Results(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) ([]domain.ReviewResult, error) {
	if _, err := s.repo.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.resultRepo.ListByRun(ctx, sessionID, revisionID)
}

func (s *sessionService) Summary(ctx context.Context, sessionID uuid.UUID, revisionID *uuid.UUID) (*review.Summary, error) {
	results, err := s.Results(ctx, sessionID, revisionID)
	if err != nil {
		return nil, err
	}
	summary := review.Summarize(results)
	return &summary, nil
}
