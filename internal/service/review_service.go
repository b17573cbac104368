package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"docreview/internal/domain"
	"docreview/internal/port"
	"docreview/internal/provider"
	"docreview/internal/review"
)

// ReviewJob identifies one run target. RevisionID is nil for the base session.
type ReviewJob struct {
	SessionID  uuid.UUID
	RevisionID *uuid.UUID
}

// ReviewTrigger accepts jobs for asynchronous execution. Submit never blocks;
// it returns domain.ErrQueueFull when the queue is at capacity.
type ReviewTrigger interface {
	Submit(job ReviewJob) error
}

// ReviewService owns the review pipeline: guarded triggering plus the two-phase
// extraction/comparison run itself.
type ReviewService interface {
	TriggerSession(ctx context.Context, sessionID uuid.UUID) error
	TriggerRevision(ctx context.Context, sessionID, revisionID uuid.UUID) error
	Reprocess(ctx context.Context, sessionID uuid.UUID) error

	// Execute runs a claimed job to completion, persisting results and the
	// terminal status. Called by the runner, never by handlers.
	Execute(ctx context.Context, job ReviewJob)

	// SetTrigger attaches the job queue. Must be called before any Trigger
	// method; the runner needs the service as its executor, so the two are
	// wired in sequence at startup.
	SetTrigger(t ReviewTrigger)
}

type reviewService struct {
	sessionRepo  port.SessionRepository
	revisionRepo port.RevisionRepository
	rulesetRepo  port.RulesetRepository
	resultRepo   port.ResultRepository
	settings     SettingsService
	generator    port.Generator

	trigger               ReviewTrigger
	failOnComparisonError bool
}

// NewReviewService creates a new ReviewService implementation.
func NewReviewService(
	sessionRepo port.SessionRepository,
	revisionRepo port.RevisionRepository,
	rulesetRepo port.RulesetRepository,
	resultRepo port.ResultRepository,
	settings SettingsService,
	generator port.Generator,
	failOnComparisonError bool,
) ReviewService {
	return &reviewService{
		sessionRepo:           sessionRepo,
		revisionRepo:          revisionRepo,
		rulesetRepo:           rulesetRepo,
		resultRepo:            resultRepo,
		settings:              settings,
		generator:             generator,
		failOnComparisonError: failOnComparisonError,
	}
}

func (s *reviewService) SetTrigger(t ReviewTrigger) {
	s.trigger = t
}

func (s *reviewService) TriggerSession(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return err
	}
	uploads, err := s.sessionRepo.ListUploads(ctx, sessionID)
	if err != nil {
		return err
	}
	if len(uploads) == 0 {
		return domain.ErrNoUploads
	}

	claimed, err := s.sessionRepo.MarkProcessing(ctx, sessionID)
	if err != nil {
		return err
	}
	if !claimed {
		return domain.ErrAlreadyProcessing
	}

	if err := s.trigger.Submit(ReviewJob{SessionID: sessionID}); err != nil {
		if resetErr := s.sessionRepo.ResetPending(ctx, sessionID); resetErr != nil {
			log.Printf("reviewService.TriggerSession: failed to reset session %s after submit error: %v", sessionID, resetErr)
		}
		return err
	}
	return nil
}

func (s *reviewService) TriggerRevision(ctx context.Context, sessionID, revisionID uuid.UUID) error {
	revision, err := s.revisionRepo.GetByID(ctx, sessionID, revisionID)
	if err != nil {
		return err
	}
	docs, err := s.revisionRepo.ListDocuments(ctx, revision.ID)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return domain.ErrNoUploads
	}

	claimed, err := s.revisionRepo.MarkProcessing(ctx, revision.ID)
	if err != nil {
		return err
	}
	if !claimed {
		return domain.ErrAlreadyProcessing
	}

	rid := revision.ID
	if err := s.trigger.Submit(ReviewJob{SessionID: sessionID, RevisionID: &rid}); err != nil {
		if resetErr := s.revisionRepo.ResetPending(ctx, rid); resetErr != nil {
			log.Printf("reviewService.TriggerRevision: failed to reset revision %s after submit error: %v", rid, resetErr)
		}
		return err
	}
	return nil
}

// Reprocess discards the base run's results and runs the session again.
// Revisions keep their results; they are the history mechanism.
func (s *reviewService) Reprocess(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return err
	}
	if err := s.resultRepo.DeleteByRun(ctx, sessionID, nil); err != nil {
		return err
	}
	if err := s.sessionRepo.ResetPending(ctx, sessionID); err != nil {
		return err
	}
	return s.TriggerSession(ctx, sessionID)
}

func (s *reviewService) Execute(ctx context.Context, job ReviewJob) {
	if err := s.run(ctx, job); err != nil {
		log.Printf("reviewService.Execute: run for session %s failed: %v", job.SessionID, err)
		s.setFailed(ctx, job)
		return
	}
	if err := s.markCompleted(ctx, job); err != nil {
		log.Printf("reviewService.Execute: failed to mark session %s completed: %v", job.SessionID, err)
	}
}

// reviewDoc is one ruleset entry flowing through the run, with its uploaded
// document when one exists.
type reviewDoc struct {
	entry     domain.RulesetEntry
	data      string
	hasUpload bool
	ctx       review.DocumentContext
}

func (s *reviewService) run(ctx context.Context, job ReviewJob) error {
	session, err := s.sessionRepo.GetByID(ctx, job.SessionID)
	if err != nil {
		return err
	}
	entries, err := s.rulesetRepo.ListEntries(ctx, session.RulesetID)
	if err != nil {
		return err
	}

	dataBySection, err := s.loadDocuments(ctx, job)
	if err != nil {
		return err
	}
	if len(dataBySection) == 0 {
		return domain.ErrNoUploads
	}

	apiKey, err := s.settings.ResolveAPIKey(ctx)
	if err != nil {
		return err
	}

	// Phase 1: per-document field extraction. A failed call degrades to an
	// empty extraction instead of aborting the run. Entries with no upload
	// still enter the comparison context (nothing extracted) so every entry
	// ends up with a result row.
	var docs []reviewDoc
	for _, entry := range entries {
		data, hasUpload := dataBySection[entry.SectionID]

		var extraction review.Extraction
		if hasUpload {
			extraction = review.FailedExtraction()
			text, genErr := s.generator.Generate(ctx, apiKey, []port.Part{
				port.PDFPart(data),
				port.TextPart(review.BuildExtractionPrompt(entry.SectionName)),
			})
			if genErr != nil {
				logGenerateError(fmt.Sprintf("extraction for section %q", entry.SectionName), job.SessionID, genErr)
			} else {
				extraction = review.ParseExtraction(text)
			}
		}

		docs = append(docs, reviewDoc{
			entry:     entry,
			data:      data,
			hasUpload: hasUpload,
			ctx: review.DocumentContext{
				SectionID:        entry.SectionID,
				SectionName:      entry.SectionName,
				Description:      entry.Description,
				ExampleContent:   entry.ExampleContent,
				AIInstructions:   entry.AIInstructions,
				Extracted:        extraction.Fields,
				ExtractionFailed: extraction.Failed,
			},
		})
	}
	if len(docs) == 0 {
		return domain.ErrNoUploads
	}

	// Phase 2: one consolidated comparison call over every uploaded PDF.
	contexts := make([]review.DocumentContext, len(docs))
	parts := make([]port.Part, 0, len(docs)+1)
	for i, d := range docs {
		contexts[i] = d.ctx
		if d.hasUpload {
			parts = append(parts, port.PDFPart(d.data))
		}
	}
	parts = append(parts, port.TextPart(review.BuildComparisonPrompt(contexts)))

	fullText, cmpErr := s.generator.Generate(ctx, apiKey, parts)
	if cmpErr != nil {
		logGenerateError("comparison", job.SessionID, cmpErr)
		if s.failOnComparisonError {
			return fmt.Errorf("comparison call: %w", cmpErr)
		}
	}

	// Persist: replace the run's results wholesale.
	if err := s.resultRepo.DeleteByRun(ctx, job.SessionID, job.RevisionID); err != nil {
		return err
	}
	for _, d := range docs {
		feedback := review.ComparisonErrorFeedback
		if cmpErr == nil {
			block, found := review.PartitionFeedback(fullText, d.entry.SectionName)
			if found {
				feedback = block
			} else {
				feedback = review.FallbackFeedback(d.entry.SectionName)
			}
		}

		result := &domain.ReviewResult{
			ID:            uuid.New(),
			SessionID:     job.SessionID,
			RevisionID:    job.RevisionID,
			SectionID:     d.entry.SectionID,
			SectionName:   d.entry.SectionName,
			AIFeedback:    feedback,
			SequenceOrder: d.entry.SequenceOrder,
		}
		if err := s.resultRepo.Create(ctx, result); err != nil {
			return err
		}
	}
	return nil
}

// logGenerateError calls out rate limiting so operators can tell provider
// pushback apart from a hard failure.
func logGenerateError(phase string, sessionID uuid.UUID, err error) {
	var rateErr *provider.RateLimitError
	if errors.As(err, &rateErr) {
		log.Printf("reviewService.run: %s rate limited for session %s, retry after %s: %v",
			phase, sessionID, rateErr.RetryAfter, err)
		return
	}
	log.Printf("reviewService.run: %s failed for session %s: %v", phase, sessionID, err)
}

func (s *reviewService) loadDocuments(ctx context.Context, job ReviewJob) (map[uuid.UUID]string, error) {
	data := map[uuid.UUID]string{}
	if job.RevisionID != nil {
		docs, err := s.revisionRepo.ListDocuments(ctx, *job.RevisionID)
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			data[d.SectionID] = d.DocumentData
		}
		return data, nil
	}

	uploads, err := s.sessionRepo.ListUploads(ctx, job.SessionID)
	if err != nil {
		return nil, err
	}
	for _, u := range uploads {
		data[u.SectionID] = u.DocumentData
	}
	return data, nil
}

func (s *reviewService) markCompleted(ctx context.Context, job ReviewJob) error {
	if job.RevisionID != nil {
		return s.revisionRepo.MarkCompleted(ctx, *job.RevisionID)
	}
	return s.sessionRepo.MarkCompleted(ctx, job.SessionID)
}

func (s *reviewService) setFailed(ctx context.Context, job ReviewJob) {
	var err error
	if job.RevisionID != nil {
		err = s.revisionRepo.SetStatus(ctx, *job.RevisionID, domain.RunStatusFailed)
	} else {
		err = s.sessionRepo.SetStatus(ctx, job.SessionID, domain.RunStatusFailed)
	}
	if err != nil {
		log.Printf("reviewService.setFailed: failed to update status for session %s: %v", job.SessionID, err)
	}
}
