package service

import (
	"context"
	"log"
	"sync"
	"time"

	"docreview/internal/domain"
)

// ReviewRunnerConfig holds settings for the review runner.
type ReviewRunnerConfig struct {
	Concurrency int
	QueueSize   int
	JobTimeout  time.Duration
}

// ReviewExecutor is the runner's view of the review service.
type ReviewExecutor interface {
	Execute(ctx context.Context, job ReviewJob)
}

// ReviewRunner executes review jobs from a bounded in-process queue. Jobs are
// claimed (status moved to processing) before submission, so a shed or dropped
// job is visible as a stuck row, never as silent duplicate work.
type ReviewRunner struct {
	executor ReviewExecutor
	cfg      ReviewRunnerConfig
	jobs     chan ReviewJob
	wg       sync.WaitGroup
}

// NewReviewRunner creates a new ReviewRunner.
func NewReviewRunner(executor ReviewExecutor, cfg ReviewRunnerConfig) *ReviewRunner {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 10 * time.Minute
	}
	return &ReviewRunner{
		executor: executor,
		cfg:      cfg,
		jobs:     make(chan ReviewJob, cfg.QueueSize),
	}
}

// Submit enqueues a job without blocking. Returns domain.ErrQueueFull when the
// queue is at capacity so the caller can reset the claimed run.
func (r *ReviewRunner) Submit(job ReviewJob) error {
	select {
	case r.jobs <- job:
		return nil
	default:
		return domain.ErrQueueFull
	}
}

// Start runs the dispatch loop until ctx is canceled. It blocks until all
// in-flight jobs have finished.
func (r *ReviewRunner) Start(ctx context.Context) {
	sem := make(chan struct{}, r.cfg.Concurrency)

	log.Printf("reviewRunner: started (concurrency=%d, queue=%d)", r.cfg.Concurrency, r.cfg.QueueSize)

	for {
		select {
		case <-ctx.Done():
			log.Printf("reviewRunner: shutting down, waiting for in-flight reviews...")
			r.wg.Wait()
			log.Printf("reviewRunner: shutdown complete")
			return
		case job := <-r.jobs:
			sem <- struct{}{} // acquire
			r.wg.Add(1)
			go func() {
				defer r.wg.Done()
				defer func() { <-sem }() // release

				// Fresh context independent of the dispatch context so
				// in-flight reviews complete even during shutdown.
				jobCtx, cancel := context.WithTimeout(context.Background(), r.cfg.JobTimeout)
				defer cancel()

				log.Printf("reviewRunner: dispatching session %s (revision=%v)", job.SessionID, job.RevisionID)
				r.executor.Execute(jobCtx, job)
			}()
		}
	}
}
