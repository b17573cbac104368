package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"docreview/internal/domain"
	"docreview/internal/service"
)

// recordingExecutor tracks executed jobs.
type recordingExecutor struct {
	mu   sync.Mutex
	jobs []service.ReviewJob
	done chan struct{}
}

func (e *recordingExecutor) Execute(ctx context.Context, job service.ReviewJob) {
	e.mu.Lock()
	e.jobs = append(e.jobs, job)
	e.mu.Unlock()
	if e.done != nil {
		e.done <- struct{}{}
	}
}

func TestReviewRunner_ExecutesSubmittedJobs(t *testing.T) {
	exec := &recordingExecutor{done: make(chan struct{}, 4)}
	runner := service.NewReviewRunner(exec, service.ReviewRunnerConfig{
		Concurrency: 2,
		QueueSize:   4,
	})

	ctx, cancel := context.WithCancel(context.Background())
	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)
		runner.Start(ctx)
	}()

	jobA := service.ReviewJob{SessionID: uuid.New()}
	jobB := service.ReviewJob{SessionID: uuid.New()}
	assert.NoError(t, runner.Submit(jobA))
	assert.NoError(t, runner.Submit(jobB))

	for i := 0; i < 2; i++ {
		select {
		case <-exec.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for job execution")
		}
	}

	cancel()
	select {
	case <-runnerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for runner shutdown")
	}

	exec.mu.Lock()
	defer exec.mu.Unlock()
	assert.Len(t, exec.jobs, 2)
}

func TestReviewRunner_ShedsLoadWhenQueueFull(t *testing.T) {
	// Runner never started, so nothing drains the queue.
	runner := service.NewReviewRunner(&recordingExecutor{}, service.ReviewRunnerConfig{
		Concurrency: 1,
		QueueSize:   1,
	})

	assert.NoError(t, runner.Submit(service.ReviewJob{SessionID: uuid.New()}))
	err := runner.Submit(service.ReviewJob{SessionID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrQueueFull)
}

func TestReviewRunner_ShutdownWaitsForInFlightJobs(t *testing.T) {
	started := make(chan struct{})
	finished := make(chan struct{})
	exec := &blockingExecutor{started: started, release: make(chan struct{}), finished: finished}

	runner := service.NewReviewRunner(exec, service.ReviewRunnerConfig{
		Concurrency: 1,
		QueueSize:   1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)
		runner.Start(ctx)
	}()

	assert.NoError(t, runner.Submit(service.ReviewJob{SessionID: uuid.New()}))
	<-started

	cancel()
	select {
	case <-runnerDone:
		t.Fatal("runner shut down while a job was still in flight")
	case <-time.After(100 * time.Millisecond):
	}

	close(exec.release)
	select {
	case <-runnerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for runner shutdown")
	}
	select {
	case <-finished:
	default:
		t.Fatal("job did not finish before shutdown completed")
	}
}

type blockingExecutor struct {
	started  chan struct{}
	release  chan struct{}
	finished chan struct{}
}

func (e *blockingExecutor) Execute(ctx context.Context, job service.ReviewJob) {
	close(e.started)
	<-e.release
	close(e.finished)
}
