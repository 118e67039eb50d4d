package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/failure"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
	"github.com/cloudshift-ai/cloudshift/pkg/process"
	testdb "github.com/cloudshift-ai/cloudshift/test/database"
)

// fakeRunner records jobs and replays a scripted outcome.
type fakeRunner struct {
	mu      sync.Mutex
	jobs    []*models.JobMessage
	outcome *process.Outcome
	err     error

	// block, when set, holds Run until the job context ends.
	block bool
}

func (r *fakeRunner) Run(ctx context.Context, job *models.JobMessage) (*process.Outcome, error) {
	r.mu.Lock()
	r.jobs = append(r.jobs, job)
	r.mu.Unlock()
	if r.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.outcome != nil {
		return r.outcome, nil
	}
	return &process.Outcome{ProcessID: job.ProcessID, Succeeded: true}, nil
}

func (r *fakeRunner) jobCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

// releaseRecorder records lock releases.
type releaseRecorder struct {
	mu       sync.Mutex
	released []string
}

func (r *releaseRecorder) ReleaseProcess(processID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released = append(r.released, processID)
}

func newTestPool(t *testing.T, runner JobRunner, locks LockReleaser, mutate func(*config.DispatcherConfig)) *WorkerPool {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := config.DefaultDispatcherConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 20 * time.Millisecond
	cfg.VisibilityTimeout = time.Minute
	cfg.MessageTimeout = 5 * time.Second
	cfg.GracefulShutdownTimeout = 5 * time.Second
	cfg.MaxRetryCount = 1
	if mutate != nil {
		mutate(cfg)
	}
	return NewWorkerPool("test-pod", client.Client, cfg, runner, locks)
}

func TestWorkerPool_ProcessesJob(t *testing.T) {
	runner := &fakeRunner{}
	locks := &releaseRecorder{}
	pool := newTestPool(t, runner, locks, nil)
	ctx := context.Background()

	_, err := pool.Store().Enqueue(ctx, EnqueueRequest{
		ProcessID: "proc-1",
		UserID:    "user@example.com",
		MigrationRequest: &models.MigrationRequest{
			SourceFolder: "manifests",
		},
	})
	require.NoError(t, err)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	assert.Eventually(t, func() bool {
		depth, err := pool.Store().Depth(ctx, pool.config.QueueName)
		return err == nil && depth == 0 && runner.jobCount() == 1
	}, 5*time.Second, 20*time.Millisecond, "job should be processed and acknowledged")

	require.Len(t, runner.jobs, 1)
	assert.Equal(t, "proc-1", runner.jobs[0].ProcessID)
	require.NotNil(t, runner.jobs[0].MigrationRequest)
	assert.Equal(t, "manifests", runner.jobs[0].MigrationRequest.SourceFolder)

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Equal(t, []string{"proc-1"}, locks.released)
}

func TestWorkerPool_BlockedOutcomeDeadLetters(t *testing.T) {
	// A blocked termination is finalized failed and the message moves to
	// the dead-letter queue with the failure summary attached.
	verdict := agent.HardTermination(agent.TerminationHardBlocked, "credentials missing")
	runner := &fakeRunner{outcome: &process.Outcome{
		ProcessID:   "proc-1",
		FailedPhase: config.PhaseDesign,
		Failure: failure.CollectHardTermination(verdict, failure.StepContext{
			ProcessID: "proc-1",
			StepName:  "design",
			StepPhase: "design",
		}, time.Now().UTC()),
	}}
	pool := newTestPool(t, runner, nil, nil)
	ctx := context.Background()

	_, err := pool.Store().Enqueue(ctx, EnqueueRequest{
		ProcessID: "proc-1",
		UserID:    "user@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	assert.Eventually(t, func() bool {
		deadDepth, err := pool.Store().Depth(ctx, pool.config.DeadLetterQueue())
		return err == nil && deadDepth == 1
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, 1, runner.jobCount(), "a blocked process is not retried")

	depth, err := pool.Store().Depth(ctx, pool.config.QueueName)
	require.NoError(t, err)
	assert.Zero(t, depth)

	dead, err := pool.Store().client.QueueMessage.Query().Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, dead.FailureSummary)
	assert.Contains(t, *dead.FailureSummary, "credentials missing")
}

func TestWorkerPool_RetryableOutcomeReleasesThenDeadLetters(t *testing.T) {
	// A retryable failure releases the message; once the budget is spent
	// the release lands it on the dead-letter queue instead.
	verdict := agent.HardTermination(agent.TerminationHardTimeout, "turn cap reached")
	runner := &fakeRunner{outcome: &process.Outcome{
		ProcessID:   "proc-1",
		FailedPhase: config.PhaseDesign,
		Retry:       true,
		Failure: failure.CollectHardTermination(verdict, failure.StepContext{
			ProcessID: "proc-1",
			StepName:  "design",
			StepPhase: "design",
		}, time.Now().UTC()),
	}}
	pool := newTestPool(t, runner, nil, nil)
	ctx := context.Background()

	_, err := pool.Store().Enqueue(ctx, EnqueueRequest{
		ProcessID: "proc-1",
		UserID:    "user@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	// MaxRetryCount 1: two deliveries, then the dead-letter queue.
	assert.Eventually(t, func() bool {
		deadDepth, err := pool.Store().Depth(ctx, pool.config.DeadLetterQueue())
		return err == nil && deadDepth == 1
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, 2, runner.jobCount(), "the released message is redelivered before dead-lettering")

	require.Len(t, runner.jobs, 2)
	assert.False(t, runner.jobs[0].FinalAttempt)
	assert.True(t, runner.jobs[1].FinalAttempt, "the last budgeted delivery is marked final")
}

func TestWorkerPool_PipelineErrorRetriesThenDeadLetters(t *testing.T) {
	runner := &fakeRunner{err: errors.New("database unavailable")}
	pool := newTestPool(t, runner, nil, nil)
	ctx := context.Background()

	_, err := pool.Store().Enqueue(ctx, EnqueueRequest{
		ProcessID: "proc-1",
		UserID:    "user@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	// MaxRetryCount 1: two attempts, then the dead-letter queue.
	assert.Eventually(t, func() bool {
		deadDepth, err := pool.Store().Depth(ctx, pool.config.DeadLetterQueue())
		return err == nil && deadDepth == 1
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, 2, runner.jobCount())
}

func TestWorkerPool_CancelProcess(t *testing.T) {
	runner := &fakeRunner{block: true}
	pool := newTestPool(t, runner, nil, nil)
	ctx := context.Background()

	_, err := pool.Store().Enqueue(ctx, EnqueueRequest{
		ProcessID: "proc-1",
		UserID:    "user@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	assert.Eventually(t, func() bool {
		return runner.jobCount() == 1
	}, 5*time.Second, 20*time.Millisecond, "job should be in flight")

	assert.False(t, pool.CancelProcess("unknown"), "unknown process is not cancellable on this pod")
	assert.True(t, pool.CancelProcess("proc-1"))

	// Cancellation surfaces as a pipeline error: the message is released
	// and redelivered.
	assert.Eventually(t, func() bool {
		return runner.jobCount() == 2
	}, 5*time.Second, 20*time.Millisecond)

	// Cancelling the retry exhausts the budget and dead-letters the message.
	assert.Eventually(t, func() bool {
		pool.CancelProcess("proc-1")
		deadDepth, err := pool.Store().Depth(ctx, pool.config.DeadLetterQueue())
		return err == nil && deadDepth == 1
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWorkerPool_Health(t *testing.T) {
	pool := newTestPool(t, &fakeRunner{}, nil, nil)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "test-pod", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 1)
}

func TestWorkerPool_StartIsIdempotent(t *testing.T) {
	pool := newTestPool(t, &fakeRunner{}, nil, nil)
	ctx := context.Background()

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()
	require.NoError(t, pool.Start(ctx))

	assert.Len(t, pool.workers, 1)
}
