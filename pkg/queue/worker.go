package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/process"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that leases and processes job messages.
type Worker struct {
	id       string
	podID    string
	store    *Store
	config   *config.DispatcherConfig
	runner   JobRunner
	locks    LockReleaser
	pool     ProcessRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu               sync.RWMutex
	status           WorkerStatus
	currentProcessID string
	jobsProcessed    int
	lastActivity     time.Time
}

// ProcessRegistry is the subset of WorkerPool used by Worker for
// cancellation registration.
type ProcessRegistry interface {
	RegisterProcess(processID string, cancel context.CancelFunc)
	UnregisterProcess(processID string)
}

// NewWorker creates a new queue worker. locks may be nil.
func NewWorker(id, podID string, store *Store, cfg *config.DispatcherConfig, runner JobRunner, pool ProcessRegistry, locks LockReleaser) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		store:        store,
		config:       cfg,
		runner:       runner,
		locks:        locks,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           string(w.status),
		CurrentProcessID: w.currentProcessID,
		JobsProcessed:    w.jobsProcessed,
		LastActivity:     w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoMessages) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing message", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess leases one message, runs the migration pipeline on it, and
// settles the message according to the outcome.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	msg, err := w.store.Lease(ctx)
	if err != nil {
		return err
	}

	log := slog.With("message_id", msg.ID, "process_id", msg.ProcessID, "worker_id", w.id)
	log.Info("Message leased", "dequeue_count", msg.DequeueCount)

	// Settlement uses a background context: the message context may be
	// cancelled or expired by the time the pipeline returns.
	settleCtx, cancelSettle := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelSettle()

	job, err := w.store.JobFromMessage(msg)
	if err != nil {
		// Poison message: it can never parse, so retrying is pointless.
		log.Error("Dead-lettering unparseable message", "error", err)
		if dlErr := w.store.DeadLetter(settleCtx, msg, err.Error()); dlErr != nil {
			return fmt.Errorf("failed to dead-letter poison message: %w", dlErr)
		}
		return nil
	}

	w.setStatus(WorkerStatusWorking, job.ProcessID)
	defer w.setStatus(WorkerStatusIdle, "")

	msgCtx, cancelMsg := context.WithTimeout(ctx, w.config.MessageTimeout)
	defer cancelMsg()

	w.pool.RegisterProcess(job.ProcessID, cancelMsg)
	defer w.pool.UnregisterProcess(job.ProcessID)

	outcome, err := w.runner.Run(msgCtx, job)
	if w.locks != nil {
		w.locks.ReleaseProcess(job.ProcessID)
	}

	if err != nil {
		// The pipeline failed before reaching a terminal process state
		// (store outage, setup failure). The message goes back for
		// another attempt or to the dead-letter queue.
		log.Error("Pipeline failed, releasing message", "error", err)
		if relErr := w.store.Release(settleCtx, msg, err.Error()); relErr != nil {
			return fmt.Errorf("failed to release message: %w", relErr)
		}
		return nil
	}

	if err := w.settle(settleCtx, msg, outcome, log); err != nil {
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Message processing complete",
		"succeeded", outcome.Succeeded,
		"already_completed", outcome.AlreadyCompleted,
		"failed_phase", outcome.FailedPhase)
	return nil
}

// settle routes the leased message by its pipeline outcome: retryable
// failures go back to the queue, finalized failures move to the dead-letter
// queue with the failure summary, and everything else — completed, or an
// idempotent re-dispatch of a finished process — is acknowledged.
func (w *Worker) settle(ctx context.Context, msg *ent.QueueMessage, outcome *process.Outcome, log *slog.Logger) error {
	switch {
	case outcome.Retry:
		log.Warn("Phase failed with a retryable termination, releasing message",
			"failed_phase", outcome.FailedPhase)
		if err := w.store.Release(ctx, msg, outcome.FailureSummary()); err != nil {
			if errors.Is(err, ErrLeaseLost) {
				log.Warn("Lease expired during processing; message was re-leased elsewhere")
				return nil
			}
			return fmt.Errorf("failed to release message: %w", err)
		}
	case outcome.Failure != nil:
		log.Error("Process failed, dead-lettering message",
			"failed_phase", outcome.FailedPhase)
		if err := w.store.DeadLetter(ctx, msg, outcome.FailureSummary()); err != nil {
			if errors.Is(err, ErrLeaseLost) {
				log.Warn("Lease expired during processing; message was re-leased elsewhere")
				return nil
			}
			return fmt.Errorf("failed to dead-letter message: %w", err)
		}
	default:
		if err := w.store.Ack(ctx, msg); err != nil {
			if errors.Is(err, ErrLeaseLost) {
				log.Warn("Lease expired during processing; message was re-leased elsewhere")
				return nil
			}
			return fmt.Errorf("failed to acknowledge message: %w", err)
		}
	}
	return nil
}

// pollInterval returns the poll duration with ±20% jitter so replicas do
// not poll in lockstep.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := base / 5
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, processID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentProcessID = processID
	w.lastActivity = time.Now()
}
