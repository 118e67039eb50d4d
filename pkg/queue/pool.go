package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID   string
	store   *Store
	config  *config.DispatcherConfig
	runner  JobRunner
	locks   LockReleaser
	workers []*Worker

	// Process cancel registry: process_id → cancel function
	activeProcesses map[string]context.CancelFunc
	mu              sync.RWMutex
	started         bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new worker pool. locks may be nil.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.DispatcherConfig, runner JobRunner, locks LockReleaser) *WorkerPool {
	return &WorkerPool{
		podID:           podID,
		store:           NewStore(client, cfg),
		config:          cfg,
		runner:          runner,
		locks:           locks,
		workers:         make([]*Worker, 0, cfg.WorkerCount),
		activeProcesses: make(map[string]context.CancelFunc),
		stopCh:          make(chan struct{}),
	}
}

// Store exposes the pool's queue store for enqueueing.
func (p *WorkerPool) Store() *Store {
	return p.store
}

// Start sweeps stale leases left by a previous run of this deployment and
// spawns the worker goroutines. It is safe to call multiple times;
// subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	reclaimed, err := p.store.ReclaimExpiredLeases(ctx)
	if err != nil {
		return fmt.Errorf("startup lease sweep failed: %w", err)
	}
	if reclaimed > 0 {
		slog.Warn("Reclaimed expired leases from previous run",
			"pod_id", p.podID,
			"count", reclaimed)
	}

	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"queue", p.config.QueueName,
		"worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.store, p.config, p.runner, p, p.locks)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runLeaseSweep(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// runLeaseSweep periodically returns expired leases to visible. All pods
// run this independently — the sweep is idempotent.
func (p *WorkerPool) runLeaseSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			reclaimed, err := p.store.ReclaimExpiredLeases(ctx)
			if err != nil {
				slog.Error("Lease sweep failed", "error", err)
				continue
			}
			if reclaimed > 0 {
				slog.Warn("Reclaimed expired leases", "count", reclaimed)
			}
		}
	}
}

// Stop signals all workers to stop and waits up to the graceful-shutdown
// timeout for in-flight jobs to finish. Jobs still running after the
// deadline keep their lease until it expires and are then re-leased.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveProcessIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active jobs to complete",
			"count", len(active),
			"process_ids", active)
	}

	p.stopOnce.Do(func() { close(p.stopCh) })

	done := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.Stop()
		}
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-time.After(p.config.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timed out; in-flight leases will expire and be re-leased",
			"timeout", p.config.GracefulShutdownTimeout)
	}
}

// RegisterProcess stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterProcess(processID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeProcesses[processID] = cancel
}

// UnregisterProcess removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterProcess(processID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeProcesses, processID)
}

// CancelProcess triggers context cancellation for a process on this pod.
// Returns true if the process was found and cancelled on this pod.
func (p *WorkerPool) CancelProcess(processID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeProcesses[processID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.store.Depth(ctx, p.config.QueueName)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	deadLetterDepth, errD := p.store.Depth(ctx, p.config.DeadLetterQueue())
	if errD != nil {
		slog.Error("Failed to query dead-letter depth for health check",
			"pod_id", p.podID,
			"error", errD)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errD == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("dead-letter depth query failed: %v", errD)
		}
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		QueueDepth:      queueDepth,
		DeadLetterDepth: deadLetterDepth,
		WorkerStats:     workerStats,
	}
}

// getActiveProcessIDs returns IDs of currently processing jobs (for logging).
func (p *WorkerPool) getActiveProcessIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	processes := make([]string, 0, len(p.activeProcesses))
	for id := range p.activeProcesses {
		processes = append(processes, id)
	}
	return processes
}
