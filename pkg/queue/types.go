// Package queue provides the database-backed job queue and its worker pool.
// Messages are leased with a visibility timeout: a leased message stays in
// the table but is hidden until the lease expires or the holder acknowledges
// it, so a crashed worker's job simply becomes leasable again.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/cloudshift-ai/cloudshift/pkg/models"
	"github.com/cloudshift-ai/cloudshift/pkg/process"
)

// Sentinel errors for queue operations.
var (
	// ErrNoMessages indicates the queue has no leasable messages.
	ErrNoMessages = errors.New("no messages available")

	// ErrLeaseLost indicates the message's lease was taken over or the
	// message was removed while this holder was working.
	ErrLeaseLost = errors.New("message lease lost")
)

// JobRunner executes one migration job end to end. *process.Machine
// satisfies it.
//
// The runner owns the entire pipeline internally and persists all
// intermediate state through the telemetry store as it goes. The worker
// only handles leasing, the per-message timeout, and acknowledgement.
type JobRunner interface {
	Run(ctx context.Context, job *models.JobMessage) (*process.Outcome, error)
}

// LockReleaser drops per-process lock state once a job reaches a terminal
// state. *telemetry.Store satisfies it.
type LockReleaser interface {
	ReleaseProcess(processID string)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	QueueDepth      int            `json:"queue_depth"`
	DeadLetterDepth int            `json:"dead_letter_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "idle" or "working"
	CurrentProcessID string    `json:"current_process_id,omitempty"`
	JobsProcessed    int       `json:"jobs_processed"`
	LastActivity     time.Time `json:"last_activity"`
}
