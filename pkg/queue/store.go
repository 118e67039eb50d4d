package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/ent/queuemessage"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

// Store is the database-backed queue. All operations are safe across
// replicas: leasing uses FOR UPDATE SKIP LOCKED, and acknowledgement and
// release are guarded by the lease ID so an expired holder cannot clobber
// a message that was re-leased elsewhere.
type Store struct {
	client *ent.Client
	cfg    *config.DispatcherConfig
}

// NewStore creates a queue store over the given client.
func NewStore(client *ent.Client, cfg *config.DispatcherConfig) *Store {
	return &Store{client: client, cfg: cfg}
}

// EnqueueRequest describes a job to enqueue.
type EnqueueRequest struct {
	ProcessID        string
	UserID           string
	MigrationRequest *models.MigrationRequest
}

// Enqueue inserts an immediately visible message on the configured queue.
func (s *Store) Enqueue(ctx context.Context, req EnqueueRequest) (*ent.QueueMessage, error) {
	if req.ProcessID == "" {
		return nil, fmt.Errorf("process ID is required")
	}
	if req.UserID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	create := s.client.QueueMessage.Create().
		SetID(uuid.New().String()).
		SetQueueName(s.cfg.QueueName).
		SetProcessID(req.ProcessID).
		SetUserID(req.UserID)

	if req.MigrationRequest != nil {
		folders, err := toMap(req.MigrationRequest)
		if err != nil {
			return nil, fmt.Errorf("failed to encode migration request: %w", err)
		}
		create = create.SetMigrationRequest(folders)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue message: %w", err)
	}
	return msg, nil
}

// Lease atomically claims the oldest visible message on the configured
// queue: the lease ID marks the holder, the visibility timeout hides the
// message from other workers, and the dequeue count advances for
// dead-letter accounting. Returns ErrNoMessages when the queue is drained.
func (s *Store) Lease(ctx context.Context) (*ent.QueueMessage, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	msg, err := tx.QueueMessage.Query().
		Where(
			queuemessage.QueueNameEQ(s.cfg.QueueName),
			queuemessage.VisibleAtLTE(now),
		).
		Order(ent.Asc(queuemessage.FieldEnqueuedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoMessages
		}
		return nil, fmt.Errorf("failed to query visible messages: %w", err)
	}

	msg, err = msg.Update().
		SetLeaseID(uuid.New().String()).
		SetVisibleAt(now.Add(s.cfg.VisibilityTimeout)).
		AddDequeueCount(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lease message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lease: %w", err)
	}
	return msg, nil
}

// Ack deletes a processed message. Returns ErrLeaseLost if the lease
// expired and another worker took the message over.
func (s *Store) Ack(ctx context.Context, msg *ent.QueueMessage) error {
	if msg.LeaseID == nil {
		return fmt.Errorf("message %s is not leased", msg.ID)
	}
	deleted, err := s.client.QueueMessage.Delete().
		Where(
			queuemessage.IDEQ(msg.ID),
			queuemessage.LeaseIDEQ(*msg.LeaseID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if deleted == 0 {
		return ErrLeaseLost
	}
	return nil
}

// Release returns a failed message to the queue. A message whose dequeue
// count has exceeded the retry budget moves to the dead-letter queue with
// the failure summary attached; otherwise it becomes immediately visible
// for another attempt.
func (s *Store) Release(ctx context.Context, msg *ent.QueueMessage, failureSummary string) error {
	if msg.DequeueCount > s.cfg.MaxRetryCount {
		return s.deadLetter(ctx, msg, failureSummary)
	}

	if msg.LeaseID == nil {
		return fmt.Errorf("message %s is not leased", msg.ID)
	}
	updated, err := s.client.QueueMessage.Update().
		Where(
			queuemessage.IDEQ(msg.ID),
			queuemessage.LeaseIDEQ(*msg.LeaseID),
		).
		SetVisibleAt(time.Now().UTC()).
		ClearLeaseID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release message: %w", err)
	}
	if updated == 0 {
		return ErrLeaseLost
	}
	return nil
}

// DeadLetter moves a message straight to the dead-letter queue regardless
// of its retry budget. Used for poison messages that can never succeed.
func (s *Store) DeadLetter(ctx context.Context, msg *ent.QueueMessage, failureSummary string) error {
	return s.deadLetter(ctx, msg, failureSummary)
}

func (s *Store) deadLetter(ctx context.Context, msg *ent.QueueMessage, failureSummary string) error {
	if msg.LeaseID == nil {
		return fmt.Errorf("message %s is not leased", msg.ID)
	}
	updated, err := s.client.QueueMessage.Update().
		Where(
			queuemessage.IDEQ(msg.ID),
			queuemessage.LeaseIDEQ(*msg.LeaseID),
		).
		SetQueueName(s.cfg.DeadLetterQueue()).
		SetFailureSummary(models.TruncatePreview(failureSummary)).
		SetVisibleAt(time.Now().UTC()).
		ClearLeaseID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to dead-letter message: %w", err)
	}
	if updated == 0 {
		return ErrLeaseLost
	}
	return nil
}

// Depth counts the visible messages on a queue.
func (s *Store) Depth(ctx context.Context, queueName string) (int, error) {
	return s.client.QueueMessage.Query().
		Where(
			queuemessage.QueueNameEQ(queueName),
			queuemessage.VisibleAtLTE(time.Now().UTC()),
		).
		Count(ctx)
}

// ReclaimExpiredLeases clears stale lease markers from messages whose
// visibility window has already passed. The messages are leasable either
// way; this keeps crashed-worker leftovers from looking in-flight.
func (s *Store) ReclaimExpiredLeases(ctx context.Context) (int, error) {
	reclaimed, err := s.client.QueueMessage.Update().
		Where(
			queuemessage.QueueNameEQ(s.cfg.QueueName),
			queuemessage.LeaseIDNotNil(),
			queuemessage.VisibleAtLTE(time.Now().UTC()),
		).
		ClearLeaseID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reclaim expired leases: %w", err)
	}
	return reclaimed, nil
}

// JobFromMessage decodes the job payload carried by a queue message and
// attaches the delivery metadata the pipeline uses for retry decisions.
func (s *Store) JobFromMessage(msg *ent.QueueMessage) (*models.JobMessage, error) {
	job := &models.JobMessage{
		ProcessID:    msg.ProcessID,
		UserID:       msg.UserID,
		DequeueCount: msg.DequeueCount,
		FinalAttempt: msg.DequeueCount > s.cfg.MaxRetryCount,
	}
	if job.ProcessID == "" {
		return nil, fmt.Errorf("message %s missing process ID", msg.ID)
	}
	if job.UserID == "" {
		return nil, fmt.Errorf("message %s missing user ID", msg.ID)
	}
	if len(msg.MigrationRequest) > 0 {
		var req models.MigrationRequest
		if err := fromMap(msg.MigrationRequest, &req); err != nil {
			return nil, fmt.Errorf("message %s carries a malformed migration request: %w", msg.ID, err)
		}
		job.MigrationRequest = &req
	}
	return job, nil
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromMap(m map[string]any, v any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
