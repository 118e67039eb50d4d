package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
	testdb "github.com/cloudshift-ai/cloudshift/test/database"
)

func newTestStore(t *testing.T, mutate func(*config.DispatcherConfig)) *Store {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := config.DefaultDispatcherConfig()
	cfg.VisibilityTimeout = time.Minute
	cfg.MaxRetryCount = 1
	if mutate != nil {
		mutate(cfg)
	}
	return NewStore(client.Client, cfg)
}

func enqueueTestJob(t *testing.T, store *Store) string {
	t.Helper()
	processID := uuid.New().String()
	_, err := store.Enqueue(context.Background(), EnqueueRequest{
		ProcessID: processID,
		UserID:    "user@example.com",
	})
	require.NoError(t, err)
	return processID
}

func TestStore_EnqueueAndLease(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	processID := enqueueTestJob(t, store)

	msg, err := store.Lease(ctx)
	require.NoError(t, err)
	assert.Equal(t, processID, msg.ProcessID)
	assert.Equal(t, 1, msg.DequeueCount)
	require.NotNil(t, msg.LeaseID)
	assert.True(t, msg.VisibleAt.After(time.Now()), "leased message must be hidden")

	// The leased message is invisible to other workers.
	_, err = store.Lease(ctx)
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestStore_LeaseIsFIFO(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	first := enqueueTestJob(t, store)
	second := enqueueTestJob(t, store)

	msg, err := store.Lease(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, msg.ProcessID)

	msg, err = store.Lease(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, msg.ProcessID)
}

func TestStore_LeaseEmptyQueue(t *testing.T) {
	store := newTestStore(t, nil)

	_, err := store.Lease(context.Background())
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestStore_Ack(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	enqueueTestJob(t, store)
	msg, err := store.Lease(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Ack(ctx, msg))

	depth, err := store.Depth(ctx, store.cfg.QueueName)
	require.NoError(t, err)
	assert.Zero(t, depth)

	// A second ack finds nothing: the lease is gone with the message.
	assert.ErrorIs(t, store.Ack(ctx, msg), ErrLeaseLost)
}

func TestStore_AckAfterReLease(t *testing.T) {
	store := newTestStore(t, func(cfg *config.DispatcherConfig) {
		cfg.VisibilityTimeout = time.Millisecond
		cfg.MaxRetryCount = 5
	})
	ctx := context.Background()

	enqueueTestJob(t, store)
	stale, err := store.Lease(ctx)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	fresh, err := store.Lease(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.DequeueCount)

	// The expired holder cannot ack the re-leased message.
	assert.ErrorIs(t, store.Ack(ctx, stale), ErrLeaseLost)
	require.NoError(t, store.Ack(ctx, fresh))
}

func TestStore_ReleaseMakesMessageVisible(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	processID := enqueueTestJob(t, store)
	msg, err := store.Lease(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Release(ctx, msg, "transient failure"))

	msg, err = store.Lease(ctx)
	require.NoError(t, err)
	assert.Equal(t, processID, msg.ProcessID)
	assert.Equal(t, 2, msg.DequeueCount)
}

func TestStore_ReleaseExhaustedGoesToDeadLetter(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	enqueueTestJob(t, store)

	// MaxRetryCount is 1: the second failed attempt exhausts the budget.
	msg, err := store.Lease(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, msg, "attempt 1 failed"))

	msg, err = store.Lease(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, msg, "attempt 2 failed"))

	_, err = store.Lease(ctx)
	assert.ErrorIs(t, err, ErrNoMessages, "exhausted message leaves the work queue")

	deadDepth, err := store.Depth(ctx, store.cfg.DeadLetterQueue())
	require.NoError(t, err)
	assert.Equal(t, 1, deadDepth)

	dead, err := store.client.QueueMessage.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.cfg.DeadLetterQueue(), dead.QueueName)
	require.NotNil(t, dead.FailureSummary)
	assert.Equal(t, "attempt 2 failed", *dead.FailureSummary)
	assert.Nil(t, dead.LeaseID)
}

func TestStore_DeadLetterPoisonMessage(t *testing.T) {
	store := newTestStore(t, func(cfg *config.DispatcherConfig) {
		cfg.MaxRetryCount = 10
	})
	ctx := context.Background()

	enqueueTestJob(t, store)
	msg, err := store.Lease(ctx)
	require.NoError(t, err)

	// Bypasses the remaining retry budget.
	require.NoError(t, store.DeadLetter(ctx, msg, "unparseable body"))

	_, err = store.Lease(ctx)
	assert.ErrorIs(t, err, ErrNoMessages)

	deadDepth, err := store.Depth(ctx, store.cfg.DeadLetterQueue())
	require.NoError(t, err)
	assert.Equal(t, 1, deadDepth)
}

func TestStore_ReclaimExpiredLeases(t *testing.T) {
	store := newTestStore(t, func(cfg *config.DispatcherConfig) {
		cfg.VisibilityTimeout = time.Millisecond
	})
	ctx := context.Background()

	enqueueTestJob(t, store)
	_, err := store.Lease(ctx)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	reclaimed, err := store.ReclaimExpiredLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reclaimed)

	msg, err := store.Lease(ctx)
	require.NoError(t, err)
	assert.Nil(t, msg.FailureSummary)
}

func TestJobFromMessage(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	_, err := store.Enqueue(ctx, EnqueueRequest{
		ProcessID: "proc-1",
		UserID:    "user@example.com",
		MigrationRequest: &models.MigrationRequest{
			ContainerName: "migrations",
			SourceFolder:  "manifests",
		},
	})
	require.NoError(t, err)

	msg, err := store.Lease(ctx)
	require.NoError(t, err)

	job, err := store.JobFromMessage(msg)
	require.NoError(t, err)
	assert.Equal(t, "proc-1", job.ProcessID)
	assert.Equal(t, "user@example.com", job.UserID)
	assert.Equal(t, 1, job.DequeueCount)
	assert.False(t, job.FinalAttempt, "one retry remains in the budget")
	require.NotNil(t, job.MigrationRequest)
	assert.Equal(t, "migrations", job.MigrationRequest.ContainerName)
	assert.Equal(t, "manifests", job.MigrationRequest.SourceFolder)
}

func TestStore_EnqueueValidation(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	_, err := store.Enqueue(ctx, EnqueueRequest{UserID: "user@example.com"})
	assert.Error(t, err)

	_, err = store.Enqueue(ctx, EnqueueRequest{ProcessID: "proc-1"})
	assert.Error(t, err)
}
