package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	testdb "github.com/cloudshift-ai/cloudshift/test/database"
)

const testDeadLetterQueue = "migration-jobs-dead-letter"

func newTestService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := config.DefaultRetentionConfig()
	cfg.ProcessRetentionDays = 30
	cfg.DeadLetterRetentionDays = 7
	return NewService(cfg, client.Client, testDeadLetterQueue), client.Client
}

func createFinishedProcess(t *testing.T, client *ent.Client, status migrationprocess.Status, completedAt time.Time) string {
	t.Helper()
	ctx := context.Background()
	id := uuid.New().String()

	_, err := client.MigrationProcess.Create().
		SetID(id).
		SetUserID("user@example.com").
		SetStatus(status).
		SetCompletedAt(completedAt).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AgentRecord.Create().
		SetID(uuid.New().String()).
		SetProcessID(id).
		SetAgentName("ChiefArchitect").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PhaseRun.Create().
		SetID(uuid.New().String()).
		SetProcessID(id).
		SetPhaseName("analysis").
		SetPhaseIndex(1).
		SetAttempt(1).
		Save(ctx)
	require.NoError(t, err)

	return id
}

func TestPurgeFinishedProcesses(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	old := time.Now().UTC().AddDate(0, 0, -60)
	recent := time.Now().UTC().AddDate(0, 0, -1)

	expiredCompleted := createFinishedProcess(t, client, migrationprocess.StatusCompleted, old)
	expiredFailed := createFinishedProcess(t, client, migrationprocess.StatusFailed, old)
	recentCompleted := createFinishedProcess(t, client, migrationprocess.StatusCompleted, recent)

	// A long-running process has no completion time and must survive any
	// retention window.
	running, err := client.MigrationProcess.Create().
		SetID(uuid.New().String()).
		SetUserID("user@example.com").
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.MigrationProcess.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{recentCompleted, running.ID}, remaining)
	assert.NotContains(t, remaining, expiredCompleted)
	assert.NotContains(t, remaining, expiredFailed)

	// Child rows of purged processes are gone too.
	agents, err := client.AgentRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, agents)

	runs, err := client.PhaseRun.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, runs)
}

func TestPurgeDeadLetters(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createMessage := func(queueName string, enqueuedAt time.Time) string {
		id := uuid.New().String()
		_, err := client.QueueMessage.Create().
			SetID(id).
			SetQueueName(queueName).
			SetProcessID(uuid.New().String()).
			SetUserID("user@example.com").
			SetEnqueuedAt(enqueuedAt).
			Save(ctx)
		require.NoError(t, err)
		return id
	}

	old := time.Now().UTC().AddDate(0, 0, -14)
	expired := createMessage(testDeadLetterQueue, old)
	fresh := createMessage(testDeadLetterQueue, time.Now().UTC())
	// An old message still on the work queue is live backlog, not garbage.
	backlog := createMessage("migration-jobs", old)

	svc.runAll(ctx)

	remaining, err := client.QueueMessage.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{fresh, backlog}, remaining)
	assert.NotContains(t, remaining, expired)
}

func TestStartStop(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Start(context.Background())
	svc.Start(context.Background()) // duplicate Start is a no-op
	svc.Stop()
}
