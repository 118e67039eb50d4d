// Package e2e runs the full migration stack — queue, state machine, phase
// group chats, telemetry — against a real database and a scripted model.
package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/llm"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
	"github.com/cloudshift-ai/cloudshift/pkg/observer"
	"github.com/cloudshift-ai/cloudshift/pkg/phases"
	"github.com/cloudshift-ai/cloudshift/pkg/process"
	"github.com/cloudshift-ai/cloudshift/pkg/queue"
	"github.com/cloudshift-ai/cloudshift/pkg/telemetry"
	testdb "github.com/cloudshift-ai/cloudshift/test/database"
)

// scriptedModel replays completions in call order, repeating the last one.
type scriptedModel struct {
	mu        sync.Mutex
	responses []string
	calls     int
}

func (m *scriptedModel) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if len(m.responses) == 0 {
		return "continue", nil
	}
	resp := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return resp, nil
}

func pipelineConfig(t *testing.T) *config.Config {
	t.Helper()
	agents := map[string]*config.AgentConfig{
		"ChiefArchitect":  {Role: "migration lead"},
		"EKSExpert":       {Role: "EKS specialist", Tools: []string{"blob", "file"}},
		"AKSExpert":       {Role: "AKS specialist"},
		"YAMLConverter":   {Role: "manifest converter", Tools: []string{"file"}},
		"TechnicalWriter": {Role: "report author", Tools: []string{"file"}},
	}
	phaseCfg := func(roster ...string) *config.PhaseConfig {
		return &config.PhaseConfig{
			Roster:      roster,
			Manager:     "ChiefArchitect",
			MaxTurns:    10,
			MaxMessages: 40,
			PhaseRetry:  1,
		}
	}
	return &config.Config{
		AgentRegistry: config.NewAgentRegistry(agents),
		PhaseRegistry: config.NewPhaseRegistry(map[config.Phase]*config.PhaseConfig{
			config.PhaseAnalysis:      phaseCfg("ChiefArchitect", "EKSExpert"),
			config.PhaseDesign:        phaseCfg("ChiefArchitect", "AKSExpert"),
			config.PhaseYAML:          phaseCfg("ChiefArchitect", "YAMLConverter"),
			config.PhaseDocumentation: phaseCfg("ChiefArchitect", "TechnicalWriter"),
		}),
	}
}

const pipelineVerdict = `{"terminate": true, "reason": "phase complete", "kind": "soft_completion", "confidence": 0.95}`

func TestMigrationPipelineEndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Each phase runs one turn: selection, agent payload, verdict.
	model := &scriptedModel{responses: []string{
		"EKSExpert",
		`{"detected_platform": "EKS", "analyzed_files": ["deployment.yaml", "service.yaml"], "insights": ["workload uses IRSA"]}`,
		pipelineVerdict,

		"AKSExpert",
		`{"architecture": {"ingress": "agic", "identity": "workload-identity"}, "insights": ["map IRSA roles to workload identity"]}`,
		pipelineVerdict,

		"YAMLConverter",
		`{"converted_files": ["converted/deployment.yaml", "converted/service.yaml"]}`,
		pipelineVerdict,

		"TechnicalWriter",
		`{"summary": "Workloads converted and validated for AKS.", "report_path": "converted/MIGRATION.md"}`,
		pipelineVerdict,
	}}

	store := telemetry.NewStore(client.Client)
	steps := process.NewPipeline(phases.Dependencies{
		Config:      pipelineConfig(t),
		Telemetry:   store,
		LLM:         model,
		Observers:   []agent.Observer{observer.NewActivity(store), observer.New(store)},
		Concurrency: 1,
	})
	machine, err := process.New(store, steps)
	require.NoError(t, err)

	dispatcher := config.DefaultDispatcherConfig()
	dispatcher.WorkerCount = 1
	dispatcher.PollInterval = 20 * time.Millisecond
	dispatcher.VisibilityTimeout = time.Minute
	dispatcher.MessageTimeout = 30 * time.Second
	dispatcher.GracefulShutdownTimeout = 10 * time.Second

	pool := queue.NewWorkerPool("e2e-pod", client.Client, dispatcher, machine, store)
	_, err = pool.Store().Enqueue(ctx, queue.EnqueueRequest{
		ProcessID: "proc-e2e-1",
		UserID:    "user@example.com",
		MigrationRequest: &models.MigrationRequest{
			ContainerName: "migrations",
		},
	})
	require.NoError(t, err)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		snapshot, err := store.Snapshot(ctx, "proc-e2e-1")
		return err == nil && snapshot.Status == "completed"
	}, 15*time.Second, 50*time.Millisecond, "process should run to completion")

	snapshot, err := store.Snapshot(ctx, "proc-e2e-1")
	require.NoError(t, err)

	assert.Equal(t, "completed", snapshot.Phase)
	assert.Equal(t,
		[]string{"analysis", "design", "yaml", "documentation"},
		snapshot.StepsCompleted)
	assert.Contains(t, snapshot.Insights, "workload uses IRSA")

	assert.Equal(t, "eks", snapshot.Outcome["detected_platform"])
	assert.Equal(t, "Workloads converted and validated for AKS.", snapshot.Outcome["summary"])
	assert.ElementsMatch(t, []string{
		"converted/MIGRATION.md",
		"converted/deployment.yaml",
		"converted/service.yaml",
	}, snapshot.GeneratedFiles)

	// Every speaker left an agent record; only the last one still holds
	// the speaking flag.
	agents := make(map[string]models.AgentSnapshot, len(snapshot.Agents))
	for _, a := range snapshot.Agents {
		agents[a.Name] = a
	}
	require.Len(t, agents, 4)
	assert.True(t, agents["TechnicalWriter"].IsSpeaking, "the final speaker keeps the flag")
	assert.False(t, agents["EKSExpert"].IsSpeaking)
	assert.False(t, agents["YAMLConverter"].IsSpeaking)
	assert.Contains(t, agents["TechnicalWriter"].LastMessagePreview, "MIGRATION.md")
	assert.Equal(t, "speaking", agents["AKSExpert"].CurrentAction)

	runs, err := client.PhaseRun.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 4)
	for _, run := range runs {
		assert.Equal(t, phaserun.StatusCompleted, run.Status)
		assert.Equal(t, 1, run.Attempt)
	}

	// The message was acknowledged.
	depth, err := pool.Store().Depth(ctx, dispatcher.QueueName)
	require.NoError(t, err)
	assert.Zero(t, depth)
}

func TestReDispatchOfCompletedProcessIsNoOp(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	store := telemetry.NewStore(client.Client)
	_, err := store.CreateProcess(ctx, models.CreateProcessRequest{
		ProcessID: "proc-done",
		UserID:    "user@example.com",
		Step:      "analysis",
		Phase:     "initialization",
	})
	require.NoError(t, err)
	require.NoError(t, store.Finalize(ctx, "proc-done", true, map[string]any{"summary": "done"}, nil))

	model := &scriptedModel{}
	machine, err := process.New(store, process.NewPipeline(phases.Dependencies{
		Config:    pipelineConfig(t),
		Telemetry: store,
		LLM:       model,
	}))
	require.NoError(t, err)

	dispatcher := config.DefaultDispatcherConfig()
	dispatcher.WorkerCount = 1
	dispatcher.PollInterval = 20 * time.Millisecond

	pool := queue.NewWorkerPool("e2e-pod", client.Client, dispatcher, machine, store)
	_, err = pool.Store().Enqueue(ctx, queue.EnqueueRequest{
		ProcessID: "proc-done",
		UserID:    "user@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		depth, err := pool.Store().Depth(ctx, dispatcher.QueueName)
		return err == nil && depth == 0
	}, 10*time.Second, 50*time.Millisecond, "re-dispatched message is acknowledged without rerunning")

	model.mu.Lock()
	defer model.mu.Unlock()
	assert.Zero(t, model.calls, "no model calls were made")

	snapshot, err := store.Snapshot(ctx, "proc-done")
	require.NoError(t, err)
	assert.Equal(t, "completed", snapshot.Status)
	assert.Equal(t, "done", snapshot.Outcome["summary"])
}
