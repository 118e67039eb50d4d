package groupchat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
)

// stubAgent replies with canned content, or fails.
type stubAgent struct {
	name    string
	reply   string
	err     error
	invoked int
}

func (s *stubAgent) Name() string { return s.name }

func (s *stubAgent) Invoke(ctx context.Context, conversation []agent.Message) (agent.Message, error) {
	s.invoked++
	if s.err != nil {
		return agent.Message{}, s.err
	}
	if err := ctx.Err(); err != nil {
		return agent.Message{}, err
	}
	return agent.Message{
		Role:      agent.RoleAssistant,
		AgentName: s.name,
		Content:   fmt.Sprintf("%s: %s", s.name, s.reply),
	}, nil
}

type recordingObserver struct {
	seen []agent.Message
}

func (r *recordingObserver) ObserveMessage(_ context.Context, _ string, msg agent.Message) {
	r.seen = append(r.seen, msg)
}

// scriptedManager replays selection names and termination verdicts in order.
func scriptedManager(selections []string, verdicts []*agent.TerminationResult) Manager {
	selIdx, verIdx := 0, 0
	return Manager{
		Name: "ChiefArchitect",
		Selection: func(context.Context, []agent.Message, []string) (string, error) {
			name := selections[selIdx%len(selections)]
			selIdx++
			return name, nil
		},
		Termination: func(context.Context, []agent.Message) (*agent.TerminationResult, error) {
			v := verdicts[verIdx%len(verdicts)]
			verIdx++
			return v, nil
		},
	}
}

func softCompletion(reason string) *agent.TerminationResult {
	return &agent.TerminationResult{
		Terminate:  true,
		Reason:     reason,
		Kind:       agent.TerminationSoftCompletion,
		Confidence: 0.9,
	}
}

func defaultConfig() Config {
	return Config{Step: "analysis", MaxTurns: 10, MaxMessages: 40}
}

func TestRunTerminatesOnSoftCompletion(t *testing.T) {
	eks := &stubAgent{name: "EKSExpert", reply: "platform is EKS"}
	chief := &stubAgent{name: "ChiefArchitect", reply: "analysis complete"}

	manager := scriptedManager(
		[]string{"EKSExpert", "ChiefArchitect"},
		[]*agent.TerminationResult{agent.Continue(), softCompletion("analysis finished")},
	)

	rt, err := New(defaultConfig(), manager, []agent.Agent{chief, eks})
	require.NoError(t, err)

	result, err := rt.Run(context.Background(), "proc-1", []agent.Message{
		{Role: agent.RoleUser, Content: "Analyze the workload"},
	})
	require.NoError(t, err)

	assert.True(t, result.Termination.SuccessfulCompletion())
	assert.Equal(t, 2, result.Turns)
	require.Len(t, result.Messages, 3, "seed plus two agent turns")
	assert.Equal(t, "EKSExpert", result.Messages[1].AgentName)
	assert.Equal(t, "ChiefArchitect", result.Messages[2].AgentName)
	assert.Equal(t, 1, eks.invoked)
	assert.Equal(t, 1, chief.invoked)
}

func TestRunTurnCapIsHardTimeout(t *testing.T) {
	a := &stubAgent{name: "YAMLConverter", reply: "still converting"}
	manager := scriptedManager([]string{"YAMLConverter"}, []*agent.TerminationResult{agent.Continue()})

	cfg := defaultConfig()
	cfg.MaxTurns = 3
	rt, err := New(cfg, manager, []agent.Agent{a})
	require.NoError(t, err)

	result, err := rt.Run(context.Background(), "proc-1", nil)
	require.NoError(t, err)

	assert.Equal(t, agent.TerminationHardTimeout, result.Termination.Kind)
	assert.True(t, result.Termination.BlockingTermination())
	assert.True(t, result.Termination.ShouldRetry())
	assert.Equal(t, 3, result.Turns)
	assert.Len(t, result.Messages, 3)
}

func TestRunMessageCapIsHardResourceLimit(t *testing.T) {
	a := &stubAgent{name: "QAEngineer", reply: "more findings"}
	manager := scriptedManager([]string{"QAEngineer"}, []*agent.TerminationResult{agent.Continue()})

	cfg := defaultConfig()
	cfg.MaxMessages = 2
	rt, err := New(cfg, manager, []agent.Agent{a})
	require.NoError(t, err)

	seed := []agent.Message{
		{Role: agent.RoleUser, Content: "review"},
		{Role: agent.RoleUser, Content: "the manifests"},
	}
	result, err := rt.Run(context.Background(), "proc-1", seed)
	require.NoError(t, err)

	assert.Equal(t, agent.TerminationHardResourceLimit, result.Termination.Kind)
	assert.Len(t, result.Messages, 3, "the offending message stays in the transcript")
}

func TestRunHonorsCancellationAtTurnBoundary(t *testing.T) {
	a := &stubAgent{name: "AKSExpert", reply: "designing"}
	manager := scriptedManager([]string{"AKSExpert"}, []*agent.TerminationResult{agent.Continue()})

	rt, err := New(defaultConfig(), manager, []agent.Agent{a})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := rt.Run(ctx, "proc-1", []agent.Message{{Role: agent.RoleUser, Content: "design"}})
	require.NoError(t, err)

	assert.Equal(t, agent.TerminationHardTimeout, result.Termination.Kind)
	assert.Len(t, result.Messages, 1, "partial transcript preserved")
	assert.Zero(t, a.invoked)
}

func TestRunAgentCancellationMidTurn(t *testing.T) {
	a := &stubAgent{name: "AKSExpert", err: context.DeadlineExceeded}
	manager := scriptedManager([]string{"AKSExpert"}, []*agent.TerminationResult{agent.Continue()})

	rt, err := New(defaultConfig(), manager, []agent.Agent{a})
	require.NoError(t, err)

	result, err := rt.Run(context.Background(), "proc-1", nil)
	require.NoError(t, err)
	assert.Equal(t, agent.TerminationHardTimeout, result.Termination.Kind)
}

func TestRunAgentInfrastructureFailure(t *testing.T) {
	a := &stubAgent{name: "AKSExpert", err: errors.New("model endpoint unreachable")}
	manager := scriptedManager([]string{"AKSExpert"}, []*agent.TerminationResult{agent.Continue()})

	rt, err := New(defaultConfig(), manager, []agent.Agent{a})
	require.NoError(t, err)

	_, err = rt.Run(context.Background(), "proc-1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AKSExpert")
}

func TestRunTerminalWordFallsBackToFirstAgent(t *testing.T) {
	first := &stubAgent{name: "ChiefArchitect", reply: "taking over"}
	second := &stubAgent{name: "EKSExpert", reply: "unused"}

	manager := scriptedManager([]string{"TERMINATE"}, []*agent.TerminationResult{softCompletion("done")})

	rt, err := New(defaultConfig(), manager, []agent.Agent{first, second})
	require.NoError(t, err)

	result, err := rt.Run(context.Background(), "proc-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.invoked)
	assert.Zero(t, second.invoked)
	assert.Equal(t, "ChiefArchitect", result.Messages[0].AgentName)
}

func TestRunOffRosterSelectionFallsBackToFirstAgent(t *testing.T) {
	chief := &stubAgent{name: "ChiefArchitect", reply: "taking the turn"}
	manager := scriptedManager(
		[]string{`{"result": "GhostAgent", "reason": "invented by the model"}`},
		[]*agent.TerminationResult{softCompletion("done")},
	)

	rt, err := New(defaultConfig(), manager, []agent.Agent{chief})
	require.NoError(t, err)

	result, err := rt.Run(context.Background(), "proc-1", []agent.Message{
		{Role: agent.RoleUser, Content: "Analyze the workload"},
	})
	require.NoError(t, err)

	assert.True(t, result.Termination.SuccessfulCompletion())
	assert.Equal(t, 1, chief.invoked, "the fallback speaker takes the turn")
}

func TestRunTerminationRuleFailuresFavorContinuation(t *testing.T) {
	a := &stubAgent{name: "TechnicalWriter", reply: "writing"}
	calls := 0
	manager := Manager{
		Name:      "ChiefArchitect",
		Selection: func(context.Context, []agent.Message, []string) (string, error) { return "TechnicalWriter", nil },
		Termination: func(context.Context, []agent.Message) (*agent.TerminationResult, error) {
			calls++
			switch calls {
			case 1:
				return nil, errors.New("judge unavailable")
			case 2:
				// Invalid: hard termination without blocking issues.
				return &agent.TerminationResult{
					Terminate:  true,
					Reason:     "broken",
					Hard:       true,
					Kind:       agent.TerminationHardError,
					Confidence: 2.0,
				}, nil
			default:
				return softCompletion("documentation ready"), nil
			}
		},
	}

	rt, err := New(defaultConfig(), manager, []agent.Agent{a})
	require.NoError(t, err)

	result, err := rt.Run(context.Background(), "proc-1", nil)
	require.NoError(t, err)
	assert.True(t, result.Termination.SuccessfulCompletion())
	assert.Equal(t, 3, result.Turns)
}

func TestRunObserversSeeEveryMessage(t *testing.T) {
	a := &stubAgent{name: "EKSExpert", reply: "observing"}
	obs := &recordingObserver{}
	manager := scriptedManager([]string{"EKSExpert"}, []*agent.TerminationResult{
		agent.Continue(), agent.Continue(), softCompletion("enough"),
	})

	rt, err := New(defaultConfig(), manager, []agent.Agent{a}, obs)
	require.NoError(t, err)

	_, err = rt.Run(context.Background(), "proc-1", nil)
	require.NoError(t, err)
	assert.Len(t, obs.seen, 3)
	for _, msg := range obs.seen {
		assert.Equal(t, "EKSExpert", msg.AgentName)
	}
}

func TestNewValidatesInputs(t *testing.T) {
	a := &stubAgent{name: "EKSExpert"}
	manager := scriptedManager([]string{"EKSExpert"}, []*agent.TerminationResult{agent.Continue()})

	_, err := New(defaultConfig(), manager, nil)
	assert.Error(t, err, "empty roster")

	cfg := defaultConfig()
	cfg.MaxTurns = 0
	_, err = New(cfg, manager, []agent.Agent{a})
	assert.Error(t, err)

	cfg = defaultConfig()
	cfg.MaxMessages = 0
	_, err = New(cfg, manager, []agent.Agent{a})
	assert.Error(t, err)

	_, err = New(defaultConfig(), Manager{}, []agent.Agent{a})
	assert.Error(t, err, "missing rules")

	_, err = New(defaultConfig(), manager, []agent.Agent{a, &stubAgent{name: "EKSExpert"}})
	assert.Error(t, err, "duplicate roster names")
}
