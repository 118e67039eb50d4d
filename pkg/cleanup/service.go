// Package cleanup provides data retention for finished process telemetry
// and dead-lettered queue messages.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/ent/agentrecord"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/ent/queuemessage"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes finished processes past the retention window, together with
//     their phase runs and agent records
//   - Deletes dead-lettered messages past their inspection window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config          *config.RetentionConfig
	client          *ent.Client
	deadLetterQueue string

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, deadLetterQueue string) *Service {
	return &Service{
		config:          cfg,
		client:          client,
		deadLetterQueue: deadLetterQueue,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"process_retention_days", s.config.ProcessRetentionDays,
		"dead_letter_retention_days", s.config.DeadLetterRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeFinishedProcesses(ctx)
	s.purgeDeadLetters(ctx)
}

// purgeFinishedProcesses deletes completed and failed processes whose
// completion time is past the retention window. Agent records and phase
// runs go first so a mid-sweep failure never strands child rows.
func (s *Service) purgeFinishedProcesses(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.ProcessRetentionDays)

	expired, err := s.client.MigrationProcess.Query().
		Where(
			migrationprocess.StatusIn(migrationprocess.StatusCompleted, migrationprocess.StatusFailed),
			migrationprocess.CompletedAtNotNil(),
			migrationprocess.CompletedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		slog.Error("Retention: expired process query failed", "error", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	if _, err := s.client.AgentRecord.Delete().
		Where(agentrecord.ProcessIDIn(expired...)).
		Exec(ctx); err != nil {
		slog.Error("Retention: agent record purge failed", "error", err)
		return
	}
	if _, err := s.client.PhaseRun.Delete().
		Where(phaserun.ProcessIDIn(expired...)).
		Exec(ctx); err != nil {
		slog.Error("Retention: phase run purge failed", "error", err)
		return
	}
	count, err := s.client.MigrationProcess.Delete().
		Where(migrationprocess.IDIn(expired...)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: process purge failed", "error", err)
		return
	}

	slog.Info("Retention: purged finished processes", "count", count)
}

// purgeDeadLetters deletes dead-lettered messages past their window.
func (s *Service) purgeDeadLetters(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.DeadLetterRetentionDays)

	count, err := s.client.QueueMessage.Delete().
		Where(
			queuemessage.QueueNameEQ(s.deadLetterQueue),
			queuemessage.EnqueuedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: dead-letter purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged dead letters", "count", count)
	}
}
