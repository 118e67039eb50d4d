package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MigrationProcess holds the schema definition for the MigrationProcess entity.
// One record per migration job — this is the "processes" container of the
// telemetry store, keyed by process id.
type MigrationProcess struct {
	ent.Schema
}

// Fields of the MigrationProcess.
func (MigrationProcess) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("process_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Comment("Submitting user"),
		field.String("source_platform").
			Optional().
			Comment("Requested source platform (e.g., 'eks', 'gke')"),
		field.String("target_platform").
			Default("aks"),
		field.String("container_name").
			Optional(),
		field.String("source_folder").
			Default("source"),
		field.String("workspace_folder").
			Default("workspace"),
		field.String("output_folder").
			Default("converted"),
		field.Enum("phase").
			Values("initialization", "analysis", "design", "yaml", "documentation", "completed", "failed").
			Default("initialization"),
		field.Enum("status").
			Values("running", "completed", "failed", "under_review").
			Default("running"),
		field.String("current_step").
			Optional(),
		field.JSON("steps_completed", []string{}).
			Optional().
			Comment("Completed phase names, in execution order"),
		field.JSON("insights", []string{}).
			Optional().
			Comment("Accumulated expert insights (ordered, deduplicated)"),
		field.JSON("error_log", []string{}).
			Optional().
			Comment("Phase-prefixed errors (ordered, deduplicated)"),
		field.JSON("warning_log", []string{}).
			Optional().
			Comment("Phase-prefixed warnings (ordered, deduplicated)"),
		field.JSON("outcome", map[string]interface{}{}).
			Optional().
			Comment("Final outcome map, set by finalize"),
		field.JSON("generated_files", []string{}).
			Optional(),
		field.JSON("failure", map[string]interface{}{}).
			Optional().
			Comment("Step-failure record (system failure or hard termination)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("phase_started_at").
			Optional().
			Nillable().
			Comment("Start time of the current phase"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_update_time").
			Default(time.Now).
			Comment("Monotonic — writers compare-and-advance, never regress"),
	}
}

// Edges of the MigrationProcess.
func (MigrationProcess) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("phase_runs", PhaseRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_records", AgentRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the MigrationProcess.
func (MigrationProcess) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("phase"),
		index.Fields("status", "created_at"),
	}
}
