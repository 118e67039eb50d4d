package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhaseRun holds the schema definition for the PhaseRun entity.
// One record per phase attempt within a migration process.
type PhaseRun struct {
	ent.Schema
}

// Fields of the PhaseRun.
func (PhaseRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("phase_run_id").
			Unique().
			Immutable(),
		field.String("process_id").
			Immutable(),
		field.String("phase_name").
			Comment("analysis, design, yaml, documentation"),
		field.Int("phase_index").
			Comment("Position in the pipeline: 1-based"),
		field.Int("attempt").
			Default(1).
			Comment("1 for first execution, incremented on phase retry"),
		field.Enum("status").
			Values("pending", "active", "completed", "failed", "timed_out", "cancelled").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Phase-specific payload (platform/files, architecture, artifacts, narrative)"),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the PhaseRun.
func (PhaseRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("process", MigrationProcess.Type).
			Ref("phase_runs").
			Field("process_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PhaseRun.
func (PhaseRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("process_id", "phase_index", "attempt").
			Unique(),
	}
}
