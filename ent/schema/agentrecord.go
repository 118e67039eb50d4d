package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRecord holds the schema definition for the AgentRecord entity.
// One record per (process, agent) pair — the "agent-activity" projection
// read by dashboards. History is a bounded JSON array with oldest-dropped
// eviction (see telemetry.Store).
type AgentRecord struct {
	ent.Schema
}

// Fields of the AgentRecord.
func (AgentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.String("process_id").
			Immutable(),
		field.String("agent_name").
			Immutable(),
		field.String("current_action").
			Optional(),
		field.String("last_message_preview").
			Optional(),
		field.Bool("is_speaking").
			Default(false),
		field.Bool("is_thinking").
			Default(false),
		field.String("participation_status").
			Default("idle").
			Comment("idle, active, done"),
		field.JSON("recent_activity", []map[string]interface{}{}).
			Optional().
			Comment("Bounded history: timestamp, action, message preview, step, tool"),
		field.String("last_tool_used").
			Optional(),
		field.Time("last_update_time").
			Default(time.Now),
	}
}

// Edges of the AgentRecord.
func (AgentRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("process", MigrationProcess.Type).
			Ref("agent_records").
			Field("process_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentRecord.
func (AgentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("process_id", "agent_name").
			Unique(),
	}
}
