package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueMessage holds the schema definition for the QueueMessage entity.
// A database-backed job queue with visibility-timeout leasing: a leased
// message stays in the table but is invisible (visible_at in the future)
// until the lease expires or the holder deletes it. Dead-lettered messages
// are moved to "<queue>-dead-letter" with a failure summary attached.
type QueueMessage struct {
	ent.Schema
}

// Fields of the QueueMessage.
func (QueueMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("queue_name"),
		field.String("process_id"),
		field.String("user_id"),
		field.JSON("migration_request", map[string]interface{}{}).
			Optional().
			Comment("containerName, sourceFolder, workspaceFolder, outputFolder"),
		field.Time("visible_at").
			Default(time.Now).
			Comment("Message is leasable once visible_at <= now"),
		field.Int("dequeue_count").
			Default(0),
		field.String("lease_id").
			Optional().
			Nillable().
			Comment("Set while leased; only the holder may delete or return"),
		field.Time("enqueued_at").
			Default(time.Now).
			Immutable(),
		field.String("failure_summary").
			Optional().
			Nillable().
			Comment("Populated when the message is dead-lettered"),
	}
}

// Indexes of the QueueMessage.
func (QueueMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue_name", "visible_at"),
		index.Fields("process_id"),
	}
}
