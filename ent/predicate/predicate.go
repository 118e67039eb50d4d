// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRecord is the predicate function for agentrecord builders.
type AgentRecord func(*sql.Selector)

// MigrationProcess is the predicate function for migrationprocess builders.
type MigrationProcess func(*sql.Selector)

// PhaseRun is the predicate function for phaserun builders.
type PhaseRun func(*sql.Selector)

// QueueMessage is the predicate function for queuemessage builders.
type QueueMessage func(*sql.Selector)
