// Code generated by ent, DO NOT EDIT.

package agentrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentrecord type in the database.
	Label = "agent_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "record_id"
	// FieldProcessID holds the string denoting the process_id field in the database.
	FieldProcessID = "process_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldCurrentAction holds the string denoting the current_action field in the database.
	FieldCurrentAction = "current_action"
	// FieldLastMessagePreview holds the string denoting the last_message_preview field in the database.
	FieldLastMessagePreview = "last_message_preview"
	// FieldIsSpeaking holds the string denoting the is_speaking field in the database.
	FieldIsSpeaking = "is_speaking"
	// FieldIsThinking holds the string denoting the is_thinking field in the database.
	FieldIsThinking = "is_thinking"
	// FieldParticipationStatus holds the string denoting the participation_status field in the database.
	FieldParticipationStatus = "participation_status"
	// FieldRecentActivity holds the string denoting the recent_activity field in the database.
	FieldRecentActivity = "recent_activity"
	// FieldLastToolUsed holds the string denoting the last_tool_used field in the database.
	FieldLastToolUsed = "last_tool_used"
	// FieldLastUpdateTime holds the string denoting the last_update_time field in the database.
	FieldLastUpdateTime = "last_update_time"
	// EdgeProcess holds the string denoting the process edge name in mutations.
	EdgeProcess = "process"
	// MigrationProcessFieldID holds the string denoting the ID field of the MigrationProcess.
	MigrationProcessFieldID = "process_id"
	// Table holds the table name of the agentrecord in the database.
	Table = "agent_records"
	// ProcessTable is the table that holds the process relation/edge.
	ProcessTable = "agent_records"
	// ProcessInverseTable is the table name for the MigrationProcess entity.
	// It exists in this package in order to avoid circular dependency with the "migrationprocess" package.
	ProcessInverseTable = "migration_processes"
	// ProcessColumn is the table column denoting the process relation/edge.
	ProcessColumn = "process_id"
)

// Columns holds all SQL columns for agentrecord fields.
var Columns = []string{
	FieldID,
	FieldProcessID,
	FieldAgentName,
	FieldCurrentAction,
	FieldLastMessagePreview,
	FieldIsSpeaking,
	FieldIsThinking,
	FieldParticipationStatus,
	FieldRecentActivity,
	FieldLastToolUsed,
	FieldLastUpdateTime,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsSpeaking holds the default value on creation for the "is_speaking" field.
	DefaultIsSpeaking bool
	// DefaultIsThinking holds the default value on creation for the "is_thinking" field.
	DefaultIsThinking bool
	// DefaultParticipationStatus holds the default value on creation for the "participation_status" field.
	DefaultParticipationStatus string
	// DefaultLastUpdateTime holds the default value on creation for the "last_update_time" field.
	DefaultLastUpdateTime func() time.Time
)

// OrderOption defines the ordering options for the AgentRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcessID orders the results by the process_id field.
func ByProcessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByCurrentAction orders the results by the current_action field.
func ByCurrentAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentAction, opts...).ToFunc()
}

// ByLastMessagePreview orders the results by the last_message_preview field.
func ByLastMessagePreview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMessagePreview, opts...).ToFunc()
}

// ByIsSpeaking orders the results by the is_speaking field.
func ByIsSpeaking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSpeaking, opts...).ToFunc()
}

// ByIsThinking orders the results by the is_thinking field.
func ByIsThinking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsThinking, opts...).ToFunc()
}

// ByParticipationStatus orders the results by the participation_status field.
func ByParticipationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipationStatus, opts...).ToFunc()
}

// ByLastToolUsed orders the results by the last_tool_used field.
func ByLastToolUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastToolUsed, opts...).ToFunc()
}

// ByLastUpdateTime orders the results by the last_update_time field.
func ByLastUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdateTime, opts...).ToFunc()
}

// ByProcessField orders the results by process field.
func ByProcessField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProcessStep(), sql.OrderByField(field, opts...))
	}
}
func newProcessStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessInverseTable, MigrationProcessFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProcessTable, ProcessColumn),
	)
}
