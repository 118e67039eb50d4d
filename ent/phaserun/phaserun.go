// Code generated by ent, DO NOT EDIT.

package phaserun

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the phaserun type in the database.
	Label = "phase_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "phase_run_id"
	// FieldProcessID holds the string denoting the process_id field in the database.
	FieldProcessID = "process_id"
	// FieldPhaseName holds the string denoting the phase_name field in the database.
	FieldPhaseName = "phase_name"
	// FieldPhaseIndex holds the string denoting the phase_index field in the database.
	FieldPhaseIndex = "phase_index"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeProcess holds the string denoting the process edge name in mutations.
	EdgeProcess = "process"
	// MigrationProcessFieldID holds the string denoting the ID field of the MigrationProcess.
	MigrationProcessFieldID = "process_id"
	// Table holds the table name of the phaserun in the database.
	Table = "phase_runs"
	// ProcessTable is the table that holds the process relation/edge.
	ProcessTable = "phase_runs"
	// ProcessInverseTable is the table name for the MigrationProcess entity.
	// It exists in this package in order to avoid circular dependency with the "migrationprocess" package.
	ProcessInverseTable = "migration_processes"
	// ProcessColumn is the table column denoting the process relation/edge.
	ProcessColumn = "process_id"
)

// Columns holds all SQL columns for phaserun fields.
var Columns = []string{
	FieldID,
	FieldProcessID,
	FieldPhaseName,
	FieldPhaseIndex,
	FieldAttempt,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldResult,
	FieldErrorMessage,
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
	// DefaultAttempt holds the default value on creation for the "attempt" field.
	DefaultAttempt int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusTimedOut  Status = "timed_out"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusFailed, StatusTimedOut, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("phaserun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PhaseRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcessID orders the results by the process_id field.
func ByProcessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessID, opts...).ToFunc()
}

// ByPhaseName orders the results by the phase_name field.
func ByPhaseName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseName, opts...).ToFunc()
}

// ByPhaseIndex orders the results by the phase_index field.
func ByPhaseIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseIndex, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
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
