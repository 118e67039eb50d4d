// Code generated by ent, DO NOT EDIT.

package migrationprocess

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the migrationprocess type in the database.
	Label = "migration_process"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "process_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSourcePlatform holds the string denoting the source_platform field in the database.
	FieldSourcePlatform = "source_platform"
	// FieldTargetPlatform holds the string denoting the target_platform field in the database.
	FieldTargetPlatform = "target_platform"
	// FieldContainerName holds the string denoting the container_name field in the database.
	FieldContainerName = "container_name"
	// FieldSourceFolder holds the string denoting the source_folder field in the database.
	FieldSourceFolder = "source_folder"
	// FieldWorkspaceFolder holds the string denoting the workspace_folder field in the database.
	FieldWorkspaceFolder = "workspace_folder"
	// FieldOutputFolder holds the string denoting the output_folder field in the database.
	FieldOutputFolder = "output_folder"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldStepsCompleted holds the string denoting the steps_completed field in the database.
	FieldStepsCompleted = "steps_completed"
	// FieldInsights holds the string denoting the insights field in the database.
	FieldInsights = "insights"
	// FieldErrorLog holds the string denoting the error_log field in the database.
	FieldErrorLog = "error_log"
	// FieldWarningLog holds the string denoting the warning_log field in the database.
	FieldWarningLog = "warning_log"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldGeneratedFiles holds the string denoting the generated_files field in the database.
	FieldGeneratedFiles = "generated_files"
	// FieldFailure holds the string denoting the failure field in the database.
	FieldFailure = "failure"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPhaseStartedAt holds the string denoting the phase_started_at field in the database.
	FieldPhaseStartedAt = "phase_started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastUpdateTime holds the string denoting the last_update_time field in the database.
	FieldLastUpdateTime = "last_update_time"
	// EdgePhaseRuns holds the string denoting the phase_runs edge name in mutations.
	EdgePhaseRuns = "phase_runs"
	// EdgeAgentRecords holds the string denoting the agent_records edge name in mutations.
	EdgeAgentRecords = "agent_records"
	// PhaseRunFieldID holds the string denoting the ID field of the PhaseRun.
	PhaseRunFieldID = "phase_run_id"
	// AgentRecordFieldID holds the string denoting the ID field of the AgentRecord.
	AgentRecordFieldID = "record_id"
	// Table holds the table name of the migrationprocess in the database.
	Table = "migration_processes"
	// PhaseRunsTable is the table that holds the phase_runs relation/edge.
	PhaseRunsTable = "phase_runs"
	// PhaseRunsInverseTable is the table name for the PhaseRun entity.
	// It exists in this package in order to avoid circular dependency with the "phaserun" package.
	PhaseRunsInverseTable = "phase_runs"
	// PhaseRunsColumn is the table column denoting the phase_runs relation/edge.
	PhaseRunsColumn = "process_id"
	// AgentRecordsTable is the table that holds the agent_records relation/edge.
	AgentRecordsTable = "agent_records"
	// AgentRecordsInverseTable is the table name for the AgentRecord entity.
	// It exists in this package in order to avoid circular dependency with the "agentrecord" package.
	AgentRecordsInverseTable = "agent_records"
	// AgentRecordsColumn is the table column denoting the agent_records relation/edge.
	AgentRecordsColumn = "process_id"
)

// Columns holds all SQL columns for migrationprocess fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSourcePlatform,
	FieldTargetPlatform,
	FieldContainerName,
	FieldSourceFolder,
	FieldWorkspaceFolder,
	FieldOutputFolder,
	FieldPhase,
	FieldStatus,
	FieldCurrentStep,
	FieldStepsCompleted,
	FieldInsights,
	FieldErrorLog,
	FieldWarningLog,
	FieldOutcome,
	FieldGeneratedFiles,
	FieldFailure,
	FieldCreatedAt,
	FieldPhaseStartedAt,
	FieldCompletedAt,
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
	// DefaultTargetPlatform holds the default value on creation for the "target_platform" field.
	DefaultTargetPlatform string
	// DefaultSourceFolder holds the default value on creation for the "source_folder" field.
	DefaultSourceFolder string
	// DefaultWorkspaceFolder holds the default value on creation for the "workspace_folder" field.
	DefaultWorkspaceFolder string
	// DefaultOutputFolder holds the default value on creation for the "output_folder" field.
	DefaultOutputFolder string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastUpdateTime holds the default value on creation for the "last_update_time" field.
	DefaultLastUpdateTime func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// PhaseInitialization is the default value of the Phase enum.
const DefaultPhase = PhaseInitialization

// Phase values.
const (
	PhaseInitialization Phase = "initialization"
	PhaseAnalysis       Phase = "analysis"
	PhaseDesign         Phase = "design"
	PhaseYaml           Phase = "yaml"
	PhaseDocumentation  Phase = "documentation"
	PhaseCompleted      Phase = "completed"
	PhaseFailed         Phase = "failed"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseInitialization, PhaseAnalysis, PhaseDesign, PhaseYaml, PhaseDocumentation, PhaseCompleted, PhaseFailed:
		return nil
	default:
		return fmt.Errorf("migrationprocess: invalid enum value for phase field: %q", ph)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning     Status = "running"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusUnderReview Status = "under_review"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed, StatusUnderReview:
		return nil
	default:
		return fmt.Errorf("migrationprocess: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MigrationProcess queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySourcePlatform orders the results by the source_platform field.
func BySourcePlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePlatform, opts...).ToFunc()
}

// ByTargetPlatform orders the results by the target_platform field.
func ByTargetPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetPlatform, opts...).ToFunc()
}

// ByContainerName orders the results by the container_name field.
func ByContainerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainerName, opts...).ToFunc()
}

// BySourceFolder orders the results by the source_folder field.
func BySourceFolder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFolder, opts...).ToFunc()
}

// ByWorkspaceFolder orders the results by the workspace_folder field.
func ByWorkspaceFolder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceFolder, opts...).ToFunc()
}

// ByOutputFolder orders the results by the output_folder field.
func ByOutputFolder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputFolder, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPhaseStartedAt orders the results by the phase_started_at field.
func ByPhaseStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastUpdateTime orders the results by the last_update_time field.
func ByLastUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdateTime, opts...).ToFunc()
}

// ByPhaseRunsCount orders the results by phase_runs count.
func ByPhaseRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPhaseRunsStep(), opts...)
	}
}

// ByPhaseRuns orders the results by phase_runs terms.
func ByPhaseRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPhaseRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentRecordsCount orders the results by agent_records count.
func ByAgentRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentRecordsStep(), opts...)
	}
}

// ByAgentRecords orders the results by agent_records terms.
func ByAgentRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPhaseRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PhaseRunsInverseTable, PhaseRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PhaseRunsTable, PhaseRunsColumn),
	)
}
func newAgentRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentRecordsInverseTable, AgentRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentRecordsTable, AgentRecordsColumn),
	)
}
