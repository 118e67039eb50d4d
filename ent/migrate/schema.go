// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRecordsColumns holds the columns for the "agent_records" table.
	AgentRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "current_action", Type: field.TypeString, Nullable: true},
		{Name: "last_message_preview", Type: field.TypeString, Nullable: true},
		{Name: "is_speaking", Type: field.TypeBool, Default: false},
		{Name: "is_thinking", Type: field.TypeBool, Default: false},
		{Name: "participation_status", Type: field.TypeString, Default: "idle"},
		{Name: "recent_activity", Type: field.TypeJSON, Nullable: true},
		{Name: "last_tool_used", Type: field.TypeString, Nullable: true},
		{Name: "last_update_time", Type: field.TypeTime},
		{Name: "process_id", Type: field.TypeString},
	}
	// AgentRecordsTable holds the schema information for the "agent_records" table.
	AgentRecordsTable = &schema.Table{
		Name:       "agent_records",
		Columns:    AgentRecordsColumns,
		PrimaryKey: []*schema.Column{AgentRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_records_migration_processes_agent_records",
				Columns:    []*schema.Column{AgentRecordsColumns[10]},
				RefColumns: []*schema.Column{MigrationProcessesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrecord_process_id_agent_name",
				Unique:  true,
				Columns: []*schema.Column{AgentRecordsColumns[10], AgentRecordsColumns[1]},
			},
		},
	}
	// MigrationProcessesColumns holds the columns for the "migration_processes" table.
	MigrationProcessesColumns = []*schema.Column{
		{Name: "process_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "source_platform", Type: field.TypeString, Nullable: true},
		{Name: "target_platform", Type: field.TypeString, Default: "aks"},
		{Name: "container_name", Type: field.TypeString, Nullable: true},
		{Name: "source_folder", Type: field.TypeString, Default: "source"},
		{Name: "workspace_folder", Type: field.TypeString, Default: "workspace"},
		{Name: "output_folder", Type: field.TypeString, Default: "converted"},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"initialization", "analysis", "design", "yaml", "documentation", "completed", "failed"}, Default: "initialization"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "under_review"}, Default: "running"},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "steps_completed", Type: field.TypeJSON, Nullable: true},
		{Name: "insights", Type: field.TypeJSON, Nullable: true},
		{Name: "error_log", Type: field.TypeJSON, Nullable: true},
		{Name: "warning_log", Type: field.TypeJSON, Nullable: true},
		{Name: "outcome", Type: field.TypeJSON, Nullable: true},
		{Name: "generated_files", Type: field.TypeJSON, Nullable: true},
		{Name: "failure", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "phase_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_update_time", Type: field.TypeTime},
	}
	// MigrationProcessesTable holds the schema information for the "migration_processes" table.
	MigrationProcessesTable = &schema.Table{
		Name:       "migration_processes",
		Columns:    MigrationProcessesColumns,
		PrimaryKey: []*schema.Column{MigrationProcessesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "migrationprocess_status",
				Unique:  false,
				Columns: []*schema.Column{MigrationProcessesColumns[9]},
			},
			{
				Name:    "migrationprocess_phase",
				Unique:  false,
				Columns: []*schema.Column{MigrationProcessesColumns[8]},
			},
			{
				Name:    "migrationprocess_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{MigrationProcessesColumns[9], MigrationProcessesColumns[18]},
			},
		},
	}
	// PhaseRunsColumns holds the columns for the "phase_runs" table.
	PhaseRunsColumns = []*schema.Column{
		{Name: "phase_run_id", Type: field.TypeString, Unique: true},
		{Name: "phase_name", Type: field.TypeString},
		{Name: "phase_index", Type: field.TypeInt},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "failed", "timed_out", "cancelled"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "process_id", Type: field.TypeString},
	}
	// PhaseRunsTable holds the schema information for the "phase_runs" table.
	PhaseRunsTable = &schema.Table{
		Name:       "phase_runs",
		Columns:    PhaseRunsColumns,
		PrimaryKey: []*schema.Column{PhaseRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "phase_runs_migration_processes_phase_runs",
				Columns:    []*schema.Column{PhaseRunsColumns[10]},
				RefColumns: []*schema.Column{MigrationProcessesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "phaserun_process_id_phase_index_attempt",
				Unique:  true,
				Columns: []*schema.Column{PhaseRunsColumns[10], PhaseRunsColumns[2], PhaseRunsColumns[3]},
			},
		},
	}
	// QueueMessagesColumns holds the columns for the "queue_messages" table.
	QueueMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "queue_name", Type: field.TypeString},
		{Name: "process_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "migration_request", Type: field.TypeJSON, Nullable: true},
		{Name: "visible_at", Type: field.TypeTime},
		{Name: "dequeue_count", Type: field.TypeInt, Default: 0},
		{Name: "lease_id", Type: field.TypeString, Nullable: true},
		{Name: "enqueued_at", Type: field.TypeTime},
		{Name: "failure_summary", Type: field.TypeString, Nullable: true},
	}
	// QueueMessagesTable holds the schema information for the "queue_messages" table.
	QueueMessagesTable = &schema.Table{
		Name:       "queue_messages",
		Columns:    QueueMessagesColumns,
		PrimaryKey: []*schema.Column{QueueMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuemessage_queue_name_visible_at",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[1], QueueMessagesColumns[5]},
			},
			{
				Name:    "queuemessage_process_id",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRecordsTable,
		MigrationProcessesTable,
		PhaseRunsTable,
		QueueMessagesTable,
	}
)

func init() {
	AgentRecordsTable.ForeignKeys[0].RefTable = MigrationProcessesTable
	PhaseRunsTable.ForeignKeys[0].RefTable = MigrationProcessesTable
}
