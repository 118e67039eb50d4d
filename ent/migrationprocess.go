// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
)

// MigrationProcess is the model entity for the MigrationProcess schema.
type MigrationProcess struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Submitting user
	UserID string `json:"user_id,omitempty"`
	// Requested source platform (e.g., 'eks', 'gke')
	SourcePlatform string `json:"source_platform,omitempty"`
	// TargetPlatform holds the value of the "target_platform" field.
	TargetPlatform string `json:"target_platform,omitempty"`
	// ContainerName holds the value of the "container_name" field.
	ContainerName string `json:"container_name,omitempty"`
	// SourceFolder holds the value of the "source_folder" field.
	SourceFolder string `json:"source_folder,omitempty"`
	// WorkspaceFolder holds the value of the "workspace_folder" field.
	WorkspaceFolder string `json:"workspace_folder,omitempty"`
	// OutputFolder holds the value of the "output_folder" field.
	OutputFolder string `json:"output_folder,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase migrationprocess.Phase `json:"phase,omitempty"`
	// Status holds the value of the "status" field.
	Status migrationprocess.Status `json:"status,omitempty"`
	// CurrentStep holds the value of the "current_step" field.
	CurrentStep string `json:"current_step,omitempty"`
	// Completed phase names, in execution order
	StepsCompleted []string `json:"steps_completed,omitempty"`
	// Accumulated expert insights (ordered, deduplicated)
	Insights []string `json:"insights,omitempty"`
	// Phase-prefixed errors (ordered, deduplicated)
	ErrorLog []string `json:"error_log,omitempty"`
	// Phase-prefixed warnings (ordered, deduplicated)
	WarningLog []string `json:"warning_log,omitempty"`
	// Final outcome map, set by finalize
	Outcome map[string]interface{} `json:"outcome,omitempty"`
	// GeneratedFiles holds the value of the "generated_files" field.
	GeneratedFiles []string `json:"generated_files,omitempty"`
	// Step-failure record (system failure or hard termination)
	Failure map[string]interface{} `json:"failure,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Start time of the current phase
	PhaseStartedAt *time.Time `json:"phase_started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Monotonic — writers compare-and-advance, never regress
	LastUpdateTime time.Time `json:"last_update_time,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MigrationProcessQuery when eager-loading is set.
	Edges        MigrationProcessEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MigrationProcessEdges holds the relations/edges for other nodes in the graph.
type MigrationProcessEdges struct {
	// PhaseRuns holds the value of the phase_runs edge.
	PhaseRuns []*PhaseRun `json:"phase_runs,omitempty"`
	// AgentRecords holds the value of the agent_records edge.
	AgentRecords []*AgentRecord `json:"agent_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PhaseRunsOrErr returns the PhaseRuns value or an error if the edge
// was not loaded in eager-loading.
func (e MigrationProcessEdges) PhaseRunsOrErr() ([]*PhaseRun, error) {
	if e.loadedTypes[0] {
		return e.PhaseRuns, nil
	}
	return nil, &NotLoadedError{edge: "phase_runs"}
}

// AgentRecordsOrErr returns the AgentRecords value or an error if the edge
// was not loaded in eager-loading.
func (e MigrationProcessEdges) AgentRecordsOrErr() ([]*AgentRecord, error) {
	if e.loadedTypes[1] {
		return e.AgentRecords, nil
	}
	return nil, &NotLoadedError{edge: "agent_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MigrationProcess) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case migrationprocess.FieldStepsCompleted, migrationprocess.FieldInsights, migrationprocess.FieldErrorLog, migrationprocess.FieldWarningLog, migrationprocess.FieldOutcome, migrationprocess.FieldGeneratedFiles, migrationprocess.FieldFailure:
			values[i] = new([]byte)
		case migrationprocess.FieldID, migrationprocess.FieldUserID, migrationprocess.FieldSourcePlatform, migrationprocess.FieldTargetPlatform, migrationprocess.FieldContainerName, migrationprocess.FieldSourceFolder, migrationprocess.FieldWorkspaceFolder, migrationprocess.FieldOutputFolder, migrationprocess.FieldPhase, migrationprocess.FieldStatus, migrationprocess.FieldCurrentStep:
			values[i] = new(sql.NullString)
		case migrationprocess.FieldCreatedAt, migrationprocess.FieldPhaseStartedAt, migrationprocess.FieldCompletedAt, migrationprocess.FieldLastUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MigrationProcess fields.
func (_m *MigrationProcess) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case migrationprocess.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case migrationprocess.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case migrationprocess.FieldSourcePlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_platform", values[i])
			} else if value.Valid {
				_m.SourcePlatform = value.String
			}
		case migrationprocess.FieldTargetPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_platform", values[i])
			} else if value.Valid {
				_m.TargetPlatform = value.String
			}
		case migrationprocess.FieldContainerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field container_name", values[i])
			} else if value.Valid {
				_m.ContainerName = value.String
			}
		case migrationprocess.FieldSourceFolder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_folder", values[i])
			} else if value.Valid {
				_m.SourceFolder = value.String
			}
		case migrationprocess.FieldWorkspaceFolder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_folder", values[i])
			} else if value.Valid {
				_m.WorkspaceFolder = value.String
			}
		case migrationprocess.FieldOutputFolder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_folder", values[i])
			} else if value.Valid {
				_m.OutputFolder = value.String
			}
		case migrationprocess.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = migrationprocess.Phase(value.String)
			}
		case migrationprocess.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = migrationprocess.Status(value.String)
			}
		case migrationprocess.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = value.String
			}
		case migrationprocess.FieldStepsCompleted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps_completed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepsCompleted); err != nil {
					return fmt.Errorf("unmarshal field steps_completed: %w", err)
				}
			}
		case migrationprocess.FieldInsights:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field insights", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Insights); err != nil {
					return fmt.Errorf("unmarshal field insights: %w", err)
				}
			}
		case migrationprocess.FieldErrorLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ErrorLog); err != nil {
					return fmt.Errorf("unmarshal field error_log: %w", err)
				}
			}
		case migrationprocess.FieldWarningLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warning_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WarningLog); err != nil {
					return fmt.Errorf("unmarshal field warning_log: %w", err)
				}
			}
		case migrationprocess.FieldOutcome:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outcome); err != nil {
					return fmt.Errorf("unmarshal field outcome: %w", err)
				}
			}
		case migrationprocess.FieldGeneratedFiles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field generated_files", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GeneratedFiles); err != nil {
					return fmt.Errorf("unmarshal field generated_files: %w", err)
				}
			}
		case migrationprocess.FieldFailure:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failure", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Failure); err != nil {
					return fmt.Errorf("unmarshal field failure: %w", err)
				}
			}
		case migrationprocess.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case migrationprocess.FieldPhaseStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field phase_started_at", values[i])
			} else if value.Valid {
				_m.PhaseStartedAt = new(time.Time)
				*_m.PhaseStartedAt = value.Time
			}
		case migrationprocess.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case migrationprocess.FieldLastUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_update_time", values[i])
			} else if value.Valid {
				_m.LastUpdateTime = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MigrationProcess.
// This includes values selected through modifiers, order, etc.
func (_m *MigrationProcess) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPhaseRuns queries the "phase_runs" edge of the MigrationProcess entity.
func (_m *MigrationProcess) QueryPhaseRuns() *PhaseRunQuery {
	return NewMigrationProcessClient(_m.config).QueryPhaseRuns(_m)
}

// QueryAgentRecords queries the "agent_records" edge of the MigrationProcess entity.
func (_m *MigrationProcess) QueryAgentRecords() *AgentRecordQuery {
	return NewMigrationProcessClient(_m.config).QueryAgentRecords(_m)
}

// Update returns a builder for updating this MigrationProcess.
// Note that you need to call MigrationProcess.Unwrap() before calling this method if this MigrationProcess
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MigrationProcess) Update() *MigrationProcessUpdateOne {
	return NewMigrationProcessClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MigrationProcess entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MigrationProcess) Unwrap() *MigrationProcess {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MigrationProcess is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MigrationProcess) String() string {
	var builder strings.Builder
	builder.WriteString("MigrationProcess(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("source_platform=")
	builder.WriteString(_m.SourcePlatform)
	builder.WriteString(", ")
	builder.WriteString("target_platform=")
	builder.WriteString(_m.TargetPlatform)
	builder.WriteString(", ")
	builder.WriteString("container_name=")
	builder.WriteString(_m.ContainerName)
	builder.WriteString(", ")
	builder.WriteString("source_folder=")
	builder.WriteString(_m.SourceFolder)
	builder.WriteString(", ")
	builder.WriteString("workspace_folder=")
	builder.WriteString(_m.WorkspaceFolder)
	builder.WriteString(", ")
	builder.WriteString("output_folder=")
	builder.WriteString(_m.OutputFolder)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(_m.CurrentStep)
	builder.WriteString(", ")
	builder.WriteString("steps_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepsCompleted))
	builder.WriteString(", ")
	builder.WriteString("insights=")
	builder.WriteString(fmt.Sprintf("%v", _m.Insights))
	builder.WriteString(", ")
	builder.WriteString("error_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorLog))
	builder.WriteString(", ")
	builder.WriteString("warning_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.WarningLog))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outcome))
	builder.WriteString(", ")
	builder.WriteString("generated_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeneratedFiles))
	builder.WriteString(", ")
	builder.WriteString("failure=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failure))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.PhaseStartedAt; v != nil {
		builder.WriteString("phase_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_update_time=")
	builder.WriteString(_m.LastUpdateTime.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MigrationProcesses is a parsable slice of MigrationProcess.
type MigrationProcesses []*MigrationProcess
