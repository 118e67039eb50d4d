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
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
)

// PhaseRun is the model entity for the PhaseRun schema.
type PhaseRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProcessID holds the value of the "process_id" field.
	ProcessID string `json:"process_id,omitempty"`
	// analysis, design, yaml, documentation
	PhaseName string `json:"phase_name,omitempty"`
	// Position in the pipeline: 1-based
	PhaseIndex int `json:"phase_index,omitempty"`
	// 1 for first execution, incremented on phase retry
	Attempt int `json:"attempt,omitempty"`
	// Status holds the value of the "status" field.
	Status phaserun.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// Phase-specific payload (platform/files, architecture, artifacts, narrative)
	Result map[string]interface{} `json:"result,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PhaseRunQuery when eager-loading is set.
	Edges        PhaseRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PhaseRunEdges holds the relations/edges for other nodes in the graph.
type PhaseRunEdges struct {
	// Process holds the value of the process edge.
	Process *MigrationProcess `json:"process,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProcessOrErr returns the Process value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PhaseRunEdges) ProcessOrErr() (*MigrationProcess, error) {
	if e.Process != nil {
		return e.Process, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: migrationprocess.Label}
	}
	return nil, &NotLoadedError{edge: "process"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PhaseRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case phaserun.FieldResult:
			values[i] = new([]byte)
		case phaserun.FieldPhaseIndex, phaserun.FieldAttempt, phaserun.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case phaserun.FieldID, phaserun.FieldProcessID, phaserun.FieldPhaseName, phaserun.FieldStatus, phaserun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case phaserun.FieldStartedAt, phaserun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PhaseRun fields.
func (_m *PhaseRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case phaserun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case phaserun.FieldProcessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_id", values[i])
			} else if value.Valid {
				_m.ProcessID = value.String
			}
		case phaserun.FieldPhaseName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_name", values[i])
			} else if value.Valid {
				_m.PhaseName = value.String
			}
		case phaserun.FieldPhaseIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phase_index", values[i])
			} else if value.Valid {
				_m.PhaseIndex = int(value.Int64)
			}
		case phaserun.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case phaserun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = phaserun.Status(value.String)
			}
		case phaserun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case phaserun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case phaserun.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case phaserun.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case phaserun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PhaseRun.
// This includes values selected through modifiers, order, etc.
func (_m *PhaseRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProcess queries the "process" edge of the PhaseRun entity.
func (_m *PhaseRun) QueryProcess() *MigrationProcessQuery {
	return NewPhaseRunClient(_m.config).QueryProcess(_m)
}

// Update returns a builder for updating this PhaseRun.
// Note that you need to call PhaseRun.Unwrap() before calling this method if this PhaseRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PhaseRun) Update() *PhaseRunUpdateOne {
	return NewPhaseRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PhaseRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PhaseRun) Unwrap() *PhaseRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PhaseRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PhaseRun) String() string {
	var builder strings.Builder
	builder.WriteString("PhaseRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("process_id=")
	builder.WriteString(_m.ProcessID)
	builder.WriteString(", ")
	builder.WriteString("phase_name=")
	builder.WriteString(_m.PhaseName)
	builder.WriteString(", ")
	builder.WriteString("phase_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseIndex))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// PhaseRuns is a parsable slice of PhaseRun.
type PhaseRuns []*PhaseRun
