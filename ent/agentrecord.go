// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cloudshift-ai/cloudshift/ent/agentrecord"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
)

// AgentRecord is the model entity for the AgentRecord schema.
type AgentRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProcessID holds the value of the "process_id" field.
	ProcessID string `json:"process_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// CurrentAction holds the value of the "current_action" field.
	CurrentAction string `json:"current_action,omitempty"`
	// LastMessagePreview holds the value of the "last_message_preview" field.
	LastMessagePreview string `json:"last_message_preview,omitempty"`
	// IsSpeaking holds the value of the "is_speaking" field.
	IsSpeaking bool `json:"is_speaking,omitempty"`
	// IsThinking holds the value of the "is_thinking" field.
	IsThinking bool `json:"is_thinking,omitempty"`
	// idle, active, done
	ParticipationStatus string `json:"participation_status,omitempty"`
	// Bounded history: timestamp, action, message preview, step, tool
	RecentActivity []map[string]interface{} `json:"recent_activity,omitempty"`
	// LastToolUsed holds the value of the "last_tool_used" field.
	LastToolUsed string `json:"last_tool_used,omitempty"`
	// LastUpdateTime holds the value of the "last_update_time" field.
	LastUpdateTime time.Time `json:"last_update_time,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentRecordQuery when eager-loading is set.
	Edges        AgentRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentRecordEdges holds the relations/edges for other nodes in the graph.
type AgentRecordEdges struct {
	// Process holds the value of the process edge.
	Process *MigrationProcess `json:"process,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProcessOrErr returns the Process value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentRecordEdges) ProcessOrErr() (*MigrationProcess, error) {
	if e.Process != nil {
		return e.Process, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: migrationprocess.Label}
	}
	return nil, &NotLoadedError{edge: "process"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentrecord.FieldRecentActivity:
			values[i] = new([]byte)
		case agentrecord.FieldIsSpeaking, agentrecord.FieldIsThinking:
			values[i] = new(sql.NullBool)
		case agentrecord.FieldID, agentrecord.FieldProcessID, agentrecord.FieldAgentName, agentrecord.FieldCurrentAction, agentrecord.FieldLastMessagePreview, agentrecord.FieldParticipationStatus, agentrecord.FieldLastToolUsed:
			values[i] = new(sql.NullString)
		case agentrecord.FieldLastUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentRecord fields.
func (_m *AgentRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentrecord.FieldProcessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_id", values[i])
			} else if value.Valid {
				_m.ProcessID = value.String
			}
		case agentrecord.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case agentrecord.FieldCurrentAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_action", values[i])
			} else if value.Valid {
				_m.CurrentAction = value.String
			}
		case agentrecord.FieldLastMessagePreview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_message_preview", values[i])
			} else if value.Valid {
				_m.LastMessagePreview = value.String
			}
		case agentrecord.FieldIsSpeaking:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_speaking", values[i])
			} else if value.Valid {
				_m.IsSpeaking = value.Bool
			}
		case agentrecord.FieldIsThinking:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_thinking", values[i])
			} else if value.Valid {
				_m.IsThinking = value.Bool
			}
		case agentrecord.FieldParticipationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participation_status", values[i])
			} else if value.Valid {
				_m.ParticipationStatus = value.String
			}
		case agentrecord.FieldRecentActivity:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recent_activity", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecentActivity); err != nil {
					return fmt.Errorf("unmarshal field recent_activity: %w", err)
				}
			}
		case agentrecord.FieldLastToolUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_tool_used", values[i])
			} else if value.Valid {
				_m.LastToolUsed = value.String
			}
		case agentrecord.FieldLastUpdateTime:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AgentRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProcess queries the "process" edge of the AgentRecord entity.
func (_m *AgentRecord) QueryProcess() *MigrationProcessQuery {
	return NewAgentRecordClient(_m.config).QueryProcess(_m)
}

// Update returns a builder for updating this AgentRecord.
// Note that you need to call AgentRecord.Unwrap() before calling this method if this AgentRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentRecord) Update() *AgentRecordUpdateOne {
	return NewAgentRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentRecord) Unwrap() *AgentRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AgentRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("process_id=")
	builder.WriteString(_m.ProcessID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("current_action=")
	builder.WriteString(_m.CurrentAction)
	builder.WriteString(", ")
	builder.WriteString("last_message_preview=")
	builder.WriteString(_m.LastMessagePreview)
	builder.WriteString(", ")
	builder.WriteString("is_speaking=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSpeaking))
	builder.WriteString(", ")
	builder.WriteString("is_thinking=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsThinking))
	builder.WriteString(", ")
	builder.WriteString("participation_status=")
	builder.WriteString(_m.ParticipationStatus)
	builder.WriteString(", ")
	builder.WriteString("recent_activity=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecentActivity))
	builder.WriteString(", ")
	builder.WriteString("last_tool_used=")
	builder.WriteString(_m.LastToolUsed)
	builder.WriteString(", ")
	builder.WriteString("last_update_time=")
	builder.WriteString(_m.LastUpdateTime.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentRecords is a parsable slice of AgentRecord.
type AgentRecords []*AgentRecord
