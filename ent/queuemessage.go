// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cloudshift-ai/cloudshift/ent/queuemessage"
)

// QueueMessage is the model entity for the QueueMessage schema.
type QueueMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// QueueName holds the value of the "queue_name" field.
	QueueName string `json:"queue_name,omitempty"`
	// ProcessID holds the value of the "process_id" field.
	ProcessID string `json:"process_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// containerName, sourceFolder, workspaceFolder, outputFolder
	MigrationRequest map[string]interface{} `json:"migration_request,omitempty"`
	// Message is leasable once visible_at <= now
	VisibleAt time.Time `json:"visible_at,omitempty"`
	// DequeueCount holds the value of the "dequeue_count" field.
	DequeueCount int `json:"dequeue_count,omitempty"`
	// Set while leased; only the holder may delete or return
	LeaseID *string `json:"lease_id,omitempty"`
	// EnqueuedAt holds the value of the "enqueued_at" field.
	EnqueuedAt time.Time `json:"enqueued_at,omitempty"`
	// Populated when the message is dead-lettered
	FailureSummary *string `json:"failure_summary,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueueMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queuemessage.FieldMigrationRequest:
			values[i] = new([]byte)
		case queuemessage.FieldDequeueCount:
			values[i] = new(sql.NullInt64)
		case queuemessage.FieldID, queuemessage.FieldQueueName, queuemessage.FieldProcessID, queuemessage.FieldUserID, queuemessage.FieldLeaseID, queuemessage.FieldFailureSummary:
			values[i] = new(sql.NullString)
		case queuemessage.FieldVisibleAt, queuemessage.FieldEnqueuedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueueMessage fields.
func (_m *QueueMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queuemessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case queuemessage.FieldQueueName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue_name", values[i])
			} else if value.Valid {
				_m.QueueName = value.String
			}
		case queuemessage.FieldProcessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_id", values[i])
			} else if value.Valid {
				_m.ProcessID = value.String
			}
		case queuemessage.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case queuemessage.FieldMigrationRequest:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field migration_request", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MigrationRequest); err != nil {
					return fmt.Errorf("unmarshal field migration_request: %w", err)
				}
			}
		case queuemessage.FieldVisibleAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field visible_at", values[i])
			} else if value.Valid {
				_m.VisibleAt = value.Time
			}
		case queuemessage.FieldDequeueCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dequeue_count", values[i])
			} else if value.Valid {
				_m.DequeueCount = int(value.Int64)
			}
		case queuemessage.FieldLeaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lease_id", values[i])
			} else if value.Valid {
				_m.LeaseID = new(string)
				*_m.LeaseID = value.String
			}
		case queuemessage.FieldEnqueuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field enqueued_at", values[i])
			} else if value.Valid {
				_m.EnqueuedAt = value.Time
			}
		case queuemessage.FieldFailureSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_summary", values[i])
			} else if value.Valid {
				_m.FailureSummary = new(string)
				*_m.FailureSummary = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueueMessage.
// This includes values selected through modifiers, order, etc.
func (_m *QueueMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueueMessage.
// Note that you need to call QueueMessage.Unwrap() before calling this method if this QueueMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueueMessage) Update() *QueueMessageUpdateOne {
	return NewQueueMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueueMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueueMessage) Unwrap() *QueueMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueueMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueueMessage) String() string {
	var builder strings.Builder
	builder.WriteString("QueueMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("queue_name=")
	builder.WriteString(_m.QueueName)
	builder.WriteString(", ")
	builder.WriteString("process_id=")
	builder.WriteString(_m.ProcessID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("migration_request=")
	builder.WriteString(fmt.Sprintf("%v", _m.MigrationRequest))
	builder.WriteString(", ")
	builder.WriteString("visible_at=")
	builder.WriteString(_m.VisibleAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("dequeue_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DequeueCount))
	builder.WriteString(", ")
	if v := _m.LeaseID; v != nil {
		builder.WriteString("lease_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("enqueued_at=")
	builder.WriteString(_m.EnqueuedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FailureSummary; v != nil {
		builder.WriteString("failure_summary=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// QueueMessages is a parsable slice of QueueMessage.
type QueueMessages []*QueueMessage
