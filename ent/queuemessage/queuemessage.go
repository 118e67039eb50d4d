// Code generated by ent, DO NOT EDIT.

package queuemessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queuemessage type in the database.
	Label = "queue_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldQueueName holds the string denoting the queue_name field in the database.
	FieldQueueName = "queue_name"
	// FieldProcessID holds the string denoting the process_id field in the database.
	FieldProcessID = "process_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMigrationRequest holds the string denoting the migration_request field in the database.
	FieldMigrationRequest = "migration_request"
	// FieldVisibleAt holds the string denoting the visible_at field in the database.
	FieldVisibleAt = "visible_at"
	// FieldDequeueCount holds the string denoting the dequeue_count field in the database.
	FieldDequeueCount = "dequeue_count"
	// FieldLeaseID holds the string denoting the lease_id field in the database.
	FieldLeaseID = "lease_id"
	// FieldEnqueuedAt holds the string denoting the enqueued_at field in the database.
	FieldEnqueuedAt = "enqueued_at"
	// FieldFailureSummary holds the string denoting the failure_summary field in the database.
	FieldFailureSummary = "failure_summary"
	// Table holds the table name of the queuemessage in the database.
	Table = "queue_messages"
)

// Columns holds all SQL columns for queuemessage fields.
var Columns = []string{
	FieldID,
	FieldQueueName,
	FieldProcessID,
	FieldUserID,
	FieldMigrationRequest,
	FieldVisibleAt,
	FieldDequeueCount,
	FieldLeaseID,
	FieldEnqueuedAt,
	FieldFailureSummary,
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
	// DefaultVisibleAt holds the default value on creation for the "visible_at" field.
	DefaultVisibleAt func() time.Time
	// DefaultDequeueCount holds the default value on creation for the "dequeue_count" field.
	DefaultDequeueCount int
	// DefaultEnqueuedAt holds the default value on creation for the "enqueued_at" field.
	DefaultEnqueuedAt func() time.Time
)

// OrderOption defines the ordering options for the QueueMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQueueName orders the results by the queue_name field.
func ByQueueName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueueName, opts...).ToFunc()
}

// ByProcessID orders the results by the process_id field.
func ByProcessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByVisibleAt orders the results by the visible_at field.
func ByVisibleAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisibleAt, opts...).ToFunc()
}

// ByDequeueCount orders the results by the dequeue_count field.
func ByDequeueCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDequeueCount, opts...).ToFunc()
}

// ByLeaseID orders the results by the lease_id field.
func ByLeaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseID, opts...).ToFunc()
}

// ByEnqueuedAt orders the results by the enqueued_at field.
func ByEnqueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnqueuedAt, opts...).ToFunc()
}

// ByFailureSummary orders the results by the failure_summary field.
func ByFailureSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureSummary, opts...).ToFunc()
}
