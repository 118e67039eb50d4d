// Code generated by ent, DO NOT EDIT.

package queuemessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldID, id))
}

// QueueName applies equality check predicate on the "queue_name" field. It's identical to QueueNameEQ.
func QueueName(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldQueueName, v))
}

// ProcessID applies equality check predicate on the "process_id" field. It's identical to ProcessIDEQ.
func ProcessID(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldProcessID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldUserID, v))
}

// VisibleAt applies equality check predicate on the "visible_at" field. It's identical to VisibleAtEQ.
func VisibleAt(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldVisibleAt, v))
}

// DequeueCount applies equality check predicate on the "dequeue_count" field. It's identical to DequeueCountEQ.
func DequeueCount(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldDequeueCount, v))
}

// LeaseID applies equality check predicate on the "lease_id" field. It's identical to LeaseIDEQ.
func LeaseID(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldLeaseID, v))
}

// EnqueuedAt applies equality check predicate on the "enqueued_at" field. It's identical to EnqueuedAtEQ.
func EnqueuedAt(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldEnqueuedAt, v))
}

// FailureSummary applies equality check predicate on the "failure_summary" field. It's identical to FailureSummaryEQ.
func FailureSummary(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldFailureSummary, v))
}

// QueueNameEQ applies the EQ predicate on the "queue_name" field.
func QueueNameEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldQueueName, v))
}

// QueueNameNEQ applies the NEQ predicate on the "queue_name" field.
func QueueNameNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldQueueName, v))
}

// QueueNameIn applies the In predicate on the "queue_name" field.
func QueueNameIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldQueueName, vs...))
}

// QueueNameNotIn applies the NotIn predicate on the "queue_name" field.
func QueueNameNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldQueueName, vs...))
}

// QueueNameGT applies the GT predicate on the "queue_name" field.
func QueueNameGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldQueueName, v))
}

// QueueNameGTE applies the GTE predicate on the "queue_name" field.
func QueueNameGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldQueueName, v))
}

// QueueNameLT applies the LT predicate on the "queue_name" field.
func QueueNameLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldQueueName, v))
}

// QueueNameLTE applies the LTE predicate on the "queue_name" field.
func QueueNameLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldQueueName, v))
}

// QueueNameContains applies the Contains predicate on the "queue_name" field.
func QueueNameContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldQueueName, v))
}

// QueueNameHasPrefix applies the HasPrefix predicate on the "queue_name" field.
func QueueNameHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldQueueName, v))
}

// QueueNameHasSuffix applies the HasSuffix predicate on the "queue_name" field.
func QueueNameHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldQueueName, v))
}

// QueueNameEqualFold applies the EqualFold predicate on the "queue_name" field.
func QueueNameEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldQueueName, v))
}

// QueueNameContainsFold applies the ContainsFold predicate on the "queue_name" field.
func QueueNameContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldQueueName, v))
}

// ProcessIDEQ applies the EQ predicate on the "process_id" field.
func ProcessIDEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldProcessID, v))
}

// ProcessIDNEQ applies the NEQ predicate on the "process_id" field.
func ProcessIDNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldProcessID, v))
}

// ProcessIDIn applies the In predicate on the "process_id" field.
func ProcessIDIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldProcessID, vs...))
}

// ProcessIDNotIn applies the NotIn predicate on the "process_id" field.
func ProcessIDNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldProcessID, vs...))
}

// ProcessIDGT applies the GT predicate on the "process_id" field.
func ProcessIDGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldProcessID, v))
}

// ProcessIDGTE applies the GTE predicate on the "process_id" field.
func ProcessIDGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldProcessID, v))
}

// ProcessIDLT applies the LT predicate on the "process_id" field.
func ProcessIDLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldProcessID, v))
}

// ProcessIDLTE applies the LTE predicate on the "process_id" field.
func ProcessIDLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldProcessID, v))
}

// ProcessIDContains applies the Contains predicate on the "process_id" field.
func ProcessIDContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldProcessID, v))
}

// ProcessIDHasPrefix applies the HasPrefix predicate on the "process_id" field.
func ProcessIDHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldProcessID, v))
}

// ProcessIDHasSuffix applies the HasSuffix predicate on the "process_id" field.
func ProcessIDHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldProcessID, v))
}

// ProcessIDEqualFold applies the EqualFold predicate on the "process_id" field.
func ProcessIDEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldProcessID, v))
}

// ProcessIDContainsFold applies the ContainsFold predicate on the "process_id" field.
func ProcessIDContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldProcessID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldUserID, v))
}

// MigrationRequestIsNil applies the IsNil predicate on the "migration_request" field.
func MigrationRequestIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldMigrationRequest))
}

// MigrationRequestNotNil applies the NotNil predicate on the "migration_request" field.
func MigrationRequestNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldMigrationRequest))
}

// VisibleAtEQ applies the EQ predicate on the "visible_at" field.
func VisibleAtEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldVisibleAt, v))
}

// VisibleAtNEQ applies the NEQ predicate on the "visible_at" field.
func VisibleAtNEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldVisibleAt, v))
}

// VisibleAtIn applies the In predicate on the "visible_at" field.
func VisibleAtIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldVisibleAt, vs...))
}

// VisibleAtNotIn applies the NotIn predicate on the "visible_at" field.
func VisibleAtNotIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldVisibleAt, vs...))
}

// VisibleAtGT applies the GT predicate on the "visible_at" field.
func VisibleAtGT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldVisibleAt, v))
}

// VisibleAtGTE applies the GTE predicate on the "visible_at" field.
func VisibleAtGTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldVisibleAt, v))
}

// VisibleAtLT applies the LT predicate on the "visible_at" field.
func VisibleAtLT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldVisibleAt, v))
}

// VisibleAtLTE applies the LTE predicate on the "visible_at" field.
func VisibleAtLTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldVisibleAt, v))
}

// DequeueCountEQ applies the EQ predicate on the "dequeue_count" field.
func DequeueCountEQ(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldDequeueCount, v))
}

// DequeueCountNEQ applies the NEQ predicate on the "dequeue_count" field.
func DequeueCountNEQ(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldDequeueCount, v))
}

// DequeueCountIn applies the In predicate on the "dequeue_count" field.
func DequeueCountIn(vs ...int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldDequeueCount, vs...))
}

// DequeueCountNotIn applies the NotIn predicate on the "dequeue_count" field.
func DequeueCountNotIn(vs ...int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldDequeueCount, vs...))
}

// DequeueCountGT applies the GT predicate on the "dequeue_count" field.
func DequeueCountGT(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldDequeueCount, v))
}

// DequeueCountGTE applies the GTE predicate on the "dequeue_count" field.
func DequeueCountGTE(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldDequeueCount, v))
}

// DequeueCountLT applies the LT predicate on the "dequeue_count" field.
func DequeueCountLT(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldDequeueCount, v))
}

// DequeueCountLTE applies the LTE predicate on the "dequeue_count" field.
func DequeueCountLTE(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldDequeueCount, v))
}

// LeaseIDEQ applies the EQ predicate on the "lease_id" field.
func LeaseIDEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldLeaseID, v))
}

// LeaseIDNEQ applies the NEQ predicate on the "lease_id" field.
func LeaseIDNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldLeaseID, v))
}

// LeaseIDIn applies the In predicate on the "lease_id" field.
func LeaseIDIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldLeaseID, vs...))
}

// LeaseIDNotIn applies the NotIn predicate on the "lease_id" field.
func LeaseIDNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldLeaseID, vs...))
}

// LeaseIDGT applies the GT predicate on the "lease_id" field.
func LeaseIDGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldLeaseID, v))
}

// LeaseIDGTE applies the GTE predicate on the "lease_id" field.
func LeaseIDGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldLeaseID, v))
}

// LeaseIDLT applies the LT predicate on the "lease_id" field.
func LeaseIDLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldLeaseID, v))
}

// LeaseIDLTE applies the LTE predicate on the "lease_id" field.
func LeaseIDLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldLeaseID, v))
}

// LeaseIDContains applies the Contains predicate on the "lease_id" field.
func LeaseIDContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldLeaseID, v))
}

// LeaseIDHasPrefix applies the HasPrefix predicate on the "lease_id" field.
func LeaseIDHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldLeaseID, v))
}

// LeaseIDHasSuffix applies the HasSuffix predicate on the "lease_id" field.
func LeaseIDHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldLeaseID, v))
}

// LeaseIDIsNil applies the IsNil predicate on the "lease_id" field.
func LeaseIDIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldLeaseID))
}

// LeaseIDNotNil applies the NotNil predicate on the "lease_id" field.
func LeaseIDNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldLeaseID))
}

// LeaseIDEqualFold applies the EqualFold predicate on the "lease_id" field.
func LeaseIDEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldLeaseID, v))
}

// LeaseIDContainsFold applies the ContainsFold predicate on the "lease_id" field.
func LeaseIDContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldLeaseID, v))
}

// EnqueuedAtEQ applies the EQ predicate on the "enqueued_at" field.
func EnqueuedAtEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtNEQ applies the NEQ predicate on the "enqueued_at" field.
func EnqueuedAtNEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtIn applies the In predicate on the "enqueued_at" field.
func EnqueuedAtIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtNotIn applies the NotIn predicate on the "enqueued_at" field.
func EnqueuedAtNotIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtGT applies the GT predicate on the "enqueued_at" field.
func EnqueuedAtGT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldEnqueuedAt, v))
}

// EnqueuedAtGTE applies the GTE predicate on the "enqueued_at" field.
func EnqueuedAtGTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldEnqueuedAt, v))
}

// EnqueuedAtLT applies the LT predicate on the "enqueued_at" field.
func EnqueuedAtLT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldEnqueuedAt, v))
}

// EnqueuedAtLTE applies the LTE predicate on the "enqueued_at" field.
func EnqueuedAtLTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldEnqueuedAt, v))
}

// FailureSummaryEQ applies the EQ predicate on the "failure_summary" field.
func FailureSummaryEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldFailureSummary, v))
}

// FailureSummaryNEQ applies the NEQ predicate on the "failure_summary" field.
func FailureSummaryNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldFailureSummary, v))
}

// FailureSummaryIn applies the In predicate on the "failure_summary" field.
func FailureSummaryIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldFailureSummary, vs...))
}

// FailureSummaryNotIn applies the NotIn predicate on the "failure_summary" field.
func FailureSummaryNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldFailureSummary, vs...))
}

// FailureSummaryGT applies the GT predicate on the "failure_summary" field.
func FailureSummaryGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldFailureSummary, v))
}

// FailureSummaryGTE applies the GTE predicate on the "failure_summary" field.
func FailureSummaryGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldFailureSummary, v))
}

// FailureSummaryLT applies the LT predicate on the "failure_summary" field.
func FailureSummaryLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldFailureSummary, v))
}

// FailureSummaryLTE applies the LTE predicate on the "failure_summary" field.
func FailureSummaryLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldFailureSummary, v))
}

// FailureSummaryContains applies the Contains predicate on the "failure_summary" field.
func FailureSummaryContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldFailureSummary, v))
}

// FailureSummaryHasPrefix applies the HasPrefix predicate on the "failure_summary" field.
func FailureSummaryHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldFailureSummary, v))
}

// FailureSummaryHasSuffix applies the HasSuffix predicate on the "failure_summary" field.
func FailureSummaryHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldFailureSummary, v))
}

// FailureSummaryIsNil applies the IsNil predicate on the "failure_summary" field.
func FailureSummaryIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldFailureSummary))
}

// FailureSummaryNotNil applies the NotNil predicate on the "failure_summary" field.
func FailureSummaryNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldFailureSummary))
}

// FailureSummaryEqualFold applies the EqualFold predicate on the "failure_summary" field.
func FailureSummaryEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldFailureSummary, v))
}

// FailureSummaryContainsFold applies the ContainsFold predicate on the "failure_summary" field.
func FailureSummaryContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldFailureSummary, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueueMessage) predicate.QueueMessage {
	return predicate.QueueMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueueMessage) predicate.QueueMessage {
	return predicate.QueueMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueueMessage) predicate.QueueMessage {
	return predicate.QueueMessage(sql.NotPredicates(p))
}
