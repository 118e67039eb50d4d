// Code generated by ent, DO NOT EDIT.

package phaserun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldContainsFold(FieldID, id))
}

// ProcessID applies equality check predicate on the "process_id" field. It's identical to ProcessIDEQ.
func ProcessID(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldProcessID, v))
}

// PhaseName applies equality check predicate on the "phase_name" field. It's identical to PhaseNameEQ.
func PhaseName(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldPhaseName, v))
}

// PhaseIndex applies equality check predicate on the "phase_index" field. It's identical to PhaseIndexEQ.
func PhaseIndex(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldPhaseIndex, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldAttempt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ProcessIDEQ applies the EQ predicate on the "process_id" field.
func ProcessIDEQ(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldProcessID, v))
}

// ProcessIDNEQ applies the NEQ predicate on the "process_id" field.
func ProcessIDNEQ(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNEQ(FieldProcessID, v))
}

// ProcessIDIn applies the In predicate on the "process_id" field.
func ProcessIDIn(vs ...string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIn(FieldProcessID, vs...))
}

// ProcessIDNotIn applies the NotIn predicate on the "process_id" field.
func ProcessIDNotIn(vs ...string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotIn(FieldProcessID, vs...))
}

// ProcessIDGT applies the GT predicate on the "process_id" field.
func ProcessIDGT(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGT(FieldProcessID, v))
}

// ProcessIDGTE applies the GTE predicate on the "process_id" field.
func ProcessIDGTE(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGTE(FieldProcessID, v))
}

// ProcessIDLT applies the LT predicate on the "process_id" field.
func ProcessIDLT(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLT(FieldProcessID, v))
}

// ProcessIDLTE applies the LTE predicate on the "process_id" field.
func ProcessIDLTE(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLTE(FieldProcessID, v))
}

// ProcessIDContains applies the Contains predicate on the "process_id" field.
func ProcessIDContains(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldContains(FieldProcessID, v))
}

// ProcessIDHasPrefix applies the HasPrefix predicate on the "process_id" field.
func ProcessIDHasPrefix(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldHasPrefix(FieldProcessID, v))
}

// ProcessIDHasSuffix applies the HasSuffix predicate on the "process_id" field.
func ProcessIDHasSuffix(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldHasSuffix(FieldProcessID, v))
}

// ProcessIDEqualFold applies the EqualFold predicate on the "process_id" field.
func ProcessIDEqualFold(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEqualFold(FieldProcessID, v))
}

// ProcessIDContainsFold applies the ContainsFold predicate on the "process_id" field.
func ProcessIDContainsFold(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldContainsFold(FieldProcessID, v))
}

// PhaseNameEQ applies the EQ predicate on the "phase_name" field.
func PhaseNameEQ(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldPhaseName, v))
}

// PhaseNameNEQ applies the NEQ predicate on the "phase_name" field.
func PhaseNameNEQ(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNEQ(FieldPhaseName, v))
}

// PhaseNameIn applies the In predicate on the "phase_name" field.
func PhaseNameIn(vs ...string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIn(FieldPhaseName, vs...))
}

// PhaseNameNotIn applies the NotIn predicate on the "phase_name" field.
func PhaseNameNotIn(vs ...string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotIn(FieldPhaseName, vs...))
}

// PhaseNameGT applies the GT predicate on the "phase_name" field.
func PhaseNameGT(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGT(FieldPhaseName, v))
}

// PhaseNameGTE applies the GTE predicate on the "phase_name" field.
func PhaseNameGTE(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGTE(FieldPhaseName, v))
}

// PhaseNameLT applies the LT predicate on the "phase_name" field.
func PhaseNameLT(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLT(FieldPhaseName, v))
}

// PhaseNameLTE applies the LTE predicate on the "phase_name" field.
func PhaseNameLTE(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLTE(FieldPhaseName, v))
}

// PhaseNameContains applies the Contains predicate on the "phase_name" field.
func PhaseNameContains(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldContains(FieldPhaseName, v))
}

// PhaseNameHasPrefix applies the HasPrefix predicate on the "phase_name" field.
func PhaseNameHasPrefix(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldHasPrefix(FieldPhaseName, v))
}

// PhaseNameHasSuffix applies the HasSuffix predicate on the "phase_name" field.
func PhaseNameHasSuffix(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldHasSuffix(FieldPhaseName, v))
}

// PhaseNameEqualFold applies the EqualFold predicate on the "phase_name" field.
func PhaseNameEqualFold(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEqualFold(FieldPhaseName, v))
}

// PhaseNameContainsFold applies the ContainsFold predicate on the "phase_name" field.
func PhaseNameContainsFold(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldContainsFold(FieldPhaseName, v))
}

// PhaseIndexEQ applies the EQ predicate on the "phase_index" field.
func PhaseIndexEQ(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldPhaseIndex, v))
}

// PhaseIndexNEQ applies the NEQ predicate on the "phase_index" field.
func PhaseIndexNEQ(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNEQ(FieldPhaseIndex, v))
}

// PhaseIndexIn applies the In predicate on the "phase_index" field.
func PhaseIndexIn(vs ...int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIn(FieldPhaseIndex, vs...))
}

// PhaseIndexNotIn applies the NotIn predicate on the "phase_index" field.
func PhaseIndexNotIn(vs ...int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotIn(FieldPhaseIndex, vs...))
}

// PhaseIndexGT applies the GT predicate on the "phase_index" field.
func PhaseIndexGT(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGT(FieldPhaseIndex, v))
}

// PhaseIndexGTE applies the GTE predicate on the "phase_index" field.
func PhaseIndexGTE(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGTE(FieldPhaseIndex, v))
}

// PhaseIndexLT applies the LT predicate on the "phase_index" field.
func PhaseIndexLT(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLT(FieldPhaseIndex, v))
}

// PhaseIndexLTE applies the LTE predicate on the "phase_index" field.
func PhaseIndexLTE(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLTE(FieldPhaseIndex, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLTE(FieldAttempt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotNull(FieldDurationMs))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotNull(FieldResult))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PhaseRun {
	return predicate.PhaseRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasProcess applies the HasEdge predicate on the "process" edge.
func HasProcess() predicate.PhaseRun {
	return predicate.PhaseRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProcessTable, ProcessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessWith applies the HasEdge predicate on the "process" edge with a given conditions (other predicates).
func HasProcessWith(preds ...predicate.MigrationProcess) predicate.PhaseRun {
	return predicate.PhaseRun(func(s *sql.Selector) {
		step := newProcessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PhaseRun) predicate.PhaseRun {
	return predicate.PhaseRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PhaseRun) predicate.PhaseRun {
	return predicate.PhaseRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PhaseRun) predicate.PhaseRun {
	return predicate.PhaseRun(sql.NotPredicates(p))
}
