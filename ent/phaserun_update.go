// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
)

// PhaseRunUpdate is the builder for updating PhaseRun entities.
type PhaseRunUpdate struct {
	config
	hooks    []Hook
	mutation *PhaseRunMutation
}

// Where appends a list predicates to the PhaseRunUpdate builder.
func (_u *PhaseRunUpdate) Where(ps ...predicate.PhaseRun) *PhaseRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhaseName sets the "phase_name" field.
func (_u *PhaseRunUpdate) SetPhaseName(v string) *PhaseRunUpdate {
	_u.mutation.SetPhaseName(v)
	return _u
}

// SetNillablePhaseName sets the "phase_name" field if the given value is not nil.
func (_u *PhaseRunUpdate) SetNillablePhaseName(v *string) *PhaseRunUpdate {
	if v != nil {
		_u.SetPhaseName(*v)
	}
	return _u
}

// SetPhaseIndex sets the "phase_index" field.
func (_u *PhaseRunUpdate) SetPhaseIndex(v int) *PhaseRunUpdate {
	_u.mutation.ResetPhaseIndex()
	_u.mutation.SetPhaseIndex(v)
	return _u
}

// SetNillablePhaseIndex sets the "phase_index" field if the given value is not nil.
func (_u *PhaseRunUpdate) SetNillablePhaseIndex(v *int) *PhaseRunUpdate {
	if v != nil {
		_u.SetPhaseIndex(*v)
	}
	return _u
}

// AddPhaseIndex adds value to the "phase_index" field.
func (_u *PhaseRunUpdate) AddPhaseIndex(v int) *PhaseRunUpdate {
	_u.mutation.AddPhaseIndex(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *PhaseRunUpdate) SetAttempt(v int) *PhaseRunUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *PhaseRunUpdate) SetNillableAttempt(v *int) *PhaseRunUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *PhaseRunUpdate) AddAttempt(v int) *PhaseRunUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PhaseRunUpdate) SetStatus(v phaserun.Status) *PhaseRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PhaseRunUpdate) SetNillableStatus(v *phaserun.Status) *PhaseRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PhaseRunUpdate) SetStartedAt(v time.Time) *PhaseRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PhaseRunUpdate) SetNillableStartedAt(v *time.Time) *PhaseRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PhaseRunUpdate) ClearStartedAt() *PhaseRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PhaseRunUpdate) SetCompletedAt(v time.Time) *PhaseRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PhaseRunUpdate) SetNillableCompletedAt(v *time.Time) *PhaseRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PhaseRunUpdate) ClearCompletedAt() *PhaseRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PhaseRunUpdate) SetDurationMs(v int) *PhaseRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PhaseRunUpdate) SetNillableDurationMs(v *int) *PhaseRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PhaseRunUpdate) AddDurationMs(v int) *PhaseRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *PhaseRunUpdate) ClearDurationMs() *PhaseRunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetResult sets the "result" field.
func (_u *PhaseRunUpdate) SetResult(v map[string]interface{}) *PhaseRunUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *PhaseRunUpdate) ClearResult() *PhaseRunUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PhaseRunUpdate) SetErrorMessage(v string) *PhaseRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PhaseRunUpdate) SetNillableErrorMessage(v *string) *PhaseRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PhaseRunUpdate) ClearErrorMessage() *PhaseRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the PhaseRunMutation object of the builder.
func (_u *PhaseRunUpdate) Mutation() *PhaseRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhaseRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhaseRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := phaserun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PhaseRun.status": %w`, err)}
		}
	}
	if _u.mutation.ProcessCleared() && len(_u.mutation.ProcessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhaseRun.process"`)
	}
	return nil
}

func (_u *PhaseRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phaserun.Table, phaserun.Columns, sqlgraph.NewFieldSpec(phaserun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PhaseName(); ok {
		_spec.SetField(phaserun.FieldPhaseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhaseIndex(); ok {
		_spec.SetField(phaserun.FieldPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseIndex(); ok {
		_spec.AddField(phaserun.FieldPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(phaserun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(phaserun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(phaserun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(phaserun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(phaserun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(phaserun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(phaserun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(phaserun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(phaserun.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(phaserun.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(phaserun.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(phaserun.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(phaserun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(phaserun.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phaserun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhaseRunUpdateOne is the builder for updating a single PhaseRun entity.
type PhaseRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhaseRunMutation
}

// SetPhaseName sets the "phase_name" field.
func (_u *PhaseRunUpdateOne) SetPhaseName(v string) *PhaseRunUpdateOne {
	_u.mutation.SetPhaseName(v)
	return _u
}

// SetNillablePhaseName sets the "phase_name" field if the given value is not nil.
func (_u *PhaseRunUpdateOne) SetNillablePhaseName(v *string) *PhaseRunUpdateOne {
	if v != nil {
		_u.SetPhaseName(*v)
	}
	return _u
}

// SetPhaseIndex sets the "phase_index" field.
func (_u *PhaseRunUpdateOne) SetPhaseIndex(v int) *PhaseRunUpdateOne {
	_u.mutation.ResetPhaseIndex()
	_u.mutation.SetPhaseIndex(v)
	return _u
}

// SetNillablePhaseIndex sets the "phase_index" field if the given value is not nil.
func (_u *PhaseRunUpdateOne) SetNillablePhaseIndex(v *int) *PhaseRunUpdateOne {
	if v != nil {
		_u.SetPhaseIndex(*v)
	}
	return _u
}

// AddPhaseIndex adds value to the "phase_index" field.
func (_u *PhaseRunUpdateOne) AddPhaseIndex(v int) *PhaseRunUpdateOne {
	_u.mutation.AddPhaseIndex(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *PhaseRunUpdateOne) SetAttempt(v int) *PhaseRunUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *PhaseRunUpdateOne) SetNillableAttempt(v *int) *PhaseRunUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *PhaseRunUpdateOne) AddAttempt(v int) *PhaseRunUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PhaseRunUpdateOne) SetStatus(v phaserun.Status) *PhaseRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PhaseRunUpdateOne) SetNillableStatus(v *phaserun.Status) *PhaseRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PhaseRunUpdateOne) SetStartedAt(v time.Time) *PhaseRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PhaseRunUpdateOne) SetNillableStartedAt(v *time.Time) *PhaseRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PhaseRunUpdateOne) ClearStartedAt() *PhaseRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PhaseRunUpdateOne) SetCompletedAt(v time.Time) *PhaseRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PhaseRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PhaseRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PhaseRunUpdateOne) ClearCompletedAt() *PhaseRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PhaseRunUpdateOne) SetDurationMs(v int) *PhaseRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PhaseRunUpdateOne) SetNillableDurationMs(v *int) *PhaseRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PhaseRunUpdateOne) AddDurationMs(v int) *PhaseRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *PhaseRunUpdateOne) ClearDurationMs() *PhaseRunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetResult sets the "result" field.
func (_u *PhaseRunUpdateOne) SetResult(v map[string]interface{}) *PhaseRunUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *PhaseRunUpdateOne) ClearResult() *PhaseRunUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PhaseRunUpdateOne) SetErrorMessage(v string) *PhaseRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PhaseRunUpdateOne) SetNillableErrorMessage(v *string) *PhaseRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PhaseRunUpdateOne) ClearErrorMessage() *PhaseRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the PhaseRunMutation object of the builder.
func (_u *PhaseRunUpdateOne) Mutation() *PhaseRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the PhaseRunUpdate builder.
func (_u *PhaseRunUpdateOne) Where(ps ...predicate.PhaseRun) *PhaseRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhaseRunUpdateOne) Select(field string, fields ...string) *PhaseRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PhaseRun entity.
func (_u *PhaseRunUpdateOne) Save(ctx context.Context) (*PhaseRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseRunUpdateOne) SaveX(ctx context.Context) *PhaseRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhaseRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := phaserun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PhaseRun.status": %w`, err)}
		}
	}
	if _u.mutation.ProcessCleared() && len(_u.mutation.ProcessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhaseRun.process"`)
	}
	return nil
}

func (_u *PhaseRunUpdateOne) sqlSave(ctx context.Context) (_node *PhaseRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phaserun.Table, phaserun.Columns, sqlgraph.NewFieldSpec(phaserun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PhaseRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, phaserun.FieldID)
		for _, f := range fields {
			if !phaserun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != phaserun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PhaseName(); ok {
		_spec.SetField(phaserun.FieldPhaseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhaseIndex(); ok {
		_spec.SetField(phaserun.FieldPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseIndex(); ok {
		_spec.AddField(phaserun.FieldPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(phaserun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(phaserun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(phaserun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(phaserun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(phaserun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(phaserun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(phaserun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(phaserun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(phaserun.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(phaserun.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(phaserun.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(phaserun.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(phaserun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(phaserun.FieldErrorMessage, field.TypeString)
	}
	_node = &PhaseRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phaserun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
