// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
)

// PhaseRunCreate is the builder for creating a PhaseRun entity.
type PhaseRunCreate struct {
	config
	mutation *PhaseRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProcessID sets the "process_id" field.
func (_c *PhaseRunCreate) SetProcessID(v string) *PhaseRunCreate {
	_c.mutation.SetProcessID(v)
	return _c
}

// SetPhaseName sets the "phase_name" field.
func (_c *PhaseRunCreate) SetPhaseName(v string) *PhaseRunCreate {
	_c.mutation.SetPhaseName(v)
	return _c
}

// SetPhaseIndex sets the "phase_index" field.
func (_c *PhaseRunCreate) SetPhaseIndex(v int) *PhaseRunCreate {
	_c.mutation.SetPhaseIndex(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *PhaseRunCreate) SetAttempt(v int) *PhaseRunCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *PhaseRunCreate) SetNillableAttempt(v *int) *PhaseRunCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PhaseRunCreate) SetStatus(v phaserun.Status) *PhaseRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PhaseRunCreate) SetNillableStatus(v *phaserun.Status) *PhaseRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PhaseRunCreate) SetStartedAt(v time.Time) *PhaseRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PhaseRunCreate) SetNillableStartedAt(v *time.Time) *PhaseRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PhaseRunCreate) SetCompletedAt(v time.Time) *PhaseRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PhaseRunCreate) SetNillableCompletedAt(v *time.Time) *PhaseRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *PhaseRunCreate) SetDurationMs(v int) *PhaseRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *PhaseRunCreate) SetNillableDurationMs(v *int) *PhaseRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *PhaseRunCreate) SetResult(v map[string]interface{}) *PhaseRunCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PhaseRunCreate) SetErrorMessage(v string) *PhaseRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PhaseRunCreate) SetNillableErrorMessage(v *string) *PhaseRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PhaseRunCreate) SetID(v string) *PhaseRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProcess sets the "process" edge to the MigrationProcess entity.
func (_c *PhaseRunCreate) SetProcess(v *MigrationProcess) *PhaseRunCreate {
	return _c.SetProcessID(v.ID)
}

// Mutation returns the PhaseRunMutation object of the builder.
func (_c *PhaseRunCreate) Mutation() *PhaseRunMutation {
	return _c.mutation
}

// Save creates the PhaseRun in the database.
func (_c *PhaseRunCreate) Save(ctx context.Context) (*PhaseRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhaseRunCreate) SaveX(ctx context.Context) *PhaseRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhaseRunCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := phaserun.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := phaserun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhaseRunCreate) check() error {
	if _, ok := _c.mutation.ProcessID(); !ok {
		return &ValidationError{Name: "process_id", err: errors.New(`ent: missing required field "PhaseRun.process_id"`)}
	}
	if _, ok := _c.mutation.PhaseName(); !ok {
		return &ValidationError{Name: "phase_name", err: errors.New(`ent: missing required field "PhaseRun.phase_name"`)}
	}
	if _, ok := _c.mutation.PhaseIndex(); !ok {
		return &ValidationError{Name: "phase_index", err: errors.New(`ent: missing required field "PhaseRun.phase_index"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "PhaseRun.attempt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PhaseRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := phaserun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PhaseRun.status": %w`, err)}
		}
	}
	if len(_c.mutation.ProcessIDs()) == 0 {
		return &ValidationError{Name: "process", err: errors.New(`ent: missing required edge "PhaseRun.process"`)}
	}
	return nil
}

func (_c *PhaseRunCreate) sqlSave(ctx context.Context) (*PhaseRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PhaseRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PhaseRunCreate) createSpec() (*PhaseRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PhaseRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(phaserun.Table, sqlgraph.NewFieldSpec(phaserun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PhaseName(); ok {
		_spec.SetField(phaserun.FieldPhaseName, field.TypeString, value)
		_node.PhaseName = value
	}
	if value, ok := _c.mutation.PhaseIndex(); ok {
		_spec.SetField(phaserun.FieldPhaseIndex, field.TypeInt, value)
		_node.PhaseIndex = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(phaserun.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(phaserun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(phaserun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(phaserun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(phaserun.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(phaserun.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(phaserun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.ProcessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   phaserun.ProcessTable,
			Columns: []string{phaserun.ProcessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(migrationprocess.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProcessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PhaseRun.Create().
//		SetProcessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhaseRunUpsert) {
//			SetProcessID(v+v).
//		}).
//		Exec(ctx)
func (_c *PhaseRunCreate) OnConflict(opts ...sql.ConflictOption) *PhaseRunUpsertOne {
	_c.conflict = opts
	return &PhaseRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PhaseRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PhaseRunCreate) OnConflictColumns(columns ...string) *PhaseRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PhaseRunUpsertOne{
		create: _c,
	}
}

type (
	// PhaseRunUpsertOne is the builder for "upsert"-ing
	//  one PhaseRun node.
	PhaseRunUpsertOne struct {
		create *PhaseRunCreate
	}

	// PhaseRunUpsert is the "OnConflict" setter.
	PhaseRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetPhaseName sets the "phase_name" field.
func (u *PhaseRunUpsert) SetPhaseName(v string) *PhaseRunUpsert {
	u.Set(phaserun.FieldPhaseName, v)
	return u
}

// UpdatePhaseName sets the "phase_name" field to the value that was provided on create.
func (u *PhaseRunUpsert) UpdatePhaseName() *PhaseRunUpsert {
	u.SetExcluded(phaserun.FieldPhaseName)
	return u
}

// SetPhaseIndex sets the "phase_index" field.
func (u *PhaseRunUpsert) SetPhaseIndex(v int) *PhaseRunUpsert {
	u.Set(phaserun.FieldPhaseIndex, v)
	return u
}

// UpdatePhaseIndex sets the "phase_index" field to the value that was provided on create.
func (u *PhaseRunUpsert) UpdatePhaseIndex() *PhaseRunUpsert {
	u.SetExcluded(phaserun.FieldPhaseIndex)
	return u
}

// AddPhaseIndex adds v to the "phase_index" field.
func (u *PhaseRunUpsert) AddPhaseIndex(v int) *PhaseRunUpsert {
	u.Add(phaserun.FieldPhaseIndex, v)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *PhaseRunUpsert) SetAttempt(v int) *PhaseRunUpsert {
	u.Set(phaserun.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PhaseRunUpsert) UpdateAttempt() *PhaseRunUpsert {
	u.SetExcluded(phaserun.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *PhaseRunUpsert) AddAttempt(v int) *PhaseRunUpsert {
	u.Add(phaserun.FieldAttempt, v)
	return u
}

// SetStatus sets the "status" field.
func (u *PhaseRunUpsert) SetStatus(v phaserun.Status) *PhaseRunUpsert {
	u.Set(phaserun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PhaseRunUpsert) UpdateStatus() *PhaseRunUpsert {
	u.SetExcluded(phaserun.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *PhaseRunUpsert) SetStartedAt(v time.Time) *PhaseRunUpsert {
	u.Set(phaserun.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PhaseRunUpsert) UpdateStartedAt() *PhaseRunUpsert {
	u.SetExcluded(phaserun.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PhaseRunUpsert) ClearStartedAt() *PhaseRunUpsert {
	u.SetNull(phaserun.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PhaseRunUpsert) SetCompletedAt(v time.Time) *PhaseRunUpsert {
	u.Set(phaserun.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PhaseRunUpsert) UpdateCompletedAt() *PhaseRunUpsert {
	u.SetExcluded(phaserun.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PhaseRunUpsert) ClearCompletedAt() *PhaseRunUpsert {
	u.SetNull(phaserun.FieldCompletedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *PhaseRunUpsert) SetDurationMs(v int) *PhaseRunUpsert {
	u.Set(phaserun.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *PhaseRunUpsert) UpdateDurationMs() *PhaseRunUpsert {
	u.SetExcluded(phaserun.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *PhaseRunUpsert) AddDurationMs(v int) *PhaseRunUpsert {
	u.Add(phaserun.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *PhaseRunUpsert) ClearDurationMs() *PhaseRunUpsert {
	u.SetNull(phaserun.FieldDurationMs)
	return u
}

// SetResult sets the "result" field.
func (u *PhaseRunUpsert) SetResult(v map[string]interface{}) *PhaseRunUpsert {
	u.Set(phaserun.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PhaseRunUpsert) UpdateResult() *PhaseRunUpsert {
	u.SetExcluded(phaserun.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *PhaseRunUpsert) ClearResult() *PhaseRunUpsert {
	u.SetNull(phaserun.FieldResult)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *PhaseRunUpsert) SetErrorMessage(v string) *PhaseRunUpsert {
	u.Set(phaserun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PhaseRunUpsert) UpdateErrorMessage() *PhaseRunUpsert {
	u.SetExcluded(phaserun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PhaseRunUpsert) ClearErrorMessage() *PhaseRunUpsert {
	u.SetNull(phaserun.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PhaseRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(phaserun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PhaseRunUpsertOne) UpdateNewValues() *PhaseRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(phaserun.FieldID)
		}
		if _, exists := u.create.mutation.ProcessID(); exists {
			s.SetIgnore(phaserun.FieldProcessID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PhaseRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PhaseRunUpsertOne) Ignore() *PhaseRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhaseRunUpsertOne) DoNothing() *PhaseRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhaseRunCreate.OnConflict
// documentation for more info.
func (u *PhaseRunUpsertOne) Update(set func(*PhaseRunUpsert)) *PhaseRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhaseRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhaseName sets the "phase_name" field.
func (u *PhaseRunUpsertOne) SetPhaseName(v string) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetPhaseName(v)
	})
}

// UpdatePhaseName sets the "phase_name" field to the value that was provided on create.
func (u *PhaseRunUpsertOne) UpdatePhaseName() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdatePhaseName()
	})
}

// SetPhaseIndex sets the "phase_index" field.
func (u *PhaseRunUpsertOne) SetPhaseIndex(v int) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetPhaseIndex(v)
	})
}

// AddPhaseIndex adds v to the "phase_index" field.
func (u *PhaseRunUpsertOne) AddPhaseIndex(v int) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.AddPhaseIndex(v)
	})
}

// UpdatePhaseIndex sets the "phase_index" field to the value that was provided on create.
func (u *PhaseRunUpsertOne) UpdatePhaseIndex() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdatePhaseIndex()
	})
}

// SetAttempt sets the "attempt" field.
func (u *PhaseRunUpsertOne) SetAttempt(v int) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *PhaseRunUpsertOne) AddAttempt(v int) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PhaseRunUpsertOne) UpdateAttempt() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateAttempt()
	})
}

// SetStatus sets the "status" field.
func (u *PhaseRunUpsertOne) SetStatus(v phaserun.Status) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PhaseRunUpsertOne) UpdateStatus() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PhaseRunUpsertOne) SetStartedAt(v time.Time) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PhaseRunUpsertOne) UpdateStartedAt() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PhaseRunUpsertOne) ClearStartedAt() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PhaseRunUpsertOne) SetCompletedAt(v time.Time) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PhaseRunUpsertOne) UpdateCompletedAt() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PhaseRunUpsertOne) ClearCompletedAt() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *PhaseRunUpsertOne) SetDurationMs(v int) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *PhaseRunUpsertOne) AddDurationMs(v int) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *PhaseRunUpsertOne) UpdateDurationMs() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *PhaseRunUpsertOne) ClearDurationMs() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.ClearDurationMs()
	})
}

// SetResult sets the "result" field.
func (u *PhaseRunUpsertOne) SetResult(v map[string]interface{}) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PhaseRunUpsertOne) UpdateResult() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *PhaseRunUpsertOne) ClearResult() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PhaseRunUpsertOne) SetErrorMessage(v string) *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PhaseRunUpsertOne) UpdateErrorMessage() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PhaseRunUpsertOne) ClearErrorMessage() *PhaseRunUpsertOne {
	return u.Update(func(s *PhaseRunUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *PhaseRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PhaseRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhaseRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PhaseRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PhaseRunUpsertOne.ID is not supported by MySQL driver. Use PhaseRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PhaseRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PhaseRunCreateBulk is the builder for creating many PhaseRun entities in bulk.
type PhaseRunCreateBulk struct {
	config
	err      error
	builders []*PhaseRunCreate
	conflict []sql.ConflictOption
}

// Save creates the PhaseRun entities in the database.
func (_c *PhaseRunCreateBulk) Save(ctx context.Context) ([]*PhaseRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PhaseRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhaseRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PhaseRunCreateBulk) SaveX(ctx context.Context) []*PhaseRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PhaseRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhaseRunUpsert) {
//			SetProcessID(v+v).
//		}).
//		Exec(ctx)
func (_c *PhaseRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *PhaseRunUpsertBulk {
	_c.conflict = opts
	return &PhaseRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PhaseRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PhaseRunCreateBulk) OnConflictColumns(columns ...string) *PhaseRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PhaseRunUpsertBulk{
		create: _c,
	}
}

// PhaseRunUpsertBulk is the builder for "upsert"-ing
// a bulk of PhaseRun nodes.
type PhaseRunUpsertBulk struct {
	create *PhaseRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PhaseRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(phaserun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PhaseRunUpsertBulk) UpdateNewValues() *PhaseRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(phaserun.FieldID)
			}
			if _, exists := b.mutation.ProcessID(); exists {
				s.SetIgnore(phaserun.FieldProcessID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PhaseRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PhaseRunUpsertBulk) Ignore() *PhaseRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhaseRunUpsertBulk) DoNothing() *PhaseRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhaseRunCreateBulk.OnConflict
// documentation for more info.
func (u *PhaseRunUpsertBulk) Update(set func(*PhaseRunUpsert)) *PhaseRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhaseRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhaseName sets the "phase_name" field.
func (u *PhaseRunUpsertBulk) SetPhaseName(v string) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetPhaseName(v)
	})
}

// UpdatePhaseName sets the "phase_name" field to the value that was provided on create.
func (u *PhaseRunUpsertBulk) UpdatePhaseName() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdatePhaseName()
	})
}

// SetPhaseIndex sets the "phase_index" field.
func (u *PhaseRunUpsertBulk) SetPhaseIndex(v int) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetPhaseIndex(v)
	})
}

// AddPhaseIndex adds v to the "phase_index" field.
func (u *PhaseRunUpsertBulk) AddPhaseIndex(v int) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.AddPhaseIndex(v)
	})
}

// UpdatePhaseIndex sets the "phase_index" field to the value that was provided on create.
func (u *PhaseRunUpsertBulk) UpdatePhaseIndex() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdatePhaseIndex()
	})
}

// SetAttempt sets the "attempt" field.
func (u *PhaseRunUpsertBulk) SetAttempt(v int) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *PhaseRunUpsertBulk) AddAttempt(v int) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PhaseRunUpsertBulk) UpdateAttempt() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateAttempt()
	})
}

// SetStatus sets the "status" field.
func (u *PhaseRunUpsertBulk) SetStatus(v phaserun.Status) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PhaseRunUpsertBulk) UpdateStatus() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PhaseRunUpsertBulk) SetStartedAt(v time.Time) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PhaseRunUpsertBulk) UpdateStartedAt() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PhaseRunUpsertBulk) ClearStartedAt() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PhaseRunUpsertBulk) SetCompletedAt(v time.Time) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PhaseRunUpsertBulk) UpdateCompletedAt() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PhaseRunUpsertBulk) ClearCompletedAt() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *PhaseRunUpsertBulk) SetDurationMs(v int) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *PhaseRunUpsertBulk) AddDurationMs(v int) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *PhaseRunUpsertBulk) UpdateDurationMs() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *PhaseRunUpsertBulk) ClearDurationMs() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.ClearDurationMs()
	})
}

// SetResult sets the "result" field.
func (u *PhaseRunUpsertBulk) SetResult(v map[string]interface{}) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PhaseRunUpsertBulk) UpdateResult() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *PhaseRunUpsertBulk) ClearResult() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PhaseRunUpsertBulk) SetErrorMessage(v string) *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PhaseRunUpsertBulk) UpdateErrorMessage() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PhaseRunUpsertBulk) ClearErrorMessage() *PhaseRunUpsertBulk {
	return u.Update(func(s *PhaseRunUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *PhaseRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PhaseRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PhaseRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhaseRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
