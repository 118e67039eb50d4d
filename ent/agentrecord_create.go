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
	"github.com/cloudshift-ai/cloudshift/ent/agentrecord"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
)

// AgentRecordCreate is the builder for creating a AgentRecord entity.
type AgentRecordCreate struct {
	config
	mutation *AgentRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProcessID sets the "process_id" field.
func (_c *AgentRecordCreate) SetProcessID(v string) *AgentRecordCreate {
	_c.mutation.SetProcessID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentRecordCreate) SetAgentName(v string) *AgentRecordCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetCurrentAction sets the "current_action" field.
func (_c *AgentRecordCreate) SetCurrentAction(v string) *AgentRecordCreate {
	_c.mutation.SetCurrentAction(v)
	return _c
}

// SetNillableCurrentAction sets the "current_action" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableCurrentAction(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetCurrentAction(*v)
	}
	return _c
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (_c *AgentRecordCreate) SetLastMessagePreview(v string) *AgentRecordCreate {
	_c.mutation.SetLastMessagePreview(v)
	return _c
}

// SetNillableLastMessagePreview sets the "last_message_preview" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableLastMessagePreview(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetLastMessagePreview(*v)
	}
	return _c
}

// SetIsSpeaking sets the "is_speaking" field.
func (_c *AgentRecordCreate) SetIsSpeaking(v bool) *AgentRecordCreate {
	_c.mutation.SetIsSpeaking(v)
	return _c
}

// SetNillableIsSpeaking sets the "is_speaking" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableIsSpeaking(v *bool) *AgentRecordCreate {
	if v != nil {
		_c.SetIsSpeaking(*v)
	}
	return _c
}

// SetIsThinking sets the "is_thinking" field.
func (_c *AgentRecordCreate) SetIsThinking(v bool) *AgentRecordCreate {
	_c.mutation.SetIsThinking(v)
	return _c
}

// SetNillableIsThinking sets the "is_thinking" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableIsThinking(v *bool) *AgentRecordCreate {
	if v != nil {
		_c.SetIsThinking(*v)
	}
	return _c
}

// SetParticipationStatus sets the "participation_status" field.
func (_c *AgentRecordCreate) SetParticipationStatus(v string) *AgentRecordCreate {
	_c.mutation.SetParticipationStatus(v)
	return _c
}

// SetNillableParticipationStatus sets the "participation_status" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableParticipationStatus(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetParticipationStatus(*v)
	}
	return _c
}

// SetRecentActivity sets the "recent_activity" field.
func (_c *AgentRecordCreate) SetRecentActivity(v []map[string]interface{}) *AgentRecordCreate {
	_c.mutation.SetRecentActivity(v)
	return _c
}

// SetLastToolUsed sets the "last_tool_used" field.
func (_c *AgentRecordCreate) SetLastToolUsed(v string) *AgentRecordCreate {
	_c.mutation.SetLastToolUsed(v)
	return _c
}

// SetNillableLastToolUsed sets the "last_tool_used" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableLastToolUsed(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetLastToolUsed(*v)
	}
	return _c
}

// SetLastUpdateTime sets the "last_update_time" field.
func (_c *AgentRecordCreate) SetLastUpdateTime(v time.Time) *AgentRecordCreate {
	_c.mutation.SetLastUpdateTime(v)
	return _c
}

// SetNillableLastUpdateTime sets the "last_update_time" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableLastUpdateTime(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetLastUpdateTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentRecordCreate) SetID(v string) *AgentRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProcess sets the "process" edge to the MigrationProcess entity.
func (_c *AgentRecordCreate) SetProcess(v *MigrationProcess) *AgentRecordCreate {
	return _c.SetProcessID(v.ID)
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_c *AgentRecordCreate) Mutation() *AgentRecordMutation {
	return _c.mutation
}

// Save creates the AgentRecord in the database.
func (_c *AgentRecordCreate) Save(ctx context.Context) (*AgentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRecordCreate) SaveX(ctx context.Context) *AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRecordCreate) defaults() {
	if _, ok := _c.mutation.IsSpeaking(); !ok {
		v := agentrecord.DefaultIsSpeaking
		_c.mutation.SetIsSpeaking(v)
	}
	if _, ok := _c.mutation.IsThinking(); !ok {
		v := agentrecord.DefaultIsThinking
		_c.mutation.SetIsThinking(v)
	}
	if _, ok := _c.mutation.ParticipationStatus(); !ok {
		v := agentrecord.DefaultParticipationStatus
		_c.mutation.SetParticipationStatus(v)
	}
	if _, ok := _c.mutation.LastUpdateTime(); !ok {
		v := agentrecord.DefaultLastUpdateTime()
		_c.mutation.SetLastUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRecordCreate) check() error {
	if _, ok := _c.mutation.ProcessID(); !ok {
		return &ValidationError{Name: "process_id", err: errors.New(`ent: missing required field "AgentRecord.process_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentRecord.agent_name"`)}
	}
	if _, ok := _c.mutation.IsSpeaking(); !ok {
		return &ValidationError{Name: "is_speaking", err: errors.New(`ent: missing required field "AgentRecord.is_speaking"`)}
	}
	if _, ok := _c.mutation.IsThinking(); !ok {
		return &ValidationError{Name: "is_thinking", err: errors.New(`ent: missing required field "AgentRecord.is_thinking"`)}
	}
	if _, ok := _c.mutation.ParticipationStatus(); !ok {
		return &ValidationError{Name: "participation_status", err: errors.New(`ent: missing required field "AgentRecord.participation_status"`)}
	}
	if _, ok := _c.mutation.LastUpdateTime(); !ok {
		return &ValidationError{Name: "last_update_time", err: errors.New(`ent: missing required field "AgentRecord.last_update_time"`)}
	}
	if len(_c.mutation.ProcessIDs()) == 0 {
		return &ValidationError{Name: "process", err: errors.New(`ent: missing required edge "AgentRecord.process"`)}
	}
	return nil
}

func (_c *AgentRecordCreate) sqlSave(ctx context.Context) (*AgentRecord, error) {
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
			return nil, fmt.Errorf("unexpected AgentRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentRecordCreate) createSpec() (*AgentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrecord.Table, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentrecord.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.CurrentAction(); ok {
		_spec.SetField(agentrecord.FieldCurrentAction, field.TypeString, value)
		_node.CurrentAction = value
	}
	if value, ok := _c.mutation.LastMessagePreview(); ok {
		_spec.SetField(agentrecord.FieldLastMessagePreview, field.TypeString, value)
		_node.LastMessagePreview = value
	}
	if value, ok := _c.mutation.IsSpeaking(); ok {
		_spec.SetField(agentrecord.FieldIsSpeaking, field.TypeBool, value)
		_node.IsSpeaking = value
	}
	if value, ok := _c.mutation.IsThinking(); ok {
		_spec.SetField(agentrecord.FieldIsThinking, field.TypeBool, value)
		_node.IsThinking = value
	}
	if value, ok := _c.mutation.ParticipationStatus(); ok {
		_spec.SetField(agentrecord.FieldParticipationStatus, field.TypeString, value)
		_node.ParticipationStatus = value
	}
	if value, ok := _c.mutation.RecentActivity(); ok {
		_spec.SetField(agentrecord.FieldRecentActivity, field.TypeJSON, value)
		_node.RecentActivity = value
	}
	if value, ok := _c.mutation.LastToolUsed(); ok {
		_spec.SetField(agentrecord.FieldLastToolUsed, field.TypeString, value)
		_node.LastToolUsed = value
	}
	if value, ok := _c.mutation.LastUpdateTime(); ok {
		_spec.SetField(agentrecord.FieldLastUpdateTime, field.TypeTime, value)
		_node.LastUpdateTime = value
	}
	if nodes := _c.mutation.ProcessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentrecord.ProcessTable,
			Columns: []string{agentrecord.ProcessColumn},
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
//	client.AgentRecord.Create().
//		SetProcessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentRecordUpsert) {
//			SetProcessID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentRecordCreate) OnConflict(opts ...sql.ConflictOption) *AgentRecordUpsertOne {
	_c.conflict = opts
	return &AgentRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentRecordCreate) OnConflictColumns(columns ...string) *AgentRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentRecordUpsertOne{
		create: _c,
	}
}

type (
	// AgentRecordUpsertOne is the builder for "upsert"-ing
	//  one AgentRecord node.
	AgentRecordUpsertOne struct {
		create *AgentRecordCreate
	}

	// AgentRecordUpsert is the "OnConflict" setter.
	AgentRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetCurrentAction sets the "current_action" field.
func (u *AgentRecordUpsert) SetCurrentAction(v string) *AgentRecordUpsert {
	u.Set(agentrecord.FieldCurrentAction, v)
	return u
}

// UpdateCurrentAction sets the "current_action" field to the value that was provided on create.
func (u *AgentRecordUpsert) UpdateCurrentAction() *AgentRecordUpsert {
	u.SetExcluded(agentrecord.FieldCurrentAction)
	return u
}

// ClearCurrentAction clears the value of the "current_action" field.
func (u *AgentRecordUpsert) ClearCurrentAction() *AgentRecordUpsert {
	u.SetNull(agentrecord.FieldCurrentAction)
	return u
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (u *AgentRecordUpsert) SetLastMessagePreview(v string) *AgentRecordUpsert {
	u.Set(agentrecord.FieldLastMessagePreview, v)
	return u
}

// UpdateLastMessagePreview sets the "last_message_preview" field to the value that was provided on create.
func (u *AgentRecordUpsert) UpdateLastMessagePreview() *AgentRecordUpsert {
	u.SetExcluded(agentrecord.FieldLastMessagePreview)
	return u
}

// ClearLastMessagePreview clears the value of the "last_message_preview" field.
func (u *AgentRecordUpsert) ClearLastMessagePreview() *AgentRecordUpsert {
	u.SetNull(agentrecord.FieldLastMessagePreview)
	return u
}

// SetIsSpeaking sets the "is_speaking" field.
func (u *AgentRecordUpsert) SetIsSpeaking(v bool) *AgentRecordUpsert {
	u.Set(agentrecord.FieldIsSpeaking, v)
	return u
}

// UpdateIsSpeaking sets the "is_speaking" field to the value that was provided on create.
func (u *AgentRecordUpsert) UpdateIsSpeaking() *AgentRecordUpsert {
	u.SetExcluded(agentrecord.FieldIsSpeaking)
	return u
}

// SetIsThinking sets the "is_thinking" field.
func (u *AgentRecordUpsert) SetIsThinking(v bool) *AgentRecordUpsert {
	u.Set(agentrecord.FieldIsThinking, v)
	return u
}

// UpdateIsThinking sets the "is_thinking" field to the value that was provided on create.
func (u *AgentRecordUpsert) UpdateIsThinking() *AgentRecordUpsert {
	u.SetExcluded(agentrecord.FieldIsThinking)
	return u
}

// SetParticipationStatus sets the "participation_status" field.
func (u *AgentRecordUpsert) SetParticipationStatus(v string) *AgentRecordUpsert {
	u.Set(agentrecord.FieldParticipationStatus, v)
	return u
}

// UpdateParticipationStatus sets the "participation_status" field to the value that was provided on create.
func (u *AgentRecordUpsert) UpdateParticipationStatus() *AgentRecordUpsert {
	u.SetExcluded(agentrecord.FieldParticipationStatus)
	return u
}

// SetRecentActivity sets the "recent_activity" field.
func (u *AgentRecordUpsert) SetRecentActivity(v []map[string]interface{}) *AgentRecordUpsert {
	u.Set(agentrecord.FieldRecentActivity, v)
	return u
}

// UpdateRecentActivity sets the "recent_activity" field to the value that was provided on create.
func (u *AgentRecordUpsert) UpdateRecentActivity() *AgentRecordUpsert {
	u.SetExcluded(agentrecord.FieldRecentActivity)
	return u
}

// ClearRecentActivity clears the value of the "recent_activity" field.
func (u *AgentRecordUpsert) ClearRecentActivity() *AgentRecordUpsert {
	u.SetNull(agentrecord.FieldRecentActivity)
	return u
}

// SetLastToolUsed sets the "last_tool_used" field.
func (u *AgentRecordUpsert) SetLastToolUsed(v string) *AgentRecordUpsert {
	u.Set(agentrecord.FieldLastToolUsed, v)
	return u
}

// UpdateLastToolUsed sets the "last_tool_used" field to the value that was provided on create.
func (u *AgentRecordUpsert) UpdateLastToolUsed() *AgentRecordUpsert {
	u.SetExcluded(agentrecord.FieldLastToolUsed)
	return u
}

// ClearLastToolUsed clears the value of the "last_tool_used" field.
func (u *AgentRecordUpsert) ClearLastToolUsed() *AgentRecordUpsert {
	u.SetNull(agentrecord.FieldLastToolUsed)
	return u
}

// SetLastUpdateTime sets the "last_update_time" field.
func (u *AgentRecordUpsert) SetLastUpdateTime(v time.Time) *AgentRecordUpsert {
	u.Set(agentrecord.FieldLastUpdateTime, v)
	return u
}

// UpdateLastUpdateTime sets the "last_update_time" field to the value that was provided on create.
func (u *AgentRecordUpsert) UpdateLastUpdateTime() *AgentRecordUpsert {
	u.SetExcluded(agentrecord.FieldLastUpdateTime)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentRecordUpsertOne) UpdateNewValues() *AgentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentrecord.FieldID)
		}
		if _, exists := u.create.mutation.ProcessID(); exists {
			s.SetIgnore(agentrecord.FieldProcessID)
		}
		if _, exists := u.create.mutation.AgentName(); exists {
			s.SetIgnore(agentrecord.FieldAgentName)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentRecordUpsertOne) Ignore() *AgentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentRecordUpsertOne) DoNothing() *AgentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentRecordCreate.OnConflict
// documentation for more info.
func (u *AgentRecordUpsertOne) Update(set func(*AgentRecordUpsert)) *AgentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentAction sets the "current_action" field.
func (u *AgentRecordUpsertOne) SetCurrentAction(v string) *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetCurrentAction(v)
	})
}

// UpdateCurrentAction sets the "current_action" field to the value that was provided on create.
func (u *AgentRecordUpsertOne) UpdateCurrentAction() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateCurrentAction()
	})
}

// ClearCurrentAction clears the value of the "current_action" field.
func (u *AgentRecordUpsertOne) ClearCurrentAction() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.ClearCurrentAction()
	})
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (u *AgentRecordUpsertOne) SetLastMessagePreview(v string) *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetLastMessagePreview(v)
	})
}

// UpdateLastMessagePreview sets the "last_message_preview" field to the value that was provided on create.
func (u *AgentRecordUpsertOne) UpdateLastMessagePreview() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateLastMessagePreview()
	})
}

// ClearLastMessagePreview clears the value of the "last_message_preview" field.
func (u *AgentRecordUpsertOne) ClearLastMessagePreview() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.ClearLastMessagePreview()
	})
}

// SetIsSpeaking sets the "is_speaking" field.
func (u *AgentRecordUpsertOne) SetIsSpeaking(v bool) *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetIsSpeaking(v)
	})
}

// UpdateIsSpeaking sets the "is_speaking" field to the value that was provided on create.
func (u *AgentRecordUpsertOne) UpdateIsSpeaking() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateIsSpeaking()
	})
}

// SetIsThinking sets the "is_thinking" field.
func (u *AgentRecordUpsertOne) SetIsThinking(v bool) *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetIsThinking(v)
	})
}

// UpdateIsThinking sets the "is_thinking" field to the value that was provided on create.
func (u *AgentRecordUpsertOne) UpdateIsThinking() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateIsThinking()
	})
}

// SetParticipationStatus sets the "participation_status" field.
func (u *AgentRecordUpsertOne) SetParticipationStatus(v string) *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetParticipationStatus(v)
	})
}

// UpdateParticipationStatus sets the "participation_status" field to the value that was provided on create.
func (u *AgentRecordUpsertOne) UpdateParticipationStatus() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateParticipationStatus()
	})
}

// SetRecentActivity sets the "recent_activity" field.
func (u *AgentRecordUpsertOne) SetRecentActivity(v []map[string]interface{}) *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetRecentActivity(v)
	})
}

// UpdateRecentActivity sets the "recent_activity" field to the value that was provided on create.
func (u *AgentRecordUpsertOne) UpdateRecentActivity() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateRecentActivity()
	})
}

// ClearRecentActivity clears the value of the "recent_activity" field.
func (u *AgentRecordUpsertOne) ClearRecentActivity() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.ClearRecentActivity()
	})
}

// SetLastToolUsed sets the "last_tool_used" field.
func (u *AgentRecordUpsertOne) SetLastToolUsed(v string) *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetLastToolUsed(v)
	})
}

// UpdateLastToolUsed sets the "last_tool_used" field to the value that was provided on create.
func (u *AgentRecordUpsertOne) UpdateLastToolUsed() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateLastToolUsed()
	})
}

// ClearLastToolUsed clears the value of the "last_tool_used" field.
func (u *AgentRecordUpsertOne) ClearLastToolUsed() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.ClearLastToolUsed()
	})
}

// SetLastUpdateTime sets the "last_update_time" field.
func (u *AgentRecordUpsertOne) SetLastUpdateTime(v time.Time) *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetLastUpdateTime(v)
	})
}

// UpdateLastUpdateTime sets the "last_update_time" field to the value that was provided on create.
func (u *AgentRecordUpsertOne) UpdateLastUpdateTime() *AgentRecordUpsertOne {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateLastUpdateTime()
	})
}

// Exec executes the query.
func (u *AgentRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentRecordUpsertOne.ID is not supported by MySQL driver. Use AgentRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentRecordCreateBulk is the builder for creating many AgentRecord entities in bulk.
type AgentRecordCreateBulk struct {
	config
	err      error
	builders []*AgentRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentRecord entities in the database.
func (_c *AgentRecordCreateBulk) Save(ctx context.Context) ([]*AgentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRecordMutation)
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
func (_c *AgentRecordCreateBulk) SaveX(ctx context.Context) []*AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentRecordUpsert) {
//			SetProcessID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentRecordUpsertBulk {
	_c.conflict = opts
	return &AgentRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentRecordCreateBulk) OnConflictColumns(columns ...string) *AgentRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentRecordUpsertBulk{
		create: _c,
	}
}

// AgentRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentRecord nodes.
type AgentRecordUpsertBulk struct {
	create *AgentRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentRecordUpsertBulk) UpdateNewValues() *AgentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentrecord.FieldID)
			}
			if _, exists := b.mutation.ProcessID(); exists {
				s.SetIgnore(agentrecord.FieldProcessID)
			}
			if _, exists := b.mutation.AgentName(); exists {
				s.SetIgnore(agentrecord.FieldAgentName)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentRecordUpsertBulk) Ignore() *AgentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentRecordUpsertBulk) DoNothing() *AgentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentRecordCreateBulk.OnConflict
// documentation for more info.
func (u *AgentRecordUpsertBulk) Update(set func(*AgentRecordUpsert)) *AgentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentAction sets the "current_action" field.
func (u *AgentRecordUpsertBulk) SetCurrentAction(v string) *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetCurrentAction(v)
	})
}

// UpdateCurrentAction sets the "current_action" field to the value that was provided on create.
func (u *AgentRecordUpsertBulk) UpdateCurrentAction() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateCurrentAction()
	})
}

// ClearCurrentAction clears the value of the "current_action" field.
func (u *AgentRecordUpsertBulk) ClearCurrentAction() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.ClearCurrentAction()
	})
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (u *AgentRecordUpsertBulk) SetLastMessagePreview(v string) *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetLastMessagePreview(v)
	})
}

// UpdateLastMessagePreview sets the "last_message_preview" field to the value that was provided on create.
func (u *AgentRecordUpsertBulk) UpdateLastMessagePreview() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateLastMessagePreview()
	})
}

// ClearLastMessagePreview clears the value of the "last_message_preview" field.
func (u *AgentRecordUpsertBulk) ClearLastMessagePreview() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.ClearLastMessagePreview()
	})
}

// SetIsSpeaking sets the "is_speaking" field.
func (u *AgentRecordUpsertBulk) SetIsSpeaking(v bool) *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetIsSpeaking(v)
	})
}

// UpdateIsSpeaking sets the "is_speaking" field to the value that was provided on create.
func (u *AgentRecordUpsertBulk) UpdateIsSpeaking() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateIsSpeaking()
	})
}

// SetIsThinking sets the "is_thinking" field.
func (u *AgentRecordUpsertBulk) SetIsThinking(v bool) *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetIsThinking(v)
	})
}

// UpdateIsThinking sets the "is_thinking" field to the value that was provided on create.
func (u *AgentRecordUpsertBulk) UpdateIsThinking() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateIsThinking()
	})
}

// SetParticipationStatus sets the "participation_status" field.
func (u *AgentRecordUpsertBulk) SetParticipationStatus(v string) *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetParticipationStatus(v)
	})
}

// UpdateParticipationStatus sets the "participation_status" field to the value that was provided on create.
func (u *AgentRecordUpsertBulk) UpdateParticipationStatus() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateParticipationStatus()
	})
}

// SetRecentActivity sets the "recent_activity" field.
func (u *AgentRecordUpsertBulk) SetRecentActivity(v []map[string]interface{}) *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetRecentActivity(v)
	})
}

// UpdateRecentActivity sets the "recent_activity" field to the value that was provided on create.
func (u *AgentRecordUpsertBulk) UpdateRecentActivity() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateRecentActivity()
	})
}

// ClearRecentActivity clears the value of the "recent_activity" field.
func (u *AgentRecordUpsertBulk) ClearRecentActivity() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.ClearRecentActivity()
	})
}

// SetLastToolUsed sets the "last_tool_used" field.
func (u *AgentRecordUpsertBulk) SetLastToolUsed(v string) *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetLastToolUsed(v)
	})
}

// UpdateLastToolUsed sets the "last_tool_used" field to the value that was provided on create.
func (u *AgentRecordUpsertBulk) UpdateLastToolUsed() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateLastToolUsed()
	})
}

// ClearLastToolUsed clears the value of the "last_tool_used" field.
func (u *AgentRecordUpsertBulk) ClearLastToolUsed() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.ClearLastToolUsed()
	})
}

// SetLastUpdateTime sets the "last_update_time" field.
func (u *AgentRecordUpsertBulk) SetLastUpdateTime(v time.Time) *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.SetLastUpdateTime(v)
	})
}

// UpdateLastUpdateTime sets the "last_update_time" field to the value that was provided on create.
func (u *AgentRecordUpsertBulk) UpdateLastUpdateTime() *AgentRecordUpsertBulk {
	return u.Update(func(s *AgentRecordUpsert) {
		s.UpdateLastUpdateTime()
	})
}

// Exec executes the query.
func (u *AgentRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
