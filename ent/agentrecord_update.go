// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cloudshift-ai/cloudshift/ent/agentrecord"
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
)

// AgentRecordUpdate is the builder for updating AgentRecord entities.
type AgentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRecordMutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdate) Where(ps ...predicate.AgentRecord) *AgentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentAction sets the "current_action" field.
func (_u *AgentRecordUpdate) SetCurrentAction(v string) *AgentRecordUpdate {
	_u.mutation.SetCurrentAction(v)
	return _u
}

// SetNillableCurrentAction sets the "current_action" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableCurrentAction(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetCurrentAction(*v)
	}
	return _u
}

// ClearCurrentAction clears the value of the "current_action" field.
func (_u *AgentRecordUpdate) ClearCurrentAction() *AgentRecordUpdate {
	_u.mutation.ClearCurrentAction()
	return _u
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (_u *AgentRecordUpdate) SetLastMessagePreview(v string) *AgentRecordUpdate {
	_u.mutation.SetLastMessagePreview(v)
	return _u
}

// SetNillableLastMessagePreview sets the "last_message_preview" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableLastMessagePreview(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetLastMessagePreview(*v)
	}
	return _u
}

// ClearLastMessagePreview clears the value of the "last_message_preview" field.
func (_u *AgentRecordUpdate) ClearLastMessagePreview() *AgentRecordUpdate {
	_u.mutation.ClearLastMessagePreview()
	return _u
}

// SetIsSpeaking sets the "is_speaking" field.
func (_u *AgentRecordUpdate) SetIsSpeaking(v bool) *AgentRecordUpdate {
	_u.mutation.SetIsSpeaking(v)
	return _u
}

// SetNillableIsSpeaking sets the "is_speaking" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableIsSpeaking(v *bool) *AgentRecordUpdate {
	if v != nil {
		_u.SetIsSpeaking(*v)
	}
	return _u
}

// SetIsThinking sets the "is_thinking" field.
func (_u *AgentRecordUpdate) SetIsThinking(v bool) *AgentRecordUpdate {
	_u.mutation.SetIsThinking(v)
	return _u
}

// SetNillableIsThinking sets the "is_thinking" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableIsThinking(v *bool) *AgentRecordUpdate {
	if v != nil {
		_u.SetIsThinking(*v)
	}
	return _u
}

// SetParticipationStatus sets the "participation_status" field.
func (_u *AgentRecordUpdate) SetParticipationStatus(v string) *AgentRecordUpdate {
	_u.mutation.SetParticipationStatus(v)
	return _u
}

// SetNillableParticipationStatus sets the "participation_status" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableParticipationStatus(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetParticipationStatus(*v)
	}
	return _u
}

// SetRecentActivity sets the "recent_activity" field.
func (_u *AgentRecordUpdate) SetRecentActivity(v []map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.SetRecentActivity(v)
	return _u
}

// AppendRecentActivity appends value to the "recent_activity" field.
func (_u *AgentRecordUpdate) AppendRecentActivity(v []map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.AppendRecentActivity(v)
	return _u
}

// ClearRecentActivity clears the value of the "recent_activity" field.
func (_u *AgentRecordUpdate) ClearRecentActivity() *AgentRecordUpdate {
	_u.mutation.ClearRecentActivity()
	return _u
}

// SetLastToolUsed sets the "last_tool_used" field.
func (_u *AgentRecordUpdate) SetLastToolUsed(v string) *AgentRecordUpdate {
	_u.mutation.SetLastToolUsed(v)
	return _u
}

// SetNillableLastToolUsed sets the "last_tool_used" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableLastToolUsed(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetLastToolUsed(*v)
	}
	return _u
}

// ClearLastToolUsed clears the value of the "last_tool_used" field.
func (_u *AgentRecordUpdate) ClearLastToolUsed() *AgentRecordUpdate {
	_u.mutation.ClearLastToolUsed()
	return _u
}

// SetLastUpdateTime sets the "last_update_time" field.
func (_u *AgentRecordUpdate) SetLastUpdateTime(v time.Time) *AgentRecordUpdate {
	_u.mutation.SetLastUpdateTime(v)
	return _u
}

// SetNillableLastUpdateTime sets the "last_update_time" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableLastUpdateTime(v *time.Time) *AgentRecordUpdate {
	if v != nil {
		_u.SetLastUpdateTime(*v)
	}
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdate) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdate) check() error {
	if _u.mutation.ProcessCleared() && len(_u.mutation.ProcessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRecord.process"`)
	}
	return nil
}

func (_u *AgentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentAction(); ok {
		_spec.SetField(agentrecord.FieldCurrentAction, field.TypeString, value)
	}
	if _u.mutation.CurrentActionCleared() {
		_spec.ClearField(agentrecord.FieldCurrentAction, field.TypeString)
	}
	if value, ok := _u.mutation.LastMessagePreview(); ok {
		_spec.SetField(agentrecord.FieldLastMessagePreview, field.TypeString, value)
	}
	if _u.mutation.LastMessagePreviewCleared() {
		_spec.ClearField(agentrecord.FieldLastMessagePreview, field.TypeString)
	}
	if value, ok := _u.mutation.IsSpeaking(); ok {
		_spec.SetField(agentrecord.FieldIsSpeaking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsThinking(); ok {
		_spec.SetField(agentrecord.FieldIsThinking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParticipationStatus(); ok {
		_spec.SetField(agentrecord.FieldParticipationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecentActivity(); ok {
		_spec.SetField(agentrecord.FieldRecentActivity, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecentActivity(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldRecentActivity, value)
		})
	}
	if _u.mutation.RecentActivityCleared() {
		_spec.ClearField(agentrecord.FieldRecentActivity, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastToolUsed(); ok {
		_spec.SetField(agentrecord.FieldLastToolUsed, field.TypeString, value)
	}
	if _u.mutation.LastToolUsedCleared() {
		_spec.ClearField(agentrecord.FieldLastToolUsed, field.TypeString)
	}
	if value, ok := _u.mutation.LastUpdateTime(); ok {
		_spec.SetField(agentrecord.FieldLastUpdateTime, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRecordUpdateOne is the builder for updating a single AgentRecord entity.
type AgentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRecordMutation
}

// SetCurrentAction sets the "current_action" field.
func (_u *AgentRecordUpdateOne) SetCurrentAction(v string) *AgentRecordUpdateOne {
	_u.mutation.SetCurrentAction(v)
	return _u
}

// SetNillableCurrentAction sets the "current_action" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableCurrentAction(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetCurrentAction(*v)
	}
	return _u
}

// ClearCurrentAction clears the value of the "current_action" field.
func (_u *AgentRecordUpdateOne) ClearCurrentAction() *AgentRecordUpdateOne {
	_u.mutation.ClearCurrentAction()
	return _u
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (_u *AgentRecordUpdateOne) SetLastMessagePreview(v string) *AgentRecordUpdateOne {
	_u.mutation.SetLastMessagePreview(v)
	return _u
}

// SetNillableLastMessagePreview sets the "last_message_preview" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableLastMessagePreview(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetLastMessagePreview(*v)
	}
	return _u
}

// ClearLastMessagePreview clears the value of the "last_message_preview" field.
func (_u *AgentRecordUpdateOne) ClearLastMessagePreview() *AgentRecordUpdateOne {
	_u.mutation.ClearLastMessagePreview()
	return _u
}

// SetIsSpeaking sets the "is_speaking" field.
func (_u *AgentRecordUpdateOne) SetIsSpeaking(v bool) *AgentRecordUpdateOne {
	_u.mutation.SetIsSpeaking(v)
	return _u
}

// SetNillableIsSpeaking sets the "is_speaking" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableIsSpeaking(v *bool) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetIsSpeaking(*v)
	}
	return _u
}

// SetIsThinking sets the "is_thinking" field.
func (_u *AgentRecordUpdateOne) SetIsThinking(v bool) *AgentRecordUpdateOne {
	_u.mutation.SetIsThinking(v)
	return _u
}

// SetNillableIsThinking sets the "is_thinking" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableIsThinking(v *bool) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetIsThinking(*v)
	}
	return _u
}

// SetParticipationStatus sets the "participation_status" field.
func (_u *AgentRecordUpdateOne) SetParticipationStatus(v string) *AgentRecordUpdateOne {
	_u.mutation.SetParticipationStatus(v)
	return _u
}

// SetNillableParticipationStatus sets the "participation_status" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableParticipationStatus(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetParticipationStatus(*v)
	}
	return _u
}

// SetRecentActivity sets the "recent_activity" field.
func (_u *AgentRecordUpdateOne) SetRecentActivity(v []map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.SetRecentActivity(v)
	return _u
}

// AppendRecentActivity appends value to the "recent_activity" field.
func (_u *AgentRecordUpdateOne) AppendRecentActivity(v []map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.AppendRecentActivity(v)
	return _u
}

// ClearRecentActivity clears the value of the "recent_activity" field.
func (_u *AgentRecordUpdateOne) ClearRecentActivity() *AgentRecordUpdateOne {
	_u.mutation.ClearRecentActivity()
	return _u
}

// SetLastToolUsed sets the "last_tool_used" field.
func (_u *AgentRecordUpdateOne) SetLastToolUsed(v string) *AgentRecordUpdateOne {
	_u.mutation.SetLastToolUsed(v)
	return _u
}

// SetNillableLastToolUsed sets the "last_tool_used" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableLastToolUsed(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetLastToolUsed(*v)
	}
	return _u
}

// ClearLastToolUsed clears the value of the "last_tool_used" field.
func (_u *AgentRecordUpdateOne) ClearLastToolUsed() *AgentRecordUpdateOne {
	_u.mutation.ClearLastToolUsed()
	return _u
}

// SetLastUpdateTime sets the "last_update_time" field.
func (_u *AgentRecordUpdateOne) SetLastUpdateTime(v time.Time) *AgentRecordUpdateOne {
	_u.mutation.SetLastUpdateTime(v)
	return _u
}

// SetNillableLastUpdateTime sets the "last_update_time" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableLastUpdateTime(v *time.Time) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetLastUpdateTime(*v)
	}
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdateOne) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdateOne) Where(ps ...predicate.AgentRecord) *AgentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRecordUpdateOne) Select(field string, fields ...string) *AgentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRecord entity.
func (_u *AgentRecordUpdateOne) Save(ctx context.Context) (*AgentRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) SaveX(ctx context.Context) *AgentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdateOne) check() error {
	if _u.mutation.ProcessCleared() && len(_u.mutation.ProcessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRecord.process"`)
	}
	return nil
}

func (_u *AgentRecordUpdateOne) sqlSave(ctx context.Context) (_node *AgentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrecord.FieldID)
		for _, f := range fields {
			if !agentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrecord.FieldID {
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
	if value, ok := _u.mutation.CurrentAction(); ok {
		_spec.SetField(agentrecord.FieldCurrentAction, field.TypeString, value)
	}
	if _u.mutation.CurrentActionCleared() {
		_spec.ClearField(agentrecord.FieldCurrentAction, field.TypeString)
	}
	if value, ok := _u.mutation.LastMessagePreview(); ok {
		_spec.SetField(agentrecord.FieldLastMessagePreview, field.TypeString, value)
	}
	if _u.mutation.LastMessagePreviewCleared() {
		_spec.ClearField(agentrecord.FieldLastMessagePreview, field.TypeString)
	}
	if value, ok := _u.mutation.IsSpeaking(); ok {
		_spec.SetField(agentrecord.FieldIsSpeaking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsThinking(); ok {
		_spec.SetField(agentrecord.FieldIsThinking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParticipationStatus(); ok {
		_spec.SetField(agentrecord.FieldParticipationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecentActivity(); ok {
		_spec.SetField(agentrecord.FieldRecentActivity, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecentActivity(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldRecentActivity, value)
		})
	}
	if _u.mutation.RecentActivityCleared() {
		_spec.ClearField(agentrecord.FieldRecentActivity, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastToolUsed(); ok {
		_spec.SetField(agentrecord.FieldLastToolUsed, field.TypeString, value)
	}
	if _u.mutation.LastToolUsedCleared() {
		_spec.ClearField(agentrecord.FieldLastToolUsed, field.TypeString)
	}
	if value, ok := _u.mutation.LastUpdateTime(); ok {
		_spec.SetField(agentrecord.FieldLastUpdateTime, field.TypeTime, value)
	}
	_node = &AgentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
