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
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
	"github.com/cloudshift-ai/cloudshift/ent/queuemessage"
)

// QueueMessageUpdate is the builder for updating QueueMessage entities.
type QueueMessageUpdate struct {
	config
	hooks    []Hook
	mutation *QueueMessageMutation
}

// Where appends a list predicates to the QueueMessageUpdate builder.
func (_u *QueueMessageUpdate) Where(ps ...predicate.QueueMessage) *QueueMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQueueName sets the "queue_name" field.
func (_u *QueueMessageUpdate) SetQueueName(v string) *QueueMessageUpdate {
	_u.mutation.SetQueueName(v)
	return _u
}

// SetNillableQueueName sets the "queue_name" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableQueueName(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetQueueName(*v)
	}
	return _u
}

// SetProcessID sets the "process_id" field.
func (_u *QueueMessageUpdate) SetProcessID(v string) *QueueMessageUpdate {
	_u.mutation.SetProcessID(v)
	return _u
}

// SetNillableProcessID sets the "process_id" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableProcessID(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetProcessID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QueueMessageUpdate) SetUserID(v string) *QueueMessageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableUserID(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMigrationRequest sets the "migration_request" field.
func (_u *QueueMessageUpdate) SetMigrationRequest(v map[string]interface{}) *QueueMessageUpdate {
	_u.mutation.SetMigrationRequest(v)
	return _u
}

// ClearMigrationRequest clears the value of the "migration_request" field.
func (_u *QueueMessageUpdate) ClearMigrationRequest() *QueueMessageUpdate {
	_u.mutation.ClearMigrationRequest()
	return _u
}

// SetVisibleAt sets the "visible_at" field.
func (_u *QueueMessageUpdate) SetVisibleAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetVisibleAt(v)
	return _u
}

// SetNillableVisibleAt sets the "visible_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableVisibleAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetVisibleAt(*v)
	}
	return _u
}

// SetDequeueCount sets the "dequeue_count" field.
func (_u *QueueMessageUpdate) SetDequeueCount(v int) *QueueMessageUpdate {
	_u.mutation.ResetDequeueCount()
	_u.mutation.SetDequeueCount(v)
	return _u
}

// SetNillableDequeueCount sets the "dequeue_count" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableDequeueCount(v *int) *QueueMessageUpdate {
	if v != nil {
		_u.SetDequeueCount(*v)
	}
	return _u
}

// AddDequeueCount adds value to the "dequeue_count" field.
func (_u *QueueMessageUpdate) AddDequeueCount(v int) *QueueMessageUpdate {
	_u.mutation.AddDequeueCount(v)
	return _u
}

// SetLeaseID sets the "lease_id" field.
func (_u *QueueMessageUpdate) SetLeaseID(v string) *QueueMessageUpdate {
	_u.mutation.SetLeaseID(v)
	return _u
}

// SetNillableLeaseID sets the "lease_id" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableLeaseID(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetLeaseID(*v)
	}
	return _u
}

// ClearLeaseID clears the value of the "lease_id" field.
func (_u *QueueMessageUpdate) ClearLeaseID() *QueueMessageUpdate {
	_u.mutation.ClearLeaseID()
	return _u
}

// SetFailureSummary sets the "failure_summary" field.
func (_u *QueueMessageUpdate) SetFailureSummary(v string) *QueueMessageUpdate {
	_u.mutation.SetFailureSummary(v)
	return _u
}

// SetNillableFailureSummary sets the "failure_summary" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableFailureSummary(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetFailureSummary(*v)
	}
	return _u
}

// ClearFailureSummary clears the value of the "failure_summary" field.
func (_u *QueueMessageUpdate) ClearFailureSummary() *QueueMessageUpdate {
	_u.mutation.ClearFailureSummary()
	return _u
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_u *QueueMessageUpdate) Mutation() *QueueMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueueMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(queuemessage.Table, queuemessage.Columns, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QueueName(); ok {
		_spec.SetField(queuemessage.FieldQueueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessID(); ok {
		_spec.SetField(queuemessage.FieldProcessID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(queuemessage.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MigrationRequest(); ok {
		_spec.SetField(queuemessage.FieldMigrationRequest, field.TypeJSON, value)
	}
	if _u.mutation.MigrationRequestCleared() {
		_spec.ClearField(queuemessage.FieldMigrationRequest, field.TypeJSON)
	}
	if value, ok := _u.mutation.VisibleAt(); ok {
		_spec.SetField(queuemessage.FieldVisibleAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DequeueCount(); ok {
		_spec.SetField(queuemessage.FieldDequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDequeueCount(); ok {
		_spec.AddField(queuemessage.FieldDequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseID(); ok {
		_spec.SetField(queuemessage.FieldLeaseID, field.TypeString, value)
	}
	if _u.mutation.LeaseIDCleared() {
		_spec.ClearField(queuemessage.FieldLeaseID, field.TypeString)
	}
	if value, ok := _u.mutation.FailureSummary(); ok {
		_spec.SetField(queuemessage.FieldFailureSummary, field.TypeString, value)
	}
	if _u.mutation.FailureSummaryCleared() {
		_spec.ClearField(queuemessage.FieldFailureSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueMessageUpdateOne is the builder for updating a single QueueMessage entity.
type QueueMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueMessageMutation
}

// SetQueueName sets the "queue_name" field.
func (_u *QueueMessageUpdateOne) SetQueueName(v string) *QueueMessageUpdateOne {
	_u.mutation.SetQueueName(v)
	return _u
}

// SetNillableQueueName sets the "queue_name" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableQueueName(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetQueueName(*v)
	}
	return _u
}

// SetProcessID sets the "process_id" field.
func (_u *QueueMessageUpdateOne) SetProcessID(v string) *QueueMessageUpdateOne {
	_u.mutation.SetProcessID(v)
	return _u
}

// SetNillableProcessID sets the "process_id" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableProcessID(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetProcessID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QueueMessageUpdateOne) SetUserID(v string) *QueueMessageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableUserID(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMigrationRequest sets the "migration_request" field.
func (_u *QueueMessageUpdateOne) SetMigrationRequest(v map[string]interface{}) *QueueMessageUpdateOne {
	_u.mutation.SetMigrationRequest(v)
	return _u
}

// ClearMigrationRequest clears the value of the "migration_request" field.
func (_u *QueueMessageUpdateOne) ClearMigrationRequest() *QueueMessageUpdateOne {
	_u.mutation.ClearMigrationRequest()
	return _u
}

// SetVisibleAt sets the "visible_at" field.
func (_u *QueueMessageUpdateOne) SetVisibleAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetVisibleAt(v)
	return _u
}

// SetNillableVisibleAt sets the "visible_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableVisibleAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetVisibleAt(*v)
	}
	return _u
}

// SetDequeueCount sets the "dequeue_count" field.
func (_u *QueueMessageUpdateOne) SetDequeueCount(v int) *QueueMessageUpdateOne {
	_u.mutation.ResetDequeueCount()
	_u.mutation.SetDequeueCount(v)
	return _u
}

// SetNillableDequeueCount sets the "dequeue_count" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableDequeueCount(v *int) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetDequeueCount(*v)
	}
	return _u
}

// AddDequeueCount adds value to the "dequeue_count" field.
func (_u *QueueMessageUpdateOne) AddDequeueCount(v int) *QueueMessageUpdateOne {
	_u.mutation.AddDequeueCount(v)
	return _u
}

// SetLeaseID sets the "lease_id" field.
func (_u *QueueMessageUpdateOne) SetLeaseID(v string) *QueueMessageUpdateOne {
	_u.mutation.SetLeaseID(v)
	return _u
}

// SetNillableLeaseID sets the "lease_id" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableLeaseID(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetLeaseID(*v)
	}
	return _u
}

// ClearLeaseID clears the value of the "lease_id" field.
func (_u *QueueMessageUpdateOne) ClearLeaseID() *QueueMessageUpdateOne {
	_u.mutation.ClearLeaseID()
	return _u
}

// SetFailureSummary sets the "failure_summary" field.
func (_u *QueueMessageUpdateOne) SetFailureSummary(v string) *QueueMessageUpdateOne {
	_u.mutation.SetFailureSummary(v)
	return _u
}

// SetNillableFailureSummary sets the "failure_summary" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableFailureSummary(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetFailureSummary(*v)
	}
	return _u
}

// ClearFailureSummary clears the value of the "failure_summary" field.
func (_u *QueueMessageUpdateOne) ClearFailureSummary() *QueueMessageUpdateOne {
	_u.mutation.ClearFailureSummary()
	return _u
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_u *QueueMessageUpdateOne) Mutation() *QueueMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueMessageUpdate builder.
func (_u *QueueMessageUpdateOne) Where(ps ...predicate.QueueMessage) *QueueMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueMessageUpdateOne) Select(field string, fields ...string) *QueueMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueMessage entity.
func (_u *QueueMessageUpdateOne) Save(ctx context.Context) (*QueueMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueMessageUpdateOne) SaveX(ctx context.Context) *QueueMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueueMessageUpdateOne) sqlSave(ctx context.Context) (_node *QueueMessage, err error) {
	_spec := sqlgraph.NewUpdateSpec(queuemessage.Table, queuemessage.Columns, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuemessage.FieldID)
		for _, f := range fields {
			if !queuemessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuemessage.FieldID {
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
	if value, ok := _u.mutation.QueueName(); ok {
		_spec.SetField(queuemessage.FieldQueueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessID(); ok {
		_spec.SetField(queuemessage.FieldProcessID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(queuemessage.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MigrationRequest(); ok {
		_spec.SetField(queuemessage.FieldMigrationRequest, field.TypeJSON, value)
	}
	if _u.mutation.MigrationRequestCleared() {
		_spec.ClearField(queuemessage.FieldMigrationRequest, field.TypeJSON)
	}
	if value, ok := _u.mutation.VisibleAt(); ok {
		_spec.SetField(queuemessage.FieldVisibleAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DequeueCount(); ok {
		_spec.SetField(queuemessage.FieldDequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDequeueCount(); ok {
		_spec.AddField(queuemessage.FieldDequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseID(); ok {
		_spec.SetField(queuemessage.FieldLeaseID, field.TypeString, value)
	}
	if _u.mutation.LeaseIDCleared() {
		_spec.ClearField(queuemessage.FieldLeaseID, field.TypeString)
	}
	if value, ok := _u.mutation.FailureSummary(); ok {
		_spec.SetField(queuemessage.FieldFailureSummary, field.TypeString, value)
	}
	if _u.mutation.FailureSummaryCleared() {
		_spec.ClearField(queuemessage.FieldFailureSummary, field.TypeString)
	}
	_node = &QueueMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
