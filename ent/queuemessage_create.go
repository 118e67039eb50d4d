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
	"github.com/cloudshift-ai/cloudshift/ent/queuemessage"
)

// QueueMessageCreate is the builder for creating a QueueMessage entity.
type QueueMessageCreate struct {
	config
	mutation *QueueMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueueName sets the "queue_name" field.
func (_c *QueueMessageCreate) SetQueueName(v string) *QueueMessageCreate {
	_c.mutation.SetQueueName(v)
	return _c
}

// SetProcessID sets the "process_id" field.
func (_c *QueueMessageCreate) SetProcessID(v string) *QueueMessageCreate {
	_c.mutation.SetProcessID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QueueMessageCreate) SetUserID(v string) *QueueMessageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMigrationRequest sets the "migration_request" field.
func (_c *QueueMessageCreate) SetMigrationRequest(v map[string]interface{}) *QueueMessageCreate {
	_c.mutation.SetMigrationRequest(v)
	return _c
}

// SetVisibleAt sets the "visible_at" field.
func (_c *QueueMessageCreate) SetVisibleAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetVisibleAt(v)
	return _c
}

// SetNillableVisibleAt sets the "visible_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableVisibleAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetVisibleAt(*v)
	}
	return _c
}

// SetDequeueCount sets the "dequeue_count" field.
func (_c *QueueMessageCreate) SetDequeueCount(v int) *QueueMessageCreate {
	_c.mutation.SetDequeueCount(v)
	return _c
}

// SetNillableDequeueCount sets the "dequeue_count" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableDequeueCount(v *int) *QueueMessageCreate {
	if v != nil {
		_c.SetDequeueCount(*v)
	}
	return _c
}

// SetLeaseID sets the "lease_id" field.
func (_c *QueueMessageCreate) SetLeaseID(v string) *QueueMessageCreate {
	_c.mutation.SetLeaseID(v)
	return _c
}

// SetNillableLeaseID sets the "lease_id" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableLeaseID(v *string) *QueueMessageCreate {
	if v != nil {
		_c.SetLeaseID(*v)
	}
	return _c
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_c *QueueMessageCreate) SetEnqueuedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetEnqueuedAt(v)
	return _c
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableEnqueuedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetEnqueuedAt(*v)
	}
	return _c
}

// SetFailureSummary sets the "failure_summary" field.
func (_c *QueueMessageCreate) SetFailureSummary(v string) *QueueMessageCreate {
	_c.mutation.SetFailureSummary(v)
	return _c
}

// SetNillableFailureSummary sets the "failure_summary" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableFailureSummary(v *string) *QueueMessageCreate {
	if v != nil {
		_c.SetFailureSummary(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueMessageCreate) SetID(v string) *QueueMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_c *QueueMessageCreate) Mutation() *QueueMessageMutation {
	return _c.mutation
}

// Save creates the QueueMessage in the database.
func (_c *QueueMessageCreate) Save(ctx context.Context) (*QueueMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueMessageCreate) SaveX(ctx context.Context) *QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueMessageCreate) defaults() {
	if _, ok := _c.mutation.VisibleAt(); !ok {
		v := queuemessage.DefaultVisibleAt()
		_c.mutation.SetVisibleAt(v)
	}
	if _, ok := _c.mutation.DequeueCount(); !ok {
		v := queuemessage.DefaultDequeueCount
		_c.mutation.SetDequeueCount(v)
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		v := queuemessage.DefaultEnqueuedAt()
		_c.mutation.SetEnqueuedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueMessageCreate) check() error {
	if _, ok := _c.mutation.QueueName(); !ok {
		return &ValidationError{Name: "queue_name", err: errors.New(`ent: missing required field "QueueMessage.queue_name"`)}
	}
	if _, ok := _c.mutation.ProcessID(); !ok {
		return &ValidationError{Name: "process_id", err: errors.New(`ent: missing required field "QueueMessage.process_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QueueMessage.user_id"`)}
	}
	if _, ok := _c.mutation.VisibleAt(); !ok {
		return &ValidationError{Name: "visible_at", err: errors.New(`ent: missing required field "QueueMessage.visible_at"`)}
	}
	if _, ok := _c.mutation.DequeueCount(); !ok {
		return &ValidationError{Name: "dequeue_count", err: errors.New(`ent: missing required field "QueueMessage.dequeue_count"`)}
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		return &ValidationError{Name: "enqueued_at", err: errors.New(`ent: missing required field "QueueMessage.enqueued_at"`)}
	}
	return nil
}

func (_c *QueueMessageCreate) sqlSave(ctx context.Context) (*QueueMessage, error) {
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
			return nil, fmt.Errorf("unexpected QueueMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueMessageCreate) createSpec() (*QueueMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuemessage.Table, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QueueName(); ok {
		_spec.SetField(queuemessage.FieldQueueName, field.TypeString, value)
		_node.QueueName = value
	}
	if value, ok := _c.mutation.ProcessID(); ok {
		_spec.SetField(queuemessage.FieldProcessID, field.TypeString, value)
		_node.ProcessID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(queuemessage.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MigrationRequest(); ok {
		_spec.SetField(queuemessage.FieldMigrationRequest, field.TypeJSON, value)
		_node.MigrationRequest = value
	}
	if value, ok := _c.mutation.VisibleAt(); ok {
		_spec.SetField(queuemessage.FieldVisibleAt, field.TypeTime, value)
		_node.VisibleAt = value
	}
	if value, ok := _c.mutation.DequeueCount(); ok {
		_spec.SetField(queuemessage.FieldDequeueCount, field.TypeInt, value)
		_node.DequeueCount = value
	}
	if value, ok := _c.mutation.LeaseID(); ok {
		_spec.SetField(queuemessage.FieldLeaseID, field.TypeString, value)
		_node.LeaseID = &value
	}
	if value, ok := _c.mutation.EnqueuedAt(); ok {
		_spec.SetField(queuemessage.FieldEnqueuedAt, field.TypeTime, value)
		_node.EnqueuedAt = value
	}
	if value, ok := _c.mutation.FailureSummary(); ok {
		_spec.SetField(queuemessage.FieldFailureSummary, field.TypeString, value)
		_node.FailureSummary = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueMessage.Create().
//		SetQueueName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueMessageUpsert) {
//			SetQueueName(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueMessageCreate) OnConflict(opts ...sql.ConflictOption) *QueueMessageUpsertOne {
	_c.conflict = opts
	return &QueueMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueMessageCreate) OnConflictColumns(columns ...string) *QueueMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueMessageUpsertOne{
		create: _c,
	}
}

type (
	// QueueMessageUpsertOne is the builder for "upsert"-ing
	//  one QueueMessage node.
	QueueMessageUpsertOne struct {
		create *QueueMessageCreate
	}

	// QueueMessageUpsert is the "OnConflict" setter.
	QueueMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetQueueName sets the "queue_name" field.
func (u *QueueMessageUpsert) SetQueueName(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldQueueName, v)
	return u
}

// UpdateQueueName sets the "queue_name" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateQueueName() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldQueueName)
	return u
}

// SetProcessID sets the "process_id" field.
func (u *QueueMessageUpsert) SetProcessID(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldProcessID, v)
	return u
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateProcessID() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldProcessID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *QueueMessageUpsert) SetUserID(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateUserID() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldUserID)
	return u
}

// SetMigrationRequest sets the "migration_request" field.
func (u *QueueMessageUpsert) SetMigrationRequest(v map[string]interface{}) *QueueMessageUpsert {
	u.Set(queuemessage.FieldMigrationRequest, v)
	return u
}

// UpdateMigrationRequest sets the "migration_request" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateMigrationRequest() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldMigrationRequest)
	return u
}

// ClearMigrationRequest clears the value of the "migration_request" field.
func (u *QueueMessageUpsert) ClearMigrationRequest() *QueueMessageUpsert {
	u.SetNull(queuemessage.FieldMigrationRequest)
	return u
}

// SetVisibleAt sets the "visible_at" field.
func (u *QueueMessageUpsert) SetVisibleAt(v time.Time) *QueueMessageUpsert {
	u.Set(queuemessage.FieldVisibleAt, v)
	return u
}

// UpdateVisibleAt sets the "visible_at" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateVisibleAt() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldVisibleAt)
	return u
}

// SetDequeueCount sets the "dequeue_count" field.
func (u *QueueMessageUpsert) SetDequeueCount(v int) *QueueMessageUpsert {
	u.Set(queuemessage.FieldDequeueCount, v)
	return u
}

// UpdateDequeueCount sets the "dequeue_count" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateDequeueCount() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldDequeueCount)
	return u
}

// AddDequeueCount adds v to the "dequeue_count" field.
func (u *QueueMessageUpsert) AddDequeueCount(v int) *QueueMessageUpsert {
	u.Add(queuemessage.FieldDequeueCount, v)
	return u
}

// SetLeaseID sets the "lease_id" field.
func (u *QueueMessageUpsert) SetLeaseID(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldLeaseID, v)
	return u
}

// UpdateLeaseID sets the "lease_id" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateLeaseID() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldLeaseID)
	return u
}

// ClearLeaseID clears the value of the "lease_id" field.
func (u *QueueMessageUpsert) ClearLeaseID() *QueueMessageUpsert {
	u.SetNull(queuemessage.FieldLeaseID)
	return u
}

// SetFailureSummary sets the "failure_summary" field.
func (u *QueueMessageUpsert) SetFailureSummary(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldFailureSummary, v)
	return u
}

// UpdateFailureSummary sets the "failure_summary" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateFailureSummary() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldFailureSummary)
	return u
}

// ClearFailureSummary clears the value of the "failure_summary" field.
func (u *QueueMessageUpsert) ClearFailureSummary() *QueueMessageUpsert {
	u.SetNull(queuemessage.FieldFailureSummary)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuemessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueMessageUpsertOne) UpdateNewValues() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(queuemessage.FieldID)
		}
		if _, exists := u.create.mutation.EnqueuedAt(); exists {
			s.SetIgnore(queuemessage.FieldEnqueuedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueueMessageUpsertOne) Ignore() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueMessageUpsertOne) DoNothing() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueMessageCreate.OnConflict
// documentation for more info.
func (u *QueueMessageUpsertOne) Update(set func(*QueueMessageUpsert)) *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueueName sets the "queue_name" field.
func (u *QueueMessageUpsertOne) SetQueueName(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetQueueName(v)
	})
}

// UpdateQueueName sets the "queue_name" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateQueueName() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateQueueName()
	})
}

// SetProcessID sets the "process_id" field.
func (u *QueueMessageUpsertOne) SetProcessID(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetProcessID(v)
	})
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateProcessID() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateProcessID()
	})
}

// SetUserID sets the "user_id" field.
func (u *QueueMessageUpsertOne) SetUserID(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateUserID() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateUserID()
	})
}

// SetMigrationRequest sets the "migration_request" field.
func (u *QueueMessageUpsertOne) SetMigrationRequest(v map[string]interface{}) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetMigrationRequest(v)
	})
}

// UpdateMigrationRequest sets the "migration_request" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateMigrationRequest() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateMigrationRequest()
	})
}

// ClearMigrationRequest clears the value of the "migration_request" field.
func (u *QueueMessageUpsertOne) ClearMigrationRequest() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearMigrationRequest()
	})
}

// SetVisibleAt sets the "visible_at" field.
func (u *QueueMessageUpsertOne) SetVisibleAt(v time.Time) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetVisibleAt(v)
	})
}

// UpdateVisibleAt sets the "visible_at" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateVisibleAt() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateVisibleAt()
	})
}

// SetDequeueCount sets the "dequeue_count" field.
func (u *QueueMessageUpsertOne) SetDequeueCount(v int) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetDequeueCount(v)
	})
}

// AddDequeueCount adds v to the "dequeue_count" field.
func (u *QueueMessageUpsertOne) AddDequeueCount(v int) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.AddDequeueCount(v)
	})
}

// UpdateDequeueCount sets the "dequeue_count" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateDequeueCount() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateDequeueCount()
	})
}

// SetLeaseID sets the "lease_id" field.
func (u *QueueMessageUpsertOne) SetLeaseID(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetLeaseID(v)
	})
}

// UpdateLeaseID sets the "lease_id" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateLeaseID() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateLeaseID()
	})
}

// ClearLeaseID clears the value of the "lease_id" field.
func (u *QueueMessageUpsertOne) ClearLeaseID() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearLeaseID()
	})
}

// SetFailureSummary sets the "failure_summary" field.
func (u *QueueMessageUpsertOne) SetFailureSummary(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetFailureSummary(v)
	})
}

// UpdateFailureSummary sets the "failure_summary" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateFailureSummary() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateFailureSummary()
	})
}

// ClearFailureSummary clears the value of the "failure_summary" field.
func (u *QueueMessageUpsertOne) ClearFailureSummary() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearFailureSummary()
	})
}

// Exec executes the query.
func (u *QueueMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueueMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QueueMessageUpsertOne.ID is not supported by MySQL driver. Use QueueMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueueMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueueMessageCreateBulk is the builder for creating many QueueMessage entities in bulk.
type QueueMessageCreateBulk struct {
	config
	err      error
	builders []*QueueMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the QueueMessage entities in the database.
func (_c *QueueMessageCreateBulk) Save(ctx context.Context) ([]*QueueMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueMessageMutation)
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
func (_c *QueueMessageCreateBulk) SaveX(ctx context.Context) []*QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueMessageUpsert) {
//			SetQueueName(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueueMessageUpsertBulk {
	_c.conflict = opts
	return &QueueMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueMessageCreateBulk) OnConflictColumns(columns ...string) *QueueMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueMessageUpsertBulk{
		create: _c,
	}
}

// QueueMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of QueueMessage nodes.
type QueueMessageUpsertBulk struct {
	create *QueueMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuemessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueMessageUpsertBulk) UpdateNewValues() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(queuemessage.FieldID)
			}
			if _, exists := b.mutation.EnqueuedAt(); exists {
				s.SetIgnore(queuemessage.FieldEnqueuedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueueMessageUpsertBulk) Ignore() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueMessageUpsertBulk) DoNothing() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueMessageCreateBulk.OnConflict
// documentation for more info.
func (u *QueueMessageUpsertBulk) Update(set func(*QueueMessageUpsert)) *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueueName sets the "queue_name" field.
func (u *QueueMessageUpsertBulk) SetQueueName(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetQueueName(v)
	})
}

// UpdateQueueName sets the "queue_name" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateQueueName() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateQueueName()
	})
}

// SetProcessID sets the "process_id" field.
func (u *QueueMessageUpsertBulk) SetProcessID(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetProcessID(v)
	})
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateProcessID() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateProcessID()
	})
}

// SetUserID sets the "user_id" field.
func (u *QueueMessageUpsertBulk) SetUserID(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateUserID() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateUserID()
	})
}

// SetMigrationRequest sets the "migration_request" field.
func (u *QueueMessageUpsertBulk) SetMigrationRequest(v map[string]interface{}) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetMigrationRequest(v)
	})
}

// UpdateMigrationRequest sets the "migration_request" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateMigrationRequest() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateMigrationRequest()
	})
}

// ClearMigrationRequest clears the value of the "migration_request" field.
func (u *QueueMessageUpsertBulk) ClearMigrationRequest() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearMigrationRequest()
	})
}

// SetVisibleAt sets the "visible_at" field.
func (u *QueueMessageUpsertBulk) SetVisibleAt(v time.Time) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetVisibleAt(v)
	})
}

// UpdateVisibleAt sets the "visible_at" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateVisibleAt() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateVisibleAt()
	})
}

// SetDequeueCount sets the "dequeue_count" field.
func (u *QueueMessageUpsertBulk) SetDequeueCount(v int) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetDequeueCount(v)
	})
}

// AddDequeueCount adds v to the "dequeue_count" field.
func (u *QueueMessageUpsertBulk) AddDequeueCount(v int) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.AddDequeueCount(v)
	})
}

// UpdateDequeueCount sets the "dequeue_count" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateDequeueCount() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateDequeueCount()
	})
}

// SetLeaseID sets the "lease_id" field.
func (u *QueueMessageUpsertBulk) SetLeaseID(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetLeaseID(v)
	})
}

// UpdateLeaseID sets the "lease_id" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateLeaseID() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateLeaseID()
	})
}

// ClearLeaseID clears the value of the "lease_id" field.
func (u *QueueMessageUpsertBulk) ClearLeaseID() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearLeaseID()
	})
}

// SetFailureSummary sets the "failure_summary" field.
func (u *QueueMessageUpsertBulk) SetFailureSummary(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetFailureSummary(v)
	})
}

// UpdateFailureSummary sets the "failure_summary" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateFailureSummary() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateFailureSummary()
	})
}

// ClearFailureSummary clears the value of the "failure_summary" field.
func (u *QueueMessageUpsertBulk) ClearFailureSummary() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearFailureSummary()
	})
}

// Exec executes the query.
func (u *QueueMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueueMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
