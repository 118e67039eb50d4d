// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
)

// MigrationProcessDelete is the builder for deleting a MigrationProcess entity.
type MigrationProcessDelete struct {
	config
	hooks    []Hook
	mutation *MigrationProcessMutation
}

// Where appends a list predicates to the MigrationProcessDelete builder.
func (_d *MigrationProcessDelete) Where(ps ...predicate.MigrationProcess) *MigrationProcessDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MigrationProcessDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MigrationProcessDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MigrationProcessDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(migrationprocess.Table, sqlgraph.NewFieldSpec(migrationprocess.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MigrationProcessDeleteOne is the builder for deleting a single MigrationProcess entity.
type MigrationProcessDeleteOne struct {
	_d *MigrationProcessDelete
}

// Where appends a list predicates to the MigrationProcessDelete builder.
func (_d *MigrationProcessDeleteOne) Where(ps ...predicate.MigrationProcess) *MigrationProcessDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MigrationProcessDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{migrationprocess.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MigrationProcessDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
