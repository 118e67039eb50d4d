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
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
)

// MigrationProcessCreate is the builder for creating a MigrationProcess entity.
type MigrationProcessCreate struct {
	config
	mutation *MigrationProcessMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *MigrationProcessCreate) SetUserID(v string) *MigrationProcessCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSourcePlatform sets the "source_platform" field.
func (_c *MigrationProcessCreate) SetSourcePlatform(v string) *MigrationProcessCreate {
	_c.mutation.SetSourcePlatform(v)
	return _c
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableSourcePlatform(v *string) *MigrationProcessCreate {
	if v != nil {
		_c.SetSourcePlatform(*v)
	}
	return _c
}

// SetTargetPlatform sets the "target_platform" field.
func (_c *MigrationProcessCreate) SetTargetPlatform(v string) *MigrationProcessCreate {
	_c.mutation.SetTargetPlatform(v)
	return _c
}

// SetNillableTargetPlatform sets the "target_platform" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableTargetPlatform(v *string) *MigrationProcessCreate {
	if v != nil {
		_c.SetTargetPlatform(*v)
	}
	return _c
}

// SetContainerName sets the "container_name" field.
func (_c *MigrationProcessCreate) SetContainerName(v string) *MigrationProcessCreate {
	_c.mutation.SetContainerName(v)
	return _c
}

// SetNillableContainerName sets the "container_name" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableContainerName(v *string) *MigrationProcessCreate {
	if v != nil {
		_c.SetContainerName(*v)
	}
	return _c
}

// SetSourceFolder sets the "source_folder" field.
func (_c *MigrationProcessCreate) SetSourceFolder(v string) *MigrationProcessCreate {
	_c.mutation.SetSourceFolder(v)
	return _c
}

// SetNillableSourceFolder sets the "source_folder" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableSourceFolder(v *string) *MigrationProcessCreate {
	if v != nil {
		_c.SetSourceFolder(*v)
	}
	return _c
}

// SetWorkspaceFolder sets the "workspace_folder" field.
func (_c *MigrationProcessCreate) SetWorkspaceFolder(v string) *MigrationProcessCreate {
	_c.mutation.SetWorkspaceFolder(v)
	return _c
}

// SetNillableWorkspaceFolder sets the "workspace_folder" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableWorkspaceFolder(v *string) *MigrationProcessCreate {
	if v != nil {
		_c.SetWorkspaceFolder(*v)
	}
	return _c
}

// SetOutputFolder sets the "output_folder" field.
func (_c *MigrationProcessCreate) SetOutputFolder(v string) *MigrationProcessCreate {
	_c.mutation.SetOutputFolder(v)
	return _c
}

// SetNillableOutputFolder sets the "output_folder" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableOutputFolder(v *string) *MigrationProcessCreate {
	if v != nil {
		_c.SetOutputFolder(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *MigrationProcessCreate) SetPhase(v migrationprocess.Phase) *MigrationProcessCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillablePhase(v *migrationprocess.Phase) *MigrationProcessCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MigrationProcessCreate) SetStatus(v migrationprocess.Status) *MigrationProcessCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableStatus(v *migrationprocess.Status) *MigrationProcessCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *MigrationProcessCreate) SetCurrentStep(v string) *MigrationProcessCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableCurrentStep(v *string) *MigrationProcessCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetStepsCompleted sets the "steps_completed" field.
func (_c *MigrationProcessCreate) SetStepsCompleted(v []string) *MigrationProcessCreate {
	_c.mutation.SetStepsCompleted(v)
	return _c
}

// SetInsights sets the "insights" field.
func (_c *MigrationProcessCreate) SetInsights(v []string) *MigrationProcessCreate {
	_c.mutation.SetInsights(v)
	return _c
}

// SetErrorLog sets the "error_log" field.
func (_c *MigrationProcessCreate) SetErrorLog(v []string) *MigrationProcessCreate {
	_c.mutation.SetErrorLog(v)
	return _c
}

// SetWarningLog sets the "warning_log" field.
func (_c *MigrationProcessCreate) SetWarningLog(v []string) *MigrationProcessCreate {
	_c.mutation.SetWarningLog(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *MigrationProcessCreate) SetOutcome(v map[string]interface{}) *MigrationProcessCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetGeneratedFiles sets the "generated_files" field.
func (_c *MigrationProcessCreate) SetGeneratedFiles(v []string) *MigrationProcessCreate {
	_c.mutation.SetGeneratedFiles(v)
	return _c
}

// SetFailure sets the "failure" field.
func (_c *MigrationProcessCreate) SetFailure(v map[string]interface{}) *MigrationProcessCreate {
	_c.mutation.SetFailure(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MigrationProcessCreate) SetCreatedAt(v time.Time) *MigrationProcessCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableCreatedAt(v *time.Time) *MigrationProcessCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPhaseStartedAt sets the "phase_started_at" field.
func (_c *MigrationProcessCreate) SetPhaseStartedAt(v time.Time) *MigrationProcessCreate {
	_c.mutation.SetPhaseStartedAt(v)
	return _c
}

// SetNillablePhaseStartedAt sets the "phase_started_at" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillablePhaseStartedAt(v *time.Time) *MigrationProcessCreate {
	if v != nil {
		_c.SetPhaseStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MigrationProcessCreate) SetCompletedAt(v time.Time) *MigrationProcessCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableCompletedAt(v *time.Time) *MigrationProcessCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastUpdateTime sets the "last_update_time" field.
func (_c *MigrationProcessCreate) SetLastUpdateTime(v time.Time) *MigrationProcessCreate {
	_c.mutation.SetLastUpdateTime(v)
	return _c
}

// SetNillableLastUpdateTime sets the "last_update_time" field if the given value is not nil.
func (_c *MigrationProcessCreate) SetNillableLastUpdateTime(v *time.Time) *MigrationProcessCreate {
	if v != nil {
		_c.SetLastUpdateTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MigrationProcessCreate) SetID(v string) *MigrationProcessCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddPhaseRunIDs adds the "phase_runs" edge to the PhaseRun entity by IDs.
func (_c *MigrationProcessCreate) AddPhaseRunIDs(ids ...string) *MigrationProcessCreate {
	_c.mutation.AddPhaseRunIDs(ids...)
	return _c
}

// AddPhaseRuns adds the "phase_runs" edges to the PhaseRun entity.
func (_c *MigrationProcessCreate) AddPhaseRuns(v ...*PhaseRun) *MigrationProcessCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPhaseRunIDs(ids...)
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_c *MigrationProcessCreate) AddAgentRecordIDs(ids ...string) *MigrationProcessCreate {
	_c.mutation.AddAgentRecordIDs(ids...)
	return _c
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_c *MigrationProcessCreate) AddAgentRecords(v ...*AgentRecord) *MigrationProcessCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentRecordIDs(ids...)
}

// Mutation returns the MigrationProcessMutation object of the builder.
func (_c *MigrationProcessCreate) Mutation() *MigrationProcessMutation {
	return _c.mutation
}

// Save creates the MigrationProcess in the database.
func (_c *MigrationProcessCreate) Save(ctx context.Context) (*MigrationProcess, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MigrationProcessCreate) SaveX(ctx context.Context) *MigrationProcess {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MigrationProcessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MigrationProcessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MigrationProcessCreate) defaults() {
	if _, ok := _c.mutation.TargetPlatform(); !ok {
		v := migrationprocess.DefaultTargetPlatform
		_c.mutation.SetTargetPlatform(v)
	}
	if _, ok := _c.mutation.SourceFolder(); !ok {
		v := migrationprocess.DefaultSourceFolder
		_c.mutation.SetSourceFolder(v)
	}
	if _, ok := _c.mutation.WorkspaceFolder(); !ok {
		v := migrationprocess.DefaultWorkspaceFolder
		_c.mutation.SetWorkspaceFolder(v)
	}
	if _, ok := _c.mutation.OutputFolder(); !ok {
		v := migrationprocess.DefaultOutputFolder
		_c.mutation.SetOutputFolder(v)
	}
	if _, ok := _c.mutation.Phase(); !ok {
		v := migrationprocess.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := migrationprocess.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := migrationprocess.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastUpdateTime(); !ok {
		v := migrationprocess.DefaultLastUpdateTime()
		_c.mutation.SetLastUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MigrationProcessCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MigrationProcess.user_id"`)}
	}
	if _, ok := _c.mutation.TargetPlatform(); !ok {
		return &ValidationError{Name: "target_platform", err: errors.New(`ent: missing required field "MigrationProcess.target_platform"`)}
	}
	if _, ok := _c.mutation.SourceFolder(); !ok {
		return &ValidationError{Name: "source_folder", err: errors.New(`ent: missing required field "MigrationProcess.source_folder"`)}
	}
	if _, ok := _c.mutation.WorkspaceFolder(); !ok {
		return &ValidationError{Name: "workspace_folder", err: errors.New(`ent: missing required field "MigrationProcess.workspace_folder"`)}
	}
	if _, ok := _c.mutation.OutputFolder(); !ok {
		return &ValidationError{Name: "output_folder", err: errors.New(`ent: missing required field "MigrationProcess.output_folder"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "MigrationProcess.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := migrationprocess.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "MigrationProcess.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MigrationProcess.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := migrationprocess.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MigrationProcess.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MigrationProcess.created_at"`)}
	}
	if _, ok := _c.mutation.LastUpdateTime(); !ok {
		return &ValidationError{Name: "last_update_time", err: errors.New(`ent: missing required field "MigrationProcess.last_update_time"`)}
	}
	return nil
}

func (_c *MigrationProcessCreate) sqlSave(ctx context.Context) (*MigrationProcess, error) {
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
			return nil, fmt.Errorf("unexpected MigrationProcess.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MigrationProcessCreate) createSpec() (*MigrationProcess, *sqlgraph.CreateSpec) {
	var (
		_node = &MigrationProcess{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(migrationprocess.Table, sqlgraph.NewFieldSpec(migrationprocess.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(migrationprocess.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SourcePlatform(); ok {
		_spec.SetField(migrationprocess.FieldSourcePlatform, field.TypeString, value)
		_node.SourcePlatform = value
	}
	if value, ok := _c.mutation.TargetPlatform(); ok {
		_spec.SetField(migrationprocess.FieldTargetPlatform, field.TypeString, value)
		_node.TargetPlatform = value
	}
	if value, ok := _c.mutation.ContainerName(); ok {
		_spec.SetField(migrationprocess.FieldContainerName, field.TypeString, value)
		_node.ContainerName = value
	}
	if value, ok := _c.mutation.SourceFolder(); ok {
		_spec.SetField(migrationprocess.FieldSourceFolder, field.TypeString, value)
		_node.SourceFolder = value
	}
	if value, ok := _c.mutation.WorkspaceFolder(); ok {
		_spec.SetField(migrationprocess.FieldWorkspaceFolder, field.TypeString, value)
		_node.WorkspaceFolder = value
	}
	if value, ok := _c.mutation.OutputFolder(); ok {
		_spec.SetField(migrationprocess.FieldOutputFolder, field.TypeString, value)
		_node.OutputFolder = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(migrationprocess.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(migrationprocess.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(migrationprocess.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.StepsCompleted(); ok {
		_spec.SetField(migrationprocess.FieldStepsCompleted, field.TypeJSON, value)
		_node.StepsCompleted = value
	}
	if value, ok := _c.mutation.Insights(); ok {
		_spec.SetField(migrationprocess.FieldInsights, field.TypeJSON, value)
		_node.Insights = value
	}
	if value, ok := _c.mutation.ErrorLog(); ok {
		_spec.SetField(migrationprocess.FieldErrorLog, field.TypeJSON, value)
		_node.ErrorLog = value
	}
	if value, ok := _c.mutation.WarningLog(); ok {
		_spec.SetField(migrationprocess.FieldWarningLog, field.TypeJSON, value)
		_node.WarningLog = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(migrationprocess.FieldOutcome, field.TypeJSON, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.GeneratedFiles(); ok {
		_spec.SetField(migrationprocess.FieldGeneratedFiles, field.TypeJSON, value)
		_node.GeneratedFiles = value
	}
	if value, ok := _c.mutation.Failure(); ok {
		_spec.SetField(migrationprocess.FieldFailure, field.TypeJSON, value)
		_node.Failure = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(migrationprocess.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PhaseStartedAt(); ok {
		_spec.SetField(migrationprocess.FieldPhaseStartedAt, field.TypeTime, value)
		_node.PhaseStartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(migrationprocess.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastUpdateTime(); ok {
		_spec.SetField(migrationprocess.FieldLastUpdateTime, field.TypeTime, value)
		_node.LastUpdateTime = value
	}
	if nodes := _c.mutation.PhaseRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   migrationprocess.PhaseRunsTable,
			Columns: []string{migrationprocess.PhaseRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phaserun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   migrationprocess.AgentRecordsTable,
			Columns: []string{migrationprocess.AgentRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MigrationProcess.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MigrationProcessUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *MigrationProcessCreate) OnConflict(opts ...sql.ConflictOption) *MigrationProcessUpsertOne {
	_c.conflict = opts
	return &MigrationProcessUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MigrationProcess.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MigrationProcessCreate) OnConflictColumns(columns ...string) *MigrationProcessUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MigrationProcessUpsertOne{
		create: _c,
	}
}

type (
	// MigrationProcessUpsertOne is the builder for "upsert"-ing
	//  one MigrationProcess node.
	MigrationProcessUpsertOne struct {
		create *MigrationProcessCreate
	}

	// MigrationProcessUpsert is the "OnConflict" setter.
	MigrationProcessUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *MigrationProcessUpsert) SetUserID(v string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateUserID() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldUserID)
	return u
}

// SetSourcePlatform sets the "source_platform" field.
func (u *MigrationProcessUpsert) SetSourcePlatform(v string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldSourcePlatform, v)
	return u
}

// UpdateSourcePlatform sets the "source_platform" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateSourcePlatform() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldSourcePlatform)
	return u
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (u *MigrationProcessUpsert) ClearSourcePlatform() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldSourcePlatform)
	return u
}

// SetTargetPlatform sets the "target_platform" field.
func (u *MigrationProcessUpsert) SetTargetPlatform(v string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldTargetPlatform, v)
	return u
}

// UpdateTargetPlatform sets the "target_platform" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateTargetPlatform() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldTargetPlatform)
	return u
}

// SetContainerName sets the "container_name" field.
func (u *MigrationProcessUpsert) SetContainerName(v string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldContainerName, v)
	return u
}

// UpdateContainerName sets the "container_name" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateContainerName() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldContainerName)
	return u
}

// ClearContainerName clears the value of the "container_name" field.
func (u *MigrationProcessUpsert) ClearContainerName() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldContainerName)
	return u
}

// SetSourceFolder sets the "source_folder" field.
func (u *MigrationProcessUpsert) SetSourceFolder(v string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldSourceFolder, v)
	return u
}

// UpdateSourceFolder sets the "source_folder" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateSourceFolder() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldSourceFolder)
	return u
}

// SetWorkspaceFolder sets the "workspace_folder" field.
func (u *MigrationProcessUpsert) SetWorkspaceFolder(v string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldWorkspaceFolder, v)
	return u
}

// UpdateWorkspaceFolder sets the "workspace_folder" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateWorkspaceFolder() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldWorkspaceFolder)
	return u
}

// SetOutputFolder sets the "output_folder" field.
func (u *MigrationProcessUpsert) SetOutputFolder(v string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldOutputFolder, v)
	return u
}

// UpdateOutputFolder sets the "output_folder" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateOutputFolder() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldOutputFolder)
	return u
}

// SetPhase sets the "phase" field.
func (u *MigrationProcessUpsert) SetPhase(v migrationprocess.Phase) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdatePhase() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldPhase)
	return u
}

// SetStatus sets the "status" field.
func (u *MigrationProcessUpsert) SetStatus(v migrationprocess.Status) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateStatus() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldStatus)
	return u
}

// SetCurrentStep sets the "current_step" field.
func (u *MigrationProcessUpsert) SetCurrentStep(v string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldCurrentStep, v)
	return u
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateCurrentStep() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldCurrentStep)
	return u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *MigrationProcessUpsert) ClearCurrentStep() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldCurrentStep)
	return u
}

// SetStepsCompleted sets the "steps_completed" field.
func (u *MigrationProcessUpsert) SetStepsCompleted(v []string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldStepsCompleted, v)
	return u
}

// UpdateStepsCompleted sets the "steps_completed" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateStepsCompleted() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldStepsCompleted)
	return u
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (u *MigrationProcessUpsert) ClearStepsCompleted() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldStepsCompleted)
	return u
}

// SetInsights sets the "insights" field.
func (u *MigrationProcessUpsert) SetInsights(v []string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldInsights, v)
	return u
}

// UpdateInsights sets the "insights" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateInsights() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldInsights)
	return u
}

// ClearInsights clears the value of the "insights" field.
func (u *MigrationProcessUpsert) ClearInsights() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldInsights)
	return u
}

// SetErrorLog sets the "error_log" field.
func (u *MigrationProcessUpsert) SetErrorLog(v []string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldErrorLog, v)
	return u
}

// UpdateErrorLog sets the "error_log" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateErrorLog() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldErrorLog)
	return u
}

// ClearErrorLog clears the value of the "error_log" field.
func (u *MigrationProcessUpsert) ClearErrorLog() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldErrorLog)
	return u
}

// SetWarningLog sets the "warning_log" field.
func (u *MigrationProcessUpsert) SetWarningLog(v []string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldWarningLog, v)
	return u
}

// UpdateWarningLog sets the "warning_log" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateWarningLog() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldWarningLog)
	return u
}

// ClearWarningLog clears the value of the "warning_log" field.
func (u *MigrationProcessUpsert) ClearWarningLog() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldWarningLog)
	return u
}

// SetOutcome sets the "outcome" field.
func (u *MigrationProcessUpsert) SetOutcome(v map[string]interface{}) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateOutcome() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldOutcome)
	return u
}

// ClearOutcome clears the value of the "outcome" field.
func (u *MigrationProcessUpsert) ClearOutcome() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldOutcome)
	return u
}

// SetGeneratedFiles sets the "generated_files" field.
func (u *MigrationProcessUpsert) SetGeneratedFiles(v []string) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldGeneratedFiles, v)
	return u
}

// UpdateGeneratedFiles sets the "generated_files" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateGeneratedFiles() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldGeneratedFiles)
	return u
}

// ClearGeneratedFiles clears the value of the "generated_files" field.
func (u *MigrationProcessUpsert) ClearGeneratedFiles() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldGeneratedFiles)
	return u
}

// SetFailure sets the "failure" field.
func (u *MigrationProcessUpsert) SetFailure(v map[string]interface{}) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldFailure, v)
	return u
}

// UpdateFailure sets the "failure" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateFailure() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldFailure)
	return u
}

// ClearFailure clears the value of the "failure" field.
func (u *MigrationProcessUpsert) ClearFailure() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldFailure)
	return u
}

// SetPhaseStartedAt sets the "phase_started_at" field.
func (u *MigrationProcessUpsert) SetPhaseStartedAt(v time.Time) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldPhaseStartedAt, v)
	return u
}

// UpdatePhaseStartedAt sets the "phase_started_at" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdatePhaseStartedAt() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldPhaseStartedAt)
	return u
}

// ClearPhaseStartedAt clears the value of the "phase_started_at" field.
func (u *MigrationProcessUpsert) ClearPhaseStartedAt() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldPhaseStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *MigrationProcessUpsert) SetCompletedAt(v time.Time) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateCompletedAt() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MigrationProcessUpsert) ClearCompletedAt() *MigrationProcessUpsert {
	u.SetNull(migrationprocess.FieldCompletedAt)
	return u
}

// SetLastUpdateTime sets the "last_update_time" field.
func (u *MigrationProcessUpsert) SetLastUpdateTime(v time.Time) *MigrationProcessUpsert {
	u.Set(migrationprocess.FieldLastUpdateTime, v)
	return u
}

// UpdateLastUpdateTime sets the "last_update_time" field to the value that was provided on create.
func (u *MigrationProcessUpsert) UpdateLastUpdateTime() *MigrationProcessUpsert {
	u.SetExcluded(migrationprocess.FieldLastUpdateTime)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MigrationProcess.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(migrationprocess.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MigrationProcessUpsertOne) UpdateNewValues() *MigrationProcessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(migrationprocess.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(migrationprocess.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MigrationProcess.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MigrationProcessUpsertOne) Ignore() *MigrationProcessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MigrationProcessUpsertOne) DoNothing() *MigrationProcessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MigrationProcessCreate.OnConflict
// documentation for more info.
func (u *MigrationProcessUpsertOne) Update(set func(*MigrationProcessUpsert)) *MigrationProcessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MigrationProcessUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *MigrationProcessUpsertOne) SetUserID(v string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateUserID() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateUserID()
	})
}

// SetSourcePlatform sets the "source_platform" field.
func (u *MigrationProcessUpsertOne) SetSourcePlatform(v string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetSourcePlatform(v)
	})
}

// UpdateSourcePlatform sets the "source_platform" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateSourcePlatform() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateSourcePlatform()
	})
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (u *MigrationProcessUpsertOne) ClearSourcePlatform() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearSourcePlatform()
	})
}

// SetTargetPlatform sets the "target_platform" field.
func (u *MigrationProcessUpsertOne) SetTargetPlatform(v string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetTargetPlatform(v)
	})
}

// UpdateTargetPlatform sets the "target_platform" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateTargetPlatform() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateTargetPlatform()
	})
}

// SetContainerName sets the "container_name" field.
func (u *MigrationProcessUpsertOne) SetContainerName(v string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetContainerName(v)
	})
}

// UpdateContainerName sets the "container_name" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateContainerName() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateContainerName()
	})
}

// ClearContainerName clears the value of the "container_name" field.
func (u *MigrationProcessUpsertOne) ClearContainerName() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearContainerName()
	})
}

// SetSourceFolder sets the "source_folder" field.
func (u *MigrationProcessUpsertOne) SetSourceFolder(v string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetSourceFolder(v)
	})
}

// UpdateSourceFolder sets the "source_folder" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateSourceFolder() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateSourceFolder()
	})
}

// SetWorkspaceFolder sets the "workspace_folder" field.
func (u *MigrationProcessUpsertOne) SetWorkspaceFolder(v string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetWorkspaceFolder(v)
	})
}

// UpdateWorkspaceFolder sets the "workspace_folder" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateWorkspaceFolder() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateWorkspaceFolder()
	})
}

// SetOutputFolder sets the "output_folder" field.
func (u *MigrationProcessUpsertOne) SetOutputFolder(v string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetOutputFolder(v)
	})
}

// UpdateOutputFolder sets the "output_folder" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateOutputFolder() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateOutputFolder()
	})
}

// SetPhase sets the "phase" field.
func (u *MigrationProcessUpsertOne) SetPhase(v migrationprocess.Phase) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdatePhase() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdatePhase()
	})
}

// SetStatus sets the "status" field.
func (u *MigrationProcessUpsertOne) SetStatus(v migrationprocess.Status) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateStatus() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *MigrationProcessUpsertOne) SetCurrentStep(v string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateCurrentStep() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *MigrationProcessUpsertOne) ClearCurrentStep() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearCurrentStep()
	})
}

// SetStepsCompleted sets the "steps_completed" field.
func (u *MigrationProcessUpsertOne) SetStepsCompleted(v []string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetStepsCompleted(v)
	})
}

// UpdateStepsCompleted sets the "steps_completed" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateStepsCompleted() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateStepsCompleted()
	})
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (u *MigrationProcessUpsertOne) ClearStepsCompleted() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearStepsCompleted()
	})
}

// SetInsights sets the "insights" field.
func (u *MigrationProcessUpsertOne) SetInsights(v []string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetInsights(v)
	})
}

// UpdateInsights sets the "insights" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateInsights() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateInsights()
	})
}

// ClearInsights clears the value of the "insights" field.
func (u *MigrationProcessUpsertOne) ClearInsights() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearInsights()
	})
}

// SetErrorLog sets the "error_log" field.
func (u *MigrationProcessUpsertOne) SetErrorLog(v []string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetErrorLog(v)
	})
}

// UpdateErrorLog sets the "error_log" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateErrorLog() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateErrorLog()
	})
}

// ClearErrorLog clears the value of the "error_log" field.
func (u *MigrationProcessUpsertOne) ClearErrorLog() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearErrorLog()
	})
}

// SetWarningLog sets the "warning_log" field.
func (u *MigrationProcessUpsertOne) SetWarningLog(v []string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetWarningLog(v)
	})
}

// UpdateWarningLog sets the "warning_log" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateWarningLog() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateWarningLog()
	})
}

// ClearWarningLog clears the value of the "warning_log" field.
func (u *MigrationProcessUpsertOne) ClearWarningLog() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearWarningLog()
	})
}

// SetOutcome sets the "outcome" field.
func (u *MigrationProcessUpsertOne) SetOutcome(v map[string]interface{}) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateOutcome() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateOutcome()
	})
}

// ClearOutcome clears the value of the "outcome" field.
func (u *MigrationProcessUpsertOne) ClearOutcome() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearOutcome()
	})
}

// SetGeneratedFiles sets the "generated_files" field.
func (u *MigrationProcessUpsertOne) SetGeneratedFiles(v []string) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetGeneratedFiles(v)
	})
}

// UpdateGeneratedFiles sets the "generated_files" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateGeneratedFiles() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateGeneratedFiles()
	})
}

// ClearGeneratedFiles clears the value of the "generated_files" field.
func (u *MigrationProcessUpsertOne) ClearGeneratedFiles() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearGeneratedFiles()
	})
}

// SetFailure sets the "failure" field.
func (u *MigrationProcessUpsertOne) SetFailure(v map[string]interface{}) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetFailure(v)
	})
}

// UpdateFailure sets the "failure" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateFailure() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateFailure()
	})
}

// ClearFailure clears the value of the "failure" field.
func (u *MigrationProcessUpsertOne) ClearFailure() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearFailure()
	})
}

// SetPhaseStartedAt sets the "phase_started_at" field.
func (u *MigrationProcessUpsertOne) SetPhaseStartedAt(v time.Time) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetPhaseStartedAt(v)
	})
}

// UpdatePhaseStartedAt sets the "phase_started_at" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdatePhaseStartedAt() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdatePhaseStartedAt()
	})
}

// ClearPhaseStartedAt clears the value of the "phase_started_at" field.
func (u *MigrationProcessUpsertOne) ClearPhaseStartedAt() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearPhaseStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MigrationProcessUpsertOne) SetCompletedAt(v time.Time) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateCompletedAt() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MigrationProcessUpsertOne) ClearCompletedAt() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastUpdateTime sets the "last_update_time" field.
func (u *MigrationProcessUpsertOne) SetLastUpdateTime(v time.Time) *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetLastUpdateTime(v)
	})
}

// UpdateLastUpdateTime sets the "last_update_time" field to the value that was provided on create.
func (u *MigrationProcessUpsertOne) UpdateLastUpdateTime() *MigrationProcessUpsertOne {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateLastUpdateTime()
	})
}

// Exec executes the query.
func (u *MigrationProcessUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MigrationProcessCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MigrationProcessUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MigrationProcessUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MigrationProcessUpsertOne.ID is not supported by MySQL driver. Use MigrationProcessUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MigrationProcessUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MigrationProcessCreateBulk is the builder for creating many MigrationProcess entities in bulk.
type MigrationProcessCreateBulk struct {
	config
	err      error
	builders []*MigrationProcessCreate
	conflict []sql.ConflictOption
}

// Save creates the MigrationProcess entities in the database.
func (_c *MigrationProcessCreateBulk) Save(ctx context.Context) ([]*MigrationProcess, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MigrationProcess, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MigrationProcessMutation)
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
func (_c *MigrationProcessCreateBulk) SaveX(ctx context.Context) []*MigrationProcess {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MigrationProcessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MigrationProcessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MigrationProcess.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MigrationProcessUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *MigrationProcessCreateBulk) OnConflict(opts ...sql.ConflictOption) *MigrationProcessUpsertBulk {
	_c.conflict = opts
	return &MigrationProcessUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MigrationProcess.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MigrationProcessCreateBulk) OnConflictColumns(columns ...string) *MigrationProcessUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MigrationProcessUpsertBulk{
		create: _c,
	}
}

// MigrationProcessUpsertBulk is the builder for "upsert"-ing
// a bulk of MigrationProcess nodes.
type MigrationProcessUpsertBulk struct {
	create *MigrationProcessCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MigrationProcess.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(migrationprocess.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MigrationProcessUpsertBulk) UpdateNewValues() *MigrationProcessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(migrationprocess.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(migrationprocess.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MigrationProcess.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MigrationProcessUpsertBulk) Ignore() *MigrationProcessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MigrationProcessUpsertBulk) DoNothing() *MigrationProcessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MigrationProcessCreateBulk.OnConflict
// documentation for more info.
func (u *MigrationProcessUpsertBulk) Update(set func(*MigrationProcessUpsert)) *MigrationProcessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MigrationProcessUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *MigrationProcessUpsertBulk) SetUserID(v string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateUserID() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateUserID()
	})
}

// SetSourcePlatform sets the "source_platform" field.
func (u *MigrationProcessUpsertBulk) SetSourcePlatform(v string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetSourcePlatform(v)
	})
}

// UpdateSourcePlatform sets the "source_platform" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateSourcePlatform() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateSourcePlatform()
	})
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (u *MigrationProcessUpsertBulk) ClearSourcePlatform() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearSourcePlatform()
	})
}

// SetTargetPlatform sets the "target_platform" field.
func (u *MigrationProcessUpsertBulk) SetTargetPlatform(v string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetTargetPlatform(v)
	})
}

// UpdateTargetPlatform sets the "target_platform" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateTargetPlatform() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateTargetPlatform()
	})
}

// SetContainerName sets the "container_name" field.
func (u *MigrationProcessUpsertBulk) SetContainerName(v string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetContainerName(v)
	})
}

// UpdateContainerName sets the "container_name" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateContainerName() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateContainerName()
	})
}

// ClearContainerName clears the value of the "container_name" field.
func (u *MigrationProcessUpsertBulk) ClearContainerName() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearContainerName()
	})
}

// SetSourceFolder sets the "source_folder" field.
func (u *MigrationProcessUpsertBulk) SetSourceFolder(v string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetSourceFolder(v)
	})
}

// UpdateSourceFolder sets the "source_folder" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateSourceFolder() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateSourceFolder()
	})
}

// SetWorkspaceFolder sets the "workspace_folder" field.
func (u *MigrationProcessUpsertBulk) SetWorkspaceFolder(v string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetWorkspaceFolder(v)
	})
}

// UpdateWorkspaceFolder sets the "workspace_folder" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateWorkspaceFolder() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateWorkspaceFolder()
	})
}

// SetOutputFolder sets the "output_folder" field.
func (u *MigrationProcessUpsertBulk) SetOutputFolder(v string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetOutputFolder(v)
	})
}

// UpdateOutputFolder sets the "output_folder" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateOutputFolder() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateOutputFolder()
	})
}

// SetPhase sets the "phase" field.
func (u *MigrationProcessUpsertBulk) SetPhase(v migrationprocess.Phase) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdatePhase() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdatePhase()
	})
}

// SetStatus sets the "status" field.
func (u *MigrationProcessUpsertBulk) SetStatus(v migrationprocess.Status) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateStatus() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *MigrationProcessUpsertBulk) SetCurrentStep(v string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateCurrentStep() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *MigrationProcessUpsertBulk) ClearCurrentStep() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearCurrentStep()
	})
}

// SetStepsCompleted sets the "steps_completed" field.
func (u *MigrationProcessUpsertBulk) SetStepsCompleted(v []string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetStepsCompleted(v)
	})
}

// UpdateStepsCompleted sets the "steps_completed" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateStepsCompleted() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateStepsCompleted()
	})
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (u *MigrationProcessUpsertBulk) ClearStepsCompleted() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearStepsCompleted()
	})
}

// SetInsights sets the "insights" field.
func (u *MigrationProcessUpsertBulk) SetInsights(v []string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetInsights(v)
	})
}

// UpdateInsights sets the "insights" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateInsights() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateInsights()
	})
}

// ClearInsights clears the value of the "insights" field.
func (u *MigrationProcessUpsertBulk) ClearInsights() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearInsights()
	})
}

// SetErrorLog sets the "error_log" field.
func (u *MigrationProcessUpsertBulk) SetErrorLog(v []string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetErrorLog(v)
	})
}

// UpdateErrorLog sets the "error_log" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateErrorLog() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateErrorLog()
	})
}

// ClearErrorLog clears the value of the "error_log" field.
func (u *MigrationProcessUpsertBulk) ClearErrorLog() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearErrorLog()
	})
}

// SetWarningLog sets the "warning_log" field.
func (u *MigrationProcessUpsertBulk) SetWarningLog(v []string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetWarningLog(v)
	})
}

// UpdateWarningLog sets the "warning_log" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateWarningLog() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateWarningLog()
	})
}

// ClearWarningLog clears the value of the "warning_log" field.
func (u *MigrationProcessUpsertBulk) ClearWarningLog() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearWarningLog()
	})
}

// SetOutcome sets the "outcome" field.
func (u *MigrationProcessUpsertBulk) SetOutcome(v map[string]interface{}) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateOutcome() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateOutcome()
	})
}

// ClearOutcome clears the value of the "outcome" field.
func (u *MigrationProcessUpsertBulk) ClearOutcome() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearOutcome()
	})
}

// SetGeneratedFiles sets the "generated_files" field.
func (u *MigrationProcessUpsertBulk) SetGeneratedFiles(v []string) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetGeneratedFiles(v)
	})
}

// UpdateGeneratedFiles sets the "generated_files" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateGeneratedFiles() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateGeneratedFiles()
	})
}

// ClearGeneratedFiles clears the value of the "generated_files" field.
func (u *MigrationProcessUpsertBulk) ClearGeneratedFiles() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearGeneratedFiles()
	})
}

// SetFailure sets the "failure" field.
func (u *MigrationProcessUpsertBulk) SetFailure(v map[string]interface{}) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetFailure(v)
	})
}

// UpdateFailure sets the "failure" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateFailure() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateFailure()
	})
}

// ClearFailure clears the value of the "failure" field.
func (u *MigrationProcessUpsertBulk) ClearFailure() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearFailure()
	})
}

// SetPhaseStartedAt sets the "phase_started_at" field.
func (u *MigrationProcessUpsertBulk) SetPhaseStartedAt(v time.Time) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetPhaseStartedAt(v)
	})
}

// UpdatePhaseStartedAt sets the "phase_started_at" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdatePhaseStartedAt() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdatePhaseStartedAt()
	})
}

// ClearPhaseStartedAt clears the value of the "phase_started_at" field.
func (u *MigrationProcessUpsertBulk) ClearPhaseStartedAt() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearPhaseStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MigrationProcessUpsertBulk) SetCompletedAt(v time.Time) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateCompletedAt() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MigrationProcessUpsertBulk) ClearCompletedAt() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastUpdateTime sets the "last_update_time" field.
func (u *MigrationProcessUpsertBulk) SetLastUpdateTime(v time.Time) *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.SetLastUpdateTime(v)
	})
}

// UpdateLastUpdateTime sets the "last_update_time" field to the value that was provided on create.
func (u *MigrationProcessUpsertBulk) UpdateLastUpdateTime() *MigrationProcessUpsertBulk {
	return u.Update(func(s *MigrationProcessUpsert) {
		s.UpdateLastUpdateTime()
	})
}

// Exec executes the query.
func (u *MigrationProcessUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MigrationProcessCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MigrationProcessCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MigrationProcessUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
