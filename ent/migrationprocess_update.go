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
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
)

// MigrationProcessUpdate is the builder for updating MigrationProcess entities.
type MigrationProcessUpdate struct {
	config
	hooks    []Hook
	mutation *MigrationProcessMutation
}

// Where appends a list predicates to the MigrationProcessUpdate builder.
func (_u *MigrationProcessUpdate) Where(ps ...predicate.MigrationProcess) *MigrationProcessUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MigrationProcessUpdate) SetUserID(v string) *MigrationProcessUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableUserID(v *string) *MigrationProcessUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSourcePlatform sets the "source_platform" field.
func (_u *MigrationProcessUpdate) SetSourcePlatform(v string) *MigrationProcessUpdate {
	_u.mutation.SetSourcePlatform(v)
	return _u
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableSourcePlatform(v *string) *MigrationProcessUpdate {
	if v != nil {
		_u.SetSourcePlatform(*v)
	}
	return _u
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (_u *MigrationProcessUpdate) ClearSourcePlatform() *MigrationProcessUpdate {
	_u.mutation.ClearSourcePlatform()
	return _u
}

// SetTargetPlatform sets the "target_platform" field.
func (_u *MigrationProcessUpdate) SetTargetPlatform(v string) *MigrationProcessUpdate {
	_u.mutation.SetTargetPlatform(v)
	return _u
}

// SetNillableTargetPlatform sets the "target_platform" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableTargetPlatform(v *string) *MigrationProcessUpdate {
	if v != nil {
		_u.SetTargetPlatform(*v)
	}
	return _u
}

// SetContainerName sets the "container_name" field.
func (_u *MigrationProcessUpdate) SetContainerName(v string) *MigrationProcessUpdate {
	_u.mutation.SetContainerName(v)
	return _u
}

// SetNillableContainerName sets the "container_name" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableContainerName(v *string) *MigrationProcessUpdate {
	if v != nil {
		_u.SetContainerName(*v)
	}
	return _u
}

// ClearContainerName clears the value of the "container_name" field.
func (_u *MigrationProcessUpdate) ClearContainerName() *MigrationProcessUpdate {
	_u.mutation.ClearContainerName()
	return _u
}

// SetSourceFolder sets the "source_folder" field.
func (_u *MigrationProcessUpdate) SetSourceFolder(v string) *MigrationProcessUpdate {
	_u.mutation.SetSourceFolder(v)
	return _u
}

// SetNillableSourceFolder sets the "source_folder" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableSourceFolder(v *string) *MigrationProcessUpdate {
	if v != nil {
		_u.SetSourceFolder(*v)
	}
	return _u
}

// SetWorkspaceFolder sets the "workspace_folder" field.
func (_u *MigrationProcessUpdate) SetWorkspaceFolder(v string) *MigrationProcessUpdate {
	_u.mutation.SetWorkspaceFolder(v)
	return _u
}

// SetNillableWorkspaceFolder sets the "workspace_folder" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableWorkspaceFolder(v *string) *MigrationProcessUpdate {
	if v != nil {
		_u.SetWorkspaceFolder(*v)
	}
	return _u
}

// SetOutputFolder sets the "output_folder" field.
func (_u *MigrationProcessUpdate) SetOutputFolder(v string) *MigrationProcessUpdate {
	_u.mutation.SetOutputFolder(v)
	return _u
}

// SetNillableOutputFolder sets the "output_folder" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableOutputFolder(v *string) *MigrationProcessUpdate {
	if v != nil {
		_u.SetOutputFolder(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *MigrationProcessUpdate) SetPhase(v migrationprocess.Phase) *MigrationProcessUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillablePhase(v *migrationprocess.Phase) *MigrationProcessUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MigrationProcessUpdate) SetStatus(v migrationprocess.Status) *MigrationProcessUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableStatus(v *migrationprocess.Status) *MigrationProcessUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *MigrationProcessUpdate) SetCurrentStep(v string) *MigrationProcessUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableCurrentStep(v *string) *MigrationProcessUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *MigrationProcessUpdate) ClearCurrentStep() *MigrationProcessUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetStepsCompleted sets the "steps_completed" field.
func (_u *MigrationProcessUpdate) SetStepsCompleted(v []string) *MigrationProcessUpdate {
	_u.mutation.SetStepsCompleted(v)
	return _u
}

// AppendStepsCompleted appends value to the "steps_completed" field.
func (_u *MigrationProcessUpdate) AppendStepsCompleted(v []string) *MigrationProcessUpdate {
	_u.mutation.AppendStepsCompleted(v)
	return _u
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (_u *MigrationProcessUpdate) ClearStepsCompleted() *MigrationProcessUpdate {
	_u.mutation.ClearStepsCompleted()
	return _u
}

// SetInsights sets the "insights" field.
func (_u *MigrationProcessUpdate) SetInsights(v []string) *MigrationProcessUpdate {
	_u.mutation.SetInsights(v)
	return _u
}

// AppendInsights appends value to the "insights" field.
func (_u *MigrationProcessUpdate) AppendInsights(v []string) *MigrationProcessUpdate {
	_u.mutation.AppendInsights(v)
	return _u
}

// ClearInsights clears the value of the "insights" field.
func (_u *MigrationProcessUpdate) ClearInsights() *MigrationProcessUpdate {
	_u.mutation.ClearInsights()
	return _u
}

// SetErrorLog sets the "error_log" field.
func (_u *MigrationProcessUpdate) SetErrorLog(v []string) *MigrationProcessUpdate {
	_u.mutation.SetErrorLog(v)
	return _u
}

// AppendErrorLog appends value to the "error_log" field.
func (_u *MigrationProcessUpdate) AppendErrorLog(v []string) *MigrationProcessUpdate {
	_u.mutation.AppendErrorLog(v)
	return _u
}

// ClearErrorLog clears the value of the "error_log" field.
func (_u *MigrationProcessUpdate) ClearErrorLog() *MigrationProcessUpdate {
	_u.mutation.ClearErrorLog()
	return _u
}

// SetWarningLog sets the "warning_log" field.
func (_u *MigrationProcessUpdate) SetWarningLog(v []string) *MigrationProcessUpdate {
	_u.mutation.SetWarningLog(v)
	return _u
}

// AppendWarningLog appends value to the "warning_log" field.
func (_u *MigrationProcessUpdate) AppendWarningLog(v []string) *MigrationProcessUpdate {
	_u.mutation.AppendWarningLog(v)
	return _u
}

// ClearWarningLog clears the value of the "warning_log" field.
func (_u *MigrationProcessUpdate) ClearWarningLog() *MigrationProcessUpdate {
	_u.mutation.ClearWarningLog()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *MigrationProcessUpdate) SetOutcome(v map[string]interface{}) *MigrationProcessUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *MigrationProcessUpdate) ClearOutcome() *MigrationProcessUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetGeneratedFiles sets the "generated_files" field.
func (_u *MigrationProcessUpdate) SetGeneratedFiles(v []string) *MigrationProcessUpdate {
	_u.mutation.SetGeneratedFiles(v)
	return _u
}

// AppendGeneratedFiles appends value to the "generated_files" field.
func (_u *MigrationProcessUpdate) AppendGeneratedFiles(v []string) *MigrationProcessUpdate {
	_u.mutation.AppendGeneratedFiles(v)
	return _u
}

// ClearGeneratedFiles clears the value of the "generated_files" field.
func (_u *MigrationProcessUpdate) ClearGeneratedFiles() *MigrationProcessUpdate {
	_u.mutation.ClearGeneratedFiles()
	return _u
}

// SetFailure sets the "failure" field.
func (_u *MigrationProcessUpdate) SetFailure(v map[string]interface{}) *MigrationProcessUpdate {
	_u.mutation.SetFailure(v)
	return _u
}

// ClearFailure clears the value of the "failure" field.
func (_u *MigrationProcessUpdate) ClearFailure() *MigrationProcessUpdate {
	_u.mutation.ClearFailure()
	return _u
}

// SetPhaseStartedAt sets the "phase_started_at" field.
func (_u *MigrationProcessUpdate) SetPhaseStartedAt(v time.Time) *MigrationProcessUpdate {
	_u.mutation.SetPhaseStartedAt(v)
	return _u
}

// SetNillablePhaseStartedAt sets the "phase_started_at" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillablePhaseStartedAt(v *time.Time) *MigrationProcessUpdate {
	if v != nil {
		_u.SetPhaseStartedAt(*v)
	}
	return _u
}

// ClearPhaseStartedAt clears the value of the "phase_started_at" field.
func (_u *MigrationProcessUpdate) ClearPhaseStartedAt() *MigrationProcessUpdate {
	_u.mutation.ClearPhaseStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MigrationProcessUpdate) SetCompletedAt(v time.Time) *MigrationProcessUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableCompletedAt(v *time.Time) *MigrationProcessUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MigrationProcessUpdate) ClearCompletedAt() *MigrationProcessUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastUpdateTime sets the "last_update_time" field.
func (_u *MigrationProcessUpdate) SetLastUpdateTime(v time.Time) *MigrationProcessUpdate {
	_u.mutation.SetLastUpdateTime(v)
	return _u
}

// SetNillableLastUpdateTime sets the "last_update_time" field if the given value is not nil.
func (_u *MigrationProcessUpdate) SetNillableLastUpdateTime(v *time.Time) *MigrationProcessUpdate {
	if v != nil {
		_u.SetLastUpdateTime(*v)
	}
	return _u
}

// AddPhaseRunIDs adds the "phase_runs" edge to the PhaseRun entity by IDs.
func (_u *MigrationProcessUpdate) AddPhaseRunIDs(ids ...string) *MigrationProcessUpdate {
	_u.mutation.AddPhaseRunIDs(ids...)
	return _u
}

// AddPhaseRuns adds the "phase_runs" edges to the PhaseRun entity.
func (_u *MigrationProcessUpdate) AddPhaseRuns(v ...*PhaseRun) *MigrationProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhaseRunIDs(ids...)
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_u *MigrationProcessUpdate) AddAgentRecordIDs(ids ...string) *MigrationProcessUpdate {
	_u.mutation.AddAgentRecordIDs(ids...)
	return _u
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_u *MigrationProcessUpdate) AddAgentRecords(v ...*AgentRecord) *MigrationProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRecordIDs(ids...)
}

// Mutation returns the MigrationProcessMutation object of the builder.
func (_u *MigrationProcessUpdate) Mutation() *MigrationProcessMutation {
	return _u.mutation
}

// ClearPhaseRuns clears all "phase_runs" edges to the PhaseRun entity.
func (_u *MigrationProcessUpdate) ClearPhaseRuns() *MigrationProcessUpdate {
	_u.mutation.ClearPhaseRuns()
	return _u
}

// RemovePhaseRunIDs removes the "phase_runs" edge to PhaseRun entities by IDs.
func (_u *MigrationProcessUpdate) RemovePhaseRunIDs(ids ...string) *MigrationProcessUpdate {
	_u.mutation.RemovePhaseRunIDs(ids...)
	return _u
}

// RemovePhaseRuns removes "phase_runs" edges to PhaseRun entities.
func (_u *MigrationProcessUpdate) RemovePhaseRuns(v ...*PhaseRun) *MigrationProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhaseRunIDs(ids...)
}

// ClearAgentRecords clears all "agent_records" edges to the AgentRecord entity.
func (_u *MigrationProcessUpdate) ClearAgentRecords() *MigrationProcessUpdate {
	_u.mutation.ClearAgentRecords()
	return _u
}

// RemoveAgentRecordIDs removes the "agent_records" edge to AgentRecord entities by IDs.
func (_u *MigrationProcessUpdate) RemoveAgentRecordIDs(ids ...string) *MigrationProcessUpdate {
	_u.mutation.RemoveAgentRecordIDs(ids...)
	return _u
}

// RemoveAgentRecords removes "agent_records" edges to AgentRecord entities.
func (_u *MigrationProcessUpdate) RemoveAgentRecords(v ...*AgentRecord) *MigrationProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MigrationProcessUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MigrationProcessUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MigrationProcessUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MigrationProcessUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MigrationProcessUpdate) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := migrationprocess.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "MigrationProcess.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := migrationprocess.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MigrationProcess.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MigrationProcessUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(migrationprocess.Table, migrationprocess.Columns, sqlgraph.NewFieldSpec(migrationprocess.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(migrationprocess.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePlatform(); ok {
		_spec.SetField(migrationprocess.FieldSourcePlatform, field.TypeString, value)
	}
	if _u.mutation.SourcePlatformCleared() {
		_spec.ClearField(migrationprocess.FieldSourcePlatform, field.TypeString)
	}
	if value, ok := _u.mutation.TargetPlatform(); ok {
		_spec.SetField(migrationprocess.FieldTargetPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContainerName(); ok {
		_spec.SetField(migrationprocess.FieldContainerName, field.TypeString, value)
	}
	if _u.mutation.ContainerNameCleared() {
		_spec.ClearField(migrationprocess.FieldContainerName, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFolder(); ok {
		_spec.SetField(migrationprocess.FieldSourceFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceFolder(); ok {
		_spec.SetField(migrationprocess.FieldWorkspaceFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputFolder(); ok {
		_spec.SetField(migrationprocess.FieldOutputFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(migrationprocess.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(migrationprocess.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(migrationprocess.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(migrationprocess.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.StepsCompleted(); ok {
		_spec.SetField(migrationprocess.FieldStepsCompleted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepsCompleted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, migrationprocess.FieldStepsCompleted, value)
		})
	}
	if _u.mutation.StepsCompletedCleared() {
		_spec.ClearField(migrationprocess.FieldStepsCompleted, field.TypeJSON)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(migrationprocess.FieldInsights, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsights(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, migrationprocess.FieldInsights, value)
		})
	}
	if _u.mutation.InsightsCleared() {
		_spec.ClearField(migrationprocess.FieldInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorLog(); ok {
		_spec.SetField(migrationprocess.FieldErrorLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, migrationprocess.FieldErrorLog, value)
		})
	}
	if _u.mutation.ErrorLogCleared() {
		_spec.ClearField(migrationprocess.FieldErrorLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.WarningLog(); ok {
		_spec.SetField(migrationprocess.FieldWarningLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarningLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, migrationprocess.FieldWarningLog, value)
		})
	}
	if _u.mutation.WarningLogCleared() {
		_spec.ClearField(migrationprocess.FieldWarningLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(migrationprocess.FieldOutcome, field.TypeJSON, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(migrationprocess.FieldOutcome, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeneratedFiles(); ok {
		_spec.SetField(migrationprocess.FieldGeneratedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, migrationprocess.FieldGeneratedFiles, value)
		})
	}
	if _u.mutation.GeneratedFilesCleared() {
		_spec.ClearField(migrationprocess.FieldGeneratedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Failure(); ok {
		_spec.SetField(migrationprocess.FieldFailure, field.TypeJSON, value)
	}
	if _u.mutation.FailureCleared() {
		_spec.ClearField(migrationprocess.FieldFailure, field.TypeJSON)
	}
	if value, ok := _u.mutation.PhaseStartedAt(); ok {
		_spec.SetField(migrationprocess.FieldPhaseStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PhaseStartedAtCleared() {
		_spec.ClearField(migrationprocess.FieldPhaseStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(migrationprocess.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(migrationprocess.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUpdateTime(); ok {
		_spec.SetField(migrationprocess.FieldLastUpdateTime, field.TypeTime, value)
	}
	if _u.mutation.PhaseRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhaseRunsIDs(); len(nodes) > 0 && !_u.mutation.PhaseRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhaseRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRecordsIDs(); len(nodes) > 0 && !_u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{migrationprocess.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MigrationProcessUpdateOne is the builder for updating a single MigrationProcess entity.
type MigrationProcessUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MigrationProcessMutation
}

// SetUserID sets the "user_id" field.
func (_u *MigrationProcessUpdateOne) SetUserID(v string) *MigrationProcessUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableUserID(v *string) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSourcePlatform sets the "source_platform" field.
func (_u *MigrationProcessUpdateOne) SetSourcePlatform(v string) *MigrationProcessUpdateOne {
	_u.mutation.SetSourcePlatform(v)
	return _u
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableSourcePlatform(v *string) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetSourcePlatform(*v)
	}
	return _u
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (_u *MigrationProcessUpdateOne) ClearSourcePlatform() *MigrationProcessUpdateOne {
	_u.mutation.ClearSourcePlatform()
	return _u
}

// SetTargetPlatform sets the "target_platform" field.
func (_u *MigrationProcessUpdateOne) SetTargetPlatform(v string) *MigrationProcessUpdateOne {
	_u.mutation.SetTargetPlatform(v)
	return _u
}

// SetNillableTargetPlatform sets the "target_platform" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableTargetPlatform(v *string) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetTargetPlatform(*v)
	}
	return _u
}

// SetContainerName sets the "container_name" field.
func (_u *MigrationProcessUpdateOne) SetContainerName(v string) *MigrationProcessUpdateOne {
	_u.mutation.SetContainerName(v)
	return _u
}

// SetNillableContainerName sets the "container_name" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableContainerName(v *string) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetContainerName(*v)
	}
	return _u
}

// ClearContainerName clears the value of the "container_name" field.
func (_u *MigrationProcessUpdateOne) ClearContainerName() *MigrationProcessUpdateOne {
	_u.mutation.ClearContainerName()
	return _u
}

// SetSourceFolder sets the "source_folder" field.
func (_u *MigrationProcessUpdateOne) SetSourceFolder(v string) *MigrationProcessUpdateOne {
	_u.mutation.SetSourceFolder(v)
	return _u
}

// SetNillableSourceFolder sets the "source_folder" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableSourceFolder(v *string) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetSourceFolder(*v)
	}
	return _u
}

// SetWorkspaceFolder sets the "workspace_folder" field.
func (_u *MigrationProcessUpdateOne) SetWorkspaceFolder(v string) *MigrationProcessUpdateOne {
	_u.mutation.SetWorkspaceFolder(v)
	return _u
}

// SetNillableWorkspaceFolder sets the "workspace_folder" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableWorkspaceFolder(v *string) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetWorkspaceFolder(*v)
	}
	return _u
}

// SetOutputFolder sets the "output_folder" field.
func (_u *MigrationProcessUpdateOne) SetOutputFolder(v string) *MigrationProcessUpdateOne {
	_u.mutation.SetOutputFolder(v)
	return _u
}

// SetNillableOutputFolder sets the "output_folder" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableOutputFolder(v *string) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetOutputFolder(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *MigrationProcessUpdateOne) SetPhase(v migrationprocess.Phase) *MigrationProcessUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillablePhase(v *migrationprocess.Phase) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MigrationProcessUpdateOne) SetStatus(v migrationprocess.Status) *MigrationProcessUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableStatus(v *migrationprocess.Status) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *MigrationProcessUpdateOne) SetCurrentStep(v string) *MigrationProcessUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableCurrentStep(v *string) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *MigrationProcessUpdateOne) ClearCurrentStep() *MigrationProcessUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetStepsCompleted sets the "steps_completed" field.
func (_u *MigrationProcessUpdateOne) SetStepsCompleted(v []string) *MigrationProcessUpdateOne {
	_u.mutation.SetStepsCompleted(v)
	return _u
}

// AppendStepsCompleted appends value to the "steps_completed" field.
func (_u *MigrationProcessUpdateOne) AppendStepsCompleted(v []string) *MigrationProcessUpdateOne {
	_u.mutation.AppendStepsCompleted(v)
	return _u
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (_u *MigrationProcessUpdateOne) ClearStepsCompleted() *MigrationProcessUpdateOne {
	_u.mutation.ClearStepsCompleted()
	return _u
}

// SetInsights sets the "insights" field.
func (_u *MigrationProcessUpdateOne) SetInsights(v []string) *MigrationProcessUpdateOne {
	_u.mutation.SetInsights(v)
	return _u
}

// AppendInsights appends value to the "insights" field.
func (_u *MigrationProcessUpdateOne) AppendInsights(v []string) *MigrationProcessUpdateOne {
	_u.mutation.AppendInsights(v)
	return _u
}

// ClearInsights clears the value of the "insights" field.
func (_u *MigrationProcessUpdateOne) ClearInsights() *MigrationProcessUpdateOne {
	_u.mutation.ClearInsights()
	return _u
}

// SetErrorLog sets the "error_log" field.
func (_u *MigrationProcessUpdateOne) SetErrorLog(v []string) *MigrationProcessUpdateOne {
	_u.mutation.SetErrorLog(v)
	return _u
}

// AppendErrorLog appends value to the "error_log" field.
func (_u *MigrationProcessUpdateOne) AppendErrorLog(v []string) *MigrationProcessUpdateOne {
	_u.mutation.AppendErrorLog(v)
	return _u
}

// ClearErrorLog clears the value of the "error_log" field.
func (_u *MigrationProcessUpdateOne) ClearErrorLog() *MigrationProcessUpdateOne {
	_u.mutation.ClearErrorLog()
	return _u
}

// SetWarningLog sets the "warning_log" field.
func (_u *MigrationProcessUpdateOne) SetWarningLog(v []string) *MigrationProcessUpdateOne {
	_u.mutation.SetWarningLog(v)
	return _u
}

// AppendWarningLog appends value to the "warning_log" field.
func (_u *MigrationProcessUpdateOne) AppendWarningLog(v []string) *MigrationProcessUpdateOne {
	_u.mutation.AppendWarningLog(v)
	return _u
}

// ClearWarningLog clears the value of the "warning_log" field.
func (_u *MigrationProcessUpdateOne) ClearWarningLog() *MigrationProcessUpdateOne {
	_u.mutation.ClearWarningLog()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *MigrationProcessUpdateOne) SetOutcome(v map[string]interface{}) *MigrationProcessUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *MigrationProcessUpdateOne) ClearOutcome() *MigrationProcessUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetGeneratedFiles sets the "generated_files" field.
func (_u *MigrationProcessUpdateOne) SetGeneratedFiles(v []string) *MigrationProcessUpdateOne {
	_u.mutation.SetGeneratedFiles(v)
	return _u
}

// AppendGeneratedFiles appends value to the "generated_files" field.
func (_u *MigrationProcessUpdateOne) AppendGeneratedFiles(v []string) *MigrationProcessUpdateOne {
	_u.mutation.AppendGeneratedFiles(v)
	return _u
}

// ClearGeneratedFiles clears the value of the "generated_files" field.
func (_u *MigrationProcessUpdateOne) ClearGeneratedFiles() *MigrationProcessUpdateOne {
	_u.mutation.ClearGeneratedFiles()
	return _u
}

// SetFailure sets the "failure" field.
func (_u *MigrationProcessUpdateOne) SetFailure(v map[string]interface{}) *MigrationProcessUpdateOne {
	_u.mutation.SetFailure(v)
	return _u
}

// ClearFailure clears the value of the "failure" field.
func (_u *MigrationProcessUpdateOne) ClearFailure() *MigrationProcessUpdateOne {
	_u.mutation.ClearFailure()
	return _u
}

// SetPhaseStartedAt sets the "phase_started_at" field.
func (_u *MigrationProcessUpdateOne) SetPhaseStartedAt(v time.Time) *MigrationProcessUpdateOne {
	_u.mutation.SetPhaseStartedAt(v)
	return _u
}

// SetNillablePhaseStartedAt sets the "phase_started_at" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillablePhaseStartedAt(v *time.Time) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetPhaseStartedAt(*v)
	}
	return _u
}

// ClearPhaseStartedAt clears the value of the "phase_started_at" field.
func (_u *MigrationProcessUpdateOne) ClearPhaseStartedAt() *MigrationProcessUpdateOne {
	_u.mutation.ClearPhaseStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MigrationProcessUpdateOne) SetCompletedAt(v time.Time) *MigrationProcessUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableCompletedAt(v *time.Time) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MigrationProcessUpdateOne) ClearCompletedAt() *MigrationProcessUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastUpdateTime sets the "last_update_time" field.
func (_u *MigrationProcessUpdateOne) SetLastUpdateTime(v time.Time) *MigrationProcessUpdateOne {
	_u.mutation.SetLastUpdateTime(v)
	return _u
}

// SetNillableLastUpdateTime sets the "last_update_time" field if the given value is not nil.
func (_u *MigrationProcessUpdateOne) SetNillableLastUpdateTime(v *time.Time) *MigrationProcessUpdateOne {
	if v != nil {
		_u.SetLastUpdateTime(*v)
	}
	return _u
}

// AddPhaseRunIDs adds the "phase_runs" edge to the PhaseRun entity by IDs.
func (_u *MigrationProcessUpdateOne) AddPhaseRunIDs(ids ...string) *MigrationProcessUpdateOne {
	_u.mutation.AddPhaseRunIDs(ids...)
	return _u
}

// AddPhaseRuns adds the "phase_runs" edges to the PhaseRun entity.
func (_u *MigrationProcessUpdateOne) AddPhaseRuns(v ...*PhaseRun) *MigrationProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhaseRunIDs(ids...)
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_u *MigrationProcessUpdateOne) AddAgentRecordIDs(ids ...string) *MigrationProcessUpdateOne {
	_u.mutation.AddAgentRecordIDs(ids...)
	return _u
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_u *MigrationProcessUpdateOne) AddAgentRecords(v ...*AgentRecord) *MigrationProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRecordIDs(ids...)
}

// Mutation returns the MigrationProcessMutation object of the builder.
func (_u *MigrationProcessUpdateOne) Mutation() *MigrationProcessMutation {
	return _u.mutation
}

// ClearPhaseRuns clears all "phase_runs" edges to the PhaseRun entity.
func (_u *MigrationProcessUpdateOne) ClearPhaseRuns() *MigrationProcessUpdateOne {
	_u.mutation.ClearPhaseRuns()
	return _u
}

// RemovePhaseRunIDs removes the "phase_runs" edge to PhaseRun entities by IDs.
func (_u *MigrationProcessUpdateOne) RemovePhaseRunIDs(ids ...string) *MigrationProcessUpdateOne {
	_u.mutation.RemovePhaseRunIDs(ids...)
	return _u
}

// RemovePhaseRuns removes "phase_runs" edges to PhaseRun entities.
func (_u *MigrationProcessUpdateOne) RemovePhaseRuns(v ...*PhaseRun) *MigrationProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhaseRunIDs(ids...)
}

// ClearAgentRecords clears all "agent_records" edges to the AgentRecord entity.
func (_u *MigrationProcessUpdateOne) ClearAgentRecords() *MigrationProcessUpdateOne {
	_u.mutation.ClearAgentRecords()
	return _u
}

// RemoveAgentRecordIDs removes the "agent_records" edge to AgentRecord entities by IDs.
func (_u *MigrationProcessUpdateOne) RemoveAgentRecordIDs(ids ...string) *MigrationProcessUpdateOne {
	_u.mutation.RemoveAgentRecordIDs(ids...)
	return _u
}

// RemoveAgentRecords removes "agent_records" edges to AgentRecord entities.
func (_u *MigrationProcessUpdateOne) RemoveAgentRecords(v ...*AgentRecord) *MigrationProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRecordIDs(ids...)
}

// Where appends a list predicates to the MigrationProcessUpdate builder.
func (_u *MigrationProcessUpdateOne) Where(ps ...predicate.MigrationProcess) *MigrationProcessUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MigrationProcessUpdateOne) Select(field string, fields ...string) *MigrationProcessUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MigrationProcess entity.
func (_u *MigrationProcessUpdateOne) Save(ctx context.Context) (*MigrationProcess, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MigrationProcessUpdateOne) SaveX(ctx context.Context) *MigrationProcess {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MigrationProcessUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MigrationProcessUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MigrationProcessUpdateOne) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := migrationprocess.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "MigrationProcess.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := migrationprocess.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MigrationProcess.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MigrationProcessUpdateOne) sqlSave(ctx context.Context) (_node *MigrationProcess, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(migrationprocess.Table, migrationprocess.Columns, sqlgraph.NewFieldSpec(migrationprocess.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MigrationProcess.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, migrationprocess.FieldID)
		for _, f := range fields {
			if !migrationprocess.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != migrationprocess.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(migrationprocess.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePlatform(); ok {
		_spec.SetField(migrationprocess.FieldSourcePlatform, field.TypeString, value)
	}
	if _u.mutation.SourcePlatformCleared() {
		_spec.ClearField(migrationprocess.FieldSourcePlatform, field.TypeString)
	}
	if value, ok := _u.mutation.TargetPlatform(); ok {
		_spec.SetField(migrationprocess.FieldTargetPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContainerName(); ok {
		_spec.SetField(migrationprocess.FieldContainerName, field.TypeString, value)
	}
	if _u.mutation.ContainerNameCleared() {
		_spec.ClearField(migrationprocess.FieldContainerName, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFolder(); ok {
		_spec.SetField(migrationprocess.FieldSourceFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceFolder(); ok {
		_spec.SetField(migrationprocess.FieldWorkspaceFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputFolder(); ok {
		_spec.SetField(migrationprocess.FieldOutputFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(migrationprocess.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(migrationprocess.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(migrationprocess.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(migrationprocess.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.StepsCompleted(); ok {
		_spec.SetField(migrationprocess.FieldStepsCompleted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepsCompleted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, migrationprocess.FieldStepsCompleted, value)
		})
	}
	if _u.mutation.StepsCompletedCleared() {
		_spec.ClearField(migrationprocess.FieldStepsCompleted, field.TypeJSON)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(migrationprocess.FieldInsights, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsights(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, migrationprocess.FieldInsights, value)
		})
	}
	if _u.mutation.InsightsCleared() {
		_spec.ClearField(migrationprocess.FieldInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorLog(); ok {
		_spec.SetField(migrationprocess.FieldErrorLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, migrationprocess.FieldErrorLog, value)
		})
	}
	if _u.mutation.ErrorLogCleared() {
		_spec.ClearField(migrationprocess.FieldErrorLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.WarningLog(); ok {
		_spec.SetField(migrationprocess.FieldWarningLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarningLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, migrationprocess.FieldWarningLog, value)
		})
	}
	if _u.mutation.WarningLogCleared() {
		_spec.ClearField(migrationprocess.FieldWarningLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(migrationprocess.FieldOutcome, field.TypeJSON, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(migrationprocess.FieldOutcome, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeneratedFiles(); ok {
		_spec.SetField(migrationprocess.FieldGeneratedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, migrationprocess.FieldGeneratedFiles, value)
		})
	}
	if _u.mutation.GeneratedFilesCleared() {
		_spec.ClearField(migrationprocess.FieldGeneratedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Failure(); ok {
		_spec.SetField(migrationprocess.FieldFailure, field.TypeJSON, value)
	}
	if _u.mutation.FailureCleared() {
		_spec.ClearField(migrationprocess.FieldFailure, field.TypeJSON)
	}
	if value, ok := _u.mutation.PhaseStartedAt(); ok {
		_spec.SetField(migrationprocess.FieldPhaseStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PhaseStartedAtCleared() {
		_spec.ClearField(migrationprocess.FieldPhaseStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(migrationprocess.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(migrationprocess.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUpdateTime(); ok {
		_spec.SetField(migrationprocess.FieldLastUpdateTime, field.TypeTime, value)
	}
	if _u.mutation.PhaseRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhaseRunsIDs(); len(nodes) > 0 && !_u.mutation.PhaseRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhaseRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRecordsIDs(); len(nodes) > 0 && !_u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MigrationProcess{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{migrationprocess.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
