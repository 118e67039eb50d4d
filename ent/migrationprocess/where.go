// Code generated by ent, DO NOT EDIT.

package migrationprocess

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldUserID, v))
}

// SourcePlatform applies equality check predicate on the "source_platform" field. It's identical to SourcePlatformEQ.
func SourcePlatform(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldSourcePlatform, v))
}

// TargetPlatform applies equality check predicate on the "target_platform" field. It's identical to TargetPlatformEQ.
func TargetPlatform(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldTargetPlatform, v))
}

// ContainerName applies equality check predicate on the "container_name" field. It's identical to ContainerNameEQ.
func ContainerName(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldContainerName, v))
}

// SourceFolder applies equality check predicate on the "source_folder" field. It's identical to SourceFolderEQ.
func SourceFolder(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldSourceFolder, v))
}

// WorkspaceFolder applies equality check predicate on the "workspace_folder" field. It's identical to WorkspaceFolderEQ.
func WorkspaceFolder(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldWorkspaceFolder, v))
}

// OutputFolder applies equality check predicate on the "output_folder" field. It's identical to OutputFolderEQ.
func OutputFolder(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldOutputFolder, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldCurrentStep, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldCreatedAt, v))
}

// PhaseStartedAt applies equality check predicate on the "phase_started_at" field. It's identical to PhaseStartedAtEQ.
func PhaseStartedAt(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldPhaseStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldCompletedAt, v))
}

// LastUpdateTime applies equality check predicate on the "last_update_time" field. It's identical to LastUpdateTimeEQ.
func LastUpdateTime(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldLastUpdateTime, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContainsFold(FieldUserID, v))
}

// SourcePlatformEQ applies the EQ predicate on the "source_platform" field.
func SourcePlatformEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldSourcePlatform, v))
}

// SourcePlatformNEQ applies the NEQ predicate on the "source_platform" field.
func SourcePlatformNEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldSourcePlatform, v))
}

// SourcePlatformIn applies the In predicate on the "source_platform" field.
func SourcePlatformIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldSourcePlatform, vs...))
}

// SourcePlatformNotIn applies the NotIn predicate on the "source_platform" field.
func SourcePlatformNotIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldSourcePlatform, vs...))
}

// SourcePlatformGT applies the GT predicate on the "source_platform" field.
func SourcePlatformGT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldSourcePlatform, v))
}

// SourcePlatformGTE applies the GTE predicate on the "source_platform" field.
func SourcePlatformGTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldSourcePlatform, v))
}

// SourcePlatformLT applies the LT predicate on the "source_platform" field.
func SourcePlatformLT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldSourcePlatform, v))
}

// SourcePlatformLTE applies the LTE predicate on the "source_platform" field.
func SourcePlatformLTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldSourcePlatform, v))
}

// SourcePlatformContains applies the Contains predicate on the "source_platform" field.
func SourcePlatformContains(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContains(FieldSourcePlatform, v))
}

// SourcePlatformHasPrefix applies the HasPrefix predicate on the "source_platform" field.
func SourcePlatformHasPrefix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasPrefix(FieldSourcePlatform, v))
}

// SourcePlatformHasSuffix applies the HasSuffix predicate on the "source_platform" field.
func SourcePlatformHasSuffix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasSuffix(FieldSourcePlatform, v))
}

// SourcePlatformIsNil applies the IsNil predicate on the "source_platform" field.
func SourcePlatformIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldSourcePlatform))
}

// SourcePlatformNotNil applies the NotNil predicate on the "source_platform" field.
func SourcePlatformNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldSourcePlatform))
}

// SourcePlatformEqualFold applies the EqualFold predicate on the "source_platform" field.
func SourcePlatformEqualFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEqualFold(FieldSourcePlatform, v))
}

// SourcePlatformContainsFold applies the ContainsFold predicate on the "source_platform" field.
func SourcePlatformContainsFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContainsFold(FieldSourcePlatform, v))
}

// TargetPlatformEQ applies the EQ predicate on the "target_platform" field.
func TargetPlatformEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldTargetPlatform, v))
}

// TargetPlatformNEQ applies the NEQ predicate on the "target_platform" field.
func TargetPlatformNEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldTargetPlatform, v))
}

// TargetPlatformIn applies the In predicate on the "target_platform" field.
func TargetPlatformIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldTargetPlatform, vs...))
}

// TargetPlatformNotIn applies the NotIn predicate on the "target_platform" field.
func TargetPlatformNotIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldTargetPlatform, vs...))
}

// TargetPlatformGT applies the GT predicate on the "target_platform" field.
func TargetPlatformGT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldTargetPlatform, v))
}

// TargetPlatformGTE applies the GTE predicate on the "target_platform" field.
func TargetPlatformGTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldTargetPlatform, v))
}

// TargetPlatformLT applies the LT predicate on the "target_platform" field.
func TargetPlatformLT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldTargetPlatform, v))
}

// TargetPlatformLTE applies the LTE predicate on the "target_platform" field.
func TargetPlatformLTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldTargetPlatform, v))
}

// TargetPlatformContains applies the Contains predicate on the "target_platform" field.
func TargetPlatformContains(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContains(FieldTargetPlatform, v))
}

// TargetPlatformHasPrefix applies the HasPrefix predicate on the "target_platform" field.
func TargetPlatformHasPrefix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasPrefix(FieldTargetPlatform, v))
}

// TargetPlatformHasSuffix applies the HasSuffix predicate on the "target_platform" field.
func TargetPlatformHasSuffix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasSuffix(FieldTargetPlatform, v))
}

// TargetPlatformEqualFold applies the EqualFold predicate on the "target_platform" field.
func TargetPlatformEqualFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEqualFold(FieldTargetPlatform, v))
}

// TargetPlatformContainsFold applies the ContainsFold predicate on the "target_platform" field.
func TargetPlatformContainsFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContainsFold(FieldTargetPlatform, v))
}

// ContainerNameEQ applies the EQ predicate on the "container_name" field.
func ContainerNameEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldContainerName, v))
}

// ContainerNameNEQ applies the NEQ predicate on the "container_name" field.
func ContainerNameNEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldContainerName, v))
}

// ContainerNameIn applies the In predicate on the "container_name" field.
func ContainerNameIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldContainerName, vs...))
}

// ContainerNameNotIn applies the NotIn predicate on the "container_name" field.
func ContainerNameNotIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldContainerName, vs...))
}

// ContainerNameGT applies the GT predicate on the "container_name" field.
func ContainerNameGT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldContainerName, v))
}

// ContainerNameGTE applies the GTE predicate on the "container_name" field.
func ContainerNameGTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldContainerName, v))
}

// ContainerNameLT applies the LT predicate on the "container_name" field.
func ContainerNameLT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldContainerName, v))
}

// ContainerNameLTE applies the LTE predicate on the "container_name" field.
func ContainerNameLTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldContainerName, v))
}

// ContainerNameContains applies the Contains predicate on the "container_name" field.
func ContainerNameContains(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContains(FieldContainerName, v))
}

// ContainerNameHasPrefix applies the HasPrefix predicate on the "container_name" field.
func ContainerNameHasPrefix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasPrefix(FieldContainerName, v))
}

// ContainerNameHasSuffix applies the HasSuffix predicate on the "container_name" field.
func ContainerNameHasSuffix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasSuffix(FieldContainerName, v))
}

// ContainerNameIsNil applies the IsNil predicate on the "container_name" field.
func ContainerNameIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldContainerName))
}

// ContainerNameNotNil applies the NotNil predicate on the "container_name" field.
func ContainerNameNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldContainerName))
}

// ContainerNameEqualFold applies the EqualFold predicate on the "container_name" field.
func ContainerNameEqualFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEqualFold(FieldContainerName, v))
}

// ContainerNameContainsFold applies the ContainsFold predicate on the "container_name" field.
func ContainerNameContainsFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContainsFold(FieldContainerName, v))
}

// SourceFolderEQ applies the EQ predicate on the "source_folder" field.
func SourceFolderEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldSourceFolder, v))
}

// SourceFolderNEQ applies the NEQ predicate on the "source_folder" field.
func SourceFolderNEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldSourceFolder, v))
}

// SourceFolderIn applies the In predicate on the "source_folder" field.
func SourceFolderIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldSourceFolder, vs...))
}

// SourceFolderNotIn applies the NotIn predicate on the "source_folder" field.
func SourceFolderNotIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldSourceFolder, vs...))
}

// SourceFolderGT applies the GT predicate on the "source_folder" field.
func SourceFolderGT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldSourceFolder, v))
}

// SourceFolderGTE applies the GTE predicate on the "source_folder" field.
func SourceFolderGTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldSourceFolder, v))
}

// SourceFolderLT applies the LT predicate on the "source_folder" field.
func SourceFolderLT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldSourceFolder, v))
}

// SourceFolderLTE applies the LTE predicate on the "source_folder" field.
func SourceFolderLTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldSourceFolder, v))
}

// SourceFolderContains applies the Contains predicate on the "source_folder" field.
func SourceFolderContains(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContains(FieldSourceFolder, v))
}

// SourceFolderHasPrefix applies the HasPrefix predicate on the "source_folder" field.
func SourceFolderHasPrefix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasPrefix(FieldSourceFolder, v))
}

// SourceFolderHasSuffix applies the HasSuffix predicate on the "source_folder" field.
func SourceFolderHasSuffix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasSuffix(FieldSourceFolder, v))
}

// SourceFolderEqualFold applies the EqualFold predicate on the "source_folder" field.
func SourceFolderEqualFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEqualFold(FieldSourceFolder, v))
}

// SourceFolderContainsFold applies the ContainsFold predicate on the "source_folder" field.
func SourceFolderContainsFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContainsFold(FieldSourceFolder, v))
}

// WorkspaceFolderEQ applies the EQ predicate on the "workspace_folder" field.
func WorkspaceFolderEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldWorkspaceFolder, v))
}

// WorkspaceFolderNEQ applies the NEQ predicate on the "workspace_folder" field.
func WorkspaceFolderNEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldWorkspaceFolder, v))
}

// WorkspaceFolderIn applies the In predicate on the "workspace_folder" field.
func WorkspaceFolderIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldWorkspaceFolder, vs...))
}

// WorkspaceFolderNotIn applies the NotIn predicate on the "workspace_folder" field.
func WorkspaceFolderNotIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldWorkspaceFolder, vs...))
}

// WorkspaceFolderGT applies the GT predicate on the "workspace_folder" field.
func WorkspaceFolderGT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldWorkspaceFolder, v))
}

// WorkspaceFolderGTE applies the GTE predicate on the "workspace_folder" field.
func WorkspaceFolderGTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldWorkspaceFolder, v))
}

// WorkspaceFolderLT applies the LT predicate on the "workspace_folder" field.
func WorkspaceFolderLT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldWorkspaceFolder, v))
}

// WorkspaceFolderLTE applies the LTE predicate on the "workspace_folder" field.
func WorkspaceFolderLTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldWorkspaceFolder, v))
}

// WorkspaceFolderContains applies the Contains predicate on the "workspace_folder" field.
func WorkspaceFolderContains(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContains(FieldWorkspaceFolder, v))
}

// WorkspaceFolderHasPrefix applies the HasPrefix predicate on the "workspace_folder" field.
func WorkspaceFolderHasPrefix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasPrefix(FieldWorkspaceFolder, v))
}

// WorkspaceFolderHasSuffix applies the HasSuffix predicate on the "workspace_folder" field.
func WorkspaceFolderHasSuffix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasSuffix(FieldWorkspaceFolder, v))
}

// WorkspaceFolderEqualFold applies the EqualFold predicate on the "workspace_folder" field.
func WorkspaceFolderEqualFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEqualFold(FieldWorkspaceFolder, v))
}

// WorkspaceFolderContainsFold applies the ContainsFold predicate on the "workspace_folder" field.
func WorkspaceFolderContainsFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContainsFold(FieldWorkspaceFolder, v))
}

// OutputFolderEQ applies the EQ predicate on the "output_folder" field.
func OutputFolderEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldOutputFolder, v))
}

// OutputFolderNEQ applies the NEQ predicate on the "output_folder" field.
func OutputFolderNEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldOutputFolder, v))
}

// OutputFolderIn applies the In predicate on the "output_folder" field.
func OutputFolderIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldOutputFolder, vs...))
}

// OutputFolderNotIn applies the NotIn predicate on the "output_folder" field.
func OutputFolderNotIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldOutputFolder, vs...))
}

// OutputFolderGT applies the GT predicate on the "output_folder" field.
func OutputFolderGT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldOutputFolder, v))
}

// OutputFolderGTE applies the GTE predicate on the "output_folder" field.
func OutputFolderGTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldOutputFolder, v))
}

// OutputFolderLT applies the LT predicate on the "output_folder" field.
func OutputFolderLT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldOutputFolder, v))
}

// OutputFolderLTE applies the LTE predicate on the "output_folder" field.
func OutputFolderLTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldOutputFolder, v))
}

// OutputFolderContains applies the Contains predicate on the "output_folder" field.
func OutputFolderContains(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContains(FieldOutputFolder, v))
}

// OutputFolderHasPrefix applies the HasPrefix predicate on the "output_folder" field.
func OutputFolderHasPrefix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasPrefix(FieldOutputFolder, v))
}

// OutputFolderHasSuffix applies the HasSuffix predicate on the "output_folder" field.
func OutputFolderHasSuffix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasSuffix(FieldOutputFolder, v))
}

// OutputFolderEqualFold applies the EqualFold predicate on the "output_folder" field.
func OutputFolderEqualFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEqualFold(FieldOutputFolder, v))
}

// OutputFolderContainsFold applies the ContainsFold predicate on the "output_folder" field.
func OutputFolderContainsFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContainsFold(FieldOutputFolder, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldPhase, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldCurrentStep, v))
}

// CurrentStepContains applies the Contains predicate on the "current_step" field.
func CurrentStepContains(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContains(FieldCurrentStep, v))
}

// CurrentStepHasPrefix applies the HasPrefix predicate on the "current_step" field.
func CurrentStepHasPrefix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasPrefix(FieldCurrentStep, v))
}

// CurrentStepHasSuffix applies the HasSuffix predicate on the "current_step" field.
func CurrentStepHasSuffix(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldHasSuffix(FieldCurrentStep, v))
}

// CurrentStepIsNil applies the IsNil predicate on the "current_step" field.
func CurrentStepIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldCurrentStep))
}

// CurrentStepNotNil applies the NotNil predicate on the "current_step" field.
func CurrentStepNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldCurrentStep))
}

// CurrentStepEqualFold applies the EqualFold predicate on the "current_step" field.
func CurrentStepEqualFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEqualFold(FieldCurrentStep, v))
}

// CurrentStepContainsFold applies the ContainsFold predicate on the "current_step" field.
func CurrentStepContainsFold(v string) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldContainsFold(FieldCurrentStep, v))
}

// StepsCompletedIsNil applies the IsNil predicate on the "steps_completed" field.
func StepsCompletedIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldStepsCompleted))
}

// StepsCompletedNotNil applies the NotNil predicate on the "steps_completed" field.
func StepsCompletedNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldStepsCompleted))
}

// InsightsIsNil applies the IsNil predicate on the "insights" field.
func InsightsIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldInsights))
}

// InsightsNotNil applies the NotNil predicate on the "insights" field.
func InsightsNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldInsights))
}

// ErrorLogIsNil applies the IsNil predicate on the "error_log" field.
func ErrorLogIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldErrorLog))
}

// ErrorLogNotNil applies the NotNil predicate on the "error_log" field.
func ErrorLogNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldErrorLog))
}

// WarningLogIsNil applies the IsNil predicate on the "warning_log" field.
func WarningLogIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldWarningLog))
}

// WarningLogNotNil applies the NotNil predicate on the "warning_log" field.
func WarningLogNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldWarningLog))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldOutcome))
}

// GeneratedFilesIsNil applies the IsNil predicate on the "generated_files" field.
func GeneratedFilesIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldGeneratedFiles))
}

// GeneratedFilesNotNil applies the NotNil predicate on the "generated_files" field.
func GeneratedFilesNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldGeneratedFiles))
}

// FailureIsNil applies the IsNil predicate on the "failure" field.
func FailureIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldFailure))
}

// FailureNotNil applies the NotNil predicate on the "failure" field.
func FailureNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldFailure))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldCreatedAt, v))
}

// PhaseStartedAtEQ applies the EQ predicate on the "phase_started_at" field.
func PhaseStartedAtEQ(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldPhaseStartedAt, v))
}

// PhaseStartedAtNEQ applies the NEQ predicate on the "phase_started_at" field.
func PhaseStartedAtNEQ(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldPhaseStartedAt, v))
}

// PhaseStartedAtIn applies the In predicate on the "phase_started_at" field.
func PhaseStartedAtIn(vs ...time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldPhaseStartedAt, vs...))
}

// PhaseStartedAtNotIn applies the NotIn predicate on the "phase_started_at" field.
func PhaseStartedAtNotIn(vs ...time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldPhaseStartedAt, vs...))
}

// PhaseStartedAtGT applies the GT predicate on the "phase_started_at" field.
func PhaseStartedAtGT(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldPhaseStartedAt, v))
}

// PhaseStartedAtGTE applies the GTE predicate on the "phase_started_at" field.
func PhaseStartedAtGTE(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldPhaseStartedAt, v))
}

// PhaseStartedAtLT applies the LT predicate on the "phase_started_at" field.
func PhaseStartedAtLT(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldPhaseStartedAt, v))
}

// PhaseStartedAtLTE applies the LTE predicate on the "phase_started_at" field.
func PhaseStartedAtLTE(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldPhaseStartedAt, v))
}

// PhaseStartedAtIsNil applies the IsNil predicate on the "phase_started_at" field.
func PhaseStartedAtIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldPhaseStartedAt))
}

// PhaseStartedAtNotNil applies the NotNil predicate on the "phase_started_at" field.
func PhaseStartedAtNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldPhaseStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotNull(FieldCompletedAt))
}

// LastUpdateTimeEQ applies the EQ predicate on the "last_update_time" field.
func LastUpdateTimeEQ(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldEQ(FieldLastUpdateTime, v))
}

// LastUpdateTimeNEQ applies the NEQ predicate on the "last_update_time" field.
func LastUpdateTimeNEQ(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNEQ(FieldLastUpdateTime, v))
}

// LastUpdateTimeIn applies the In predicate on the "last_update_time" field.
func LastUpdateTimeIn(vs ...time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldIn(FieldLastUpdateTime, vs...))
}

// LastUpdateTimeNotIn applies the NotIn predicate on the "last_update_time" field.
func LastUpdateTimeNotIn(vs ...time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldNotIn(FieldLastUpdateTime, vs...))
}

// LastUpdateTimeGT applies the GT predicate on the "last_update_time" field.
func LastUpdateTimeGT(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGT(FieldLastUpdateTime, v))
}

// LastUpdateTimeGTE applies the GTE predicate on the "last_update_time" field.
func LastUpdateTimeGTE(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldGTE(FieldLastUpdateTime, v))
}

// LastUpdateTimeLT applies the LT predicate on the "last_update_time" field.
func LastUpdateTimeLT(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLT(FieldLastUpdateTime, v))
}

// LastUpdateTimeLTE applies the LTE predicate on the "last_update_time" field.
func LastUpdateTimeLTE(v time.Time) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.FieldLTE(FieldLastUpdateTime, v))
}

// HasPhaseRuns applies the HasEdge predicate on the "phase_runs" edge.
func HasPhaseRuns() predicate.MigrationProcess {
	return predicate.MigrationProcess(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PhaseRunsTable, PhaseRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhaseRunsWith applies the HasEdge predicate on the "phase_runs" edge with a given conditions (other predicates).
func HasPhaseRunsWith(preds ...predicate.PhaseRun) predicate.MigrationProcess {
	return predicate.MigrationProcess(func(s *sql.Selector) {
		step := newPhaseRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentRecords applies the HasEdge predicate on the "agent_records" edge.
func HasAgentRecords() predicate.MigrationProcess {
	return predicate.MigrationProcess(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentRecordsTable, AgentRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentRecordsWith applies the HasEdge predicate on the "agent_records" edge with a given conditions (other predicates).
func HasAgentRecordsWith(preds ...predicate.AgentRecord) predicate.MigrationProcess {
	return predicate.MigrationProcess(func(s *sql.Selector) {
		step := newAgentRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MigrationProcess) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MigrationProcess) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MigrationProcess) predicate.MigrationProcess {
	return predicate.MigrationProcess(sql.NotPredicates(p))
}
