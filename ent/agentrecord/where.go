// Code generated by ent, DO NOT EDIT.

package agentrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldID, id))
}

// ProcessID applies equality check predicate on the "process_id" field. It's identical to ProcessIDEQ.
func ProcessID(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldProcessID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldAgentName, v))
}

// CurrentAction applies equality check predicate on the "current_action" field. It's identical to CurrentActionEQ.
func CurrentAction(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldCurrentAction, v))
}

// LastMessagePreview applies equality check predicate on the "last_message_preview" field. It's identical to LastMessagePreviewEQ.
func LastMessagePreview(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldLastMessagePreview, v))
}

// IsSpeaking applies equality check predicate on the "is_speaking" field. It's identical to IsSpeakingEQ.
func IsSpeaking(v bool) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldIsSpeaking, v))
}

// IsThinking applies equality check predicate on the "is_thinking" field. It's identical to IsThinkingEQ.
func IsThinking(v bool) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldIsThinking, v))
}

// ParticipationStatus applies equality check predicate on the "participation_status" field. It's identical to ParticipationStatusEQ.
func ParticipationStatus(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldParticipationStatus, v))
}

// LastToolUsed applies equality check predicate on the "last_tool_used" field. It's identical to LastToolUsedEQ.
func LastToolUsed(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldLastToolUsed, v))
}

// LastUpdateTime applies equality check predicate on the "last_update_time" field. It's identical to LastUpdateTimeEQ.
func LastUpdateTime(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldLastUpdateTime, v))
}

// ProcessIDEQ applies the EQ predicate on the "process_id" field.
func ProcessIDEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldProcessID, v))
}

// ProcessIDNEQ applies the NEQ predicate on the "process_id" field.
func ProcessIDNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldProcessID, v))
}

// ProcessIDIn applies the In predicate on the "process_id" field.
func ProcessIDIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldProcessID, vs...))
}

// ProcessIDNotIn applies the NotIn predicate on the "process_id" field.
func ProcessIDNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldProcessID, vs...))
}

// ProcessIDGT applies the GT predicate on the "process_id" field.
func ProcessIDGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldProcessID, v))
}

// ProcessIDGTE applies the GTE predicate on the "process_id" field.
func ProcessIDGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldProcessID, v))
}

// ProcessIDLT applies the LT predicate on the "process_id" field.
func ProcessIDLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldProcessID, v))
}

// ProcessIDLTE applies the LTE predicate on the "process_id" field.
func ProcessIDLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldProcessID, v))
}

// ProcessIDContains applies the Contains predicate on the "process_id" field.
func ProcessIDContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldProcessID, v))
}

// ProcessIDHasPrefix applies the HasPrefix predicate on the "process_id" field.
func ProcessIDHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldProcessID, v))
}

// ProcessIDHasSuffix applies the HasSuffix predicate on the "process_id" field.
func ProcessIDHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldProcessID, v))
}

// ProcessIDEqualFold applies the EqualFold predicate on the "process_id" field.
func ProcessIDEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldProcessID, v))
}

// ProcessIDContainsFold applies the ContainsFold predicate on the "process_id" field.
func ProcessIDContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldProcessID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldAgentName, v))
}

// CurrentActionEQ applies the EQ predicate on the "current_action" field.
func CurrentActionEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldCurrentAction, v))
}

// CurrentActionNEQ applies the NEQ predicate on the "current_action" field.
func CurrentActionNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldCurrentAction, v))
}

// CurrentActionIn applies the In predicate on the "current_action" field.
func CurrentActionIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldCurrentAction, vs...))
}

// CurrentActionNotIn applies the NotIn predicate on the "current_action" field.
func CurrentActionNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldCurrentAction, vs...))
}

// CurrentActionGT applies the GT predicate on the "current_action" field.
func CurrentActionGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldCurrentAction, v))
}

// CurrentActionGTE applies the GTE predicate on the "current_action" field.
func CurrentActionGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldCurrentAction, v))
}

// CurrentActionLT applies the LT predicate on the "current_action" field.
func CurrentActionLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldCurrentAction, v))
}

// CurrentActionLTE applies the LTE predicate on the "current_action" field.
func CurrentActionLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldCurrentAction, v))
}

// CurrentActionContains applies the Contains predicate on the "current_action" field.
func CurrentActionContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldCurrentAction, v))
}

// CurrentActionHasPrefix applies the HasPrefix predicate on the "current_action" field.
func CurrentActionHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldCurrentAction, v))
}

// CurrentActionHasSuffix applies the HasSuffix predicate on the "current_action" field.
func CurrentActionHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldCurrentAction, v))
}

// CurrentActionIsNil applies the IsNil predicate on the "current_action" field.
func CurrentActionIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldCurrentAction))
}

// CurrentActionNotNil applies the NotNil predicate on the "current_action" field.
func CurrentActionNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldCurrentAction))
}

// CurrentActionEqualFold applies the EqualFold predicate on the "current_action" field.
func CurrentActionEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldCurrentAction, v))
}

// CurrentActionContainsFold applies the ContainsFold predicate on the "current_action" field.
func CurrentActionContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldCurrentAction, v))
}

// LastMessagePreviewEQ applies the EQ predicate on the "last_message_preview" field.
func LastMessagePreviewEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldLastMessagePreview, v))
}

// LastMessagePreviewNEQ applies the NEQ predicate on the "last_message_preview" field.
func LastMessagePreviewNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldLastMessagePreview, v))
}

// LastMessagePreviewIn applies the In predicate on the "last_message_preview" field.
func LastMessagePreviewIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldLastMessagePreview, vs...))
}

// LastMessagePreviewNotIn applies the NotIn predicate on the "last_message_preview" field.
func LastMessagePreviewNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldLastMessagePreview, vs...))
}

// LastMessagePreviewGT applies the GT predicate on the "last_message_preview" field.
func LastMessagePreviewGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldLastMessagePreview, v))
}

// LastMessagePreviewGTE applies the GTE predicate on the "last_message_preview" field.
func LastMessagePreviewGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldLastMessagePreview, v))
}

// LastMessagePreviewLT applies the LT predicate on the "last_message_preview" field.
func LastMessagePreviewLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldLastMessagePreview, v))
}

// LastMessagePreviewLTE applies the LTE predicate on the "last_message_preview" field.
func LastMessagePreviewLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldLastMessagePreview, v))
}

// LastMessagePreviewContains applies the Contains predicate on the "last_message_preview" field.
func LastMessagePreviewContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldLastMessagePreview, v))
}

// LastMessagePreviewHasPrefix applies the HasPrefix predicate on the "last_message_preview" field.
func LastMessagePreviewHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldLastMessagePreview, v))
}

// LastMessagePreviewHasSuffix applies the HasSuffix predicate on the "last_message_preview" field.
func LastMessagePreviewHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldLastMessagePreview, v))
}

// LastMessagePreviewIsNil applies the IsNil predicate on the "last_message_preview" field.
func LastMessagePreviewIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldLastMessagePreview))
}

// LastMessagePreviewNotNil applies the NotNil predicate on the "last_message_preview" field.
func LastMessagePreviewNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldLastMessagePreview))
}

// LastMessagePreviewEqualFold applies the EqualFold predicate on the "last_message_preview" field.
func LastMessagePreviewEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldLastMessagePreview, v))
}

// LastMessagePreviewContainsFold applies the ContainsFold predicate on the "last_message_preview" field.
func LastMessagePreviewContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldLastMessagePreview, v))
}

// IsSpeakingEQ applies the EQ predicate on the "is_speaking" field.
func IsSpeakingEQ(v bool) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldIsSpeaking, v))
}

// IsSpeakingNEQ applies the NEQ predicate on the "is_speaking" field.
func IsSpeakingNEQ(v bool) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldIsSpeaking, v))
}

// IsThinkingEQ applies the EQ predicate on the "is_thinking" field.
func IsThinkingEQ(v bool) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldIsThinking, v))
}

// IsThinkingNEQ applies the NEQ predicate on the "is_thinking" field.
func IsThinkingNEQ(v bool) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldIsThinking, v))
}

// ParticipationStatusEQ applies the EQ predicate on the "participation_status" field.
func ParticipationStatusEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldParticipationStatus, v))
}

// ParticipationStatusNEQ applies the NEQ predicate on the "participation_status" field.
func ParticipationStatusNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldParticipationStatus, v))
}

// ParticipationStatusIn applies the In predicate on the "participation_status" field.
func ParticipationStatusIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldParticipationStatus, vs...))
}

// ParticipationStatusNotIn applies the NotIn predicate on the "participation_status" field.
func ParticipationStatusNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldParticipationStatus, vs...))
}

// ParticipationStatusGT applies the GT predicate on the "participation_status" field.
func ParticipationStatusGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldParticipationStatus, v))
}

// ParticipationStatusGTE applies the GTE predicate on the "participation_status" field.
func ParticipationStatusGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldParticipationStatus, v))
}

// ParticipationStatusLT applies the LT predicate on the "participation_status" field.
func ParticipationStatusLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldParticipationStatus, v))
}

// ParticipationStatusLTE applies the LTE predicate on the "participation_status" field.
func ParticipationStatusLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldParticipationStatus, v))
}

// ParticipationStatusContains applies the Contains predicate on the "participation_status" field.
func ParticipationStatusContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldParticipationStatus, v))
}

// ParticipationStatusHasPrefix applies the HasPrefix predicate on the "participation_status" field.
func ParticipationStatusHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldParticipationStatus, v))
}

// ParticipationStatusHasSuffix applies the HasSuffix predicate on the "participation_status" field.
func ParticipationStatusHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldParticipationStatus, v))
}

// ParticipationStatusEqualFold applies the EqualFold predicate on the "participation_status" field.
func ParticipationStatusEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldParticipationStatus, v))
}

// ParticipationStatusContainsFold applies the ContainsFold predicate on the "participation_status" field.
func ParticipationStatusContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldParticipationStatus, v))
}

// RecentActivityIsNil applies the IsNil predicate on the "recent_activity" field.
func RecentActivityIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldRecentActivity))
}

// RecentActivityNotNil applies the NotNil predicate on the "recent_activity" field.
func RecentActivityNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldRecentActivity))
}

// LastToolUsedEQ applies the EQ predicate on the "last_tool_used" field.
func LastToolUsedEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldLastToolUsed, v))
}

// LastToolUsedNEQ applies the NEQ predicate on the "last_tool_used" field.
func LastToolUsedNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldLastToolUsed, v))
}

// LastToolUsedIn applies the In predicate on the "last_tool_used" field.
func LastToolUsedIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldLastToolUsed, vs...))
}

// LastToolUsedNotIn applies the NotIn predicate on the "last_tool_used" field.
func LastToolUsedNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldLastToolUsed, vs...))
}

// LastToolUsedGT applies the GT predicate on the "last_tool_used" field.
func LastToolUsedGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldLastToolUsed, v))
}

// LastToolUsedGTE applies the GTE predicate on the "last_tool_used" field.
func LastToolUsedGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldLastToolUsed, v))
}

// LastToolUsedLT applies the LT predicate on the "last_tool_used" field.
func LastToolUsedLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldLastToolUsed, v))
}

// LastToolUsedLTE applies the LTE predicate on the "last_tool_used" field.
func LastToolUsedLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldLastToolUsed, v))
}

// LastToolUsedContains applies the Contains predicate on the "last_tool_used" field.
func LastToolUsedContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldLastToolUsed, v))
}

// LastToolUsedHasPrefix applies the HasPrefix predicate on the "last_tool_used" field.
func LastToolUsedHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldLastToolUsed, v))
}

// LastToolUsedHasSuffix applies the HasSuffix predicate on the "last_tool_used" field.
func LastToolUsedHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldLastToolUsed, v))
}

// LastToolUsedIsNil applies the IsNil predicate on the "last_tool_used" field.
func LastToolUsedIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldLastToolUsed))
}

// LastToolUsedNotNil applies the NotNil predicate on the "last_tool_used" field.
func LastToolUsedNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldLastToolUsed))
}

// LastToolUsedEqualFold applies the EqualFold predicate on the "last_tool_used" field.
func LastToolUsedEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldLastToolUsed, v))
}

// LastToolUsedContainsFold applies the ContainsFold predicate on the "last_tool_used" field.
func LastToolUsedContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldLastToolUsed, v))
}

// LastUpdateTimeEQ applies the EQ predicate on the "last_update_time" field.
func LastUpdateTimeEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldLastUpdateTime, v))
}

// LastUpdateTimeNEQ applies the NEQ predicate on the "last_update_time" field.
func LastUpdateTimeNEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldLastUpdateTime, v))
}

// LastUpdateTimeIn applies the In predicate on the "last_update_time" field.
func LastUpdateTimeIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldLastUpdateTime, vs...))
}

// LastUpdateTimeNotIn applies the NotIn predicate on the "last_update_time" field.
func LastUpdateTimeNotIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldLastUpdateTime, vs...))
}

// LastUpdateTimeGT applies the GT predicate on the "last_update_time" field.
func LastUpdateTimeGT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldLastUpdateTime, v))
}

// LastUpdateTimeGTE applies the GTE predicate on the "last_update_time" field.
func LastUpdateTimeGTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldLastUpdateTime, v))
}

// LastUpdateTimeLT applies the LT predicate on the "last_update_time" field.
func LastUpdateTimeLT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldLastUpdateTime, v))
}

// LastUpdateTimeLTE applies the LTE predicate on the "last_update_time" field.
func LastUpdateTimeLTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldLastUpdateTime, v))
}

// HasProcess applies the HasEdge predicate on the "process" edge.
func HasProcess() predicate.AgentRecord {
	return predicate.AgentRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProcessTable, ProcessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessWith applies the HasEdge predicate on the "process" edge with a given conditions (other predicates).
func HasProcessWith(preds ...predicate.MigrationProcess) predicate.AgentRecord {
	return predicate.AgentRecord(func(s *sql.Selector) {
		step := newProcessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.NotPredicates(p))
}
