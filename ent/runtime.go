// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cloudshift-ai/cloudshift/ent/agentrecord"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/ent/queuemessage"
	"github.com/cloudshift-ai/cloudshift/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrecordFields := schema.AgentRecord{}.Fields()
	_ = agentrecordFields
	// agentrecordDescIsSpeaking is the schema descriptor for is_speaking field.
	agentrecordDescIsSpeaking := agentrecordFields[5].Descriptor()
	// agentrecord.DefaultIsSpeaking holds the default value on creation for the is_speaking field.
	agentrecord.DefaultIsSpeaking = agentrecordDescIsSpeaking.Default.(bool)
	// agentrecordDescIsThinking is the schema descriptor for is_thinking field.
	agentrecordDescIsThinking := agentrecordFields[6].Descriptor()
	// agentrecord.DefaultIsThinking holds the default value on creation for the is_thinking field.
	agentrecord.DefaultIsThinking = agentrecordDescIsThinking.Default.(bool)
	// agentrecordDescParticipationStatus is the schema descriptor for participation_status field.
	agentrecordDescParticipationStatus := agentrecordFields[7].Descriptor()
	// agentrecord.DefaultParticipationStatus holds the default value on creation for the participation_status field.
	agentrecord.DefaultParticipationStatus = agentrecordDescParticipationStatus.Default.(string)
	// agentrecordDescLastUpdateTime is the schema descriptor for last_update_time field.
	agentrecordDescLastUpdateTime := agentrecordFields[10].Descriptor()
	// agentrecord.DefaultLastUpdateTime holds the default value on creation for the last_update_time field.
	agentrecord.DefaultLastUpdateTime = agentrecordDescLastUpdateTime.Default.(func() time.Time)
	migrationprocessFields := schema.MigrationProcess{}.Fields()
	_ = migrationprocessFields
	// migrationprocessDescTargetPlatform is the schema descriptor for target_platform field.
	migrationprocessDescTargetPlatform := migrationprocessFields[3].Descriptor()
	// migrationprocess.DefaultTargetPlatform holds the default value on creation for the target_platform field.
	migrationprocess.DefaultTargetPlatform = migrationprocessDescTargetPlatform.Default.(string)
	// migrationprocessDescSourceFolder is the schema descriptor for source_folder field.
	migrationprocessDescSourceFolder := migrationprocessFields[5].Descriptor()
	// migrationprocess.DefaultSourceFolder holds the default value on creation for the source_folder field.
	migrationprocess.DefaultSourceFolder = migrationprocessDescSourceFolder.Default.(string)
	// migrationprocessDescWorkspaceFolder is the schema descriptor for workspace_folder field.
	migrationprocessDescWorkspaceFolder := migrationprocessFields[6].Descriptor()
	// migrationprocess.DefaultWorkspaceFolder holds the default value on creation for the workspace_folder field.
	migrationprocess.DefaultWorkspaceFolder = migrationprocessDescWorkspaceFolder.Default.(string)
	// migrationprocessDescOutputFolder is the schema descriptor for output_folder field.
	migrationprocessDescOutputFolder := migrationprocessFields[7].Descriptor()
	// migrationprocess.DefaultOutputFolder holds the default value on creation for the output_folder field.
	migrationprocess.DefaultOutputFolder = migrationprocessDescOutputFolder.Default.(string)
	// migrationprocessDescCreatedAt is the schema descriptor for created_at field.
	migrationprocessDescCreatedAt := migrationprocessFields[18].Descriptor()
	// migrationprocess.DefaultCreatedAt holds the default value on creation for the created_at field.
	migrationprocess.DefaultCreatedAt = migrationprocessDescCreatedAt.Default.(func() time.Time)
	// migrationprocessDescLastUpdateTime is the schema descriptor for last_update_time field.
	migrationprocessDescLastUpdateTime := migrationprocessFields[21].Descriptor()
	// migrationprocess.DefaultLastUpdateTime holds the default value on creation for the last_update_time field.
	migrationprocess.DefaultLastUpdateTime = migrationprocessDescLastUpdateTime.Default.(func() time.Time)
	phaserunFields := schema.PhaseRun{}.Fields()
	_ = phaserunFields
	// phaserunDescAttempt is the schema descriptor for attempt field.
	phaserunDescAttempt := phaserunFields[4].Descriptor()
	// phaserun.DefaultAttempt holds the default value on creation for the attempt field.
	phaserun.DefaultAttempt = phaserunDescAttempt.Default.(int)
	queuemessageFields := schema.QueueMessage{}.Fields()
	_ = queuemessageFields
	// queuemessageDescVisibleAt is the schema descriptor for visible_at field.
	queuemessageDescVisibleAt := queuemessageFields[5].Descriptor()
	// queuemessage.DefaultVisibleAt holds the default value on creation for the visible_at field.
	queuemessage.DefaultVisibleAt = queuemessageDescVisibleAt.Default.(func() time.Time)
	// queuemessageDescDequeueCount is the schema descriptor for dequeue_count field.
	queuemessageDescDequeueCount := queuemessageFields[6].Descriptor()
	// queuemessage.DefaultDequeueCount holds the default value on creation for the dequeue_count field.
	queuemessage.DefaultDequeueCount = queuemessageDescDequeueCount.Default.(int)
	// queuemessageDescEnqueuedAt is the schema descriptor for enqueued_at field.
	queuemessageDescEnqueuedAt := queuemessageFields[8].Descriptor()
	// queuemessage.DefaultEnqueuedAt holds the default value on creation for the enqueued_at field.
	queuemessage.DefaultEnqueuedAt = queuemessageDescEnqueuedAt.Default.(func() time.Time)
}
