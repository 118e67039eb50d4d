// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cloudshift-ai/cloudshift/ent/agentrecord"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
	"github.com/cloudshift-ai/cloudshift/ent/queuemessage"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentRecord      = "AgentRecord"
	TypeMigrationProcess = "MigrationProcess"
	TypePhaseRun         = "PhaseRun"
	TypeQueueMessage     = "QueueMessage"
)

// AgentRecordMutation represents an operation that mutates the AgentRecord nodes in the graph.
type AgentRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	agent_name            *string
	current_action        *string
	last_message_preview  *string
	is_speaking           *bool
	is_thinking           *bool
	participation_status  *string
	recent_activity       *[]map[string]interface{}
	appendrecent_activity []map[string]interface{}
	last_tool_used        *string
	last_update_time      *time.Time
	clearedFields         map[string]struct{}
	process               *string
	clearedprocess        bool
	done                  bool
	oldValue              func(context.Context) (*AgentRecord, error)
	predicates            []predicate.AgentRecord
}

var _ ent.Mutation = (*AgentRecordMutation)(nil)

// agentrecordOption allows management of the mutation configuration using functional options.
type agentrecordOption func(*AgentRecordMutation)

// newAgentRecordMutation creates new mutation for the AgentRecord entity.
func newAgentRecordMutation(c config, op Op, opts ...agentrecordOption) *AgentRecordMutation {
	m := &AgentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRecordID sets the ID field of the mutation.
func withAgentRecordID(id string) agentrecordOption {
	return func(m *AgentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRecord
		)
		m.oldValue = func(ctx context.Context) (*AgentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRecord sets the old AgentRecord of the mutation.
func withAgentRecord(node *AgentRecord) agentrecordOption {
	return func(m *AgentRecordMutation) {
		m.oldValue = func(context.Context) (*AgentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRecord entities.
func (m *AgentRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessID sets the "process_id" field.
func (m *AgentRecordMutation) SetProcessID(s string) {
	m.process = &s
}

// ProcessID returns the value of the "process_id" field in the mutation.
func (m *AgentRecordMutation) ProcessID() (r string, exists bool) {
	v := m.process
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessID returns the old "process_id" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldProcessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessID: %w", err)
	}
	return oldValue.ProcessID, nil
}

// ResetProcessID resets all changes to the "process_id" field.
func (m *AgentRecordMutation) ResetProcessID() {
	m.process = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AgentRecordMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentRecordMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentRecordMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetCurrentAction sets the "current_action" field.
func (m *AgentRecordMutation) SetCurrentAction(s string) {
	m.current_action = &s
}

// CurrentAction returns the value of the "current_action" field in the mutation.
func (m *AgentRecordMutation) CurrentAction() (r string, exists bool) {
	v := m.current_action
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentAction returns the old "current_action" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldCurrentAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentAction: %w", err)
	}
	return oldValue.CurrentAction, nil
}

// ClearCurrentAction clears the value of the "current_action" field.
func (m *AgentRecordMutation) ClearCurrentAction() {
	m.current_action = nil
	m.clearedFields[agentrecord.FieldCurrentAction] = struct{}{}
}

// CurrentActionCleared returns if the "current_action" field was cleared in this mutation.
func (m *AgentRecordMutation) CurrentActionCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldCurrentAction]
	return ok
}

// ResetCurrentAction resets all changes to the "current_action" field.
func (m *AgentRecordMutation) ResetCurrentAction() {
	m.current_action = nil
	delete(m.clearedFields, agentrecord.FieldCurrentAction)
}

// SetLastMessagePreview sets the "last_message_preview" field.
func (m *AgentRecordMutation) SetLastMessagePreview(s string) {
	m.last_message_preview = &s
}

// LastMessagePreview returns the value of the "last_message_preview" field in the mutation.
func (m *AgentRecordMutation) LastMessagePreview() (r string, exists bool) {
	v := m.last_message_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessagePreview returns the old "last_message_preview" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldLastMessagePreview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessagePreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessagePreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessagePreview: %w", err)
	}
	return oldValue.LastMessagePreview, nil
}

// ClearLastMessagePreview clears the value of the "last_message_preview" field.
func (m *AgentRecordMutation) ClearLastMessagePreview() {
	m.last_message_preview = nil
	m.clearedFields[agentrecord.FieldLastMessagePreview] = struct{}{}
}

// LastMessagePreviewCleared returns if the "last_message_preview" field was cleared in this mutation.
func (m *AgentRecordMutation) LastMessagePreviewCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldLastMessagePreview]
	return ok
}

// ResetLastMessagePreview resets all changes to the "last_message_preview" field.
func (m *AgentRecordMutation) ResetLastMessagePreview() {
	m.last_message_preview = nil
	delete(m.clearedFields, agentrecord.FieldLastMessagePreview)
}

// SetIsSpeaking sets the "is_speaking" field.
func (m *AgentRecordMutation) SetIsSpeaking(b bool) {
	m.is_speaking = &b
}

// IsSpeaking returns the value of the "is_speaking" field in the mutation.
func (m *AgentRecordMutation) IsSpeaking() (r bool, exists bool) {
	v := m.is_speaking
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSpeaking returns the old "is_speaking" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldIsSpeaking(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSpeaking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSpeaking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSpeaking: %w", err)
	}
	return oldValue.IsSpeaking, nil
}

// ResetIsSpeaking resets all changes to the "is_speaking" field.
func (m *AgentRecordMutation) ResetIsSpeaking() {
	m.is_speaking = nil
}

// SetIsThinking sets the "is_thinking" field.
func (m *AgentRecordMutation) SetIsThinking(b bool) {
	m.is_thinking = &b
}

// IsThinking returns the value of the "is_thinking" field in the mutation.
func (m *AgentRecordMutation) IsThinking() (r bool, exists bool) {
	v := m.is_thinking
	if v == nil {
		return
	}
	return *v, true
}

// OldIsThinking returns the old "is_thinking" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldIsThinking(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsThinking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsThinking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsThinking: %w", err)
	}
	return oldValue.IsThinking, nil
}

// ResetIsThinking resets all changes to the "is_thinking" field.
func (m *AgentRecordMutation) ResetIsThinking() {
	m.is_thinking = nil
}

// SetParticipationStatus sets the "participation_status" field.
func (m *AgentRecordMutation) SetParticipationStatus(s string) {
	m.participation_status = &s
}

// ParticipationStatus returns the value of the "participation_status" field in the mutation.
func (m *AgentRecordMutation) ParticipationStatus() (r string, exists bool) {
	v := m.participation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipationStatus returns the old "participation_status" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldParticipationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipationStatus: %w", err)
	}
	return oldValue.ParticipationStatus, nil
}

// ResetParticipationStatus resets all changes to the "participation_status" field.
func (m *AgentRecordMutation) ResetParticipationStatus() {
	m.participation_status = nil
}

// SetRecentActivity sets the "recent_activity" field.
func (m *AgentRecordMutation) SetRecentActivity(value []map[string]interface{}) {
	m.recent_activity = &value
	m.appendrecent_activity = nil
}

// RecentActivity returns the value of the "recent_activity" field in the mutation.
func (m *AgentRecordMutation) RecentActivity() (r []map[string]interface{}, exists bool) {
	v := m.recent_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldRecentActivity returns the old "recent_activity" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldRecentActivity(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecentActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecentActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecentActivity: %w", err)
	}
	return oldValue.RecentActivity, nil
}

// AppendRecentActivity adds value to the "recent_activity" field.
func (m *AgentRecordMutation) AppendRecentActivity(value []map[string]interface{}) {
	m.appendrecent_activity = append(m.appendrecent_activity, value...)
}

// AppendedRecentActivity returns the list of values that were appended to the "recent_activity" field in this mutation.
func (m *AgentRecordMutation) AppendedRecentActivity() ([]map[string]interface{}, bool) {
	if len(m.appendrecent_activity) == 0 {
		return nil, false
	}
	return m.appendrecent_activity, true
}

// ClearRecentActivity clears the value of the "recent_activity" field.
func (m *AgentRecordMutation) ClearRecentActivity() {
	m.recent_activity = nil
	m.appendrecent_activity = nil
	m.clearedFields[agentrecord.FieldRecentActivity] = struct{}{}
}

// RecentActivityCleared returns if the "recent_activity" field was cleared in this mutation.
func (m *AgentRecordMutation) RecentActivityCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldRecentActivity]
	return ok
}

// ResetRecentActivity resets all changes to the "recent_activity" field.
func (m *AgentRecordMutation) ResetRecentActivity() {
	m.recent_activity = nil
	m.appendrecent_activity = nil
	delete(m.clearedFields, agentrecord.FieldRecentActivity)
}

// SetLastToolUsed sets the "last_tool_used" field.
func (m *AgentRecordMutation) SetLastToolUsed(s string) {
	m.last_tool_used = &s
}

// LastToolUsed returns the value of the "last_tool_used" field in the mutation.
func (m *AgentRecordMutation) LastToolUsed() (r string, exists bool) {
	v := m.last_tool_used
	if v == nil {
		return
	}
	return *v, true
}

// OldLastToolUsed returns the old "last_tool_used" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldLastToolUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastToolUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastToolUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastToolUsed: %w", err)
	}
	return oldValue.LastToolUsed, nil
}

// ClearLastToolUsed clears the value of the "last_tool_used" field.
func (m *AgentRecordMutation) ClearLastToolUsed() {
	m.last_tool_used = nil
	m.clearedFields[agentrecord.FieldLastToolUsed] = struct{}{}
}

// LastToolUsedCleared returns if the "last_tool_used" field was cleared in this mutation.
func (m *AgentRecordMutation) LastToolUsedCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldLastToolUsed]
	return ok
}

// ResetLastToolUsed resets all changes to the "last_tool_used" field.
func (m *AgentRecordMutation) ResetLastToolUsed() {
	m.last_tool_used = nil
	delete(m.clearedFields, agentrecord.FieldLastToolUsed)
}

// SetLastUpdateTime sets the "last_update_time" field.
func (m *AgentRecordMutation) SetLastUpdateTime(t time.Time) {
	m.last_update_time = &t
}

// LastUpdateTime returns the value of the "last_update_time" field in the mutation.
func (m *AgentRecordMutation) LastUpdateTime() (r time.Time, exists bool) {
	v := m.last_update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdateTime returns the old "last_update_time" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldLastUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdateTime: %w", err)
	}
	return oldValue.LastUpdateTime, nil
}

// ResetLastUpdateTime resets all changes to the "last_update_time" field.
func (m *AgentRecordMutation) ResetLastUpdateTime() {
	m.last_update_time = nil
}

// ClearProcess clears the "process" edge to the MigrationProcess entity.
func (m *AgentRecordMutation) ClearProcess() {
	m.clearedprocess = true
	m.clearedFields[agentrecord.FieldProcessID] = struct{}{}
}

// ProcessCleared reports if the "process" edge to the MigrationProcess entity was cleared.
func (m *AgentRecordMutation) ProcessCleared() bool {
	return m.clearedprocess
}

// ProcessIDs returns the "process" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProcessID instead. It exists only for internal usage by the builders.
func (m *AgentRecordMutation) ProcessIDs() (ids []string) {
	if id := m.process; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProcess resets all changes to the "process" edge.
func (m *AgentRecordMutation) ResetProcess() {
	m.process = nil
	m.clearedprocess = false
}

// Where appends a list predicates to the AgentRecordMutation builder.
func (m *AgentRecordMutation) Where(ps ...predicate.AgentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRecord).
func (m *AgentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.process != nil {
		fields = append(fields, agentrecord.FieldProcessID)
	}
	if m.agent_name != nil {
		fields = append(fields, agentrecord.FieldAgentName)
	}
	if m.current_action != nil {
		fields = append(fields, agentrecord.FieldCurrentAction)
	}
	if m.last_message_preview != nil {
		fields = append(fields, agentrecord.FieldLastMessagePreview)
	}
	if m.is_speaking != nil {
		fields = append(fields, agentrecord.FieldIsSpeaking)
	}
	if m.is_thinking != nil {
		fields = append(fields, agentrecord.FieldIsThinking)
	}
	if m.participation_status != nil {
		fields = append(fields, agentrecord.FieldParticipationStatus)
	}
	if m.recent_activity != nil {
		fields = append(fields, agentrecord.FieldRecentActivity)
	}
	if m.last_tool_used != nil {
		fields = append(fields, agentrecord.FieldLastToolUsed)
	}
	if m.last_update_time != nil {
		fields = append(fields, agentrecord.FieldLastUpdateTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrecord.FieldProcessID:
		return m.ProcessID()
	case agentrecord.FieldAgentName:
		return m.AgentName()
	case agentrecord.FieldCurrentAction:
		return m.CurrentAction()
	case agentrecord.FieldLastMessagePreview:
		return m.LastMessagePreview()
	case agentrecord.FieldIsSpeaking:
		return m.IsSpeaking()
	case agentrecord.FieldIsThinking:
		return m.IsThinking()
	case agentrecord.FieldParticipationStatus:
		return m.ParticipationStatus()
	case agentrecord.FieldRecentActivity:
		return m.RecentActivity()
	case agentrecord.FieldLastToolUsed:
		return m.LastToolUsed()
	case agentrecord.FieldLastUpdateTime:
		return m.LastUpdateTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrecord.FieldProcessID:
		return m.OldProcessID(ctx)
	case agentrecord.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentrecord.FieldCurrentAction:
		return m.OldCurrentAction(ctx)
	case agentrecord.FieldLastMessagePreview:
		return m.OldLastMessagePreview(ctx)
	case agentrecord.FieldIsSpeaking:
		return m.OldIsSpeaking(ctx)
	case agentrecord.FieldIsThinking:
		return m.OldIsThinking(ctx)
	case agentrecord.FieldParticipationStatus:
		return m.OldParticipationStatus(ctx)
	case agentrecord.FieldRecentActivity:
		return m.OldRecentActivity(ctx)
	case agentrecord.FieldLastToolUsed:
		return m.OldLastToolUsed(ctx)
	case agentrecord.FieldLastUpdateTime:
		return m.OldLastUpdateTime(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrecord.FieldProcessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessID(v)
		return nil
	case agentrecord.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentrecord.FieldCurrentAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentAction(v)
		return nil
	case agentrecord.FieldLastMessagePreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessagePreview(v)
		return nil
	case agentrecord.FieldIsSpeaking:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSpeaking(v)
		return nil
	case agentrecord.FieldIsThinking:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsThinking(v)
		return nil
	case agentrecord.FieldParticipationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipationStatus(v)
		return nil
	case agentrecord.FieldRecentActivity:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecentActivity(v)
		return nil
	case agentrecord.FieldLastToolUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastToolUsed(v)
		return nil
	case agentrecord.FieldLastUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdateTime(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrecord.FieldCurrentAction) {
		fields = append(fields, agentrecord.FieldCurrentAction)
	}
	if m.FieldCleared(agentrecord.FieldLastMessagePreview) {
		fields = append(fields, agentrecord.FieldLastMessagePreview)
	}
	if m.FieldCleared(agentrecord.FieldRecentActivity) {
		fields = append(fields, agentrecord.FieldRecentActivity)
	}
	if m.FieldCleared(agentrecord.FieldLastToolUsed) {
		fields = append(fields, agentrecord.FieldLastToolUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRecordMutation) ClearField(name string) error {
	switch name {
	case agentrecord.FieldCurrentAction:
		m.ClearCurrentAction()
		return nil
	case agentrecord.FieldLastMessagePreview:
		m.ClearLastMessagePreview()
		return nil
	case agentrecord.FieldRecentActivity:
		m.ClearRecentActivity()
		return nil
	case agentrecord.FieldLastToolUsed:
		m.ClearLastToolUsed()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRecordMutation) ResetField(name string) error {
	switch name {
	case agentrecord.FieldProcessID:
		m.ResetProcessID()
		return nil
	case agentrecord.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentrecord.FieldCurrentAction:
		m.ResetCurrentAction()
		return nil
	case agentrecord.FieldLastMessagePreview:
		m.ResetLastMessagePreview()
		return nil
	case agentrecord.FieldIsSpeaking:
		m.ResetIsSpeaking()
		return nil
	case agentrecord.FieldIsThinking:
		m.ResetIsThinking()
		return nil
	case agentrecord.FieldParticipationStatus:
		m.ResetParticipationStatus()
		return nil
	case agentrecord.FieldRecentActivity:
		m.ResetRecentActivity()
		return nil
	case agentrecord.FieldLastToolUsed:
		m.ResetLastToolUsed()
		return nil
	case agentrecord.FieldLastUpdateTime:
		m.ResetLastUpdateTime()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.process != nil {
		edges = append(edges, agentrecord.EdgeProcess)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrecord.EdgeProcess:
		if id := m.process; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprocess {
		edges = append(edges, agentrecord.EdgeProcess)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrecord.EdgeProcess:
		return m.clearedprocess
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRecordMutation) ClearEdge(name string) error {
	switch name {
	case agentrecord.EdgeProcess:
		m.ClearProcess()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRecordMutation) ResetEdge(name string) error {
	switch name {
	case agentrecord.EdgeProcess:
		m.ResetProcess()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord edge %s", name)
}

// MigrationProcessMutation represents an operation that mutates the MigrationProcess nodes in the graph.
type MigrationProcessMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	source_platform       *string
	target_platform       *string
	container_name        *string
	source_folder         *string
	workspace_folder      *string
	output_folder         *string
	phase                 *migrationprocess.Phase
	status                *migrationprocess.Status
	current_step          *string
	steps_completed       *[]string
	appendsteps_completed []string
	insights              *[]string
	appendinsights        []string
	error_log             *[]string
	appenderror_log       []string
	warning_log           *[]string
	appendwarning_log     []string
	outcome               *map[string]interface{}
	generated_files       *[]string
	appendgenerated_files []string
	failure               *map[string]interface{}
	created_at            *time.Time
	phase_started_at      *time.Time
	completed_at          *time.Time
	last_update_time      *time.Time
	clearedFields         map[string]struct{}
	phase_runs            map[string]struct{}
	removedphase_runs     map[string]struct{}
	clearedphase_runs     bool
	agent_records         map[string]struct{}
	removedagent_records  map[string]struct{}
	clearedagent_records  bool
	done                  bool
	oldValue              func(context.Context) (*MigrationProcess, error)
	predicates            []predicate.MigrationProcess
}

var _ ent.Mutation = (*MigrationProcessMutation)(nil)

// migrationprocessOption allows management of the mutation configuration using functional options.
type migrationprocessOption func(*MigrationProcessMutation)

// newMigrationProcessMutation creates new mutation for the MigrationProcess entity.
func newMigrationProcessMutation(c config, op Op, opts ...migrationprocessOption) *MigrationProcessMutation {
	m := &MigrationProcessMutation{
		config:        c,
		op:            op,
		typ:           TypeMigrationProcess,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMigrationProcessID sets the ID field of the mutation.
func withMigrationProcessID(id string) migrationprocessOption {
	return func(m *MigrationProcessMutation) {
		var (
			err   error
			once  sync.Once
			value *MigrationProcess
		)
		m.oldValue = func(ctx context.Context) (*MigrationProcess, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MigrationProcess.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMigrationProcess sets the old MigrationProcess of the mutation.
func withMigrationProcess(node *MigrationProcess) migrationprocessOption {
	return func(m *MigrationProcessMutation) {
		m.oldValue = func(context.Context) (*MigrationProcess, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MigrationProcessMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MigrationProcessMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MigrationProcess entities.
func (m *MigrationProcessMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MigrationProcessMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MigrationProcessMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MigrationProcess.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MigrationProcessMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MigrationProcessMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MigrationProcessMutation) ResetUserID() {
	m.user_id = nil
}

// SetSourcePlatform sets the "source_platform" field.
func (m *MigrationProcessMutation) SetSourcePlatform(s string) {
	m.source_platform = &s
}

// SourcePlatform returns the value of the "source_platform" field in the mutation.
func (m *MigrationProcessMutation) SourcePlatform() (r string, exists bool) {
	v := m.source_platform
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePlatform returns the old "source_platform" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldSourcePlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePlatform: %w", err)
	}
	return oldValue.SourcePlatform, nil
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (m *MigrationProcessMutation) ClearSourcePlatform() {
	m.source_platform = nil
	m.clearedFields[migrationprocess.FieldSourcePlatform] = struct{}{}
}

// SourcePlatformCleared returns if the "source_platform" field was cleared in this mutation.
func (m *MigrationProcessMutation) SourcePlatformCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldSourcePlatform]
	return ok
}

// ResetSourcePlatform resets all changes to the "source_platform" field.
func (m *MigrationProcessMutation) ResetSourcePlatform() {
	m.source_platform = nil
	delete(m.clearedFields, migrationprocess.FieldSourcePlatform)
}

// SetTargetPlatform sets the "target_platform" field.
func (m *MigrationProcessMutation) SetTargetPlatform(s string) {
	m.target_platform = &s
}

// TargetPlatform returns the value of the "target_platform" field in the mutation.
func (m *MigrationProcessMutation) TargetPlatform() (r string, exists bool) {
	v := m.target_platform
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetPlatform returns the old "target_platform" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldTargetPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetPlatform: %w", err)
	}
	return oldValue.TargetPlatform, nil
}

// ResetTargetPlatform resets all changes to the "target_platform" field.
func (m *MigrationProcessMutation) ResetTargetPlatform() {
	m.target_platform = nil
}

// SetContainerName sets the "container_name" field.
func (m *MigrationProcessMutation) SetContainerName(s string) {
	m.container_name = &s
}

// ContainerName returns the value of the "container_name" field in the mutation.
func (m *MigrationProcessMutation) ContainerName() (r string, exists bool) {
	v := m.container_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContainerName returns the old "container_name" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldContainerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContainerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContainerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContainerName: %w", err)
	}
	return oldValue.ContainerName, nil
}

// ClearContainerName clears the value of the "container_name" field.
func (m *MigrationProcessMutation) ClearContainerName() {
	m.container_name = nil
	m.clearedFields[migrationprocess.FieldContainerName] = struct{}{}
}

// ContainerNameCleared returns if the "container_name" field was cleared in this mutation.
func (m *MigrationProcessMutation) ContainerNameCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldContainerName]
	return ok
}

// ResetContainerName resets all changes to the "container_name" field.
func (m *MigrationProcessMutation) ResetContainerName() {
	m.container_name = nil
	delete(m.clearedFields, migrationprocess.FieldContainerName)
}

// SetSourceFolder sets the "source_folder" field.
func (m *MigrationProcessMutation) SetSourceFolder(s string) {
	m.source_folder = &s
}

// SourceFolder returns the value of the "source_folder" field in the mutation.
func (m *MigrationProcessMutation) SourceFolder() (r string, exists bool) {
	v := m.source_folder
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFolder returns the old "source_folder" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldSourceFolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFolder: %w", err)
	}
	return oldValue.SourceFolder, nil
}

// ResetSourceFolder resets all changes to the "source_folder" field.
func (m *MigrationProcessMutation) ResetSourceFolder() {
	m.source_folder = nil
}

// SetWorkspaceFolder sets the "workspace_folder" field.
func (m *MigrationProcessMutation) SetWorkspaceFolder(s string) {
	m.workspace_folder = &s
}

// WorkspaceFolder returns the value of the "workspace_folder" field in the mutation.
func (m *MigrationProcessMutation) WorkspaceFolder() (r string, exists bool) {
	v := m.workspace_folder
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceFolder returns the old "workspace_folder" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldWorkspaceFolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceFolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceFolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceFolder: %w", err)
	}
	return oldValue.WorkspaceFolder, nil
}

// ResetWorkspaceFolder resets all changes to the "workspace_folder" field.
func (m *MigrationProcessMutation) ResetWorkspaceFolder() {
	m.workspace_folder = nil
}

// SetOutputFolder sets the "output_folder" field.
func (m *MigrationProcessMutation) SetOutputFolder(s string) {
	m.output_folder = &s
}

// OutputFolder returns the value of the "output_folder" field in the mutation.
func (m *MigrationProcessMutation) OutputFolder() (r string, exists bool) {
	v := m.output_folder
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputFolder returns the old "output_folder" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldOutputFolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputFolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputFolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputFolder: %w", err)
	}
	return oldValue.OutputFolder, nil
}

// ResetOutputFolder resets all changes to the "output_folder" field.
func (m *MigrationProcessMutation) ResetOutputFolder() {
	m.output_folder = nil
}

// SetPhase sets the "phase" field.
func (m *MigrationProcessMutation) SetPhase(value migrationprocess.Phase) {
	m.phase = &value
}

// Phase returns the value of the "phase" field in the mutation.
func (m *MigrationProcessMutation) Phase() (r migrationprocess.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldPhase(ctx context.Context) (v migrationprocess.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *MigrationProcessMutation) ResetPhase() {
	m.phase = nil
}

// SetStatus sets the "status" field.
func (m *MigrationProcessMutation) SetStatus(value migrationprocess.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MigrationProcessMutation) Status() (r migrationprocess.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldStatus(ctx context.Context) (v migrationprocess.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MigrationProcessMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *MigrationProcessMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *MigrationProcessMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldCurrentStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *MigrationProcessMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[migrationprocess.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *MigrationProcessMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *MigrationProcessMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, migrationprocess.FieldCurrentStep)
}

// SetStepsCompleted sets the "steps_completed" field.
func (m *MigrationProcessMutation) SetStepsCompleted(s []string) {
	m.steps_completed = &s
	m.appendsteps_completed = nil
}

// StepsCompleted returns the value of the "steps_completed" field in the mutation.
func (m *MigrationProcessMutation) StepsCompleted() (r []string, exists bool) {
	v := m.steps_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldStepsCompleted returns the old "steps_completed" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldStepsCompleted(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepsCompleted: %w", err)
	}
	return oldValue.StepsCompleted, nil
}

// AppendStepsCompleted adds s to the "steps_completed" field.
func (m *MigrationProcessMutation) AppendStepsCompleted(s []string) {
	m.appendsteps_completed = append(m.appendsteps_completed, s...)
}

// AppendedStepsCompleted returns the list of values that were appended to the "steps_completed" field in this mutation.
func (m *MigrationProcessMutation) AppendedStepsCompleted() ([]string, bool) {
	if len(m.appendsteps_completed) == 0 {
		return nil, false
	}
	return m.appendsteps_completed, true
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (m *MigrationProcessMutation) ClearStepsCompleted() {
	m.steps_completed = nil
	m.appendsteps_completed = nil
	m.clearedFields[migrationprocess.FieldStepsCompleted] = struct{}{}
}

// StepsCompletedCleared returns if the "steps_completed" field was cleared in this mutation.
func (m *MigrationProcessMutation) StepsCompletedCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldStepsCompleted]
	return ok
}

// ResetStepsCompleted resets all changes to the "steps_completed" field.
func (m *MigrationProcessMutation) ResetStepsCompleted() {
	m.steps_completed = nil
	m.appendsteps_completed = nil
	delete(m.clearedFields, migrationprocess.FieldStepsCompleted)
}

// SetInsights sets the "insights" field.
func (m *MigrationProcessMutation) SetInsights(s []string) {
	m.insights = &s
	m.appendinsights = nil
}

// Insights returns the value of the "insights" field in the mutation.
func (m *MigrationProcessMutation) Insights() (r []string, exists bool) {
	v := m.insights
	if v == nil {
		return
	}
	return *v, true
}

// OldInsights returns the old "insights" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldInsights(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsights: %w", err)
	}
	return oldValue.Insights, nil
}

// AppendInsights adds s to the "insights" field.
func (m *MigrationProcessMutation) AppendInsights(s []string) {
	m.appendinsights = append(m.appendinsights, s...)
}

// AppendedInsights returns the list of values that were appended to the "insights" field in this mutation.
func (m *MigrationProcessMutation) AppendedInsights() ([]string, bool) {
	if len(m.appendinsights) == 0 {
		return nil, false
	}
	return m.appendinsights, true
}

// ClearInsights clears the value of the "insights" field.
func (m *MigrationProcessMutation) ClearInsights() {
	m.insights = nil
	m.appendinsights = nil
	m.clearedFields[migrationprocess.FieldInsights] = struct{}{}
}

// InsightsCleared returns if the "insights" field was cleared in this mutation.
func (m *MigrationProcessMutation) InsightsCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldInsights]
	return ok
}

// ResetInsights resets all changes to the "insights" field.
func (m *MigrationProcessMutation) ResetInsights() {
	m.insights = nil
	m.appendinsights = nil
	delete(m.clearedFields, migrationprocess.FieldInsights)
}

// SetErrorLog sets the "error_log" field.
func (m *MigrationProcessMutation) SetErrorLog(s []string) {
	m.error_log = &s
	m.appenderror_log = nil
}

// ErrorLog returns the value of the "error_log" field in the mutation.
func (m *MigrationProcessMutation) ErrorLog() (r []string, exists bool) {
	v := m.error_log
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorLog returns the old "error_log" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldErrorLog(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorLog: %w", err)
	}
	return oldValue.ErrorLog, nil
}

// AppendErrorLog adds s to the "error_log" field.
func (m *MigrationProcessMutation) AppendErrorLog(s []string) {
	m.appenderror_log = append(m.appenderror_log, s...)
}

// AppendedErrorLog returns the list of values that were appended to the "error_log" field in this mutation.
func (m *MigrationProcessMutation) AppendedErrorLog() ([]string, bool) {
	if len(m.appenderror_log) == 0 {
		return nil, false
	}
	return m.appenderror_log, true
}

// ClearErrorLog clears the value of the "error_log" field.
func (m *MigrationProcessMutation) ClearErrorLog() {
	m.error_log = nil
	m.appenderror_log = nil
	m.clearedFields[migrationprocess.FieldErrorLog] = struct{}{}
}

// ErrorLogCleared returns if the "error_log" field was cleared in this mutation.
func (m *MigrationProcessMutation) ErrorLogCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldErrorLog]
	return ok
}

// ResetErrorLog resets all changes to the "error_log" field.
func (m *MigrationProcessMutation) ResetErrorLog() {
	m.error_log = nil
	m.appenderror_log = nil
	delete(m.clearedFields, migrationprocess.FieldErrorLog)
}

// SetWarningLog sets the "warning_log" field.
func (m *MigrationProcessMutation) SetWarningLog(s []string) {
	m.warning_log = &s
	m.appendwarning_log = nil
}

// WarningLog returns the value of the "warning_log" field in the mutation.
func (m *MigrationProcessMutation) WarningLog() (r []string, exists bool) {
	v := m.warning_log
	if v == nil {
		return
	}
	return *v, true
}

// OldWarningLog returns the old "warning_log" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldWarningLog(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarningLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarningLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarningLog: %w", err)
	}
	return oldValue.WarningLog, nil
}

// AppendWarningLog adds s to the "warning_log" field.
func (m *MigrationProcessMutation) AppendWarningLog(s []string) {
	m.appendwarning_log = append(m.appendwarning_log, s...)
}

// AppendedWarningLog returns the list of values that were appended to the "warning_log" field in this mutation.
func (m *MigrationProcessMutation) AppendedWarningLog() ([]string, bool) {
	if len(m.appendwarning_log) == 0 {
		return nil, false
	}
	return m.appendwarning_log, true
}

// ClearWarningLog clears the value of the "warning_log" field.
func (m *MigrationProcessMutation) ClearWarningLog() {
	m.warning_log = nil
	m.appendwarning_log = nil
	m.clearedFields[migrationprocess.FieldWarningLog] = struct{}{}
}

// WarningLogCleared returns if the "warning_log" field was cleared in this mutation.
func (m *MigrationProcessMutation) WarningLogCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldWarningLog]
	return ok
}

// ResetWarningLog resets all changes to the "warning_log" field.
func (m *MigrationProcessMutation) ResetWarningLog() {
	m.warning_log = nil
	m.appendwarning_log = nil
	delete(m.clearedFields, migrationprocess.FieldWarningLog)
}

// SetOutcome sets the "outcome" field.
func (m *MigrationProcessMutation) SetOutcome(value map[string]interface{}) {
	m.outcome = &value
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *MigrationProcessMutation) Outcome() (r map[string]interface{}, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldOutcome(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *MigrationProcessMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[migrationprocess.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *MigrationProcessMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *MigrationProcessMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, migrationprocess.FieldOutcome)
}

// SetGeneratedFiles sets the "generated_files" field.
func (m *MigrationProcessMutation) SetGeneratedFiles(s []string) {
	m.generated_files = &s
	m.appendgenerated_files = nil
}

// GeneratedFiles returns the value of the "generated_files" field in the mutation.
func (m *MigrationProcessMutation) GeneratedFiles() (r []string, exists bool) {
	v := m.generated_files
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedFiles returns the old "generated_files" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldGeneratedFiles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedFiles: %w", err)
	}
	return oldValue.GeneratedFiles, nil
}

// AppendGeneratedFiles adds s to the "generated_files" field.
func (m *MigrationProcessMutation) AppendGeneratedFiles(s []string) {
	m.appendgenerated_files = append(m.appendgenerated_files, s...)
}

// AppendedGeneratedFiles returns the list of values that were appended to the "generated_files" field in this mutation.
func (m *MigrationProcessMutation) AppendedGeneratedFiles() ([]string, bool) {
	if len(m.appendgenerated_files) == 0 {
		return nil, false
	}
	return m.appendgenerated_files, true
}

// ClearGeneratedFiles clears the value of the "generated_files" field.
func (m *MigrationProcessMutation) ClearGeneratedFiles() {
	m.generated_files = nil
	m.appendgenerated_files = nil
	m.clearedFields[migrationprocess.FieldGeneratedFiles] = struct{}{}
}

// GeneratedFilesCleared returns if the "generated_files" field was cleared in this mutation.
func (m *MigrationProcessMutation) GeneratedFilesCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldGeneratedFiles]
	return ok
}

// ResetGeneratedFiles resets all changes to the "generated_files" field.
func (m *MigrationProcessMutation) ResetGeneratedFiles() {
	m.generated_files = nil
	m.appendgenerated_files = nil
	delete(m.clearedFields, migrationprocess.FieldGeneratedFiles)
}

// SetFailure sets the "failure" field.
func (m *MigrationProcessMutation) SetFailure(value map[string]interface{}) {
	m.failure = &value
}

// Failure returns the value of the "failure" field in the mutation.
func (m *MigrationProcessMutation) Failure() (r map[string]interface{}, exists bool) {
	v := m.failure
	if v == nil {
		return
	}
	return *v, true
}

// OldFailure returns the old "failure" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldFailure(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailure: %w", err)
	}
	return oldValue.Failure, nil
}

// ClearFailure clears the value of the "failure" field.
func (m *MigrationProcessMutation) ClearFailure() {
	m.failure = nil
	m.clearedFields[migrationprocess.FieldFailure] = struct{}{}
}

// FailureCleared returns if the "failure" field was cleared in this mutation.
func (m *MigrationProcessMutation) FailureCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldFailure]
	return ok
}

// ResetFailure resets all changes to the "failure" field.
func (m *MigrationProcessMutation) ResetFailure() {
	m.failure = nil
	delete(m.clearedFields, migrationprocess.FieldFailure)
}

// SetCreatedAt sets the "created_at" field.
func (m *MigrationProcessMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MigrationProcessMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MigrationProcessMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPhaseStartedAt sets the "phase_started_at" field.
func (m *MigrationProcessMutation) SetPhaseStartedAt(t time.Time) {
	m.phase_started_at = &t
}

// PhaseStartedAt returns the value of the "phase_started_at" field in the mutation.
func (m *MigrationProcessMutation) PhaseStartedAt() (r time.Time, exists bool) {
	v := m.phase_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseStartedAt returns the old "phase_started_at" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldPhaseStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseStartedAt: %w", err)
	}
	return oldValue.PhaseStartedAt, nil
}

// ClearPhaseStartedAt clears the value of the "phase_started_at" field.
func (m *MigrationProcessMutation) ClearPhaseStartedAt() {
	m.phase_started_at = nil
	m.clearedFields[migrationprocess.FieldPhaseStartedAt] = struct{}{}
}

// PhaseStartedAtCleared returns if the "phase_started_at" field was cleared in this mutation.
func (m *MigrationProcessMutation) PhaseStartedAtCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldPhaseStartedAt]
	return ok
}

// ResetPhaseStartedAt resets all changes to the "phase_started_at" field.
func (m *MigrationProcessMutation) ResetPhaseStartedAt() {
	m.phase_started_at = nil
	delete(m.clearedFields, migrationprocess.FieldPhaseStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *MigrationProcessMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MigrationProcessMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MigrationProcessMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[migrationprocess.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MigrationProcessMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[migrationprocess.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MigrationProcessMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, migrationprocess.FieldCompletedAt)
}

// SetLastUpdateTime sets the "last_update_time" field.
func (m *MigrationProcessMutation) SetLastUpdateTime(t time.Time) {
	m.last_update_time = &t
}

// LastUpdateTime returns the value of the "last_update_time" field in the mutation.
func (m *MigrationProcessMutation) LastUpdateTime() (r time.Time, exists bool) {
	v := m.last_update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdateTime returns the old "last_update_time" field's value of the MigrationProcess entity.
// If the MigrationProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MigrationProcessMutation) OldLastUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdateTime: %w", err)
	}
	return oldValue.LastUpdateTime, nil
}

// ResetLastUpdateTime resets all changes to the "last_update_time" field.
func (m *MigrationProcessMutation) ResetLastUpdateTime() {
	m.last_update_time = nil
}

// AddPhaseRunIDs adds the "phase_runs" edge to the PhaseRun entity by ids.
func (m *MigrationProcessMutation) AddPhaseRunIDs(ids ...string) {
	if m.phase_runs == nil {
		m.phase_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.phase_runs[ids[i]] = struct{}{}
	}
}

// ClearPhaseRuns clears the "phase_runs" edge to the PhaseRun entity.
func (m *MigrationProcessMutation) ClearPhaseRuns() {
	m.clearedphase_runs = true
}

// PhaseRunsCleared reports if the "phase_runs" edge to the PhaseRun entity was cleared.
func (m *MigrationProcessMutation) PhaseRunsCleared() bool {
	return m.clearedphase_runs
}

// RemovePhaseRunIDs removes the "phase_runs" edge to the PhaseRun entity by IDs.
func (m *MigrationProcessMutation) RemovePhaseRunIDs(ids ...string) {
	if m.removedphase_runs == nil {
		m.removedphase_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.phase_runs, ids[i])
		m.removedphase_runs[ids[i]] = struct{}{}
	}
}

// RemovedPhaseRuns returns the removed IDs of the "phase_runs" edge to the PhaseRun entity.
func (m *MigrationProcessMutation) RemovedPhaseRunsIDs() (ids []string) {
	for id := range m.removedphase_runs {
		ids = append(ids, id)
	}
	return
}

// PhaseRunsIDs returns the "phase_runs" edge IDs in the mutation.
func (m *MigrationProcessMutation) PhaseRunsIDs() (ids []string) {
	for id := range m.phase_runs {
		ids = append(ids, id)
	}
	return
}

// ResetPhaseRuns resets all changes to the "phase_runs" edge.
func (m *MigrationProcessMutation) ResetPhaseRuns() {
	m.phase_runs = nil
	m.clearedphase_runs = false
	m.removedphase_runs = nil
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by ids.
func (m *MigrationProcessMutation) AddAgentRecordIDs(ids ...string) {
	if m.agent_records == nil {
		m.agent_records = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_records[ids[i]] = struct{}{}
	}
}

// ClearAgentRecords clears the "agent_records" edge to the AgentRecord entity.
func (m *MigrationProcessMutation) ClearAgentRecords() {
	m.clearedagent_records = true
}

// AgentRecordsCleared reports if the "agent_records" edge to the AgentRecord entity was cleared.
func (m *MigrationProcessMutation) AgentRecordsCleared() bool {
	return m.clearedagent_records
}

// RemoveAgentRecordIDs removes the "agent_records" edge to the AgentRecord entity by IDs.
func (m *MigrationProcessMutation) RemoveAgentRecordIDs(ids ...string) {
	if m.removedagent_records == nil {
		m.removedagent_records = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_records, ids[i])
		m.removedagent_records[ids[i]] = struct{}{}
	}
}

// RemovedAgentRecords returns the removed IDs of the "agent_records" edge to the AgentRecord entity.
func (m *MigrationProcessMutation) RemovedAgentRecordsIDs() (ids []string) {
	for id := range m.removedagent_records {
		ids = append(ids, id)
	}
	return
}

// AgentRecordsIDs returns the "agent_records" edge IDs in the mutation.
func (m *MigrationProcessMutation) AgentRecordsIDs() (ids []string) {
	for id := range m.agent_records {
		ids = append(ids, id)
	}
	return
}

// ResetAgentRecords resets all changes to the "agent_records" edge.
func (m *MigrationProcessMutation) ResetAgentRecords() {
	m.agent_records = nil
	m.clearedagent_records = false
	m.removedagent_records = nil
}

// Where appends a list predicates to the MigrationProcessMutation builder.
func (m *MigrationProcessMutation) Where(ps ...predicate.MigrationProcess) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MigrationProcessMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MigrationProcessMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MigrationProcess, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MigrationProcessMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MigrationProcessMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MigrationProcess).
func (m *MigrationProcessMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MigrationProcessMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.user_id != nil {
		fields = append(fields, migrationprocess.FieldUserID)
	}
	if m.source_platform != nil {
		fields = append(fields, migrationprocess.FieldSourcePlatform)
	}
	if m.target_platform != nil {
		fields = append(fields, migrationprocess.FieldTargetPlatform)
	}
	if m.container_name != nil {
		fields = append(fields, migrationprocess.FieldContainerName)
	}
	if m.source_folder != nil {
		fields = append(fields, migrationprocess.FieldSourceFolder)
	}
	if m.workspace_folder != nil {
		fields = append(fields, migrationprocess.FieldWorkspaceFolder)
	}
	if m.output_folder != nil {
		fields = append(fields, migrationprocess.FieldOutputFolder)
	}
	if m.phase != nil {
		fields = append(fields, migrationprocess.FieldPhase)
	}
	if m.status != nil {
		fields = append(fields, migrationprocess.FieldStatus)
	}
	if m.current_step != nil {
		fields = append(fields, migrationprocess.FieldCurrentStep)
	}
	if m.steps_completed != nil {
		fields = append(fields, migrationprocess.FieldStepsCompleted)
	}
	if m.insights != nil {
		fields = append(fields, migrationprocess.FieldInsights)
	}
	if m.error_log != nil {
		fields = append(fields, migrationprocess.FieldErrorLog)
	}
	if m.warning_log != nil {
		fields = append(fields, migrationprocess.FieldWarningLog)
	}
	if m.outcome != nil {
		fields = append(fields, migrationprocess.FieldOutcome)
	}
	if m.generated_files != nil {
		fields = append(fields, migrationprocess.FieldGeneratedFiles)
	}
	if m.failure != nil {
		fields = append(fields, migrationprocess.FieldFailure)
	}
	if m.created_at != nil {
		fields = append(fields, migrationprocess.FieldCreatedAt)
	}
	if m.phase_started_at != nil {
		fields = append(fields, migrationprocess.FieldPhaseStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, migrationprocess.FieldCompletedAt)
	}
	if m.last_update_time != nil {
		fields = append(fields, migrationprocess.FieldLastUpdateTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MigrationProcessMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case migrationprocess.FieldUserID:
		return m.UserID()
	case migrationprocess.FieldSourcePlatform:
		return m.SourcePlatform()
	case migrationprocess.FieldTargetPlatform:
		return m.TargetPlatform()
	case migrationprocess.FieldContainerName:
		return m.ContainerName()
	case migrationprocess.FieldSourceFolder:
		return m.SourceFolder()
	case migrationprocess.FieldWorkspaceFolder:
		return m.WorkspaceFolder()
	case migrationprocess.FieldOutputFolder:
		return m.OutputFolder()
	case migrationprocess.FieldPhase:
		return m.Phase()
	case migrationprocess.FieldStatus:
		return m.Status()
	case migrationprocess.FieldCurrentStep:
		return m.CurrentStep()
	case migrationprocess.FieldStepsCompleted:
		return m.StepsCompleted()
	case migrationprocess.FieldInsights:
		return m.Insights()
	case migrationprocess.FieldErrorLog:
		return m.ErrorLog()
	case migrationprocess.FieldWarningLog:
		return m.WarningLog()
	case migrationprocess.FieldOutcome:
		return m.Outcome()
	case migrationprocess.FieldGeneratedFiles:
		return m.GeneratedFiles()
	case migrationprocess.FieldFailure:
		return m.Failure()
	case migrationprocess.FieldCreatedAt:
		return m.CreatedAt()
	case migrationprocess.FieldPhaseStartedAt:
		return m.PhaseStartedAt()
	case migrationprocess.FieldCompletedAt:
		return m.CompletedAt()
	case migrationprocess.FieldLastUpdateTime:
		return m.LastUpdateTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MigrationProcessMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case migrationprocess.FieldUserID:
		return m.OldUserID(ctx)
	case migrationprocess.FieldSourcePlatform:
		return m.OldSourcePlatform(ctx)
	case migrationprocess.FieldTargetPlatform:
		return m.OldTargetPlatform(ctx)
	case migrationprocess.FieldContainerName:
		return m.OldContainerName(ctx)
	case migrationprocess.FieldSourceFolder:
		return m.OldSourceFolder(ctx)
	case migrationprocess.FieldWorkspaceFolder:
		return m.OldWorkspaceFolder(ctx)
	case migrationprocess.FieldOutputFolder:
		return m.OldOutputFolder(ctx)
	case migrationprocess.FieldPhase:
		return m.OldPhase(ctx)
	case migrationprocess.FieldStatus:
		return m.OldStatus(ctx)
	case migrationprocess.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case migrationprocess.FieldStepsCompleted:
		return m.OldStepsCompleted(ctx)
	case migrationprocess.FieldInsights:
		return m.OldInsights(ctx)
	case migrationprocess.FieldErrorLog:
		return m.OldErrorLog(ctx)
	case migrationprocess.FieldWarningLog:
		return m.OldWarningLog(ctx)
	case migrationprocess.FieldOutcome:
		return m.OldOutcome(ctx)
	case migrationprocess.FieldGeneratedFiles:
		return m.OldGeneratedFiles(ctx)
	case migrationprocess.FieldFailure:
		return m.OldFailure(ctx)
	case migrationprocess.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case migrationprocess.FieldPhaseStartedAt:
		return m.OldPhaseStartedAt(ctx)
	case migrationprocess.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case migrationprocess.FieldLastUpdateTime:
		return m.OldLastUpdateTime(ctx)
	}
	return nil, fmt.Errorf("unknown MigrationProcess field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MigrationProcessMutation) SetField(name string, value ent.Value) error {
	switch name {
	case migrationprocess.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case migrationprocess.FieldSourcePlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePlatform(v)
		return nil
	case migrationprocess.FieldTargetPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetPlatform(v)
		return nil
	case migrationprocess.FieldContainerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContainerName(v)
		return nil
	case migrationprocess.FieldSourceFolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFolder(v)
		return nil
	case migrationprocess.FieldWorkspaceFolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceFolder(v)
		return nil
	case migrationprocess.FieldOutputFolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputFolder(v)
		return nil
	case migrationprocess.FieldPhase:
		v, ok := value.(migrationprocess.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case migrationprocess.FieldStatus:
		v, ok := value.(migrationprocess.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case migrationprocess.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case migrationprocess.FieldStepsCompleted:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepsCompleted(v)
		return nil
	case migrationprocess.FieldInsights:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsights(v)
		return nil
	case migrationprocess.FieldErrorLog:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorLog(v)
		return nil
	case migrationprocess.FieldWarningLog:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarningLog(v)
		return nil
	case migrationprocess.FieldOutcome:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case migrationprocess.FieldGeneratedFiles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedFiles(v)
		return nil
	case migrationprocess.FieldFailure:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailure(v)
		return nil
	case migrationprocess.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case migrationprocess.FieldPhaseStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseStartedAt(v)
		return nil
	case migrationprocess.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case migrationprocess.FieldLastUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdateTime(v)
		return nil
	}
	return fmt.Errorf("unknown MigrationProcess field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MigrationProcessMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MigrationProcessMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MigrationProcessMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MigrationProcess numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MigrationProcessMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(migrationprocess.FieldSourcePlatform) {
		fields = append(fields, migrationprocess.FieldSourcePlatform)
	}
	if m.FieldCleared(migrationprocess.FieldContainerName) {
		fields = append(fields, migrationprocess.FieldContainerName)
	}
	if m.FieldCleared(migrationprocess.FieldCurrentStep) {
		fields = append(fields, migrationprocess.FieldCurrentStep)
	}
	if m.FieldCleared(migrationprocess.FieldStepsCompleted) {
		fields = append(fields, migrationprocess.FieldStepsCompleted)
	}
	if m.FieldCleared(migrationprocess.FieldInsights) {
		fields = append(fields, migrationprocess.FieldInsights)
	}
	if m.FieldCleared(migrationprocess.FieldErrorLog) {
		fields = append(fields, migrationprocess.FieldErrorLog)
	}
	if m.FieldCleared(migrationprocess.FieldWarningLog) {
		fields = append(fields, migrationprocess.FieldWarningLog)
	}
	if m.FieldCleared(migrationprocess.FieldOutcome) {
		fields = append(fields, migrationprocess.FieldOutcome)
	}
	if m.FieldCleared(migrationprocess.FieldGeneratedFiles) {
		fields = append(fields, migrationprocess.FieldGeneratedFiles)
	}
	if m.FieldCleared(migrationprocess.FieldFailure) {
		fields = append(fields, migrationprocess.FieldFailure)
	}
	if m.FieldCleared(migrationprocess.FieldPhaseStartedAt) {
		fields = append(fields, migrationprocess.FieldPhaseStartedAt)
	}
	if m.FieldCleared(migrationprocess.FieldCompletedAt) {
		fields = append(fields, migrationprocess.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MigrationProcessMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MigrationProcessMutation) ClearField(name string) error {
	switch name {
	case migrationprocess.FieldSourcePlatform:
		m.ClearSourcePlatform()
		return nil
	case migrationprocess.FieldContainerName:
		m.ClearContainerName()
		return nil
	case migrationprocess.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case migrationprocess.FieldStepsCompleted:
		m.ClearStepsCompleted()
		return nil
	case migrationprocess.FieldInsights:
		m.ClearInsights()
		return nil
	case migrationprocess.FieldErrorLog:
		m.ClearErrorLog()
		return nil
	case migrationprocess.FieldWarningLog:
		m.ClearWarningLog()
		return nil
	case migrationprocess.FieldOutcome:
		m.ClearOutcome()
		return nil
	case migrationprocess.FieldGeneratedFiles:
		m.ClearGeneratedFiles()
		return nil
	case migrationprocess.FieldFailure:
		m.ClearFailure()
		return nil
	case migrationprocess.FieldPhaseStartedAt:
		m.ClearPhaseStartedAt()
		return nil
	case migrationprocess.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown MigrationProcess nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MigrationProcessMutation) ResetField(name string) error {
	switch name {
	case migrationprocess.FieldUserID:
		m.ResetUserID()
		return nil
	case migrationprocess.FieldSourcePlatform:
		m.ResetSourcePlatform()
		return nil
	case migrationprocess.FieldTargetPlatform:
		m.ResetTargetPlatform()
		return nil
	case migrationprocess.FieldContainerName:
		m.ResetContainerName()
		return nil
	case migrationprocess.FieldSourceFolder:
		m.ResetSourceFolder()
		return nil
	case migrationprocess.FieldWorkspaceFolder:
		m.ResetWorkspaceFolder()
		return nil
	case migrationprocess.FieldOutputFolder:
		m.ResetOutputFolder()
		return nil
	case migrationprocess.FieldPhase:
		m.ResetPhase()
		return nil
	case migrationprocess.FieldStatus:
		m.ResetStatus()
		return nil
	case migrationprocess.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case migrationprocess.FieldStepsCompleted:
		m.ResetStepsCompleted()
		return nil
	case migrationprocess.FieldInsights:
		m.ResetInsights()
		return nil
	case migrationprocess.FieldErrorLog:
		m.ResetErrorLog()
		return nil
	case migrationprocess.FieldWarningLog:
		m.ResetWarningLog()
		return nil
	case migrationprocess.FieldOutcome:
		m.ResetOutcome()
		return nil
	case migrationprocess.FieldGeneratedFiles:
		m.ResetGeneratedFiles()
		return nil
	case migrationprocess.FieldFailure:
		m.ResetFailure()
		return nil
	case migrationprocess.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case migrationprocess.FieldPhaseStartedAt:
		m.ResetPhaseStartedAt()
		return nil
	case migrationprocess.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case migrationprocess.FieldLastUpdateTime:
		m.ResetLastUpdateTime()
		return nil
	}
	return fmt.Errorf("unknown MigrationProcess field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MigrationProcessMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.phase_runs != nil {
		edges = append(edges, migrationprocess.EdgePhaseRuns)
	}
	if m.agent_records != nil {
		edges = append(edges, migrationprocess.EdgeAgentRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MigrationProcessMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case migrationprocess.EdgePhaseRuns:
		ids := make([]ent.Value, 0, len(m.phase_runs))
		for id := range m.phase_runs {
			ids = append(ids, id)
		}
		return ids
	case migrationprocess.EdgeAgentRecords:
		ids := make([]ent.Value, 0, len(m.agent_records))
		for id := range m.agent_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MigrationProcessMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedphase_runs != nil {
		edges = append(edges, migrationprocess.EdgePhaseRuns)
	}
	if m.removedagent_records != nil {
		edges = append(edges, migrationprocess.EdgeAgentRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MigrationProcessMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case migrationprocess.EdgePhaseRuns:
		ids := make([]ent.Value, 0, len(m.removedphase_runs))
		for id := range m.removedphase_runs {
			ids = append(ids, id)
		}
		return ids
	case migrationprocess.EdgeAgentRecords:
		ids := make([]ent.Value, 0, len(m.removedagent_records))
		for id := range m.removedagent_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MigrationProcessMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedphase_runs {
		edges = append(edges, migrationprocess.EdgePhaseRuns)
	}
	if m.clearedagent_records {
		edges = append(edges, migrationprocess.EdgeAgentRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MigrationProcessMutation) EdgeCleared(name string) bool {
	switch name {
	case migrationprocess.EdgePhaseRuns:
		return m.clearedphase_runs
	case migrationprocess.EdgeAgentRecords:
		return m.clearedagent_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MigrationProcessMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown MigrationProcess unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MigrationProcessMutation) ResetEdge(name string) error {
	switch name {
	case migrationprocess.EdgePhaseRuns:
		m.ResetPhaseRuns()
		return nil
	case migrationprocess.EdgeAgentRecords:
		m.ResetAgentRecords()
		return nil
	}
	return fmt.Errorf("unknown MigrationProcess edge %s", name)
}

// PhaseRunMutation represents an operation that mutates the PhaseRun nodes in the graph.
type PhaseRunMutation struct {
	config
	op             Op
	typ            string
	id             *string
	phase_name     *string
	phase_index    *int
	addphase_index *int
	attempt        *int
	addattempt     *int
	status         *phaserun.Status
	started_at     *time.Time
	completed_at   *time.Time
	duration_ms    *int
	addduration_ms *int
	result         *map[string]interface{}
	error_message  *string
	clearedFields  map[string]struct{}
	process        *string
	clearedprocess bool
	done           bool
	oldValue       func(context.Context) (*PhaseRun, error)
	predicates     []predicate.PhaseRun
}

var _ ent.Mutation = (*PhaseRunMutation)(nil)

// phaserunOption allows management of the mutation configuration using functional options.
type phaserunOption func(*PhaseRunMutation)

// newPhaseRunMutation creates new mutation for the PhaseRun entity.
func newPhaseRunMutation(c config, op Op, opts ...phaserunOption) *PhaseRunMutation {
	m := &PhaseRunMutation{
		config:        c,
		op:            op,
		typ:           TypePhaseRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhaseRunID sets the ID field of the mutation.
func withPhaseRunID(id string) phaserunOption {
	return func(m *PhaseRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PhaseRun
		)
		m.oldValue = func(ctx context.Context) (*PhaseRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PhaseRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhaseRun sets the old PhaseRun of the mutation.
func withPhaseRun(node *PhaseRun) phaserunOption {
	return func(m *PhaseRunMutation) {
		m.oldValue = func(context.Context) (*PhaseRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhaseRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhaseRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PhaseRun entities.
func (m *PhaseRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhaseRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhaseRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PhaseRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessID sets the "process_id" field.
func (m *PhaseRunMutation) SetProcessID(s string) {
	m.process = &s
}

// ProcessID returns the value of the "process_id" field in the mutation.
func (m *PhaseRunMutation) ProcessID() (r string, exists bool) {
	v := m.process
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessID returns the old "process_id" field's value of the PhaseRun entity.
// If the PhaseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseRunMutation) OldProcessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessID: %w", err)
	}
	return oldValue.ProcessID, nil
}

// ResetProcessID resets all changes to the "process_id" field.
func (m *PhaseRunMutation) ResetProcessID() {
	m.process = nil
}

// SetPhaseName sets the "phase_name" field.
func (m *PhaseRunMutation) SetPhaseName(s string) {
	m.phase_name = &s
}

// PhaseName returns the value of the "phase_name" field in the mutation.
func (m *PhaseRunMutation) PhaseName() (r string, exists bool) {
	v := m.phase_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseName returns the old "phase_name" field's value of the PhaseRun entity.
// If the PhaseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseRunMutation) OldPhaseName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseName: %w", err)
	}
	return oldValue.PhaseName, nil
}

// ResetPhaseName resets all changes to the "phase_name" field.
func (m *PhaseRunMutation) ResetPhaseName() {
	m.phase_name = nil
}

// SetPhaseIndex sets the "phase_index" field.
func (m *PhaseRunMutation) SetPhaseIndex(i int) {
	m.phase_index = &i
	m.addphase_index = nil
}

// PhaseIndex returns the value of the "phase_index" field in the mutation.
func (m *PhaseRunMutation) PhaseIndex() (r int, exists bool) {
	v := m.phase_index
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseIndex returns the old "phase_index" field's value of the PhaseRun entity.
// If the PhaseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseRunMutation) OldPhaseIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseIndex: %w", err)
	}
	return oldValue.PhaseIndex, nil
}

// AddPhaseIndex adds i to the "phase_index" field.
func (m *PhaseRunMutation) AddPhaseIndex(i int) {
	if m.addphase_index != nil {
		*m.addphase_index += i
	} else {
		m.addphase_index = &i
	}
}

// AddedPhaseIndex returns the value that was added to the "phase_index" field in this mutation.
func (m *PhaseRunMutation) AddedPhaseIndex() (r int, exists bool) {
	v := m.addphase_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhaseIndex resets all changes to the "phase_index" field.
func (m *PhaseRunMutation) ResetPhaseIndex() {
	m.phase_index = nil
	m.addphase_index = nil
}

// SetAttempt sets the "attempt" field.
func (m *PhaseRunMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *PhaseRunMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the PhaseRun entity.
// If the PhaseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseRunMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *PhaseRunMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *PhaseRunMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *PhaseRunMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetStatus sets the "status" field.
func (m *PhaseRunMutation) SetStatus(ph phaserun.Status) {
	m.status = &ph
}

// Status returns the value of the "status" field in the mutation.
func (m *PhaseRunMutation) Status() (r phaserun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PhaseRun entity.
// If the PhaseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseRunMutation) OldStatus(ctx context.Context) (v phaserun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PhaseRunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PhaseRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PhaseRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PhaseRun entity.
// If the PhaseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PhaseRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[phaserun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PhaseRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[phaserun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PhaseRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, phaserun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PhaseRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PhaseRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PhaseRun entity.
// If the PhaseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PhaseRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[phaserun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PhaseRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[phaserun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PhaseRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, phaserun.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *PhaseRunMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *PhaseRunMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the PhaseRun entity.
// If the PhaseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseRunMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *PhaseRunMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *PhaseRunMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *PhaseRunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[phaserun.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *PhaseRunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[phaserun.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *PhaseRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, phaserun.FieldDurationMs)
}

// SetResult sets the "result" field.
func (m *PhaseRunMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *PhaseRunMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the PhaseRun entity.
// If the PhaseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseRunMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *PhaseRunMutation) ClearResult() {
	m.result = nil
	m.clearedFields[phaserun.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *PhaseRunMutation) ResultCleared() bool {
	_, ok := m.clearedFields[phaserun.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *PhaseRunMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, phaserun.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *PhaseRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PhaseRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PhaseRun entity.
// If the PhaseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PhaseRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[phaserun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PhaseRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[phaserun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PhaseRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, phaserun.FieldErrorMessage)
}

// ClearProcess clears the "process" edge to the MigrationProcess entity.
func (m *PhaseRunMutation) ClearProcess() {
	m.clearedprocess = true
	m.clearedFields[phaserun.FieldProcessID] = struct{}{}
}

// ProcessCleared reports if the "process" edge to the MigrationProcess entity was cleared.
func (m *PhaseRunMutation) ProcessCleared() bool {
	return m.clearedprocess
}

// ProcessIDs returns the "process" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProcessID instead. It exists only for internal usage by the builders.
func (m *PhaseRunMutation) ProcessIDs() (ids []string) {
	if id := m.process; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProcess resets all changes to the "process" edge.
func (m *PhaseRunMutation) ResetProcess() {
	m.process = nil
	m.clearedprocess = false
}

// Where appends a list predicates to the PhaseRunMutation builder.
func (m *PhaseRunMutation) Where(ps ...predicate.PhaseRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhaseRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhaseRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PhaseRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhaseRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhaseRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PhaseRun).
func (m *PhaseRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhaseRunMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.process != nil {
		fields = append(fields, phaserun.FieldProcessID)
	}
	if m.phase_name != nil {
		fields = append(fields, phaserun.FieldPhaseName)
	}
	if m.phase_index != nil {
		fields = append(fields, phaserun.FieldPhaseIndex)
	}
	if m.attempt != nil {
		fields = append(fields, phaserun.FieldAttempt)
	}
	if m.status != nil {
		fields = append(fields, phaserun.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, phaserun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, phaserun.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, phaserun.FieldDurationMs)
	}
	if m.result != nil {
		fields = append(fields, phaserun.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, phaserun.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhaseRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case phaserun.FieldProcessID:
		return m.ProcessID()
	case phaserun.FieldPhaseName:
		return m.PhaseName()
	case phaserun.FieldPhaseIndex:
		return m.PhaseIndex()
	case phaserun.FieldAttempt:
		return m.Attempt()
	case phaserun.FieldStatus:
		return m.Status()
	case phaserun.FieldStartedAt:
		return m.StartedAt()
	case phaserun.FieldCompletedAt:
		return m.CompletedAt()
	case phaserun.FieldDurationMs:
		return m.DurationMs()
	case phaserun.FieldResult:
		return m.Result()
	case phaserun.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhaseRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case phaserun.FieldProcessID:
		return m.OldProcessID(ctx)
	case phaserun.FieldPhaseName:
		return m.OldPhaseName(ctx)
	case phaserun.FieldPhaseIndex:
		return m.OldPhaseIndex(ctx)
	case phaserun.FieldAttempt:
		return m.OldAttempt(ctx)
	case phaserun.FieldStatus:
		return m.OldStatus(ctx)
	case phaserun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case phaserun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case phaserun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case phaserun.FieldResult:
		return m.OldResult(ctx)
	case phaserun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown PhaseRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhaseRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case phaserun.FieldProcessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessID(v)
		return nil
	case phaserun.FieldPhaseName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseName(v)
		return nil
	case phaserun.FieldPhaseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseIndex(v)
		return nil
	case phaserun.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case phaserun.FieldStatus:
		v, ok := value.(phaserun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case phaserun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case phaserun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case phaserun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case phaserun.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case phaserun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown PhaseRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhaseRunMutation) AddedFields() []string {
	var fields []string
	if m.addphase_index != nil {
		fields = append(fields, phaserun.FieldPhaseIndex)
	}
	if m.addattempt != nil {
		fields = append(fields, phaserun.FieldAttempt)
	}
	if m.addduration_ms != nil {
		fields = append(fields, phaserun.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhaseRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case phaserun.FieldPhaseIndex:
		return m.AddedPhaseIndex()
	case phaserun.FieldAttempt:
		return m.AddedAttempt()
	case phaserun.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhaseRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case phaserun.FieldPhaseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhaseIndex(v)
		return nil
	case phaserun.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case phaserun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown PhaseRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhaseRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(phaserun.FieldStartedAt) {
		fields = append(fields, phaserun.FieldStartedAt)
	}
	if m.FieldCleared(phaserun.FieldCompletedAt) {
		fields = append(fields, phaserun.FieldCompletedAt)
	}
	if m.FieldCleared(phaserun.FieldDurationMs) {
		fields = append(fields, phaserun.FieldDurationMs)
	}
	if m.FieldCleared(phaserun.FieldResult) {
		fields = append(fields, phaserun.FieldResult)
	}
	if m.FieldCleared(phaserun.FieldErrorMessage) {
		fields = append(fields, phaserun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhaseRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhaseRunMutation) ClearField(name string) error {
	switch name {
	case phaserun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case phaserun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case phaserun.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case phaserun.FieldResult:
		m.ClearResult()
		return nil
	case phaserun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PhaseRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhaseRunMutation) ResetField(name string) error {
	switch name {
	case phaserun.FieldProcessID:
		m.ResetProcessID()
		return nil
	case phaserun.FieldPhaseName:
		m.ResetPhaseName()
		return nil
	case phaserun.FieldPhaseIndex:
		m.ResetPhaseIndex()
		return nil
	case phaserun.FieldAttempt:
		m.ResetAttempt()
		return nil
	case phaserun.FieldStatus:
		m.ResetStatus()
		return nil
	case phaserun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case phaserun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case phaserun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case phaserun.FieldResult:
		m.ResetResult()
		return nil
	case phaserun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PhaseRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhaseRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.process != nil {
		edges = append(edges, phaserun.EdgeProcess)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhaseRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case phaserun.EdgeProcess:
		if id := m.process; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhaseRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhaseRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhaseRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprocess {
		edges = append(edges, phaserun.EdgeProcess)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhaseRunMutation) EdgeCleared(name string) bool {
	switch name {
	case phaserun.EdgeProcess:
		return m.clearedprocess
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhaseRunMutation) ClearEdge(name string) error {
	switch name {
	case phaserun.EdgeProcess:
		m.ClearProcess()
		return nil
	}
	return fmt.Errorf("unknown PhaseRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhaseRunMutation) ResetEdge(name string) error {
	switch name {
	case phaserun.EdgeProcess:
		m.ResetProcess()
		return nil
	}
	return fmt.Errorf("unknown PhaseRun edge %s", name)
}

// QueueMessageMutation represents an operation that mutates the QueueMessage nodes in the graph.
type QueueMessageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	queue_name        *string
	process_id        *string
	user_id           *string
	migration_request *map[string]interface{}
	visible_at        *time.Time
	dequeue_count     *int
	adddequeue_count  *int
	lease_id          *string
	enqueued_at       *time.Time
	failure_summary   *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*QueueMessage, error)
	predicates        []predicate.QueueMessage
}

var _ ent.Mutation = (*QueueMessageMutation)(nil)

// queuemessageOption allows management of the mutation configuration using functional options.
type queuemessageOption func(*QueueMessageMutation)

// newQueueMessageMutation creates new mutation for the QueueMessage entity.
func newQueueMessageMutation(c config, op Op, opts ...queuemessageOption) *QueueMessageMutation {
	m := &QueueMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueMessageID sets the ID field of the mutation.
func withQueueMessageID(id string) queuemessageOption {
	return func(m *QueueMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueMessage
		)
		m.oldValue = func(ctx context.Context) (*QueueMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueMessage sets the old QueueMessage of the mutation.
func withQueueMessage(node *QueueMessage) queuemessageOption {
	return func(m *QueueMessageMutation) {
		m.oldValue = func(context.Context) (*QueueMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueMessage entities.
func (m *QueueMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueueName sets the "queue_name" field.
func (m *QueueMessageMutation) SetQueueName(s string) {
	m.queue_name = &s
}

// QueueName returns the value of the "queue_name" field in the mutation.
func (m *QueueMessageMutation) QueueName() (r string, exists bool) {
	v := m.queue_name
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueName returns the old "queue_name" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldQueueName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueName: %w", err)
	}
	return oldValue.QueueName, nil
}

// ResetQueueName resets all changes to the "queue_name" field.
func (m *QueueMessageMutation) ResetQueueName() {
	m.queue_name = nil
}

// SetProcessID sets the "process_id" field.
func (m *QueueMessageMutation) SetProcessID(s string) {
	m.process_id = &s
}

// ProcessID returns the value of the "process_id" field in the mutation.
func (m *QueueMessageMutation) ProcessID() (r string, exists bool) {
	v := m.process_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessID returns the old "process_id" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldProcessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessID: %w", err)
	}
	return oldValue.ProcessID, nil
}

// ResetProcessID resets all changes to the "process_id" field.
func (m *QueueMessageMutation) ResetProcessID() {
	m.process_id = nil
}

// SetUserID sets the "user_id" field.
func (m *QueueMessageMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QueueMessageMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QueueMessageMutation) ResetUserID() {
	m.user_id = nil
}

// SetMigrationRequest sets the "migration_request" field.
func (m *QueueMessageMutation) SetMigrationRequest(value map[string]interface{}) {
	m.migration_request = &value
}

// MigrationRequest returns the value of the "migration_request" field in the mutation.
func (m *QueueMessageMutation) MigrationRequest() (r map[string]interface{}, exists bool) {
	v := m.migration_request
	if v == nil {
		return
	}
	return *v, true
}

// OldMigrationRequest returns the old "migration_request" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldMigrationRequest(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMigrationRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMigrationRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMigrationRequest: %w", err)
	}
	return oldValue.MigrationRequest, nil
}

// ClearMigrationRequest clears the value of the "migration_request" field.
func (m *QueueMessageMutation) ClearMigrationRequest() {
	m.migration_request = nil
	m.clearedFields[queuemessage.FieldMigrationRequest] = struct{}{}
}

// MigrationRequestCleared returns if the "migration_request" field was cleared in this mutation.
func (m *QueueMessageMutation) MigrationRequestCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldMigrationRequest]
	return ok
}

// ResetMigrationRequest resets all changes to the "migration_request" field.
func (m *QueueMessageMutation) ResetMigrationRequest() {
	m.migration_request = nil
	delete(m.clearedFields, queuemessage.FieldMigrationRequest)
}

// SetVisibleAt sets the "visible_at" field.
func (m *QueueMessageMutation) SetVisibleAt(t time.Time) {
	m.visible_at = &t
}

// VisibleAt returns the value of the "visible_at" field in the mutation.
func (m *QueueMessageMutation) VisibleAt() (r time.Time, exists bool) {
	v := m.visible_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibleAt returns the old "visible_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldVisibleAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibleAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibleAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibleAt: %w", err)
	}
	return oldValue.VisibleAt, nil
}

// ResetVisibleAt resets all changes to the "visible_at" field.
func (m *QueueMessageMutation) ResetVisibleAt() {
	m.visible_at = nil
}

// SetDequeueCount sets the "dequeue_count" field.
func (m *QueueMessageMutation) SetDequeueCount(i int) {
	m.dequeue_count = &i
	m.adddequeue_count = nil
}

// DequeueCount returns the value of the "dequeue_count" field in the mutation.
func (m *QueueMessageMutation) DequeueCount() (r int, exists bool) {
	v := m.dequeue_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDequeueCount returns the old "dequeue_count" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldDequeueCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDequeueCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDequeueCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDequeueCount: %w", err)
	}
	return oldValue.DequeueCount, nil
}

// AddDequeueCount adds i to the "dequeue_count" field.
func (m *QueueMessageMutation) AddDequeueCount(i int) {
	if m.adddequeue_count != nil {
		*m.adddequeue_count += i
	} else {
		m.adddequeue_count = &i
	}
}

// AddedDequeueCount returns the value that was added to the "dequeue_count" field in this mutation.
func (m *QueueMessageMutation) AddedDequeueCount() (r int, exists bool) {
	v := m.adddequeue_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDequeueCount resets all changes to the "dequeue_count" field.
func (m *QueueMessageMutation) ResetDequeueCount() {
	m.dequeue_count = nil
	m.adddequeue_count = nil
}

// SetLeaseID sets the "lease_id" field.
func (m *QueueMessageMutation) SetLeaseID(s string) {
	m.lease_id = &s
}

// LeaseID returns the value of the "lease_id" field in the mutation.
func (m *QueueMessageMutation) LeaseID() (r string, exists bool) {
	v := m.lease_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseID returns the old "lease_id" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldLeaseID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseID: %w", err)
	}
	return oldValue.LeaseID, nil
}

// ClearLeaseID clears the value of the "lease_id" field.
func (m *QueueMessageMutation) ClearLeaseID() {
	m.lease_id = nil
	m.clearedFields[queuemessage.FieldLeaseID] = struct{}{}
}

// LeaseIDCleared returns if the "lease_id" field was cleared in this mutation.
func (m *QueueMessageMutation) LeaseIDCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldLeaseID]
	return ok
}

// ResetLeaseID resets all changes to the "lease_id" field.
func (m *QueueMessageMutation) ResetLeaseID() {
	m.lease_id = nil
	delete(m.clearedFields, queuemessage.FieldLeaseID)
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (m *QueueMessageMutation) SetEnqueuedAt(t time.Time) {
	m.enqueued_at = &t
}

// EnqueuedAt returns the value of the "enqueued_at" field in the mutation.
func (m *QueueMessageMutation) EnqueuedAt() (r time.Time, exists bool) {
	v := m.enqueued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnqueuedAt returns the old "enqueued_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldEnqueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnqueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnqueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnqueuedAt: %w", err)
	}
	return oldValue.EnqueuedAt, nil
}

// ResetEnqueuedAt resets all changes to the "enqueued_at" field.
func (m *QueueMessageMutation) ResetEnqueuedAt() {
	m.enqueued_at = nil
}

// SetFailureSummary sets the "failure_summary" field.
func (m *QueueMessageMutation) SetFailureSummary(s string) {
	m.failure_summary = &s
}

// FailureSummary returns the value of the "failure_summary" field in the mutation.
func (m *QueueMessageMutation) FailureSummary() (r string, exists bool) {
	v := m.failure_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureSummary returns the old "failure_summary" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldFailureSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureSummary: %w", err)
	}
	return oldValue.FailureSummary, nil
}

// ClearFailureSummary clears the value of the "failure_summary" field.
func (m *QueueMessageMutation) ClearFailureSummary() {
	m.failure_summary = nil
	m.clearedFields[queuemessage.FieldFailureSummary] = struct{}{}
}

// FailureSummaryCleared returns if the "failure_summary" field was cleared in this mutation.
func (m *QueueMessageMutation) FailureSummaryCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldFailureSummary]
	return ok
}

// ResetFailureSummary resets all changes to the "failure_summary" field.
func (m *QueueMessageMutation) ResetFailureSummary() {
	m.failure_summary = nil
	delete(m.clearedFields, queuemessage.FieldFailureSummary)
}

// Where appends a list predicates to the QueueMessageMutation builder.
func (m *QueueMessageMutation) Where(ps ...predicate.QueueMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueMessage).
func (m *QueueMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueMessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.queue_name != nil {
		fields = append(fields, queuemessage.FieldQueueName)
	}
	if m.process_id != nil {
		fields = append(fields, queuemessage.FieldProcessID)
	}
	if m.user_id != nil {
		fields = append(fields, queuemessage.FieldUserID)
	}
	if m.migration_request != nil {
		fields = append(fields, queuemessage.FieldMigrationRequest)
	}
	if m.visible_at != nil {
		fields = append(fields, queuemessage.FieldVisibleAt)
	}
	if m.dequeue_count != nil {
		fields = append(fields, queuemessage.FieldDequeueCount)
	}
	if m.lease_id != nil {
		fields = append(fields, queuemessage.FieldLeaseID)
	}
	if m.enqueued_at != nil {
		fields = append(fields, queuemessage.FieldEnqueuedAt)
	}
	if m.failure_summary != nil {
		fields = append(fields, queuemessage.FieldFailureSummary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuemessage.FieldQueueName:
		return m.QueueName()
	case queuemessage.FieldProcessID:
		return m.ProcessID()
	case queuemessage.FieldUserID:
		return m.UserID()
	case queuemessage.FieldMigrationRequest:
		return m.MigrationRequest()
	case queuemessage.FieldVisibleAt:
		return m.VisibleAt()
	case queuemessage.FieldDequeueCount:
		return m.DequeueCount()
	case queuemessage.FieldLeaseID:
		return m.LeaseID()
	case queuemessage.FieldEnqueuedAt:
		return m.EnqueuedAt()
	case queuemessage.FieldFailureSummary:
		return m.FailureSummary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuemessage.FieldQueueName:
		return m.OldQueueName(ctx)
	case queuemessage.FieldProcessID:
		return m.OldProcessID(ctx)
	case queuemessage.FieldUserID:
		return m.OldUserID(ctx)
	case queuemessage.FieldMigrationRequest:
		return m.OldMigrationRequest(ctx)
	case queuemessage.FieldVisibleAt:
		return m.OldVisibleAt(ctx)
	case queuemessage.FieldDequeueCount:
		return m.OldDequeueCount(ctx)
	case queuemessage.FieldLeaseID:
		return m.OldLeaseID(ctx)
	case queuemessage.FieldEnqueuedAt:
		return m.OldEnqueuedAt(ctx)
	case queuemessage.FieldFailureSummary:
		return m.OldFailureSummary(ctx)
	}
	return nil, fmt.Errorf("unknown QueueMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuemessage.FieldQueueName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueName(v)
		return nil
	case queuemessage.FieldProcessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessID(v)
		return nil
	case queuemessage.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case queuemessage.FieldMigrationRequest:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMigrationRequest(v)
		return nil
	case queuemessage.FieldVisibleAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibleAt(v)
		return nil
	case queuemessage.FieldDequeueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDequeueCount(v)
		return nil
	case queuemessage.FieldLeaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseID(v)
		return nil
	case queuemessage.FieldEnqueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnqueuedAt(v)
		return nil
	case queuemessage.FieldFailureSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureSummary(v)
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueMessageMutation) AddedFields() []string {
	var fields []string
	if m.adddequeue_count != nil {
		fields = append(fields, queuemessage.FieldDequeueCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuemessage.FieldDequeueCount:
		return m.AddedDequeueCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuemessage.FieldDequeueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDequeueCount(v)
		return nil
	}
	return fmt.Errorf("unknown QueueMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuemessage.FieldMigrationRequest) {
		fields = append(fields, queuemessage.FieldMigrationRequest)
	}
	if m.FieldCleared(queuemessage.FieldLeaseID) {
		fields = append(fields, queuemessage.FieldLeaseID)
	}
	if m.FieldCleared(queuemessage.FieldFailureSummary) {
		fields = append(fields, queuemessage.FieldFailureSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueMessageMutation) ClearField(name string) error {
	switch name {
	case queuemessage.FieldMigrationRequest:
		m.ClearMigrationRequest()
		return nil
	case queuemessage.FieldLeaseID:
		m.ClearLeaseID()
		return nil
	case queuemessage.FieldFailureSummary:
		m.ClearFailureSummary()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueMessageMutation) ResetField(name string) error {
	switch name {
	case queuemessage.FieldQueueName:
		m.ResetQueueName()
		return nil
	case queuemessage.FieldProcessID:
		m.ResetProcessID()
		return nil
	case queuemessage.FieldUserID:
		m.ResetUserID()
		return nil
	case queuemessage.FieldMigrationRequest:
		m.ResetMigrationRequest()
		return nil
	case queuemessage.FieldVisibleAt:
		m.ResetVisibleAt()
		return nil
	case queuemessage.FieldDequeueCount:
		m.ResetDequeueCount()
		return nil
	case queuemessage.FieldLeaseID:
		m.ResetLeaseID()
		return nil
	case queuemessage.FieldEnqueuedAt:
		m.ResetEnqueuedAt()
		return nil
	case queuemessage.FieldFailureSummary:
		m.ResetFailureSummary()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage edge %s", name)
}
