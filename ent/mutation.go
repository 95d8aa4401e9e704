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
	"github.com/recallkit/recallkit/ent/predicate"
	"github.com/recallkit/recallkit/ent/rabbitholeevent"
	"github.com/recallkit/recallkit/ent/recalloutcome"
	"github.com/recallkit/recallkit/ent/recallpoint"
	"github.com/recallkit/recallkit/ent/recallset"
	"github.com/recallkit/recallkit/ent/sessionmessage"
	"github.com/recallkit/recallkit/ent/sessionmetrics"
	"github.com/recallkit/recallkit/ent/studysession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeRabbitholeEvent = "RabbitholeEvent"
	TypeRecallOutcome   = "RecallOutcome"
	TypeRecallPoint     = "RecallPoint"
	TypeRecallSet       = "RecallSet"
	TypeSessionMessage  = "SessionMessage"
	TypeSessionMetrics  = "SessionMetrics"
	TypeStudySession    = "StudySession"
)

// RabbitholeEventMutation represents an operation that mutates the RabbitholeEvent nodes in the graph.
type RabbitholeEventMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	topic                    *string
	trigger_message_index    *int
	addtrigger_message_index *int
	return_message_index     *int
	addreturn_message_index  *int
	depth                    *int
	adddepth                 *int
	related_point_ids        *[]string
	appendrelated_point_ids  []string
	user_initiated           *bool
	status                   *rabbitholeevent.Status
	conversation             *[]map[string]interface{}
	appendconversation       []map[string]interface{}
	created_at               *time.Time
	clearedFields            map[string]struct{}
	session                  *string
	clearedsession           bool
	done                     bool
	oldValue                 func(context.Context) (*RabbitholeEvent, error)
	predicates               []predicate.RabbitholeEvent
}

var _ ent.Mutation = (*RabbitholeEventMutation)(nil)

// rabbitholeeventOption allows management of the mutation configuration using functional options.
type rabbitholeeventOption func(*RabbitholeEventMutation)

// newRabbitholeEventMutation creates new mutation for the RabbitholeEvent entity.
func newRabbitholeEventMutation(c config, op Op, opts ...rabbitholeeventOption) *RabbitholeEventMutation {
	m := &RabbitholeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRabbitholeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRabbitholeEventID sets the ID field of the mutation.
func withRabbitholeEventID(id string) rabbitholeeventOption {
	return func(m *RabbitholeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RabbitholeEvent
		)
		m.oldValue = func(ctx context.Context) (*RabbitholeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RabbitholeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRabbitholeEvent sets the old RabbitholeEvent of the mutation.
func withRabbitholeEvent(node *RabbitholeEvent) rabbitholeeventOption {
	return func(m *RabbitholeEventMutation) {
		m.oldValue = func(context.Context) (*RabbitholeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RabbitholeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RabbitholeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RabbitholeEvent entities.
func (m *RabbitholeEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RabbitholeEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RabbitholeEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RabbitholeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *RabbitholeEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RabbitholeEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RabbitholeEventMutation) ResetSessionID() {
	m.session = nil
}

// SetTopic sets the "topic" field.
func (m *RabbitholeEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *RabbitholeEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *RabbitholeEventMutation) ResetTopic() {
	m.topic = nil
}

// SetTriggerMessageIndex sets the "trigger_message_index" field.
func (m *RabbitholeEventMutation) SetTriggerMessageIndex(i int) {
	m.trigger_message_index = &i
	m.addtrigger_message_index = nil
}

// TriggerMessageIndex returns the value of the "trigger_message_index" field in the mutation.
func (m *RabbitholeEventMutation) TriggerMessageIndex() (r int, exists bool) {
	v := m.trigger_message_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerMessageIndex returns the old "trigger_message_index" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldTriggerMessageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerMessageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerMessageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerMessageIndex: %w", err)
	}
	return oldValue.TriggerMessageIndex, nil
}

// AddTriggerMessageIndex adds i to the "trigger_message_index" field.
func (m *RabbitholeEventMutation) AddTriggerMessageIndex(i int) {
	if m.addtrigger_message_index != nil {
		*m.addtrigger_message_index += i
	} else {
		m.addtrigger_message_index = &i
	}
}

// AddedTriggerMessageIndex returns the value that was added to the "trigger_message_index" field in this mutation.
func (m *RabbitholeEventMutation) AddedTriggerMessageIndex() (r int, exists bool) {
	v := m.addtrigger_message_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTriggerMessageIndex resets all changes to the "trigger_message_index" field.
func (m *RabbitholeEventMutation) ResetTriggerMessageIndex() {
	m.trigger_message_index = nil
	m.addtrigger_message_index = nil
}

// SetReturnMessageIndex sets the "return_message_index" field.
func (m *RabbitholeEventMutation) SetReturnMessageIndex(i int) {
	m.return_message_index = &i
	m.addreturn_message_index = nil
}

// ReturnMessageIndex returns the value of the "return_message_index" field in the mutation.
func (m *RabbitholeEventMutation) ReturnMessageIndex() (r int, exists bool) {
	v := m.return_message_index
	if v == nil {
		return
	}
	return *v, true
}

// OldReturnMessageIndex returns the old "return_message_index" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldReturnMessageIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReturnMessageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReturnMessageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReturnMessageIndex: %w", err)
	}
	return oldValue.ReturnMessageIndex, nil
}

// AddReturnMessageIndex adds i to the "return_message_index" field.
func (m *RabbitholeEventMutation) AddReturnMessageIndex(i int) {
	if m.addreturn_message_index != nil {
		*m.addreturn_message_index += i
	} else {
		m.addreturn_message_index = &i
	}
}

// AddedReturnMessageIndex returns the value that was added to the "return_message_index" field in this mutation.
func (m *RabbitholeEventMutation) AddedReturnMessageIndex() (r int, exists bool) {
	v := m.addreturn_message_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearReturnMessageIndex clears the value of the "return_message_index" field.
func (m *RabbitholeEventMutation) ClearReturnMessageIndex() {
	m.return_message_index = nil
	m.addreturn_message_index = nil
	m.clearedFields[rabbitholeevent.FieldReturnMessageIndex] = struct{}{}
}

// ReturnMessageIndexCleared returns if the "return_message_index" field was cleared in this mutation.
func (m *RabbitholeEventMutation) ReturnMessageIndexCleared() bool {
	_, ok := m.clearedFields[rabbitholeevent.FieldReturnMessageIndex]
	return ok
}

// ResetReturnMessageIndex resets all changes to the "return_message_index" field.
func (m *RabbitholeEventMutation) ResetReturnMessageIndex() {
	m.return_message_index = nil
	m.addreturn_message_index = nil
	delete(m.clearedFields, rabbitholeevent.FieldReturnMessageIndex)
}

// SetDepth sets the "depth" field.
func (m *RabbitholeEventMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *RabbitholeEventMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *RabbitholeEventMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *RabbitholeEventMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *RabbitholeEventMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetRelatedPointIds sets the "related_point_ids" field.
func (m *RabbitholeEventMutation) SetRelatedPointIds(s []string) {
	m.related_point_ids = &s
	m.appendrelated_point_ids = nil
}

// RelatedPointIds returns the value of the "related_point_ids" field in the mutation.
func (m *RabbitholeEventMutation) RelatedPointIds() (r []string, exists bool) {
	v := m.related_point_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedPointIds returns the old "related_point_ids" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldRelatedPointIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedPointIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedPointIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedPointIds: %w", err)
	}
	return oldValue.RelatedPointIds, nil
}

// AppendRelatedPointIds adds s to the "related_point_ids" field.
func (m *RabbitholeEventMutation) AppendRelatedPointIds(s []string) {
	m.appendrelated_point_ids = append(m.appendrelated_point_ids, s...)
}

// AppendedRelatedPointIds returns the list of values that were appended to the "related_point_ids" field in this mutation.
func (m *RabbitholeEventMutation) AppendedRelatedPointIds() ([]string, bool) {
	if len(m.appendrelated_point_ids) == 0 {
		return nil, false
	}
	return m.appendrelated_point_ids, true
}

// ClearRelatedPointIds clears the value of the "related_point_ids" field.
func (m *RabbitholeEventMutation) ClearRelatedPointIds() {
	m.related_point_ids = nil
	m.appendrelated_point_ids = nil
	m.clearedFields[rabbitholeevent.FieldRelatedPointIds] = struct{}{}
}

// RelatedPointIdsCleared returns if the "related_point_ids" field was cleared in this mutation.
func (m *RabbitholeEventMutation) RelatedPointIdsCleared() bool {
	_, ok := m.clearedFields[rabbitholeevent.FieldRelatedPointIds]
	return ok
}

// ResetRelatedPointIds resets all changes to the "related_point_ids" field.
func (m *RabbitholeEventMutation) ResetRelatedPointIds() {
	m.related_point_ids = nil
	m.appendrelated_point_ids = nil
	delete(m.clearedFields, rabbitholeevent.FieldRelatedPointIds)
}

// SetUserInitiated sets the "user_initiated" field.
func (m *RabbitholeEventMutation) SetUserInitiated(b bool) {
	m.user_initiated = &b
}

// UserInitiated returns the value of the "user_initiated" field in the mutation.
func (m *RabbitholeEventMutation) UserInitiated() (r bool, exists bool) {
	v := m.user_initiated
	if v == nil {
		return
	}
	return *v, true
}

// OldUserInitiated returns the old "user_initiated" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldUserInitiated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserInitiated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserInitiated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserInitiated: %w", err)
	}
	return oldValue.UserInitiated, nil
}

// ResetUserInitiated resets all changes to the "user_initiated" field.
func (m *RabbitholeEventMutation) ResetUserInitiated() {
	m.user_initiated = nil
}

// SetStatus sets the "status" field.
func (m *RabbitholeEventMutation) SetStatus(r rabbitholeevent.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RabbitholeEventMutation) Status() (r rabbitholeevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldStatus(ctx context.Context) (v rabbitholeevent.Status, err error) {
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
func (m *RabbitholeEventMutation) ResetStatus() {
	m.status = nil
}

// SetConversation sets the "conversation" field.
func (m *RabbitholeEventMutation) SetConversation(value []map[string]interface{}) {
	m.conversation = &value
	m.appendconversation = nil
}

// Conversation returns the value of the "conversation" field in the mutation.
func (m *RabbitholeEventMutation) Conversation() (r []map[string]interface{}, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversation returns the old "conversation" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldConversation(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversation: %w", err)
	}
	return oldValue.Conversation, nil
}

// AppendConversation adds value to the "conversation" field.
func (m *RabbitholeEventMutation) AppendConversation(value []map[string]interface{}) {
	m.appendconversation = append(m.appendconversation, value...)
}

// AppendedConversation returns the list of values that were appended to the "conversation" field in this mutation.
func (m *RabbitholeEventMutation) AppendedConversation() ([]map[string]interface{}, bool) {
	if len(m.appendconversation) == 0 {
		return nil, false
	}
	return m.appendconversation, true
}

// ClearConversation clears the value of the "conversation" field.
func (m *RabbitholeEventMutation) ClearConversation() {
	m.conversation = nil
	m.appendconversation = nil
	m.clearedFields[rabbitholeevent.FieldConversation] = struct{}{}
}

// ConversationCleared returns if the "conversation" field was cleared in this mutation.
func (m *RabbitholeEventMutation) ConversationCleared() bool {
	_, ok := m.clearedFields[rabbitholeevent.FieldConversation]
	return ok
}

// ResetConversation resets all changes to the "conversation" field.
func (m *RabbitholeEventMutation) ResetConversation() {
	m.conversation = nil
	m.appendconversation = nil
	delete(m.clearedFields, rabbitholeevent.FieldConversation)
}

// SetCreatedAt sets the "created_at" field.
func (m *RabbitholeEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RabbitholeEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RabbitholeEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the StudySession entity.
func (m *RabbitholeEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[rabbitholeevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the StudySession entity was cleared.
func (m *RabbitholeEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *RabbitholeEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *RabbitholeEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the RabbitholeEventMutation builder.
func (m *RabbitholeEventMutation) Where(ps ...predicate.RabbitholeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RabbitholeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RabbitholeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RabbitholeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RabbitholeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RabbitholeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RabbitholeEvent).
func (m *RabbitholeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RabbitholeEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, rabbitholeevent.FieldSessionID)
	}
	if m.topic != nil {
		fields = append(fields, rabbitholeevent.FieldTopic)
	}
	if m.trigger_message_index != nil {
		fields = append(fields, rabbitholeevent.FieldTriggerMessageIndex)
	}
	if m.return_message_index != nil {
		fields = append(fields, rabbitholeevent.FieldReturnMessageIndex)
	}
	if m.depth != nil {
		fields = append(fields, rabbitholeevent.FieldDepth)
	}
	if m.related_point_ids != nil {
		fields = append(fields, rabbitholeevent.FieldRelatedPointIds)
	}
	if m.user_initiated != nil {
		fields = append(fields, rabbitholeevent.FieldUserInitiated)
	}
	if m.status != nil {
		fields = append(fields, rabbitholeevent.FieldStatus)
	}
	if m.conversation != nil {
		fields = append(fields, rabbitholeevent.FieldConversation)
	}
	if m.created_at != nil {
		fields = append(fields, rabbitholeevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RabbitholeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rabbitholeevent.FieldSessionID:
		return m.SessionID()
	case rabbitholeevent.FieldTopic:
		return m.Topic()
	case rabbitholeevent.FieldTriggerMessageIndex:
		return m.TriggerMessageIndex()
	case rabbitholeevent.FieldReturnMessageIndex:
		return m.ReturnMessageIndex()
	case rabbitholeevent.FieldDepth:
		return m.Depth()
	case rabbitholeevent.FieldRelatedPointIds:
		return m.RelatedPointIds()
	case rabbitholeevent.FieldUserInitiated:
		return m.UserInitiated()
	case rabbitholeevent.FieldStatus:
		return m.Status()
	case rabbitholeevent.FieldConversation:
		return m.Conversation()
	case rabbitholeevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RabbitholeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rabbitholeevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case rabbitholeevent.FieldTopic:
		return m.OldTopic(ctx)
	case rabbitholeevent.FieldTriggerMessageIndex:
		return m.OldTriggerMessageIndex(ctx)
	case rabbitholeevent.FieldReturnMessageIndex:
		return m.OldReturnMessageIndex(ctx)
	case rabbitholeevent.FieldDepth:
		return m.OldDepth(ctx)
	case rabbitholeevent.FieldRelatedPointIds:
		return m.OldRelatedPointIds(ctx)
	case rabbitholeevent.FieldUserInitiated:
		return m.OldUserInitiated(ctx)
	case rabbitholeevent.FieldStatus:
		return m.OldStatus(ctx)
	case rabbitholeevent.FieldConversation:
		return m.OldConversation(ctx)
	case rabbitholeevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RabbitholeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RabbitholeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rabbitholeevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case rabbitholeevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case rabbitholeevent.FieldTriggerMessageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerMessageIndex(v)
		return nil
	case rabbitholeevent.FieldReturnMessageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReturnMessageIndex(v)
		return nil
	case rabbitholeevent.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case rabbitholeevent.FieldRelatedPointIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedPointIds(v)
		return nil
	case rabbitholeevent.FieldUserInitiated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserInitiated(v)
		return nil
	case rabbitholeevent.FieldStatus:
		v, ok := value.(rabbitholeevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case rabbitholeevent.FieldConversation:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversation(v)
		return nil
	case rabbitholeevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RabbitholeEventMutation) AddedFields() []string {
	var fields []string
	if m.addtrigger_message_index != nil {
		fields = append(fields, rabbitholeevent.FieldTriggerMessageIndex)
	}
	if m.addreturn_message_index != nil {
		fields = append(fields, rabbitholeevent.FieldReturnMessageIndex)
	}
	if m.adddepth != nil {
		fields = append(fields, rabbitholeevent.FieldDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RabbitholeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rabbitholeevent.FieldTriggerMessageIndex:
		return m.AddedTriggerMessageIndex()
	case rabbitholeevent.FieldReturnMessageIndex:
		return m.AddedReturnMessageIndex()
	case rabbitholeevent.FieldDepth:
		return m.AddedDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RabbitholeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rabbitholeevent.FieldTriggerMessageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTriggerMessageIndex(v)
		return nil
	case rabbitholeevent.FieldReturnMessageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReturnMessageIndex(v)
		return nil
	case rabbitholeevent.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RabbitholeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rabbitholeevent.FieldReturnMessageIndex) {
		fields = append(fields, rabbitholeevent.FieldReturnMessageIndex)
	}
	if m.FieldCleared(rabbitholeevent.FieldRelatedPointIds) {
		fields = append(fields, rabbitholeevent.FieldRelatedPointIds)
	}
	if m.FieldCleared(rabbitholeevent.FieldConversation) {
		fields = append(fields, rabbitholeevent.FieldConversation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RabbitholeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RabbitholeEventMutation) ClearField(name string) error {
	switch name {
	case rabbitholeevent.FieldReturnMessageIndex:
		m.ClearReturnMessageIndex()
		return nil
	case rabbitholeevent.FieldRelatedPointIds:
		m.ClearRelatedPointIds()
		return nil
	case rabbitholeevent.FieldConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RabbitholeEventMutation) ResetField(name string) error {
	switch name {
	case rabbitholeevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case rabbitholeevent.FieldTopic:
		m.ResetTopic()
		return nil
	case rabbitholeevent.FieldTriggerMessageIndex:
		m.ResetTriggerMessageIndex()
		return nil
	case rabbitholeevent.FieldReturnMessageIndex:
		m.ResetReturnMessageIndex()
		return nil
	case rabbitholeevent.FieldDepth:
		m.ResetDepth()
		return nil
	case rabbitholeevent.FieldRelatedPointIds:
		m.ResetRelatedPointIds()
		return nil
	case rabbitholeevent.FieldUserInitiated:
		m.ResetUserInitiated()
		return nil
	case rabbitholeevent.FieldStatus:
		m.ResetStatus()
		return nil
	case rabbitholeevent.FieldConversation:
		m.ResetConversation()
		return nil
	case rabbitholeevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RabbitholeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, rabbitholeevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RabbitholeEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rabbitholeevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RabbitholeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RabbitholeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RabbitholeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, rabbitholeevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RabbitholeEventMutation) EdgeCleared(name string) bool {
	switch name {
	case rabbitholeevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RabbitholeEventMutation) ClearEdge(name string) error {
	switch name {
	case rabbitholeevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RabbitholeEventMutation) ResetEdge(name string) error {
	switch name {
	case rabbitholeevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent edge %s", name)
}

// RecallOutcomeMutation represents an operation that mutates the RecallOutcome nodes in the graph.
type RecallOutcomeMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	success                *bool
	confidence             *float64
	addconfidence          *float64
	rating                 *recalloutcome.Rating
	reasoning              *string
	message_index_start    *int
	addmessage_index_start *int
	message_index_end      *int
	addmessage_index_end   *int
	time_spent_ms          *int
	addtime_spent_ms       *int
	created_at             *time.Time
	clearedFields          map[string]struct{}
	session                *string
	clearedsession         bool
	recall_point           *string
	clearedrecall_point    bool
	done                   bool
	oldValue               func(context.Context) (*RecallOutcome, error)
	predicates             []predicate.RecallOutcome
}

var _ ent.Mutation = (*RecallOutcomeMutation)(nil)

// recalloutcomeOption allows management of the mutation configuration using functional options.
type recalloutcomeOption func(*RecallOutcomeMutation)

// newRecallOutcomeMutation creates new mutation for the RecallOutcome entity.
func newRecallOutcomeMutation(c config, op Op, opts ...recalloutcomeOption) *RecallOutcomeMutation {
	m := &RecallOutcomeMutation{
		config:        c,
		op:            op,
		typ:           TypeRecallOutcome,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecallOutcomeID sets the ID field of the mutation.
func withRecallOutcomeID(id string) recalloutcomeOption {
	return func(m *RecallOutcomeMutation) {
		var (
			err   error
			once  sync.Once
			value *RecallOutcome
		)
		m.oldValue = func(ctx context.Context) (*RecallOutcome, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecallOutcome.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecallOutcome sets the old RecallOutcome of the mutation.
func withRecallOutcome(node *RecallOutcome) recalloutcomeOption {
	return func(m *RecallOutcomeMutation) {
		m.oldValue = func(context.Context) (*RecallOutcome, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecallOutcomeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecallOutcomeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecallOutcome entities.
func (m *RecallOutcomeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecallOutcomeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecallOutcomeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecallOutcome.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *RecallOutcomeMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RecallOutcomeMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RecallOutcomeMutation) ResetSessionID() {
	m.session = nil
}

// SetRecallPointID sets the "recall_point_id" field.
func (m *RecallOutcomeMutation) SetRecallPointID(s string) {
	m.recall_point = &s
}

// RecallPointID returns the value of the "recall_point_id" field in the mutation.
func (m *RecallOutcomeMutation) RecallPointID() (r string, exists bool) {
	v := m.recall_point
	if v == nil {
		return
	}
	return *v, true
}

// OldRecallPointID returns the old "recall_point_id" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldRecallPointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecallPointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecallPointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecallPointID: %w", err)
	}
	return oldValue.RecallPointID, nil
}

// ResetRecallPointID resets all changes to the "recall_point_id" field.
func (m *RecallOutcomeMutation) ResetRecallPointID() {
	m.recall_point = nil
}

// SetSuccess sets the "success" field.
func (m *RecallOutcomeMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *RecallOutcomeMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *RecallOutcomeMutation) ResetSuccess() {
	m.success = nil
}

// SetConfidence sets the "confidence" field.
func (m *RecallOutcomeMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *RecallOutcomeMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *RecallOutcomeMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *RecallOutcomeMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *RecallOutcomeMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetRating sets the "rating" field.
func (m *RecallOutcomeMutation) SetRating(r recalloutcome.Rating) {
	m.rating = &r
}

// Rating returns the value of the "rating" field in the mutation.
func (m *RecallOutcomeMutation) Rating() (r recalloutcome.Rating, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldRating(ctx context.Context) (v *recalloutcome.Rating, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// ClearRating clears the value of the "rating" field.
func (m *RecallOutcomeMutation) ClearRating() {
	m.rating = nil
	m.clearedFields[recalloutcome.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *RecallOutcomeMutation) RatingCleared() bool {
	_, ok := m.clearedFields[recalloutcome.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *RecallOutcomeMutation) ResetRating() {
	m.rating = nil
	delete(m.clearedFields, recalloutcome.FieldRating)
}

// SetReasoning sets the "reasoning" field.
func (m *RecallOutcomeMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *RecallOutcomeMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *RecallOutcomeMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[recalloutcome.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *RecallOutcomeMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[recalloutcome.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *RecallOutcomeMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, recalloutcome.FieldReasoning)
}

// SetMessageIndexStart sets the "message_index_start" field.
func (m *RecallOutcomeMutation) SetMessageIndexStart(i int) {
	m.message_index_start = &i
	m.addmessage_index_start = nil
}

// MessageIndexStart returns the value of the "message_index_start" field in the mutation.
func (m *RecallOutcomeMutation) MessageIndexStart() (r int, exists bool) {
	v := m.message_index_start
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageIndexStart returns the old "message_index_start" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldMessageIndexStart(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageIndexStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageIndexStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageIndexStart: %w", err)
	}
	return oldValue.MessageIndexStart, nil
}

// AddMessageIndexStart adds i to the "message_index_start" field.
func (m *RecallOutcomeMutation) AddMessageIndexStart(i int) {
	if m.addmessage_index_start != nil {
		*m.addmessage_index_start += i
	} else {
		m.addmessage_index_start = &i
	}
}

// AddedMessageIndexStart returns the value that was added to the "message_index_start" field in this mutation.
func (m *RecallOutcomeMutation) AddedMessageIndexStart() (r int, exists bool) {
	v := m.addmessage_index_start
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageIndexStart resets all changes to the "message_index_start" field.
func (m *RecallOutcomeMutation) ResetMessageIndexStart() {
	m.message_index_start = nil
	m.addmessage_index_start = nil
}

// SetMessageIndexEnd sets the "message_index_end" field.
func (m *RecallOutcomeMutation) SetMessageIndexEnd(i int) {
	m.message_index_end = &i
	m.addmessage_index_end = nil
}

// MessageIndexEnd returns the value of the "message_index_end" field in the mutation.
func (m *RecallOutcomeMutation) MessageIndexEnd() (r int, exists bool) {
	v := m.message_index_end
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageIndexEnd returns the old "message_index_end" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldMessageIndexEnd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageIndexEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageIndexEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageIndexEnd: %w", err)
	}
	return oldValue.MessageIndexEnd, nil
}

// AddMessageIndexEnd adds i to the "message_index_end" field.
func (m *RecallOutcomeMutation) AddMessageIndexEnd(i int) {
	if m.addmessage_index_end != nil {
		*m.addmessage_index_end += i
	} else {
		m.addmessage_index_end = &i
	}
}

// AddedMessageIndexEnd returns the value that was added to the "message_index_end" field in this mutation.
func (m *RecallOutcomeMutation) AddedMessageIndexEnd() (r int, exists bool) {
	v := m.addmessage_index_end
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageIndexEnd resets all changes to the "message_index_end" field.
func (m *RecallOutcomeMutation) ResetMessageIndexEnd() {
	m.message_index_end = nil
	m.addmessage_index_end = nil
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (m *RecallOutcomeMutation) SetTimeSpentMs(i int) {
	m.time_spent_ms = &i
	m.addtime_spent_ms = nil
}

// TimeSpentMs returns the value of the "time_spent_ms" field in the mutation.
func (m *RecallOutcomeMutation) TimeSpentMs() (r int, exists bool) {
	v := m.time_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMs returns the old "time_spent_ms" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldTimeSpentMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMs: %w", err)
	}
	return oldValue.TimeSpentMs, nil
}

// AddTimeSpentMs adds i to the "time_spent_ms" field.
func (m *RecallOutcomeMutation) AddTimeSpentMs(i int) {
	if m.addtime_spent_ms != nil {
		*m.addtime_spent_ms += i
	} else {
		m.addtime_spent_ms = &i
	}
}

// AddedTimeSpentMs returns the value that was added to the "time_spent_ms" field in this mutation.
func (m *RecallOutcomeMutation) AddedTimeSpentMs() (r int, exists bool) {
	v := m.addtime_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMs resets all changes to the "time_spent_ms" field.
func (m *RecallOutcomeMutation) ResetTimeSpentMs() {
	m.time_spent_ms = nil
	m.addtime_spent_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecallOutcomeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecallOutcomeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RecallOutcomeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the StudySession entity.
func (m *RecallOutcomeMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[recalloutcome.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the StudySession entity was cleared.
func (m *RecallOutcomeMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *RecallOutcomeMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *RecallOutcomeMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearRecallPoint clears the "recall_point" edge to the RecallPoint entity.
func (m *RecallOutcomeMutation) ClearRecallPoint() {
	m.clearedrecall_point = true
	m.clearedFields[recalloutcome.FieldRecallPointID] = struct{}{}
}

// RecallPointCleared reports if the "recall_point" edge to the RecallPoint entity was cleared.
func (m *RecallOutcomeMutation) RecallPointCleared() bool {
	return m.clearedrecall_point
}

// RecallPointIDs returns the "recall_point" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecallPointID instead. It exists only for internal usage by the builders.
func (m *RecallOutcomeMutation) RecallPointIDs() (ids []string) {
	if id := m.recall_point; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecallPoint resets all changes to the "recall_point" edge.
func (m *RecallOutcomeMutation) ResetRecallPoint() {
	m.recall_point = nil
	m.clearedrecall_point = false
}

// Where appends a list predicates to the RecallOutcomeMutation builder.
func (m *RecallOutcomeMutation) Where(ps ...predicate.RecallOutcome) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecallOutcomeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecallOutcomeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecallOutcome, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecallOutcomeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecallOutcomeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecallOutcome).
func (m *RecallOutcomeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecallOutcomeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, recalloutcome.FieldSessionID)
	}
	if m.recall_point != nil {
		fields = append(fields, recalloutcome.FieldRecallPointID)
	}
	if m.success != nil {
		fields = append(fields, recalloutcome.FieldSuccess)
	}
	if m.confidence != nil {
		fields = append(fields, recalloutcome.FieldConfidence)
	}
	if m.rating != nil {
		fields = append(fields, recalloutcome.FieldRating)
	}
	if m.reasoning != nil {
		fields = append(fields, recalloutcome.FieldReasoning)
	}
	if m.message_index_start != nil {
		fields = append(fields, recalloutcome.FieldMessageIndexStart)
	}
	if m.message_index_end != nil {
		fields = append(fields, recalloutcome.FieldMessageIndexEnd)
	}
	if m.time_spent_ms != nil {
		fields = append(fields, recalloutcome.FieldTimeSpentMs)
	}
	if m.created_at != nil {
		fields = append(fields, recalloutcome.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecallOutcomeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recalloutcome.FieldSessionID:
		return m.SessionID()
	case recalloutcome.FieldRecallPointID:
		return m.RecallPointID()
	case recalloutcome.FieldSuccess:
		return m.Success()
	case recalloutcome.FieldConfidence:
		return m.Confidence()
	case recalloutcome.FieldRating:
		return m.Rating()
	case recalloutcome.FieldReasoning:
		return m.Reasoning()
	case recalloutcome.FieldMessageIndexStart:
		return m.MessageIndexStart()
	case recalloutcome.FieldMessageIndexEnd:
		return m.MessageIndexEnd()
	case recalloutcome.FieldTimeSpentMs:
		return m.TimeSpentMs()
	case recalloutcome.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecallOutcomeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recalloutcome.FieldSessionID:
		return m.OldSessionID(ctx)
	case recalloutcome.FieldRecallPointID:
		return m.OldRecallPointID(ctx)
	case recalloutcome.FieldSuccess:
		return m.OldSuccess(ctx)
	case recalloutcome.FieldConfidence:
		return m.OldConfidence(ctx)
	case recalloutcome.FieldRating:
		return m.OldRating(ctx)
	case recalloutcome.FieldReasoning:
		return m.OldReasoning(ctx)
	case recalloutcome.FieldMessageIndexStart:
		return m.OldMessageIndexStart(ctx)
	case recalloutcome.FieldMessageIndexEnd:
		return m.OldMessageIndexEnd(ctx)
	case recalloutcome.FieldTimeSpentMs:
		return m.OldTimeSpentMs(ctx)
	case recalloutcome.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RecallOutcome field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallOutcomeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recalloutcome.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case recalloutcome.FieldRecallPointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecallPointID(v)
		return nil
	case recalloutcome.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case recalloutcome.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case recalloutcome.FieldRating:
		v, ok := value.(recalloutcome.Rating)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case recalloutcome.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case recalloutcome.FieldMessageIndexStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageIndexStart(v)
		return nil
	case recalloutcome.FieldMessageIndexEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageIndexEnd(v)
		return nil
	case recalloutcome.FieldTimeSpentMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMs(v)
		return nil
	case recalloutcome.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecallOutcomeMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, recalloutcome.FieldConfidence)
	}
	if m.addmessage_index_start != nil {
		fields = append(fields, recalloutcome.FieldMessageIndexStart)
	}
	if m.addmessage_index_end != nil {
		fields = append(fields, recalloutcome.FieldMessageIndexEnd)
	}
	if m.addtime_spent_ms != nil {
		fields = append(fields, recalloutcome.FieldTimeSpentMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecallOutcomeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recalloutcome.FieldConfidence:
		return m.AddedConfidence()
	case recalloutcome.FieldMessageIndexStart:
		return m.AddedMessageIndexStart()
	case recalloutcome.FieldMessageIndexEnd:
		return m.AddedMessageIndexEnd()
	case recalloutcome.FieldTimeSpentMs:
		return m.AddedTimeSpentMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallOutcomeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recalloutcome.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case recalloutcome.FieldMessageIndexStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageIndexStart(v)
		return nil
	case recalloutcome.FieldMessageIndexEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageIndexEnd(v)
		return nil
	case recalloutcome.FieldTimeSpentMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMs(v)
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecallOutcomeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recalloutcome.FieldRating) {
		fields = append(fields, recalloutcome.FieldRating)
	}
	if m.FieldCleared(recalloutcome.FieldReasoning) {
		fields = append(fields, recalloutcome.FieldReasoning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecallOutcomeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecallOutcomeMutation) ClearField(name string) error {
	switch name {
	case recalloutcome.FieldRating:
		m.ClearRating()
		return nil
	case recalloutcome.FieldReasoning:
		m.ClearReasoning()
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecallOutcomeMutation) ResetField(name string) error {
	switch name {
	case recalloutcome.FieldSessionID:
		m.ResetSessionID()
		return nil
	case recalloutcome.FieldRecallPointID:
		m.ResetRecallPointID()
		return nil
	case recalloutcome.FieldSuccess:
		m.ResetSuccess()
		return nil
	case recalloutcome.FieldConfidence:
		m.ResetConfidence()
		return nil
	case recalloutcome.FieldRating:
		m.ResetRating()
		return nil
	case recalloutcome.FieldReasoning:
		m.ResetReasoning()
		return nil
	case recalloutcome.FieldMessageIndexStart:
		m.ResetMessageIndexStart()
		return nil
	case recalloutcome.FieldMessageIndexEnd:
		m.ResetMessageIndexEnd()
		return nil
	case recalloutcome.FieldTimeSpentMs:
		m.ResetTimeSpentMs()
		return nil
	case recalloutcome.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecallOutcomeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, recalloutcome.EdgeSession)
	}
	if m.recall_point != nil {
		edges = append(edges, recalloutcome.EdgeRecallPoint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecallOutcomeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recalloutcome.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case recalloutcome.EdgeRecallPoint:
		if id := m.recall_point; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecallOutcomeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecallOutcomeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecallOutcomeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, recalloutcome.EdgeSession)
	}
	if m.clearedrecall_point {
		edges = append(edges, recalloutcome.EdgeRecallPoint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecallOutcomeMutation) EdgeCleared(name string) bool {
	switch name {
	case recalloutcome.EdgeSession:
		return m.clearedsession
	case recalloutcome.EdgeRecallPoint:
		return m.clearedrecall_point
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecallOutcomeMutation) ClearEdge(name string) error {
	switch name {
	case recalloutcome.EdgeSession:
		m.ClearSession()
		return nil
	case recalloutcome.EdgeRecallPoint:
		m.ClearRecallPoint()
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecallOutcomeMutation) ResetEdge(name string) error {
	switch name {
	case recalloutcome.EdgeSession:
		m.ResetSession()
		return nil
	case recalloutcome.EdgeRecallPoint:
		m.ResetRecallPoint()
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome edge %s", name)
}

// RecallPointMutation represents an operation that mutates the RecallPoint nodes in the graph.
type RecallPointMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	content              *string
	context              *string
	difficulty           *float64
	adddifficulty        *float64
	stability            *float64
	addstability         *float64
	due                  *time.Time
	last_review          *time.Time
	reps                 *int
	addreps              *int
	lapses               *int
	addlapses            *int
	state                *recallpoint.State
	recall_history       *[]map[string]interface{}
	appendrecall_history []map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	recall_set           *string
	clearedrecall_set    bool
	outcomes             map[string]struct{}
	removedoutcomes      map[string]struct{}
	clearedoutcomes      bool
	done                 bool
	oldValue             func(context.Context) (*RecallPoint, error)
	predicates           []predicate.RecallPoint
}

var _ ent.Mutation = (*RecallPointMutation)(nil)

// recallpointOption allows management of the mutation configuration using functional options.
type recallpointOption func(*RecallPointMutation)

// newRecallPointMutation creates new mutation for the RecallPoint entity.
func newRecallPointMutation(c config, op Op, opts ...recallpointOption) *RecallPointMutation {
	m := &RecallPointMutation{
		config:        c,
		op:            op,
		typ:           TypeRecallPoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecallPointID sets the ID field of the mutation.
func withRecallPointID(id string) recallpointOption {
	return func(m *RecallPointMutation) {
		var (
			err   error
			once  sync.Once
			value *RecallPoint
		)
		m.oldValue = func(ctx context.Context) (*RecallPoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecallPoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecallPoint sets the old RecallPoint of the mutation.
func withRecallPoint(node *RecallPoint) recallpointOption {
	return func(m *RecallPointMutation) {
		m.oldValue = func(context.Context) (*RecallPoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecallPointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecallPointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecallPoint entities.
func (m *RecallPointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecallPointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecallPointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecallPoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecallSetID sets the "recall_set_id" field.
func (m *RecallPointMutation) SetRecallSetID(s string) {
	m.recall_set = &s
}

// RecallSetID returns the value of the "recall_set_id" field in the mutation.
func (m *RecallPointMutation) RecallSetID() (r string, exists bool) {
	v := m.recall_set
	if v == nil {
		return
	}
	return *v, true
}

// OldRecallSetID returns the old "recall_set_id" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldRecallSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecallSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecallSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecallSetID: %w", err)
	}
	return oldValue.RecallSetID, nil
}

// ResetRecallSetID resets all changes to the "recall_set_id" field.
func (m *RecallPointMutation) ResetRecallSetID() {
	m.recall_set = nil
}

// SetContent sets the "content" field.
func (m *RecallPointMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *RecallPointMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *RecallPointMutation) ResetContent() {
	m.content = nil
}

// SetContext sets the "context" field.
func (m *RecallPointMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *RecallPointMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ResetContext resets all changes to the "context" field.
func (m *RecallPointMutation) ResetContext() {
	m.context = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *RecallPointMutation) SetDifficulty(f float64) {
	m.difficulty = &f
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *RecallPointMutation) Difficulty() (r float64, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds f to the "difficulty" field.
func (m *RecallPointMutation) AddDifficulty(f float64) {
	if m.adddifficulty != nil {
		*m.adddifficulty += f
	} else {
		m.adddifficulty = &f
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *RecallPointMutation) AddedDifficulty() (r float64, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *RecallPointMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetStability sets the "stability" field.
func (m *RecallPointMutation) SetStability(f float64) {
	m.stability = &f
	m.addstability = nil
}

// Stability returns the value of the "stability" field in the mutation.
func (m *RecallPointMutation) Stability() (r float64, exists bool) {
	v := m.stability
	if v == nil {
		return
	}
	return *v, true
}

// OldStability returns the old "stability" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldStability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStability: %w", err)
	}
	return oldValue.Stability, nil
}

// AddStability adds f to the "stability" field.
func (m *RecallPointMutation) AddStability(f float64) {
	if m.addstability != nil {
		*m.addstability += f
	} else {
		m.addstability = &f
	}
}

// AddedStability returns the value that was added to the "stability" field in this mutation.
func (m *RecallPointMutation) AddedStability() (r float64, exists bool) {
	v := m.addstability
	if v == nil {
		return
	}
	return *v, true
}

// ResetStability resets all changes to the "stability" field.
func (m *RecallPointMutation) ResetStability() {
	m.stability = nil
	m.addstability = nil
}

// SetDue sets the "due" field.
func (m *RecallPointMutation) SetDue(t time.Time) {
	m.due = &t
}

// Due returns the value of the "due" field in the mutation.
func (m *RecallPointMutation) Due() (r time.Time, exists bool) {
	v := m.due
	if v == nil {
		return
	}
	return *v, true
}

// OldDue returns the old "due" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldDue(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDue: %w", err)
	}
	return oldValue.Due, nil
}

// ResetDue resets all changes to the "due" field.
func (m *RecallPointMutation) ResetDue() {
	m.due = nil
}

// SetLastReview sets the "last_review" field.
func (m *RecallPointMutation) SetLastReview(t time.Time) {
	m.last_review = &t
}

// LastReview returns the value of the "last_review" field in the mutation.
func (m *RecallPointMutation) LastReview() (r time.Time, exists bool) {
	v := m.last_review
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReview returns the old "last_review" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldLastReview(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReview: %w", err)
	}
	return oldValue.LastReview, nil
}

// ClearLastReview clears the value of the "last_review" field.
func (m *RecallPointMutation) ClearLastReview() {
	m.last_review = nil
	m.clearedFields[recallpoint.FieldLastReview] = struct{}{}
}

// LastReviewCleared returns if the "last_review" field was cleared in this mutation.
func (m *RecallPointMutation) LastReviewCleared() bool {
	_, ok := m.clearedFields[recallpoint.FieldLastReview]
	return ok
}

// ResetLastReview resets all changes to the "last_review" field.
func (m *RecallPointMutation) ResetLastReview() {
	m.last_review = nil
	delete(m.clearedFields, recallpoint.FieldLastReview)
}

// SetReps sets the "reps" field.
func (m *RecallPointMutation) SetReps(i int) {
	m.reps = &i
	m.addreps = nil
}

// Reps returns the value of the "reps" field in the mutation.
func (m *RecallPointMutation) Reps() (r int, exists bool) {
	v := m.reps
	if v == nil {
		return
	}
	return *v, true
}

// OldReps returns the old "reps" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldReps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReps: %w", err)
	}
	return oldValue.Reps, nil
}

// AddReps adds i to the "reps" field.
func (m *RecallPointMutation) AddReps(i int) {
	if m.addreps != nil {
		*m.addreps += i
	} else {
		m.addreps = &i
	}
}

// AddedReps returns the value that was added to the "reps" field in this mutation.
func (m *RecallPointMutation) AddedReps() (r int, exists bool) {
	v := m.addreps
	if v == nil {
		return
	}
	return *v, true
}

// ResetReps resets all changes to the "reps" field.
func (m *RecallPointMutation) ResetReps() {
	m.reps = nil
	m.addreps = nil
}

// SetLapses sets the "lapses" field.
func (m *RecallPointMutation) SetLapses(i int) {
	m.lapses = &i
	m.addlapses = nil
}

// Lapses returns the value of the "lapses" field in the mutation.
func (m *RecallPointMutation) Lapses() (r int, exists bool) {
	v := m.lapses
	if v == nil {
		return
	}
	return *v, true
}

// OldLapses returns the old "lapses" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldLapses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLapses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLapses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLapses: %w", err)
	}
	return oldValue.Lapses, nil
}

// AddLapses adds i to the "lapses" field.
func (m *RecallPointMutation) AddLapses(i int) {
	if m.addlapses != nil {
		*m.addlapses += i
	} else {
		m.addlapses = &i
	}
}

// AddedLapses returns the value that was added to the "lapses" field in this mutation.
func (m *RecallPointMutation) AddedLapses() (r int, exists bool) {
	v := m.addlapses
	if v == nil {
		return
	}
	return *v, true
}

// ResetLapses resets all changes to the "lapses" field.
func (m *RecallPointMutation) ResetLapses() {
	m.lapses = nil
	m.addlapses = nil
}

// SetState sets the "state" field.
func (m *RecallPointMutation) SetState(r recallpoint.State) {
	m.state = &r
}

// State returns the value of the "state" field in the mutation.
func (m *RecallPointMutation) State() (r recallpoint.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldState(ctx context.Context) (v recallpoint.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *RecallPointMutation) ResetState() {
	m.state = nil
}

// SetRecallHistory sets the "recall_history" field.
func (m *RecallPointMutation) SetRecallHistory(value []map[string]interface{}) {
	m.recall_history = &value
	m.appendrecall_history = nil
}

// RecallHistory returns the value of the "recall_history" field in the mutation.
func (m *RecallPointMutation) RecallHistory() (r []map[string]interface{}, exists bool) {
	v := m.recall_history
	if v == nil {
		return
	}
	return *v, true
}

// OldRecallHistory returns the old "recall_history" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldRecallHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecallHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecallHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecallHistory: %w", err)
	}
	return oldValue.RecallHistory, nil
}

// AppendRecallHistory adds value to the "recall_history" field.
func (m *RecallPointMutation) AppendRecallHistory(value []map[string]interface{}) {
	m.appendrecall_history = append(m.appendrecall_history, value...)
}

// AppendedRecallHistory returns the list of values that were appended to the "recall_history" field in this mutation.
func (m *RecallPointMutation) AppendedRecallHistory() ([]map[string]interface{}, bool) {
	if len(m.appendrecall_history) == 0 {
		return nil, false
	}
	return m.appendrecall_history, true
}

// ClearRecallHistory clears the value of the "recall_history" field.
func (m *RecallPointMutation) ClearRecallHistory() {
	m.recall_history = nil
	m.appendrecall_history = nil
	m.clearedFields[recallpoint.FieldRecallHistory] = struct{}{}
}

// RecallHistoryCleared returns if the "recall_history" field was cleared in this mutation.
func (m *RecallPointMutation) RecallHistoryCleared() bool {
	_, ok := m.clearedFields[recallpoint.FieldRecallHistory]
	return ok
}

// ResetRecallHistory resets all changes to the "recall_history" field.
func (m *RecallPointMutation) ResetRecallHistory() {
	m.recall_history = nil
	m.appendrecall_history = nil
	delete(m.clearedFields, recallpoint.FieldRecallHistory)
}

// SetCreatedAt sets the "created_at" field.
func (m *RecallPointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecallPointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RecallPointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecallPointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecallPointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecallPointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRecallSet clears the "recall_set" edge to the RecallSet entity.
func (m *RecallPointMutation) ClearRecallSet() {
	m.clearedrecall_set = true
	m.clearedFields[recallpoint.FieldRecallSetID] = struct{}{}
}

// RecallSetCleared reports if the "recall_set" edge to the RecallSet entity was cleared.
func (m *RecallPointMutation) RecallSetCleared() bool {
	return m.clearedrecall_set
}

// RecallSetIDs returns the "recall_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecallSetID instead. It exists only for internal usage by the builders.
func (m *RecallPointMutation) RecallSetIDs() (ids []string) {
	if id := m.recall_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecallSet resets all changes to the "recall_set" edge.
func (m *RecallPointMutation) ResetRecallSet() {
	m.recall_set = nil
	m.clearedrecall_set = false
}

// AddOutcomeIDs adds the "outcomes" edge to the RecallOutcome entity by ids.
func (m *RecallPointMutation) AddOutcomeIDs(ids ...string) {
	if m.outcomes == nil {
		m.outcomes = make(map[string]struct{})
	}
	for i := range ids {
		m.outcomes[ids[i]] = struct{}{}
	}
}

// ClearOutcomes clears the "outcomes" edge to the RecallOutcome entity.
func (m *RecallPointMutation) ClearOutcomes() {
	m.clearedoutcomes = true
}

// OutcomesCleared reports if the "outcomes" edge to the RecallOutcome entity was cleared.
func (m *RecallPointMutation) OutcomesCleared() bool {
	return m.clearedoutcomes
}

// RemoveOutcomeIDs removes the "outcomes" edge to the RecallOutcome entity by IDs.
func (m *RecallPointMutation) RemoveOutcomeIDs(ids ...string) {
	if m.removedoutcomes == nil {
		m.removedoutcomes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outcomes, ids[i])
		m.removedoutcomes[ids[i]] = struct{}{}
	}
}

// RemovedOutcomes returns the removed IDs of the "outcomes" edge to the RecallOutcome entity.
func (m *RecallPointMutation) RemovedOutcomesIDs() (ids []string) {
	for id := range m.removedoutcomes {
		ids = append(ids, id)
	}
	return
}

// OutcomesIDs returns the "outcomes" edge IDs in the mutation.
func (m *RecallPointMutation) OutcomesIDs() (ids []string) {
	for id := range m.outcomes {
		ids = append(ids, id)
	}
	return
}

// ResetOutcomes resets all changes to the "outcomes" edge.
func (m *RecallPointMutation) ResetOutcomes() {
	m.outcomes = nil
	m.clearedoutcomes = false
	m.removedoutcomes = nil
}

// Where appends a list predicates to the RecallPointMutation builder.
func (m *RecallPointMutation) Where(ps ...predicate.RecallPoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecallPointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecallPointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecallPoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecallPointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecallPointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecallPoint).
func (m *RecallPointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecallPointMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.recall_set != nil {
		fields = append(fields, recallpoint.FieldRecallSetID)
	}
	if m.content != nil {
		fields = append(fields, recallpoint.FieldContent)
	}
	if m.context != nil {
		fields = append(fields, recallpoint.FieldContext)
	}
	if m.difficulty != nil {
		fields = append(fields, recallpoint.FieldDifficulty)
	}
	if m.stability != nil {
		fields = append(fields, recallpoint.FieldStability)
	}
	if m.due != nil {
		fields = append(fields, recallpoint.FieldDue)
	}
	if m.last_review != nil {
		fields = append(fields, recallpoint.FieldLastReview)
	}
	if m.reps != nil {
		fields = append(fields, recallpoint.FieldReps)
	}
	if m.lapses != nil {
		fields = append(fields, recallpoint.FieldLapses)
	}
	if m.state != nil {
		fields = append(fields, recallpoint.FieldState)
	}
	if m.recall_history != nil {
		fields = append(fields, recallpoint.FieldRecallHistory)
	}
	if m.created_at != nil {
		fields = append(fields, recallpoint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recallpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecallPointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recallpoint.FieldRecallSetID:
		return m.RecallSetID()
	case recallpoint.FieldContent:
		return m.Content()
	case recallpoint.FieldContext:
		return m.Context()
	case recallpoint.FieldDifficulty:
		return m.Difficulty()
	case recallpoint.FieldStability:
		return m.Stability()
	case recallpoint.FieldDue:
		return m.Due()
	case recallpoint.FieldLastReview:
		return m.LastReview()
	case recallpoint.FieldReps:
		return m.Reps()
	case recallpoint.FieldLapses:
		return m.Lapses()
	case recallpoint.FieldState:
		return m.State()
	case recallpoint.FieldRecallHistory:
		return m.RecallHistory()
	case recallpoint.FieldCreatedAt:
		return m.CreatedAt()
	case recallpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecallPointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recallpoint.FieldRecallSetID:
		return m.OldRecallSetID(ctx)
	case recallpoint.FieldContent:
		return m.OldContent(ctx)
	case recallpoint.FieldContext:
		return m.OldContext(ctx)
	case recallpoint.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case recallpoint.FieldStability:
		return m.OldStability(ctx)
	case recallpoint.FieldDue:
		return m.OldDue(ctx)
	case recallpoint.FieldLastReview:
		return m.OldLastReview(ctx)
	case recallpoint.FieldReps:
		return m.OldReps(ctx)
	case recallpoint.FieldLapses:
		return m.OldLapses(ctx)
	case recallpoint.FieldState:
		return m.OldState(ctx)
	case recallpoint.FieldRecallHistory:
		return m.OldRecallHistory(ctx)
	case recallpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recallpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RecallPoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallPointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recallpoint.FieldRecallSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecallSetID(v)
		return nil
	case recallpoint.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case recallpoint.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case recallpoint.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case recallpoint.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStability(v)
		return nil
	case recallpoint.FieldDue:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDue(v)
		return nil
	case recallpoint.FieldLastReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReview(v)
		return nil
	case recallpoint.FieldReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReps(v)
		return nil
	case recallpoint.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLapses(v)
		return nil
	case recallpoint.FieldState:
		v, ok := value.(recallpoint.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case recallpoint.FieldRecallHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecallHistory(v)
		return nil
	case recallpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recallpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RecallPoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecallPointMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, recallpoint.FieldDifficulty)
	}
	if m.addstability != nil {
		fields = append(fields, recallpoint.FieldStability)
	}
	if m.addreps != nil {
		fields = append(fields, recallpoint.FieldReps)
	}
	if m.addlapses != nil {
		fields = append(fields, recallpoint.FieldLapses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecallPointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recallpoint.FieldDifficulty:
		return m.AddedDifficulty()
	case recallpoint.FieldStability:
		return m.AddedStability()
	case recallpoint.FieldReps:
		return m.AddedReps()
	case recallpoint.FieldLapses:
		return m.AddedLapses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallPointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recallpoint.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case recallpoint.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStability(v)
		return nil
	case recallpoint.FieldReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReps(v)
		return nil
	case recallpoint.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLapses(v)
		return nil
	}
	return fmt.Errorf("unknown RecallPoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecallPointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recallpoint.FieldLastReview) {
		fields = append(fields, recallpoint.FieldLastReview)
	}
	if m.FieldCleared(recallpoint.FieldRecallHistory) {
		fields = append(fields, recallpoint.FieldRecallHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecallPointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecallPointMutation) ClearField(name string) error {
	switch name {
	case recallpoint.FieldLastReview:
		m.ClearLastReview()
		return nil
	case recallpoint.FieldRecallHistory:
		m.ClearRecallHistory()
		return nil
	}
	return fmt.Errorf("unknown RecallPoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecallPointMutation) ResetField(name string) error {
	switch name {
	case recallpoint.FieldRecallSetID:
		m.ResetRecallSetID()
		return nil
	case recallpoint.FieldContent:
		m.ResetContent()
		return nil
	case recallpoint.FieldContext:
		m.ResetContext()
		return nil
	case recallpoint.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case recallpoint.FieldStability:
		m.ResetStability()
		return nil
	case recallpoint.FieldDue:
		m.ResetDue()
		return nil
	case recallpoint.FieldLastReview:
		m.ResetLastReview()
		return nil
	case recallpoint.FieldReps:
		m.ResetReps()
		return nil
	case recallpoint.FieldLapses:
		m.ResetLapses()
		return nil
	case recallpoint.FieldState:
		m.ResetState()
		return nil
	case recallpoint.FieldRecallHistory:
		m.ResetRecallHistory()
		return nil
	case recallpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recallpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RecallPoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecallPointMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.recall_set != nil {
		edges = append(edges, recallpoint.EdgeRecallSet)
	}
	if m.outcomes != nil {
		edges = append(edges, recallpoint.EdgeOutcomes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecallPointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recallpoint.EdgeRecallSet:
		if id := m.recall_set; id != nil {
			return []ent.Value{*id}
		}
	case recallpoint.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.outcomes))
		for id := range m.outcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecallPointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedoutcomes != nil {
		edges = append(edges, recallpoint.EdgeOutcomes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecallPointMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recallpoint.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.removedoutcomes))
		for id := range m.removedoutcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecallPointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrecall_set {
		edges = append(edges, recallpoint.EdgeRecallSet)
	}
	if m.clearedoutcomes {
		edges = append(edges, recallpoint.EdgeOutcomes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecallPointMutation) EdgeCleared(name string) bool {
	switch name {
	case recallpoint.EdgeRecallSet:
		return m.clearedrecall_set
	case recallpoint.EdgeOutcomes:
		return m.clearedoutcomes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecallPointMutation) ClearEdge(name string) error {
	switch name {
	case recallpoint.EdgeRecallSet:
		m.ClearRecallSet()
		return nil
	}
	return fmt.Errorf("unknown RecallPoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecallPointMutation) ResetEdge(name string) error {
	switch name {
	case recallpoint.EdgeRecallSet:
		m.ResetRecallSet()
		return nil
	case recallpoint.EdgeOutcomes:
		m.ResetOutcomes()
		return nil
	}
	return fmt.Errorf("unknown RecallPoint edge %s", name)
}

// RecallSetMutation represents an operation that mutates the RecallSet nodes in the graph.
type RecallSetMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	description       *string
	status            *recallset.Status
	discussion_prompt *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	points            map[string]struct{}
	removedpoints     map[string]struct{}
	clearedpoints     bool
	sessions          map[string]struct{}
	removedsessions   map[string]struct{}
	clearedsessions   bool
	done              bool
	oldValue          func(context.Context) (*RecallSet, error)
	predicates        []predicate.RecallSet
}

var _ ent.Mutation = (*RecallSetMutation)(nil)

// recallsetOption allows management of the mutation configuration using functional options.
type recallsetOption func(*RecallSetMutation)

// newRecallSetMutation creates new mutation for the RecallSet entity.
func newRecallSetMutation(c config, op Op, opts ...recallsetOption) *RecallSetMutation {
	m := &RecallSetMutation{
		config:        c,
		op:            op,
		typ:           TypeRecallSet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecallSetID sets the ID field of the mutation.
func withRecallSetID(id string) recallsetOption {
	return func(m *RecallSetMutation) {
		var (
			err   error
			once  sync.Once
			value *RecallSet
		)
		m.oldValue = func(ctx context.Context) (*RecallSet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecallSet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecallSet sets the old RecallSet of the mutation.
func withRecallSet(node *RecallSet) recallsetOption {
	return func(m *RecallSetMutation) {
		m.oldValue = func(context.Context) (*RecallSet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecallSetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecallSetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecallSet entities.
func (m *RecallSetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecallSetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecallSetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecallSet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RecallSetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RecallSetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RecallSetMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *RecallSetMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RecallSetMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *RecallSetMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *RecallSetMutation) SetStatus(r recallset.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RecallSetMutation) Status() (r recallset.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldStatus(ctx context.Context) (v recallset.Status, err error) {
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
func (m *RecallSetMutation) ResetStatus() {
	m.status = nil
}

// SetDiscussionPrompt sets the "discussion_prompt" field.
func (m *RecallSetMutation) SetDiscussionPrompt(s string) {
	m.discussion_prompt = &s
}

// DiscussionPrompt returns the value of the "discussion_prompt" field in the mutation.
func (m *RecallSetMutation) DiscussionPrompt() (r string, exists bool) {
	v := m.discussion_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscussionPrompt returns the old "discussion_prompt" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldDiscussionPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscussionPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscussionPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscussionPrompt: %w", err)
	}
	return oldValue.DiscussionPrompt, nil
}

// ClearDiscussionPrompt clears the value of the "discussion_prompt" field.
func (m *RecallSetMutation) ClearDiscussionPrompt() {
	m.discussion_prompt = nil
	m.clearedFields[recallset.FieldDiscussionPrompt] = struct{}{}
}

// DiscussionPromptCleared returns if the "discussion_prompt" field was cleared in this mutation.
func (m *RecallSetMutation) DiscussionPromptCleared() bool {
	_, ok := m.clearedFields[recallset.FieldDiscussionPrompt]
	return ok
}

// ResetDiscussionPrompt resets all changes to the "discussion_prompt" field.
func (m *RecallSetMutation) ResetDiscussionPrompt() {
	m.discussion_prompt = nil
	delete(m.clearedFields, recallset.FieldDiscussionPrompt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RecallSetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecallSetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RecallSetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecallSetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecallSetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecallSetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPointIDs adds the "points" edge to the RecallPoint entity by ids.
func (m *RecallSetMutation) AddPointIDs(ids ...string) {
	if m.points == nil {
		m.points = make(map[string]struct{})
	}
	for i := range ids {
		m.points[ids[i]] = struct{}{}
	}
}

// ClearPoints clears the "points" edge to the RecallPoint entity.
func (m *RecallSetMutation) ClearPoints() {
	m.clearedpoints = true
}

// PointsCleared reports if the "points" edge to the RecallPoint entity was cleared.
func (m *RecallSetMutation) PointsCleared() bool {
	return m.clearedpoints
}

// RemovePointIDs removes the "points" edge to the RecallPoint entity by IDs.
func (m *RecallSetMutation) RemovePointIDs(ids ...string) {
	if m.removedpoints == nil {
		m.removedpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.points, ids[i])
		m.removedpoints[ids[i]] = struct{}{}
	}
}

// RemovedPoints returns the removed IDs of the "points" edge to the RecallPoint entity.
func (m *RecallSetMutation) RemovedPointsIDs() (ids []string) {
	for id := range m.removedpoints {
		ids = append(ids, id)
	}
	return
}

// PointsIDs returns the "points" edge IDs in the mutation.
func (m *RecallSetMutation) PointsIDs() (ids []string) {
	for id := range m.points {
		ids = append(ids, id)
	}
	return
}

// ResetPoints resets all changes to the "points" edge.
func (m *RecallSetMutation) ResetPoints() {
	m.points = nil
	m.clearedpoints = false
	m.removedpoints = nil
}

// AddSessionIDs adds the "sessions" edge to the StudySession entity by ids.
func (m *RecallSetMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the StudySession entity.
func (m *RecallSetMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the StudySession entity was cleared.
func (m *RecallSetMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the StudySession entity by IDs.
func (m *RecallSetMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the StudySession entity.
func (m *RecallSetMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *RecallSetMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *RecallSetMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the RecallSetMutation builder.
func (m *RecallSetMutation) Where(ps ...predicate.RecallSet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecallSetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecallSetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecallSet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecallSetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecallSetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecallSet).
func (m *RecallSetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecallSetMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, recallset.FieldName)
	}
	if m.description != nil {
		fields = append(fields, recallset.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, recallset.FieldStatus)
	}
	if m.discussion_prompt != nil {
		fields = append(fields, recallset.FieldDiscussionPrompt)
	}
	if m.created_at != nil {
		fields = append(fields, recallset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recallset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecallSetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recallset.FieldName:
		return m.Name()
	case recallset.FieldDescription:
		return m.Description()
	case recallset.FieldStatus:
		return m.Status()
	case recallset.FieldDiscussionPrompt:
		return m.DiscussionPrompt()
	case recallset.FieldCreatedAt:
		return m.CreatedAt()
	case recallset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecallSetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recallset.FieldName:
		return m.OldName(ctx)
	case recallset.FieldDescription:
		return m.OldDescription(ctx)
	case recallset.FieldStatus:
		return m.OldStatus(ctx)
	case recallset.FieldDiscussionPrompt:
		return m.OldDiscussionPrompt(ctx)
	case recallset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recallset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RecallSet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallSetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recallset.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case recallset.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case recallset.FieldStatus:
		v, ok := value.(recallset.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recallset.FieldDiscussionPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscussionPrompt(v)
		return nil
	case recallset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recallset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RecallSet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecallSetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecallSetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallSetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RecallSet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecallSetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recallset.FieldDiscussionPrompt) {
		fields = append(fields, recallset.FieldDiscussionPrompt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecallSetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecallSetMutation) ClearField(name string) error {
	switch name {
	case recallset.FieldDiscussionPrompt:
		m.ClearDiscussionPrompt()
		return nil
	}
	return fmt.Errorf("unknown RecallSet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecallSetMutation) ResetField(name string) error {
	switch name {
	case recallset.FieldName:
		m.ResetName()
		return nil
	case recallset.FieldDescription:
		m.ResetDescription()
		return nil
	case recallset.FieldStatus:
		m.ResetStatus()
		return nil
	case recallset.FieldDiscussionPrompt:
		m.ResetDiscussionPrompt()
		return nil
	case recallset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recallset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RecallSet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecallSetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.points != nil {
		edges = append(edges, recallset.EdgePoints)
	}
	if m.sessions != nil {
		edges = append(edges, recallset.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecallSetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recallset.EdgePoints:
		ids := make([]ent.Value, 0, len(m.points))
		for id := range m.points {
			ids = append(ids, id)
		}
		return ids
	case recallset.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecallSetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpoints != nil {
		edges = append(edges, recallset.EdgePoints)
	}
	if m.removedsessions != nil {
		edges = append(edges, recallset.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecallSetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recallset.EdgePoints:
		ids := make([]ent.Value, 0, len(m.removedpoints))
		for id := range m.removedpoints {
			ids = append(ids, id)
		}
		return ids
	case recallset.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecallSetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpoints {
		edges = append(edges, recallset.EdgePoints)
	}
	if m.clearedsessions {
		edges = append(edges, recallset.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecallSetMutation) EdgeCleared(name string) bool {
	switch name {
	case recallset.EdgePoints:
		return m.clearedpoints
	case recallset.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecallSetMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RecallSet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecallSetMutation) ResetEdge(name string) error {
	switch name {
	case recallset.EdgePoints:
		m.ResetPoints()
		return nil
	case recallset.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown RecallSet edge %s", name)
}

// SessionMessageMutation represents an operation that mutates the SessionMessage nodes in the graph.
type SessionMessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	sequence_number    *int
	addsequence_number *int
	role               *sessionmessage.Role
	content            *string
	token_count        *int
	addtoken_count     *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	done               bool
	oldValue           func(context.Context) (*SessionMessage, error)
	predicates         []predicate.SessionMessage
}

var _ ent.Mutation = (*SessionMessageMutation)(nil)

// sessionmessageOption allows management of the mutation configuration using functional options.
type sessionmessageOption func(*SessionMessageMutation)

// newSessionMessageMutation creates new mutation for the SessionMessage entity.
func newSessionMessageMutation(c config, op Op, opts ...sessionmessageOption) *SessionMessageMutation {
	m := &SessionMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionMessageID sets the ID field of the mutation.
func withSessionMessageID(id string) sessionmessageOption {
	return func(m *SessionMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionMessage
		)
		m.oldValue = func(ctx context.Context) (*SessionMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionMessage sets the old SessionMessage of the mutation.
func withSessionMessage(node *SessionMessage) sessionmessageOption {
	return func(m *SessionMessageMutation) {
		m.oldValue = func(context.Context) (*SessionMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionMessage entities.
func (m *SessionMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *SessionMessageMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *SessionMessageMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *SessionMessageMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *SessionMessageMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *SessionMessageMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetRole sets the "role" field.
func (m *SessionMessageMutation) SetRole(s sessionmessage.Role) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *SessionMessageMutation) Role() (r sessionmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldRole(ctx context.Context) (v sessionmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *SessionMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *SessionMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SessionMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SessionMessageMutation) ResetContent() {
	m.content = nil
}

// SetTokenCount sets the "token_count" field.
func (m *SessionMessageMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *SessionMessageMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldTokenCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *SessionMessageMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *SessionMessageMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokenCount clears the value of the "token_count" field.
func (m *SessionMessageMutation) ClearTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	m.clearedFields[sessionmessage.FieldTokenCount] = struct{}{}
}

// TokenCountCleared returns if the "token_count" field was cleared in this mutation.
func (m *SessionMessageMutation) TokenCountCleared() bool {
	_, ok := m.clearedFields[sessionmessage.FieldTokenCount]
	return ok
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *SessionMessageMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	delete(m.clearedFields, sessionmessage.FieldTokenCount)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the StudySession entity.
func (m *SessionMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the StudySession entity was cleared.
func (m *SessionMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionMessageMutation builder.
func (m *SessionMessageMutation) Where(ps ...predicate.SessionMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionMessage).
func (m *SessionMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session != nil {
		fields = append(fields, sessionmessage.FieldSessionID)
	}
	if m.sequence_number != nil {
		fields = append(fields, sessionmessage.FieldSequenceNumber)
	}
	if m.role != nil {
		fields = append(fields, sessionmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, sessionmessage.FieldContent)
	}
	if m.token_count != nil {
		fields = append(fields, sessionmessage.FieldTokenCount)
	}
	if m.created_at != nil {
		fields = append(fields, sessionmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionmessage.FieldSessionID:
		return m.SessionID()
	case sessionmessage.FieldSequenceNumber:
		return m.SequenceNumber()
	case sessionmessage.FieldRole:
		return m.Role()
	case sessionmessage.FieldContent:
		return m.Content()
	case sessionmessage.FieldTokenCount:
		return m.TokenCount()
	case sessionmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionmessage.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case sessionmessage.FieldRole:
		return m.OldRole(ctx)
	case sessionmessage.FieldContent:
		return m.OldContent(ctx)
	case sessionmessage.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case sessionmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionmessage.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case sessionmessage.FieldRole:
		v, ok := value.(sessionmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case sessionmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case sessionmessage.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case sessionmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, sessionmessage.FieldSequenceNumber)
	}
	if m.addtoken_count != nil {
		fields = append(fields, sessionmessage.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionmessage.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	case sessionmessage.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionmessage.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	case sessionmessage.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionmessage.FieldTokenCount) {
		fields = append(fields, sessionmessage.FieldTokenCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMessageMutation) ClearField(name string) error {
	switch name {
	case sessionmessage.FieldTokenCount:
		m.ClearTokenCount()
		return nil
	}
	return fmt.Errorf("unknown SessionMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMessageMutation) ResetField(name string) error {
	switch name {
	case sessionmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionmessage.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case sessionmessage.FieldRole:
		m.ResetRole()
		return nil
	case sessionmessage.FieldContent:
		m.ResetContent()
		return nil
	case sessionmessage.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case sessionmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMessageMutation) ClearEdge(name string) error {
	switch name {
	case sessionmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMessageMutation) ResetEdge(name string) error {
	switch name {
	case sessionmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionMessage edge %s", name)
}

// SessionMetricsMutation represents an operation that mutates the SessionMetrics nodes in the graph.
type SessionMetricsMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	total_duration_ms            *int64
	addtotal_duration_ms         *int64
	active_duration_ms           *int64
	addactive_duration_ms        *int64
	avg_user_response_ms         *int64
	addavg_user_response_ms      *int64
	avg_assistant_response_ms    *int64
	addavg_assistant_response_ms *int64
	points_attempted             *int
	addpoints_attempted          *int
	points_successful            *int
	addpoints_successful         *int
	points_failed                *int
	addpoints_failed             *int
	recall_rate                  *float64
	addrecall_rate               *float64
	avg_confidence               *float64
	addavg_confidence            *float64
	user_messages                *int
	adduser_messages             *int
	assistant_messages           *int
	addassistant_messages        *int
	total_messages               *int
	addtotal_messages            *int
	rabbithole_count             *int
	addrabbithole_count          *int
	rabbithole_duration_ms       *int64
	addrabbithole_duration_ms    *int64
	rabbithole_avg_depth         *float64
	addrabbithole_avg_depth      *float64
	input_tokens                 *int
	addinput_tokens              *int
	output_tokens                *int
	addoutput_tokens             *int
	estimated_cost_usd           *float64
	addestimated_cost_usd        *float64
	engagement_score             *float64
	addengagement_score          *float64
	created_at                   *time.Time
	clearedFields                map[string]struct{}
	session                      *string
	clearedsession               bool
	done                         bool
	oldValue                     func(context.Context) (*SessionMetrics, error)
	predicates                   []predicate.SessionMetrics
}

var _ ent.Mutation = (*SessionMetricsMutation)(nil)

// sessionmetricsOption allows management of the mutation configuration using functional options.
type sessionmetricsOption func(*SessionMetricsMutation)

// newSessionMetricsMutation creates new mutation for the SessionMetrics entity.
func newSessionMetricsMutation(c config, op Op, opts ...sessionmetricsOption) *SessionMetricsMutation {
	m := &SessionMetricsMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionMetrics,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionMetricsID sets the ID field of the mutation.
func withSessionMetricsID(id string) sessionmetricsOption {
	return func(m *SessionMetricsMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionMetrics
		)
		m.oldValue = func(ctx context.Context) (*SessionMetrics, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionMetrics.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionMetrics sets the old SessionMetrics of the mutation.
func withSessionMetrics(node *SessionMetrics) sessionmetricsOption {
	return func(m *SessionMetricsMutation) {
		m.oldValue = func(context.Context) (*SessionMetrics, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMetricsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMetricsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionMetrics entities.
func (m *SessionMetricsMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMetricsMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMetricsMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionMetrics.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionMetricsMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionMetricsMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionMetricsMutation) ResetSessionID() {
	m.session = nil
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (m *SessionMetricsMutation) SetTotalDurationMs(i int64) {
	m.total_duration_ms = &i
	m.addtotal_duration_ms = nil
}

// TotalDurationMs returns the value of the "total_duration_ms" field in the mutation.
func (m *SessionMetricsMutation) TotalDurationMs() (r int64, exists bool) {
	v := m.total_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDurationMs returns the old "total_duration_ms" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldTotalDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDurationMs: %w", err)
	}
	return oldValue.TotalDurationMs, nil
}

// AddTotalDurationMs adds i to the "total_duration_ms" field.
func (m *SessionMetricsMutation) AddTotalDurationMs(i int64) {
	if m.addtotal_duration_ms != nil {
		*m.addtotal_duration_ms += i
	} else {
		m.addtotal_duration_ms = &i
	}
}

// AddedTotalDurationMs returns the value that was added to the "total_duration_ms" field in this mutation.
func (m *SessionMetricsMutation) AddedTotalDurationMs() (r int64, exists bool) {
	v := m.addtotal_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalDurationMs resets all changes to the "total_duration_ms" field.
func (m *SessionMetricsMutation) ResetTotalDurationMs() {
	m.total_duration_ms = nil
	m.addtotal_duration_ms = nil
}

// SetActiveDurationMs sets the "active_duration_ms" field.
func (m *SessionMetricsMutation) SetActiveDurationMs(i int64) {
	m.active_duration_ms = &i
	m.addactive_duration_ms = nil
}

// ActiveDurationMs returns the value of the "active_duration_ms" field in the mutation.
func (m *SessionMetricsMutation) ActiveDurationMs() (r int64, exists bool) {
	v := m.active_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveDurationMs returns the old "active_duration_ms" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldActiveDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveDurationMs: %w", err)
	}
	return oldValue.ActiveDurationMs, nil
}

// AddActiveDurationMs adds i to the "active_duration_ms" field.
func (m *SessionMetricsMutation) AddActiveDurationMs(i int64) {
	if m.addactive_duration_ms != nil {
		*m.addactive_duration_ms += i
	} else {
		m.addactive_duration_ms = &i
	}
}

// AddedActiveDurationMs returns the value that was added to the "active_duration_ms" field in this mutation.
func (m *SessionMetricsMutation) AddedActiveDurationMs() (r int64, exists bool) {
	v := m.addactive_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveDurationMs resets all changes to the "active_duration_ms" field.
func (m *SessionMetricsMutation) ResetActiveDurationMs() {
	m.active_duration_ms = nil
	m.addactive_duration_ms = nil
}

// SetAvgUserResponseMs sets the "avg_user_response_ms" field.
func (m *SessionMetricsMutation) SetAvgUserResponseMs(i int64) {
	m.avg_user_response_ms = &i
	m.addavg_user_response_ms = nil
}

// AvgUserResponseMs returns the value of the "avg_user_response_ms" field in the mutation.
func (m *SessionMetricsMutation) AvgUserResponseMs() (r int64, exists bool) {
	v := m.avg_user_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgUserResponseMs returns the old "avg_user_response_ms" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldAvgUserResponseMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgUserResponseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgUserResponseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgUserResponseMs: %w", err)
	}
	return oldValue.AvgUserResponseMs, nil
}

// AddAvgUserResponseMs adds i to the "avg_user_response_ms" field.
func (m *SessionMetricsMutation) AddAvgUserResponseMs(i int64) {
	if m.addavg_user_response_ms != nil {
		*m.addavg_user_response_ms += i
	} else {
		m.addavg_user_response_ms = &i
	}
}

// AddedAvgUserResponseMs returns the value that was added to the "avg_user_response_ms" field in this mutation.
func (m *SessionMetricsMutation) AddedAvgUserResponseMs() (r int64, exists bool) {
	v := m.addavg_user_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgUserResponseMs resets all changes to the "avg_user_response_ms" field.
func (m *SessionMetricsMutation) ResetAvgUserResponseMs() {
	m.avg_user_response_ms = nil
	m.addavg_user_response_ms = nil
}

// SetAvgAssistantResponseMs sets the "avg_assistant_response_ms" field.
func (m *SessionMetricsMutation) SetAvgAssistantResponseMs(i int64) {
	m.avg_assistant_response_ms = &i
	m.addavg_assistant_response_ms = nil
}

// AvgAssistantResponseMs returns the value of the "avg_assistant_response_ms" field in the mutation.
func (m *SessionMetricsMutation) AvgAssistantResponseMs() (r int64, exists bool) {
	v := m.avg_assistant_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgAssistantResponseMs returns the old "avg_assistant_response_ms" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldAvgAssistantResponseMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgAssistantResponseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgAssistantResponseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgAssistantResponseMs: %w", err)
	}
	return oldValue.AvgAssistantResponseMs, nil
}

// AddAvgAssistantResponseMs adds i to the "avg_assistant_response_ms" field.
func (m *SessionMetricsMutation) AddAvgAssistantResponseMs(i int64) {
	if m.addavg_assistant_response_ms != nil {
		*m.addavg_assistant_response_ms += i
	} else {
		m.addavg_assistant_response_ms = &i
	}
}

// AddedAvgAssistantResponseMs returns the value that was added to the "avg_assistant_response_ms" field in this mutation.
func (m *SessionMetricsMutation) AddedAvgAssistantResponseMs() (r int64, exists bool) {
	v := m.addavg_assistant_response_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgAssistantResponseMs resets all changes to the "avg_assistant_response_ms" field.
func (m *SessionMetricsMutation) ResetAvgAssistantResponseMs() {
	m.avg_assistant_response_ms = nil
	m.addavg_assistant_response_ms = nil
}

// SetPointsAttempted sets the "points_attempted" field.
func (m *SessionMetricsMutation) SetPointsAttempted(i int) {
	m.points_attempted = &i
	m.addpoints_attempted = nil
}

// PointsAttempted returns the value of the "points_attempted" field in the mutation.
func (m *SessionMetricsMutation) PointsAttempted() (r int, exists bool) {
	v := m.points_attempted
	if v == nil {
		return
	}
	return *v, true
}

// OldPointsAttempted returns the old "points_attempted" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldPointsAttempted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointsAttempted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointsAttempted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointsAttempted: %w", err)
	}
	return oldValue.PointsAttempted, nil
}

// AddPointsAttempted adds i to the "points_attempted" field.
func (m *SessionMetricsMutation) AddPointsAttempted(i int) {
	if m.addpoints_attempted != nil {
		*m.addpoints_attempted += i
	} else {
		m.addpoints_attempted = &i
	}
}

// AddedPointsAttempted returns the value that was added to the "points_attempted" field in this mutation.
func (m *SessionMetricsMutation) AddedPointsAttempted() (r int, exists bool) {
	v := m.addpoints_attempted
	if v == nil {
		return
	}
	return *v, true
}

// ResetPointsAttempted resets all changes to the "points_attempted" field.
func (m *SessionMetricsMutation) ResetPointsAttempted() {
	m.points_attempted = nil
	m.addpoints_attempted = nil
}

// SetPointsSuccessful sets the "points_successful" field.
func (m *SessionMetricsMutation) SetPointsSuccessful(i int) {
	m.points_successful = &i
	m.addpoints_successful = nil
}

// PointsSuccessful returns the value of the "points_successful" field in the mutation.
func (m *SessionMetricsMutation) PointsSuccessful() (r int, exists bool) {
	v := m.points_successful
	if v == nil {
		return
	}
	return *v, true
}

// OldPointsSuccessful returns the old "points_successful" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldPointsSuccessful(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointsSuccessful is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointsSuccessful requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointsSuccessful: %w", err)
	}
	return oldValue.PointsSuccessful, nil
}

// AddPointsSuccessful adds i to the "points_successful" field.
func (m *SessionMetricsMutation) AddPointsSuccessful(i int) {
	if m.addpoints_successful != nil {
		*m.addpoints_successful += i
	} else {
		m.addpoints_successful = &i
	}
}

// AddedPointsSuccessful returns the value that was added to the "points_successful" field in this mutation.
func (m *SessionMetricsMutation) AddedPointsSuccessful() (r int, exists bool) {
	v := m.addpoints_successful
	if v == nil {
		return
	}
	return *v, true
}

// ResetPointsSuccessful resets all changes to the "points_successful" field.
func (m *SessionMetricsMutation) ResetPointsSuccessful() {
	m.points_successful = nil
	m.addpoints_successful = nil
}

// SetPointsFailed sets the "points_failed" field.
func (m *SessionMetricsMutation) SetPointsFailed(i int) {
	m.points_failed = &i
	m.addpoints_failed = nil
}

// PointsFailed returns the value of the "points_failed" field in the mutation.
func (m *SessionMetricsMutation) PointsFailed() (r int, exists bool) {
	v := m.points_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldPointsFailed returns the old "points_failed" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldPointsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointsFailed: %w", err)
	}
	return oldValue.PointsFailed, nil
}

// AddPointsFailed adds i to the "points_failed" field.
func (m *SessionMetricsMutation) AddPointsFailed(i int) {
	if m.addpoints_failed != nil {
		*m.addpoints_failed += i
	} else {
		m.addpoints_failed = &i
	}
}

// AddedPointsFailed returns the value that was added to the "points_failed" field in this mutation.
func (m *SessionMetricsMutation) AddedPointsFailed() (r int, exists bool) {
	v := m.addpoints_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetPointsFailed resets all changes to the "points_failed" field.
func (m *SessionMetricsMutation) ResetPointsFailed() {
	m.points_failed = nil
	m.addpoints_failed = nil
}

// SetRecallRate sets the "recall_rate" field.
func (m *SessionMetricsMutation) SetRecallRate(f float64) {
	m.recall_rate = &f
	m.addrecall_rate = nil
}

// RecallRate returns the value of the "recall_rate" field in the mutation.
func (m *SessionMetricsMutation) RecallRate() (r float64, exists bool) {
	v := m.recall_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldRecallRate returns the old "recall_rate" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldRecallRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecallRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecallRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecallRate: %w", err)
	}
	return oldValue.RecallRate, nil
}

// AddRecallRate adds f to the "recall_rate" field.
func (m *SessionMetricsMutation) AddRecallRate(f float64) {
	if m.addrecall_rate != nil {
		*m.addrecall_rate += f
	} else {
		m.addrecall_rate = &f
	}
}

// AddedRecallRate returns the value that was added to the "recall_rate" field in this mutation.
func (m *SessionMetricsMutation) AddedRecallRate() (r float64, exists bool) {
	v := m.addrecall_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecallRate resets all changes to the "recall_rate" field.
func (m *SessionMetricsMutation) ResetRecallRate() {
	m.recall_rate = nil
	m.addrecall_rate = nil
}

// SetAvgConfidence sets the "avg_confidence" field.
func (m *SessionMetricsMutation) SetAvgConfidence(f float64) {
	m.avg_confidence = &f
	m.addavg_confidence = nil
}

// AvgConfidence returns the value of the "avg_confidence" field in the mutation.
func (m *SessionMetricsMutation) AvgConfidence() (r float64, exists bool) {
	v := m.avg_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgConfidence returns the old "avg_confidence" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldAvgConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgConfidence: %w", err)
	}
	return oldValue.AvgConfidence, nil
}

// AddAvgConfidence adds f to the "avg_confidence" field.
func (m *SessionMetricsMutation) AddAvgConfidence(f float64) {
	if m.addavg_confidence != nil {
		*m.addavg_confidence += f
	} else {
		m.addavg_confidence = &f
	}
}

// AddedAvgConfidence returns the value that was added to the "avg_confidence" field in this mutation.
func (m *SessionMetricsMutation) AddedAvgConfidence() (r float64, exists bool) {
	v := m.addavg_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgConfidence resets all changes to the "avg_confidence" field.
func (m *SessionMetricsMutation) ResetAvgConfidence() {
	m.avg_confidence = nil
	m.addavg_confidence = nil
}

// SetUserMessages sets the "user_messages" field.
func (m *SessionMetricsMutation) SetUserMessages(i int) {
	m.user_messages = &i
	m.adduser_messages = nil
}

// UserMessages returns the value of the "user_messages" field in the mutation.
func (m *SessionMetricsMutation) UserMessages() (r int, exists bool) {
	v := m.user_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldUserMessages returns the old "user_messages" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldUserMessages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserMessages: %w", err)
	}
	return oldValue.UserMessages, nil
}

// AddUserMessages adds i to the "user_messages" field.
func (m *SessionMetricsMutation) AddUserMessages(i int) {
	if m.adduser_messages != nil {
		*m.adduser_messages += i
	} else {
		m.adduser_messages = &i
	}
}

// AddedUserMessages returns the value that was added to the "user_messages" field in this mutation.
func (m *SessionMetricsMutation) AddedUserMessages() (r int, exists bool) {
	v := m.adduser_messages
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserMessages resets all changes to the "user_messages" field.
func (m *SessionMetricsMutation) ResetUserMessages() {
	m.user_messages = nil
	m.adduser_messages = nil
}

// SetAssistantMessages sets the "assistant_messages" field.
func (m *SessionMetricsMutation) SetAssistantMessages(i int) {
	m.assistant_messages = &i
	m.addassistant_messages = nil
}

// AssistantMessages returns the value of the "assistant_messages" field in the mutation.
func (m *SessionMetricsMutation) AssistantMessages() (r int, exists bool) {
	v := m.assistant_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldAssistantMessages returns the old "assistant_messages" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldAssistantMessages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssistantMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssistantMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssistantMessages: %w", err)
	}
	return oldValue.AssistantMessages, nil
}

// AddAssistantMessages adds i to the "assistant_messages" field.
func (m *SessionMetricsMutation) AddAssistantMessages(i int) {
	if m.addassistant_messages != nil {
		*m.addassistant_messages += i
	} else {
		m.addassistant_messages = &i
	}
}

// AddedAssistantMessages returns the value that was added to the "assistant_messages" field in this mutation.
func (m *SessionMetricsMutation) AddedAssistantMessages() (r int, exists bool) {
	v := m.addassistant_messages
	if v == nil {
		return
	}
	return *v, true
}

// ResetAssistantMessages resets all changes to the "assistant_messages" field.
func (m *SessionMetricsMutation) ResetAssistantMessages() {
	m.assistant_messages = nil
	m.addassistant_messages = nil
}

// SetTotalMessages sets the "total_messages" field.
func (m *SessionMetricsMutation) SetTotalMessages(i int) {
	m.total_messages = &i
	m.addtotal_messages = nil
}

// TotalMessages returns the value of the "total_messages" field in the mutation.
func (m *SessionMetricsMutation) TotalMessages() (r int, exists bool) {
	v := m.total_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMessages returns the old "total_messages" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldTotalMessages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMessages: %w", err)
	}
	return oldValue.TotalMessages, nil
}

// AddTotalMessages adds i to the "total_messages" field.
func (m *SessionMetricsMutation) AddTotalMessages(i int) {
	if m.addtotal_messages != nil {
		*m.addtotal_messages += i
	} else {
		m.addtotal_messages = &i
	}
}

// AddedTotalMessages returns the value that was added to the "total_messages" field in this mutation.
func (m *SessionMetricsMutation) AddedTotalMessages() (r int, exists bool) {
	v := m.addtotal_messages
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMessages resets all changes to the "total_messages" field.
func (m *SessionMetricsMutation) ResetTotalMessages() {
	m.total_messages = nil
	m.addtotal_messages = nil
}

// SetRabbitholeCount sets the "rabbithole_count" field.
func (m *SessionMetricsMutation) SetRabbitholeCount(i int) {
	m.rabbithole_count = &i
	m.addrabbithole_count = nil
}

// RabbitholeCount returns the value of the "rabbithole_count" field in the mutation.
func (m *SessionMetricsMutation) RabbitholeCount() (r int, exists bool) {
	v := m.rabbithole_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRabbitholeCount returns the old "rabbithole_count" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldRabbitholeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRabbitholeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRabbitholeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRabbitholeCount: %w", err)
	}
	return oldValue.RabbitholeCount, nil
}

// AddRabbitholeCount adds i to the "rabbithole_count" field.
func (m *SessionMetricsMutation) AddRabbitholeCount(i int) {
	if m.addrabbithole_count != nil {
		*m.addrabbithole_count += i
	} else {
		m.addrabbithole_count = &i
	}
}

// AddedRabbitholeCount returns the value that was added to the "rabbithole_count" field in this mutation.
func (m *SessionMetricsMutation) AddedRabbitholeCount() (r int, exists bool) {
	v := m.addrabbithole_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRabbitholeCount resets all changes to the "rabbithole_count" field.
func (m *SessionMetricsMutation) ResetRabbitholeCount() {
	m.rabbithole_count = nil
	m.addrabbithole_count = nil
}

// SetRabbitholeDurationMs sets the "rabbithole_duration_ms" field.
func (m *SessionMetricsMutation) SetRabbitholeDurationMs(i int64) {
	m.rabbithole_duration_ms = &i
	m.addrabbithole_duration_ms = nil
}

// RabbitholeDurationMs returns the value of the "rabbithole_duration_ms" field in the mutation.
func (m *SessionMetricsMutation) RabbitholeDurationMs() (r int64, exists bool) {
	v := m.rabbithole_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldRabbitholeDurationMs returns the old "rabbithole_duration_ms" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldRabbitholeDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRabbitholeDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRabbitholeDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRabbitholeDurationMs: %w", err)
	}
	return oldValue.RabbitholeDurationMs, nil
}

// AddRabbitholeDurationMs adds i to the "rabbithole_duration_ms" field.
func (m *SessionMetricsMutation) AddRabbitholeDurationMs(i int64) {
	if m.addrabbithole_duration_ms != nil {
		*m.addrabbithole_duration_ms += i
	} else {
		m.addrabbithole_duration_ms = &i
	}
}

// AddedRabbitholeDurationMs returns the value that was added to the "rabbithole_duration_ms" field in this mutation.
func (m *SessionMetricsMutation) AddedRabbitholeDurationMs() (r int64, exists bool) {
	v := m.addrabbithole_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetRabbitholeDurationMs resets all changes to the "rabbithole_duration_ms" field.
func (m *SessionMetricsMutation) ResetRabbitholeDurationMs() {
	m.rabbithole_duration_ms = nil
	m.addrabbithole_duration_ms = nil
}

// SetRabbitholeAvgDepth sets the "rabbithole_avg_depth" field.
func (m *SessionMetricsMutation) SetRabbitholeAvgDepth(f float64) {
	m.rabbithole_avg_depth = &f
	m.addrabbithole_avg_depth = nil
}

// RabbitholeAvgDepth returns the value of the "rabbithole_avg_depth" field in the mutation.
func (m *SessionMetricsMutation) RabbitholeAvgDepth() (r float64, exists bool) {
	v := m.rabbithole_avg_depth
	if v == nil {
		return
	}
	return *v, true
}

// OldRabbitholeAvgDepth returns the old "rabbithole_avg_depth" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldRabbitholeAvgDepth(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRabbitholeAvgDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRabbitholeAvgDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRabbitholeAvgDepth: %w", err)
	}
	return oldValue.RabbitholeAvgDepth, nil
}

// AddRabbitholeAvgDepth adds f to the "rabbithole_avg_depth" field.
func (m *SessionMetricsMutation) AddRabbitholeAvgDepth(f float64) {
	if m.addrabbithole_avg_depth != nil {
		*m.addrabbithole_avg_depth += f
	} else {
		m.addrabbithole_avg_depth = &f
	}
}

// AddedRabbitholeAvgDepth returns the value that was added to the "rabbithole_avg_depth" field in this mutation.
func (m *SessionMetricsMutation) AddedRabbitholeAvgDepth() (r float64, exists bool) {
	v := m.addrabbithole_avg_depth
	if v == nil {
		return
	}
	return *v, true
}

// ResetRabbitholeAvgDepth resets all changes to the "rabbithole_avg_depth" field.
func (m *SessionMetricsMutation) ResetRabbitholeAvgDepth() {
	m.rabbithole_avg_depth = nil
	m.addrabbithole_avg_depth = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *SessionMetricsMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *SessionMetricsMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *SessionMetricsMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *SessionMetricsMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *SessionMetricsMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *SessionMetricsMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *SessionMetricsMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *SessionMetricsMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *SessionMetricsMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *SessionMetricsMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (m *SessionMetricsMutation) SetEstimatedCostUsd(f float64) {
	m.estimated_cost_usd = &f
	m.addestimated_cost_usd = nil
}

// EstimatedCostUsd returns the value of the "estimated_cost_usd" field in the mutation.
func (m *SessionMetricsMutation) EstimatedCostUsd() (r float64, exists bool) {
	v := m.estimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostUsd returns the old "estimated_cost_usd" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldEstimatedCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostUsd: %w", err)
	}
	return oldValue.EstimatedCostUsd, nil
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (m *SessionMetricsMutation) AddEstimatedCostUsd(f float64) {
	if m.addestimated_cost_usd != nil {
		*m.addestimated_cost_usd += f
	} else {
		m.addestimated_cost_usd = &f
	}
}

// AddedEstimatedCostUsd returns the value that was added to the "estimated_cost_usd" field in this mutation.
func (m *SessionMetricsMutation) AddedEstimatedCostUsd() (r float64, exists bool) {
	v := m.addestimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCostUsd resets all changes to the "estimated_cost_usd" field.
func (m *SessionMetricsMutation) ResetEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
}

// SetEngagementScore sets the "engagement_score" field.
func (m *SessionMetricsMutation) SetEngagementScore(f float64) {
	m.engagement_score = &f
	m.addengagement_score = nil
}

// EngagementScore returns the value of the "engagement_score" field in the mutation.
func (m *SessionMetricsMutation) EngagementScore() (r float64, exists bool) {
	v := m.engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementScore returns the old "engagement_score" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldEngagementScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementScore: %w", err)
	}
	return oldValue.EngagementScore, nil
}

// AddEngagementScore adds f to the "engagement_score" field.
func (m *SessionMetricsMutation) AddEngagementScore(f float64) {
	if m.addengagement_score != nil {
		*m.addengagement_score += f
	} else {
		m.addengagement_score = &f
	}
}

// AddedEngagementScore returns the value that was added to the "engagement_score" field in this mutation.
func (m *SessionMetricsMutation) AddedEngagementScore() (r float64, exists bool) {
	v := m.addengagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagementScore resets all changes to the "engagement_score" field.
func (m *SessionMetricsMutation) ResetEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMetricsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMetricsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMetricsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the StudySession entity.
func (m *SessionMetricsMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionmetrics.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the StudySession entity was cleared.
func (m *SessionMetricsMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionMetricsMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionMetricsMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionMetricsMutation builder.
func (m *SessionMetricsMutation) Where(ps ...predicate.SessionMetrics) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMetricsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMetricsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionMetrics, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMetricsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMetricsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionMetrics).
func (m *SessionMetricsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMetricsMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.session != nil {
		fields = append(fields, sessionmetrics.FieldSessionID)
	}
	if m.total_duration_ms != nil {
		fields = append(fields, sessionmetrics.FieldTotalDurationMs)
	}
	if m.active_duration_ms != nil {
		fields = append(fields, sessionmetrics.FieldActiveDurationMs)
	}
	if m.avg_user_response_ms != nil {
		fields = append(fields, sessionmetrics.FieldAvgUserResponseMs)
	}
	if m.avg_assistant_response_ms != nil {
		fields = append(fields, sessionmetrics.FieldAvgAssistantResponseMs)
	}
	if m.points_attempted != nil {
		fields = append(fields, sessionmetrics.FieldPointsAttempted)
	}
	if m.points_successful != nil {
		fields = append(fields, sessionmetrics.FieldPointsSuccessful)
	}
	if m.points_failed != nil {
		fields = append(fields, sessionmetrics.FieldPointsFailed)
	}
	if m.recall_rate != nil {
		fields = append(fields, sessionmetrics.FieldRecallRate)
	}
	if m.avg_confidence != nil {
		fields = append(fields, sessionmetrics.FieldAvgConfidence)
	}
	if m.user_messages != nil {
		fields = append(fields, sessionmetrics.FieldUserMessages)
	}
	if m.assistant_messages != nil {
		fields = append(fields, sessionmetrics.FieldAssistantMessages)
	}
	if m.total_messages != nil {
		fields = append(fields, sessionmetrics.FieldTotalMessages)
	}
	if m.rabbithole_count != nil {
		fields = append(fields, sessionmetrics.FieldRabbitholeCount)
	}
	if m.rabbithole_duration_ms != nil {
		fields = append(fields, sessionmetrics.FieldRabbitholeDurationMs)
	}
	if m.rabbithole_avg_depth != nil {
		fields = append(fields, sessionmetrics.FieldRabbitholeAvgDepth)
	}
	if m.input_tokens != nil {
		fields = append(fields, sessionmetrics.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, sessionmetrics.FieldOutputTokens)
	}
	if m.estimated_cost_usd != nil {
		fields = append(fields, sessionmetrics.FieldEstimatedCostUsd)
	}
	if m.engagement_score != nil {
		fields = append(fields, sessionmetrics.FieldEngagementScore)
	}
	if m.created_at != nil {
		fields = append(fields, sessionmetrics.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMetricsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionmetrics.FieldSessionID:
		return m.SessionID()
	case sessionmetrics.FieldTotalDurationMs:
		return m.TotalDurationMs()
	case sessionmetrics.FieldActiveDurationMs:
		return m.ActiveDurationMs()
	case sessionmetrics.FieldAvgUserResponseMs:
		return m.AvgUserResponseMs()
	case sessionmetrics.FieldAvgAssistantResponseMs:
		return m.AvgAssistantResponseMs()
	case sessionmetrics.FieldPointsAttempted:
		return m.PointsAttempted()
	case sessionmetrics.FieldPointsSuccessful:
		return m.PointsSuccessful()
	case sessionmetrics.FieldPointsFailed:
		return m.PointsFailed()
	case sessionmetrics.FieldRecallRate:
		return m.RecallRate()
	case sessionmetrics.FieldAvgConfidence:
		return m.AvgConfidence()
	case sessionmetrics.FieldUserMessages:
		return m.UserMessages()
	case sessionmetrics.FieldAssistantMessages:
		return m.AssistantMessages()
	case sessionmetrics.FieldTotalMessages:
		return m.TotalMessages()
	case sessionmetrics.FieldRabbitholeCount:
		return m.RabbitholeCount()
	case sessionmetrics.FieldRabbitholeDurationMs:
		return m.RabbitholeDurationMs()
	case sessionmetrics.FieldRabbitholeAvgDepth:
		return m.RabbitholeAvgDepth()
	case sessionmetrics.FieldInputTokens:
		return m.InputTokens()
	case sessionmetrics.FieldOutputTokens:
		return m.OutputTokens()
	case sessionmetrics.FieldEstimatedCostUsd:
		return m.EstimatedCostUsd()
	case sessionmetrics.FieldEngagementScore:
		return m.EngagementScore()
	case sessionmetrics.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMetricsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionmetrics.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionmetrics.FieldTotalDurationMs:
		return m.OldTotalDurationMs(ctx)
	case sessionmetrics.FieldActiveDurationMs:
		return m.OldActiveDurationMs(ctx)
	case sessionmetrics.FieldAvgUserResponseMs:
		return m.OldAvgUserResponseMs(ctx)
	case sessionmetrics.FieldAvgAssistantResponseMs:
		return m.OldAvgAssistantResponseMs(ctx)
	case sessionmetrics.FieldPointsAttempted:
		return m.OldPointsAttempted(ctx)
	case sessionmetrics.FieldPointsSuccessful:
		return m.OldPointsSuccessful(ctx)
	case sessionmetrics.FieldPointsFailed:
		return m.OldPointsFailed(ctx)
	case sessionmetrics.FieldRecallRate:
		return m.OldRecallRate(ctx)
	case sessionmetrics.FieldAvgConfidence:
		return m.OldAvgConfidence(ctx)
	case sessionmetrics.FieldUserMessages:
		return m.OldUserMessages(ctx)
	case sessionmetrics.FieldAssistantMessages:
		return m.OldAssistantMessages(ctx)
	case sessionmetrics.FieldTotalMessages:
		return m.OldTotalMessages(ctx)
	case sessionmetrics.FieldRabbitholeCount:
		return m.OldRabbitholeCount(ctx)
	case sessionmetrics.FieldRabbitholeDurationMs:
		return m.OldRabbitholeDurationMs(ctx)
	case sessionmetrics.FieldRabbitholeAvgDepth:
		return m.OldRabbitholeAvgDepth(ctx)
	case sessionmetrics.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case sessionmetrics.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case sessionmetrics.FieldEstimatedCostUsd:
		return m.OldEstimatedCostUsd(ctx)
	case sessionmetrics.FieldEngagementScore:
		return m.OldEngagementScore(ctx)
	case sessionmetrics.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionMetrics field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMetricsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionmetrics.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionmetrics.FieldTotalDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDurationMs(v)
		return nil
	case sessionmetrics.FieldActiveDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveDurationMs(v)
		return nil
	case sessionmetrics.FieldAvgUserResponseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgUserResponseMs(v)
		return nil
	case sessionmetrics.FieldAvgAssistantResponseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgAssistantResponseMs(v)
		return nil
	case sessionmetrics.FieldPointsAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointsAttempted(v)
		return nil
	case sessionmetrics.FieldPointsSuccessful:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointsSuccessful(v)
		return nil
	case sessionmetrics.FieldPointsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointsFailed(v)
		return nil
	case sessionmetrics.FieldRecallRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecallRate(v)
		return nil
	case sessionmetrics.FieldAvgConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgConfidence(v)
		return nil
	case sessionmetrics.FieldUserMessages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserMessages(v)
		return nil
	case sessionmetrics.FieldAssistantMessages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssistantMessages(v)
		return nil
	case sessionmetrics.FieldTotalMessages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMessages(v)
		return nil
	case sessionmetrics.FieldRabbitholeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRabbitholeCount(v)
		return nil
	case sessionmetrics.FieldRabbitholeDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRabbitholeDurationMs(v)
		return nil
	case sessionmetrics.FieldRabbitholeAvgDepth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRabbitholeAvgDepth(v)
		return nil
	case sessionmetrics.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case sessionmetrics.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case sessionmetrics.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostUsd(v)
		return nil
	case sessionmetrics.FieldEngagementScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementScore(v)
		return nil
	case sessionmetrics.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMetricsMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_duration_ms != nil {
		fields = append(fields, sessionmetrics.FieldTotalDurationMs)
	}
	if m.addactive_duration_ms != nil {
		fields = append(fields, sessionmetrics.FieldActiveDurationMs)
	}
	if m.addavg_user_response_ms != nil {
		fields = append(fields, sessionmetrics.FieldAvgUserResponseMs)
	}
	if m.addavg_assistant_response_ms != nil {
		fields = append(fields, sessionmetrics.FieldAvgAssistantResponseMs)
	}
	if m.addpoints_attempted != nil {
		fields = append(fields, sessionmetrics.FieldPointsAttempted)
	}
	if m.addpoints_successful != nil {
		fields = append(fields, sessionmetrics.FieldPointsSuccessful)
	}
	if m.addpoints_failed != nil {
		fields = append(fields, sessionmetrics.FieldPointsFailed)
	}
	if m.addrecall_rate != nil {
		fields = append(fields, sessionmetrics.FieldRecallRate)
	}
	if m.addavg_confidence != nil {
		fields = append(fields, sessionmetrics.FieldAvgConfidence)
	}
	if m.adduser_messages != nil {
		fields = append(fields, sessionmetrics.FieldUserMessages)
	}
	if m.addassistant_messages != nil {
		fields = append(fields, sessionmetrics.FieldAssistantMessages)
	}
	if m.addtotal_messages != nil {
		fields = append(fields, sessionmetrics.FieldTotalMessages)
	}
	if m.addrabbithole_count != nil {
		fields = append(fields, sessionmetrics.FieldRabbitholeCount)
	}
	if m.addrabbithole_duration_ms != nil {
		fields = append(fields, sessionmetrics.FieldRabbitholeDurationMs)
	}
	if m.addrabbithole_avg_depth != nil {
		fields = append(fields, sessionmetrics.FieldRabbitholeAvgDepth)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, sessionmetrics.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, sessionmetrics.FieldOutputTokens)
	}
	if m.addestimated_cost_usd != nil {
		fields = append(fields, sessionmetrics.FieldEstimatedCostUsd)
	}
	if m.addengagement_score != nil {
		fields = append(fields, sessionmetrics.FieldEngagementScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMetricsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionmetrics.FieldTotalDurationMs:
		return m.AddedTotalDurationMs()
	case sessionmetrics.FieldActiveDurationMs:
		return m.AddedActiveDurationMs()
	case sessionmetrics.FieldAvgUserResponseMs:
		return m.AddedAvgUserResponseMs()
	case sessionmetrics.FieldAvgAssistantResponseMs:
		return m.AddedAvgAssistantResponseMs()
	case sessionmetrics.FieldPointsAttempted:
		return m.AddedPointsAttempted()
	case sessionmetrics.FieldPointsSuccessful:
		return m.AddedPointsSuccessful()
	case sessionmetrics.FieldPointsFailed:
		return m.AddedPointsFailed()
	case sessionmetrics.FieldRecallRate:
		return m.AddedRecallRate()
	case sessionmetrics.FieldAvgConfidence:
		return m.AddedAvgConfidence()
	case sessionmetrics.FieldUserMessages:
		return m.AddedUserMessages()
	case sessionmetrics.FieldAssistantMessages:
		return m.AddedAssistantMessages()
	case sessionmetrics.FieldTotalMessages:
		return m.AddedTotalMessages()
	case sessionmetrics.FieldRabbitholeCount:
		return m.AddedRabbitholeCount()
	case sessionmetrics.FieldRabbitholeDurationMs:
		return m.AddedRabbitholeDurationMs()
	case sessionmetrics.FieldRabbitholeAvgDepth:
		return m.AddedRabbitholeAvgDepth()
	case sessionmetrics.FieldInputTokens:
		return m.AddedInputTokens()
	case sessionmetrics.FieldOutputTokens:
		return m.AddedOutputTokens()
	case sessionmetrics.FieldEstimatedCostUsd:
		return m.AddedEstimatedCostUsd()
	case sessionmetrics.FieldEngagementScore:
		return m.AddedEngagementScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMetricsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionmetrics.FieldTotalDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDurationMs(v)
		return nil
	case sessionmetrics.FieldActiveDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveDurationMs(v)
		return nil
	case sessionmetrics.FieldAvgUserResponseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgUserResponseMs(v)
		return nil
	case sessionmetrics.FieldAvgAssistantResponseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgAssistantResponseMs(v)
		return nil
	case sessionmetrics.FieldPointsAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPointsAttempted(v)
		return nil
	case sessionmetrics.FieldPointsSuccessful:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPointsSuccessful(v)
		return nil
	case sessionmetrics.FieldPointsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPointsFailed(v)
		return nil
	case sessionmetrics.FieldRecallRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecallRate(v)
		return nil
	case sessionmetrics.FieldAvgConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgConfidence(v)
		return nil
	case sessionmetrics.FieldUserMessages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserMessages(v)
		return nil
	case sessionmetrics.FieldAssistantMessages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssistantMessages(v)
		return nil
	case sessionmetrics.FieldTotalMessages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMessages(v)
		return nil
	case sessionmetrics.FieldRabbitholeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRabbitholeCount(v)
		return nil
	case sessionmetrics.FieldRabbitholeDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRabbitholeDurationMs(v)
		return nil
	case sessionmetrics.FieldRabbitholeAvgDepth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRabbitholeAvgDepth(v)
		return nil
	case sessionmetrics.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case sessionmetrics.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case sessionmetrics.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostUsd(v)
		return nil
	case sessionmetrics.FieldEngagementScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementScore(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMetricsMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMetricsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMetricsMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionMetrics nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMetricsMutation) ResetField(name string) error {
	switch name {
	case sessionmetrics.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionmetrics.FieldTotalDurationMs:
		m.ResetTotalDurationMs()
		return nil
	case sessionmetrics.FieldActiveDurationMs:
		m.ResetActiveDurationMs()
		return nil
	case sessionmetrics.FieldAvgUserResponseMs:
		m.ResetAvgUserResponseMs()
		return nil
	case sessionmetrics.FieldAvgAssistantResponseMs:
		m.ResetAvgAssistantResponseMs()
		return nil
	case sessionmetrics.FieldPointsAttempted:
		m.ResetPointsAttempted()
		return nil
	case sessionmetrics.FieldPointsSuccessful:
		m.ResetPointsSuccessful()
		return nil
	case sessionmetrics.FieldPointsFailed:
		m.ResetPointsFailed()
		return nil
	case sessionmetrics.FieldRecallRate:
		m.ResetRecallRate()
		return nil
	case sessionmetrics.FieldAvgConfidence:
		m.ResetAvgConfidence()
		return nil
	case sessionmetrics.FieldUserMessages:
		m.ResetUserMessages()
		return nil
	case sessionmetrics.FieldAssistantMessages:
		m.ResetAssistantMessages()
		return nil
	case sessionmetrics.FieldTotalMessages:
		m.ResetTotalMessages()
		return nil
	case sessionmetrics.FieldRabbitholeCount:
		m.ResetRabbitholeCount()
		return nil
	case sessionmetrics.FieldRabbitholeDurationMs:
		m.ResetRabbitholeDurationMs()
		return nil
	case sessionmetrics.FieldRabbitholeAvgDepth:
		m.ResetRabbitholeAvgDepth()
		return nil
	case sessionmetrics.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case sessionmetrics.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case sessionmetrics.FieldEstimatedCostUsd:
		m.ResetEstimatedCostUsd()
		return nil
	case sessionmetrics.FieldEngagementScore:
		m.ResetEngagementScore()
		return nil
	case sessionmetrics.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMetricsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionmetrics.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMetricsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionmetrics.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMetricsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMetricsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMetricsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionmetrics.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMetricsMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionmetrics.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMetricsMutation) ClearEdge(name string) error {
	switch name {
	case sessionmetrics.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMetricsMutation) ResetEdge(name string) error {
	switch name {
	case sessionmetrics.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics edge %s", name)
}

// StudySessionMutation represents an operation that mutates the StudySession nodes in the graph.
type StudySessionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	status                   *studysession.Status
	target_point_ids         *[]string
	appendtarget_point_ids   []string
	recalled_point_ids       *[]string
	appendrecalled_point_ids []string
	started_at               *time.Time
	resumed_at               *time.Time
	ended_at                 *time.Time
	clearedFields            map[string]struct{}
	recall_set               *string
	clearedrecall_set        bool
	messages                 map[string]struct{}
	removedmessages          map[string]struct{}
	clearedmessages          bool
	rabbithole_events        map[string]struct{}
	removedrabbithole_events map[string]struct{}
	clearedrabbithole_events bool
	outcomes                 map[string]struct{}
	removedoutcomes          map[string]struct{}
	clearedoutcomes          bool
	metrics                  *string
	clearedmetrics           bool
	done                     bool
	oldValue                 func(context.Context) (*StudySession, error)
	predicates               []predicate.StudySession
}

var _ ent.Mutation = (*StudySessionMutation)(nil)

// studysessionOption allows management of the mutation configuration using functional options.
type studysessionOption func(*StudySessionMutation)

// newStudySessionMutation creates new mutation for the StudySession entity.
func newStudySessionMutation(c config, op Op, opts ...studysessionOption) *StudySessionMutation {
	m := &StudySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStudySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudySessionID sets the ID field of the mutation.
func withStudySessionID(id string) studysessionOption {
	return func(m *StudySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StudySession
		)
		m.oldValue = func(ctx context.Context) (*StudySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudySession sets the old StudySession of the mutation.
func withStudySession(node *StudySession) studysessionOption {
	return func(m *StudySessionMutation) {
		m.oldValue = func(context.Context) (*StudySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudySession entities.
func (m *StudySessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudySessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudySessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecallSetID sets the "recall_set_id" field.
func (m *StudySessionMutation) SetRecallSetID(s string) {
	m.recall_set = &s
}

// RecallSetID returns the value of the "recall_set_id" field in the mutation.
func (m *StudySessionMutation) RecallSetID() (r string, exists bool) {
	v := m.recall_set
	if v == nil {
		return
	}
	return *v, true
}

// OldRecallSetID returns the old "recall_set_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldRecallSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecallSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecallSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecallSetID: %w", err)
	}
	return oldValue.RecallSetID, nil
}

// ResetRecallSetID resets all changes to the "recall_set_id" field.
func (m *StudySessionMutation) ResetRecallSetID() {
	m.recall_set = nil
}

// SetStatus sets the "status" field.
func (m *StudySessionMutation) SetStatus(s studysession.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StudySessionMutation) Status() (r studysession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStatus(ctx context.Context) (v studysession.Status, err error) {
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
func (m *StudySessionMutation) ResetStatus() {
	m.status = nil
}

// SetTargetPointIds sets the "target_point_ids" field.
func (m *StudySessionMutation) SetTargetPointIds(s []string) {
	m.target_point_ids = &s
	m.appendtarget_point_ids = nil
}

// TargetPointIds returns the value of the "target_point_ids" field in the mutation.
func (m *StudySessionMutation) TargetPointIds() (r []string, exists bool) {
	v := m.target_point_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetPointIds returns the old "target_point_ids" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldTargetPointIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetPointIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetPointIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetPointIds: %w", err)
	}
	return oldValue.TargetPointIds, nil
}

// AppendTargetPointIds adds s to the "target_point_ids" field.
func (m *StudySessionMutation) AppendTargetPointIds(s []string) {
	m.appendtarget_point_ids = append(m.appendtarget_point_ids, s...)
}

// AppendedTargetPointIds returns the list of values that were appended to the "target_point_ids" field in this mutation.
func (m *StudySessionMutation) AppendedTargetPointIds() ([]string, bool) {
	if len(m.appendtarget_point_ids) == 0 {
		return nil, false
	}
	return m.appendtarget_point_ids, true
}

// ResetTargetPointIds resets all changes to the "target_point_ids" field.
func (m *StudySessionMutation) ResetTargetPointIds() {
	m.target_point_ids = nil
	m.appendtarget_point_ids = nil
}

// SetRecalledPointIds sets the "recalled_point_ids" field.
func (m *StudySessionMutation) SetRecalledPointIds(s []string) {
	m.recalled_point_ids = &s
	m.appendrecalled_point_ids = nil
}

// RecalledPointIds returns the value of the "recalled_point_ids" field in the mutation.
func (m *StudySessionMutation) RecalledPointIds() (r []string, exists bool) {
	v := m.recalled_point_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldRecalledPointIds returns the old "recalled_point_ids" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldRecalledPointIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecalledPointIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecalledPointIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecalledPointIds: %w", err)
	}
	return oldValue.RecalledPointIds, nil
}

// AppendRecalledPointIds adds s to the "recalled_point_ids" field.
func (m *StudySessionMutation) AppendRecalledPointIds(s []string) {
	m.appendrecalled_point_ids = append(m.appendrecalled_point_ids, s...)
}

// AppendedRecalledPointIds returns the list of values that were appended to the "recalled_point_ids" field in this mutation.
func (m *StudySessionMutation) AppendedRecalledPointIds() ([]string, bool) {
	if len(m.appendrecalled_point_ids) == 0 {
		return nil, false
	}
	return m.appendrecalled_point_ids, true
}

// ClearRecalledPointIds clears the value of the "recalled_point_ids" field.
func (m *StudySessionMutation) ClearRecalledPointIds() {
	m.recalled_point_ids = nil
	m.appendrecalled_point_ids = nil
	m.clearedFields[studysession.FieldRecalledPointIds] = struct{}{}
}

// RecalledPointIdsCleared returns if the "recalled_point_ids" field was cleared in this mutation.
func (m *StudySessionMutation) RecalledPointIdsCleared() bool {
	_, ok := m.clearedFields[studysession.FieldRecalledPointIds]
	return ok
}

// ResetRecalledPointIds resets all changes to the "recalled_point_ids" field.
func (m *StudySessionMutation) ResetRecalledPointIds() {
	m.recalled_point_ids = nil
	m.appendrecalled_point_ids = nil
	delete(m.clearedFields, studysession.FieldRecalledPointIds)
}

// SetStartedAt sets the "started_at" field.
func (m *StudySessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StudySessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
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

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StudySessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetResumedAt sets the "resumed_at" field.
func (m *StudySessionMutation) SetResumedAt(t time.Time) {
	m.resumed_at = &t
}

// ResumedAt returns the value of the "resumed_at" field in the mutation.
func (m *StudySessionMutation) ResumedAt() (r time.Time, exists bool) {
	v := m.resumed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResumedAt returns the old "resumed_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldResumedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumedAt: %w", err)
	}
	return oldValue.ResumedAt, nil
}

// ClearResumedAt clears the value of the "resumed_at" field.
func (m *StudySessionMutation) ClearResumedAt() {
	m.resumed_at = nil
	m.clearedFields[studysession.FieldResumedAt] = struct{}{}
}

// ResumedAtCleared returns if the "resumed_at" field was cleared in this mutation.
func (m *StudySessionMutation) ResumedAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldResumedAt]
	return ok
}

// ResetResumedAt resets all changes to the "resumed_at" field.
func (m *StudySessionMutation) ResetResumedAt() {
	m.resumed_at = nil
	delete(m.clearedFields, studysession.FieldResumedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *StudySessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *StudySessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *StudySessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[studysession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *StudySessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *StudySessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, studysession.FieldEndedAt)
}

// ClearRecallSet clears the "recall_set" edge to the RecallSet entity.
func (m *StudySessionMutation) ClearRecallSet() {
	m.clearedrecall_set = true
	m.clearedFields[studysession.FieldRecallSetID] = struct{}{}
}

// RecallSetCleared reports if the "recall_set" edge to the RecallSet entity was cleared.
func (m *StudySessionMutation) RecallSetCleared() bool {
	return m.clearedrecall_set
}

// RecallSetIDs returns the "recall_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecallSetID instead. It exists only for internal usage by the builders.
func (m *StudySessionMutation) RecallSetIDs() (ids []string) {
	if id := m.recall_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecallSet resets all changes to the "recall_set" edge.
func (m *StudySessionMutation) ResetRecallSet() {
	m.recall_set = nil
	m.clearedrecall_set = false
}

// AddMessageIDs adds the "messages" edge to the SessionMessage entity by ids.
func (m *StudySessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the SessionMessage entity.
func (m *StudySessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the SessionMessage entity was cleared.
func (m *StudySessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the SessionMessage entity by IDs.
func (m *StudySessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the SessionMessage entity.
func (m *StudySessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *StudySessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *StudySessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddRabbitholeEventIDs adds the "rabbithole_events" edge to the RabbitholeEvent entity by ids.
func (m *StudySessionMutation) AddRabbitholeEventIDs(ids ...string) {
	if m.rabbithole_events == nil {
		m.rabbithole_events = make(map[string]struct{})
	}
	for i := range ids {
		m.rabbithole_events[ids[i]] = struct{}{}
	}
}

// ClearRabbitholeEvents clears the "rabbithole_events" edge to the RabbitholeEvent entity.
func (m *StudySessionMutation) ClearRabbitholeEvents() {
	m.clearedrabbithole_events = true
}

// RabbitholeEventsCleared reports if the "rabbithole_events" edge to the RabbitholeEvent entity was cleared.
func (m *StudySessionMutation) RabbitholeEventsCleared() bool {
	return m.clearedrabbithole_events
}

// RemoveRabbitholeEventIDs removes the "rabbithole_events" edge to the RabbitholeEvent entity by IDs.
func (m *StudySessionMutation) RemoveRabbitholeEventIDs(ids ...string) {
	if m.removedrabbithole_events == nil {
		m.removedrabbithole_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rabbithole_events, ids[i])
		m.removedrabbithole_events[ids[i]] = struct{}{}
	}
}

// RemovedRabbitholeEvents returns the removed IDs of the "rabbithole_events" edge to the RabbitholeEvent entity.
func (m *StudySessionMutation) RemovedRabbitholeEventsIDs() (ids []string) {
	for id := range m.removedrabbithole_events {
		ids = append(ids, id)
	}
	return
}

// RabbitholeEventsIDs returns the "rabbithole_events" edge IDs in the mutation.
func (m *StudySessionMutation) RabbitholeEventsIDs() (ids []string) {
	for id := range m.rabbithole_events {
		ids = append(ids, id)
	}
	return
}

// ResetRabbitholeEvents resets all changes to the "rabbithole_events" edge.
func (m *StudySessionMutation) ResetRabbitholeEvents() {
	m.rabbithole_events = nil
	m.clearedrabbithole_events = false
	m.removedrabbithole_events = nil
}

// AddOutcomeIDs adds the "outcomes" edge to the RecallOutcome entity by ids.
func (m *StudySessionMutation) AddOutcomeIDs(ids ...string) {
	if m.outcomes == nil {
		m.outcomes = make(map[string]struct{})
	}
	for i := range ids {
		m.outcomes[ids[i]] = struct{}{}
	}
}

// ClearOutcomes clears the "outcomes" edge to the RecallOutcome entity.
func (m *StudySessionMutation) ClearOutcomes() {
	m.clearedoutcomes = true
}

// OutcomesCleared reports if the "outcomes" edge to the RecallOutcome entity was cleared.
func (m *StudySessionMutation) OutcomesCleared() bool {
	return m.clearedoutcomes
}

// RemoveOutcomeIDs removes the "outcomes" edge to the RecallOutcome entity by IDs.
func (m *StudySessionMutation) RemoveOutcomeIDs(ids ...string) {
	if m.removedoutcomes == nil {
		m.removedoutcomes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outcomes, ids[i])
		m.removedoutcomes[ids[i]] = struct{}{}
	}
}

// RemovedOutcomes returns the removed IDs of the "outcomes" edge to the RecallOutcome entity.
func (m *StudySessionMutation) RemovedOutcomesIDs() (ids []string) {
	for id := range m.removedoutcomes {
		ids = append(ids, id)
	}
	return
}

// OutcomesIDs returns the "outcomes" edge IDs in the mutation.
func (m *StudySessionMutation) OutcomesIDs() (ids []string) {
	for id := range m.outcomes {
		ids = append(ids, id)
	}
	return
}

// ResetOutcomes resets all changes to the "outcomes" edge.
func (m *StudySessionMutation) ResetOutcomes() {
	m.outcomes = nil
	m.clearedoutcomes = false
	m.removedoutcomes = nil
}

// SetMetricsID sets the "metrics" edge to the SessionMetrics entity by id.
func (m *StudySessionMutation) SetMetricsID(id string) {
	m.metrics = &id
}

// ClearMetrics clears the "metrics" edge to the SessionMetrics entity.
func (m *StudySessionMutation) ClearMetrics() {
	m.clearedmetrics = true
}

// MetricsCleared reports if the "metrics" edge to the SessionMetrics entity was cleared.
func (m *StudySessionMutation) MetricsCleared() bool {
	return m.clearedmetrics
}

// MetricsID returns the "metrics" edge ID in the mutation.
func (m *StudySessionMutation) MetricsID() (id string, exists bool) {
	if m.metrics != nil {
		return *m.metrics, true
	}
	return
}

// MetricsIDs returns the "metrics" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MetricsID instead. It exists only for internal usage by the builders.
func (m *StudySessionMutation) MetricsIDs() (ids []string) {
	if id := m.metrics; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMetrics resets all changes to the "metrics" edge.
func (m *StudySessionMutation) ResetMetrics() {
	m.metrics = nil
	m.clearedmetrics = false
}

// Where appends a list predicates to the StudySessionMutation builder.
func (m *StudySessionMutation) Where(ps ...predicate.StudySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudySession).
func (m *StudySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudySessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.recall_set != nil {
		fields = append(fields, studysession.FieldRecallSetID)
	}
	if m.status != nil {
		fields = append(fields, studysession.FieldStatus)
	}
	if m.target_point_ids != nil {
		fields = append(fields, studysession.FieldTargetPointIds)
	}
	if m.recalled_point_ids != nil {
		fields = append(fields, studysession.FieldRecalledPointIds)
	}
	if m.started_at != nil {
		fields = append(fields, studysession.FieldStartedAt)
	}
	if m.resumed_at != nil {
		fields = append(fields, studysession.FieldResumedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, studysession.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldRecallSetID:
		return m.RecallSetID()
	case studysession.FieldStatus:
		return m.Status()
	case studysession.FieldTargetPointIds:
		return m.TargetPointIds()
	case studysession.FieldRecalledPointIds:
		return m.RecalledPointIds()
	case studysession.FieldStartedAt:
		return m.StartedAt()
	case studysession.FieldResumedAt:
		return m.ResumedAt()
	case studysession.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studysession.FieldRecallSetID:
		return m.OldRecallSetID(ctx)
	case studysession.FieldStatus:
		return m.OldStatus(ctx)
	case studysession.FieldTargetPointIds:
		return m.OldTargetPointIds(ctx)
	case studysession.FieldRecalledPointIds:
		return m.OldRecalledPointIds(ctx)
	case studysession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case studysession.FieldResumedAt:
		return m.OldResumedAt(ctx)
	case studysession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldRecallSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecallSetID(v)
		return nil
	case studysession.FieldStatus:
		v, ok := value.(studysession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case studysession.FieldTargetPointIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetPointIds(v)
		return nil
	case studysession.FieldRecalledPointIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecalledPointIds(v)
		return nil
	case studysession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case studysession.FieldResumedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumedAt(v)
		return nil
	case studysession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudySessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudySessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StudySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studysession.FieldRecalledPointIds) {
		fields = append(fields, studysession.FieldRecalledPointIds)
	}
	if m.FieldCleared(studysession.FieldResumedAt) {
		fields = append(fields, studysession.FieldResumedAt)
	}
	if m.FieldCleared(studysession.FieldEndedAt) {
		fields = append(fields, studysession.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudySessionMutation) ClearField(name string) error {
	switch name {
	case studysession.FieldRecalledPointIds:
		m.ClearRecalledPointIds()
		return nil
	case studysession.FieldResumedAt:
		m.ClearResumedAt()
		return nil
	case studysession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown StudySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudySessionMutation) ResetField(name string) error {
	switch name {
	case studysession.FieldRecallSetID:
		m.ResetRecallSetID()
		return nil
	case studysession.FieldStatus:
		m.ResetStatus()
		return nil
	case studysession.FieldTargetPointIds:
		m.ResetTargetPointIds()
		return nil
	case studysession.FieldRecalledPointIds:
		m.ResetRecalledPointIds()
		return nil
	case studysession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case studysession.FieldResumedAt:
		m.ResetResumedAt()
		return nil
	case studysession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.recall_set != nil {
		edges = append(edges, studysession.EdgeRecallSet)
	}
	if m.messages != nil {
		edges = append(edges, studysession.EdgeMessages)
	}
	if m.rabbithole_events != nil {
		edges = append(edges, studysession.EdgeRabbitholeEvents)
	}
	if m.outcomes != nil {
		edges = append(edges, studysession.EdgeOutcomes)
	}
	if m.metrics != nil {
		edges = append(edges, studysession.EdgeMetrics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudySessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studysession.EdgeRecallSet:
		if id := m.recall_set; id != nil {
			return []ent.Value{*id}
		}
	case studysession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeRabbitholeEvents:
		ids := make([]ent.Value, 0, len(m.rabbithole_events))
		for id := range m.rabbithole_events {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.outcomes))
		for id := range m.outcomes {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeMetrics:
		if id := m.metrics; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedmessages != nil {
		edges = append(edges, studysession.EdgeMessages)
	}
	if m.removedrabbithole_events != nil {
		edges = append(edges, studysession.EdgeRabbitholeEvents)
	}
	if m.removedoutcomes != nil {
		edges = append(edges, studysession.EdgeOutcomes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudySessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case studysession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeRabbitholeEvents:
		ids := make([]ent.Value, 0, len(m.removedrabbithole_events))
		for id := range m.removedrabbithole_events {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.removedoutcomes))
		for id := range m.removedoutcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedrecall_set {
		edges = append(edges, studysession.EdgeRecallSet)
	}
	if m.clearedmessages {
		edges = append(edges, studysession.EdgeMessages)
	}
	if m.clearedrabbithole_events {
		edges = append(edges, studysession.EdgeRabbitholeEvents)
	}
	if m.clearedoutcomes {
		edges = append(edges, studysession.EdgeOutcomes)
	}
	if m.clearedmetrics {
		edges = append(edges, studysession.EdgeMetrics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudySessionMutation) EdgeCleared(name string) bool {
	switch name {
	case studysession.EdgeRecallSet:
		return m.clearedrecall_set
	case studysession.EdgeMessages:
		return m.clearedmessages
	case studysession.EdgeRabbitholeEvents:
		return m.clearedrabbithole_events
	case studysession.EdgeOutcomes:
		return m.clearedoutcomes
	case studysession.EdgeMetrics:
		return m.clearedmetrics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudySessionMutation) ClearEdge(name string) error {
	switch name {
	case studysession.EdgeRecallSet:
		m.ClearRecallSet()
		return nil
	case studysession.EdgeMetrics:
		m.ClearMetrics()
		return nil
	}
	return fmt.Errorf("unknown StudySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudySessionMutation) ResetEdge(name string) error {
	switch name {
	case studysession.EdgeRecallSet:
		m.ResetRecallSet()
		return nil
	case studysession.EdgeMessages:
		m.ResetMessages()
		return nil
	case studysession.EdgeRabbitholeEvents:
		m.ResetRabbitholeEvents()
		return nil
	case studysession.EdgeOutcomes:
		m.ResetOutcomes()
		return nil
	case studysession.EdgeMetrics:
		m.ResetMetrics()
		return nil
	}
	return fmt.Errorf("unknown StudySession edge %s", name)
}
