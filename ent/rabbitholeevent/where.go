// Code generated by ent, DO NOT EDIT.

package rabbitholeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recallkit/recallkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldSessionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldTopic, v))
}

// TriggerMessageIndex applies equality check predicate on the "trigger_message_index" field. It's identical to TriggerMessageIndexEQ.
func TriggerMessageIndex(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldTriggerMessageIndex, v))
}

// ReturnMessageIndex applies equality check predicate on the "return_message_index" field. It's identical to ReturnMessageIndexEQ.
func ReturnMessageIndex(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldReturnMessageIndex, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldDepth, v))
}

// UserInitiated applies equality check predicate on the "user_initiated" field. It's identical to UserInitiatedEQ.
func UserInitiated(v bool) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldUserInitiated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldContainsFold(FieldTopic, v))
}

// TriggerMessageIndexEQ applies the EQ predicate on the "trigger_message_index" field.
func TriggerMessageIndexEQ(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldTriggerMessageIndex, v))
}

// TriggerMessageIndexNEQ applies the NEQ predicate on the "trigger_message_index" field.
func TriggerMessageIndexNEQ(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNEQ(FieldTriggerMessageIndex, v))
}

// TriggerMessageIndexIn applies the In predicate on the "trigger_message_index" field.
func TriggerMessageIndexIn(vs ...int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIn(FieldTriggerMessageIndex, vs...))
}

// TriggerMessageIndexNotIn applies the NotIn predicate on the "trigger_message_index" field.
func TriggerMessageIndexNotIn(vs ...int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotIn(FieldTriggerMessageIndex, vs...))
}

// TriggerMessageIndexGT applies the GT predicate on the "trigger_message_index" field.
func TriggerMessageIndexGT(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGT(FieldTriggerMessageIndex, v))
}

// TriggerMessageIndexGTE applies the GTE predicate on the "trigger_message_index" field.
func TriggerMessageIndexGTE(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGTE(FieldTriggerMessageIndex, v))
}

// TriggerMessageIndexLT applies the LT predicate on the "trigger_message_index" field.
func TriggerMessageIndexLT(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLT(FieldTriggerMessageIndex, v))
}

// TriggerMessageIndexLTE applies the LTE predicate on the "trigger_message_index" field.
func TriggerMessageIndexLTE(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLTE(FieldTriggerMessageIndex, v))
}

// ReturnMessageIndexEQ applies the EQ predicate on the "return_message_index" field.
func ReturnMessageIndexEQ(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldReturnMessageIndex, v))
}

// ReturnMessageIndexNEQ applies the NEQ predicate on the "return_message_index" field.
func ReturnMessageIndexNEQ(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNEQ(FieldReturnMessageIndex, v))
}

// ReturnMessageIndexIn applies the In predicate on the "return_message_index" field.
func ReturnMessageIndexIn(vs ...int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIn(FieldReturnMessageIndex, vs...))
}

// ReturnMessageIndexNotIn applies the NotIn predicate on the "return_message_index" field.
func ReturnMessageIndexNotIn(vs ...int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotIn(FieldReturnMessageIndex, vs...))
}

// ReturnMessageIndexGT applies the GT predicate on the "return_message_index" field.
func ReturnMessageIndexGT(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGT(FieldReturnMessageIndex, v))
}

// ReturnMessageIndexGTE applies the GTE predicate on the "return_message_index" field.
func ReturnMessageIndexGTE(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGTE(FieldReturnMessageIndex, v))
}

// ReturnMessageIndexLT applies the LT predicate on the "return_message_index" field.
func ReturnMessageIndexLT(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLT(FieldReturnMessageIndex, v))
}

// ReturnMessageIndexLTE applies the LTE predicate on the "return_message_index" field.
func ReturnMessageIndexLTE(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLTE(FieldReturnMessageIndex, v))
}

// ReturnMessageIndexIsNil applies the IsNil predicate on the "return_message_index" field.
func ReturnMessageIndexIsNil() predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIsNull(FieldReturnMessageIndex))
}

// ReturnMessageIndexNotNil applies the NotNil predicate on the "return_message_index" field.
func ReturnMessageIndexNotNil() predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotNull(FieldReturnMessageIndex))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLTE(FieldDepth, v))
}

// RelatedPointIdsIsNil applies the IsNil predicate on the "related_point_ids" field.
func RelatedPointIdsIsNil() predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIsNull(FieldRelatedPointIds))
}

// RelatedPointIdsNotNil applies the NotNil predicate on the "related_point_ids" field.
func RelatedPointIdsNotNil() predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotNull(FieldRelatedPointIds))
}

// UserInitiatedEQ applies the EQ predicate on the "user_initiated" field.
func UserInitiatedEQ(v bool) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldUserInitiated, v))
}

// UserInitiatedNEQ applies the NEQ predicate on the "user_initiated" field.
func UserInitiatedNEQ(v bool) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNEQ(FieldUserInitiated, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// ConversationIsNil applies the IsNil predicate on the "conversation" field.
func ConversationIsNil() predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIsNull(FieldConversation))
}

// ConversationNotNil applies the NotNil predicate on the "conversation" field.
func ConversationNotNil() predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotNull(FieldConversation))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.StudySession) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RabbitholeEvent) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RabbitholeEvent) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RabbitholeEvent) predicate.RabbitholeEvent {
	return predicate.RabbitholeEvent(sql.NotPredicates(p))
}
