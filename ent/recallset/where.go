// Code generated by ent, DO NOT EDIT.

package recallset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recallkit/recallkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldDescription, v))
}

// DiscussionPrompt applies equality check predicate on the "discussion_prompt" field. It's identical to DiscussionPromptEQ.
func DiscussionPrompt(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldDiscussionPrompt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNotIn(FieldStatus, vs...))
}

// DiscussionPromptEQ applies the EQ predicate on the "discussion_prompt" field.
func DiscussionPromptEQ(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldDiscussionPrompt, v))
}

// DiscussionPromptNEQ applies the NEQ predicate on the "discussion_prompt" field.
func DiscussionPromptNEQ(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNEQ(FieldDiscussionPrompt, v))
}

// DiscussionPromptIn applies the In predicate on the "discussion_prompt" field.
func DiscussionPromptIn(vs ...string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldIn(FieldDiscussionPrompt, vs...))
}

// DiscussionPromptNotIn applies the NotIn predicate on the "discussion_prompt" field.
func DiscussionPromptNotIn(vs ...string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNotIn(FieldDiscussionPrompt, vs...))
}

// DiscussionPromptGT applies the GT predicate on the "discussion_prompt" field.
func DiscussionPromptGT(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGT(FieldDiscussionPrompt, v))
}

// DiscussionPromptGTE applies the GTE predicate on the "discussion_prompt" field.
func DiscussionPromptGTE(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGTE(FieldDiscussionPrompt, v))
}

// DiscussionPromptLT applies the LT predicate on the "discussion_prompt" field.
func DiscussionPromptLT(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLT(FieldDiscussionPrompt, v))
}

// DiscussionPromptLTE applies the LTE predicate on the "discussion_prompt" field.
func DiscussionPromptLTE(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLTE(FieldDiscussionPrompt, v))
}

// DiscussionPromptContains applies the Contains predicate on the "discussion_prompt" field.
func DiscussionPromptContains(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldContains(FieldDiscussionPrompt, v))
}

// DiscussionPromptHasPrefix applies the HasPrefix predicate on the "discussion_prompt" field.
func DiscussionPromptHasPrefix(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldHasPrefix(FieldDiscussionPrompt, v))
}

// DiscussionPromptHasSuffix applies the HasSuffix predicate on the "discussion_prompt" field.
func DiscussionPromptHasSuffix(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldHasSuffix(FieldDiscussionPrompt, v))
}

// DiscussionPromptIsNil applies the IsNil predicate on the "discussion_prompt" field.
func DiscussionPromptIsNil() predicate.RecallSet {
	return predicate.RecallSet(sql.FieldIsNull(FieldDiscussionPrompt))
}

// DiscussionPromptNotNil applies the NotNil predicate on the "discussion_prompt" field.
func DiscussionPromptNotNil() predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNotNull(FieldDiscussionPrompt))
}

// DiscussionPromptEqualFold applies the EqualFold predicate on the "discussion_prompt" field.
func DiscussionPromptEqualFold(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEqualFold(FieldDiscussionPrompt, v))
}

// DiscussionPromptContainsFold applies the ContainsFold predicate on the "discussion_prompt" field.
func DiscussionPromptContainsFold(v string) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldContainsFold(FieldDiscussionPrompt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RecallSet {
	return predicate.RecallSet(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPoints applies the HasEdge predicate on the "points" edge.
func HasPoints() predicate.RecallSet {
	return predicate.RecallSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PointsTable, PointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPointsWith applies the HasEdge predicate on the "points" edge with a given conditions (other predicates).
func HasPointsWith(preds ...predicate.RecallPoint) predicate.RecallSet {
	return predicate.RecallSet(func(s *sql.Selector) {
		step := newPointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.RecallSet {
	return predicate.RecallSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.StudySession) predicate.RecallSet {
	return predicate.RecallSet(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecallSet) predicate.RecallSet {
	return predicate.RecallSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecallSet) predicate.RecallSet {
	return predicate.RecallSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecallSet) predicate.RecallSet {
	return predicate.RecallSet(sql.NotPredicates(p))
}
