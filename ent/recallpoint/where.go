// Code generated by ent, DO NOT EDIT.

package recallpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recallkit/recallkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldContainsFold(FieldID, id))
}

// RecallSetID applies equality check predicate on the "recall_set_id" field. It's identical to RecallSetIDEQ.
func RecallSetID(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldRecallSetID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldContent, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldContext, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldDifficulty, v))
}

// Stability applies equality check predicate on the "stability" field. It's identical to StabilityEQ.
func Stability(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldStability, v))
}

// Due applies equality check predicate on the "due" field. It's identical to DueEQ.
func Due(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldDue, v))
}

// LastReview applies equality check predicate on the "last_review" field. It's identical to LastReviewEQ.
func LastReview(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldLastReview, v))
}

// Reps applies equality check predicate on the "reps" field. It's identical to RepsEQ.
func Reps(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldReps, v))
}

// Lapses applies equality check predicate on the "lapses" field. It's identical to LapsesEQ.
func Lapses(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldLapses, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldUpdatedAt, v))
}

// RecallSetIDEQ applies the EQ predicate on the "recall_set_id" field.
func RecallSetIDEQ(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldRecallSetID, v))
}

// RecallSetIDNEQ applies the NEQ predicate on the "recall_set_id" field.
func RecallSetIDNEQ(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldRecallSetID, v))
}

// RecallSetIDIn applies the In predicate on the "recall_set_id" field.
func RecallSetIDIn(vs ...string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldRecallSetID, vs...))
}

// RecallSetIDNotIn applies the NotIn predicate on the "recall_set_id" field.
func RecallSetIDNotIn(vs ...string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldRecallSetID, vs...))
}

// RecallSetIDGT applies the GT predicate on the "recall_set_id" field.
func RecallSetIDGT(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldRecallSetID, v))
}

// RecallSetIDGTE applies the GTE predicate on the "recall_set_id" field.
func RecallSetIDGTE(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldRecallSetID, v))
}

// RecallSetIDLT applies the LT predicate on the "recall_set_id" field.
func RecallSetIDLT(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldRecallSetID, v))
}

// RecallSetIDLTE applies the LTE predicate on the "recall_set_id" field.
func RecallSetIDLTE(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldRecallSetID, v))
}

// RecallSetIDContains applies the Contains predicate on the "recall_set_id" field.
func RecallSetIDContains(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldContains(FieldRecallSetID, v))
}

// RecallSetIDHasPrefix applies the HasPrefix predicate on the "recall_set_id" field.
func RecallSetIDHasPrefix(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldHasPrefix(FieldRecallSetID, v))
}

// RecallSetIDHasSuffix applies the HasSuffix predicate on the "recall_set_id" field.
func RecallSetIDHasSuffix(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldHasSuffix(FieldRecallSetID, v))
}

// RecallSetIDEqualFold applies the EqualFold predicate on the "recall_set_id" field.
func RecallSetIDEqualFold(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEqualFold(FieldRecallSetID, v))
}

// RecallSetIDContainsFold applies the ContainsFold predicate on the "recall_set_id" field.
func RecallSetIDContainsFold(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldContainsFold(FieldRecallSetID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldContainsFold(FieldContent, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldHasSuffix(FieldContext, v))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldContainsFold(FieldContext, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldDifficulty, v))
}

// StabilityEQ applies the EQ predicate on the "stability" field.
func StabilityEQ(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldStability, v))
}

// StabilityNEQ applies the NEQ predicate on the "stability" field.
func StabilityNEQ(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldStability, v))
}

// StabilityIn applies the In predicate on the "stability" field.
func StabilityIn(vs ...float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldStability, vs...))
}

// StabilityNotIn applies the NotIn predicate on the "stability" field.
func StabilityNotIn(vs ...float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldStability, vs...))
}

// StabilityGT applies the GT predicate on the "stability" field.
func StabilityGT(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldStability, v))
}

// StabilityGTE applies the GTE predicate on the "stability" field.
func StabilityGTE(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldStability, v))
}

// StabilityLT applies the LT predicate on the "stability" field.
func StabilityLT(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldStability, v))
}

// StabilityLTE applies the LTE predicate on the "stability" field.
func StabilityLTE(v float64) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldStability, v))
}

// DueEQ applies the EQ predicate on the "due" field.
func DueEQ(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldDue, v))
}

// DueNEQ applies the NEQ predicate on the "due" field.
func DueNEQ(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldDue, v))
}

// DueIn applies the In predicate on the "due" field.
func DueIn(vs ...time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldDue, vs...))
}

// DueNotIn applies the NotIn predicate on the "due" field.
func DueNotIn(vs ...time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldDue, vs...))
}

// DueGT applies the GT predicate on the "due" field.
func DueGT(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldDue, v))
}

// DueGTE applies the GTE predicate on the "due" field.
func DueGTE(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldDue, v))
}

// DueLT applies the LT predicate on the "due" field.
func DueLT(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldDue, v))
}

// DueLTE applies the LTE predicate on the "due" field.
func DueLTE(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldDue, v))
}

// LastReviewEQ applies the EQ predicate on the "last_review" field.
func LastReviewEQ(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldLastReview, v))
}

// LastReviewNEQ applies the NEQ predicate on the "last_review" field.
func LastReviewNEQ(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldLastReview, v))
}

// LastReviewIn applies the In predicate on the "last_review" field.
func LastReviewIn(vs ...time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldLastReview, vs...))
}

// LastReviewNotIn applies the NotIn predicate on the "last_review" field.
func LastReviewNotIn(vs ...time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldLastReview, vs...))
}

// LastReviewGT applies the GT predicate on the "last_review" field.
func LastReviewGT(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldLastReview, v))
}

// LastReviewGTE applies the GTE predicate on the "last_review" field.
func LastReviewGTE(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldLastReview, v))
}

// LastReviewLT applies the LT predicate on the "last_review" field.
func LastReviewLT(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldLastReview, v))
}

// LastReviewLTE applies the LTE predicate on the "last_review" field.
func LastReviewLTE(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldLastReview, v))
}

// LastReviewIsNil applies the IsNil predicate on the "last_review" field.
func LastReviewIsNil() predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIsNull(FieldLastReview))
}

// LastReviewNotNil applies the NotNil predicate on the "last_review" field.
func LastReviewNotNil() predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotNull(FieldLastReview))
}

// RepsEQ applies the EQ predicate on the "reps" field.
func RepsEQ(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldReps, v))
}

// RepsNEQ applies the NEQ predicate on the "reps" field.
func RepsNEQ(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldReps, v))
}

// RepsIn applies the In predicate on the "reps" field.
func RepsIn(vs ...int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldReps, vs...))
}

// RepsNotIn applies the NotIn predicate on the "reps" field.
func RepsNotIn(vs ...int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldReps, vs...))
}

// RepsGT applies the GT predicate on the "reps" field.
func RepsGT(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldReps, v))
}

// RepsGTE applies the GTE predicate on the "reps" field.
func RepsGTE(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldReps, v))
}

// RepsLT applies the LT predicate on the "reps" field.
func RepsLT(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldReps, v))
}

// RepsLTE applies the LTE predicate on the "reps" field.
func RepsLTE(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldReps, v))
}

// LapsesEQ applies the EQ predicate on the "lapses" field.
func LapsesEQ(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldLapses, v))
}

// LapsesNEQ applies the NEQ predicate on the "lapses" field.
func LapsesNEQ(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldLapses, v))
}

// LapsesIn applies the In predicate on the "lapses" field.
func LapsesIn(vs ...int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldLapses, vs...))
}

// LapsesNotIn applies the NotIn predicate on the "lapses" field.
func LapsesNotIn(vs ...int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldLapses, vs...))
}

// LapsesGT applies the GT predicate on the "lapses" field.
func LapsesGT(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldLapses, v))
}

// LapsesGTE applies the GTE predicate on the "lapses" field.
func LapsesGTE(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldLapses, v))
}

// LapsesLT applies the LT predicate on the "lapses" field.
func LapsesLT(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldLapses, v))
}

// LapsesLTE applies the LTE predicate on the "lapses" field.
func LapsesLTE(v int) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldLapses, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldState, vs...))
}

// RecallHistoryIsNil applies the IsNil predicate on the "recall_history" field.
func RecallHistoryIsNil() predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIsNull(FieldRecallHistory))
}

// RecallHistoryNotNil applies the NotNil predicate on the "recall_history" field.
func RecallHistoryNotNil() predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotNull(FieldRecallHistory))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RecallPoint {
	return predicate.RecallPoint(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRecallSet applies the HasEdge predicate on the "recall_set" edge.
func HasRecallSet() predicate.RecallPoint {
	return predicate.RecallPoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecallSetTable, RecallSetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecallSetWith applies the HasEdge predicate on the "recall_set" edge with a given conditions (other predicates).
func HasRecallSetWith(preds ...predicate.RecallSet) predicate.RecallPoint {
	return predicate.RecallPoint(func(s *sql.Selector) {
		step := newRecallSetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutcomes applies the HasEdge predicate on the "outcomes" edge.
func HasOutcomes() predicate.RecallPoint {
	return predicate.RecallPoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutcomesWith applies the HasEdge predicate on the "outcomes" edge with a given conditions (other predicates).
func HasOutcomesWith(preds ...predicate.RecallOutcome) predicate.RecallPoint {
	return predicate.RecallPoint(func(s *sql.Selector) {
		step := newOutcomesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecallPoint) predicate.RecallPoint {
	return predicate.RecallPoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecallPoint) predicate.RecallPoint {
	return predicate.RecallPoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecallPoint) predicate.RecallPoint {
	return predicate.RecallPoint(sql.NotPredicates(p))
}
