// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recallkit/recallkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldID, id))
}

// RecallSetID applies equality check predicate on the "recall_set_id" field. It's identical to RecallSetIDEQ.
func RecallSetID(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldRecallSetID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldStartedAt, v))
}

// ResumedAt applies equality check predicate on the "resumed_at" field. It's identical to ResumedAtEQ.
func ResumedAt(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldResumedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldEndedAt, v))
}

// RecallSetIDEQ applies the EQ predicate on the "recall_set_id" field.
func RecallSetIDEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldRecallSetID, v))
}

// RecallSetIDNEQ applies the NEQ predicate on the "recall_set_id" field.
func RecallSetIDNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldRecallSetID, v))
}

// RecallSetIDIn applies the In predicate on the "recall_set_id" field.
func RecallSetIDIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldRecallSetID, vs...))
}

// RecallSetIDNotIn applies the NotIn predicate on the "recall_set_id" field.
func RecallSetIDNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldRecallSetID, vs...))
}

// RecallSetIDGT applies the GT predicate on the "recall_set_id" field.
func RecallSetIDGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldRecallSetID, v))
}

// RecallSetIDGTE applies the GTE predicate on the "recall_set_id" field.
func RecallSetIDGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldRecallSetID, v))
}

// RecallSetIDLT applies the LT predicate on the "recall_set_id" field.
func RecallSetIDLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldRecallSetID, v))
}

// RecallSetIDLTE applies the LTE predicate on the "recall_set_id" field.
func RecallSetIDLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldRecallSetID, v))
}

// RecallSetIDContains applies the Contains predicate on the "recall_set_id" field.
func RecallSetIDContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldRecallSetID, v))
}

// RecallSetIDHasPrefix applies the HasPrefix predicate on the "recall_set_id" field.
func RecallSetIDHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldRecallSetID, v))
}

// RecallSetIDHasSuffix applies the HasSuffix predicate on the "recall_set_id" field.
func RecallSetIDHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldRecallSetID, v))
}

// RecallSetIDEqualFold applies the EqualFold predicate on the "recall_set_id" field.
func RecallSetIDEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldRecallSetID, v))
}

// RecallSetIDContainsFold applies the ContainsFold predicate on the "recall_set_id" field.
func RecallSetIDContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldRecallSetID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldStatus, vs...))
}

// RecalledPointIdsIsNil applies the IsNil predicate on the "recalled_point_ids" field.
func RecalledPointIdsIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldRecalledPointIds))
}

// RecalledPointIdsNotNil applies the NotNil predicate on the "recalled_point_ids" field.
func RecalledPointIdsNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldRecalledPointIds))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldStartedAt, v))
}

// ResumedAtEQ applies the EQ predicate on the "resumed_at" field.
func ResumedAtEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldResumedAt, v))
}

// ResumedAtNEQ applies the NEQ predicate on the "resumed_at" field.
func ResumedAtNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldResumedAt, v))
}

// ResumedAtIn applies the In predicate on the "resumed_at" field.
func ResumedAtIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldResumedAt, vs...))
}

// ResumedAtNotIn applies the NotIn predicate on the "resumed_at" field.
func ResumedAtNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldResumedAt, vs...))
}

// ResumedAtGT applies the GT predicate on the "resumed_at" field.
func ResumedAtGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldResumedAt, v))
}

// ResumedAtGTE applies the GTE predicate on the "resumed_at" field.
func ResumedAtGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldResumedAt, v))
}

// ResumedAtLT applies the LT predicate on the "resumed_at" field.
func ResumedAtLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldResumedAt, v))
}

// ResumedAtLTE applies the LTE predicate on the "resumed_at" field.
func ResumedAtLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldResumedAt, v))
}

// ResumedAtIsNil applies the IsNil predicate on the "resumed_at" field.
func ResumedAtIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldResumedAt))
}

// ResumedAtNotNil applies the NotNil predicate on the "resumed_at" field.
func ResumedAtNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldResumedAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldEndedAt))
}

// HasRecallSet applies the HasEdge predicate on the "recall_set" edge.
func HasRecallSet() predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecallSetTable, RecallSetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecallSetWith applies the HasEdge predicate on the "recall_set" edge with a given conditions (other predicates).
func HasRecallSetWith(preds ...predicate.RecallSet) predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := newRecallSetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.SessionMessage) predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRabbitholeEvents applies the HasEdge predicate on the "rabbithole_events" edge.
func HasRabbitholeEvents() predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RabbitholeEventsTable, RabbitholeEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRabbitholeEventsWith applies the HasEdge predicate on the "rabbithole_events" edge with a given conditions (other predicates).
func HasRabbitholeEventsWith(preds ...predicate.RabbitholeEvent) predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := newRabbitholeEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutcomes applies the HasEdge predicate on the "outcomes" edge.
func HasOutcomes() predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutcomesWith applies the HasEdge predicate on the "outcomes" edge with a given conditions (other predicates).
func HasOutcomesWith(preds ...predicate.RecallOutcome) predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := newOutcomesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMetrics applies the HasEdge predicate on the "metrics" edge.
func HasMetrics() predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, MetricsTable, MetricsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMetricsWith applies the HasEdge predicate on the "metrics" edge with a given conditions (other predicates).
func HasMetricsWith(preds ...predicate.SessionMetrics) predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := newMetricsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.NotPredicates(p))
}
