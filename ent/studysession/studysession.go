// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the studysession type in the database.
	Label = "study_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldRecallSetID holds the string denoting the recall_set_id field in the database.
	FieldRecallSetID = "recall_set_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTargetPointIds holds the string denoting the target_point_ids field in the database.
	FieldTargetPointIds = "target_point_ids"
	// FieldRecalledPointIds holds the string denoting the recalled_point_ids field in the database.
	FieldRecalledPointIds = "recalled_point_ids"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldResumedAt holds the string denoting the resumed_at field in the database.
	FieldResumedAt = "resumed_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// EdgeRecallSet holds the string denoting the recall_set edge name in mutations.
	EdgeRecallSet = "recall_set"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeRabbitholeEvents holds the string denoting the rabbithole_events edge name in mutations.
	EdgeRabbitholeEvents = "rabbithole_events"
	// EdgeOutcomes holds the string denoting the outcomes edge name in mutations.
	EdgeOutcomes = "outcomes"
	// EdgeMetrics holds the string denoting the metrics edge name in mutations.
	EdgeMetrics = "metrics"
	// RecallSetFieldID holds the string denoting the ID field of the RecallSet.
	RecallSetFieldID = "recall_set_id"
	// SessionMessageFieldID holds the string denoting the ID field of the SessionMessage.
	SessionMessageFieldID = "message_id"
	// RabbitholeEventFieldID holds the string denoting the ID field of the RabbitholeEvent.
	RabbitholeEventFieldID = "rabbithole_event_id"
	// RecallOutcomeFieldID holds the string denoting the ID field of the RecallOutcome.
	RecallOutcomeFieldID = "recall_outcome_id"
	// SessionMetricsFieldID holds the string denoting the ID field of the SessionMetrics.
	SessionMetricsFieldID = "session_metrics_id"
	// Table holds the table name of the studysession in the database.
	Table = "study_sessions"
	// RecallSetTable is the table that holds the recall_set relation/edge.
	RecallSetTable = "study_sessions"
	// RecallSetInverseTable is the table name for the RecallSet entity.
	// It exists in this package in order to avoid circular dependency with the "recallset" package.
	RecallSetInverseTable = "recall_sets"
	// RecallSetColumn is the table column denoting the recall_set relation/edge.
	RecallSetColumn = "recall_set_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "session_messages"
	// MessagesInverseTable is the table name for the SessionMessage entity.
	// It exists in this package in order to avoid circular dependency with the "sessionmessage" package.
	MessagesInverseTable = "session_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "session_id"
	// RabbitholeEventsTable is the table that holds the rabbithole_events relation/edge.
	RabbitholeEventsTable = "rabbithole_events"
	// RabbitholeEventsInverseTable is the table name for the RabbitholeEvent entity.
	// It exists in this package in order to avoid circular dependency with the "rabbitholeevent" package.
	RabbitholeEventsInverseTable = "rabbithole_events"
	// RabbitholeEventsColumn is the table column denoting the rabbithole_events relation/edge.
	RabbitholeEventsColumn = "session_id"
	// OutcomesTable is the table that holds the outcomes relation/edge.
	OutcomesTable = "recall_outcomes"
	// OutcomesInverseTable is the table name for the RecallOutcome entity.
	// It exists in this package in order to avoid circular dependency with the "recalloutcome" package.
	OutcomesInverseTable = "recall_outcomes"
	// OutcomesColumn is the table column denoting the outcomes relation/edge.
	OutcomesColumn = "session_id"
	// MetricsTable is the table that holds the metrics relation/edge.
	MetricsTable = "session_metrics"
	// MetricsInverseTable is the table name for the SessionMetrics entity.
	// It exists in this package in order to avoid circular dependency with the "sessionmetrics" package.
	MetricsInverseTable = "session_metrics"
	// MetricsColumn is the table column denoting the metrics relation/edge.
	MetricsColumn = "session_id"
)

// Columns holds all SQL columns for studysession fields.
var Columns = []string{
	FieldID,
	FieldRecallSetID,
	FieldStatus,
	FieldTargetPointIds,
	FieldRecalledPointIds,
	FieldStartedAt,
	FieldResumedAt,
	FieldEndedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusPaused, StatusCompleted, StatusAbandoned:
		return nil
	default:
		return fmt.Errorf("studysession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the StudySession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecallSetID orders the results by the recall_set_id field.
func ByRecallSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecallSetID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByResumedAt orders the results by the resumed_at field.
func ByResumedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByRecallSetField orders the results by recall_set field.
func ByRecallSetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecallSetStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRabbitholeEventsCount orders the results by rabbithole_events count.
func ByRabbitholeEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRabbitholeEventsStep(), opts...)
	}
}

// ByRabbitholeEvents orders the results by rabbithole_events terms.
func ByRabbitholeEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRabbitholeEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOutcomesCount orders the results by outcomes count.
func ByOutcomesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutcomesStep(), opts...)
	}
}

// ByOutcomes orders the results by outcomes terms.
func ByOutcomes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutcomesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMetricsField orders the results by metrics field.
func ByMetricsField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMetricsStep(), sql.OrderByField(field, opts...))
	}
}
func newRecallSetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecallSetInverseTable, RecallSetFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecallSetTable, RecallSetColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, SessionMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newRabbitholeEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RabbitholeEventsInverseTable, RabbitholeEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RabbitholeEventsTable, RabbitholeEventsColumn),
	)
}
func newOutcomesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutcomesInverseTable, RecallOutcomeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
	)
}
func newMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MetricsInverseTable, SessionMetricsFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, MetricsTable, MetricsColumn),
	)
}
