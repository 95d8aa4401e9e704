// Code generated by ent, DO NOT EDIT.

package recalloutcome

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recalloutcome type in the database.
	Label = "recall_outcome"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "recall_outcome_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRecallPointID holds the string denoting the recall_point_id field in the database.
	FieldRecallPointID = "recall_point_id"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldMessageIndexStart holds the string denoting the message_index_start field in the database.
	FieldMessageIndexStart = "message_index_start"
	// FieldMessageIndexEnd holds the string denoting the message_index_end field in the database.
	FieldMessageIndexEnd = "message_index_end"
	// FieldTimeSpentMs holds the string denoting the time_spent_ms field in the database.
	FieldTimeSpentMs = "time_spent_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeRecallPoint holds the string denoting the recall_point edge name in mutations.
	EdgeRecallPoint = "recall_point"
	// StudySessionFieldID holds the string denoting the ID field of the StudySession.
	StudySessionFieldID = "session_id"
	// RecallPointFieldID holds the string denoting the ID field of the RecallPoint.
	RecallPointFieldID = "recall_point_id"
	// Table holds the table name of the recalloutcome in the database.
	Table = "recall_outcomes"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "recall_outcomes"
	// SessionInverseTable is the table name for the StudySession entity.
	// It exists in this package in order to avoid circular dependency with the "studysession" package.
	SessionInverseTable = "study_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// RecallPointTable is the table that holds the recall_point relation/edge.
	RecallPointTable = "recall_outcomes"
	// RecallPointInverseTable is the table name for the RecallPoint entity.
	// It exists in this package in order to avoid circular dependency with the "recallpoint" package.
	RecallPointInverseTable = "recall_points"
	// RecallPointColumn is the table column denoting the recall_point relation/edge.
	RecallPointColumn = "recall_point_id"
)

// Columns holds all SQL columns for recalloutcome fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldRecallPointID,
	FieldSuccess,
	FieldConfidence,
	FieldRating,
	FieldReasoning,
	FieldMessageIndexStart,
	FieldMessageIndexEnd,
	FieldTimeSpentMs,
	FieldCreatedAt,
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
	// DefaultTimeSpentMs holds the default value on creation for the "time_spent_ms" field.
	DefaultTimeSpentMs int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Rating defines the type for the "rating" enum field.
type Rating string

// Rating values.
const (
	RatingForgot Rating = "forgot"
	RatingHard   Rating = "hard"
	RatingGood   Rating = "good"
	RatingEasy   Rating = "easy"
)

func (r Rating) String() string {
	return string(r)
}

// RatingValidator is a validator for the "rating" field enum values. It is called by the builders before save.
func RatingValidator(r Rating) error {
	switch r {
	case RatingForgot, RatingHard, RatingGood, RatingEasy:
		return nil
	default:
		return fmt.Errorf("recalloutcome: invalid enum value for rating field: %q", r)
	}
}

// OrderOption defines the ordering options for the RecallOutcome queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByRecallPointID orders the results by the recall_point_id field.
func ByRecallPointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecallPointID, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByMessageIndexStart orders the results by the message_index_start field.
func ByMessageIndexStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageIndexStart, opts...).ToFunc()
}

// ByMessageIndexEnd orders the results by the message_index_end field.
func ByMessageIndexEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageIndexEnd, opts...).ToFunc()
}

// ByTimeSpentMs orders the results by the time_spent_ms field.
func ByTimeSpentMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByRecallPointField orders the results by recall_point field.
func ByRecallPointField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecallPointStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, StudySessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newRecallPointStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecallPointInverseTable, RecallPointFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecallPointTable, RecallPointColumn),
	)
}
