// Code generated by ent, DO NOT EDIT.

package recallpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recallpoint type in the database.
	Label = "recall_point"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "recall_point_id"
	// FieldRecallSetID holds the string denoting the recall_set_id field in the database.
	FieldRecallSetID = "recall_set_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldStability holds the string denoting the stability field in the database.
	FieldStability = "stability"
	// FieldDue holds the string denoting the due field in the database.
	FieldDue = "due"
	// FieldLastReview holds the string denoting the last_review field in the database.
	FieldLastReview = "last_review"
	// FieldReps holds the string denoting the reps field in the database.
	FieldReps = "reps"
	// FieldLapses holds the string denoting the lapses field in the database.
	FieldLapses = "lapses"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldRecallHistory holds the string denoting the recall_history field in the database.
	FieldRecallHistory = "recall_history"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRecallSet holds the string denoting the recall_set edge name in mutations.
	EdgeRecallSet = "recall_set"
	// EdgeOutcomes holds the string denoting the outcomes edge name in mutations.
	EdgeOutcomes = "outcomes"
	// RecallSetFieldID holds the string denoting the ID field of the RecallSet.
	RecallSetFieldID = "recall_set_id"
	// RecallOutcomeFieldID holds the string denoting the ID field of the RecallOutcome.
	RecallOutcomeFieldID = "recall_outcome_id"
	// Table holds the table name of the recallpoint in the database.
	Table = "recall_points"
	// RecallSetTable is the table that holds the recall_set relation/edge.
	RecallSetTable = "recall_points"
	// RecallSetInverseTable is the table name for the RecallSet entity.
	// It exists in this package in order to avoid circular dependency with the "recallset" package.
	RecallSetInverseTable = "recall_sets"
	// RecallSetColumn is the table column denoting the recall_set relation/edge.
	RecallSetColumn = "recall_set_id"
	// OutcomesTable is the table that holds the outcomes relation/edge.
	OutcomesTable = "recall_outcomes"
	// OutcomesInverseTable is the table name for the RecallOutcome entity.
	// It exists in this package in order to avoid circular dependency with the "recalloutcome" package.
	OutcomesInverseTable = "recall_outcomes"
	// OutcomesColumn is the table column denoting the outcomes relation/edge.
	OutcomesColumn = "recall_point_id"
)

// Columns holds all SQL columns for recallpoint fields.
var Columns = []string{
	FieldID,
	FieldRecallSetID,
	FieldContent,
	FieldContext,
	FieldDifficulty,
	FieldStability,
	FieldDue,
	FieldLastReview,
	FieldReps,
	FieldLapses,
	FieldState,
	FieldRecallHistory,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultContext holds the default value on creation for the "context" field.
	DefaultContext string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty float64
	// DefaultStability holds the default value on creation for the "stability" field.
	DefaultStability float64
	// DefaultReps holds the default value on creation for the "reps" field.
	DefaultReps int
	// DefaultLapses holds the default value on creation for the "lapses" field.
	DefaultLapses int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateNew is the default value of the State enum.
const DefaultState = StateNew

// State values.
const (
	StateNew        State = "new"
	StateLearning   State = "learning"
	StateReview     State = "review"
	StateRelearning State = "relearning"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateNew, StateLearning, StateReview, StateRelearning:
		return nil
	default:
		return fmt.Errorf("recallpoint: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the RecallPoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecallSetID orders the results by the recall_set_id field.
func ByRecallSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecallSetID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByStability orders the results by the stability field.
func ByStability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStability, opts...).ToFunc()
}

// ByDue orders the results by the due field.
func ByDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDue, opts...).ToFunc()
}

// ByLastReview orders the results by the last_review field.
func ByLastReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReview, opts...).ToFunc()
}

// ByReps orders the results by the reps field.
func ByReps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReps, opts...).ToFunc()
}

// ByLapses orders the results by the lapses field.
func ByLapses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLapses, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRecallSetField orders the results by recall_set field.
func ByRecallSetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecallSetStep(), sql.OrderByField(field, opts...))
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
func newRecallSetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecallSetInverseTable, RecallSetFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecallSetTable, RecallSetColumn),
	)
}
func newOutcomesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutcomesInverseTable, RecallOutcomeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
	)
}
