// Code generated by ent, DO NOT EDIT.

package sessionmetrics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sessionmetrics type in the database.
	Label = "session_metrics"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_metrics_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTotalDurationMs holds the string denoting the total_duration_ms field in the database.
	FieldTotalDurationMs = "total_duration_ms"
	// FieldActiveDurationMs holds the string denoting the active_duration_ms field in the database.
	FieldActiveDurationMs = "active_duration_ms"
	// FieldAvgUserResponseMs holds the string denoting the avg_user_response_ms field in the database.
	FieldAvgUserResponseMs = "avg_user_response_ms"
	// FieldAvgAssistantResponseMs holds the string denoting the avg_assistant_response_ms field in the database.
	FieldAvgAssistantResponseMs = "avg_assistant_response_ms"
	// FieldPointsAttempted holds the string denoting the points_attempted field in the database.
	FieldPointsAttempted = "points_attempted"
	// FieldPointsSuccessful holds the string denoting the points_successful field in the database.
	FieldPointsSuccessful = "points_successful"
	// FieldPointsFailed holds the string denoting the points_failed field in the database.
	FieldPointsFailed = "points_failed"
	// FieldRecallRate holds the string denoting the recall_rate field in the database.
	FieldRecallRate = "recall_rate"
	// FieldAvgConfidence holds the string denoting the avg_confidence field in the database.
	FieldAvgConfidence = "avg_confidence"
	// FieldUserMessages holds the string denoting the user_messages field in the database.
	FieldUserMessages = "user_messages"
	// FieldAssistantMessages holds the string denoting the assistant_messages field in the database.
	FieldAssistantMessages = "assistant_messages"
	// FieldTotalMessages holds the string denoting the total_messages field in the database.
	FieldTotalMessages = "total_messages"
	// FieldRabbitholeCount holds the string denoting the rabbithole_count field in the database.
	FieldRabbitholeCount = "rabbithole_count"
	// FieldRabbitholeDurationMs holds the string denoting the rabbithole_duration_ms field in the database.
	FieldRabbitholeDurationMs = "rabbithole_duration_ms"
	// FieldRabbitholeAvgDepth holds the string denoting the rabbithole_avg_depth field in the database.
	FieldRabbitholeAvgDepth = "rabbithole_avg_depth"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldEstimatedCostUsd holds the string denoting the estimated_cost_usd field in the database.
	FieldEstimatedCostUsd = "estimated_cost_usd"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// StudySessionFieldID holds the string denoting the ID field of the StudySession.
	StudySessionFieldID = "session_id"
	// Table holds the table name of the sessionmetrics in the database.
	Table = "session_metrics"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "session_metrics"
	// SessionInverseTable is the table name for the StudySession entity.
	// It exists in this package in order to avoid circular dependency with the "studysession" package.
	SessionInverseTable = "study_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for sessionmetrics fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTotalDurationMs,
	FieldActiveDurationMs,
	FieldAvgUserResponseMs,
	FieldAvgAssistantResponseMs,
	FieldPointsAttempted,
	FieldPointsSuccessful,
	FieldPointsFailed,
	FieldRecallRate,
	FieldAvgConfidence,
	FieldUserMessages,
	FieldAssistantMessages,
	FieldTotalMessages,
	FieldRabbitholeCount,
	FieldRabbitholeDurationMs,
	FieldRabbitholeAvgDepth,
	FieldInputTokens,
	FieldOutputTokens,
	FieldEstimatedCostUsd,
	FieldEngagementScore,
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
	// DefaultAvgUserResponseMs holds the default value on creation for the "avg_user_response_ms" field.
	DefaultAvgUserResponseMs int64
	// DefaultAvgAssistantResponseMs holds the default value on creation for the "avg_assistant_response_ms" field.
	DefaultAvgAssistantResponseMs int64
	// DefaultRabbitholeCount holds the default value on creation for the "rabbithole_count" field.
	DefaultRabbitholeCount int
	// DefaultRabbitholeDurationMs holds the default value on creation for the "rabbithole_duration_ms" field.
	DefaultRabbitholeDurationMs int64
	// DefaultRabbitholeAvgDepth holds the default value on creation for the "rabbithole_avg_depth" field.
	DefaultRabbitholeAvgDepth float64
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int
	// DefaultEstimatedCostUsd holds the default value on creation for the "estimated_cost_usd" field.
	DefaultEstimatedCostUsd float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SessionMetrics queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTotalDurationMs orders the results by the total_duration_ms field.
func ByTotalDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDurationMs, opts...).ToFunc()
}

// ByActiveDurationMs orders the results by the active_duration_ms field.
func ByActiveDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveDurationMs, opts...).ToFunc()
}

// ByAvgUserResponseMs orders the results by the avg_user_response_ms field.
func ByAvgUserResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgUserResponseMs, opts...).ToFunc()
}

// ByAvgAssistantResponseMs orders the results by the avg_assistant_response_ms field.
func ByAvgAssistantResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgAssistantResponseMs, opts...).ToFunc()
}

// ByPointsAttempted orders the results by the points_attempted field.
func ByPointsAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsAttempted, opts...).ToFunc()
}

// ByPointsSuccessful orders the results by the points_successful field.
func ByPointsSuccessful(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsSuccessful, opts...).ToFunc()
}

// ByPointsFailed orders the results by the points_failed field.
func ByPointsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsFailed, opts...).ToFunc()
}

// ByRecallRate orders the results by the recall_rate field.
func ByRecallRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecallRate, opts...).ToFunc()
}

// ByAvgConfidence orders the results by the avg_confidence field.
func ByAvgConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgConfidence, opts...).ToFunc()
}

// ByUserMessages orders the results by the user_messages field.
func ByUserMessages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserMessages, opts...).ToFunc()
}

// ByAssistantMessages orders the results by the assistant_messages field.
func ByAssistantMessages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssistantMessages, opts...).ToFunc()
}

// ByTotalMessages orders the results by the total_messages field.
func ByTotalMessages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMessages, opts...).ToFunc()
}

// ByRabbitholeCount orders the results by the rabbithole_count field.
func ByRabbitholeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRabbitholeCount, opts...).ToFunc()
}

// ByRabbitholeDurationMs orders the results by the rabbithole_duration_ms field.
func ByRabbitholeDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRabbitholeDurationMs, opts...).ToFunc()
}

// ByRabbitholeAvgDepth orders the results by the rabbithole_avg_depth field.
func ByRabbitholeAvgDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRabbitholeAvgDepth, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByEstimatedCostUsd orders the results by the estimated_cost_usd field.
func ByEstimatedCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostUsd, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
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
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, StudySessionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
	)
}
