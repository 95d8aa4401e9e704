// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recallkit/recallkit/ent/sessionmetrics"
	"github.com/recallkit/recallkit/ent/studysession"
)

// SessionMetrics is the model entity for the SessionMetrics schema.
type SessionMetrics struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// TotalDurationMs holds the value of the "total_duration_ms" field.
	TotalDurationMs int64 `json:"total_duration_ms,omitempty"`
	// Sum of inter-message gaps below the pause threshold
	ActiveDurationMs int64 `json:"active_duration_ms,omitempty"`
	// AvgUserResponseMs holds the value of the "avg_user_response_ms" field.
	AvgUserResponseMs int64 `json:"avg_user_response_ms,omitempty"`
	// AvgAssistantResponseMs holds the value of the "avg_assistant_response_ms" field.
	AvgAssistantResponseMs int64 `json:"avg_assistant_response_ms,omitempty"`
	// PointsAttempted holds the value of the "points_attempted" field.
	PointsAttempted int `json:"points_attempted,omitempty"`
	// PointsSuccessful holds the value of the "points_successful" field.
	PointsSuccessful int `json:"points_successful,omitempty"`
	// PointsFailed holds the value of the "points_failed" field.
	PointsFailed int `json:"points_failed,omitempty"`
	// RecallRate holds the value of the "recall_rate" field.
	RecallRate float64 `json:"recall_rate,omitempty"`
	// AvgConfidence holds the value of the "avg_confidence" field.
	AvgConfidence float64 `json:"avg_confidence,omitempty"`
	// UserMessages holds the value of the "user_messages" field.
	UserMessages int `json:"user_messages,omitempty"`
	// AssistantMessages holds the value of the "assistant_messages" field.
	AssistantMessages int `json:"assistant_messages,omitempty"`
	// TotalMessages holds the value of the "total_messages" field.
	TotalMessages int `json:"total_messages,omitempty"`
	// RabbitholeCount holds the value of the "rabbithole_count" field.
	RabbitholeCount int `json:"rabbithole_count,omitempty"`
	// RabbitholeDurationMs holds the value of the "rabbithole_duration_ms" field.
	RabbitholeDurationMs int64 `json:"rabbithole_duration_ms,omitempty"`
	// RabbitholeAvgDepth holds the value of the "rabbithole_avg_depth" field.
	RabbitholeAvgDepth float64 `json:"rabbithole_avg_depth,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// EstimatedCostUsd holds the value of the "estimated_cost_usd" field.
	EstimatedCostUsd float64 `json:"estimated_cost_usd,omitempty"`
	// Composite [0,100]: response-time regularity, length variance, recall rate
	EngagementScore float64 `json:"engagement_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionMetricsQuery when eager-loading is set.
	Edges        SessionMetricsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionMetricsEdges holds the relations/edges for other nodes in the graph.
type SessionMetricsEdges struct {
	// Session holds the value of the session edge.
	Session *StudySession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionMetricsEdges) SessionOrErr() (*StudySession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: studysession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionMetrics) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionmetrics.FieldRecallRate, sessionmetrics.FieldAvgConfidence, sessionmetrics.FieldRabbitholeAvgDepth, sessionmetrics.FieldEstimatedCostUsd, sessionmetrics.FieldEngagementScore:
			values[i] = new(sql.NullFloat64)
		case sessionmetrics.FieldTotalDurationMs, sessionmetrics.FieldActiveDurationMs, sessionmetrics.FieldAvgUserResponseMs, sessionmetrics.FieldAvgAssistantResponseMs, sessionmetrics.FieldPointsAttempted, sessionmetrics.FieldPointsSuccessful, sessionmetrics.FieldPointsFailed, sessionmetrics.FieldUserMessages, sessionmetrics.FieldAssistantMessages, sessionmetrics.FieldTotalMessages, sessionmetrics.FieldRabbitholeCount, sessionmetrics.FieldRabbitholeDurationMs, sessionmetrics.FieldInputTokens, sessionmetrics.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case sessionmetrics.FieldID, sessionmetrics.FieldSessionID:
			values[i] = new(sql.NullString)
		case sessionmetrics.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionMetrics fields.
func (_m *SessionMetrics) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionmetrics.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionmetrics.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionmetrics.FieldTotalDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_duration_ms", values[i])
			} else if value.Valid {
				_m.TotalDurationMs = value.Int64
			}
		case sessionmetrics.FieldActiveDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_duration_ms", values[i])
			} else if value.Valid {
				_m.ActiveDurationMs = value.Int64
			}
		case sessionmetrics.FieldAvgUserResponseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_user_response_ms", values[i])
			} else if value.Valid {
				_m.AvgUserResponseMs = value.Int64
			}
		case sessionmetrics.FieldAvgAssistantResponseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_assistant_response_ms", values[i])
			} else if value.Valid {
				_m.AvgAssistantResponseMs = value.Int64
			}
		case sessionmetrics.FieldPointsAttempted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_attempted", values[i])
			} else if value.Valid {
				_m.PointsAttempted = int(value.Int64)
			}
		case sessionmetrics.FieldPointsSuccessful:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_successful", values[i])
			} else if value.Valid {
				_m.PointsSuccessful = int(value.Int64)
			}
		case sessionmetrics.FieldPointsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_failed", values[i])
			} else if value.Valid {
				_m.PointsFailed = int(value.Int64)
			}
		case sessionmetrics.FieldRecallRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recall_rate", values[i])
			} else if value.Valid {
				_m.RecallRate = value.Float64
			}
		case sessionmetrics.FieldAvgConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_confidence", values[i])
			} else if value.Valid {
				_m.AvgConfidence = value.Float64
			}
		case sessionmetrics.FieldUserMessages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_messages", values[i])
			} else if value.Valid {
				_m.UserMessages = int(value.Int64)
			}
		case sessionmetrics.FieldAssistantMessages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assistant_messages", values[i])
			} else if value.Valid {
				_m.AssistantMessages = int(value.Int64)
			}
		case sessionmetrics.FieldTotalMessages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_messages", values[i])
			} else if value.Valid {
				_m.TotalMessages = int(value.Int64)
			}
		case sessionmetrics.FieldRabbitholeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rabbithole_count", values[i])
			} else if value.Valid {
				_m.RabbitholeCount = int(value.Int64)
			}
		case sessionmetrics.FieldRabbitholeDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rabbithole_duration_ms", values[i])
			} else if value.Valid {
				_m.RabbitholeDurationMs = value.Int64
			}
		case sessionmetrics.FieldRabbitholeAvgDepth:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rabbithole_avg_depth", values[i])
			} else if value.Valid {
				_m.RabbitholeAvgDepth = value.Float64
			}
		case sessionmetrics.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case sessionmetrics.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case sessionmetrics.FieldEstimatedCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost_usd", values[i])
			} else if value.Valid {
				_m.EstimatedCostUsd = value.Float64
			}
		case sessionmetrics.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				_m.EngagementScore = value.Float64
			}
		case sessionmetrics.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionMetrics.
// This includes values selected through modifiers, order, etc.
func (_m *SessionMetrics) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SessionMetrics entity.
func (_m *SessionMetrics) QuerySession() *StudySessionQuery {
	return NewSessionMetricsClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this SessionMetrics.
// Note that you need to call SessionMetrics.Unwrap() before calling this method if this SessionMetrics
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionMetrics) Update() *SessionMetricsUpdateOne {
	return NewSessionMetricsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionMetrics entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionMetrics) Unwrap() *SessionMetrics {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionMetrics is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionMetrics) String() string {
	var builder strings.Builder
	builder.WriteString("SessionMetrics(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("total_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalDurationMs))
	builder.WriteString(", ")
	builder.WriteString("active_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveDurationMs))
	builder.WriteString(", ")
	builder.WriteString("avg_user_response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgUserResponseMs))
	builder.WriteString(", ")
	builder.WriteString("avg_assistant_response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgAssistantResponseMs))
	builder.WriteString(", ")
	builder.WriteString("points_attempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsAttempted))
	builder.WriteString(", ")
	builder.WriteString("points_successful=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsSuccessful))
	builder.WriteString(", ")
	builder.WriteString("points_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsFailed))
	builder.WriteString(", ")
	builder.WriteString("recall_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecallRate))
	builder.WriteString(", ")
	builder.WriteString("avg_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgConfidence))
	builder.WriteString(", ")
	builder.WriteString("user_messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserMessages))
	builder.WriteString(", ")
	builder.WriteString("assistant_messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssistantMessages))
	builder.WriteString(", ")
	builder.WriteString("total_messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMessages))
	builder.WriteString(", ")
	builder.WriteString("rabbithole_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RabbitholeCount))
	builder.WriteString(", ")
	builder.WriteString("rabbithole_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.RabbitholeDurationMs))
	builder.WriteString(", ")
	builder.WriteString("rabbithole_avg_depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.RabbitholeAvgDepth))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("estimated_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedCostUsd))
	builder.WriteString(", ")
	builder.WriteString("engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionMetricsSlice is a parsable slice of SessionMetrics.
type SessionMetricsSlice []*SessionMetrics
