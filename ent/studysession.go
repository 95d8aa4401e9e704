// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recallkit/recallkit/ent/recallset"
	"github.com/recallkit/recallkit/ent/sessionmetrics"
	"github.com/recallkit/recallkit/ent/studysession"
)

// StudySession is the model entity for the StudySession schema.
type StudySession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RecallSetID holds the value of the "recall_set_id" field.
	RecallSetID string `json:"recall_set_id,omitempty"`
	// Status holds the value of the "status" field.
	Status studysession.Status `json:"status,omitempty"`
	// Ordered probe sequence chosen at start
	TargetPointIds []string `json:"target_point_ids,omitempty"`
	// Persisted checklist progress; always a subset of target_point_ids
	RecalledPointIds []string `json:"recalled_point_ids,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// ResumedAt holds the value of the "resumed_at" field.
	ResumedAt *time.Time `json:"resumed_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudySessionQuery when eager-loading is set.
	Edges        StudySessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudySessionEdges holds the relations/edges for other nodes in the graph.
type StudySessionEdges struct {
	// RecallSet holds the value of the recall_set edge.
	RecallSet *RecallSet `json:"recall_set,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*SessionMessage `json:"messages,omitempty"`
	// RabbitholeEvents holds the value of the rabbithole_events edge.
	RabbitholeEvents []*RabbitholeEvent `json:"rabbithole_events,omitempty"`
	// Outcomes holds the value of the outcomes edge.
	Outcomes []*RecallOutcome `json:"outcomes,omitempty"`
	// Metrics holds the value of the metrics edge.
	Metrics *SessionMetrics `json:"metrics,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// RecallSetOrErr returns the RecallSet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StudySessionEdges) RecallSetOrErr() (*RecallSet, error) {
	if e.RecallSet != nil {
		return e.RecallSet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: recallset.Label}
	}
	return nil, &NotLoadedError{edge: "recall_set"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e StudySessionEdges) MessagesOrErr() ([]*SessionMessage, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// RabbitholeEventsOrErr returns the RabbitholeEvents value or an error if the edge
// was not loaded in eager-loading.
func (e StudySessionEdges) RabbitholeEventsOrErr() ([]*RabbitholeEvent, error) {
	if e.loadedTypes[2] {
		return e.RabbitholeEvents, nil
	}
	return nil, &NotLoadedError{edge: "rabbithole_events"}
}

// OutcomesOrErr returns the Outcomes value or an error if the edge
// was not loaded in eager-loading.
func (e StudySessionEdges) OutcomesOrErr() ([]*RecallOutcome, error) {
	if e.loadedTypes[3] {
		return e.Outcomes, nil
	}
	return nil, &NotLoadedError{edge: "outcomes"}
}

// MetricsOrErr returns the Metrics value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StudySessionEdges) MetricsOrErr() (*SessionMetrics, error) {
	if e.Metrics != nil {
		return e.Metrics, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: sessionmetrics.Label}
	}
	return nil, &NotLoadedError{edge: "metrics"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudySession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studysession.FieldTargetPointIds, studysession.FieldRecalledPointIds:
			values[i] = new([]byte)
		case studysession.FieldID, studysession.FieldRecallSetID, studysession.FieldStatus:
			values[i] = new(sql.NullString)
		case studysession.FieldStartedAt, studysession.FieldResumedAt, studysession.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudySession fields.
func (_m *StudySession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studysession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case studysession.FieldRecallSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recall_set_id", values[i])
			} else if value.Valid {
				_m.RecallSetID = value.String
			}
		case studysession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = studysession.Status(value.String)
			}
		case studysession.FieldTargetPointIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target_point_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TargetPointIds); err != nil {
					return fmt.Errorf("unmarshal field target_point_ids: %w", err)
				}
			}
		case studysession.FieldRecalledPointIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recalled_point_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecalledPointIds); err != nil {
					return fmt.Errorf("unmarshal field recalled_point_ids: %w", err)
				}
			}
		case studysession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case studysession.FieldResumedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resumed_at", values[i])
			} else if value.Valid {
				_m.ResumedAt = new(time.Time)
				*_m.ResumedAt = value.Time
			}
		case studysession.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudySession.
// This includes values selected through modifiers, order, etc.
func (_m *StudySession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecallSet queries the "recall_set" edge of the StudySession entity.
func (_m *StudySession) QueryRecallSet() *RecallSetQuery {
	return NewStudySessionClient(_m.config).QueryRecallSet(_m)
}

// QueryMessages queries the "messages" edge of the StudySession entity.
func (_m *StudySession) QueryMessages() *SessionMessageQuery {
	return NewStudySessionClient(_m.config).QueryMessages(_m)
}

// QueryRabbitholeEvents queries the "rabbithole_events" edge of the StudySession entity.
func (_m *StudySession) QueryRabbitholeEvents() *RabbitholeEventQuery {
	return NewStudySessionClient(_m.config).QueryRabbitholeEvents(_m)
}

// QueryOutcomes queries the "outcomes" edge of the StudySession entity.
func (_m *StudySession) QueryOutcomes() *RecallOutcomeQuery {
	return NewStudySessionClient(_m.config).QueryOutcomes(_m)
}

// QueryMetrics queries the "metrics" edge of the StudySession entity.
func (_m *StudySession) QueryMetrics() *SessionMetricsQuery {
	return NewStudySessionClient(_m.config).QueryMetrics(_m)
}

// Update returns a builder for updating this StudySession.
// Note that you need to call StudySession.Unwrap() before calling this method if this StudySession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudySession) Update() *StudySessionUpdateOne {
	return NewStudySessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudySession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudySession) Unwrap() *StudySession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudySession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudySession) String() string {
	var builder strings.Builder
	builder.WriteString("StudySession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recall_set_id=")
	builder.WriteString(_m.RecallSetID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("target_point_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetPointIds))
	builder.WriteString(", ")
	builder.WriteString("recalled_point_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecalledPointIds))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResumedAt; v != nil {
		builder.WriteString("resumed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// StudySessions is a parsable slice of StudySession.
type StudySessions []*StudySession
