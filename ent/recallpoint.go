// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recallkit/recallkit/ent/recallpoint"
	"github.com/recallkit/recallkit/ent/recallset"
)

// RecallPoint is the model entity for the RecallPoint schema.
type RecallPoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RecallSetID holds the value of the "recall_set_id" field.
	RecallSetID string `json:"recall_set_id,omitempty"`
	// The fact to be recalled
	Content string `json:"content,omitempty"`
	// Background shown to the tutor, never quoted to the user
	Context string `json:"context,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty float64 `json:"difficulty,omitempty"`
	// Stability holds the value of the "stability" field.
	Stability float64 `json:"stability,omitempty"`
	// Due holds the value of the "due" field.
	Due time.Time `json:"due,omitempty"`
	// LastReview holds the value of the "last_review" field.
	LastReview *time.Time `json:"last_review,omitempty"`
	// Reps holds the value of the "reps" field.
	Reps int `json:"reps,omitempty"`
	// Lapses holds the value of the "lapses" field.
	Lapses int `json:"lapses,omitempty"`
	// State holds the value of the "state" field.
	State recallpoint.State `json:"state,omitempty"`
	// Append-only attempts: [{timestamp_ms, success, latency_ms}]
	RecallHistory []map[string]interface{} `json:"recall_history,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecallPointQuery when eager-loading is set.
	Edges        RecallPointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecallPointEdges holds the relations/edges for other nodes in the graph.
type RecallPointEdges struct {
	// RecallSet holds the value of the recall_set edge.
	RecallSet *RecallSet `json:"recall_set,omitempty"`
	// Outcomes holds the value of the outcomes edge.
	Outcomes []*RecallOutcome `json:"outcomes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RecallSetOrErr returns the RecallSet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecallPointEdges) RecallSetOrErr() (*RecallSet, error) {
	if e.RecallSet != nil {
		return e.RecallSet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: recallset.Label}
	}
	return nil, &NotLoadedError{edge: "recall_set"}
}

// OutcomesOrErr returns the Outcomes value or an error if the edge
// was not loaded in eager-loading.
func (e RecallPointEdges) OutcomesOrErr() ([]*RecallOutcome, error) {
	if e.loadedTypes[1] {
		return e.Outcomes, nil
	}
	return nil, &NotLoadedError{edge: "outcomes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecallPoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recallpoint.FieldRecallHistory:
			values[i] = new([]byte)
		case recallpoint.FieldDifficulty, recallpoint.FieldStability:
			values[i] = new(sql.NullFloat64)
		case recallpoint.FieldReps, recallpoint.FieldLapses:
			values[i] = new(sql.NullInt64)
		case recallpoint.FieldID, recallpoint.FieldRecallSetID, recallpoint.FieldContent, recallpoint.FieldContext, recallpoint.FieldState:
			values[i] = new(sql.NullString)
		case recallpoint.FieldDue, recallpoint.FieldLastReview, recallpoint.FieldCreatedAt, recallpoint.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecallPoint fields.
func (_m *RecallPoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recallpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recallpoint.FieldRecallSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recall_set_id", values[i])
			} else if value.Valid {
				_m.RecallSetID = value.String
			}
		case recallpoint.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case recallpoint.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case recallpoint.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case recallpoint.FieldStability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stability", values[i])
			} else if value.Valid {
				_m.Stability = value.Float64
			}
		case recallpoint.FieldDue:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due", values[i])
			} else if value.Valid {
				_m.Due = value.Time
			}
		case recallpoint.FieldLastReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_review", values[i])
			} else if value.Valid {
				_m.LastReview = new(time.Time)
				*_m.LastReview = value.Time
			}
		case recallpoint.FieldReps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reps", values[i])
			} else if value.Valid {
				_m.Reps = int(value.Int64)
			}
		case recallpoint.FieldLapses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lapses", values[i])
			} else if value.Valid {
				_m.Lapses = int(value.Int64)
			}
		case recallpoint.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = recallpoint.State(value.String)
			}
		case recallpoint.FieldRecallHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recall_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecallHistory); err != nil {
					return fmt.Errorf("unmarshal field recall_history: %w", err)
				}
			}
		case recallpoint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recallpoint.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecallPoint.
// This includes values selected through modifiers, order, etc.
func (_m *RecallPoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecallSet queries the "recall_set" edge of the RecallPoint entity.
func (_m *RecallPoint) QueryRecallSet() *RecallSetQuery {
	return NewRecallPointClient(_m.config).QueryRecallSet(_m)
}

// QueryOutcomes queries the "outcomes" edge of the RecallPoint entity.
func (_m *RecallPoint) QueryOutcomes() *RecallOutcomeQuery {
	return NewRecallPointClient(_m.config).QueryOutcomes(_m)
}

// Update returns a builder for updating this RecallPoint.
// Note that you need to call RecallPoint.Unwrap() before calling this method if this RecallPoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecallPoint) Update() *RecallPointUpdateOne {
	return NewRecallPointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecallPoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecallPoint) Unwrap() *RecallPoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecallPoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecallPoint) String() string {
	var builder strings.Builder
	builder.WriteString("RecallPoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recall_set_id=")
	builder.WriteString(_m.RecallSetID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("stability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stability))
	builder.WriteString(", ")
	builder.WriteString("due=")
	builder.WriteString(_m.Due.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastReview; v != nil {
		builder.WriteString("last_review=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("reps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reps))
	builder.WriteString(", ")
	builder.WriteString("lapses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lapses))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("recall_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecallHistory))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RecallPoints is a parsable slice of RecallPoint.
type RecallPoints []*RecallPoint
