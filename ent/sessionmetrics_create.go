// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallkit/recallkit/ent/sessionmetrics"
	"github.com/recallkit/recallkit/ent/studysession"
)

// SessionMetricsCreate is the builder for creating a SessionMetrics entity.
type SessionMetricsCreate struct {
	config
	mutation *SessionMetricsMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionMetricsCreate) SetSessionID(v string) *SessionMetricsCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_c *SessionMetricsCreate) SetTotalDurationMs(v int64) *SessionMetricsCreate {
	_c.mutation.SetTotalDurationMs(v)
	return _c
}

// SetActiveDurationMs sets the "active_duration_ms" field.
func (_c *SessionMetricsCreate) SetActiveDurationMs(v int64) *SessionMetricsCreate {
	_c.mutation.SetActiveDurationMs(v)
	return _c
}

// SetAvgUserResponseMs sets the "avg_user_response_ms" field.
func (_c *SessionMetricsCreate) SetAvgUserResponseMs(v int64) *SessionMetricsCreate {
	_c.mutation.SetAvgUserResponseMs(v)
	return _c
}

// SetNillableAvgUserResponseMs sets the "avg_user_response_ms" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableAvgUserResponseMs(v *int64) *SessionMetricsCreate {
	if v != nil {
		_c.SetAvgUserResponseMs(*v)
	}
	return _c
}

// SetAvgAssistantResponseMs sets the "avg_assistant_response_ms" field.
func (_c *SessionMetricsCreate) SetAvgAssistantResponseMs(v int64) *SessionMetricsCreate {
	_c.mutation.SetAvgAssistantResponseMs(v)
	return _c
}

// SetNillableAvgAssistantResponseMs sets the "avg_assistant_response_ms" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableAvgAssistantResponseMs(v *int64) *SessionMetricsCreate {
	if v != nil {
		_c.SetAvgAssistantResponseMs(*v)
	}
	return _c
}

// SetPointsAttempted sets the "points_attempted" field.
func (_c *SessionMetricsCreate) SetPointsAttempted(v int) *SessionMetricsCreate {
	_c.mutation.SetPointsAttempted(v)
	return _c
}

// SetPointsSuccessful sets the "points_successful" field.
func (_c *SessionMetricsCreate) SetPointsSuccessful(v int) *SessionMetricsCreate {
	_c.mutation.SetPointsSuccessful(v)
	return _c
}

// SetPointsFailed sets the "points_failed" field.
func (_c *SessionMetricsCreate) SetPointsFailed(v int) *SessionMetricsCreate {
	_c.mutation.SetPointsFailed(v)
	return _c
}

// SetRecallRate sets the "recall_rate" field.
func (_c *SessionMetricsCreate) SetRecallRate(v float64) *SessionMetricsCreate {
	_c.mutation.SetRecallRate(v)
	return _c
}

// SetAvgConfidence sets the "avg_confidence" field.
func (_c *SessionMetricsCreate) SetAvgConfidence(v float64) *SessionMetricsCreate {
	_c.mutation.SetAvgConfidence(v)
	return _c
}

// SetUserMessages sets the "user_messages" field.
func (_c *SessionMetricsCreate) SetUserMessages(v int) *SessionMetricsCreate {
	_c.mutation.SetUserMessages(v)
	return _c
}

// SetAssistantMessages sets the "assistant_messages" field.
func (_c *SessionMetricsCreate) SetAssistantMessages(v int) *SessionMetricsCreate {
	_c.mutation.SetAssistantMessages(v)
	return _c
}

// SetTotalMessages sets the "total_messages" field.
func (_c *SessionMetricsCreate) SetTotalMessages(v int) *SessionMetricsCreate {
	_c.mutation.SetTotalMessages(v)
	return _c
}

// SetRabbitholeCount sets the "rabbithole_count" field.
func (_c *SessionMetricsCreate) SetRabbitholeCount(v int) *SessionMetricsCreate {
	_c.mutation.SetRabbitholeCount(v)
	return _c
}

// SetNillableRabbitholeCount sets the "rabbithole_count" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableRabbitholeCount(v *int) *SessionMetricsCreate {
	if v != nil {
		_c.SetRabbitholeCount(*v)
	}
	return _c
}

// SetRabbitholeDurationMs sets the "rabbithole_duration_ms" field.
func (_c *SessionMetricsCreate) SetRabbitholeDurationMs(v int64) *SessionMetricsCreate {
	_c.mutation.SetRabbitholeDurationMs(v)
	return _c
}

// SetNillableRabbitholeDurationMs sets the "rabbithole_duration_ms" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableRabbitholeDurationMs(v *int64) *SessionMetricsCreate {
	if v != nil {
		_c.SetRabbitholeDurationMs(*v)
	}
	return _c
}

// SetRabbitholeAvgDepth sets the "rabbithole_avg_depth" field.
func (_c *SessionMetricsCreate) SetRabbitholeAvgDepth(v float64) *SessionMetricsCreate {
	_c.mutation.SetRabbitholeAvgDepth(v)
	return _c
}

// SetNillableRabbitholeAvgDepth sets the "rabbithole_avg_depth" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableRabbitholeAvgDepth(v *float64) *SessionMetricsCreate {
	if v != nil {
		_c.SetRabbitholeAvgDepth(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *SessionMetricsCreate) SetInputTokens(v int) *SessionMetricsCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableInputTokens(v *int) *SessionMetricsCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *SessionMetricsCreate) SetOutputTokens(v int) *SessionMetricsCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableOutputTokens(v *int) *SessionMetricsCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_c *SessionMetricsCreate) SetEstimatedCostUsd(v float64) *SessionMetricsCreate {
	_c.mutation.SetEstimatedCostUsd(v)
	return _c
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableEstimatedCostUsd(v *float64) *SessionMetricsCreate {
	if v != nil {
		_c.SetEstimatedCostUsd(*v)
	}
	return _c
}

// SetEngagementScore sets the "engagement_score" field.
func (_c *SessionMetricsCreate) SetEngagementScore(v float64) *SessionMetricsCreate {
	_c.mutation.SetEngagementScore(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionMetricsCreate) SetCreatedAt(v time.Time) *SessionMetricsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionMetricsCreate) SetNillableCreatedAt(v *time.Time) *SessionMetricsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionMetricsCreate) SetID(v string) *SessionMetricsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the StudySession entity.
func (_c *SessionMetricsCreate) SetSession(v *StudySession) *SessionMetricsCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionMetricsMutation object of the builder.
func (_c *SessionMetricsCreate) Mutation() *SessionMetricsMutation {
	return _c.mutation
}

// Save creates the SessionMetrics in the database.
func (_c *SessionMetricsCreate) Save(ctx context.Context) (*SessionMetrics, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionMetricsCreate) SaveX(ctx context.Context) *SessionMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMetricsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMetricsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionMetricsCreate) defaults() {
	if _, ok := _c.mutation.AvgUserResponseMs(); !ok {
		v := sessionmetrics.DefaultAvgUserResponseMs
		_c.mutation.SetAvgUserResponseMs(v)
	}
	if _, ok := _c.mutation.AvgAssistantResponseMs(); !ok {
		v := sessionmetrics.DefaultAvgAssistantResponseMs
		_c.mutation.SetAvgAssistantResponseMs(v)
	}
	if _, ok := _c.mutation.RabbitholeCount(); !ok {
		v := sessionmetrics.DefaultRabbitholeCount
		_c.mutation.SetRabbitholeCount(v)
	}
	if _, ok := _c.mutation.RabbitholeDurationMs(); !ok {
		v := sessionmetrics.DefaultRabbitholeDurationMs
		_c.mutation.SetRabbitholeDurationMs(v)
	}
	if _, ok := _c.mutation.RabbitholeAvgDepth(); !ok {
		v := sessionmetrics.DefaultRabbitholeAvgDepth
		_c.mutation.SetRabbitholeAvgDepth(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := sessionmetrics.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := sessionmetrics.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.EstimatedCostUsd(); !ok {
		v := sessionmetrics.DefaultEstimatedCostUsd
		_c.mutation.SetEstimatedCostUsd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionmetrics.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionMetricsCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionMetrics.session_id"`)}
	}
	if _, ok := _c.mutation.TotalDurationMs(); !ok {
		return &ValidationError{Name: "total_duration_ms", err: errors.New(`ent: missing required field "SessionMetrics.total_duration_ms"`)}
	}
	if _, ok := _c.mutation.ActiveDurationMs(); !ok {
		return &ValidationError{Name: "active_duration_ms", err: errors.New(`ent: missing required field "SessionMetrics.active_duration_ms"`)}
	}
	if _, ok := _c.mutation.AvgUserResponseMs(); !ok {
		return &ValidationError{Name: "avg_user_response_ms", err: errors.New(`ent: missing required field "SessionMetrics.avg_user_response_ms"`)}
	}
	if _, ok := _c.mutation.AvgAssistantResponseMs(); !ok {
		return &ValidationError{Name: "avg_assistant_response_ms", err: errors.New(`ent: missing required field "SessionMetrics.avg_assistant_response_ms"`)}
	}
	if _, ok := _c.mutation.PointsAttempted(); !ok {
		return &ValidationError{Name: "points_attempted", err: errors.New(`ent: missing required field "SessionMetrics.points_attempted"`)}
	}
	if _, ok := _c.mutation.PointsSuccessful(); !ok {
		return &ValidationError{Name: "points_successful", err: errors.New(`ent: missing required field "SessionMetrics.points_successful"`)}
	}
	if _, ok := _c.mutation.PointsFailed(); !ok {
		return &ValidationError{Name: "points_failed", err: errors.New(`ent: missing required field "SessionMetrics.points_failed"`)}
	}
	if _, ok := _c.mutation.RecallRate(); !ok {
		return &ValidationError{Name: "recall_rate", err: errors.New(`ent: missing required field "SessionMetrics.recall_rate"`)}
	}
	if _, ok := _c.mutation.AvgConfidence(); !ok {
		return &ValidationError{Name: "avg_confidence", err: errors.New(`ent: missing required field "SessionMetrics.avg_confidence"`)}
	}
	if _, ok := _c.mutation.UserMessages(); !ok {
		return &ValidationError{Name: "user_messages", err: errors.New(`ent: missing required field "SessionMetrics.user_messages"`)}
	}
	if _, ok := _c.mutation.AssistantMessages(); !ok {
		return &ValidationError{Name: "assistant_messages", err: errors.New(`ent: missing required field "SessionMetrics.assistant_messages"`)}
	}
	if _, ok := _c.mutation.TotalMessages(); !ok {
		return &ValidationError{Name: "total_messages", err: errors.New(`ent: missing required field "SessionMetrics.total_messages"`)}
	}
	if _, ok := _c.mutation.RabbitholeCount(); !ok {
		return &ValidationError{Name: "rabbithole_count", err: errors.New(`ent: missing required field "SessionMetrics.rabbithole_count"`)}
	}
	if _, ok := _c.mutation.RabbitholeDurationMs(); !ok {
		return &ValidationError{Name: "rabbithole_duration_ms", err: errors.New(`ent: missing required field "SessionMetrics.rabbithole_duration_ms"`)}
	}
	if _, ok := _c.mutation.RabbitholeAvgDepth(); !ok {
		return &ValidationError{Name: "rabbithole_avg_depth", err: errors.New(`ent: missing required field "SessionMetrics.rabbithole_avg_depth"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "SessionMetrics.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "SessionMetrics.output_tokens"`)}
	}
	if _, ok := _c.mutation.EstimatedCostUsd(); !ok {
		return &ValidationError{Name: "estimated_cost_usd", err: errors.New(`ent: missing required field "SessionMetrics.estimated_cost_usd"`)}
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		return &ValidationError{Name: "engagement_score", err: errors.New(`ent: missing required field "SessionMetrics.engagement_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionMetrics.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionMetrics.session"`)}
	}
	return nil
}

func (_c *SessionMetricsCreate) sqlSave(ctx context.Context) (*SessionMetrics, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SessionMetrics.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionMetricsCreate) createSpec() (*SessionMetrics, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionMetrics{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionmetrics.Table, sqlgraph.NewFieldSpec(sessionmetrics.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TotalDurationMs(); ok {
		_spec.SetField(sessionmetrics.FieldTotalDurationMs, field.TypeInt64, value)
		_node.TotalDurationMs = value
	}
	if value, ok := _c.mutation.ActiveDurationMs(); ok {
		_spec.SetField(sessionmetrics.FieldActiveDurationMs, field.TypeInt64, value)
		_node.ActiveDurationMs = value
	}
	if value, ok := _c.mutation.AvgUserResponseMs(); ok {
		_spec.SetField(sessionmetrics.FieldAvgUserResponseMs, field.TypeInt64, value)
		_node.AvgUserResponseMs = value
	}
	if value, ok := _c.mutation.AvgAssistantResponseMs(); ok {
		_spec.SetField(sessionmetrics.FieldAvgAssistantResponseMs, field.TypeInt64, value)
		_node.AvgAssistantResponseMs = value
	}
	if value, ok := _c.mutation.PointsAttempted(); ok {
		_spec.SetField(sessionmetrics.FieldPointsAttempted, field.TypeInt, value)
		_node.PointsAttempted = value
	}
	if value, ok := _c.mutation.PointsSuccessful(); ok {
		_spec.SetField(sessionmetrics.FieldPointsSuccessful, field.TypeInt, value)
		_node.PointsSuccessful = value
	}
	if value, ok := _c.mutation.PointsFailed(); ok {
		_spec.SetField(sessionmetrics.FieldPointsFailed, field.TypeInt, value)
		_node.PointsFailed = value
	}
	if value, ok := _c.mutation.RecallRate(); ok {
		_spec.SetField(sessionmetrics.FieldRecallRate, field.TypeFloat64, value)
		_node.RecallRate = value
	}
	if value, ok := _c.mutation.AvgConfidence(); ok {
		_spec.SetField(sessionmetrics.FieldAvgConfidence, field.TypeFloat64, value)
		_node.AvgConfidence = value
	}
	if value, ok := _c.mutation.UserMessages(); ok {
		_spec.SetField(sessionmetrics.FieldUserMessages, field.TypeInt, value)
		_node.UserMessages = value
	}
	if value, ok := _c.mutation.AssistantMessages(); ok {
		_spec.SetField(sessionmetrics.FieldAssistantMessages, field.TypeInt, value)
		_node.AssistantMessages = value
	}
	if value, ok := _c.mutation.TotalMessages(); ok {
		_spec.SetField(sessionmetrics.FieldTotalMessages, field.TypeInt, value)
		_node.TotalMessages = value
	}
	if value, ok := _c.mutation.RabbitholeCount(); ok {
		_spec.SetField(sessionmetrics.FieldRabbitholeCount, field.TypeInt, value)
		_node.RabbitholeCount = value
	}
	if value, ok := _c.mutation.RabbitholeDurationMs(); ok {
		_spec.SetField(sessionmetrics.FieldRabbitholeDurationMs, field.TypeInt64, value)
		_node.RabbitholeDurationMs = value
	}
	if value, ok := _c.mutation.RabbitholeAvgDepth(); ok {
		_spec.SetField(sessionmetrics.FieldRabbitholeAvgDepth, field.TypeFloat64, value)
		_node.RabbitholeAvgDepth = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(sessionmetrics.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(sessionmetrics.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(sessionmetrics.FieldEstimatedCostUsd, field.TypeFloat64, value)
		_node.EstimatedCostUsd = value
	}
	if value, ok := _c.mutation.EngagementScore(); ok {
		_spec.SetField(sessionmetrics.FieldEngagementScore, field.TypeFloat64, value)
		_node.EngagementScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionmetrics.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionmetrics.SessionTable,
			Columns: []string{sessionmetrics.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionMetricsCreateBulk is the builder for creating many SessionMetrics entities in bulk.
type SessionMetricsCreateBulk struct {
	config
	err      error
	builders []*SessionMetricsCreate
}

// Save creates the SessionMetrics entities in the database.
func (_c *SessionMetricsCreateBulk) Save(ctx context.Context) ([]*SessionMetrics, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionMetrics, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMetricsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionMetricsCreateBulk) SaveX(ctx context.Context) []*SessionMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMetricsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMetricsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
