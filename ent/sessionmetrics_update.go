// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallkit/recallkit/ent/predicate"
	"github.com/recallkit/recallkit/ent/sessionmetrics"
)

// SessionMetricsUpdate is the builder for updating SessionMetrics entities.
type SessionMetricsUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMetricsMutation
}

// Where appends a list predicates to the SessionMetricsUpdate builder.
func (_u *SessionMetricsUpdate) Where(ps ...predicate.SessionMetrics) *SessionMetricsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_u *SessionMetricsUpdate) SetTotalDurationMs(v int64) *SessionMetricsUpdate {
	_u.mutation.ResetTotalDurationMs()
	_u.mutation.SetTotalDurationMs(v)
	return _u
}

// SetNillableTotalDurationMs sets the "total_duration_ms" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableTotalDurationMs(v *int64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetTotalDurationMs(*v)
	}
	return _u
}

// AddTotalDurationMs adds value to the "total_duration_ms" field.
func (_u *SessionMetricsUpdate) AddTotalDurationMs(v int64) *SessionMetricsUpdate {
	_u.mutation.AddTotalDurationMs(v)
	return _u
}

// SetActiveDurationMs sets the "active_duration_ms" field.
func (_u *SessionMetricsUpdate) SetActiveDurationMs(v int64) *SessionMetricsUpdate {
	_u.mutation.ResetActiveDurationMs()
	_u.mutation.SetActiveDurationMs(v)
	return _u
}

// SetNillableActiveDurationMs sets the "active_duration_ms" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableActiveDurationMs(v *int64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetActiveDurationMs(*v)
	}
	return _u
}

// AddActiveDurationMs adds value to the "active_duration_ms" field.
func (_u *SessionMetricsUpdate) AddActiveDurationMs(v int64) *SessionMetricsUpdate {
	_u.mutation.AddActiveDurationMs(v)
	return _u
}

// SetAvgUserResponseMs sets the "avg_user_response_ms" field.
func (_u *SessionMetricsUpdate) SetAvgUserResponseMs(v int64) *SessionMetricsUpdate {
	_u.mutation.ResetAvgUserResponseMs()
	_u.mutation.SetAvgUserResponseMs(v)
	return _u
}

// SetNillableAvgUserResponseMs sets the "avg_user_response_ms" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableAvgUserResponseMs(v *int64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetAvgUserResponseMs(*v)
	}
	return _u
}

// AddAvgUserResponseMs adds value to the "avg_user_response_ms" field.
func (_u *SessionMetricsUpdate) AddAvgUserResponseMs(v int64) *SessionMetricsUpdate {
	_u.mutation.AddAvgUserResponseMs(v)
	return _u
}

// SetAvgAssistantResponseMs sets the "avg_assistant_response_ms" field.
func (_u *SessionMetricsUpdate) SetAvgAssistantResponseMs(v int64) *SessionMetricsUpdate {
	_u.mutation.ResetAvgAssistantResponseMs()
	_u.mutation.SetAvgAssistantResponseMs(v)
	return _u
}

// SetNillableAvgAssistantResponseMs sets the "avg_assistant_response_ms" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableAvgAssistantResponseMs(v *int64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetAvgAssistantResponseMs(*v)
	}
	return _u
}

// AddAvgAssistantResponseMs adds value to the "avg_assistant_response_ms" field.
func (_u *SessionMetricsUpdate) AddAvgAssistantResponseMs(v int64) *SessionMetricsUpdate {
	_u.mutation.AddAvgAssistantResponseMs(v)
	return _u
}

// SetPointsAttempted sets the "points_attempted" field.
func (_u *SessionMetricsUpdate) SetPointsAttempted(v int) *SessionMetricsUpdate {
	_u.mutation.ResetPointsAttempted()
	_u.mutation.SetPointsAttempted(v)
	return _u
}

// SetNillablePointsAttempted sets the "points_attempted" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillablePointsAttempted(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetPointsAttempted(*v)
	}
	return _u
}

// AddPointsAttempted adds value to the "points_attempted" field.
func (_u *SessionMetricsUpdate) AddPointsAttempted(v int) *SessionMetricsUpdate {
	_u.mutation.AddPointsAttempted(v)
	return _u
}

// SetPointsSuccessful sets the "points_successful" field.
func (_u *SessionMetricsUpdate) SetPointsSuccessful(v int) *SessionMetricsUpdate {
	_u.mutation.ResetPointsSuccessful()
	_u.mutation.SetPointsSuccessful(v)
	return _u
}

// SetNillablePointsSuccessful sets the "points_successful" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillablePointsSuccessful(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetPointsSuccessful(*v)
	}
	return _u
}

// AddPointsSuccessful adds value to the "points_successful" field.
func (_u *SessionMetricsUpdate) AddPointsSuccessful(v int) *SessionMetricsUpdate {
	_u.mutation.AddPointsSuccessful(v)
	return _u
}

// SetPointsFailed sets the "points_failed" field.
func (_u *SessionMetricsUpdate) SetPointsFailed(v int) *SessionMetricsUpdate {
	_u.mutation.ResetPointsFailed()
	_u.mutation.SetPointsFailed(v)
	return _u
}

// SetNillablePointsFailed sets the "points_failed" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillablePointsFailed(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetPointsFailed(*v)
	}
	return _u
}

// AddPointsFailed adds value to the "points_failed" field.
func (_u *SessionMetricsUpdate) AddPointsFailed(v int) *SessionMetricsUpdate {
	_u.mutation.AddPointsFailed(v)
	return _u
}

// SetRecallRate sets the "recall_rate" field.
func (_u *SessionMetricsUpdate) SetRecallRate(v float64) *SessionMetricsUpdate {
	_u.mutation.ResetRecallRate()
	_u.mutation.SetRecallRate(v)
	return _u
}

// SetNillableRecallRate sets the "recall_rate" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableRecallRate(v *float64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetRecallRate(*v)
	}
	return _u
}

// AddRecallRate adds value to the "recall_rate" field.
func (_u *SessionMetricsUpdate) AddRecallRate(v float64) *SessionMetricsUpdate {
	_u.mutation.AddRecallRate(v)
	return _u
}

// SetAvgConfidence sets the "avg_confidence" field.
func (_u *SessionMetricsUpdate) SetAvgConfidence(v float64) *SessionMetricsUpdate {
	_u.mutation.ResetAvgConfidence()
	_u.mutation.SetAvgConfidence(v)
	return _u
}

// SetNillableAvgConfidence sets the "avg_confidence" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableAvgConfidence(v *float64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetAvgConfidence(*v)
	}
	return _u
}

// AddAvgConfidence adds value to the "avg_confidence" field.
func (_u *SessionMetricsUpdate) AddAvgConfidence(v float64) *SessionMetricsUpdate {
	_u.mutation.AddAvgConfidence(v)
	return _u
}

// SetUserMessages sets the "user_messages" field.
func (_u *SessionMetricsUpdate) SetUserMessages(v int) *SessionMetricsUpdate {
	_u.mutation.ResetUserMessages()
	_u.mutation.SetUserMessages(v)
	return _u
}

// SetNillableUserMessages sets the "user_messages" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableUserMessages(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetUserMessages(*v)
	}
	return _u
}

// AddUserMessages adds value to the "user_messages" field.
func (_u *SessionMetricsUpdate) AddUserMessages(v int) *SessionMetricsUpdate {
	_u.mutation.AddUserMessages(v)
	return _u
}

// SetAssistantMessages sets the "assistant_messages" field.
func (_u *SessionMetricsUpdate) SetAssistantMessages(v int) *SessionMetricsUpdate {
	_u.mutation.ResetAssistantMessages()
	_u.mutation.SetAssistantMessages(v)
	return _u
}

// SetNillableAssistantMessages sets the "assistant_messages" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableAssistantMessages(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetAssistantMessages(*v)
	}
	return _u
}

// AddAssistantMessages adds value to the "assistant_messages" field.
func (_u *SessionMetricsUpdate) AddAssistantMessages(v int) *SessionMetricsUpdate {
	_u.mutation.AddAssistantMessages(v)
	return _u
}

// SetTotalMessages sets the "total_messages" field.
func (_u *SessionMetricsUpdate) SetTotalMessages(v int) *SessionMetricsUpdate {
	_u.mutation.ResetTotalMessages()
	_u.mutation.SetTotalMessages(v)
	return _u
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableTotalMessages(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetTotalMessages(*v)
	}
	return _u
}

// AddTotalMessages adds value to the "total_messages" field.
func (_u *SessionMetricsUpdate) AddTotalMessages(v int) *SessionMetricsUpdate {
	_u.mutation.AddTotalMessages(v)
	return _u
}

// SetRabbitholeCount sets the "rabbithole_count" field.
func (_u *SessionMetricsUpdate) SetRabbitholeCount(v int) *SessionMetricsUpdate {
	_u.mutation.ResetRabbitholeCount()
	_u.mutation.SetRabbitholeCount(v)
	return _u
}

// SetNillableRabbitholeCount sets the "rabbithole_count" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableRabbitholeCount(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetRabbitholeCount(*v)
	}
	return _u
}

// AddRabbitholeCount adds value to the "rabbithole_count" field.
func (_u *SessionMetricsUpdate) AddRabbitholeCount(v int) *SessionMetricsUpdate {
	_u.mutation.AddRabbitholeCount(v)
	return _u
}

// SetRabbitholeDurationMs sets the "rabbithole_duration_ms" field.
func (_u *SessionMetricsUpdate) SetRabbitholeDurationMs(v int64) *SessionMetricsUpdate {
	_u.mutation.ResetRabbitholeDurationMs()
	_u.mutation.SetRabbitholeDurationMs(v)
	return _u
}

// SetNillableRabbitholeDurationMs sets the "rabbithole_duration_ms" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableRabbitholeDurationMs(v *int64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetRabbitholeDurationMs(*v)
	}
	return _u
}

// AddRabbitholeDurationMs adds value to the "rabbithole_duration_ms" field.
func (_u *SessionMetricsUpdate) AddRabbitholeDurationMs(v int64) *SessionMetricsUpdate {
	_u.mutation.AddRabbitholeDurationMs(v)
	return _u
}

// SetRabbitholeAvgDepth sets the "rabbithole_avg_depth" field.
func (_u *SessionMetricsUpdate) SetRabbitholeAvgDepth(v float64) *SessionMetricsUpdate {
	_u.mutation.ResetRabbitholeAvgDepth()
	_u.mutation.SetRabbitholeAvgDepth(v)
	return _u
}

// SetNillableRabbitholeAvgDepth sets the "rabbithole_avg_depth" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableRabbitholeAvgDepth(v *float64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetRabbitholeAvgDepth(*v)
	}
	return _u
}

// AddRabbitholeAvgDepth adds value to the "rabbithole_avg_depth" field.
func (_u *SessionMetricsUpdate) AddRabbitholeAvgDepth(v float64) *SessionMetricsUpdate {
	_u.mutation.AddRabbitholeAvgDepth(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *SessionMetricsUpdate) SetInputTokens(v int) *SessionMetricsUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableInputTokens(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *SessionMetricsUpdate) AddInputTokens(v int) *SessionMetricsUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *SessionMetricsUpdate) SetOutputTokens(v int) *SessionMetricsUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableOutputTokens(v *int) *SessionMetricsUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *SessionMetricsUpdate) AddOutputTokens(v int) *SessionMetricsUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *SessionMetricsUpdate) SetEstimatedCostUsd(v float64) *SessionMetricsUpdate {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableEstimatedCostUsd(v *float64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *SessionMetricsUpdate) AddEstimatedCostUsd(v float64) *SessionMetricsUpdate {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *SessionMetricsUpdate) SetEngagementScore(v float64) *SessionMetricsUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *SessionMetricsUpdate) SetNillableEngagementScore(v *float64) *SessionMetricsUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *SessionMetricsUpdate) AddEngagementScore(v float64) *SessionMetricsUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// Mutation returns the SessionMetricsMutation object of the builder.
func (_u *SessionMetricsUpdate) Mutation() *SessionMetricsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionMetricsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMetricsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionMetricsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMetricsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMetricsUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionMetrics.session"`)
	}
	return nil
}

func (_u *SessionMetricsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmetrics.Table, sessionmetrics.Columns, sqlgraph.NewFieldSpec(sessionmetrics.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalDurationMs(); ok {
		_spec.SetField(sessionmetrics.FieldTotalDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationMs(); ok {
		_spec.AddField(sessionmetrics.FieldTotalDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ActiveDurationMs(); ok {
		_spec.SetField(sessionmetrics.FieldActiveDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActiveDurationMs(); ok {
		_spec.AddField(sessionmetrics.FieldActiveDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgUserResponseMs(); ok {
		_spec.SetField(sessionmetrics.FieldAvgUserResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgUserResponseMs(); ok {
		_spec.AddField(sessionmetrics.FieldAvgUserResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgAssistantResponseMs(); ok {
		_spec.SetField(sessionmetrics.FieldAvgAssistantResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgAssistantResponseMs(); ok {
		_spec.AddField(sessionmetrics.FieldAvgAssistantResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PointsAttempted(); ok {
		_spec.SetField(sessionmetrics.FieldPointsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAttempted(); ok {
		_spec.AddField(sessionmetrics.FieldPointsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsSuccessful(); ok {
		_spec.SetField(sessionmetrics.FieldPointsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsSuccessful(); ok {
		_spec.AddField(sessionmetrics.FieldPointsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsFailed(); ok {
		_spec.SetField(sessionmetrics.FieldPointsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsFailed(); ok {
		_spec.AddField(sessionmetrics.FieldPointsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecallRate(); ok {
		_spec.SetField(sessionmetrics.FieldRecallRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecallRate(); ok {
		_spec.AddField(sessionmetrics.FieldRecallRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgConfidence(); ok {
		_spec.SetField(sessionmetrics.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgConfidence(); ok {
		_spec.AddField(sessionmetrics.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UserMessages(); ok {
		_spec.SetField(sessionmetrics.FieldUserMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserMessages(); ok {
		_spec.AddField(sessionmetrics.FieldUserMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssistantMessages(); ok {
		_spec.SetField(sessionmetrics.FieldAssistantMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssistantMessages(); ok {
		_spec.AddField(sessionmetrics.FieldAssistantMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMessages(); ok {
		_spec.SetField(sessionmetrics.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMessages(); ok {
		_spec.AddField(sessionmetrics.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RabbitholeCount(); ok {
		_spec.SetField(sessionmetrics.FieldRabbitholeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRabbitholeCount(); ok {
		_spec.AddField(sessionmetrics.FieldRabbitholeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RabbitholeDurationMs(); ok {
		_spec.SetField(sessionmetrics.FieldRabbitholeDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRabbitholeDurationMs(); ok {
		_spec.AddField(sessionmetrics.FieldRabbitholeDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RabbitholeAvgDepth(); ok {
		_spec.SetField(sessionmetrics.FieldRabbitholeAvgDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRabbitholeAvgDepth(); ok {
		_spec.AddField(sessionmetrics.FieldRabbitholeAvgDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(sessionmetrics.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(sessionmetrics.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(sessionmetrics.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(sessionmetrics.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(sessionmetrics.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(sessionmetrics.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(sessionmetrics.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(sessionmetrics.FieldEngagementScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionMetricsUpdateOne is the builder for updating a single SessionMetrics entity.
type SessionMetricsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMetricsMutation
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_u *SessionMetricsUpdateOne) SetTotalDurationMs(v int64) *SessionMetricsUpdateOne {
	_u.mutation.ResetTotalDurationMs()
	_u.mutation.SetTotalDurationMs(v)
	return _u
}

// SetNillableTotalDurationMs sets the "total_duration_ms" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableTotalDurationMs(v *int64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetTotalDurationMs(*v)
	}
	return _u
}

// AddTotalDurationMs adds value to the "total_duration_ms" field.
func (_u *SessionMetricsUpdateOne) AddTotalDurationMs(v int64) *SessionMetricsUpdateOne {
	_u.mutation.AddTotalDurationMs(v)
	return _u
}

// SetActiveDurationMs sets the "active_duration_ms" field.
func (_u *SessionMetricsUpdateOne) SetActiveDurationMs(v int64) *SessionMetricsUpdateOne {
	_u.mutation.ResetActiveDurationMs()
	_u.mutation.SetActiveDurationMs(v)
	return _u
}

// SetNillableActiveDurationMs sets the "active_duration_ms" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableActiveDurationMs(v *int64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetActiveDurationMs(*v)
	}
	return _u
}

// AddActiveDurationMs adds value to the "active_duration_ms" field.
func (_u *SessionMetricsUpdateOne) AddActiveDurationMs(v int64) *SessionMetricsUpdateOne {
	_u.mutation.AddActiveDurationMs(v)
	return _u
}

// SetAvgUserResponseMs sets the "avg_user_response_ms" field.
func (_u *SessionMetricsUpdateOne) SetAvgUserResponseMs(v int64) *SessionMetricsUpdateOne {
	_u.mutation.ResetAvgUserResponseMs()
	_u.mutation.SetAvgUserResponseMs(v)
	return _u
}

// SetNillableAvgUserResponseMs sets the "avg_user_response_ms" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableAvgUserResponseMs(v *int64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetAvgUserResponseMs(*v)
	}
	return _u
}

// AddAvgUserResponseMs adds value to the "avg_user_response_ms" field.
func (_u *SessionMetricsUpdateOne) AddAvgUserResponseMs(v int64) *SessionMetricsUpdateOne {
	_u.mutation.AddAvgUserResponseMs(v)
	return _u
}

// SetAvgAssistantResponseMs sets the "avg_assistant_response_ms" field.
func (_u *SessionMetricsUpdateOne) SetAvgAssistantResponseMs(v int64) *SessionMetricsUpdateOne {
	_u.mutation.ResetAvgAssistantResponseMs()
	_u.mutation.SetAvgAssistantResponseMs(v)
	return _u
}

// SetNillableAvgAssistantResponseMs sets the "avg_assistant_response_ms" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableAvgAssistantResponseMs(v *int64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetAvgAssistantResponseMs(*v)
	}
	return _u
}

// AddAvgAssistantResponseMs adds value to the "avg_assistant_response_ms" field.
func (_u *SessionMetricsUpdateOne) AddAvgAssistantResponseMs(v int64) *SessionMetricsUpdateOne {
	_u.mutation.AddAvgAssistantResponseMs(v)
	return _u
}

// SetPointsAttempted sets the "points_attempted" field.
func (_u *SessionMetricsUpdateOne) SetPointsAttempted(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetPointsAttempted()
	_u.mutation.SetPointsAttempted(v)
	return _u
}

// SetNillablePointsAttempted sets the "points_attempted" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillablePointsAttempted(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetPointsAttempted(*v)
	}
	return _u
}

// AddPointsAttempted adds value to the "points_attempted" field.
func (_u *SessionMetricsUpdateOne) AddPointsAttempted(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddPointsAttempted(v)
	return _u
}

// SetPointsSuccessful sets the "points_successful" field.
func (_u *SessionMetricsUpdateOne) SetPointsSuccessful(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetPointsSuccessful()
	_u.mutation.SetPointsSuccessful(v)
	return _u
}

// SetNillablePointsSuccessful sets the "points_successful" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillablePointsSuccessful(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetPointsSuccessful(*v)
	}
	return _u
}

// AddPointsSuccessful adds value to the "points_successful" field.
func (_u *SessionMetricsUpdateOne) AddPointsSuccessful(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddPointsSuccessful(v)
	return _u
}

// SetPointsFailed sets the "points_failed" field.
func (_u *SessionMetricsUpdateOne) SetPointsFailed(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetPointsFailed()
	_u.mutation.SetPointsFailed(v)
	return _u
}

// SetNillablePointsFailed sets the "points_failed" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillablePointsFailed(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetPointsFailed(*v)
	}
	return _u
}

// AddPointsFailed adds value to the "points_failed" field.
func (_u *SessionMetricsUpdateOne) AddPointsFailed(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddPointsFailed(v)
	return _u
}

// SetRecallRate sets the "recall_rate" field.
func (_u *SessionMetricsUpdateOne) SetRecallRate(v float64) *SessionMetricsUpdateOne {
	_u.mutation.ResetRecallRate()
	_u.mutation.SetRecallRate(v)
	return _u
}

// SetNillableRecallRate sets the "recall_rate" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableRecallRate(v *float64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetRecallRate(*v)
	}
	return _u
}

// AddRecallRate adds value to the "recall_rate" field.
func (_u *SessionMetricsUpdateOne) AddRecallRate(v float64) *SessionMetricsUpdateOne {
	_u.mutation.AddRecallRate(v)
	return _u
}

// SetAvgConfidence sets the "avg_confidence" field.
func (_u *SessionMetricsUpdateOne) SetAvgConfidence(v float64) *SessionMetricsUpdateOne {
	_u.mutation.ResetAvgConfidence()
	_u.mutation.SetAvgConfidence(v)
	return _u
}

// SetNillableAvgConfidence sets the "avg_confidence" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableAvgConfidence(v *float64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetAvgConfidence(*v)
	}
	return _u
}

// AddAvgConfidence adds value to the "avg_confidence" field.
func (_u *SessionMetricsUpdateOne) AddAvgConfidence(v float64) *SessionMetricsUpdateOne {
	_u.mutation.AddAvgConfidence(v)
	return _u
}

// SetUserMessages sets the "user_messages" field.
func (_u *SessionMetricsUpdateOne) SetUserMessages(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetUserMessages()
	_u.mutation.SetUserMessages(v)
	return _u
}

// SetNillableUserMessages sets the "user_messages" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableUserMessages(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetUserMessages(*v)
	}
	return _u
}

// AddUserMessages adds value to the "user_messages" field.
func (_u *SessionMetricsUpdateOne) AddUserMessages(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddUserMessages(v)
	return _u
}

// SetAssistantMessages sets the "assistant_messages" field.
func (_u *SessionMetricsUpdateOne) SetAssistantMessages(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetAssistantMessages()
	_u.mutation.SetAssistantMessages(v)
	return _u
}

// SetNillableAssistantMessages sets the "assistant_messages" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableAssistantMessages(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetAssistantMessages(*v)
	}
	return _u
}

// AddAssistantMessages adds value to the "assistant_messages" field.
func (_u *SessionMetricsUpdateOne) AddAssistantMessages(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddAssistantMessages(v)
	return _u
}

// SetTotalMessages sets the "total_messages" field.
func (_u *SessionMetricsUpdateOne) SetTotalMessages(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetTotalMessages()
	_u.mutation.SetTotalMessages(v)
	return _u
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableTotalMessages(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetTotalMessages(*v)
	}
	return _u
}

// AddTotalMessages adds value to the "total_messages" field.
func (_u *SessionMetricsUpdateOne) AddTotalMessages(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddTotalMessages(v)
	return _u
}

// SetRabbitholeCount sets the "rabbithole_count" field.
func (_u *SessionMetricsUpdateOne) SetRabbitholeCount(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetRabbitholeCount()
	_u.mutation.SetRabbitholeCount(v)
	return _u
}

// SetNillableRabbitholeCount sets the "rabbithole_count" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableRabbitholeCount(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetRabbitholeCount(*v)
	}
	return _u
}

// AddRabbitholeCount adds value to the "rabbithole_count" field.
func (_u *SessionMetricsUpdateOne) AddRabbitholeCount(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddRabbitholeCount(v)
	return _u
}

// SetRabbitholeDurationMs sets the "rabbithole_duration_ms" field.
func (_u *SessionMetricsUpdateOne) SetRabbitholeDurationMs(v int64) *SessionMetricsUpdateOne {
	_u.mutation.ResetRabbitholeDurationMs()
	_u.mutation.SetRabbitholeDurationMs(v)
	return _u
}

// SetNillableRabbitholeDurationMs sets the "rabbithole_duration_ms" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableRabbitholeDurationMs(v *int64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetRabbitholeDurationMs(*v)
	}
	return _u
}

// AddRabbitholeDurationMs adds value to the "rabbithole_duration_ms" field.
func (_u *SessionMetricsUpdateOne) AddRabbitholeDurationMs(v int64) *SessionMetricsUpdateOne {
	_u.mutation.AddRabbitholeDurationMs(v)
	return _u
}

// SetRabbitholeAvgDepth sets the "rabbithole_avg_depth" field.
func (_u *SessionMetricsUpdateOne) SetRabbitholeAvgDepth(v float64) *SessionMetricsUpdateOne {
	_u.mutation.ResetRabbitholeAvgDepth()
	_u.mutation.SetRabbitholeAvgDepth(v)
	return _u
}

// SetNillableRabbitholeAvgDepth sets the "rabbithole_avg_depth" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableRabbitholeAvgDepth(v *float64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetRabbitholeAvgDepth(*v)
	}
	return _u
}

// AddRabbitholeAvgDepth adds value to the "rabbithole_avg_depth" field.
func (_u *SessionMetricsUpdateOne) AddRabbitholeAvgDepth(v float64) *SessionMetricsUpdateOne {
	_u.mutation.AddRabbitholeAvgDepth(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *SessionMetricsUpdateOne) SetInputTokens(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableInputTokens(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *SessionMetricsUpdateOne) AddInputTokens(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *SessionMetricsUpdateOne) SetOutputTokens(v int) *SessionMetricsUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableOutputTokens(v *int) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *SessionMetricsUpdateOne) AddOutputTokens(v int) *SessionMetricsUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *SessionMetricsUpdateOne) SetEstimatedCostUsd(v float64) *SessionMetricsUpdateOne {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableEstimatedCostUsd(v *float64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *SessionMetricsUpdateOne) AddEstimatedCostUsd(v float64) *SessionMetricsUpdateOne {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *SessionMetricsUpdateOne) SetEngagementScore(v float64) *SessionMetricsUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *SessionMetricsUpdateOne) SetNillableEngagementScore(v *float64) *SessionMetricsUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *SessionMetricsUpdateOne) AddEngagementScore(v float64) *SessionMetricsUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// Mutation returns the SessionMetricsMutation object of the builder.
func (_u *SessionMetricsUpdateOne) Mutation() *SessionMetricsMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionMetricsUpdate builder.
func (_u *SessionMetricsUpdateOne) Where(ps ...predicate.SessionMetrics) *SessionMetricsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionMetricsUpdateOne) Select(field string, fields ...string) *SessionMetricsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionMetrics entity.
func (_u *SessionMetricsUpdateOne) Save(ctx context.Context) (*SessionMetrics, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMetricsUpdateOne) SaveX(ctx context.Context) *SessionMetrics {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionMetricsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMetricsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMetricsUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionMetrics.session"`)
	}
	return nil
}

func (_u *SessionMetricsUpdateOne) sqlSave(ctx context.Context) (_node *SessionMetrics, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmetrics.Table, sessionmetrics.Columns, sqlgraph.NewFieldSpec(sessionmetrics.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionMetrics.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionmetrics.FieldID)
		for _, f := range fields {
			if !sessionmetrics.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionmetrics.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalDurationMs(); ok {
		_spec.SetField(sessionmetrics.FieldTotalDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationMs(); ok {
		_spec.AddField(sessionmetrics.FieldTotalDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ActiveDurationMs(); ok {
		_spec.SetField(sessionmetrics.FieldActiveDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActiveDurationMs(); ok {
		_spec.AddField(sessionmetrics.FieldActiveDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgUserResponseMs(); ok {
		_spec.SetField(sessionmetrics.FieldAvgUserResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgUserResponseMs(); ok {
		_spec.AddField(sessionmetrics.FieldAvgUserResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgAssistantResponseMs(); ok {
		_spec.SetField(sessionmetrics.FieldAvgAssistantResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgAssistantResponseMs(); ok {
		_spec.AddField(sessionmetrics.FieldAvgAssistantResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PointsAttempted(); ok {
		_spec.SetField(sessionmetrics.FieldPointsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAttempted(); ok {
		_spec.AddField(sessionmetrics.FieldPointsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsSuccessful(); ok {
		_spec.SetField(sessionmetrics.FieldPointsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsSuccessful(); ok {
		_spec.AddField(sessionmetrics.FieldPointsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsFailed(); ok {
		_spec.SetField(sessionmetrics.FieldPointsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsFailed(); ok {
		_spec.AddField(sessionmetrics.FieldPointsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecallRate(); ok {
		_spec.SetField(sessionmetrics.FieldRecallRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecallRate(); ok {
		_spec.AddField(sessionmetrics.FieldRecallRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgConfidence(); ok {
		_spec.SetField(sessionmetrics.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgConfidence(); ok {
		_spec.AddField(sessionmetrics.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UserMessages(); ok {
		_spec.SetField(sessionmetrics.FieldUserMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserMessages(); ok {
		_spec.AddField(sessionmetrics.FieldUserMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssistantMessages(); ok {
		_spec.SetField(sessionmetrics.FieldAssistantMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssistantMessages(); ok {
		_spec.AddField(sessionmetrics.FieldAssistantMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMessages(); ok {
		_spec.SetField(sessionmetrics.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMessages(); ok {
		_spec.AddField(sessionmetrics.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RabbitholeCount(); ok {
		_spec.SetField(sessionmetrics.FieldRabbitholeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRabbitholeCount(); ok {
		_spec.AddField(sessionmetrics.FieldRabbitholeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RabbitholeDurationMs(); ok {
		_spec.SetField(sessionmetrics.FieldRabbitholeDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRabbitholeDurationMs(); ok {
		_spec.AddField(sessionmetrics.FieldRabbitholeDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RabbitholeAvgDepth(); ok {
		_spec.SetField(sessionmetrics.FieldRabbitholeAvgDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRabbitholeAvgDepth(); ok {
		_spec.AddField(sessionmetrics.FieldRabbitholeAvgDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(sessionmetrics.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(sessionmetrics.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(sessionmetrics.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(sessionmetrics.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(sessionmetrics.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(sessionmetrics.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(sessionmetrics.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(sessionmetrics.FieldEngagementScore, field.TypeFloat64, value)
	}
	_node = &SessionMetrics{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
