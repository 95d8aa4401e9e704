// Code generated by ent, DO NOT EDIT.

package sessionmetrics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recallkit/recallkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldSessionID, v))
}

// TotalDurationMs applies equality check predicate on the "total_duration_ms" field. It's identical to TotalDurationMsEQ.
func TotalDurationMs(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldTotalDurationMs, v))
}

// ActiveDurationMs applies equality check predicate on the "active_duration_ms" field. It's identical to ActiveDurationMsEQ.
func ActiveDurationMs(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldActiveDurationMs, v))
}

// AvgUserResponseMs applies equality check predicate on the "avg_user_response_ms" field. It's identical to AvgUserResponseMsEQ.
func AvgUserResponseMs(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAvgUserResponseMs, v))
}

// AvgAssistantResponseMs applies equality check predicate on the "avg_assistant_response_ms" field. It's identical to AvgAssistantResponseMsEQ.
func AvgAssistantResponseMs(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAvgAssistantResponseMs, v))
}

// PointsAttempted applies equality check predicate on the "points_attempted" field. It's identical to PointsAttemptedEQ.
func PointsAttempted(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldPointsAttempted, v))
}

// PointsSuccessful applies equality check predicate on the "points_successful" field. It's identical to PointsSuccessfulEQ.
func PointsSuccessful(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldPointsSuccessful, v))
}

// PointsFailed applies equality check predicate on the "points_failed" field. It's identical to PointsFailedEQ.
func PointsFailed(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldPointsFailed, v))
}

// RecallRate applies equality check predicate on the "recall_rate" field. It's identical to RecallRateEQ.
func RecallRate(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldRecallRate, v))
}

// AvgConfidence applies equality check predicate on the "avg_confidence" field. It's identical to AvgConfidenceEQ.
func AvgConfidence(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAvgConfidence, v))
}

// UserMessages applies equality check predicate on the "user_messages" field. It's identical to UserMessagesEQ.
func UserMessages(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldUserMessages, v))
}

// AssistantMessages applies equality check predicate on the "assistant_messages" field. It's identical to AssistantMessagesEQ.
func AssistantMessages(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAssistantMessages, v))
}

// TotalMessages applies equality check predicate on the "total_messages" field. It's identical to TotalMessagesEQ.
func TotalMessages(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldTotalMessages, v))
}

// RabbitholeCount applies equality check predicate on the "rabbithole_count" field. It's identical to RabbitholeCountEQ.
func RabbitholeCount(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldRabbitholeCount, v))
}

// RabbitholeDurationMs applies equality check predicate on the "rabbithole_duration_ms" field. It's identical to RabbitholeDurationMsEQ.
func RabbitholeDurationMs(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldRabbitholeDurationMs, v))
}

// RabbitholeAvgDepth applies equality check predicate on the "rabbithole_avg_depth" field. It's identical to RabbitholeAvgDepthEQ.
func RabbitholeAvgDepth(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldRabbitholeAvgDepth, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldOutputTokens, v))
}

// EstimatedCostUsd applies equality check predicate on the "estimated_cost_usd" field. It's identical to EstimatedCostUsdEQ.
func EstimatedCostUsd(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// EngagementScore applies equality check predicate on the "engagement_score" field. It's identical to EngagementScoreEQ.
func EngagementScore(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldEngagementScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldContainsFold(FieldSessionID, v))
}

// TotalDurationMsEQ applies the EQ predicate on the "total_duration_ms" field.
func TotalDurationMsEQ(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldTotalDurationMs, v))
}

// TotalDurationMsNEQ applies the NEQ predicate on the "total_duration_ms" field.
func TotalDurationMsNEQ(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldTotalDurationMs, v))
}

// TotalDurationMsIn applies the In predicate on the "total_duration_ms" field.
func TotalDurationMsIn(vs ...int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldTotalDurationMs, vs...))
}

// TotalDurationMsNotIn applies the NotIn predicate on the "total_duration_ms" field.
func TotalDurationMsNotIn(vs ...int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldTotalDurationMs, vs...))
}

// TotalDurationMsGT applies the GT predicate on the "total_duration_ms" field.
func TotalDurationMsGT(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldTotalDurationMs, v))
}

// TotalDurationMsGTE applies the GTE predicate on the "total_duration_ms" field.
func TotalDurationMsGTE(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldTotalDurationMs, v))
}

// TotalDurationMsLT applies the LT predicate on the "total_duration_ms" field.
func TotalDurationMsLT(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldTotalDurationMs, v))
}

// TotalDurationMsLTE applies the LTE predicate on the "total_duration_ms" field.
func TotalDurationMsLTE(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldTotalDurationMs, v))
}

// ActiveDurationMsEQ applies the EQ predicate on the "active_duration_ms" field.
func ActiveDurationMsEQ(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldActiveDurationMs, v))
}

// ActiveDurationMsNEQ applies the NEQ predicate on the "active_duration_ms" field.
func ActiveDurationMsNEQ(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldActiveDurationMs, v))
}

// ActiveDurationMsIn applies the In predicate on the "active_duration_ms" field.
func ActiveDurationMsIn(vs ...int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldActiveDurationMs, vs...))
}

// ActiveDurationMsNotIn applies the NotIn predicate on the "active_duration_ms" field.
func ActiveDurationMsNotIn(vs ...int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldActiveDurationMs, vs...))
}

// ActiveDurationMsGT applies the GT predicate on the "active_duration_ms" field.
func ActiveDurationMsGT(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldActiveDurationMs, v))
}

// ActiveDurationMsGTE applies the GTE predicate on the "active_duration_ms" field.
func ActiveDurationMsGTE(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldActiveDurationMs, v))
}

// ActiveDurationMsLT applies the LT predicate on the "active_duration_ms" field.
func ActiveDurationMsLT(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldActiveDurationMs, v))
}

// ActiveDurationMsLTE applies the LTE predicate on the "active_duration_ms" field.
func ActiveDurationMsLTE(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldActiveDurationMs, v))
}

// AvgUserResponseMsEQ applies the EQ predicate on the "avg_user_response_ms" field.
func AvgUserResponseMsEQ(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAvgUserResponseMs, v))
}

// AvgUserResponseMsNEQ applies the NEQ predicate on the "avg_user_response_ms" field.
func AvgUserResponseMsNEQ(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldAvgUserResponseMs, v))
}

// AvgUserResponseMsIn applies the In predicate on the "avg_user_response_ms" field.
func AvgUserResponseMsIn(vs ...int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldAvgUserResponseMs, vs...))
}

// AvgUserResponseMsNotIn applies the NotIn predicate on the "avg_user_response_ms" field.
func AvgUserResponseMsNotIn(vs ...int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldAvgUserResponseMs, vs...))
}

// AvgUserResponseMsGT applies the GT predicate on the "avg_user_response_ms" field.
func AvgUserResponseMsGT(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldAvgUserResponseMs, v))
}

// AvgUserResponseMsGTE applies the GTE predicate on the "avg_user_response_ms" field.
func AvgUserResponseMsGTE(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldAvgUserResponseMs, v))
}

// AvgUserResponseMsLT applies the LT predicate on the "avg_user_response_ms" field.
func AvgUserResponseMsLT(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldAvgUserResponseMs, v))
}

// AvgUserResponseMsLTE applies the LTE predicate on the "avg_user_response_ms" field.
func AvgUserResponseMsLTE(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldAvgUserResponseMs, v))
}

// AvgAssistantResponseMsEQ applies the EQ predicate on the "avg_assistant_response_ms" field.
func AvgAssistantResponseMsEQ(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAvgAssistantResponseMs, v))
}

// AvgAssistantResponseMsNEQ applies the NEQ predicate on the "avg_assistant_response_ms" field.
func AvgAssistantResponseMsNEQ(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldAvgAssistantResponseMs, v))
}

// AvgAssistantResponseMsIn applies the In predicate on the "avg_assistant_response_ms" field.
func AvgAssistantResponseMsIn(vs ...int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldAvgAssistantResponseMs, vs...))
}

// AvgAssistantResponseMsNotIn applies the NotIn predicate on the "avg_assistant_response_ms" field.
func AvgAssistantResponseMsNotIn(vs ...int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldAvgAssistantResponseMs, vs...))
}

// AvgAssistantResponseMsGT applies the GT predicate on the "avg_assistant_response_ms" field.
func AvgAssistantResponseMsGT(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldAvgAssistantResponseMs, v))
}

// AvgAssistantResponseMsGTE applies the GTE predicate on the "avg_assistant_response_ms" field.
func AvgAssistantResponseMsGTE(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldAvgAssistantResponseMs, v))
}

// AvgAssistantResponseMsLT applies the LT predicate on the "avg_assistant_response_ms" field.
func AvgAssistantResponseMsLT(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldAvgAssistantResponseMs, v))
}

// AvgAssistantResponseMsLTE applies the LTE predicate on the "avg_assistant_response_ms" field.
func AvgAssistantResponseMsLTE(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldAvgAssistantResponseMs, v))
}

// PointsAttemptedEQ applies the EQ predicate on the "points_attempted" field.
func PointsAttemptedEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldPointsAttempted, v))
}

// PointsAttemptedNEQ applies the NEQ predicate on the "points_attempted" field.
func PointsAttemptedNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldPointsAttempted, v))
}

// PointsAttemptedIn applies the In predicate on the "points_attempted" field.
func PointsAttemptedIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldPointsAttempted, vs...))
}

// PointsAttemptedNotIn applies the NotIn predicate on the "points_attempted" field.
func PointsAttemptedNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldPointsAttempted, vs...))
}

// PointsAttemptedGT applies the GT predicate on the "points_attempted" field.
func PointsAttemptedGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldPointsAttempted, v))
}

// PointsAttemptedGTE applies the GTE predicate on the "points_attempted" field.
func PointsAttemptedGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldPointsAttempted, v))
}

// PointsAttemptedLT applies the LT predicate on the "points_attempted" field.
func PointsAttemptedLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldPointsAttempted, v))
}

// PointsAttemptedLTE applies the LTE predicate on the "points_attempted" field.
func PointsAttemptedLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldPointsAttempted, v))
}

// PointsSuccessfulEQ applies the EQ predicate on the "points_successful" field.
func PointsSuccessfulEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldPointsSuccessful, v))
}

// PointsSuccessfulNEQ applies the NEQ predicate on the "points_successful" field.
func PointsSuccessfulNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldPointsSuccessful, v))
}

// PointsSuccessfulIn applies the In predicate on the "points_successful" field.
func PointsSuccessfulIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldPointsSuccessful, vs...))
}

// PointsSuccessfulNotIn applies the NotIn predicate on the "points_successful" field.
func PointsSuccessfulNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldPointsSuccessful, vs...))
}

// PointsSuccessfulGT applies the GT predicate on the "points_successful" field.
func PointsSuccessfulGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldPointsSuccessful, v))
}

// PointsSuccessfulGTE applies the GTE predicate on the "points_successful" field.
func PointsSuccessfulGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldPointsSuccessful, v))
}

// PointsSuccessfulLT applies the LT predicate on the "points_successful" field.
func PointsSuccessfulLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldPointsSuccessful, v))
}

// PointsSuccessfulLTE applies the LTE predicate on the "points_successful" field.
func PointsSuccessfulLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldPointsSuccessful, v))
}

// PointsFailedEQ applies the EQ predicate on the "points_failed" field.
func PointsFailedEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldPointsFailed, v))
}

// PointsFailedNEQ applies the NEQ predicate on the "points_failed" field.
func PointsFailedNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldPointsFailed, v))
}

// PointsFailedIn applies the In predicate on the "points_failed" field.
func PointsFailedIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldPointsFailed, vs...))
}

// PointsFailedNotIn applies the NotIn predicate on the "points_failed" field.
func PointsFailedNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldPointsFailed, vs...))
}

// PointsFailedGT applies the GT predicate on the "points_failed" field.
func PointsFailedGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldPointsFailed, v))
}

// PointsFailedGTE applies the GTE predicate on the "points_failed" field.
func PointsFailedGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldPointsFailed, v))
}

// PointsFailedLT applies the LT predicate on the "points_failed" field.
func PointsFailedLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldPointsFailed, v))
}

// PointsFailedLTE applies the LTE predicate on the "points_failed" field.
func PointsFailedLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldPointsFailed, v))
}

// RecallRateEQ applies the EQ predicate on the "recall_rate" field.
func RecallRateEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldRecallRate, v))
}

// RecallRateNEQ applies the NEQ predicate on the "recall_rate" field.
func RecallRateNEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldRecallRate, v))
}

// RecallRateIn applies the In predicate on the "recall_rate" field.
func RecallRateIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldRecallRate, vs...))
}

// RecallRateNotIn applies the NotIn predicate on the "recall_rate" field.
func RecallRateNotIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldRecallRate, vs...))
}

// RecallRateGT applies the GT predicate on the "recall_rate" field.
func RecallRateGT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldRecallRate, v))
}

// RecallRateGTE applies the GTE predicate on the "recall_rate" field.
func RecallRateGTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldRecallRate, v))
}

// RecallRateLT applies the LT predicate on the "recall_rate" field.
func RecallRateLT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldRecallRate, v))
}

// RecallRateLTE applies the LTE predicate on the "recall_rate" field.
func RecallRateLTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldRecallRate, v))
}

// AvgConfidenceEQ applies the EQ predicate on the "avg_confidence" field.
func AvgConfidenceEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAvgConfidence, v))
}

// AvgConfidenceNEQ applies the NEQ predicate on the "avg_confidence" field.
func AvgConfidenceNEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldAvgConfidence, v))
}

// AvgConfidenceIn applies the In predicate on the "avg_confidence" field.
func AvgConfidenceIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldAvgConfidence, vs...))
}

// AvgConfidenceNotIn applies the NotIn predicate on the "avg_confidence" field.
func AvgConfidenceNotIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldAvgConfidence, vs...))
}

// AvgConfidenceGT applies the GT predicate on the "avg_confidence" field.
func AvgConfidenceGT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldAvgConfidence, v))
}

// AvgConfidenceGTE applies the GTE predicate on the "avg_confidence" field.
func AvgConfidenceGTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldAvgConfidence, v))
}

// AvgConfidenceLT applies the LT predicate on the "avg_confidence" field.
func AvgConfidenceLT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldAvgConfidence, v))
}

// AvgConfidenceLTE applies the LTE predicate on the "avg_confidence" field.
func AvgConfidenceLTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldAvgConfidence, v))
}

// UserMessagesEQ applies the EQ predicate on the "user_messages" field.
func UserMessagesEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldUserMessages, v))
}

// UserMessagesNEQ applies the NEQ predicate on the "user_messages" field.
func UserMessagesNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldUserMessages, v))
}

// UserMessagesIn applies the In predicate on the "user_messages" field.
func UserMessagesIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldUserMessages, vs...))
}

// UserMessagesNotIn applies the NotIn predicate on the "user_messages" field.
func UserMessagesNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldUserMessages, vs...))
}

// UserMessagesGT applies the GT predicate on the "user_messages" field.
func UserMessagesGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldUserMessages, v))
}

// UserMessagesGTE applies the GTE predicate on the "user_messages" field.
func UserMessagesGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldUserMessages, v))
}

// UserMessagesLT applies the LT predicate on the "user_messages" field.
func UserMessagesLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldUserMessages, v))
}

// UserMessagesLTE applies the LTE predicate on the "user_messages" field.
func UserMessagesLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldUserMessages, v))
}

// AssistantMessagesEQ applies the EQ predicate on the "assistant_messages" field.
func AssistantMessagesEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAssistantMessages, v))
}

// AssistantMessagesNEQ applies the NEQ predicate on the "assistant_messages" field.
func AssistantMessagesNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldAssistantMessages, v))
}

// AssistantMessagesIn applies the In predicate on the "assistant_messages" field.
func AssistantMessagesIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldAssistantMessages, vs...))
}

// AssistantMessagesNotIn applies the NotIn predicate on the "assistant_messages" field.
func AssistantMessagesNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldAssistantMessages, vs...))
}

// AssistantMessagesGT applies the GT predicate on the "assistant_messages" field.
func AssistantMessagesGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldAssistantMessages, v))
}

// AssistantMessagesGTE applies the GTE predicate on the "assistant_messages" field.
func AssistantMessagesGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldAssistantMessages, v))
}

// AssistantMessagesLT applies the LT predicate on the "assistant_messages" field.
func AssistantMessagesLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldAssistantMessages, v))
}

// AssistantMessagesLTE applies the LTE predicate on the "assistant_messages" field.
func AssistantMessagesLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldAssistantMessages, v))
}

// TotalMessagesEQ applies the EQ predicate on the "total_messages" field.
func TotalMessagesEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldTotalMessages, v))
}

// TotalMessagesNEQ applies the NEQ predicate on the "total_messages" field.
func TotalMessagesNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldTotalMessages, v))
}

// TotalMessagesIn applies the In predicate on the "total_messages" field.
func TotalMessagesIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldTotalMessages, vs...))
}

// TotalMessagesNotIn applies the NotIn predicate on the "total_messages" field.
func TotalMessagesNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldTotalMessages, vs...))
}

// TotalMessagesGT applies the GT predicate on the "total_messages" field.
func TotalMessagesGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldTotalMessages, v))
}

// TotalMessagesGTE applies the GTE predicate on the "total_messages" field.
func TotalMessagesGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldTotalMessages, v))
}

// TotalMessagesLT applies the LT predicate on the "total_messages" field.
func TotalMessagesLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldTotalMessages, v))
}

// TotalMessagesLTE applies the LTE predicate on the "total_messages" field.
func TotalMessagesLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldTotalMessages, v))
}

// RabbitholeCountEQ applies the EQ predicate on the "rabbithole_count" field.
func RabbitholeCountEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldRabbitholeCount, v))
}

// RabbitholeCountNEQ applies the NEQ predicate on the "rabbithole_count" field.
func RabbitholeCountNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldRabbitholeCount, v))
}

// RabbitholeCountIn applies the In predicate on the "rabbithole_count" field.
func RabbitholeCountIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldRabbitholeCount, vs...))
}

// RabbitholeCountNotIn applies the NotIn predicate on the "rabbithole_count" field.
func RabbitholeCountNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldRabbitholeCount, vs...))
}

// RabbitholeCountGT applies the GT predicate on the "rabbithole_count" field.
func RabbitholeCountGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldRabbitholeCount, v))
}

// RabbitholeCountGTE applies the GTE predicate on the "rabbithole_count" field.
func RabbitholeCountGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldRabbitholeCount, v))
}

// RabbitholeCountLT applies the LT predicate on the "rabbithole_count" field.
func RabbitholeCountLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldRabbitholeCount, v))
}

// RabbitholeCountLTE applies the LTE predicate on the "rabbithole_count" field.
func RabbitholeCountLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldRabbitholeCount, v))
}

// RabbitholeDurationMsEQ applies the EQ predicate on the "rabbithole_duration_ms" field.
func RabbitholeDurationMsEQ(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldRabbitholeDurationMs, v))
}

// RabbitholeDurationMsNEQ applies the NEQ predicate on the "rabbithole_duration_ms" field.
func RabbitholeDurationMsNEQ(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldRabbitholeDurationMs, v))
}

// RabbitholeDurationMsIn applies the In predicate on the "rabbithole_duration_ms" field.
func RabbitholeDurationMsIn(vs ...int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldRabbitholeDurationMs, vs...))
}

// RabbitholeDurationMsNotIn applies the NotIn predicate on the "rabbithole_duration_ms" field.
func RabbitholeDurationMsNotIn(vs ...int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldRabbitholeDurationMs, vs...))
}

// RabbitholeDurationMsGT applies the GT predicate on the "rabbithole_duration_ms" field.
func RabbitholeDurationMsGT(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldRabbitholeDurationMs, v))
}

// RabbitholeDurationMsGTE applies the GTE predicate on the "rabbithole_duration_ms" field.
func RabbitholeDurationMsGTE(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldRabbitholeDurationMs, v))
}

// RabbitholeDurationMsLT applies the LT predicate on the "rabbithole_duration_ms" field.
func RabbitholeDurationMsLT(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldRabbitholeDurationMs, v))
}

// RabbitholeDurationMsLTE applies the LTE predicate on the "rabbithole_duration_ms" field.
func RabbitholeDurationMsLTE(v int64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldRabbitholeDurationMs, v))
}

// RabbitholeAvgDepthEQ applies the EQ predicate on the "rabbithole_avg_depth" field.
func RabbitholeAvgDepthEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldRabbitholeAvgDepth, v))
}

// RabbitholeAvgDepthNEQ applies the NEQ predicate on the "rabbithole_avg_depth" field.
func RabbitholeAvgDepthNEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldRabbitholeAvgDepth, v))
}

// RabbitholeAvgDepthIn applies the In predicate on the "rabbithole_avg_depth" field.
func RabbitholeAvgDepthIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldRabbitholeAvgDepth, vs...))
}

// RabbitholeAvgDepthNotIn applies the NotIn predicate on the "rabbithole_avg_depth" field.
func RabbitholeAvgDepthNotIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldRabbitholeAvgDepth, vs...))
}

// RabbitholeAvgDepthGT applies the GT predicate on the "rabbithole_avg_depth" field.
func RabbitholeAvgDepthGT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldRabbitholeAvgDepth, v))
}

// RabbitholeAvgDepthGTE applies the GTE predicate on the "rabbithole_avg_depth" field.
func RabbitholeAvgDepthGTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldRabbitholeAvgDepth, v))
}

// RabbitholeAvgDepthLT applies the LT predicate on the "rabbithole_avg_depth" field.
func RabbitholeAvgDepthLT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldRabbitholeAvgDepth, v))
}

// RabbitholeAvgDepthLTE applies the LTE predicate on the "rabbithole_avg_depth" field.
func RabbitholeAvgDepthLTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldRabbitholeAvgDepth, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldOutputTokens, v))
}

// EstimatedCostUsdEQ applies the EQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdNEQ applies the NEQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdIn applies the In predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdNotIn applies the NotIn predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNotIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdGT applies the GT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdGTE applies the GTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLT applies the LT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLTE applies the LTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldEstimatedCostUsd, v))
}

// EngagementScoreEQ applies the EQ predicate on the "engagement_score" field.
func EngagementScoreEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementScoreNEQ applies the NEQ predicate on the "engagement_score" field.
func EngagementScoreNEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldEngagementScore, v))
}

// EngagementScoreIn applies the In predicate on the "engagement_score" field.
func EngagementScoreIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldEngagementScore, vs...))
}

// EngagementScoreNotIn applies the NotIn predicate on the "engagement_score" field.
func EngagementScoreNotIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldEngagementScore, vs...))
}

// EngagementScoreGT applies the GT predicate on the "engagement_score" field.
func EngagementScoreGT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldEngagementScore, v))
}

// EngagementScoreGTE applies the GTE predicate on the "engagement_score" field.
func EngagementScoreGTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldEngagementScore, v))
}

// EngagementScoreLT applies the LT predicate on the "engagement_score" field.
func EngagementScoreLT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldEngagementScore, v))
}

// EngagementScoreLTE applies the LTE predicate on the "engagement_score" field.
func EngagementScoreLTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldEngagementScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SessionMetrics {
	return predicate.SessionMetrics(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.StudySession) predicate.SessionMetrics {
	return predicate.SessionMetrics(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionMetrics) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionMetrics) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionMetrics) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.NotPredicates(p))
}
