// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/recallkit/recallkit/ent/rabbitholeevent"
	"github.com/recallkit/recallkit/ent/recalloutcome"
	"github.com/recallkit/recallkit/ent/recallpoint"
	"github.com/recallkit/recallkit/ent/recallset"
	"github.com/recallkit/recallkit/ent/schema"
	"github.com/recallkit/recallkit/ent/sessionmessage"
	"github.com/recallkit/recallkit/ent/sessionmetrics"
	"github.com/recallkit/recallkit/ent/studysession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	rabbitholeeventFields := schema.RabbitholeEvent{}.Fields()
	_ = rabbitholeeventFields
	// rabbitholeeventDescDepth is the schema descriptor for depth field.
	rabbitholeeventDescDepth := rabbitholeeventFields[5].Descriptor()
	// rabbitholeevent.DefaultDepth holds the default value on creation for the depth field.
	rabbitholeevent.DefaultDepth = rabbitholeeventDescDepth.Default.(int)
	// rabbitholeeventDescUserInitiated is the schema descriptor for user_initiated field.
	rabbitholeeventDescUserInitiated := rabbitholeeventFields[7].Descriptor()
	// rabbitholeevent.DefaultUserInitiated holds the default value on creation for the user_initiated field.
	rabbitholeevent.DefaultUserInitiated = rabbitholeeventDescUserInitiated.Default.(bool)
	// rabbitholeeventDescCreatedAt is the schema descriptor for created_at field.
	rabbitholeeventDescCreatedAt := rabbitholeeventFields[10].Descriptor()
	// rabbitholeevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	rabbitholeevent.DefaultCreatedAt = rabbitholeeventDescCreatedAt.Default.(func() time.Time)
	recalloutcomeFields := schema.RecallOutcome{}.Fields()
	_ = recalloutcomeFields
	// recalloutcomeDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	recalloutcomeDescTimeSpentMs := recalloutcomeFields[9].Descriptor()
	// recalloutcome.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	recalloutcome.DefaultTimeSpentMs = recalloutcomeDescTimeSpentMs.Default.(int)
	// recalloutcomeDescCreatedAt is the schema descriptor for created_at field.
	recalloutcomeDescCreatedAt := recalloutcomeFields[10].Descriptor()
	// recalloutcome.DefaultCreatedAt holds the default value on creation for the created_at field.
	recalloutcome.DefaultCreatedAt = recalloutcomeDescCreatedAt.Default.(func() time.Time)
	recallpointFields := schema.RecallPoint{}.Fields()
	_ = recallpointFields
	// recallpointDescContext is the schema descriptor for context field.
	recallpointDescContext := recallpointFields[3].Descriptor()
	// recallpoint.DefaultContext holds the default value on creation for the context field.
	recallpoint.DefaultContext = recallpointDescContext.Default.(string)
	// recallpointDescDifficulty is the schema descriptor for difficulty field.
	recallpointDescDifficulty := recallpointFields[4].Descriptor()
	// recallpoint.DefaultDifficulty holds the default value on creation for the difficulty field.
	recallpoint.DefaultDifficulty = recallpointDescDifficulty.Default.(float64)
	// recallpointDescStability is the schema descriptor for stability field.
	recallpointDescStability := recallpointFields[5].Descriptor()
	// recallpoint.DefaultStability holds the default value on creation for the stability field.
	recallpoint.DefaultStability = recallpointDescStability.Default.(float64)
	// recallpointDescReps is the schema descriptor for reps field.
	recallpointDescReps := recallpointFields[8].Descriptor()
	// recallpoint.DefaultReps holds the default value on creation for the reps field.
	recallpoint.DefaultReps = recallpointDescReps.Default.(int)
	// recallpointDescLapses is the schema descriptor for lapses field.
	recallpointDescLapses := recallpointFields[9].Descriptor()
	// recallpoint.DefaultLapses holds the default value on creation for the lapses field.
	recallpoint.DefaultLapses = recallpointDescLapses.Default.(int)
	// recallpointDescCreatedAt is the schema descriptor for created_at field.
	recallpointDescCreatedAt := recallpointFields[12].Descriptor()
	// recallpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	recallpoint.DefaultCreatedAt = recallpointDescCreatedAt.Default.(func() time.Time)
	// recallpointDescUpdatedAt is the schema descriptor for updated_at field.
	recallpointDescUpdatedAt := recallpointFields[13].Descriptor()
	// recallpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recallpoint.DefaultUpdatedAt = recallpointDescUpdatedAt.Default.(func() time.Time)
	// recallpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recallpoint.UpdateDefaultUpdatedAt = recallpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	recallsetFields := schema.RecallSet{}.Fields()
	_ = recallsetFields
	// recallsetDescDescription is the schema descriptor for description field.
	recallsetDescDescription := recallsetFields[2].Descriptor()
	// recallset.DefaultDescription holds the default value on creation for the description field.
	recallset.DefaultDescription = recallsetDescDescription.Default.(string)
	// recallsetDescCreatedAt is the schema descriptor for created_at field.
	recallsetDescCreatedAt := recallsetFields[5].Descriptor()
	// recallset.DefaultCreatedAt holds the default value on creation for the created_at field.
	recallset.DefaultCreatedAt = recallsetDescCreatedAt.Default.(func() time.Time)
	// recallsetDescUpdatedAt is the schema descriptor for updated_at field.
	recallsetDescUpdatedAt := recallsetFields[6].Descriptor()
	// recallset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recallset.DefaultUpdatedAt = recallsetDescUpdatedAt.Default.(func() time.Time)
	// recallset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recallset.UpdateDefaultUpdatedAt = recallsetDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionmessageFields := schema.SessionMessage{}.Fields()
	_ = sessionmessageFields
	// sessionmessageDescCreatedAt is the schema descriptor for created_at field.
	sessionmessageDescCreatedAt := sessionmessageFields[6].Descriptor()
	// sessionmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionmessage.DefaultCreatedAt = sessionmessageDescCreatedAt.Default.(func() time.Time)
	sessionmetricsFields := schema.SessionMetrics{}.Fields()
	_ = sessionmetricsFields
	// sessionmetricsDescAvgUserResponseMs is the schema descriptor for avg_user_response_ms field.
	sessionmetricsDescAvgUserResponseMs := sessionmetricsFields[4].Descriptor()
	// sessionmetrics.DefaultAvgUserResponseMs holds the default value on creation for the avg_user_response_ms field.
	sessionmetrics.DefaultAvgUserResponseMs = sessionmetricsDescAvgUserResponseMs.Default.(int64)
	// sessionmetricsDescAvgAssistantResponseMs is the schema descriptor for avg_assistant_response_ms field.
	sessionmetricsDescAvgAssistantResponseMs := sessionmetricsFields[5].Descriptor()
	// sessionmetrics.DefaultAvgAssistantResponseMs holds the default value on creation for the avg_assistant_response_ms field.
	sessionmetrics.DefaultAvgAssistantResponseMs = sessionmetricsDescAvgAssistantResponseMs.Default.(int64)
	// sessionmetricsDescRabbitholeCount is the schema descriptor for rabbithole_count field.
	sessionmetricsDescRabbitholeCount := sessionmetricsFields[14].Descriptor()
	// sessionmetrics.DefaultRabbitholeCount holds the default value on creation for the rabbithole_count field.
	sessionmetrics.DefaultRabbitholeCount = sessionmetricsDescRabbitholeCount.Default.(int)
	// sessionmetricsDescRabbitholeDurationMs is the schema descriptor for rabbithole_duration_ms field.
	sessionmetricsDescRabbitholeDurationMs := sessionmetricsFields[15].Descriptor()
	// sessionmetrics.DefaultRabbitholeDurationMs holds the default value on creation for the rabbithole_duration_ms field.
	sessionmetrics.DefaultRabbitholeDurationMs = sessionmetricsDescRabbitholeDurationMs.Default.(int64)
	// sessionmetricsDescRabbitholeAvgDepth is the schema descriptor for rabbithole_avg_depth field.
	sessionmetricsDescRabbitholeAvgDepth := sessionmetricsFields[16].Descriptor()
	// sessionmetrics.DefaultRabbitholeAvgDepth holds the default value on creation for the rabbithole_avg_depth field.
	sessionmetrics.DefaultRabbitholeAvgDepth = sessionmetricsDescRabbitholeAvgDepth.Default.(float64)
	// sessionmetricsDescInputTokens is the schema descriptor for input_tokens field.
	sessionmetricsDescInputTokens := sessionmetricsFields[17].Descriptor()
	// sessionmetrics.DefaultInputTokens holds the default value on creation for the input_tokens field.
	sessionmetrics.DefaultInputTokens = sessionmetricsDescInputTokens.Default.(int)
	// sessionmetricsDescOutputTokens is the schema descriptor for output_tokens field.
	sessionmetricsDescOutputTokens := sessionmetricsFields[18].Descriptor()
	// sessionmetrics.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	sessionmetrics.DefaultOutputTokens = sessionmetricsDescOutputTokens.Default.(int)
	// sessionmetricsDescEstimatedCostUsd is the schema descriptor for estimated_cost_usd field.
	sessionmetricsDescEstimatedCostUsd := sessionmetricsFields[19].Descriptor()
	// sessionmetrics.DefaultEstimatedCostUsd holds the default value on creation for the estimated_cost_usd field.
	sessionmetrics.DefaultEstimatedCostUsd = sessionmetricsDescEstimatedCostUsd.Default.(float64)
	// sessionmetricsDescCreatedAt is the schema descriptor for created_at field.
	sessionmetricsDescCreatedAt := sessionmetricsFields[21].Descriptor()
	// sessionmetrics.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionmetrics.DefaultCreatedAt = sessionmetricsDescCreatedAt.Default.(func() time.Time)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescStartedAt is the schema descriptor for started_at field.
	studysessionDescStartedAt := studysessionFields[5].Descriptor()
	// studysession.DefaultStartedAt holds the default value on creation for the started_at field.
	studysession.DefaultStartedAt = studysessionDescStartedAt.Default.(func() time.Time)
}
