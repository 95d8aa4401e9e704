package services

import (
	"context"
	"fmt"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/pkg/engine"
)

// MetricsRepo implements engine.MetricsRepo over Ent.
type MetricsRepo struct {
	client *ent.Client
}

// NewMetricsRepo creates a MetricsRepo.
func NewMetricsRepo(client *ent.Client) *MetricsRepo {
	return &MetricsRepo{client: client}
}

func (r *MetricsRepo) Create(ctx context.Context, m *engine.Metrics) error {
	err := r.client.SessionMetrics.Create().
		SetID(m.ID).
		SetSessionID(m.SessionID).
		SetTotalDurationMs(m.TotalDurationMS).
		SetActiveDurationMs(m.ActiveDurationMS).
		SetAvgUserResponseMs(m.AvgUserResponseMS).
		SetAvgAssistantResponseMs(m.AvgAssistantResponseMS).
		SetPointsAttempted(m.PointsAttempted).
		SetPointsSuccessful(m.PointsSuccessful).
		SetPointsFailed(m.PointsFailed).
		SetRecallRate(m.RecallRate).
		SetAvgConfidence(m.AvgConfidence).
		SetUserMessages(m.UserMessages).
		SetAssistantMessages(m.AssistantMessages).
		SetTotalMessages(m.TotalMessages).
		SetRabbitholeCount(m.RabbitholeCount).
		SetRabbitholeDurationMs(m.RabbitholeDurationMS).
		SetRabbitholeAvgDepth(m.RabbitholeAvgDepth).
		SetInputTokens(m.InputTokens).
		SetOutputTokens(m.OutputTokens).
		SetEstimatedCostUsd(m.EstimatedCostUSD).
		SetEngagementScore(m.EngagementScore).
		SetCreatedAt(m.CreatedAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create session metrics: %w", err)
	}
	return nil
}
