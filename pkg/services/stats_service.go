package services

import (
	"context"
	"fmt"
	"time"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/ent/rabbitholeevent"
	"github.com/recallkit/recallkit/ent/recalloutcome"
	"github.com/recallkit/recallkit/ent/sessionmetrics"
	"github.com/recallkit/recallkit/ent/studysession"
	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/fsrs"
	"github.com/recallkit/recallkit/pkg/llm"
)

// StatsService serves the read side: session listings, transcripts, and
// the dashboard aggregation.
type StatsService struct {
	client *ent.Client
}

// NewStatsService creates a StatsService.
func NewStatsService(client *ent.Client) *StatsService {
	return &StatsService{client: client}
}

// SessionSummary is one row of the session listing.
type SessionSummary struct {
	ID             string     `json:"id"`
	SetID          string     `json:"set_id"`
	Status         string     `json:"status"`
	TargetPoints   int        `json:"target_points"`
	RecalledPoints int        `json:"recalled_points"`
	StartedAt      time.Time  `json:"started_at"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
}

// SessionDetail is a full session export: the main dialog, the audit
// trail, rabbit-hole events, and the metrics row when finalized.
type SessionDetail struct {
	Session     SessionSummary       `json:"session"`
	Messages    []*engine.Message    `json:"messages"`
	Outcomes    []*engine.Outcome    `json:"outcomes"`
	Rabbitholes []*engine.Rabbithole `json:"rabbitholes"`
	Metrics     *SessionMetricsRow   `json:"metrics,omitempty"`
}

// SessionMetricsRow mirrors the persisted metrics aggregate.
type SessionMetricsRow struct {
	TotalDurationMS      int64   `json:"total_duration_ms"`
	ActiveDurationMS     int64   `json:"active_duration_ms"`
	PointsAttempted      int     `json:"points_attempted"`
	PointsSuccessful     int     `json:"points_successful"`
	PointsFailed         int     `json:"points_failed"`
	RecallRate           float64 `json:"recall_rate"`
	AvgConfidence        float64 `json:"avg_confidence"`
	TotalMessages        int     `json:"total_messages"`
	RabbitholeCount      int     `json:"rabbithole_count"`
	RabbitholeDurationMS int64   `json:"rabbithole_duration_ms"`
	InputTokens          int     `json:"input_tokens"`
	OutputTokens         int     `json:"output_tokens"`
	EstimatedCostUSD     float64 `json:"estimated_cost_usd"`
	EngagementScore      float64 `json:"engagement_score"`
}

// DashboardStats is the aggregate served by GET /api/v1/stats.
type DashboardStats struct {
	TotalSessions     int     `json:"total_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
	ActiveSessions    int     `json:"active_sessions"`
	PointsAttempted   int     `json:"points_attempted"`
	PointsSuccessful  int     `json:"points_successful"`
	OverallRecallRate float64 `json:"overall_recall_rate"`
	AvgEngagement     float64 `json:"avg_engagement"`
	TotalStudyTimeMS  int64   `json:"total_study_time_ms"`
	TotalRabbitholes  int     `json:"total_rabbitholes"`
	TotalCostUSD      float64 `json:"total_cost_usd"`
}

// ListSessions returns sessions newest first, optionally filtered by set.
func (s *StatsService) ListSessions(ctx context.Context, setID string, limit int) ([]*SessionSummary, error) {
	q := s.client.StudySession.Query().
		Order(ent.Desc(studysession.FieldStartedAt))
	if setID != "" {
		q = q.Where(studysession.RecallSetID(setID))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	out := make([]*SessionSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, summaryFromEnt(row))
	}
	return out, nil
}

// GetSession loads one session with its full transcript and audit trail.
func (s *StatsService) GetSession(ctx context.Context, sessionID string) (*SessionDetail, error) {
	row, err := s.client.StudySession.Get(ctx, sessionID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	messages, err := NewMessageRepo(s.client).ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	outcomes, err := s.listOutcomes(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rabbitholes, err := s.listRabbitholes(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	metrics, err := s.getMetrics(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &SessionDetail{
		Session:     *summaryFromEnt(row),
		Messages:    messages,
		Outcomes:    outcomes,
		Rabbitholes: rabbitholes,
		Metrics:     metrics,
	}, nil
}

// Dashboard computes the cross-session aggregate.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	stats.TotalSessions, err = s.client.StudySession.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	stats.CompletedSessions, err = s.client.StudySession.Query().
		Where(studysession.StatusEQ(studysession.StatusCompleted)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed sessions: %w", err)
	}
	stats.ActiveSessions, err = s.client.StudySession.Query().
		Where(studysession.StatusIn(studysession.StatusInProgress, studysession.StatusPaused)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active sessions: %w", err)
	}

	stats.PointsAttempted, err = s.client.RecallOutcome.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count outcomes: %w", err)
	}
	stats.PointsSuccessful, err = s.client.RecallOutcome.Query().
		Where(recalloutcome.Success(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count successful outcomes: %w", err)
	}
	if stats.PointsAttempted > 0 {
		stats.OverallRecallRate = float64(stats.PointsSuccessful) / float64(stats.PointsAttempted)
	}

	metricRows, err := s.client.SessionMetrics.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}
	var engagementSum float64
	for _, m := range metricRows {
		stats.TotalStudyTimeMS += m.ActiveDurationMs
		stats.TotalRabbitholes += m.RabbitholeCount
		stats.TotalCostUSD += m.EstimatedCostUsd
		engagementSum += m.EngagementScore
	}
	if len(metricRows) > 0 {
		stats.AvgEngagement = engagementSum / float64(len(metricRows))
	}

	return stats, nil
}

func (s *StatsService) listOutcomes(ctx context.Context, sessionID string) ([]*engine.Outcome, error) {
	rows, err := s.client.RecallOutcome.Query().
		Where(recalloutcome.SessionID(sessionID)).
		Order(ent.Asc(recalloutcome.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list outcomes: %w", err)
	}
	out := make([]*engine.Outcome, 0, len(rows))
	for _, row := range rows {
		out = append(out, outcomeFromEnt(row))
	}
	return out, nil
}

func (s *StatsService) listRabbitholes(ctx context.Context, sessionID string) ([]*engine.Rabbithole, error) {
	rows, err := s.client.RabbitholeEvent.Query().
		Where(rabbitholeevent.SessionID(sessionID)).
		Order(ent.Asc(rabbitholeevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rabbithole events: %w", err)
	}
	out := make([]*engine.Rabbithole, 0, len(rows))
	for _, row := range rows {
		out = append(out, rabbitholeFromEnt(row))
	}
	return out, nil
}

func (s *StatsService) getMetrics(ctx context.Context, sessionID string) (*SessionMetricsRow, error) {
	row, err := s.client.SessionMetrics.Query().
		Where(sessionmetrics.SessionID(sessionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session metrics: %w", err)
	}
	return &SessionMetricsRow{
		TotalDurationMS:      row.TotalDurationMs,
		ActiveDurationMS:     row.ActiveDurationMs,
		PointsAttempted:      row.PointsAttempted,
		PointsSuccessful:     row.PointsSuccessful,
		PointsFailed:         row.PointsFailed,
		RecallRate:           row.RecallRate,
		AvgConfidence:        row.AvgConfidence,
		TotalMessages:        row.TotalMessages,
		RabbitholeCount:      row.RabbitholeCount,
		RabbitholeDurationMS: row.RabbitholeDurationMs,
		InputTokens:          row.InputTokens,
		OutputTokens:         row.OutputTokens,
		EstimatedCostUSD:     row.EstimatedCostUsd,
		EngagementScore:      row.EngagementScore,
	}, nil
}

func summaryFromEnt(row *ent.StudySession) *SessionSummary {
	return &SessionSummary{
		ID:             row.ID,
		SetID:          row.RecallSetID,
		Status:         string(row.Status),
		TargetPoints:   len(row.TargetPointIds),
		RecalledPoints: len(row.RecalledPointIds),
		StartedAt:      row.StartedAt,
		EndedAt:        row.EndedAt,
	}
}

func outcomeFromEnt(row *ent.RecallOutcome) *engine.Outcome {
	o := &engine.Outcome{
		ID:                row.ID,
		SessionID:         row.SessionID,
		RecallPointID:     row.RecallPointID,
		Success:           row.Success,
		Confidence:        row.Confidence,
		MessageIndexStart: row.MessageIndexStart,
		MessageIndexEnd:   row.MessageIndexEnd,
		TimeSpentMS:       row.TimeSpentMs,
		CreatedAt:         row.CreatedAt,
	}
	if row.Rating != nil {
		rating := fsrs.Rating(*row.Rating)
		o.Rating = &rating
	}
	if row.Reasoning != nil {
		o.Reasoning = *row.Reasoning
	}
	return o
}

func rabbitholeFromEnt(row *ent.RabbitholeEvent) *engine.Rabbithole {
	rh := &engine.Rabbithole{
		ID:                  row.ID,
		SessionID:           row.SessionID,
		Topic:               row.Topic,
		TriggerMessageIndex: row.TriggerMessageIndex,
		ReturnMessageIndex:  row.ReturnMessageIndex,
		Depth:               row.Depth,
		RelatedPointIDs:     row.RelatedPointIds,
		UserInitiated:       row.UserInitiated,
		Status:              engine.RabbitholeStatus(row.Status),
		CreatedAt:           row.CreatedAt,
	}
	for _, turn := range row.Conversation {
		role, _ := turn["role"].(string)
		content, _ := turn["content"].(string)
		rh.Conversation = append(rh.Conversation, engine.AgentTurn{
			Role:    llm.Role(role),
			Content: content,
		})
	}
	return rh
}
