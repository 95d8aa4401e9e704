package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/fsrs"
	"github.com/recallkit/recallkit/pkg/llm"
)

// seedSession creates a set, two points, and an in-progress session.
func seedSession(t *testing.T, client *clientBundle) (setID string, pointIDs []string, sessionID string) {
	t.Helper()
	now := time.Now().UTC()
	setID = mustCreateSet(t, client.ent, "Persistence-"+uuid.New().String()[:8])
	p1 := mustCreatePoint(t, client.ent, setID, "fact one", now)
	p2 := mustCreatePoint(t, client.ent, setID, "fact two", now)
	session := newSessionRow(setID, []string{p1, p2}, now)
	require.NoError(t, client.sessions.Create(context.Background(), session))
	return setID, []string{p1, p2}, session.ID
}

type clientBundle struct {
	ent         *ent.Client
	sessions    *SessionRepo
	messages    *MessageRepo
	outcomes    *OutcomeRepo
	rabbitholes *RabbitholeRepo
	metrics     *MetricsRepo
	stats       *StatsService
}

func newBundle(t *testing.T) *clientBundle {
	client := newTestClient(t)
	return &clientBundle{
		ent:         client,
		sessions:    NewSessionRepo(client),
		messages:    NewMessageRepo(client),
		outcomes:    NewOutcomeRepo(client),
		rabbitholes: NewRabbitholeRepo(client),
		metrics:     NewMetricsRepo(client),
		stats:       NewStatsService(client),
	}
}

func TestMessageRepo_RoundTrip(t *testing.T) {
	b := newBundle(t)
	ctx := context.Background()
	_, _, sessionID := seedSession(t, b)
	now := time.Now().UTC().Truncate(time.Millisecond)

	tokens := 120
	rows := []*engine.Message{
		{ID: uuid.New().String(), SessionID: sessionID, Index: 0, Role: llm.RoleAssistant, Content: "opening", TokenCount: &tokens, CreatedAt: now},
		{ID: uuid.New().String(), SessionID: sessionID, Index: 1, Role: llm.RoleUser, Content: "reply", CreatedAt: now.Add(5 * time.Second)},
	}
	for _, m := range rows {
		require.NoError(t, b.messages.Create(ctx, m))
	}

	t.Run("duplicate index rejected", func(t *testing.T) {
		dup := &engine.Message{ID: uuid.New().String(), SessionID: sessionID, Index: 1, Role: llm.RoleUser, Content: "again", CreatedAt: now}
		assert.ErrorIs(t, b.messages.Create(ctx, dup), ErrAlreadyExists)
	})

	got, err := b.messages.ListBySession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, llm.RoleAssistant, got[0].Role)
	require.NotNil(t, got[0].TokenCount)
	assert.Equal(t, 120, *got[0].TokenCount)
	assert.Nil(t, got[1].TokenCount)
}

func TestOutcomeRepo_Create(t *testing.T) {
	b := newBundle(t)
	ctx := context.Background()
	_, pointIDs, sessionID := seedSession(t, b)
	now := time.Now().UTC().Truncate(time.Millisecond)

	rating := fsrs.RatingGood
	require.NoError(t, b.outcomes.Create(ctx, &engine.Outcome{
		ID:                uuid.New().String(),
		SessionID:         sessionID,
		RecallPointID:     pointIDs[0],
		Success:           true,
		Confidence:        0.85,
		Rating:            &rating,
		Reasoning:         "stated the date unprompted",
		MessageIndexStart: 0,
		MessageIndexEnd:   2,
		TimeSpentMS:       15000,
		CreatedAt:         now,
	}))

	detail, err := b.stats.GetSession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, detail.Outcomes, 1)
	o := detail.Outcomes[0]
	assert.True(t, o.Success)
	require.NotNil(t, o.Rating)
	assert.Equal(t, fsrs.RatingGood, *o.Rating)
	assert.Equal(t, "stated the date unprompted", o.Reasoning)
	assert.Equal(t, 2, o.MessageIndexEnd)
}

func TestRabbitholeRepo_RoundTrip(t *testing.T) {
	b := newBundle(t)
	ctx := context.Background()
	_, pointIDs, sessionID := seedSession(t, b)
	now := time.Now().UTC().Truncate(time.Millisecond)

	eventID := uuid.New().String()
	require.NoError(t, b.rabbitholes.Create(ctx, &engine.Rabbithole{
		ID:                  eventID,
		SessionID:           sessionID,
		Topic:               "etymology of rubicon",
		TriggerMessageIndex: 3,
		Depth:               1,
		RelatedPointIDs:     pointIDs[:1],
		UserInitiated:       true,
		Status:              engine.RabbitholeActive,
		CreatedAt:           now,
	}))

	require.NoError(t, b.rabbitholes.UpdateConversation(ctx, eventID, []engine.AgentTurn{
		{Role: llm.RoleAssistant, Content: "The name comes from the reddish river bed."},
		{Role: llm.RoleUser, Content: "Interesting!"},
	}))

	returnIdx := 5
	require.NoError(t, b.rabbitholes.UpdateStatus(ctx, eventID, engine.RabbitholeReturned, &returnIdx))

	detail, err := b.stats.GetSession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, detail.Rabbitholes, 1)
	rh := detail.Rabbitholes[0]
	assert.Equal(t, engine.RabbitholeReturned, rh.Status)
	require.NotNil(t, rh.ReturnMessageIndex)
	assert.Equal(t, 5, *rh.ReturnMessageIndex)
	require.Len(t, rh.Conversation, 2)
	assert.Equal(t, llm.RoleAssistant, rh.Conversation[0].Role)
	assert.Equal(t, "Interesting!", rh.Conversation[1].Content)

	assert.ErrorIs(t, b.rabbitholes.UpdateStatus(ctx, "missing", engine.RabbitholeAbandoned, nil), ErrNotFound)
}

func TestRabbitholeRepo_OneActivePerSession(t *testing.T) {
	b := newBundle(t)
	ctx := context.Background()
	_, _, sessionID := seedSession(t, b)
	now := time.Now().UTC().Truncate(time.Millisecond)

	first := uuid.New().String()
	require.NoError(t, b.rabbitholes.Create(ctx, &engine.Rabbithole{
		ID: first, SessionID: sessionID, Topic: "etymology",
		TriggerMessageIndex: 2, Depth: 1, Status: engine.RabbitholeActive, CreatedAt: now,
	}))

	// a second active event for the same session violates the partial
	// unique index
	err := b.rabbitholes.Create(ctx, &engine.Rabbithole{
		ID: uuid.New().String(), SessionID: sessionID, Topic: "roman numerals",
		TriggerMessageIndex: 4, Depth: 1, Status: engine.RabbitholeActive, CreatedAt: now,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// once the first is closed, a new active event is accepted
	idx := 5
	require.NoError(t, b.rabbitholes.UpdateStatus(ctx, first, engine.RabbitholeAbandoned, &idx))
	require.NoError(t, b.rabbitholes.Create(ctx, &engine.Rabbithole{
		ID: uuid.New().String(), SessionID: sessionID, Topic: "roman numerals",
		TriggerMessageIndex: 6, Depth: 1, Status: engine.RabbitholeActive, CreatedAt: now,
	}))
}

func TestMetricsRepo_OnePerSession(t *testing.T) {
	b := newBundle(t)
	ctx := context.Background()
	_, _, sessionID := seedSession(t, b)
	now := time.Now().UTC().Truncate(time.Millisecond)

	row := &engine.Metrics{
		ID:               uuid.New().String(),
		SessionID:        sessionID,
		TotalDurationMS:  600000,
		ActiveDurationMS: 480000,
		PointsAttempted:  2,
		PointsSuccessful: 2,
		RecallRate:       1.0,
		AvgConfidence:    0.9,
		UserMessages:     4,
		AssistantMessages: 5,
		TotalMessages:    9,
		InputTokens:      4000,
		OutputTokens:     900,
		EstimatedCostUSD: 0.0255,
		EngagementScore:  92.5,
		CreatedAt:        now,
	}
	require.NoError(t, b.metrics.Create(ctx, row))

	dup := *row
	dup.ID = uuid.New().String()
	assert.ErrorIs(t, b.metrics.Create(ctx, &dup), ErrAlreadyExists)

	detail, err := b.stats.GetSession(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, detail.Metrics)
	assert.InDelta(t, 1.0, detail.Metrics.RecallRate, 1e-9)
	assert.InDelta(t, 92.5, detail.Metrics.EngagementScore, 1e-9)
}

func TestStatsService_Dashboard(t *testing.T) {
	b := newBundle(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	_, pointIDs, sessionID := seedSession(t, b)
	require.NoError(t, b.outcomes.Create(ctx, &engine.Outcome{
		ID: uuid.New().String(), SessionID: sessionID, RecallPointID: pointIDs[0],
		Success: true, Confidence: 0.9, CreatedAt: now,
	}))
	require.NoError(t, b.outcomes.Create(ctx, &engine.Outcome{
		ID: uuid.New().String(), SessionID: sessionID, RecallPointID: pointIDs[1],
		Success: false, Confidence: 0.4, CreatedAt: now,
	}))
	require.NoError(t, b.sessions.Complete(ctx, sessionID, now))
	require.NoError(t, b.metrics.Create(ctx, &engine.Metrics{
		ID: uuid.New().String(), SessionID: sessionID,
		ActiveDurationMS: 300000, RabbitholeCount: 1,
		EstimatedCostUSD: 0.02, EngagementScore: 80,
		CreatedAt: now,
	}))

	stats, err := b.stats.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSessions)
	assert.Equal(t, 1, stats.CompletedSessions)
	assert.Zero(t, stats.ActiveSessions)
	assert.Equal(t, 2, stats.PointsAttempted)
	assert.Equal(t, 1, stats.PointsSuccessful)
	assert.InDelta(t, 0.5, stats.OverallRecallRate, 1e-9)
	assert.InDelta(t, 80, stats.AvgEngagement, 1e-9)
	assert.Equal(t, int64(300000), stats.TotalStudyTimeMS)
	assert.Equal(t, 1, stats.TotalRabbitholes)
	assert.InDelta(t, 0.02, stats.TotalCostUSD, 1e-9)
}

func TestStatsService_ListSessions(t *testing.T) {
	b := newBundle(t)
	ctx := context.Background()

	setID, _, _ := seedSession(t, b)
	now := time.Now().UTC()
	p3 := mustCreatePoint(t, b.ent, setID, "fact three", now)
	second := newSessionRow(setID, []string{p3}, now.Add(time.Minute))
	require.NoError(t, b.sessions.Create(ctx, second))

	sessions, err := b.stats.ListSessions(ctx, setID, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	// newest first
	assert.Equal(t, second.ID, sessions[0].ID)

	limited, err := b.stats.ListSessions(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = b.stats.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
