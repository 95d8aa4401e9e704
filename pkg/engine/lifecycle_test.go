package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/suite"

	"github.com/recallkit/recallkit/pkg/fsrs"
)

func TestStartFailsWithoutDuePoints(t *testing.T) {
	set := &Set{ID: "set-1", Name: "empty"}
	future := &Point{ID: "p1", SetID: set.ID, Content: "later", FSRS: fsrs.State{Due: t0.Add(48 * time.Hour), Phase: fsrs.PhaseNew}}
	h := newHarness(set, []*Point{future}, false)

	_, err := h.engine.Start(context.Background(), set)
	assert.ErrorIs(t, err, ErrNoDuePoints)
}

func TestStartEmitsSessionStarted(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)

	session, err := h.engine.Start(context.Background(), set)
	require.NoError(t, err)

	started := h.recorder.ofType(EventSessionStarted)
	require.Len(t, started, 1)
	payload := started[0].Data.(SessionStartedPayload)
	assert.Equal(t, session.ID, payload.SessionID)
	assert.False(t, payload.Resumed)
	assert.Equal(t, 3, payload.TotalPoints)
	assert.Equal(t, []string{"p1", "p2", "p3"}, session.TargetPointIDs)
}

func TestOpeningMessage(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)

	h.llm.responses = []string{"What happened at the Rubicon?"}
	text, err := h.engine.OpeningMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "What happened at the Rubicon?", text)

	// point_started for the first probe precedes the assistant message
	startedIdx := h.recorder.firstIndex(EventPointStarted)
	assistantIdx := h.recorder.firstIndex(EventAssistantMessage)
	require.GreaterOrEqual(t, startedIdx, 0)
	assert.Less(t, startedIdx, assistantIdx)
	assert.Equal(t, "p1", h.recorder.ofType(EventPointStarted)[0].Data.(PointStartedPayload).PointID)

	opening := h.recorder.ofType(EventAssistantMessage)[0].Data.(AssistantMessagePayload)
	assert.True(t, opening.IsOpening)

	// persisted with token counts from usage
	require.Len(t, h.messages.messages, 1)
	require.NotNil(t, h.messages.messages[0].TokenCount)
	assert.Equal(t, 120, *h.messages.messages[0].TokenCount)
}

// PauseResumeSuite drives the pause/resume round trip across two engine
// instances sharing the same repos, the way the API layer does it.
type PauseResumeSuite struct {
	suite.Suite
	h   *testHarness
	set *Set
}

func (s *PauseResumeSuite) SetupTest() {
	set, points := threePointSet()
	s.set = set
	s.h = newHarness(set, points, false)
}

func (s *PauseResumeSuite) TestRoundTrip() {
	ctx := context.Background()

	session, err := s.h.engine.Start(ctx, s.set)
	s.Require().NoError(err)
	_, err = s.h.engine.OpeningMessage(ctx)
	s.Require().NoError(err)

	s.h.evaluator.queue("p1", success(0.81))
	_, err = s.h.engine.ProcessUserMessage(ctx, "Caesar crossed the Rubicon.")
	s.Require().NoError(err)

	s.Require().NoError(s.h.engine.Pause(ctx))

	row := s.h.sessions.get(session.ID)
	s.Equal(StatusPaused, row.Status)
	s.Equal([]string{"p1"}, row.RecalledPointIDs)

	// a fresh engine over the same repos resumes the same session
	resumed := New(Deps{
		LLM:         s.h.llm,
		Evaluator:   s.h.evaluator,
		Scheduler:   FSRSScheduler{},
		Prompts:     stubPrompts{},
		Sessions:    s.h.sessions,
		Points:      s.h.points,
		Messages:    s.h.messages,
		Outcomes:    s.h.outcomes,
		Rabbitholes: s.h.holes,
		Metrics:     s.h.metrics,
		Clock:       s.h.clock.Now,
	}, Config{})
	rec := &eventRecorder{}
	resumed.SetListener(rec.listen)

	got, err := resumed.Start(ctx, s.set)
	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)
	s.Equal(StatusInProgress, got.Status)
	s.Require().NotNil(got.ResumedAt)

	started := rec.ofType(EventSessionStarted)
	s.Require().Len(started, 1)
	s.True(started[0].Data.(SessionStartedPayload).Resumed)

	// checklist reproduced exactly; probe points at the first pending point
	s.Equal(1, resumed.checklist.recalledCount())
	s.True(resumed.checklist.recalled["p1"])
	s.False(resumed.checklist.recalled["p2"])
	s.False(resumed.checklist.recalled["p3"])
	probe, ok := resumed.checklist.nextProbe()
	s.Require().True(ok)
	s.Equal("p2", probe)

	// the persisted dialog is back in the cache
	s.Equal(len(s.h.messages.messages), len(resumed.messages))

	// no point regressed recalled -> pending: recalling p1 again is a no-op
	committed, err := resumed.markPointRecalled(ctx, resumed.points["p1"], success(0.9))
	s.Require().NoError(err)
	s.False(committed)
}

func TestPauseResumeSuite(t *testing.T) {
	suite.Run(t, new(PauseResumeSuite))
}

func TestResumeRejectsVanishedTargetPoint(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	session, err := h.engine.Start(ctx, set)
	require.NoError(t, err)
	h.evaluator.queue("p1", success(0.9))
	_, err = h.engine.ProcessUserMessage(ctx, "Caesar crossed the Rubicon.")
	require.NoError(t, err)
	require.NoError(t, h.engine.Pause(ctx))

	// a target point vanished from the store while the session was paused
	delete(h.points.points, "p2")

	_, err = h.engine.Start(ctx, set)
	var inv *InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Contains(t, inv.Detail, session.ID)
	assert.Contains(t, inv.Detail, "p2")
}

func TestResumeRejectsRecalledOutsideTargets(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	session, err := h.engine.Start(ctx, set)
	require.NoError(t, err)
	require.NoError(t, h.engine.Pause(ctx))

	// a recalled id the session never targeted
	h.sessions.sessions[session.ID].RecalledPointIDs = []string{"p9"}

	_, err = h.engine.Start(ctx, set)
	var inv *InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Contains(t, inv.Detail, "p9")
}

func TestFinalizeMetricsMatchRecalledEvents(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)
	_, err = h.engine.OpeningMessage(ctx)
	require.NoError(t, err)

	h.evaluator.queue("p1", success(0.81))
	_, err = h.engine.ProcessUserMessage(ctx, "turn one")
	require.NoError(t, err)

	h.evaluator.queue("p2", success(0.95))
	h.evaluator.queue("p3", failure(0.2))
	_, err = h.engine.ProcessUserMessage(ctx, "turn two")
	require.NoError(t, err)

	h.evaluator.queue("p3", success(0.75))
	_, err = h.engine.ProcessUserMessage(ctx, "turn three")
	require.NoError(t, err)

	require.NoError(t, h.engine.Finalize(ctx))

	require.Len(t, h.metrics.rows, 1)
	m := h.metrics.rows[0]

	distinct := make(map[string]struct{})
	for _, ev := range h.recorder.ofType(EventPointRecalled) {
		distinct[ev.Data.(PointRecalledPayload).PointID] = struct{}{}
	}
	assert.Equal(t, len(distinct), m.PointsSuccessful)
	assert.Equal(t, 3, m.PointsSuccessful)
	assert.Equal(t, 3, m.UserMessages)
	assert.Equal(t, 4, m.AssistantMessages)
	assert.Equal(t, 7, m.TotalMessages)
	assert.Positive(t, m.InputTokens)
	assert.Positive(t, m.EstimatedCostUSD)
}

func TestFinalizeCountsUnrecalledFailures(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)
	_, err = h.engine.OpeningMessage(ctx)
	require.NoError(t, err)

	h.evaluator.queue("p1", success(0.9))
	h.evaluator.queue("p2", failure(0.5))
	h.evaluator.queue("p3", failure(0.2))
	_, err = h.engine.ProcessUserMessage(ctx, "turn one")
	require.NoError(t, err)

	// p3 recovers; p2 fails again and only its latest verdict counts
	h.evaluator.queue("p2", failure(0.35))
	h.evaluator.queue("p3", success(0.8))
	_, err = h.engine.ProcessUserMessage(ctx, "turn two")
	require.NoError(t, err)

	require.NoError(t, h.engine.Finalize(ctx))

	require.Len(t, h.metrics.rows, 1)
	m := h.metrics.rows[0]
	assert.Equal(t, 3, m.PointsAttempted)
	assert.Equal(t, 2, m.PointsSuccessful)
	assert.Equal(t, 1, m.PointsFailed)
	assert.InDelta(t, 2.0/3.0, m.RecallRate, 1e-9)
	assert.InDelta(t, (0.9+0.8+0.35)/3, m.AvgConfidence, 1e-9)

	// the never-recalled point lands in the metrics only, not as an
	// outcome row
	assert.Len(t, h.outcomes.outcomes, 2)
}

func TestSnapshot(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	assert.Equal(t, Snapshot{}, h.engine.Snapshot())

	session, err := h.engine.Start(ctx, set)
	require.NoError(t, err)

	h.evaluator.queue("p1", success(0.9))
	_, err = h.engine.ProcessUserMessage(ctx, "Rubicon")
	require.NoError(t, err)

	snap := h.engine.Snapshot()
	assert.Equal(t, session.ID, snap.SessionID)
	assert.Equal(t, ModeRecall, snap.Mode)
	assert.Equal(t, 3, snap.TotalPoints)
	assert.Equal(t, 1, snap.RecalledCount)
	assert.Equal(t, "p2", snap.NextProbePointID)
	assert.False(t, snap.CompletionPending)
}

func TestListenerPanicDoesNotAbortTurn(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	h.engine.SetListener(func(Event) { panic("bad consumer") })

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)
	_, err = h.engine.ProcessUserMessage(ctx, "hello")
	require.NoError(t, err)
}
