package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recallkit/recallkit/pkg/fsrs"
	"github.com/recallkit/recallkit/pkg/llm"
)

func TestPerfectFirstTurn(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	session, err := h.engine.Start(ctx, set)
	require.NoError(t, err)
	_, err = h.engine.OpeningMessage(ctx)
	require.NoError(t, err)

	h.evaluator.queue("p1", success(0.92))
	h.evaluator.queue("p2", success(0.92))
	h.evaluator.queue("p3", success(0.92))

	res, err := h.engine.ProcessUserMessage(ctx, "Rubicon 49 BC, Augustus 27 BC, Carthage 146 BC.")
	require.NoError(t, err)

	assert.False(t, res.Completed)
	assert.Equal(t, 3, res.RecalledCount)
	assert.Equal(t, 3, res.TotalPoints)
	assert.Equal(t, 3, res.PointsRecalledThisTurn)

	// point_recalled fired for p1, p2, p3 in target order
	recalled := h.recorder.ofType(EventPointRecalled)
	require.Len(t, recalled, 3)
	assert.Equal(t, "p1", recalled[0].Data.(PointRecalledPayload).PointID)
	assert.Equal(t, "p2", recalled[1].Data.(PointRecalledPayload).PointID)
	assert.Equal(t, "p3", recalled[2].Data.(PointRecalledPayload).PointID)

	// three outcome rows, all rated easy
	require.Len(t, h.outcomes.outcomes, 3)
	for _, o := range h.outcomes.outcomes {
		require.NotNil(t, o.Rating)
		assert.Equal(t, fsrs.RatingEasy, *o.Rating)
		assert.True(t, o.Success)
	}

	// overlay fired, session not finalized yet
	require.Len(t, h.recorder.ofType(EventSessionCompleteOverlay), 1)
	assert.Empty(t, h.recorder.ofType(EventSessionCompleted))
	assert.Equal(t, StatusInProgress, h.sessions.get(session.ID).Status)

	// leaving finalizes: session_completed fires and the metrics row lands
	require.NoError(t, h.engine.LeaveSession(ctx))
	require.Len(t, h.recorder.ofType(EventSessionCompleted), 1)
	require.Len(t, h.metrics.rows, 1)
	assert.Equal(t, 3, h.metrics.rows[0].PointsSuccessful)
	assert.Equal(t, StatusCompleted, h.sessions.get(session.ID).Status)
}

func TestPartialRecallWithNearMiss(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)
	_, err = h.engine.OpeningMessage(ctx)
	require.NoError(t, err)

	h.evaluator.queue("p1", success(0.81))
	h.evaluator.queue("p2", failure(0.42))
	h.evaluator.queue("p3", failure(0.12))

	res, err := h.engine.ProcessUserMessage(ctx, "Caesar crossed the Rubicon.")
	require.NoError(t, err)

	assert.Equal(t, 1, res.PointsRecalledThisTurn)
	assert.Equal(t, 1, res.RecalledCount)

	require.Len(t, h.outcomes.outcomes, 1)
	assert.Equal(t, "p1", h.outcomes.outcomes[0].RecallPointID)
	assert.Equal(t, fsrs.RatingGood, *h.outcomes.outcomes[0].Rating)

	// the tutor call carried a near-miss nudge for p2 but stayed silent on p3
	require.NotEmpty(t, h.llm.calls)
	last := h.llm.calls[len(h.llm.calls)-1]
	ephemeral := last[len(last)-1]
	assert.Contains(t, ephemeral.Content, internalObservationPrefix)
	assert.Contains(t, ephemeral.Content, "The Republic ended with Augustus in 27")
	assert.NotContains(t, ephemeral.Content, "Carthage")

	assert.Empty(t, h.recorder.ofType(EventSessionCompleteOverlay))
}

func TestMarkPointRecalledIdempotent(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)

	p := h.engine.points["p1"]
	committed, err := h.engine.markPointRecalled(ctx, p, success(0.9))
	require.NoError(t, err)
	assert.True(t, committed)

	committed, err = h.engine.markPointRecalled(ctx, p, success(0.9))
	require.NoError(t, err)
	assert.False(t, committed)

	assert.Len(t, h.recorder.ofType(EventPointRecalled), 1)
	assert.Len(t, h.outcomes.forPoint("p1"), 1)
	assert.Len(t, h.points.attempts["p1"], 1)
}

func TestEventOrderingWithinTurn(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)

	h.evaluator.queue("p1", success(0.95))
	h.evaluator.queue("p2", success(0.95))
	h.evaluator.queue("p3", success(0.95))

	_, err = h.engine.ProcessUserMessage(ctx, "all three")
	require.NoError(t, err)

	recalledIdx := h.recorder.firstIndex(EventPointRecalled)
	completedIdx := h.recorder.firstIndex(EventPointCompleted)
	overlayIdx := h.recorder.firstIndex(EventSessionCompleteOverlay)
	assistantIdx := h.recorder.firstIndex(EventAssistantMessage)

	require.GreaterOrEqual(t, recalledIdx, 0)
	assert.Less(t, recalledIdx, completedIdx)
	assert.Less(t, completedIdx, overlayIdx)
	assert.Less(t, overlayIdx, assistantIdx)
}

func TestRecalledPointReflectsUpdatedDue(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)

	h.evaluator.queue("p1", success(0.92))
	_, err = h.engine.ProcessUserMessage(ctx, "Rubicon 49 BC")
	require.NoError(t, err)

	updated := h.points.get("p1")
	assert.True(t, updated.FSRS.Due.After(t0), "due date must move forward after rating")
	assert.Equal(t, 1, updated.FSRS.Reps)
	require.Len(t, h.outcomes.forPoint("p1"), 1)
}

func TestEvaluatorFailureSkipsPointThisTurn(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)

	h.evaluator.errs["p1"] = errors.New("model unavailable")
	h.evaluator.queue("p2", success(0.9))

	res, err := h.engine.ProcessUserMessage(ctx, "Augustus 27 BC")
	require.NoError(t, err)

	assert.Equal(t, 1, res.PointsRecalledThisTurn)
	assert.Empty(t, h.outcomes.forPoint("p1"))
	assert.Len(t, h.outcomes.forPoint("p2"), 1)

	// a later turn may still recall the skipped point
	delete(h.evaluator.errs, "p1")
	h.evaluator.queue("p1", success(0.9))
	res, err = h.engine.ProcessUserMessage(ctx, "Rubicon 49 BC")
	require.NoError(t, err)
	assert.Equal(t, 1, res.PointsRecalledThisTurn)
}

func TestTutorFailureLeavesUserMessagePersisted(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)

	h.llm.onComplete = func(_ []llm.Message, _ llm.Options) (*llm.Completion, error) {
		return nil, errors.New("provider 500")
	}

	_, err = h.engine.ProcessUserMessage(ctx, "hello")
	var llmErr *LLMError
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, "tutor_reply", llmErr.Op)

	// user message persisted, no assistant message
	require.Len(t, h.messages.messages, 1)
	assert.Equal(t, "hello", h.messages.messages[0].Content)
}

func TestFSRSWriteFailureAbortsBeforeOutcome(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)
	ctx := context.Background()

	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)

	h.points.failUpdateFSRS = true
	h.evaluator.queue("p1", success(0.9))

	_, err = h.engine.ProcessUserMessage(ctx, "Rubicon")
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "update_fsrs", pe.Op)

	// no outcome row and no recall-history append behind the failure
	assert.Empty(t, h.outcomes.outcomes)
	assert.Empty(t, h.points.attempts["p1"])
}

func TestProcessRequiresActiveSession(t *testing.T) {
	set, points := threePointSet()
	h := newHarness(set, points, false)

	_, err := h.engine.ProcessUserMessage(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}
