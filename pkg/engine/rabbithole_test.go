package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func etymologyDetection(conf float64) *Detection {
	return &Detection{
		IsRabbithole: true,
		Topic:        "etymology",
		Depth:        1,
		Confidence:   conf,
	}
}

func startedHarness(t *testing.T) *testHarness {
	t.Helper()
	set, points := threePointSet()
	h := newHarness(set, points, true)
	ctx := context.Background()
	_, err := h.engine.Start(ctx, set)
	require.NoError(t, err)
	_, err = h.engine.OpeningMessage(ctx)
	require.NoError(t, err)
	return h
}

func TestDetectionRecordsEventWithoutEntering(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	h.detector.queueDetection(etymologyDetection(0.78))
	_, err := h.engine.ProcessUserMessage(ctx, "why is it even called a rubicon?")
	require.NoError(t, err)

	detected := h.recorder.ofType(EventRabbitholeDetected)
	require.Len(t, detected, 1)
	payload := detected[0].Data.(RabbitholeDetectedPayload)
	assert.Equal(t, "etymology", payload.Topic)
	require.NotEmpty(t, payload.EventID)

	ev := h.holes.get(payload.EventID)
	assert.Equal(t, RabbitholeActive, ev.Status)

	// detection alone never changes mode
	assert.Equal(t, ModeRecall, h.engine.mode)
	assert.Empty(t, h.recorder.ofType(EventRabbitholeEntered))
}

func TestDetectionBelowThresholdIgnored(t *testing.T) {
	h := startedHarness(t)

	h.detector.queueDetection(etymologyDetection(0.4))
	_, err := h.engine.ProcessUserMessage(context.Background(), "hm")
	require.NoError(t, err)

	assert.Empty(t, h.recorder.ofType(EventRabbitholeDetected))
}

func TestDetectionDedupesKnownTopics(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	h.detector.queueDetection(etymologyDetection(0.9))
	_, err := h.engine.ProcessUserMessage(ctx, "one")
	require.NoError(t, err)

	h.detector.queueDetection(etymologyDetection(0.9))
	_, err = h.engine.ProcessUserMessage(ctx, "two")
	require.NoError(t, err)

	assert.Len(t, h.recorder.ofType(EventRabbitholeDetected), 1)
}

func TestSupersedeDropsDetectionWhenAbandonFails(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	h.detector.queueDetection(etymologyDetection(0.9))
	_, err := h.engine.ProcessUserMessage(ctx, "tangent bait")
	require.NoError(t, err)
	require.Len(t, h.recorder.ofType(EventRabbitholeDetected), 1)

	// the old event cannot be closed; a second tangent on a fresh topic
	// must not leave two active rows behind
	h.holes.failUpdateStatus = errors.New("connection reset by peer")
	h.detector.queueDetection(&Detection{
		IsRabbithole: true, Topic: "roman numerals", Depth: 1, Confidence: 0.9,
	})
	_, err = h.engine.ProcessUserMessage(ctx, "how did numerals even work?")
	require.NoError(t, err)

	assert.Equal(t, 1, h.holes.activeCount())
	assert.Len(t, h.recorder.ofType(EventRabbitholeDetected), 1)

	// once the write path recovers, the supersede goes through
	h.holes.failUpdateStatus = nil
	h.detector.queueDetection(&Detection{
		IsRabbithole: true, Topic: "roman numerals", Depth: 1, Confidence: 0.9,
	})
	_, err = h.engine.ProcessUserMessage(ctx, "numerals, seriously")
	require.NoError(t, err)

	assert.Equal(t, 1, h.holes.activeCount())
	assert.Len(t, h.recorder.ofType(EventRabbitholeDetected), 2)
}

func TestDeclineCooldownSuppressesDetection(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	h.detector.queueDetection(etymologyDetection(0.78))
	_, err := h.engine.ProcessUserMessage(ctx, "tangent bait")
	require.NoError(t, err)
	require.Len(t, h.recorder.ofType(EventRabbitholeDetected), 1)

	require.NoError(t, h.engine.DeclineRabbithole())
	callsBefore := h.detector.detectCalls

	// the next three user messages never reach the detector
	for i := 0; i < 3; i++ {
		_, err = h.engine.ProcessUserMessage(ctx, "still talking")
		require.NoError(t, err)
	}
	assert.Equal(t, callsBefore, h.detector.detectCalls)
	assert.Len(t, h.recorder.ofType(EventRabbitholeDetected), 1)

	// the fourth message runs detection again
	_, err = h.engine.ProcessUserMessage(ctx, "fourth")
	require.NoError(t, err)
	assert.Equal(t, callsBefore+1, h.detector.detectCalls)
}

func TestEnterProcessExitRabbithole(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	h.detector.queueDetection(etymologyDetection(0.78))
	_, err := h.engine.ProcessUserMessage(ctx, "why is it called that?")
	require.NoError(t, err)
	eventID := h.recorder.ofType(EventRabbitholeDetected)[0].Data.(RabbitholeDetectedPayload).EventID

	h.llm.responses = []string{"Rubicon comes from the Latin for red."}
	opening, err := h.engine.EnterRabbithole(ctx, "etymology", eventID)
	require.NoError(t, err)
	assert.Equal(t, "Rubicon comes from the Latin for red.", opening)
	assert.Equal(t, ModeRabbithole, h.engine.mode)

	// entered fires before the agent produced its opening text
	enteredIdx := h.recorder.firstIndex(EventRabbitholeEntered)
	require.GreaterOrEqual(t, enteredIdx, 0)

	mainBefore := len(h.messages.messages)

	// recall still counts inside the tangent
	h.evaluator.queue("p2", success(0.9))
	res, err := h.engine.ProcessUserMessage(ctx, "like Augustus ending the Republic in 27 BC?")
	require.NoError(t, err)
	assert.Equal(t, 1, res.PointsRecalledThisTurn)

	// but nothing lands in the main dialog
	assert.Len(t, h.messages.messages, mainBefore)
	assert.Empty(t, h.recorder.ofType(EventUserMessage)[1:])

	require.NoError(t, h.engine.ExitRabbithole(ctx))
	assert.Equal(t, ModeRecall, h.engine.mode)

	exited := h.recorder.ofType(EventRabbitholeExited)
	require.Len(t, exited, 1)
	assert.Equal(t, 1, exited[0].Data.(RabbitholeExitedPayload).PointsRecalledDuring)

	ev := h.holes.get(eventID)
	assert.Equal(t, RabbitholeReturned, ev.Status)
	require.NotNil(t, ev.ReturnMessageIndex)
	assert.Equal(t, len(h.messages.messages)-1, *ev.ReturnMessageIndex)
	// both sides of the tangent live on the event row
	require.NotEmpty(t, ev.Conversation)
}

func TestCompletionInsideRabbitholeDefersOverlay(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	// recall p1 and p3 in the main dialog first
	h.evaluator.queue("p1", success(0.9))
	h.evaluator.queue("p3", success(0.9))
	_, err := h.engine.ProcessUserMessage(ctx, "Rubicon and Carthage")
	require.NoError(t, err)

	h.detector.queueDetection(etymologyDetection(0.9))
	_, err = h.engine.ProcessUserMessage(ctx, "tangent bait")
	require.NoError(t, err)
	eventID := h.recorder.ofType(EventRabbitholeDetected)[0].Data.(RabbitholeDetectedPayload).EventID

	_, err = h.engine.EnterRabbithole(ctx, "etymology", eventID)
	require.NoError(t, err)

	// the last point falls inside the tangent: no overlay yet
	h.evaluator.queue("p2", success(0.9))
	_, err = h.engine.ProcessUserMessage(ctx, "Augustus, 27 BC")
	require.NoError(t, err)
	assert.Empty(t, h.recorder.ofType(EventSessionCompleteOverlay))

	// the deferred overlay fires right after rabbithole_exited
	require.NoError(t, h.engine.ExitRabbithole(ctx))
	exitedIdx := h.recorder.firstIndex(EventRabbitholeExited)
	overlayIdx := h.recorder.firstIndex(EventSessionCompleteOverlay)
	require.GreaterOrEqual(t, overlayIdx, 0)
	assert.Equal(t, exitedIdx+1, overlayIdx)
	assert.True(t, h.recorder.ofType(EventRabbitholeExited)[0].Data.(RabbitholeExitedPayload).CompletionPending)
}

func TestRabbitholeRoundTripWithoutRecall(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	h.detector.queueDetection(etymologyDetection(0.9))
	_, err := h.engine.ProcessUserMessage(ctx, "tangent bait")
	require.NoError(t, err)
	eventID := h.recorder.ofType(EventRabbitholeDetected)[0].Data.(RabbitholeDetectedPayload).EventID

	fsrsBefore := h.points.get("p1").FSRS
	recalledBefore := h.engine.checklist.recalledCount()

	_, err = h.engine.EnterRabbithole(ctx, "etymology", eventID)
	require.NoError(t, err)
	_, err = h.engine.ProcessUserMessage(ctx, "tell me more")
	require.NoError(t, err)
	require.NoError(t, h.engine.ExitRabbithole(ctx))

	assert.Equal(t, recalledBefore, h.engine.checklist.recalledCount())
	assert.Equal(t, fsrsBefore, h.points.get("p1").FSRS)
	assert.Empty(t, h.outcomes.outcomes)
}

func TestNestedRabbitholeForbidden(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	h.detector.queueDetection(etymologyDetection(0.9))
	_, err := h.engine.ProcessUserMessage(ctx, "bait")
	require.NoError(t, err)
	eventID := h.recorder.ofType(EventRabbitholeDetected)[0].Data.(RabbitholeDetectedPayload).EventID

	_, err = h.engine.EnterRabbithole(ctx, "etymology", eventID)
	require.NoError(t, err)

	_, err = h.engine.EnterRabbithole(ctx, "another", "whatever")
	assert.ErrorIs(t, err, ErrNestedRabbithole)
}

func TestExitWithoutRabbithole(t *testing.T) {
	h := startedHarness(t)
	err := h.engine.ExitRabbithole(context.Background())
	assert.ErrorIs(t, err, ErrNotInRabbithole)
}

func TestAbandonMarksActiveRabbitholeAbandoned(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	h.detector.queueDetection(etymologyDetection(0.9))
	_, err := h.engine.ProcessUserMessage(ctx, "bait")
	require.NoError(t, err)
	eventID := h.recorder.ofType(EventRabbitholeDetected)[0].Data.(RabbitholeDetectedPayload).EventID

	_, err = h.engine.EnterRabbithole(ctx, "etymology", eventID)
	require.NoError(t, err)
	sessionID := h.engine.session.ID

	require.NoError(t, h.engine.Abandon(ctx))

	ev := h.holes.get(eventID)
	assert.Equal(t, RabbitholeAbandoned, ev.Status)
	require.NotNil(t, ev.ReturnMessageIndex)

	assert.Equal(t, StatusAbandoned, h.sessions.get(sessionID).Status)
	assert.Empty(t, h.recorder.ofType(EventSessionCompleted))
}

func TestReturnDetectionClosesOpenEvent(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	h.detector.queueDetection(etymologyDetection(0.9))
	_, err := h.engine.ProcessUserMessage(ctx, "bait")
	require.NoError(t, err)
	eventID := h.recorder.ofType(EventRabbitholeDetected)[0].Data.(RabbitholeDetectedPayload).EventID

	// user never enters; the next turn's return check sees the dialog back on track
	h.detector.queueReturn(&ReturnDetection{HasReturned: true, Confidence: 0.8})
	_, err = h.engine.ProcessUserMessage(ctx, "anyway, Caesar...")
	require.NoError(t, err)

	ev := h.holes.get(eventID)
	assert.Equal(t, RabbitholeReturned, ev.Status)
	require.NotNil(t, ev.ReturnMessageIndex)
}

func TestFinalizeAbandonsOpenEvents(t *testing.T) {
	h := startedHarness(t)
	ctx := context.Background()

	h.detector.queueDetection(etymologyDetection(0.9))
	_, err := h.engine.ProcessUserMessage(ctx, "bait")
	require.NoError(t, err)
	eventID := h.recorder.ofType(EventRabbitholeDetected)[0].Data.(RabbitholeDetectedPayload).EventID

	require.NoError(t, h.engine.Finalize(ctx))
	assert.Equal(t, RabbitholeAbandoned, h.holes.get(eventID).Status)
}
