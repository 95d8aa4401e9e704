package engine

import (
	"context"
	"log/slog"

	"github.com/recallkit/recallkit/pkg/llm"
)

// ProcessUserMessage is the hot path: one user turn in, one reply out.
// In rabbit-hole mode the message routes to the sub-dialog and never
// touches the main dialog. In recall mode the order within the turn is
// fixed: persist the user message, run detection, evaluate every
// unchecked point, commit recalls, gate completion, generate and persist
// the reply, then check open tangents for returns.
func (e *Engine) ProcessUserMessage(ctx context.Context, content string) (*TurnResult, error) {
	if e.session == nil {
		return nil, ErrNoActiveSession
	}

	e.turnStartedAt = e.clock()

	if e.mode == ModeRabbithole {
		e.turnStartIndex = e.lastMessageIndex()
		if e.turnStartIndex < 0 {
			e.turnStartIndex = 0
		}
		return e.processRabbitholeTurn(ctx, content)
	}

	e.turnStartIndex = e.lastMessageIndex() + 1

	userMsg, err := e.appendMessage(ctx, llm.RoleUser, content, nil)
	if err != nil {
		return nil, err
	}
	e.emit(EventUserMessage, UserMessagePayload{Index: userMsg.Index, Content: content})

	e.maybeDetectRabbithole(ctx)

	verdicts := e.evaluateUnchecked(ctx, e.historySnapshot())

	recalledThisTurn := 0
	for _, r := range verdicts.recalled {
		committed, err := e.markPointRecalled(ctx, r.point, r.eval)
		if err != nil {
			return nil, err
		}
		if committed {
			recalledThisTurn++
		}
	}

	if e.checklist.complete() && !e.completionPending {
		e.completionPending = true
		e.emit(EventSessionCompleteOverlay, CompleteOverlayPayload{
			SessionID:     e.session.ID,
			RecalledCount: e.checklist.recalledCount(),
			TotalPoints:   e.checklist.total(),
		})
	}

	if recalledThisTurn > 0 {
		e.rebuildSystemPrompt()
	}

	reply, usage, err := e.generateTutorReply(ctx, verdicts.feedback)
	if err != nil {
		return nil, err
	}
	replyMsg, err := e.appendMessage(ctx, llm.RoleAssistant, reply, usage)
	if err != nil {
		return nil, err
	}
	e.emit(EventAssistantMessage, AssistantMessagePayload{
		Index: replyMsg.Index, Content: reply,
	})

	e.detectReturns(ctx)

	return &TurnResult{
		Response:               reply,
		Completed:              false,
		RecalledCount:          e.checklist.recalledCount(),
		TotalPoints:            e.checklist.total(),
		PointsRecalledThisTurn: recalledThisTurn,
	}, nil
}

// markPointRecalled flips one point to recalled and commits its FSRS and
// outcome writes. Idempotent: a point already recalled is a no-op and
// reports committed=false. The checklist flip and point_recalled
// emission land before any persistence so the transition appears atomic
// to observers; the progress snapshot write is fire-and-forget.
func (e *Engine) markPointRecalled(ctx context.Context, point *Point, eval *Evaluation) (bool, error) {
	if !e.checklist.markRecalled(point.ID) {
		return false, nil
	}
	e.emit(EventPointRecalled, PointRecalledPayload{PointID: point.ID})
	e.persistProgress()

	e.emit(EventPointEvaluated, PointEvaluatedPayload{
		PointID: point.ID, Success: eval.Success, Confidence: eval.Confidence,
	})

	rating, newState, err := e.commitRecall(ctx, point, eval, e.turnStartIndex)
	if err != nil {
		return true, err
	}
	delete(e.lastFailures, point.ID)
	e.emit(EventPointCompleted, PointCompletedPayload{
		PointID: point.ID, Rating: rating, NewDueDate: newState.Due,
	})
	return true, nil
}

// persistProgress snapshots recalled_point_ids onto the session row
// without blocking the turn. Failures are logged, not surfaced.
func (e *Engine) persistProgress() {
	sessionID := e.session.ID
	recalled := e.checklist.recalledIDs()
	go func() {
		if err := e.deps.Sessions.UpdateRecalledPointIDs(context.Background(), sessionID, recalled); err != nil {
			slog.Warn("checklist progress write failed",
				"session_id", sessionID, "error", err)
		}
	}()
}
