package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/recallkit/recallkit/pkg/fsrs"
)

// Scheduler is the FSRS kernel contract consumed by the engine.
type Scheduler interface {
	Schedule(state fsrs.State, rating fsrs.Rating, now time.Time) fsrs.State
	NewState(now time.Time) fsrs.State
}

// FSRSScheduler adapts the fsrs package to the Scheduler interface.
type FSRSScheduler struct{}

func (FSRSScheduler) Schedule(state fsrs.State, rating fsrs.Rating, now time.Time) fsrs.State {
	return fsrs.Schedule(state, rating, now)
}

func (FSRSScheduler) NewState(now time.Time) fsrs.State {
	return fsrs.NewState(now)
}

// deriveRating maps an evaluation to an FSRS rating:
//
//	success, conf >= 0.9   -> easy
//	success, 0.7 <= c < .9 -> good
//	success, conf < 0.7    -> hard
//	failure, conf >= 0.7   -> forgot
//	failure, conf < 0.7    -> hard
func deriveRating(success bool, confidence float64) fsrs.Rating {
	if success {
		switch {
		case confidence >= 0.9:
			return fsrs.RatingEasy
		case confidence >= 0.7:
			return fsrs.RatingGood
		default:
			return fsrs.RatingHard
		}
	}
	if confidence >= 0.7 {
		return fsrs.RatingForgot
	}
	return fsrs.RatingHard
}

// resolveRating prefers the evaluator's suggested rating when it is a
// recognized value; otherwise it falls back to confidence bands
// (0.85 easy / 0.6 good / 0.3 hard / else forgot). Without a suggestion
// the primary table applies.
func resolveRating(eval *Evaluation) fsrs.Rating {
	if eval.SuggestedRating == "" {
		return deriveRating(eval.Success, eval.Confidence)
	}
	if suggested := fsrs.Rating(eval.SuggestedRating); fsrs.ValidRating(suggested) {
		return suggested
	}
	switch {
	case eval.Confidence >= 0.85:
		return fsrs.RatingEasy
	case eval.Confidence >= 0.6:
		return fsrs.RatingGood
	case eval.Confidence >= 0.3:
		return fsrs.RatingHard
	default:
		return fsrs.RatingForgot
	}
}

// commitRecall performs the scheduler commit sequence for one recalled
// point: schedule -> update FSRS -> append recall history -> write the
// outcome row. The writes are ordered so a failure at any step leaves no
// outcome row behind; any failure surfaces as PersistenceFailure and
// aborts the turn.
func (e *Engine) commitRecall(ctx context.Context, point *Point, eval *Evaluation, turnStartIndex int) (fsrs.Rating, fsrs.State, error) {
	now := e.clock()
	rating := resolveRating(eval)
	newState := e.deps.Scheduler.Schedule(point.FSRS, rating, now)

	if err := e.deps.Points.UpdateFSRSState(ctx, point.ID, newState); err != nil {
		return rating, newState, &PersistenceError{Op: "update_fsrs", Err: err}
	}

	attempt := RecallAttempt{Timestamp: now, Success: eval.Success, LatencyMS: 0}
	if err := e.deps.Points.AddRecallAttempt(ctx, point.ID, attempt); err != nil {
		return rating, newState, &PersistenceError{Op: "append_recall_attempt", Err: err}
	}

	outcome := &Outcome{
		ID:                uuid.New().String(),
		SessionID:         e.session.ID,
		RecallPointID:     point.ID,
		Success:           eval.Success,
		Confidence:        eval.Confidence,
		Rating:            &rating,
		Reasoning:         eval.Reasoning,
		MessageIndexStart: turnStartIndex,
		MessageIndexEnd:   e.lastMessageIndex(),
		TimeSpentMS:       int(now.Sub(e.turnStartedAt).Milliseconds()),
		CreatedAt:         now,
	}
	if err := e.deps.Outcomes.Create(ctx, outcome); err != nil {
		return rating, newState, &PersistenceError{Op: "create_recall_outcome", Err: err}
	}

	// Only after every write landed does the in-memory point advance.
	point.FSRS = newState
	e.collector.ObserveOutcome(eval.Success, eval.Confidence)
	return rating, newState, nil
}
