package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/recallkit/recallkit/pkg/llm"
)

// EvalContext is the optional context handed to the evaluator per point.
type EvalContext struct {
	AttemptNumber     int
	PreviousSuccesses int
	Topic             string
}

// Evaluation is the evaluator's verdict on a single unchecked point.
type Evaluation struct {
	Success         bool
	Confidence      float64
	Reasoning       string
	KeyConcepts     []string
	MissedConcepts  []string
	SuggestedRating string
}

// Evaluator scores one unchecked point against the full message history.
type Evaluator interface {
	EvaluatePoint(ctx context.Context, point *Point, history []Message, ec EvalContext) (*Evaluation, error)
}

// LLMEvaluator implements Evaluator with an LLM call per point.
type LLMEvaluator struct {
	client  llm.Client
	prompts PromptBuilder
	timeout time.Duration
}

// NewLLMEvaluator builds an LLM-backed evaluator. timeout bounds each
// per-point call; zero means no per-call deadline beyond the caller's.
func NewLLMEvaluator(client llm.Client, prompts PromptBuilder, timeout time.Duration) *LLMEvaluator {
	return &LLMEvaluator{client: client, prompts: prompts, timeout: timeout}
}

// EvaluatePoint asks the model for a JSON verdict and parses it with
// safe false-negative defaults.
func (e *LLMEvaluator) EvaluatePoint(ctx context.Context, point *Point, history []Message, ec EvalContext) (*Evaluation, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	messages := e.prompts.EvaluationMessages(point, history, ec)
	resp, err := e.client.Complete(ctx, messages, llm.Options{Temperature: 0.0, MaxTokens: 512})
	if err != nil {
		return nil, fmt.Errorf("evaluation call for point %s failed: %w", point.ID, err)
	}
	return parseEvaluation(resp.Text), nil
}

// evalResult pairs a verdict with the evaluated point.
type evalResult struct {
	point *Point
	eval  *Evaluation
}

// turnEvaluation is the aggregate of one continuous-evaluation pass.
type turnEvaluation struct {
	// recalled holds passing verdicts ordered by target sequence.
	recalled []evalResult
	// feedback is the internal-observation text for the tutor reply.
	feedback string
}

// evaluateUnchecked runs the continuous evaluator over every unchecked
// point. Evaluations fan out in parallel but recalled ids are assembled
// in target-sequence order for deterministic downstream effects. An LLM
// failure on a single point skips that point this turn.
func (e *Engine) evaluateUnchecked(ctx context.Context, history []Message) *turnEvaluation {
	unchecked := e.checklist.unchecked()
	if len(unchecked) == 0 {
		return &turnEvaluation{}
	}

	type indexed struct {
		order int
		point *Point
		eval  *Evaluation
	}

	results := make([]*indexed, len(unchecked))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.EvalParallelism)

	for i, id := range unchecked {
		point := e.points[id]
		if point == nil {
			continue
		}
		e.evalAttempts[id]++
		ec := EvalContext{
			AttemptNumber:     e.evalAttempts[id],
			PreviousSuccesses: e.previousSuccesses(id),
			Topic:             e.activeTopic,
		}
		g.Go(func() error {
			eval, err := e.deps.Evaluator.EvaluatePoint(gctx, point, history, ec)
			if err != nil {
				// Unrecognized this turn: no feedback, no recalled mark.
				slog.Warn("point evaluation failed, skipping this turn",
					"session_id", e.session.ID, "point_id", point.ID, "error", err)
				return nil
			}
			results[i] = &indexed{order: i, point: point, eval: eval}
			return nil
		})
	}
	_ = g.Wait()

	collected := make([]*indexed, 0, len(results))
	for _, r := range results {
		if r != nil {
			collected = append(collected, r)
		}
	}
	sort.Slice(collected, func(a, b int) bool { return collected[a].order < collected[b].order })

	out := &turnEvaluation{}
	var feedback strings.Builder
	for _, r := range collected {
		if !r.eval.Success {
			e.lastFailures[r.point.ID] = r.eval.Confidence
		}
		switch {
		case r.eval.Success && r.eval.Confidence >= e.cfg.RecallThreshold:
			out.recalled = append(out.recalled, evalResult{point: r.point, eval: r.eval})
		case r.eval.Confidence >= e.cfg.NearMissLow && r.eval.Confidence < e.cfg.RecallThreshold:
			if feedback.Len() > 0 {
				feedback.WriteString(" ")
			}
			feedback.WriteString(nearMissSentence(r.point))
		}
		// Below NearMissLow: silence.
	}
	out.feedback = feedback.String()
	return out
}

// nearMissSentence nudges the tutor toward a nearly-recalled point
// without revealing it to the user.
func nearMissSentence(p *Point) string {
	return fmt.Sprintf(
		"The learner came close to the point beginning %q but has not demonstrated it; steer them toward it without revealing it.",
		truncateContent(p.Content, 40))
}

func truncateContent(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// previousSuccesses counts persisted successful attempts from the point's
// FSRS state: reps minus lapses is the cheap proxy the engine carries.
func (e *Engine) previousSuccesses(pointID string) int {
	p := e.points[pointID]
	if p == nil {
		return 0
	}
	n := p.FSRS.Reps - p.FSRS.Lapses
	if n < 0 {
		return 0
	}
	return n
}
