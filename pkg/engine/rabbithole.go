package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recallkit/recallkit/pkg/llm"
)

// Detection is the detector's verdict on whether the conversation has
// wandered onto a tangent.
type Detection struct {
	IsRabbithole          bool
	Topic                 string
	Depth                 int
	RelatedToCurrentPoint bool
	RelatedPointIDs       []string
	Confidence            float64
	Reasoning             string
}

// ReturnDetection is the detector's verdict on whether a tangent has
// concluded and the dialog is back on the recall material.
type ReturnDetection struct {
	HasReturned bool
	Confidence  float64
	Reasoning   string
}

// DetectionInput carries the sliding window and session context the
// detector sees.
type DetectionInput struct {
	SessionID    string
	Window       []Message
	ProbePoint   *Point
	TargetPoints []*Point
	KnownTopics  []string
}

// ReturnInput carries what the detector needs to judge a return.
type ReturnInput struct {
	Topic      string
	ProbePoint *Point
	Window     []Message
}

// Detector judges tangents and returns. Implementations parse loosely and
// default to "no tangent" / "not returned" on any ambiguity.
type Detector interface {
	DetectRabbithole(ctx context.Context, in DetectionInput) (*Detection, error)
	DetectReturn(ctx context.Context, in ReturnInput) (*ReturnDetection, error)
}

// LLMDetector implements Detector with one LLM call per check.
type LLMDetector struct {
	client  llm.Client
	prompts PromptBuilder
	timeout time.Duration
}

func NewLLMDetector(client llm.Client, prompts PromptBuilder, timeout time.Duration) *LLMDetector {
	return &LLMDetector{client: client, prompts: prompts, timeout: timeout}
}

func (d *LLMDetector) DetectRabbithole(ctx context.Context, in DetectionInput) (*Detection, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	resp, err := d.client.Complete(ctx, d.prompts.DetectorMessages(in), llm.Options{Temperature: 0.0, MaxTokens: 512})
	if err != nil {
		return nil, fmt.Errorf("rabbit-hole detection failed: %w", err)
	}
	return parseDetection(resp.Text), nil
}

func (d *LLMDetector) DetectReturn(ctx context.Context, in ReturnInput) (*ReturnDetection, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	resp, err := d.client.Complete(ctx, d.prompts.ReturnMessages(in), llm.Options{Temperature: 0.0, MaxTokens: 256})
	if err != nil {
		return nil, fmt.Errorf("return detection failed: %w", err)
	}
	return parseReturn(resp.Text), nil
}

// normalizeTopic folds a detector topic into the dedup key.
func normalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// rabbitholeAgent is the dedicated sub-dialog agent. It keeps its own
// conversation history, which is persisted on the event row rather than
// in the main dialog. Acquired on enter, released on exit or abandon.
type rabbitholeAgent struct {
	client       llm.Client
	systemPrompt string
	temperature  float64
	maxTokens    int
	turns        []AgentTurn
}

// complete calls the agent's LLM with its full private history and
// records both sides of the exchange. userText may be empty for the
// opening message.
func (a *rabbitholeAgent) complete(ctx context.Context, userText string) (string, *llm.Usage, error) {
	if userText != "" {
		a.turns = append(a.turns, AgentTurn{Role: llm.RoleUser, Content: userText})
	}
	messages := make([]llm.Message, 0, len(a.turns)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: a.systemPrompt})
	for _, t := range a.turns {
		messages = append(messages, llm.Message{Role: t.Role, Content: t.Content})
	}
	resp, err := a.client.Complete(ctx, messages, llm.Options{Temperature: a.temperature, MaxTokens: a.maxTokens})
	if err != nil {
		return "", nil, err
	}
	a.turns = append(a.turns, AgentTurn{Role: llm.RoleAssistant, Content: resp.Text})
	return resp.Text, &resp.Usage, nil
}

// maybeDetectRabbithole runs step 3 of the turn: cooldown gate, detector
// call, threshold and topic dedup, event persistence, detected emission.
// Detection never enters the rabbit hole; the user opts in. Detector or
// persistence failures are logged and the turn proceeds.
func (e *Engine) maybeDetectRabbithole(ctx context.Context) {
	if e.declineCooldown > 0 {
		e.declineCooldown--
		return
	}
	if e.deps.Detector == nil {
		return
	}

	det, err := e.deps.Detector.DetectRabbithole(ctx, DetectionInput{
		SessionID:    e.session.ID,
		Window:       e.recentMessages(e.cfg.DetectorWindow),
		ProbePoint:   e.probePoint(),
		TargetPoints: e.targetPoints(),
		KnownTopics:  e.knownTopicList(),
	})
	if err != nil {
		slog.Warn("rabbit-hole detection failed, skipping this turn",
			"session_id", e.session.ID, "error", err)
		return
	}
	if !det.IsRabbithole || det.Confidence < e.cfg.DetectThreshold {
		return
	}
	topic := normalizeTopic(det.Topic)
	if topic == "" {
		return
	}
	if _, seen := e.knownTopics[topic]; seen {
		return
	}

	// A newer tangent supersedes any earlier prompt the user ignored,
	// keeping at most one event active at a time. If an earlier event
	// cannot be closed, recording the new one would leave two active
	// rows, so the new detection is dropped instead.
	if !e.abandonOpenEvents(ctx) {
		slog.Warn("superseded rabbit-hole event still open, dropping new detection",
			"session_id", e.session.ID, "topic", topic)
		return
	}

	now := e.clock()
	ev := &Rabbithole{
		ID:                  uuid.New().String(),
		SessionID:           e.session.ID,
		Topic:               topic,
		TriggerMessageIndex: e.lastMessageIndex(),
		Depth:               det.Depth,
		RelatedPointIDs:     det.RelatedPointIDs,
		UserInitiated:       true,
		Status:              RabbitholeActive,
		CreatedAt:           now,
	}
	if err := e.deps.Rabbitholes.Create(ctx, ev); err != nil {
		slog.Warn("persisting rabbit-hole event failed",
			"session_id", e.session.ID, "topic", topic, "error", err)
		return
	}
	e.knownTopics[topic] = struct{}{}
	e.openEvents[ev.ID] = ev
	e.emit(EventRabbitholeDetected, RabbitholeDetectedPayload{
		Topic: topic, EventID: ev.ID, Confidence: det.Confidence,
	})
}

// detectReturns runs step 9 of the turn: for each recorded tangent the
// user never entered, ask whether the dialog has naturally come back.
func (e *Engine) detectReturns(ctx context.Context) {
	if e.deps.Detector == nil || len(e.openEvents) == 0 {
		return
	}
	for id, ev := range e.openEvents {
		ret, err := e.deps.Detector.DetectReturn(ctx, ReturnInput{
			Topic:      ev.Topic,
			ProbePoint: e.probePoint(),
			Window:     e.recentMessages(e.cfg.ReturnWindow),
		})
		if err != nil {
			slog.Warn("return detection failed",
				"session_id", e.session.ID, "topic", ev.Topic, "error", err)
			continue
		}
		if !ret.HasReturned || ret.Confidence < e.cfg.DetectThreshold {
			continue
		}
		idx := e.lastMessageIndex()
		if err := e.deps.Rabbitholes.UpdateStatus(ctx, id, RabbitholeReturned, &idx); err != nil {
			slog.Warn("marking rabbit-hole returned failed",
				"session_id", e.session.ID, "event_id", id, "error", err)
			continue
		}
		ev.Status = RabbitholeReturned
		ev.ReturnMessageIndex = &idx
		delete(e.openEvents, id)
	}
}

// EnterRabbithole switches the session into the tangent sub-dialog the
// user opted into. The entered event fires before the agent produces its
// opening text. Returns the agent's opening message.
func (e *Engine) EnterRabbithole(ctx context.Context, topic, eventID string) (string, error) {
	if e.session == nil {
		return "", ErrNoActiveSession
	}
	if e.mode == ModeRabbithole {
		return "", ErrNestedRabbithole
	}

	topic = normalizeTopic(topic)
	e.mode = ModeRabbithole
	e.activeEventID = eventID
	e.activeTopic = topic
	e.pointsRecalledInHole = 0
	e.rabbitholeStartedAt = e.clock()
	delete(e.openEvents, eventID)

	e.agent = &rabbitholeAgent{
		client:       e.deps.LLM,
		systemPrompt: e.deps.Prompts.AgentSystemPrompt(topic, e.set.Name, e.set.Description),
		temperature:  e.cfg.TutorTemperature,
		maxTokens:    e.cfg.TutorMaxTokens,
	}

	e.emit(EventRabbitholeEntered, RabbitholeEnteredPayload{Topic: topic})

	opening, _, err := e.agent.complete(ctx, "")
	if err != nil {
		return "", &LLMError{Op: "rabbithole_opening", Err: err}
	}
	return opening, nil
}

// ExitRabbithole concludes the tangent: the agent's private conversation
// is persisted onto the event row, the event becomes returned at the
// current end of the main dialog, and the engine drops back to recall
// mode. A completion reached inside the tangent emits its deferred
// overlay here.
func (e *Engine) ExitRabbithole(ctx context.Context) error {
	if e.session == nil {
		return ErrNoActiveSession
	}
	if e.mode != ModeRabbithole {
		return ErrNotInRabbithole
	}

	eventID := e.activeEventID
	topic := e.activeTopic
	recalled := e.pointsRecalledInHole
	duration := e.clock().Sub(e.rabbitholeStartedAt)

	if err := e.deps.Rabbitholes.UpdateConversation(ctx, eventID, e.agent.turns); err != nil {
		return &PersistenceError{Op: "persist_rabbithole_conversation", Err: err}
	}
	returnIndex := e.lastMessageIndex()
	if err := e.deps.Rabbitholes.UpdateStatus(ctx, eventID, RabbitholeReturned, &returnIndex); err != nil {
		return &PersistenceError{Op: "mark_rabbithole_returned", Err: err}
	}

	e.collector.ObserveRabbithole(depthForTurns(len(e.agent.turns)), duration)

	e.mode = ModeRecall
	e.agent = nil
	e.activeEventID = ""
	e.activeTopic = ""
	e.pointsRecalledInHole = 0

	e.emit(EventRabbitholeExited, RabbitholeExitedPayload{
		Label:                topic,
		PointsRecalledDuring: recalled,
		CompletionPending:    e.completionPending,
	})

	if e.completionPendingAfterRabbithole {
		e.completionPendingAfterRabbithole = false
		e.emit(EventSessionCompleteOverlay, CompleteOverlayPayload{
			SessionID:     e.session.ID,
			RecalledCount: e.checklist.recalledCount(),
			TotalPoints:   e.checklist.total(),
		})
	}
	return nil
}

// DeclineRabbithole records that the user waved off the prompt and
// suppresses detection for the next three user messages.
func (e *Engine) DeclineRabbithole() error {
	if e.session == nil {
		return ErrNoActiveSession
	}
	e.declineCooldown = e.cfg.DeclineCooldown
	return nil
}

// processRabbitholeTurn handles a user message while inside a tangent.
// Nothing is written to the main dialog; both sides of the exchange live
// in the agent's private history. Recall still counts: the evaluator runs
// against the main history plus this turn's text, and commits normally.
// The evaluator feedback is never fed to the agent.
func (e *Engine) processRabbitholeTurn(ctx context.Context, content string) (*TurnResult, error) {
	history := append(e.historySnapshot(), Message{
		SessionID: e.session.ID,
		Index:     e.lastMessageIndex() + 1,
		Role:      llm.RoleUser,
		Content:   content,
		CreatedAt: e.clock(),
	})

	verdicts := e.evaluateUnchecked(ctx, history)
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
	e.pointsRecalledInHole += recalledThisTurn

	if e.checklist.complete() && !e.completionPending {
		e.completionPending = true
		e.completionPendingAfterRabbithole = true
	}

	reply, _, err := e.agent.complete(ctx, content)
	if err != nil {
		return nil, &LLMError{Op: "rabbithole_reply", Err: err}
	}

	return &TurnResult{
		Response:               reply,
		Completed:              false,
		RecalledCount:          e.checklist.recalledCount(),
		TotalPoints:            e.checklist.total(),
		PointsRecalledThisTurn: recalledThisTurn,
	}, nil
}

// abandonOpenEvents marks every recorded-but-not-entered event abandoned
// at the current end of the main dialog. Reports whether every event was
// closed; events whose status write failed stay in openEvents.
func (e *Engine) abandonOpenEvents(ctx context.Context) bool {
	for id, ev := range e.openEvents {
		idx := e.lastMessageIndex()
		if err := e.deps.Rabbitholes.UpdateStatus(ctx, id, RabbitholeAbandoned, &idx); err != nil {
			slog.Warn("abandoning rabbit-hole event failed",
				"session_id", e.session.ID, "event_id", id, "error", err)
			continue
		}
		ev.Status = RabbitholeAbandoned
		delete(e.openEvents, id)
	}
	return len(e.openEvents) == 0
}

// closeActiveRabbithole tears down an in-progress tangent on session end.
// The conversation so far is preserved on the event row.
func (e *Engine) closeActiveRabbithole(ctx context.Context) {
	if e.mode != ModeRabbithole {
		return
	}
	if e.agent != nil && len(e.agent.turns) > 0 {
		if err := e.deps.Rabbitholes.UpdateConversation(ctx, e.activeEventID, e.agent.turns); err != nil {
			slog.Warn("persisting rabbit-hole conversation on close failed",
				"session_id", e.session.ID, "event_id", e.activeEventID, "error", err)
		}
	}
	idx := e.lastMessageIndex()
	if err := e.deps.Rabbitholes.UpdateStatus(ctx, e.activeEventID, RabbitholeAbandoned, &idx); err != nil {
		slog.Warn("abandoning active rabbit-hole failed",
			"session_id", e.session.ID, "event_id", e.activeEventID, "error", err)
	}
	e.mode = ModeRecall
	e.agent = nil
	e.activeEventID = ""
	e.activeTopic = ""
	e.pointsRecalledInHole = 0
}

// depthForTurns classifies tangent depth from exchange count: 1 for up
// to two exchanges, 2 for three to five, 3 beyond.
func depthForTurns(turns int) int {
	exchanges := turns / 2
	switch {
	case exchanges >= 6:
		return 3
	case exchanges >= 3:
		return 2
	default:
		return 1
	}
}
