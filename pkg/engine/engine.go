package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/recallkit/recallkit/pkg/llm"
)

// PromptBuilder renders the prompts the engine's LLM calls are built
// from. pkg/prompt carries the canonical implementation.
type PromptBuilder interface {
	TutorSystemPrompt(set *Set, targets []*Point, unchecked []*Point, probe *Point) string
	EvaluationMessages(point *Point, history []Message, ec EvalContext) []llm.Message
	DetectorMessages(in DetectionInput) []llm.Message
	ReturnMessages(in ReturnInput) []llm.Message
	AgentSystemPrompt(topic, setName, setDescription string) string
}

// Deps carries everything the engine consumes. All fields except Clock
// and Detector are required.
type Deps struct {
	LLM       llm.Client
	Evaluator Evaluator
	Detector  Detector
	Scheduler Scheduler
	Prompts   PromptBuilder

	Sessions    SessionRepo
	Points      PointRepo
	Messages    MessageRepo
	Outcomes    OutcomeRepo
	Rabbitholes RabbitholeRepo
	Metrics     MetricsRepo

	// Clock defaults to time.Now. Tests inject a fixed clock.
	Clock func() time.Time
}

// Config holds the engine's tunables. Zero values take the defaults
// documented on each field.
type Config struct {
	// TutorTemperature and TutorMaxTokens shape tutor and rabbit-hole
	// agent replies. Defaults 0.7 and 512.
	TutorTemperature float64
	TutorMaxTokens   int

	// RecallThreshold is the minimum evaluator confidence for a success
	// verdict to count as recalled. Default 0.6.
	RecallThreshold float64
	// NearMissLow is the lower bound of the near-miss feedback band.
	// Default 0.3.
	NearMissLow float64

	// DetectThreshold gates rabbit-hole and return detections. Default 0.6.
	DetectThreshold float64
	// DeclineCooldown is the number of user messages detection stays
	// suppressed after a decline. Default 3.
	DeclineCooldown int
	// DetectorWindow and ReturnWindow are the sliding-window sizes handed
	// to the detector. Defaults 6 and 4.
	DetectorWindow int
	ReturnWindow   int

	// EvalParallelism bounds concurrent point evaluations. Default 4.
	EvalParallelism int
	// LLMTimeout bounds each evaluator and detector call. Default 30s.
	LLMTimeout time.Duration

	// PauseThreshold is the inter-message gap above which time stops
	// counting as active. Default 5m.
	PauseThreshold time.Duration
	// ModelName selects the pricing row for cost estimation.
	ModelName string
}

func (c *Config) applyDefaults() {
	if c.TutorTemperature == 0 {
		c.TutorTemperature = 0.7
	}
	if c.TutorMaxTokens == 0 {
		c.TutorMaxTokens = 512
	}
	if c.RecallThreshold == 0 {
		c.RecallThreshold = 0.6
	}
	if c.NearMissLow == 0 {
		c.NearMissLow = 0.3
	}
	if c.DetectThreshold == 0 {
		c.DetectThreshold = 0.6
	}
	if c.DeclineCooldown == 0 {
		c.DeclineCooldown = 3
	}
	if c.DetectorWindow == 0 {
		c.DetectorWindow = 6
	}
	if c.ReturnWindow == 0 {
		c.ReturnWindow = 4
	}
	if c.EvalParallelism == 0 {
		c.EvalParallelism = 4
	}
	if c.LLMTimeout == 0 {
		c.LLMTimeout = 30 * time.Second
	}
	if c.PauseThreshold == 0 {
		c.PauseThreshold = 5 * time.Minute
	}
}

// Engine drives one session. Its state is accessed under the caller's
// per-session lock; nothing here is safe for concurrent use.
type Engine struct {
	deps  Deps
	cfg   Config
	clock func() time.Time

	listener  Listener
	collector *Collector

	session   *Session
	set       *Set
	points    map[string]*Point
	targetIDs []string
	checklist *checklist
	messages  []Message

	systemPrompt string

	mode                             Mode
	completionPending                bool
	completionPendingAfterRabbithole bool
	declineCooldown                  int

	agent                *rabbitholeAgent
	activeEventID        string
	activeTopic          string
	rabbitholeStartedAt  time.Time
	pointsRecalledInHole int

	knownTopics map[string]struct{}
	openEvents  map[string]*Rabbithole

	evalAttempts map[string]int
	// lastFailures keeps the most recent failed verdict per still-unchecked
	// point so Finalize can report them to the metrics collector.
	lastFailures   map[string]float64
	turnStartedAt  time.Time
	turnStartIndex int
}

// New builds an engine. Call Start before anything else.
func New(deps Deps, cfg Config) *Engine {
	cfg.applyDefaults()
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		deps:      deps,
		cfg:       cfg,
		clock:     clock,
		collector: NewCollector(cfg.PauseThreshold, PricingFor(cfg.ModelName)),
	}
}

// Start begins a session over the set's due points, or resumes the
// existing in-progress or paused session for this set if one exists.
func (e *Engine) Start(ctx context.Context, set *Set) (*Session, error) {
	existing, err := e.deps.Sessions.FindActive(ctx, set.ID)
	if err != nil {
		return nil, &PersistenceError{Op: "find_active_session", Err: err}
	}
	if existing != nil {
		return e.resume(ctx, existing, set)
	}

	now := e.clock()
	due, err := e.deps.Points.FindDue(ctx, set.ID, now)
	if err != nil {
		return nil, &PersistenceError{Op: "find_due_points", Err: err}
	}
	if len(due) == 0 {
		return nil, ErrNoDuePoints
	}

	targetIDs := make([]string, len(due))
	points := make(map[string]*Point, len(due))
	for i, p := range due {
		targetIDs[i] = p.ID
		points[p.ID] = p
	}

	session := &Session{
		ID:             uuid.New().String(),
		SetID:          set.ID,
		Status:         StatusInProgress,
		TargetPointIDs: targetIDs,
		StartedAt:      now,
	}
	if err := e.deps.Sessions.Create(ctx, session); err != nil {
		return nil, &PersistenceError{Op: "create_session", Err: err}
	}

	e.resetRuntimeState(session, set, points, targetIDs, nil, nil)
	e.collector.Reset(now)
	e.rebuildSystemPrompt()

	e.emit(EventSessionStarted, SessionStartedPayload{
		SessionID:   session.ID,
		SetID:       set.ID,
		TotalPoints: len(targetIDs),
	})
	return session, nil
}

// resume rehydrates a paused or interrupted session: target points by
// id, the persisted dialog into the cache, and the checklist from the
// session row's recalled ids. Metrics collection starts fresh.
func (e *Engine) resume(ctx context.Context, session *Session, set *Set) (*Session, error) {
	now := e.clock()

	loaded, err := e.deps.Points.FindByIDs(ctx, session.TargetPointIDs)
	if err != nil {
		return nil, &PersistenceError{Op: "load_target_points", Err: err}
	}
	points := make(map[string]*Point, len(loaded))
	for _, p := range loaded {
		points[p.ID] = p
	}

	// The persisted session row must still be coherent: every target
	// point exists and every recalled id is a target.
	for _, id := range session.TargetPointIDs {
		if points[id] == nil {
			return nil, &InvariantError{Detail: fmt.Sprintf(
				"session %s targets point %s which no longer exists", session.ID, id)}
		}
	}
	for _, id := range session.RecalledPointIDs {
		if points[id] == nil {
			return nil, &InvariantError{Detail: fmt.Sprintf(
				"session %s recalled point %s outside its targets", session.ID, id)}
		}
	}

	persisted, err := e.deps.Messages.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, &PersistenceError{Op: "load_session_messages", Err: err}
	}
	messages := make([]Message, len(persisted))
	for i, m := range persisted {
		messages[i] = *m
	}

	if err := e.deps.Sessions.Resume(ctx, session.ID, now); err != nil {
		return nil, &PersistenceError{Op: "resume_session", Err: err}
	}
	session.Status = StatusInProgress
	session.ResumedAt = &now

	e.resetRuntimeState(session, set, points, session.TargetPointIDs, session.RecalledPointIDs, messages)
	e.collector.Reset(now)
	e.rebuildSystemPrompt()

	e.emit(EventSessionStarted, SessionStartedPayload{
		SessionID:   session.ID,
		SetID:       set.ID,
		Resumed:     true,
		TotalPoints: len(session.TargetPointIDs),
	})
	return session, nil
}

func (e *Engine) resetRuntimeState(session *Session, set *Set, points map[string]*Point, targetIDs, recalledIDs []string, messages []Message) {
	e.session = session
	e.set = set
	e.points = points
	e.targetIDs = append([]string(nil), targetIDs...)
	e.checklist = newChecklist(targetIDs, recalledIDs)
	e.messages = messages
	e.mode = ModeRecall
	e.completionPending = false
	e.completionPendingAfterRabbithole = false
	e.declineCooldown = 0
	e.agent = nil
	e.activeEventID = ""
	e.activeTopic = ""
	e.pointsRecalledInHole = 0
	e.knownTopics = make(map[string]struct{})
	e.openEvents = make(map[string]*Rabbithole)
	e.evalAttempts = make(map[string]int)
	e.lastFailures = make(map[string]float64)
}

// OpeningMessage produces the tutor's first message of the session.
func (e *Engine) OpeningMessage(ctx context.Context) (string, error) {
	if e.session == nil {
		return "", ErrNoActiveSession
	}

	if probe := e.probePoint(); probe != nil {
		e.emit(EventPointStarted, PointStartedPayload{
			PointID:    probe.ID,
			ProbeIndex: e.checklist.probe,
		})
	}

	text, usage, err := e.generateTutorReply(ctx, "")
	if err != nil {
		return "", err
	}
	msg, err := e.appendMessage(ctx, llm.RoleAssistant, text, usage)
	if err != nil {
		return "", err
	}
	e.emit(EventAssistantMessage, AssistantMessagePayload{
		Index: msg.Index, Content: text, IsOpening: true,
	})
	return text, nil
}

// Pause persists recall progress and suspends the session. All progress
// survives; a later Start on the same set resumes it.
func (e *Engine) Pause(ctx context.Context) error {
	if e.session == nil {
		return ErrNoActiveSession
	}
	recalled := e.checklist.recalledIDs()
	if err := e.deps.Sessions.Pause(ctx, e.session.ID, recalled); err != nil {
		return &PersistenceError{Op: "pause_session", Err: err}
	}
	e.emit(EventSessionPaused, SessionPausedPayload{
		SessionID:     e.session.ID,
		RecalledCount: len(recalled),
	})
	e.clearState()
	return nil
}

// Abandon ends the session without finalizing metrics. Any rabbit-hole
// events still active are marked abandoned at the final message index.
func (e *Engine) Abandon(ctx context.Context) error {
	if e.session == nil {
		return ErrNoActiveSession
	}
	e.closeActiveRabbithole(ctx)
	e.abandonOpenEvents(ctx)
	if err := e.deps.Sessions.Abandon(ctx, e.session.ID, e.clock()); err != nil {
		return &PersistenceError{Op: "abandon_session", Err: err}
	}
	e.clearState()
	return nil
}

// Finalize completes the session: still-active rabbit holes are closed,
// the metrics row is computed and written, and session_completed fires.
// Points that drew a failed verdict and were never recalled count as
// failed attempts in the metrics; no outcome rows are written for them.
func (e *Engine) Finalize(ctx context.Context) error {
	if e.session == nil {
		return ErrNoActiveSession
	}
	e.closeActiveRabbithole(ctx)
	e.abandonOpenEvents(ctx)

	for _, id := range e.checklist.unchecked() {
		if conf, ok := e.lastFailures[id]; ok {
			e.collector.ObserveOutcome(false, conf)
		}
	}

	now := e.clock()
	sessionID := e.session.ID
	if err := e.deps.Sessions.Complete(ctx, sessionID, now); err != nil {
		return &PersistenceError{Op: "complete_session", Err: err}
	}
	if err := e.deps.Metrics.Create(ctx, e.collector.Finalize(sessionID, now)); err != nil {
		return &PersistenceError{Op: "create_session_metrics", Err: err}
	}
	e.emit(EventSessionCompleted, SessionCompletedPayload{SessionID: sessionID})
	e.clearState()
	return nil
}

// LeaveSession is the caller-facing wrapper behind the UI's done button
// after the completion overlay fires.
func (e *Engine) LeaveSession(ctx context.Context) error {
	return e.Finalize(ctx)
}

// Snapshot returns an immutable view of current state for UI consumers.
func (e *Engine) Snapshot() Snapshot {
	if e.session == nil {
		return Snapshot{}
	}
	s := Snapshot{
		SessionID:         e.session.ID,
		SetID:             e.set.ID,
		Mode:              e.mode,
		TotalPoints:       e.checklist.total(),
		RecalledCount:     e.checklist.recalledCount(),
		ProbeIndex:        e.checklist.probe,
		CompletionPending: e.completionPending,
		ActiveRabbithole:  e.activeTopic,
		DeclineCooldown:   e.declineCooldown,
	}
	if id, ok := e.checklist.nextProbe(); ok {
		s.NextProbePointID = id
	}
	return s
}

func (e *Engine) clearState() {
	e.session = nil
	e.set = nil
	e.points = nil
	e.targetIDs = nil
	e.checklist = nil
	e.messages = nil
	e.systemPrompt = ""
	e.mode = ModeRecall
	e.completionPending = false
	e.completionPendingAfterRabbithole = false
	e.declineCooldown = 0
	e.agent = nil
	e.activeEventID = ""
	e.activeTopic = ""
	e.pointsRecalledInHole = 0
	e.knownTopics = nil
	e.openEvents = nil
	e.evalAttempts = nil
	e.lastFailures = nil
}

// --- message cache ---

// lastMessageIndex is the index of the newest persisted main-dialog
// message, -1 when the dialog is empty.
func (e *Engine) lastMessageIndex() int {
	return len(e.messages) - 1
}

// appendMessage persists one main-dialog message and mirrors it into the
// cache and the metrics collector. Persistence failure aborts the turn.
func (e *Engine) appendMessage(ctx context.Context, role llm.Role, content string, usage *llm.Usage) (*Message, error) {
	now := e.clock()
	msg := Message{
		ID:        uuid.New().String(),
		SessionID: e.session.ID,
		Index:     len(e.messages),
		Role:      role,
		Content:   content,
		CreatedAt: now,
	}
	var inTokens, outTokens int
	if usage != nil {
		inTokens, outTokens = usage.InputTokens, usage.OutputTokens
		total := inTokens + outTokens
		msg.TokenCount = &total
	}
	if err := e.deps.Messages.Create(ctx, &msg); err != nil {
		return nil, &PersistenceError{Op: "create_session_message", Err: err}
	}
	e.messages = append(e.messages, msg)
	e.collector.ObserveMessage(role, len(content), inTokens, outTokens, now)
	return &msg, nil
}

// historySnapshot copies the message cache so callers can extend it
// without mutating engine state.
func (e *Engine) historySnapshot() []Message {
	return append([]Message(nil), e.messages...)
}

// recentMessages returns the newest n cached messages.
func (e *Engine) recentMessages(n int) []Message {
	if n <= 0 || n >= len(e.messages) {
		return e.historySnapshot()
	}
	return append([]Message(nil), e.messages[len(e.messages)-n:]...)
}

// --- prompt plumbing ---

func (e *Engine) probePoint() *Point {
	if e.checklist == nil {
		return nil
	}
	id, ok := e.checklist.nextProbe()
	if !ok {
		return nil
	}
	return e.points[id]
}

func (e *Engine) targetPoints() []*Point {
	out := make([]*Point, 0, len(e.targetIDs))
	for _, id := range e.targetIDs {
		if p := e.points[id]; p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (e *Engine) uncheckedPoints() []*Point {
	ids := e.checklist.unchecked()
	out := make([]*Point, 0, len(ids))
	for _, id := range ids {
		if p := e.points[id]; p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (e *Engine) knownTopicList() []string {
	out := make([]string, 0, len(e.knownTopics))
	for t := range e.knownTopics {
		out = append(out, t)
	}
	return out
}

// rebuildSystemPrompt refreshes the tutor prompt so recalled points drop
// out of the probe candidates.
func (e *Engine) rebuildSystemPrompt() {
	e.systemPrompt = e.deps.Prompts.TutorSystemPrompt(
		e.set, e.targetPoints(), e.uncheckedPoints(), e.probePoint())
}

// internalObservationPrefix marks the ephemeral feedback turn the tutor
// sees but must never surface. The turn is supplied to the LLM only; it
// is not persisted and is never replayed on resume.
const internalObservationPrefix = "[Internal observation — do not reference or quote directly to the user]: "

// generateTutorReply calls the tutor LLM over the persisted dialog,
// optionally extended with the evaluator's ephemeral observation turn.
func (e *Engine) generateTutorReply(ctx context.Context, feedback string) (string, *llm.Usage, error) {
	messages := make([]llm.Message, 0, len(e.messages)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: e.systemPrompt})
	for _, m := range e.messages {
		if m.Role != llm.RoleUser && m.Role != llm.RoleAssistant {
			continue
		}
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	if feedback != "" {
		messages = append(messages, llm.Message{
			Role:    llm.RoleAssistant,
			Content: internalObservationPrefix + feedback,
		})
	}

	callCtx := ctx
	if e.cfg.LLMTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.cfg.LLMTimeout)
		defer cancel()
	}
	resp, err := e.deps.LLM.Complete(callCtx, messages, llm.Options{
		Temperature: e.cfg.TutorTemperature,
		MaxTokens:   e.cfg.TutorMaxTokens,
	})
	if err != nil {
		return "", nil, &LLMError{Op: "tutor_reply", Err: err}
	}
	return resp.Text, &resp.Usage, nil
}
