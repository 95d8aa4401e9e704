package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/recallkit/recallkit/pkg/fsrs"
	"github.com/recallkit/recallkit/pkg/llm"
)

// ---------------------------------------------------------------------------
// Test fixtures: fixed clock, in-memory repos, scripted LLM/evaluator/detector
// ---------------------------------------------------------------------------

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// testClock hands out strictly increasing timestamps one second apart.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock { return &testClock{now: t0} }

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// --- repos ---

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*Session)}
}

func (r *fakeSessionRepo) FindActive(_ context.Context, setID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.SetID == setID && (s.Status == StatusInProgress || s.Status == StatusPaused) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Create(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) Resume(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sessions[id]
	s.Status = StatusInProgress
	s.ResumedAt = &at
	return nil
}

func (r *fakeSessionRepo) Pause(_ context.Context, id string, recalled []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sessions[id]
	s.Status = StatusPaused
	s.RecalledPointIDs = append([]string(nil), recalled...)
	return nil
}

func (r *fakeSessionRepo) Complete(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sessions[id]
	s.Status = StatusCompleted
	s.EndedAt = &at
	return nil
}

func (r *fakeSessionRepo) Abandon(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sessions[id]
	s.Status = StatusAbandoned
	s.EndedAt = &at
	return nil
}

func (r *fakeSessionRepo) UpdateRecalledPointIDs(_ context.Context, id string, recalled []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.RecalledPointIDs = append([]string(nil), recalled...)
	}
	return nil
}

func (r *fakeSessionRepo) get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *r.sessions[id]
	return &copied
}

type fakePointRepo struct {
	mu       sync.Mutex
	points   map[string]*Point
	order    []string
	attempts map[string][]RecallAttempt

	failUpdateFSRS bool
}

func newFakePointRepo(points ...*Point) *fakePointRepo {
	r := &fakePointRepo{
		points:   make(map[string]*Point),
		attempts: make(map[string][]RecallAttempt),
	}
	for _, p := range points {
		copied := *p
		r.points[p.ID] = &copied
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *fakePointRepo) FindDue(_ context.Context, setID string, asOf time.Time) ([]*Point, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Point
	for _, id := range r.order {
		p := r.points[id]
		if p.SetID == setID && !p.FSRS.Due.After(asOf) {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakePointRepo) FindByIDs(_ context.Context, ids []string) ([]*Point, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Point, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.points[id]; ok {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakePointRepo) UpdateFSRSState(_ context.Context, id string, state fsrs.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdateFSRS {
		return errors.New("fsrs write refused")
	}
	r.points[id].FSRS = state
	return nil
}

func (r *fakePointRepo) AddRecallAttempt(_ context.Context, id string, a RecallAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[id] = append(r.attempts[id], a)
	return nil
}

func (r *fakePointRepo) get(id string) *Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *r.points[id]
	return &copied
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*Message
}

func (r *fakeMessageRepo) Create(_ context.Context, m *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *m
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) ListBySession(_ context.Context, sessionID string) ([]*Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Message
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeOutcomeRepo struct {
	mu       sync.Mutex
	outcomes []*Outcome
}

func (r *fakeOutcomeRepo) Create(_ context.Context, o *Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *o
	r.outcomes = append(r.outcomes, &copied)
	return nil
}

func (r *fakeOutcomeRepo) forPoint(pointID string) []*Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Outcome
	for _, o := range r.outcomes {
		if o.RecallPointID == pointID {
			out = append(out, o)
		}
	}
	return out
}

type fakeRabbitholeRepo struct {
	mu               sync.Mutex
	events           map[string]*Rabbithole
	failUpdateStatus error
}

func newFakeRabbitholeRepo() *fakeRabbitholeRepo {
	return &fakeRabbitholeRepo{events: make(map[string]*Rabbithole)}
}

func (r *fakeRabbitholeRepo) Create(_ context.Context, ev *Rabbithole) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *ev
	r.events[ev.ID] = &copied
	return nil
}

func (r *fakeRabbitholeRepo) UpdateStatus(_ context.Context, id string, status RabbitholeStatus, returnIdx *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdateStatus != nil {
		return r.failUpdateStatus
	}
	ev := r.events[id]
	ev.Status = status
	ev.ReturnMessageIndex = returnIdx
	return nil
}

func (r *fakeRabbitholeRepo) UpdateConversation(_ context.Context, id string, conv []AgentTurn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[id].Conversation = append([]AgentTurn(nil), conv...)
	return nil
}

func (r *fakeRabbitholeRepo) get(id string) *Rabbithole {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *r.events[id]
	return &copied
}

func (r *fakeRabbitholeRepo) activeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Status == RabbitholeActive {
			n++
		}
	}
	return n
}

type fakeMetricsRepo struct {
	mu   sync.Mutex
	rows []*Metrics
}

func (r *fakeMetricsRepo) Create(_ context.Context, m *Metrics) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *m
	r.rows = append(r.rows, &copied)
	return nil
}

// --- scripted collaborators ---

// mockLLMClient returns scripted completions in order, or calls the
// onComplete hook when set.
type mockLLMClient struct {
	mu         sync.Mutex
	responses  []string
	calls      [][]llm.Message
	onComplete func(messages []llm.Message, opts llm.Options) (*llm.Completion, error)
}

func (m *mockLLMClient) Complete(_ context.Context, messages []llm.Message, opts llm.Options) (*llm.Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, messages)
	if m.onComplete != nil {
		return m.onComplete(messages, opts)
	}
	text := "Tell me more."
	if len(m.responses) > 0 {
		text = m.responses[0]
		m.responses = m.responses[1:]
	}
	return &llm.Completion{
		Text:       text,
		Usage:      llm.Usage{InputTokens: 100, OutputTokens: 20},
		StopReason: "stop",
	}, nil
}

func (m *mockLLMClient) Close() error { return nil }

// scriptedEvaluator returns one queued verdict per point id per call.
// An empty queue yields a confident negative.
type scriptedEvaluator struct {
	mu       sync.Mutex
	verdicts map[string][]*Evaluation
	errs     map[string]error
}

func newScriptedEvaluator() *scriptedEvaluator {
	return &scriptedEvaluator{
		verdicts: make(map[string][]*Evaluation),
		errs:     make(map[string]error),
	}
}

func (s *scriptedEvaluator) queue(pointID string, evals ...*Evaluation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verdicts[pointID] = append(s.verdicts[pointID], evals...)
}

func (s *scriptedEvaluator) EvaluatePoint(_ context.Context, p *Point, _ []Message, _ EvalContext) (*Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errs[p.ID]; err != nil {
		return nil, err
	}
	q := s.verdicts[p.ID]
	if len(q) == 0 {
		return &Evaluation{Success: false, Confidence: 0.05}, nil
	}
	s.verdicts[p.ID] = q[1:]
	return q[0], nil
}

// scriptedDetector returns queued detections and return verdicts.
type scriptedDetector struct {
	mu          sync.Mutex
	detections  []*Detection
	returns     []*ReturnDetection
	detectCalls int
	returnCalls int
}

func (s *scriptedDetector) queueDetection(d *Detection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detections = append(s.detections, d)
}

func (s *scriptedDetector) queueReturn(r *ReturnDetection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.returns = append(s.returns, r)
}

func (s *scriptedDetector) DetectRabbithole(_ context.Context, _ DetectionInput) (*Detection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detectCalls++
	if len(s.detections) == 0 {
		return &Detection{IsRabbithole: false}, nil
	}
	d := s.detections[0]
	s.detections = s.detections[1:]
	return d, nil
}

func (s *scriptedDetector) DetectReturn(_ context.Context, _ ReturnInput) (*ReturnDetection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.returnCalls++
	if len(s.returns) == 0 {
		return &ReturnDetection{HasReturned: false}, nil
	}
	r := s.returns[0]
	s.returns = s.returns[1:]
	return r, nil
}

// stubPrompts is a minimal PromptBuilder; prompt content is covered in
// pkg/prompt's own tests.
type stubPrompts struct{}

func (stubPrompts) TutorSystemPrompt(_ *Set, _ []*Point, _ []*Point, _ *Point) string {
	return "tutor system prompt"
}

func (stubPrompts) EvaluationMessages(p *Point, _ []Message, _ EvalContext) []llm.Message {
	return []llm.Message{{Role: llm.RoleUser, Content: p.Content}}
}

func (stubPrompts) DetectorMessages(_ DetectionInput) []llm.Message {
	return []llm.Message{{Role: llm.RoleUser, Content: "detect"}}
}

func (stubPrompts) ReturnMessages(_ ReturnInput) []llm.Message {
	return []llm.Message{{Role: llm.RoleUser, Content: "return"}}
}

func (stubPrompts) AgentSystemPrompt(topic, _, _ string) string {
	return "agent persona for " + topic
}

// eventRecorder captures the emitted event stream in order.
type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) listen(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func (r *eventRecorder) ofType(t EventType) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func (r *eventRecorder) firstIndex(t EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, ev := range r.events {
		if ev.Type == t {
			return i
		}
	}
	return -1
}

// --- harness ---

type testHarness struct {
	engine    *Engine
	clock     *testClock
	sessions  *fakeSessionRepo
	points    *fakePointRepo
	messages  *fakeMessageRepo
	outcomes  *fakeOutcomeRepo
	holes     *fakeRabbitholeRepo
	metrics   *fakeMetricsRepo
	llm       *mockLLMClient
	evaluator *scriptedEvaluator
	detector  *scriptedDetector
	recorder  *eventRecorder
	set       *Set
}

func threePointSet() (*Set, []*Point) {
	set := &Set{ID: "set-1", Name: "Roman History"}
	points := []*Point{
		{ID: "p1", SetID: set.ID, Content: "Caesar crossed the Rubicon in 49 BC", FSRS: fsrs.NewState(t0)},
		{ID: "p2", SetID: set.ID, Content: "The Republic ended with Augustus in 27 BC", FSRS: fsrs.NewState(t0)},
		{ID: "p3", SetID: set.ID, Content: "Carthage was destroyed in 146 BC", FSRS: fsrs.NewState(t0)},
	}
	return set, points
}

func newHarness(set *Set, points []*Point, withDetector bool) *testHarness {
	h := &testHarness{
		clock:     newTestClock(),
		sessions:  newFakeSessionRepo(),
		points:    newFakePointRepo(points...),
		messages:  &fakeMessageRepo{},
		outcomes:  &fakeOutcomeRepo{},
		holes:     newFakeRabbitholeRepo(),
		metrics:   &fakeMetricsRepo{},
		llm:       &mockLLMClient{},
		evaluator: newScriptedEvaluator(),
		recorder:  &eventRecorder{},
		set:       set,
	}
	deps := Deps{
		LLM:         h.llm,
		Evaluator:   h.evaluator,
		Scheduler:   FSRSScheduler{},
		Prompts:     stubPrompts{},
		Sessions:    h.sessions,
		Points:      h.points,
		Messages:    h.messages,
		Outcomes:    h.outcomes,
		Rabbitholes: h.holes,
		Metrics:     h.metrics,
		Clock:       h.clock.Now,
	}
	if withDetector {
		h.detector = &scriptedDetector{}
		deps.Detector = h.detector
	}
	h.engine = New(deps, Config{})
	h.engine.SetListener(h.recorder.listen)
	return h
}

func success(conf float64) *Evaluation {
	return &Evaluation{Success: true, Confidence: conf, Reasoning: "demonstrated"}
}

func failure(conf float64) *Evaluation {
	return &Evaluation{Success: false, Confidence: conf, Reasoning: "not demonstrated"}
}
