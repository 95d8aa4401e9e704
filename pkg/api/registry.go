package api

import (
	"context"
	"sync"
	"time"

	"github.com/recallkit/recallkit/pkg/config"
	"github.com/recallkit/recallkit/pkg/database"
	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/llm"
	"github.com/recallkit/recallkit/pkg/prompt"
	"github.com/recallkit/recallkit/pkg/services"
)

// Registry keeps one live engine per in-progress session. Engines are
// not safe for concurrent use; each entry carries the per-session lock
// the handlers hold across a whole operation.
type Registry struct {
	db  *database.Client
	llm llm.Client
	cfg engine.Config

	mu      sync.Mutex
	entries map[string]*sessionEntry
}

// sessionEntry is one registered engine plus its turn-scoped event
// buffer. Handlers lock the entry, not the registry, while an operation
// runs.
type sessionEntry struct {
	mu     sync.Mutex
	eng    *engine.Engine
	events *eventBuffer
}

// NewRegistry creates a Registry building engines from the shared
// database client and LLM connection.
func NewRegistry(db *database.Client, llmClient llm.Client, cfg *config.Config) *Registry {
	return &Registry{
		db:      db,
		llm:     llmClient,
		cfg:     engineConfig(cfg),
		entries: make(map[string]*sessionEntry),
	}
}

func engineConfig(cfg *config.Config) engine.Config {
	return engine.Config{
		TutorTemperature: cfg.Engine.TutorTemperature,
		TutorMaxTokens:   cfg.Engine.TutorMaxTokens,
		RecallThreshold:  cfg.Engine.RecallThreshold,
		NearMissLow:      cfg.Engine.NearMissLow,
		DetectThreshold:  cfg.Engine.DetectThreshold,
		DeclineCooldown:  cfg.Engine.DeclineCooldown,
		DetectorWindow:   cfg.Engine.DetectorWindow,
		ReturnWindow:     cfg.Engine.ReturnWindow,
		EvalParallelism:  cfg.Engine.EvalParallelism,
		LLMTimeout:       cfg.LLM.Timeout,
		PauseThreshold:   cfg.Engine.PauseThreshold,
		ModelName:        cfg.LLM.Model,
	}
}

// newEngine wires a fresh engine over the shared persistence and LLM
// connections.
func (r *Registry) newEngine() (*engine.Engine, *eventBuffer) {
	prompts := prompt.NewBuilder()
	deps := engine.Deps{
		LLM:       r.llm,
		Evaluator: engine.NewLLMEvaluator(r.llm, prompts, r.cfg.LLMTimeout),
		Detector:  engine.NewLLMDetector(r.llm, prompts, r.cfg.LLMTimeout),
		Scheduler: engine.FSRSScheduler{},
		Prompts:   prompts,

		Sessions:    services.NewSessionRepo(r.db.Client),
		Points:      services.NewPointRepo(r.db.Client),
		Messages:    services.NewMessageRepo(r.db.Client),
		Outcomes:    services.NewOutcomeRepo(r.db.Client),
		Rabbitholes: services.NewRabbitholeRepo(r.db.Client),
		Metrics:     services.NewMetricsRepo(r.db.Client),
	}
	eng := engine.New(deps, r.cfg)
	buf := &eventBuffer{}
	eng.SetListener(buf.record)
	return eng, buf
}

// StartSession starts (or resumes) a session over the given set and
// registers its engine under the session ID.
func (r *Registry) StartSession(ctx context.Context, set *engine.Set) (*sessionEntry, *engine.Session, error) {
	eng, buf := r.newEngine()
	session, err := eng.Start(ctx, set)
	if err != nil {
		return nil, nil, err
	}

	entry := &sessionEntry{eng: eng, events: buf}
	r.mu.Lock()
	r.entries[session.ID] = entry
	r.mu.Unlock()
	return entry, session, nil
}

// Acquire returns the registered entry for a session, locked. The caller
// must Release it.
func (r *Registry) Acquire(sessionID string) (*sessionEntry, bool) {
	r.mu.Lock()
	entry, ok := r.entries[sessionID]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	entry.mu.Lock()
	return entry, true
}

// Release unlocks an acquired entry.
func (r *Registry) Release(entry *sessionEntry) {
	entry.mu.Unlock()
}

// Remove drops a session's engine after a terminal operation.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
}

// eventBuffer is the single-slot engine listener: it accumulates the
// events emitted during one operation so handlers can return them.
type eventBuffer struct {
	mu     sync.Mutex
	events []EventView
}

// EventView is the wire form of an engine event.
type EventView struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

func (b *eventBuffer) record(ev engine.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, EventView{
		Type:      string(ev.Type),
		Timestamp: ev.Timestamp,
		Data:      ev.Data,
	})
}

// drain returns and clears the buffered events.
func (b *eventBuffer) drain() []EventView {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.events
	b.events = nil
	return out
}
