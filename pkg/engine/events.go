package engine

import (
	"log/slog"
	"time"

	"github.com/recallkit/recallkit/pkg/fsrs"
)

// EventType identifies the kind of a session event.
type EventType string

const (
	EventSessionStarted         EventType = "session_started"
	EventPointStarted           EventType = "point_started"
	EventPointRecalled          EventType = "point_recalled"
	EventUserMessage            EventType = "user_message"
	EventAssistantMessage       EventType = "assistant_message"
	EventPointEvaluated         EventType = "point_evaluated"
	EventPointCompleted         EventType = "point_completed"
	EventSessionCompleted       EventType = "session_completed"
	EventSessionCompleteOverlay EventType = "session_complete_overlay"
	EventSessionPaused          EventType = "session_paused"
	EventRabbitholeDetected     EventType = "rabbithole_detected"
	EventRabbitholeEntered      EventType = "rabbithole_entered"
	EventRabbitholeExited       EventType = "rabbithole_exited"
)

// Event is the tagged union delivered to the listener. Data holds one of
// the typed payload structs below.
type Event struct {
	Type      EventType
	Data      any
	Timestamp time.Time
}

// Listener receives events synchronously within the engine's turn. A
// panicking listener is recovered and logged; it never aborts the caller.
type Listener func(Event)

// --- Typed payloads ---

type SessionStartedPayload struct {
	SessionID   string
	SetID       string
	Resumed     bool
	TotalPoints int
}

type PointStartedPayload struct {
	PointID    string
	ProbeIndex int
}

type PointRecalledPayload struct {
	PointID string
}

type UserMessagePayload struct {
	Index   int
	Content string
}

type AssistantMessagePayload struct {
	Index     int
	Content   string
	IsOpening bool
}

type PointEvaluatedPayload struct {
	PointID    string
	Success    bool
	Confidence float64
}

type PointCompletedPayload struct {
	PointID    string
	Rating     fsrs.Rating
	NewDueDate time.Time
}

type SessionCompletedPayload struct {
	SessionID string
}

type CompleteOverlayPayload struct {
	SessionID     string
	RecalledCount int
	TotalPoints   int
}

type SessionPausedPayload struct {
	SessionID     string
	RecalledCount int
}

type RabbitholeDetectedPayload struct {
	Topic      string
	EventID    string
	Confidence float64
}

type RabbitholeEnteredPayload struct {
	Topic string
}

type RabbitholeExitedPayload struct {
	Label                string
	PointsRecalledDuring int
	CompletionPending    bool
}

// SetListener installs the single listener slot. Passing nil clears it.
func (e *Engine) SetListener(l Listener) {
	e.listener = l
}

// ClearListener removes the installed listener.
func (e *Engine) ClearListener() {
	e.listener = nil
}

// emit delivers an event to the listener, if any. Listener panics are
// swallowed so a misbehaving consumer cannot abort the turn.
func (e *Engine) emit(t EventType, data any) {
	if e.listener == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("session event listener panicked",
				"event_type", string(t), "panic", r)
		}
	}()
	e.listener(Event{Type: t, Data: data, Timestamp: e.clock()})
}
