// Package engine implements the spaced-repetition session engine: the
// session state machine, the checklist-based continuous evaluator, the
// FSRS scheduler adapter, and the rabbit-hole subsystem.
//
// One Engine instance drives exactly one session at a time. Concurrent
// calls on the same instance are not permitted; callers serialize access
// (the API layer holds a per-session lock). Separate sessions use
// separate instances and share nothing.
package engine

import (
	"time"

	"github.com/recallkit/recallkit/pkg/fsrs"
	"github.com/recallkit/recallkit/pkg/llm"
)

// Set is the engine's view of a recall set. Immutable during a session.
type Set struct {
	ID               string
	Name             string
	Description      string
	DiscussionPrompt string
}

// Point is the engine's view of a recall point.
type Point struct {
	ID      string
	SetID   string
	Content string
	Context string
	FSRS    fsrs.State
}

// SessionStatus enumerates session lifecycle states. Transitions form a
// DAG; only in_progress <-> paused is bidirectional.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusPaused     SessionStatus = "paused"
	StatusCompleted  SessionStatus = "completed"
	StatusAbandoned  SessionStatus = "abandoned"
)

// Session is one study encounter over a subset of a set's due points.
type Session struct {
	ID               string
	SetID            string
	Status           SessionStatus
	TargetPointIDs   []string
	RecalledPointIDs []string
	StartedAt        time.Time
	ResumedAt        *time.Time
	EndedAt          *time.Time
}

// Message is one persisted main-dialog turn. Index is the session-scoped
// position; outcome and rabbit-hole indices refer to it.
type Message struct {
	ID         string
	SessionID  string
	Index      int
	Role       llm.Role
	Content    string
	TokenCount *int
	CreatedAt  time.Time
}

// RecallAttempt is one append-only recall-history entry on a point.
type RecallAttempt struct {
	Timestamp time.Time
	Success   bool
	LatencyMS int
}

// Outcome is the per-attempt audit row written when a recall commit
// lands.
type Outcome struct {
	ID                string
	SessionID         string
	RecallPointID     string
	Success           bool
	Confidence        float64
	Rating            *fsrs.Rating
	Reasoning         string
	MessageIndexStart int
	MessageIndexEnd   int
	TimeSpentMS       int
	CreatedAt         time.Time
}

// RabbitholeStatus enumerates rabbit-hole event states.
type RabbitholeStatus string

const (
	RabbitholeActive    RabbitholeStatus = "active"
	RabbitholeReturned  RabbitholeStatus = "returned"
	RabbitholeAbandoned RabbitholeStatus = "abandoned"
)

// AgentTurn is one turn of a rabbit-hole agent's private conversation.
type AgentTurn struct {
	Role    llm.Role `json:"role"`
	Content string   `json:"content"`
}

// Rabbithole is a detected conversational tangent record.
type Rabbithole struct {
	ID                  string
	SessionID           string
	Topic               string
	TriggerMessageIndex int
	ReturnMessageIndex  *int
	Depth               int
	RelatedPointIDs     []string
	UserInitiated       bool
	Status              RabbitholeStatus
	Conversation        []AgentTurn
	CreatedAt           time.Time
}

// Mode is the engine's dialog routing mode.
type Mode string

const (
	ModeRecall     Mode = "recall"
	ModeRabbithole Mode = "rabbithole"
)

// TurnResult is returned from ProcessUserMessage. Completed is always
// false: completion is signaled by the overlay event and finalization
// happens on LeaveSession.
type TurnResult struct {
	Response               string
	Completed              bool
	RecalledCount          int
	TotalPoints            int
	PointsRecalledThisTurn int
}

// Snapshot is an immutable view of engine state for UI consumers.
type Snapshot struct {
	SessionID         string
	SetID             string
	Mode              Mode
	TotalPoints       int
	RecalledCount     int
	ProbeIndex        int
	NextProbePointID  string
	CompletionPending bool
	ActiveRabbithole  string
	DeclineCooldown   int
}
