package engine

import (
	"context"
	"time"

	"github.com/recallkit/recallkit/pkg/fsrs"
)

// The engine consumes persistence through these narrow interfaces.
// pkg/services implements them over ent/Postgres; tests use in-memory
// fakes. Repositories returning (nil, nil) signal "not found" where
// documented.

// SessionRepo persists StudySession rows.
type SessionRepo interface {
	// FindActive returns the in_progress or paused session for a set,
	// or (nil, nil) when none exists.
	FindActive(ctx context.Context, setID string) (*Session, error)
	Create(ctx context.Context, s *Session) error
	Resume(ctx context.Context, sessionID string, resumedAt time.Time) error
	Pause(ctx context.Context, sessionID string, recalledPointIDs []string) error
	Complete(ctx context.Context, sessionID string, endedAt time.Time) error
	Abandon(ctx context.Context, sessionID string, endedAt time.Time) error
	// UpdateRecalledPointIDs is the best-effort checklist-progress write.
	UpdateRecalledPointIDs(ctx context.Context, sessionID string, recalledPointIDs []string) error
}

// PointRepo persists RecallPoint rows and their FSRS state.
type PointRepo interface {
	FindDue(ctx context.Context, setID string, asOf time.Time) ([]*Point, error)
	FindByIDs(ctx context.Context, ids []string) ([]*Point, error)
	UpdateFSRSState(ctx context.Context, pointID string, state fsrs.State) error
	AddRecallAttempt(ctx context.Context, pointID string, attempt RecallAttempt) error
}

// MessageRepo persists the main dialog. Messages are immutable.
type MessageRepo interface {
	Create(ctx context.Context, m *Message) error
	ListBySession(ctx context.Context, sessionID string) ([]*Message, error)
}

// OutcomeRepo persists recall-outcome audit rows.
type OutcomeRepo interface {
	Create(ctx context.Context, o *Outcome) error
}

// RabbitholeRepo persists rabbit-hole event records.
type RabbitholeRepo interface {
	Create(ctx context.Context, r *Rabbithole) error
	UpdateStatus(ctx context.Context, eventID string, status RabbitholeStatus, returnMessageIndex *int) error
	UpdateConversation(ctx context.Context, eventID string, conversation []AgentTurn) error
}

// MetricsRepo persists the one-per-session metrics row.
type MetricsRepo interface {
	Create(ctx context.Context, m *Metrics) error
}
