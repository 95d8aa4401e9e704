package services

import (
	"context"
	"fmt"
	"time"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/ent/studysession"
	"github.com/recallkit/recallkit/pkg/engine"
)

// SessionRepo implements engine.SessionRepo over Ent.
type SessionRepo struct {
	client *ent.Client
}

// NewSessionRepo creates a SessionRepo.
func NewSessionRepo(client *ent.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

// FindActive returns the in_progress or paused session for a set, or
// (nil, nil) when none exists.
func (r *SessionRepo) FindActive(ctx context.Context, setID string) (*engine.Session, error) {
	row, err := r.client.StudySession.Query().
		Where(
			studysession.RecallSetID(setID),
			studysession.StatusIn(studysession.StatusInProgress, studysession.StatusPaused),
		).
		Order(ent.Desc(studysession.FieldStartedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query active session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *SessionRepo) Create(ctx context.Context, s *engine.Session) error {
	_, err := r.client.StudySession.Create().
		SetID(s.ID).
		SetRecallSetID(s.SetID).
		SetStatus(studysession.Status(s.Status)).
		SetTargetPointIds(s.TargetPointIDs).
		SetRecalledPointIds(s.RecalledPointIDs).
		SetStartedAt(s.StartedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepo) Resume(ctx context.Context, sessionID string, resumedAt time.Time) error {
	err := r.client.StudySession.UpdateOneID(sessionID).
		SetStatus(studysession.StatusInProgress).
		SetResumedAt(resumedAt).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (r *SessionRepo) Pause(ctx context.Context, sessionID string, recalledPointIDs []string) error {
	err := r.client.StudySession.UpdateOneID(sessionID).
		SetStatus(studysession.StatusPaused).
		SetRecalledPointIds(recalledPointIDs).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (r *SessionRepo) Complete(ctx context.Context, sessionID string, endedAt time.Time) error {
	err := r.client.StudySession.UpdateOneID(sessionID).
		SetStatus(studysession.StatusCompleted).
		SetEndedAt(endedAt).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (r *SessionRepo) Abandon(ctx context.Context, sessionID string, endedAt time.Time) error {
	err := r.client.StudySession.UpdateOneID(sessionID).
		SetStatus(studysession.StatusAbandoned).
		SetEndedAt(endedAt).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (r *SessionRepo) UpdateRecalledPointIDs(ctx context.Context, sessionID string, recalledPointIDs []string) error {
	err := r.client.StudySession.UpdateOneID(sessionID).
		SetRecalledPointIds(recalledPointIDs).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func sessionFromEnt(row *ent.StudySession) *engine.Session {
	return &engine.Session{
		ID:               row.ID,
		SetID:            row.RecallSetID,
		Status:           engine.SessionStatus(row.Status),
		TargetPointIDs:   row.TargetPointIds,
		RecalledPointIDs: row.RecalledPointIds,
		StartedAt:        row.StartedAt,
		ResumedAt:        row.ResumedAt,
		EndedAt:          row.EndedAt,
	}
}
