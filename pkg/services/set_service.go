package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/ent/recallpoint"
	"github.com/recallkit/recallkit/ent/recallset"
	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/fsrs"
)

// SetService handles recall-set and recall-point authoring.
type SetService struct {
	client *ent.Client
}

// NewSetService creates a SetService.
func NewSetService(client *ent.Client) *SetService {
	return &SetService{client: client}
}

// SetInput is the authoring payload for a recall set.
type SetInput struct {
	Name             string
	Description      string
	DiscussionPrompt string
}

// PointInput is the authoring payload for a recall point.
type PointInput struct {
	Content string
	Context string
}

// SetInfo is a set row with its point counts, as listed by the CLI and
// the dashboard.
type SetInfo struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	DiscussionPrompt string    `json:"discussion_prompt,omitempty"`
	TotalPoints      int       `json:"total_points"`
	DuePoints        int       `json:"due_points"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateSet creates a recall set. Names are unique.
func (s *SetService) CreateSet(ctx context.Context, in SetInput) (*SetInfo, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, NewValidationError("name", "cannot be empty")
	}

	row, err := s.client.RecallSet.Create().
		SetID(uuid.New().String()).
		SetName(strings.TrimSpace(in.Name)).
		SetDescription(in.Description).
		SetNillableDiscussionPrompt(nilIfEmpty(in.DiscussionPrompt)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create recall set: %w", err)
	}
	return setInfoFromEnt(row, 0, 0), nil
}

// GetSet loads a set by ID.
func (s *SetService) GetSet(ctx context.Context, id string, asOf time.Time) (*SetInfo, error) {
	row, err := s.client.RecallSet.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recall set: %w", err)
	}
	return s.withCounts(ctx, row, asOf)
}

// GetSetByName loads a set by its unique name.
func (s *SetService) GetSetByName(ctx context.Context, name string, asOf time.Time) (*SetInfo, error) {
	row, err := s.client.RecallSet.Query().
		Where(recallset.Name(name)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recall set: %w", err)
	}
	return s.withCounts(ctx, row, asOf)
}

// ListSets returns all non-archived sets with point counts.
func (s *SetService) ListSets(ctx context.Context, asOf time.Time) ([]*SetInfo, error) {
	rows, err := s.client.RecallSet.Query().
		Where(recallset.StatusNEQ(recallset.StatusArchived)).
		Order(ent.Asc(recallset.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recall sets: %w", err)
	}
	out := make([]*SetInfo, 0, len(rows))
	for _, row := range rows {
		info, err := s.withCounts(ctx, row, asOf)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

// ArchiveSet marks a set archived; archived sets are hidden from listings
// and cannot start sessions.
func (s *SetService) ArchiveSet(ctx context.Context, id string) error {
	err := s.client.RecallSet.UpdateOneID(id).
		SetStatus(recallset.StatusArchived).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// CreatePoint adds a point to a set, due immediately under a fresh FSRS
// state.
func (s *SetService) CreatePoint(ctx context.Context, setID string, in PointInput, now time.Time) (*engine.Point, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, NewValidationError("content", "cannot be empty")
	}

	state := fsrs.NewState(now)
	row, err := s.client.RecallPoint.Create().
		SetID(uuid.New().String()).
		SetRecallSetID(setID).
		SetContent(strings.TrimSpace(in.Content)).
		SetContext(in.Context).
		SetDifficulty(state.Difficulty).
		SetStability(state.Stability).
		SetDue(state.Due).
		SetState(recallpoint.State(state.Phase)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("recall set %s not found: %w", setID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create recall point: %w", err)
	}
	return pointFromEnt(row), nil
}

// ListPoints returns all points of a set in authoring order.
func (s *SetService) ListPoints(ctx context.Context, setID string) ([]*engine.Point, error) {
	rows, err := s.client.RecallPoint.Query().
		Where(recallpoint.RecallSetID(setID)).
		Order(ent.Asc(recallpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recall points: %w", err)
	}
	return pointsFromEnt(rows), nil
}

// EngineSet converts a set row into the engine's immutable view.
func (s *SetService) EngineSet(ctx context.Context, id string) (*engine.Set, error) {
	row, err := s.client.RecallSet.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recall set: %w", err)
	}
	set := &engine.Set{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
	}
	if row.DiscussionPrompt != nil {
		set.DiscussionPrompt = *row.DiscussionPrompt
	}
	return set, nil
}

func (s *SetService) withCounts(ctx context.Context, row *ent.RecallSet, asOf time.Time) (*SetInfo, error) {
	total, err := s.client.RecallPoint.Query().
		Where(recallpoint.RecallSetID(row.ID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count points: %w", err)
	}
	due, err := s.client.RecallPoint.Query().
		Where(
			recallpoint.RecallSetID(row.ID),
			recallpoint.DueLTE(asOf),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count due points: %w", err)
	}
	return setInfoFromEnt(row, total, due), nil
}

func setInfoFromEnt(row *ent.RecallSet, total, due int) *SetInfo {
	info := &SetInfo{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Status:      string(row.Status),
		TotalPoints: total,
		DuePoints:   due,
		CreatedAt:   row.CreatedAt,
	}
	if row.DiscussionPrompt != nil {
		info.DiscussionPrompt = *row.DiscussionPrompt
	}
	return info
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
