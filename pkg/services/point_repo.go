package services

import (
	"context"
	"fmt"
	"time"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/ent/recallpoint"
	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/fsrs"
)

// PointRepo implements engine.PointRepo over Ent.
type PointRepo struct {
	client *ent.Client
}

// NewPointRepo creates a PointRepo.
func NewPointRepo(client *ent.Client) *PointRepo {
	return &PointRepo{client: client}
}

// FindDue returns the set's points with due <= asOf, oldest due first.
func (r *PointRepo) FindDue(ctx context.Context, setID string, asOf time.Time) ([]*engine.Point, error) {
	rows, err := r.client.RecallPoint.Query().
		Where(
			recallpoint.RecallSetID(setID),
			recallpoint.DueLTE(asOf),
		).
		Order(ent.Asc(recallpoint.FieldDue)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due points: %w", err)
	}
	return pointsFromEnt(rows), nil
}

func (r *PointRepo) FindByIDs(ctx context.Context, ids []string) ([]*engine.Point, error) {
	rows, err := r.client.RecallPoint.Query().
		Where(recallpoint.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query points: %w", err)
	}
	// callers expect input order (session target order)
	byID := make(map[string]*engine.Point, len(rows))
	for _, row := range rows {
		byID[row.ID] = pointFromEnt(row)
	}
	out := make([]*engine.Point, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PointRepo) UpdateFSRSState(ctx context.Context, pointID string, state fsrs.State) error {
	update := r.client.RecallPoint.UpdateOneID(pointID).
		SetDifficulty(state.Difficulty).
		SetStability(state.Stability).
		SetDue(state.Due).
		SetReps(state.Reps).
		SetLapses(state.Lapses).
		SetState(recallpoint.State(state.Phase))
	if state.LastReview != nil {
		update = update.SetLastReview(*state.LastReview)
	}
	err := update.Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// AddRecallAttempt appends one attempt to the point's recall history.
// Read-modify-write; attempts on a point are serialized by the engine.
func (r *PointRepo) AddRecallAttempt(ctx context.Context, pointID string, attempt engine.RecallAttempt) error {
	row, err := r.client.RecallPoint.Get(ctx, pointID)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load point: %w", err)
	}

	history := append(row.RecallHistory, map[string]interface{}{
		"timestamp_ms": attempt.Timestamp.UnixMilli(),
		"success":      attempt.Success,
		"latency_ms":   attempt.LatencyMS,
	})
	return r.client.RecallPoint.UpdateOneID(pointID).
		SetRecallHistory(history).
		Exec(ctx)
}

func pointFromEnt(row *ent.RecallPoint) *engine.Point {
	return &engine.Point{
		ID:      row.ID,
		SetID:   row.RecallSetID,
		Content: row.Content,
		Context: row.Context,
		FSRS: fsrs.State{
			Difficulty: row.Difficulty,
			Stability:  row.Stability,
			Due:        row.Due,
			LastReview: row.LastReview,
			Reps:       row.Reps,
			Lapses:     row.Lapses,
			Phase:      fsrs.Phase(row.State),
		},
	}
}

func pointsFromEnt(rows []*ent.RecallPoint) []*engine.Point {
	out := make([]*engine.Point, 0, len(rows))
	for _, row := range rows {
		out = append(out, pointFromEnt(row))
	}
	return out
}
