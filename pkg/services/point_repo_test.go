package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recallkit/recallkit/ent/recallpoint"
	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/fsrs"
)

func TestPointRepo_FindDue(t *testing.T) {
	client := newTestClient(t)
	repo := NewPointRepo(client)
	ctx := context.Background()
	now := time.Now().UTC()

	setID := mustCreateSet(t, client, "Due")
	older := mustCreatePoint(t, client, setID, "older", now.Add(-2*time.Hour))
	newer := mustCreatePoint(t, client, setID, "newer", now.Add(-time.Hour))
	future := mustCreatePoint(t, client, setID, "future", now)
	require.NoError(t, client.RecallPoint.UpdateOneID(future).SetDue(now.Add(24*time.Hour)).Exec(ctx))

	due, err := repo.FindDue(ctx, setID, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	// oldest due first
	assert.Equal(t, older, due[0].ID)
	assert.Equal(t, newer, due[1].ID)
}

func TestPointRepo_FindByIDsPreservesInputOrder(t *testing.T) {
	client := newTestClient(t)
	repo := NewPointRepo(client)
	ctx := context.Background()
	now := time.Now().UTC()

	setID := mustCreateSet(t, client, "Order")
	p1 := mustCreatePoint(t, client, setID, "one", now)
	p2 := mustCreatePoint(t, client, setID, "two", now)
	p3 := mustCreatePoint(t, client, setID, "three", now)

	points, err := repo.FindByIDs(ctx, []string{p3, p1, "missing", p2})
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, p3, points[0].ID)
	assert.Equal(t, p1, points[1].ID)
	assert.Equal(t, p2, points[2].ID)
}

func TestPointRepo_UpdateFSRSState(t *testing.T) {
	client := newTestClient(t)
	repo := NewPointRepo(client)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	setID := mustCreateSet(t, client, "FSRS")
	pointID := mustCreatePoint(t, client, setID, "fact", now)

	reviewed := now
	state := fsrs.State{
		Difficulty: 4.2,
		Stability:  7.5,
		Due:        now.Add(72 * time.Hour),
		LastReview: &reviewed,
		Reps:       3,
		Lapses:     1,
		Phase:      fsrs.PhaseReview,
	}
	require.NoError(t, repo.UpdateFSRSState(ctx, pointID, state))

	points, err := repo.FindByIDs(ctx, []string{pointID})
	require.NoError(t, err)
	require.Len(t, points, 1)
	got := points[0].FSRS
	assert.InDelta(t, 4.2, got.Difficulty, 1e-9)
	assert.InDelta(t, 7.5, got.Stability, 1e-9)
	assert.WithinDuration(t, state.Due, got.Due, time.Second)
	require.NotNil(t, got.LastReview)
	assert.Equal(t, 3, got.Reps)
	assert.Equal(t, 1, got.Lapses)
	assert.Equal(t, fsrs.PhaseReview, got.Phase)

	assert.ErrorIs(t, repo.UpdateFSRSState(ctx, "missing", state), ErrNotFound)
}

func TestPointRepo_AddRecallAttemptAppends(t *testing.T) {
	client := newTestClient(t)
	repo := NewPointRepo(client)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	setID := mustCreateSet(t, client, "History")
	pointID := mustCreatePoint(t, client, setID, "fact", now)

	require.NoError(t, repo.AddRecallAttempt(ctx, pointID, engine.RecallAttempt{
		Timestamp: now, Success: true, LatencyMS: 4200,
	}))
	require.NoError(t, repo.AddRecallAttempt(ctx, pointID, engine.RecallAttempt{
		Timestamp: now.Add(time.Minute), Success: false, LatencyMS: 9000,
	}))

	row, err := client.RecallPoint.Query().Where(recallpoint.ID(pointID)).Only(ctx)
	require.NoError(t, err)
	require.Len(t, row.RecallHistory, 2)
	assert.Equal(t, true, row.RecallHistory[0]["success"])
	assert.Equal(t, false, row.RecallHistory[1]["success"])

	assert.ErrorIs(t, repo.AddRecallAttempt(ctx, "missing", engine.RecallAttempt{}), ErrNotFound)
}
