package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recallkit/recallkit/pkg/engine"
)

func newSessionRow(setID string, pointIDs []string, startedAt time.Time) *engine.Session {
	return &engine.Session{
		ID:             uuid.New().String(),
		SetID:          setID,
		Status:         engine.StatusInProgress,
		TargetPointIDs: pointIDs,
		StartedAt:      startedAt,
	}
}

func TestSessionRepo_Lifecycle(t *testing.T) {
	client := newTestClient(t)
	repo := NewSessionRepo(client)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	setID := mustCreateSet(t, client, "Lifecycle")
	p1 := mustCreatePoint(t, client, setID, "fact one", now)
	p2 := mustCreatePoint(t, client, setID, "fact two", now)

	t.Run("no active session yet", func(t *testing.T) {
		got, err := repo.FindActive(ctx, setID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	session := newSessionRow(setID, []string{p1, p2}, now)
	require.NoError(t, repo.Create(ctx, session))

	t.Run("create is not idempotent", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, session), ErrAlreadyExists)
	})

	t.Run("find active returns the row", func(t *testing.T) {
		got, err := repo.FindActive(ctx, setID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, session.ID, got.ID)
		assert.Equal(t, engine.StatusInProgress, got.Status)
		assert.Equal(t, []string{p1, p2}, got.TargetPointIDs)
	})

	t.Run("pause persists checklist and stays findable", func(t *testing.T) {
		require.NoError(t, repo.Pause(ctx, session.ID, []string{p1}))

		got, err := repo.FindActive(ctx, setID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, engine.StatusPaused, got.Status)
		assert.Equal(t, []string{p1}, got.RecalledPointIDs)
	})

	t.Run("resume stamps resumed_at", func(t *testing.T) {
		resumedAt := now.Add(time.Hour)
		require.NoError(t, repo.Resume(ctx, session.ID, resumedAt))

		got, err := repo.FindActive(ctx, setID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, engine.StatusInProgress, got.Status)
		require.NotNil(t, got.ResumedAt)
		assert.WithinDuration(t, resumedAt, *got.ResumedAt, time.Second)
	})

	t.Run("checklist progress write", func(t *testing.T) {
		require.NoError(t, repo.UpdateRecalledPointIDs(ctx, session.ID, []string{p1, p2}))
	})

	t.Run("complete removes the session from the active set", func(t *testing.T) {
		require.NoError(t, repo.Complete(ctx, session.ID, now.Add(2*time.Hour)))

		got, err := repo.FindActive(ctx, setID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("updates on missing session return ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, repo.Resume(ctx, "missing", now), ErrNotFound)
		assert.ErrorIs(t, repo.Pause(ctx, "missing", nil), ErrNotFound)
		assert.ErrorIs(t, repo.Complete(ctx, "missing", now), ErrNotFound)
		assert.ErrorIs(t, repo.Abandon(ctx, "missing", now), ErrNotFound)
	})
}

func TestSessionRepo_FindActivePrefersLatest(t *testing.T) {
	client := newTestClient(t)
	repo := NewSessionRepo(client)
	ctx := context.Background()
	now := time.Now().UTC()

	setID := mustCreateSet(t, client, "Latest")
	p1 := mustCreatePoint(t, client, setID, "fact", now)

	old := newSessionRow(setID, []string{p1}, now.Add(-48*time.Hour))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Abandon(ctx, old.ID, now.Add(-47*time.Hour)))

	current := newSessionRow(setID, []string{p1}, now)
	require.NoError(t, repo.Create(ctx, current))

	got, err := repo.FindActive(ctx, setID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, current.ID, got.ID)
}
