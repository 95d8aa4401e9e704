package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetService_CreateSet(t *testing.T) {
	client := newTestClient(t)
	service := NewSetService(client)
	ctx := context.Background()

	t.Run("creates set with defaults", func(t *testing.T) {
		info, err := service.CreateSet(ctx, SetInput{
			Name:             "Roman History",
			Description:      "Key dates of the late Republic",
			DiscussionPrompt: "Prefer primary sources.",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, info.ID)
		assert.Equal(t, "Roman History", info.Name)
		assert.Equal(t, "active", info.Status)
		assert.Equal(t, "Prefer primary sources.", info.DiscussionPrompt)
		assert.Zero(t, info.TotalPoints)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := service.CreateSet(ctx, SetInput{Name: "   "})
		assert.True(t, IsValidationError(err))
	})

	t.Run("duplicate name returns ErrAlreadyExists", func(t *testing.T) {
		_, err := service.CreateSet(ctx, SetInput{Name: "Roman History"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestSetService_PointsAndCounts(t *testing.T) {
	client := newTestClient(t)
	service := NewSetService(client)
	ctx := context.Background()
	now := time.Now().UTC()

	setID := mustCreateSet(t, client, "Counts")

	p, err := service.CreatePoint(ctx, setID, PointInput{
		Content: "Caesar crossed the Rubicon in 49 BC",
		Context: "Triggered the civil war",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, setID, p.SetID)
	assert.Equal(t, "new", string(p.FSRS.Phase))
	assert.WithinDuration(t, now, p.FSRS.Due, time.Second)

	mustCreatePoint(t, client, setID, "Augustus became emperor in 27 BC", now)

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := service.CreatePoint(ctx, setID, PointInput{Content: ""}, now)
		assert.True(t, IsValidationError(err))
	})

	t.Run("counts reflect due horizon", func(t *testing.T) {
		info, err := service.GetSet(ctx, setID, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 2, info.TotalPoints)
		assert.Equal(t, 2, info.DuePoints)

		info, err = service.GetSet(ctx, setID, now.Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2, info.TotalPoints)
		assert.Zero(t, info.DuePoints)
	})

	t.Run("list points in authoring order", func(t *testing.T) {
		points, err := service.ListPoints(ctx, setID)
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Contains(t, points[0].Content, "Rubicon")
	})
}

func TestSetService_ListExcludesArchived(t *testing.T) {
	client := newTestClient(t)
	service := NewSetService(client)
	ctx := context.Background()
	now := time.Now().UTC()

	keepID := mustCreateSet(t, client, "Keep")
	dropID := mustCreateSet(t, client, "Drop")
	require.NoError(t, service.ArchiveSet(ctx, dropID))

	sets, err := service.ListSets(ctx, now)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, keepID, sets[0].ID)

	assert.ErrorIs(t, service.ArchiveSet(ctx, "missing"), ErrNotFound)
}

func TestSetService_EngineSet(t *testing.T) {
	client := newTestClient(t)
	service := NewSetService(client)
	ctx := context.Background()

	info, err := service.CreateSet(ctx, SetInput{
		Name:             "Engine View",
		Description:      "desc",
		DiscussionPrompt: "guidelines",
	})
	require.NoError(t, err)

	set, err := service.EngineSet(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, set.ID)
	assert.Equal(t, "Engine View", set.Name)
	assert.Equal(t, "guidelines", set.DiscussionPrompt)

	_, err = service.EngineSet(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
