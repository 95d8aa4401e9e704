package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/llm"
)

func TestSearchService(t *testing.T) {
	b := newBundle(t)
	ctx := context.Background()
	setID, _, sessionID := seedSession(t, b)
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, b.messages.Create(ctx, &engine.Message{
		ID: uuid.New().String(), SessionID: sessionID, Index: 0,
		Role: llm.RoleUser, Content: "Caesar crossed the Rubicon", CreatedAt: now,
	}))

	svc := NewSearchService(b.ent)

	t.Run("matches transcript content", func(t *testing.T) {
		res, err := svc.Search(ctx, "rubicon", "", 0)
		require.NoError(t, err)
		assert.Empty(t, res.Points)
		require.Len(t, res.Messages, 1)
		assert.Equal(t, sessionID, res.Messages[0].SessionID)
		assert.Equal(t, "user", res.Messages[0].Role)
	})

	t.Run("matches point content within a set", func(t *testing.T) {
		res, err := svc.Search(ctx, "fact", setID, 10)
		require.NoError(t, err)
		assert.Len(t, res.Points, 2)
		for _, p := range res.Points {
			assert.Equal(t, setID, p.SetID)
		}
	})

	t.Run("no hits for unrelated terms", func(t *testing.T) {
		res, err := svc.Search(ctx, "thermodynamics", "", 0)
		require.NoError(t, err)
		assert.Empty(t, res.Points)
		assert.Empty(t, res.Messages)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		_, err := svc.Search(ctx, "   ", "", 0)
		assert.True(t, IsValidationError(err))
	})
}
