package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/recallkit/recallkit/pkg/config"
	"github.com/recallkit/recallkit/pkg/engine"
)

func TestEventBufferDrainClears(t *testing.T) {
	buf := &eventBuffer{}
	buf.record(engine.Event{Type: engine.EventUserMessage, Timestamp: time.Now()})
	buf.record(engine.Event{Type: engine.EventPointRecalled, Timestamp: time.Now()})

	events := buf.drain()
	assert.Len(t, events, 2)
	assert.Equal(t, "user_message", events[0].Type)
	assert.Equal(t, "point_recalled", events[1].Type)

	assert.Empty(t, buf.drain())
}

func TestEngineConfigMapsAllTunables(t *testing.T) {
	cfg := config.Defaults()
	cfg.Engine.RecallThreshold = 0.75
	cfg.Engine.DeclineCooldown = 5
	cfg.LLM.Model = "claude-haiku"
	cfg.LLM.Timeout = 12 * time.Second

	got := engineConfig(&cfg)
	assert.InDelta(t, 0.75, got.RecallThreshold, 1e-9)
	assert.Equal(t, 5, got.DeclineCooldown)
	assert.Equal(t, "claude-haiku", got.ModelName)
	assert.Equal(t, 12*time.Second, got.LLMTimeout)
	assert.Equal(t, cfg.Engine.PauseThreshold, got.PauseThreshold)
}
