package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recallkit/recallkit/pkg/llm"
)

func TestCollectorFinalize(t *testing.T) {
	c := NewCollector(5*time.Minute, Pricing{InputPer1K: 0.003, OutputPer1K: 0.015})
	c.Reset(t0)

	at := t0
	step := func(d time.Duration) time.Time {
		at = at.Add(d)
		return at
	}

	c.ObserveMessage(llm.RoleAssistant, 40, 100, 30, step(time.Second))
	c.ObserveMessage(llm.RoleUser, 60, 0, 0, step(10*time.Second))
	c.ObserveMessage(llm.RoleAssistant, 45, 120, 25, step(3*time.Second))
	// a gap above the pause threshold does not count as active time
	c.ObserveMessage(llm.RoleUser, 55, 0, 0, step(10*time.Minute))
	c.ObserveMessage(llm.RoleAssistant, 50, 130, 20, step(3*time.Second))

	c.ObserveOutcome(true, 0.9)
	c.ObserveOutcome(true, 0.7)
	c.ObserveOutcome(false, 0.4)

	c.ObserveRabbithole(2, 90*time.Second)

	m := c.Finalize("session-1", at.Add(time.Second))

	assert.Equal(t, "session-1", m.SessionID)
	assert.Equal(t, 2, m.UserMessages)
	assert.Equal(t, 3, m.AssistantMessages)
	assert.Equal(t, 5, m.TotalMessages)

	// active time excludes the 10 minute pause: 1+10+3+3 seconds... the
	// first observation has no predecessor, so 10+3+3 = 16s
	assert.Equal(t, int64(16_000), m.ActiveDurationMS)

	assert.Equal(t, 3, m.PointsAttempted)
	assert.Equal(t, 2, m.PointsSuccessful)
	assert.Equal(t, 1, m.PointsFailed)
	assert.InDelta(t, 2.0/3.0, m.RecallRate, 1e-9)
	assert.InDelta(t, (0.9+0.7+0.4)/3, m.AvgConfidence, 1e-9)

	assert.Equal(t, 1, m.RabbitholeCount)
	assert.Equal(t, int64(90_000), m.RabbitholeDurationMS)
	assert.InDelta(t, 2.0, m.RabbitholeAvgDepth, 1e-9)

	assert.Equal(t, 350, m.InputTokens)
	assert.Equal(t, 75, m.OutputTokens)
	assert.InDelta(t, 350.0/1000*0.003+75.0/1000*0.015, m.EstimatedCostUSD, 1e-9)

	assert.GreaterOrEqual(t, m.EngagementScore, 0.0)
	assert.LessOrEqual(t, m.EngagementScore, 100.0)
}

func TestCollectorResponseTimes(t *testing.T) {
	c := NewCollector(5*time.Minute, DefaultPricing)
	c.Reset(t0)

	c.ObserveMessage(llm.RoleAssistant, 10, 0, 0, t0.Add(1*time.Second))
	c.ObserveMessage(llm.RoleUser, 10, 0, 0, t0.Add(5*time.Second))      // 4s user response
	c.ObserveMessage(llm.RoleAssistant, 10, 0, 0, t0.Add(7*time.Second)) // 2s assistant response
	c.ObserveMessage(llm.RoleUser, 10, 0, 0, t0.Add(13*time.Second))     // 6s user response

	m := c.Finalize("s", t0.Add(14*time.Second))
	assert.Equal(t, int64(5_000), m.AvgUserResponseMS)
	assert.Equal(t, int64(2_000), m.AvgAssistantResponseMS)
}

func TestCollectorEmptySession(t *testing.T) {
	c := NewCollector(0, DefaultPricing)
	c.Reset(t0)

	m := c.Finalize("s", t0.Add(time.Minute))
	require.NotNil(t, m)
	assert.Zero(t, m.PointsAttempted)
	assert.Zero(t, m.RecallRate)
	assert.Zero(t, m.TotalMessages)
	assert.Zero(t, m.AvgUserResponseMS)
	assert.Equal(t, int64(60_000), m.TotalDurationMS)
}

func TestCollectorResetClearsObservations(t *testing.T) {
	c := NewCollector(5*time.Minute, DefaultPricing)
	c.Reset(t0)
	c.ObserveOutcome(true, 0.9)
	c.ObserveMessage(llm.RoleUser, 10, 5, 0, t0.Add(time.Second))

	c.Reset(t0.Add(time.Hour))
	m := c.Finalize("s", t0.Add(time.Hour+time.Minute))
	assert.Zero(t, m.PointsAttempted)
	assert.Zero(t, m.InputTokens)
	assert.Equal(t, int64(60_000), m.TotalDurationMS)
}

func TestPricingFor(t *testing.T) {
	assert.Equal(t, ModelPricing["gpt-4o"], PricingFor("gpt-4o"))
	assert.Equal(t, DefaultPricing, PricingFor("unknown-model"))
}

func TestEngagementScoreBounds(t *testing.T) {
	c := NewCollector(5*time.Minute, DefaultPricing)
	c.Reset(t0)
	// perfectly regular single-response session with full recall
	c.ObserveMessage(llm.RoleAssistant, 20, 0, 0, t0.Add(time.Second))
	c.ObserveMessage(llm.RoleUser, 20, 0, 0, t0.Add(2*time.Second))
	c.ObserveOutcome(true, 1.0)

	m := c.Finalize("s", t0.Add(3*time.Second))
	// recall 1.0, regularity 1, length consistency 1 -> full score
	assert.InDelta(t, 100.0, m.EngagementScore, 1e-9)
}
