package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/llm"
	"github.com/recallkit/recallkit/pkg/services"
)

func TestRenderReplay(t *testing.T) {
	started := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	returnIdx := 3
	detail := &services.SessionDetail{
		Session: services.SessionSummary{
			ID: "sess-1", SetID: "set-1", Status: "completed",
			TargetPoints: 3, RecalledPoints: 3, StartedAt: started,
		},
		Messages: []*engine.Message{
			{Index: 0, Role: llm.RoleAssistant, Content: "What happened in 49 BC?"},
			{Index: 1, Role: llm.RoleUser, Content: "Caesar crossed the Rubicon."},
			{Index: 2, Role: llm.RoleAssistant, Content: "Right. And the Republic?"},
			{Index: 3, Role: llm.RoleUser, Content: "It ended with Augustus."},
		},
		Rabbitholes: []*engine.Rabbithole{
			{
				Topic: "etymology", TriggerMessageIndex: 1,
				ReturnMessageIndex: &returnIdx, Depth: 1,
				Status: engine.RabbitholeReturned,
				Conversation: []engine.AgentTurn{
					{Role: llm.RoleAssistant, Content: "Rubicon comes from the Latin for red."},
					{Role: llm.RoleUser, Content: "Nice."},
				},
			},
		},
		Metrics: &services.SessionMetricsRow{
			PointsAttempted: 3, PointsSuccessful: 3, RecallRate: 1.0,
			TotalMessages: 4, EstimatedCostUSD: 0.0123,
		},
	}

	out := renderReplay(detail)

	assert.Contains(t, out, "session sess-1  set set-1  completed")
	assert.Contains(t, out, "recalled 3/3")
	assert.Contains(t, out, "[  0] assistant: What happened in 49 BC?")
	assert.Contains(t, out, "[  1] user: Caesar crossed the Rubicon.")
	// tangent block anchors at its trigger message, before message 2
	tangent := `-- tangent "etymology" (returned, depth 1)`
	assert.Contains(t, out, tangent)
	assert.Less(t, strings.Index(out, tangent), strings.Index(out, "[  2]"))
	assert.Contains(t, out, "|  assistant: Rubicon comes from the Latin for red.")
	assert.Contains(t, out, "recall 3/3 (100%)  messages 4  cost $0.0123")
}

func TestRenderReplayUnfinalized(t *testing.T) {
	detail := &services.SessionDetail{
		Session: services.SessionSummary{
			ID: "sess-2", SetID: "set-1", Status: "in_progress",
			TargetPoints: 2, StartedAt: time.Now(),
		},
		Messages: []*engine.Message{
			{Index: 0, Role: llm.RoleAssistant, Content: "opening"},
		},
	}

	out := renderReplay(detail)
	assert.Contains(t, out, "in_progress")
	assert.NotContains(t, out, "cost $")
}

func TestRenderSearch(t *testing.T) {
	out := renderSearch(&services.SearchResults{
		Points: []*services.PointHit{
			{ID: "p1", SetID: "set-1", Content: "Caesar crossed the Rubicon in 49 BC"},
		},
		Messages: []*services.MessageHit{
			{SessionID: "sess-1", Index: 4, Role: "user", Content: "the Rubicon thing"},
		},
	})

	assert.Contains(t, out, "points (1):")
	assert.Contains(t, out, "p1  [set set-1]  Caesar crossed the Rubicon in 49 BC")
	assert.Contains(t, out, "messages (1):")
	assert.Contains(t, out, "sess-1#4  user: the Rubicon thing")
}
