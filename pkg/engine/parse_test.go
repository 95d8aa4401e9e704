package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvaluationPlainJSON(t *testing.T) {
	ev := parseEvaluation(`{"success": true, "confidence": 0.85, "reasoning": "clear paraphrase", "key_demonstrated_concepts": ["rubicon"], "suggested_rating": "good"}`)

	assert.True(t, ev.Success)
	assert.InDelta(t, 0.85, ev.Confidence, 1e-9)
	assert.Equal(t, "clear paraphrase", ev.Reasoning)
	assert.Equal(t, []string{"rubicon"}, ev.KeyConcepts)
	assert.Equal(t, "good", ev.SuggestedRating)
}

func TestParseEvaluationFencedBlockWithPreamble(t *testing.T) {
	text := "Sure, here is my evaluation:\n```json\n{\"success\": true, \"confidence\": 0.7, \"reasoning\": \"ok\"}\n```\nHope that helps."
	ev := parseEvaluation(text)

	assert.True(t, ev.Success)
	assert.InDelta(t, 0.7, ev.Confidence, 1e-9)
}

func TestParseEvaluationPercentageConfidence(t *testing.T) {
	ev := parseEvaluation(`{"success": true, "confidence": 85}`)
	assert.InDelta(t, 0.85, ev.Confidence, 1e-9)
}

func TestParseEvaluationSloppyTypes(t *testing.T) {
	ev := parseEvaluation(`{"success": "true", "confidence": "0.5", "key_demonstrated_concepts": ["a", 42, null, "b"]}`)

	assert.True(t, ev.Success)
	assert.InDelta(t, 0.5, ev.Confidence, 1e-9)
	assert.Equal(t, []string{"a", "b"}, ev.KeyConcepts)

	// anything short of an unambiguous true collapses to false
	ev = parseEvaluation(`{"success": "yes", "confidence": 0.9}`)
	assert.False(t, ev.Success)
	ev = parseEvaluation(`{"success": 1, "confidence": 0.9}`)
	assert.False(t, ev.Success)
}

func TestParseEvaluationGarbageKeepsRawText(t *testing.T) {
	ev := parseEvaluation("I think the learner did great!")

	assert.False(t, ev.Success)
	assert.Zero(t, ev.Confidence)
	// raw text preserved so callers can tell a parse failure from a
	// confident negative
	assert.Equal(t, "I think the learner did great!", ev.Reasoning)
}

func TestParseDetection(t *testing.T) {
	d := parseDetection(`{"is_rabbithole": true, "topic": "etymology", "depth": 2, "related_to_current_point": false, "related_recall_point_ids": ["p1"], "confidence": 0.78, "reasoning": "drifted"}`)

	require.True(t, d.IsRabbithole)
	assert.Equal(t, "etymology", d.Topic)
	assert.Equal(t, 2, d.Depth)
	assert.Equal(t, []string{"p1"}, d.RelatedPointIDs)
	assert.InDelta(t, 0.78, d.Confidence, 1e-9)
}

func TestParseDetectionDepthClamped(t *testing.T) {
	assert.Equal(t, 3, parseDetection(`{"is_rabbithole": true, "depth": 7, "confidence": 0.9}`).Depth)
	assert.Equal(t, 1, parseDetection(`{"is_rabbithole": true, "depth": 0, "confidence": 0.9}`).Depth)
	assert.Equal(t, 2, parseDetection(`{"is_rabbithole": true, "depth": "2", "confidence": 0.9}`).Depth)
}

func TestParseDetectionFailureMeansNoRabbithole(t *testing.T) {
	d := parseDetection("not json at all")
	assert.False(t, d.IsRabbithole)
	assert.Equal(t, "not json at all", d.Reasoning)
}

func TestParseReturn(t *testing.T) {
	r := parseReturn("```\n{\"has_returned\": true, \"confidence\": 0.9, \"reasoning\": \"back on topic\"}\n```")
	assert.True(t, r.HasReturned)
	assert.InDelta(t, 0.9, r.Confidence, 1e-9)

	r = parseReturn("")
	assert.False(t, r.HasReturned)
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0.0, clampConfidence(nil))
	assert.Equal(t, 0.0, clampConfidence(-3.0))
	assert.Equal(t, 1.0, clampConfidence(150.0))
	assert.InDelta(t, 0.42, clampConfidence(42.0), 1e-9)
	assert.InDelta(t, 1.0, clampConfidence(1.0), 1e-9)
	assert.Equal(t, 0.0, clampConfidence("not a number"))
}
