package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/llm"
)

func testSet() *engine.Set {
	return &engine.Set{
		ID:               "set-1",
		Name:             "Roman History",
		Description:      "Key dates and figures of the Roman Republic",
		DiscussionPrompt: "Prefer asking about causes before dates.",
	}
}

func testPoints() []*engine.Point {
	return []*engine.Point{
		{ID: "p1", Content: "Caesar crossed the Rubicon in 49 BC", Context: "start of the civil war"},
		{ID: "p2", Content: "The Republic ended with Augustus in 27 BC"},
	}
}

func TestTutorSystemPrompt(t *testing.T) {
	b := NewBuilder()
	points := testPoints()

	out := b.TutorSystemPrompt(testSet(), points, points[1:], points[1])

	assert.Contains(t, out, "recall-session facilitator")
	assert.Contains(t, out, "1-3 sentences")
	assert.Contains(t, out, "Roman History")
	assert.Contains(t, out, "1. Caesar crossed the Rubicon in 49 BC")
	assert.Contains(t, out, "Context: start of the civil war")
	assert.Contains(t, out, "## Steer toward next\nThe Republic ended with Augustus in 27 BC")

	// supplementary guidelines appended verbatim, after everything else
	idx := strings.Index(out, "Prefer asking about causes before dates.")
	require.Greater(t, idx, strings.Index(out, "## Steer toward next"))

	// recalled point must not appear among the unchecked facts
	unchecked := out[strings.Index(out, "## Facts not yet demonstrated"):strings.Index(out, "## Steer toward next")]
	assert.NotContains(t, unchecked, "Rubicon")
}

func TestTutorSystemPromptAllRecalled(t *testing.T) {
	b := NewBuilder()
	out := b.TutorSystemPrompt(testSet(), testPoints(), nil, nil)

	assert.Contains(t, out, "Every fact has been recalled")
	assert.NotContains(t, out, "## Steer toward next")
}

func TestTutorSystemPromptNoGuidelines(t *testing.T) {
	b := NewBuilder()
	set := testSet()
	set.DiscussionPrompt = ""
	out := b.TutorSystemPrompt(set, testPoints(), testPoints(), nil)

	assert.NotContains(t, out, "## Supplementary guidelines")
}

func TestEvaluationMessages(t *testing.T) {
	b := NewBuilder()
	history := []engine.Message{
		{Index: 0, Role: llm.RoleAssistant, Content: "What happened in 49 BC?"},
		{Index: 1, Role: llm.RoleUser, Content: "Caesar took his army across the Rubicon."},
	}

	msgs := b.EvaluationMessages(testPoints()[0], history, engine.EvalContext{
		AttemptNumber:     2,
		PreviousSuccesses: 1,
		Topic:             "etymology",
	})
	require.Len(t, msgs, 2)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, `"suggested_rating"`)

	user := msgs[1].Content
	assert.Contains(t, user, "Caesar crossed the Rubicon in 49 BC")
	assert.Contains(t, user, "Evaluation attempt this session: 2")
	assert.Contains(t, user, "tangent about: etymology")
	assert.Contains(t, user, "user: Caesar took his army across the Rubicon.")
}

func TestDetectorMessages(t *testing.T) {
	b := NewBuilder()
	points := testPoints()

	msgs := b.DetectorMessages(engine.DetectionInput{
		SessionID:    "s1",
		Window:       []engine.Message{{Role: llm.RoleUser, Content: "why is it called a rubicon anyway?"}},
		ProbePoint:   points[0],
		TargetPoints: points,
		KnownTopics:  []string{"etymology"},
	})
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, `"is_rabbithole"`)
	assert.Contains(t, msgs[1].Content, "[p1] Caesar crossed the Rubicon in 49 BC")
	assert.Contains(t, msgs[1].Content, "do not report again")
	assert.Contains(t, msgs[1].Content, "- etymology")
}

func TestReturnMessages(t *testing.T) {
	b := NewBuilder()
	msgs := b.ReturnMessages(engine.ReturnInput{
		Topic:      "etymology",
		ProbePoint: testPoints()[1],
		Window:     []engine.Message{{Role: llm.RoleUser, Content: "ok back to Rome"}},
	})
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, `"has_returned"`)
	assert.Contains(t, msgs[1].Content, "## Tangent topic\netymology")
	assert.Contains(t, msgs[1].Content, "user: ok back to Rome")
}

func TestAgentSystemPrompt(t *testing.T) {
	b := NewBuilder()
	out := b.AgentSystemPrompt("etymology", "Roman History", "Key dates")

	assert.Contains(t, out, "etymology")
	assert.Contains(t, out, `"Roman History"`)
	assert.Contains(t, out, "(Key dates)")

	bare := b.AgentSystemPrompt("etymology", "Roman History", "")
	assert.NotContains(t, bare, "()")
}
