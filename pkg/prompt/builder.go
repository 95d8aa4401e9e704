// Package prompt builds all prompt text for the session engine: the
// Socratic tutor system prompt, per-point evaluation requests, the
// rabbit-hole detector and return-detection requests, and the dedicated
// rabbit-hole agent persona. Stateless — all state comes from
// parameters. Thread-safe — no mutable state.
package prompt

import (
	"fmt"
	"strings"

	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/llm"
)

// Builder implements engine.PromptBuilder.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

const tutorPersona = `You are a recall-session facilitator. Your job is to help the learner actively retrieve facts from memory through conversation, never to lecture or reveal the material yourself.

Rules you must follow on every reply:
- Keep replies to 1-3 sentences.
- Never praise, never use exclamation marks, never comment on the session mechanics.
- Ask questions that lead the learner toward the next target fact without stating it.
- If a conversation turn is marked as an internal observation, use it to steer the dialog but never reference, quote, or acknowledge it.`

const evaluatorInstructions = `You are a strict recall evaluator. Decide whether the learner has demonstrated genuine recall of one specific fact anywhere in the conversation. Paraphrases count; the tutor stating the fact does not; vague gestures at the topic do not.

Respond with a single JSON object and nothing else:
{
  "success": boolean,
  "confidence": number between 0 and 1,
  "reasoning": "one or two sentences",
  "key_demonstrated_concepts": ["..."],
  "missed_concepts": ["..."],
  "suggested_rating": "forgot" | "hard" | "good" | "easy"
}`

const detectorInstructions = `You watch a recall-practice conversation for tangents: stretches where the learner has drifted onto a side topic that is engaging them but is not one of the target facts. Judge only the recent messages given.

Respond with a single JSON object and nothing else:
{
  "is_rabbithole": boolean,
  "topic": "short lowercase label",
  "depth": 1 | 2 | 3,
  "related_to_current_point": boolean,
  "related_recall_point_ids": ["..."],
  "confidence": number between 0 and 1,
  "reasoning": "one or two sentences"
}

Depth reflects how long the tangent has run: 1 for one or two exchanges, 2 for three to five, 3 for six or more. Do not report topics from the known-topics list.`

const returnInstructions = `You watch a recall-practice conversation that previously drifted onto a tangent. Decide whether the dialog has come back to the recall material.

Respond with a single JSON object and nothing else:
{
  "has_returned": boolean,
  "confidence": number between 0 and 1,
  "reasoning": "one sentence"
}`

// TutorSystemPrompt renders the tutor persona plus the current session
// state: all target points, the ones still unchecked, and the probe
// point the tutor should steer toward next. Set-level supplementary
// guidelines are appended verbatim.
func (b *Builder) TutorSystemPrompt(set *engine.Set, targets []*engine.Point, unchecked []*engine.Point, probe *engine.Point) string {
	var sb strings.Builder
	sb.WriteString(tutorPersona)

	sb.WriteString("\n\n## Recall set: ")
	sb.WriteString(set.Name)
	if set.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(set.Description)
	}

	sb.WriteString("\n\n## Target facts for this session\n")
	for i, p := range targets {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, p.Content)
		if p.Context != "" {
			fmt.Fprintf(&sb, "   Context: %s\n", p.Context)
		}
	}

	sb.WriteString("\n## Facts not yet demonstrated\n")
	if len(unchecked) == 0 {
		sb.WriteString("None. Every fact has been recalled; keep the conversation open until the learner leaves.\n")
	}
	for _, p := range unchecked {
		fmt.Fprintf(&sb, "- %s\n", p.Content)
	}

	if probe != nil {
		sb.WriteString("\n## Steer toward next\n")
		sb.WriteString(probe.Content)
		sb.WriteString("\n")
	}

	if set.DiscussionPrompt != "" {
		sb.WriteString("\n## Supplementary guidelines\n")
		sb.WriteString(set.DiscussionPrompt)
		sb.WriteString("\n")
	}
	return sb.String()
}

// EvaluationMessages renders one per-point evaluation request over the
// full conversation.
func (b *Builder) EvaluationMessages(point *engine.Point, history []engine.Message, ec engine.EvalContext) []llm.Message {
	var sb strings.Builder
	sb.WriteString("## Fact under evaluation\n")
	sb.WriteString(point.Content)
	sb.WriteString("\n")
	if point.Context != "" {
		sb.WriteString("Context: ")
		sb.WriteString(point.Context)
		sb.WriteString("\n")
	}

	if ec.AttemptNumber > 1 || ec.PreviousSuccesses > 0 || ec.Topic != "" {
		sb.WriteString("\n## Evaluation context\n")
		if ec.AttemptNumber > 0 {
			fmt.Fprintf(&sb, "Evaluation attempt this session: %d\n", ec.AttemptNumber)
		}
		fmt.Fprintf(&sb, "Previously demonstrated successfully: %d times\n", ec.PreviousSuccesses)
		if ec.Topic != "" {
			fmt.Fprintf(&sb, "The conversation is currently on a tangent about: %s\n", ec.Topic)
		}
	}

	sb.WriteString("\n## Conversation\n")
	writeTranscript(&sb, history)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: evaluatorInstructions},
		{Role: llm.RoleUser, Content: sb.String()},
	}
}

// DetectorMessages renders one rabbit-hole detection request.
func (b *Builder) DetectorMessages(in engine.DetectionInput) []llm.Message {
	var sb strings.Builder

	sb.WriteString("## Target facts\n")
	for _, p := range in.TargetPoints {
		fmt.Fprintf(&sb, "- [%s] %s\n", p.ID, p.Content)
	}

	if in.ProbePoint != nil {
		sb.WriteString("\n## Fact currently being solicited\n")
		sb.WriteString(in.ProbePoint.Content)
		sb.WriteString("\n")
	}

	if len(in.KnownTopics) > 0 {
		sb.WriteString("\n## Known topics (do not report again)\n")
		for _, t := range in.KnownTopics {
			sb.WriteString("- ")
			sb.WriteString(t)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n## Recent messages\n")
	writeTranscript(&sb, in.Window)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: detectorInstructions},
		{Role: llm.RoleUser, Content: sb.String()},
	}
}

// ReturnMessages renders one return-detection request.
func (b *Builder) ReturnMessages(in engine.ReturnInput) []llm.Message {
	var sb strings.Builder
	sb.WriteString("## Tangent topic\n")
	sb.WriteString(in.Topic)
	sb.WriteString("\n")

	if in.ProbePoint != nil {
		sb.WriteString("\n## Fact currently being solicited\n")
		sb.WriteString(in.ProbePoint.Content)
		sb.WriteString("\n")
	}

	sb.WriteString("\n## Recent messages\n")
	writeTranscript(&sb, in.Window)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: returnInstructions},
		{Role: llm.RoleUser, Content: sb.String()},
	}
}

// AgentSystemPrompt renders the dedicated rabbit-hole agent persona.
// The agent owns the tangent; it is not the tutor and carries none of
// the recall mechanics.
func (b *Builder) AgentSystemPrompt(topic, setName, setDescription string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an enthusiastic, knowledgeable conversation partner exploring the topic of %s with a learner.\n\n", topic)
	fmt.Fprintf(&sb, "The learner was practicing recall on the set %q", setName)
	if setDescription != "" {
		fmt.Fprintf(&sb, " (%s)", setDescription)
	}
	sb.WriteString(" and chose to follow this tangent. Explore it with genuine depth and curiosity. Keep replies conversational, two to four sentences. When the learner signals they want to get back to practicing, wrap up gracefully.")
	return sb.String()
}

// writeTranscript serializes messages into the "role: content" transcript
// form shared by every analysis prompt.
func writeTranscript(sb *strings.Builder, history []engine.Message) {
	for _, m := range history {
		fmt.Fprintf(sb, "%s: %s\n", m.Role, m.Content)
	}
}
