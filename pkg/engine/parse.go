package engine

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// LLM responses are requested as JSON but arrive as free text. The
// parsers here are intentionally forgiving: they extract JSON from
// fenced code blocks, strip preambles, clamp confidences, coerce sloppy
// booleans, and fall back to safe defaults biased to false-negatives.
// A parse failure is never propagated; the raw text is preserved in the
// Reasoning field so callers can tell a parse failure from a confident
// negative.

var fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// extractJSONObject pulls the first JSON object out of free text. It
// tries a fenced code block first, then the outermost brace span.
func extractJSONObject(text string) (map[string]any, bool) {
	candidates := make([]string, 0, 2)
	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		candidates = append(candidates, m[1])
	}
	if start := strings.Index(text, "{"); start != -1 {
		if end := strings.LastIndex(text, "}"); end > start {
			candidates = append(candidates, text[start:end+1])
		}
	}
	for _, c := range candidates {
		var obj map[string]any
		if err := json.Unmarshal([]byte(c), &obj); err == nil {
			return obj, true
		}
	}
	return nil, false
}

// clampConfidence normalizes a confidence value into [0,1]. Values in
// (1,100] are treated as percentages. Anything unparseable is 0.
func clampConfidence(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case json.Number:
		f, _ = x.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if f > 1 && f <= 100 {
		f /= 100
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// asBool coerces a loosely typed value to bool. Anything that is not an
// unambiguous true collapses to false (false positives are worse than
// silence).
func asBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return strings.EqualFold(strings.TrimSpace(x), "true")
	default:
		return false
	}
}

// asString returns v when it is a string, otherwise "".
func asString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// asStringSlice filters non-string elements out of a JSON array value.
func asStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// asDepth normalizes a depth value into {1,2,3}.
func asDepth(v any) int {
	d := 1
	switch x := v.(type) {
	case float64:
		d = int(x)
	case int:
		d = x
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			d = parsed
		}
	}
	if d < 1 {
		return 1
	}
	if d > 3 {
		return 3
	}
	return d
}

// parseEvaluation parses an evaluator verdict. On failure it returns a
// confident-negative default carrying the raw text.
func parseEvaluation(text string) *Evaluation {
	obj, ok := extractJSONObject(text)
	if !ok {
		return &Evaluation{Success: false, Confidence: 0, Reasoning: text}
	}
	return &Evaluation{
		Success:         asBool(obj["success"]),
		Confidence:      clampConfidence(obj["confidence"]),
		Reasoning:       asString(obj["reasoning"]),
		KeyConcepts:     asStringSlice(obj["key_demonstrated_concepts"]),
		MissedConcepts:  asStringSlice(obj["missed_concepts"]),
		SuggestedRating: asString(obj["suggested_rating"]),
	}
}

// parseDetection parses a rabbit-hole detection verdict. Failure means
// "not a rabbit hole".
func parseDetection(text string) *Detection {
	obj, ok := extractJSONObject(text)
	if !ok {
		return &Detection{IsRabbithole: false, Reasoning: text}
	}
	return &Detection{
		IsRabbithole:          asBool(obj["is_rabbithole"]),
		Topic:                 asString(obj["topic"]),
		Depth:                 asDepth(obj["depth"]),
		RelatedToCurrentPoint: asBool(obj["related_to_current_point"]),
		RelatedPointIDs:       asStringSlice(obj["related_recall_point_ids"]),
		Confidence:            clampConfidence(obj["confidence"]),
		Reasoning:             asString(obj["reasoning"]),
	}
}

// parseReturn parses a return-detection verdict. Failure means "has not
// returned".
func parseReturn(text string) *ReturnDetection {
	obj, ok := extractJSONObject(text)
	if !ok {
		return &ReturnDetection{HasReturned: false, Reasoning: text}
	}
	return &ReturnDetection{
		HasReturned: asBool(obj["has_returned"]),
		Confidence:  clampConfidence(obj["confidence"]),
		Reasoning:   asString(obj["reasoning"]),
	}
}
