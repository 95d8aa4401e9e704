package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/recallkit/recallkit/pkg/llm"
)

// Metrics is the finalized one-per-session aggregate row.
type Metrics struct {
	ID        string
	SessionID string

	TotalDurationMS        int64
	ActiveDurationMS       int64
	AvgUserResponseMS      int64
	AvgAssistantResponseMS int64

	PointsAttempted  int
	PointsSuccessful int
	PointsFailed     int
	RecallRate       float64
	AvgConfidence    float64

	UserMessages      int
	AssistantMessages int
	TotalMessages     int

	RabbitholeCount      int
	RabbitholeDurationMS int64
	RabbitholeAvgDepth   float64

	InputTokens      int
	OutputTokens     int
	EstimatedCostUSD float64

	EngagementScore float64

	CreatedAt time.Time
}

// Pricing is the per-1k-token price pair used for cost estimation.
type Pricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

// DefaultPricing is a conservative mid-tier price point used when the
// configured model is not in the pricing table.
var DefaultPricing = Pricing{InputPer1K: 0.003, OutputPer1K: 0.015}

// ModelPricing maps model names to per-1k-token prices.
var ModelPricing = map[string]Pricing{
	"gpt-4o":            {InputPer1K: 0.0025, OutputPer1K: 0.01},
	"gpt-4o-mini":       {InputPer1K: 0.00015, OutputPer1K: 0.0006},
	"claude-sonnet":     {InputPer1K: 0.003, OutputPer1K: 0.015},
	"claude-haiku":      {InputPer1K: 0.0008, OutputPer1K: 0.004},
	"gemini-2.0-flash":  {InputPer1K: 0.0001, OutputPer1K: 0.0004},
	"gemini-2.5-pro":    {InputPer1K: 0.00125, OutputPer1K: 0.01},
	"llama-3.3-70b":     {InputPer1K: 0.00059, OutputPer1K: 0.00079},
	"deepseek-v3":       {InputPer1K: 0.00027, OutputPer1K: 0.0011},
	"mistral-large":     {InputPer1K: 0.002, OutputPer1K: 0.006},
	"qwen-2.5-72b":      {InputPer1K: 0.0004, OutputPer1K: 0.0004},
	"gpt-4.1":           {InputPer1K: 0.002, OutputPer1K: 0.008},
	"claude-opus":       {InputPer1K: 0.015, OutputPer1K: 0.075},
	"gemini-2.0-flash-thinking": {InputPer1K: 0.0001, OutputPer1K: 0.0004},
}

// PricingFor resolves the pricing row for a model name, falling back to
// DefaultPricing.
func PricingFor(model string) Pricing {
	if p, ok := ModelPricing[model]; ok {
		return p
	}
	return DefaultPricing
}

type outcomeObservation struct {
	success    bool
	confidence float64
}

type rabbitholeObservation struct {
	depth    int
	duration time.Duration
}

// Collector accumulates per-session observations and computes the final
// metrics row. It only observes; the engine is the single write path for
// outcome rows. A resumed session starts collection fresh: historical
// messages are not re-analyzed, so token totals for resumed sessions
// undercount (known limitation).
type Collector struct {
	pauseThreshold time.Duration
	pricing        Pricing

	startedAt     time.Time
	lastMessageAt time.Time
	haveMessage   bool
	lastRole      llm.Role

	activeTime time.Duration

	userResponses      []time.Duration
	assistantResponses []time.Duration
	messageLengths     []float64

	userMessages      int
	assistantMessages int

	inputTokens  int
	outputTokens int

	outcomes    []outcomeObservation
	rabbitholes []rabbitholeObservation
}

// NewCollector creates a collector with the given pause threshold and
// pricing. A zero pauseThreshold defaults to five minutes.
func NewCollector(pauseThreshold time.Duration, pricing Pricing) *Collector {
	if pauseThreshold <= 0 {
		pauseThreshold = 5 * time.Minute
	}
	return &Collector{pauseThreshold: pauseThreshold, pricing: pricing}
}

// Reset clears all observations and restarts the clock.
func (c *Collector) Reset(now time.Time) {
	*c = Collector{
		pauseThreshold: c.pauseThreshold,
		pricing:        c.pricing,
		startedAt:      now,
	}
}

// ObserveMessage records timing, length, and token use for one main-dialog
// message.
func (c *Collector) ObserveMessage(role llm.Role, length int, inputTokens, outputTokens int, at time.Time) {
	if c.haveMessage {
		gap := at.Sub(c.lastMessageAt)
		if gap > 0 && gap < c.pauseThreshold {
			c.activeTime += gap
		}
		if gap > 0 {
			if role == llm.RoleUser && c.lastRole == llm.RoleAssistant {
				c.userResponses = append(c.userResponses, gap)
			}
			if role == llm.RoleAssistant && c.lastRole == llm.RoleUser {
				c.assistantResponses = append(c.assistantResponses, gap)
			}
		}
	}
	c.lastMessageAt = at
	c.lastRole = role
	c.haveMessage = true

	switch role {
	case llm.RoleUser:
		c.userMessages++
		c.messageLengths = append(c.messageLengths, float64(length))
	case llm.RoleAssistant:
		c.assistantMessages++
	}
	c.inputTokens += inputTokens
	c.outputTokens += outputTokens
}

// ObserveOutcome records one recall attempt verdict.
func (c *Collector) ObserveOutcome(success bool, confidence float64) {
	c.outcomes = append(c.outcomes, outcomeObservation{success: success, confidence: confidence})
}

// ObserveRabbithole records one concluded rabbit-hole span.
func (c *Collector) ObserveRabbithole(depth int, duration time.Duration) {
	c.rabbitholes = append(c.rabbitholes, rabbitholeObservation{depth: depth, duration: duration})
}

// Finalize computes the metrics row at session completion.
func (c *Collector) Finalize(sessionID string, now time.Time) *Metrics {
	m := &Metrics{
		ID:                uuid.New().String(),
		SessionID:         sessionID,
		TotalDurationMS:   now.Sub(c.startedAt).Milliseconds(),
		ActiveDurationMS:  c.activeTime.Milliseconds(),
		UserMessages:      c.userMessages,
		AssistantMessages: c.assistantMessages,
		TotalMessages:     c.userMessages + c.assistantMessages,
		InputTokens:       c.inputTokens,
		OutputTokens:      c.outputTokens,
		CreatedAt:         now,
	}

	m.AvgUserResponseMS = avgDurationMS(c.userResponses)
	m.AvgAssistantResponseMS = avgDurationMS(c.assistantResponses)

	m.PointsAttempted = len(c.outcomes)
	var confSum float64
	for _, o := range c.outcomes {
		if o.success {
			m.PointsSuccessful++
		} else {
			m.PointsFailed++
		}
		confSum += o.confidence
	}
	if m.PointsAttempted > 0 {
		m.RecallRate = float64(m.PointsSuccessful) / float64(m.PointsAttempted)
		m.AvgConfidence = confSum / float64(m.PointsAttempted)
	}

	m.RabbitholeCount = len(c.rabbitholes)
	var depthSum float64
	for _, r := range c.rabbitholes {
		m.RabbitholeDurationMS += r.duration.Milliseconds()
		depthSum += float64(r.depth)
	}
	if m.RabbitholeCount > 0 {
		m.RabbitholeAvgDepth = depthSum / float64(m.RabbitholeCount)
	}

	m.EstimatedCostUSD = float64(c.inputTokens)/1000*c.pricing.InputPer1K +
		float64(c.outputTokens)/1000*c.pricing.OutputPer1K

	m.EngagementScore = c.engagementScore(m.RecallRate)

	return m
}

// engagementScore combines response-time regularity, message-length
// variance, and recall rate into a composite in [0,100].
func (c *Collector) engagementScore(recallRate float64) float64 {
	regularity := 1 - coefficientOfVariation(durationsToFloats(c.userResponses))
	lengthConsistency := 1 - coefficientOfVariation(c.messageLengths)

	score := 100 * (0.4*recallRate + 0.3*clamp01(regularity) + 0.3*clamp01(lengthConsistency))
	return math.Max(0, math.Min(100, score))
}

// coefficientOfVariation returns stddev/mean clamped to [0,1]; zero for
// fewer than two samples (a single data point is perfectly regular).
func coefficientOfVariation(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	if mean == 0 {
		return 0
	}
	var varSum float64
	for _, x := range xs {
		varSum += (x - mean) * (x - mean)
	}
	cv := math.Sqrt(varSum/float64(len(xs))) / mean
	return math.Min(cv, 1)
}

func durationsToFloats(ds []time.Duration) []float64 {
	out := make([]float64, len(ds))
	for i, d := range ds {
		out[i] = float64(d.Milliseconds())
	}
	return out
}

func avgDurationMS(ds []time.Duration) int64 {
	if len(ds) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range ds {
		sum += d
	}
	return (sum / time.Duration(len(ds))).Milliseconds()
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
