package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionMetrics holds the schema definition for the SessionMetrics entity.
// One row per completed session, written once at finalize.
type SessionMetrics struct {
	ent.Schema
}

// Fields of the SessionMetrics.
func (SessionMetrics) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_metrics_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique().
			Immutable(),

		// Timing
		field.Int64("total_duration_ms"),
		field.Int64("active_duration_ms").
			Comment("Sum of inter-message gaps below the pause threshold"),
		field.Int64("avg_user_response_ms").
			Default(0),
		field.Int64("avg_assistant_response_ms").
			Default(0),

		// Recall
		field.Int("points_attempted"),
		field.Int("points_successful"),
		field.Int("points_failed"),
		field.Float("recall_rate"),
		field.Float("avg_confidence"),

		// Messages
		field.Int("user_messages"),
		field.Int("assistant_messages"),
		field.Int("total_messages"),

		// Rabbit holes
		field.Int("rabbithole_count").
			Default(0),
		field.Int64("rabbithole_duration_ms").
			Default(0),
		field.Float("rabbithole_avg_depth").
			Default(0),

		// Tokens and cost
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Float("estimated_cost_usd").
			Default(0),

		field.Float("engagement_score").
			Comment("Composite [0,100]: response-time regularity, length variance, recall rate"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SessionMetrics.
func (SessionMetrics) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", StudySession.Type).
			Ref("metrics").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionMetrics.
func (SessionMetrics) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
