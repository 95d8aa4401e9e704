package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecallOutcome holds the schema definition for the RecallOutcome entity.
// Per-attempt audit row written by the scheduler adapter after the FSRS
// update and recall-history append succeed. A recall point is never
// deleted while an outcome references it.
type RecallOutcome struct {
	ent.Schema
}

// Fields of the RecallOutcome.
func (RecallOutcome) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("recall_outcome_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("recall_point_id").
			Immutable(),
		field.Bool("success").
			Immutable(),
		field.Float("confidence").
			Immutable().
			Comment("Evaluator confidence in [0,1]"),
		field.Enum("rating").
			Values("forgot", "hard", "good", "easy").
			Optional().
			Nillable().
			Immutable(),
		field.Text("reasoning").
			Optional().
			Nillable().
			Immutable().
			Comment("Evaluator reasoning, or raw LLM text when parsing failed"),
		field.Int("message_index_start").
			Immutable(),
		field.Int("message_index_end").
			Immutable().
			Comment("Indices into the persisted main dialog; stable and monotonic"),
		field.Int("time_spent_ms").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RecallOutcome.
func (RecallOutcome) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", StudySession.Type).
			Ref("outcomes").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("recall_point", RecallPoint.Type).
			Ref("outcomes").
			Field("recall_point_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RecallOutcome.
func (RecallOutcome) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("recall_point_id", "created_at"),
	}
}
