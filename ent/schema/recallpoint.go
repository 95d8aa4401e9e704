package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecallPoint holds the schema definition for the RecallPoint entity.
// One fact scheduled under FSRS. The FSRS columns and recall_history are
// mutated only by the scheduler adapter; everything else is authored at
// seeding time.
type RecallPoint struct {
	ent.Schema
}

// Fields of the RecallPoint.
func (RecallPoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("recall_point_id").
			Unique().
			Immutable(),
		field.String("recall_set_id").
			Immutable(),
		field.Text("content").
			Comment("The fact to be recalled"),
		field.Text("context").
			Default("").
			Comment("Background shown to the tutor, never quoted to the user"),

		// FSRS scheduling state
		field.Float("difficulty").
			Default(5.0),
		field.Float("stability").
			Default(1.0),
		field.Time("due"),
		field.Time("last_review").
			Optional().
			Nillable(),
		field.Int("reps").
			Default(0),
		field.Int("lapses").
			Default(0),
		field.Enum("state").
			Values("new", "learning", "review", "relearning").
			Default("new"),

		field.JSON("recall_history", []map[string]interface{}{}).
			Optional().
			Comment("Append-only attempts: [{timestamp_ms, success, latency_ms}]"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the RecallPoint.
func (RecallPoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recall_set", RecallSet.Type).
			Ref("points").
			Field("recall_set_id").
			Unique().
			Required().
			Immutable(),
		edge.To("outcomes", RecallOutcome.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the RecallPoint.
func (RecallPoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recall_set_id"),
		// Due-set computation at session start
		index.Fields("recall_set_id", "due"),
	}
}
