package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession holds the schema definition for the StudySession entity.
// One study encounter over a subset of a set's due points. Status
// transitions form a DAG; only in_progress <-> paused is bidirectional.
type StudySession struct {
	ent.Schema
}

// Fields of the StudySession.
func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("recall_set_id").
			Immutable(),
		field.Enum("status").
			Values("in_progress", "paused", "completed", "abandoned").
			Default("in_progress"),
		field.JSON("target_point_ids", []string{}).
			Comment("Ordered probe sequence chosen at start"),
		field.JSON("recalled_point_ids", []string{}).
			Optional().
			Comment("Persisted checklist progress; always a subset of target_point_ids"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("resumed_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

// Edges of the StudySession.
func (StudySession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recall_set", RecallSet.Type).
			Ref("sessions").
			Field("recall_set_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", SessionMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rabbithole_events", RabbitholeEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outcomes", RecallOutcome.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("metrics", SessionMetrics.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the StudySession.
func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		// Active/paused lookup at start()
		index.Fields("recall_set_id", "status"),
		index.Fields("status", "started_at"),
	}
}
